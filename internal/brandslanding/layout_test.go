package brandslanding

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestColumnsForCount(t *testing.T) {
	cases := map[int]int{
		0: 4, 1: 1, 2: 2, 3: 3, 4: 4,
		5: 3, 6: 3, 7: 4, 8: 4, 9: 3,
		10: 4, 11: 4, 12: 4, 25: 4,
	}
	for n, want := range cases {
		assert.Equal(t, want, ColumnsForCount(n), "count %d", n)
	}
}

func TestSpanFor(t *testing.T) {
	assert.Equal(t, Span{XS: 12, MD: 12, LG: 12}, SpanFor(1))
	assert.Equal(t, Span{XS: 12, MD: 6, LG: 6}, SpanFor(2))
	assert.Equal(t, Span{XS: 12, MD: 6, LG: 4}, SpanFor(3))
	assert.Equal(t, Span{XS: 12, MD: 6, LG: 3}, SpanFor(4))
	assert.Equal(t, "grid-xs-12 grid-md-6 grid-lg-3", SpanFor(4).Classes())
}

func TestSectionClasses(t *testing.T) {
	assert.Equal(t, "category-section", SectionClasses(1))
	assert.Equal(t, "category-section category-section--two-cols", SectionClasses(2))
	assert.Equal(t, "category-section category-section--three-cols", SectionClasses(3))
	assert.Equal(t, "category-section category-section--four-cols", SectionClasses(4))
}

func TestGridBorderCSS(t *testing.T) {
	css := GridBorderCSS(3, DefaultBreakpoints)

	assert.Contains(t, css, "@media (min-width:1280px){")
	assert.Contains(t, css, ".category-section--three-cols:nth-child(3n){border-right:0}")
	assert.Contains(t, css, ".category-section--three-cols:nth-child(3n+1):nth-last-child(-n+3){border-bottom:0}")
	assert.Contains(t, css, ".category-section:nth-child(2n){border-right:0}")
	assert.NotContains(t, css, "four-cols")

	single := GridBorderCSS(1, DefaultBreakpoints)
	assert.NotContains(t, single, "@media (min-width:1280px)")
}
