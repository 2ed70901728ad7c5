package brandslanding

import (
	"fmt"
	"strings"
)

// GridUnits is the width of a full grid row.
const GridUnits = 12

// ColumnsForCount returns the number of category cells per row at the widest
// breakpoints. Only the listed counts get fewer than four columns.
func ColumnsForCount(n int) int {
	switch n {
	case 1, 2, 3, 4:
		return n
	case 5, 6, 9:
		return 3
	default:
		return 4
	}
}

// Span is the number of grid units a cell covers per breakpoint.
type Span struct {
	XS int
	MD int
	LG int
}

// SpanFor returns the cell span for a column count.
func SpanFor(cols int) Span {
	if cols < 1 {
		cols = 1
	}
	md := GridUnits / 2
	if cols == 1 {
		md = GridUnits
	}
	return Span{XS: GridUnits, MD: md, LG: GridUnits / cols}
}

// Classes renders the span as grid classes.
func (s Span) Classes() string {
	return fmt.Sprintf("grid-xs-%d grid-md-%d grid-lg-%d", s.XS, s.MD, s.LG)
}

const sectionClass = "category-section"

var columnVariants = map[int]string{
	2: "category-section--two-cols",
	3: "category-section--three-cols",
	4: "category-section--four-cols",
}

// SectionClasses returns the class list of a category cell for a column
// count.
func SectionClasses(cols int) string {
	if v, ok := columnVariants[cols]; ok {
		return sectionClass + " " + v
	}
	return sectionClass
}

// GridBorderCSS returns the rules that drop right borders on right edge cells
// and bottom borders on the last row, for the medium two-column layout and
// the large layout of the given column count.
func GridBorderCSS(cols int, bp Breakpoints) string {
	var b strings.Builder

	fmt.Fprintf(&b, ".%s{border-bottom:1px solid %s}\n", sectionClass, BorderGrey)
	fmt.Fprintf(&b, ".%s:last-child{border-right:0;border-bottom:0}\n", sectionClass)

	fmt.Fprintf(&b, "@media (min-width:%dpx) and (max-width:%.2fpx){", bp.MD, float64(bp.LG)-0.05)
	writeEdgeRules(&b, "."+sectionClass, 2)
	b.WriteString("}\n")

	if v, ok := columnVariants[cols]; ok {
		fmt.Fprintf(&b, "@media (min-width:%dpx){", bp.LG)
		writeEdgeRules(&b, "."+v, cols)
		b.WriteString("}\n")
	}

	return b.String()
}

func writeEdgeRules(b *strings.Builder, sel string, cols int) {
	fmt.Fprintf(b, "%s{border-right:1px solid %s}", sel, BorderGrey)
	fmt.Fprintf(b, "%s:nth-child(%dn){border-right:0}", sel, cols)
	lastRow := fmt.Sprintf("%s:nth-child(%dn+1):nth-last-child(-n+%d)", sel, cols, cols)
	fmt.Fprintf(b, "%s{border-bottom:0}", lastRow)
	fmt.Fprintf(b, "%s ~ .%s{border-bottom:0}", lastRow, sectionClass)
}
