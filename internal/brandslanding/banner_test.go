package brandslanding

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testCDN = "https://cdn.example.com"

func TestResolveBanner_CustomHTMLWins(t *testing.T) {
	b := ResolveBanner(testCDN, PageConfig{
		BannerName:       "acme",
		CustomBannerHTML: `<div class="promo">Sale</div>`,
	}, DefaultBreakpoints)

	assert.Equal(t, `<div class="promo">Sale</div>`, b.CustomHTML)
	assert.False(t, b.IsPicture())
	assert.Empty(t, b.Sources)
}

func TestResolveBanner_ResponsiveSources(t *testing.T) {
	b := ResolveBanner(testCDN, PageConfig{BannerName: "acme"}, DefaultBreakpoints)

	base := "https://cdn.example.com/magento-media/alta-brands-landing/banners/acme"
	assert.Equal(t, base, b.BaseURL)
	assert.True(t, b.IsPicture())
	assert.Equal(t, base+"-lrg.jpg", b.Fallback)

	require.Len(t, b.Sources, 5)
	want := []BannerSource{
		{"xl", base + "-xlrg.jpg", "(min-width: 1920px)"},
		{"lg", base + "-lrg.jpg", "(min-width: 1280px)"},
		{"md", base + "-med.jpg", "(min-width: 960px)"},
		{"sm", base + "-sml.jpg", "(min-width: 600px)"},
		{"xs", base + "-sml.jpg", "(min-width: 0px)"},
	}
	assert.Equal(t, want, b.Sources)
}

func TestResolveBanner_None(t *testing.T) {
	b := ResolveBanner(testCDN, PageConfig{}, DefaultBreakpoints)
	assert.True(t, b.Empty())
}

func TestBannerBaseURL_EscapesName(t *testing.T) {
	assert.Equal(t,
		"https://cdn.example.com/magento-media/alta-brands-landing/banners/summer%20sale%2F2024",
		BannerBaseURL(testCDN+"/", "summer sale/2024"))
	assert.Equal(t, "it's(ok)!*", EncodeURIComponent("it's(ok)!*"))
}

func TestIconURL(t *testing.T) {
	assert.Equal(t, "https://cdn.example.com/magento-media/alta-brands-landing/icons/42.svg", IconURL(testCDN, 42))
}
