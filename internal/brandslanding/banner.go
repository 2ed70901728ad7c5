package brandslanding

import (
	"fmt"
	"net/url"
	"strings"
)

// Breakpoints are viewport width thresholds in pixels.
type Breakpoints struct {
	XS int
	SM int
	MD int
	LG int
	XL int
}

// DefaultBreakpoints matches the storefront theme.
var DefaultBreakpoints = Breakpoints{XS: 0, SM: 600, MD: 960, LG: 1280, XL: 1920}

const mediaRoot = "/magento-media/alta-brands-landing"

// BannerSource is one responsive image candidate.
type BannerSource struct {
	Breakpoint string
	SrcSet     string
	Media      string
}

// Banner is the resolved banner. At most one of CustomHTML and Sources is
// set; both empty means no banner.
type Banner struct {
	CustomHTML string
	BaseURL    string
	Sources    []BannerSource
	Fallback   string
}

// Empty reports whether nothing should render.
func (b Banner) Empty() bool {
	return b.CustomHTML == "" && len(b.Sources) == 0
}

// IsPicture reports whether the banner renders as a responsive picture.
func (b Banner) IsPicture() bool {
	return b.CustomHTML == "" && len(b.Sources) > 0
}

type bannerSize struct {
	breakpoint string
	suffix     string
	minWidth   func(Breakpoints) int
}

// Ordered widest first: the browser takes the first source whose media
// query matches.
var bannerSizes = []bannerSize{
	{"xl", "xlrg", func(b Breakpoints) int { return b.XL }},
	{"lg", "lrg", func(b Breakpoints) int { return b.LG }},
	{"md", "med", func(b Breakpoints) int { return b.MD }},
	{"sm", "sml", func(b Breakpoints) int { return b.SM }},
	{"xs", "sml", func(b Breakpoints) int { return b.XS }},
}

const fallbackBannerSuffix = "lrg"

// BannerBaseURL returns the banner path without size suffix, or "" when the
// config names no banner.
func BannerBaseURL(cdnBase, bannerName string) string {
	if bannerName == "" {
		return ""
	}
	return strings.TrimRight(cdnBase, "/") + mediaRoot + "/banners/" + EncodeURIComponent(bannerName)
}

// ResolveBanner decides how the banner renders. Custom HTML comes from
// trusted configuration and is used verbatim.
func ResolveBanner(cdnBase string, cfg PageConfig, bp Breakpoints) Banner {
	if cfg.CustomBannerHTML != "" {
		return Banner{CustomHTML: cfg.CustomBannerHTML}
	}

	base := BannerBaseURL(cdnBase, cfg.BannerName)
	if base == "" {
		return Banner{}
	}

	sources := make([]BannerSource, 0, len(bannerSizes))
	for _, s := range bannerSizes {
		sources = append(sources, BannerSource{
			Breakpoint: s.breakpoint,
			SrcSet:     fmt.Sprintf("%s-%s.jpg", base, s.suffix),
			Media:      fmt.Sprintf("(min-width: %dpx)", s.minWidth(bp)),
		})
	}

	return Banner{
		BaseURL:  base,
		Sources:  sources,
		Fallback: fmt.Sprintf("%s-%s.jpg", base, fallbackBannerSuffix),
	}
}

// IconURL returns the SVG icon location for a category.
func IconURL(cdnBase string, entityID int64) string {
	return fmt.Sprintf("%s%s/icons/%d.svg", strings.TrimRight(cdnBase, "/"), mediaRoot, entityID)
}

var uriComponentKeep = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)

// EncodeURIComponent escapes s the way browsers escape a URI component.
func EncodeURIComponent(s string) string {
	return uriComponentKeep.Replace(url.QueryEscape(s))
}
