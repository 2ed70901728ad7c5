package brandslanding

import (
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Fixed greys from the storefront palette.
const (
	BorderGrey    = "#bdbdbd"
	TitleRuleGrey = "#9e9e9e"
	LinkGrey      = "#9e9e9e"
	LinkHoverGrey = "#616161"
)

const hoverDarken = 0.2

// Theme is the set of colours derived from a brand's base colour.
type Theme struct {
	Color      string
	HoverColor string
}

// ThemeStyle derives the page colours from a base colour. The hover colour
// is the base with its HSL lightness reduced by 20%. Unparseable colours are
// passed through unchanged.
func ThemeStyle(baseColor string) Theme {
	baseColor = strings.TrimSpace(baseColor)
	if baseColor == "" {
		return Theme{}
	}

	c, err := colorful.Hex(normalizeHex(baseColor))
	if err != nil {
		return Theme{Color: baseColor, HoverColor: baseColor}
	}

	h, s, l := c.Hsl()
	hover := colorful.Hsl(h, s, l*(1-hoverDarken)).Clamped()

	return Theme{Color: c.Hex(), HoverColor: hover.Hex()}
}

// normalizeHex expands "#abc" and adds a missing "#".
func normalizeHex(v string) string {
	if !strings.HasPrefix(v, "#") {
		v = "#" + v
	}
	if len(v) == 4 {
		return "#" + strings.Repeat(v[1:2], 2) + strings.Repeat(v[2:3], 2) + strings.Repeat(v[3:4], 2)
	}
	return v
}
