package models

import "github.com/example/brandslanding/internal/brandslanding"

// ToDomain converts the brand row.
func (b Brand) ToDomain() *brandslanding.Brand {
	return &brandslanding.Brand{
		Value:       b.Value,
		DisplayName: b.DisplayName,
		Image:       b.Image,
	}
}

// ToDomain converts a category and its loaded children.
func (c LandingCategory) ToDomain() brandslanding.Category {
	children := make([]brandslanding.Category, 0, len(c.Children))
	for _, child := range c.Children {
		children = append(children, brandslanding.Category{
			Name:             child.Name,
			URLKey:           child.URLKey,
			EntityID:         child.EntityID,
			IncludeInLanding: child.IncludeInLanding,
			Children:         []brandslanding.Category{},
		})
	}
	return brandslanding.Category{
		Name:             c.Name,
		URLKey:           c.URLKey,
		EntityID:         c.EntityID,
		IncludeInLanding: c.IncludeInLanding,
		Children:         children,
	}
}

// ToDomain converts the config row. A nil config means defaults, landing
// enabled.
func (c *BrandLandingConfig) ToDomain() (brandslanding.PageConfig, bool) {
	if c == nil {
		return brandslanding.PageConfig{}, true
	}
	return brandslanding.PageConfig{
		Color:            c.Color,
		BannerName:       c.BannerName,
		CustomPageCSS:    c.CustomPageCSS,
		CustomBannerHTML: c.CustomBannerHTML,
	}, c.Enabled
}
