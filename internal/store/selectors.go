package store

import "github.com/example/brandslanding/internal/brandslanding"

// GetBrandsLandingPageStatus returns the load status.
func GetBrandsLandingPageStatus(s State) brandslanding.LoadStatus {
	if s.Status == "" {
		return brandslanding.StatusIdle
	}
	return s.Status
}

// GetBrandData returns the loaded brand, or nil.
func GetBrandData(s State) *brandslanding.Brand {
	if s.Data == nil {
		return nil
	}
	return s.Data.Brand
}

// GetBrandsLandingEnabled reports whether the landing page may render for
// the loaded brand.
func GetBrandsLandingEnabled(s State) bool {
	return s.GlobalEnabled && s.Data != nil && s.Data.Enabled
}

// GetLevel2CategoryTrees returns the category tree in store order.
func GetLevel2CategoryTrees(s State) []brandslanding.Category {
	if s.Data == nil {
		return nil
	}
	return s.Data.Categories
}

// GetPageConfig returns the brand's page config; zero value when not loaded.
func GetPageConfig(s State) brandslanding.PageConfig {
	if s.Data == nil {
		return brandslanding.PageConfig{}
	}
	return s.Data.Config
}
