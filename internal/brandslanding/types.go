// Package brandslanding holds the brand landing page domain: the data the
// store exposes and the pure helpers that turn it into a page.
package brandslanding

// Namespace is the localization namespace used by the landing page.
const Namespace = "brandslanding"

// Brand identifies a brand and provides its display assets.
type Brand struct {
	Value       string `json:"value"`
	DisplayName string `json:"display_name"`
	Image       string `json:"image"`
}

// Category is a node of the level-2 category tree. Children use the same
// shape; the tree is never deeper than two levels.
type Category struct {
	Name             string     `json:"name"`
	URLKey           string     `json:"url_key"`
	EntityID         int64      `json:"entity_id"`
	IncludeInLanding string     `json:"include_in_landing,omitempty"`
	Children         []Category `json:"children"`
}

// Visible reports whether the category is shown on the landing page. An
// absent flag means shown.
func (c Category) Visible() bool {
	return c.IncludeInLanding != "0"
}

// PageConfig carries brand specific theming and content overrides.
type PageConfig struct {
	Color            string `json:"color,omitempty"`
	BannerName       string `json:"banner_name,omitempty"`
	CustomPageCSS    string `json:"custom_page_css,omitempty"`
	CustomBannerHTML string `json:"custom_banner_html,omitempty"`
}

// Data is everything one load produces for a brand.
type Data struct {
	Brand      *Brand     `json:"brand"`
	Categories []Category `json:"categories"`
	Config     PageConfig `json:"config"`
	Enabled    bool       `json:"enabled"`
}

// LoadStatus tracks the brand data load.
type LoadStatus string

const (
	StatusIdle      LoadStatus = "idle"
	StatusPending   LoadStatus = "pending"
	StatusFulfilled LoadStatus = "fulfilled"
	StatusRejected  LoadStatus = "rejected"
)
