package brandslanding

import "fmt"

// Localization keys in the landing namespace.
const (
	KeyShopDisplayName = "shop-display-name"
	KeyShopAllName     = "shop-all-name"
	KeyHeadTitle       = "head-title"
	KeyHeadDescription = "head-description"
)

// Translator looks up a key in the landing namespace and interpolates vars,
// using fallback when no translation exists.
type Translator func(key, fallback string, vars map[string]string) string

// Link is a labelled catalog link.
type Link struct {
	Name string
	URL  string
}

// Section is one category card.
type Section struct {
	Name         string
	Title        string
	URL          string
	IconURL      string
	IconSVG      string
	Classes      string
	Span         Span
	Children     []Link
	ShopAllLabel string
}

// Page is the fully resolved landing page.
type Page struct {
	View            View
	BrandKey        string
	Brand           Brand
	Title           string
	HeadTitle       string
	HeadDescription string
	Config          PageConfig
	Theme           Theme
	Banner          Banner
	Columns         int
	GridCSS         string
	Sections        []Section
}

// PageInput is what BuildPage needs from the store and the environment.
type PageInput struct {
	BrandKey    string
	Status      LoadStatus
	Brand       *Brand
	Enabled     bool
	Categories  []Category
	Config      PageConfig
	CDNBaseURL  string
	Breakpoints Breakpoints
	T           Translator
}

// BuildPage turns store state into a page. Only the content view carries
// sections; loading and not-found pages only know their view and brand key.
func BuildPage(in PageInput) Page {
	t := in.T
	if t == nil {
		t = fallbackTranslator
	}

	page := Page{
		View:     Gate(in.Status, in.Brand, in.Enabled),
		BrandKey: in.BrandKey,
	}
	if page.View != ViewContent {
		return page
	}

	brand := *in.Brand
	page.Brand = brand
	page.Config = in.Config
	page.Theme = ThemeStyle(in.Config.Color)
	page.Banner = ResolveBanner(in.CDNBaseURL, in.Config, in.Breakpoints)
	page.Title = t(KeyShopDisplayName, "Shop {{name}}", map[string]string{"name": brand.DisplayName})
	page.HeadTitle = t(KeyHeadTitle, "{{name}} | Shop by Brand", map[string]string{"name": brand.DisplayName})
	page.HeadDescription = t(KeyHeadDescription, "Shop {{name}} products by category.", map[string]string{"name": brand.DisplayName})

	// The column count covers every delivered category, hidden ones included.
	page.Columns = ColumnsForCount(len(in.Categories))
	page.GridCSS = GridBorderCSS(page.Columns, in.Breakpoints)
	span := SpanFor(page.Columns)
	classes := SectionClasses(page.Columns)

	for _, cat := range VisibleCategories(in.Categories) {
		sec := Section{
			Name:         cat.Name,
			Title:        fmt.Sprintf("%s %s", brand.DisplayName, cat.Name),
			URL:          CategoryURL(cat.URLKey, brand.Value),
			IconURL:      IconURL(in.CDNBaseURL, cat.EntityID),
			Classes:      classes,
			Span:         span,
			ShopAllLabel: t(KeyShopAllName, "Shop All {{name}}", map[string]string{"name": cat.Name}),
		}
		for _, child := range VisibleCategories(cat.Children) {
			sec.Children = append(sec.Children, Link{
				Name: child.Name,
				URL:  CategoryURL(child.URLKey, brand.Value),
			})
		}
		page.Sections = append(page.Sections, sec)
	}

	return page
}

// IconURLs lists the icon location of every section, in order.
func (p Page) IconURLs() []string {
	urls := make([]string, 0, len(p.Sections))
	for _, s := range p.Sections {
		urls = append(urls, s.IconURL)
	}
	return urls
}

// ApplyIcons fills section icon markup from fetched results keyed by URL.
// Sections without a result keep an empty icon.
func (p *Page) ApplyIcons(markup map[string]string) {
	for i := range p.Sections {
		p.Sections[i].IconSVG = markup[p.Sections[i].IconURL]
	}
}

// VisibleCategories drops categories hidden from the landing page and keeps
// the order of the rest.
func VisibleCategories(in []Category) []Category {
	out := make([]Category, 0, len(in))
	for _, c := range in {
		if c.Visible() {
			out = append(out, c)
		}
	}
	return out
}

func fallbackTranslator(_ string, fallback string, vars map[string]string) string {
	return Interpolate(fallback, vars)
}
