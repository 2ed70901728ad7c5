// Package views renders the landing page HTML.
package views

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"strings"

	"github.com/example/brandslanding/internal/brandslanding"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static/landing.css
var baseCSS string

// PageData is the template input.
type PageData struct {
	Lang      string
	Page      brandslanding.Page
	Translate brandslanding.Translator
}

// View is the view name the layout switches on.
func (d PageData) View() string {
	return d.Page.View.String()
}

// T translates a key without variables.
func (d PageData) T(key, fallback string) string {
	if d.Translate == nil {
		return fallback
	}
	return d.Translate(key, fallback, nil)
}

// HeadTitle is the document title for every view.
func (d PageData) HeadTitle() string {
	if d.Page.HeadTitle != "" {
		return d.Page.HeadTitle
	}
	if d.Page.View == brandslanding.ViewNotFound {
		return d.T("not-found-title", "Page not found")
	}
	return d.Page.BrandKey
}

// BaseCSS is the stylesheet shared by every view.
func (d PageData) BaseCSS() template.CSS {
	return template.CSS(baseCSS)
}

// ThemeCSS colours the page from the brand theme.
func (d PageData) ThemeCSS() template.CSS {
	return template.CSS(ThemeCSS(d.Page.Theme))
}

// GridCSS is the border rule set for the page's column count.
func (d PageData) GridCSS() template.CSS {
	return template.CSS(d.Page.GridCSS)
}

// CustomPageCSS is the brand's own stylesheet, trusted configuration.
func (d PageData) CustomPageCSS() template.CSS {
	if d.Page.View != brandslanding.ViewContent {
		return ""
	}
	return template.CSS(d.Page.Config.CustomPageCSS)
}

// ThemeCSS returns the rules that apply a theme's colours.
func ThemeCSS(theme brandslanding.Theme) string {
	var b strings.Builder

	fmt.Fprintf(&b, ".category-link{color:%s}.category-link:hover{color:%s}", brandslanding.LinkGrey, brandslanding.LinkHoverGrey)
	fmt.Fprintf(&b, "@media (min-width:600px){.landing-title-text{border-left:1px solid %s}}", brandslanding.TitleRuleGrey)

	if theme.Color == "" {
		return b.String()
	}

	fmt.Fprintf(&b, ".landing-title-text{color:%s}", theme.Color)
	fmt.Fprintf(&b, ".category-icon{background-color:%s}", theme.Color)
	fmt.Fprintf(&b, ".category-title-link{color:%s}.category-title-link:hover{color:%s}", theme.Color, theme.HoverColor)
	fmt.Fprintf(&b, ".category-button{background-color:%s}.category-button:hover{background-color:%s}", theme.Color, theme.HoverColor)

	return b.String()
}

// Renderer executes the landing templates.
type Renderer struct {
	tmpl *template.Template
}

// New parses the embedded templates.
func New() (*Renderer, error) {
	tmpl, err := template.New("landing").Funcs(template.FuncMap{
		// raw marks trusted markup: configured banner HTML and fetched icons.
		"raw": func(s string) template.HTML { return template.HTML(s) },
	}).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return &Renderer{tmpl: tmpl}, nil
}

// Render writes the full HTML document.
func (r *Renderer) Render(w io.Writer, data PageData) error {
	if data.Lang == "" {
		data.Lang = "en"
	}
	return r.tmpl.ExecuteTemplate(w, "layout", data)
}
