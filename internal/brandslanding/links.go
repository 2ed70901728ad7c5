package brandslanding

import (
	"net/url"
	"strings"
)

// CatalogQuery is the query suffix appended to every catalog link of a
// brand, including the leading "?". The brand value is RFC 3986 escaped,
// so a space becomes %20.
func CatalogQuery(brandValue string) string {
	return "?display_mode=products&manufacturer=" + queryComponent(brandValue)
}

// CategoryURL links to a category filtered to the brand's products.
func CategoryURL(urlKey, brandValue string) string {
	return "/catalog/" + urlKey + CatalogQuery(brandValue)
}

func queryComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
