// Package seo builds the search-engine feeds: sitemap.xml over the live
// catalog and robots.txt.
package seo

import (
	"encoding/xml"
	"fmt"
	"strings"
	"time"

	"github.com/karnaval-obuv/shop/app/models"
)

const sitemapNamespace = "http://www.sitemaps.org/schemas/sitemap/0.9"

type URLSet struct {
	XMLName xml.Name `xml:"urlset"`
	Xmlns   string   `xml:"xmlns,attr"`
	URLs    []URL    `xml:"url"`
}

type URL struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod,omitempty"`
	ChangeFreq string `xml:"changefreq,omitempty"`
	Priority   string `xml:"priority,omitempty"`
}

// staticPages are the fixed storefront pages beyond the catalog tree.
var staticPages = []URL{
	{Loc: "/products", ChangeFreq: "weekly", Priority: "0.7"},
	{Loc: "/promotions", ChangeFreq: "weekly", Priority: "0.7"},
	{Loc: "/map", ChangeFreq: "monthly", Priority: "0.6"},
}

// BuildSitemap renders the urlset for the given catalog snapshot. Callers
// pass categories with subcategories resolved and only active products.
func BuildSitemap(baseURL string, categories []models.Category, products []models.Product) ([]byte, error) {
	base := strings.TrimSuffix(baseURL, "/")

	set := URLSet{Xmlns: sitemapNamespace}
	set.URLs = append(set.URLs, URL{Loc: base + "/", ChangeFreq: "daily", Priority: "1.0"})

	for _, category := range categories {
		set.URLs = append(set.URLs, URL{
			Loc:        fmt.Sprintf("%s/category/%s", base, category.Slug),
			ChangeFreq: "daily",
			Priority:   "0.9",
		})
		for _, subcategory := range category.Subcategories {
			set.URLs = append(set.URLs, URL{
				Loc:        fmt.Sprintf("%s/category/%s/%s", base, category.Slug, subcategory.Slug),
				ChangeFreq: "daily",
				Priority:   "0.8",
			})
		}
	}

	for _, product := range products {
		set.URLs = append(set.URLs, URL{
			Loc:        base + product.URLPath(),
			LastMod:    product.CreatedAt.Truncate(time.Second).Format(time.RFC3339),
			ChangeFreq: "weekly",
			Priority:   "0.7",
		})
	}

	for _, page := range staticPages {
		page.Loc = base + page.Loc
		set.URLs = append(set.URLs, page)
	}

	body, err := xml.MarshalIndent(set, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal sitemap: %w", err)
	}
	return append([]byte(xml.Header), body...), nil
}
