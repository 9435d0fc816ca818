package seo

import (
	"encoding/xml"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/karnaval-obuv/shop/app/models"
)

func testCatalog() ([]models.Category, []models.Product) {
	categories := []models.Category{
		{
			ID: 1, Name: "Женская обувь", Slug: "zhenskaya-obuv",
			Subcategories: []models.Subcategory{
				{ID: 1, CategoryID: 1, Name: "Сапоги", Slug: "sapogi"},
				{ID: 2, CategoryID: 1, Name: "Кроссовки", Slug: "krossovki"},
			},
		},
		{ID: 2, Name: "Мужская обувь", Slug: "muzhskaya-obuv"},
	}
	products := []models.Product{
		{ID: 10, Name: "Сапоги Nordic", Slug: "sapogi-nordic", IsActive: true},
		{ID: 11, Name: "Кроссовки City", Slug: "krossovki-city", IsActive: true},
	}
	products[0].CreatedAt = time.Date(2025, 11, 3, 12, 30, 45, 123456789, time.UTC)
	products[1].CreatedAt = time.Date(2025, 12, 1, 9, 0, 0, 0, time.UTC)
	return categories, products
}

func TestBuildSitemapEntries(t *testing.T) {
	categories, products := testCatalog()

	body, err := BuildSitemap("https://karnaval-obuv.ru/", categories, products)
	require.NoError(t, err)

	var set URLSet
	require.NoError(t, xml.Unmarshal(body, &set))

	// home + 2 categories + 2 subcategories + 2 products + 3 static pages
	require.Len(t, set.URLs, 10)
	assert.Equal(t, sitemapNamespace, set.Xmlns)

	locs := make([]string, 0, len(set.URLs))
	for _, u := range set.URLs {
		require.NotEmpty(t, u.Loc)
		locs = append(locs, u.Loc)
	}
	assert.Contains(t, locs, "https://karnaval-obuv.ru/")
	assert.Contains(t, locs, "https://karnaval-obuv.ru/category/zhenskaya-obuv")
	assert.Contains(t, locs, "https://karnaval-obuv.ru/category/zhenskaya-obuv/sapogi")
	assert.Contains(t, locs, "https://karnaval-obuv.ru/product/10-sapogi-nordic")
	assert.Contains(t, locs, "https://karnaval-obuv.ru/products")
	assert.Contains(t, locs, "https://karnaval-obuv.ru/map")

	assert.Equal(t, "1.0", set.URLs[0].Priority)
	assert.Equal(t, "daily", set.URLs[0].ChangeFreq)
}

func TestBuildSitemapProductLastMod(t *testing.T) {
	categories, products := testCatalog()

	body, err := BuildSitemap("https://karnaval-obuv.ru", categories, products)
	require.NoError(t, err)

	var set URLSet
	require.NoError(t, xml.Unmarshal(body, &set))

	byLoc := make(map[string]URL, len(set.URLs))
	for _, u := range set.URLs {
		byLoc[u.Loc] = u
	}

	product := byLoc["https://karnaval-obuv.ru/product/10-sapogi-nordic"]
	assert.Equal(t, "2025-11-03T12:30:45Z", product.LastMod)
	assert.Equal(t, "weekly", product.ChangeFreq)
	assert.Equal(t, "0.7", product.Priority)

	// lastmod must round-trip as RFC 3339
	_, err = time.Parse(time.RFC3339, product.LastMod)
	assert.NoError(t, err)

	// non-product pages carry no lastmod
	assert.Empty(t, byLoc["https://karnaval-obuv.ru/"].LastMod)
	assert.Empty(t, byLoc["https://karnaval-obuv.ru/category/zhenskaya-obuv"].LastMod)
}

func TestBuildSitemapEmptyCatalog(t *testing.T) {
	body, err := BuildSitemap("http://localhost:8000", nil, nil)
	require.NoError(t, err)

	var set URLSet
	require.NoError(t, xml.Unmarshal(body, &set))
	assert.Len(t, set.URLs, 4)
}

func TestRobots(t *testing.T) {
	got := Robots("https://karnaval-obuv.ru/")
	assert.Equal(t, "User-agent: *\nAllow: /\nSitemap: https://karnaval-obuv.ru/sitemap.xml\n", got)
}
