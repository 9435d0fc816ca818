package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/karnaval-obuv/shop/app/helpers"
	"github.com/karnaval-obuv/shop/app/repositories"
	"github.com/karnaval-obuv/shop/app/services"
	"github.com/karnaval-obuv/shop/app/utils/breadcrumb"
	"github.com/unrolled/render"
)

type CatalogHandler struct {
	render  *render.Render
	catalog *services.CatalogService
	home    *HomeHandler
}

func NewCatalogHandler(r *render.Render, catalog *services.CatalogService, home *HomeHandler) *CatalogHandler {
	return &CatalogHandler{render: r, catalog: catalog, home: home}
}

// parseSizeParam reads the ?size= filter. An unparseable value is treated
// as no filter rather than an error.
func parseSizeParam(r *http.Request) *int {
	raw := r.URL.Query().Get("size")
	if raw == "" {
		return nil
	}
	size, err := strconv.Atoi(raw)
	if err != nil {
		return nil
	}
	return &size
}

func (h *CatalogHandler) CategoryPage(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["slug"]

	category, err := h.catalog.CategoryBySlug(r.Context(), slug)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			h.home.NotFound(w, r)
			return
		}
		log.Printf("CategoryPage: failed to load category %s: %v", slug, err)
		http.Error(w, "server error", http.StatusInternalServerError)
		return
	}

	size := parseSizeParam(r)
	color := r.URL.Query().Get("color")

	products, err := h.catalog.Products(r.Context(), services.ProductQuery{
		CategoryID: &category.ID,
		Size:       size,
		Color:      color,
	})
	if err != nil {
		log.Printf("CategoryPage: failed to load products for %s: %v", slug, err)
		http.Error(w, "server error", http.StatusInternalServerError)
		return
	}

	filters, err := h.catalog.AvailableFilters(r.Context(), category.ID)
	if err != nil {
		log.Printf("CategoryPage: failed to load filter values for %s: %v", slug, err)
		http.Error(w, "server error", http.StatusInternalServerError)
		return
	}

	categories, err := h.catalog.Categories(r.Context())
	if err != nil {
		log.Printf("CategoryPage: failed to load categories: %v", err)
		http.Error(w, "server error", http.StatusInternalServerError)
		return
	}

	data := helpers.GetBaseData(r, map[string]interface{}{
		"Title":           category.Name,
		"Categories":      categories,
		"Category":        category,
		"Products":        products,
		"AvailableSizes":  filters.Sizes,
		"AvailableColors": filters.Colors,
		"ActiveSize":      r.URL.Query().Get("size"),
		"ActiveColor":     color,
		"Breadcrumbs": []breadcrumb.Breadcrumb{
			{Name: "Главная", URL: "/"},
			{Name: category.Name, URL: "/category/" + category.Slug},
		},
	})
	_ = h.render.HTML(w, http.StatusOK, "category", data)
}

func (h *CatalogHandler) SubcategoryPage(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	category, err := h.catalog.CategoryBySlug(r.Context(), vars["category"])
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			h.home.NotFound(w, r)
			return
		}
		log.Printf("SubcategoryPage: failed to load category %s: %v", vars["category"], err)
		http.Error(w, "server error", http.StatusInternalServerError)
		return
	}

	subcategory, err := h.catalog.SubcategoryBySlug(r.Context(), category.ID, vars["subcategory"])
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			h.home.NotFound(w, r)
			return
		}
		log.Printf("SubcategoryPage: failed to load subcategory %s/%s: %v", vars["category"], vars["subcategory"], err)
		http.Error(w, "server error", http.StatusInternalServerError)
		return
	}

	products, err := h.catalog.Products(r.Context(), services.ProductQuery{
		SubcategoryID: &subcategory.ID,
		Size:          parseSizeParam(r),
		Color:         r.URL.Query().Get("color"),
	})
	if err != nil {
		log.Printf("SubcategoryPage: failed to load products: %v", err)
		http.Error(w, "server error", http.StatusInternalServerError)
		return
	}

	data := helpers.GetBaseData(r, map[string]interface{}{
		"Title":       subcategory.Name,
		"Category":    category,
		"Subcategory": subcategory,
		"Products":    products,
		"Breadcrumbs": []breadcrumb.Breadcrumb{
			{Name: "Главная", URL: "/"},
			{Name: category.Name, URL: "/category/" + category.Slug},
			{Name: subcategory.Name, URL: "/category/" + category.Slug + "/" + subcategory.Slug},
		},
	})
	_ = h.render.HTML(w, http.StatusOK, "subcategory", data)
}

// CollectionsPage is the /products listing with the merchandising views:
// all, new arrivals, featured, on sale, and by size.
func (h *CatalogHandler) CollectionsPage(w http.ResponseWriter, r *http.Request) {
	view := r.URL.Query().Get("view")

	query := services.ProductQuery{Size: parseSizeParam(r)}
	switch view {
	case "new":
		query.OnlyNew = true
	case "featured":
		query.OnlyFeatured = true
	case "sale":
		query.OnlyOnSale = true
	}

	products, err := h.catalog.Products(r.Context(), query)
	if err != nil {
		log.Printf("CollectionsPage: failed to load products: %v", err)
		http.Error(w, "server error", http.StatusInternalServerError)
		return
	}

	data := helpers.GetBaseData(r, map[string]interface{}{
		"Title":    "Женская кожаная обувь",
		"View":     view,
		"Products": products,
		"Breadcrumbs": []breadcrumb.Breadcrumb{
			{Name: "Главная", URL: "/"},
			{Name: "Каталог", URL: "/products"},
		},
	})
	_ = h.render.HTML(w, http.StatusOK, "products", data)
}

func (h *CatalogHandler) MapPage(w http.ResponseWriter, r *http.Request) {
	data := helpers.GetBaseData(r, map[string]interface{}{
		"Title": "Как нас найти — ТЦ «Карнавал», Пермь",
	})
	_ = h.render.HTML(w, http.StatusOK, "map", data)
}
