package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/karnaval-obuv/shop/app/models"
	"github.com/karnaval-obuv/shop/app/repositories"
	"github.com/karnaval-obuv/shop/app/services"
	"github.com/unrolled/render"
)

// PartialsHandler serves the product-grid fragments the storefront swaps
// in without a full page load. Filtering rules match the full pages.
type PartialsHandler struct {
	render  *render.Render
	catalog *services.CatalogService
}

func NewPartialsHandler(r *render.Render, catalog *services.CatalogService) *PartialsHandler {
	return &PartialsHandler{render: r, catalog: catalog}
}

// ProductsByCategory serves /hx/products/{slug}. An unknown category slug
// falls back to an unscoped listing rather than an error.
func (h *PartialsHandler) ProductsByCategory(w http.ResponseWriter, r *http.Request) {
	query := services.ProductQuery{
		Size:  parseSizeParam(r),
		Color: r.URL.Query().Get("color"),
	}

	category, err := h.catalog.CategoryBySlug(r.Context(), mux.Vars(r)["slug"])
	if err != nil && !errors.Is(err, repositories.ErrNotFound) {
		log.Printf("ProductsByCategory: failed to load category: %v", err)
		http.Error(w, "server error", http.StatusInternalServerError)
		return
	}
	if category != nil {
		query.CategoryID = &category.ID
	}

	products, err := h.catalog.Products(r.Context(), query)
	if err != nil {
		log.Printf("ProductsByCategory: failed to load products: %v", err)
		http.Error(w, "server error", http.StatusInternalServerError)
		return
	}
	h.renderGrid(w, products)
}

// CategoryFilter serves /hx/category/{slug}/filter. An unknown category
// renders an empty grid.
func (h *PartialsHandler) CategoryFilter(w http.ResponseWriter, r *http.Request) {
	category, err := h.catalog.CategoryBySlug(r.Context(), mux.Vars(r)["slug"])
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			h.renderGrid(w, nil)
			return
		}
		log.Printf("CategoryFilter: failed to load category: %v", err)
		http.Error(w, "server error", http.StatusInternalServerError)
		return
	}

	products, err := h.catalog.Products(r.Context(), services.ProductQuery{
		CategoryID: &category.ID,
		Size:       parseSizeParam(r),
		Color:      r.URL.Query().Get("color"),
	})
	if err != nil {
		log.Printf("CategoryFilter: failed to load products: %v", err)
		http.Error(w, "server error", http.StatusInternalServerError)
		return
	}
	h.renderGrid(w, products)
}

func (h *PartialsHandler) renderGrid(w http.ResponseWriter, products []models.Product) {
	_ = h.render.HTML(w, http.StatusOK, "partials/product_grid", map[string]interface{}{
		"Products": products,
	}, render.HTMLOptions{Layout: ""})
}
