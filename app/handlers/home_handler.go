package handlers

import (
	"log"
	"net/http"

	"github.com/karnaval-obuv/shop/app/helpers"
	"github.com/karnaval-obuv/shop/app/services"
	"github.com/unrolled/render"
)

const homeProductLimit = 8

type HomeHandler struct {
	render  *render.Render
	catalog *services.CatalogService
}

func NewHomeHandler(r *render.Render, catalog *services.CatalogService) *HomeHandler {
	return &HomeHandler{render: r, catalog: catalog}
}

func (h *HomeHandler) Home(w http.ResponseWriter, r *http.Request) {
	categories, err := h.catalog.Categories(r.Context())
	if err != nil {
		log.Printf("Home: failed to load categories: %v", err)
		http.Error(w, "server error", http.StatusInternalServerError)
		return
	}

	products, err := h.catalog.Products(r.Context(), services.ProductQuery{Limit: homeProductLimit})
	if err != nil {
		log.Printf("Home: failed to load products: %v", err)
		http.Error(w, "server error", http.StatusInternalServerError)
		return
	}

	data := helpers.GetBaseData(r, map[string]interface{}{
		"Categories": categories,
		"Products":   products,
	})
	_ = h.render.HTML(w, http.StatusOK, "home", data)
}

// NotFound renders the home page shell with a 404 status, the same
// fallback the category and product pages use for unknown slugs.
func (h *HomeHandler) NotFound(w http.ResponseWriter, r *http.Request) {
	categories, err := h.catalog.Categories(r.Context())
	if err != nil {
		log.Printf("NotFound: failed to load categories: %v", err)
		http.Error(w, "not found", http.StatusNotFound)
		return
	}

	data := helpers.GetBaseData(r, map[string]interface{}{
		"Title":      "Страница не найдена",
		"Categories": categories,
		"Products":   nil,
	})
	_ = h.render.HTML(w, http.StatusNotFound, "home", data)
}
