package handlers

import (
	"fmt"
	"log"
	"net/http"

	"github.com/karnaval-obuv/shop/app/seo"
	"github.com/karnaval-obuv/shop/app/services"
)

type SEOHandler struct {
	baseURL string
	catalog *services.CatalogService
}

func NewSEOHandler(baseURL string, catalog *services.CatalogService) *SEOHandler {
	return &SEOHandler{baseURL: baseURL, catalog: catalog}
}

func (h *SEOHandler) Robots(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprint(w, seo.Robots(h.baseURL))
}

func (h *SEOHandler) Sitemap(w http.ResponseWriter, r *http.Request) {
	categories, err := h.catalog.Categories(r.Context())
	if err != nil {
		log.Printf("Sitemap: failed to load categories: %v", err)
		http.Error(w, "server error", http.StatusInternalServerError)
		return
	}

	products, err := h.catalog.Products(r.Context(), services.ProductQuery{})
	if err != nil {
		log.Printf("Sitemap: failed to load products: %v", err)
		http.Error(w, "server error", http.StatusInternalServerError)
		return
	}

	body, err := seo.BuildSitemap(h.baseURL, categories, products)
	if err != nil {
		log.Printf("Sitemap: failed to build sitemap: %v", err)
		http.Error(w, "server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/xml; charset=utf-8")
	_, _ = w.Write(body)
}

func (h *SEOHandler) Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprint(w, "ok")
}
