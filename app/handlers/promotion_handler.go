package handlers

import (
	"log"
	"net/http"

	"github.com/karnaval-obuv/shop/app/helpers"
	"github.com/karnaval-obuv/shop/app/services"
	"github.com/unrolled/render"
)

type PromotionHandler struct {
	render  *render.Render
	catalog *services.CatalogService
}

func NewPromotionHandler(r *render.Render, catalog *services.CatalogService) *PromotionHandler {
	return &PromotionHandler{render: r, catalog: catalog}
}

func (h *PromotionHandler) List(w http.ResponseWriter, r *http.Request) {
	promotions, err := h.catalog.ActivePromotions(r.Context())
	if err != nil {
		log.Printf("Promotions: failed to load promotions: %v", err)
		http.Error(w, "server error", http.StatusInternalServerError)
		return
	}

	data := helpers.GetBaseData(r, map[string]interface{}{
		"Title":      "Акции отдела женской обуви в ТЦ «Карнавал»",
		"Promotions": promotions,
	})
	_ = h.render.HTML(w, http.StatusOK, "promotions", data)
}
