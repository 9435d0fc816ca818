package admin

import (
	"log"
	"net/http"
)

const recentProductLimit = 5

func (h *AdminHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	stats, err := h.catalog.Stats(r.Context())
	if err != nil {
		log.Printf("Dashboard: failed to load stats: %v", err)
		http.Error(w, "server error", http.StatusInternalServerError)
		return
	}

	recent, err := h.catalog.RecentProducts(r.Context(), recentProductLimit)
	if err != nil {
		log.Printf("Dashboard: failed to load recent products: %v", err)
		http.Error(w, "server error", http.StatusInternalServerError)
		return
	}

	data := h.baseData(w, r, map[string]interface{}{
		"Title":          "Админ-панель",
		"Stats":          stats,
		"RecentProducts": recent,
	})
	_ = h.render.HTML(w, http.StatusOK, "admin/dashboard", data)
}
