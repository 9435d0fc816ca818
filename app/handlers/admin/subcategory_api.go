package admin

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
)

type subcategoryOption struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// SubcategoriesAPI feeds the dependent dropdown on the product form:
// pick a category, fetch its subcategories as a small JSON list.
func (h *AdminHandler) SubcategoriesAPI(w http.ResponseWriter, r *http.Request) {
	categoryID, err := strconv.ParseUint(mux.Vars(r)["categoryID"], 10, 64)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	subcategories, err := h.catalog.SubcategoriesByCategory(r.Context(), uint(categoryID))
	if err != nil {
		log.Printf("SubcategoriesAPI: failed to load subcategories for category %d: %v", categoryID, err)
		http.Error(w, "server error", http.StatusInternalServerError)
		return
	}

	options := make([]subcategoryOption, 0, len(subcategories))
	for _, subcategory := range subcategories {
		options = append(options, subcategoryOption{ID: subcategory.ID, Name: subcategory.Name})
	}
	_ = h.render.JSON(w, http.StatusOK, options)
}
