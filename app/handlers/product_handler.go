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

type ProductHandler struct {
	render  *render.Render
	catalog *services.CatalogService
	home    *HomeHandler
}

func NewProductHandler(r *render.Render, catalog *services.CatalogService, home *HomeHandler) *ProductHandler {
	return &ProductHandler{render: r, catalog: catalog, home: home}
}

// Detail serves /product/{id}-{slug}. Only active products resolve; the
// slug must match the current one so stale links 404 instead of serving
// renamed products.
func (h *ProductHandler) Detail(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	id, err := strconv.ParseUint(vars["id"], 10, 64)
	if err != nil {
		h.home.NotFound(w, r)
		return
	}

	product, err := h.catalog.ProductByIDSlug(r.Context(), uint(id), vars["slug"])
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			h.home.NotFound(w, r)
			return
		}
		log.Printf("Detail: failed to load product %d: %v", id, err)
		http.Error(w, "server error", http.StatusInternalServerError)
		return
	}

	// Orphaned products have no subcategory; the breadcrumb trail falls
	// back to the catalog root.
	breadcrumbs := []breadcrumb.Breadcrumb{{Name: "Главная", URL: "/"}}
	if product.Subcategory != nil {
		category := product.Subcategory.Category
		breadcrumbs = append(breadcrumbs,
			breadcrumb.Breadcrumb{Name: category.Name, URL: "/category/" + category.Slug},
			breadcrumb.Breadcrumb{Name: product.Subcategory.Name, URL: "/category/" + category.Slug + "/" + product.Subcategory.Slug},
		)
	} else {
		breadcrumbs = append(breadcrumbs, breadcrumb.Breadcrumb{Name: "Каталог", URL: "/products"})
	}
	breadcrumbs = append(breadcrumbs, breadcrumb.Breadcrumb{Name: product.Name, URL: product.URLPath()})

	data := helpers.GetBaseData(r, map[string]interface{}{
		"Title":       product.Name,
		"Product":     product,
		"Breadcrumbs": breadcrumbs,
	})
	_ = h.render.HTML(w, http.StatusOK, "product", data)
}
