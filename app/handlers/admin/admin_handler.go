package admin

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/karnaval-obuv/shop/app/auth"
	"github.com/karnaval-obuv/shop/app/helpers"
	"github.com/karnaval-obuv/shop/app/services"
	"github.com/karnaval-obuv/shop/app/utils/sessions"
	"github.com/unrolled/render"
)

// AdminHandler serves the /admin surface: login, dashboard, product and
// promotion management. Everything except login sits behind the session
// gate middleware.
type AdminHandler struct {
	render       *render.Render
	validator    *validator.Validate
	gate         *auth.Gate
	verifier     *auth.CredentialVerifier
	catalog      *services.CatalogService
	productSvc   *services.ProductService
	promotionSvc *services.PromotionService
	flash        *sessions.FlashStore
}

func NewAdminHandler(
	r *render.Render,
	v *validator.Validate,
	gate *auth.Gate,
	verifier *auth.CredentialVerifier,
	catalog *services.CatalogService,
	productSvc *services.ProductService,
	promotionSvc *services.PromotionService,
	flash *sessions.FlashStore,
) *AdminHandler {
	return &AdminHandler{
		render:       r,
		validator:    v,
		gate:         gate,
		verifier:     verifier,
		catalog:      catalog,
		productSvc:   productSvc,
		promotionSvc: promotionSvc,
		flash:        flash,
	}
}

func (h *AdminHandler) baseData(w http.ResponseWriter, r *http.Request, pageData map[string]interface{}) map[string]interface{} {
	data := helpers.GetBaseData(r, pageData)
	if _, exists := data["Flashes"]; !exists {
		data["Flashes"] = h.flash.Pop(w, r)
	}
	return data
}
