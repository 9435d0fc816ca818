package helpers

import (
	"net/http"

	"github.com/karnaval-obuv/shop/app/utils/breadcrumb"
)

type contextKey string

const (
	// ContextKeyAdmin holds the authenticated admin identity set by the
	// session gate middleware.
	ContextKeyAdmin contextKey = "admin"
	// ContextKeyRequestID tags each request for log correlation.
	ContextKeyRequestID contextKey = "requestID"
)

// AdminFromContext returns the identity the gate stored, if any.
func AdminFromContext(r *http.Request) string {
	if identity, ok := r.Context().Value(ContextKeyAdmin).(string); ok {
		return identity
	}
	return ""
}

// GetBaseData fills the keys every template expects.
func GetBaseData(r *http.Request, pageSpecificData map[string]interface{}) map[string]interface{} {
	if pageSpecificData == nil {
		pageSpecificData = make(map[string]interface{})
	}

	if _, exists := pageSpecificData["Title"]; !exists {
		pageSpecificData["Title"] = "Отдел женской кожаной обуви в ТЦ «Карнавал»"
	}
	if _, exists := pageSpecificData["Breadcrumbs"]; !exists {
		pageSpecificData["Breadcrumbs"] = []breadcrumb.Breadcrumb{}
	}
	if _, exists := pageSpecificData["Admin"]; !exists {
		pageSpecificData["Admin"] = AdminFromContext(r)
	}
	if _, exists := pageSpecificData["Query"]; !exists {
		pageSpecificData["Query"] = r.URL.Query()
	}

	return pageSpecificData
}
