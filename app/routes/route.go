package routes

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/csrf"
	"github.com/gorilla/mux"
	"github.com/karnaval-obuv/shop/app/auth"
	"github.com/karnaval-obuv/shop/app/configs"
	"github.com/karnaval-obuv/shop/app/handlers"
	adminhandlers "github.com/karnaval-obuv/shop/app/handlers/admin"
	"github.com/karnaval-obuv/shop/app/middlewares"
	"github.com/karnaval-obuv/shop/app/repositories"
	"github.com/karnaval-obuv/shop/app/services"
	"github.com/karnaval-obuv/shop/app/utils/renderer"
	"github.com/karnaval-obuv/shop/app/utils/sessions"
	"github.com/karnaval-obuv/shop/app/utils/storage"
	"gorm.io/gorm"
)

func NewRouter(db *gorm.DB, env configs.ENV) *mux.Router {
	render := renderer.New()
	validate := validator.New()

	categoryRepo := repositories.NewCategoryRepository(db)
	subcategoryRepo := repositories.NewSubcategoryRepository(db)
	productRepo := repositories.NewProductRepository(db)
	promotionRepo := repositories.NewPromotionRepository(db)

	images := storage.NewLocalImageStore(env.UploadDir, env.UploadBaseURL)

	catalogSvc := services.NewCatalogService(categoryRepo, subcategoryRepo, productRepo, promotionRepo)
	productSvc := services.NewProductService(productRepo, subcategoryRepo, images)
	promotionSvc := services.NewPromotionService(promotionRepo)

	codec := auth.NewTokenCodec(env.SecretKey)
	gate := auth.NewGate(codec)
	verifier := auth.NewCredentialVerifier(env.AdminUsername, env.AdminPassword, env.AdminPasswordHash)
	flash := sessions.NewFlashStore(env.SecretKey)

	homeHandler := handlers.NewHomeHandler(render, catalogSvc)
	catalogHandler := handlers.NewCatalogHandler(render, catalogSvc, homeHandler)
	productHandler := handlers.NewProductHandler(render, catalogSvc, homeHandler)
	promotionHandler := handlers.NewPromotionHandler(render, catalogSvc)
	partialsHandler := handlers.NewPartialsHandler(render, catalogSvc)
	seoHandler := handlers.NewSEOHandler(env.BaseURL, catalogSvc)
	adminHandler := adminhandlers.NewAdminHandler(render, validate, gate, verifier, catalogSvc, productSvc, promotionSvc, flash)

	router := mux.NewRouter()
	router.Use(middlewares.RequestLogger)

	// Public storefront.
	router.HandleFunc("/", homeHandler.Home).Methods("GET")
	router.HandleFunc("/category/{slug}", catalogHandler.CategoryPage).Methods("GET")
	router.HandleFunc("/category/{category}/{subcategory}", catalogHandler.SubcategoryPage).Methods("GET")
	router.HandleFunc("/product/{id:[0-9]+}-{slug}", productHandler.Detail).Methods("GET")
	router.HandleFunc("/products", catalogHandler.CollectionsPage).Methods("GET")
	router.HandleFunc("/promotions", promotionHandler.List).Methods("GET")
	router.HandleFunc("/map", catalogHandler.MapPage).Methods("GET")

	// Fragment endpoints for incremental grid updates.
	router.HandleFunc("/hx/products/{slug}", partialsHandler.ProductsByCategory).Methods("GET")
	router.HandleFunc("/hx/category/{slug}/filter", partialsHandler.CategoryFilter).Methods("GET")

	router.HandleFunc("/robots.txt", seoHandler.Robots).Methods("GET")
	router.HandleFunc("/sitemap.xml", seoHandler.Sitemap).Methods("GET")
	router.HandleFunc("/healthz", seoHandler.Health).Methods("GET")

	router.PathPrefix("/static/").Handler(
		http.StripPrefix("/static/", http.FileServer(http.Dir("static"))))

	// Admin panel. Login lives outside the gate; everything else is
	// behind it, plus CSRF protection on the whole subtree.
	csrfProtect := csrf.Protect([]byte(env.SecretKey), csrf.Secure(false), csrf.Path("/admin"))

	adminRouter := router.PathPrefix("/admin").Subrouter()
	adminRouter.Use(csrfProtect)
	adminRouter.HandleFunc("/login", adminHandler.LoginPage).Methods("GET")
	adminRouter.HandleFunc("/login", adminHandler.LoginPost).Methods("POST")
	adminRouter.HandleFunc("/logout", adminHandler.Logout).Methods("GET")

	protected := adminRouter.NewRoute().Subrouter()
	protected.Use(middlewares.RequireAdmin(gate))
	protected.HandleFunc("", adminHandler.Dashboard).Methods("GET")
	protected.HandleFunc("/products", adminHandler.ProductsPage).Methods("GET")
	protected.HandleFunc("/products/add", adminHandler.ProductAddPage).Methods("GET")
	protected.HandleFunc("/products/add", adminHandler.ProductAddPost).Methods("POST")
	protected.HandleFunc("/products/edit/{id:[0-9]+}", adminHandler.ProductEditPage).Methods("GET")
	protected.HandleFunc("/products/edit/{id:[0-9]+}", adminHandler.ProductEditPost).Methods("POST")
	protected.HandleFunc("/products/delete/{id:[0-9]+}", adminHandler.ProductDelete).Methods("POST")
	protected.HandleFunc("/products/restore/{id:[0-9]+}", adminHandler.ProductRestore).Methods("POST")
	protected.HandleFunc("/products/hard-delete/{id:[0-9]+}", adminHandler.ProductHardDelete).Methods("POST")
	protected.HandleFunc("/promotions", adminHandler.PromotionsPage).Methods("GET")
	protected.HandleFunc("/promotions/add", adminHandler.PromotionAddPage).Methods("GET")
	protected.HandleFunc("/promotions/add", adminHandler.PromotionAddPost).Methods("POST")
	protected.HandleFunc("/promotions/edit/{id:[0-9]+}", adminHandler.PromotionEditPage).Methods("GET")
	protected.HandleFunc("/promotions/edit/{id:[0-9]+}", adminHandler.PromotionEditPost).Methods("POST")
	protected.HandleFunc("/promotions/delete/{id:[0-9]+}", adminHandler.PromotionDelete).Methods("POST")
	protected.HandleFunc("/api/subcategories/{categoryID:[0-9]+}", adminHandler.SubcategoriesAPI).Methods("GET")

	return router
}
