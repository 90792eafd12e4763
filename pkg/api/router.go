package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/cors"

	"github.com/UnAfraid/batchload/pkg/category"
	"github.com/UnAfraid/batchload/pkg/config"
	"github.com/UnAfraid/batchload/pkg/product"
	"github.com/UnAfraid/batchload/pkg/scope"
)

func NewRouter(
	conf *config.Config,
	productService product.Service,
	categoryService category.Service,
) http.Handler {
	corsMiddleware := cors.New(cors.Options{
		AllowedOrigins:   conf.CorsAllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: conf.CorsAllowCredentials,
	})

	h := &handler{
		productService:  productService,
		categoryService: categoryService,
		loaderWait:      conf.DataLoader.Wait,
		loaderMaxBatch:  conf.DataLoader.MaxBatch,
	}

	router := chi.NewRouter()
	router.Use(corsMiddleware.Handler)
	router.Use(scope.NewMiddleware())
	router.Get("/products", h.listProducts)
	router.Post("/products", h.createProduct)
	router.Get("/products/{id}", h.getProduct)
	router.Delete("/products/{id}", h.deleteProduct)
	router.Get("/categories/{id}", h.getCategory)
	router.Post("/categories", h.createCategory)
	return router
}
