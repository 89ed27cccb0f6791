package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rogerio-castellano/product-catalog/internal/http/handlers"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.uber.org/zap"

	_ "github.com/rogerio-castellano/product-catalog/docs"
)

func NewRouter(h *handlers.ProductHandlers, log *zap.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(RequestIDMiddleware)
	r.Use(AccessLogMiddleware(log))
	r.Use(middleware.Recoverer)

	r.Get("/Produits", h.GetProductsHandler)
	r.Post("/Produits", h.CreateProductHandler)
	r.Put("/Produits", h.UpdateProductHandler)
	r.Get("/Produits/{id}", h.GetProductByIDHandler)
	r.Delete("/Produits/{id}", h.DeleteProductHandler)

	r.Get("/AdminProduits", h.MarginReportHandler)
	r.Get("/GetProductByName", h.SortedByNameHandler)
	r.Get("/ErreurTest", h.ZeroPriceDemoHandler)
	r.Get("/test/produits/{prix}", h.ExpensiveProductsHandler)

	r.Get("/health", h.HealthHandler)
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))
	return r
}
