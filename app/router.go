// Package app wires the HTTP handlers into a chi router.
package app

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/mytheresa/go-catalog-service/app/analytics"
	"github.com/mytheresa/go-catalog-service/app/catalog"
	"github.com/mytheresa/go-catalog-service/app/categories"
	"github.com/mytheresa/go-catalog-service/app/departments"
	"github.com/mytheresa/go-catalog-service/app/health"
	"github.com/mytheresa/go-catalog-service/app/middleware"
	"github.com/mytheresa/go-catalog-service/config"
)

type Handlers struct {
	Health      *health.HealthHandler
	Departments *departments.DepartmentHandler
	Categories  *categories.CategoryHandler
	Catalog     *catalog.CatalogHandler
	Analytics   *analytics.AnalyticsHandler
}

func NewRouter(cfg config.ServerConfig, h Handlers, log *zap.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger(log))
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(cfg.RequestTimeout))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.CORSAllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PATCH", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-Id"},
		ExposedHeaders: []string{"X-Request-Id"},
		MaxAge:         300,
	}))

	r.Get("/health", h.Health.ServeHTTP)

	r.Route("/departments", func(r chi.Router) {
		r.Post("/", h.Departments.HandleCreate)
		r.Get("/", h.Departments.HandleGetAll)
		r.Get("/{id}", h.Departments.HandleGet)
		r.Put("/{id}", h.Departments.HandleUpdate)
		r.Patch("/{id}", h.Departments.HandleUpdate)
		r.Delete("/{id}", h.Departments.HandleDelete)
	})

	r.Route("/categories", func(r chi.Router) {
		r.Post("/", h.Categories.HandleCreate)
		r.Get("/", h.Categories.HandleGetAll)
		r.Get("/by-department/{departmentID}", h.Categories.HandleGetByDepartment)
		r.Get("/{id}", h.Categories.HandleGet)
		r.Put("/{id}", h.Categories.HandleUpdate)
		r.Patch("/{id}", h.Categories.HandleUpdate)
		r.Delete("/{id}", h.Categories.HandleDelete)
	})

	r.Route("/products", func(r chi.Router) {
		r.Post("/", h.Catalog.HandleCreate)
		r.Get("/", h.Catalog.HandleGet)
		r.Get("/by-category/{categoryID}", h.Catalog.HandleGetByCategory)
		r.Get("/by-department/{departmentID}", h.Catalog.HandleGetByDepartment)

		r.Route("/summary", func(r chi.Router) {
			r.Get("/avg-price-by-department", h.Analytics.HandleAvgPriceByDepartment)
			r.Get("/total-stock-by-category", h.Analytics.HandleTotalStockByCategory)
			r.Get("/count-by-department", h.Analytics.HandleCountByDepartment)
			r.Get("/total-value-by-department", h.Analytics.HandleTotalValueByDepartment)
		})

		r.Get("/{id}", h.Catalog.HandleGetProduct)
		r.Put("/{id}", h.Catalog.HandleUpdate)
		r.Patch("/{id}", h.Catalog.HandleUpdate)
		r.Delete("/{id}", h.Catalog.HandleDelete)
	})

	return r
}
