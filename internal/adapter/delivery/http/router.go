// Package http provides the HTTP delivery layer for the link analytics service.
// This package contains the HTTP handlers and related types used for processing
// incoming requests, validating input, and formatting responses.
package http

import (
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v2"
	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
)

// UseCases bundles the business-layer dependencies of the router.
type UseCases struct {
	Links     linkUseCase
	Clicks    clickUseCase
	Analytics analyticsUseCase
	Templates templateUseCase
	QRCodes   qrCodeUseCase
}

// NewRouter initializes and returns a new Chi router configured with middleware
// and routes for the public redirect path and the admin API.
func NewRouter(logger *httplog.Logger, baseURL string, uc UseCases) *chi.Mux {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*"},
		AllowedMethods:   []string{"POST", "GET", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Accept", "Idempotency-Key"},
		AllowCredentials: false,
		MaxAge:           84600,
	}))
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(httplog.RequestLogger(logger))
	r.Use(middleware.Recoverer)

	validate := validator.New()
	linkH := newLinkHandler(baseURL, uc.Links, uc.Clicks, validate)
	analyticsH := newAnalyticsHandler(uc.Analytics)
	templateH := newTemplateHandler(uc.Templates, validate)
	qrCodeH := newQRCodeHandler(uc.QRCodes, validate)

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/docs/swagger.yml"),
	))

	r.Get("/docs/swagger.yml", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, "./docs/swagger.yml")
	})

	r.Handle("/metrics", promhttp.Handler())

	r.Get("/r/{slug}", linkH.redirect)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/ping", handlePing)

		r.Route("/links", func(r chi.Router) {
			r.Post("/", linkH.shorten)
			r.Get("/", linkH.list)

			r.Route("/{id}", func(r chi.Router) {
				r.Delete("/", linkH.delete)
				r.Get("/analytics", analyticsH.linkAnalytics)
				r.Get("/clicks/export", analyticsH.exportCSV)
				r.Get("/qrcodes", qrCodeH.listByLink)
			})
		})

		r.Get("/analytics", analyticsH.globalAnalytics)

		r.Route("/templates", func(r chi.Router) {
			r.Post("/", templateH.create)
			r.Get("/", templateH.list)
			r.Put("/{id}/default", templateH.setDefault)
			r.Delete("/{id}", templateH.delete)
		})

		r.Route("/qrcodes", func(r chi.Router) {
			r.Post("/", qrCodeH.create)
			r.Get("/{id}/image", qrCodeH.image)
			r.Delete("/{id}", qrCodeH.delete)
		})
	})

	return r
}
