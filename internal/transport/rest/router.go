package rest

import (
	"log/slog"
	"net/http"

	"github.com/adisakb/e-sarabun/internal/analytics"
	"github.com/adisakb/e-sarabun/internal/auth"
	"github.com/adisakb/e-sarabun/internal/category"
	"github.com/adisakb/e-sarabun/internal/document"
	"github.com/adisakb/e-sarabun/internal/export"
	"github.com/adisakb/e-sarabun/internal/notification"
	"github.com/adisakb/e-sarabun/internal/settings"
	"github.com/adisakb/e-sarabun/internal/sheets"
	"github.com/adisakb/e-sarabun/internal/transport/middleware"
	"github.com/adisakb/e-sarabun/internal/transport/swagger"
	"github.com/adisakb/e-sarabun/internal/user"
	"github.com/go-chi/chi"
)

type Handlers struct {
	Auth         *auth.Handler
	Document     *document.Handler
	Analytics    *analytics.Handler
	Notification *notification.Handler
	Category     *category.Handler
	User         *user.Handler
	Settings     *settings.Handler
	Export       *export.Handler
	Sheets       *sheets.Handler
}

func RegisterAllRoutes(router *chi.Mux, store Pinger, h Handlers, logger *slog.Logger) {
	healthHandler := NewHealthHandler(store)

	// Apply global middleware
	router.Use(middleware.CORS)
	router.Use(middleware.RequestID)
	router.Use(middleware.LoggingMiddleware(logger))
	router.Use(middleware.RecoveryMiddleware(logger))

	// Serve OpenAPI spec at root (outside API prefix)
	router.Get("/openapi.yml", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, "./api/openapi.yml")
	})
	// Swagger UI route at root
	router.Handle("/swagger/*", swagger.Handler())

	router.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", healthHandler.healthCheckHandler)
		r.Get("/ping", healthHandler.pingHandler)

		// Auth routes
		r.Route("/auth", func(sr chi.Router) {
			sr.Post("/login", h.Auth.Login)
			sr.Post("/register", h.Auth.Register)
			sr.Post("/refresh", h.Auth.RefreshToken)
			sr.Post("/logout", h.Auth.Logout)
		})

		// Public categories route so the registration form can offer them
		r.Get("/categories", h.Category.GetCategories)

		// Protected routes that require authentication
		r.Group(func(pr chi.Router) {
			pr.Use(h.Auth.AuthMiddleware)

			pr.Get("/users/me", h.User.GetCurrentUser)
			pr.Get("/users", h.User.GetUsers)

			pr.Route("/documents", func(dr chi.Router) {
				dr.Get("/", h.Document.ListDocuments)
				dr.Post("/", h.Document.CreateDocument)
				dr.Get("/{id}", h.Document.GetDocument)
				dr.Patch("/{id}/status", h.Document.UpdateStatus)
			})

			pr.Route("/notifications", func(nr chi.Router) {
				nr.Get("/", h.Notification.GetNotifications)
				nr.Get("/count", h.Notification.GetCount)
				nr.Delete("/", h.Notification.ClearNotifications)
			})

			pr.Route("/reports", func(rr chi.Router) {
				rr.Get("/summary", h.Analytics.GetSummary)
				rr.Get("/timeseries", h.Analytics.GetTimeSeries)
				rr.Get("/analytics", h.Analytics.GetInsights)
				rr.Get("/export.csv", h.Export.ExportCSV)
			})

			pr.Post("/categories", h.Category.CreateCategory)

			pr.Get("/config", h.Settings.GetConfig)
			pr.Get("/sheets/status", h.Sheets.GetStatus)

			// Administrative routes
			pr.Group(func(ar chi.Router) {
				ar.Use(h.Auth.RequireAdmin)

				ar.Delete("/users/{id}", h.User.DeleteUser)
				ar.Delete("/categories/{name}", h.Category.DeleteCategory)
				ar.Put("/config", h.Settings.UpdateConfig)
				ar.Post("/system/reset", h.Settings.ResetSystem)
			})
		})
	})
}
