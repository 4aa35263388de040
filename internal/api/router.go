package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	apiMiddleware "github.com/phrazzld/slidegen/internal/api/middleware"
)

// NewRouter creates the application router with all routes and middleware.
func NewRouter(
	logger *slog.Logger,
	generationHandler *GenerationHandler,
	preferencesHandler *PreferencesHandler,
) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.NewTraceMiddleware(logger))

	r.Route("/api", func(r chi.Router) {
		r.Get("/formats", ListFormats)
		r.Get("/languages", ListLanguages)

		r.Get("/preferences", preferencesHandler.GetPreferences)
		r.Put("/preferences", preferencesHandler.UpdatePreferences)

		r.Post("/generate", generationHandler.Generate)
	})

	r.Get("/health", Health)

	return r
}
