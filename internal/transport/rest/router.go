package rest

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/heartmarshall/hangman-backend/internal/config"
	"github.com/heartmarshall/hangman-backend/internal/transport/middleware"
)

// RouterDeps holds everything the HTTP router mounts.
type RouterDeps struct {
	Logger *slog.Logger
	Word   *WordHandler
	Health *HealthHandler
	Docs   *DocsHandler // nil disables the documentation routes
	CORS   config.CORSConfig

	// RateLimiter limits /word to WordPerMinute requests per client. Nil
	// disables limiting.
	RateLimiter   *middleware.RateLimiter
	WordPerMinute int
}

// NewRouter builds the HTTP handler for the service.
func NewRouter(d RouterDeps) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RealIP, middleware.Standard(d.Logger, d.CORS))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, ErrorResponse{Error: "not found"})
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusMethodNotAllowed, ErrorResponse{Error: "method not allowed"})
	})

	r.Get("/health", d.Health.Health)
	r.Get("/live", d.Health.Live)
	r.Get("/ready", d.Health.Ready)

	var limit middleware.Middleware
	if d.RateLimiter != nil {
		limit = d.RateLimiter.Limit(d.WordPerMinute)
	}
	r.With(middleware.Chain(limit)).Get("/word", d.Word.Word)

	if d.Docs != nil {
		r.Get("/", d.Docs.UI)
		r.Get("/openapi.json", d.Docs.JSON)
		r.Get("/openapi.yaml", d.Docs.YAML)
	}

	return r
}
