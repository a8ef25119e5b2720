package http

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"tagtemanin/internal/handlers"
	"tagtemanin/internal/llm"
	"tagtemanin/internal/service"
)

// Deps holds dependencies for the HTTP router.
type Deps struct {
	CaptionService   service.CaptionService
	HashtagService   service.HashtagService
	APIKeyConfigured bool
	ModelChain       llm.ModelChain
}

// NewRouter creates a new HTTP router with the provided dependencies.
func NewRouter(deps *Deps) (http.Handler, error) {
	usageHandler, err := handlers.NewUsageHandler()
	if err != nil {
		return nil, fmt.Errorf("failed to build usage page: %w", err)
	}

	r := chi.NewRouter()

	// chi middleware first so the request id is visible to our logger
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(LoggerMiddleware)
	r.Use(RequestLogger)
	r.Use(middleware.Recoverer)
	r.Use(CORS)

	captionHandler := handlers.NewCaptionHandler(deps.CaptionService)
	hashtagHandler := handlers.NewHashtagHandler(deps.HashtagService)
	healthHandler := handlers.NewHealthHandler(deps.APIKeyConfigured, deps.ModelChain)
	optionsHandler := handlers.NewOptionsHandler(deps.ModelChain)

	r.Route("/api", func(r chi.Router) {
		r.Method(http.MethodPost, "/caption", captionHandler)
		r.Method(http.MethodPost, "/hashtag", hashtagHandler)
		r.Method(http.MethodGet, "/health", healthHandler)
		r.Method(http.MethodGet, "/options", optionsHandler)
	})

	r.Method(http.MethodGet, "/", usageHandler)

	return r, nil
}
