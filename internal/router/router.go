package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"caffeine-server/internal/handlers"
	"caffeine-server/internal/middleware"
)

func New(chatHandler *handlers.ChatHandler, staticHandler *handlers.StaticHandler) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestID)

	// Unknown method/path combinations get the plain-text 404, not a 405.
	r.NotFound(handlers.NotFound)
	r.MethodNotAllowed(handlers.NotFound)

	// CORS preflight for any path
	r.Options("/*", handlers.Preflight)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})

	r.Post("/api/chat", chatHandler.Chat)

	// Everything else GET is a static asset lookup
	r.Get("/*", staticHandler.Serve)

	return r
}
