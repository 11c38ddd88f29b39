package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Init builds the facade router. Every path is a flat entry name, so the
// router only distinguishes methods; authentication runs before routing.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	if h.metrics != nil {
		router.Use(h.metrics.collect)
	}
	router.Use(h.withAuth)
	router.Use(withGZip)
	if h.timeout > 0 {
		router.Use(middleware.Timeout(h.timeout))
	}

	router.Get("/*", h.readInput)
	router.Post("/*", h.writeOutput)

	router.NotFound(notFound)
	router.MethodNotAllowed(notFound)

	return router
}
