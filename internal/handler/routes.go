package handler

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	router.Get("/healthz", h.health)
	if h.metrics != nil {
		router.Method("GET", "/metrics", h.metrics)
	}

	router.Route("/api", func(r chi.Router) {
		r.Get("/status", h.status)
		r.Get("/installed", h.listInstalled)
		r.Get("/installed/{itemName}", h.getInstalled)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
