package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/auth/signup", h.signup)
		r.Post("/api/auth/login", h.login)
		r.Get("/api/health", h.health)
	})

	// routes requiring a bearer token
	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Get("/api/actions", h.listActions)
		r.Post("/api/actions", h.createAction)
		r.Patch("/api/actions/{id}", h.updateAction)
		r.Delete("/api/actions/{id}", h.deleteAction)
		r.Post("/api/progress", h.recordProgress)
		r.Post("/api/progress/decrement", h.decrementProgress)
	})

	return router
}
