package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(middleware.Recoverer)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/", h.root)
		r.Get("/health", h.health)
		r.Post("/token", h.login)
		r.Post("/users/signup", h.signup)
	})

	// routes behind bearer-token authentication
	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Get("/users/me", h.me)
		r.Get("/protected", h.protected)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
