package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging, withGZip)

	router.Route("/api", func(r chi.Router) {
		r.Get("/version", h.getServerVersion)

		r.Route("/forms", func(r chi.Router) {
			r.Get("/", h.listForms)
			r.Post("/{form}/submissions", h.submit)
			r.Get("/{form}/submissions", h.listSubmissions)
		})

		r.Route("/geography/regions", func(r chi.Router) {
			r.Get("/", h.listRegions)
			r.Get("/{region}/communes", h.listCommunes)
		})
	})

	return router
}
