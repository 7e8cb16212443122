package routers

import (
	"github.com/go-chi/chi/v5"

	"mockmate/interview/internal/handlers"
)

func CatalogRoutes(router *chi.Mux, catalogHandler *handlers.CatalogHandler) {
	router.Route("/api/v1/catalog", func(r chi.Router) {
		r.Get("/roles", catalogHandler.RolesHandler)
	})
}
