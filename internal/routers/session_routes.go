package routers

import (
	"github.com/go-chi/chi/v5"

	"mockmate/interview/internal/handlers"
	"mockmate/interview/internal/middleware"
	"mockmate/interview/internal/models"
)

func SessionRoutes(router *chi.Mux, sessionHandler *handlers.SessionHandler) {
	router.Route("/api/v1/interview/sessions", func(r chi.Router) {
		r.With(middleware.ValidateRequest[*models.StartSessionRequest]()).Post("/", sessionHandler.StartHandler)
		r.Get("/current", sessionHandler.GetHandler)
		r.Delete("/current", sessionHandler.DeleteHandler)
		r.With(middleware.ValidateRequest[*models.SubmitAnswerRequest]()).Post("/current/answers", sessionHandler.SubmitAnswerHandler)
		r.Post("/current/retry", sessionHandler.RetryHandler)
		r.Post("/current/next", sessionHandler.NextHandler)
		r.Get("/current/export", sessionHandler.ExportHandler)
	})
}
