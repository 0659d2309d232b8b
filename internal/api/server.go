package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/hichamcc/Memory-Training-Game/internal/services"
)

// Server wires the HTTP layer to the services.
type Server struct {
	Tactics  services.TacticService
	Practice services.PracticeService
	Results  services.ResultsService
}

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(recoveryMiddleware)
	r.Use(loggingMiddleware)
	r.Use(securityHeadersMiddleware)

	r.Route("/api", func(r chi.Router) {
		r.Get("/tactics", s.handleListTactics)
		r.Get("/tactics/{id}", s.handleGetTactic)

		r.Post("/practice", s.handleStartPractice)
		r.Get("/practice/{id}", s.handlePracticeState)
		r.Post("/practice/{id}/begin", s.handlePracticeBegin)
		r.Post("/practice/{id}/answers", s.handlePracticeAnswer)
		r.Post("/practice/{id}/reset", s.handlePracticeReset)

		r.Get("/scores", s.handleListScores)
		r.Get("/sessions", s.handleListSessions)
	})

	r.Get("/healthz", s.handleHealth)
	return r
}
