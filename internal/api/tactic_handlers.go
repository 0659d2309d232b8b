package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/hichamcc/Memory-Training-Game/internal/logger"
)

func (s *Server) handleListTactics(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())
	log.Debug("listing tactics")

	writeJSON(w, r, http.StatusOK, map[string]any{
		"tactics": s.Tactics.ListTactics(r.Context()),
	})
}

func (s *Server) handleGetTactic(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	tactic, err := s.Tactics.GetTactic(r.Context(), id)
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, tactic)
}
