package api

import (
	"net/http"
	"strconv"

	"github.com/hichamcc/Memory-Training-Game/internal/logger"
	"github.com/hichamcc/Memory-Training-Game/internal/models"
)

func (s *Server) handleListScores(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	filter := models.HighScoreFilter{
		TacticID:   r.URL.Query().Get("tactic_id"),
		Difficulty: models.DifficultyLevel(r.URL.Query().Get("difficulty")),
	}
	if limitParam := r.URL.Query().Get("limit"); limitParam != "" {
		if limit, err := strconv.Atoi(limitParam); err == nil && limit > 0 {
			filter.Limit = limit
		}
	}
	log.Debug("listing scores: tactic=%s, difficulty=%s, limit=%d", filter.TacticID, filter.Difficulty, filter.Limit)

	scores, err := s.Results.ListHighScores(r.Context(), filter)
	if err != nil {
		handleError(w, r, err)
		return
	}
	if scores == nil {
		scores = []models.HighScore{}
	}
	writeJSON(w, r, http.StatusOK, map[string]any{"scores": scores})
}

func (s *Server) handleListSessions(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())
	log.Debug("listing sessions")

	sessions, err := s.Results.ListSessions(r.Context())
	if err != nil {
		handleError(w, r, err)
		return
	}
	if sessions == nil {
		sessions = []models.GameSession{}
	}
	writeJSON(w, r, http.StatusOK, map[string]any{"sessions": sessions})
}
