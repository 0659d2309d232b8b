package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/hichamcc/Memory-Training-Game/internal/logger"
	"github.com/hichamcc/Memory-Training-Game/internal/models"
)

type startPracticeRequest struct {
	TacticID   string `json:"tactic_id"`
	Difficulty string `json:"difficulty"`
}

type answerRequest struct {
	Key    string `json:"key"`
	Answer string `json:"answer"`
}

func (s *Server) handleStartPractice(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	var req startPracticeRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, err)
		return
	}
	log.Debug("starting practice: tactic=%s, difficulty=%s", req.TacticID, req.Difficulty)

	id, state, err := s.Practice.StartSession(r.Context(), req.TacticID, models.DifficultyLevel(req.Difficulty))
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusCreated, map[string]any{
		"session_id": id,
		"state":      state,
	})
}

func (s *Server) handlePracticeState(w http.ResponseWriter, r *http.Request) {
	state, err := s.Practice.GetState(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, state)
}

func (s *Server) handlePracticeBegin(w http.ResponseWriter, r *http.Request) {
	state, err := s.Practice.Begin(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, state)
}

func (s *Server) handlePracticeAnswer(w http.ResponseWriter, r *http.Request) {
	var req answerRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, err)
		return
	}

	state, err := s.Practice.Submit(r.Context(), chi.URLParam(r, "id"), req.Key, req.Answer)
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, state)
}

func (s *Server) handlePracticeReset(w http.ResponseWriter, r *http.Request) {
	state, err := s.Practice.Reset(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, state)
}
