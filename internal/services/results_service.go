package services

import (
	"context"

	"github.com/hichamcc/Memory-Training-Game/internal/errors"
	"github.com/hichamcc/Memory-Training-Game/internal/logger"
	"github.com/hichamcc/Memory-Training-Game/internal/models"
	"github.com/hichamcc/Memory-Training-Game/internal/repository"
	"github.com/hichamcc/Memory-Training-Game/internal/tactics"
)

// ResultsService handles high score and session history queries
type ResultsService interface {
	ListHighScores(ctx context.Context, filter models.HighScoreFilter) ([]models.HighScore, error)
	ListSessions(ctx context.Context) ([]models.GameSession, error)
}

type resultsService struct {
	repo repository.ResultsRepository
}

// NewResultsService creates a new ResultsService
func NewResultsService(repo repository.ResultsRepository) ResultsService {
	return &resultsService{repo: repo}
}

func (s *resultsService) ListHighScores(ctx context.Context, filter models.HighScoreFilter) ([]models.HighScore, error) {
	log := logger.FromContext(ctx)
	log.Debug("listing high scores: tactic=%s, difficulty=%s", filter.TacticID, filter.Difficulty)

	if filter.TacticID != "" && tactics.ByID(filter.TacticID) == nil {
		return nil, errors.NewNotFoundError("tactic", filter.TacticID)
	}
	if filter.Difficulty != "" && !filter.Difficulty.Valid() {
		return nil, errors.NewValidationError("difficulty", "must be 'Beginner', 'Intermediate', or 'Advanced'")
	}

	scores, err := s.repo.ListHighScores(ctx, filter)
	if err != nil {
		log.Error("failed to list high scores: %v", err)
		return nil, errors.NewInternalError(err)
	}
	return scores, nil
}

func (s *resultsService) ListSessions(ctx context.Context) ([]models.GameSession, error) {
	log := logger.FromContext(ctx)
	log.Debug("listing recent sessions")

	sessions, err := s.repo.ListSessions(ctx)
	if err != nil {
		log.Error("failed to list sessions: %v", err)
		return nil, errors.NewInternalError(err)
	}
	return sessions, nil
}
