package services

import (
	"context"

	"github.com/hichamcc/Memory-Training-Game/internal/errors"
	"github.com/hichamcc/Memory-Training-Game/internal/logger"
	"github.com/hichamcc/Memory-Training-Game/internal/models"
	"github.com/hichamcc/Memory-Training-Game/internal/tactics"
)

// TacticService handles catalog-related business logic
type TacticService interface {
	ListTactics(ctx context.Context) []models.Tactic
	GetTactic(ctx context.Context, id string) (*models.Tactic, error)
}

type tacticService struct{}

// NewTacticService creates a new TacticService
func NewTacticService() TacticService {
	return &tacticService{}
}

func (s *tacticService) ListTactics(ctx context.Context) []models.Tactic {
	return tactics.All()
}

func (s *tacticService) GetTactic(ctx context.Context, id string) (*models.Tactic, error) {
	log := logger.FromContext(ctx)
	log.Debug("getting tactic: id=%s", id)

	t := tactics.ByID(id)
	if t == nil {
		return nil, errors.NewNotFoundError("tactic", id)
	}
	return t, nil
}
