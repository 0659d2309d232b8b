package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/hichamcc/Memory-Training-Game/internal/models"
)

// MockResultsRepository is a mock implementation of repository.ResultsRepository
type MockResultsRepository struct {
	mock.Mock
}

func (m *MockResultsRepository) AppendHighScore(ctx context.Context, score models.HighScore) error {
	args := m.Called(ctx, score)
	return args.Error(0)
}

func (m *MockResultsRepository) ListHighScores(ctx context.Context, filter models.HighScoreFilter) ([]models.HighScore, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.HighScore), args.Error(1)
}

func (m *MockResultsRepository) AppendSession(ctx context.Context, session models.GameSession) (int64, error) {
	args := m.Called(ctx, session)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockResultsRepository) ListSessions(ctx context.Context) ([]models.GameSession, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.GameSession), args.Error(1)
}
