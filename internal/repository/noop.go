package repository

import (
	"context"

	"github.com/hichamcc/Memory-Training-Game/internal/logger"
	"github.com/hichamcc/Memory-Training-Game/internal/models"
)

type noopResults struct{}

// NewNoopResultsRepository returns a ResultsRepository that persists
// nothing. It is the fallback when the database cannot be opened:
// practice keeps working, writes are dropped, listings come back empty.
func NewNoopResultsRepository() ResultsRepository {
	return noopResults{}
}

func (noopResults) AppendHighScore(ctx context.Context, score models.HighScore) error {
	logger.FromContext(ctx).WithPrefix("results_repo").Warn("storage unavailable, high score dropped: tactic=%s, score=%d", score.TacticID, score.Score)
	return nil
}

func (noopResults) ListHighScores(ctx context.Context, filter models.HighScoreFilter) ([]models.HighScore, error) {
	return nil, nil
}

func (noopResults) AppendSession(ctx context.Context, session models.GameSession) (int64, error) {
	logger.FromContext(ctx).WithPrefix("results_repo").Warn("storage unavailable, session record dropped: tactic=%s", session.TacticID)
	return 0, nil
}

func (noopResults) ListSessions(ctx context.Context) ([]models.GameSession, error) {
	return nil, nil
}
