package repository

import (
	"context"

	"github.com/hichamcc/Memory-Training-Game/internal/models"
)

// Retention limits for the two result logs. Appends beyond these evict
// the lowest score, or the oldest session, in the same transaction.
const (
	MaxHighScores     = 100
	MaxRecentSessions = 50
)

// ResultsRepository handles persisted session results
type ResultsRepository interface {
	AppendHighScore(ctx context.Context, score models.HighScore) error
	ListHighScores(ctx context.Context, filter models.HighScoreFilter) ([]models.HighScore, error)
	AppendSession(ctx context.Context, session models.GameSession) (int64, error)
	ListSessions(ctx context.Context) ([]models.GameSession, error)
}
