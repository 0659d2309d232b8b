package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/Masterminds/squirrel"

	"github.com/hichamcc/Memory-Training-Game/internal/logger"
	"github.com/hichamcc/Memory-Training-Game/internal/models"
	"github.com/hichamcc/Memory-Training-Game/internal/repository"
)

var sqlBuilder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question)

type resultsRepository struct {
	db *sql.DB
}

// NewResultsRepository creates a new ResultsRepository implementation
func NewResultsRepository(db *sql.DB) repository.ResultsRepository {
	return &resultsRepository{db: db}
}

func (r *resultsRepository) AppendHighScore(ctx context.Context, score models.HighScore) error {
	log := logger.FromContext(ctx).WithPrefix("results_repo")
	log.Debug("appending high score: id=%s, tactic=%s, score=%d", score.ID, score.TacticID, score.Score)

	return tx(ctx, r.db, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, `
INSERT INTO high_scores (id, tactic_id, score, accuracy, difficulty, created_at)
VALUES (?, ?, ?, ?, ?, ?)
`, score.ID, score.TacticID, score.Score, score.Accuracy, score.Difficulty, score.CreatedAt)
		if err != nil {
			log.Error("failed to insert high score: %v", err)
			return err
		}

		// Evict everything below the cutoff in the same transaction so a
		// reader never sees more than the retained set.
		_, err = tx.ExecContext(ctx, `
DELETE FROM high_scores
WHERE id NOT IN (
    SELECT id FROM high_scores
    ORDER BY score DESC, created_at ASC
    LIMIT ?
)
`, repository.MaxHighScores)
		if err != nil {
			log.Error("failed to trim high scores: %v", err)
		}
		return err
	})
}

func (r *resultsRepository) ListHighScores(ctx context.Context, filter models.HighScoreFilter) ([]models.HighScore, error) {
	log := logger.FromContext(ctx).WithPrefix("results_repo")
	log.Debug("listing high scores: tactic=%s, difficulty=%s, limit=%d", filter.TacticID, filter.Difficulty, filter.Limit)

	query := sqlBuilder.Select("id", "tactic_id", "score", "accuracy", "difficulty", "created_at").
		From("high_scores")

	if filter.TacticID != "" {
		query = query.Where(squirrel.Eq{"tactic_id": filter.TacticID})
	}
	if filter.Difficulty != "" {
		query = query.Where(squirrel.Eq{"difficulty": filter.Difficulty})
	}

	query = query.OrderBy("score DESC", "created_at ASC")

	limit := filter.Limit
	if limit <= 0 || limit > repository.MaxHighScores {
		limit = repository.MaxHighScores
	}
	query = query.Limit(uint64(limit))

	sqlStr, args, err := query.ToSql()
	if err != nil {
		log.Error("failed to build query: %v", err)
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		log.Error("failed to list high scores: %v", err)
		return nil, err
	}
	defer rows.Close()

	var scores []models.HighScore
	for rows.Next() {
		var hs models.HighScore
		if err := rows.Scan(&hs.ID, &hs.TacticID, &hs.Score, &hs.Accuracy, &hs.Difficulty, &hs.CreatedAt); err != nil {
			log.Error("failed to scan high score row: %v", err)
			return nil, err
		}
		scores = append(scores, hs)
	}
	log.Debug("found %d high scores", len(scores))
	return scores, rows.Err()
}

func (r *resultsRepository) AppendSession(ctx context.Context, session models.GameSession) (int64, error) {
	log := logger.FromContext(ctx).WithPrefix("results_repo")
	log.Debug("appending session: tactic=%s, difficulty=%s, score=%d", session.TacticID, session.Difficulty, session.Score)

	items, err := json.Marshal(session.Items)
	if err != nil {
		log.Error("failed to marshal session items: %v", err)
		return 0, err
	}
	answers, err := json.Marshal(session.Answers)
	if err != nil {
		log.Error("failed to marshal session answers: %v", err)
		return 0, err
	}

	var id int64
	err = tx(ctx, r.db, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, `
INSERT INTO game_sessions (tactic_id, difficulty, items, answers, started_at, ended_at, score, accuracy)
VALUES (?, ?, ?, ?, ?, ?, ?, ?)
`, session.TacticID, session.Difficulty, string(items), string(answers), session.StartedAt, session.EndedAt, session.Score, session.Accuracy)
		if err != nil {
			log.Error("failed to insert session: %v", err)
			return err
		}
		id, err = res.LastInsertId()
		if err != nil {
			log.Error("failed to get session id: %v", err)
			return err
		}

		// Oldest sessions go first; insertion order is the rowid order.
		_, err = tx.ExecContext(ctx, `
DELETE FROM game_sessions
WHERE id NOT IN (
    SELECT id FROM game_sessions
    ORDER BY id DESC
    LIMIT ?
)
`, repository.MaxRecentSessions)
		if err != nil {
			log.Error("failed to trim sessions: %v", err)
		}
		return err
	})
	if err != nil {
		return 0, err
	}
	log.Debug("session appended: id=%d", id)
	return id, nil
}

func (r *resultsRepository) ListSessions(ctx context.Context) ([]models.GameSession, error) {
	log := logger.FromContext(ctx).WithPrefix("results_repo")
	log.Debug("listing recent sessions")

	rows, err := r.db.QueryContext(ctx, `
SELECT id, tactic_id, difficulty, items, answers, started_at, ended_at, score, accuracy
FROM game_sessions
ORDER BY id ASC
`)
	if err != nil {
		log.Error("failed to list sessions: %v", err)
		return nil, err
	}
	defer rows.Close()

	var sessions []models.GameSession
	for rows.Next() {
		var s models.GameSession
		var items, answers string
		if err := rows.Scan(&s.ID, &s.TacticID, &s.Difficulty, &items, &answers, &s.StartedAt, &s.EndedAt, &s.Score, &s.Accuracy); err != nil {
			log.Error("failed to scan session row: %v", err)
			return nil, err
		}
		if err := json.Unmarshal([]byte(items), &s.Items); err != nil {
			log.Error("failed to unmarshal session items: %v", err)
			return nil, err
		}
		if err := json.Unmarshal([]byte(answers), &s.Answers); err != nil {
			log.Error("failed to unmarshal session answers: %v", err)
			return nil, err
		}
		sessions = append(sessions, s)
	}
	log.Debug("found %d sessions", len(sessions))
	return sessions, rows.Err()
}
