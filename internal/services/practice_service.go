package services

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"

	"github.com/hichamcc/Memory-Training-Game/internal/errors"
	"github.com/hichamcc/Memory-Training-Game/internal/game"
	"github.com/hichamcc/Memory-Training-Game/internal/logger"
	"github.com/hichamcc/Memory-Training-Game/internal/models"
	"github.com/hichamcc/Memory-Training-Game/internal/repository"
	"github.com/hichamcc/Memory-Training-Game/internal/tactics"
)

// PracticeService handles practice session lifecycle and persistence of
// completed results
type PracticeService interface {
	StartSession(ctx context.Context, tacticID string, difficulty models.DifficultyLevel) (string, game.State, error)
	GetState(ctx context.Context, id string) (game.State, error)
	Begin(ctx context.Context, id string) (game.State, error)
	Submit(ctx context.Context, id string, key, answer string) (game.State, error)
	Reset(ctx context.Context, id string) (game.State, error)
}

type practiceSession struct {
	engine    *game.Engine
	tacticID  string
	touchedAt time.Time
}

type practiceService struct {
	mu          sync.Mutex
	sessions    map[string]*practiceSession
	repo        repository.ResultsRepository
	ttl         time.Duration
	maxSessions int
	now         func() time.Time
	engineOpts  []game.EngineOption
}

// PracticeOption configures a PracticeService.
type PracticeOption func(*practiceService)

// WithPracticeClock injects the time source used for session expiry.
func WithPracticeClock(now func() time.Time) PracticeOption {
	return func(s *practiceService) { s.now = now }
}

// WithEngineOptions forwards options to every engine the service creates.
// Used by tests to run engines on a manual timer.
func WithEngineOptions(opts ...game.EngineOption) PracticeOption {
	return func(s *practiceService) { s.engineOpts = opts }
}

// NewPracticeService creates a new PracticeService. Sessions idle longer
// than ttl are dropped; at most maxSessions exist at once.
func NewPracticeService(repo repository.ResultsRepository, ttl time.Duration, maxSessions int, opts ...PracticeOption) PracticeService {
	s := &practiceService{
		sessions:    make(map[string]*practiceSession),
		repo:        repo,
		ttl:         ttl,
		maxSessions: maxSessions,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *practiceService) StartSession(ctx context.Context, tacticID string, difficulty models.DifficultyLevel) (string, game.State, error) {
	log := logger.FromContext(ctx)
	log.Debug("starting practice session: tactic=%s, difficulty=%s", tacticID, difficulty)

	if tactics.ByID(tacticID) == nil {
		return "", game.State{}, errors.NewNotFoundError("tactic", tacticID)
	}
	variant, ok := game.Lookup(tacticID)
	if !ok {
		return "", game.State{}, errors.NewNotFoundError("tactic", tacticID)
	}
	if !difficulty.Valid() {
		return "", game.State{}, errors.NewValidationError("difficulty", "must be 'Beginner', 'Intermediate', or 'Advanced'")
	}

	opts := append([]game.EngineOption{game.WithCompletion(s.persist(tacticID))}, s.engineOpts...)
	engine, err := game.NewEngine(variant, difficulty, opts...)
	if err != nil {
		return "", game.State{}, err
	}

	s.mu.Lock()
	s.pruneLocked()
	if len(s.sessions) >= s.maxSessions {
		s.mu.Unlock()
		return "", game.State{}, errors.NewConflictError("too many active sessions")
	}
	id := uuid.NewString()
	s.sessions[id] = &practiceSession{engine: engine, tacticID: tacticID, touchedAt: s.now()}
	s.mu.Unlock()

	if err := engine.Start(); err != nil {
		return "", game.State{}, err
	}
	log.Info("practice session started: id=%s, tactic=%s, difficulty=%s", id, tacticID, difficulty)
	return id, engine.Snapshot(), nil
}

func (s *practiceService) GetState(ctx context.Context, id string) (game.State, error) {
	sess, err := s.lookup(id)
	if err != nil {
		return game.State{}, err
	}
	return sess.engine.Snapshot(), nil
}

func (s *practiceService) Begin(ctx context.Context, id string) (game.State, error) {
	log := logger.FromContext(ctx)
	log.Debug("leaving learning step: session=%s", id)

	sess, err := s.lookup(id)
	if err != nil {
		return game.State{}, err
	}
	if err := sess.engine.Begin(); err != nil {
		return game.State{}, err
	}
	return sess.engine.Snapshot(), nil
}

func (s *practiceService) Submit(ctx context.Context, id string, key, answer string) (game.State, error) {
	log := logger.FromContext(ctx)
	log.Debug("submitting answer: session=%s, key=%s", id, key)

	sess, err := s.lookup(id)
	if err != nil {
		return game.State{}, err
	}
	if err := sess.engine.Submit(key, answer); err != nil {
		return game.State{}, err
	}
	return sess.engine.Snapshot(), nil
}

func (s *practiceService) Reset(ctx context.Context, id string) (game.State, error) {
	log := logger.FromContext(ctx)
	log.Debug("resetting session: session=%s", id)

	sess, err := s.lookup(id)
	if err != nil {
		return game.State{}, err
	}
	sess.engine.Reset()
	return sess.engine.Snapshot(), nil
}

func (s *practiceService) lookup(id string) (*practiceSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.pruneLocked()
	sess, ok := s.sessions[id]
	if !ok {
		return nil, errors.NewNotFoundError("practice session", id)
	}
	sess.touchedAt = s.now()
	return sess, nil
}

func (s *practiceService) pruneLocked() {
	cutoff := s.now().Add(-s.ttl)
	for id, sess := range s.sessions {
		if sess.touchedAt.Before(cutoff) {
			delete(s.sessions, id)
		}
	}
}

// persist builds the completion hook for one session. Results are stored
// best effort: a storage failure is logged, never surfaced to the player.
func (s *practiceService) persist(tacticID string) game.CompletionFunc {
	return func(out game.Outcome) {
		ctx := context.Background()
		log := logger.Default().WithPrefix("practice")

		score := models.HighScore{
			ID:         ulid.Make().String(),
			TacticID:   tacticID,
			Score:      out.Score.Score,
			Accuracy:   game.RoundAccuracy(out.Score.Accuracy),
			Difficulty: out.Difficulty,
			CreatedAt:  out.EndedAt,
		}
		if err := s.repo.AppendHighScore(ctx, score); err != nil {
			log.Warn("failed to persist high score: %v", err)
		}

		session := models.GameSession{
			TacticID:   tacticID,
			Difficulty: out.Difficulty,
			Items:      out.Items,
			Answers:    out.Answers,
			StartedAt:  out.StartedAt,
			EndedAt:    out.EndedAt,
			Score:      out.Score.Score,
			Accuracy:   game.RoundAccuracy(out.Score.Accuracy),
		}
		if _, err := s.repo.AppendSession(ctx, session); err != nil {
			log.Warn("failed to persist session record: %v", err)
		}
	}
}
