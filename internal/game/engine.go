package game

import (
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/hichamcc/Memory-Training-Game/internal/errors"
	"github.com/hichamcc/Memory-Training-Game/internal/models"
)

// Outcome is the frozen result of a completed session, produced exactly
// once at the recall→results transition.
type Outcome struct {
	VariantID      string
	Difficulty     models.DifficultyLevel
	Items          []string
	Answers        []string // submission order
	Results        []UnitResult
	CorrectCount   int
	TotalCount     int
	ElapsedSeconds int
	Score          models.ScoreResult
	StartedAt      time.Time
	EndedAt        time.Time
	Forced         bool // recall countdown expired before all answers arrived
}

// CompletionFunc receives the outcome of a completed session. It is
// invoked once, outside the engine lock.
type CompletionFunc func(Outcome)

// Engine drives one practice session through intro → memorize → recall →
// results. The only backward edge is Reset, which reinitializes the
// session wholesale. All state is guarded by one mutex; countdown ticks
// carry a generation number so a tick scheduled before a transition or
// reset can never touch the session that superseded it.
type Engine struct {
	mu         sync.Mutex
	variant    *Variant
	cfg        Config
	difficulty models.DifficultyLevel
	rng        *rand.Rand
	now        func() time.Time
	manual     bool
	onComplete CompletionFunc

	phase       models.Phase
	learning    bool
	stimulus    *Stimulus
	unitIndex   int
	timeLeft    int
	recallLeft  int
	answers     map[string]string
	answerOrder []string
	startedAt   time.Time
	outcome     *Outcome
	gen         int
}

// EngineOption configures an Engine.
type EngineOption func(*Engine)

// WithRand injects the randomness source used for stimulus generation.
func WithRand(rng *rand.Rand) EngineOption {
	return func(e *Engine) { e.rng = rng }
}

// WithClock injects the time source.
func WithClock(now func() time.Time) EngineOption {
	return func(e *Engine) { e.now = now }
}

// WithManualTimer disables the scheduled countdown; ticks are applied by
// calling Tick explicitly. Used by tests.
func WithManualTimer() EngineOption {
	return func(e *Engine) { e.manual = true }
}

// WithCompletion registers the hook fired at the recall→results transition.
func WithCompletion(fn CompletionFunc) EngineOption {
	return func(e *Engine) { e.onComplete = fn }
}

// NewEngine creates an engine for one variant at one difficulty. The
// parameters are fixed for the engine's lifetime; starting over with a
// different difficulty means a new engine.
func NewEngine(variant *Variant, difficulty models.DifficultyLevel, opts ...EngineOption) (*Engine, error) {
	cfg, ok := variant.ConfigFor(difficulty)
	if !ok {
		return nil, errors.NewValidationError("difficulty", "must be 'Beginner', 'Intermediate', or 'Advanced'")
	}
	if cfg.ItemCount <= 0 {
		return nil, errors.NewValidationError("config", "item count must be positive")
	}
	e := &Engine{
		variant:    variant,
		cfg:        cfg,
		difficulty: difficulty,
		now:        time.Now,
		phase:      models.PhaseIntro,
		answers:    map[string]string{},
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.rng == nil {
		e.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return e, nil
}

// Start is the explicit start signal from intro. Learning-step variants
// idle in memorize showing their reference table until Begin; everything
// else generates the stimulus and starts the countdown immediately.
func (e *Engine) Start() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.phase != models.PhaseIntro {
		return errors.NewConflictError("session already started")
	}
	if e.variant.LearningStep {
		e.phase = models.PhaseMemorize
		e.learning = true
		return nil
	}
	return e.beginMemorizeLocked()
}

// Begin leaves the learning step and starts the memorize countdown.
func (e *Engine) Begin() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.phase != models.PhaseMemorize || !e.learning {
		return errors.NewConflictError("session is not in the learning step")
	}
	return e.beginMemorizeLocked()
}

func (e *Engine) beginMemorizeLocked() error {
	stim, err := e.variant.Generator(e.rng, e.cfg)
	if err != nil {
		return errors.NewInternalError(err)
	}
	e.gen++
	e.phase = models.PhaseMemorize
	e.learning = false
	e.stimulus = stim
	e.unitIndex = 0
	e.startedAt = e.now()
	e.timeLeft = e.cfg.PerItemSeconds
	if e.timeLeft > 0 {
		e.scheduleTick(e.gen)
	}
	return nil
}

// Advance moves an untimed memorize session (per-item seconds of zero) to
// the next unit, or into recall after the last one. Timed sessions advance
// only by countdown.
func (e *Engine) Advance() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.phase != models.PhaseMemorize || e.learning {
		return errors.NewConflictError("session is not memorizing")
	}
	if e.cfg.PerItemSeconds > 0 {
		return errors.NewConflictError("timed sessions advance automatically")
	}
	if e.unitIndex < len(e.stimulus.Units)-1 {
		e.unitIndex++
		return nil
	}
	e.enterRecallLocked()
	return nil
}

func (e *Engine) scheduleTick(gen int) {
	if e.manual {
		return
	}
	time.AfterFunc(time.Second, func() { e.timerTick(gen) })
}

func (e *Engine) timerTick(gen int) {
	e.mu.Lock()
	if gen != e.gen {
		// A transition or reset superseded this countdown.
		e.mu.Unlock()
		return
	}
	out := e.tickLocked()
	e.mu.Unlock()
	e.fire(out)
}

// Tick applies one countdown second. Only meaningful with WithManualTimer;
// with the scheduled timer the engine ticks itself.
func (e *Engine) Tick() {
	e.mu.Lock()
	out := e.tickLocked()
	e.mu.Unlock()
	e.fire(out)
}

func (e *Engine) tickLocked() *Outcome {
	switch {
	case e.phase == models.PhaseMemorize && !e.learning && e.timeLeft > 0:
		e.timeLeft--
		if e.timeLeft > 0 {
			e.scheduleTick(e.gen)
			return nil
		}
		if e.unitIndex < len(e.stimulus.Units)-1 {
			e.unitIndex++
			e.timeLeft = e.cfg.PerItemSeconds
			e.scheduleTick(e.gen)
			return nil
		}
		e.enterRecallLocked()
		return nil

	case e.phase == models.PhaseRecall && e.recallLeft > 0:
		e.recallLeft--
		if e.recallLeft > 0 {
			e.scheduleTick(e.gen)
			return nil
		}
		// Time is up: score whatever was submitted.
		return e.completeLocked(true)

	default:
		return nil
	}
}

func (e *Engine) enterRecallLocked() {
	e.gen++
	e.phase = models.PhaseRecall
	e.timeLeft = 0
	e.recallLeft = e.cfg.RecallSeconds
	if e.recallLeft > 0 {
		e.scheduleTick(e.gen)
	}
}

// Submit records one answer during recall, keyed by unit. Empty or
// whitespace-only answers, unknown keys, duplicate keys and out-of-phase
// submissions are rejected without any state change. The session completes
// when every unit has an answer.
func (e *Engine) Submit(key, answer string) error {
	e.mu.Lock()

	if e.phase != models.PhaseRecall {
		e.mu.Unlock()
		return errors.NewConflictError("answers are only accepted during recall")
	}
	trimmed := strings.TrimSpace(answer)
	if trimmed == "" {
		e.mu.Unlock()
		return errors.NewValidationError("answer", "cannot be empty")
	}
	if !e.hasUnitLocked(key) {
		e.mu.Unlock()
		return errors.NewValidationError("key", "unknown unit key")
	}
	if _, dup := e.answers[key]; dup {
		e.mu.Unlock()
		return errors.NewValidationError("key", "unit already answered")
	}

	e.answers[key] = trimmed
	e.answerOrder = append(e.answerOrder, trimmed)

	var out *Outcome
	if len(e.answers) == len(e.stimulus.Units) {
		out = e.completeLocked(false)
	}
	e.mu.Unlock()
	e.fire(out)
	return nil
}

func (e *Engine) hasUnitLocked(key string) bool {
	for _, u := range e.stimulus.Units {
		if u.Key == key {
			return true
		}
	}
	return false
}

func (e *Engine) completeLocked(forced bool) *Outcome {
	if e.phase == models.PhaseResults {
		return nil
	}
	e.gen++
	e.phase = models.PhaseResults
	endedAt := e.now()

	results := e.variant.Evaluator(e.stimulus.Units, e.answers)
	correct := 0
	for _, r := range results {
		if r.Correct {
			correct++
		}
	}
	elapsed := int(endedAt.Sub(e.startedAt) / time.Second)

	out := &Outcome{
		VariantID:      e.variant.ID,
		Difficulty:     e.difficulty,
		Items:          e.stimulus.Items(),
		Answers:        append([]string(nil), e.answerOrder...),
		Results:        results,
		CorrectCount:   correct,
		TotalCount:     len(results),
		ElapsedSeconds: elapsed,
		Score:          Score(correct, len(results), elapsed, e.difficulty),
		StartedAt:      e.startedAt,
		EndedAt:        endedAt,
		Forced:         forced,
	}
	e.outcome = out
	return out
}

func (e *Engine) fire(out *Outcome) {
	if out != nil && e.onComplete != nil {
		e.onComplete(*out)
	}
}

// Reset returns the engine to intro, discarding all session state. Valid
// from any phase: resetting mid-session abandons it and nothing is
// persisted for it.
func (e *Engine) Reset() {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.gen++
	e.phase = models.PhaseIntro
	e.learning = false
	e.stimulus = nil
	e.unitIndex = 0
	e.timeLeft = 0
	e.recallLeft = 0
	e.answers = map[string]string{}
	e.answerOrder = nil
	e.startedAt = time.Time{}
	e.outcome = nil
}

// Outcome returns the frozen result of a completed session, or nil.
// Reading it does not re-trigger the completion hook or persistence.
func (e *Engine) Outcome() *Outcome {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.outcome == nil {
		return nil
	}
	out := *e.outcome
	return &out
}

