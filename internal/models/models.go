package models

import "time"

// DifficultyLevel selects the parameter row in a variant's config table.
type DifficultyLevel string

const (
	Beginner     DifficultyLevel = "Beginner"
	Intermediate DifficultyLevel = "Intermediate"
	Advanced     DifficultyLevel = "Advanced"
)

// Levels lists all difficulty levels from easiest to hardest.
func Levels() []DifficultyLevel {
	return []DifficultyLevel{Beginner, Intermediate, Advanced}
}

// Valid reports whether d is a known difficulty level.
func (d DifficultyLevel) Valid() bool {
	switch d {
	case Beginner, Intermediate, Advanced:
		return true
	}
	return false
}

// Phase is the lifecycle stage of a practice session. Phases are strictly
// ordered; the only backward edge is a full reset to PhaseIntro.
type Phase string

const (
	PhaseIntro    Phase = "intro"
	PhaseMemorize Phase = "memorize"
	PhaseRecall   Phase = "recall"
	PhaseResults  Phase = "results"
)

// Tactic is one entry of the static technique catalog.
type Tactic struct {
	ID               string          `json:"id"`
	Name             string          `json:"name"`
	ShortDescription string          `json:"short_description"`
	FullDescription  string          `json:"full_description"`
	Difficulty       DifficultyLevel `json:"difficulty"`
	BestFor          string          `json:"best_for"`
	Steps            []string        `json:"steps"`
	Examples         []string        `json:"examples"`
	Tips             []string        `json:"tips"`
	Icon             string          `json:"icon"`
}

// ScoreResult is the output of the scoring model. Accuracy stays a float
// here; it is rounded once when a record is built for storage.
type ScoreResult struct {
	Score    int     `json:"score"`
	Accuracy float64 `json:"accuracy"`
}

// HighScore is one entry of the append-only high-score log.
type HighScore struct {
	ID         string          `json:"id"`
	TacticID   string          `json:"tactic_id"`
	Score      int             `json:"score"`
	Accuracy   int             `json:"accuracy"`
	Difficulty DifficultyLevel `json:"difficulty"`
	CreatedAt  time.Time       `json:"created_at"`
}

// HighScoreFilter narrows high-score listings.
type HighScoreFilter struct {
	TacticID   string
	Difficulty DifficultyLevel
	Limit      int
}

// GameSession is one entry of the recent-session log.
type GameSession struct {
	ID         int64           `json:"id"`
	TacticID   string          `json:"tactic_id"`
	Difficulty DifficultyLevel `json:"difficulty"`
	Items      []string        `json:"items_to_memorize"`
	Answers    []string        `json:"user_answers"`
	StartedAt  time.Time       `json:"start_time"`
	EndedAt    time.Time       `json:"end_time"`
	Score      int             `json:"score"`
	Accuracy   int             `json:"accuracy"`
}
