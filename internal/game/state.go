package game

import "github.com/hichamcc/Memory-Training-Game/internal/models"

// PromptView is one recall prompt in ask order.
type PromptView struct {
	Key      string `json:"key"`
	Prompt   string `json:"prompt"`
	Answered bool   `json:"answered"`
}

// ResultsView is the frozen scoreboard shown in the results phase.
type ResultsView struct {
	Score          int          `json:"score"`
	Accuracy       int          `json:"accuracy"`
	CorrectCount   int          `json:"correct_count"`
	TotalCount     int          `json:"total_count"`
	ElapsedSeconds int          `json:"elapsed_seconds"`
	Results        []UnitResult `json:"results"`
}

// State is a phase-specific view of a session. Only what the current
// phase should reveal is populated: the memorize display never appears
// during recall, answers never appear before results.
type State struct {
	VariantID     string                 `json:"variant_id"`
	Difficulty    models.DifficultyLevel `json:"difficulty"`
	Phase         models.Phase           `json:"phase"`
	Learning      bool                   `json:"learning,omitempty"`
	ItemCount     int                    `json:"item_count"`
	PerItem       int                    `json:"per_item_seconds"`
	UnitIndex     int                    `json:"unit_index,omitempty"`
	UnitCount     int                    `json:"unit_count,omitempty"`
	TimeLeft      int                    `json:"time_left,omitempty"`
	RecallLeft    int                    `json:"recall_left,omitempty"`
	Display       string                 `json:"display,omitempty"`
	Reference     []ReferenceEntry       `json:"reference,omitempty"`
	Prompts       []PromptView           `json:"prompts,omitempty"`
	AnsweredCount int                    `json:"answered_count"`
	Results       *ResultsView           `json:"results,omitempty"`
}

// Snapshot returns the current phase view of the session.
func (e *Engine) Snapshot() State {
	e.mu.Lock()
	defer e.mu.Unlock()

	st := State{
		VariantID:     e.variant.ID,
		Difficulty:    e.difficulty,
		Phase:         e.phase,
		Learning:      e.learning,
		ItemCount:     e.cfg.ItemCount,
		PerItem:       e.cfg.PerItemSeconds,
		AnsweredCount: len(e.answers),
	}

	switch e.phase {
	case models.PhaseMemorize:
		if e.learning {
			st.Reference = e.variant.Reference
			return st
		}
		st.UnitIndex = e.unitIndex
		st.UnitCount = len(e.stimulus.Units)
		st.TimeLeft = e.timeLeft
		st.Display = e.stimulus.Units[e.unitIndex].Display

	case models.PhaseRecall:
		st.UnitCount = len(e.stimulus.Units)
		st.RecallLeft = e.recallLeft
		for _, idx := range e.stimulus.RecallOrder {
			u := e.stimulus.Units[idx]
			_, answered := e.answers[u.Key]
			st.Prompts = append(st.Prompts, PromptView{Key: u.Key, Prompt: u.Prompt, Answered: answered})
		}

	case models.PhaseResults:
		if e.outcome != nil {
			st.Results = &ResultsView{
				Score:          e.outcome.Score.Score,
				Accuracy:       RoundAccuracy(e.outcome.Score.Accuracy),
				CorrectCount:   e.outcome.CorrectCount,
				TotalCount:     e.outcome.TotalCount,
				ElapsedSeconds: e.outcome.ElapsedSeconds,
				Results:        e.outcome.Results,
			}
		}
	}
	return st
}
