package game

import (
	"fmt"

	"github.com/hichamcc/Memory-Training-Game/internal/models"
)

// Config holds the difficulty-dependent parameters of one variant.
// Invariant across a variant's table: payload grows and per-item time
// shrinks (monotonically) as difficulty rises.
type Config struct {
	ItemCount      int // units generated (rounds, for the round-based variants)
	PerItemSeconds int // memorize countdown per unit; 0 skips straight to recall
	DigitsPerRound int // digit-sequence variants: digits per unit
	ChunkSize      int // chunking: display grouping
	RecallSeconds  int // total recall countdown; 0 = untimed recall
}

// TotalUnits is the payload size used for difficulty comparisons: digits
// for digit variants, items otherwise.
func (c Config) TotalUnits() int {
	if c.DigitsPerRound > 0 {
		return c.ItemCount * c.DigitsPerRound
	}
	return c.ItemCount
}

// ReferenceEntry is one row of a variant's learning table (pegs, sounds,
// PAO scenes...), shown during the untimed learning step.
type ReferenceEntry struct {
	Label string `json:"label"`
	Value string `json:"value"`
	Hint  string `json:"hint,omitempty"`
}

// Variant binds a tactic id to its generator, evaluator and parameters.
// The registry replaces per-variant branching in the engine.
type Variant struct {
	ID            string
	Generator     Generator
	Evaluator     Evaluator
	Configs       map[models.DifficultyLevel]Config
	LearningStep  bool // reference table shown untimed before the countdown
	ShuffleRecall bool
	Reference     []ReferenceEntry
}

var registry = map[string]*Variant{
	"linking-method": {
		ID:        "linking-method",
		Generator: generateWordList,
		Evaluator: EvaluateExact,
		Configs: map[models.DifficultyLevel]Config{
			models.Beginner:     {ItemCount: 5, PerItemSeconds: 5},
			models.Intermediate: {ItemCount: 8, PerItemSeconds: 3, RecallSeconds: 120},
			models.Advanced:     {ItemCount: 12, PerItemSeconds: 2, RecallSeconds: 90},
		},
	},
	"memory-palace": {
		ID:        "memory-palace",
		Generator: generatePalace,
		Evaluator: EvaluateExact,
		Configs: map[models.DifficultyLevel]Config{
			models.Beginner:     {ItemCount: 5, PerItemSeconds: 6},
			models.Intermediate: {ItemCount: 8, PerItemSeconds: 4, RecallSeconds: 150},
			models.Advanced:     {ItemCount: 12, PerItemSeconds: 3, RecallSeconds: 120},
		},
	},
	"peg-system": {
		ID:            "peg-system",
		Generator:     generatePegs,
		Evaluator:     EvaluateExact,
		LearningStep:  true,
		ShuffleRecall: true,
		Configs: map[models.DifficultyLevel]Config{
			models.Beginner:     {ItemCount: 5, PerItemSeconds: 5},
			models.Intermediate: {ItemCount: 8, PerItemSeconds: 3, RecallSeconds: 120},
			models.Advanced:     {ItemCount: 10, PerItemSeconds: 2, RecallSeconds: 90},
		},
		Reference: pegReference(),
	},
	"chunking": {
		ID:        "chunking",
		Generator: generateChunking,
		Evaluator: EvaluateDigits,
		Configs: map[models.DifficultyLevel]Config{
			models.Beginner:     {ItemCount: 1, PerItemSeconds: 8, DigitsPerRound: 9, ChunkSize: 3},
			models.Intermediate: {ItemCount: 1, PerItemSeconds: 6, DigitsPerRound: 12, ChunkSize: 3, RecallSeconds: 120},
			models.Advanced:     {ItemCount: 1, PerItemSeconds: 5, DigitsPerRound: 16, ChunkSize: 4, RecallSeconds: 90},
		},
	},
	"major-system": {
		ID:           "major-system",
		Generator:    generateMajor,
		Evaluator:    EvaluateWordLength,
		LearningStep: true,
		Configs: map[models.DifficultyLevel]Config{
			models.Beginner:     {ItemCount: 3, PerItemSeconds: 20, DigitsPerRound: 2},
			models.Intermediate: {ItemCount: 5, PerItemSeconds: 15, DigitsPerRound: 2},
			models.Advanced:     {ItemCount: 5, PerItemSeconds: 15, DigitsPerRound: 3},
		},
		Reference: majorReference(),
	},
	"pao-system": {
		ID:           "pao-system",
		Generator:    generatePAO,
		Evaluator:    EvaluateSequence,
		LearningStep: true,
		Configs: map[models.DifficultyLevel]Config{
			models.Beginner:     {ItemCount: 3, PerItemSeconds: 10, DigitsPerRound: 4},
			models.Intermediate: {ItemCount: 5, PerItemSeconds: 8, DigitsPerRound: 4},
			models.Advanced:     {ItemCount: 5, PerItemSeconds: 8, DigitsPerRound: 6},
		},
		Reference: paoReference(),
	},
	"face-name": {
		ID:            "face-name",
		Generator:     generateFaces,
		Evaluator:     EvaluateExact,
		ShuffleRecall: true,
		Configs: map[models.DifficultyLevel]Config{
			models.Beginner:     {ItemCount: 5, PerItemSeconds: 6},
			models.Intermediate: {ItemCount: 8, PerItemSeconds: 4},
			models.Advanced:     {ItemCount: 12, PerItemSeconds: 3},
		},
	},
	"dominic-system": {
		ID:           "dominic-system",
		Generator:    generateDominic,
		Evaluator:    EvaluateDigits,
		LearningStep: true,
		Configs: map[models.DifficultyLevel]Config{
			models.Beginner:     {ItemCount: 3, PerItemSeconds: 10, DigitsPerRound: 4},
			models.Intermediate: {ItemCount: 4, PerItemSeconds: 8, DigitsPerRound: 4},
			models.Advanced:     {ItemCount: 5, PerItemSeconds: 6, DigitsPerRound: 6},
		},
		Reference: dominicReference(),
	},
}

// Lookup returns the variant registered for a tactic id.
func Lookup(id string) (*Variant, bool) {
	v, ok := registry[id]
	return v, ok
}

// VariantIDs returns all registered variant ids.
func VariantIDs() []string {
	ids := make([]string, 0, len(registry))
	for id := range registry {
		ids = append(ids, id)
	}
	return ids
}

// ConfigFor returns the parameters for a variant at a difficulty.
func (v *Variant) ConfigFor(d models.DifficultyLevel) (Config, bool) {
	cfg, ok := v.Configs[d]
	return cfg, ok
}

func pegReference() []ReferenceEntry {
	entries := make([]ReferenceEntry, len(pegRhymes))
	for i, p := range pegRhymes {
		entries[i] = ReferenceEntry{
			Label: fmt.Sprintf("%d", p.Number),
			Value: p.Rhyme,
			Hint:  p.Icon,
		}
	}
	return entries
}

func majorReference() []ReferenceEntry {
	entries := make([]ReferenceEntry, len(majorSounds))
	for i, m := range majorSounds {
		entries[i] = ReferenceEntry{
			Label: fmt.Sprintf("%d", m.Digit),
			Value: m.Sounds,
			Hint:  m.Examples,
		}
	}
	return entries
}

func paoReference() []ReferenceEntry {
	entries := make([]ReferenceEntry, len(paoTable))
	for i, p := range paoTable {
		entries[i] = ReferenceEntry{
			Label: p.Number,
			Value: fmt.Sprintf("%s / %s / %s", p.Person, p.Action, p.Object),
			Hint:  p.Emoji,
		}
	}
	return entries
}

func dominicReference() []ReferenceEntry {
	entries := make([]ReferenceEntry, len(dominicTable))
	for i, d := range dominicTable {
		entries[i] = ReferenceEntry{
			Label: d.Digit,
			Value: fmt.Sprintf("%s (%s)", d.Person, d.Action),
			Hint:  d.Initials,
		}
	}
	return entries
}
