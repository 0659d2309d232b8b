package game

import (
	"math"

	"github.com/hichamcc/Memory-Training-Game/internal/models"
)

// Score converts a recall outcome into points and accuracy. Every variant
// goes through this one formula. Accuracy is returned unrounded; callers
// round once when building storage records.
//
// Callers must never invoke this with totalCount == 0.
func Score(correctCount, totalCount, elapsedSeconds int, difficulty models.DifficultyLevel) models.ScoreResult {
	accuracy := float64(correctCount) / float64(totalCount) * 100

	basePoints := correctCount * 10

	// Finishing under five minutes earns up to 30 bonus points.
	timeBonus := (300 - elapsedSeconds) / 10
	if timeBonus < 0 {
		timeBonus = 0
	}

	finalScore := int(math.Floor(float64(basePoints+timeBonus) * Multiplier(difficulty)))

	return models.ScoreResult{
		Score:    finalScore,
		Accuracy: accuracy,
	}
}

// Multiplier returns the score multiplier for a difficulty level.
func Multiplier(d models.DifficultyLevel) float64 {
	switch d {
	case models.Intermediate:
		return 1.5
	case models.Advanced:
		return 2.0
	default:
		return 1.0
	}
}

// RoundAccuracy rounds an accuracy percentage to the nearest integer for
// storage and presentation.
func RoundAccuracy(accuracy float64) int {
	return int(math.Round(accuracy))
}
