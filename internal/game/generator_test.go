package game_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hichamcc/Memory-Training-Game/internal/game"
	"github.com/hichamcc/Memory-Training-Game/internal/models"
)

func generate(t *testing.T, variantID string, difficulty models.DifficultyLevel, seed int64) (*game.Stimulus, game.Config) {
	t.Helper()
	variant, ok := game.Lookup(variantID)
	require.True(t, ok, "variant %s must be registered", variantID)
	cfg, ok := variant.ConfigFor(difficulty)
	require.True(t, ok)

	stim, err := variant.Generator(rand.New(rand.NewSource(seed)), cfg)
	require.NoError(t, err)
	return stim, cfg
}

func TestGenerateWordList_DistinctWords(t *testing.T) {
	stim, cfg := generate(t, "linking-method", models.Advanced, 1)

	require.Len(t, stim.Units, cfg.ItemCount)
	seen := map[string]bool{}
	for _, u := range stim.Units {
		assert.NotEmpty(t, u.Answer)
		assert.False(t, seen[u.Answer], "word %q repeated", u.Answer)
		seen[u.Answer] = true
	}
	assert.Equal(t, len(stim.Units), len(stim.RecallOrder))
}

func TestGenerateWordList_Deterministic(t *testing.T) {
	first, _ := generate(t, "linking-method", models.Beginner, 7)
	second, _ := generate(t, "linking-method", models.Beginner, 7)

	assert.Equal(t, first.Items(), second.Items())
}

func TestGeneratePalace_RecallInPresentationOrder(t *testing.T) {
	stim, cfg := generate(t, "memory-palace", models.Intermediate, 2)

	require.Len(t, stim.Units, cfg.ItemCount)
	for i, idx := range stim.RecallOrder {
		assert.Equal(t, i, idx, "palace walks its rooms in order")
	}
	for _, u := range stim.Units {
		assert.NotEmpty(t, u.Prompt)
		assert.NotEqual(t, u.Answer, u.Prompt, "prompt must not give the answer away")
	}
}

func TestGeneratePegs_ShuffledRecall(t *testing.T) {
	stim, cfg := generate(t, "peg-system", models.Intermediate, 3)

	require.Len(t, stim.Units, cfg.ItemCount)
	seen := map[int]bool{}
	for _, idx := range stim.RecallOrder {
		require.GreaterOrEqual(t, idx, 0)
		require.Less(t, idx, len(stim.Units))
		assert.False(t, seen[idx])
		seen[idx] = true
	}
}

func TestGenerateChunking_SingleSequence(t *testing.T) {
	stim, cfg := generate(t, "chunking", models.Advanced, 4)

	require.Len(t, stim.Units, 1)
	unit := stim.Units[0]
	assert.Len(t, unit.Answer, cfg.DigitsPerRound)
	for _, r := range unit.Answer {
		assert.True(t, r >= '0' && r <= '9')
	}
	// 16 digits in chunks of 4 display as four groups.
	assert.Contains(t, unit.Display, " ")
}

func TestGenerateMajor_PromptCarriesNumber(t *testing.T) {
	stim, cfg := generate(t, "major-system", models.Beginner, 5)

	require.Len(t, stim.Units, cfg.ItemCount)
	for _, u := range stim.Units {
		assert.Len(t, u.Answer, cfg.DigitsPerRound)
		assert.Contains(t, u.Prompt, u.Answer, "recall asks for a word encoding the shown number")
	}
}

func TestGeneratePAO_PairComposition(t *testing.T) {
	stim, cfg := generate(t, "pao-system", models.Advanced, 6)

	require.Len(t, stim.Units, cfg.ItemCount)
	for _, u := range stim.Units {
		require.Len(t, u.Answer, cfg.DigitsPerRound)
		// Table pairs are doubled digits, so the sequence is too.
		for i := 0; i+1 < len(u.Answer); i += 2 {
			assert.Equal(t, u.Answer[i], u.Answer[i+1])
		}
	}
}

func TestGenerateDominic_SequencePerRound(t *testing.T) {
	stim, cfg := generate(t, "dominic-system", models.Intermediate, 8)

	require.Len(t, stim.Units, cfg.ItemCount)
	for _, u := range stim.Units {
		assert.Len(t, u.Answer, cfg.DigitsPerRound)
		assert.Contains(t, u.Display, u.Answer)
	}
}

func TestGenerateFaces_DistinctPeople(t *testing.T) {
	stim, cfg := generate(t, "face-name", models.Advanced, 9)

	require.Len(t, stim.Units, cfg.ItemCount)
	seen := map[string]bool{}
	for _, u := range stim.Units {
		assert.False(t, seen[u.Key], "person %s sampled twice", u.Key)
		seen[u.Key] = true
		assert.NotEmpty(t, u.Answer)
	}
}

func TestStimulusItems_PresentationOrder(t *testing.T) {
	stim, _ := generate(t, "linking-method", models.Beginner, 10)

	items := stim.Items()
	require.Len(t, items, len(stim.Units))
	for i, u := range stim.Units {
		assert.Equal(t, u.Answer, items[i])
	}
}
