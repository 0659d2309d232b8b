package game

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"
)

// Unit is one recallable item of a stimulus. Digit-sequence variants pack a
// whole round into one unit; the evaluator expands it to per-digit results.
type Unit struct {
	Key     string `json:"key"`     // submission key (index, location id, peg number, round id)
	Prompt  string `json:"prompt"`  // shown when asking for this unit during recall
	Display string `json:"display"` // shown during memorization
	Answer  string `json:"-"`       // canonical correct answer, never sent to the client mid-session
}

// Stimulus is the generated content of one session, in presentation order.
// RecallOrder indexes Units in the order they are asked; most variants ask
// in presentation order, some shuffle.
type Stimulus struct {
	Units       []Unit
	RecallOrder []int
}

// Items returns the canonical answers in presentation order, the shape the
// session log stores.
func (s *Stimulus) Items() []string {
	items := make([]string, len(s.Units))
	for i, u := range s.Units {
		items[i] = u.Answer
	}
	return items
}

// Generator produces the stimulus for a session. Generators are pure with
// respect to the supplied randomness source.
type Generator func(rng *rand.Rand, cfg Config) (*Stimulus, error)

func identityOrder(n int) []int {
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	return order
}

func randomDigits(rng *rand.Rand, n int) string {
	var sb strings.Builder
	for i := 0; i < n; i++ {
		sb.WriteByte(byte('0' + rng.Intn(10)))
	}
	return sb.String()
}

// chunked groups a digit string for display, e.g. "123456789" -> "123 456 789".
func chunked(sequence string, size int) string {
	if size <= 0 {
		return sequence
	}
	var parts []string
	for i := 0; i < len(sequence); i += size {
		end := i + size
		if end > len(sequence) {
			end = len(sequence)
		}
		parts = append(parts, sequence[i:end])
	}
	return strings.Join(parts, " ")
}

// generateWordList backs the linking variant: plain words, recalled in the
// order they were shown.
func generateWordList(rng *rand.Rand, cfg Config) (*Stimulus, error) {
	words := randomWords(rng, cfg.ItemCount, "common")
	units := make([]Unit, len(words))
	for i, w := range words {
		units[i] = Unit{
			Key:     strconv.Itoa(i + 1),
			Prompt:  fmt.Sprintf("Word %d", i+1),
			Display: w,
			Answer:  w,
		}
	}
	return &Stimulus{Units: units, RecallOrder: identityOrder(len(units))}, nil
}

// generatePalace pairs words with the fixed palace locations, keyed by
// location id so answers can arrive in any order.
func generatePalace(rng *rand.Rand, cfg Config) (*Stimulus, error) {
	count := cfg.ItemCount
	if count > len(palaceLocations) {
		count = len(palaceLocations)
	}
	words := randomWords(rng, count, "common")
	units := make([]Unit, len(words))
	for i, w := range words {
		loc := palaceLocations[i]
		units[i] = Unit{
			Key:     strconv.Itoa(loc.ID),
			Prompt:  fmt.Sprintf("%s %s", loc.Icon, loc.Name),
			Display: fmt.Sprintf("%s %s — %s", loc.Icon, loc.Name, w),
			Answer:  w,
		}
	}
	return &Stimulus{Units: units, RecallOrder: identityOrder(len(units))}, nil
}

// generatePegs pairs words with the rhyming pegs; pegs are asked back in
// random order, which is the point of the technique.
func generatePegs(rng *rand.Rand, cfg Config) (*Stimulus, error) {
	count := cfg.ItemCount
	if count > len(pegRhymes) {
		count = len(pegRhymes)
	}
	words := randomWords(rng, count, "objects")
	units := make([]Unit, len(words))
	for i, w := range words {
		peg := pegRhymes[i]
		units[i] = Unit{
			Key:     strconv.Itoa(peg.Number),
			Prompt:  fmt.Sprintf("Peg %d (%s)", peg.Number, peg.Rhyme),
			Display: fmt.Sprintf("%d = %s: %s", peg.Number, peg.Rhyme, w),
			Answer:  w,
		}
	}
	return &Stimulus{Units: units, RecallOrder: shuffledIndexes(rng, len(units))}, nil
}

// generateChunking produces one digit sequence shown whole, grouped into
// chunks for display. Digits are sampled independently, repetition allowed.
func generateChunking(rng *rand.Rand, cfg Config) (*Stimulus, error) {
	sequence := randomDigits(rng, cfg.DigitsPerRound)
	unit := Unit{
		Key:     "1",
		Prompt:  fmt.Sprintf("Enter the full %d-digit number", len(sequence)),
		Display: chunked(sequence, cfg.ChunkSize),
		Answer:  sequence,
	}
	return &Stimulus{Units: []Unit{unit}, RecallOrder: []int{0}}, nil
}

// generateMajor produces one target number per round. The recall prompt
// re-shows the number: the exercise is inventing a word that encodes it.
func generateMajor(rng *rand.Rand, cfg Config) (*Stimulus, error) {
	units := make([]Unit, cfg.ItemCount)
	for i := range units {
		number := randomDigits(rng, cfg.DigitsPerRound)
		units[i] = Unit{
			Key:     fmt.Sprintf("round-%d", i+1),
			Prompt:  fmt.Sprintf("Make a word for %s", number),
			Display: number,
			Answer:  number,
		}
	}
	return &Stimulus{Units: units, RecallOrder: identityOrder(len(units))}, nil
}

// generatePAO composes each round's sequence from the table's double-digit
// pairs so every round decodes to a person/action/object scene.
func generatePAO(rng *rand.Rand, cfg Config) (*Stimulus, error) {
	units := make([]Unit, cfg.ItemCount)
	for i := range units {
		pairs := cfg.DigitsPerRound / 2
		var sequence strings.Builder
		var scene []string
		for p := 0; p < pairs; p++ {
			entry := paoTable[rng.Intn(len(paoTable))]
			sequence.WriteString(entry.Number)
			switch p {
			case 0:
				scene = append(scene, entry.Person)
			case 1:
				scene = append(scene, entry.Action)
			default:
				scene = append(scene, entry.Object)
			}
		}
		units[i] = Unit{
			Key:     fmt.Sprintf("round-%d", i+1),
			Prompt:  fmt.Sprintf("Round %d — type the number", i+1),
			Display: fmt.Sprintf("%s (%s)", sequence.String(), strings.Join(scene, " ")),
			Answer:  sequence.String(),
		}
	}
	return &Stimulus{Units: units, RecallOrder: identityOrder(len(units))}, nil
}

// generateDominic produces one digit sequence per round together with the
// scenes its digit pairs decode to (person from the first digit, action
// from the second).
func generateDominic(rng *rand.Rand, cfg Config) (*Stimulus, error) {
	units := make([]Unit, cfg.ItemCount)
	for i := range units {
		sequence := randomDigits(rng, cfg.DigitsPerRound)
		var scenes []string
		for j := 0; j+1 < len(sequence); j += 2 {
			person := dominicByDigit(sequence[j])
			action := dominicByDigit(sequence[j+1])
			if person != nil && action != nil {
				scenes = append(scenes, fmt.Sprintf("%s %s", person.Person, action.Action))
			}
		}
		units[i] = Unit{
			Key:     fmt.Sprintf("round-%d", i+1),
			Prompt:  fmt.Sprintf("Round %d — type the number", i+1),
			Display: fmt.Sprintf("%s (%s)", sequence, strings.Join(scenes, ", ")),
			Answer:  sequence,
		}
	}
	return &Stimulus{Units: units, RecallOrder: identityOrder(len(units))}, nil
}

// generateFaces samples people from the roster; recall shows them shuffled
// and asks for the name behind each face.
func generateFaces(rng *rand.Rand, cfg Config) (*Stimulus, error) {
	count := cfg.ItemCount
	if count > len(faceRoster) {
		count = len(faceRoster)
	}
	order := shuffledIndexes(rng, len(faceRoster))
	units := make([]Unit, count)
	for i := 0; i < count; i++ {
		person := faceRoster[order[i]]
		units[i] = Unit{
			Key:     strconv.Itoa(person.ID),
			Prompt:  fmt.Sprintf("The person with the %s", strings.ToLower(person.Feature)),
			Display: fmt.Sprintf("%s — %s", person.Name, person.Feature),
			Answer:  person.Name,
		}
	}
	return &Stimulus{Units: units, RecallOrder: shuffledIndexes(rng, count)}, nil
}
