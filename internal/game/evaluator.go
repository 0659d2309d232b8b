package game

import (
	"fmt"
	"strings"
)

// UnitResult is the judgement for one recallable unit. Digit-sequence
// variants report one result per digit position, which is how partial
// credit works: 10 correct digits out of 12 score 10/12, not 0.
type UnitResult struct {
	Key      string `json:"key"`
	Expected string `json:"expected"`
	Actual   string `json:"actual"`
	Correct  bool   `json:"correct"`
}

// Evaluator scores the collected answers against a stimulus. Evaluators
// are pure; missing answers evaluate as empty strings.
type Evaluator func(units []Unit, answers map[string]string) []UnitResult

// normalizeAnswer lowercases and trims for tolerant string comparison.
func normalizeAnswer(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// stripSeparators removes the spaces and dashes people naturally type into
// long numbers.
func stripSeparators(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '-', '\t':
			return -1
		}
		return r
	}, s)
}

// EvaluateExact judges each unit by case-insensitive, whitespace-trimmed
// equality. Used by the word-recall variants.
func EvaluateExact(units []Unit, answers map[string]string) []UnitResult {
	results := make([]UnitResult, len(units))
	for i, u := range units {
		actual := answers[u.Key]
		results[i] = UnitResult{
			Key:      u.Key,
			Expected: u.Answer,
			Actual:   actual,
			Correct:  normalizeAnswer(actual) == normalizeAnswer(u.Answer),
		}
	}
	return results
}

// EvaluateDigits compares digit sequences position by position, one result
// per digit. Separators in the user's input are stripped first.
func EvaluateDigits(units []Unit, answers map[string]string) []UnitResult {
	var results []UnitResult
	for _, u := range units {
		actual := stripSeparators(answers[u.Key])
		for i := 0; i < len(u.Answer); i++ {
			var got string
			if i < len(actual) {
				got = string(actual[i])
			}
			results = append(results, UnitResult{
				Key:      fmt.Sprintf("%s:%d", u.Key, i+1),
				Expected: string(u.Answer[i]),
				Actual:   got,
				Correct:  got == string(u.Answer[i]),
			})
		}
	}
	return results
}

// EvaluateSequence judges each round as a whole: the stripped input must
// equal the full digit sequence.
func EvaluateSequence(units []Unit, answers map[string]string) []UnitResult {
	results := make([]UnitResult, len(units))
	for i, u := range units {
		actual := stripSeparators(strings.TrimSpace(answers[u.Key]))
		results[i] = UnitResult{
			Key:      u.Key,
			Expected: u.Answer,
			Actual:   actual,
			Correct:  actual == u.Answer,
		}
	}
	return results
}

// EvaluateWordLength accepts any word at least as long as the target
// number. This is a deliberately lenient placeholder for phonetic
// validation of Major System words, kept from the original design.
func EvaluateWordLength(units []Unit, answers map[string]string) []UnitResult {
	results := make([]UnitResult, len(units))
	for i, u := range units {
		actual := strings.TrimSpace(answers[u.Key])
		results[i] = UnitResult{
			Key:      u.Key,
			Expected: u.Answer,
			Actual:   actual,
			Correct:  actual != "" && len(actual) >= len(u.Answer),
		}
	}
	return results
}
