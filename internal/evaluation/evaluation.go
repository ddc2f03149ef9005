// Package evaluation contains the scoring engines for the four supported
// inventories (16 Personalities, Big Five, HIGH5, RIASEC). Each evaluator is
// a pure function from a response map to an immutable result value: no I/O,
// no shared state, safe to call concurrently. Question banks and
// interpretation tables are package-level constants fixed at startup.
package evaluation

import (
	"fmt"
	"math"
)

// Responses maps "q{id}" keys to raw Likert answers on the 1..5 scale.
// Partial maps are allowed: unanswered questions contribute nothing to
// their category aggregate. Evaluators never reject malformed input.
type Responses map[string]int

// Keying indicates whether a raw answer must be reversed (6 - value)
// before aggregation.
type Keying string

const (
	KeyForward Keying = "forward"
	KeyReverse Keying = "reverse"
)

// Question is one immutable bank entry. Tag is the inventory-specific
// category the question scores into (dimension, trait, strength or theme).
type Question struct {
	ID     int    `json:"id"`
	Text   string `json:"text"`
	Tag    string `json:"tag"`
	Keying Keying `json:"-"`
}

// Answer looks up the raw response for a question id.
func (r Responses) Answer(id int) (int, bool) {
	v, ok := r[fmt.Sprintf("q%d", id)]
	return v, ok
}

func reverseScore(raw int) int {
	return 6 - raw
}

func roundScore(x float64) int {
	return int(math.Round(x))
}
