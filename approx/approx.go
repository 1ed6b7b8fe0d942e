// Package approx implements bounded-gap approximate matching: a pattern
// occurs if its symbols appear in sequence order with at most k intervening
// non-matching symbols between consecutive ones. Two interchangeable
// implementations are provided, a purpose-built automaton (DFAGap) and a
// regular-expression delegation (RegexpGap); they agree on every valid
// input and exist to cross-check each other.
//
// Both are immutable after construction and safe to share across concurrent
// Count calls. Input bytes must be below alphabet.Size.
package approx

import "errors"

var (
	// ErrEmptyPattern is returned by both builders for a zero-length pattern.
	ErrEmptyPattern = errors.New("approx: empty pattern")

	// ErrNegativeBound is returned by both builders for k < 0.
	ErrNegativeBound = errors.New("approx: negative gap bound")
)
