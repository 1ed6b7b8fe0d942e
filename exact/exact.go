// Package exact implements exact single-pattern matchers over short-alphabet
// sequences: Knuth-Morris-Pratt, Boyer-Moore and the bit-parallel Shift-Or
// (Bitap) algorithm.
//
// Each matcher is built once from a pattern and is immutable afterwards, so
// a single matcher may be shared by any number of concurrent Count calls.
// Sequences are never retained beyond the call. Input bytes must be below
// alphabet.Size.
package exact

import "errors"

var (
	// ErrEmptyPattern is returned by every builder for a zero-length pattern.
	ErrEmptyPattern = errors.New("exact: empty pattern")

	// ErrPatternTooLong is returned by NewShiftOr when the pattern does not
	// fit in one machine word.
	ErrPatternTooLong = errors.New("exact: pattern longer than 64 symbols")
)
