package exact

import "github.com/mhr3/seqmatch/alphabet"

// wordWidth bounds the pattern length for Shift-Or: one bit of the state
// word per pattern position.
const wordWidth = 64

// ShiftOr holds the bit-parallel tables for the Shift-Or (Bitap) algorithm,
// per chapter 5 of Charras & Lecroq. The state word is a uint64 so every
// shift is masked to exactly the word width; a wider or untyped integer
// would corrupt the shift semantics.
type ShiftOr struct {
	masks [alphabet.Size]uint64
	lim   uint64
}

// NewShiftOr builds the per-symbol position masks and the match limit for
// pattern. Patterns longer than 64 symbols are rejected.
func NewShiftOr(pattern []byte) (*ShiftOr, error) {
	m := len(pattern)
	if m == 0 {
		return nil, ErrEmptyPattern
	}
	if m > wordWidth {
		return nil, ErrPatternTooLong
	}

	s := &ShiftOr{}
	for i := range s.masks {
		s.masks[i] = ^uint64(0)
	}
	var lim uint64
	for i, bit := 0, uint64(1); i < m; i, bit = i+1, bit<<1 {
		s.masks[pattern[i]] &^= bit
		lim |= bit
	}
	s.lim = ^(lim >> 1)
	return s, nil
}

// Count returns the number of possibly-overlapping occurrences of the
// pattern in seq.
func (s *ShiftOr) Count(seq []byte) int {
	matches := 0
	state := ^uint64(0)
	for _, c := range seq {
		state = state<<1 | s.masks[c]
		if state < s.lim {
			matches++
		}
	}
	return matches
}
