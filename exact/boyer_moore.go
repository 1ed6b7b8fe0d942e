package exact

import "github.com/mhr3/seqmatch/alphabet"

// BoyerMoore holds the bad-character and good-suffix shift tables for the
// Boyer-Moore algorithm, per chapter 14 of Charras & Lecroq. Both heuristics
// are kept and combined with max() at match time; dropping either one
// changes the shift amounts and the worst-case behavior.
type BoyerMoore struct {
	pattern    []byte
	goodSuffix []int
	badChar    [alphabet.Size]int
}

// NewBoyerMoore builds the shift tables for pattern.
func NewBoyerMoore(pattern []byte) (*BoyerMoore, error) {
	m := len(pattern)
	if m == 0 {
		return nil, ErrEmptyPattern
	}

	pat := make([]byte, m)
	copy(pat, pattern)

	b := &BoyerMoore{pattern: pat, goodSuffix: make([]int, m)}
	b.calcBadChar()
	b.calcGoodSuffix()
	return b, nil
}

// calcBadChar records, per symbol, the shift implied by its last occurrence
// in the pattern. Symbols absent from the pattern shift the full length.
func (b *BoyerMoore) calcBadChar() {
	m := len(b.pattern)
	for i := range b.badChar {
		b.badChar[i] = m
	}
	for i := 0; i < m-1; i++ {
		b.badChar[b.pattern[i]] = m - 1 - i
	}
}

// suffixes computes, per position, the length of the longest pattern suffix
// ending there, with the standard two-pointer (f, g) scan.
func (b *BoyerMoore) suffixes() []int {
	pat := b.pattern
	m := len(pat)

	suff := make([]int, m)
	suff[m-1] = m
	f, g := 0, m-1
	for i := m - 2; i >= 0; i-- {
		if i > g && suff[i+m-1-f] < i-g {
			suff[i] = suff[i+m-1-f]
		} else {
			if i < g {
				g = i
			}
			f = i
			for g >= 0 && pat[g] == pat[g+m-1-f] {
				g--
			}
			suff[i] = f - g
		}
	}
	return suff
}

// calcGoodSuffix fills the good-suffix table in two passes: first the
// prefix-matching widths, then the exact suffix-matching shifts.
func (b *BoyerMoore) calcGoodSuffix() {
	m := len(b.pattern)
	suff := b.suffixes()

	for i := range b.goodSuffix {
		b.goodSuffix[i] = m
	}
	j := 0
	for i := m - 1; i >= -1; i-- {
		if i == -1 || suff[i] == i+1 {
			for ; j < m-1-i; j++ {
				if b.goodSuffix[j] == m {
					b.goodSuffix[j] = m - 1 - i
				}
			}
		}
	}
	for i := 0; i <= m-2; i++ {
		b.goodSuffix[m-1-suff[i]] = m - 1 - i
	}
}

// Count returns the number of possibly-overlapping occurrences of the
// pattern in seq.
func (b *BoyerMoore) Count(seq []byte) int {
	pat := b.pattern
	m, n := len(pat), len(seq)
	matches := 0

	j := 0
	for j <= n-m {
		i := m - 1
		for i >= 0 && pat[i] == seq[i+j] {
			i--
		}
		if i < 0 {
			matches++
			j += b.goodSuffix[0]
		} else {
			j += max(b.goodSuffix[i], b.badChar[seq[i+j]]-m+1+i)
		}
	}
	return matches
}
