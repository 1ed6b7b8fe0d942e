package approx

import "github.com/mhr3/seqmatch/alphabet"

// fail marks a transition with no target state. Unlike Aho-Corasick there
// is no self-loop at the start state; a missing transition abandons the
// current start offset.
const fail = -1

// DFAGap is the bounded-gap automaton. State i means "matched a prefix of
// the pattern, with at most k extra symbols consumed since the last matched
// one"; the state count is fixed at 1 + m + k·(m-1) by construction.
type DFAGap struct {
	dfa      [][alphabet.Size]int32
	terminal int32
	m        int
}

// NewDFAGap builds the automaton for pattern with gap bound k.
func NewDFAGap(pattern []byte, k int) (*DFAGap, error) {
	m := len(pattern)
	if m == 0 {
		return nil, ErrEmptyPattern
	}
	if k < 0 {
		return nil, ErrNegativeBound
	}

	states := 1 + m + k*(m-1)
	dfa := make([][alphabet.Size]int32, states)
	for i := range dfa {
		for c := range dfa[i] {
			dfa[i][c] = fail
		}
	}

	dfa[0][pattern[0]] = 1

	// Between each pair of consecutive exact states, chain up to k slack
	// states over the non-expected symbols; each slack state resynchronizes
	// to the next exact state on the expected one.
	state, newState := int32(1), int32(1)
	for i := 1; i < m; i++ {
		newState++
		dfa[state][pattern[i]] = newState
		last := state
		for j := int32(1); j <= int32(k); j++ {
			dfa[newState+j][pattern[i]] = newState
			for _, c := range alphabet.DNA {
				if c == pattern[i] {
					continue
				}
				dfa[last][c] = newState + j
			}
			last = newState + j
		}
		state = newState
		newState += int32(k)
	}

	return &DFAGap{dfa: dfa, terminal: state, m: m}, nil
}

// Count returns the number of gapped occurrences of the pattern in seq. The
// automaton restarts independently at every start offset; a single
// continuous scan would count a different set of overlapping matches.
func (d *DFAGap) Count(seq []byte) int {
	n := len(seq)
	matches := 0
	for i := 0; i <= n-d.m; i++ {
		state := int32(0)
		for j := i; j < n; j++ {
			next := d.dfa[state][seq[j]]
			if next == fail {
				break
			}
			state = next
		}
		if state == d.terminal {
			matches++
		}
	}
	return matches
}
