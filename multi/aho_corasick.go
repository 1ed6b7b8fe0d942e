// Package multi implements multi-pattern matching with the Aho-Corasick
// automaton. All patterns are compiled into a single machine and every
// sequence is scanned exactly once, whatever the pattern count.
//
// The automaton is immutable once built and safe to share across concurrent
// Count calls. Input bytes must be below alphabet.Size.
package multi

import (
	"errors"

	"github.com/mhr3/seqmatch/alphabet"
)

// ErrEmptyPattern is returned by New for an empty pattern set or for any
// zero-length pattern in it.
var ErrEmptyPattern = errors.New("multi: empty pattern")

// fail marks a transition with no target state.
const fail = -1

// AhoCorasick is the compiled multi-pattern automaton: a trie-shaped goto
// table, a failure function and a per-state set of terminating pattern
// indices. States are rows in flat tables; the root is state 0.
type AhoCorasick struct {
	gotoFn   [][alphabet.Size]int32
	failure  []int32
	output   [][]int
	patterns int
}

// New compiles patterns into an automaton. Counts reported by Count are
// indexed in the order given here.
func New(patterns [][]byte) (*AhoCorasick, error) {
	if len(patterns) == 0 {
		return nil, ErrEmptyPattern
	}
	for _, p := range patterns {
		if len(p) == 0 {
			return nil, ErrEmptyPattern
		}
	}

	ac := &AhoCorasick{patterns: len(patterns)}
	ac.buildGoto(patterns)
	ac.buildFailure()
	return ac, nil
}

// newState appends a fresh state with no transitions and an empty output
// set. The length of the goto table is the next state id, so ids never
// leak outside a single construction pass.
func (ac *AhoCorasick) newState() int32 {
	var row [alphabet.Size]int32
	for i := range row {
		row[i] = fail
	}
	ac.gotoFn = append(ac.gotoFn, row)
	ac.output = append(ac.output, nil)
	return int32(len(ac.gotoFn) - 1)
}

// buildGoto inserts each pattern into the trie, reusing shared prefixes,
// and marks the terminal state of each with the pattern's index.
func (ac *AhoCorasick) buildGoto(patterns [][]byte) {
	ac.newState() // root

	for idx, pat := range patterns {
		state := int32(0)
		j := 0
		for j < len(pat) && ac.gotoFn[state][pat[j]] != fail {
			state = ac.gotoFn[state][pat[j]]
			j++
		}
		for ; j < len(pat); j++ {
			next := ac.newState()
			ac.gotoFn[state][pat[j]] = next
			state = next
		}
		ac.output[state] = appendUnique(ac.output[state], idx)
	}

	// Unused root transitions loop back to the root so matching slides
	// over non-matching input without an explicit failure step.
	for c := range ac.gotoFn[0] {
		if ac.gotoFn[0][c] == fail {
			ac.gotoFn[0][c] = 0
		}
	}
}

// buildFailure runs the breadth-first failure-function construction and
// completes the output sets: a state reports every pattern ending at any of
// its failure ancestors, which is what makes overlapping suffix matches
// come out right.
func (ac *AhoCorasick) buildFailure() {
	ac.failure = make([]int32, len(ac.gotoFn))

	var queue []int32
	for c := 0; c < alphabet.Size; c++ {
		s := ac.gotoFn[0][c]
		if s == 0 {
			continue
		}
		ac.failure[s] = 0
		queue = append(queue, s)
	}

	for len(queue) > 0 {
		r := queue[0]
		queue = queue[1:]
		for c := 0; c < alphabet.Size; c++ {
			s := ac.gotoFn[r][c]
			if s == fail {
				continue
			}
			queue = append(queue, s)
			state := ac.failure[r]
			// The root's self-loops guarantee this walk terminates.
			for ac.gotoFn[state][c] == fail {
				state = ac.failure[state]
			}
			ac.failure[s] = ac.gotoFn[state][c]
			for _, idx := range ac.output[ac.failure[s]] {
				ac.output[s] = appendUnique(ac.output[s], idx)
			}
		}
	}
}

// Count scans seq once and returns one possibly-overlapping occurrence
// count per pattern, in the order the patterns were given to New.
func (ac *AhoCorasick) Count(seq []byte) []int {
	counts := make([]int, ac.patterns)
	state := int32(0)
	for _, c := range seq {
		for ac.gotoFn[state][c] == fail {
			state = ac.failure[state]
		}
		state = ac.gotoFn[state][c]
		for _, idx := range ac.output[state] {
			counts[idx]++
		}
	}
	return counts
}

func appendUnique(set []int, v int) []int {
	for _, x := range set {
		if x == v {
			return set
		}
	}
	return append(set, v)
}
