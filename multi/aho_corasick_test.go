package multi_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mhr3/seqmatch/exact"
	"github.com/mhr3/seqmatch/multi"
)

func patterns(ss ...string) [][]byte {
	out := make([][]byte, len(ss))
	for i, s := range ss {
		out[i] = []byte(s)
	}
	return out
}

func TestAhoCorasickCount(t *testing.T) {
	tests := []struct {
		name     string
		patterns [][]byte
		seq      string
		want     []int
	}{
		{
			name:     "overlapping pairs",
			patterns: patterns("AC", "CG", "GT"),
			seq:      "ACGT",
			want:     []int{1, 1, 1},
		},
		{
			name:     "classic ushers",
			patterns: patterns("he", "she", "his", "hers"),
			seq:      "ushers",
			want:     []int{1, 1, 0, 1},
		},
		{
			name:     "shared prefixes",
			patterns: patterns("ACG", "ACGT", "A"),
			seq:      "ACGTACG",
			want:     []int{2, 1, 2},
		},
		{
			name:     "empty sequence",
			patterns: patterns("ACG", "T"),
			seq:      "",
			want:     []int{0, 0},
		},
		{
			name:     "suffix of another pattern",
			patterns: patterns("GTACGT", "ACGT"),
			seq:      "GTACGTACGT",
			want:     []int{2, 2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ac, err := multi.New(tt.patterns)
			require.NoError(t, err)
			assert.Equal(t, tt.want, ac.Count([]byte(tt.seq)))
		})
	}
}

func TestAhoCorasickEmptyPatterns(t *testing.T) {
	_, err := multi.New(nil)
	require.ErrorIs(t, err, multi.ErrEmptyPattern)

	_, err = multi.New(patterns("ACG", ""))
	require.ErrorIs(t, err, multi.ErrEmptyPattern)
}

func TestAhoCorasickIdempotent(t *testing.T) {
	ac, err := multi.New(patterns("AC", "CG"))
	require.NoError(t, err)

	seq := []byte("ACGACG")
	assert.Equal(t, ac.Count(seq), ac.Count(seq))
}

// TestAhoCorasickMatchesKMP checks the defining contract: one automaton
// pass produces the same per-pattern counts as one KMP run per pattern.
func TestAhoCorasickMatchesKMP(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	dna := []byte("ACGT")
	randSeq := func(n int) []byte {
		out := make([]byte, n)
		for i := range out {
			out[i] = dna[rng.Intn(len(dna))]
		}
		return out
	}

	for trial := 0; trial < 100; trial++ {
		pats := make([][]byte, 1+rng.Intn(8))
		for i := range pats {
			pats[i] = randSeq(1 + rng.Intn(6))
		}
		seq := randSeq(rng.Intn(300))

		ac, err := multi.New(pats)
		require.NoError(t, err)
		got := ac.Count(seq)

		for i, pat := range pats {
			k, err := exact.NewKMP(pat)
			require.NoError(t, err)
			if want := k.Count(seq); got[i] != want {
				t.Fatalf("pattern %q in %q: aho-corasick %d, kmp %d", pat, seq, got[i], want)
			}
		}
	}
}
