package runner

import (
	"bytes"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mhr3/seqmatch/corpus"
)

var (
	testSequences = [][]byte{[]byte("ACGTACGT"), []byte("AAAA")}
	testPatterns  = [][]byte{[]byte("ACGT"), []byte("AA")}

	// Overlapping occurrences of ACGT and AA in the two sequences.
	exactAnswers = &corpus.Answers{Counts: [][]int{{2, 0}, {0, 3}}}
)

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRunExactAlgorithms(t *testing.T) {
	for _, algorithm := range []string{KMP, BoyerMoore, ShiftOr, AhoCorasick} {
		t.Run(algorithm, func(t *testing.T) {
			var out bytes.Buffer
			rep, err := Run(Config{
				Algorithm: algorithm,
				Sequences: testSequences,
				Patterns:  testPatterns,
				Answers:   exactAnswers,
				Log:       discard(),
			}, &out)
			require.NoError(t, err)

			assert.Equal(t, 0, rep.Mismatches)
			assert.Equal(t, "go", rep.Language)
			assert.Contains(t, out.String(), "---\n")
			assert.Contains(t, out.String(), "algorithm: "+algorithm)
		})
	}
}

func TestRunApproxAlgorithms(t *testing.T) {
	// Pattern AG with k=1: one gapped occurrence in ATG, none in TTTT.
	answers := &corpus.Answers{Counts: [][]int{{1, 0}}, K: 1, HasK: true}

	for _, algorithm := range []string{DFAGap, RegexpGap} {
		t.Run(algorithm, func(t *testing.T) {
			rep, err := Run(Config{
				Algorithm: algorithm,
				Sequences: [][]byte{[]byte("ATG"), []byte("TTTT")},
				Patterns:  [][]byte{[]byte("AG")},
				Answers:   answers,
				K:         answers.K,
				Log:       discard(),
			}, nil)
			require.NoError(t, err)
			assert.Equal(t, 0, rep.Mismatches)
		})
	}
}

func TestRunReportsMismatches(t *testing.T) {
	wrong := &corpus.Answers{Counts: [][]int{{2, 1}, {0, 3}}}

	rep, err := Run(Config{
		Algorithm: KMP,
		Sequences: testSequences,
		Patterns:  testPatterns,
		Answers:   wrong,
		Log:       discard(),
	}, nil)
	require.NoError(t, err, "mismatches are findings, not errors")
	assert.Equal(t, 1, rep.Mismatches)
}

func TestRunAnswerShapeMismatch(t *testing.T) {
	_, err := Run(Config{
		Algorithm: KMP,
		Sequences: testSequences,
		Patterns:  testPatterns,
		Answers:   &corpus.Answers{Counts: [][]int{{2, 0}}},
		Log:       discard(),
	}, nil)
	require.ErrorIs(t, err, corpus.ErrCountMismatch)
}

func TestRunBuilderErrorIsFatal(t *testing.T) {
	_, err := Run(Config{
		Algorithm: KMP,
		Sequences: testSequences,
		Patterns:  [][]byte{{}},
		Log:       discard(),
	}, nil)
	require.Error(t, err)
}

func TestRunUnknownAlgorithm(t *testing.T) {
	_, err := Run(Config{
		Algorithm: "rabin_karp",
		Sequences: testSequences,
		Patterns:  testPatterns,
		Log:       discard(),
	}, nil)
	require.Error(t, err)
}
