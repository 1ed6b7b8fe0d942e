// Package runner drives one algorithm across a corpus: every pattern is
// preprocessed once, matched against every sequence, and the resulting
// counts are verified against an answers table when one is supplied. The
// matching loop is timed and summarized in a YAML run record.
package runner

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/mhr3/seqmatch/approx"
	"github.com/mhr3/seqmatch/corpus"
	"github.com/mhr3/seqmatch/exact"
	"github.com/mhr3/seqmatch/multi"
)

// Algorithm names accepted by Run.
const (
	KMP         = "kmp"
	BoyerMoore  = "boyer_moore"
	ShiftOr     = "shift_or"
	AhoCorasick = "aho_corasick"
	DFAGap      = "dfa_gap"
	RegexpGap   = "regexp_gap"
)

// Counter matches one preprocessed pattern against a sequence.
type Counter interface {
	Count(seq []byte) int
}

// Report is the run record emitted after an experiment. Each run is one
// YAML document, so records from many runs concatenate cleanly.
type Report struct {
	Language   string  `yaml:"language"`
	Algorithm  string  `yaml:"algorithm"`
	Runtime    float64 `yaml:"runtime"`
	Mismatches int     `yaml:"mismatches,omitempty"`
}

// Config describes one experiment.
type Config struct {
	Algorithm string
	Sequences [][]byte
	Patterns  [][]byte
	Answers   *corpus.Answers // optional; mismatches are findings, not errors
	K         int             // gap bound for the approximate algorithms
	Log       *slog.Logger
}

// Run executes the experiment and, when out is non-nil, writes the run
// record to it. Builder errors abort the run; answer mismatches do not,
// they are logged and tallied in the report.
func Run(cfg Config, out io.Writer) (*Report, error) {
	log := cfg.Log
	if log == nil {
		log = slog.Default()
	}

	if ans := cfg.Answers; ans != nil {
		if len(ans.Counts) != len(cfg.Patterns) {
			return nil, fmt.Errorf("%w: %d answer rows for %d patterns",
				corpus.ErrCountMismatch, len(ans.Counts), len(cfg.Patterns))
		}
		if len(ans.Counts) > 0 && len(ans.Counts[0]) != len(cfg.Sequences) {
			return nil, fmt.Errorf("%w: %d answer columns for %d sequences",
				corpus.ErrCountMismatch, len(ans.Counts[0]), len(cfg.Sequences))
		}
	}

	rep := &Report{Language: "go", Algorithm: cfg.Algorithm}

	if cfg.Algorithm == AhoCorasick {
		ac, err := multi.New(cfg.Patterns)
		if err != nil {
			return nil, err
		}
		start := time.Now()
		for si, seq := range cfg.Sequences {
			for pi, got := range ac.Count(seq) {
				rep.Mismatches += check(log, cfg.Answers, pi, si, got)
			}
		}
		rep.Runtime = time.Since(start).Seconds()
	} else {
		counters := make([]Counter, len(cfg.Patterns))
		for i, pat := range cfg.Patterns {
			c, err := newCounter(cfg.Algorithm, pat, cfg.K)
			if err != nil {
				return nil, fmt.Errorf("pattern %d: %w", i+1, err)
			}
			counters[i] = c
		}
		start := time.Now()
		for si, seq := range cfg.Sequences {
			for pi, c := range counters {
				rep.Mismatches += check(log, cfg.Answers, pi, si, c.Count(seq))
			}
		}
		rep.Runtime = time.Since(start).Seconds()
	}

	if out != nil {
		if _, err := io.WriteString(out, "---\n"); err != nil {
			return rep, err
		}
		enc := yaml.NewEncoder(out)
		if err := enc.Encode(rep); err != nil {
			return rep, err
		}
		if err := enc.Close(); err != nil {
			return rep, err
		}
	}
	return rep, nil
}

// newCounter builds the single-pattern matcher named by algorithm.
func newCounter(algorithm string, pattern []byte, k int) (Counter, error) {
	switch algorithm {
	case KMP:
		return exact.NewKMP(pattern)
	case BoyerMoore:
		return exact.NewBoyerMoore(pattern)
	case ShiftOr:
		return exact.NewShiftOr(pattern)
	case DFAGap:
		return approx.NewDFAGap(pattern, k)
	case RegexpGap:
		return approx.NewRegexpGap(pattern, k)
	}
	return nil, fmt.Errorf("runner: unknown algorithm %q", algorithm)
}

// check compares one computed count against the answers table, logging a
// mismatch without stopping the run.
func check(log *slog.Logger, ans *corpus.Answers, pi, si, got int) int {
	if ans == nil {
		return 0
	}
	want := ans.Counts[pi][si]
	if got == want {
		return 0
	}
	log.Warn("match count mismatch",
		"pattern", pi+1, "sequence", si+1, "got", got, "want", want)
	return 1
}
