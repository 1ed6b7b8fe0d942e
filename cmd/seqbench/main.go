// Command seqbench runs one string-matching algorithm over a corpus of
// sequences and patterns, optionally verifying the match counts against an
// answers file, and prints a YAML run record to stdout.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/mhr3/seqmatch/corpus"
	"github.com/mhr3/seqmatch/internal/runner"
)

func main() {
	os.Exit(run())
}

func run() int {
	var (
		algorithm = flag.String("algorithm", "", "one of: kmp, boyer_moore, shift_or, aho_corasick, dfa_gap, regexp_gap")
		seqFile   = flag.String("sequences", "", "sequences corpus file")
		patFile   = flag.String("patterns", "", "patterns corpus file")
		ansFile   = flag.String("answers", "", "answers file with expected counts (optional)")
		gapBound  = flag.Int("k", 0, "gap bound for approximate algorithms; the answers header takes precedence")
	)
	flag.Parse()

	if *algorithm == "" || *seqFile == "" || *patFile == "" {
		fmt.Fprintf(os.Stderr,
			"Usage: %s -algorithm <name> -sequences <file> -patterns <file> [-answers <file>] [-k <n>]\n",
			os.Args[0])
		return 2
	}

	log := slog.New(slog.NewTextHandler(os.Stderr, nil))

	sequences, err := corpus.ReadSequences(*seqFile)
	if err != nil {
		log.Error("reading sequences", "err", err)
		return 1
	}
	patterns, err := corpus.ReadPatterns(*patFile)
	if err != nil {
		log.Error("reading patterns", "err", err)
		return 1
	}

	cfg := runner.Config{
		Algorithm: *algorithm,
		Sequences: sequences,
		Patterns:  patterns,
		K:         *gapBound,
		Log:       log,
	}
	if *ansFile != "" {
		answers, err := corpus.ReadAnswers(*ansFile)
		if err != nil {
			log.Error("reading answers", "err", err)
			return 1
		}
		cfg.Answers = answers
		if answers.HasK {
			cfg.K = answers.K
		}
	}

	rep, err := runner.Run(cfg, os.Stdout)
	if err != nil {
		log.Error("run failed", "algorithm", *algorithm, "err", err)
		return 1
	}
	if rep.Mismatches > 0 {
		return 1
	}
	return 0
}
