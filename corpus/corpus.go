// Package corpus reads the benchmark corpus files. Sequence and pattern
// files start with a "count max-length" header line followed by count lines
// of raw symbols; answer files start with a "patterns sequences [k]" header
// followed by one comma-separated row of expected counts per pattern.
package corpus

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/segmentio/asm/ascii"
)

// ErrCountMismatch reports a disagreement between a file's declared shape
// and its actual contents.
var ErrCountMismatch = errors.New("corpus: count mismatch")

// maxLineBytes bounds a single corpus line; the benchmark data tops out
// around 1KiB per sequence.
const maxLineBytes = 1 << 20

// ReadSequences loads a sequence file. Every data line must be 7-bit input
// and no longer than the declared maximum.
func ReadSequences(path string) ([][]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), maxLineBytes)

	header, err := readHeader(sc, path, 2)
	if err != nil {
		return nil, err
	}
	count, maxLen := header[0], header[1]

	lines := make([][]byte, 0, count)
	for sc.Scan() {
		line := sc.Bytes()
		if len(line) > maxLen {
			return nil, fmt.Errorf("%w: %s: line %d longer than declared maximum %d",
				ErrCountMismatch, path, len(lines)+2, maxLen)
		}
		if !ascii.Valid(line) {
			return nil, fmt.Errorf("corpus: %s: line %d is not 7-bit input", path, len(lines)+2)
		}
		cp := make([]byte, len(line))
		copy(cp, line)
		lines = append(lines, cp)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("corpus: reading %s: %w", path, err)
	}
	if len(lines) != count {
		return nil, fmt.Errorf("%w: %s declares %d lines, found %d",
			ErrCountMismatch, path, count, len(lines))
	}
	return lines, nil
}

// ReadPatterns loads a pattern file; the format is the same as sequences.
func ReadPatterns(path string) ([][]byte, error) {
	return ReadSequences(path)
}

// Answers holds the expected-count matrix from an answers file, one row per
// pattern and one column per sequence. For approximate-matching corpora the
// header carries the gap bound as a third field.
type Answers struct {
	Counts [][]int
	K      int
	HasK   bool
}

// ReadAnswers loads an answers file.
func ReadAnswers(path string) (*Answers, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), maxLineBytes)

	header, err := readHeader(sc, path, 2)
	if err != nil {
		return nil, err
	}
	rows, cols := header[0], header[1]

	ans := &Answers{Counts: make([][]int, 0, rows)}
	if len(header) > 2 {
		ans.K = header[2]
		ans.HasK = true
	}

	for sc.Scan() {
		fields := strings.Split(strings.TrimSpace(sc.Text()), ",")
		row := make([]int, 0, cols)
		for _, field := range fields {
			field = strings.TrimSpace(field)
			if field == "" {
				continue // tolerate a trailing comma
			}
			n, err := strconv.Atoi(field)
			if err != nil {
				return nil, fmt.Errorf("corpus: %s row %d: bad count %q: %w",
					path, len(ans.Counts)+1, field, err)
			}
			row = append(row, n)
		}
		if len(row) != cols {
			return nil, fmt.Errorf("%w: %s row %d has %d counts, want %d",
				ErrCountMismatch, path, len(ans.Counts)+1, len(row), cols)
		}
		ans.Counts = append(ans.Counts, row)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("corpus: reading %s: %w", path, err)
	}
	if len(ans.Counts) != rows {
		return nil, fmt.Errorf("%w: %s declares %d rows, found %d",
			ErrCountMismatch, path, rows, len(ans.Counts))
	}
	return ans, nil
}

// readHeader parses the whitespace-separated integers on the first line.
// want is the minimum field count; any extra fields are returned as well.
func readHeader(sc *bufio.Scanner, path string, want int) ([]int, error) {
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return nil, fmt.Errorf("corpus: reading %s: %w", path, err)
		}
		return nil, fmt.Errorf("corpus: %s: missing header line", path)
	}
	fields := strings.Fields(sc.Text())
	if len(fields) < want {
		return nil, fmt.Errorf("corpus: %s: header has %d fields, want at least %d",
			path, len(fields), want)
	}
	nums := make([]int, len(fields))
	for i, field := range fields {
		n, err := strconv.Atoi(field)
		if err != nil {
			return nil, fmt.Errorf("corpus: %s: bad header field %q: %w", path, field, err)
		}
		nums[i] = n
	}
	return nums, nil
}
