package approx

import (
	"fmt"
	"strings"

	"github.com/dlclark/regexp2"
)

// RegexpGap answers the same bounded-gap queries as DFAGap by compiling the
// pattern into a lookahead-wrapped regular expression and delegating the
// scan to the regexp2 engine. The stdlib engine is not an option here: the
// wrapper needs zero-width lookahead, which RE2-style engines reject.
type RegexpGap struct {
	re *regexp2.Regexp
}

// NewRegexpGap compiles the gap expression for pattern with bound k. The
// expression has the shape
//
//	(?=(p0[^p1]{0,k}p1[^p2]{0,k}p2...))
//
// where the zero-width lookahead lets matches start one symbol apart.
func NewRegexpGap(pattern []byte, k int) (*RegexpGap, error) {
	m := len(pattern)
	if m == 0 {
		return nil, ErrEmptyPattern
	}
	if k < 0 {
		return nil, ErrNegativeBound
	}

	var b strings.Builder
	b.WriteString("(?=(")
	b.WriteByte(pattern[0])
	for i := 1; i < m; i++ {
		fmt.Fprintf(&b, "[^%c]{0,%d}%c", pattern[i], k, pattern[i])
	}
	b.WriteString("))")

	re, err := regexp2.Compile(b.String(), regexp2.None)
	if err != nil {
		return nil, fmt.Errorf("approx: compiling gap expression: %w", err)
	}
	return &RegexpGap{re: re}, nil
}

// Count returns the number of start positions in seq at which the gap
// expression matches. Each engine match is zero-width, so the scan resumes
// one symbol past the last match start.
func (r *RegexpGap) Count(seq []byte) int {
	text := string(seq)
	matches := 0
	pos := 0
	for {
		m, err := r.re.FindStringMatchStartingAt(text, pos)
		if err != nil || m == nil {
			break
		}
		matches++
		pos = m.Index + 1
	}
	return matches
}
