package exact

// KMP holds the preprocessed jump table for the Knuth-Morris-Pratt
// algorithm, following the construction in chapter 7 of Charras & Lecroq,
// "Handbook of Exact String-Matching Algorithms".
type KMP struct {
	pattern []byte
	next    []int
}

// NewKMP builds the jump table for pattern.
func NewKMP(pattern []byte) (*KMP, error) {
	m := len(pattern)
	if m == 0 {
		return nil, ErrEmptyPattern
	}

	pat := make([]byte, m)
	copy(pat, pattern)

	next := make([]int, m+1)
	next[0] = -1
	i, j := 0, -1
	for i < m {
		for j > -1 && pat[i] != pat[j] {
			j = next[j]
		}
		i++
		j++
		// When the next characters are equal, a mismatch at i would also
		// mismatch at j, so inherit j's jump instead of retrying it.
		if i < m && pat[i] == pat[j] {
			next[i] = next[j]
		} else {
			next[i] = j
		}
	}

	return &KMP{pattern: pat, next: next}, nil
}

// Count returns the number of possibly-overlapping occurrences of the
// pattern in seq.
func (k *KMP) Count(seq []byte) int {
	m, n := len(k.pattern), len(seq)
	matches := 0

	i, j := 0, 0
	for j < n {
		for i > -1 && k.pattern[i] != seq[j] {
			i = k.next[i]
		}
		i++
		j++
		if i >= m {
			matches++
			// Resume from the longest border so overlapping occurrences
			// are still counted.
			i = k.next[m]
		}
	}
	return matches
}
