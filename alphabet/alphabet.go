// Package alphabet defines the symbol space shared by every matcher in this
// module. Patterns and sequences are byte strings drawn from a small
// single-byte alphabet; every symbol-indexed table is sized for the 7-bit
// range so the four nucleotide codes need no translation step.
package alphabet

// Size is the width of every symbol-indexed table in this module. Input
// bytes must be below Size; larger bytes are outside the alphabet contract.
const Size = 128

// DNA is the nucleotide alphabet. The gap automaton enumerates it when
// wiring slack transitions for non-expected symbols.
var DNA = []byte{'A', 'C', 'G', 'T'}
