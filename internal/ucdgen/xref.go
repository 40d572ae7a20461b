package ucdgen

import (
	"fmt"
)

// maxXrefEntries is the bound X's size must stay below: indices into X are
// stored in 15 bits (bit 15 of a composition-sequence word is reserved
// for the end-of-list marker).
const maxXrefEntries = 1 << 15

// BuildXref assigns dense indices to every code point that participates
// in decomposition or composition: decomposable code points and every
// element of their expansions, and every key component and result of a
// composition pair. Index 0 is reserved for code point 0, the
// decomposition-sequence sentinel, whether or not 0 itself participates.
func BuildXref(decomp Decompositions, comp Compositions) (Xref, error) {
	set := make(map[rune]bool)
	for cp, seq := range decomp {
		set[cp] = true
		for _, e := range seq {
			set[e] = true
		}
	}
	for key, c := range comp {
		set[key.A] = true
		set[key.B] = true
		set[c] = true
	}
	delete(set, 0)

	rest := sortedKeys(set)

	table := make([]rune, 0, len(rest)+1)
	table = append(table, 0)
	table = append(table, rest...)

	if len(table) >= maxXrefEntries {
		return Xref{}, fmt.Errorf("%w: cross-reference table has %d entries, want < %d", ErrInvariant, len(table), maxXrefEntries)
	}

	index := make(map[rune]uint16, len(table))
	for i, cp := range table {
		index[cp] = uint16(i)
	}

	return Xref{Table: table, Index: index}, nil
}
