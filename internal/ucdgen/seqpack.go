package ucdgen

import (
	"fmt"
	"sort"

	"golang.org/x/exp/slices"
)

const (
	decompSeqOffsetBits = 14
	decompSeqMaxOffset  = 1 << decompSeqOffsetBits
	compSeqEndOfListBit = uint16(0x8000)
)

// sublistIndex returns the offset of the first occurrence of needle as a
// contiguous run within haystack, or -1 if it doesn't occur. Candidate
// offsets are found by searching for needle's first element with
// slices.Index and confirmed with slices.Equal; the pool built by
// BuildDecompSeq tops out at a few thousand entries, so this stays cheap
// without resorting to a suffix index.
func sublistIndex(haystack, needle []uint16) int {
	n := len(needle)
	if n == 0 {
		return 0
	}
	searchFrom := 0
	for {
		i := slices.Index(haystack[searchFrom:], needle[0])
		if i < 0 {
			return -1
		}
		offset := searchFrom + i
		if offset+n <= len(haystack) && slices.Equal(haystack[offset:offset+n], needle) {
			return offset
		}
		searchFrom = offset + 1
	}
}

// BuildDecompSeq packs every decomposition in decomp into the flat pool
// DS, sharing a previously emitted window whenever one already contains
// the needed sequence verbatim. DS[0] = 0 is the reserved sentinel.
func BuildDecompSeq(xref Xref, decomp Decompositions) (DecompSeqPool, error) {
	cps := sortedKeys(decomp)

	pool := DecompSeqPool{
		Seq:    []uint16{0},
		Starts: make(map[rune]uint16, len(cps)),
	}

	for _, cp := range cps {
		seq := decomp[cp]
		if len(seq) < 1 || len(seq) > 4 {
			return DecompSeqPool{}, fmt.Errorf("%w: decomposition of %s has length %d, want 1..4", ErrInvariant, runeHex(cp), len(seq))
		}

		indices := make([]uint16, len(seq))
		for i, c := range seq {
			indices[i] = xref.Idx(c)
		}

		offset := sublistIndex(pool.Seq, indices)
		if offset < 0 {
			offset = len(pool.Seq)
			pool.Seq = append(pool.Seq, indices...)
		}
		if offset >= decompSeqMaxOffset {
			return DecompSeqPool{}, fmt.Errorf("%w: decomposition-sequence offset %d for %s exceeds %d bits",
				ErrInvariant, offset, runeHex(cp), decompSeqOffsetBits)
		}

		pool.Starts[cp] = uint16(offset) | uint16(len(seq)-1)<<decompSeqOffsetBits
	}

	return pool, nil
}

// BuildCompSeq packs composition pairs grouped by first component into
// the flat pool CS. Within a group, pairs are ordered ascending by second
// component so that the choice of which record carries the end-of-list
// marker is reproducible across runs.
func BuildCompSeq(xref Xref, comp Compositions) CompSeqPool {
	groups := make(map[rune][]CompositionKey)
	for key := range comp {
		groups[key.A] = append(groups[key.A], key)
	}

	firsts := sortedKeys(groups)

	pool := CompSeqPool{
		Starts: make(map[rune]uint16, len(firsts)),
	}

	for _, a := range firsts {
		keys := groups[a]
		sort.Slice(keys, func(i, j int) bool { return keys[i].B < keys[j].B })

		pool.Starts[a] = uint16(len(pool.Seq) / 2)

		for i, key := range keys {
			bWord := xref.Idx(key.B)
			if i == len(keys)-1 {
				bWord |= compSeqEndOfListBit
			}
			pool.Seq = append(pool.Seq, bWord, xref.Idx(comp[key]))
		}
	}

	return pool
}
