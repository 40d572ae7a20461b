package ucdgen

import (
	"fmt"

	"github.com/dropbox/miniutf/internal/ucd"
)

// codeSpaceSize is the size of the dense per-code-point arrays fed to the
// trie packer, before truncation at the highest nonzero index.
const codeSpaceSize = 0x110000

// ValueTrie is a trie packed over indices into a separate, smaller table
// of distinct values, rather than over the values directly. This mirrors
// how the lowercase-offset table is built: most code points share one of
// only a handful of distinct deltas, so interning the deltas before
// packing shrinks T2 considerably.
type ValueTrie struct {
	Values []int64
	Index  Trie
}

// Lookup returns the original dense array's value at cp.
func (vt ValueTrie) Lookup(cp rune) int64 {
	if int(cp) >= vt.Index.Length {
		return 0
	}
	return vt.Values[vt.Index.Lookup(cp)]
}

// buildValueInternedTrie interns the distinct values of dense in
// first-occurrence order, packs the resulting index array with PackTrie,
// and returns both the interned value table and the index trie.
func buildValueInternedTrie(dense []int64) ValueTrie {
	valueIndex := make(map[int64]int64)
	var values []int64
	indices := make([]int64, len(dense))

	for i, v := range dense {
		idx, ok := valueIndex[v]
		if !ok {
			idx = int64(len(values))
			valueIndex[v] = idx
			values = append(values, v)
		}
		indices[i] = idx
	}

	return ValueTrie{Values: values, Index: PackTrie(indices)}
}

// DefaultTables holds every table and trie the default emission mode
// produces: normalization and lowercase mapping data.
type DefaultTables struct {
	LowercaseOffset ValueTrie
	CCC             Trie
	Xref            []rune
	DecompSeq       []uint16
	DecompIdx       Trie
	CompSeq         []uint16
	CompIdx         Trie
}

// BuildDefaultTables runs the full decomposition/composition/trie
// pipeline over data and packs the results for default-mode emission.
func BuildDefaultTables(data ucd.Data) (DefaultTables, error) {
	decomp, err := BuildDecompositions(data)
	if err != nil {
		return DefaultTables{}, err
	}
	comp, err := BuildCompositions(data)
	if err != nil {
		return DefaultTables{}, err
	}
	xref, err := BuildXref(decomp, comp)
	if err != nil {
		return DefaultTables{}, err
	}
	decompSeq, err := BuildDecompSeq(xref, decomp)
	if err != nil {
		return DefaultTables{}, err
	}
	compSeq := BuildCompSeq(xref, comp)

	lowercaseDense := make([]int64, codeSpaceSize)
	cccDense := make([]int64, codeSpaceSize)
	decompIdxDense := make([]int64, codeSpaceSize)
	compIdxDense := make([]int64, codeSpaceSize)

	for cp, record := range data.Records {
		if record.Lowercase != 0 {
			lowercaseDense[cp] = int64(record.Lowercase) - int64(cp)
		}
		cccDense[cp] = int64(record.CombiningClass)
	}
	for cp, packed := range decompSeq.Starts {
		decompIdxDense[cp] = int64(packed)
	}
	for cp, packed := range compSeq.Starts {
		compIdxDense[cp] = int64(packed)
	}

	return DefaultTables{
		LowercaseOffset: buildValueInternedTrie(lowercaseDense),
		CCC:             PackTrie(cccDense),
		Xref:            xref.Table,
		DecompSeq:       decompSeq.Seq,
		DecompIdx:       PackTrie(decompIdxDense),
		CompSeq:         compSeq.Seq,
		CompIdx:         PackTrie(compIdxDense),
	}, nil
}

// BuildCollationTables builds the DUCET hash table for collation-mode
// emission.
func BuildCollationTables(data ucd.Data) (Ducet, error) {
	if len(data.Collation) == 0 {
		return Ducet{}, fmt.Errorf("%w: no collation entries to build a DUCET table from", ErrInput)
	}
	return BuildDucet(data.Collation)
}
