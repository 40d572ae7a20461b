package ucdgen

import "golang.org/x/exp/slices"

// Trie is a packed two-level lookup table: V[c] == T2[(T1[c>>Shift]<<Shift)
// | (c & mask)] for every c below Length, and 0 for every c at or above
// Length.
type Trie struct {
	T1     []int64
	T2     []int64
	Shift  int
	Length int
}

// Lookup reproduces the original dense array's value at cp in constant
// time: two table loads and a bounds check, 0 for anything out of range.
func (t Trie) Lookup(cp rune) int64 {
	if int(cp) >= t.Length {
		return 0
	}
	mask := (1 << t.Shift) - 1
	block := t.T1[int(cp)>>t.Shift]
	return t.T2[(int(block)<<t.Shift)|(int(cp)&mask)]
}

// PackTrie finds the block shift minimizing total serialized byte cost
// and returns the resulting two-level trie. values is first truncated at
// its highest nonzero index; everything past that is assumed zero by
// Lookup.
func PackTrie(values []int64) Trie {
	length := retainedLength(values)
	if length == 0 {
		return Trie{Length: 0}
	}
	v := values[:length]

	bestShift := -1
	var bestT1, bestT2 []int64
	bestCost := -1

	for shift := 0; shift <= bitLength(len(v)); shift++ {
		t1, t2 := splitAtShift(v, shift)
		cost := widthFor(t1).Bytes*len(t1) + widthFor(t2).Bytes*len(t2)
		if bestCost < 0 || cost < bestCost {
			bestCost, bestShift, bestT1, bestT2 = cost, shift, t1, t2
		}
	}

	return Trie{T1: bestT1, T2: bestT2, Shift: bestShift, Length: length}
}

// retainedLength returns 1 + the highest index holding a nonzero value,
// or 0 if values is entirely zero.
func retainedLength(values []int64) int {
	for i := len(values) - 1; i >= 0; i-- {
		if values[i] != 0 {
			return i + 1
		}
	}
	return 0
}

// splitAtShift partitions v into blocks of size 2^shift, deduplicating
// blocks by value equality in order of first occurrence. T1 holds the
// block id for every block of v in order; T2 is the concatenation of the
// unique blocks. Candidate blocks are grouped by their first element,
// which narrows the slices.Equal comparison to the few prior blocks that
// could plausibly match.
func splitAtShift(v []int64, shift int) (t1, t2 []int64) {
	size := 1 << shift
	var unique [][]int64
	var uniqueIDs []int64
	byFirstElement := make(map[int64][]int)

	for i := 0; i < len(v); i += size {
		end := i + size
		if end > len(v) {
			end = len(v)
		}
		block := v[i:end]

		id := int64(-1)
		for _, candidate := range byFirstElement[block[0]] {
			if slices.Equal(unique[candidate], block) {
				id = uniqueIDs[candidate]
				break
			}
		}
		if id < 0 {
			id = int64(len(t2) >> shift)
			byFirstElement[block[0]] = append(byFirstElement[block[0]], len(unique))
			unique = append(unique, block)
			uniqueIDs = append(uniqueIDs, id)
			t2 = append(t2, block...)
		}
		t1 = append(t1, id)
	}

	return t1, t2
}
