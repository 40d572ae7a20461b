package ucdgen

// CompositionKey is an ordered pair of code points (A, B) admitted into the
// canonical composition map.
type CompositionKey struct {
	A, B rune
}

// Decompositions is the canonical decomposition map D: fully recursively
// expanded and canonically reordered, keyed by code point. Every value has
// length in [1,4].
type Decompositions map[rune][]rune

// Compositions is the canonical composition map K: ordered pairs to their
// composed code point, already filtered by exclusions and starter
// constraints.
type Compositions map[CompositionKey]rune

// Xref is the interesting-code-point table X plus its inverse index. X[0]
// is always 0, the decomposition-sequence sentinel.
type Xref struct {
	Table []rune
	Index map[rune]uint16
}

// Idx returns the dense index of cp in the cross-reference table. It
// panics if cp was never registered; callers must only look up code
// points that participate in a decomposition or composition.
func (x Xref) Idx(cp rune) uint16 {
	idx, ok := x.Index[cp]
	if !ok {
		panic(errNeverIndexed(cp))
	}
	return idx
}

type errNeverIndexed rune

func (e errNeverIndexed) Error() string {
	return "ucdgen: code point not registered in cross-reference table: " + runeHex(rune(e))
}

func runeHex(r rune) string {
	const hexDigits = "0123456789ABCDEF"
	if r == 0 {
		return "U+0000"
	}
	var buf [8]byte
	i := len(buf)
	v := uint32(r)
	for v > 0 || i > len(buf)-4 {
		i--
		buf[i] = hexDigits[v&0xF]
		v >>= 4
	}
	return "U+" + string(buf[i:])
}

// DecompSeqPool is the flat decomposition-sequence pool DS together with
// the per-code-point start-and-length map DSM.
type DecompSeqPool struct {
	Seq    []uint16
	Starts map[rune]uint16 // packed: low 14 bits = offset, top 2 bits = length-1
}

// CompSeqPool is the flat composition-sequence pool CS together with the
// per-first-component half-offset map CM.
type CompSeqPool struct {
	Seq    []uint16 // (idx(B), idx(C)) pairs; last pair of each group has bit 15 set on its first word
	Starts map[rune]uint16
}
