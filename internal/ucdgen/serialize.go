package ucdgen

import (
	"fmt"
	"sort"
	"strings"
)

// IntWidth describes the narrowest fixed-width integer type that holds
// every value in a table: 1, 2, or 4 bytes, signed if any value is
// negative.
type IntWidth struct {
	Bytes  int
	Signed bool
}

// GoType returns the Go integer type name for w, e.g. "int16" or
// "uint32".
func (w IntWidth) GoType() string {
	prefix := "u"
	if w.Signed {
		prefix = ""
	}
	return fmt.Sprintf("%sint%d", prefix, w.Bytes*8)
}

// widthFor picks the narrowest width in {1,2,4} bytes that holds every
// value in data, signed iff any value is negative. An empty slice widens
// to the smallest width, 1 byte unsigned.
func widthFor(data []int64) IntWidth {
	if len(data) == 0 {
		return IntWidth{Bytes: 1, Signed: false}
	}

	var max, min int64
	for _, v := range data {
		if v > max {
			max = v
		}
		if v < min {
			min = v
		}
	}

	if min < 0 {
		bits := bitLength(max) + 1
		if negBits := bitLength(-1 - min) + 1; negBits > bits {
			bits = negBits
		}
		return IntWidth{Bytes: bytesForBits(bits), Signed: true}
	}

	return IntWidth{Bytes: bytesForBits(bitLength(max)), Signed: false}
}

// bitLength returns the number of bits required to represent v in
// two's-complement unsigned form, i.e. floor(log2(v))+1 for v>0, and 0
// for v<=0.
func bitLength(v int64) int {
	n := 0
	for v > 0 {
		n++
		v >>= 1
	}
	return n
}

func bytesForBits(bits int) int {
	switch {
	case bits <= 8:
		return 1
	case bits <= 16:
		return 2
	default:
		return 4
	}
}

// Table is a named, width-chosen integer table ready for Go source
// emission.
type Table struct {
	Name  string
	Width IntWidth
	Data  []int64
}

// NewTable selects the narrowest width for data and wraps it as a named
// Table.
func NewTable(name string, data []int64) Table {
	return Table{Name: name, Width: widthFor(data), Data: data}
}

// WriteGoSlice emits table as a package-level Go slice declaration,
// wrapping elements at a fixed column count in the style of a
// machine-generated table.
func WriteGoSlice(sb *strings.Builder, t Table) {
	fmt.Fprintf(sb, "var %s = []%s{\n", t.Name, t.Width.GoType())
	const perLine = 12
	for i := 0; i < len(t.Data); i += perLine {
		end := i + perLine
		if end > len(t.Data) {
			end = len(t.Data)
		}
		sb.WriteString("\t")
		for _, v := range t.Data[i:end] {
			fmt.Fprintf(sb, "%d, ", v)
		}
		sb.WriteString("\n")
	}
	sb.WriteString("}\n\n")
}

// int64sFromUint16 widens a uint16 slice for width selection and
// emission, which operate uniformly over int64.
func int64sFromUint16(vs []uint16) []int64 {
	out := make([]int64, len(vs))
	for i, v := range vs {
		out[i] = int64(v)
	}
	return out
}

func int64sFromRunes(rs []rune) []int64 {
	out := make([]int64, len(rs))
	for i, r := range rs {
		out[i] = int64(r)
	}
	return out
}

// sortedKeys returns the keys of m in ascending order. Emission must
// never range over a Go map directly: iteration order is randomized and
// output must be byte-for-byte reproducible across runs.
func sortedKeys[K ~int | ~int32 | ~int64, V any](m map[K]V) []K {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}
