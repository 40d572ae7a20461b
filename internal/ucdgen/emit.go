package ucdgen

import (
	"fmt"
	"strings"
)

const generatedHeader = "// Code generated by ucdgen. DO NOT EDIT.\n\n"

// EmitDefault renders t as a self-contained Go source file in package pkg:
// the lowercase-offset, combining-class, decomposition, and composition
// tables plus their constant-time accessors.
func EmitDefault(pkg string, t DefaultTables) string {
	var sb strings.Builder
	sb.WriteString(generatedHeader)
	fmt.Fprintf(&sb, "package %s\n\n", pkg)

	writeTrieTable(&sb, "lowercaseOffsetT1", "lowercaseOffsetT2", t.LowercaseOffset.Index)
	WriteGoSlice(&sb, NewTable("lowercaseOffsetValues", t.LowercaseOffset.Values))
	writeValueTrieAccessor(&sb, "LowercaseOffset", "lowercaseOffsetValues", "lowercaseOffsetT1", "lowercaseOffsetT2", t.LowercaseOffset.Index)

	writeTrieTable(&sb, "cccT1", "cccT2", t.CCC)
	writeTrieAccessor(&sb, "CCC", "cccT1", "cccT2", t.CCC)

	WriteGoSlice(&sb, NewTable("xref", int64sFromRunes(t.Xref)))
	WriteGoSlice(&sb, NewTable("decompSeq", int64sFromUint16(t.DecompSeq)))

	writeTrieTable(&sb, "decompIdxT1", "decompIdxT2", t.DecompIdx)
	writeTrieAccessor(&sb, "DecompIdx", "decompIdxT1", "decompIdxT2", t.DecompIdx)

	WriteGoSlice(&sb, NewTable("compSeq", int64sFromUint16(t.CompSeq)))

	writeTrieTable(&sb, "compIdxT1", "compIdxT2", t.CompIdx)
	writeTrieAccessor(&sb, "CompIdx", "compIdxT1", "compIdxT2", t.CompIdx)

	return sb.String()
}

// EmitCollation renders d as a self-contained Go source file in package
// pkg: the flat DUCET record array, the bucket-index array, and the
// compile-time constants the runtime's hash function and record decoder
// need.
func EmitCollation(pkg string, d Ducet) string {
	var sb strings.Builder
	sb.WriteString(generatedHeader)
	fmt.Fprintf(&sb, "package %s\n\n", pkg)

	fmt.Fprintf(&sb, "const (\n")
	fmt.Fprintf(&sb, "\tDucetHashBuckets    = %d\n", d.Buckets)
	fmt.Fprintf(&sb, "\tDucetHashMultiplier = %d\n", d.Multiplier)
	fmt.Fprintf(&sb, "\tDucetLongestKey     = %d\n", d.LongestKey)
	fmt.Fprintf(&sb, "\tDucetKeyBits        = %d\n", d.KeyBits)
	fmt.Fprintf(&sb, "\tDucetValueBits      = %d\n", d.ValueBits)
	fmt.Fprintf(&sb, "\tDucetDataHighBit    = %d\n", d.DataHighBit)
	fmt.Fprintf(&sb, ")\n\n")

	WriteGoSlice(&sb, NewTable("ducetData", d.Data))
	WriteGoSlice(&sb, NewTable("ducetBucketIndexes", d.BucketIndex))

	return sb.String()
}

// writeTrieTable emits a trie's T1 and T2 arrays under the given names.
func writeTrieTable(sb *strings.Builder, t1Name, t2Name string, trie Trie) {
	WriteGoSlice(sb, NewTable(t1Name, trie.T1))
	WriteGoSlice(sb, NewTable(t2Name, trie.T2))
}

// writeTrieAccessor emits the constant-time lookup routine for a direct
// (non-interned) trie: two table loads and a bounds check.
func writeTrieAccessor(sb *strings.Builder, exportedName, t1Name, t2Name string, trie Trie) {
	retType := NewTable(t2Name, trie.T2).Width.GoType()
	fmt.Fprintf(sb, "func %s(cp rune) %s {\n", exportedName, retType)
	fmt.Fprintf(sb, "\tif int(cp) >= %d {\n\t\treturn 0\n\t}\n", trie.Length)
	fmt.Fprintf(sb, "\tblock := %s[int(cp)>>%d]\n", t1Name, trie.Shift)
	fmt.Fprintf(sb, "\treturn %s[(int(block)<<%d)|(int(cp)&%d)]\n", t2Name, trie.Shift, (1<<trie.Shift)-1)
	fmt.Fprintf(sb, "}\n\n")
}

// writeValueTrieAccessor emits the lookup routine for a value-interned
// trie: the bounds check happens before consulting the values table, so
// an out-of-range code point never indexes into it.
func writeValueTrieAccessor(sb *strings.Builder, exportedName, valuesName, t1Name, t2Name string, trie Trie) {
	fmt.Fprintf(sb, "func %s(cp rune) int32 {\n", exportedName)
	fmt.Fprintf(sb, "\tif int(cp) >= %d {\n\t\treturn 0\n\t}\n", trie.Length)
	fmt.Fprintf(sb, "\tblock := %s[int(cp)>>%d]\n", t1Name, trie.Shift)
	fmt.Fprintf(sb, "\tidx := %s[(int(block)<<%d)|(int(cp)&%d)]\n", t2Name, trie.Shift, (1<<trie.Shift)-1)
	fmt.Fprintf(sb, "\treturn int32(%s[idx])\n", valuesName)
	fmt.Fprintf(sb, "}\n\n")
}
