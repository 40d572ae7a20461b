package ucdgen

// NamedSize is one emitted table's name and serialized byte count, used
// for the diagnostic byte-size report printed to stderr after generation.
// Names are in snake_case; the emitted Go source declares each table under
// the camelCase form of the same name (ccc_t1 is cccT1).
type NamedSize struct {
	Name  string
	Bytes int
}

// DefaultTableSizes reports the serialized size of every table default
// mode emits.
func DefaultTableSizes(t DefaultTables) []NamedSize {
	return []NamedSize{
		tableSize("lowercase_offset_values", t.LowercaseOffset.Values),
		tableSize("lowercase_offset_t1", t.LowercaseOffset.Index.T1),
		tableSize("lowercase_offset_t2", t.LowercaseOffset.Index.T2),
		tableSize("ccc_t1", t.CCC.T1),
		tableSize("ccc_t2", t.CCC.T2),
		tableSize("xref", int64sFromRunes(t.Xref)),
		tableSize("decomp_seq", int64sFromUint16(t.DecompSeq)),
		tableSize("decomp_idx_t1", t.DecompIdx.T1),
		tableSize("decomp_idx_t2", t.DecompIdx.T2),
		tableSize("comp_seq", int64sFromUint16(t.CompSeq)),
		tableSize("comp_idx_t1", t.CompIdx.T1),
		tableSize("comp_idx_t2", t.CompIdx.T2),
	}
}

// CollationTableSizes reports the serialized size of every table
// collation mode emits.
func CollationTableSizes(d Ducet) []NamedSize {
	return []NamedSize{
		tableSize("ducet_data", d.Data),
		tableSize("ducet_bucket_indexes", d.BucketIndex),
	}
}

func tableSize(name string, data []int64) NamedSize {
	return NamedSize{Name: name, Bytes: widthFor(data).Bytes * len(data)}
}
