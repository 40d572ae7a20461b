package ucdgen_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dropbox/miniutf/internal/ucdgen"
)

func TestBuildDecompSeq_DistinctSequencesGetOwnWindows(t *testing.T) {
	// Two code points with different decomposition sequences (E + acute
	// and e + acute) each get their own window: only a whole sequence is
	// reused, so the shared trailing acute alone does not save an entry.
	decomp := ucdgen.Decompositions{
		0x00C9: {0x0045, 0x0301},
		0x00E9: {0x0065, 0x0301},
	}
	xref2, err := ucdgen.BuildXref(decomp, ucdgen.Compositions{})
	assert.NoError(t, err)

	pool, err := ucdgen.BuildDecompSeq(xref2, decomp)
	assert.NoError(t, err)

	// DS[0] is the reserved sentinel; each distinct 2-element sequence adds
	// 2 more entries, so a pool with two genuinely distinct sequences has
	// length 1+2+2=5.
	assert.Len(t, pool.Seq, 5)
}

func TestBuildDecompSeq_ShareWindowForRepeatedSequence(t *testing.T) {
	decomp := ucdgen.Decompositions{
		0x00C9: {0x0045, 0x0301},
		0x1000: {0x0045, 0x0301}, // identical sequence, different code point
	}
	xref, err := ucdgen.BuildXref(decomp, ucdgen.Compositions{})
	assert.NoError(t, err)

	pool, err := ucdgen.BuildDecompSeq(xref, decomp)
	assert.NoError(t, err)

	assert.Equal(t, pool.Starts[0x00C9], pool.Starts[0x1000])
	// sentinel + one 2-element window = 3 entries, not 5.
	assert.Len(t, pool.Seq, 3)
}

func TestBuildDecompSeq_PackedLength(t *testing.T) {
	decomp := ucdgen.Decompositions{
		0x1E09: {0x0063, 0x0327, 0x0301},
	}
	xref, err := ucdgen.BuildXref(decomp, ucdgen.Compositions{})
	assert.NoError(t, err)

	pool, err := ucdgen.BuildDecompSeq(xref, decomp)
	assert.NoError(t, err)

	packed := pool.Starts[0x1E09]
	length := int(packed>>14) + 1
	assert.Equal(t, 3, length)
}

func TestBuildCompSeq_LastEntryInGroupMarksEndOfList(t *testing.T) {
	comp := ucdgen.Compositions{
		{A: 0x0043, B: 0x0301}: 0x1E08,
		{A: 0x0043, B: 0x0327}: 0x00C7,
	}
	xref, err := ucdgen.BuildXref(ucdgen.Decompositions{}, comp)
	assert.NoError(t, err)

	pool := ucdgen.BuildCompSeq(xref, comp)

	start := pool.Starts[0x0043]
	firstWord := pool.Seq[start*2]
	secondWord := pool.Seq[start*2+2]

	assert.Equal(t, uint16(0), firstWord&0x8000)
	assert.NotEqual(t, uint16(0), secondWord&0x8000)
}
