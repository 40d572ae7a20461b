package ucdgen_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dropbox/miniutf/internal/ucdgen"
)

func TestBuildXref_FirstEntryIsSentinel(t *testing.T) {
	data := loadFixture(t)
	decomp, err := ucdgen.BuildDecompositions(data)
	assert.NoError(t, err)
	comp, err := ucdgen.BuildCompositions(data)
	assert.NoError(t, err)

	xref, err := ucdgen.BuildXref(decomp, comp)
	assert.NoError(t, err)
	assert.Equal(t, rune(0), xref.Table[0])
	assert.Equal(t, uint16(0), xref.Index[0])
}

func TestBuildXref_ContainsDecompositionAndCompositionMembers(t *testing.T) {
	data := loadFixture(t)
	decomp, err := ucdgen.BuildDecompositions(data)
	assert.NoError(t, err)
	comp, err := ucdgen.BuildCompositions(data)
	assert.NoError(t, err)

	xref, err := ucdgen.BuildXref(decomp, comp)
	assert.NoError(t, err)

	for cp, seq := range decomp {
		assert.Contains(t, xref.Index, cp)
		for _, e := range seq {
			assert.Contains(t, xref.Index, e)
		}
	}
	for key, c := range comp {
		assert.Contains(t, xref.Index, key.A)
		assert.Contains(t, xref.Index, key.B)
		assert.Contains(t, xref.Index, c)
	}
}

func TestBuildXref_SortedAscending(t *testing.T) {
	data := loadFixture(t)
	decomp, err := ucdgen.BuildDecompositions(data)
	assert.NoError(t, err)
	comp, err := ucdgen.BuildCompositions(data)
	assert.NoError(t, err)

	xref, err := ucdgen.BuildXref(decomp, comp)
	assert.NoError(t, err)

	for i := 1; i < len(xref.Table); i++ {
		assert.Less(t, xref.Table[i-1], xref.Table[i])
	}
}

func TestXref_Idx_PanicsOnUnregisteredCodepoint(t *testing.T) {
	xref := ucdgen.Xref{Table: []rune{0}, Index: map[rune]uint16{0: 0}}
	assert.Panics(t, func() { xref.Idx(0x41) })
}
