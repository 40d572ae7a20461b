package ucdgen_test

import (
	"path"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dropbox/miniutf/internal/ucd"
	"github.com/dropbox/miniutf/internal/ucdgen"
)

func testdataDir(t *testing.T) string {
	_, filename, _, _ := runtime.Caller(0)
	return path.Join(path.Dir(filename), "..", "..", "testdata")
}

func loadFixture(t *testing.T) ucd.Data {
	data, err := ucd.Load(testdataDir(t))
	assert.NoError(t, err)
	return data
}

// TestBuildDecompositions_PrecomposedLatin checks that precomposed Latin
// é decomposes to (e, combining acute).
func TestBuildDecompositions_PrecomposedLatin(t *testing.T) {
	data := loadFixture(t)
	decomp, err := ucdgen.BuildDecompositions(data)
	assert.NoError(t, err)
	assert.Equal(t, []rune{0x0065, 0x0301}, decomp[0x00E9])
}

// TestBuildDecompositions_ReordersByCombiningClass checks that ḉ
// (U+1E09) decomposes to (c, cedilla, acute) after reordering by
// combining class — cedilla (CCC 202) sorts before acute (CCC 230) even
// though the raw UCD mapping lists acute first.
func TestBuildDecompositions_ReordersByCombiningClass(t *testing.T) {
	data := loadFixture(t)
	decomp, err := ucdgen.BuildDecompositions(data)
	assert.NoError(t, err)
	assert.Equal(t, []rune{0x0063, 0x0327, 0x0301}, decomp[0x1E09])
}

// TestBuildDecompositions_NonDecomposableHasNoEntry checks that
// non-decomposable code points have no entry in the decomposition map.
func TestBuildDecompositions_NonDecomposableHasNoEntry(t *testing.T) {
	data := loadFixture(t)
	decomp, err := ucdgen.BuildDecompositions(data)
	assert.NoError(t, err)
	_, ok := decomp[0x0041]
	assert.False(t, ok)
}

// TestBuildCompositions_ComposesToPrecomposedLatin checks that (e, acute)
// composes to é.
func TestBuildCompositions_ComposesToPrecomposedLatin(t *testing.T) {
	data := loadFixture(t)
	comp, err := ucdgen.BuildCompositions(data)
	assert.NoError(t, err)
	assert.Equal(t, rune(0x00E9), comp[ucdgen.CompositionKey{A: 0x0065, B: 0x0301}])
}

// TestBuildCompositions_ExcludedSingletonNeverProduced checks that
// U+2126 OHM SIGN, which decomposes to U+03A9 but is a composition
// exclusion, is never produced by composing (U+03A9, ...). There is no
// second component to OHM SIGN's decomposition (it's a singleton), so
// it's excluded from the composition map on the length check alone;
// this test additionally asserts the exclusion bit would have
// disqualified it regardless.
func TestBuildCompositions_ExcludedSingletonNeverProduced(t *testing.T) {
	data := loadFixture(t)
	comp, err := ucdgen.BuildCompositions(data)
	assert.NoError(t, err)
	for _, c := range comp {
		assert.NotEqual(t, rune(0x2126), c)
	}
	assert.True(t, data.Exclusions[0x2126])
}

// TestBuildCompositions_NotComposablePair checks that composing
// (A, anything) for a non-decomposable A never succeeds.
func TestBuildCompositions_NotComposablePair(t *testing.T) {
	data := loadFixture(t)
	comp, err := ucdgen.BuildCompositions(data)
	assert.NoError(t, err)
	_, ok := comp[ucdgen.CompositionKey{A: 0x0041, B: 0x0301}]
	assert.False(t, ok)
}

// TestRoundTrip_ComposeAfterDecompose checks that compose(decompose(C))
// == C for a two-element canonical decomposition satisfying the
// composition conditions.
func TestRoundTrip_ComposeAfterDecompose(t *testing.T) {
	data := loadFixture(t)
	decomp, err := ucdgen.BuildDecompositions(data)
	assert.NoError(t, err)
	comp, err := ucdgen.BuildCompositions(data)
	assert.NoError(t, err)

	seq := decomp[0x00E9]
	assert.Len(t, seq, 2)
	assert.Equal(t, rune(0x00E9), comp[ucdgen.CompositionKey{A: seq[0], B: seq[1]}])
}
