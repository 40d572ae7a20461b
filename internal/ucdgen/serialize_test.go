package ucdgen_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dropbox/miniutf/internal/ucdgen"
)

func TestWidthFor(t *testing.T) {
	rows := []struct {
		name   string
		data   []int64
		bytes  int
		signed bool
	}{
		{"empty", nil, 1, false},
		{"fits uint8", []int64{0, 255}, 1, false},
		{"needs uint16", []int64{0, 256}, 2, false},
		{"needs uint32", []int64{0, 70000}, 4, false},
		{"negative fits int8", []int64{-128, 127}, 1, true},
		{"negative needs int16", []int64{-129, 0}, 2, true},
		{"negative needs int32", []int64{0, -40000}, 4, true},
	}

	for _, row := range rows {
		t.Run(row.name, func(t *testing.T) {
			w := ucdgen.NewTable("t", row.data).Width
			assert.Equal(t, row.bytes, w.Bytes)
			assert.Equal(t, row.signed, w.Signed)
		})
	}
}

func TestWidthFor_NoNarrowerWidthWouldFit(t *testing.T) {
	// 300 needs at least 9 bits, so it must not fit in a 1-byte width.
	w := ucdgen.NewTable("t", []int64{300}).Width
	assert.Equal(t, 2, w.Bytes)
	assert.Less(t, int64(255), int64(300))
}

func TestIntWidth_GoType(t *testing.T) {
	assert.Equal(t, "uint8", ucdgen.NewTable("t", []int64{1}).Width.GoType())
	assert.Equal(t, "int16", ucdgen.NewTable("t", []int64{-200}).Width.GoType())
	assert.Equal(t, "uint32", ucdgen.NewTable("t", []int64{100000}).Width.GoType())
}

func TestWriteGoSlice_EmitsDeclarationAndValues(t *testing.T) {
	var sb strings.Builder
	ucdgen.WriteGoSlice(&sb, ucdgen.NewTable("myTable", []int64{1, 2, 3}))

	out := sb.String()
	assert.Contains(t, out, "var myTable = []uint8{")
	assert.Contains(t, out, "1, 2, 3,")
	assert.True(t, strings.HasSuffix(out, "}\n\n"))
}
