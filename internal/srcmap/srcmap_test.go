package srcmap

import (
	"testing"

	"github.com/hashicorp/hcl/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeConsumer answers position queries from a fixed line table.
type fakeConsumer struct {
	byLine map[int]Original
}

func (f fakeConsumer) OriginalPositionFor(line, column int) (Original, bool) {
	orig, ok := f.byLine[line]
	return orig, ok
}

func TestBuild_SparseMapping(t *testing.T) {
	generated := "line1\nline2\nline3\nline4\nline5"
	consumer := fakeConsumer{byLine: map[int]Original{
		2: {Source: "index.js", Pos: hcl.Pos{Line: 10, Column: 4}},
		5: {Source: "index.js", Pos: hcl.Pos{Line: 12, Column: 0}},
	}}

	m := Build(generated, consumer)

	assert.Equal(t, 2, m.Len())

	orig, ok := m.Lookup(2)
	require.True(t, ok)
	assert.Equal(t, "index.js", orig.Source)
	assert.Equal(t, 10, orig.Pos.Line)

	_, ok = m.Lookup(1)
	assert.False(t, ok)
	_, ok = m.Lookup(3)
	assert.False(t, ok)

	orig, ok = m.Lookup(5)
	require.True(t, ok)
	assert.Equal(t, 12, orig.Pos.Line)
}

func TestBuild_ManyToOne(t *testing.T) {
	shared := Original{Source: "app.js", Pos: hcl.Pos{Line: 1, Column: 0}}
	consumer := fakeConsumer{byLine: map[int]Original{1: shared, 2: shared}}

	m := Build("a\nb", consumer)

	assert.Equal(t, 2, m.Len())
	first, _ := m.Lookup(1)
	second, _ := m.Lookup(2)
	assert.Equal(t, first, second)
}

func TestRemap(t *testing.T) {
	consumer := fakeConsumer{byLine: map[int]Original{
		3: {Source: "page.js", Pos: hcl.Pos{Line: 8, Column: 2}},
	}}
	m := Build("a\nb\nc", consumer)

	file, pos := m.Remap("out.js", hcl.Pos{Line: 3, Column: 0})
	assert.Equal(t, "page.js", file)
	assert.Equal(t, 8, pos.Line)

	// Unmapped lines come back unchanged.
	file, pos = m.Remap("out.js", hcl.Pos{Line: 1, Column: 5})
	assert.Equal(t, "out.js", file)
	assert.Equal(t, 1, pos.Line)
	assert.Equal(t, 5, pos.Column)
}
