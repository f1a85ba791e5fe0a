// Package srcmap translates positions in generated module code back to the
// original source they were produced from. The mapping is sparse and
// line-granular: each generated line has at most one original position, and
// generated lines the transpiler reported nothing for are simply absent.
package srcmap

import (
	"strings"

	"github.com/hashicorp/hcl/v2"
)

// Original is a position in an original source file.
type Original struct {
	Source string
	Pos    hcl.Pos
}

// Consumer exposes the position mapping produced by an external transform
// stage. Implementations answer queries in generated coordinates.
type Consumer interface {
	// OriginalPositionFor returns the original position for the given
	// generated line and column, and whether one exists.
	OriginalPositionFor(line, column int) (Original, bool)
}

// Map is a sparse table from generated line number (1-indexed) to the
// original position that produced it.
type Map struct {
	entries map[int]Original
}

// Build queries the consumer once per line of generated text, at column 0,
// and records every hit. Multiple generated lines may map to the same
// original position.
func Build(generated string, c Consumer) *Map {
	m := &Map{entries: make(map[int]Original)}
	lines := strings.Count(generated, "\n") + 1
	for line := 1; line <= lines; line++ {
		if orig, ok := c.OriginalPositionFor(line, 0); ok {
			m.entries[line] = orig
		}
	}
	return m
}

// Lookup returns the original position recorded for a generated line.
func (m *Map) Lookup(line int) (Original, bool) {
	orig, ok := m.entries[line]
	return orig, ok
}

// Len returns the number of generated lines with a recorded mapping.
func (m *Map) Len() int {
	return len(m.entries)
}

// Remap rewrites a generated-code position into original coordinates. When
// the line has no mapping the input is returned unchanged, so diagnostics
// still point somewhere useful.
func (m *Map) Remap(file string, pos hcl.Pos) (string, hcl.Pos) {
	if orig, ok := m.entries[pos.Line]; ok {
		return orig.Source, orig.Pos
	}
	return file, pos
}
