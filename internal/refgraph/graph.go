package refgraph

import (
	"strings"
	"sync"

	"golang.org/x/text/unicode/norm"
)

// record holds one component's reserved name set and its effective parent.
type record struct {
	// name is the component's own declared name, as first registered.
	name string
	// names maps folded reserved child names to their original spelling.
	names map[string]string
	// parent is the effective parent path, empty for roots.
	parent string
}

// Graph is the session-wide component reference graph. A single mutex guards
// all mutation so that check-and-reserve is atomic under concurrent
// compilation of sibling units.
type Graph struct {
	mu         sync.Mutex
	components map[string]*record
}

// New creates an empty Graph.
func New() *Graph {
	return &Graph{components: make(map[string]*record)}
}

// Fold normalizes a component name for comparison: Unicode NFC
// normalization followed by lowercasing.
func Fold(name string) string {
	return strings.ToLower(norm.NFC.String(name))
}

// ensure returns the record for path, creating it when absent. Callers hold
// the mutex.
func (g *Graph) ensure(path string) *record {
	rec, ok := g.components[path]
	if !ok {
		rec = &record{names: make(map[string]string)}
		g.components[path] = rec
	}
	return rec
}

// RegisterEntry records a build root (application or page) under its own
// name. Entries have no parent; their scope is the root of a flattening
// chain.
func (g *Graph) RegisterEntry(path, name string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	rec := g.ensure(path)
	rec.name = name
	rec.parent = ""
}

// RegisterChild records an inclusion edge from parentPath to path under the
// declared name. The child's scope flattens one hop: if the immediate parent
// already has an effective parent, the child is reassigned to that ancestor.
// Applied at every registration, this keeps deep chains rooted without ever
// computing a full transitive closure.
func (g *Graph) RegisterChild(path, parentPath, name string) {
	g.mu.Lock()
	defer g.mu.Unlock()

	effective := parentPath
	if p, ok := g.components[parentPath]; ok && p.parent != "" {
		effective = p.parent
	}

	rec := g.ensure(path)
	if rec.name == "" {
		rec.name = name
	}
	rec.parent = effective
}

// ResolveEffectiveParent returns the path whose name scope governs children
// of path: the recorded ancestor when one exists, otherwise path itself.
func (g *Graph) ResolveEffectiveParent(path string) string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.effectiveScope(path)
}

func (g *Graph) effectiveScope(path string) string {
	if rec, ok := g.components[path]; ok && rec.parent != "" {
		return rec.parent
	}
	return path
}

// CheckAndReserve atomically reserves name in the effective scope of
// parentPath. It returns false when the name (case-insensitively) is already
// taken; the name is recorded either way, so later duplicates keep being
// reported against it.
func (g *Graph) CheckAndReserve(parentPath, name string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	scope := g.ensure(g.effectiveScope(parentPath))
	folded := Fold(name)
	if _, taken := scope.names[folded]; taken {
		return false
	}
	scope.names[folded] = name
	return true
}

// Known reports whether path has been registered, either as a build entry or
// as an included element.
func (g *Graph) Known(path string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	_, ok := g.components[path]
	return ok
}

// Reserved returns the original spellings of every name reserved in the
// effective scope of parentPath, for diagnostics.
func (g *Graph) Reserved(parentPath string) []string {
	g.mu.Lock()
	defer g.mu.Unlock()

	scope, ok := g.components[g.effectiveScope(parentPath)]
	if !ok {
		return nil
	}
	out := make([]string, 0, len(scope.names))
	for _, original := range scope.names {
		out = append(out, original)
	}
	return out
}
