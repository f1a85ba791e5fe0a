package compiler

import (
	"sync"

	"github.com/hashicorp/hcl/v2"
	"github.com/vk/hmlc/internal/srcmap"
)

// mapRegistry holds the per-artifact source position maps registered by the
// host after external transform stages run. Safe for concurrent use.
type mapRegistry struct {
	mu   sync.RWMutex
	maps map[string]*srcmap.Map
}

func newMapRegistry() *mapRegistry {
	return &mapRegistry{maps: make(map[string]*srcmap.Map)}
}

// RegisterMap builds and stores the position map for a generated artifact.
// The consumer is the mapping produced by the external transpilation stage.
func (c *Compiler) RegisterMap(path, generated string, consumer srcmap.Consumer) *srcmap.Map {
	m := srcmap.Build(generated, consumer)
	c.maps.mu.Lock()
	defer c.maps.mu.Unlock()
	c.maps.maps[path] = m
	return m
}

// Remap translates a generated-code position for an artifact back to its
// original source. Without a registered map the inputs come back unchanged.
func (c *Compiler) Remap(path string, pos hcl.Pos) (string, hcl.Pos) {
	c.maps.mu.RLock()
	m, ok := c.maps.maps[path]
	c.maps.mu.RUnlock()
	if !ok {
		return path, pos
	}
	return m.Remap(path, pos)
}
