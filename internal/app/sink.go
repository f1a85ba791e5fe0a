package app

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/vk/hmlc/internal/compiler"
	"github.com/zclconf/go-cty/cty"
	ctyjson "github.com/zclconf/go-cty/cty/json"
)

// AggregateSink is the host-side implementation of the compiler's
// configuration aggregation collaborator. It collects normalized sections
// per output target and writes one composite descriptor file per target.
type AggregateSink struct {
	mu      sync.Mutex
	targets map[string]map[string]cty.Value
}

// NewAggregateSink creates an empty sink.
func NewAggregateSink() *AggregateSink {
	return &AggregateSink{targets: make(map[string]map[string]cty.Value)}
}

// CompileJSON records one section for a target. Sections from an included
// element aggregate under the element's own descriptor.
func (s *AggregateSink) CompileJSON(target, section string, value cty.Value, elem *compiler.ElementContext) error {
	if elem != nil {
		target = target + "." + elem.Name
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sections, ok := s.targets[target]
	if !ok {
		sections = make(map[string]cty.Value)
		s.targets[target] = sections
	}
	sections[section] = value
	return nil
}

// Sections returns the sections recorded for a target. Primarily for tests.
func (s *AggregateSink) Sections(target string) map[string]cty.Value {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make(map[string]cty.Value, len(s.targets[target]))
	for name, v := range s.targets[target] {
		out[name] = v
	}
	return out
}

// Flush writes one <target>.json composite descriptor per recorded target
// under outputDir.
func (s *AggregateSink) Flush(outputDir string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for target, sections := range s.targets {
		descriptor := cty.ObjectVal(sections)
		data, err := ctyjson.Marshal(descriptor, descriptor.Type())
		if err != nil {
			return fmt.Errorf("serializing descriptor for %s: %w", target, err)
		}

		outPath := filepath.Join(outputDir, target+".json")
		if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
			return err
		}
		if err := os.WriteFile(outPath, data, 0o644); err != nil {
			return err
		}
	}
	return nil
}
