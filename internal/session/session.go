// Package session owns the state shared by every unit compiled in one build:
// the component reference graph, the diagnostics sink and the chain
// resolver. A Session is created at build start, passed by handle into each
// unit compilation, and discarded when the build ends; nothing here is
// process-global.
package session

import (
	"path/filepath"

	"github.com/vk/hmlc/internal/chain"
	"github.com/vk/hmlc/internal/config"
	"github.com/vk/hmlc/internal/diag"
	"github.com/vk/hmlc/internal/refgraph"
)

// Session is the shared state of one build run.
type Session struct {
	Model    *config.Model
	Graph    *refgraph.Graph
	Sink     *diag.Sink
	Resolver *chain.Resolver
}

// New creates a Session for the given project model. The filesystem
// collaborator is needed by the chain resolver for manifest presence checks.
func New(model *config.Model, fs chain.FS, minLevel diag.Severity) *Session {
	manifestPath := model.ManifestPath
	if !filepath.IsAbs(manifestPath) {
		manifestPath = filepath.Join(model.SourceRoot, model.ManifestPath)
	}
	return &Session{
		Model:    model,
		Graph:    refgraph.New(),
		Sink:     diag.NewSink(minLevel),
		Resolver: chain.NewResolver(model, fs, manifestPath),
	}
}

// Failed reports whether any unit in the session emitted an Error.
func (s *Session) Failed() bool {
	return diag.HasErrors(s.Sink.All())
}
