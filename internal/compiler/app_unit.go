package compiler

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/vk/hmlc/internal/card"
	"github.com/vk/hmlc/internal/chain"
	"github.com/vk/hmlc/internal/codegen"
	"github.com/vk/hmlc/internal/ctxlog"
	"github.com/vk/hmlc/internal/diag"
)

// emitApp compiles the application root: the unit's own script wrapped in
// the target-mode bootstrap shape, an optional sibling stylesheet, and any
// sibling configuration.
func (c *Compiler) emitApp(ctx context.Context, in Input, u *diag.UnitDiags) string {
	model := c.sess.Model
	logger := ctxlog.FromContext(ctx)

	rel := c.relPath(in.Path)
	entryName, isEntry := model.IsEntrySource(rel)
	name := componentName(in, entryName, in.Path)
	c.sess.Graph.RegisterEntry(in.Path, name)

	scriptDesc := c.sess.Resolver.Resolve(chain.KindScript, model.Mode, chain.Options{
		AssetPath: in.Path,
		Dialect:   in.Dialect,
		AppScript: true,
	})
	scriptRef := moduleRef(scriptDesc, in.Path)

	styleRef := c.siblingStyleRef(in.Path)
	c.compileSiblingConfig(ctx, in.Path, nil, u)

	bootstrap := isEntry || rel == model.Ability.AppRoot()
	logger.Debug("Emitting application wrapper.",
		"name", name,
		"mode", model.Mode.String(),
		"bootstrap", bootstrap,
	)

	return c.emitter.AppWrapper(codegen.AppInput{
		Name:      name,
		ScriptRef: scriptRef,
		StyleRef:  styleRef,
		Bootstrap: bootstrap,
	})
}

// siblingStyleRef resolves the optional stylesheet next to a unit and
// returns its module reference, or the empty string when absent.
func (c *Compiler) siblingStyleRef(unitPath string) string {
	stylePath := siblingPath(unitPath, ExtStyle)
	if !c.fs.Exists(stylePath) {
		return ""
	}
	desc := c.sess.Resolver.Resolve(chain.KindStyle, c.sess.Model.Mode, chain.Options{AssetPath: stylePath})
	return moduleRef(desc, stylePath)
}

// compileSiblingConfig normalizes the configuration asset next to a unit,
// if present, and hands its sections to the aggregation sink.
func (c *Compiler) compileSiblingConfig(ctx context.Context, unitPath string, elem *ElementContext, u *diag.UnitDiags) {
	cfgPath := siblingPath(unitPath, ExtConfig)
	if !c.fs.Exists(cfgPath) {
		return
	}
	text, err := c.fs.ReadFile(cfgPath)
	if err != nil {
		u.Errorf(ctx, nil, "failed to read configuration %s: %v", cfgPath, err)
		return
	}
	c.normalizeConfig(ctx, string(text), card.SourceJSON, c.targetFor(unitPath), elem, u)
}

// siblingPath swaps a unit path's extension for ext.
func siblingPath(unitPath, ext string) string {
	return strings.TrimSuffix(unitPath, filepath.Ext(unitPath)) + ext
}

// targetFor derives the output artifact identifier for a unit: its
// source-root-relative path without the asset extension.
func (c *Compiler) targetFor(unitPath string) string {
	rel := c.relPath(unitPath)
	if rel == "" {
		rel = filepath.ToSlash(unitPath)
	}
	return strings.TrimSuffix(rel, filepath.Ext(rel))
}
