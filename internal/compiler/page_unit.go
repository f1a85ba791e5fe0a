package compiler

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/vk/hmlc/internal/chain"
	"github.com/vk/hmlc/internal/codegen"
	"github.com/vk/hmlc/internal/config"
	"github.com/vk/hmlc/internal/ctxlog"
	"github.com/vk/hmlc/internal/diag"
	"github.com/vk/hmlc/internal/markup"
	"github.com/vk/hmlc/internal/refgraph"
)

// emitPage compiles a markup unit: discovers and validates its embedded
// custom-element references, then wraps the unit's own template, style and
// script references in the target-mode page shape.
func (c *Compiler) emitPage(ctx context.Context, in Input, u *diag.UnitDiags) string {
	model := c.sess.Model
	graph := c.sess.Graph
	logger := ctxlog.FromContext(ctx)

	rel := c.relPath(in.Path)
	entryName, isEntry := model.IsEntrySource(rel)
	name := componentName(in, entryName, in.Path)

	if in.IsElement {
		graph.RegisterChild(in.Path, in.ParentPath, name)
	} else {
		graph.RegisterEntry(in.Path, name)
	}

	// Reserved vocabulary applies to page-style entries of the page
	// ability only; included elements and other abilities are exempt.
	if !in.IsElement && model.Ability == config.PageAbility && refgraph.IsReserved(name) {
		u.Errorf(ctx, nil, "component name %q is a reserved element name", name)
		return ""
	}

	elementRefs, ok := c.resolveElements(ctx, in, u)
	if !ok {
		return ""
	}

	templateDesc := c.sess.Resolver.Resolve(chain.KindTemplate, model.Mode, chain.Options{AssetPath: in.Path})
	templateRef := moduleRef(templateDesc, in.Path)

	styleRef := c.siblingStyleRef(in.Path)

	scriptRef := ""
	scriptPath := siblingPath(in.Path, ExtScript)
	if c.fs.Exists(scriptPath) {
		desc := c.sess.Resolver.Resolve(chain.KindScript, model.Mode, chain.Options{
			AssetPath: scriptPath,
			Dialect:   in.Dialect,
		})
		scriptRef = moduleRef(desc, scriptPath)
	} else {
		u.Notef(ctx, nil, "no sibling script for %s; compiling without script", filepath.Base(in.Path))
	}

	var elemCtx *ElementContext
	if in.IsElement {
		elemCtx = &ElementContext{Name: name, Path: in.Path}
	}
	c.compileSiblingConfig(ctx, in.Path, elemCtx, u)

	logger.Debug("Emitting page wrapper.",
		"name", name,
		"elements", len(elementRefs),
		"entry", isEntry,
	)

	return c.emitter.PageWrapper(codegen.PageInput{
		Name:        name,
		ElementRefs: elementRefs,
		TemplateRef: templateRef,
		StyleRef:    styleRef,
		ScriptRef:   scriptRef,
		Bootstrap:   isEntry && !in.IsElement,
	})
}

// resolveElements validates every custom-element declaration in the unit's
// markup and returns their module references. A declaration whose source
// path does not exist is terminal for the unit: ok is false and the unit
// compiles to empty output. Name collisions fail the build but compilation
// continues.
func (c *Compiler) resolveElements(ctx context.Context, in Input, u *diag.UnitDiags) ([]string, bool) {
	model := c.sess.Model
	graph := c.sess.Graph

	var refs []string
	for _, ref := range markup.ScanElements(in.Text) {
		pos := ref.Pos

		src := ref.Src
		if src == "" {
			u.Errorf(ctx, &pos, "element declaration is missing a src attribute")
			return nil, false
		}
		if filepath.Ext(src) == "" {
			src += ExtMarkup
		}

		resolved, checked := c.resolveElementPath(in.Path, src)
		if checked && !c.fs.Exists(resolved) {
			u.Errorf(ctx, &pos, "element source %s does not exist", resolved)
			return nil, false
		}

		name := ref.Name
		if name == "" {
			name = strings.TrimSuffix(filepath.Base(src), filepath.Ext(src))
		}
		name = strings.ToLower(name)

		if _, doubleUse := model.IsEntrySource(c.relPath(resolved)); doubleUse {
			u.Warnf(ctx, &pos, "element %q is also a build entry; reference it or build it, not both", name)
		}

		if !graph.CheckAndReserve(in.Path, name) {
			u.Errorf(ctx, &pos, "custom element name %q is already used in this component scope", name)
		}
		graph.RegisterChild(resolved, in.Path, name)

		desc := c.sess.Resolver.Resolve(chain.KindElement, model.Mode, chain.Options{AssetPath: resolved})
		refs = append(refs, moduleRef(desc, resolved))
	}

	return refs, true
}

// resolveElementPath turns a declared element source into a checkable path.
// Relative references resolve against the unit's directory and rooted ones
// against the source root; both are existence-checked. A bare specifier is
// left to the host's module resolver.
func (c *Compiler) resolveElementPath(unitPath, src string) (resolved string, checked bool) {
	switch {
	case strings.HasPrefix(src, "./") || strings.HasPrefix(src, "../"):
		return filepath.Join(filepath.Dir(unitPath), src), true
	case strings.HasPrefix(src, "/"):
		return filepath.Join(c.sess.Model.SourceRoot, strings.TrimPrefix(src, "/")), true
	case filepath.IsAbs(src):
		return src, true
	default:
		return src, false
	}
}
