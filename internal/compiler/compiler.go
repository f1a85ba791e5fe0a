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
	"github.com/vk/hmlc/internal/session"
)

// Asset file extensions recognized by the orchestrator.
const (
	ExtMarkup = ".hml"
	ExtStyle  = ".css"
	ExtScript = ".js"
	ExtConfig = ".json"
)

// Input is one source unit plus its contextual metadata.
type Input struct {
	// Path is the canonical path of the unit.
	Path string
	// Text is the unit's raw content, supplied by the host.
	Text string
	// Dialect is the declared script dialect, empty for the default.
	Dialect string
	// IsElement marks a unit compiled as an already-included element
	// reference rather than a build entry.
	IsElement bool
	// ElementName is the declared name of an included element.
	ElementName string
	// ParentPath is the including component's path for an element unit.
	ParentPath string
}

// Result is the outcome of compiling one unit.
type Result struct {
	// Code is the generated module code, empty for degraded units and
	// for units whose only product is aggregated configuration.
	Code string
	// Diagnostics are the unit's diagnostics that passed the level gate.
	Diagnostics []diag.Diagnostic
	// Failed reports whether the unit emitted an Error diagnostic,
	// independent of level filtering of lower severities.
	Failed bool
}

// Compiler orchestrates unit compilation against a build session.
type Compiler struct {
	sess    *session.Session
	fs      FS
	sink    ConfigSink
	emitter codegen.Emitter
	maps    *mapRegistry
}

// New creates a Compiler bound to a session and its collaborators.
func New(sess *session.Session, fs FS, sink ConfigSink) *Compiler {
	return &Compiler{
		sess:    sess,
		fs:      fs,
		sink:    sink,
		emitter: codegen.For(sess.Model.Mode),
		maps:    newMapRegistry(),
	}
}

// Compile classifies and compiles one source unit. It never returns an
// error: every failure mode is a diagnostic, and the worst outcome is empty
// generated code for this unit.
func (c *Compiler) Compile(ctx context.Context, in Input) Result {
	logger := ctxlog.FromContext(ctx).With("unit", in.Path)
	ctx = ctxlog.WithLogger(ctx, logger)
	u := c.sess.Sink.ForUnit(in.Path)

	var code string
	switch filepath.Ext(in.Path) {
	case ExtScript:
		code = c.compileScript(ctx, in, u)
	case ExtMarkup:
		code = c.emitPage(ctx, in, u)
	case ExtConfig:
		code = c.compileConfigUnit(ctx, in, u)
	case ExtStyle:
		// Styles compile only as siblings of a component unit.
		u.Notef(ctx, nil, "stylesheet has no standalone module output")
	default:
		u.Notef(ctx, nil, "unrecognized asset kind %q", filepath.Ext(in.Path))
	}

	return Result{Code: code, Diagnostics: u.Diagnostics(), Failed: u.Failed()}
}

// compileScript decides between the application wrapper and plain script
// pass-through. The test-runner ability treats every script as an
// application root.
func (c *Compiler) compileScript(ctx context.Context, in Input, u *diag.UnitDiags) string {
	model := c.sess.Model
	if model.Ability == config.TestRunnerAbility || c.relPath(in.Path) == model.Ability.AppRoot() {
		return c.emitApp(ctx, in, u)
	}
	// Not the application root: a plain script module, passed through.
	return in.Text
}

// relPath returns the unit path relative to the project source root, or the
// empty string when the unit lives outside it.
func (c *Compiler) relPath(path string) string {
	rel, err := filepath.Rel(c.sess.Model.SourceRoot, path)
	if err != nil || strings.HasPrefix(rel, "..") {
		return ""
	}
	return filepath.ToSlash(rel)
}

// moduleRef renders a chain descriptor plus asset path as a loadable
// module-reference expression.
func moduleRef(desc chain.Descriptor, path string) string {
	return "$app_require$(\"!!" + desc.String() + chain.StageSeparator + filepath.ToSlash(path) + "\")"
}

// componentName derives a unit's component name: the declared element name,
// the logical entry name, or the file base name, in that order, lowercased.
func componentName(in Input, entryName, path string) string {
	name := in.ElementName
	if name == "" {
		name = entryName
	}
	if name == "" {
		name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return strings.ToLower(name)
}
