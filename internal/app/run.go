package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/vk/hmlc/internal/compiler"
	"github.com/vk/hmlc/internal/ctxlog"
	"github.com/vk/hmlc/internal/diag"
	"github.com/vk/hmlc/internal/fsutil"
)

// Run compiles every entry in the project's entry set and writes the
// generated module code and aggregated configuration to the output
// directory. It returns an error when any unit failed.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Info("Build starting.",
		"mode", a.model.Mode.String(),
		"ability", a.model.Ability.String(),
		"entries", len(a.model.Entries),
	)

	names := make([]string, 0, len(a.model.Entries))
	for name := range a.model.Entries {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		src := a.model.Entries[name]
		path := filepath.Join(a.model.SourceRoot, src)

		text, err := os.ReadFile(path)
		if err != nil {
			a.logger.Error("Failed to read entry source.", "entry", name, "path", path, "error", err)
			return fmt.Errorf("entry %q: %w", name, err)
		}

		result := a.compiler.Compile(ctx, compiler.Input{Path: path, Text: string(text)})
		if result.Code != "" {
			if err := a.writeOutput(src, result.Code); err != nil {
				return fmt.Errorf("entry %q: %w", name, err)
			}
		}
		a.logger.Debug("Entry compiled.", "entry", name, "failed", result.Failed)
	}

	a.reportUnreachable()

	if err := a.sink.Flush(a.model.OutputDir); err != nil {
		return fmt.Errorf("writing aggregated configuration: %w", err)
	}

	if a.sess.Failed() {
		errs := 0
		for _, d := range a.sess.Sink.All() {
			if d.Severity == diag.Error {
				errs++
			}
		}
		return fmt.Errorf("build failed with %d error(s)", errs)
	}

	a.logger.Info("Build finished.")
	return nil
}

// reportUnreachable warns about markup units in the source tree that were
// never registered in the reference graph, neither as an entry nor as an
// included element.
func (a *App) reportUnreachable() {
	markups, err := fsutil.FindFilesByExtension(a.model.SourceRoot, compiler.ExtMarkup)
	if err != nil {
		a.logger.Debug("Source tree scan failed.", "error", err)
		return
	}
	for _, path := range markups {
		if !a.sess.Graph.Known(path) {
			a.logger.Warn("Markup unit is not reachable from any entry.", "path", path)
		}
	}
}

// writeOutput writes one entry's generated module code under the output
// directory, swapping the source extension for .js.
func (a *App) writeOutput(relSource, code string) error {
	rel := strings.TrimSuffix(relSource, filepath.Ext(relSource)) + ".js"
	outPath := filepath.Join(a.model.OutputDir, rel)
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return err
	}
	return os.WriteFile(outPath, []byte(code), 0o644)
}
