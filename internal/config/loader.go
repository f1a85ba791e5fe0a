package config

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/vk/hmlc/internal/ctxlog"
)

// Default file names used when the project block omits them.
const (
	DefaultManifest   = "manifest.json"
	DefaultSourceRoot = "src"
	DefaultOutputDir  = "build"
)

// Load reads a project.hcl file and translates it into the agnostic Model.
func Load(ctx context.Context, path string) (*Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Loading project configuration.", "path", path)

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse project file %s: %w", path, diags)
	}

	var raw projectFile
	if diags := gohcl.DecodeBody(file.Body, nil, &raw); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode project file %s: %w", path, diags)
	}

	model, err := translate(&raw)
	if err != nil {
		return nil, fmt.Errorf("invalid project file %s: %w", path, err)
	}

	logger.Debug("Project configuration loaded.",
		"mode", model.Mode.String(),
		"ability", model.Ability.String(),
		"entries", len(model.Entries),
	)
	return model, nil
}

// translate converts the HCL-specific schema into the agnostic model,
// applying defaults and validating enumerated fields.
func translate(raw *projectFile) (*Model, error) {
	model := &Model{
		LogLevel:     "info",
		SourceRoot:   DefaultSourceRoot,
		OutputDir:    DefaultOutputDir,
		ManifestPath: DefaultManifest,
		Entries:      make(map[string]string),
		Transforms:   make(map[string][]string),
	}

	if p := raw.Project; p != nil {
		if p.Mode != "" {
			mode, err := ParseMode(p.Mode)
			if err != nil {
				return nil, err
			}
			model.Mode = mode
		}
		if p.Ability != "" {
			ability, err := ParseAbility(p.Ability)
			if err != nil {
				return nil, err
			}
			model.Ability = ability
		}
		if p.LogLevel != "" {
			model.LogLevel = p.LogLevel
		}
		if p.SourceRoot != "" {
			model.SourceRoot = p.SourceRoot
		}
		if p.OutputDir != "" {
			model.OutputDir = p.OutputDir
		}
		if p.Manifest != "" {
			model.ManifestPath = p.Manifest
		}
	}

	for _, e := range raw.Entries {
		if e.Source == "" {
			return nil, fmt.Errorf("entry %q has an empty source", e.Name)
		}
		if _, dup := model.Entries[e.Name]; dup {
			return nil, fmt.Errorf("duplicate entry name %q", e.Name)
		}
		model.Entries[e.Name] = e.Source
	}

	for _, t := range raw.Transforms {
		if len(t.Stages) == 0 {
			return nil, fmt.Errorf("transform %q declares no stages", t.Dialect)
		}
		if _, dup := model.Transforms[t.Dialect]; dup {
			return nil, fmt.Errorf("duplicate transform dialect %q", t.Dialect)
		}
		model.Transforms[t.Dialect] = t.Stages
	}

	return model, nil
}
