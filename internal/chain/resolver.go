package chain

import (
	"fmt"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/vk/hmlc/internal/config"
)

// Stage names understood by the module-reference resolver.
const (
	StageUnit     = "unit"
	StageExtract  = "extract"
	StageTemplate = "template"
	StageStyle    = "style"
	StageJSON     = "json"
	StageScript   = "script"
	StageBabel    = "babel"
	StageResRef   = "resref"
	StageManifest = "manifest"
)

// FS is the filesystem collaborator the resolver consults for manifest
// presence.
type FS interface {
	Exists(path string) bool
}

// Options carries the per-asset inputs of a resolution.
type Options struct {
	// AssetPath is the canonical path of the asset the chain is for.
	AssetPath string
	// Dialect is the declared source dialect of a script asset, empty for
	// the default dialect.
	Dialect string
	// AppScript marks the application's top-level script asset.
	AppScript bool
	// SourceOverride, for element kinds, replaces the included-component
	// flag with an explicit source reference.
	SourceOverride string
}

// Resolver builds chain descriptors from an asset kind, the build-target
// mode and per-asset options. Identical inputs always yield byte-identical
// descriptors; resolved descriptors are memoized.
type Resolver struct {
	model        *config.Model
	fs           FS
	manifestPath string
	cache        *lru.Cache[string, Descriptor]
}

const cacheSize = 256

// NewResolver creates a Resolver bound to a project model and filesystem.
// manifestPath is the absolute path checked for the manifest-injection stage.
func NewResolver(model *config.Model, fs FS, manifestPath string) *Resolver {
	cache, err := lru.New[string, Descriptor](cacheSize)
	if err != nil {
		// lru.New only fails on a non-positive size.
		panic(err)
	}
	return &Resolver{
		model:        model,
		fs:           fs,
		manifestPath: manifestPath,
		cache:        cache,
	}
}

// Resolve returns the ordered transform stage list for an asset.
func (r *Resolver) Resolve(kind Kind, mode config.Mode, opts Options) Descriptor {
	key := r.cacheKey(kind, mode, opts)
	if d, ok := r.cache.Get(key); ok {
		return d
	}
	d := r.resolve(kind, mode, opts)
	r.cache.Add(key, d)
	return d
}

func (r *Resolver) resolve(kind Kind, mode config.Mode, opts Options) Descriptor {
	switch kind {
	case KindMain:
		return Descriptor{Stages: []Stage{r.mainStage(mode, nil)}}

	case KindElement:
		query := []Param{{Key: "element", Value: true}}
		if opts.SourceOverride != "" {
			query = []Param{{Key: "src", Value: opts.SourceOverride}}
		}
		return Descriptor{Stages: []Stage{r.mainStage(mode, query)}}

	case KindTemplate:
		return Descriptor{Stages: []Stage{
			extractStage("template"),
			{Name: StageTemplate},
		}}

	case KindStyle:
		return Descriptor{Stages: []Stage{
			extractStage("style"),
			{Name: StageStyle},
		}}

	case KindConfig, KindData:
		return Descriptor{Stages: []Stage{
			extractStage("json"),
			{Name: StageJSON},
		}}

	case KindScript:
		return r.scriptChain(mode, opts)

	default:
		return Descriptor{}
	}
}

// mainStage is the entry stage of main and element chains. The build-target
// mode is part of the chain so that mode switches invalidate previously
// resolved references.
func (r *Resolver) mainStage(mode config.Mode, extra []Param) Stage {
	query := []Param{{Key: "mode", Value: mode.String()}}
	return Stage{Name: StageUnit, Query: append(query, extra...)}
}

func extractStage(typ string) Stage {
	return Stage{Name: StageExtract, Query: []Param{{Key: "type", Value: typ}}}
}

// scriptChain appends either the dialect's custom transform stages or the
// default transpilation pair, then the manifest-injection stage when an
// application script of a page-style target has a manifest on disk.
func (r *Resolver) scriptChain(mode config.Mode, opts Options) Descriptor {
	stages := []Stage{{Name: StageScript}}

	if custom, ok := r.model.Transforms[opts.Dialect]; ok && opts.Dialect != "" {
		for _, name := range custom {
			stages = append(stages, Stage{Name: name})
		}
	} else {
		stages = append(stages,
			Stage{Name: StageBabel},
			Stage{Name: StageResRef},
		)
	}

	if opts.AppScript && r.model.Ability == config.PageAbility && r.fs.Exists(r.manifestPath) {
		stages = append(stages, Stage{
			Name:  StageManifest,
			Query: []Param{{Key: "path", Value: opts.AssetPath}},
		})
	}

	return Descriptor{Stages: stages}
}

// cacheKey fingerprints the full effective input of a resolution, including
// the environment-level facts the chain depends on.
func (r *Resolver) cacheKey(kind Kind, mode config.Mode, opts Options) string {
	manifest := "0"
	if opts.AppScript && r.fs.Exists(r.manifestPath) {
		manifest = "1"
	}
	return strings.Join([]string{
		kind.String(),
		mode.String(),
		r.model.Ability.String(),
		opts.AssetPath,
		opts.Dialect,
		fmt.Sprintf("%t", opts.AppScript),
		opts.SourceOverride,
		manifest,
	}, "|")
}
