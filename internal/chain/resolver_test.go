package chain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/hmlc/internal/config"
)

// fakeFS reports existence from a fixed set of paths.
type fakeFS struct {
	existing map[string]bool
}

func (f fakeFS) Exists(path string) bool { return f.existing[path] }

func newTestResolver(t *testing.T, model *config.Model, manifestExists bool) *Resolver {
	t.Helper()
	fs := fakeFS{existing: map[string]bool{}}
	if manifestExists {
		fs.existing["src/manifest.json"] = true
	}
	return NewResolver(model, fs, "src/manifest.json")
}

func testModel() *config.Model {
	return &config.Model{
		Mode:       config.Rich,
		Ability:    config.PageAbility,
		Entries:    map[string]string{},
		Transforms: map[string][]string{},
	}
}

func TestSerialize_QueryForms(t *testing.T) {
	d := Descriptor{Stages: []Stage{
		{Name: "unit", Query: []Param{{Key: "element", Value: true}}},
		{Name: "babel", Query: []Param{
			{Key: "presets", Value: []string{"env", "stage-2"}},
			{Key: "skipped", Value: nil},
			{Key: "off", Value: false},
			{Key: "src", Value: "a.js"},
		}},
		{Name: "resref"},
	}}

	assert.Equal(t, "unit?element!babel?presets[]=env,stage-2&src=a.js!resref", d.String())
}

func TestResolve_Deterministic(t *testing.T) {
	model := testModel()
	opts := Options{AssetPath: "src/app.js", AppScript: true}

	first := newTestResolver(t, model, true).Resolve(KindScript, config.Rich, opts).String()
	second := newTestResolver(t, model, true).Resolve(KindScript, config.Rich, opts).String()
	assert.Equal(t, first, second)

	// Repeated calls on one resolver hit the memo and stay identical.
	r := newTestResolver(t, model, true)
	assert.Equal(t, r.Resolve(KindScript, config.Rich, opts).String(), r.Resolve(KindScript, config.Rich, opts).String())
}

func TestResolve_StructuralStageIsPrepended(t *testing.T) {
	r := newTestResolver(t, testModel(), false)

	cases := []struct {
		kind Kind
		want string
	}{
		{KindTemplate, "extract?type=template!template"},
		{KindStyle, "extract?type=style!style"},
		{KindConfig, "extract?type=json!json"},
		{KindData, "extract?type=json!json"},
	}
	for _, tc := range cases {
		got := r.Resolve(tc.kind, config.Rich, Options{AssetPath: "src/x"}).String()
		assert.Equal(t, tc.want, got, "kind %s", tc.kind)
	}
}

func TestResolve_ElementFlag(t *testing.T) {
	r := newTestResolver(t, testModel(), false)

	d := r.Resolve(KindElement, config.Rich, Options{AssetPath: "src/card.hml"})
	assert.Equal(t, "unit?mode=rich&element", d.String())

	d = r.Resolve(KindElement, config.Rich, Options{AssetPath: "src/card.hml", SourceOverride: "./card.hml"})
	assert.Equal(t, "unit?mode=rich&src=./card.hml", d.String())
}

func TestResolve_DefaultScriptPair(t *testing.T) {
	r := newTestResolver(t, testModel(), false)

	d := r.Resolve(KindScript, config.Rich, Options{AssetPath: "src/index.js"})
	assert.Equal(t, "script!babel!resref", d.String())
}

func TestResolve_CustomDialectReplacesPair(t *testing.T) {
	model := testModel()
	model.Transforms["ts"] = []string{"tsc", "resref"}
	r := newTestResolver(t, model, false)

	d := r.Resolve(KindScript, config.Rich, Options{AssetPath: "src/index.ts", Dialect: "ts"})
	require.Equal(t, "script!tsc!resref", d.String())
	assert.NotContains(t, d.String(), StageBabel)
}

func TestResolve_ManifestStage(t *testing.T) {
	// Appended only for an app script of a page-style target when the
	// manifest exists on disk.
	appOpts := Options{AssetPath: "src/app.js", AppScript: true}

	d := newTestResolver(t, testModel(), true).Resolve(KindScript, config.Rich, appOpts)
	assert.Equal(t, "script!babel!resref!manifest?path=src/app.js", d.String())

	d = newTestResolver(t, testModel(), false).Resolve(KindScript, config.Rich, appOpts)
	assert.Equal(t, "script!babel!resref", d.String())

	d = newTestResolver(t, testModel(), true).Resolve(KindScript, config.Rich, Options{AssetPath: "src/app.js"})
	assert.Equal(t, "script!babel!resref", d.String())

	formModel := testModel()
	formModel.Ability = config.FormAbility
	d = newTestResolver(t, formModel, true).Resolve(KindScript, config.Rich, appOpts)
	assert.Equal(t, "script!babel!resref", d.String())
}

func TestResolve_MainCarriesMode(t *testing.T) {
	r := newTestResolver(t, testModel(), false)

	assert.Equal(t, "unit?mode=rich", r.Resolve(KindMain, config.Rich, Options{}).String())
	assert.Equal(t, "unit?mode=lite", r.Resolve(KindMain, config.Lite, Options{}).String())
}
