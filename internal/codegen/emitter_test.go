package codegen

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/hmlc/internal/config"
)

func TestRichAppWrapper(t *testing.T) {
	code := For(config.Rich).AppWrapper(AppInput{
		Name:      "app",
		ScriptRef: `$app_require$("!!script!src/app.js")`,
		StyleRef:  `$app_require$("!!extract?type=style!style!src/app.css")`,
		Bootstrap: true,
	})

	assert.Contains(t, code, "$app_define$('@app-application/app'")
	assert.Contains(t, code, `$app_script$($app_require$("!!script!src/app.js"))`)
	assert.Contains(t, code, "$app_exports$.default.styleSheet =")
	assert.Contains(t, code, "$app_bootstrap$('@app-application/app'")
}

func TestRichAppWrapper_NoStyleNoBootstrap(t *testing.T) {
	code := For(config.Rich).AppWrapper(AppInput{
		Name:      "app",
		ScriptRef: "ref",
	})

	assert.NotContains(t, code, "styleSheet")
	assert.NotContains(t, code, "$app_bootstrap$")
}

func TestCardWrapperUsesCardKeys(t *testing.T) {
	code := For(config.Card).AppWrapper(AppInput{Name: "app", ScriptRef: "ref", Bootstrap: true})
	assert.Contains(t, code, "$app_define$('@app-card/app'")

	code = For(config.Card).PageWrapper(PageInput{Name: "index", TemplateRef: "tpl"})
	assert.Contains(t, code, "$app_define$('@app-card-component/index'")
}

func TestRichPageWrapper(t *testing.T) {
	code := For(config.Rich).PageWrapper(PageInput{
		Name:        "index",
		ElementRefs: []string{"elemRefA", "elemRefB"},
		TemplateRef: "tpl",
		StyleRef:    "sty",
		ScriptRef:   "scr",
		Bootstrap:   true,
	})

	lines := strings.Split(code, "\n")
	require.Greater(t, len(lines), 2)
	// Element references come before the unit's own registration.
	assert.Equal(t, "elemRefA", lines[0])
	assert.Equal(t, "elemRefB", lines[1])
	assert.Contains(t, code, "$app_define$('@app-component/index'")
	assert.Contains(t, code, "$app_module$.exports.template = tpl")
	assert.Contains(t, code, "$app_module$.exports.style = sty")
	assert.Contains(t, code, "$app_bootstrap$('@app-component/index'")
}

func TestLiteAppWrapper(t *testing.T) {
	code := For(config.Lite).AppWrapper(AppInput{Name: "app", ScriptRef: "scr", StyleRef: "sty"})

	assert.Contains(t, code, "var $app_options$ = scr || {}")
	assert.Contains(t, code, "$app_options$.styleSheet = sty")
	assert.Contains(t, code, "$app_exports$.default = $app_options$")
	assert.NotContains(t, code, "$app_define$")
}

func TestLitePageWrapper_MissingScript(t *testing.T) {
	code := For(config.Lite).PageWrapper(PageInput{Name: "index", TemplateRef: "tpl"})

	assert.Contains(t, code, "var $app_options$ = {}")
	assert.Contains(t, code, "$app_options$.template = tpl")
}
