package codegen

import (
	"fmt"
	"strings"
)

// registrationEmitter produces the Rich and Card code shape: a
// $app_define$ registration block wrapping the script module, with the
// template and style outputs attached, and a bootstrap call for entries.
// Rich and Card differ only in their registration key prefixes.
type registrationEmitter struct {
	appKey  string
	pageKey string
}

func (e registrationEmitter) AppWrapper(in AppInput) string {
	var b strings.Builder
	key := e.appKey + in.Name

	fmt.Fprintf(&b, "$app_define$('%s', [], function($app_require$, $app_exports$, $app_module$) {\n", key)
	if in.ScriptRef != "" {
		fmt.Fprintf(&b, "  $app_script$(%s)($app_require$, $app_exports$, $app_module$)\n", in.ScriptRef)
	}
	if in.StyleRef != "" {
		fmt.Fprintf(&b, "  $app_exports$.default.styleSheet = %s\n", in.StyleRef)
	}
	b.WriteString("})\n")

	if in.Bootstrap {
		fmt.Fprintf(&b, "$app_bootstrap$('%s', undefined, undefined)\n", key)
	}
	return b.String()
}

func (e registrationEmitter) PageWrapper(in PageInput) string {
	var b strings.Builder
	key := e.pageKey + in.Name

	for _, ref := range in.ElementRefs {
		b.WriteString(ref)
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "$app_define$('%s', [], function($app_require$, $app_exports$, $app_module$) {\n", key)
	if in.ScriptRef != "" {
		fmt.Fprintf(&b, "  $app_script$(%s)($app_require$, $app_exports$, $app_module$)\n", in.ScriptRef)
	}
	fmt.Fprintf(&b, "  $app_module$.exports.template = %s\n", in.TemplateRef)
	if in.StyleRef != "" {
		fmt.Fprintf(&b, "  $app_module$.exports.style = %s\n", in.StyleRef)
	}
	b.WriteString("})\n")

	if in.Bootstrap {
		fmt.Fprintf(&b, "$app_bootstrap$('%s', undefined, undefined)\n", key)
	}
	return b.String()
}
