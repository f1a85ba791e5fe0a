package codegen

import (
	"fmt"
	"strings"
)

// liteEmitter produces the Lite code shape: a flat options object merging
// the script module's defaults with the style sheet and template outputs.
type liteEmitter struct{}

func (liteEmitter) AppWrapper(in AppInput) string {
	var b strings.Builder

	if in.ScriptRef != "" {
		fmt.Fprintf(&b, "var $app_options$ = %s || {}\n", in.ScriptRef)
	} else {
		b.WriteString("var $app_options$ = {}\n")
	}
	if in.StyleRef != "" {
		fmt.Fprintf(&b, "$app_options$.styleSheet = %s\n", in.StyleRef)
	}
	b.WriteString("$app_exports$.default = $app_options$\n")
	return b.String()
}

func (liteEmitter) PageWrapper(in PageInput) string {
	var b strings.Builder

	for _, ref := range in.ElementRefs {
		b.WriteString(ref)
		b.WriteString("\n")
	}

	if in.ScriptRef != "" {
		fmt.Fprintf(&b, "var $app_options$ = %s || {}\n", in.ScriptRef)
	} else {
		b.WriteString("var $app_options$ = {}\n")
	}
	fmt.Fprintf(&b, "$app_options$.template = %s\n", in.TemplateRef)
	if in.StyleRef != "" {
		fmt.Fprintf(&b, "$app_options$.style = %s\n", in.StyleRef)
	}
	b.WriteString("$app_exports$.default = $app_options$\n")
	return b.String()
}
