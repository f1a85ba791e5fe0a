// Package codegen emits target-mode-specific module code. Each build-target
// mode is one Emitter variant with a method per asset role, so the
// orchestrator never branches on mode itself.
package codegen

import "github.com/vk/hmlc/internal/config"

// AppInput describes an application root unit to wrap.
type AppInput struct {
	// Name is the registration name of the application.
	Name string
	// ScriptRef is the module-reference expression of the app script.
	ScriptRef string
	// StyleRef is the module-reference expression of the optional sibling
	// stylesheet, empty when absent.
	StyleRef string
	// Bootstrap emits the entry bootstrap call.
	Bootstrap bool
}

// PageInput describes a page or included-component unit to wrap.
type PageInput struct {
	Name string
	// ElementRefs are module-reference expressions for each validated
	// child element, emitted before the unit's own references.
	ElementRefs []string
	TemplateRef string
	StyleRef    string
	// ScriptRef is empty when the unit has no sibling script.
	ScriptRef string
	Bootstrap bool
}

// Emitter produces generated module code for one build-target mode.
type Emitter interface {
	AppWrapper(in AppInput) string
	PageWrapper(in PageInput) string
}

// For returns the Emitter variant for a build-target mode.
func For(mode config.Mode) Emitter {
	switch mode {
	case config.Lite:
		return liteEmitter{}
	case config.Card:
		return registrationEmitter{appKey: "@app-card/", pageKey: "@app-card-component/"}
	default:
		return registrationEmitter{appKey: "@app-application/", pageKey: "@app-component/"}
	}
}
