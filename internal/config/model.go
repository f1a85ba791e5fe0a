package config

import "fmt"

// Mode selects the shape of generated module code.
type Mode int

const (
	Rich Mode = iota
	Lite
	Card
)

// String returns the lowercase mode name.
func (m Mode) String() string {
	switch m {
	case Rich:
		return "rich"
	case Lite:
		return "lite"
	case Card:
		return "card"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// ParseMode converts a config string into a Mode.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "rich":
		return Rich, nil
	case "lite":
		return Lite, nil
	case "card":
		return Card, nil
	default:
		return Rich, fmt.Errorf("invalid mode %q: must be 'rich', 'lite' or 'card'", s)
	}
}

// Ability is the kind of application being built. It decides the well-known
// application root and whether reserved-tag-name validation applies.
type Ability int

const (
	// PageAbility is the ordinary page-style application.
	PageAbility Ability = iota
	// FormAbility is the embedded form/widget application.
	FormAbility
	// TestRunnerAbility treats every script unit as an application root.
	TestRunnerAbility
)

// String returns the lowercase ability name.
func (a Ability) String() string {
	switch a {
	case PageAbility:
		return "page"
	case FormAbility:
		return "form"
	case TestRunnerAbility:
		return "test-runner"
	default:
		return fmt.Sprintf("ability(%d)", int(a))
	}
}

// ParseAbility converts a config string into an Ability.
func ParseAbility(s string) (Ability, error) {
	switch s {
	case "page":
		return PageAbility, nil
	case "form":
		return FormAbility, nil
	case "test-runner":
		return TestRunnerAbility, nil
	default:
		return PageAbility, fmt.Errorf("invalid ability %q: must be 'page', 'form' or 'test-runner'", s)
	}
}

// AppRoot returns the application root file name for the ability, relative
// to the project source root.
func (a Ability) AppRoot() string {
	switch a {
	case FormAbility:
		return "form.js"
	default:
		return "app.js"
	}
}

// Model is the unified representation of a project's build configuration.
type Model struct {
	Mode         Mode
	Ability      Ability
	LogLevel     string
	SourceRoot   string
	OutputDir    string
	ManifestPath string

	// Entries maps a logical entry name to its root source file, relative
	// to SourceRoot.
	Entries map[string]string

	// Transforms maps a script dialect to the custom transform stage list
	// that replaces the default transpilation pair for that dialect.
	Transforms map[string][]string
}

// IsEntrySource reports whether the given source path (relative to the
// source root) is registered in the entry set, and under which name.
func (m *Model) IsEntrySource(rel string) (string, bool) {
	for name, src := range m.Entries {
		if src == rel {
			return name, true
		}
	}
	return "", false
}
