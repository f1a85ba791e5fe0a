package diag

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
)

// Severity ranks a diagnostic. Higher values are more severe.
type Severity int

const (
	Note Severity = iota + 1
	Warn
	Error
)

// String returns the lowercase name of the severity.
func (s Severity) String() string {
	switch s {
	case Note:
		return "note"
	case Warn:
		return "warn"
	case Error:
		return "error"
	default:
		return fmt.Sprintf("severity(%d)", int(s))
	}
}

// Diagnostic is a single message about a source unit. Pos is nil when the
// message is not tied to a specific location.
type Diagnostic struct {
	Severity Severity
	File     string
	Pos      *hcl.Pos
	Message  string
}

// String renders the diagnostic in file:line:col form when a position is known.
func (d Diagnostic) String() string {
	if d.Pos != nil {
		return fmt.Sprintf("%s: %s:%d:%d: %s", d.Severity, d.File, d.Pos.Line, d.Pos.Column, d.Message)
	}
	return fmt.Sprintf("%s: %s: %s", d.Severity, d.File, d.Message)
}

// HasErrors reports whether any diagnostic in the slice is Error severity.
// Level filtering never applies here: an Error fails the build even when
// lower severities were suppressed from output.
func HasErrors(diags []Diagnostic) bool {
	for _, d := range diags {
		if d.Severity == Error {
			return true
		}
	}
	return false
}
