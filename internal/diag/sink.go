package diag

import (
	"context"
	"fmt"
	"sync"

	"github.com/hashicorp/hcl/v2"
	"github.com/vk/hmlc/internal/ctxlog"
)

// Sink collects diagnostics for a whole build session. It is safe for
// concurrent use from units compiled in parallel.
type Sink struct {
	mu       sync.Mutex
	minLevel Severity
	all      []Diagnostic
}

// NewSink creates a sink that emits diagnostics at or above minLevel.
func NewSink(minLevel Severity) *Sink {
	if minLevel < Note {
		minLevel = Note
	}
	return &Sink{minLevel: minLevel}
}

// All returns a copy of every diagnostic emitted so far, in order.
func (s *Sink) All() []Diagnostic {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Diagnostic, len(s.all))
	copy(out, s.all)
	return out
}

// record appends d if it passes the level gate and reports whether it was kept.
func (s *Sink) record(d Diagnostic) bool {
	if d.Severity < s.minLevel {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.all = append(s.all, d)
	return true
}

// ForUnit returns a recorder scoped to a single source unit.
func (s *Sink) ForUnit(file string) *UnitDiags {
	return &UnitDiags{sink: s, file: file}
}

// UnitDiags records diagnostics for one source unit. It is used from a single
// unit's compilation and is not itself safe for concurrent use; the shared
// sink behind it is.
type UnitDiags struct {
	sink   *Sink
	file   string
	diags  []Diagnostic
	failed bool
}

// Report records a diagnostic and logs it. An Error severity marks the unit
// failed even if the sink's level gate would have filtered lower severities.
func (u *UnitDiags) Report(ctx context.Context, sev Severity, pos *hcl.Pos, msg string) {
	d := Diagnostic{Severity: sev, File: u.file, Pos: pos, Message: msg}
	if sev == Error {
		u.failed = true
	}
	if !u.sink.record(d) {
		return
	}
	u.diags = append(u.diags, d)

	logger := ctxlog.FromContext(ctx)
	args := []any{"file", u.file}
	if pos != nil {
		args = append(args, "line", pos.Line, "column", pos.Column)
	}
	switch sev {
	case Error:
		logger.Error(msg, args...)
	case Warn:
		logger.Warn(msg, args...)
	default:
		logger.Info(msg, args...)
	}
}

// Notef, Warnf and Errorf are positional convenience wrappers around Report.
func (u *UnitDiags) Notef(ctx context.Context, pos *hcl.Pos, format string, a ...any) {
	u.Report(ctx, Note, pos, fmt.Sprintf(format, a...))
}

func (u *UnitDiags) Warnf(ctx context.Context, pos *hcl.Pos, format string, a ...any) {
	u.Report(ctx, Warn, pos, fmt.Sprintf(format, a...))
}

func (u *UnitDiags) Errorf(ctx context.Context, pos *hcl.Pos, format string, a ...any) {
	u.Report(ctx, Error, pos, fmt.Sprintf(format, a...))
}

// Diagnostics returns the diagnostics recorded for this unit that passed the
// level gate.
func (u *UnitDiags) Diagnostics() []Diagnostic {
	out := make([]Diagnostic, len(u.diags))
	copy(out, u.diags)
	return out
}

// Failed reports whether this unit has emitted any Error diagnostic.
func (u *UnitDiags) Failed() bool {
	return u.failed
}

// File returns the unit path this recorder is scoped to.
func (u *UnitDiags) File() string {
	return u.file
}
