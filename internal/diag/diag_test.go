package diag

import (
	"context"
	"testing"

	"github.com/hashicorp/hcl/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnit_NoteAndWarnDoNotFail(t *testing.T) {
	sink := NewSink(Note)
	u := sink.ForUnit("a.hml")
	ctx := context.Background()

	u.Notef(ctx, nil, "just a note")
	u.Warnf(ctx, nil, "just a warning")

	assert.False(t, u.Failed())
	assert.Len(t, u.Diagnostics(), 2)
	assert.False(t, HasErrors(u.Diagnostics()))
}

func TestUnit_ErrorFails(t *testing.T) {
	sink := NewSink(Note)
	u := sink.ForUnit("a.hml")
	ctx := context.Background()

	u.Errorf(ctx, nil, "broken")

	assert.True(t, u.Failed())
	assert.True(t, HasErrors(u.Diagnostics()))
}

func TestUnit_ErrorFailsIndependentOfLevelFiltering(t *testing.T) {
	// Only errors pass the gate, but the failed flag must not depend on
	// whether lower severities were emitted.
	sink := NewSink(Error)
	u := sink.ForUnit("a.hml")
	ctx := context.Background()

	u.Notef(ctx, nil, "filtered note")
	u.Warnf(ctx, nil, "filtered warning")
	assert.False(t, u.Failed())

	u.Errorf(ctx, nil, "broken")
	assert.True(t, u.Failed())
	assert.Len(t, u.Diagnostics(), 1)
}

func TestSink_LevelGate(t *testing.T) {
	sink := NewSink(Warn)
	u := sink.ForUnit("a.hml")
	ctx := context.Background()

	u.Notef(ctx, nil, "dropped")
	u.Warnf(ctx, nil, "kept")

	diags := sink.All()
	require.Len(t, diags, 1)
	assert.Equal(t, Warn, diags[0].Severity)
	assert.Equal(t, "kept", diags[0].Message)
}

func TestSink_CollectsAcrossUnits(t *testing.T) {
	sink := NewSink(Note)
	ctx := context.Background()

	sink.ForUnit("a.hml").Warnf(ctx, nil, "from a")
	sink.ForUnit("b.hml").Errorf(ctx, nil, "from b")

	diags := sink.All()
	require.Len(t, diags, 2)
	assert.Equal(t, "a.hml", diags[0].File)
	assert.Equal(t, "b.hml", diags[1].File)
}

func TestDiagnostic_String(t *testing.T) {
	d := Diagnostic{
		Severity: Error,
		File:     "pages/index/index.hml",
		Pos:      &hcl.Pos{Line: 3, Column: 7},
		Message:  "boom",
	}
	assert.Equal(t, "error: pages/index/index.hml:3:7: boom", d.String())

	d.Pos = nil
	assert.Equal(t, "error: pages/index/index.hml: boom", d.String())
}
