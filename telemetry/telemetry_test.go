package telemetry_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/biopath/telemetry"
)

func TestNullEmitter_DiscardsEverything(t *testing.T) {
	var e telemetry.NullEmitter
	e.Emit(telemetry.Event{RunID: "r1", Stage: "x"})
	assert.NoError(t, e.Flush(context.Background()))
}

func TestLogEmitter_TextMode(t *testing.T) {
	var buf bytes.Buffer
	e := telemetry.NewLogEmitter(&buf, false)

	e.Emit(telemetry.Event{RunID: "r1", Stage: "reach.stage", Meta: map[string]any{"stage": 2}})

	out := buf.String()
	assert.Contains(t, out, "[reach.stage]")
	assert.Contains(t, out, "run_id=r1")
	assert.Contains(t, out, "stage=2")
}

func TestLogEmitter_JSONMode(t *testing.T) {
	var buf bytes.Buffer
	e := telemetry.NewLogEmitter(&buf, true)

	e.Emit(telemetry.Event{RunID: "r1", Stage: "enumerate.column"})

	out := strings.TrimSpace(buf.String())
	assert.True(t, strings.HasPrefix(out, "{"))
	assert.Contains(t, out, `"run_id":"r1"`)
	assert.Contains(t, out, `"stage":"enumerate.column"`)
}

func TestLogEmitter_DefaultsToStdoutOnNilWriter(t *testing.T) {
	e := telemetry.NewLogEmitter(nil, false)
	require.NotNil(t, e)
}

func TestLogEmitter_FlushIsNoop(t *testing.T) {
	e := telemetry.NewLogEmitter(&bytes.Buffer{}, false)
	assert.NoError(t, e.Flush(context.Background()))
}
