package telemetry

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// LogEmitter writes one line per event to an io.Writer, in either a
// human-readable key=value form or JSON Lines.
type LogEmitter struct {
	w        io.Writer
	jsonMode bool
}

// NewLogEmitter builds a LogEmitter. A nil writer defaults to os.Stdout.
func NewLogEmitter(w io.Writer, jsonMode bool) *LogEmitter {
	if w == nil {
		w = os.Stdout
	}
	return &LogEmitter{w: w, jsonMode: jsonMode}
}

// Emit writes event to the underlying writer.
func (l *LogEmitter) Emit(event Event) {
	if l.jsonMode {
		l.emitJSON(event)
		return
	}
	l.emitText(event)
}

func (l *LogEmitter) emitJSON(event Event) {
	data, err := json.Marshal(struct {
		RunID string         `json:"run_id"`
		Stage string         `json:"stage"`
		Meta  map[string]any `json:"meta,omitempty"`
	}{event.RunID, event.Stage, event.Meta})
	if err != nil {
		fmt.Fprintf(l.w, "{\"error\":%q}\n", err.Error())
		return
	}
	fmt.Fprintf(l.w, "%s\n", data)
}

func (l *LogEmitter) emitText(event Event) {
	fmt.Fprintf(l.w, "[%s] run_id=%s", event.Stage, event.RunID)
	for k, v := range event.Meta {
		fmt.Fprintf(l.w, " %s=%v", k, v)
	}
	fmt.Fprintln(l.w)
}

// Flush is a no-op: LogEmitter never buffers.
func (l *LogEmitter) Flush(context.Context) error { return nil }
