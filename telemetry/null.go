package telemetry

import "context"

// NullEmitter discards every event. It is the zero-overhead default used
// whenever a caller does not configure an Emitter.
type NullEmitter struct{}

// Emit discards event.
func (NullEmitter) Emit(Event) {}

// Flush is a no-op.
func (NullEmitter) Flush(context.Context) error { return nil }
