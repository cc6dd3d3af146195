package telemetry

import "context"

// Emitter receives Events from a running BFS or enumeration. Implementations
// must not block the caller for long and must not panic; a misbehaving
// backend should drop events rather than disrupt the enumeration it is
// observing.
type Emitter interface {
	// Emit records a single event. Implementations that need batching or
	// async delivery may buffer internally and flush on Flush.
	Emit(Event)

	// Flush blocks until every buffered event has been delivered, or ctx is
	// done. Emitters with no internal buffering treat this as a no-op.
	Flush(ctx context.Context) error
}
