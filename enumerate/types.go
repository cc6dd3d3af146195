package enumerate

import (
	"context"
	"errors"

	"github.com/katalvlaran/biopath/pathway"
	"github.com/katalvlaran/biopath/telemetry"
)

// Sentinel errors for Enumerate's argument validation.
var (
	// ErrInvalidCutoff is returned when cutoff is less than 1.
	ErrInvalidCutoff = errors.New("enumerate: cutoff must be >= 1")

	// ErrGraphNil is returned when g is nil.
	ErrGraphNil = errors.New("enumerate: graph is nil")
)

// Result is the outcome of a completed enumeration.
type Result struct {
	// Table holds every acyclic (or branched-but-self-independent) pathway
	// found, keyed by metabolite and length.
	Table *pathway.Table

	// Cycles holds every reaction-set that was excluded from Table because
	// it depends on the metabolite it was meant to produce.
	Cycles *pathway.Table

	// Scope is the set of every metabolite producible from the seed set,
	// as computed by the guided BFS pre-pass.
	Scope map[string]struct{}
}

// Option configures Enumerate via functional arguments.
type Option func(*options)

type options struct {
	ctx         context.Context
	maxNumPath  int
	telemetry   telemetry.Emitter
	diagnostics bool
	inPlace     bool
	runID       string
}

func defaultOptions() options {
	return options{
		ctx:        context.Background(),
		maxNumPath: 1000,
		telemetry:  telemetry.NullEmitter{},
	}
}

// WithContext sets a context checked for cancellation between columns.
func WithContext(ctx context.Context) Option {
	return func(o *options) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// WithMaxNumPath overrides the explosion guard (default 1000). Values <= 0
// are ignored and leave the default in place.
func WithMaxNumPath(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.maxNumPath = n
		}
	}
}

// WithTelemetry routes BFS and DP progress events to e.
func WithTelemetry(e telemetry.Emitter) Option {
	return func(o *options) {
		if e != nil {
			o.telemetry = e
		}
	}
}

// WithDiagnostics enables the diag invariant checker after every column.
// It is off by default since the checks add a full table scan per column;
// turn it on for tests and fuzzing, not production enumeration.
func WithDiagnostics(enabled bool) Option {
	return func(o *options) { o.diagnostics = enabled }
}

// WithInPlacePruning mutates the caller's graph during pre-pruning (spec
// §4.1) instead of the default clone-then-mutate behavior.
func WithInPlacePruning() Option {
	return func(o *options) { o.inPlace = true }
}

// WithRunID overrides the telemetry RunID (default: a generated UUID).
func WithRunID(id string) Option {
	return func(o *options) {
		if id != "" {
			o.runID = id
		}
	}
}
