package reach

import (
	"context"
	"errors"
)

// Sentinel errors for guided-BFS execution.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("reach: graph is nil")
)

// Option configures Run via functional arguments.
type Option func(*options)

type options struct {
	ctx       context.Context
	stageHook func(stage int, reaction string)
}

func defaultOptions() options {
	return options{
		ctx:       context.Background(),
		stageHook: func(int, string) {},
	}
}

// WithContext sets a context checked for cancellation between stages.
func WithContext(ctx context.Context) Option {
	return func(o *options) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// WithStageHook registers a callback invoked when a reaction fires at a
// given stage: for stage-1 reactions, and for each queued reaction when it
// is first expanded. Re-stamping an already visited reaction's products at
// a later stage does not invoke it. This is the natural place to hang
// telemetry.
func WithStageHook(fn func(stage int, reaction string)) Option {
	return func(o *options) {
		if fn != nil {
			o.stageHook = fn
		}
	}
}

// Result holds the outcome of a guided BFS traversal.
type Result struct {
	// LowerBound maps a metabolite ID to every stage at which it was
	// (re)produced, in the order discovered. Only the minimum value is
	// semantically required by the enumerator (spec §3); the rest is kept
	// for diagnostics.
	LowerBound map[string][]int

	// Visited marks every reaction used at least once because all its
	// reactants lay in the growing scope.
	Visited map[string]bool

	// Scope is the set of metabolites ever produced, starting from the
	// seed set. The seed set is always a subset of Scope.
	Scope map[string]struct{}
}

// MinLowerBound returns the minimum recorded stage for metabolite, and
// whether it has any recorded stage at all.
func (r *Result) MinLowerBound(metabolite string) (int, bool) {
	stages, ok := r.LowerBound[metabolite]
	if !ok || len(stages) == 0 {
		return 0, false
	}
	min := stages[0]
	for _, s := range stages[1:] {
		if s < min {
			min = s
		}
	}
	return min, true
}
