package biopath

import (
	"context"

	"github.com/katalvlaran/biopath/enumerate"
	"github.com/katalvlaran/biopath/graph"
	"github.com/katalvlaran/biopath/pathway"
)

// Option reconfigures FindPathways. It is a thin re-export of
// enumerate.Option: FindPathways has nothing to add above what Enumerate
// already accepts.
type Option = enumerate.Option

// WithMaxNumPath overrides the pathway-explosion guard (default 1000).
var WithMaxNumPath = enumerate.WithMaxNumPath

// WithTelemetry attaches a telemetry.Emitter to observe a run.
var WithTelemetry = enumerate.WithTelemetry

// WithDiagnostics enables package diag's structural invariant checks after
// every DP column (expensive; intended for tests, not production runs).
var WithDiagnostics = enumerate.WithDiagnostics

// WithInPlacePruning mutates the caller's graph during pre-pruning instead
// of cloning it first.
var WithInPlacePruning = enumerate.WithInPlacePruning

// WithRunID sets the correlation ID attached to every telemetry event;
// FindPathways generates a random one if omitted.
var WithRunID = enumerate.WithRunID

// FindPathways enumerates every pathway of length up to cutoff reaching each
// metabolite reachable from seeds in g, the single call spec.md §6 names as
// the system's core output contract.
//
// It wires graph pre-pruning, reach.Run and enumerate.Enumerate exactly as
// enumerate.Enumerate already does internally — FindPathways exists only so
// callers needn't import enumerate directly for the common case, and so ctx
// has an obvious, single home (enumerate.WithContext under the hood).
//
// Returns the pathway table, the cycle bucket, and the reachable scope.
func FindPathways(ctx context.Context, g *graph.Graph, seeds map[string]struct{}, cutoff int, opts ...Option) (*pathway.Table, *pathway.Table, map[string]struct{}, error) {
	allOpts := append([]Option{enumerate.WithContext(ctx)}, opts...)

	res, err := enumerate.Enumerate(g, seeds, cutoff, allOpts...)
	if err != nil {
		return nil, nil, nil, err
	}

	return res.Table, res.Cycles, res.Scope, nil
}
