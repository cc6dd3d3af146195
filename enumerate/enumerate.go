package enumerate

import (
	"sort"

	"github.com/google/uuid"

	"github.com/katalvlaran/biopath/diag"
	"github.com/katalvlaran/biopath/graph"
	"github.com/katalvlaran/biopath/pathway"
	"github.com/katalvlaran/biopath/reach"
	"github.com/katalvlaran/biopath/telemetry"
)

// pruneNonSeedReactantThreshold is the reactant-count, counting only
// non-seed metabolites, at or above which a reaction is pre-pruned (spec
// §4.1): such reactions need every one of five-or-more upstream metabolites
// simultaneously, which explodes the partition search for branching that is
// rarely biologically meaningful.
const pruneNonSeedReactantThreshold = 5

// enumerator carries every piece of mutable state threaded through a single
// Enumerate call. The package holds no mutable package-level state (its only
// package-level variables are the sentinel errors); every previous
// implementation's global dictionaries live here instead, scoped to one run.
type enumerator struct {
	g          *graph.Graph
	seeds      map[string]struct{}
	table      *pathway.Table
	cycles     *pathway.Table
	lowerBound map[string][]int
	maxNumPath int
	telemetry  telemetry.Emitter
	runID      string
	diag       bool
}

// Enumerate fills a pathway table for every metabolite reachable from seeds
// within cutoff reaction-layers, over graph g.
//
// Complexity: bounded by the column loop's partition search, which the
// maxnumpath explosion guard keeps tractable in practice; see package doc.
func Enumerate(g *graph.Graph, seeds map[string]struct{}, cutoff int, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if cutoff < 1 {
		return nil, ErrInvalidCutoff
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.runID == "" {
		o.runID = uuid.NewString()
	}

	workGraph := g
	if !o.inPlace {
		workGraph = g.Clone()
	}
	pruneGraph(workGraph, seeds)

	seedList := make([]string, 0, len(seeds))
	for s := range seeds {
		seedList = append(seedList, s)
	}
	sort.Strings(seedList)

	bfsResult, err := reach.Run(workGraph, seedList,
		reach.WithContext(o.ctx),
		reach.WithStageHook(func(stage int, reaction string) {
			o.telemetry.Emit(telemetry.Event{
				RunID: o.runID,
				Stage: "reach.stage",
				Meta:  map[string]any{"stage": stage, "reaction": reaction},
			})
		}),
	)
	if err != nil {
		return nil, err
	}

	e := &enumerator{
		g:          workGraph,
		seeds:      seeds,
		table:      pathway.NewTable(),
		cycles:     pathway.NewTable(),
		lowerBound: bfsResult.LowerBound,
		maxNumPath: o.maxNumPath,
		telemetry:  o.telemetry,
		runID:      o.runID,
		diag:       o.diagnostics,
	}
	for s := range seeds {
		e.table.SeedEntry(s)
	}

	rxnsToVisit := make([]string, 0, len(bfsResult.Visited))
	for r := range bfsResult.Visited {
		rxnsToVisit = append(rxnsToVisit, r)
	}
	sort.Strings(rxnsToVisit)

	e.initColumnOne(rxnsToVisit)
	if e.diag {
		if err := diag.VerifyLengthInvariant(e.table, bfsResult.Visited); err != nil {
			return nil, err
		}
	}

	for column := 2; column <= cutoff; column++ {
		select {
		case <-o.ctx.Done():
			return nil, o.ctx.Err()
		default:
		}

		for _, rxn := range rxnsToVisit {
			metsNeeded := e.nonSeedReactants(rxn)
			arity := len(metsNeeded)
			if arity == 0 {
				continue
			}
			upper := arity * (column - 1)
			for val := column - 1; val <= upper; val++ {
				if val <= arity*(column-2) {
					e.firstRound(metsNeeded, column, rxn, val)
				} else {
					e.secondRound(metsNeeded, column, rxn, val)
				}
			}
		}

		o.telemetry.Emit(telemetry.Event{
			RunID: o.runID,
			Stage: "enumerate.column",
			Meta:  map[string]any{"column": column},
		})

		if e.diag {
			if err := diag.VerifyCycleExclusivity(e.table, e.cycles); err != nil {
				return nil, err
			}
		}
	}

	return &Result{
		Table:  e.table,
		Cycles: e.cycles,
		Scope:  bfsResult.Scope,
	}, nil
}

// pruneGraph removes every reaction whose non-seed reactant count is at
// least pruneNonSeedReactantThreshold (spec §4.1).
func pruneGraph(g *graph.Graph, seeds map[string]struct{}) {
	for _, rxn := range g.NodesOfClass(graph.ClassReaction) {
		preds, err := g.Predecessors(rxn)
		if err != nil {
			continue
		}
		nonSeedCount := 0
		for _, p := range preds {
			if _, isSeed := seeds[p]; !isSeed {
				nonSeedCount++
			}
		}
		if nonSeedCount >= pruneNonSeedReactantThreshold {
			_ = g.RemoveNode(rxn)
		}
	}
}

func (e *enumerator) isSeed(metabolite string) bool {
	_, ok := e.seeds[metabolite]
	return ok
}

// nonSeedReactants returns the sorted, non-seed predecessors of rxn.
func (e *enumerator) nonSeedReactants(rxn string) []string {
	preds, err := e.g.Predecessors(rxn)
	if err != nil {
		return nil
	}
	out := make([]string, 0, len(preds))
	for _, p := range preds {
		if !e.isSeed(p) {
			out = append(out, p)
		}
	}
	return out
}

// initColumnOne fills length-1 entries: every reaction whose reactants are
// entirely seeds contributes its own singleton reaction-set to each
// non-seed product (spec §4.4, column k=1).
func (e *enumerator) initColumnOne(rxnsToVisit []string) {
	for _, rxn := range rxnsToVisit {
		preds, err := e.g.Predecessors(rxn)
		if err != nil {
			continue
		}
		if !allSeeds(preds, e.seeds) {
			continue
		}
		succs, err := e.g.Successors(rxn)
		if err != nil {
			continue
		}
		for _, product := range succs {
			if e.isSeed(product) {
				continue
			}
			e.table.Insert(product, []string{rxn})
		}
	}
}

func allSeeds(ids []string, seeds map[string]struct{}) bool {
	for _, id := range ids {
		if _, ok := seeds[id]; !ok {
			return false
		}
	}
	return true
}

// minLowerBound returns the smallest recorded BFS stage for metabolite, or
// 0 if it has none (spec §4.4.b: "the lower bound of metabolites not
// involved in the combination").
func (e *enumerator) minLowerBound(metabolite string) int {
	stages := e.lowerBound[metabolite]
	if len(stages) == 0 {
		return 0
	}
	min := stages[0]
	for _, s := range stages[1:] {
		if s < min {
			min = s
		}
	}
	return min
}

// shouldSkipExplosion reports whether the maxnumpath guard should skip this
// combination: the product of alternative-path counts across slots exceeds
// maxNumPath, and every product of rxn is already known by some other
// route, so skipping here loses no new metabolite (spec §4.4 step 6).
func (e *enumerator) shouldSkipExplosion(counts []int, rxn string) bool {
	product := 1
	for _, c := range counts {
		product *= c
		if product > e.maxNumPath {
			break
		}
	}
	if product <= e.maxNumPath {
		return false
	}

	succs, err := e.g.Successors(rxn)
	if err != nil {
		return false
	}
	for _, s := range succs {
		if !e.table.Known(s) {
			return false
		}
	}

	e.telemetry.Emit(telemetry.Event{
		RunID: e.runID,
		Stage: "enumerate.explosion_guard",
		Meta:  map[string]any{"reaction": rxn},
	})

	return true
}
