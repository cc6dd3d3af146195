package reach

import (
	"sort"

	"github.com/katalvlaran/biopath/graph"
)

// walker encapsulates the mutable guided-BFS state threaded through Run's
// internal stages, replacing the global module-level state the original
// algorithm used (spec §9: "pass an enumeration context object... No
// process-wide state remains").
type walker struct {
	g     *graph.Graph
	opts  options
	seeds map[string]struct{}

	scope      map[string]struct{}
	lowerBound map[string][]int
	rxnStage   map[string][]int // internal reaction lower-bound, diagnostics only
	visited    map[string]bool
	queue      []string
	queued     map[string]struct{}
}

// Run performs the guided breadth-first search of spec §4.3 starting from
// seeds over g, returning each producible metabolite's lower bound, the set
// of visited reactions, and the scope of producible metabolites.
//
// seeds absent from g are tolerated and simply contribute no edges.
//
// Complexity: O(V + E).
func Run(g *graph.Graph, seeds []string, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	seedSet := make(map[string]struct{}, len(seeds))
	for _, s := range seeds {
		seedSet[s] = struct{}{}
	}

	w := &walker{
		g:          g,
		opts:       o,
		seeds:      seedSet,
		scope:      make(map[string]struct{}, len(seedSet)),
		lowerBound: make(map[string][]int),
		rxnStage:   make(map[string][]int),
		visited:    make(map[string]bool),
		queued:     make(map[string]struct{}),
	}
	for s := range seedSet {
		w.scope[s] = struct{}{}
		w.lowerBound[s] = append(w.lowerBound[s], 0)
	}

	startingReactions := w.stageOne()
	w.seedQueue(startingReactions)
	if err := w.loop(); err != nil {
		return nil, err
	}

	return &Result{
		LowerBound: w.lowerBound,
		Visited:    w.visited,
		Scope:      w.scope,
	}, nil
}

// sortedSeeds returns the seed set in deterministic order.
func (w *walker) sortedSeeds() []string {
	out := make([]string, 0, len(w.seeds))
	for s := range w.seeds {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}

// predecessorsSubset reports whether every predecessor of node lies in set.
// A node absent from the graph never qualifies; callers only invoke this
// for nodes already known to exist.
func predecessorsSubset(g *graph.Graph, node string, set map[string]struct{}) bool {
	preds, err := g.Predecessors(node)
	if err != nil {
		return false
	}
	for _, p := range preds {
		if _, ok := set[p]; !ok {
			return false
		}
	}
	return true
}

// stampStage appends stage to acc[id] if not already present.
func stampStage(acc map[string][]int, id string, stage int) {
	for _, s := range acc[id] {
		if s == stage {
			return
		}
	}
	acc[id] = append(acc[id], stage)
}

// stageOne is the first BFS stage (spec §4.3 "Stage 1"): every reaction
// whose reactants are entirely seeds is marked visited and its products
// enter scope at stage 1.
func (w *walker) stageOne() []string {
	const stage = 1

	var startingReactions []string
	seen := make(map[string]struct{})

	for _, seed := range w.sortedSeeds() {
		if !w.g.HasNode(seed) {
			continue // spec §7: missing seed is a silent skip
		}
		succs, err := w.g.Successors(seed)
		if err != nil {
			continue
		}
		for _, rxn := range succs {
			if !predecessorsSubset(w.g, rxn, w.seeds) {
				continue
			}
			if _, ok := seen[rxn]; !ok {
				seen[rxn] = struct{}{}
				startingReactions = append(startingReactions, rxn)
			}
			products, _ := w.g.Successors(rxn)
			for _, product := range products {
				w.scope[product] = struct{}{}
				stampStage(w.lowerBound, product, stage)
			}
			stampStage(w.rxnStage, rxn, stage)
			w.opts.stageHook(stage, rxn)
		}
	}

	return startingReactions
}

// seedQueue expands one layer past the stage-1 reactions (spec §4.3:
// "Seed the queue with every reaction r' such that r' is a successor-of-
// successor of some stage-1 reaction and predecessors(r') ⊆ Σ") and marks
// every stage-1 reaction visited.
func (w *walker) seedQueue(startingReactions []string) {
	for _, rxn := range startingReactions {
		products, _ := w.g.Successors(rxn)
		for _, product := range products {
			nextRxns, _ := w.g.Successors(product)
			for _, next := range nextRxns {
				if predecessorsSubset(w.g, next, w.scope) {
					w.enqueue(next)
				}
			}
		}
		w.visited[rxn] = true
	}
}

func (w *walker) enqueue(reaction string) {
	if _, already := w.queued[reaction]; already {
		return
	}
	w.queue = append(w.queue, reaction)
	w.queued[reaction] = struct{}{}
}

// loop drains the FIFO queue stage by stage (spec §4.3 "Subsequent
// stages"), newly-visited reactions expand further while already-visited
// reactions only get an additional lower-bound stamp.
func (w *walker) loop() error {
	stage := 1
	for len(w.queue) > 0 {
		select {
		case <-w.opts.ctx.Done():
			return w.opts.ctx.Err()
		default:
		}

		stage++
		snapshot := w.queue
		w.queue = nil

		for _, rxn := range snapshot {
			delete(w.queued, rxn)

			if w.visited[rxn] {
				w.restamp(rxn, stage)
				continue
			}
			w.expand(rxn, stage)
			w.visited[rxn] = true
		}
	}

	return nil
}

// expand processes a not-yet-visited reaction at the given stage: its
// products enter scope, and every downstream reaction whose reactants are
// now fully in scope is enqueued for the next stage.
func (w *walker) expand(rxn string, stage int) {
	stampStage(w.rxnStage, rxn, stage)
	products, _ := w.g.Successors(rxn)
	for _, product := range products {
		w.scope[product] = struct{}{}
		stampStage(w.lowerBound, product, stage)

		downstream, _ := w.g.Successors(product)
		for _, next := range downstream {
			if w.visited[next] {
				continue
			}
			if predecessorsSubset(w.g, next, w.scope) {
				w.enqueue(next)
			}
		}
	}
	w.opts.stageHook(stage, rxn)
}

// restamp records re-producibility of rxn's products at a later stage
// without re-expanding the reaction (spec §4.3: "still append stage to
// L[m]... but do not re-expand").
func (w *walker) restamp(rxn string, stage int) {
	products, _ := w.g.Successors(rxn)
	for _, product := range products {
		stampStage(w.lowerBound, product, stage)
	}
}
