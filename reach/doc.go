// Package reach implements the guided breadth-first search (spec §4.3)
// that computes, for every producible metabolite, the minimum number of
// reaction-layers needed to produce it — its lower bound — plus the scope
// of all producible metabolites and the set of visited reactions.
//
// What
//
//   - Run seeds the search from a metabolite set S and expands in stages:
//     stage 1 collects every reaction whose reactants are entirely in S;
//     subsequent stages process a FIFO queue of candidate reactions, some
//     newly visited (which expand further) and some already visited
//     (which only get an additional lower-bound stamp).
//   - Returns a Result carrying LowerBound (every stage at which a
//     metabolite was (re)produced — the ordered collection spec §3 calls an
//     interface for diagnostics), Visited (which reactions were used at
//     least once) and Scope (every metabolite ever produced).
//
// Why this differs from a textbook unweighted BFS
//
//	Stage distance here means reaction-layer distance, not edge count: a
//	reaction's successors don't advance to the next stage until every one
//	of the reaction's reactants has already entered scope. Ordinary BFS
//	hooks (OnEnqueue/OnVisit) don't capture that "wait for all
//	predecessors" gate, so Run implements its own staged queue instead of
//	delegating to a generic BFS.
//
// Seeds absent from the graph
//
//	Run tolerates it (spec §7 "Missing seed... silent skip"): such a seed
//	is still placed in Scope with lower bound 0, like every seed, but
//	contributes no edges.
//
// Determinism
//
//	Seeds, successor lists and predecessor lists are all read in sorted ID
//	order and the queue is FIFO, so within a stage reactions are processed
//	in a deterministic discovery order (not necessarily sorted by ID), and
//	Visited and Scope are always identical across runs; only the internal
//	order of stage numbers appended to LowerBound[m] could vary with a
//	different processing order, and that ordering is not semantically
//	observed (spec §3, §4.3).
//
// Complexity (V = |Vertices|, E = |Edges| of the bipartite graph)
//
//	Time: O(V + E) — every reaction is expanded at most once; Memory: O(V).
package reach
