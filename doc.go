// Package biopath enumerates bounded, branched metabolic pathways over a
// bipartite reaction network, mirroring the teacher's root graph package: a
// thin facade and doc layer over its subpackages rather than an
// implementation of its own.
//
// What
//
//   - FindPathways wires together graph (the bipartite reaction graph),
//     reach (guided BFS reachability), and enumerate (the bounded DP
//     pathway enumerator) into the single call spec.md §6 describes as the
//     system's core output contract.
//   - Everything else — partition's bounded integer partitions, pathway's
//     table and cycle bucket, diag's structural diagnostics, telemetry's
//     structured events, incidence's stoichiometric matrix view, and synth's
//     synthetic network generator — lives in its own subpackage and is used
//     directly by callers who need it, the way the teacher's matrix and
//     algorithms packages stand on their own beside its root graph facade.
//
// Why
//
//   - Keeping FindPathways a thin composition rather than re-implementing
//     pruning, BFS or the DP table inline means every one of those pieces
//     stays independently testable and independently usable — a caller
//     that already has a BFS result, for instance, can call
//     enumerate.Enumerate directly.
//
// Subpackages
//
//	graph/      — bipartite metabolite/reaction graph (C0 node/edge model)
//	partition/  — bounded integer partition generator (C1)
//	reach/      — guided BFS reachability (C2)
//	pathway/    — pathway table + cycle bucket (C3)
//	enumerate/  — DP pathway enumerator + cycle classifier (C4, C5)
//	diag/       — structural invariant checks
//	telemetry/  — structured observability events
//	incidence/  — stoichiometric incidence matrix view
//	synth/      — synthetic bipartite network generator, for tests/benchmarks
package biopath
