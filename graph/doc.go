// Package graph defines the bipartite reaction graph that the rest of
// biopath operates over: metabolites and reactions as two disjoint node
// classes, connected only by metabolite→reaction (reactant) and
// reaction→metabolite (product) edges.
//
// What
//
//   - Graph stores vertices tagged with a Class (ClassMetabolite or
//     ClassReaction) and directed edges between them.
//   - AddEdge rejects same-class edges (ErrSameClassEdge), self-loops
//     (ErrLoopNotAllowed) and duplicate edges (ErrDuplicateEdge) — a
//     bipartite reaction network has no legitimate use for any of the
//     three.
//   - Predecessors/Successors give the reactant/product views a reaction
//     needs; NodesOfClass and RemoveNode back the pre-pruning step that
//     runs before enumeration.
//
// Why
//
//   - Keeping class tags on the graph itself (rather than inferring them
//     from edge direction) lets every consumer — guided BFS, the DP
//     enumerator, the incidence-matrix view — ask "is this a metabolite or
//     a reaction?" in O(1) without re-deriving it.
//
// Concurrency
//
//	A single RWMutex guards vertices, edges and adjacency together. Unlike
//	a general-purpose graph library, biopath's graphs are built once,
//	pruned once, and then only read during enumeration — there is no
//	payoff in splitting locks the way a mutation-heavy graph would.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - AddMetabolite / AddReaction / AddEdge: O(1) amortized.
//   - Predecessors / Successors / NodesOfClass: O(degree log degree) /
//     O(V log V), since results are returned sorted.
//   - RemoveNode: O(degree).
//   - Clone: O(V + E).
package graph
