// Package incidence builds a stoichiometric incidence view over a bipartite
// reaction graph, grounded in the teacher's matrix package: the same
// -1/0/+1 sign convention (reactant consumed, product formed, no
// participation) and the same wrap-a-dense-backing-store-with-stable-index
// shape as matrix.IncidenceMatrix, adapted from matrix's generic core.Graph
// edges to biopath's metabolite/reaction node classes.
//
// Unlike a generic graph incidence matrix, this one ignores edge weights
// entirely — biopath's graph.Graph carries no weights — and its columns are
// reactions rather than arbitrary edges, so every column's nonzero rows are
// exactly that reaction's reactants (-1) and products (+1).
package incidence
