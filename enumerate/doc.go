// Package enumerate implements the dynamic-programming pathway enumerator:
// given a bipartite reaction graph, a seed metabolite set and a length
// cutoff K, it fills a pathway.Table column by column from length 1 to K,
// recording every distinct reaction-set that can produce each metabolite at
// each length, and separating out any reaction-set that turns out to depend
// on the very metabolite it produces (a cyclic pathway) into a second table.
//
// Enumerate is the single entry point. It pre-prunes reactions with five or
// more non-seed reactants (these would blow up the partition search for no
// realistic biological benefit), runs the guided BFS of package reach to
// obtain each metabolite's lower bound, then walks the DP columns:
//
//   - Column 1: every reaction whose reactants are entirely seeds
//     contributes its own singleton reaction-set to each non-seed product.
//   - Column k>1: for every reaction with at least one non-seed reactant,
//     candidate reactant-length assignments are generated by
//     package partition and combined via a first-round branch (subsets of
//     reactants pinned at length k−1, grounded on the direct-combination
//     search the teacher's combinatorial code uses) and a second-round
//     branch (every reactant assigned from the partition directly). Every
//     resulting reaction-set union is assembled, checked for
//     self-dependency, and inserted into the pathway table or the cycle
//     table accordingly.
//
// An explosion guard (maxnumpath, default 1000) skips a combination once
// the number of alternate reaction-sets it would generate exceeds the
// configured bound and the downstream metabolite is already known by some
// other route — the same safety valve the original design used to keep
// branching pathways tractable on genome-scale networks.
package enumerate
