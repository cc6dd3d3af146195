package enumerate

import "sort"

// assemble takes, for a reaction rxn being evaluated at the current column,
// one slot of alternative reaction-sets per precursor metabolite (plus rxn
// itself), forms every combination by picking one alternative per slot,
// unions the reaction IDs in each combination, and routes the result to the
// pathway table or the cycle table.
//
// column is the DP column currently being filled; a union smaller than
// column is rejected outright (spec §4.4.c: a reaction-set can only be
// recorded at a length no smaller than the one currently being computed).
func (e *enumerator) assemble(rxn string, slots [][][]string, column int) {
	combos := cartesianProduct(slots)
	if combos == nil {
		return
	}

	succs, err := e.g.Successors(rxn)
	if err != nil {
		return
	}

	for _, combo := range combos {
		union := map[string]struct{}{rxn: {}}
		for _, alt := range combo {
			for _, r := range alt {
				union[r] = struct{}{}
			}
		}
		if len(union) < column {
			continue
		}

		combined := make([]string, 0, len(union))
		for r := range union {
			combined = append(combined, r)
		}
		sort.Strings(combined)

		cyclePrecursors := e.nonSeedPrecursorsOf(combined)

		for _, product := range succs {
			if e.isSeed(product) {
				continue
			}
			if _, cyclic := cyclePrecursors[product]; cyclic {
				e.cycles.Insert(product, combined)
				continue
			}
			e.table.Insert(product, combined)
		}
	}
}

// nonSeedPrecursorsOf returns the set of non-seed metabolites consumed by
// any reaction in reactions — used to detect whether a candidate
// reaction-set would need to consume the very metabolite it is meant to
// produce (spec §4.4.c, §4.5).
func (e *enumerator) nonSeedPrecursorsOf(reactions []string) map[string]struct{} {
	out := make(map[string]struct{})
	for _, r := range reactions {
		preds, err := e.g.Predecessors(r)
		if err != nil {
			continue
		}
		for _, p := range preds {
			if !e.isSeed(p) {
				out[p] = struct{}{}
			}
		}
	}
	return out
}
