package enumerate

import "github.com/katalvlaran/biopath/partition"

// firstRound handles the branch of spec §4.4.a where val is small enough
// that some subset of rxn's non-seed reactants can be pinned at length
// column-1 while the rest are assigned lengths via partition.Generate.
func (e *enumerator) firstRound(metsNeeded []string, column int, rxn string, val int) {
	optimizedVal := val / (column - 1)

	for currentVal := 1; currentVal <= optimizedVal; currentVal++ {
		for _, comb := range combinations(metsNeeded, currentVal) {
			if !e.allHaveLength(comb, column-1) {
				continue
			}

			otherMets := difference(metsNeeded, comb)

			pinnedSlots := make([][][]string, len(comb))
			for i, m := range comb {
				pinnedSlots[i] = e.table.Entries(m, column-1)
			}

			lowerBounds := make([]int, len(otherMets))
			for i, m := range otherMets {
				lowerBounds[i] = e.minLowerBound(m)
			}

			target := val - (column-1)*currentVal
			for _, p := range partition.Generate(target, lowerBounds, column-1) {
				if !e.allHaveLengths(otherMets, p) {
					continue
				}

				counts := make([]int, 0, len(comb)+len(otherMets))
				for _, m := range comb {
					counts = append(counts, e.table.Count(m, column-1))
				}
				for i, m := range otherMets {
					counts = append(counts, e.table.Count(m, p[i]))
				}
				if e.shouldSkipExplosion(counts, rxn) {
					continue
				}

				slots := make([][][]string, 0, len(comb)+len(otherMets))
				slots = append(slots, pinnedSlots...)
				for i, m := range otherMets {
					slots = append(slots, e.table.Entries(m, p[i]))
				}

				e.assemble(rxn, slots, column)
			}
		}
	}
}

// secondRound handles the branch of spec §4.4.b where every one of rxn's
// non-seed reactants is assigned a length directly from a single partition
// of val.
func (e *enumerator) secondRound(metsNeeded []string, column int, rxn string, val int) {
	lowerBounds := make([]int, len(metsNeeded))
	for i, m := range metsNeeded {
		lowerBounds[i] = e.minLowerBound(m)
	}

	for _, p := range partition.Generate(val, lowerBounds, column-1) {
		if !e.allHaveLengths(metsNeeded, p) {
			continue
		}

		counts := make([]int, len(metsNeeded))
		for i, m := range metsNeeded {
			counts[i] = e.table.Count(m, p[i])
		}
		if e.shouldSkipExplosion(counts, rxn) {
			continue
		}

		slots := make([][][]string, len(metsNeeded))
		for i, m := range metsNeeded {
			slots[i] = e.table.Entries(m, p[i])
		}

		e.assemble(rxn, slots, column)
	}
}

func (e *enumerator) allHaveLength(mets []string, length int) bool {
	for _, m := range mets {
		if !e.table.Has(m, length) {
			return false
		}
	}
	return true
}

func (e *enumerator) allHaveLengths(mets []string, lengths []int) bool {
	for i, m := range mets {
		if !e.table.Has(m, lengths[i]) {
			return false
		}
	}
	return true
}

// difference returns the elements of all not present in sub, preserving
// all's order. Both slices are assumed sorted/deduplicated by the caller.
func difference(all, sub []string) []string {
	excl := make(map[string]struct{}, len(sub))
	for _, s := range sub {
		excl[s] = struct{}{}
	}
	out := make([]string, 0, len(all)-len(sub))
	for _, a := range all {
		if _, ok := excl[a]; !ok {
			out = append(out, a)
		}
	}
	return out
}
