package diag

import (
	"fmt"
	"sort"
	"strings"

	"github.com/katalvlaran/biopath/graph"
	"github.com/katalvlaran/biopath/pathway"
)

// canonicalKey mirrors pathway's internal canonical-key construction: a
// sorted, comma-joined signature that identifies a reaction-set regardless
// of member order.
func canonicalKey(reactions []string) string {
	sorted := make([]string, len(reactions))
	copy(sorted, reactions)
	sort.Strings(sorted)
	return strings.Join(sorted, ",")
}

// VerifyLengthInvariant checks spec property 2: every reaction-set recorded
// at table length k has at least k members, and every one of its reactions
// was actually visited by the guided BFS.
func VerifyLengthInvariant(t *pathway.Table, visited map[string]bool) error {
	for _, m := range t.Metabolites() {
		if t.IsSeed(m) {
			continue
		}
		for _, k := range t.Lengths(m) {
			for _, reactions := range t.Entries(m, k) {
				if len(reactions) < k {
					return fmt.Errorf("diag: length invariant violated for %s[%d]: set %v has %d members", m, k, reactions, len(reactions))
				}
				for _, r := range reactions {
					if !visited[r] {
						return fmt.Errorf("diag: length invariant violated for %s[%d]: reaction %s was never visited", m, k, r)
					}
				}
			}
		}
	}
	return nil
}

// VerifyPrecursorClosure checks spec property 3: every non-seed reactant of
// every reaction in a recorded set P is itself produced by some reaction in
// P, or is the metabolite P is meant to produce (in which case P belongs in
// cycles, not table).
func VerifyPrecursorClosure(table, cycles *pathway.Table, g *graph.Graph, seeds map[string]struct{}) error {
	for _, m := range table.Metabolites() {
		if table.IsSeed(m) {
			continue
		}
		for _, k := range table.Lengths(m) {
			for _, reactions := range table.Entries(m, k) {
				produced := make(map[string]struct{}, len(reactions))
				for _, r := range reactions {
					succs, err := g.Successors(r)
					if err != nil {
						return fmt.Errorf("diag: precursor closure: %w", err)
					}
					for _, p := range succs {
						produced[p] = struct{}{}
					}
				}

				for _, r := range reactions {
					preds, err := g.Predecessors(r)
					if err != nil {
						return fmt.Errorf("diag: precursor closure: %w", err)
					}
					for _, p := range preds {
						if _, isSeed := seeds[p]; isSeed {
							continue
						}
						if p == m {
							continue // self-dependency belongs in cycles, checked by caller
						}
						if _, ok := produced[p]; !ok {
							return fmt.Errorf("diag: precursor closure violated for %s[%d] set %v: %s is not produced within the set", m, k, reactions, p)
						}
					}
				}
			}
		}
	}
	return nil
}

// VerifyCycleExclusivity checks spec property 4: T[m][k] ∩ C[m][k] = ∅ for
// every metabolite and length.
func VerifyCycleExclusivity(table, cycles *pathway.Table) error {
	for _, m := range table.Metabolites() {
		for _, k := range table.Lengths(m) {
			tableKeys := make(map[string]struct{})
			for _, reactions := range table.Entries(m, k) {
				tableKeys[canonicalKey(reactions)] = struct{}{}
			}
			for _, reactions := range cycles.Entries(m, k) {
				if _, dup := tableKeys[canonicalKey(reactions)]; dup {
					return fmt.Errorf("diag: cycle exclusivity violated for %s[%d]: set %v present in both tables", m, k, reactions)
				}
			}
		}
	}
	return nil
}

// VerifyScopeSoundness checks spec property 6: a metabolite is in scope if
// and only if it is a seed or has at least one recorded entry in table.
func VerifyScopeSoundness(table *pathway.Table, seeds, scope map[string]struct{}) error {
	for m := range scope {
		if _, isSeed := seeds[m]; isSeed {
			continue
		}
		if _, ok := table.MinLength(m); !ok {
			return fmt.Errorf("diag: scope soundness violated: %s is in scope but has no table entry", m)
		}
	}
	for _, m := range table.Metabolites() {
		if table.IsSeed(m) {
			continue
		}
		if _, ok := table.MinLength(m); !ok {
			continue
		}
		if _, inScope := scope[m]; !inScope {
			return fmt.Errorf("diag: scope soundness violated: %s has table entries but is not in scope", m)
		}
	}
	return nil
}

// VerifyLowerBoundConsistency checks spec property 7: for every non-seed
// metabolite in scope, the minimum recorded BFS stage equals the minimum
// table length at which it has entries.
func VerifyLowerBoundConsistency(table *pathway.Table, lowerBound map[string][]int, scope, seeds map[string]struct{}) error {
	for m := range scope {
		if _, isSeed := seeds[m]; isSeed {
			continue
		}
		stages, ok := lowerBound[m]
		if !ok || len(stages) == 0 {
			continue
		}
		minStage := stages[0]
		for _, s := range stages[1:] {
			if s < minStage {
				minStage = s
			}
		}

		minLength, ok := table.MinLength(m)
		if !ok {
			return fmt.Errorf("diag: lower-bound consistency violated: %s has a BFS stage but no table entry", m)
		}
		if minStage != minLength {
			return fmt.Errorf("diag: lower-bound consistency violated for %s: min BFS stage %d != min table length %d", m, minStage, minLength)
		}
	}
	return nil
}

// VerifyPruning checks spec property 9: no reaction in g has five or more
// non-seed predecessors.
func VerifyPruning(g *graph.Graph, seeds map[string]struct{}) error {
	for _, rxn := range g.NodesOfClass(graph.ClassReaction) {
		preds, err := g.Predecessors(rxn)
		if err != nil {
			return fmt.Errorf("diag: pruning check: %w", err)
		}
		nonSeed := 0
		for _, p := range preds {
			if _, isSeed := seeds[p]; !isSeed {
				nonSeed++
			}
		}
		if nonSeed >= 5 {
			return fmt.Errorf("diag: pruning violated: reaction %s has %d non-seed reactants", rxn, nonSeed)
		}
	}
	return nil
}
