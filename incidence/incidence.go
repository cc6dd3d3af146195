package incidence

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/biopath/graph"
)

// reactantMark is placed at a metabolite's row in a reaction's column when
// the metabolite is consumed by that reaction.
const reactantMark = -1

// productMark is placed at a metabolite's row in a reaction's column when
// the metabolite is formed by that reaction.
const productMark = +1

// ErrGraphNil indicates Build was called with a nil graph.
var ErrGraphNil = errors.New("incidence: graph is nil")

// ErrUnknownMetabolite indicates At was called with a metabolite absent
// from the matrix.
var ErrUnknownMetabolite = errors.New("incidence: unknown metabolite")

// ErrUnknownReaction indicates At was called with a reaction absent from
// the matrix.
var ErrUnknownReaction = errors.New("incidence: unknown reaction")

// Incidence is a dense stoichiometric incidence matrix: rows are
// metabolites, columns are reactions, and mat[row][col] is reactantMark,
// productMark or 0.
type Incidence struct {
	metabolites []string
	reactions   []string
	metRow      map[string]int
	rxnCol      map[string]int
	mat         [][]int8
}

// Build constructs an Incidence snapshot of g. Rows and columns are sorted
// lexicographically for deterministic output regardless of g's internal
// map iteration order.
//
// Complexity: O(M*R) for the dense backing store, O(E) to populate it,
// where M = |metabolites|, R = |reactions|, E = |edges|.
func Build(g *graph.Graph) (*Incidence, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	metabolites := g.NodesOfClass(graph.ClassMetabolite)
	reactions := g.NodesOfClass(graph.ClassReaction)

	metRow := make(map[string]int, len(metabolites))
	for i, m := range metabolites {
		metRow[m] = i
	}
	rxnCol := make(map[string]int, len(reactions))
	for j, r := range reactions {
		rxnCol[r] = j
	}

	mat := make([][]int8, len(metabolites))
	for i := range mat {
		mat[i] = make([]int8, len(reactions))
	}

	for j, rxn := range reactions {
		preds, err := g.Predecessors(rxn)
		if err != nil {
			return nil, fmt.Errorf("incidence: predecessors of %s: %w", rxn, err)
		}
		for _, m := range preds {
			mat[metRow[m]][j] = reactantMark
		}

		succs, err := g.Successors(rxn)
		if err != nil {
			return nil, fmt.Errorf("incidence: successors of %s: %w", rxn, err)
		}
		for _, m := range succs {
			mat[metRow[m]][j] = productMark
		}
	}

	return &Incidence{
		metabolites: metabolites,
		reactions:   reactions,
		metRow:      metRow,
		rxnCol:      rxnCol,
		mat:         mat,
	}, nil
}

// At returns the incidence entry for (metabolite, reaction): reactantMark
// if metabolite is consumed by reaction, productMark if formed, 0 if
// metabolite does not participate in reaction.
func (inc *Incidence) At(metabolite, reaction string) (int8, error) {
	row, ok := inc.metRow[metabolite]
	if !ok {
		return 0, fmt.Errorf("incidence: At(%s, %s): %w", metabolite, reaction, ErrUnknownMetabolite)
	}
	col, ok := inc.rxnCol[reaction]
	if !ok {
		return 0, fmt.Errorf("incidence: At(%s, %s): %w", metabolite, reaction, ErrUnknownReaction)
	}

	return inc.mat[row][col], nil
}

// Metabolites returns the sorted row labels.
func (inc *Incidence) Metabolites() []string {
	out := make([]string, len(inc.metabolites))
	copy(out, inc.metabolites)

	return out
}

// Reactions returns the sorted column labels.
func (inc *Incidence) Reactions() []string {
	out := make([]string, len(inc.reactions))
	copy(out, inc.reactions)

	return out
}

// Dense returns a defensive copy of the full backing matrix, rows ordered
// per Metabolites() and columns ordered per Reactions().
func (inc *Incidence) Dense() [][]int8 {
	out := make([][]int8, len(inc.mat))
	for i, row := range inc.mat {
		out[i] = append([]int8(nil), row...)
	}

	return out
}

// Reactants returns the sorted metabolites reactantMark participates in
// reaction as a reactant.
func (inc *Incidence) Reactants(reaction string) ([]string, error) {
	return inc.columnByMark(reaction, reactantMark)
}

// Products returns the sorted metabolites that reaction forms.
func (inc *Incidence) Products(reaction string) ([]string, error) {
	return inc.columnByMark(reaction, productMark)
}

func (inc *Incidence) columnByMark(reaction string, mark int8) ([]string, error) {
	col, ok := inc.rxnCol[reaction]
	if !ok {
		return nil, fmt.Errorf("incidence: %w: %s", ErrUnknownReaction, reaction)
	}

	// inc.metabolites is already sorted, so a single pass preserves order.
	out := make([]string, 0)
	for i, m := range inc.metabolites {
		if inc.mat[i][col] == mark {
			out = append(out, m)
		}
	}

	return out, nil
}
