package enumerate_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/biopath/enumerate"
	"github.com/katalvlaran/biopath/graph"
	"github.com/katalvlaran/biopath/telemetry"
)

func mustGraph(t *testing.T, metabolites, reactions []string, edges [][2]string) *graph.Graph {
	t.Helper()
	g := graph.NewGraph()
	for _, m := range metabolites {
		require.NoError(t, g.AddMetabolite(m))
	}
	for _, r := range reactions {
		require.NoError(t, g.AddReaction(r))
	}
	for _, e := range edges {
		require.NoError(t, g.AddEdge(e[0], e[1]))
	}
	return g
}

// Scenario A (linear): s -> R1 -> a -> R2 -> t.
func TestEnumerate_ScenarioA_Linear(t *testing.T) {
	g := mustGraph(t,
		[]string{"s", "a", "t"},
		[]string{"R1", "R2"},
		[][2]string{{"s", "R1"}, {"R1", "a"}, {"a", "R2"}, {"R2", "t"}},
	)
	seeds := map[string]struct{}{"s": {}}

	res, err := enumerate.Enumerate(g, seeds, 3)
	require.NoError(t, err)

	require.True(t, res.Table.Has("a", 1))
	assert.Equal(t, [][]string{{"R1"}}, res.Table.Entries("a", 1))

	require.True(t, res.Table.Has("t", 2))
	assert.ElementsMatch(t, []string{"R1", "R2"}, res.Table.Entries("t", 2)[0])

	assert.ElementsMatch(t, []string{"s", "a", "t"}, keysOf(res.Scope))
	assert.Empty(t, res.Cycles.Metabolites())
}

// Scenario B (branch merge): s->R1->a, s->R2->b, a->R3, b->R3, R3->t.
func TestEnumerate_ScenarioB_BranchMerge(t *testing.T) {
	g := mustGraph(t,
		[]string{"s", "a", "b", "t"},
		[]string{"R1", "R2", "R3"},
		[][2]string{
			{"s", "R1"}, {"R1", "a"},
			{"s", "R2"}, {"R2", "b"},
			{"a", "R3"}, {"b", "R3"},
			{"R3", "t"},
		},
	)
	seeds := map[string]struct{}{"s": {}}

	res, err := enumerate.Enumerate(g, seeds, 3)
	require.NoError(t, err)

	require.True(t, res.Table.Has("t", 3))
	entries := res.Table.Entries("t", 3)
	require.Len(t, entries, 1)
	assert.ElementsMatch(t, []string{"R1", "R2", "R3"}, entries[0])
	assert.Equal(t, []int{3}, res.Table.Lengths("t"))
}

// Scenario C (alternate routes): s->R1->a, s->R2->a, a->R3->t.
func TestEnumerate_ScenarioC_AlternateRoutes(t *testing.T) {
	g := mustGraph(t,
		[]string{"s", "a", "t"},
		[]string{"R1", "R2", "R3"},
		[][2]string{
			{"s", "R1"}, {"R1", "a"},
			{"s", "R2"}, {"R2", "a"},
			{"a", "R3"}, {"R3", "t"},
		},
	)
	seeds := map[string]struct{}{"s": {}}

	res, err := enumerate.Enumerate(g, seeds, 2)
	require.NoError(t, err)

	require.Equal(t, 2, res.Table.Count("a", 1))
	assert.ElementsMatch(t, [][]string{{"R1"}, {"R2"}}, res.Table.Entries("a", 1))

	require.Equal(t, 2, res.Table.Count("t", 2))
	gotT := res.Table.Entries("t", 2)
	require.Len(t, gotT, 2)
	assert.ElementsMatch(t, [][]string{{"R1", "R3"}, {"R2", "R3"}}, gotT)
}

// Scenario D (cycle): s->R1->a, a->R2->b, b->R3->a.
func TestEnumerate_ScenarioD_Cycle(t *testing.T) {
	g := mustGraph(t,
		[]string{"s", "a", "b"},
		[]string{"R1", "R2", "R3"},
		[][2]string{
			{"s", "R1"}, {"R1", "a"},
			{"a", "R2"}, {"R2", "b"},
			{"b", "R3"}, {"R3", "a"},
		},
	)
	seeds := map[string]struct{}{"s": {}}

	res, err := enumerate.Enumerate(g, seeds, 4)
	require.NoError(t, err)

	require.True(t, res.Table.Has("a", 1))
	assert.Equal(t, [][]string{{"R1"}}, res.Table.Entries("a", 1))

	require.True(t, res.Table.Has("b", 2))
	assert.ElementsMatch(t, []string{"R1", "R2"}, res.Table.Entries("b", 2)[0])

	assert.False(t, res.Table.Has("a", 3), "cyclic set must not land in the pathway table")

	cyc := res.Cycles.Entries("a", 3)
	require.Len(t, cyc, 1)
	assert.ElementsMatch(t, []string{"R1", "R2", "R3"}, cyc[0])
}

// Scenario E (pruning): a reaction with 5 non-seed reactants is removed
// before BFS, so any metabolite reachable only through it stays unreachable.
func TestEnumerate_ScenarioE_Pruning(t *testing.T) {
	g := graph.NewGraph()
	require.NoError(t, g.AddMetabolite("s"))
	require.NoError(t, g.AddMetabolite("only"))
	require.NoError(t, g.AddReaction("Rgreedy"))
	for i := 0; i < 5; i++ {
		m := string(rune('a' + i))
		require.NoError(t, g.AddMetabolite(m))
		require.NoError(t, g.AddEdge(m, "Rgreedy"))
	}
	require.NoError(t, g.AddEdge("Rgreedy", "only"))

	seeds := map[string]struct{}{"s": {}}
	res, err := enumerate.Enumerate(g, seeds, 2)
	require.NoError(t, err)

	_, reachable := res.Scope["only"]
	assert.False(t, reachable)

	// The caller's original graph is untouched unless WithInPlacePruning is set.
	assert.True(t, g.HasNode("Rgreedy"))
}

func TestEnumerate_InPlacePruning_MutatesCallerGraph(t *testing.T) {
	g := graph.NewGraph()
	require.NoError(t, g.AddMetabolite("s"))
	require.NoError(t, g.AddMetabolite("only"))
	require.NoError(t, g.AddReaction("Rgreedy"))
	for i := 0; i < 5; i++ {
		m := string(rune('a' + i))
		require.NoError(t, g.AddMetabolite(m))
		require.NoError(t, g.AddEdge(m, "Rgreedy"))
	}
	require.NoError(t, g.AddEdge("Rgreedy", "only"))

	seeds := map[string]struct{}{"s": {}}
	_, err := enumerate.Enumerate(g, seeds, 2, enumerate.WithInPlacePruning())
	require.NoError(t, err)

	assert.False(t, g.HasNode("Rgreedy"))
}

func TestEnumerate_InvalidCutoff(t *testing.T) {
	g := graph.NewGraph()
	require.NoError(t, g.AddMetabolite("s"))

	_, err := enumerate.Enumerate(g, map[string]struct{}{"s": {}}, 0)
	assert.ErrorIs(t, err, enumerate.ErrInvalidCutoff)
}

// cancelOnColumn cancels its context when Enumerate reports a finished DP
// column, so the BFS completes and the next column's check sees the cancel.
type cancelOnColumn struct{ cancel context.CancelFunc }

func (c cancelOnColumn) Emit(ev telemetry.Event) {
	if ev.Stage == "enumerate.column" {
		c.cancel()
	}
}

func (cancelOnColumn) Flush(context.Context) error { return nil }

func TestEnumerate_ContextCanceledBetweenColumns(t *testing.T) {
	g := mustGraph(t,
		[]string{"s", "a", "t"},
		[]string{"R1", "R2"},
		[][2]string{{"s", "R1"}, {"R1", "a"}, {"a", "R2"}, {"R2", "t"}},
	)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	_, err := enumerate.Enumerate(g, map[string]struct{}{"s": {}}, 3,
		enumerate.WithContext(ctx), enumerate.WithTelemetry(cancelOnColumn{cancel: cancel}))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestEnumerate_NilGraph(t *testing.T) {
	_, err := enumerate.Enumerate(nil, map[string]struct{}{"s": {}}, 2)
	assert.ErrorIs(t, err, enumerate.ErrGraphNil)
}

func keysOf(m map[string]struct{}) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}
