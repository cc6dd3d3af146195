package synth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/biopath/graph"
	"github.com/katalvlaran/biopath/synth"
)

func TestGenerateBipartite_Deterministic(t *testing.T) {
	g1, seeds1, err := synth.GenerateBipartite(synth.WithSeed(42), synth.WithLayers(3), synth.WithBranching(2))
	require.NoError(t, err)
	g2, seeds2, err := synth.GenerateBipartite(synth.WithSeed(42), synth.WithLayers(3), synth.WithBranching(2))
	require.NoError(t, err)

	assert.Equal(t, seeds1, seeds2)
	assert.Equal(t, g1.NodesOfClass(graph.ClassMetabolite), g2.NodesOfClass(graph.ClassMetabolite))
	assert.Equal(t, g1.NodesOfClass(graph.ClassReaction), g2.NodesOfClass(graph.ClassReaction))
}

func TestGenerateBipartite_SeedsAreMetabolitesWithNoPredecessors(t *testing.T) {
	g, seeds, err := synth.GenerateBipartite(synth.WithSeed(7), synth.WithSeedCount(3), synth.WithLayers(2))
	require.NoError(t, err)
	require.Len(t, seeds, 3)

	for s := range seeds {
		assert.True(t, g.HasNode(s))
		class, ok := g.ClassOf(s)
		require.True(t, ok)
		assert.Equal(t, graph.ClassMetabolite, class)

		preds, err := g.Predecessors(s)
		require.NoError(t, err)
		assert.Empty(t, preds)
	}
}

func TestGenerateBipartite_NodeCountsGrowWithLayers(t *testing.T) {
	g, _, err := synth.GenerateBipartite(synth.WithSeed(3), synth.WithLayers(4), synth.WithBranching(2))
	require.NoError(t, err)

	mets := g.NodesOfClass(graph.ClassMetabolite)
	rxns := g.NodesOfClass(graph.ClassReaction)

	// seed layer + 4 grown layers of 2 products each = 2 + 8 metabolites.
	assert.Len(t, mets, 2+4*2)
	assert.Len(t, rxns, 4*2)
}

func TestGenerateBipartite_CycleProbabilityOneWiresBackEdges(t *testing.T) {
	g, _, err := synth.GenerateBipartite(
		synth.WithSeed(11),
		synth.WithSeedCount(1),
		synth.WithLayers(3),
		synth.WithBranching(1),
		synth.WithCycleProbability(1),
	)
	require.NoError(t, err)

	rxns := g.NodesOfClass(graph.ClassReaction)
	foundCycleEdge := false
	for _, rxn := range rxns {
		preds, err := g.Predecessors(rxn)
		require.NoError(t, err)
		if len(preds) > 1 {
			foundCycleEdge = true
		}
	}
	assert.True(t, foundCycleEdge, "expected at least one reaction to gain an extra back-edge reactant")
}

func TestGenerateBipartite_ArityIsRespected(t *testing.T) {
	g, _, err := synth.GenerateBipartite(
		synth.WithSeed(5),
		synth.WithSeedCount(4),
		synth.WithLayers(1),
		synth.WithBranching(3),
		synth.WithArity(2, 2),
	)
	require.NoError(t, err)

	for _, rxn := range g.NodesOfClass(graph.ClassReaction) {
		preds, err := g.Predecessors(rxn)
		require.NoError(t, err)
		assert.Len(t, preds, 2)
	}
}
