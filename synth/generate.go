package synth

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/biopath/graph"
)

// GenerateBipartite builds a synthetic bipartite reaction graph and returns
// it alongside its seed metabolite set. Layer 0 is the seed set; each
// subsequent layer adds config.branchingFactor reactions, each drawing
// config.arityMin..arityMax reactants from every metabolite produced by a
// strictly earlier layer and forming exactly one new product metabolite.
//
// When WithCycleProbability is set above 0, a second pass may wire one
// extra reactant edge from a later-layer metabolite back into an
// earlier-layer reaction, producing a feedback cycle for enumerate's cycle
// classifier to exercise.
//
// Determinism: identical options (including WithSeed) always produce an
// identical graph.
func GenerateBipartite(opts ...Option) (*graph.Graph, map[string]struct{}, error) {
	c := defaultConfig()
	for _, opt := range opts {
		opt(&c)
	}

	g := graph.NewGraph()
	seeds := make(map[string]struct{}, c.seedCount)

	layerZero := make([]string, c.seedCount)
	for i := 0; i < c.seedCount; i++ {
		id := fmt.Sprintf("%s0_%d", c.metPrefix, i)
		if err := g.AddMetabolite(id); err != nil {
			return nil, nil, fmt.Errorf("synth: seed %s: %w", id, err)
		}
		layerZero[i] = id
		seeds[id] = struct{}{}
	}

	metsByLayer := [][]string{layerZero}
	rxnsByLayer := make([][]string, 0, c.layers)

	for layer := 1; layer <= c.layers; layer++ {
		available := flatten(metsByLayer)
		rxns := make([]string, 0, c.branchingFactor)
		products := make([]string, 0, c.branchingFactor)

		for b := 0; b < c.branchingFactor; b++ {
			rxnID := fmt.Sprintf("%s%d_%d", c.rxnPrefix, layer, b)
			if err := g.AddReaction(rxnID); err != nil {
				return nil, nil, fmt.Errorf("synth: reaction %s: %w", rxnID, err)
			}

			arity := c.arityMin
			if c.arityMax > c.arityMin {
				arity += c.rng.Intn(c.arityMax - c.arityMin + 1)
			}
			for _, reactant := range pickDistinct(c.rng, available, arity) {
				if err := g.AddEdge(reactant, rxnID); err != nil {
					return nil, nil, fmt.Errorf("synth: edge %s->%s: %w", reactant, rxnID, err)
				}
			}

			productID := fmt.Sprintf("%s%d_%d", c.metPrefix, layer, b)
			if err := g.AddMetabolite(productID); err != nil {
				return nil, nil, fmt.Errorf("synth: product %s: %w", productID, err)
			}
			if err := g.AddEdge(rxnID, productID); err != nil {
				return nil, nil, fmt.Errorf("synth: edge %s->%s: %w", rxnID, productID, err)
			}

			rxns = append(rxns, rxnID)
			products = append(products, productID)
		}

		rxnsByLayer = append(rxnsByLayer, rxns)
		metsByLayer = append(metsByLayer, products)
	}

	if c.cycleProbability > 0 {
		wireCycles(g, c, metsByLayer, rxnsByLayer)
	}

	return g, seeds, nil
}

// wireCycles adds, for each reaction, a chance-gated extra reactant edge
// from a metabolite produced in a strictly later layer, manufacturing a
// feedback cycle. Duplicate and self-class edge attempts are silently
// skipped: they reflect an unlucky draw, not a construction error.
func wireCycles(g *graph.Graph, c config, metsByLayer [][]string, rxnsByLayer [][]string) {
	for layer, rxns := range rxnsByLayer {
		laterMets := flatten(metsByLayer[layer+2:])
		if len(laterMets) == 0 {
			continue
		}
		for _, rxn := range rxns {
			if c.rng.Float64() >= c.cycleProbability {
				continue
			}
			candidate := laterMets[c.rng.Intn(len(laterMets))]
			_ = g.AddEdge(candidate, rxn) // best-effort: ignore duplicate-edge draws
		}
	}
}

func flatten(layers [][]string) []string {
	total := 0
	for _, l := range layers {
		total += len(l)
	}
	out := make([]string, 0, total)
	for _, l := range layers {
		out = append(out, l...)
	}
	return out
}

// pickDistinct returns up to n distinct elements of pool chosen by rng,
// preserving pool's order. If pool has fewer than n elements, the whole
// pool is returned.
func pickDistinct(rng *rand.Rand, pool []string, n int) []string {
	if n >= len(pool) {
		out := make([]string, len(pool))
		copy(out, pool)
		return out
	}

	chosen := make(map[int]struct{}, n)
	for len(chosen) < n {
		chosen[rng.Intn(len(pool))] = struct{}{}
	}

	out := make([]string, 0, n)
	for i, p := range pool {
		if _, ok := chosen[i]; ok {
			out = append(out, p)
		}
	}
	return out
}
