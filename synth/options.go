package synth

import "math/rand"

// Option customizes GenerateBipartite's network shape. Options never
// panic; out-of-range values are clamped to the nearest valid bound.
type Option func(*config)

type config struct {
	rng              *rand.Rand
	seedCount        int
	layers           int
	arityMin         int
	arityMax         int
	branchingFactor  int
	cycleProbability float64
	metPrefix        string
	rxnPrefix        string
}

func defaultConfig() config {
	return config{
		rng:              rand.New(rand.NewSource(1)),
		seedCount:        2,
		layers:           3,
		arityMin:         1,
		arityMax:         1,
		branchingFactor:  2,
		cycleProbability: 0,
		metPrefix:        "m",
		rxnPrefix:        "r",
	}
}

// WithSeed seeds the generator's RNG for reproducible output.
func WithSeed(seed int64) Option {
	return func(c *config) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithSeedCount sets how many seed metabolites layer 0 contains (minimum 1).
func WithSeedCount(n int) Option {
	return func(c *config) {
		if n < 1 {
			n = 1
		}
		c.seedCount = n
	}
}

// WithLayers sets how many reaction layers are grown past the seed set
// (minimum 1).
func WithLayers(n int) Option {
	return func(c *config) {
		if n < 1 {
			n = 1
		}
		c.layers = n
	}
}

// WithArity bounds how many reactants a reaction draws from prior layers
// (min clamped to 1, max clamped to at least min).
func WithArity(min, max int) Option {
	return func(c *config) {
		if min < 1 {
			min = 1
		}
		if max < min {
			max = min
		}
		c.arityMin, c.arityMax = min, max
	}
}

// WithBranching sets how many reactions each layer contributes (minimum 1).
func WithBranching(n int) Option {
	return func(c *config) {
		if n < 1 {
			n = 1
		}
		c.branchingFactor = n
	}
}

// WithCycleProbability sets the per-reaction chance, once at least two
// layers exist, of drawing one extra reactant from a metabolite produced
// after the reaction's own layer — manufacturing a feedback cycle. p is
// clamped to [0, 1].
func WithCycleProbability(p float64) Option {
	return func(c *config) {
		if p < 0 {
			p = 0
		}
		if p > 1 {
			p = 1
		}
		c.cycleProbability = p
	}
}

// WithIDPrefixes overrides the default "m"/"r" metabolite/reaction ID
// prefixes. An empty prefix leaves the corresponding default in place.
func WithIDPrefixes(metPrefix, rxnPrefix string) Option {
	return func(c *config) {
		if metPrefix != "" {
			c.metPrefix = metPrefix
		}
		if rxnPrefix != "" {
			c.rxnPrefix = rxnPrefix
		}
	}
}
