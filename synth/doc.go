// Package synth generates synthetic bipartite reaction networks for
// benchmarking and property-based testing of package enumerate, grounded in
// the teacher's builder package: the same functional-options configuration
// (BuilderOption/builderConfig there, Option/config here) seeded through a
// single *rand.Rand for deterministic, reproducible output.
//
// Unlike builder's fixed topologies (cycles, stars, grids), GenerateBipartite
// grows a layered random reaction network: each layer's reactions draw their
// reactants from every metabolite produced by a prior layer and each forms
// exactly one new product, optionally wiring a fraction of reactants from a
// later layer back into an earlier reaction to manufacture feedback cycles
// on demand.
package synth
