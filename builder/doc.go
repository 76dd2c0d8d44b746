// Package builder provides deterministic graph fixtures built in the
// functional-options style: a Constructor mutates a core.Graph using a
// resolved builderConfig, and BuildGraph composes any number of them.
//
// The package offers the following key components:
//
//   - Configuration primitives:
//     - BuilderOption:     a function that mutates builderConfig before use.
//     - builderConfig:     holds RNG, ID scheme, weight function.
//   - Vertex-ID schemes (IDFn implementations):
//     - DefaultIDFn:       decimal strings ("0","1",…).
//     - SymbolIDFn:        single letters ("A","B",…).
//     - ExcelColumnIDFn:   Excel-style columns ("A","Z","AA",…).
//     - ArtistIDFn:        prefixed labels ("artist-0",…).
//   - Edge-weight distributions (WeightFn implementations):
//     - DefaultWeightFn:   constant weight DefaultEdgeWeight.
//     - ConstantWeightFn:  fixed user-provided value (may be negative).
//     - UniformWeightFn:   uniform ∼U[min,max].
//     - IntegerWeightFn:   uniform integer in [min,max], exact in float64 sums.
//   - Topologies: Path, Cycle, Complete, Star, RandomSparse, and Collaborations
//     (random tracks whose credited artists form cliques, like the real dataset).
//
// Guarantees:
//
//   - Determinism: same options, seed, and constructor order ⇒ identical graph.
//   - Fast-fail on invalid option parameters via panics in option constructors.
//   - Sentinel errors (ErrTooFewVertices, ErrInvalidProbability, ErrNeedRandSource)
//     for invalid build parameters, wrapped with the constructor name.
package builder
