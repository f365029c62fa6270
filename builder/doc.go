// Package builder synthesizes the random sparse graphs used as benchmark
// inputs.
//
// The package offers:
//
//   - Configuration primitives:
//     – BuilderOption:  a function that mutates builderConfig before use.
//     – builderConfig:  holds the RNG and the edge-cost function.
//   - Constructors:
//     – RandomSparse(n, p): Erdős–Rényi G(n,p) over unordered pairs i<j.
//   - Orchestration:
//     – BuildGraph: creates a core.Graph, resolves options, runs constructors.
//     – Generate:   RandomSparse(n, DefaultProbability) serialized as text.
//   - Cost distributions (WeightFn):
//     – ConstantWeightFn, UniformIntWeightFn.
//
// Determinism:
//
// There is no package-level random source. Every stochastic path draws from
// the *rand.Rand supplied with WithRand or WithSeed, so a fixed seed and a
// fixed call order reproduce the same graph byte for byte.
//
// Draw order for RandomSparse is part of the contract: for i asc, for j>i
// asc, one Float64 per pair; on inclusion, the WeightFn draws next from the
// same stream.
package builder
