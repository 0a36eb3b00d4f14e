// Package mdgp solves the Maximally Diverse Grouping Problem: partition N
// items into K groups, each within its own [LB, UB] size bounds, maximizing
// the sum of pairwise dissimilarities of co-grouped items.
//
// Algorithms & complexity:
//   - DeltaMatrix: O(N²) rebuild, O(N) incremental relocate/swap.
//   - LocalSearch: steepest-descent over relocate + swap neighborhoods.
//   - StrongPerturbation / DirectedPerturbation: stochastic and greedy
//     escape operators used between local-search passes.
//   - Crossover: group-wise inheritance with size-bound repair.
//   - Solve: population manager running the above on a linear shrink
//     schedule until a wall-clock deadline.
//
// Determinism: every random decision flows from the Seed in Options,
// through a single *rand.Rand per Solver, via group.DeriveRNG for
// independent substreams (population members, perturbation draws). Two
// Solver instances never share a PRNG.
package mdgp
