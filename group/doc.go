// Package group defines the problem model shared by the mdgp and anticluster
// engines: items, the pairwise dissimilarity matrix, per-group size bounds,
// and the feasibility/assignment bookkeeping both engines build on.
//
// Design goals:
//   - Mathematical rigor: feasibility is checked once at construction so the
//     hot paths of both engines can trust sizes[g] ∈ [LB[g], UB[g]] always.
//   - Determinism: every random decision in both engines comes from a
//     *rand.Rand derived from a caller-supplied seed; no engine consults
//     process entropy. mdgp's outer schedule does read the wall clock: the
//     time budget, kick strength and population size depend on elapsed time.
//   - Zero surprises: construction fails loudly (a sentinel error) rather
//     than producing a solver that silently cannot reach a feasible state.
package group
