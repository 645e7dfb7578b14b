// Package factorgraph implements the TrueSkill-style Gaussian
// message-passing solver: a per-item Gaussian belief over latent skill,
// one factor per observed "a beat b" comparison, and a fixed-point
// iteration that propagates belief between items and factors until it
// converges (spec.md §3, §4.3).
//
// The bipartite item↔factor relationship is represented with flat index
// lists rather than pointers — two per-item slices of factor indices
// (one for "appears as winner", one for "appears as loser") alongside a
// single append-only slice of factor records. Push appends; Pop removes
// the most recently pushed factor and is its exact inverse, which is what
// lets SolveOne probe a hypothetical comparison and roll the graph back
// to byte-identical state afterward.
//
// Graph is not safe for concurrent use — per spec.md §5 the solver is
// single-threaded and synchronous; callers needing parallel problem
// instances construct one Graph per instance.
package factorgraph
