// Package eig scores candidate pairwise comparisons by expected
// information gain: for every unordered pair (i, j) it probes both
// hypothetical outcomes through a factorgraph.Graph, measures how far each
// counterfactual posterior sits from the current baseline via KL
// divergence, and combines the two outcome-weighted divergences into a
// single EIG score (spec.md §4.5). The pair with the highest score is the
// next comparison worth asking for.
//
// The baseline win-probability matrix and the EIG matrix are both returned
// as gonum dense matrices internally and flattened to [][]float64 only at
// the package boundary, mirroring how the wider pack reaches for
// gonum.org/v1/gonum/mat for any component that manipulates whole N×N
// numeric grids rather than single scalars.
package eig
