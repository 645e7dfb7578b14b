// Package gaussian provides the standard-normal primitives shared by the
// factor-graph solver and the EIG selector: the CDF Φ and the truncated-
// Gaussian moment-correction pair (ψ, λ) used when a factor's outgoing
// message is recomputed by moment matching.
//
// Both functions are evaluated only at arguments of the form m/√v with
// v ≥ 1 (a difference of two cavity means over a per-game performance
// variance of at least one), which is the only regime the factor-graph
// solver ever probes. Outside that regime — in particular for large
// negative arguments — ψ and λ lose numerical accuracy; callers in this
// module never hit that range, and this package does not guard against it.
package gaussian
