// Package rank is the facade spec.md §4.6 describes: it owns a
// factorgraph.Graph and wires it to the eig package so callers can submit
// a dense observation-count matrix (or stream individual observations) and
// get back a posterior plus the next comparison worth asking for.
//
// Solver is not safe for concurrent use, matching factorgraph.Graph's own
// single-threaded contract (spec.md §5). Callers needing parallel problem
// instances construct one Solver per instance.
package rank
