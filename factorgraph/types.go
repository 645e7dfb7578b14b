package factorgraph

import "github.com/katalvlaran/rankit/config"

// factor is an observed comparison f=(a,b) meaning "a beat b", alongside
// the two outgoing messages the solver maintains for it: rho/mu[0] is the
// message toward a (the winner side), rho/mu[1] toward b (the loser side).
type factor struct {
	a, b int
	rho  [2]float64
	mu   [2]float64
}

// Options configures a Graph at construction time.
type Options struct {
	Thresholds config.Thresholds
}

// Option is a functional option for New.
type Option func(*Options)

// WithThresholds overrides the spec-mandated numeric contract
// (config.Default()) for this Graph. Supplying a non-positive
// MaxIterations is a programmer error and panics, mirroring the teacher
// pack's convention of panicking on malformed functional-option constants
// rather than threading a validation error through every call site.
func WithThresholds(t config.Thresholds) Option {
	return func(o *Options) {
		if t.MaxIterations <= 0 {
			panic("factorgraph: MaxIterations must be positive")
		}
		o.Thresholds = t
	}
}

// Graph holds the permanent (committed) belief-propagation state: one
// Gaussian belief per item, one factor per permanent observation, and the
// bipartite incidence lists connecting them.
type Graph struct {
	n          int
	thresholds config.Thresholds

	rho []float64 // per-item posterior precision
	mu  []float64 // per-item posterior mean

	factors []factor
	side0   [][]int // side0[p] = indices of factors where p is the winner
	side1   [][]int // side1[p] = indices of factors where p is the loser

	lastConverged bool // set by fixedPoint: pending factors emptied before the iteration cap
}

// New constructs a Graph over a fixed universe of n items, each starting
// at the prior belief (mean 0, variance Thresholds.InitialVariance, which is
// config.Default().InitialVariance unless WithThresholds overrides it).
func New(n int, opts ...Option) *Graph {
	o := Options{Thresholds: config.Default()}
	for _, opt := range opts {
		opt(&o)
	}

	g := &Graph{
		n:          n,
		thresholds: o.Thresholds,
		rho:        make([]float64, n),
		mu:         make([]float64, n),
		side0:      make([][]int, n),
		side1:      make([][]int, n),
	}
	for p := 0; p < n; p++ {
		g.rho[p] = 1 / o.Thresholds.InitialVariance
	}
	return g
}

// N reports the item universe size.
func (g *Graph) N() int {
	return g.n
}

// Thresholds returns the numeric contract this Graph was constructed with.
func (g *Graph) Thresholds() config.Thresholds {
	return g.thresholds
}

// Means returns the current committed posterior mean per item.
func (g *Graph) Means() []float64 {
	out := make([]float64, g.n)
	copy(out, g.mu)
	return out
}

// Variances returns the current committed posterior variance per item.
func (g *Graph) Variances() []float64 {
	out := make([]float64, g.n)
	for p := range out {
		out[p] = 1 / g.rho[p]
	}
	return out
}

// NumFactors reports how many permanent observations are currently pushed.
func (g *Graph) NumFactors() int {
	return len(g.factors)
}

// Converged reports whether the most recent Solve/SolveOne emptied the
// pending-factor set before exhausting MaxIterations. A false result is
// spec.md §7's "convergence shortfall": non-fatal, the returned posterior
// is still the best-effort belief after the iteration cap.
func (g *Graph) Converged() bool {
	return g.lastConverged
}

func (g *Graph) checkIndex(p int) error {
	if p < 0 || p >= g.n {
		return indexError(p, g.n)
	}
	return nil
}
