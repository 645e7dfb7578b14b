package factorgraph

import (
	"math"

	"github.com/katalvlaran/rankit/gaussian"
	"github.com/katalvlaran/rankit/pendingset"
)

// epsilon guards the rhoG division against a no-op factor update; it is
// the float64 machine epsilon, matching the Rust original's f64::EPSILON.
const epsilon = 2.220446049250313e-16

// Push appends a permanent factor f=(a,b) meaning "a beat b": a is
// registered as the winner-side (side 0) incidence of a, b as the
// loser-side (side 1) incidence of b. The new factor's messages start
// uninformative (zero precision, zero mean).
func (g *Graph) Push(a, b int) error {
	if err := g.checkIndex(a); err != nil {
		return err
	}
	if err := g.checkIndex(b); err != nil {
		return err
	}
	if a == b {
		return ErrSelfComparison
	}

	g.factors = append(g.factors, factor{a: a, b: b})
	id := len(g.factors) - 1
	g.side0[a] = append(g.side0[a], id)
	g.side1[b] = append(g.side1[b], id)
	return nil
}

// Pop removes the most recently pushed factor and its two incidence-list
// entries. It is the exact inverse of Push: calling Pop after Push(a,b)
// with no intervening Push restores the graph to its prior state.
// Popping an empty graph is a no-op.
func (g *Graph) Pop() {
	n := len(g.factors)
	if n == 0 {
		return
	}
	f := g.factors[n-1]
	g.factors = g.factors[:n-1]
	g.side0[f.a] = g.side0[f.a][:len(g.side0[f.a])-1]
	g.side1[f.b] = g.side1[f.b][:len(g.side1[f.b])-1]
}

// Solve runs the global fixed point starting from every item and every
// factor marked pending, with the graph's TauGlobal threshold. It returns
// a freshly allocated posterior (means, variances) snapshot; if save is
// true it also commits the updated beliefs and factor messages back into
// the graph.
func (g *Graph) Solve(save bool) ([]float64, []float64, error) {
	pendingVars := pendingset.New(g.n)
	pendingFactors := pendingset.New(len(g.factors))
	for p := 0; p < g.n; p++ {
		pendingVars.Add(p)
	}
	for j := range g.factors {
		pendingFactors.Add(j)
	}
	return g.fixedPoint(pendingVars, pendingFactors, g.thresholds.TauGlobal, save)
}

// SolveOne pushes a hypothetical factor (i,j), seeds pending work with
// only i, j, and the new factor, runs the fixed point with the graph's
// looser TauProbe threshold, then pops the factor — leaving graph state
// unchanged. It never commits.
func (g *Graph) SolveOne(i, j int) ([]float64, []float64, error) {
	if err := g.checkIndex(i); err != nil {
		return nil, nil, err
	}
	if err := g.checkIndex(j); err != nil {
		return nil, nil, err
	}
	if i == j {
		return nil, nil, ErrSelfComparison
	}

	if err := g.Push(i, j); err != nil {
		return nil, nil, err
	}
	defer g.Pop()

	pendingVars := pendingset.New(g.n)
	pendingFactors := pendingset.New(len(g.factors))
	pendingVars.Add(i)
	pendingVars.Add(j)
	pendingFactors.Add(len(g.factors) - 1)

	return g.fixedPoint(pendingVars, pendingFactors, g.thresholds.TauProbe, false)
}

// fixedPoint runs the message-passing iteration (spec.md §4.3): up to
// MaxIterations outer rounds, each draining the pending factor set (factor
// update) then the pending variable set (variable update), terminating
// early once the factor set is empty at the top of a round.
func (g *Graph) fixedPoint(pendingVars, pendingFactors *pendingset.Set, tau float64, save bool) ([]float64, []float64, error) {
	n := g.n

	rho := make([]float64, n)
	mu := make([]float64, n)
	copy(rho, g.rho)
	copy(mu, g.mu)

	factorRho := make([][2]float64, len(g.factors))
	factorMu := make([][2]float64, len(g.factors))
	for j, f := range g.factors {
		factorRho[j] = f.rho
		factorMu[j] = f.mu
	}

	converged := false
	for iter := 0; iter < g.thresholds.MaxIterations; iter++ {
		if pendingFactors.Len() == 0 {
			converged = true
			break
		}

		for {
			j, ok := pendingFactors.Pop()
			if !ok {
				break
			}

			f := g.factors[j]
			a, b := f.a, f.b

			rhoTilde0 := rho[a] - factorRho[j][0]
			rhoTilde1 := rho[b] - factorRho[j][1]
			muTilde0 := (rho[a]*mu[a] - factorRho[j][0]*factorMu[j][0]) / rhoTilde0
			muTilde1 := (rho[b]*mu[b] - factorRho[j][1]*factorMu[j][1]) / rhoTilde1

			vt := g.thresholds.PerformanceVariance + 1/rhoTilde0 + 1/rhoTilde1
			mt := muTilde0 - muTilde1

			psi, lambda := gaussian.PsiLambda(mt / math.Sqrt(vt))
			mtPrime := mt + math.Sqrt(vt)*psi
			rhotPrime := 1 / (vt * (1 - lambda))

			rhoG := rhotPrime - 1/vt
			muG := (mtPrime*rhotPrime - mt/vt) / (rhoG + epsilon)

			factorRho[j][0] = 1 / (1 + 1/rhoG + 1/rhoTilde1)
			factorMu[j][0] = muTilde1 + muG
			factorRho[j][1] = 1 / (1 + 1/rhoG + 1/rhoTilde0)
			factorMu[j][1] = muTilde0 - muG

			pendingVars.Add(a)
			pendingVars.Add(b)
		}

		for {
			p, ok := pendingVars.Pop()
			if !ok {
				break
			}

			var sumRho, sumRhoMu float64
			for _, j := range g.side0[p] {
				sumRho += factorRho[j][0]
				sumRhoMu += factorRho[j][0] * factorMu[j][0]
			}
			for _, j := range g.side1[p] {
				sumRho += factorRho[j][1]
				sumRhoMu += factorRho[j][1] * factorMu[j][1]
			}

			rhoNew := g.thresholds.PriorPrecision + sumRho
			muNew := sumRhoMu / rhoNew

			if math.Abs(muNew-mu[p]) > tau || math.Abs(rhoNew-rho[p]) > tau {
				for _, j := range g.side0[p] {
					pendingFactors.Add(j)
				}
				for _, j := range g.side1[p] {
					pendingFactors.Add(j)
				}
			}

			rho[p] = rhoNew
			mu[p] = muNew
		}
	}

	g.lastConverged = converged

	means := make([]float64, n)
	variances := make([]float64, n)
	collapsed := false
	for p := 0; p < n; p++ {
		means[p] = mu[p]
		variances[p] = 1 / rho[p]
		if math.IsNaN(mu[p]) || math.IsNaN(rho[p]) {
			collapsed = true
		}
	}
	if collapsed {
		return nil, nil, &NumericalCollapseError{Means: means, Variances: variances}
	}

	if save {
		g.rho = rho
		g.mu = mu
		for j := range g.factors {
			g.factors[j].rho = factorRho[j]
			g.factors[j].mu = factorMu[j]
		}
	}

	return means, variances, nil
}
