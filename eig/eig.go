package eig

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/rankit/factorgraph"
	"github.com/katalvlaran/rankit/gaussian"
)

// Select computes the baseline win-probability matrix from (means,
// variances), probes every unordered pair through g, scores each by
// expected information gain, and returns the deterministic argmax pair
// alongside both matrices. g's committed state is unchanged: every probe
// goes through factorgraph.Graph.SolveOne, which pushes, solves, and pops.
func Select(g *factorgraph.Graph, means, variances []float64) (*Result, error) {
	n := len(means)
	if n != len(variances) {
		return nil, fmt.Errorf("eig: means/variances length mismatch: %d vs %d", n, len(variances))
	}

	winProb := winProbabilityMatrix(means, variances)
	gain := mat.NewDense(n, n, nil)

	var candidates []Probe
	var best Probe
	haveBest := false

	for i := 1; i < n; i++ {
		for j := 0; j < i; j++ {
			muIJ, varIJ, err := g.SolveOne(i, j)
			if err != nil {
				return nil, fmt.Errorf("eig: probe (%d beats %d): %w", i, j, err)
			}
			muJI, varJI, err := g.SolveOne(j, i)
			if err != nil {
				return nil, fmt.Errorf("eig: probe (%d beats %d): %w", j, i, err)
			}

			dIJ := klDivergence(muIJ, varIJ, means, variances)
			dJI := klDivergence(muJI, varJI, means, variances)

			score := winProb.At(i, j)*dIJ + winProb.At(j, i)*dJI
			gain.Set(i, j, score)

			if score > 0 {
				candidates = append(candidates, Probe{I: i, J: j, Gain: score})
			}
			if !haveBest || score > best.Gain {
				best = Probe{I: i, J: j, Gain: score}
				haveBest = true
			}
		}
	}

	result := &Result{
		WinProbability: denseToSlice(winProb),
		Gain:           denseToSlice(gain),
		candidates:     candidates,
	}
	if haveBest {
		result.Best = [2]int{best.I, best.J}
	}
	return result, nil
}

// winProbabilityMatrix computes P[i][j] = Φ((μ_i-μ_j)/√(1+σ²_i+σ²_j)) for
// i≠j, zero on the diagonal (spec.md §4.5).
func winProbabilityMatrix(means, variances []float64) *mat.Dense {
	n := len(means)
	p := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			denom := math.Sqrt(1 + variances[i] + variances[j])
			p.Set(i, j, gaussian.Ndtr((means[i]-means[j])/denom))
		}
	}
	return p
}

// klDivergence computes D(p‖q), the relative entropy from a probed
// posterior p to the baseline posterior q, treating each as a product of
// independent univariate Gaussians (spec.md §4.5).
func klDivergence(muP, varP, muQ, varQ []float64) float64 {
	var sum float64
	for k := range muP {
		sum += math.Log(varQ[k]/varP[k]) + varP[k]/varQ[k] + (muQ[k]-muP[k])*(muQ[k]-muP[k])/varQ[k] - 1
	}
	return 0.5 * sum
}

// weight applies the softmax temperature to a single gain value; exp is
// monotone, so it never changes which candidate has the highest weight.
func weight(gain, beta float64) float64 {
	return math.Exp(beta * gain)
}

func denseToSlice(m *mat.Dense) [][]float64 {
	r, c := m.Dims()
	out := make([][]float64, r)
	for i := 0; i < r; i++ {
		out[i] = make([]float64, c)
		for j := 0; j < c; j++ {
			out[i][j] = m.At(i, j)
		}
	}
	return out
}
