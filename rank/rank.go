package rank

import (
	"sort"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/rankit/config"
	"github.com/katalvlaran/rankit/eig"
	"github.com/katalvlaran/rankit/factorgraph"
)

// New constructs a Solver for a fixed universe of n items.
func New(n int, opts ...Option) (*Solver, error) {
	o := Options{
		Thresholds: config.Default(),
		Logger:     zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(&o)
	}

	return &Solver{
		graph:  factorgraph.New(n, factorgraph.WithThresholds(o.Thresholds)),
		logger: o.Logger,
		n:      n,
	}, nil
}

// PushObservation records a permanent "winner beat loser" comparison.
func (s *Solver) PushObservation(winner, loser int) error {
	return s.graph.Push(winner, loser)
}

// Solve runs the global fixed point over every pushed observation and
// commits the result. If the iteration cap is reached without the
// pending-factor set emptying, it logs a Warn() event (spec.md §7's
// convergence shortfall is non-fatal and never returned as an error).
func (s *Solver) Solve() (means, variances []float64, err error) {
	means, variances, err = s.graph.Solve(true)
	if err != nil {
		return nil, nil, err
	}
	if !s.graph.Converged() {
		s.logger.Warn().
			Int("max_iterations", s.graph.Thresholds().MaxIterations).
			Int("num_factors", s.graph.NumFactors()).
			Msg("rank: fixed point reached the iteration cap without converging")
	}
	return means, variances, nil
}

// SolveOne probes a hypothetical comparison without committing it.
func (s *Solver) SolveOne(i, j int) (means, variances []float64, err error) {
	return s.graph.SolveOne(i, j)
}

// Run is the one-shot facade of spec.md §4.6: it accepts a dense N×N
// non-negative count matrix, unrolls it into individual observations in
// row-major order, solves, scores every candidate pair, and returns the
// recommendation.
func (s *Solver) Run(m [][]int) (Recommendation, error) {
	if err := s.pushMatrix(m); err != nil {
		return Recommendation{}, err
	}

	means, variances, err := s.Solve()
	if err != nil {
		return Recommendation{}, err
	}

	result, err := eig.Select(s.graph, means, variances)
	if err != nil {
		return Recommendation{}, err
	}

	return Recommendation{
		Pair:           result.Best,
		WinProbability: result.WinProbability,
		Gain:           result.Gain,
		Weights:        result.Weights(s.graph.Thresholds().EIGTemperature),
		Means:          means,
		Variances:      variances,
	}, nil
}

// pushMatrix validates M's shape and contents, then pushes one factor per
// observed comparison in row-major order, M[i][j] times for each cell.
func (s *Solver) pushMatrix(m [][]int) error {
	if len(m) != s.n {
		return matrixShapeError(s.n, len(m))
	}
	for i, row := range m {
		if len(row) != s.n {
			return rowShapeError(i, s.n, len(row))
		}
	}
	for i, row := range m {
		for j, count := range row {
			if count == 0 {
				continue
			}
			if count < 0 {
				return ErrNegativeCount
			}
			if i == j {
				return ErrSelfComparisonInMatrix
			}
		}
	}
	for i, row := range m {
		for j, count := range row {
			for k := 0; k < count; k++ {
				if err := s.graph.Push(i, j); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// Rankings returns every item's posterior, sorted by descending mean and,
// on ties, ascending index (spec.md §4.11, supplemented from the Rust
// original's ASAP::ratings).
func (s *Solver) Rankings() []RankedItem {
	means := s.graph.Means()
	variances := s.graph.Variances()

	out := make([]RankedItem, s.n)
	for i := range out {
		out[i] = RankedItem{Index: i, Mean: means[i], Variance: variances[i]}
	}
	sort.Slice(out, func(a, b int) bool {
		if out[a].Mean != out[b].Mean {
			return out[a].Mean > out[b].Mean
		}
		return out[a].Index < out[b].Index
	})
	return out
}
