package rank

import (
	"github.com/rs/zerolog"

	"github.com/katalvlaran/rankit/config"
	"github.com/katalvlaran/rankit/eig"
	"github.com/katalvlaran/rankit/factorgraph"
)

// Recommendation is the tuple spec.md §4.6 returns from the facade: the
// recommended next pair, the baseline win-probability and EIG matrices, the
// baseline posterior mean/variance vectors, and the inspection-only
// softmax weighting over every positive-gain candidate (config.Thresholds.
// EIGTemperature), per eig.Result.Weights.
type Recommendation struct {
	Pair           [2]int
	WinProbability [][]float64
	Gain           [][]float64
	Weights        []eig.Probe
	Means          []float64
	Variances      []float64
}

// RankedItem is one entry of Solver.Rankings, supplemented from the Rust
// original's ASAP::ratings accessor (spec.md §4.11).
type RankedItem struct {
	Index    int
	Mean     float64
	Variance float64
}

// Options configures a Solver at construction time.
type Options struct {
	Thresholds config.Thresholds
	Logger     zerolog.Logger
}

// Option is a functional option for New.
type Option func(*Options)

// WithThresholds overrides the spec-mandated numeric contract. Supplying a
// non-positive MaxIterations is a programmer error and panics, mirroring
// factorgraph.WithThresholds and the teacher's own functional-option
// convention.
func WithThresholds(t config.Thresholds) Option {
	return func(o *Options) {
		if t.MaxIterations <= 0 {
			panic("rank: MaxIterations must be positive")
		}
		o.Thresholds = t
	}
}

// WithLogger attaches a logger that emits one Warn() event whenever a
// Solve reaches the iteration cap without the pending-factor set emptying
// (spec.md §7's convergence shortfall). No other code path logs; omitting
// this option leaves the Solver silent (zerolog.Nop()).
func WithLogger(logger zerolog.Logger) Option {
	return func(o *Options) {
		o.Logger = logger
	}
}

// Solver is the facade over a factorgraph.Graph: it owns the permanent
// belief state and exposes both the streaming lower-level operations and
// the one-shot Run entry point.
type Solver struct {
	graph  *factorgraph.Graph
	logger zerolog.Logger
	n      int
}

// N reports the item universe size this Solver was constructed with.
func (s *Solver) N() int {
	return s.n
}
