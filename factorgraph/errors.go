package factorgraph

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by the factor-graph solver.
var (
	// ErrSelfComparison is returned when Push or SolveOne is given a == b:
	// an item cannot be compared against itself.
	ErrSelfComparison = errors.New("factorgraph: self-comparison")

	// ErrIndexRange is returned when an item index falls outside [0, N).
	ErrIndexRange = errors.New("factorgraph: index out of range")
)

// NumericalCollapseError reports that a NaN survived the fixed-point loop —
// spec.md §7's "numerical collapse", typically a contradictory observation
// set (e.g. a self-loop that slipped past validation). It carries the
// offending posterior snapshot so the diagnostic can be inspected without
// re-running the solve.
type NumericalCollapseError struct {
	Means     []float64
	Variances []float64
}

func (e *NumericalCollapseError) Error() string {
	return fmt.Sprintf("factorgraph: numerical collapse: means=%v variances=%v", e.Means, e.Variances)
}

func indexError(p, n int) error {
	return fmt.Errorf("%w: %d not in [0,%d)", ErrIndexRange, p, n)
}
