package rank

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by Run when the input matrix is malformed.
var (
	// ErrMatrixNotSquare is returned when a row of M has a different
	// length than N, or M itself does not have N rows.
	ErrMatrixNotSquare = errors.New("rank: matrix is not N×N")

	// ErrNegativeCount is returned when M[i][j] is negative; spec.md
	// §4.6 requires a dense non-negative integer matrix.
	ErrNegativeCount = errors.New("rank: matrix entry is negative")

	// ErrSelfComparisonInMatrix is returned when M[i][i] != 0: the
	// caller submitted a self-comparison, which spec.md §4.6 requires
	// the implementation to reject outright.
	ErrSelfComparisonInMatrix = errors.New("rank: matrix has a self-comparison on the diagonal")
)

func matrixShapeError(n, got int) error {
	return fmt.Errorf("%w: want %d rows, got %d", ErrMatrixNotSquare, n, got)
}

func rowShapeError(row, n, got int) error {
	return fmt.Errorf("%w: row %d wants %d columns, got %d", ErrMatrixNotSquare, row, n, got)
}
