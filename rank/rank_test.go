package rank_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rankit/config"
	"github.com/katalvlaran/rankit/rank"
)

func TestNew_ReportsUniverseSize(t *testing.T) {
	s, err := rank.New(3)
	require.NoError(t, err)
	assert.Equal(t, 3, s.N())
}

func TestRun_RejectsNonSquareMatrix(t *testing.T) {
	s, err := rank.New(2)
	require.NoError(t, err)

	_, err = s.Run([][]int{{0, 1}})
	assert.ErrorIs(t, err, rank.ErrMatrixNotSquare)
}

func TestRun_RejectsRaggedRow(t *testing.T) {
	s, err := rank.New(2)
	require.NoError(t, err)

	_, err = s.Run([][]int{{0, 1}, {1}})
	assert.ErrorIs(t, err, rank.ErrMatrixNotSquare)
}

func TestRun_RejectsSelfComparisonOnDiagonal(t *testing.T) {
	s, err := rank.New(2)
	require.NoError(t, err)

	_, err = s.Run([][]int{{1, 0}, {0, 0}})
	assert.ErrorIs(t, err, rank.ErrSelfComparisonInMatrix)
}

func TestRun_RejectsNegativeCount(t *testing.T) {
	s, err := rank.New(2)
	require.NoError(t, err)

	_, err = s.Run([][]int{{0, -1}, {0, 0}})
	assert.ErrorIs(t, err, rank.ErrNegativeCount)
}

func TestRun_TwoItemsOneObservation(t *testing.T) {
	s, err := rank.New(2)
	require.NoError(t, err)

	rec, err := s.Run([][]int{{0, 0}, {1, 0}})
	require.NoError(t, err)

	assert.Equal(t, [2]int{1, 0}, rec.Pair)
	assert.Greater(t, rec.Means[1], rec.Means[0])
	assert.Greater(t, rec.WinProbability[1][0], 0.5)
}

func TestRun_EmptyMatrixReturnsPrior(t *testing.T) {
	s, err := rank.New(3)
	require.NoError(t, err)

	rec, err := s.Run([][]int{{0, 0, 0}, {0, 0, 0}, {0, 0, 0}})
	require.NoError(t, err)

	for i := range rec.Means {
		assert.Equal(t, 0.0, rec.Means[i])
		assert.Equal(t, 0.5, rec.Variances[i])
	}
}

func TestPushObservation_ThenSolveMatchesRun(t *testing.T) {
	streamed, err := rank.New(2)
	require.NoError(t, err)
	require.NoError(t, streamed.PushObservation(1, 0))
	streamedMeans, streamedVariances, err := streamed.Solve()
	require.NoError(t, err)

	batched, err := rank.New(2)
	require.NoError(t, err)
	rec, err := batched.Run([][]int{{0, 0}, {1, 0}})
	require.NoError(t, err)

	assert.Equal(t, streamedMeans, rec.Means)
	assert.Equal(t, streamedVariances, rec.Variances)
}

func TestRankings_SortedByDescendingMeanThenIndex(t *testing.T) {
	s, err := rank.New(3)
	require.NoError(t, err)
	require.NoError(t, s.PushObservation(1, 0))
	require.NoError(t, s.PushObservation(2, 1))
	_, _, err = s.Solve()
	require.NoError(t, err)

	rankings := s.Rankings()
	require.Len(t, rankings, 3)
	assert.Equal(t, 2, rankings[0].Index)
	assert.Equal(t, 1, rankings[1].Index)
	assert.Equal(t, 0, rankings[2].Index)
	assert.Greater(t, rankings[0].Mean, rankings[1].Mean)
	assert.Greater(t, rankings[1].Mean, rankings[2].Mean)
}

func TestRankings_TiesBrokenByAscendingIndex(t *testing.T) {
	s, err := rank.New(3)
	require.NoError(t, err)
	// No observations: every item ties at the prior mean of 0.
	_, _, err = s.Solve()
	require.NoError(t, err)

	rankings := s.Rankings()
	require.Len(t, rankings, 3)
	assert.Equal(t, []int{0, 1, 2}, []int{rankings[0].Index, rankings[1].Index, rankings[2].Index})
}

func TestNew_PanicsOnInvalidThresholds(t *testing.T) {
	defer func() {
		assert.NotNil(t, recover())
	}()
	bad := config.Default()
	bad.MaxIterations = 0
	_, _ = rank.New(2, rank.WithThresholds(bad))
}
