// SPDX-License-Identifier: MIT
package solver_test

import (
	"testing"

	"github.com/katalvlaran/linsolve/matrix"
	"github.com/katalvlaran/linsolve/solver"
	"github.com/stretchr/testify/require"
)

// ---------- 1. Validation ----------

func TestTriangularize_NonSquare(t *testing.T) {
	t.Parallel()

	a := mustRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	gotA, gotB, err := solver.Triangularize(a, []float64{1, 2})
	require.ErrorIs(t, err, solver.ErrNonSquareMatrix)
	require.Nil(t, gotA)
	require.Nil(t, gotB)
	require.Equal(t, solver.FailureNonSquare, solver.KindOf(err))
}

func TestTriangularize_InputErrors(t *testing.T) {
	t.Parallel()

	_, _, err := solver.Triangularize(nil, []float64{1})
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	a := mustRows(t, [][]float64{{1, 0}, {0, 1}})
	_, _, err = solver.Triangularize(a, []float64{1, 2, 3})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	require.Equal(t, solver.FailureInvalidInput, solver.KindOf(err))

	_, _, err = solver.Triangularize(a, nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	_, _, err = solver.Triangularize(mustRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}}), []float64{1, 2})
	require.ErrorIs(t, err, solver.ErrNonSquareMatrix)
	require.ErrorIs(t, err, matrix.ErrNonSquare)
}

// ---------- 2. Elimination ----------

// The largest |A[k][i]| becomes the pivot and B follows the row swap.
func TestTriangularize_PartialPivoting(t *testing.T) {
	t.Parallel()

	a := mustRows(t, [][]float64{{1, 2}, {3, 4}})
	b := []float64{5, 6}

	gotA, gotB, err := solver.Triangularize(a, b)
	require.NoError(t, err)
	require.Same(t, a, gotA, "transformed in place")

	requireMatrixClose(t, [][]float64{{3, 4}, {0, 2.0 / 3.0}}, gotA, 1e-12)
	require.Equal(t, 6.0, gotB[0])
	require.InDelta(t, 3.0, gotB[1], 1e-12)
	require.Equal(t, 6.0, b[0], "B is mutated in place")
}

// Equal magnitudes keep the earliest row as pivot.
func TestTriangularize_TieKeepsFirstRow(t *testing.T) {
	t.Parallel()

	a := mustRows(t, [][]float64{{1, 1}, {-1, 2}})
	gotA, gotB, err := solver.Triangularize(a, []float64{1, 2})
	require.NoError(t, err)

	requireMatrixClose(t, [][]float64{{1, 1}, {0, 3}}, gotA, 0)
	require.Equal(t, []float64{1, 3}, gotB)
}

func TestTriangularize_UpperTriangularResult(t *testing.T) {
	t.Parallel()

	a := diagDominant(t, 5, 42)
	gotA, _, err := solver.Triangularize(a, randVec(5, 43))
	require.NoError(t, err)

	for i := 1; i < 5; i++ {
		for j := 0; j < i; j++ {
			require.InDeltaf(t, 0, mustAt(t, gotA, i, j), 1e-12, "below diagonal at[%d,%d]", i, j)
		}
	}
}

// ---------- 3. Degeneracy ----------

func TestTriangularize_Degenerate(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		rows [][]float64
	}{
		{"proportional rows", [][]float64{{1, 2}, {2, 4}}},
		{"rank 2 of 3", [][]float64{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}}},
		{"zero matrix", [][]float64{{0, 0}, {0, 0}}},
		// 0/0 pivot: NaN rows never exceed the tolerance.
		{"zero first column", [][]float64{{0, 0}, {0, 1}}},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			gotA, gotB, err := solver.Triangularize(mustRows(t, tc.rows), make([]float64, len(tc.rows)))
			require.ErrorIs(t, err, solver.ErrNonSquareMatrix)
			require.Nil(t, gotA)
			require.Nil(t, gotB)
			require.Equal(t, solver.FailureNonSquare, solver.KindOf(err))
		})
	}
}

func TestTriangularize_Tolerance(t *testing.T) {
	t.Parallel()

	rows := [][]float64{{1, 0}, {0, 1e-12}}

	_, _, err := solver.Triangularize(mustRows(t, rows), []float64{1, 1})
	require.ErrorIs(t, err, solver.ErrNonSquareMatrix)

	_, _, err = solver.Triangularize(mustRows(t, rows), []float64{1, 1}, solver.WithTolerance(0))
	require.NoError(t, err)

	require.Panics(t, func() { solver.WithTolerance(-1)(&solver.Options{}) })
}

// ---------- 4. Fast path vs fallback ----------

func TestTriangularize_Fallback_MatchesFast(t *testing.T) {
	t.Parallel()

	fastA := diagDominant(t, 4, 7)
	slowA := fastA.Clone()
	b := randVec(4, 8)

	gotFast, bFast, err := solver.Triangularize(fastA, append([]float64(nil), b...))
	require.NoError(t, err)
	gotSlow, bSlow, err := solver.Triangularize(hide{slowA}, append([]float64(nil), b...))
	require.NoError(t, err)

	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			require.Equal(t, mustAt(t, gotFast, i, j), mustAt(t, gotSlow, i, j))
		}
	}
	require.Equal(t, bFast, bSlow)
}

func TestTriangularize_Fallback_NonSquare(t *testing.T) {
	t.Parallel()

	a := mustRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	_, _, err := solver.Triangularize(hide{a}, []float64{1, 2})
	require.ErrorIs(t, err, solver.ErrNonSquareMatrix)
}
