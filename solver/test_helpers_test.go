package solver_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/linsolve/matrix"
	"github.com/stretchr/testify/require"
)

// hide masks the concrete *Dense type so kernels take their At/Set fallback.
type hide struct{ matrix.Matrix }

// mustRows builds a *Dense from a row grid or fails the test.
func mustRows(t testing.TB, rows [][]float64) *matrix.Dense {
	t.Helper()
	d, err := matrix.NewDenseFromRows(rows)
	require.NoError(t, err)

	return d
}

// mustAt reads m[i,j] or fails the test.
func mustAt(t testing.TB, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v
}

// requireMatrixClose asserts |m[i,j]-want[i][j]| <= delta everywhere.
func requireMatrixClose(t testing.TB, want [][]float64, m matrix.Matrix, delta float64) {
	t.Helper()
	require.Equal(t, len(want), m.Rows(), "rows")
	for i := range want {
		require.Equal(t, len(want[i]), m.Cols(), "cols")
		for j := range want[i] {
			require.InDeltaf(t, want[i][j], mustAt(t, m, i, j), delta, "at[%d,%d]", i, j)
		}
	}
}

// requireVecClose asserts |got[i]-want[i]| <= atol + rtol*|want[i]|.
func requireVecClose(t testing.TB, want, got []float64, rtol, atol float64) {
	t.Helper()
	require.Len(t, got, len(want))
	for i := range want {
		limit := atol + rtol*math.Abs(want[i])
		require.LessOrEqualf(t, math.Abs(got[i]-want[i]), limit, "idx=%d want=%g got=%g", i, want[i], got[i])
	}
}

// diagDominant returns a reproducible n×n matrix with |a_ii| > Σ|a_ij|, so
// both paths meet non-zero pivots and the system is well conditioned.
func diagDominant(t testing.TB, n int, seed int64) *matrix.Dense {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	rows := make([][]float64, n)
	for i := range rows {
		rows[i] = make([]float64, n)
		var off float64
		for j := range rows[i] {
			if i == j {
				continue
			}
			rows[i][j] = rng.Float64()*2 - 1
			off += math.Abs(rows[i][j])
		}
		rows[i][i] = off + 1 + rng.Float64()
		if rng.Intn(2) == 0 {
			rows[i][i] = -rows[i][i]
		}
	}

	return mustRows(t, rows)
}

// randVec returns a reproducible vector with entries in [-5, 5).
func randVec(n int, seed int64) []float64 {
	rng := rand.New(rand.NewSource(seed))
	v := make([]float64, n)
	for i := range v {
		v[i] = rng.Float64()*10 - 5
	}

	return v
}
