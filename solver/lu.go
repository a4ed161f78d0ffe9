// SPDX-License-Identifier: MIT

package solver

import (
	"github.com/katalvlaran/linsolve/matrix"
)

// Decompose computes the Doolittle factorization A = L·U with unit diagonal on L
// and no pivoting.
//
// Implementation:
//   - Stage 1: Validate A (non-nil, square); copy it into a working buffer and
//     allocate L (identity diagonal) and U.
//   - Stage 2: For each pivot k: U[k][k] = W[k][k]; for j > k,
//     L[j][k] = W[j][k] / U[k][k] and U[k][j] = W[k][j]; then update the
//     trailing block W[i][j] -= L[i][k]·U[k][j] for i, j > k.
//
// Behavior highlights:
//   - The caller's A is never mutated; only the working copy is.
//   - No zero-pivot guard: a zero U[k][k] silently fills the dependent entries
//     of L and U with NaN/±Inf. Callers that need a finite answer must check
//     it (see IsFinite).
//
// Returns:
//   - L, U as fresh *matrix.Dense values that accept non-finite entries.
//
// Errors:
//   - matrix.ErrNilMatrix, ErrNonSquareMatrix.
//
// Complexity:
//   - Time O(n³), Space O(n²).
func Decompose(a matrix.Matrix) (*matrix.Dense, *matrix.Dense, error) {
	n, err := validateSquare(opDecompose, a)
	if err != nil {
		return nil, nil, err
	}

	w, err := workingCopy(a)
	if err != nil {
		return nil, nil, solverErrorf(opDecompose, err)
	}
	L, err := matrix.NewDense(n, n, matrix.WithNoValidateNaNInf())
	if err != nil {
		return nil, nil, solverErrorf(opDecompose, err)
	}
	U, err := matrix.NewDense(n, n, matrix.WithNoValidateNaNInf())
	if err != nil {
		return nil, nil, solverErrorf(opDecompose, err)
	}

	var (
		i, j, k          int
		lRow, uRow, wRow []float64
		wK               []float64
	)
	for i = 0; i < n; i++ {
		lRow, _ = L.Row(i)
		lRow[i] = 1.0
	}

	for k = 0; k < n; k++ {
		uRow, _ = U.Row(k)
		wK, _ = w.Row(k)
		uRow[k] = wK[k]
		for j = k + 1; j < n; j++ {
			wRow, _ = w.Row(j)
			lRow, _ = L.Row(j)
			lRow[k] = wRow[k] / uRow[k]
			uRow[j] = wK[j]
		}
		for i = k + 1; i < n; i++ {
			wRow, _ = w.Row(i)
			lRow, _ = L.Row(i)
			for j = k + 1; j < n; j++ {
				wRow[j] -= lRow[k] * uRow[j]
			}
		}
	}

	return L, U, nil
}
