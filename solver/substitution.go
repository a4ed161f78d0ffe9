// SPDX-License-Identifier: MIT

package solver

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/linsolve/matrix"
)

// ForwardSubstitution solves L·y = b for y, where L is lower-triangular with a
// unit diagonal.
//
// y[i] = b[i] − Σ_{j<i} L[i][j]·y[j]. The diagonal is neither read nor
// verified: a non-unit diagonal gives a wrong y without any error.
// Entries above the diagonal are ignored. Inputs are not mutated.
//
// Errors: matrix.ErrNilMatrix, ErrNonSquareMatrix, matrix.ErrDimensionMismatch.
// Complexity: Time O(n²), Space O(n).
func ForwardSubstitution(l matrix.Matrix, b []float64) ([]float64, error) {
	n, err := validateTriangular(opForward, l, b)
	if err != nil {
		return nil, err
	}
	y := make([]float64, n)

	var (
		i, j int
		row  []float64
		v    float64
	)
	if d, ok := l.(*matrix.Dense); ok {
		for i = 0; i < n; i++ {
			row, _ = d.Row(i)
			y[i] = b[i]
			for j = 0; j < i; j++ {
				y[i] -= row[j] * y[j]
			}
		}

		return y, nil
	}

	for i = 0; i < n; i++ {
		y[i] = b[i]
		for j = 0; j < i; j++ {
			if v, err = l.At(i, j); err != nil {
				return nil, solverErrorf(opForward, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			y[i] -= v * y[j]
		}
	}

	return y, nil
}

// BackwardSubstitution solves U·x = y for x, where U is upper-triangular.
//
// For i from n−1 down to 0: x[i] = (y[i] − Σ_{j>i} U[i][j]·x[j]) / U[i][i].
// A zero or tiny diagonal entry yields NaN/±Inf without any error.
// Entries below the diagonal are ignored. Inputs are not mutated.
//
// Errors: matrix.ErrNilMatrix, ErrNonSquareMatrix, matrix.ErrDimensionMismatch.
// Complexity: Time O(n²), Space O(n).
func BackwardSubstitution(u matrix.Matrix, y []float64) ([]float64, error) {
	n, err := validateTriangular(opBackward, u, y)
	if err != nil {
		return nil, err
	}
	x := make([]float64, n)

	var (
		i, j int
		row  []float64
		v    float64
	)
	if d, ok := u.(*matrix.Dense); ok {
		for i = n - 1; i >= 0; i-- {
			row, _ = d.Row(i)
			x[i] = y[i]
			for j = i + 1; j < n; j++ {
				x[i] -= row[j] * x[j]
			}
			x[i] /= row[i]
		}

		return x, nil
	}

	for i = n - 1; i >= 0; i-- {
		x[i] = y[i]
		for j = i + 1; j < n; j++ {
			if v, err = u.At(i, j); err != nil {
				return nil, solverErrorf(opBackward, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			x[i] -= v * x[j]
		}
		if v, err = u.At(i, i); err != nil {
			return nil, solverErrorf(opBackward, fmt.Errorf("At(%d,%d): %w", i, i, err))
		}
		x[i] /= v
	}

	return x, nil
}

// validateSquare checks nil → square and returns n. A shape failure carries
// both ErrNonSquareMatrix and matrix.ErrNonSquare.
func validateSquare(tag string, m matrix.Matrix) (int, error) {
	if err := matrix.ValidateSquareNonNil(m); err != nil {
		if errors.Is(err, matrix.ErrNonSquare) {
			err = fmt.Errorf("%dx%d: %w: %w", m.Rows(), m.Cols(), ErrNonSquareMatrix, err)
		}
		return 0, solverErrorf(tag, err)
	}

	return m.Rows(), nil
}

// validateTriangular checks nil → square → vector length and returns n.
func validateTriangular(tag string, m matrix.Matrix, v []float64) (int, error) {
	n, err := validateSquare(tag, m)
	if err != nil {
		return 0, err
	}
	if err := matrix.ValidateVecLen(v, n); err != nil {
		return 0, solverErrorf(tag, err)
	}

	return n, nil
}
