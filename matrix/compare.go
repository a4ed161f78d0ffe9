// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"math"
)

const (
	opAllClose    = "AllClose"
	opMaxResidual = "MaxResidual"
)

// AllClose checks element-wise |a-b| ≤ atol + rtol*|b| for identical shapes.
// Returns (true,nil) if all elements satisfy the relation; (false,nil) otherwise.
// A NaN on either side never compares close.
// Time: O(r*c). Space: O(1). Deterministic.
//
// Policy:
//   - a and b must be non-nil and have identical shapes.
//   - rtol, atol are treated as |rtol|, |atol|; NaN/Inf tolerances fail with ErrNaNInf.
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	if math.IsNaN(rtol) || math.IsNaN(atol) || math.IsInf(rtol, 0) || math.IsInf(atol, 0) {
		return false, matrixErrorf(opAllClose, ErrNaNInf)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)

	if err := ValidateNotNil(a); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}

	// Dense fast-path: operate over flat slices when both are *Dense.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			for idx := range da.data {
				if !within(da.data[idx], db.data[idx], rtol, atol) {
					return false, nil
				}
			}
			return true, nil
		}
	}

	r, c := a.Rows(), a.Cols()
	var (
		i, j   int
		av, bv float64
		err    error
	)
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			if av, err = a.At(i, j); err != nil {
				return false, matrixErrorf(opAllClose, err)
			}
			if bv, err = b.At(i, j); err != nil {
				return false, matrixErrorf(opAllClose, err)
			}
			if !within(av, bv, rtol, atol) {
				return false, nil
			}
		}
	}

	return true, nil
}

// within reports |a-b| ≤ atol + rtol*|b|; false whenever a NaN is involved.
func within(a, b, rtol, atol float64) bool {
	return math.Abs(a-b) <= atol+rtol*math.Abs(b)
}

// MaxResidual returns max_i |(A·x)_i − b_i|, the infinity norm of the residual.
// Non-finite x yields NaN or +Inf, not an error.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch (len(x) != cols or len(b) != rows).
func MaxResidual(a Matrix, x, b []float64) (float64, error) {
	ax, err := MatVec(a, x)
	if err != nil {
		return 0, matrixErrorf(opMaxResidual, err)
	}
	if err = ValidateVecLen(b, len(ax)); err != nil {
		return 0, matrixErrorf(opMaxResidual, fmt.Errorf("rhs: %w", err))
	}

	var worst, d float64
	for i := range ax {
		d = math.Abs(ax[i] - b[i])
		if math.IsNaN(d) {
			return math.NaN(), nil
		}
		worst = math.Max(worst, d)
	}

	return worst, nil
}
