// SPDX-License-Identifier: MIT

package solver

import (
	"fmt"
	"math"

	"github.com/katalvlaran/linsolve/matrix"
)

// Triangularize reduces the system (A, B) to upper-triangular form in place
// using Gaussian elimination with partial pivoting.
//
// Implementation:
//   - Stage 1: Validate A (non-nil, square) and len(B) == n.
//   - Stage 2: For each pivot column i, select the row k ≥ i with the largest
//     |A[k][i]| (the earliest row wins on ties), swap rows i and k in both A
//     and B, then eliminate column i from every row below.
//   - Stage 3: Count the rows that still hold an entry with |v| > tolerance;
//     fewer than n means the system is degenerate.
//
// Behavior highlights:
//   - No zero-pivot guard: a zero pivot yields NaN/±Inf that propagate
//     through the affected rows and are caught by the Stage 3 check (NaN never
//     compares greater than the tolerance).
//   - A and B are mutated; on success the same values are returned.
//
// Inputs:
//   - a: square n×n Matrix. *matrix.Dense takes a row-slice fast path; other
//     implementations go through At/Set, whose errors (including a numeric
//     policy rejecting NaN) are returned wrapped.
//   - b: right-hand side, len n.
//   - opts: WithTolerance.
//
// Returns:
//   - (A, B) transformed, or (nil, nil, err).
//
// Errors:
//   - matrix.ErrNilMatrix, ErrNonSquareMatrix (shape or degenerate),
//     matrix.ErrDimensionMismatch (len(b) != n).
//
// Complexity:
//   - Time O(n³), Space O(1) beyond the inputs.
func Triangularize(a matrix.Matrix, b []float64, opts ...Option) (matrix.Matrix, []float64, error) {
	cfg := gatherOptions(opts...)

	rows, err := validateSquare(opTriangularize, a)
	if err != nil {
		return nil, nil, err
	}
	if err = matrix.ValidateVecLen(b, rows); err != nil {
		return nil, nil, solverErrorf(opTriangularize, err)
	}

	if d, ok := a.(*matrix.Dense); ok {
		eliminateDense(d, b)
	} else if err = eliminateGeneric(a, b); err != nil {
		return nil, nil, solverErrorf(opTriangularize, err)
	}

	live, err := countNonDegenerate(a, cfg.Tolerance)
	if err != nil {
		return nil, nil, solverErrorf(opTriangularize, err)
	}
	if live != rows {
		return nil, nil, solverErrorf(opTriangularize,
			fmt.Errorf("%d of %d rows degenerate: %w", rows-live, rows, ErrNonSquareMatrix))
	}

	return a, b, nil
}

// eliminateDense runs the forward elimination on a *Dense via row slices.
func eliminateDense(d *matrix.Dense, b []float64) {
	n := d.Rows()
	var (
		i, j, k, pivot int
		maxAbs, v      float64
		coef           float64
		rowI, rowJ     []float64
	)
	for i = 0; i < n; i++ {
		// Partial pivoting: strict > keeps the earliest row among equal maxima.
		rowI, _ = d.Row(i)
		pivot, maxAbs = i, math.Abs(rowI[i])
		for k = i + 1; k < n; k++ {
			rowJ, _ = d.Row(k)
			if v = math.Abs(rowJ[i]); v > maxAbs {
				maxAbs, pivot = v, k
			}
		}
		_ = d.SwapRows(i, pivot)
		b[i], b[pivot] = b[pivot], b[i]

		rowI, _ = d.Row(i)
		for j = i + 1; j < n; j++ {
			rowJ, _ = d.Row(j)
			coef = rowJ[i] / rowI[i]
			for k = i; k < n; k++ {
				rowJ[k] -= coef * rowI[k]
			}
			b[j] -= coef * b[i]
		}
	}
}

// eliminateGeneric is the At/Set twin of eliminateDense.
func eliminateGeneric(a matrix.Matrix, b []float64) error {
	n := a.Rows()
	var (
		i, j, k, pivot int
		maxAbs, v      float64
		coef, aii, aji float64
		aik, ajk       float64
		err            error
	)
	for i = 0; i < n; i++ {
		if v, err = a.At(i, i); err != nil {
			return err
		}
		pivot, maxAbs = i, math.Abs(v)
		for k = i + 1; k < n; k++ {
			if v, err = a.At(k, i); err != nil {
				return err
			}
			if v = math.Abs(v); v > maxAbs {
				maxAbs, pivot = v, k
			}
		}
		if pivot != i {
			if err = swapRowsGeneric(a, i, pivot); err != nil {
				return err
			}
			b[i], b[pivot] = b[pivot], b[i]
		}

		if aii, err = a.At(i, i); err != nil {
			return err
		}
		for j = i + 1; j < n; j++ {
			if aji, err = a.At(j, i); err != nil {
				return err
			}
			coef = aji / aii
			for k = i; k < n; k++ {
				if aik, err = a.At(i, k); err != nil {
					return err
				}
				if ajk, err = a.At(j, k); err != nil {
					return err
				}
				if err = a.Set(j, k, ajk-coef*aik); err != nil {
					return err
				}
			}
			b[j] -= coef * b[i]
		}
	}

	return nil
}

// swapRowsGeneric exchanges rows i and j element by element.
func swapRowsGeneric(a matrix.Matrix, i, j int) error {
	var (
		k      int
		vi, vj float64
		err    error
	)
	for k = 0; k < a.Cols(); k++ {
		if vi, err = a.At(i, k); err != nil {
			return err
		}
		if vj, err = a.At(j, k); err != nil {
			return err
		}
		if err = a.Set(i, k, vj); err != nil {
			return err
		}
		if err = a.Set(j, k, vi); err != nil {
			return err
		}
	}

	return nil
}

// countNonDegenerate counts rows holding at least one entry with |v| > tol.
func countNonDegenerate(a matrix.Matrix, tol float64) (int, error) {
	var (
		i, j, live int
		v          float64
		err        error
	)
	for i = 0; i < a.Rows(); i++ {
		for j = 0; j < a.Cols(); j++ {
			if v, err = a.At(i, j); err != nil {
				return 0, err
			}
			if math.Abs(v) > tol {
				live++
				break
			}
		}
	}

	return live, nil
}
