// SPDX-License-Identifier: MIT

package solver

import (
	"fmt"
	"math"

	"github.com/katalvlaran/linsolve/matrix"
)

// SolveGauss solves A·x = b by Triangularize followed by BackwardSubstitution
// on the triangularized matrix and right-hand side.
// A and b are copied first; the caller's values are left untouched.
//
// Errors: matrix.ErrNilMatrix, ErrNonSquareMatrix (shape or degenerate),
// matrix.ErrDimensionMismatch. No partial solution is returned on failure.
func SolveGauss(a matrix.Matrix, b []float64, opts ...Option) ([]float64, error) {
	if err := matrix.ValidateNotNil(a); err != nil {
		return nil, solverErrorf(opSolveGauss, err)
	}
	w, err := workingCopy(a)
	if err != nil {
		return nil, solverErrorf(opSolveGauss, err)
	}

	u, y, err := Triangularize(w, cloneVec(b), opts...)
	if err != nil {
		return nil, solverErrorf(opSolveGauss, err)
	}
	x, err := BackwardSubstitution(u, y)
	if err != nil {
		return nil, solverErrorf(opSolveGauss, err)
	}

	return x, nil
}

// SolveLU solves A·x = b by Decompose, ForwardSubstitution(L, b) and
// BackwardSubstitution(U, y). A and b are not mutated.
//
// A zero pivot is not reported: the solution then carries NaN/±Inf.
//
// Errors: matrix.ErrNilMatrix, ErrNonSquareMatrix, matrix.ErrDimensionMismatch.
func SolveLU(a matrix.Matrix, b []float64) ([]float64, error) {
	L, U, err := Decompose(a)
	if err != nil {
		return nil, solverErrorf(opSolveLU, err)
	}
	y, err := ForwardSubstitution(L, b)
	if err != nil {
		return nil, solverErrorf(opSolveLU, err)
	}
	x, err := BackwardSubstitution(U, y)
	if err != nil {
		return nil, solverErrorf(opSolveLU, err)
	}

	return x, nil
}

// Solve dispatches to SolveGauss or SolveLU. Options only affect the Gauss path.
// Errors: those of the selected path, or ErrUnknownMethod.
func Solve(method Method, a matrix.Matrix, b []float64, opts ...Option) ([]float64, error) {
	switch method {
	case MethodGauss:
		return SolveGauss(a, b, opts...)
	case MethodLU:
		return SolveLU(a, b)
	default:
		return nil, solverErrorf(opSolve, fmt.Errorf("%v: %w", method, ErrUnknownMethod))
	}
}

// SolveRows is Solve over a row grid, the shape in which callers usually
// collect coefficients. A grid whose row lengths differ from the row count
// fails with ErrNonSquareMatrix before any elimination; an empty grid fails
// with matrix.ErrInvalidDimensions.
func SolveRows(method Method, rows [][]float64, b []float64, opts ...Option) ([]float64, error) {
	if len(rows) == 0 {
		return nil, solverErrorf(opSolveRows, matrix.ErrInvalidDimensions)
	}
	var i int
	for i = range rows {
		if len(rows[i]) != len(rows) {
			return nil, solverErrorf(opSolveRows,
				fmt.Errorf("row %d has %d entries for %d rows: %w", i, len(rows[i]), len(rows), ErrNonSquareMatrix))
		}
	}
	a, err := matrix.NewDenseFromRows(rows, matrix.WithNoValidateNaNInf())
	if err != nil {
		return nil, solverErrorf(opSolveRows, err)
	}

	return Solve(method, a, b, opts...)
}

// IsFinite reports whether every entry of x is neither NaN nor ±Inf.
// The LU path does not signal zero pivots; use this to reject such results.
func IsFinite(x []float64) bool {
	for _, v := range x {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}

	return true
}

// workingCopy copies a into a fresh *Dense that accepts non-finite values.
// Assumes a is not nil.
func workingCopy(a matrix.Matrix) (*matrix.Dense, error) {
	r, c := a.Rows(), a.Cols()
	w, err := matrix.NewDense(r, c, matrix.WithNoValidateNaNInf())
	if err != nil {
		return nil, err
	}
	var (
		i, j int
		row  []float64
		v    float64
	)
	for i = 0; i < r; i++ {
		row, _ = w.Row(i)
		for j = 0; j < c; j++ {
			if v, err = a.At(i, j); err != nil {
				return nil, fmt.Errorf("At(%d,%d): %w", i, j, err)
			}
			row[j] = v
		}
	}

	return w, nil
}

// cloneVec copies v, keeping nil as nil so length validation still reports it.
func cloneVec(v []float64) []float64 {
	if v == nil {
		return nil
	}
	out := make([]float64, len(v))
	copy(out, v)

	return out
}
