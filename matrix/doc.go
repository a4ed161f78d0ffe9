// Package matrix offers the dense storage and validation layer used by the
// linear system solver.
//
// The matrix package provides:
//
//   - Matrix, a minimal interface over mutable float64 grids (Rows, Cols,
//     At, Set, Clone) so that kernels can accept any storage.
//   - Dense, a row-major implementation with O(1) bounds-checked access,
//     row aliasing (Row) and in-place row exchange (SwapRows).
//   - Central validators (ValidateNotNil, ValidateSquare, ValidateVecLen, ...)
//     returning package sentinels that callers match with errors.Is.
//   - Mul and MatVec for composing factors and checking residuals.
//
// Dense rejects NaN/±Inf on Set by default. Pass WithNoValidateNaNInf() to
// NewDense when non-finite values must be representable.
package matrix
