// Package solver solves small dense square linear systems A·x = b with two
// interchangeable methods that share the same triangular substitution
// primitives.
//
// Overview:
//
//   - Gauss path: Triangularize (Gaussian elimination with partial pivoting)
//     followed by BackwardSubstitution on the reduced system.
//   - LU path: Decompose (Doolittle, unit-diagonal L, no pivoting), then
//     ForwardSubstitution(L, b) and BackwardSubstitution(U, y).
//   - Solve / SolveRows dispatch on a Method; SolveGauss / SolveLU call a path
//     directly.
//
// When to use:
//
//   - Classroom-scale systems (the CLI limits n to 2..5) where each step of the
//     textbook algorithm should be reproducible. There is no sparse support,
//     no iterative refinement and no parallelism.
//
// Error handling (sentinel errors):
//
//   - ErrNonSquareMatrix: the matrix is not square, or elimination produced a
//     row whose entries are all within the tolerance of zero (singular system).
//     Both conditions travel through this single sentinel; the wrapped message
//     says which one occurred.
//   - matrix.ErrDimensionMismatch / matrix.ErrNilMatrix: wrong vector length or
//     nil arguments.
//   - ErrUnknownMethod: a Method value outside MethodGauss / MethodLU.
//
// Numeric caveats:
//
//   - The LU path and both substitutions never guard against zero pivots. A
//     zero pivot produces NaN/±Inf in the result without an error. Use
//     IsFinite to reject such solutions.
//   - Neither path reports condition numbers or residuals.
//
// Mutation contract:
//
//   - Triangularize transforms its arguments in place and returns them.
//   - Decompose, the substitutions, SolveGauss, SolveLU, Solve and SolveRows
//     never mutate caller data.
//
// Presentation layers map failures to user-facing text with KindOf, which
// classifies any returned error as a FailureKind.
//
// Thread safety:
//
//   - All functions are stateless. Concurrent calls are safe as long as they
//     do not share a matrix or vector that one of them mutates.
package solver
