// Package linsolve solves small dense linear systems A·x = b.
//
// 🚀 What is in the box?
//
//	• matrix/       Dense row-major storage, validators, Mul and MatVec
//	• solver/       Gaussian elimination with partial pivoting, Doolittle LU,
//	                forward/backward substitution and a method dispatcher
//	• cmd/linsolve  a command-line front end with history and settings
//
// ✨ Why linsolve?
//
//   - Textbook algorithms, step for step, so classroom results are reproducible
//   - Stateless kernel: no globals, no logging, explicit error values
//   - Failures are classified (solver.KindOf) so front ends can localize them
//
// Quick start:
//
//	x, err := solver.SolveRows(solver.MethodGauss,
//		[][]float64{{2, 3, 1}, {4, 1, -3}, {3, -1, 2}},
//		[]float64{1, 2, 3})
//	// x ≈ [0.75 -0.25 0.25]
//
// The CLI keeps everything else: settings (internal/config), localized
// messages (internal/i18n), input parsing (internal/input), the sqlite
// solution history (internal/history) and terminal rendering
// (internal/presentation), tied together by internal/session.
package linsolve

// Version is the release of the module and the CLI.
const Version = "0.3.0"
