// SPDX-License-Identifier: MIT

// Package solver defines the sentinel errors, method identifiers, failure
// classification and functional options of the linear system solver.
//
// Errors (sentinel):
//
//	– ErrNonSquareMatrix  the coefficient matrix is not square, or Gaussian
//	                      elimination left a degenerate (all-zero) row. Both
//	                      conditions share this one channel.
//	– ErrUnknownMethod    a method name or value outside {gauss, lu}.
//	– ErrBadTolerance     WithTolerance received a negative or NaN value (panic).
//
// Shape misuse that is not about squareness (vector length, nil arguments)
// surfaces as matrix.ErrDimensionMismatch / matrix.ErrNilMatrix.
package solver

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// Sentinel errors returned by the solver.
var (
	// ErrNonSquareMatrix reports a coefficient matrix unsuitable for the
	// Gaussian path: either rows != cols (checked before elimination) or a
	// row that vanished during elimination (singular system).
	ErrNonSquareMatrix = errors.New("solver: matrix is non-square or degenerate")

	// ErrUnknownMethod indicates a solution method outside the supported set.
	ErrUnknownMethod = errors.New("solver: unknown solution method")

	// ErrBadTolerance indicates that the degeneracy tolerance is negative or NaN.
	ErrBadTolerance = errors.New("solver: tolerance must be a non-negative number")
)

// Operation name constants for unified error wrapping.
const (
	opTriangularize = "Triangularize"
	opDecompose     = "Decompose"
	opForward       = "ForwardSubstitution"
	opBackward      = "BackwardSubstitution"
	opSolveGauss    = "SolveGauss"
	opSolveLU       = "SolveLU"
	opSolve         = "Solve"
	opSolveRows     = "SolveRows"
)

// solverErrorf wraps err with an operation tag, preserving it for errors.Is.
func solverErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Method selects one of the two solution paths.
type Method int

const (
	// MethodGauss triangularizes with partial pivoting, then back-substitutes.
	MethodGauss Method = iota

	// MethodLU factors A = L·U (Doolittle, no pivoting), then runs forward and
	// backward substitution.
	MethodLU
)

// String returns the canonical lower-case name of the method.
func (m Method) String() string {
	switch m {
	case MethodGauss:
		return "gauss"
	case MethodLU:
		return "lu"
	default:
		return fmt.Sprintf("Method(%d)", int(m))
	}
}

// Methods lists the supported methods in display order.
func Methods() []Method { return []Method{MethodGauss, MethodLU} }

// ParseMethod maps a case-insensitive name ("gauss", "lu") to a Method.
func ParseMethod(s string) (Method, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "gauss":
		return MethodGauss, nil
	case "lu":
		return MethodLU, nil
	default:
		return 0, fmt.Errorf("%q: %w", s, ErrUnknownMethod)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (m Method) MarshalText() ([]byte, error) {
	if m != MethodGauss && m != MethodLU {
		return nil, fmt.Errorf("%d: %w", int(m), ErrUnknownMethod)
	}

	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Method) UnmarshalText(text []byte) error {
	parsed, err := ParseMethod(string(text))
	if err != nil {
		return err
	}
	*m = parsed

	return nil
}

// FailureKind classifies a solver error for the presentation layer, which maps
// each kind to its own user-facing message.
type FailureKind int

const (
	// FailureNone means the call succeeded.
	FailureNone FailureKind = iota

	// FailureNonSquare covers both a non-square matrix and a degenerate system.
	FailureNonSquare

	// FailureInvalidInput covers any other rejected input (vector length, nil
	// arguments, empty grids, unknown methods).
	FailureInvalidInput
)

// String names the kind.
func (k FailureKind) String() string {
	switch k {
	case FailureNone:
		return "none"
	case FailureNonSquare:
		return "non_square"
	case FailureInvalidInput:
		return "invalid_input"
	default:
		return fmt.Sprintf("FailureKind(%d)", int(k))
	}
}

// KindOf classifies err. A nil error is FailureNone.
func KindOf(err error) FailureKind {
	switch {
	case err == nil:
		return FailureNone
	case errors.Is(err, ErrNonSquareMatrix):
		return FailureNonSquare
	default:
		return FailureInvalidInput
	}
}

// DefaultTolerance is the magnitude at or below which an entry counts as zero
// in the post-elimination degeneracy check.
const DefaultTolerance = 1e-10

// Options configures the solver.
//
// Tolerance – entries with |v| <= Tolerance are treated as zero when looking
// for degenerate rows after triangularization. Must be >= 0.
type Options struct {
	Tolerance float64
}

// Option represents a functional option for configuring the solver.
type Option func(*Options)

// WithTolerance overrides the degeneracy tolerance.
// Panics with ErrBadTolerance on a negative or NaN value.
func WithTolerance(tol float64) Option {
	return func(o *Options) {
		if tol < 0 || math.IsNaN(tol) {
			panic(ErrBadTolerance.Error())
		}
		o.Tolerance = tol
	}
}

// DefaultOptions returns Options initialized with DefaultTolerance.
func DefaultOptions() Options {
	return Options{Tolerance: DefaultTolerance}
}

// gatherOptions applies opts over the defaults.
func gatherOptions(opts ...Option) Options {
	cfg := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}
