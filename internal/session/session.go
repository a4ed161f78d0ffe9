// SPDX-License-Identifier: MIT

// Package session holds the per-invocation state of the CLI: settings, logger,
// message catalog and history store. The solver kernel stays stateless; the
// session runs it and turns its results into something a user can read.
package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"

	"github.com/katalvlaran/linsolve/internal/config"
	"github.com/katalvlaran/linsolve/internal/history"
	"github.com/katalvlaran/linsolve/internal/i18n"
	"github.com/katalvlaran/linsolve/internal/input"
	"github.com/katalvlaran/linsolve/internal/logging"
	"github.com/katalvlaran/linsolve/matrix"
	"github.com/katalvlaran/linsolve/solver"
)

// Recorder stores solved systems.
type Recorder interface {
	Record(ctx context.Context, e history.Entry) (history.Entry, error)
}

// Session runs solves under one set of settings.
type Session struct {
	settings config.Settings
	log      *slog.Logger
	catalog  *i18n.Catalog
	history  Recorder
}

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the logger. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.log = l
		}
	}
}

// WithHistory enables recording of successful solves.
func WithHistory(r Recorder) Option {
	return func(s *Session) { s.history = r }
}

// New validates settings and builds a Session.
func New(settings config.Settings, opts ...Option) (*Session, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	cat, err := i18n.New(settings.Display.Language)
	if err != nil {
		return nil, err
	}
	s := &Session{settings: settings, log: logging.NewNop(), catalog: cat}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}

	return s, nil
}

// Settings returns the session's settings.
func (s *Session) Settings() config.Settings { return s.settings }

// Catalog returns the session's message catalog.
func (s *Session) Catalog() *i18n.Catalog { return s.catalog }

// Outcome is a successful solve.
type Outcome struct {
	Method   solver.Method
	Raw      []float64 // unrounded solution
	Solution []float64 // rounded to Rounding digits
	Rounding int
	Residual float64 // max |A·x - b|, NaN when not computable
	Warning  string  // localized, set when the solution is not finite
	Entry    *history.Entry
}

// Finite reports whether every component of the solution is finite.
func (o Outcome) Finite() bool { return solver.IsFinite(o.Raw) }

// UserError is a failure translated for display.
type UserError struct {
	Kind    solver.FailureKind
	Key     string // catalog key of Message
	Message string
	Hint    string
	Err     error
}

func (e *UserError) Error() string { return e.Message }

func (e *UserError) Unwrap() error { return e.Err }

// Explain maps err to a *UserError in the session language. Errors that are
// already a *UserError are returned as is; nil stays nil.
func (s *Session) Explain(err error) error {
	if err == nil {
		return nil
	}
	var ue *UserError
	if errors.As(err, &ue) {
		return ue
	}

	kind := solver.KindOf(err)
	key, msg := i18n.FailureKey(kind), s.catalog.Failure(kind)
	switch {
	case errors.Is(err, input.ErrMatrixSize):
		key = i18n.KeyMatrixSize
		msg = s.catalog.Message(key)
	case errors.Is(err, input.ErrInvalidInput):
		key = i18n.KeyInvalidInput
		msg = s.catalog.Message(key)
	}

	return &UserError{
		Kind:    kind,
		Key:     key,
		Message: msg,
		Hint:    s.catalog.Message(i18n.KeyRetryHint),
		Err:     err,
	}
}

// Solve runs the configured method on sys. Failures come back as *UserError.
// A history write failure is logged and does not fail the solve.
func (s *Session) Solve(ctx context.Context, sys input.System) (Outcome, error) {
	if err := ctx.Err(); err != nil {
		return Outcome{}, err
	}
	method := s.settings.Method()
	log := s.log.With("method", method.String(), "size", sys.Size())
	log.Debug("solving system")

	x, err := solver.SolveRows(method, sys.A, sys.B, solver.WithTolerance(s.settings.Solver.Tolerance))
	if err != nil {
		log.Warn("solve failed", "kind", solver.KindOf(err).String(), "error", err)
		return Outcome{}, s.Explain(err)
	}

	out := Outcome{
		Method:   method,
		Raw:      x,
		Solution: Round(x, s.settings.Display.Rounding),
		Rounding: s.settings.Display.Rounding,
		Residual: residual(sys, x),
	}
	log.Debug("solved", "residual", out.Residual)
	if !out.Finite() {
		out.Warning = s.catalog.Message(i18n.KeyNumericDegeneracy)
		log.Warn("solution is not finite", "solution", fmt.Sprint(x))
	}

	if s.history != nil {
		e, herr := s.history.Record(ctx, history.Entry{
			Method:   method,
			Size:     sys.Size(),
			Solution: out.Solution,
			Rounding: out.Rounding,
		})
		if herr != nil {
			log.Warn("history not recorded", "error", herr)
		} else {
			out.Entry = &e
		}
	}

	return out, nil
}

// exactAbove is the magnitude from which a float64 carries no fractional part.
const exactAbove = 1 << 52

// Round rounds each component to digits decimals, half away from zero.
// Non-finite values and values too large to carry decimals pass through;
// negative zero becomes zero.
func Round(x []float64, digits int) []float64 {
	p := math.Pow(10, float64(digits))
	out := make([]float64, len(x))
	for i, v := range x {
		if math.IsNaN(v) || math.IsInf(v, 0) || math.Abs(v) >= exactAbove {
			out[i] = v
			continue
		}
		scaled := v * p
		if math.IsInf(scaled, 0) {
			out[i] = v
			continue
		}
		r := math.Round(scaled) / p
		if r == 0 {
			r = 0
		}
		out[i] = r
	}

	return out
}

// residual returns max_i |(A·x)_i - b_i|, or NaN when it cannot be computed.
func residual(sys input.System, x []float64) float64 {
	a, err := matrix.NewDenseFromRows(sys.A, matrix.WithNoValidateNaNInf())
	if err != nil {
		return math.NaN()
	}
	r, err := matrix.MaxResidual(a, x, sys.B)
	if err != nil || math.IsInf(r, 0) {
		return math.NaN()
	}

	return r
}
