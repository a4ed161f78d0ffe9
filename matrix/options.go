// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for Dense allocation.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors,
//   - gatherOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//
// Notes:
//   - The numeric policy is explicit: validateNaNInf controls whether Set()
//     and NewDenseFromRows reject NaN/Inf. Elimination kernels that must let
//     non-finite values propagate allocate their outputs with
//     WithNoValidateNaNInf().
package matrix

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultValidateNaNInf toggles strict finite-value validation on ingestion and Set.
	DefaultValidateNaNInf = true
)

// Option mutates Options during construction.
type Option func(*Options)

// Options holds the resolved configuration of a Dense allocation.
// Fields are unexported; public APIs consume ...Option.
type Options struct {
	validateNaNInf bool // reject NaN/Inf on Set and ingestion
}

// WithNoValidateNaNInf disables the finite-value policy so that Set accepts
// NaN/±Inf. Used for factor matrices whose entries may legitimately become
// non-finite when a zero pivot is met.
func WithNoValidateNaNInf() Option {
	return func(o *Options) {
		o.validateNaNInf = false
	}
}

// defaultOptions returns the documented defaults.
func defaultOptions() Options {
	return Options{validateNaNInf: DefaultValidateNaNInf}
}

// gatherOptions applies user options in order; the last writer wins.
func gatherOptions(user ...Option) Options {
	o := defaultOptions()
	for _, opt := range user {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
