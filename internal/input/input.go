// SPDX-License-Identifier: MIT

// Package input turns user-supplied text into a linear system.
//
// Two forms are accepted:
//   - augmented rows, one equation per row, coefficients followed by the
//     constant: "2 3 1 | 1" or "2;3;1;1";
//   - YAML documents with a coefficient grid and a constants vector:
//
//     matrix:
//     - [2, 3, 1]
//     - [4, 1, -3]
//     vector: [1, 2]
//
// A decimal comma is accepted in rows and in YAML scalars ("0,5" == 0.5).
// Inside a YAML flow sequence the comma separates items, so write such a
// value quoted ([ "0,5", 2 ]) or use block style (- 0,5).
package input

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Size bounds for a system.
const (
	MinSize = 2
	MaxSize = 5
)

var (
	// ErrInvalidInput reports a value that is not a number or a malformed row.
	ErrInvalidInput = errors.New("input: invalid input")

	// ErrMatrixSize reports a system with fewer than MinSize or more than
	// MaxSize equations.
	ErrMatrixSize = errors.New("input: matrix size out of range")
)

// System is a parsed linear system A·x = B.
type System struct {
	A [][]float64
	B []float64
}

// Size returns the number of equations.
func (s System) Size() int { return len(s.A) }

// ParseNumber parses one value, accepting a decimal comma.
func ParseNumber(s string) (float64, error) {
	clean := strings.ReplaceAll(strings.TrimSpace(s), ",", ".")
	v, err := strconv.ParseFloat(clean, 64)
	if err != nil {
		return 0, fmt.Errorf("%q: %w", s, ErrInvalidInput)
	}

	return v, nil
}

// ParseSize validates a system size typed by the user.
func ParseSize(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%q: %w", s, ErrMatrixSize)
	}
	if err = checkSize(n); err != nil {
		return 0, err
	}

	return n, nil
}

func checkSize(n int) error {
	if n < MinSize || n > MaxSize {
		return fmt.Errorf("%d equations, want %d..%d: %w", n, MinSize, MaxSize, ErrMatrixSize)
	}

	return nil
}

// splitRow splits on whitespace, ';' and '|'. Commas are decimal separators.
func splitRow(line string) []string {
	return strings.FieldsFunc(line, func(r rune) bool {
		switch r {
		case ' ', '\t', ';', '|':
			return true
		}
		return false
	})
}

// ParseRow parses one augmented row into its values.
func ParseRow(line string) ([]float64, error) {
	fields := splitRow(line)
	if len(fields) == 0 {
		return nil, fmt.Errorf("empty row: %w", ErrInvalidInput)
	}
	out := make([]float64, len(fields))
	var (
		i   int
		err error
	)
	for i = range fields {
		if out[i], err = ParseNumber(fields[i]); err != nil {
			return nil, err
		}
	}

	return out, nil
}

// ParseRows builds a square system from n augmented rows of n+1 values each.
func ParseRows(lines []string) (System, error) {
	if err := checkSize(len(lines)); err != nil {
		return System{}, err
	}
	n := len(lines)
	sys := System{A: make([][]float64, n), B: make([]float64, n)}
	for i, line := range lines {
		vals, err := ParseRow(line)
		if err != nil {
			return System{}, fmt.Errorf("row %d: %w", i+1, err)
		}
		if len(vals) != n+1 {
			return System{}, fmt.Errorf("row %d has %d values, want %d: %w", i+1, len(vals), n+1, ErrInvalidInput)
		}
		sys.A[i] = vals[:n:n]
		sys.B[i] = vals[n]
	}

	return sys, nil
}

// Number is a YAML scalar decoded with ParseNumber.
type Number float64

// UnmarshalYAML implements yaml.Unmarshaler.
func (n *Number) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: expected a number: %w", node.Line, ErrInvalidInput)
	}
	v, err := ParseNumber(node.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	*n = Number(v)

	return nil
}

type fileSystem struct {
	Matrix [][]Number `yaml:"matrix"`
	Vector []Number   `yaml:"vector"`
}

// Decode reads a YAML system. The matrix need not be square; the solver
// reports that. The row count must be within bounds and match the vector.
func Decode(r io.Reader) (System, error) {
	var doc fileSystem
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, ErrInvalidInput) {
			return System{}, err
		}
		return System{}, fmt.Errorf("decode system: %v: %w", err, ErrInvalidInput)
	}
	if err := checkSize(len(doc.Matrix)); err != nil {
		return System{}, err
	}
	if len(doc.Vector) != len(doc.Matrix) {
		return System{}, fmt.Errorf("vector has %d values for %d rows: %w", len(doc.Vector), len(doc.Matrix), ErrInvalidInput)
	}

	sys := System{A: make([][]float64, len(doc.Matrix)), B: make([]float64, len(doc.Vector))}
	for i, row := range doc.Matrix {
		sys.A[i] = make([]float64, len(row))
		for j, v := range row {
			sys.A[i][j] = float64(v)
		}
		sys.B[i] = float64(doc.Vector[i])
	}

	return sys, nil
}

// ReadFile decodes the YAML system stored at path.
func ReadFile(path string) (System, error) {
	f, err := os.Open(path)
	if err != nil {
		return System{}, fmt.Errorf("open system file: %w", err)
	}
	defer f.Close()

	return Decode(f)
}
