// SPDX-License-Identifier: MIT

// Package system holds a square system of nonlinear equations F(x) = 0.
//
// An EquationSystem is an ordered list of scalar functions fᵢ: ℝⁿ → ℝ paired
// with a start vector of length n. The Jacobian builder evaluates the
// functions; the Newton solver starts from the stored vector.
//
// Example:
//
//	sys, err := system.New([]system.Func{
//		func(x []float64) float64 { return x[0] + x[1] - 3 },
//		func(x []float64) float64 { return x[0] - x[1] - 1 },
//	}, []float64{0, 0})
package system

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/nonlinear/matrix"
)

// Sentinel errors for system construction and evaluation.
var (
	// ErrNoEquations is returned when New receives no functions.
	ErrNoEquations = errors.New("system: no equations")

	// ErrStartLength is returned when the start vector length differs from the
	// number of equations (only square systems are supported).
	ErrStartLength = errors.New("system: start vector length must equal equation count")

	// ErrNilFunc is returned when one of the functions is nil.
	ErrNilFunc = errors.New("system: nil equation")

	// ErrDimensionMismatch is the matrix sentinel, re-exported for evaluation
	// at a point of the wrong length.
	ErrDimensionMismatch = matrix.ErrDimensionMismatch

	// ErrOutOfRange is the matrix sentinel, re-exported for a bad equation index.
	ErrOutOfRange = matrix.ErrOutOfRange
)

// Func is one scalar equation fᵢ(x). It receives the full variable vector and
// must not retain or mutate it.
type Func func(x []float64) float64

// EquationSystem is an immutable square system: len(funcs) == len(start).
// Safe for concurrent evaluation when every Func is.
type EquationSystem struct {
	funcs []Func
	start []float64
}

// New builds an EquationSystem from funcs and a start vector.
// Both slices are copied.
//
// Errors:
//   - ErrNoEquations, ErrNilFunc (with the offending index), ErrStartLength.
func New(funcs []Func, start []float64) (*EquationSystem, error) {
	if len(funcs) == 0 {
		return nil, ErrNoEquations
	}
	for i, f := range funcs {
		if f == nil {
			return nil, fmt.Errorf("system.New: equation %d: %w", i, ErrNilFunc)
		}
	}
	if len(start) != len(funcs) {
		return nil, fmt.Errorf("system.New: %d equations, start of length %d: %w",
			len(funcs), len(start), ErrStartLength)
	}

	return &EquationSystem{
		funcs: append([]Func(nil), funcs...),
		start: append([]float64(nil), start...),
	}, nil
}

// Len returns the number of equations (and unknowns).
func (s *EquationSystem) Len() int { return len(s.funcs) }

// Start returns a copy of the start vector.
func (s *EquationSystem) Start() []float64 {
	return append([]float64(nil), s.start...)
}

// WithStart returns a system with the same equations and a new start vector,
// the usual way to retry a solve from a different point.
func (s *EquationSystem) WithStart(start []float64) (*EquationSystem, error) {
	return New(s.funcs, start)
}

// Evaluate returns F(x) = (f₀(x), …, fₙ₋₁(x)).
// The functions see a private copy of x.
// Errors: ErrDimensionMismatch when len(x) != Len().
// Complexity: n function calls.
func (s *EquationSystem) Evaluate(x []float64) ([]float64, error) {
	if len(x) != len(s.funcs) {
		return nil, fmt.Errorf("Evaluate: len(x)=%d, want %d: %w", len(x), len(s.funcs), ErrDimensionMismatch)
	}
	xc := append([]float64(nil), x...)
	out := make([]float64, len(s.funcs))
	for i, f := range s.funcs {
		out[i] = f(xc)
	}

	return out, nil
}

// EvaluateAt returns f_e(x) for a single equation e. Like Evaluate, f_e sees
// a copy of x.
// Errors: ErrOutOfRange for a bad e; ErrDimensionMismatch when len(x) != Len().
func (s *EquationSystem) EvaluateAt(e int, x []float64) (float64, error) {
	if e < 0 || e >= len(s.funcs) {
		return 0, fmt.Errorf("EvaluateAt(%d): %w", e, ErrOutOfRange)
	}
	if len(x) != len(s.funcs) {
		return 0, fmt.Errorf("EvaluateAt(%d): len(x)=%d, want %d: %w", e, len(x), len(s.funcs), ErrDimensionMismatch)
	}

	xc := append([]float64(nil), x...)

	return s.funcs[e](xc), nil
}
