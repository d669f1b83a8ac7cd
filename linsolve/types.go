// SPDX-License-Identifier: MIT
// Package linsolve: shared types, pivot policies and error definitions.
package linsolve

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/nonlinear/matrix"
)

// Sentinel errors. The matrix sentinels are re-exported so callers of this
// package need not import matrix just to match errors.
var (
	// ErrSingular is returned when the chosen pivot of some column is at or
	// below the pivot policy's threshold.
	ErrSingular = matrix.ErrSingular

	// ErrNonSquare is returned when the coefficient matrix is not square.
	ErrNonSquare = matrix.ErrNonSquare

	// ErrEmpty is returned for a 0×0 coefficient matrix.
	ErrEmpty = matrix.ErrEmpty

	// ErrNilMatrix is returned for a nil coefficient or right-hand-side matrix.
	ErrNilMatrix = matrix.ErrNilMatrix

	// ErrDimensionMismatch is returned when the right-hand side does not have
	// one entry (or row) per equation.
	ErrDimensionMismatch = matrix.ErrDimensionMismatch

	// ErrUnknownPivot is returned when a Pivot value is not one of the declared policies.
	ErrUnknownPivot = errors.New("linsolve: unknown pivot policy")
)

// Solver is the strategy interface shared by GaussJordan and Crout.
// Implementations never mutate a or b.
type Solver interface {
	// Solve returns x with A·x = b.
	Solve(a matrix.Matrix, b []float64) ([]float64, error)

	// Invert returns A⁻¹.
	Invert(a matrix.Matrix) (*matrix.Dense, error)
}

// Compile-time conformance.
var (
	_ Solver = GaussJordan{}
	_ Solver = Crout{}
)

// Pivot selects the row that supplies the pivot of a column.
type Pivot int

const (
	// PartialPivot takes the candidate of largest magnitude; ties keep the
	// lowest row index. A pivot with |p| ≤ n·ε·max|A| counts as zero.
	// This is the zero value and the default.
	PartialPivot Pivot = iota

	// FirstNonZero keeps the diagonal entry unless it is exactly zero, in which
	// case the first nonzero candidate below it is used. Only an exact zero
	// pivot is singular.
	FirstNonZero
)

// unitRoundoff is ε in the PartialPivot singularity threshold n·ε·max|A|.
const unitRoundoff = 0x1p-52

// String implements fmt.Stringer.
func (p Pivot) String() string {
	switch p {
	case PartialPivot:
		return "partial"
	case FirstNonZero:
		return "first-nonzero"
	default:
		return fmt.Sprintf("Pivot(%d)", int(p))
	}
}

// ParsePivot maps the String form back to a Pivot.
func ParsePivot(s string) (Pivot, error) {
	switch s {
	case "partial", "":
		return PartialPivot, nil
	case "first-nonzero":
		return FirstNonZero, nil
	default:
		return 0, fmt.Errorf("ParsePivot(%q): %w", s, ErrUnknownPivot)
	}
}

// validate rejects values outside the declared set.
func (p Pivot) validate() error {
	if p != PartialPivot && p != FirstNonZero {
		return fmt.Errorf("%s: %w", p, ErrUnknownPivot)
	}

	return nil
}

// threshold returns the magnitude at or below which a chosen pivot makes an
// n×n system singular. scale is max|A| over the coefficient block.
//
//	PartialPivot: n·ε·scale (0 for an all-zero A)
//	FirstNonZero: 0, i.e. only an exact zero
func (p Pivot) threshold(n int, scale float64) float64 {
	if p == FirstNonZero {
		return matrix.ZeroPivot
	}

	return float64(n) * unitRoundoff * scale
}

// isZero reports whether pivot v is singular against tol.
func isZero(v, tol float64) bool {
	return math.Abs(v) <= tol
}

// maxAbs returns max|m[i][j]| over the leading rows×cols block.
func maxAbs(m matrix.Matrix, rows, cols int) float64 {
	var best float64
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if v := math.Abs(at(m, i, j)); v > best {
				best = v
			}
		}
	}

	return best
}

// choose returns the row in [col, n) whose value (as reported by cand)
// becomes the pivot of column col. The caller still has to reject a zero
// pivot via threshold; choose never reports failure itself.
//
// Complexity: O(n-col).
func (p Pivot) choose(col, n int, cand func(row int) float64) int {
	best := col
	switch p {
	case FirstNonZero:
		if cand(col) != matrix.ZeroPivot {
			return col
		}
		for i := col + 1; i < n; i++ {
			if cand(i) != matrix.ZeroPivot {
				return i
			}
		}
	default:
		bestAbs := math.Abs(cand(col))
		var v float64
		for i := col + 1; i < n; i++ {
			v = math.Abs(cand(i))
			if v > bestAbs { // strict: ties keep the lowest index
				best, bestAbs = i, v
			}
		}
	}

	return best
}

// at reads a cell whose indices the caller has already validated.
func at(m matrix.Matrix, i, j int) float64 {
	v, _ := m.At(i, j)

	return v
}

// workingCopy returns a private *Dense copy of a that solvers may mutate.
func workingCopy(a matrix.Matrix) (*matrix.Dense, error) {
	if d, ok := a.(*matrix.Dense); ok {
		return d.Clone().(*matrix.Dense), nil
	}
	rows, cols := a.Rows(), a.Cols()
	w, err := matrix.NewDense(rows, cols)
	if err != nil {
		return nil, err
	}
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if err = w.Set(i, j, at(a, i, j)); err != nil {
				return nil, err
			}
		}
	}

	return w, nil
}
