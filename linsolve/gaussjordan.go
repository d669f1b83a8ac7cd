// SPDX-License-Identifier: MIT
// Package linsolve - Gauss-Jordan elimination.
//
// Purpose:
//   - Reduce the augmented matrix [A | B] to [I | X] in place on a private
//     working copy and read X off the right-hand block.
//   - One routine serves a vector right-hand side (Solve), a matrix
//     right-hand side (SolveMatrix) and the inverse (Invert with B = I).
package linsolve

import (
	"fmt"

	"github.com/katalvlaran/nonlinear/matrix"
)

const (
	opGJSolve       = "GaussJordan.Solve"
	opGJSolveMatrix = "GaussJordan.SolveMatrix"
	opGJInvert      = "GaussJordan.Invert"
)

// GaussJordan solves linear systems by full Gauss-Jordan elimination.
// The zero value uses PartialPivot.
type GaussJordan struct {
	Pivot Pivot
}

// Solve returns x with A·x = b.
// Implementation:
//   - Stage 1: validate A (non-nil, non-empty, square) and len(b) == n.
//   - Stage 2: augment [A | b] with matrix.ColumnStackVec.
//   - Stage 3: eliminate to [I | x]; return the last column.
//
// Errors:
//   - ErrNilMatrix, ErrEmpty, ErrNonSquare, ErrDimensionMismatch, ErrSingular,
//     ErrUnknownPivot.
//
// Complexity:
//   - Time O(n^3), Space O(n^2).
func (g GaussJordan) Solve(a matrix.Matrix, b []float64) ([]float64, error) {
	if err := g.check(a); err != nil {
		return nil, fmt.Errorf("%s: %w", opGJSolve, err)
	}
	n := a.Rows()
	aug, err := matrix.ColumnStackVec(a, b)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opGJSolve, err)
	}
	if err = g.eliminate(aug, n); err != nil {
		return nil, fmt.Errorf("%s: %w", opGJSolve, err)
	}
	x, err := aug.Col(n)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opGJSolve, err)
	}

	return x, nil
}

// SolveMatrix returns X with A·X = B for an n×m right-hand side B.
// The result is the last m columns of the reduced [A | B].
//
// Errors:
//   - as Solve; ErrDimensionMismatch when B.Rows() != n.
//
// Complexity:
//   - Time O(n^2·(n+m)), Space O(n·(n+m)).
func (g GaussJordan) SolveMatrix(a, b matrix.Matrix) (*matrix.Dense, error) {
	if err := g.check(a); err != nil {
		return nil, fmt.Errorf("%s: %w", opGJSolveMatrix, err)
	}
	n := a.Rows()
	aug, err := matrix.ColumnStack(a, b)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opGJSolveMatrix, err)
	}
	if err = g.eliminate(aug, n); err != nil {
		return nil, fmt.Errorf("%s: %w", opGJSolveMatrix, err)
	}
	x, err := aug.ColumnRange(n, aug.Cols()-1)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opGJSolveMatrix, err)
	}

	return x, nil
}

// Invert returns A⁻¹ by reducing [A | I].
// Errors: as Solve (without the vector length case).
// Complexity: O(n^3).
func (g GaussJordan) Invert(a matrix.Matrix) (*matrix.Dense, error) {
	if err := g.check(a); err != nil {
		return nil, fmt.Errorf("%s: %w", opGJInvert, err)
	}
	id, err := matrix.IdentityLike(a)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opGJInvert, err)
	}
	inv, err := g.SolveMatrix(a, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opGJInvert, err)
	}

	return inv, nil
}

// check runs the shared entry validation in the documented priority.
func (g GaussJordan) check(a matrix.Matrix) error {
	if err := matrix.ValidateSquareNonEmpty(a); err != nil {
		return err
	}

	return g.Pivot.validate()
}

// eliminate reduces the first n columns of aug to the identity in place.
// Implementation (for each pivot row i):
//   - Stage 1: choose the pivot row p ≥ i under the pivot policy; a pivot
//     at or below Pivot.threshold means A is singular.
//   - Stage 2: swap rows i and p; divide row i by its pivot.
//   - Stage 3: for every other row j subtract aug[j][i] · row i.
//
// Complexity:
//   - Time O(n^2 · cols).
func (g GaussJordan) eliminate(aug *matrix.Dense, n int) error {
	cols := aug.Cols()
	var (
		i, j, k, p  int
		pivot, f, v float64
		err         error
		pivotRow    []float64
	)
	tol := g.Pivot.threshold(n, maxAbs(aug, n, n))
	for i = 0; i < n; i++ {
		col := i
		p = g.Pivot.choose(i, n, func(r int) float64 { return at(aug, r, col) })
		if isZero(at(aug, p, i), tol) {
			return fmt.Errorf("column %d: %w", i, ErrSingular)
		}
		if err = aug.SwapRows(i, p); err != nil {
			return err
		}

		// normalize the pivot row
		pivot = at(aug, i, i)
		for k = 0; k < cols; k++ {
			if err = aug.Set(i, k, at(aug, i, k)/pivot); err != nil {
				return err
			}
		}
		if pivotRow, err = aug.Row(i); err != nil {
			return err
		}

		// clear column i everywhere else
		for j = 0; j < n; j++ {
			if j == i {
				continue
			}
			f = at(aug, j, i)
			if f == 0 {
				continue
			}
			for k = 0; k < cols; k++ {
				v = at(aug, j, k) - f*pivotRow[k]
				if err = aug.Set(j, k, v); err != nil {
					return err
				}
			}
		}
	}

	return nil
}
