// SPDX-License-Identifier: MIT
// Package linsolve - triangular substitution.
package linsolve

import (
	"fmt"

	"github.com/katalvlaran/nonlinear/matrix"
)

// ForwardSub solves L·z = b for lower-triangular L.
//
//	z[0] = b[0] / L[0][0]
//	z[i] = (b[i] − Σ_{j<i} L[i][j]·z[j]) / L[i][i]
//
// Entries above the diagonal are ignored.
// Errors: ErrNilMatrix, ErrEmpty, ErrNonSquare, ErrDimensionMismatch,
// ErrSingular (zero diagonal entry).
// Complexity: O(n^2).
func ForwardSub(l matrix.Matrix, b []float64) ([]float64, error) {
	if err := matrix.ValidateSquareNonEmpty(l); err != nil {
		return nil, fmt.Errorf("ForwardSub: %w", err)
	}
	n := l.Rows()
	if err := matrix.ValidateVecLen(b, n); err != nil {
		return nil, fmt.Errorf("ForwardSub: %w", err)
	}
	z := make([]float64, n)
	var sum, d float64
	for i := 0; i < n; i++ {
		sum = matrix.ZeroSum
		for j := 0; j < i; j++ {
			sum += at(l, i, j) * z[j]
		}
		d = at(l, i, i)
		if d == matrix.ZeroPivot {
			return nil, fmt.Errorf("ForwardSub: row %d: %w", i, ErrSingular)
		}
		z[i] = (b[i] - sum) / d
	}

	return z, nil
}

// BackwardSub solves U·x = z for upper-triangular U.
//
//	x[n−1] = z[n−1] / U[n−1][n−1]
//	x[i]   = (z[i] − Σ_{j>i} U[i][j]·x[j]) / U[i][i]
//
// With the unit diagonal produced by Crout the divisions are by 1 and the
// recurrence reduces to x[i] = z[i] − Σ_{j>i} U[i][j]·x[j].
// Errors: as ForwardSub.
// Complexity: O(n^2).
func BackwardSub(u matrix.Matrix, z []float64) ([]float64, error) {
	if err := matrix.ValidateSquareNonEmpty(u); err != nil {
		return nil, fmt.Errorf("BackwardSub: %w", err)
	}
	n := u.Rows()
	if err := matrix.ValidateVecLen(z, n); err != nil {
		return nil, fmt.Errorf("BackwardSub: %w", err)
	}
	x := make([]float64, n)
	var sum, d float64
	for i := n - 1; i >= 0; i-- {
		sum = matrix.ZeroSum
		for j := i + 1; j < n; j++ {
			sum += at(u, i, j) * x[j]
		}
		d = at(u, i, i)
		if d == matrix.ZeroPivot {
			return nil, fmt.Errorf("BackwardSub: row %d: %w", i, ErrSingular)
		}
		x[i] = (z[i] - sum) / d
	}

	return x, nil
}
