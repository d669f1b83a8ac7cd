// SPDX-License-Identifier: MIT
// Package linsolve - Crout LU decomposition with row pivoting.
//
// Purpose:
//   - Factor P·A = L·U with L lower triangular and U unit upper triangular.
//   - Reuse one factorization for many right-hand sides (Invert solves the
//     n unit columns of I against the same L, U).
package linsolve

import (
	"fmt"

	"github.com/katalvlaran/nonlinear/matrix"
)

const (
	opDecompose   = "Crout.Decompose"
	opCroutSolve  = "Crout.Solve"
	opCroutInvert = "Crout.Invert"
	opLUSolve     = "LU.Solve"
)

// Crout solves linear systems through a Crout LU factorization.
// The zero value uses PartialPivot.
type Crout struct {
	Pivot Pivot
}

// LU is the result of Crout.Decompose: P·A = L·U.
//   - L: lower triangular, pivots on the diagonal.
//   - U: upper triangular with a unit diagonal.
//   - P: permutation matrix, P[i][Perm[i]] = 1.
//   - Perm: row i of P·A is row Perm[i] of A.
type LU struct {
	L, U, P *matrix.Dense
	Perm    []int
}

// Decompose factors a (square, non-empty) as P·A = L·U.
// MAIN DESCRIPTION:
//   - Column-by-column Crout recurrence with the pivot chosen among the
//     freshly computed L candidates of each column.
//
// Implementation (for each column j):
//   - Stage 1: L[i][j] = A[i][j] − Σ_{k<j} L[i][k]·U[k][j] for i ≥ j.
//   - Stage 2: choose the pivot row p among L[j..n-1][j]; a pivot at or below
//     Pivot.threshold → ErrSingular;
//     swap rows j and p of the working A, of L and of Perm.
//   - Stage 3: U[j][j] = 1; U[j][i] = (A[j][i] − Σ_{k<j} L[j][k]·U[k][i]) / L[j][j] for i > j.
//
// Behavior highlights:
//   - a is never mutated; swaps happen on a private working copy.
//   - Rows above j are final when column j is processed, so swapping rows
//     j..n-1 never invalidates finished entries.
//
// Errors:
//   - ErrNilMatrix, ErrEmpty, ErrNonSquare, ErrSingular, ErrUnknownPivot.
//
// Complexity:
//   - Time O(n^3), Space O(n^2).
func (c Crout) Decompose(a matrix.Matrix) (*LU, error) {
	if err := matrix.ValidateSquareNonEmpty(a); err != nil {
		return nil, fmt.Errorf("%s: %w", opDecompose, err)
	}
	if err := c.Pivot.validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", opDecompose, err)
	}
	n := a.Rows()

	w, err := workingCopy(a)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opDecompose, err)
	}
	L, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opDecompose, err)
	}
	U, err := matrix.NewIdentity(n)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opDecompose, err)
	}
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}

	var (
		i, j, k, p int
		sum, diag  float64
	)
	tol := c.Pivot.threshold(n, maxAbs(w, n, n))
	for j = 0; j < n; j++ {
		// Stage 1: column j of L
		for i = j; i < n; i++ {
			sum = matrix.ZeroSum
			for k = 0; k < j; k++ {
				sum += at(L, i, k) * at(U, k, j)
			}
			if err = L.Set(i, j, at(w, i, j)-sum); err != nil {
				return nil, fmt.Errorf("%s: %w", opDecompose, err)
			}
		}

		// Stage 2: pivot
		col := j
		p = c.Pivot.choose(j, n, func(r int) float64 { return at(L, r, col) })
		if isZero(at(L, p, j), tol) {
			return nil, fmt.Errorf("%s: column %d: %w", opDecompose, j, ErrSingular)
		}
		if p != j {
			if err = w.SwapRows(j, p); err != nil {
				return nil, fmt.Errorf("%s: %w", opDecompose, err)
			}
			if err = L.SwapRows(j, p); err != nil {
				return nil, fmt.Errorf("%s: %w", opDecompose, err)
			}
			perm[j], perm[p] = perm[p], perm[j]
		}

		// Stage 3: row j of U
		diag = at(L, j, j)
		for i = j + 1; i < n; i++ {
			sum = matrix.ZeroSum
			for k = 0; k < j; k++ {
				sum += at(L, j, k) * at(U, k, i)
			}
			if err = U.Set(j, i, (at(w, j, i)-sum)/diag); err != nil {
				return nil, fmt.Errorf("%s: %w", opDecompose, err)
			}
		}
	}

	P, err := matrix.NewPermutation(perm)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opDecompose, err)
	}

	return &LU{L: L, U: U, P: P, Perm: perm}, nil
}

// Solve returns x with A·x = b for the factored A.
// Implementation:
//   - Stage 1: pb = P·b (pb[i] = b[Perm[i]]).
//   - Stage 2: forward substitution L·z = pb.
//   - Stage 3: backward substitution U·x = z.
//
// Errors: ErrDimensionMismatch when len(b) != n; ErrSingular from substitution.
// Complexity: O(n^2).
func (lu *LU) Solve(b []float64) ([]float64, error) {
	if lu == nil || lu.L == nil {
		return nil, fmt.Errorf("%s: %w", opLUSolve, ErrNilMatrix)
	}
	if err := matrix.ValidateVecLen(b, len(lu.Perm)); err != nil {
		return nil, fmt.Errorf("%s: %w", opLUSolve, err)
	}
	pb := make([]float64, len(b))
	for i, src := range lu.Perm {
		pb[i] = b[src]
	}
	z, err := ForwardSub(lu.L, pb)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opLUSolve, err)
	}
	x, err := BackwardSub(lu.U, z)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opLUSolve, err)
	}

	return x, nil
}

// Solve returns x with A·x = b (Decompose followed by LU.Solve).
// Errors: those of Decompose and LU.Solve.
// Complexity: O(n^3).
func (c Crout) Solve(a matrix.Matrix, b []float64) ([]float64, error) {
	lu, err := c.Decompose(a)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opCroutSolve, err)
	}
	x, err := lu.Solve(b)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opCroutSolve, err)
	}

	return x, nil
}

// Invert returns A⁻¹: one factorization, then one LU.Solve per unit column.
// Complexity: O(n^3).
func (c Crout) Invert(a matrix.Matrix) (*matrix.Dense, error) {
	lu, err := c.Decompose(a)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opCroutInvert, err)
	}
	n := a.Rows()
	inv, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opCroutInvert, err)
	}
	e := make([]float64, n)
	var x []float64
	for col := 0; col < n; col++ {
		e[col] = 1
		if x, err = lu.Solve(e); err != nil {
			return nil, fmt.Errorf("%s: %w", opCroutInvert, err)
		}
		e[col] = 0
		for i := 0; i < n; i++ {
			if err = inv.Set(i, col, x[i]); err != nil {
				return nil, fmt.Errorf("%s: %w", opCroutInvert, err)
			}
		}
	}

	return inv, nil
}
