// SPDX-License-Identifier: MIT
package linsolve_test

import (
	"testing"

	"github.com/katalvlaran/nonlinear/linsolve"
	"github.com/katalvlaran/nonlinear/matrix"
	"github.com/stretchr/testify/require"
)

// TestDecomposePAEqualsLU checks P·A ≈ L·U and the triangular shapes of the factors.
func TestDecomposePAEqualsLU(t *testing.T) {
	for _, pivot := range []linsolve.Pivot{linsolve.PartialPivot, linsolve.FirstNonZero} {
		a, _ := randomWellConditioned(t, 6, 21)
		require.NoError(t, a.Set(0, 0, 0)) // force a swap under both policies

		lu, err := linsolve.Crout{Pivot: pivot}.Decompose(a)
		require.NoError(t, err, pivot.String())

		pa, err := matrix.Mul(lu.P, a)
		require.NoError(t, err)
		prod, err := matrix.Mul(lu.L, lu.U)
		require.NoError(t, err)
		requireClose(t, pa, prod, 1e-12)

		permuted, err := matrix.Permute(a, lu.Perm)
		require.NoError(t, err)
		requireClose(t, pa, permuted, 0)

		n := a.Rows()
		for i := 0; i < n; i++ {
			d, _ := lu.U.At(i, i)
			require.Equal(t, 1.0, d, "U must be unit-diagonal")
			for j := i + 1; j < n; j++ {
				v, _ := lu.L.At(i, j)
				require.Zero(t, v, "L must be lower triangular")
				v, _ = lu.U.At(j, i)
				require.Zero(t, v, "U must be upper triangular")
			}
		}
	}
}

// TestLUReuse solves several right-hand sides against one factorization.
func TestLUReuse(t *testing.T) {
	a, _ := randomWellConditioned(t, 5, 8)
	lu, err := linsolve.Crout{}.Decompose(a)
	require.NoError(t, err)

	for k := 0; k < 3; k++ {
		b := make([]float64, 5)
		for i := range b {
			b[i] = float64(i*k) - 2
		}
		x, err := lu.Solve(b)
		require.NoError(t, err)
		ax, err := matrix.MatVec(a, x)
		require.NoError(t, err)
		requireVecClose(t, b, ax, 1e-10)
	}

	_, err = lu.Solve([]float64{1, 2})
	require.ErrorIs(t, err, linsolve.ErrDimensionMismatch)

	var empty *linsolve.LU
	_, err = empty.Solve([]float64{1})
	require.ErrorIs(t, err, linsolve.ErrNilMatrix)
}

// TestSubstitution covers the two triangular solvers directly.
func TestSubstitution(t *testing.T) {
	l := mustRows(t, []float64{2, 0, 0}, []float64{1, 4, 0}, []float64{-1, 2, 5})
	z, err := linsolve.ForwardSub(l, []float64{2, 9, 8})
	require.NoError(t, err)
	requireVecClose(t, []float64{1, 2, 1}, z, 1e-15)

	u := mustRows(t, []float64{1, 2, -1}, []float64{0, 1, 3}, []float64{0, 0, 1})
	x, err := linsolve.BackwardSub(u, []float64{4, 7, 2})
	require.NoError(t, err)
	requireVecClose(t, []float64{4, 1, 2}, x, 1e-15)

	_, err = linsolve.ForwardSub(mustRows(t, []float64{0, 0}, []float64{1, 1}), []float64{1, 1})
	require.ErrorIs(t, err, linsolve.ErrSingular)
	_, err = linsolve.BackwardSub(u, []float64{1})
	require.ErrorIs(t, err, linsolve.ErrDimensionMismatch)
}
