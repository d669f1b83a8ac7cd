// SPDX-License-Identifier: MIT
package linsolve_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/nonlinear/linsolve"
	"github.com/katalvlaran/nonlinear/matrix"
	"github.com/stretchr/testify/require"
)

// hide masks *matrix.Dense so solvers take their generic copy path.
type hide struct{ matrix.Matrix }

// strategies enumerates every (solver, pivot) pair under test.
func strategies() map[string]linsolve.Solver {
	return map[string]linsolve.Solver{
		"gj/partial":    linsolve.GaussJordan{},
		"gj/firstnz":    linsolve.GaussJordan{Pivot: linsolve.FirstNonZero},
		"crout/partial": linsolve.Crout{},
		"crout/firstnz": linsolve.Crout{Pivot: linsolve.FirstNonZero},
	}
}

// mustRows builds a *Dense from literal rows or fails the test.
func mustRows(t testing.TB, rows ...[]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewFromRows(rows)
	require.NoError(t, err)

	return m
}

// randomWellConditioned returns a deterministic n×n matrix with a dominant
// diagonal, plus a right-hand side.
func randomWellConditioned(t testing.TB, n int, seed int64) (*matrix.Dense, []float64) {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	a, err := matrix.NewDense(n, n)
	require.NoError(t, err)
	b := make([]float64, n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			v := rng.Float64()*2 - 1
			if i == j {
				v += float64(n)
			}
			require.NoError(t, a.Set(i, j, v))
		}
		b[i] = rng.Float64()*10 - 5
	}

	return a, b
}

// requireClose asserts AllClose(got, want, 0, atol).
func requireClose(t testing.TB, want, got matrix.Matrix, atol float64) {
	t.Helper()
	ok, err := matrix.AllClose(got, want, 0, atol)
	require.NoError(t, err)
	require.Truef(t, ok, "want:\n%v\ngot:\n%v", want, got)
}

// requireVecClose asserts VecAllClose(got, want, 0, atol).
func requireVecClose(t testing.TB, want, got []float64, atol float64) {
	t.Helper()
	ok, err := matrix.VecAllClose(got, want, 0, atol)
	require.NoError(t, err)
	require.Truef(t, ok, "want %v, got %v", want, got)
}
