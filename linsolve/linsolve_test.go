// SPDX-License-Identifier: MIT
package linsolve_test

import (
	"testing"

	"github.com/katalvlaran/nonlinear/linsolve"
	"github.com/katalvlaran/nonlinear/matrix"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// TestSolveSmall checks the 2×2 system x + y = 5, 2x + y = 6 under every strategy.
func TestSolveSmall(t *testing.T) {
	a := mustRows(t, []float64{1, 1}, []float64{2, 1})
	for name, s := range strategies() {
		s := s
		t.Run(name, func(t *testing.T) {
			x, err := s.Solve(a, []float64{5, 6})
			require.NoError(t, err)
			requireVecClose(t, []float64{1, 4}, x, 1e-12)
		})
	}
}

// TestStrategiesAgree compares GaussJordan, Crout and gonum's LU on random systems.
func TestStrategiesAgree(t *testing.T) {
	for _, n := range []int{1, 3, 6, 12} {
		a, b := randomWellConditioned(t, n, int64(n))

		var oracle mat.VecDense
		var lu mat.LU
		ga, err := matrix.ToGonum(a)
		require.NoError(t, err)
		lu.Factorize(ga)
		require.NoError(t, lu.SolveVecTo(&oracle, false, mat.NewVecDense(n, append([]float64(nil), b...))))
		want := oracle.RawVector().Data

		for name, s := range strategies() {
			x, err := s.Solve(a, b)
			require.NoError(t, err, "%s n=%d", name, n)
			requireVecClose(t, want, x, 1e-9)
		}
	}
}

// TestSolveDoesNotMutateInputs guards the private-working-copy contract.
func TestSolveDoesNotMutateInputs(t *testing.T) {
	a := mustRows(t, []float64{0, 2}, []float64{3, 1}) // forces a row swap
	before := a.String()
	b := []float64{4, 5}

	for name, s := range strategies() {
		_, err := s.Solve(a, b)
		require.NoError(t, err, name)
		_, err = s.Invert(a)
		require.NoError(t, err, name)
	}
	require.Equal(t, before, a.String())
	require.Equal(t, []float64{4, 5}, b)
}

// TestGenericMatrixInput runs the solvers on a non-*Dense Matrix.
func TestGenericMatrixInput(t *testing.T) {
	a, b := randomWellConditioned(t, 4, 99)
	for name, s := range strategies() {
		want, err := s.Solve(a, b)
		require.NoError(t, err, name)
		got, err := s.Solve(hide{a}, b)
		require.NoError(t, err, name)
		requireVecClose(t, want, got, 0)
	}
}

// TestInvertTimesAIsIdentity checks A·A⁻¹ ≈ I for both strategies.
func TestInvertTimesAIsIdentity(t *testing.T) {
	a, _ := randomWellConditioned(t, 7, 5)
	for name, s := range strategies() {
		inv, err := s.Invert(a)
		require.NoError(t, err, name)

		prod, err := matrix.Mul(a, inv)
		require.NoError(t, err)
		ok, err := matrix.IsIdentity(prod, 1e-9)
		require.NoError(t, err)
		require.Truef(t, ok, "%s: A·inv(A) =\n%v", name, prod)
	}
}

// TestSingular covers exact rank loss (zero row, duplicate rows, zero column)
// and rank loss that elimination only resolves up to rounding.
func TestSingular(t *testing.T) {
	cases := map[string]*matrix.Dense{
		"zero row":       mustRows(t, []float64{1, 2}, []float64{0, 0}),
		"duplicate rows": mustRows(t, []float64{1, 2}, []float64{1, 2}),
		"zero column":    mustRows(t, []float64{0, 1, 2}, []float64{0, 3, 4}, []float64{0, 5, 7}),
		"rank two":       mustRows(t, []float64{1, 2, 3}, []float64{4, 5, 6}, []float64{7, 8, 9}),
		"one third":      mustRows(t, []float64{1, 1.0 / 3}, []float64{3, 1}),
	}
	for cname, a := range cases {
		for sname, s := range strategies() {
			_, err := s.Solve(a, make([]float64, a.Rows()))
			require.ErrorIs(t, err, linsolve.ErrSingular, "%s/%s", cname, sname)

			_, err = s.Invert(a)
			require.ErrorIs(t, err, linsolve.ErrSingular, "%s/%s", cname, sname)
		}
	}
}

// TestNearSingularButSolvable keeps the singularity threshold relative to
// the magnitude of A.
func TestNearSingularButSolvable(t *testing.T) {
	cases := map[string]*matrix.Dense{
		"nearly parallel": mustRows(t, []float64{1, 1}, []float64{1, 1 + 1e-10}),
		"tiny entries":    mustRows(t, []float64{2e-20, 1e-20}, []float64{1e-20, 3e-20}),
	}
	for cname, a := range cases {
		for sname, s := range strategies() {
			b := []float64{1, 2}
			x, err := s.Solve(a, b)
			require.NoError(t, err, "%s/%s", cname, sname)
			ax, err := matrix.MatVec(a, x)
			require.NoError(t, err)
			require.InDeltaSlice(t, b, ax, 1e-4, "%s/%s", cname, sname)
		}
	}
}

// TestValidationErrors pins the error priority nil → empty → shape → rhs.
func TestValidationErrors(t *testing.T) {
	var typedNil *matrix.Dense
	for name, s := range strategies() {
		_, err := s.Solve(nil, nil)
		require.ErrorIs(t, err, linsolve.ErrNilMatrix, name)

		_, err = s.Solve(typedNil, nil)
		require.ErrorIs(t, err, linsolve.ErrNilMatrix, name)

		_, err = s.Solve(matrix.New(), nil)
		require.ErrorIs(t, err, linsolve.ErrEmpty, name)

		_, err = s.Solve(mustRows(t, []float64{1, 2, 3}, []float64{4, 5, 6}), []float64{1, 2})
		require.ErrorIs(t, err, linsolve.ErrNonSquare, name)

		_, err = s.Solve(mustRows(t, []float64{1, 0}, []float64{0, 1}), []float64{1})
		require.ErrorIs(t, err, linsolve.ErrDimensionMismatch, name)

		_, err = s.Invert(matrix.New())
		require.ErrorIs(t, err, linsolve.ErrEmpty, name)
	}

	_, err := linsolve.GaussJordan{Pivot: linsolve.Pivot(7)}.Solve(mustRows(t, []float64{1}), []float64{1})
	require.ErrorIs(t, err, linsolve.ErrUnknownPivot)
	_, err = linsolve.Crout{Pivot: linsolve.Pivot(-1)}.Decompose(mustRows(t, []float64{1}))
	require.ErrorIs(t, err, linsolve.ErrUnknownPivot)
}

// TestGaussJordanSolveMatrix solves two right-hand sides at once.
func TestGaussJordanSolveMatrix(t *testing.T) {
	a := mustRows(t, []float64{2, 1}, []float64{1, 3})
	b := mustRows(t, []float64{3, 5}, []float64{4, 10})

	x, err := linsolve.GaussJordan{}.SolveMatrix(a, b)
	require.NoError(t, err)

	ax, err := matrix.Mul(a, x)
	require.NoError(t, err)
	requireClose(t, b, ax, 1e-12)

	_, err = linsolve.GaussJordan{}.SolveMatrix(a, mustRows(t, []float64{1}))
	require.ErrorIs(t, err, linsolve.ErrDimensionMismatch)
}

// TestPivotPolicies checks the row choice of each policy on the first column.
func TestPivotPolicies(t *testing.T) {
	// column 0 = [1, -5, 5]: partial picks row 1 (first of the tie), first-nonzero keeps row 0
	a := mustRows(t, []float64{1, 2, 3}, []float64{-5, 1, 0}, []float64{5, 0, 1})

	lu, err := linsolve.Crout{}.Decompose(a)
	require.NoError(t, err)
	require.Equal(t, 1, lu.Perm[0])

	lu, err = linsolve.Crout{Pivot: linsolve.FirstNonZero}.Decompose(a)
	require.NoError(t, err)
	require.Equal(t, 0, lu.Perm[0])

	// zero diagonal: first-nonzero must move down
	b := mustRows(t, []float64{0, 1}, []float64{4, 2})
	lu, err = linsolve.Crout{Pivot: linsolve.FirstNonZero}.Decompose(b)
	require.NoError(t, err)
	require.Equal(t, []int{1, 0}, lu.Perm)
}

// TestParsePivot round-trips the policy names.
func TestParsePivot(t *testing.T) {
	for _, p := range []linsolve.Pivot{linsolve.PartialPivot, linsolve.FirstNonZero} {
		got, err := linsolve.ParsePivot(p.String())
		require.NoError(t, err)
		require.Equal(t, p, got)
	}
	got, err := linsolve.ParsePivot("")
	require.NoError(t, err)
	require.Equal(t, linsolve.PartialPivot, got)

	_, err = linsolve.ParsePivot("complete")
	require.ErrorIs(t, err, linsolve.ErrUnknownPivot)
	require.Equal(t, "Pivot(9)", linsolve.Pivot(9).String())
}

// TestCond reports 1 for the identity and +Inf-ish growth for near-singular input.
func TestCond(t *testing.T) {
	id, err := matrix.NewIdentity(4)
	require.NoError(t, err)
	c, err := linsolve.Cond(id)
	require.NoError(t, err)
	require.InDelta(t, 1.0, c, 1e-12)

	near := mustRows(t, []float64{1, 1}, []float64{1, 1 + 1e-10})
	c, err = linsolve.Cond(near)
	require.NoError(t, err)
	require.Greater(t, c, 1e9)

	_, err = linsolve.Cond(matrix.New())
	require.ErrorIs(t, err, linsolve.ErrEmpty)
}
