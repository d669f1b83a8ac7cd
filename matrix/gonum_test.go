// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/nonlinear/matrix"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// TestGonumRoundTrip copies to gonum and back without aliasing.
func TestGonumRoundTrip(t *testing.T) {
	a := MustDense(t, 3, 4)
	FillRand(t, a, 11)

	g, err := matrix.ToGonum(a)
	require.NoError(t, err)
	r, c := g.Dims()
	require.Equal(t, [2]int{3, 4}, [2]int{r, c})

	g.Set(0, 0, 1000) // must not leak into a
	v, _ := a.At(0, 0)
	require.NotEqual(t, 1000.0, v)

	back, err := matrix.FromGonum(g)
	require.NoError(t, err)
	got, _ := back.At(0, 0)
	require.Equal(t, 1000.0, got)

	g.Set(0, 0, v)
	back, err = matrix.FromGonum(g)
	require.NoError(t, err)
	RequireClose(t, a, back, 0)

	viaFallback, err := matrix.ToGonum(hide{a})
	require.NoError(t, err)
	require.True(t, mat.Equal(g, viaFallback))
}

// TestGonumMulAgrees uses gonum as an independent oracle for Mul.
func TestGonumMulAgrees(t *testing.T) {
	a := MustDense(t, 4, 6)
	b := MustDense(t, 6, 3)
	FillRand(t, a, 1)
	FillRand(t, b, 2)

	ours, err := matrix.Mul(a, b)
	require.NoError(t, err)

	ga, _ := matrix.ToGonum(a)
	gb, _ := matrix.ToGonum(b)
	var want mat.Dense
	want.Mul(ga, gb)

	theirs, err := matrix.FromGonum(&want)
	require.NoError(t, err)
	RequireClose(t, theirs, ours, 1e-12)
}

// TestGonumErrors covers nil, empty and non-finite inputs.
func TestGonumErrors(t *testing.T) {
	_, err := matrix.ToGonum(matrix.New())
	require.ErrorIs(t, err, matrix.ErrEmpty)

	_, err = matrix.FromGonum(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	g := mat.NewDense(1, 2, []float64{1, math.NaN()})
	_, err = matrix.FromGonum(g)
	require.ErrorIs(t, err, matrix.ErrNaNInf)

	_, err = matrix.FromGonum(g, matrix.WithNoValidateNaNInf())
	require.NoError(t, err)
}
