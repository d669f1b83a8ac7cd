// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/nonlinear/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewIdentity checks the diagonal pattern and invalid sizes.
func TestNewIdentity(t *testing.T) {
	id, err := matrix.NewIdentity(3)
	require.NoError(t, err)
	require.Equal(t, "[1, 0, 0]\n[0, 1, 0]\n[0, 0, 1]\n", id.String())

	ok, err := matrix.IsIdentity(id, 0)
	require.NoError(t, err)
	require.True(t, ok)

	_, err = matrix.NewIdentity(0)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestNewZeros checks shape, zero fill and invalid sizes.
func TestNewZeros(t *testing.T) {
	z, err := matrix.NewZeros(2, 3)
	require.NoError(t, err)
	r, c := z.Shape()
	require.Equal(t, 2, r)
	require.Equal(t, 3, c)
	require.Equal(t, "[0, 0, 0]\n[0, 0, 0]\n", z.String())

	_, err = matrix.NewZeros(0, 3)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	_, err = matrix.NewZeros(2, -1)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestNewFromRows rejects ragged and empty input.
func TestNewFromRows(t *testing.T) {
	_, err := matrix.NewFromRows(nil)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewFromRows([][]float64{{1, 2}, {3}})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

// TestColumnStackIdentityRoundTrip stacks [A | I] and recovers I from the
// last n columns.
func TestColumnStackIdentityRoundTrip(t *testing.T) {
	const n = 4
	a := MustDense(t, n, n)
	FillRand(t, a, 3)
	id, err := matrix.NewIdentity(n)
	require.NoError(t, err)

	aug, err := matrix.ColumnStack(a, id)
	require.NoError(t, err)
	require.Equal(t, n, aug.Rows())
	require.Equal(t, 2*n, aug.Cols())

	left, err := aug.ColumnRange(0, n-1)
	require.NoError(t, err)
	RequireClose(t, a, left, 0)

	right, err := aug.ColumnRange(n, 2*n-1)
	require.NoError(t, err)
	RequireClose(t, id, right, 0)

	// generic path for the right operand
	aug2, err := matrix.ColumnStack(a, hide{id})
	require.NoError(t, err)
	RequireClose(t, aug, aug2, 0)
}

// TestColumnStackVec builds the augmented matrix of a single right-hand side.
func TestColumnStackVec(t *testing.T) {
	a := MustRows(t, []float64{1, 1}, []float64{2, 1})
	aug, err := matrix.ColumnStackVec(a, []float64{5, 6})
	require.NoError(t, err)
	require.Equal(t, "[1, 1, 5]\n[2, 1, 6]\n", aug.String())

	_, err = matrix.ColumnStackVec(a, []float64{1})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.ColumnStack(a, MustDense(t, 3, 1))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.ColumnStack(matrix.New(), a)
	require.ErrorIs(t, err, matrix.ErrEmpty)
}

// TestAllClose covers tolerance semantics including infinities.
func TestAllClose(t *testing.T) {
	a := MustRows(t, []float64{1, 2})
	b := MustRows(t, []float64{1 + 1e-10, 2})

	ok, err := matrix.AllClose(a, b, 0, 1e-9)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = matrix.AllClose(a, b, 0, 1e-12)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = matrix.AllCloseDefault(a, b)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = matrix.AllCloseDefault(a, b, matrix.WithEpsilon(0))
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = matrix.AllClose(a, b, math.NaN(), 0)
	require.ErrorIs(t, err, matrix.ErrNaNInf)
	_, err = matrix.AllClose(a, MustDense(t, 2, 1), 0, 0)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	inf := matrix.New(matrix.WithNoValidateNaNInf())
	require.NoError(t, inf.AddRow([]float64{math.Inf(1)}))
	ok, err = matrix.AllClose(inf, inf.Clone(), 0, 0)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = matrix.VecAllClose([]float64{1, 2}, []float64{1, 2.5}, 0.25, 0)
	require.NoError(t, err)
	assert.True(t, ok)
}

// TestFormatVector pins the vector presentation format.
func TestFormatVector(t *testing.T) {
	assert.Equal(t, "[]", matrix.FormatVector(nil))
	assert.Equal(t, "[3.031155, -2]", matrix.FormatVector([]float64{3.031155, -2}))
}

// TestLikeConstructors covers ZerosLike and IdentityLike.
func TestLikeConstructors(t *testing.T) {
	a := MustRows(t, []float64{1, 2, 3}, []float64{4, 5, 6})

	z, err := matrix.ZerosLike(a)
	require.NoError(t, err)
	require.Equal(t, "[0, 0, 0]\n[0, 0, 0]\n", z.String())

	_, err = matrix.IdentityLike(a)
	require.ErrorIs(t, err, matrix.ErrNonSquare)
}
