// SPDX-License-Identifier: MIT
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/nonlinear/matrix"
	"github.com/stretchr/testify/require"
)

// TestValidatorsPriority pins the documented order nil → empty → shape.
func TestValidatorsPriority(t *testing.T) {
	var typedNil *matrix.Dense

	require.ErrorIs(t, matrix.ValidateNotNil(nil), matrix.ErrNilMatrix)
	require.ErrorIs(t, matrix.ValidateNotNil(typedNil), matrix.ErrNilMatrix)
	require.ErrorIs(t, matrix.ValidateNotEmpty(typedNil), matrix.ErrNilMatrix)
	require.ErrorIs(t, matrix.ValidateNotEmpty(matrix.New()), matrix.ErrEmpty)

	require.ErrorIs(t, matrix.ValidateSquareNonEmpty(nil), matrix.ErrNilMatrix)
	require.ErrorIs(t, matrix.ValidateSquareNonEmpty(matrix.New()), matrix.ErrEmpty)
	require.ErrorIs(t, matrix.ValidateSquareNonEmpty(MustDense(t, 2, 3)), matrix.ErrNonSquare)
	require.NoError(t, matrix.ValidateSquareNonEmpty(MustDense(t, 3, 3)))
}

// TestValidateShapes covers the binary and vector validators.
func TestValidateShapes(t *testing.T) {
	a := MustDense(t, 2, 3)
	require.NoError(t, matrix.ValidateBinarySameShape(a, MustDense(t, 2, 3)))
	require.ErrorIs(t, matrix.ValidateBinarySameShape(a, MustDense(t, 3, 2)), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, matrix.ValidateBinarySameShape(a, nil), matrix.ErrNilMatrix)

	require.NoError(t, matrix.ValidateMulCompatible(a, MustDense(t, 3, 1)))
	require.ErrorIs(t, matrix.ValidateMulCompatible(a, a), matrix.ErrDimensionMismatch)

	require.NoError(t, matrix.ValidateVecLen([]float64{1, 2}, 2))
	require.ErrorIs(t, matrix.ValidateVecLen(nil, 2), matrix.ErrDimensionMismatch)
}
