// SPDX-License-Identifier: MIT
// Package matrix: interop with gonum.org/v1/gonum/mat.
//
// Both directions copy; neither side ever aliases the other's buffer.

package matrix

import "gonum.org/v1/gonum/mat"

// ToGonum copies m into a new *mat.Dense with the same shape.
// Errors: ErrNilMatrix, ErrEmpty (gonum has no 0×0 dense matrix).
// Complexity: O(r*c).
func ToGonum(m Matrix) (*mat.Dense, error) {
	if err := ValidateNotEmpty(m); err != nil {
		return nil, matrixErrorf("ToGonum", err)
	}
	rows, cols := m.Rows(), m.Cols()
	data := make([]float64, rows*cols)
	if d, ok := m.(*Dense); ok {
		copy(data, d.data)
	} else {
		var err error
		for i := 0; i < rows; i++ {
			for j := 0; j < cols; j++ {
				if data[i*cols+j], err = m.At(i, j); err != nil {
					return nil, matrixErrorf("ToGonum", err)
				}
			}
		}
	}

	return mat.NewDense(rows, cols, data), nil
}

// FromGonum copies any gonum matrix into a new *Dense.
// The numeric policy of opts applies to every copied value.
// Errors: ErrNilMatrix (nil g), ErrInvalidDimensions (zero-sized g), ErrNaNInf.
// Complexity: O(r*c).
func FromGonum(g mat.Matrix, opts ...Option) (*Dense, error) {
	if g == nil {
		return nil, matrixErrorf("FromGonum", ErrNilMatrix)
	}
	rows, cols := g.Dims()
	res, err := NewDenseWithOptions(rows, cols, opts...)
	if err != nil {
		return nil, matrixErrorf("FromGonum", err)
	}
	var v float64
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			v = g.At(i, j)
			if err = res.checkFinite(v); err != nil {
				return nil, matrixErrorf("FromGonum", denseErrorf(ctxSet, i, j, err))
			}
			res.data[i*cols+j] = v
		}
	}

	return res, nil
}
