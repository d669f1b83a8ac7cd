// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Private element-wise comparison kernels behind AllClose, IsIdentity and
//     VecAllClose.
//
// Determinism & Performance:
//   - Fixed i→j loops; *Dense pairs use one flat pass; early exit on the first
//     violation.

package matrix

import "math"

// normalizeTol rejects non-finite tolerances and folds negative ones to |tol|.
func normalizeTol(rtol, atol float64) (float64, float64, error) {
	if math.IsNaN(rtol) || math.IsNaN(atol) || math.IsInf(rtol, 0) || math.IsInf(atol, 0) {
		return 0, 0, ErrNaNInf
	}

	return math.Abs(rtol), math.Abs(atol), nil
}

// closeEnough is the scalar relation |a-b| ≤ atol + rtol*|b|.
// Equal infinities compare equal; NaN is never close to anything.
func closeEnough(a, b, rtol, atol float64) bool {
	if a == b {
		return true // covers +Inf==+Inf and exact matches
	}

	return math.Abs(a-b) <= atol+rtol*math.Abs(b)
}

// ewAllClose checks element-wise closeness for identical shapes.
// Returns (true,nil) if all elements satisfy the relation; (false,nil) otherwise.
// Time: O(r*c). Space: O(1).
func ewAllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	rtol, atol, err := normalizeTol(rtol, atol)
	if err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	if err = ValidateBinarySameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}

	r, c := a.Rows(), a.Cols()
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			for idx := range da.data {
				if !closeEnough(da.data[idx], db.data[idx], rtol, atol) {
					return false, nil
				}
			}

			return true, nil
		}
	}

	var av, bv float64
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			if av, err = a.At(i, j); err != nil {
				return false, matrixErrorf(opAllClose, err)
			}
			if bv, err = b.At(i, j); err != nil {
				return false, matrixErrorf(opAllClose, err)
			}
			if !closeEnough(av, bv, rtol, atol) {
				return false, nil
			}
		}
	}

	return true, nil
}

// ewVecAllClose is ewAllClose for vectors.
func ewVecAllClose(a, b []float64, rtol, atol float64) (bool, error) {
	rtol, atol, err := normalizeTol(rtol, atol)
	if err != nil {
		return false, matrixErrorf("VecAllClose", err)
	}
	if len(a) != len(b) {
		return false, matrixErrorf("VecAllClose", ErrDimensionMismatch)
	}
	for i := range a {
		if !closeEnough(a[i], b[i], rtol, atol) {
			return false, nil
		}
	}

	return true, nil
}
