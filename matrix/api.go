// SPDX-License-Identifier: MIT
// Package matrix — public API facades.
//
// Purpose:
//   - Structural constructors (identity, zeros, from rows, permutation).
//   - Horizontal stacking used to form augmented systems [A | b] and [A | B].
//   - Tolerance comparisons and the vector presentation helper.
//
// Determinism & Policy:
//   - Facades never change the loop orders or numeric policy of the kernels.
//
// AI-Hints:
//   - Prefer passing *Dense to unlock fast-paths in kernels (flat-slice loops).
//   - ColumnStackVec is the cheapest way to build the augmented matrix of a
//     single right-hand side.

package matrix

import (
	"fmt"
	"strings"
)

// ---------- Constructors ----------

// NewZeros returns a new zero-initialized *Dense of size rows×cols.
// Thin alias of NewDense with an intention-revealing name.
func NewZeros(rows, cols int) (*Dense, error) {
	return NewDense(rows, cols)
}

// NewIdentity returns I_n (n×n identity; ones on the diagonal, zeros elsewhere).
// Errors: ErrInvalidDimensions for n <= 0.
// Complexity: O(n^2) zeroing + O(n) diagonal writes.
func NewIdentity(n int) (*Dense, error) {
	id, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		id.data[i*n+i] = 1.0
	}

	return id, nil
}

// NewFromRows builds a matrix by appending each row in order (AddRow semantics).
// Errors: ErrInvalidDimensions for no rows or an empty row, ErrDimensionMismatch
// for ragged input, ErrNaNInf under the default numeric policy.
// Complexity: O(r*c).
func NewFromRows(rows [][]float64, opts ...Option) (*Dense, error) {
	if len(rows) == 0 {
		return nil, matrixErrorf("NewFromRows", ErrInvalidDimensions)
	}
	m := New(opts...)
	for _, row := range rows {
		if err := m.AddRow(row); err != nil {
			return nil, matrixErrorf("NewFromRows", err)
		}
	}

	return m, nil
}

// NewPermutation returns the n×n permutation matrix P with P[i][perm[i]] = 1,
// so that P·A equals Permute(A, perm).
// Errors: ErrInvalidDimensions (empty perm), ErrOutOfRange (not a permutation).
func NewPermutation(perm []int) (*Dense, error) {
	n := len(perm)
	p, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf("NewPermutation", err)
	}
	if err = validatePermutation(perm, n); err != nil {
		return nil, matrixErrorf("NewPermutation", err)
	}
	for i, j := range perm {
		p.data[i*n+j] = 1.0
	}

	return p, nil
}

// ZerosLike returns a new zero matrix with the same shape as m.
func ZerosLike(m Matrix) (*Dense, error) {
	if err := ValidateNotEmpty(m); err != nil {
		return nil, matrixErrorf("ZerosLike", err)
	}

	return NewDense(m.Rows(), m.Cols())
}

// IdentityLike returns I with dimension = Rows(m); requires square shape.
func IdentityLike(m Matrix) (*Dense, error) {
	if err := ValidateSquareNonEmpty(m); err != nil {
		return nil, matrixErrorf("IdentityLike", err)
	}

	return NewIdentity(m.Rows())
}

// ---------- Stacking ----------

// ColumnStack returns [a | b]: the columns of b appended to the right of a.
// MAIN DESCRIPTION:
//   - Horizontal concatenation of two matrices with the same row count.
//
// Implementation:
//   - Stage 1: validate both non-nil, non-empty, equal row counts.
//   - Stage 2: copy row i of a, then row i of b, into row i of the result.
//
// Errors:
//   - ErrNilMatrix, ErrEmpty, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(r*(ca+cb)), Space O(r*(ca+cb)).
func ColumnStack(a, b Matrix) (*Dense, error) {
	if err := ValidateNotEmpty(a); err != nil {
		return nil, matrixErrorf(opColumnStack, err)
	}
	if err := ValidateNotEmpty(b); err != nil {
		return nil, matrixErrorf(opColumnStack, err)
	}
	if a.Rows() != b.Rows() {
		return nil, matrixErrorf(opColumnStack, ErrDimensionMismatch)
	}
	rows, ca, cb := a.Rows(), a.Cols(), b.Cols()
	res, err := NewDense(rows, ca+cb)
	if err != nil {
		return nil, matrixErrorf(opColumnStack, err)
	}
	if err = copyBlock(res, a, 0); err != nil {
		return nil, matrixErrorf(opColumnStack, err)
	}
	if err = copyBlock(res, b, ca); err != nil {
		return nil, matrixErrorf(opColumnStack, err)
	}

	return res, nil
}

// ColumnStackVec returns [a | v] where v is treated as a single column.
// Errors: ErrNilMatrix, ErrEmpty, ErrDimensionMismatch (len(v) != Rows()).
// Complexity: O(r*c).
func ColumnStackVec(a Matrix, v []float64) (*Dense, error) {
	if err := ValidateNotEmpty(a); err != nil {
		return nil, matrixErrorf(opColumnStack, err)
	}
	if err := ValidateVecLen(v, a.Rows()); err != nil {
		return nil, matrixErrorf(opColumnStack, err)
	}
	rows, cols := a.Rows(), a.Cols()
	res, err := NewDense(rows, cols+1)
	if err != nil {
		return nil, matrixErrorf(opColumnStack, err)
	}
	if err = copyBlock(res, a, 0); err != nil {
		return nil, matrixErrorf(opColumnStack, err)
	}
	for i := 0; i < rows; i++ {
		res.data[i*(cols+1)+cols] = v[i]
	}

	return res, nil
}

// copyBlock writes src into dst starting at column offset off (all rows).
// dst must have the same row count and at least off+src.Cols() columns.
func copyBlock(dst *Dense, src Matrix, off int) error {
	rows, cols := src.Rows(), src.Cols()
	if ds, ok := src.(*Dense); ok {
		for i := 0; i < rows; i++ {
			copy(dst.data[i*dst.c+off:i*dst.c+off+cols], ds.data[i*cols:(i+1)*cols])
		}

		return nil
	}
	var v float64
	var err error
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if v, err = src.At(i, j); err != nil {
				return err
			}
			dst.data[i*dst.c+off+j] = v
		}
	}

	return nil
}

// ---------- Numeric compare ----------

// AllClose checks element-wise |a-b| ≤ atol + rtol*|b| for identical shapes.
// Returns (true,nil) if all elements satisfy the relation; (false,nil) otherwise.
// NaN != anything; +Inf equals +Inf; -Inf equals -Inf.
//
// Policy:
//   - a and b must be non-nil and have identical shapes.
//   - rtol, atol are treated as |rtol|, |atol|; non-finite tolerances → ErrNaNInf.
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	return ewAllClose(a, b, rtol, atol)
}

// AllCloseDefault is AllClose with rtol = 0 and atol = the resolved Epsilon
// of opts (DefaultEpsilon when no option is given).
func AllCloseDefault(a, b Matrix, opts ...Option) (bool, error) {
	o := gatherOptions(opts...)

	return ewAllClose(a, b, 0, o.eps)
}

// VecAllClose is the vector counterpart of AllClose.
// Errors: ErrDimensionMismatch on length mismatch, ErrNaNInf on bad tolerances.
func VecAllClose(a, b []float64, rtol, atol float64) (bool, error) {
	return ewVecAllClose(a, b, rtol, atol)
}

// IsIdentity reports whether m is square and within atol of I_n.
func IsIdentity(m Matrix, atol float64) (bool, error) {
	id, err := IdentityLike(m)
	if err != nil {
		return false, matrixErrorf("IsIdentity", err)
	}

	return ewAllClose(m, id, 0, atol)
}

// ---------- Presentation ----------

// FormatVector renders v as "[a, b, c]" using %g, the same cell format
// as (*Dense).String. A nil or empty vector renders as "[]".
func FormatVector(v []float64) string {
	var b strings.Builder
	b.WriteString(_fmtRowOpen)
	for i, x := range v {
		if i > 0 {
			b.WriteString(_fmtSep)
		}
		b.WriteString(fmt.Sprintf("%g", x))
	}
	b.WriteString("]")

	return b.String()
}
