// SPDX-License-Identifier: MIT
package linsolve

import (
	"fmt"

	"github.com/katalvlaran/nonlinear/matrix"
	"gonum.org/v1/gonum/mat"
)

// Cond returns the 2-norm condition number of a, computed by gonum through
// an SVD. A singular matrix yields +Inf with a nil error; callers use the
// value as a diagnostic, never as a gate.
//
// Errors: ErrNilMatrix, ErrEmpty, ErrNonSquare.
// Complexity: O(n^3).
func Cond(a matrix.Matrix) (float64, error) {
	if err := matrix.ValidateSquareNonEmpty(a); err != nil {
		return 0, fmt.Errorf("Cond: %w", err)
	}
	g, err := matrix.ToGonum(a)
	if err != nil {
		return 0, fmt.Errorf("Cond: %w", err)
	}

	return mat.Cond(g, 2), nil
}
