// Package linsolve solves dense square linear systems A·x = b.
//
// Two interchangeable strategies implement the Solver interface:
//
//   - GaussJordan reduces the augmented matrix [A | b] (or [A | B], or
//     [A | I] for the inverse) to reduced row-echelon form.
//   - Crout factors P·A = L·U with a unit-diagonal U, then solves by
//     forward and backward substitution. Decompose exposes the factors so
//     one factorization can serve many right-hand sides.
//
// Both strategies pivot by row swaps on a private working copy; the caller's
// matrix and vectors are never mutated. The pivot policy is explicit:
// PartialPivot (the default) takes the largest-magnitude candidate,
// FirstNonZero keeps the diagonal unless it is exactly zero. A column whose
// chosen pivot is exactly zero makes the system singular (ErrSingular).
//
// Cond reports the 2-norm condition number through gonum as a diagnostic.
//
// Example:
//
//	a, _ := matrix.NewFromRows([][]float64{{1, 1}, {2, 1}})
//	x, err := linsolve.GaussJordan{}.Solve(a, []float64{5, 6})
//	// x == [1, 4]
package linsolve
