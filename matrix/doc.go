// Package matrix provides the dense linear-algebra container used by the
// Newton-Raphson solver and its linear-solve strategies.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 matrix with bounds-checked At/Set, row
//     appends (AddRow), inclusive row/column slices and explicit row swaps.
//   - Structural constructors: New (empty, grows via AddRow), NewDense,
//     NewIdentity, NewFromRows.
//   - Kernels: ColumnStack, ColumnStackVec, MatVec, Mul, Sub, Transpose,
//     Permute, AllClose.
//   - Interop with gonum.org/v1/gonum/mat via ToGonum and FromGonum.
//
// Every operation except AddRow, Set, Apply and SwapRows returns a fresh
// matrix; inputs are never mutated. Errors are package sentinels (see
// errors.go) wrapped with the operation name; match them with errors.Is.
//
// Quick example:
//
//	a := matrix.New()
//	_ = a.AddRow([]float64{1, 1})
//	_ = a.AddRow([]float64{2, 1})
//	aug, _ := matrix.ColumnStackVec(a, []float64{5, 6})
//	fmt.Print(aug)
//	// [1, 1, 5]
//	// [2, 1, 6]
package matrix
