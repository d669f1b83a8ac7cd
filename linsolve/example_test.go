package linsolve_test

import (
	"fmt"

	"github.com/katalvlaran/nonlinear/linsolve"
	"github.com/katalvlaran/nonlinear/matrix"
)

// ExampleGaussJordan_Solve solves x + y = 5, 2x + y = 6.
func ExampleGaussJordan_Solve() {
	a, _ := matrix.NewFromRows([][]float64{{1, 1}, {2, 1}})
	x, err := linsolve.GaussJordan{}.Solve(a, []float64{5, 6})
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(matrix.FormatVector(x))
	// Output:
	// [1, 4]
}

// ExampleCrout_Decompose prints the factors of a matrix that needs a row swap.
func ExampleCrout_Decompose() {
	a, _ := matrix.NewFromRows([][]float64{{1, 1}, {2, 1}})
	lu, err := linsolve.Crout{}.Decompose(a)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Print("L:\n", lu.L, "U:\n", lu.U, "perm: ", lu.Perm, "\n")
	// Output:
	// L:
	// [2, 0]
	// [1, 0.5]
	// U:
	// [1, 0.5]
	// [0, 1]
	// perm: [1 0]
}

// ExampleCrout_Solve reports a singular system.
func ExampleCrout_Solve() {
	a, _ := matrix.NewFromRows([][]float64{{1, 2}, {2, 4}})
	_, err := linsolve.Crout{}.Solve(a, []float64{1, 2})
	fmt.Println(err)
	// Output:
	// Crout.Solve: Crout.Decompose: column 1: matrix: singular matrix
}
