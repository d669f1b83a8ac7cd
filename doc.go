// Package nonlinear solves square systems of nonlinear equations F(x) = 0
// with Newton-Raphson iteration over dense float64 matrices.
//
// 🚀 What is in the box?
//
//	A small, dependency-light toolkit that brings together:
//		• Dense matrices: row/column access, inclusive slicing, stacking
//		• Linear solves: Gauss-Jordan and Crout LU, both with pivoting
//		• Finite-difference Jacobians
//		• Newton-Raphson with a choice of linear strategy and per-step hooks
//		• A catalog of reference systems (catenary, CSTR, ...)
//
// ✨ Why use it?
//
//   - Explicit outcomes – Converged vs MaxIterationsReached on the Result
//   - No hidden mutation – solvers pivot on private copies
//   - Observable – OnIteration hook with residual norm and condition number
//   - gonum interop – ToGonum / FromGonum at the matrix boundary
//
// Everything is organized under these subpackages:
//
//	matrix/    — Dense type, sentinel errors, validators, facade constructors
//	linsolve/  — GaussJordan and Crout strategies, substitution, Cond
//	system/    — EquationSystem: ordered scalar functions + start vector
//	jacobian/  — forward-difference Jacobian builder
//	newton/    — Newton-Raphson loop, options, Result
//	catalog/   — named test systems
//	cmd/nrsolve — command-line runner with gcfg configuration
//	examples/  — runnable scenarios
//
// Quick example:
//
//	sys, _ := system.New([]system.Func{
//		func(v []float64) float64 { return v[1] - math.Cosh(v[0]/2) },
//		func(v []float64) float64 { return 25*v[1]*v[1] + 9*v[0]*v[0] - 225 },
//	}, []float64{2.5, 2})
//	res, err := newton.Solve(sys, newton.WithStrategy(newton.LU))
//	// res.X ≈ [3.031155, 2.385866], res.State == newton.Converged
//
//	go get github.com/katalvlaran/nonlinear
package nonlinear
