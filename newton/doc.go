// Package newton solves square nonlinear systems F(x) = 0 by Newton-Raphson
// iteration.
//
// Each iteration builds the forward-difference Jacobian J at the current
// iterate, solves J·Δx = −F(x) and steps to x + Δx:
//
//	x ← start
//	for k = 1..MaxIterations:
//	    (J, −F) = jacobian.Build(sys, x)
//	    Δx      = solve(J, −F)          // GaussJordan or LU strategy
//	    x'      = x + Δx
//	    Σ eᵢ    = Σ |x'ᵢ − xᵢ| / |xᵢ|   // |x'ᵢ − xᵢ| when |xᵢ| ≤ 2⁻⁵²
//	    if Σ eᵢ < Tolerance: Converged
//	    x = x'
//	MaxIterationsReached
//
// Key features:
//   - two linear strategies: GaussJordan (direct) and LU (Crout inverse)
//   - explicit pivot policy passed to the linear solver
//   - terminal state on the Result instead of an error for a spent budget
//   - OnIteration hook for tracing, with an optional condition estimate
//
// Usage:
//
//	res, err := newton.Solve(sys,
//		newton.WithStrategy(newton.LU),
//		newton.WithTolerance(1e-8),
//	)
//	if err != nil {
//		// singular Jacobian, non-finite F, bad option, hook error
//	}
//	if !res.Converged() {
//		// res.Err() wraps ErrNotConverged
//	}
//
// Performance:
//   - per iteration n + n² scalar evaluations and O(n³) for the solve
//   - the LU strategy forms J⁻¹ explicitly, roughly 3× the work of
//     GaussJordan for the same step
package newton
