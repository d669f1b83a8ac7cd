// SPDX-License-Identifier: MIT
package newton

import (
	"fmt"
	"math"

	"github.com/katalvlaran/nonlinear/jacobian"
	"github.com/katalvlaran/nonlinear/linsolve"
	"github.com/katalvlaran/nonlinear/matrix"
	"github.com/katalvlaran/nonlinear/system"
	"gonum.org/v1/gonum/floats"
)

const (
	opSolve = "newton.Solve"
	opStep  = "newton.step"
)

// Solver runs Newton-Raphson with a fixed option set. It holds no state
// between calls and may be reused, including concurrently on distinct systems.
type Solver struct {
	opts Options
}

// New resolves opts into a Solver.
// Errors: ErrOptionViolation wrapping the first recorded violation.
func New(opts ...Option) (*Solver, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.err != nil {
		return nil, o.err
	}

	return &Solver{opts: o}, nil
}

// Options returns a copy of the resolved configuration.
func (s *Solver) Options() Options { return s.opts }

// Solve is shorthand for New(opts...) followed by (*Solver).Solve.
func Solve(sys *system.EquationSystem, opts ...Option) (*Result, error) {
	s, err := New(opts...)
	if err != nil {
		return nil, err
	}

	return s.Solve(sys)
}

// Solve iterates from sys.Start() until the error sum falls below the
// tolerance or the iteration budget is spent.
//
// Implementation:
//   - Stage 1: x ← start.
//   - Stage 2: for k = 1..MaxIterations build (J, −F(x)) and solve for Δx
//     with the configured strategy.
//   - Stage 3: x' = x + Δx; eᵢ = |x'ᵢ − xᵢ| / |xᵢ|, or |x'ᵢ − xᵢ| when
//     |xᵢ| ≤ MachineEpsilon.
//   - Stage 4: Σ eᵢ < Tolerance → Converged; k == MaxIterations →
//     MaxIterationsReached; otherwise x ← x' and repeat.
//
// Running out of iterations is not an error: the Result carries
// MaxIterationsReached and Result.Err reports ErrNotConverged.
//
// Errors:
//   - jacobian.ErrNilSystem for a nil sys.
//   - matrix.ErrNaNInf when F or a difference quotient is not finite.
//   - matrix.ErrSingular when the Jacobian cannot be solved.
//   - whatever OnIteration returns.
//
// Complexity:
//   - per iteration n + n² evaluations of the fᵢ plus O(n³) for the solve.
func (s *Solver) Solve(sys *system.EquationSystem) (*Result, error) {
	if sys == nil {
		return nil, fmt.Errorf("%s: %w", opSolve, jacobian.ErrNilSystem)
	}

	o := s.opts
	var jopts []jacobian.Option
	if o.Step > 0 {
		jopts = append(jopts, jacobian.WithStep(o.Step))
	}

	x := sys.Start()
	res := &Result{Strategy: o.Strategy, State: Iterating}
	for k := 1; k <= o.MaxIterations; k++ {
		J, negF, err := jacobian.Build(sys, x, jopts...)
		if err != nil {
			return nil, fmt.Errorf("%s: iteration %d: %w", opSolve, k, err)
		}
		delta, err := s.step(J, negF)
		if err != nil {
			return nil, fmt.Errorf("%s: iteration %d: %w", opSolve, k, err)
		}

		next := make([]float64, len(x))
		floats.AddTo(next, x, delta)

		res.Iterations = k
		res.ErrorSum = errorSum(next, x)
		res.ResidualNorm = floats.Norm(negF, 2)
		switch {
		case res.ErrorSum < o.Tolerance:
			res.State = Converged
		case k == o.MaxIterations:
			res.State = MaxIterationsReached
		}

		it := Iteration{
			K:            k,
			X:            append([]float64(nil), next...),
			Delta:        delta,
			ErrorSum:     res.ErrorSum,
			ResidualNorm: res.ResidualNorm,
			State:        res.State,
		}
		if o.ConditionEstimate {
			if it.Cond, err = linsolve.Cond(J); err != nil {
				return nil, fmt.Errorf("%s: iteration %d: %w", opSolve, k, err)
			}
		}
		if err = o.OnIteration(it); err != nil {
			return nil, err
		}

		x = next
		if res.State != Iterating {
			break
		}
	}
	res.X = x

	return res, nil
}

// step solves J·Δx = −F with the configured strategy.
func (s *Solver) step(J *matrix.Dense, negF []float64) ([]float64, error) {
	switch s.opts.Strategy {
	case LU:
		inv, err := linsolve.Crout{Pivot: s.opts.Pivot}.Invert(J)
		if err != nil {
			return nil, fmt.Errorf("%s(%v): %w", opStep, LU, err)
		}
		delta, err := matrix.MatVec(inv, negF)
		if err != nil {
			return nil, fmt.Errorf("%s(%v): %w", opStep, LU, err)
		}

		return delta, nil
	default:
		delta, err := linsolve.GaussJordan{Pivot: s.opts.Pivot}.Solve(J, negF)
		if err != nil {
			return nil, fmt.Errorf("%s(%v): %w", opStep, GaussJordan, err)
		}

		return delta, nil
	}
}

// errorSum returns Σ eᵢ between consecutive iterates.
func errorSum(next, prev []float64) float64 {
	var sum float64
	for i := range next {
		d := math.Abs(next[i] - prev[i])
		if den := math.Abs(prev[i]); den > MachineEpsilon {
			d /= den
		}
		sum += d
	}

	return sum
}
