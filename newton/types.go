// SPDX-License-Identifier: MIT
package newton

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/nonlinear/linsolve"
)

// Sentinel errors for Newton-Raphson execution.
var (
	// ErrNotConverged is reported by Result.Err when the iteration budget ran
	// out before the error sum dropped below the tolerance.
	ErrNotConverged = errors.New("newton: maximum iterations reached without convergence")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("newton: invalid option supplied")

	// ErrUnknownStrategy is returned by ParseStrategy for an unrecognized name.
	ErrUnknownStrategy = errors.New("newton: unknown strategy")
)

// Defaults. Each With* option documents its admissible range.
const (
	DefaultTolerance     = 1e-6
	DefaultMaxIterations = 100
	DefaultStrategy      = GaussJordan
)

// MachineEpsilon is the float64 spacing at 1.0 (2⁻⁵²). A variable whose
// magnitude is at or below it contributes its absolute change to the error
// sum instead of a relative one.
const MachineEpsilon = 0x1p-52

// State is the phase of a Newton-Raphson run.
//
//	Iterating → Converged
//	Iterating → MaxIterationsReached
type State int

const (
	// Iterating: the loop is still running. Only observed from hooks.
	Iterating State = iota

	// Converged: the error sum dropped below the tolerance.
	Converged

	// MaxIterationsReached: the iteration budget was exhausted.
	MaxIterationsReached
)

// String implements fmt.Stringer.
func (s State) String() string {
	switch s {
	case Iterating:
		return "iterating"
	case Converged:
		return "converged"
	case MaxIterationsReached:
		return "max-iterations-reached"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Strategy selects how the correction Δx is obtained from J·Δx = −F(x).
//
//   - GaussJordan: eliminate on the augmented [J | −F] and read Δx off the
//     last column.
//   - LU: Crout-factor J, build J⁻¹ column by column and take Δx = J⁻¹·(−F).
//     Costs more than a direct solve; kept because it exposes J⁻¹.
type Strategy int

const (
	// GaussJordan solves the augmented system directly.
	GaussJordan Strategy = iota

	// LU inverts the Jacobian through a Crout decomposition.
	LU
)

// String implements fmt.Stringer.
func (s Strategy) String() string {
	switch s {
	case GaussJordan:
		return "gauss-jordan"
	case LU:
		return "lu"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// ParseStrategy maps a config name to a Strategy. Names are case-insensitive;
// "" selects DefaultStrategy, "crout" is accepted for LU.
func ParseStrategy(s string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "gauss-jordan", "gaussjordan", "gj":
		return GaussJordan, nil
	case "lu", "crout":
		return LU, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownStrategy, s)
	}
}

// Option configures Solve via functional arguments.
// If an Option is invalid (e.g. a negative tolerance), it is recorded
// internally and surfaced as ErrOptionViolation when Solve is invoked.
type Option func(*Options)

// Options holds parameters and callbacks for a Newton-Raphson run.
type Options struct {
	// Strategy picks the linear solve for each correction step.
	Strategy Strategy

	// Tolerance bounds the error sum Σ eᵢ that counts as converged.
	Tolerance float64

	// MaxIterations is the iteration budget (≥ 1).
	MaxIterations int

	// Step is the forward-difference perturbation passed to jacobian.Build.
	// Zero means jacobian.DefaultStep.
	Step float64

	// Pivot is the pivot policy for both strategies.
	Pivot linsolve.Pivot

	// OnIteration is called after every update. If it returns an error,
	// Solve aborts and propagates that error.
	OnIteration func(it Iteration) error

	// ConditionEstimate fills Iteration.Cond with the 2-norm condition
	// number of the Jacobian (one SVD per iteration).
	ConditionEstimate bool

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with:
//   - Strategy GaussJordan, partial pivoting
//   - Tolerance 1e-6, MaxIterations 100
//   - the jacobian package's default step
//   - a no-op OnIteration, no condition estimate.
func DefaultOptions() Options {
	return Options{
		Strategy:      DefaultStrategy,
		Tolerance:     DefaultTolerance,
		MaxIterations: DefaultMaxIterations,
		Pivot:         linsolve.PartialPivot,
		OnIteration:   func(Iteration) error { return nil },
	}
}

// WithStrategy selects GaussJordan or LU.
func WithStrategy(s Strategy) Option {
	return func(o *Options) {
		if s != GaussJordan && s != LU {
			o.err = fmt.Errorf("%w: unknown strategy %d", ErrOptionViolation, int(s))
			return
		}
		o.Strategy = s
	}
}

// WithTolerance sets the convergence threshold on Σ eᵢ.
//
//	tol > 0 and finite: accepted
//	otherwise:          ErrOptionViolation
func WithTolerance(tol float64) Option {
	return func(o *Options) {
		if math.IsNaN(tol) || math.IsInf(tol, 0) || tol <= 0 {
			o.err = fmt.Errorf("%w: tolerance must be finite and > 0 (%v)", ErrOptionViolation, tol)
			return
		}
		o.Tolerance = tol
	}
}

// WithMaxIterations sets the iteration budget.
//
//	n ≥ 1: accepted
//	n < 1: ErrOptionViolation
func WithMaxIterations(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: MaxIterations must be ≥ 1 (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxIterations = n
	}
}

// WithStep overrides the finite-difference step h.
func WithStep(h float64) Option {
	return func(o *Options) {
		if math.IsNaN(h) || math.IsInf(h, 0) || h <= 0 {
			o.err = fmt.Errorf("%w: step must be finite and > 0 (%v)", ErrOptionViolation, h)
			return
		}
		o.Step = h
	}
}

// WithPivot sets the pivot policy of the linear solves.
func WithPivot(p linsolve.Pivot) Option {
	return func(o *Options) {
		if p != linsolve.PartialPivot && p != linsolve.FirstNonZero {
			o.err = fmt.Errorf("%w: %v", ErrOptionViolation, p)
			return
		}
		o.Pivot = p
	}
}

// WithOnIteration registers a per-iteration hook; returning an error from
// it stops the run.
func WithOnIteration(fn func(it Iteration) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnIteration = fn
		}
	}
}

// WithConditionEstimate enables Iteration.Cond.
func WithConditionEstimate() Option {
	return func(o *Options) {
		o.ConditionEstimate = true
	}
}

// Iteration is the snapshot handed to the OnIteration hook. Slices are
// copies owned by the hook.
type Iteration struct {
	K            int       // 1-based iteration number
	X            []float64 // iterate after the update
	Delta        []float64 // applied correction Δx
	ErrorSum     float64   // Σ eᵢ for this step
	ResidualNorm float64   // ‖F(x)‖₂ at the iterate the Jacobian was built on
	Cond         float64   // 2-norm condition of J; 0 unless enabled
	State        State     // Iterating, or the terminal state on the last call
}

// Result is the outcome of a Newton-Raphson run.
type Result struct {
	X            []float64 // final iterate
	Iterations   int       // iterations performed
	State        State     // Converged or MaxIterationsReached
	ErrorSum     float64   // Σ eᵢ of the last step
	ResidualNorm float64   // ‖F(x)‖₂ at the last Jacobian point
	Strategy     Strategy
}

// Converged reports whether the run met the tolerance.
func (r *Result) Converged() bool { return r != nil && r.State == Converged }

// Err returns nil for a converged run and ErrNotConverged otherwise.
func (r *Result) Err() error {
	if r.Converged() {
		return nil
	}
	if r == nil {
		return ErrNotConverged
	}

	return fmt.Errorf("%w after %d iterations (error sum %g)", ErrNotConverged, r.Iterations, r.ErrorSum)
}
