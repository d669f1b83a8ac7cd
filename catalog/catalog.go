// SPDX-License-Identifier: MIT

// Package catalog ships named nonlinear test systems for demos, examples and
// regression tests.
//
//	catenary     y = cosh(x/2) intersected with the ellipse 25y² + 9x² = 225
//	quadratic5   five coupled sums of squares
//	cstr7        steady state of a non-isothermal CSTR with five reactions
//	no-real-root x² + 1 = 0, which Newton never satisfies over ℝ
package catalog

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/nonlinear/system"
)

// ErrUnknownProblem is returned by Lookup for an unregistered name.
var ErrUnknownProblem = errors.New("catalog: unknown problem")

// Problem is a named system together with its conventional start vector.
type Problem struct {
	Name        string
	Description string
	Funcs       []system.Func
	Start       []float64
}

// System builds a fresh EquationSystem from the problem.
func (p Problem) System() (*system.EquationSystem, error) {
	sys, err := system.New(p.Funcs, p.Start)
	if err != nil {
		return nil, fmt.Errorf("catalog %q: %w", p.Name, err)
	}

	return sys, nil
}

var registry = map[string]func() Problem{
	"catenary":     Catenary,
	"quadratic5":   Quadratic5,
	"cstr7":        CSTR7,
	"no-real-root": NoRealRoot,
}

// Names lists the registered problems in lexical order.
func Names() []string {
	out := make([]string, 0, len(registry))
	for name := range registry {
		out = append(out, name)
	}
	sort.Strings(out)

	return out
}

// Lookup returns the problem registered under name.
func Lookup(name string) (Problem, error) {
	ctor, ok := registry[name]
	if !ok {
		return Problem{}, fmt.Errorf("%w: %q", ErrUnknownProblem, name)
	}

	return ctor(), nil
}

// Catenary intersects y = ½(e^{x/2} + e^{−x/2}) with 25y² + 9x² = 225,
// starting at (2.5, 2). Root near (3.031155, 2.385866).
func Catenary() Problem {
	return Problem{
		Name:        "catenary",
		Description: "catenary y = cosh(x/2) against the ellipse 25y² + 9x² = 225",
		Funcs: []system.Func{
			func(v []float64) float64 { return v[1] - 0.5*(math.Exp(v[0]/2)+math.Exp(-v[0]/2)) },
			func(v []float64) float64 { return 25*v[1]*v[1] + 9*v[0]*v[0] - 225 },
		},
		Start: []float64{2.5, 2},
	}
}

// Quadratic5 is the chain x₀²+x₁²=4, x₀²+x₂²=9, x₁²+x₃²=16, x₂²+x₄²=25,
// x₃²+x₀²=20 from (1, 2, 0.7, 3, 1.2). Its real root has x₁ = 0, where the
// Jacobian is singular, so convergence there is linear rather than quadratic.
func Quadratic5() Problem {
	return Problem{
		Name:        "quadratic5",
		Description: "five coupled sums of squares",
		Funcs: []system.Func{
			func(v []float64) float64 { return v[0]*v[0] + v[1]*v[1] - 4 },
			func(v []float64) float64 { return v[0]*v[0] + v[2]*v[2] - 9 },
			func(v []float64) float64 { return v[1]*v[1] + v[3]*v[3] - 16 },
			func(v []float64) float64 { return v[2]*v[2] + v[4]*v[4] - 25 },
			func(v []float64) float64 { return v[3]*v[3] + v[0]*v[0] - 20 },
		},
		Start: []float64{1, 2, 0.7, 3, 1.2},
	}
}

// CSTR parameters: reactor volume V [L], feed concentration Cao [mol/L],
// volumetric flow vo [L/s], feed temperature To [K], density rho, heat
// capacity Cp, heat-transfer coefficient UA and the gas constant R.
const (
	cstrV   = 100.0
	cstrCao = 5.0
	cstrVo  = 10.0
	cstrTo  = 300.0
	cstrRho = 1.0
	cstrCp  = 4200.0
	cstrUA  = 10000.0
	cstrR   = 8.314
)

// Pre-exponential factors, activation energies [J/mol] and reaction
// enthalpies [J/mol] of reactions 1..5.
var (
	cstrK0 = [5]float64{5, 3, 1, 0.5, 0.2}
	cstrEa = [5]float64{50000, 60000, 70000, 80000, 90000}
	cstrDH = [5]float64{-40000, -30000, -50000, -20000, -60000}
)

// cstrRates returns the five reaction rates at the state x, where x[6] is
// the temperature and x[0..5] are the concentrations of A..F:
//
//	r1 = k1·A   r2 = k2·B   r3 = k3·A·B   r4 = k4·C·D   r5 = k5·A·D
//
// with kᵢ = k0ᵢ·exp(−Eaᵢ / (R·T)).
func cstrRates(x []float64) [5]float64 {
	var k [5]float64
	for i := range k {
		k[i] = cstrK0[i] * math.Exp(-cstrEa[i]/(cstrR*x[6]))
	}

	return [5]float64{
		k[0] * x[0],
		k[1] * x[1],
		k[2] * x[0] * x[1],
		k[3] * x[2] * x[3],
		k[4] * x[0] * x[3],
	}
}

// CSTR7 is the steady-state mole and energy balance of a continuous stirred
// tank with reactions A→B, B→C, A+B→D, C+D→E, A+D→F. Unknowns are the six
// outlet concentrations and the temperature; start (2, 1, 0.5, 0.2, 0.1, 0.1, 350).
// From that start Newton settles on the cold branch: A ≈ Cao, T ≈ To.
func CSTR7() Problem {
	return Problem{
		Name:        "cstr7",
		Description: "non-isothermal CSTR, five reactions, seven unknowns",
		Funcs: []system.Func{
			func(x []float64) float64 {
				r := cstrRates(x)
				return cstrVo*(cstrCao-x[0]) - cstrV*(r[0]+r[2]+r[4])
			},
			func(x []float64) float64 {
				r := cstrRates(x)
				return -cstrVo*x[1] + cstrV*(r[0]-r[1]-r[2])
			},
			func(x []float64) float64 {
				r := cstrRates(x)
				return -cstrVo*x[2] + cstrV*(r[1]-r[3])
			},
			func(x []float64) float64 {
				r := cstrRates(x)
				return -cstrVo*x[3] + cstrV*(r[2]-r[3]-r[4])
			},
			func(x []float64) float64 {
				r := cstrRates(x)
				return -cstrVo*x[4] + cstrV*r[3]
			},
			func(x []float64) float64 {
				r := cstrRates(x)
				return -cstrVo*x[5] + cstrV*r[4]
			},
			func(x []float64) float64 {
				r := cstrRates(x)
				var heat float64
				for i := range r {
					heat += r[i] * cstrDH[i]
				}
				return cstrVo*cstrRho*cstrCp*(cstrTo-x[6]) + cstrV*heat - cstrUA*(x[6]-cstrTo)
			},
		},
		Start: []float64{2, 1, 0.5, 0.2, 0.1, 0.1, 350},
	}
}

// NoRealRoot is x² + 1 = 0 from x = 0.5. Newton oscillates forever; it is
// the canonical MaxIterationsReached case.
func NoRealRoot() Problem {
	return Problem{
		Name:        "no-real-root",
		Description: "x² + 1 = 0",
		Funcs: []system.Func{
			func(v []float64) float64 { return v[0]*v[0] + 1 },
		},
		Start: []float64{0.5},
	}
}
