// SPDX-License-Identifier: MIT
package main

import (
	"fmt"

	"github.com/katalvlaran/nonlinear/linsolve"
	"github.com/katalvlaran/nonlinear/newton"
	"gopkg.in/gcfg.v1"
)

// Config is the INI-style run description:
//
//	[problem]
//	name = catenary
//
//	[solver]
//	strategy = lu
//	tolerance = 1e-6
//	max-iterations = 100
//	step = 1e-6
//	pivot = partial
//	condition = false
//	trace = true
type Config struct {
	Problem ProblemConfig
	Solver  SolverConfig
}

// ProblemConfig selects a catalog system.
type ProblemConfig struct {
	Name string
}

// SolverConfig mirrors the newton options.
type SolverConfig struct {
	Strategy      string
	Tolerance     float64
	MaxIterations int `gcfg:"max-iterations"`
	Step          float64
	Pivot         string
	Condition     bool
	Trace         bool
}

// DefaultConfig returns the values used when no file is given.
func DefaultConfig() Config {
	return Config{
		Problem: ProblemConfig{Name: "catenary"},
		Solver: SolverConfig{
			Strategy:      newton.DefaultStrategy.String(),
			Tolerance:     newton.DefaultTolerance,
			MaxIterations: newton.DefaultMaxIterations,
			Pivot:         linsolve.PartialPivot.String(),
		},
	}
}

// ReadConfig layers the file at path over DefaultConfig.
func ReadConfig(path string) (Config, error) {
	c := DefaultConfig()
	if err := gcfg.ReadFileInto(&c, path); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}

	return c, nil
}

// ParseConfig is ReadConfig for in-memory text.
func ParseConfig(text string) (Config, error) {
	c := DefaultConfig()
	if err := gcfg.ReadStringInto(&c, text); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}

	return c, nil
}

// Options translates the solver section into newton options. Range checks
// are left to the option constructors; name lookups fail here.
func (c Config) Options() ([]newton.Option, error) {
	s, err := newton.ParseStrategy(c.Solver.Strategy)
	if err != nil {
		return nil, err
	}
	p, err := linsolve.ParsePivot(c.Solver.Pivot)
	if err != nil {
		return nil, err
	}
	opts := []newton.Option{
		newton.WithStrategy(s),
		newton.WithPivot(p),
		newton.WithTolerance(c.Solver.Tolerance),
		newton.WithMaxIterations(c.Solver.MaxIterations),
	}
	if c.Solver.Step != 0 {
		opts = append(opts, newton.WithStep(c.Solver.Step))
	}
	if c.Solver.Condition {
		opts = append(opts, newton.WithConditionEstimate())
	}

	return opts, nil
}

const exampleConfig = `; nrsolve configuration
[problem]
; one of: catenary, cstr7, no-real-root, quadratic5
name = quadratic5

[solver]
; gauss-jordan | lu
strategy = lu
tolerance = 1e-6
max-iterations = 100
; forward-difference step, 0 for the default
step = 1e-6
; partial | first-nonzero
pivot = partial
condition = false
trace = false
`
