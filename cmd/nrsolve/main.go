// SPDX-License-Identifier: MIT

// Command nrsolve runs Newton-Raphson on one of the catalog systems and
// prints the final iterate and the iteration count.
//
//	nrsolve -problem catenary -strategy lu
//	nrsolve -config run.ini -trace
//	nrsolve -example-config > run.ini
//
// Flags override values read from -config.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/katalvlaran/nonlinear/catalog"
	"github.com/katalvlaran/nonlinear/matrix"
	"github.com/katalvlaran/nonlinear/newton"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("nrsolve: ")
	if err := run(os.Args[1:], os.Stdout); err != nil {
		log.Fatal(err)
	}
}

func run(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("nrsolve", flag.ContinueOnError)
	fs.SetOutput(out)
	var (
		configPath  = fs.String("config", "", "gcfg configuration file")
		problem     = fs.String("problem", "", "catalog problem: "+strings.Join(catalog.Names(), ", "))
		strategy    = fs.String("strategy", "", "linear solve: gauss-jordan or lu")
		tol         = fs.Float64("tol", 0, "convergence tolerance on the error sum")
		maxIter     = fs.Int("max-iter", 0, "iteration budget")
		trace       = fs.Bool("trace", false, "print every iteration")
		list        = fs.Bool("list", false, "list catalog problems and exit")
		printConfig = fs.Bool("example-config", false, "print an example configuration file and exit")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}

	switch {
	case *printConfig:
		_, err := io.WriteString(out, exampleConfig)
		return err
	case *list:
		for _, name := range catalog.Names() {
			p, err := catalog.Lookup(name)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "%-14s %s\n", name, p.Description)
		}
		return nil
	}

	cfg := DefaultConfig()
	if *configPath != "" {
		var err error
		if cfg, err = ReadConfig(*configPath); err != nil {
			return err
		}
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "problem":
			cfg.Problem.Name = *problem
		case "strategy":
			cfg.Solver.Strategy = *strategy
		case "tol":
			cfg.Solver.Tolerance = *tol
		case "max-iter":
			cfg.Solver.MaxIterations = *maxIter
		case "trace":
			cfg.Solver.Trace = *trace
		}
	})

	p, err := catalog.Lookup(cfg.Problem.Name)
	if err != nil {
		return err
	}
	sys, err := p.System()
	if err != nil {
		return err
	}
	opts, err := cfg.Options()
	if err != nil {
		return err
	}
	if cfg.Solver.Trace {
		opts = append(opts, newton.WithOnIteration(func(it newton.Iteration) error {
			fmt.Fprintf(out, "k=%-3d x=%s errsum=%.3e |F|=%.3e", it.K, matrix.FormatVector(it.X), it.ErrorSum, it.ResidualNorm)
			if cfg.Solver.Condition {
				fmt.Fprintf(out, " cond=%.3e", it.Cond)
			}
			fmt.Fprintln(out)
			return nil
		}))
	}

	res, err := newton.Solve(sys, opts...)
	if err != nil {
		return fmt.Errorf("%s: %w", p.Name, err)
	}
	fmt.Fprintf(out, "problem:    %s\n", p.Name)
	fmt.Fprintf(out, "strategy:   %v\n", res.Strategy)
	fmt.Fprintf(out, "state:      %v\n", res.State)
	fmt.Fprintf(out, "iterations: %d\n", res.Iterations)
	fmt.Fprintf(out, "x:          %s\n", matrix.FormatVector(res.X))
	if err = res.Err(); err != nil {
		log.Print(err)
	}

	return nil
}
