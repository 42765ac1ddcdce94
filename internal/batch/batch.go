// Package batch drives many independent compilations concurrently.
// §5 permits distinct compilations to run in parallel as independent
// instances with no coordination; this package is the only place in
// the module where that actually happens. Each Unit gets its own
// Lexer, Parser, Analyzer, Generator, and Optimizer run — no state is
// shared between goroutines beyond the Result slice itself.
package batch

import (
	"context"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"cxxc/internal/cerr"
	"cxxc/internal/ir"
	"cxxc/internal/lexer"
	"cxxc/internal/optimizer"
	"cxxc/internal/parser"
	"cxxc/internal/semantic"
)

// Unit is one independent compilation input.
type Unit struct {
	Filename string
	Source   string
	// OptimizeLevel is the optimization level (0-3) applied to this
	// unit's IR; see internal/optimizer.Optimize.
	OptimizeLevel int
}

// Result is one compiled unit's outcome. ID is a fresh correlation
// identifier per compilation; CompileAll returns Results in the same
// order as its units, whatever order the compilations finish in.
type Result struct {
	ID       uuid.UUID
	Unit     Unit
	Program  *ir.Program
	Errors   []*cerr.Error
	LexErr   error
	ParseErr error
}

// Ok reports whether unit compiled with no lexer, parser, or semantic
// errors.
func (r *Result) Ok() bool {
	return r.LexErr == nil && r.ParseErr == nil && len(r.Errors) == 0
}

// CompileAll compiles every unit concurrently, bounded by limit
// simultaneous compilations (limit <= 0 means unlimited, per
// errgroup.SetLimit's convention). It returns one Result per unit, in
// the same order as units, or an error only if ctx is canceled.
func CompileAll(ctx context.Context, units []Unit, limit int) ([]Result, error) {
	results := make([]Result, len(units))

	g, ctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}

	for i, unit := range units {
		i, unit := i, unit
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = compileOne(unit)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}

func compileOne(unit Unit) Result {
	res := Result{ID: uuid.New(), Unit: unit}

	toks, err := lexer.New(unit.Source, unit.Filename).Tokenize()
	if err != nil {
		res.LexErr = err
		return res
	}

	prog, err := parser.New(toks, unit.Filename).ParseProgram()
	if err != nil {
		res.ParseErr = err
		return res
	}

	a := semantic.New(unit.Filename)
	a.Analyze(prog)
	res.Errors = a.Errors
	if len(res.Errors) > 0 {
		return res
	}

	irProg := ir.Generate(prog)
	optimizer.Optimize(irProg, unit.OptimizeLevel)
	res.Program = irProg
	return res
}
