// Package glossa is the host-facing facade over the ΓΛΩΣΣΑ lexer, parser,
// and interpreter: a single Run entry point a CLI, test harness, or future
// GUI can call without touching internal packages directly.
package glossa

import (
	"golang.org/x/text/unicode/norm"

	"github.com/papagiannakis/glossa/internal/ast"
	"github.com/papagiannakis/glossa/internal/errors"
	"github.com/papagiannakis/glossa/internal/interp"
	"github.com/papagiannakis/glossa/internal/lexer"
	"github.com/papagiannakis/glossa/internal/parser"
)

// IO is the two-capability contract a host supplies: where ΓΡΑΨΕ writes and
// where ΔΙΑΒΑΣΕ reads from.
type IO interface {
	interp.OutputSink
	interp.InputSource
}

// Debugger is the cooperative before/after hook invoked around every
// statement. It is a re-export of interp.Debugger so callers never need to
// import the internal package directly.
type Debugger = interp.Debugger

// RunConfig carries the host-supplied execution options: whether a debugger
// is attached is conveyed through the Debugger parameter of Run itself, so
// RunConfig only holds flags that have no natural home as a parameter.
type RunConfig struct {
	// Trace requests a best-effort execution trace on the host's chosen
	// channel; the interpreter itself has no notion of tracing, so a host
	// wanting a trace attaches a Debugger that logs on every Before call.
	Trace bool
}

// Result is the outcome of one Run: the fatal error that unwound execution,
// or nil on normal completion.
type Result struct {
	Err *errors.GlossaError
}

// Run normalizes, tokenizes, parses, and interprets source, wiring out/in as
// the program's ΓΡΑΨΕ/ΔΙΑΒΑΣΕ capabilities and debugger (if non-nil) as its
// before/after hook. Unicode normalization happens exactly once here, before
// the source ever reaches the tokenizer (spec §9): the tokenizer itself
// assumes already-normalized input.
func Run(source string, io IO, debugger Debugger, _ RunConfig) Result {
	normalized := norm.NFC.String(source)

	l := lexer.New(normalized)
	p := parser.New(l)
	program, parseErr := p.ParseProgram()
	if parseErr != nil {
		return Result{Err: parseErr}
	}
	if len(l.Errors()) > 0 {
		first := l.Errors()[0]
		return Result{Err: errors.New(errors.Lexical, first.Line, "%s", first.Message)}
	}

	interpreter := interp.New(io, io, debugger)
	return Result{Err: interpreter.Run(program)}
}

// Parse normalizes and parses source without executing it, for hosts that
// only want the AST (e.g. `glossa parse`).
func Parse(source string) (*ast.Program, *errors.GlossaError) {
	normalized := norm.NFC.String(source)
	l := lexer.New(normalized)
	p := parser.New(l)
	program, err := p.ParseProgram()
	if err != nil {
		return nil, err
	}
	if len(l.Errors()) > 0 {
		first := l.Errors()[0]
		return nil, errors.New(errors.Lexical, first.Line, "%s", first.Message)
	}
	return program, nil
}
