package interp

import (
	"github.com/papagiannakis/glossa/internal/ast"
	"github.com/papagiannakis/glossa/internal/errors"
	"github.com/papagiannakis/glossa/internal/interp/runtime"
)

// returnSignal is the internal, non-error control signal ΕΠΙΣΤΡΕΨΕ raises
// (spec §9): it carries the coerced return value up through enclosing
// statement lists until the matching function-call site catches it. It is
// deliberately not an *errors.GlossaError — propagation policy (spec §7)
// treats it as the one signal caught short of the top.
type returnSignal struct {
	value runtime.Value
}

// Interpreter is the tree-walking evaluator: one global frame, a shared
// callable table (procedures and functions, spec §3: "flat two-level
// lexical scoping"), and the IO/debugger capabilities supplied at Run time.
type Interpreter struct {
	out OutputSink
	in  InputSource
	dbg Debugger

	global     *runtime.Environment
	procedures map[string]*ast.Subprogram
	functions  map[string]*ast.Subprogram
	constants  map[string]bool

	// depth counts the current number of nested subprogram calls, checked
	// against maxCallDepth on every call (calls.go) so that a function with
	// no base case reports a runtime error instead of crashing the process
	// on Go's own stack overflow.
	depth int
}

// New creates an Interpreter. debugger may be nil; when nil, no
// before/after hook is invoked and execution never pauses (spec §4.4: the
// hook is an optional collaborator).
func New(out OutputSink, in InputSource, debugger Debugger) *Interpreter {
	return &Interpreter{
		out:        out,
		in:         in,
		dbg:        debugger,
		procedures: make(map[string]*ast.Subprogram),
		functions:  make(map[string]*ast.Subprogram),
		constants:  make(map[string]bool),
	}
}

// Run builds the global environment from program's declarations, registers
// its subprograms, and executes the main body (spec §4.4). It returns nil
// on normal completion, or the single error that unwound execution.
func (i *Interpreter) Run(program *ast.Program) *errors.GlossaError {
	i.global = runtime.NewEnvironment()

	// names tracks every constant, variable, procedure, and function name
	// declared so far in the global frame, so a collision across any of
	// those categories is caught at bind time (spec: "names across
	// variables, procedures, and functions are unique in their frame")
	// instead of silently overwriting an earlier declaration.
	names := make(map[string]bool)

	constNames := make(map[string]bool)
	for _, c := range program.Constants {
		if names[c.Name] {
			return errors.New(errors.SemanticBind, c.SourceLine, "διπλή δήλωση: %s", c.Name)
		}
		names[c.Name] = true

		value, err := i.eval(c.Value, i.global)
		if err != nil {
			return err
		}
		i.global.Declare(c.Name, value.Type())
		if err := i.global.Assign(c.Name, value); err != nil {
			return errors.New(errors.SemanticBind, c.SourceLine, "%s", err)
		}
		constNames[c.Name] = true
	}

	if err := declareVars(i.global, program.Variables, names); err != nil {
		return err
	}

	for _, sub := range program.Subprograms {
		if names[sub.Name] {
			return errors.New(errors.SemanticBind, sub.SourceLine, "διπλή δήλωση: %s", sub.Name)
		}
		names[sub.Name] = true

		if sub.Kind == ast.FunctionKind {
			i.functions[sub.Name] = sub
		} else {
			i.procedures[sub.Name] = sub
		}
	}

	i.constants = constNames

	sig, err := i.execList(program.Body, i.global)
	if err != nil {
		return err
	}
	if sig != nil {
		return errors.New(errors.RuntimeType, 0, "το ΕΠΙΣΤΡΕΨΕ χρησιμοποιήθηκε εκτός συνάρτησης")
	}
	return nil
}

// declareVars installs every declared variable (scalar or array) into env,
// zero-initialized per spec §3. seen tracks every name already declared in
// this frame (constants, earlier variables, or — when called from bindArgs
// — parameters); a name reappearing here is a duplicate declaration, a
// SemanticBind error rather than a silent overwrite of the earlier slot.
func declareVars(env *runtime.Environment, decls []*ast.VarDecl, seen map[string]bool) *errors.GlossaError {
	for _, decl := range decls {
		for _, item := range decl.Items {
			if seen[item.Name] {
				return errors.New(errors.SemanticBind, decl.Line(), "διπλή δήλωση: %s", item.Name)
			}
			seen[item.Name] = true

			if len(item.Bounds) == 0 {
				env.Declare(item.Name, decl.Type)
				continue
			}
			for _, b := range item.Bounds {
				if b < 1 {
					return errors.New(errors.SemanticBind, decl.Line(), "το άνω όριο πίνακα %s πρέπει να είναι τουλάχιστον 1", item.Name)
				}
			}
			env.DeclareArray(item.Name, decl.Type, item.Bounds)
		}
	}
	return nil
}

// execList executes stmts in order, invoking the debugger hook (if any)
// around each one, and stops early if a return signal or error surfaces.
func (i *Interpreter) execList(stmts []ast.Statement, env *runtime.Environment) (*returnSignal, *errors.GlossaError) {
	for _, stmt := range stmts {
		if i.dbg != nil {
			if hookErr := i.dbg.Before(stmt, newSnapshot(env)); hookErr != nil {
				return nil, asGlossaError(hookErr, stmt.Line())
			}
		}

		sig, err := i.execStmt(stmt, env)
		if err != nil {
			return nil, err
		}

		if i.dbg != nil {
			if hookErr := i.dbg.After(stmt, newSnapshot(env)); hookErr != nil {
				return nil, asGlossaError(hookErr, stmt.Line())
			}
		}

		if sig != nil {
			return sig, nil
		}
	}
	return nil, nil
}

func asGlossaError(err error, line int) *errors.GlossaError {
	if ge, ok := err.(*errors.GlossaError); ok {
		return ge
	}
	return errors.New(errors.Control, line, "%s", err)
}

// execStmt dispatches over the closed set of statement variants (spec §3),
// making a missing case a compile-time-visible gap rather than a silent
// no-op (spec §9).
func (i *Interpreter) execStmt(stmt ast.Statement, env *runtime.Environment) (*returnSignal, *errors.GlossaError) {
	switch s := stmt.(type) {
	case *ast.AssignStmt:
		return nil, i.execAssign(s, env)
	case *ast.IfStmt:
		return i.execIf(s, env)
	case *ast.WhileStmt:
		return i.execWhile(s, env)
	case *ast.RepeatStmt:
		return i.execRepeat(s, env)
	case *ast.ForStmt:
		return i.execFor(s, env)
	case *ast.SelectStmt:
		return i.execSelect(s, env)
	case *ast.ReadStmt:
		return nil, i.execRead(s, env)
	case *ast.WriteStmt:
		return nil, i.execWrite(s, env)
	case *ast.CallStmt:
		return nil, i.execCall(s, env)
	case *ast.ReturnStmt:
		return i.execReturn(s, env)
	default:
		return nil, errors.New(errors.Syntactic, stmt.Line(), "άγνωστος τύπος εντολής")
	}
}
