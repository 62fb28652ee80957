package interp

import (
	"github.com/papagiannakis/glossa/internal/ast"
	"github.com/papagiannakis/glossa/internal/builtins"
	"github.com/papagiannakis/glossa/internal/errors"
	"github.com/papagiannakis/glossa/internal/interp/runtime"
)

// maxCallDepth bounds subprogram call nesting, matching the teacher's own
// DefaultMaxRecursionDepth: a function with no base case must report a
// runtime error, not crash the process on Go's own stack overflow.
const maxCallDepth = 1024

// callProcedure resolves and invokes a ΚΑΛΕΣΕ statement. Spec §4.5: built-in
// names are functions only, never callable as procedures.
func (i *Interpreter) callProcedure(name string, args []ast.Expression, env *runtime.Environment, line int) *errors.GlossaError {
	if builtins.IsBuiltin(name) {
		return errors.New(errors.SemanticBind, line, "το %s είναι συνάρτηση, όχι διαδικασία", name)
	}
	sub, ok := i.procedures[name]
	if !ok {
		if _, isFunc := i.functions[name]; isFunc {
			return errors.New(errors.SemanticBind, line, "το %s είναι συνάρτηση, όχι διαδικασία", name)
		}
		return errors.New(errors.SemanticBind, line, "άγνωστη διαδικασία: %s", name)
	}

	frame, err := i.bindArgs(sub, args, env, line)
	if err != nil {
		return err
	}

	if err := i.enterCall(name, line); err != nil {
		return err
	}
	defer i.leaveCall()

	sig, err := i.execList(sub.Body, frame)
	if err != nil {
		return err
	}
	if sig != nil {
		return errors.New(errors.RuntimeType, line, "η διαδικασία %s δεν μπορεί να επιστρέψει τιμή", name)
	}
	return nil
}

// enterCall increments the call depth, rejecting the call outright once
// maxCallDepth is reached, before any of the subprogram's body ever runs.
func (i *Interpreter) enterCall(name string, line int) *errors.GlossaError {
	if i.depth >= maxCallDepth {
		return errors.New(errors.RuntimeRecursion, line, "υπέρβαση μέγιστου βάθους αναδρομής (%d) στην κλήση %s", maxCallDepth, name)
	}
	i.depth++
	return nil
}

func (i *Interpreter) leaveCall() {
	i.depth--
}

// callFunction resolves and invokes a function call in expression position.
// Built-ins are checked first and shadow any user-declared subprogram of the
// same name (spec §4.5).
func (i *Interpreter) callFunction(name string, args []ast.Expression, env *runtime.Environment, line int) (runtime.Value, *errors.GlossaError) {
	if fn, ok := builtins.Lookup(name); ok {
		if len(args) != 1 {
			return nil, errors.New(errors.SemanticBind, line, "η %s δέχεται ακριβώς ένα όρισμα, δόθηκαν %d", name, len(args))
		}
		arg, err := i.eval(args[0], env)
		if err != nil {
			return nil, err
		}
		return fn(arg, line)
	}

	sub, ok := i.functions[name]
	if !ok {
		if _, isProc := i.procedures[name]; isProc {
			return nil, errors.New(errors.SemanticBind, line, "το %s είναι διαδικασία, όχι συνάρτηση", name)
		}
		return nil, errors.New(errors.SemanticBind, line, "άγνωστη συνάρτηση: %s", name)
	}

	frame, err := i.bindArgs(sub, args, env, line)
	if err != nil {
		return nil, err
	}

	if err := i.enterCall(name, line); err != nil {
		return nil, err
	}
	defer i.leaveCall()

	sig, err := i.execList(sub.Body, frame)
	if err != nil {
		return nil, err
	}
	if sig == nil {
		return nil, errors.New(errors.RuntimeType, line, "η συνάρτηση %s δεν επέστρεψε τιμή", name)
	}

	result, coerceErr := runtime.Coerce(sig.value, sub.ReturnType)
	if coerceErr != nil {
		return nil, errors.New(errors.RuntimeType, line, "%s", coerceErr)
	}
	return result, nil
}

// bindArgs evaluates args in the caller's frame and binds them by value into
// a fresh call frame enclosed by the global frame (spec §3/§9: scoping is
// exactly two levels deep, subprograms never nest).
func (i *Interpreter) bindArgs(sub *ast.Subprogram, args []ast.Expression, env *runtime.Environment, line int) (*runtime.Environment, *errors.GlossaError) {
	if len(args) != len(sub.Params) {
		return nil, errors.New(errors.SemanticBind, line, "το %s αναμένει %d ορίσματα, δόθηκαν %d", sub.Name, len(sub.Params), len(args))
	}

	frame := runtime.NewEnclosedEnvironment(i.global)
	seen := make(map[string]bool, len(sub.Params))
	for n, param := range sub.Params {
		if seen[param.Name] {
			return nil, errors.New(errors.SemanticBind, line, "διπλή δήλωση παραμέτρου: %s", param.Name)
		}
		seen[param.Name] = true

		value, err := i.eval(args[n], env)
		if err != nil {
			return nil, err
		}
		coerced, coerceErr := runtime.Coerce(value, param.Type)
		if coerceErr != nil {
			return nil, errors.New(errors.RuntimeType, args[n].Line(), "όρισμα %s: %s", param.Name, coerceErr)
		}
		frame.Declare(param.Name, param.Type)
		if assignErr := frame.Assign(param.Name, coerced); assignErr != nil {
			return nil, errors.New(errors.RuntimeType, args[n].Line(), "%s", assignErr)
		}
	}

	if err := declareVars(frame, sub.Variables, seen); err != nil {
		return nil, err
	}
	return frame, nil
}
