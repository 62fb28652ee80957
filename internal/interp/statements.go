package interp

import (
	"strings"

	"github.com/papagiannakis/glossa/internal/ast"
	"github.com/papagiannakis/glossa/internal/errors"
	"github.com/papagiannakis/glossa/internal/interp/runtime"
)

func (i *Interpreter) execAssign(s *ast.AssignStmt, env *runtime.Environment) *errors.GlossaError {
	value, err := i.eval(s.Value, env)
	if err != nil {
		return err
	}

	switch target := s.Target.(type) {
	case *ast.Identifier:
		if i.constants[target.Name] {
			return errors.New(errors.RuntimeType, s.SourceLine, "δεν είναι δυνατή η εκχώρηση στη σταθερά %s", target.Name)
		}
		if assignErr := env.Assign(target.Name, value); assignErr != nil {
			return errors.New(errors.RuntimeType, s.SourceLine, "%s", assignErr)
		}
		return nil
	case *ast.IndexExpr:
		indices, err := i.evalIndices(target.Indices, env)
		if err != nil {
			return err
		}
		if assignErr := env.AssignIndex(target.Name, indices, value); assignErr != nil {
			return indexError(s.SourceLine, assignErr)
		}
		return nil
	default:
		return errors.New(errors.Syntactic, s.SourceLine, "μη έγκυρος στόχος εκχώρησης")
	}
}

func (i *Interpreter) evalIndices(exprs []ast.Expression, env *runtime.Environment) ([]int, *errors.GlossaError) {
	indices := make([]int, len(exprs))
	for n, e := range exprs {
		v, err := i.eval(e, env)
		if err != nil {
			return nil, err
		}
		iv, ok := v.(runtime.IntegerValue)
		if !ok {
			return nil, errors.New(errors.RuntimeType, e.Line(), "ο δείκτης πίνακα πρέπει να είναι ακέραιος")
		}
		indices[n] = int(iv)
	}
	return indices, nil
}

// indexError classifies an *ArrayValue error as either an unknown-name
// (semantic) or out-of-bounds/shape (runtime bounds) failure. Both surface
// from runtime.Environment as plain errors; the prefix distinguishes them
// without a dedicated error type in the runtime package.
func indexError(line int, err error) *errors.GlossaError {
	if strings.HasPrefix(err.Error(), "άγνωστο αναγνωριστικό") {
		return errors.New(errors.SemanticBind, line, "%s", err)
	}
	return errors.New(errors.RuntimeBounds, line, "%s", err)
}

func (i *Interpreter) execIf(s *ast.IfStmt, env *runtime.Environment) (*returnSignal, *errors.GlossaError) {
	for _, branch := range s.Branches {
		cond, err := i.evalBool(branch.Cond, env)
		if err != nil {
			return nil, err
		}
		if cond {
			return i.execList(branch.Body, env)
		}
	}
	return i.execList(s.ElseBody, env)
}

func (i *Interpreter) execWhile(s *ast.WhileStmt, env *runtime.Environment) (*returnSignal, *errors.GlossaError) {
	for {
		cond, err := i.evalBool(s.Cond, env)
		if err != nil {
			return nil, err
		}
		if !cond {
			return nil, nil
		}
		sig, err := i.execList(s.Body, env)
		if err != nil || sig != nil {
			return sig, err
		}
	}
}

func (i *Interpreter) execRepeat(s *ast.RepeatStmt, env *runtime.Environment) (*returnSignal, *errors.GlossaError) {
	for {
		sig, err := i.execList(s.Body, env)
		if err != nil || sig != nil {
			return sig, err
		}
		done, err := i.evalBool(s.Cond, env)
		if err != nil {
			return nil, err
		}
		if done {
			return nil, nil
		}
	}
}

// execFor implements spec §4.4's ΓΙΑ semantics: start/end/step evaluated
// once at entry, step must be nonzero, and the loop runs while
// (step > 0 ∧ i ≤ end) ∨ (step < 0 ∧ i ≥ end).
func (i *Interpreter) execFor(s *ast.ForStmt, env *runtime.Environment) (*returnSignal, *errors.GlossaError) {
	slot, ok := env.Lookup(s.Var)
	if !ok {
		return nil, errors.New(errors.SemanticBind, s.SourceLine, "άγνωστο αναγνωριστικό: %s", s.Var)
	}
	if slot.Type != ast.INTEGER && slot.Type != ast.REAL {
		return nil, errors.New(errors.RuntimeType, s.SourceLine, "η μεταβλητή επανάληψης %s πρέπει να είναι αριθμητική", s.Var)
	}

	start, err := i.evalNumeric(s.Start, env)
	if err != nil {
		return nil, err
	}
	end, err := i.evalNumeric(s.End, env)
	if err != nil {
		return nil, err
	}
	step, err := i.evalNumeric(s.Step, env)
	if err != nil {
		return nil, err
	}
	if step == 0 {
		return nil, errors.New(errors.RuntimeBounds, s.SourceLine, "μη έγκυρο βήμα επανάληψης: το βήμα δεν μπορεί να είναι μηδέν")
	}

	assign := func(v float64) *errors.GlossaError {
		var value runtime.Value = runtime.RealValue(v)
		if slot.Type == ast.INTEGER {
			value = runtime.IntegerValue(int64(v))
		}
		if assignErr := env.Assign(s.Var, value); assignErr != nil {
			return errors.New(errors.RuntimeType, s.SourceLine, "%s", assignErr)
		}
		return nil
	}

	current := start
	for (step > 0 && current <= end) || (step < 0 && current >= end) {
		if err := assign(current); err != nil {
			return nil, err
		}
		sig, err := i.execList(s.Body, env)
		if err != nil || sig != nil {
			return sig, err
		}
		current += step
	}
	return nil, assign(current)
}

func (i *Interpreter) execSelect(s *ast.SelectStmt, env *runtime.Environment) (*returnSignal, *errors.GlossaError) {
	subject, err := i.eval(s.Subject, env)
	if err != nil {
		return nil, err
	}

	for _, c := range s.Cases {
		matched, err := i.caseMatches(c.Values, subject, env)
		if err != nil {
			return nil, err
		}
		if matched {
			return i.execList(c.Body, env)
		}
	}
	if s.HasDefault {
		return i.execList(s.Default, env)
	}
	return nil, nil
}

func (i *Interpreter) caseMatches(values []ast.CaseValue, subject runtime.Value, env *runtime.Environment) (bool, *errors.GlossaError) {
	for _, cv := range values {
		low, err := i.eval(cv.Low, env)
		if err != nil {
			return false, err
		}
		if cv.High == nil {
			if valuesEqual(subject, low) {
				return true, nil
			}
			continue
		}
		high, err := i.eval(cv.High, env)
		if err != nil {
			return false, err
		}
		if inRange(subject, low, high) {
			return true, nil
		}
	}
	return false, nil
}

func (i *Interpreter) execRead(s *ast.ReadStmt, env *runtime.Environment) *errors.GlossaError {
	for _, target := range s.Targets {
		line, ioErr := i.in.ReadLine()
		if ioErr != nil {
			return errors.New(errors.RuntimeIO, s.SourceLine, "αδυναμία ανάγνωσης εισόδου: %s", ioErr)
		}

		declaredType, err := i.targetType(target, env)
		if err != nil {
			return err
		}

		value, parseErr := parseInput(line, declaredType)
		if parseErr != nil {
			return errors.New(errors.RuntimeIO, s.SourceLine, "μη έγκυρη είσοδος: %s", parseErr)
		}

		if err := i.storeInto(target, value, env); err != nil {
			return err
		}
	}
	return nil
}

func (i *Interpreter) targetType(target ast.Expression, env *runtime.Environment) (ast.Type, *errors.GlossaError) {
	switch t := target.(type) {
	case *ast.Identifier:
		slot, ok := env.Lookup(t.Name)
		if !ok {
			return 0, errors.New(errors.SemanticBind, t.SourceLine, "άγνωστο αναγνωριστικό: %s", t.Name)
		}
		return slot.Type, nil
	case *ast.IndexExpr:
		slot, ok := env.Lookup(t.Name)
		if !ok {
			return 0, errors.New(errors.SemanticBind, t.SourceLine, "άγνωστο αναγνωριστικό: %s", t.Name)
		}
		return slot.Type, nil
	default:
		return 0, errors.New(errors.Syntactic, target.Line(), "μη έγκυρος στόχος ανάγνωσης")
	}
}

func (i *Interpreter) storeInto(target ast.Expression, value runtime.Value, env *runtime.Environment) *errors.GlossaError {
	switch t := target.(type) {
	case *ast.Identifier:
		if i.constants[t.Name] {
			return errors.New(errors.RuntimeType, t.SourceLine, "δεν είναι δυνατή η εκχώρηση στη σταθερά %s", t.Name)
		}
		if err := env.Assign(t.Name, value); err != nil {
			return errors.New(errors.RuntimeType, t.SourceLine, "%s", err)
		}
		return nil
	case *ast.IndexExpr:
		indices, err := i.evalIndices(t.Indices, env)
		if err != nil {
			return err
		}
		if assignErr := env.AssignIndex(t.Name, indices, value); assignErr != nil {
			return indexError(t.SourceLine, assignErr)
		}
		return nil
	default:
		return errors.New(errors.Syntactic, target.Line(), "μη έγκυρος στόχος ανάγνωσης")
	}
}

func (i *Interpreter) execWrite(s *ast.WriteStmt, env *runtime.Environment) *errors.GlossaError {
	parts := make([]string, len(s.Values))
	for n, expr := range s.Values {
		v, err := i.eval(expr, env)
		if err != nil {
			return err
		}
		parts[n] = formatValue(v)
	}
	i.out.WriteLine(joinSpace(parts))
	return nil
}

func (i *Interpreter) execCall(s *ast.CallStmt, env *runtime.Environment) *errors.GlossaError {
	return i.callProcedure(s.Name, s.Args, env, s.SourceLine)
}

func (i *Interpreter) execReturn(s *ast.ReturnStmt, env *runtime.Environment) (*returnSignal, *errors.GlossaError) {
	value, err := i.eval(s.Value, env)
	if err != nil {
		return nil, err
	}
	return &returnSignal{value: value}, nil
}
