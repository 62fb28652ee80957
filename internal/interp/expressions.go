package interp

import (
	"strings"

	"github.com/papagiannakis/glossa/internal/ast"
	"github.com/papagiannakis/glossa/internal/errors"
	"github.com/papagiannakis/glossa/internal/interp/runtime"
)

// eval dispatches over the closed set of expression variants (spec §3/§9).
func (i *Interpreter) eval(expr ast.Expression, env *runtime.Environment) (runtime.Value, *errors.GlossaError) {
	switch e := expr.(type) {
	case *ast.IntegerLiteral:
		return runtime.IntegerValue(e.Value), nil
	case *ast.RealLiteral:
		return runtime.RealValue(e.Value), nil
	case *ast.StringLiteral:
		return runtime.StringValue(e.Value), nil
	case *ast.BooleanLiteral:
		return runtime.BooleanValue(e.Value), nil
	case *ast.Identifier:
		slot, ok := env.Lookup(e.Name)
		if !ok {
			return nil, errors.New(errors.SemanticBind, e.SourceLine, "άγνωστο αναγνωριστικό: %s", e.Name)
		}
		return slot.Value, nil
	case *ast.IndexExpr:
		indices, err := i.evalIndices(e.Indices, env)
		if err != nil {
			return nil, err
		}
		v, readErr := env.ReadIndex(e.Name, indices)
		if readErr != nil {
			return nil, indexError(e.SourceLine, readErr)
		}
		return v, nil
	case *ast.UnaryExpr:
		return i.evalUnary(e, env)
	case *ast.BinaryExpr:
		return i.evalBinary(e, env)
	case *ast.CallExpr:
		return i.callFunction(e.Name, e.Args, env, e.SourceLine)
	default:
		return nil, errors.New(errors.Syntactic, expr.Line(), "άγνωστος τύπος έκφρασης")
	}
}

// evalBool evaluates expr and requires a BOOLEAN result, for guards (ΑΝ, ΟΣΟ,
// ΜΕΧΡΙΣ_ΟΤΟΥ).
func (i *Interpreter) evalBool(expr ast.Expression, env *runtime.Environment) (bool, *errors.GlossaError) {
	v, err := i.eval(expr, env)
	if err != nil {
		return false, err
	}
	b, ok := v.(runtime.BooleanValue)
	if !ok {
		return false, errors.New(errors.RuntimeType, expr.Line(), "αναμενόταν λογική τιμή, βρέθηκε %s", v.Type())
	}
	return bool(b), nil
}

// evalNumeric evaluates expr and requires an INTEGER or REAL result, for the
// ΓΙΑ loop's bounds and step (spec §4.4 allows either).
func (i *Interpreter) evalNumeric(expr ast.Expression, env *runtime.Environment) (float64, *errors.GlossaError) {
	v, err := i.eval(expr, env)
	if err != nil {
		return 0, err
	}
	switch x := v.(type) {
	case runtime.IntegerValue:
		return float64(x), nil
	case runtime.RealValue:
		return float64(x), nil
	default:
		return 0, errors.New(errors.RuntimeType, expr.Line(), "αναμενόταν αριθμητική τιμή, βρέθηκε %s", v.Type())
	}
}

func (i *Interpreter) evalUnary(e *ast.UnaryExpr, env *runtime.Environment) (runtime.Value, *errors.GlossaError) {
	switch e.Op {
	case "ΟΧΙ":
		b, err := i.evalBool(e.Operand, env)
		if err != nil {
			return nil, err
		}
		return runtime.BooleanValue(!b), nil
	case "-":
		v, err := i.eval(e.Operand, env)
		if err != nil {
			return nil, err
		}
		switch x := v.(type) {
		case runtime.IntegerValue:
			return -x, nil
		case runtime.RealValue:
			return -x, nil
		default:
			return nil, errors.New(errors.RuntimeType, e.SourceLine, "το πρόσημο - απαιτεί αριθμητικό τελεσμό, βρέθηκε %s", v.Type())
		}
	default:
		return nil, errors.New(errors.Syntactic, e.SourceLine, "άγνωστος μοναδιαίος τελεστής: %s", e.Op)
	}
}

func (i *Interpreter) evalBinary(e *ast.BinaryExpr, env *runtime.Environment) (runtime.Value, *errors.GlossaError) {
	switch e.Op {
	case "ΚΑΙ":
		left, err := i.evalBool(e.Left, env)
		if err != nil {
			return nil, err
		}
		if !left {
			return runtime.BooleanValue(false), nil
		}
		right, err := i.evalBool(e.Right, env)
		if err != nil {
			return nil, err
		}
		return runtime.BooleanValue(right), nil
	case "Η":
		left, err := i.evalBool(e.Left, env)
		if err != nil {
			return nil, err
		}
		if left {
			return runtime.BooleanValue(true), nil
		}
		right, err := i.evalBool(e.Right, env)
		if err != nil {
			return nil, err
		}
		return runtime.BooleanValue(right), nil
	}

	left, err := i.eval(e.Left, env)
	if err != nil {
		return nil, err
	}
	right, err := i.eval(e.Right, env)
	if err != nil {
		return nil, err
	}

	switch e.Op {
	case "=", "<>", "<", "<=", ">", ">=":
		return compareOp(e.Op, left, right, e.SourceLine)
	case "+", "-", "*", "/":
		return arithOp(e.Op, left, right, e.SourceLine)
	case "DIV", "MOD":
		return intArithOp(e.Op, left, right, e.SourceLine)
	default:
		return nil, errors.New(errors.Syntactic, e.SourceLine, "άγνωστος τελεστής: %s", e.Op)
	}
}

// compareValues orders left and right when they are of compatible types:
// INTEGER/REAL mix freely, CHARACTER and BOOLEAN only compare to their own
// type. ok is false when the pair cannot be compared at all.
func compareValues(left, right runtime.Value) (cmp int, ok bool) {
	switch l := left.(type) {
	case runtime.IntegerValue:
		switch r := right.(type) {
		case runtime.IntegerValue:
			return compareInt64(int64(l), int64(r)), true
		case runtime.RealValue:
			return compareFloat64(float64(l), float64(r)), true
		}
	case runtime.RealValue:
		switch r := right.(type) {
		case runtime.IntegerValue:
			return compareFloat64(float64(l), float64(r)), true
		case runtime.RealValue:
			return compareFloat64(float64(l), float64(r)), true
		}
	case runtime.StringValue:
		if r, ok := right.(runtime.StringValue); ok {
			return strings.Compare(string(l), string(r)), true
		}
	case runtime.BooleanValue:
		if r, ok := right.(runtime.BooleanValue); ok {
			return compareBool(bool(l), bool(r)), true
		}
	}
	return 0, false
}

func compareInt64(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func compareFloat64(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func compareBool(a, b bool) int {
	switch {
	case a == b:
		return 0
	case !a && b:
		return -1
	default:
		return 1
	}
}

func valuesEqual(a, b runtime.Value) bool {
	cmp, ok := compareValues(a, b)
	return ok && cmp == 0
}

func inRange(subject, low, high runtime.Value) bool {
	lowCmp, ok1 := compareValues(subject, low)
	highCmp, ok2 := compareValues(subject, high)
	return ok1 && ok2 && lowCmp >= 0 && highCmp <= 0
}

func compareOp(op string, left, right runtime.Value, line int) (runtime.Value, *errors.GlossaError) {
	cmp, ok := compareValues(left, right)
	if !ok {
		return nil, errors.New(errors.RuntimeType, line, "ασύγκριτοι τύποι: %s και %s", left.Type(), right.Type())
	}
	switch op {
	case "=":
		return runtime.BooleanValue(cmp == 0), nil
	case "<>":
		return runtime.BooleanValue(cmp != 0), nil
	case "<":
		return runtime.BooleanValue(cmp < 0), nil
	case "<=":
		return runtime.BooleanValue(cmp <= 0), nil
	case ">":
		return runtime.BooleanValue(cmp > 0), nil
	case ">=":
		return runtime.BooleanValue(cmp >= 0), nil
	default:
		return nil, errors.New(errors.Syntactic, line, "άγνωστος τελεστής σύγκρισης: %s", op)
	}
}

// arithOp evaluates +, -, *, / with the spec §4.3 promotion rule: REAL if
// either operand is REAL, otherwise INTEGER. Division always yields REAL,
// matching ΓΛΩΣΣΑ's "/" as real division (DIV/MOD cover integer division).
func arithOp(op string, left, right runtime.Value, line int) (runtime.Value, *errors.GlossaError) {
	lf, lok := numericOperand(left)
	rf, rok := numericOperand(right)
	if !lok || !rok {
		return nil, errors.New(errors.RuntimeType, line, "ο τελεστής %s απαιτεί αριθμητικούς τελεστές", op)
	}

	if op == "/" {
		if rf == 0 {
			return nil, errors.New(errors.RuntimeArithmetic, line, "διαίρεση με το μηδέν")
		}
		return runtime.RealValue(lf / rf), nil
	}

	_, lInt := left.(runtime.IntegerValue)
	_, rInt := right.(runtime.IntegerValue)
	useInt := lInt && rInt

	switch op {
	case "+":
		if useInt {
			return runtime.IntegerValue(int64(lf) + int64(rf)), nil
		}
		return runtime.RealValue(lf + rf), nil
	case "-":
		if useInt {
			return runtime.IntegerValue(int64(lf) - int64(rf)), nil
		}
		return runtime.RealValue(lf - rf), nil
	case "*":
		if useInt {
			return runtime.IntegerValue(int64(lf) * int64(rf)), nil
		}
		return runtime.RealValue(lf * rf), nil
	default:
		return nil, errors.New(errors.Syntactic, line, "άγνωστος αριθμητικός τελεστής: %s", op)
	}
}

func numericOperand(v runtime.Value) (float64, bool) {
	switch x := v.(type) {
	case runtime.IntegerValue:
		return float64(x), true
	case runtime.RealValue:
		return float64(x), true
	default:
		return 0, false
	}
}

// intArithOp evaluates DIV and MOD, which spec §4.3 restricts to INTEGER
// operands.
func intArithOp(op string, left, right runtime.Value, line int) (runtime.Value, *errors.GlossaError) {
	l, lok := left.(runtime.IntegerValue)
	r, rok := right.(runtime.IntegerValue)
	if !lok || !rok {
		return nil, errors.New(errors.RuntimeType, line, "ο τελεστής %s απαιτεί ακέραιους τελεστές", op)
	}
	if r == 0 {
		return nil, errors.New(errors.RuntimeArithmetic, line, "διαίρεση με το μηδέν")
	}
	switch op {
	case "DIV":
		return runtime.IntegerValue(int64(l) / int64(r)), nil
	case "MOD":
		return runtime.IntegerValue(int64(l) % int64(r)), nil
	default:
		return nil, errors.New(errors.Syntactic, line, "άγνωστος τελεστής: %s", op)
	}
}
