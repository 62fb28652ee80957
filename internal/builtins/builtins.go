// Package builtins implements the fixed ΓΛΩΣΣΑ numeric library (spec §4.5):
// eight single-argument callables that shadow any user-declared subprogram
// of the same name.
package builtins

import (
	"math"

	"github.com/papagiannakis/glossa/internal/errors"
	"github.com/papagiannakis/glossa/internal/interp/runtime"
)

// Func is one built-in's implementation: argument value and call-site line
// (for error reporting) in, result value or a runtime error out.
type Func func(arg runtime.Value, line int) (runtime.Value, *errors.GlossaError)

// Names, in the order spec §4.5 lists them.
const (
	IntPart  = "Α_Μ"
	AbsValue = "Α_Τ"
	Exp      = "Ε"
	Tan      = "ΕΦ"
	Sin      = "ΗΜ"
	Cos      = "ΣΥΝ"
	Log      = "ΛΟΓ"
	Sqrt     = "Τ_Ρ"
)

var table = map[string]Func{
	IntPart:  intPart,
	AbsValue: absValue,
	Exp:      exp,
	Tan:      trig(func(r float64) float64 { return math.Tan(r) }),
	Sin:      trig(func(r float64) float64 { return math.Sin(r) }),
	Cos:      trig(func(r float64) float64 { return math.Cos(r) }),
	Log:      log,
	Sqrt:     sqrt,
}

// Lookup returns the built-in implementation for name, if any.
func Lookup(name string) (Func, bool) {
	f, ok := table[name]
	return f, ok
}

// IsBuiltin reports whether name is a reserved built-in name. Spec §4.5:
// "built-in names take precedence" over user procedures/functions.
func IsBuiltin(name string) bool {
	_, ok := table[name]
	return ok
}

func toFloat(v runtime.Value) float64 {
	switch x := v.(type) {
	case runtime.IntegerValue:
		return float64(x)
	case runtime.RealValue:
		return float64(x)
	default:
		return 0
	}
}

func intPart(arg runtime.Value, _ int) (runtime.Value, *errors.GlossaError) {
	return runtime.IntegerValue(int64(math.Trunc(toFloat(arg)))), nil
}

func absValue(arg runtime.Value, _ int) (runtime.Value, *errors.GlossaError) {
	switch x := arg.(type) {
	case runtime.IntegerValue:
		if x < 0 {
			return -x, nil
		}
		return x, nil
	case runtime.RealValue:
		return runtime.RealValue(math.Abs(float64(x))), nil
	default:
		return nil, errors.New(errors.RuntimeType, 0, "η Α_Τ απαιτεί αριθμητικό όρισμα")
	}
}

func exp(arg runtime.Value, _ int) (runtime.Value, *errors.GlossaError) {
	return runtime.RealValue(math.Exp(toFloat(arg))), nil
}

// trig wraps a radians-based math function as a degrees-based ΓΛΩΣΣΑ
// built-in, per spec §4.5: "interpreted in degrees".
func trig(fn func(float64) float64) Func {
	return func(arg runtime.Value, _ int) (runtime.Value, *errors.GlossaError) {
		radians := toFloat(arg) * math.Pi / 180
		return runtime.RealValue(fn(radians)), nil
	}
}

func log(arg runtime.Value, line int) (runtime.Value, *errors.GlossaError) {
	x := toFloat(arg)
	if x <= 0 {
		return nil, errors.New(errors.RuntimeArithmetic, line, "η ΛΟΓ ορίζεται μόνο για θετικούς αριθμούς")
	}
	return runtime.RealValue(math.Log(x)), nil
}

func sqrt(arg runtime.Value, line int) (runtime.Value, *errors.GlossaError) {
	x := toFloat(arg)
	if x < 0 {
		return nil, errors.New(errors.RuntimeArithmetic, line, "η Τ_Ρ δεν ορίζεται για αρνητικούς αριθμούς")
	}
	return runtime.RealValue(math.Sqrt(x)), nil
}
