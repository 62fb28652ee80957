package builtins

import (
	"math"
	"testing"

	"github.com/papagiannakis/glossa/internal/errors"
	"github.com/papagiannakis/glossa/internal/interp/runtime"
)

func TestIsBuiltinShadowsUserNames(t *testing.T) {
	for _, name := range []string{IntPart, AbsValue, Exp, Tan, Sin, Cos, Log, Sqrt} {
		if !IsBuiltin(name) {
			t.Fatalf("expected %s to be a recognized built-in", name)
		}
	}
	if IsBuiltin("ΤΕΤΡΑΓΩΝΟ") {
		t.Fatal("a user-defined name must not be reported as a built-in")
	}
}

func TestIntPartTruncatesTowardZero(t *testing.T) {
	fn, _ := Lookup(IntPart)
	v, err := fn(runtime.RealValue(3.9), 1)
	if err != nil || v != runtime.IntegerValue(3) {
		t.Fatalf("expected 3, got %v, err=%v", v, err)
	}
	v, err = fn(runtime.RealValue(-3.9), 1)
	if err != nil || v != runtime.IntegerValue(-3) {
		t.Fatalf("expected -3, got %v, err=%v", v, err)
	}
}

func TestAbsValuePreservesOperandType(t *testing.T) {
	fn, _ := Lookup(AbsValue)
	v, err := fn(runtime.IntegerValue(-5), 1)
	if err != nil || v != runtime.IntegerValue(5) {
		t.Fatalf("expected integer 5, got %v, err=%v", v, err)
	}
	v, err = fn(runtime.RealValue(-2.5), 1)
	if err != nil || v != runtime.RealValue(2.5) {
		t.Fatalf("expected real 2.5, got %v, err=%v", v, err)
	}
}

func TestAbsValueRejectsNonNumeric(t *testing.T) {
	fn, _ := Lookup(AbsValue)
	if _, err := fn(runtime.StringValue("α"), 1); err == nil {
		t.Fatal("expected a type error for a string argument")
	}
}

func TestTrigUsesDegrees(t *testing.T) {
	fn, _ := Lookup(Sin)
	v, err := fn(runtime.IntegerValue(90), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := float64(v.(runtime.RealValue))
	if math.Abs(got-1) > 1e-9 {
		t.Fatalf("expected ΗΜ(90)≈1, got %v", got)
	}
}

func TestLogRejectsNonPositive(t *testing.T) {
	fn, _ := Lookup(Log)
	_, err := fn(runtime.IntegerValue(0), 4)
	if err == nil {
		t.Fatal("expected an arithmetic error for ΛΟΓ(0)")
	}
	if err.Kind != errors.RuntimeArithmetic || err.Line != 4 {
		t.Fatalf("unexpected error: %+v", err)
	}
}

func TestSqrtRejectsNegative(t *testing.T) {
	fn, _ := Lookup(Sqrt)
	_, err := fn(runtime.IntegerValue(-4), 7)
	if err == nil {
		t.Fatal("expected an arithmetic error for Τ_Ρ(-4)")
	}
	if err.Kind != errors.RuntimeArithmetic {
		t.Fatalf("unexpected kind: %v", err.Kind)
	}
}

func TestSqrtOfZeroIsZero(t *testing.T) {
	fn, _ := Lookup(Sqrt)
	v, err := fn(runtime.IntegerValue(0), 1)
	if err != nil || v != runtime.RealValue(0) {
		t.Fatalf("expected 0.0, got %v, err=%v", v, err)
	}
}

func TestExpOfZeroIsOne(t *testing.T) {
	fn, _ := Lookup(Exp)
	v, err := fn(runtime.IntegerValue(0), 1)
	if err != nil || v != runtime.RealValue(1) {
		t.Fatalf("expected 1.0, got %v, err=%v", v, err)
	}
}
