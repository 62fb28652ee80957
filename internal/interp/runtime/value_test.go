package runtime

import (
	"testing"

	"github.com/papagiannakis/glossa/internal/ast"
)

func TestRealValueStringKeepsFractionalDigit(t *testing.T) {
	if got := RealValue(3).String(); got != "3.0" {
		t.Fatalf("expected 3.0, got %q", got)
	}
	if got := RealValue(3.5).String(); got != "3.5" {
		t.Fatalf("expected 3.5, got %q", got)
	}
}

func TestBooleanValueString(t *testing.T) {
	if BooleanValue(true).String() != "ΑΛΗΘΗΣ" {
		t.Fatal("expected ΑΛΗΘΗΣ")
	}
	if BooleanValue(false).String() != "ΨΕΥΔΗΣ" {
		t.Fatal("expected ΨΕΥΔΗΣ")
	}
}

func TestCoerceBooleanToInteger(t *testing.T) {
	v, err := Coerce(BooleanValue(true), ast.INTEGER)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != IntegerValue(1) {
		t.Fatalf("expected 1, got %v", v)
	}
}

func TestCoerceRejectsStringToInteger(t *testing.T) {
	if _, err := Coerce(StringValue("όχι"), ast.INTEGER); err == nil {
		t.Fatal("expected a coercion error")
	}
}

func TestArrayBoundsChecking(t *testing.T) {
	arr := NewArray(ast.INTEGER, []int{3})
	if err := arr.Set(IntegerValue(42), 2); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := arr.Get(4); err == nil {
		t.Fatal("expected an out-of-bounds error")
	}
	if _, err := arr.Get(0); err == nil {
		t.Fatal("expected an out-of-bounds error for index 0 (1-based arrays)")
	}
}

func TestArray2DRowMajor(t *testing.T) {
	arr := NewArray(ast.INTEGER, []int{2, 3})
	if err := arr.Set(IntegerValue(7), 2, 3); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	v, err := arr.Get(2, 3)
	if err != nil || v != IntegerValue(7) {
		t.Fatalf("expected 7, got %v, err=%v", v, err)
	}
}

func TestArrayCloneIsIndependent(t *testing.T) {
	arr := NewArray(ast.INTEGER, []int{2})
	arr.Set(IntegerValue(1), 1)
	clone := arr.Clone()
	clone.Set(IntegerValue(99), 1)

	original, _ := arr.Get(1)
	copied, _ := clone.Get(1)
	if original != IntegerValue(1) {
		t.Fatalf("clone mutated the original: %v", original)
	}
	if copied != IntegerValue(99) {
		t.Fatalf("clone did not take the new value: %v", copied)
	}
}
