package interp

import (
	"testing"

	"github.com/papagiannakis/glossa/internal/errors"
	"github.com/papagiannakis/glossa/internal/lexer"
	"github.com/papagiannakis/glossa/internal/parser"
)

func runSource(t *testing.T, source string) *errors.GlossaError {
	t.Helper()
	l := lexer.New(source)
	p := parser.New(l)
	program, parseErr := p.ParseProgram()
	if parseErr != nil {
		t.Fatalf("unexpected parse error: %v", parseErr)
	}
	interpreter := New(&bufferSink{}, noInput{}, nil)
	return interpreter.Run(program)
}

func TestRunRejectsVariableCollidingWithConstant(t *testing.T) {
	source := `
ΠΡΟΓΡΑΜΜΑ Τ
ΣΤΑΘΕΡΕΣ
Π = 3
ΜΕΤΑΒΛΗΤΕΣ
ΑΚΕΡΑΙΕΣ: Π
ΑΡΧΗ
ΤΕΛΟΣ_ΠΡΟΓΡΑΜΜΑΤΟΣ`

	err := runSource(t, source)
	if err == nil {
		t.Fatal("expected a duplicate-declaration error")
	}
	if err.Kind != errors.SemanticBind {
		t.Fatalf("expected SemanticBind, got %v: %s", err.Kind, err.Message)
	}
}

func TestRunRejectsDuplicateVariableName(t *testing.T) {
	source := `
ΠΡΟΓΡΑΜΜΑ Τ
ΜΕΤΑΒΛΗΤΕΣ
ΑΚΕΡΑΙΕΣ: ν
ΠΡΑΓΜΑΤΙΚΕΣ: ν
ΑΡΧΗ
ΤΕΛΟΣ_ΠΡΟΓΡΑΜΜΑΤΟΣ`

	err := runSource(t, source)
	if err == nil {
		t.Fatal("expected a duplicate-declaration error")
	}
	if err.Kind != errors.SemanticBind {
		t.Fatalf("expected SemanticBind, got %v: %s", err.Kind, err.Message)
	}
}

func TestRunRejectsSubprogramNameCollidingWithVariable(t *testing.T) {
	source := `
ΣΥΝΑΡΤΗΣΗ Φ(ν: ΑΚΕΡΑΙΕΣ): ΑΚΕΡΑΙΕΣ
ΑΡΧΗ
  ΕΠΙΣΤΡΕΨΕ ν
ΤΕΛΟΣ_ΣΥΝΑΡΤΗΣΗΣ

ΠΡΟΓΡΑΜΜΑ Τ
ΜΕΤΑΒΛΗΤΕΣ
ΑΚΕΡΑΙΕΣ: Φ
ΑΡΧΗ
ΤΕΛΟΣ_ΠΡΟΓΡΑΜΜΑΤΟΣ`

	err := runSource(t, source)
	if err == nil {
		t.Fatal("expected a duplicate-declaration error")
	}
	if err.Kind != errors.SemanticBind {
		t.Fatalf("expected SemanticBind, got %v: %s", err.Kind, err.Message)
	}
}

func TestCallRejectsDuplicateParameterName(t *testing.T) {
	source := `
ΣΥΝΑΡΤΗΣΗ Φ(ν: ΑΚΕΡΑΙΕΣ, ν: ΠΡΑΓΜΑΤΙΚΕΣ): ΑΚΕΡΑΙΕΣ
ΑΡΧΗ
  ΕΠΙΣΤΡΕΨΕ ν
ΤΕΛΟΣ_ΣΥΝΑΡΤΗΣΗΣ

ΠΡΟΓΡΑΜΜΑ Τ
ΑΡΧΗ
  ΓΡΑΨΕ Φ(1, 2.0)
ΤΕΛΟΣ_ΠΡΟΓΡΑΜΜΑΤΟΣ`

	err := runSource(t, source)
	if err == nil {
		t.Fatal("expected a duplicate-parameter error")
	}
	if err.Kind != errors.SemanticBind {
		t.Fatalf("expected SemanticBind, got %v: %s", err.Kind, err.Message)
	}
}
