package lexer

import "testing"

func TestNextToken(t *testing.T) {
	input := "ΠΡΟΓΡΑΜΜΑ Τ\nΜΕΤΑΒΛΗΤΕΣ\nΑΚΕΡΑΙΕΣ: α\nΑΡΧΗ\nα <- 5 + 3\nΤΕΛΟΣ_ΠΡΟΓΡΑΜΜΑΤΟΣ"

	tests := []struct {
		expectedType    TokenType
		expectedLiteral string
	}{
		{PROGRAM, "ΠΡΟΓΡΑΜΜΑ"},
		{IDENT, "Τ"},
		{VARIABLES, "ΜΕΤΑΒΛΗΤΕΣ"},
		{TYPE_INTEGER, "ΑΚΕΡΑΙΕΣ"},
		{COLON, ":"},
		{IDENT, "α"},
		{BEGIN_PROGRAM, "ΑΡΧΗ"},
		{IDENT, "α"},
		{ASSIGN, "<-"},
		{INTEGER, "5"},
		{PLUS, "+"},
		{INTEGER, "3"},
		{END_PROGRAM, "ΤΕΛΟΣ_ΠΡΟΓΡΑΜΜΑΤΟΣ"},
		{EOF, ""},
	}

	l := New(input)
	for i, tt := range tests {
		tok := l.NextToken()
		if tok.Type != tt.expectedType {
			t.Fatalf("tests[%d]: type wrong. expected=%v, got=%v (literal=%q)", i, tt.expectedType, tok.Type, tok.Literal)
		}
		if tok.Literal != tt.expectedLiteral {
			t.Fatalf("tests[%d]: literal wrong. expected=%q, got=%q", i, tt.expectedLiteral, tok.Literal)
		}
	}
}

func TestLineComment(t *testing.T) {
	l := New("5 ! αυτό είναι σχόλιο\n7")
	first := l.NextToken()
	second := l.NextToken()
	if first.Literal != "5" || second.Literal != "7" {
		t.Fatalf("comment was not skipped: %q %q", first.Literal, second.Literal)
	}
	if second.Line != 2 {
		t.Fatalf("expected line 2 after comment, got %d", second.Line)
	}
}

func TestUnterminatedString(t *testing.T) {
	l := New(`"αβγ`)
	l.NextToken()
	if len(l.Errors()) != 1 {
		t.Fatalf("expected one lexical error, got %d", len(l.Errors()))
	}
}

func TestGuillemetString(t *testing.T) {
	l := New("«γειά σου»")
	tok := l.NextToken()
	if tok.Type != STRING || tok.Literal != "γειά σου" {
		t.Fatalf("unexpected token: %+v", tok)
	}
}

func TestIllegalCharacter(t *testing.T) {
	l := New("α @ β")
	l.NextToken()
	bad := l.NextToken()
	if bad.Type != ILLEGAL {
		t.Fatalf("expected ILLEGAL, got %v", bad.Type)
	}
	if len(l.Errors()) != 1 {
		t.Fatalf("expected one lexical error, got %d", len(l.Errors()))
	}
}

func TestRealLiteral(t *testing.T) {
	l := New("3.14")
	tok := l.NextToken()
	if tok.Type != REAL || tok.Literal != "3.14" {
		t.Fatalf("unexpected token: %+v", tok)
	}
}

func TestDivModKeywords(t *testing.T) {
	l := New("7 DIV 2 MOD 2")
	types := []TokenType{INTEGER, INT_DIV, INTEGER, INT_MOD, INTEGER, EOF}
	for i, want := range types {
		tok := l.NextToken()
		if tok.Type != want {
			t.Fatalf("token %d: expected %v, got %v", i, want, tok.Type)
		}
	}
}
