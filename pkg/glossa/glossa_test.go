package glossa

import (
	"bytes"
	"os"
	"strings"
	"testing"
)

// captureIO is a minimal IO for tests: ΓΡΑΨΕ collects into a buffer, ΔΙΑΒΑΣΕ
// plays back a fixed queue of answers.
type captureIO struct {
	buf   bytes.Buffer
	input []string
	pos   int
}

func (c *captureIO) WriteLine(text string) {
	c.buf.WriteString(text)
	c.buf.WriteByte('\n')
}

func (c *captureIO) ReadLine() (string, error) {
	if c.pos >= len(c.input) {
		return "", errEOF
	}
	line := c.input[c.pos]
	c.pos++
	return line, nil
}

type sentinelError string

func (e sentinelError) Error() string { return string(e) }

const errEOF = sentinelError("no more scripted input")

func TestRunWritesOutput(t *testing.T) {
	source := `
ΠΡΟΓΡΑΜΜΑ Τ
ΑΡΧΗ
  ΓΡΑΨΕ "ΓΕΙΑ"
ΤΕΛΟΣ_ΠΡΟΓΡΑΜΜΑΤΟΣ`

	io := &captureIO{}
	result := Run(source, io, nil, RunConfig{})
	if result.Err != nil {
		t.Fatalf("unexpected error: %v", result.Err)
	}
	if got := io.buf.String(); got != "ΓΕΙΑ\n" {
		t.Fatalf("unexpected output: %q", got)
	}
}

func TestRunNormalizesToNFC(t *testing.T) {
	// Decomposed form: α followed by a combining tonos (U+0301), rather than
	// the single precomposed ά. Both must resolve to the same identifier.
	decomposed := "\u03b1\u0301"
	source := "ΠΡΟΓΡΑΜΜΑ Τ\nΜΕΤΑΒΛΗΤΕΣ\nΑΚΕΡΑΙΕΣ: " + decomposed + "\nΑΡΧΗ\n" + decomposed + " <- 5\nΓΡΑΨΕ " + decomposed + "\nΤΕΛΟΣ_ΠΡΟΓΡΑΜΜΑΤΟΣ"

	io := &captureIO{}
	result := Run(source, io, nil, RunConfig{})
	if result.Err != nil {
		t.Fatalf("unexpected error: %v", result.Err)
	}
	if got := io.buf.String(); got != "5\n" {
		t.Fatalf("unexpected output: %q", got)
	}
}

func TestRunReportsParseError(t *testing.T) {
	io := &captureIO{}
	result := Run("ΠΡΟΓΡΑΜΜΑ Τ\nΑΡΧΗ\nΓΡΑΨΕ\nΤΕΛΟΣ_ΠΡΟΓΡΑΜΜΑΤΟΣ", io, nil, RunConfig{})
	if result.Err == nil {
		t.Fatal("expected a parse error")
	}
}

func TestParseReturnsProgramWithoutExecuting(t *testing.T) {
	program, err := Parse("ΠΡΟΓΡΑΜΜΑ Τ\nΑΡΧΗ\nΓΡΑΨΕ 1\nΤΕΛΟΣ_ΠΡΟΓΡΑΜΜΑΤΟΣ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if program.Name != "Τ" {
		t.Fatalf("unexpected program name: %q", program.Name)
	}
}

func TestRunReadsScriptedInput(t *testing.T) {
	source := `
ΠΡΟΓΡΑΜΜΑ Τ
ΜΕΤΑΒΛΗΤΕΣ
ΑΚΕΡΑΙΕΣ: ν
ΑΡΧΗ
  ΔΙΑΒΑΣΕ ν
  ΓΡΑΨΕ ν
ΤΕΛΟΣ_ΠΡΟΓΡΑΜΜΑΤΟΣ`

	io := &captureIO{input: []string{"42"}}
	result := Run(source, io, nil, RunConfig{})
	if result.Err != nil {
		t.Fatalf("unexpected error: %v", result.Err)
	}
	if got := strings.TrimSpace(io.buf.String()); got != "42" {
		t.Fatalf("unexpected output: %q", got)
	}
}

func TestScriptedInputFromYAML(t *testing.T) {
	path := writeTempYAML(t, "lines:\n  - \"1\"\n  - \"2\"\n")
	var out bytes.Buffer
	scripted, err := NewScriptedInputFromFile(&out, path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	first, err := scripted.ReadLine()
	if err != nil || first != "1" {
		t.Fatalf("expected first line 1, got %q, err=%v", first, err)
	}
	second, err := scripted.ReadLine()
	if err != nil || second != "2" {
		t.Fatalf("expected second line 2, got %q, err=%v", second, err)
	}
	if _, err := scripted.ReadLine(); err == nil {
		t.Fatal("expected an error once the script is exhausted")
	}
}

func writeTempYAML(t *testing.T, content string) string {
	t.Helper()
	path := t.TempDir() + "/input.yaml"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}
	return path
}
