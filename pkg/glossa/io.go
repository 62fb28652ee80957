package glossa

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-yaml"
)

// StdIO is the default host IO: ΓΡΑΨΕ writes a line to Out, ΔΙΑΒΑΣΕ reads a
// line from In.
type StdIO struct {
	Out io.Writer
	In  *bufio.Reader
}

// NewStdIO wires stdout/stdin as the program's IO, the way a host process
// normally runs ΓΛΩΣΣΑ interactively.
func NewStdIO() *StdIO {
	return &StdIO{Out: os.Stdout, In: bufio.NewReader(os.Stdin)}
}

func (s *StdIO) WriteLine(text string) {
	fmt.Fprintln(s.Out, text)
}

func (s *StdIO) ReadLine() (string, error) {
	line, err := s.In.ReadString('\n')
	if err != nil && err != io.EOF {
		return "", err
	}
	return trimNewline(line), nil
}

func trimNewline(s string) string {
	for len(s) > 0 && (s[len(s)-1] == '\n' || s[len(s)-1] == '\r') {
		s = s[:len(s)-1]
	}
	return s
}

// ScriptedInput plays back a fixed list of answers for ΔΙΑΒΑΣΕ, for
// headless/CI runs where no live terminal is attached. Output still goes
// wherever Out points, so a caller can capture it for assertions.
type ScriptedInput struct {
	Out   io.Writer
	lines []string
	pos   int
}

// scriptedInputFile is the YAML document shape loaded by
// NewScriptedInputFromFile: a flat list of input lines played back in order.
type scriptedInputFile struct {
	Lines []string `yaml:"lines"`
}

// NewScriptedInput builds a ScriptedInput that answers ΔΙΑΒΑΣΕ calls from
// lines in order, writing ΓΡΑΨΕ output to out.
func NewScriptedInput(out io.Writer, lines []string) *ScriptedInput {
	return &ScriptedInput{Out: out, lines: lines}
}

// NewScriptedInputFromFile loads a YAML fixture (a "lines" list) and returns
// a ScriptedInput backed by it, grounded on spec.md §9's host-independent
// input-source requirement for non-interactive runs.
func NewScriptedInputFromFile(out io.Writer, path string) (*ScriptedInput, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("αδυναμία ανάγνωσης αρχείου εισόδου %s: %w", path, err)
	}
	var doc scriptedInputFile
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("μη έγκυρο αρχείο σεναρίου εισόδου %s: %w", path, err)
	}
	return NewScriptedInput(out, doc.Lines), nil
}

func (s *ScriptedInput) WriteLine(text string) {
	fmt.Fprintln(s.Out, text)
}

func (s *ScriptedInput) ReadLine() (string, error) {
	if s.pos >= len(s.lines) {
		return "", fmt.Errorf("το σενάριο εισόδου εξαντλήθηκε μετά από %d γραμμές", s.pos)
	}
	line := s.lines[s.pos]
	s.pos++
	return line, nil
}
