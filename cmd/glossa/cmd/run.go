package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/papagiannakis/glossa/internal/ast"
	"github.com/papagiannakis/glossa/internal/interp"
	"github.com/papagiannakis/glossa/pkg/glossa"
)

var (
	evalExpr  string
	dumpAST   bool
	trace     bool
	inputFile string
)

var runCmd = &cobra.Command{
	Use:   "run [file]",
	Short: "Run a ΓΛΩΣΣΑ program",
	Long: `Execute a ΓΛΩΣΣΑ program from a file or inline source.

Examples:
  glossa run factorial.gls
  glossa run -e "ΠΡΟΓΡΑΜΜΑ Τ ΑΡΧΗ ΓΡΑΨΕ 1 ΤΕΛΟΣ_ΠΡΟΓΡΑΜΜΑΤΟΣ"
  glossa run --trace factorial.gls
  glossa run --input answers.yaml interactive.gls`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRun,
}

func isVerbose(cmd *cobra.Command) bool {
	verbose, _ := cmd.Flags().GetBool("verbose")
	return verbose
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "run inline source instead of reading from file")
	runCmd.Flags().BoolVar(&dumpAST, "dump-ast", false, "print the parsed AST before executing")
	runCmd.Flags().BoolVar(&trace, "trace", false, "print one line per executed statement to stderr")
	runCmd.Flags().StringVar(&inputFile, "input", "", "YAML file of scripted ΔΙΑΒΑΣΕ answers, for non-interactive runs")
}

func runRun(cmd *cobra.Command, args []string) error {
	verbose := isVerbose(cmd)

	var source, filename string
	switch {
	case evalExpr != "":
		source, filename = evalExpr, "<eval>"
	case len(args) == 1:
		filename = args[0]
		content, err := os.ReadFile(filename)
		if err != nil {
			return fmt.Errorf("αδυναμία ανάγνωσης αρχείου %s: %w", filename, err)
		}
		source = string(content)
	default:
		return fmt.Errorf("δώστε είτε όνομα αρχείου είτε τη σημαία -e")
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "[verbose] πηγή: %s (%d bytes)\n", filename, len(source))
	}

	if dumpAST {
		program, parseErr := glossa.Parse(source)
		if parseErr != nil {
			fmt.Fprintln(os.Stderr, parseErr.Error())
			return fmt.Errorf("αποτυχία ανάλυσης")
		}
		fmt.Println(program.String())
	}

	io, err := resolveIO(inputFile)
	if err != nil {
		return err
	}
	if verbose && inputFile != "" {
		fmt.Fprintf(os.Stderr, "[verbose] σεναριακή είσοδος από: %s\n", inputFile)
	}

	var debugger glossa.Debugger
	if trace {
		debugger = traceDebugger{}
	}

	result := glossa.Run(source, io, debugger, glossa.RunConfig{Trace: trace})
	if verbose {
		fmt.Fprintln(os.Stderr, "[verbose] ολοκλήρωση εκτέλεσης")
	}
	if result.Err != nil {
		fmt.Fprintln(os.Stderr, result.Err.Error())
		return fmt.Errorf("εκτέλεση απέτυχε")
	}
	return nil
}

func resolveIO(inputFile string) (glossa.IO, error) {
	if inputFile == "" {
		return glossa.NewStdIO(), nil
	}
	return glossa.NewScriptedInputFromFile(os.Stdout, inputFile)
}

// traceDebugger prints the source line of every executed statement to
// stderr, giving --trace a concrete, minimal implementation of the
// debugger hook contract (spec §4.4).
type traceDebugger struct{}

func (traceDebugger) Before(stmt ast.Node, _ interp.Snapshot) error {
	fmt.Fprintf(os.Stderr, "[trace] γραμμή %d: %s\n", stmt.Line(), stmt.String())
	return nil
}

func (traceDebugger) After(ast.Node, interp.Snapshot) error { return nil }
