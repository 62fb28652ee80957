package cmd

import (
	"fmt"
	"os"

	"github.com/kr/pretty"
	"github.com/kr/text"
	"github.com/spf13/cobra"

	"github.com/papagiannakis/glossa/pkg/glossa"
)

var parsePretty bool

var parseCmd = &cobra.Command{
	Use:   "parse <file>",
	Short: "Parse a ΓΛΩΣΣΑ file and print its AST",
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)
	parseCmd.Flags().BoolVar(&parsePretty, "pretty", false, "print a fully indented Go-value dump of the AST instead of its source rendering")
}

func runParse(_ *cobra.Command, args []string) error {
	content, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("αδυναμία ανάγνωσης αρχείου %s: %w", args[0], err)
	}

	program, parseErr := glossa.Parse(string(content))
	if parseErr != nil {
		fmt.Fprintln(os.Stderr, parseErr.Error())
		return fmt.Errorf("αποτυχία ανάλυσης")
	}

	if parsePretty {
		dump := pretty.Sprintf("%# v", program)
		fmt.Println(text.Indent(dump, "  "))
		return nil
	}

	fmt.Println(program.String())
	return nil
}
