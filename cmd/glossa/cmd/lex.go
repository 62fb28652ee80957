package cmd

import (
	"fmt"
	"os"

	"github.com/papagiannakis/glossa/internal/lexer"
	"github.com/spf13/cobra"
	"golang.org/x/text/unicode/norm"
)

var lexCmd = &cobra.Command{
	Use:   "lex <file>",
	Short: "Tokenize a ΓΛΩΣΣΑ file and print the resulting tokens",
	Args:  cobra.ExactArgs(1),
	RunE:  runLex,
}

func init() {
	rootCmd.AddCommand(lexCmd)
}

func runLex(_ *cobra.Command, args []string) error {
	content, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("αδυναμία ανάγνωσης αρχείου %s: %w", args[0], err)
	}

	l := lexer.New(norm.NFC.String(string(content)))
	for {
		tok := l.NextToken()
		fmt.Printf("%s\n", tok)
		if tok.Type == lexer.EOF {
			break
		}
	}

	if errs := l.Errors(); len(errs) > 0 {
		for _, e := range errs {
			fmt.Fprintf(os.Stderr, "γραμμή %d: %s\n", e.Line, e.Message)
		}
		return fmt.Errorf("βρέθηκαν %d λεξιλογικά σφάλματα", len(errs))
	}
	return nil
}
