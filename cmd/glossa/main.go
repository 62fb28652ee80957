// Command glossa is the ΓΛΩΣΣΑ interpreter CLI: run, lex, parse, and
// version subcommands over github.com/spf13/cobra.
package main

import (
	"fmt"
	"os"

	"github.com/papagiannakis/glossa/cmd/glossa/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
