// Package cmd wires the ΓΛΩΣΣΑ CLI's cobra command tree.
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	// Version is set by build flags; left at its default for local builds.
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "glossa",
	Short: "ΓΛΩΣΣΑ interpreter",
	Long: `glossa is a Go implementation of ΓΛΩΣΣΑ, the Greek pedagogical
programming language taught in Greek secondary education.`,
	Version: Version,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
`, GitCommit))

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")
}
