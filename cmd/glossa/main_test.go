package main

import (
	"os"
	"testing"

	"github.com/rogpeppe/go-internal/testscript"

	"github.com/papagiannakis/glossa/cmd/glossa/cmd"
)

// TestMain lets the same test binary act as both the "go test" runner and a
// standalone glossa binary: testscript.RunMain re-execs this binary as a
// subprocess whenever a script line invokes "glossa ...".
func TestMain(m *testing.M) {
	os.Exit(testscript.RunMain(m, map[string]func() int{
		"glossa": runGlossa,
	}))
}

func runGlossa() int {
	if err := cmd.Execute(); err != nil {
		return 1
	}
	return 0
}

// TestScripts drives the built glossa binary through txtar fixtures under
// testdata/script, checking end-to-end stdin/stdout/stderr behavior the way
// unit tests against the internal packages cannot.
func TestScripts(t *testing.T) {
	testscript.Run(t, testscript.Params{
		Dir: "testdata/script",
	})
}
