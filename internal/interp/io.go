// Package interp is the tree-walking evaluator for ΓΛΩΣΣΑ: lexical scopes,
// typed coercions, one/two-dimensional arrays, subprogram invocation, and
// the pluggable debugger/IO contract (spec §4.4, §6).
package interp

import "github.com/papagiannakis/glossa/internal/ast"

// OutputSink is the host capability ΓΡΑΨΕ writes through (spec §6).
type OutputSink interface {
	WriteLine(text string)
}

// InputSource is the host capability ΔΙΑΒΑΣΕ reads through (spec §6). The
// host may prompt the user synchronously before returning.
type InputSource interface {
	ReadLine() (string, error)
}

// Debugger is the cooperative suspension contract consumed by the
// interpreter (spec §4.4): one call before and one call after each
// statement. A non-nil error from either call aborts execution — per spec
// §7 propagation policy, only the function-return signal is caught short of
// the top; a debugger-raised stop is fatal like any other error and unwinds
// cleanly to Run's caller.
type Debugger interface {
	Before(stmt ast.Node, snap Snapshot) error
	After(stmt ast.Node, snap Snapshot) error
}
