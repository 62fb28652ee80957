package interp

import (
	"sort"

	"github.com/maruel/natural"

	"github.com/papagiannakis/glossa/internal/ast"
	"github.com/papagiannakis/glossa/internal/interp/runtime"
)

// Binding is one visible name exposed to the debugger hook: its declared
// type, current value, and scope tag (spec §4.4).
type Binding struct {
	Name  string
	Type  ast.Type
	Value runtime.Value
	Scope string // "local" or "outer"
}

// Snapshot is the read-only view of an environment frame handed to the
// debugger hook before/after each statement.
type Snapshot []Binding

// newSnapshot builds a Snapshot of every name visible from env, naturally
// sorted (so α2 precedes α10) the way a debugger UI would list locals,
// grounded on the teacher's reliance on maruel/natural for human-friendly
// ordering.
func newSnapshot(env *runtime.Environment) Snapshot {
	names := env.Names()
	sort.Slice(names, func(i, j int) bool { return natural.Less(names[i], names[j]) })

	snap := make(Snapshot, 0, len(names))
	for _, name := range names {
		slot, ok := env.GetLocal(name)
		scope := "local"
		if !ok {
			slot, _ = env.Lookup(name)
			scope = "outer"
		}
		snap = append(snap, Binding{Name: name, Type: slot.Type, Value: slot.Value, Scope: scope})
	}
	return snap
}
