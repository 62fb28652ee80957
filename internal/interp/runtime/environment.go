package runtime

import (
	"fmt"

	"github.com/papagiannakis/glossa/internal/ast"
)

// Slot is one named storage cell: a declared type, its array shape (nil for
// a scalar), and its current value.
type Slot struct {
	Type   ast.Type
	Bounds []int
	Value  Value
}

// IsArray reports whether the slot holds an array value.
func (s *Slot) IsArray() bool { return len(s.Bounds) > 0 }

// Environment is one lexical scope: an ordered mapping from identifier to
// typed slot, plus a parent link. Spec §3/§9: the interpreter only ever
// builds a chain of length ≤ 2 (global frame + one call frame), since
// subprograms are not nested.
type Environment struct {
	slots map[string]*Slot
	order []string
	outer *Environment
}

// NewEnvironment creates a root-level environment with no outer scope.
func NewEnvironment() *Environment {
	return &Environment{slots: make(map[string]*Slot)}
}

// NewEnclosedEnvironment creates an environment enclosed by outer.
func NewEnclosedEnvironment(outer *Environment) *Environment {
	return &Environment{slots: make(map[string]*Slot), outer: outer}
}

// Outer returns the parent environment, or nil at the root.
func (e *Environment) Outer() *Environment { return e.outer }

// Declare creates a new scalar slot in this frame with the type's zero
// value.
func (e *Environment) Declare(name string, typ ast.Type) {
	e.declare(name, &Slot{Type: typ, Value: ZeroValue(typ)})
}

// DeclareArray creates a new array slot in this frame, zero-initialized.
func (e *Environment) DeclareArray(name string, element ast.Type, bounds []int) {
	e.declare(name, &Slot{Type: element, Bounds: bounds, Value: NewArray(element, bounds)})
}

func (e *Environment) declare(name string, slot *Slot) {
	if _, exists := e.slots[name]; !exists {
		e.order = append(e.order, name)
	}
	e.slots[name] = slot
}

// GetLocal looks up name only in this frame, without walking to outer.
func (e *Environment) GetLocal(name string) (*Slot, bool) {
	s, ok := e.slots[name]
	return s, ok
}

// Lookup walks the parent chain to find the slot for name, per spec §3:
// "Name lookup walks parent links until found."
func (e *Environment) Lookup(name string) (*Slot, bool) {
	if s, ok := e.slots[name]; ok {
		return s, true
	}
	if e.outer != nil {
		return e.outer.Lookup(name)
	}
	return nil, false
}

// Assign coerces value to the resolved slot's declared type and stores it,
// per spec §3 invariant: "every write coerces the value to the declared
// slot type or fails with type mismatch."
func (e *Environment) Assign(name string, value Value) error {
	slot, ok := e.Lookup(name)
	if !ok {
		return fmt.Errorf("άγνωστο αναγνωριστικό: %s", name)
	}
	coerced, err := Coerce(value, slot.Type)
	if err != nil {
		return err
	}
	slot.Value = coerced
	return nil
}

// AssignIndex stores value into the array slot name at the given 1-based
// indices, coercing to the element type first.
func (e *Environment) AssignIndex(name string, indices []int, value Value) error {
	slot, ok := e.Lookup(name)
	if !ok {
		return fmt.Errorf("άγνωστο αναγνωριστικό: %s", name)
	}
	arr, ok := slot.Value.(*ArrayValue)
	if !ok {
		return fmt.Errorf("το %s δεν είναι πίνακας", name)
	}
	coerced, err := Coerce(value, slot.Type)
	if err != nil {
		return err
	}
	return arr.Set(coerced, indices...)
}

// ReadIndex reads the array slot name at the given 1-based indices.
func (e *Environment) ReadIndex(name string, indices []int) (Value, error) {
	slot, ok := e.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("άγνωστο αναγνωριστικό: %s", name)
	}
	arr, ok := slot.Value.(*ArrayValue)
	if !ok {
		return nil, fmt.Errorf("το %s δεν είναι πίνακας", name)
	}
	return arr.Get(indices...)
}

// Names returns the identifiers visible from this frame: locals first (in
// declaration order), then names only visible in outer frames.
func (e *Environment) Names() []string {
	seen := make(map[string]bool, len(e.order))
	names := append([]string(nil), e.order...)
	for _, n := range e.order {
		seen[n] = true
	}
	if e.outer != nil {
		for _, n := range e.outer.Names() {
			if !seen[n] {
				names = append(names, n)
				seen[n] = true
			}
		}
	}
	return names
}
