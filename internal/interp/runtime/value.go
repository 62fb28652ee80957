// Package runtime holds the ΓΛΩΣΣΑ runtime value representation and the
// lexically-scoped Environment, grounded on the teacher's
// internal/interp/runtime split between Value and Environment.
package runtime

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/papagiannakis/glossa/internal/ast"
)

// Value is a tagged-union runtime value: {integer, real, string, boolean,
// array} per spec §3.
type Value interface {
	Type() ast.Type
	String() string
}

type IntegerValue int64

func (v IntegerValue) Type() ast.Type  { return ast.INTEGER }
func (v IntegerValue) String() string  { return strconv.FormatInt(int64(v), 10) }

type RealValue float64

func (v RealValue) Type() ast.Type { return ast.REAL }

// String renders the shortest round-trip decimal with a fractional dot,
// per spec §6: integral values still show at least one fractional digit.
func (v RealValue) String() string {
	s := strconv.FormatFloat(float64(v), 'f', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}

// StringValue backs both the STRING and CHARACTER type tags; CHARACTER's
// "empty string" default (spec §3) is simply StringValue("").
type StringValue string

func (v StringValue) Type() ast.Type { return ast.CHARACTER }
func (v StringValue) String() string { return string(v) }

type BooleanValue bool

func (v BooleanValue) Type() ast.Type { return ast.BOOLEAN }
func (v BooleanValue) String() string {
	if v {
		return "ΑΛΗΘΗΣ"
	}
	return "ΨΕΥΔΗΣ"
}

// ArrayValue is a rectangular 1-D or 2-D grid of one element type, stored
// row-major flat with 1-based logical indices (spec §3: "upper bound(s) ≥
// 1"). Bounds has length 1 (1-D) or 2 (2-D).
type ArrayValue struct {
	Element ast.Type
	Bounds  []int
	data    []Value
}

// NewArray allocates an array with every cell set to the element type's
// zero value.
func NewArray(element ast.Type, bounds []int) *ArrayValue {
	size := 1
	for _, b := range bounds {
		size *= b
	}
	data := make([]Value, size)
	zero := ZeroValue(element)
	for i := range data {
		data[i] = zero
	}
	return &ArrayValue{Element: element, Bounds: append([]int(nil), bounds...), data: data}
}

func (a *ArrayValue) Type() ast.Type { return a.Element }

func (a *ArrayValue) String() string {
	if len(a.Bounds) == 1 {
		parts := make([]string, a.Bounds[0])
		for i := 0; i < a.Bounds[0]; i++ {
			parts[i] = a.data[i].String()
		}
		return "[" + strings.Join(parts, ", ") + "]"
	}
	rows := make([]string, a.Bounds[0])
	for i := 0; i < a.Bounds[0]; i++ {
		cols := make([]string, a.Bounds[1])
		for j := 0; j < a.Bounds[1]; j++ {
			cols[j] = a.data[i*a.Bounds[1]+j].String()
		}
		rows[i] = "[" + strings.Join(cols, ", ") + "]"
	}
	return "[" + strings.Join(rows, ", ") + "]"
}

// Clone deep-copies the array; the copy shares no cells with a. Argument
// binding does not use it: subprogram parameters are scalar-only, so an
// array argument is rejected with a type error rather than copied.
func (a *ArrayValue) Clone() *ArrayValue {
	data := make([]Value, len(a.data))
	copy(data, a.data)
	return &ArrayValue{Element: a.Element, Bounds: append([]int(nil), a.Bounds...), data: data}
}

// Index resolves 1-based logical indices to a flat offset, bounds-checking
// each against its declared upper bound (spec §3: indices in [1, bound]).
func (a *ArrayValue) index(indices []int) (int, error) {
	if len(indices) != len(a.Bounds) {
		return 0, fmt.Errorf("αναμενόταν %d δείκτες, δόθηκαν %d", len(a.Bounds), len(indices))
	}
	for d, idx := range indices {
		if idx < 1 || idx > a.Bounds[d] {
			return 0, fmt.Errorf("ο δείκτης %d είναι εκτός ορίων [1, %d]", idx, a.Bounds[d])
		}
	}
	if len(indices) == 1 {
		return indices[0] - 1, nil
	}
	return (indices[0]-1)*a.Bounds[1] + (indices[1] - 1), nil
}

func (a *ArrayValue) Get(indices ...int) (Value, error) {
	off, err := a.index(indices)
	if err != nil {
		return nil, err
	}
	return a.data[off], nil
}

func (a *ArrayValue) Set(value Value, indices ...int) error {
	off, err := a.index(indices)
	if err != nil {
		return err
	}
	a.data[off] = value
	return nil
}

// ZeroValue returns the default initial value for a declared type, per spec
// §3: INTEGER→0, REAL→0.0, CHARACTER→"", BOOLEAN→false.
func ZeroValue(t ast.Type) Value {
	switch t {
	case ast.INTEGER:
		return IntegerValue(0)
	case ast.REAL:
		return RealValue(0)
	case ast.CHARACTER:
		return StringValue("")
	case ast.BOOLEAN:
		return BooleanValue(false)
	default:
		return nil
	}
}

// Coerce applies the spec §4.3 coercion rules when storing a value into a
// slot of declared type target.
func Coerce(v Value, target ast.Type) (Value, error) {
	switch target {
	case ast.INTEGER:
		switch x := v.(type) {
		case IntegerValue:
			return x, nil
		case BooleanValue:
			if x {
				return IntegerValue(1), nil
			}
			return IntegerValue(0), nil
		}
	case ast.REAL:
		switch x := v.(type) {
		case RealValue:
			return x, nil
		case IntegerValue:
			return RealValue(x), nil
		case BooleanValue:
			if x {
				return RealValue(1), nil
			}
			return RealValue(0), nil
		}
	case ast.BOOLEAN:
		if x, ok := v.(BooleanValue); ok {
			return x, nil
		}
	case ast.CHARACTER:
		if x, ok := v.(StringValue); ok {
			return x, nil
		}
	}
	return nil, fmt.Errorf("ασυμβατοι τύποι: δεν μπορεί να αποδοθεί %s σε %s", v.Type(), target)
}
