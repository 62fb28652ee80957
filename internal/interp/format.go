package interp

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/papagiannakis/glossa/internal/ast"
	"github.com/papagiannakis/glossa/internal/interp/runtime"
)

// formatValue renders a value the way ΓΡΑΨΕ prints it (spec §6): each
// Value's own String already satisfies the rendering rules (REAL keeps a
// fractional digit, BOOLEAN spells out ΑΛΗΘΗΣ/ΨΕΥΔΗΣ).
func formatValue(v runtime.Value) string {
	return v.String()
}

// joinSpace separates a ΓΡΑΨΕ argument list with single spaces, per spec §6.
func joinSpace(parts []string) string {
	return strings.Join(parts, " ")
}

// parseInput converts one ΔΙΑΒΑΣΕ input line to a value of the target's
// declared type, per spec §6's type-directed parsing rule.
func parseInput(line string, target ast.Type) (runtime.Value, error) {
	trimmed := strings.TrimSpace(line)
	switch target {
	case ast.INTEGER:
		n, err := strconv.ParseInt(trimmed, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("αναμενόταν ακέραιος, δόθηκε %q", line)
		}
		return runtime.IntegerValue(n), nil
	case ast.REAL:
		f, err := strconv.ParseFloat(trimmed, 64)
		if err != nil {
			return nil, fmt.Errorf("αναμενόταν πραγματικός, δόθηκε %q", line)
		}
		return runtime.RealValue(f), nil
	case ast.BOOLEAN:
		switch trimmed {
		case "ΑΛΗΘΗΣ":
			return runtime.BooleanValue(true), nil
		case "ΨΕΥΔΗΣ":
			return runtime.BooleanValue(false), nil
		default:
			return nil, fmt.Errorf("αναμενόταν ΑΛΗΘΗΣ ή ΨΕΥΔΗΣ, δόθηκε %q", line)
		}
	case ast.CHARACTER:
		return runtime.StringValue(line), nil
	default:
		return nil, fmt.Errorf("άγνωστος τύπος εισόδου")
	}
}
