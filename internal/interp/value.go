package interp

import (
	"fmt"
	"strconv"
	"strings"
)

// isTruthy implements spec.md §4.5: nil is false, bool is itself, every
// other value (including 0 and "") is true.
func isTruthy(v interface{}) bool {
	if v == nil {
		return false
	}
	if b, ok := v.(bool); ok {
		return b
	}
	return true
}

// isEqual implements the structural equality of spec.md §4.5: equal iff
// same variant and payload; cross-variant comparisons are never equal.
func isEqual(a, b interface{}) bool {
	if a == nil && b == nil {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	switch av := a.(type) {
	case float64:
		bv, ok := b.(float64)
		return ok && av == bv
	case string:
		bv, ok := b.(string)
		return ok && av == bv
	case bool:
		bv, ok := b.(bool)
		return ok && av == bv
	default:
		return a == b
	}
}

// Stringify is the exported form of stringify, for rendering a value
// outside of a `print` statement.
func Stringify(v interface{}) string { return stringify(v) }

// stringify implements the stringification rules of spec.md §4.5. The
// Open Question in spec.md §9 is resolved in favor of lowercase
// true/false, per SPEC_FULL.md §6.2.
func stringify(v interface{}) string {
	switch value := v.(type) {
	case nil:
		return "nil"
	case bool:
		if value {
			return "true"
		}
		return "false"
	case float64:
		return formatNumber(value)
	case string:
		return value
	case *UserFunction:
		return fmt.Sprintf("<fn %s>", value.Name())
	case *NativeFunction:
		return fmt.Sprintf("<native fn %s>", value.name)
	case *Class:
		return value.Name
	case *Instance:
		return value.Class.Name + " instance"
	case *BoundMethod:
		return fmt.Sprintf("<fn %s>", value.Method.Name())
	default:
		return fmt.Sprintf("%v", value)
	}
}

// formatNumber renders the shortest round-trippable decimal with no
// trailing zeroes, e.g. 3 (not 3.0), 1.5 (not 1.50).
func formatNumber(f float64) string {
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if strings.Contains(s, "e") || strings.Contains(s, "E") {
		// Crafting Interpreters' Double.toString never produces
		// scientific notation for the numbers Lox programs use;
		// fall back to a fixed-point rendering trimmed of zeroes.
		s = strconv.FormatFloat(f, 'f', -1, 64)
	}
	return s
}

func typeName(v interface{}) string {
	switch v.(type) {
	case nil:
		return "nil"
	case bool:
		return "boolean"
	case float64:
		return "number"
	case string:
		return "string"
	default:
		return "object"
	}
}
