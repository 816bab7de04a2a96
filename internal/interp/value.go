/*
File    : golox/internal/interp/value.go
*/

package interp

import (
	"fmt"
	"strconv"
	"strings"
)

// Value is the runtime representation of every value the evaluator
// produces or consumes: nil, bool, float64 (the language's one numeric
// type), string, one of this package's Callable implementations
// (*Function, *Class, *NativeFunction), or an *Instance. Go's native types
// double as the tagged union
// the design describes; no wrapper struct is needed since a type switch
// over interface{} gives the same dispatch a tag field would.
type Value interface{}

// isTruthy implements the language's truthiness rule: nil and false are
// falsey, everything else — including 0 and "" — is truthy.
func isTruthy(v Value) bool {
	if v == nil {
		return false
	}
	if b, ok := v.(bool); ok {
		return b
	}
	return true
}

// isEqual implements structural equality across value kinds. Values of
// different dynamic kinds are never equal, even when they print the same
// (e.g. 0 and "0"), and nil equals only itself — both deliberate
// departures from the original host language's operator semantics (§9).
func isEqual(a, b Value) bool {
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

// stringify renders v the way `print` and the REPL display it. A float
// that holds an integral value is printed without its trailing ".0" —
// golox numbers are all float64 internally, but whole numbers should read
// like integers (§9).
func stringify(v Value) string {
	if v == nil {
		return "nil"
	}
	switch vv := v.(type) {
	case float64:
		text := strconv.FormatFloat(vv, 'f', -1, 64)
		if strings.HasSuffix(text, ".0") {
			text = strings.TrimSuffix(text, ".0")
		}
		return text
	case bool:
		if vv {
			return "true"
		}
		return "false"
	case string:
		return vv
	case fmt.Stringer:
		return vv.String()
	default:
		return fmt.Sprintf("%v", vv)
	}
}
