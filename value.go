// value.go: enum-like value resolution.
//
// Go has no enum type; symbolic values are typed constants. A value-carrying
// constant (type Status int; const NotFound Status = 404) resolves to its
// backing scalar. Types that are neither integer nor string kinds but
// implement fmt.Stringer resolve to their name.
package fault

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
)

// Value resolves a symbolic value to a plain scalar:
//   - integer kinds (named or not) → int, if the value fits; otherwise v
//     unchanged
//   - string kinds (named or not)  → string
//   - other fmt.Stringer values    → String()
//   - anything else                → v unchanged
func Value(v any) any {
	switch tv := v.(type) {
	case nil:
		return nil
	case int:
		return tv
	case string:
		return tv
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if i := rv.Int(); i >= math.MinInt && i <= math.MaxInt {
			return int(i)
		}
		return v
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		if u := rv.Uint(); u <= math.MaxInt {
			return int(u)
		}
		return v
	case reflect.String:
		return rv.String()
	}
	if s, ok := v.(fmt.Stringer); ok {
		return s.String()
	}
	return v
}

// text resolves v into a message string. Integers are rendered in base 10;
// unresolvable values yield "".
func text(v any) string {
	switch rv := Value(v).(type) {
	case string:
		return rv
	case int:
		return strconv.Itoa(rv)
	default:
		return ""
	}
}
