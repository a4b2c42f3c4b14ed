// code.go: machine-readable code identifiers.
//
// A code is either an int or a string. Projects pick their own scheme
// (HTTP-like numbers, dotted strings, typed enums); the core attaches no
// policy to either.
package fault

import "strconv"

type codeKind uint8

const (
	codeNone codeKind = iota
	codeInt
	codeString
)

// Code identifies a failure class. The zero value means "no code".
type Code struct {
	kind codeKind
	i    int
	s    string
}

// IntCode returns an integer code.
func IntCode(i int) Code { return Code{kind: codeInt, i: i} }

// StringCode returns a string code. The empty string is a valid code and is
// distinct from the zero Code.
func StringCode(s string) Code { return Code{kind: codeString, s: s} }

// CodeFrom resolves v into a Code through Value. It reports false when the
// resolved value is neither an int nor a string.
func CodeFrom(v any) (Code, bool) {
	if c, ok := v.(Code); ok {
		return c, !c.IsZero()
	}
	switch rv := Value(v).(type) {
	case int:
		return IntCode(rv), true
	case string:
		return StringCode(rv), true
	default:
		return Code{}, false
	}
}

// IsZero reports whether no code is set.
func (c Code) IsZero() bool { return c.kind == codeNone }

// Int returns the integer value and whether c is an integer code.
func (c Code) Int() (int, bool) { return c.i, c.kind == codeInt }

// Str returns the string value and whether c is a string code.
func (c Code) Str() (string, bool) { return c.s, c.kind == codeString }

// Value returns the code as an int, a string, or nil for the zero Code.
func (c Code) Value() any {
	switch c.kind {
	case codeInt:
		return c.i
	case codeString:
		return c.s
	default:
		return nil
	}
}

func (c Code) String() string {
	switch c.kind {
	case codeInt:
		return strconv.Itoa(c.i)
	case codeString:
		return c.s
	default:
		return ""
	}
}
