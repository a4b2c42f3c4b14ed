// collect.go: fold a whole chain back into plain values.
//
// Every function here walks the chain with Walk (newest first) and is total:
// nil or Layer-free chains yield empty results, never a failure. Only Layer
// nodes contribute, except Internals, which also records the message of any
// non-Layer node.
package fault

import "strings"

// asLayer returns e as a non-nil *Layer.
func asLayer(e error) (*Layer, bool) {
	l, ok := e.(*Layer)
	return l, ok && l != nil
}

// ownMessage returns the message a non-Layer node contributes. Aggregate
// nodes (Unwrap() []error) have no message of their own; errors.Join derives
// its Error() from the children, which are visited separately.
func ownMessage(e error) string {
	switch e.(type) {
	case *Layer, multiUnwrapper:
		return ""
	}
	return e.Error()
}

// CodeOf returns the code of the newest layer that has one, or the zero Code.
func CodeOf(err error) Code {
	var found Code
	Walk(err, func(e error) bool {
		if l, ok := asLayer(e); ok && !l.code.IsZero() {
			found = l.code
			return false
		}
		return true
	})
	return found
}

// HasCode reports whether any layer in the chain carries code.
func HasCode(err error, code Code) bool {
	if code.IsZero() {
		return false
	}
	found := false
	Walk(err, func(e error) bool {
		if l, ok := asLayer(e); ok && l.code == code {
			found = true
			return false
		}
		return true
	})
	return found
}

// FieldsOf merges context across the chain. Newer layers win on key
// collision; the result lists the newest layer's fields first.
func FieldsOf(err error) []Field {
	var out fields
	Walk(err, func(e error) bool {
		l, ok := asLayer(e)
		if !ok {
			return true
		}
		for _, f := range l.ctx {
			if out.index(f.Key) < 0 {
				out = append(out, f)
			}
		}
		return true
	})
	return out.clone()
}

// ContextOf merges context across the chain into a new map. Newer layers win
// on key collision.
func ContextOf(err error) map[string]any {
	out := make(map[string]any)
	Walk(err, func(e error) bool {
		l, ok := asLayer(e)
		if !ok {
			return true
		}
		for _, f := range l.ctx {
			if _, dup := out[f.Key]; !dup {
				out[f.Key] = f.Val
			}
		}
		return true
	})
	return out
}

// Internals collects every internal message across the chain, newest first.
// Non-Layer nodes contribute their own message when it is non-empty.
func Internals(err error) []string {
	out := []string{}
	Walk(err, func(e error) bool {
		if l, ok := asLayer(e); ok {
			out = append(out, l.internals...)
			return true
		}
		if msg := ownMessage(e); msg != "" {
			out = append(out, msg)
		}
		return true
	})
	return out
}

// Origins collects the distinct origins across the chain, newest first.
// Origins are de-duplicated on file and line.
func Origins(err error) []Origin {
	out := []Origin{}
	seen := make(map[Origin]struct{})
	Walk(err, func(e error) bool {
		l, ok := asLayer(e)
		if !ok {
			return true
		}
		o, ok := l.Origin()
		if !ok {
			return true
		}
		if _, dup := seen[o]; dup {
			return true
		}
		seen[o] = struct{}{}
		out = append(out, o)
		return true
	})
	return out
}

// PublicMessages collects every public message across the chain, newest first.
func PublicMessages(err error) []string {
	out := []string{}
	Walk(err, func(e error) bool {
		if l, ok := asLayer(e); ok {
			out = append(out, l.publics...)
		}
		return true
	})
	return out
}

// UserMessage joins PublicMessages with a single space.
func UserMessage(err error) string {
	return strings.Join(PublicMessages(err), " ")
}
