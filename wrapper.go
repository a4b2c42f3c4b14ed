// wrapper.go: deferred single-field mutations for New, Wrap and Combine.
//
// A Wrapper is built first and applied later, when a factory has created the
// Layer. Builders resolve their inputs eagerly: WithOrigin captures the call
// site of the builder call, not of the factory call.
package fault

import "iter"

// Wrapper performs one mutation on a freshly created Layer.
type Wrapper func(*Layer)

// WithCode sets the layer's code. v may be a Code, an int, a string, or any
// enum-like value accepted by CodeFrom. Unresolvable values make the wrapper
// a no-op.
func WithCode(v any) Wrapper {
	c, ok := CodeFrom(v)
	return func(l *Layer) {
		if ok {
			l.SetCode(c)
		}
	}
}

// WithInternal adds a developer-facing message. msg may be a string, a named
// string type, an integer, or a fmt.Stringer.
func WithInternal(msg any) Wrapper {
	s := text(msg)
	return func(l *Layer) { l.AddInternal(s) }
}

// WithPublic adds a user-facing message. It accepts the same inputs as
// WithInternal.
func WithPublic(msg any) Wrapper {
	s := text(msg)
	return func(l *Layer) { l.AddPublic(s) }
}

// WithContext merges m into the layer's context.
func WithContext(m map[string]any) Wrapper {
	return func(l *Layer) { l.AddContext(m) }
}

// WithContextSeq merges key-value pairs from seq, in iteration order.
func WithContextSeq(seq iter.Seq2[string, any]) Wrapper {
	return func(l *Layer) {
		if seq == nil {
			return
		}
		for k, v := range seq {
			l.ctx = l.ctx.set(k, v)
		}
	}
}

// WithContextFunc merges the map returned by fn, resolved when the wrapper
// is applied. A nil fn or a nil result is a no-op.
func WithContextFunc(fn func() map[string]any) Wrapper {
	return func(l *Layer) {
		if fn == nil {
			return
		}
		if m := fn(); m != nil {
			l.AddContext(m)
		}
	}
}

// WithContextSeqFunc merges the pairs yielded by the sequence fn returns,
// resolved when the wrapper is applied. A nil fn or a nil sequence is a no-op.
func WithContextSeqFunc(fn func() iter.Seq2[string, any]) Wrapper {
	return func(l *Layer) {
		if fn == nil {
			return
		}
		WithContextSeq(fn())(l)
	}
}

// WithField sets a single context key. An empty key makes it a no-op.
func WithField(key string, val any) Wrapper {
	return func(l *Layer) {
		l.ctx = l.ctx.set(key, val)
	}
}

// WithFields merges key-value pairs (see Layer.AddFields).
func WithFields(kv ...any) Wrapper {
	return func(l *Layer) { l.AddFields(kv...) }
}

// WithOrigin records the caller of WithOrigin as the layer's origin. Frames
// inside this module are skipped. If no suitable frame exists the wrapper is
// a no-op.
func WithOrigin() Wrapper {
	o, ok := callerOrigin()
	return func(l *Layer) {
		if ok {
			l.SetOrigin(o)
		}
	}
}

// WithOriginAt sets an explicit origin. Invalid origins are ignored.
func WithOriginAt(o Origin) Wrapper {
	return func(l *Layer) { l.SetOrigin(o) }
}
