// context.go: ordered, layer-scoped context fields.
//
// Design:
//   - Internal representation: []Field (deterministic order).
//   - A key is stored once per layer. Writing an existing key overwrites the
//     value in place and keeps the position of the first write.
//   - Public views are copies: map[string]any or []Field.
//
// Keys must be non-empty strings. Anything else is silently dropped.
package fault

// Field represents a single contextual key-value pair attached to a layer.
type Field struct {
	Key string
	Val any
}

// fields is the internal representation of a layer's context.
type fields []Field

// index returns the position of key in fs, or -1.
func (fs fields) index(key string) int {
	for i := range fs {
		if fs[i].Key == key {
			return i
		}
	}
	return -1
}

// set writes key=val, overwriting an existing entry in place.
// Empty keys are ignored.
func (fs fields) set(key string, val any) fields {
	if key == "" {
		return fs
	}
	if i := fs.index(key); i >= 0 {
		fs[i].Val = val
		return fs
	}
	return append(fs, Field{Key: key, Val: val})
}

// clone returns a copy that does not share a backing array with fs.
func (fs fields) clone() []Field {
	if len(fs) == 0 {
		return nil
	}
	out := make([]Field, len(fs))
	copy(out, fs)
	return out
}

// toMap creates a NEW map from fs (copy-on-read).
func (fs fields) toMap() map[string]any {
	m := make(map[string]any, len(fs))
	for _, f := range fs {
		m[f.Key] = f.Val
	}
	return m
}

// ctxFromKV parses a variadic list of key-value arguments into fields.
//
// Rules:
//   - Pairs are read left-to-right as (key, value).
//   - A non-string or empty key drops the ENTIRE PAIR (the key and its
//     following value, if any) so later pairs stay aligned.
//   - A trailing key with no value becomes (key, nil).
//   - A repeated key overwrites the earlier value.
//
// Example:
//
//	ctxFromKV(123, "v1", "k2", "v2") → [{Key:"k2", Val:"v2"}]
func ctxFromKV(kv ...any) fields {
	if len(kv) == 0 {
		return nil
	}
	out := make(fields, 0, len(kv)/2+1)
	for i := 0; i < len(kv); {
		k, ok := kv[i].(string)
		if !ok || k == "" {
			if i+1 < len(kv) {
				i += 2
			} else {
				i++
			}
			continue
		}
		var v any
		if i+1 < len(kv) {
			v = kv[i+1]
			i += 2
		} else {
			i++
		}
		out = out.set(k, v)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
