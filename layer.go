// layer.go: Layer, one node of accumulated error metadata.
//
// A Layer is built in two phases: a short mutation phase right after
// construction (normally via Wrapper functions passed to New/Wrap/Combine),
// then read-only use by the aggregators. Layers carry no locks; do not mutate
// a Layer while another goroutine walks a chain containing it.
//
// Message semantics:
//   - Internal and public messages are stored newest first.
//   - Error() is cached and recomputed on every AddInternal. It joins this
//     layer's internal messages with ": ", followed by the previous cause's
//     chain: the full internal chain if it is a Layer, its Error() otherwise
//     (aggregates contribute nothing).
//   - Public messages never affect Error().
package fault

import (
	"maps"
	"slices"
	"strings"
)

// Layer is a single node in an error chain.
type Layer struct {
	internals []string
	publics   []string
	ctx       fields
	origin    Origin // zero until a valid origin is set
	code      Code
	prev      error
	msg       string
}

// NewLayer returns a layer wrapping previous (which may be nil). A non-empty
// internal message is added as if by AddInternal.
func NewLayer(internal string, previous error) *Layer {
	l := &Layer{prev: previous}
	if internal != "" {
		l.AddInternal(internal)
	} else {
		l.refresh()
	}
	return l
}

func (l *Layer) Error() string {
	if l == nil {
		return ""
	}
	return l.msg
}

// Unwrap returns the previous cause, or nil.
func (l *Layer) Unwrap() error {
	if l == nil {
		return nil
	}
	return l.prev
}

// AddContext merges m into this layer. Empty keys are dropped and existing
// keys are overwritten. Keys are applied in sorted order so that Fields is
// deterministic.
func (l *Layer) AddContext(m map[string]any) {
	for _, k := range slices.Sorted(maps.Keys(m)) {
		l.ctx = l.ctx.set(k, m[k])
	}
}

// AddFields merges key-value pairs into this layer. A non-string or empty
// key drops its pair; a trailing key is stored with a nil value.
func (l *Layer) AddFields(kv ...any) {
	for _, f := range ctxFromKV(kv...) {
		l.ctx = l.ctx.set(f.Key, f.Val)
	}
}

// AddInternal prepends a developer-facing message. Empty messages are ignored.
func (l *Layer) AddInternal(msg string) {
	if msg == "" {
		return
	}
	l.internals = slices.Insert(l.internals, 0, msg)
	l.refresh()
}

// AddPublic prepends a user-facing message. Empty messages are ignored.
func (l *Layer) AddPublic(msg string) {
	if msg == "" {
		return
	}
	l.publics = slices.Insert(l.publics, 0, msg)
}

// Code returns this layer's own code (zero if unset).
func (l *Layer) Code() Code { return l.code }

// SetCode overwrites this layer's code.
func (l *Layer) SetCode(c Code) { l.code = c }

// Origin returns this layer's origin, if one was set.
func (l *Layer) Origin() (Origin, bool) { return l.origin, l.origin.Valid() }

// SetOrigin stores o if it is valid. Invalid origins leave any previously set
// origin untouched.
func (l *Layer) SetOrigin(o Origin) {
	if !o.Valid() {
		return
	}
	l.origin = o
}

// InternalMessages returns a copy of this layer's internal messages, newest first.
func (l *Layer) InternalMessages() []string { return slices.Clone(l.internals) }

// PublicMessages returns a copy of this layer's public messages, newest first.
func (l *Layer) PublicMessages() []string { return slices.Clone(l.publics) }

// Context returns a copy of this layer's own context.
func (l *Layer) Context() map[string]any { return l.ctx.toMap() }

// Fields returns a copy of this layer's own context in insertion order.
func (l *Layer) Fields() []Field { return l.ctx.clone() }

// refresh recomputes the cached message. Previous Layers are flattened
// iteratively; a previous cause is fixed at construction, so the Layer-only
// sub-chain cannot cycle.
func (l *Layer) refresh() {
	var chain []string
	var cur error = l
	for cur != nil {
		layer, ok := cur.(*Layer)
		if ok && layer == nil {
			break
		}
		if !ok {
			if msg := ownMessage(cur); msg != "" {
				chain = append(chain, msg)
			}
			break
		}
		chain = append(chain, layer.internals...)
		cur = layer.prev
	}
	l.msg = strings.Join(chain, chainSep)
}

const chainSep = ": "

var _ error = (*Layer)(nil)
