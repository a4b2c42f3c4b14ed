// walk.go: cycle-safe, depth-first, newest-first chain traversal.
//
// Node shapes (stdlib unwrap conventions):
//   - Unwrap() error   → previous cause (Layer, fmt.Errorf("%w"), ...)
//   - Unwrap() []error → children (Aggregate, errors.Join, multi-%w)
//
// Order:
//   - Children are pushed on TOP of the work stack in declaration order, so
//     the last-declared child is visited first.
//   - A previous cause is inserted at the BOTTOM, so it is only visited once
//     everything already queued (children and their subtrees, siblings) has
//     drained.
//
// The visited set is keyed by identity, not value:
//   - seenPtr (map[uintptr]struct{}) for pointer dynamic types
//   - seenErr (map[error]struct{})   for other comparable dynamic types
//
// Non-comparable, non-pointer dynamics (and comparable types holding an
// unhashable value in an interface field) cannot be used as map keys. They
// are visited every time they are reached, up to maxOpaqueVisits in total,
// which bounds cycles that run only through such values.
package fault

import (
	"errors"
	"reflect"
)

type singleUnwrapper interface{ Unwrap() error }
type multiUnwrapper interface{ Unwrap() []error }

// maxOpaqueVisits bounds visits of nodes without a usable identity. Nodes
// that can be identified are never counted.
const maxOpaqueVisits = 1 << 16

// ---------- identity ---------------------------------------------------------

// fastIsPointer returns true if err's dynamic type is a pointer.
// Fast path for package types; fallback to reflect for others.
func fastIsPointer(err error) bool {
	switch err.(type) {
	case *Layer, *Aggregate:
		return true
	}
	return reflect.ValueOf(err).Kind() == reflect.Pointer
}

// visited tracks node identity across one traversal.
type visited struct {
	seenErr map[error]struct{}
	seenPtr map[uintptr]struct{}
	opaque  int
}

func newVisited() *visited {
	return &visited{
		seenErr: make(map[error]struct{}, 8),
		seenPtr: make(map[uintptr]struct{}, 8),
	}
}

// mark reports whether err should be visited: true if it was newly marked,
// false if already seen or if the opaque budget is spent.
func (v *visited) mark(err error) bool {
	if fastIsPointer(err) {
		id := reflect.ValueOf(err).Pointer()
		if _, dup := v.seenPtr[id]; dup {
			return false
		}
		v.seenPtr[id] = struct{}{}
		return true
	}
	if reflect.TypeOf(err).Comparable() {
		if fresh, ok := v.markValue(err); ok {
			return fresh
		}
	}
	v.opaque++
	return v.opaque <= maxOpaqueVisits
}

// markValue records err in seenErr. ok is false when err cannot be hashed:
// a comparable type whose interface field holds a slice, map or func panics
// on map access.
func (v *visited) markValue(err error) (fresh, ok bool) {
	defer func() {
		if recover() != nil {
			fresh, ok = false, false
		}
	}()
	if _, dup := v.seenErr[err]; dup {
		return false, true
	}
	v.seenErr[err] = struct{}{}
	return true, true
}

// ---------- work stack -------------------------------------------------------

// workStack is a double-ended work list restricted to the three operations
// the walk needs. Items pushed on top pop LIFO. Items inserted at the bottom
// sit below everything present, each new one below the previous, so they pop
// FIFO once the top region is empty. top and bottom model those two regions.
type workStack struct {
	top    []error
	bottom []error
	head   int // next bottom item to pop
}

func (w *workStack) push(err error)       { w.top = append(w.top, err) }
func (w *workStack) pushBottom(err error) { w.bottom = append(w.bottom, err) }

func (w *workStack) len() int { return len(w.top) + len(w.bottom) - w.head }

func (w *workStack) pop() error {
	if n := len(w.top); n > 0 {
		err := w.top[n-1]
		w.top[n-1] = nil
		w.top = w.top[:n-1]
		return err
	}
	err := w.bottom[w.head]
	w.bottom[w.head] = nil
	w.head++
	if w.head == len(w.bottom) {
		w.bottom, w.head = w.bottom[:0], 0
	}
	return err
}

// ---------- API --------------------------------------------------------------

// Walk visits every distinct error reachable from err exactly once, depth
// first and newest first. If visit returns false, traversal stops early.
// A nil err or nil visit is a no-op; nil children and causes are skipped.
func Walk(err error, visit func(error) bool) {
	if err == nil || visit == nil {
		return
	}

	var ws workStack
	seen := newVisited()
	ws.push(err)

	for ws.len() > 0 {
		cur := ws.pop()
		if !seen.mark(cur) {
			continue
		}
		if !visit(cur) {
			return
		}

		switch u := cur.(type) {
		case multiUnwrapper:
			for _, c := range u.Unwrap() {
				if c != nil {
					ws.push(c)
				}
			}
		case singleUnwrapper:
			if p := u.Unwrap(); p != nil {
				ws.pushBottom(p)
			}
		}
	}
}

// Nodes returns every error Walk visits, in visit order.
func Nodes(err error) []error {
	var out []error
	Walk(err, func(e error) bool {
		out = append(out, e)
		return true
	})
	return out
}

// Has reports whether target appears anywhere in err's unwrap graph.
// It wraps errors.Is with nil-safety.
func Has(err, target error) bool {
	if err == nil || target == nil {
		return false
	}
	return errors.Is(err, target)
}
