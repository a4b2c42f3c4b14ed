// aggregate.go: fan-in of several independent causes.
//
// An Aggregate has no message of its own: Error() is always "". Its children
// are exposed through Unwrap() []error, so errors.Is/As traverse them and
// Walk treats them as parallel causes. Any other value with Unwrap() []error
// (errors.Join, fmt.Errorf with several %w verbs) is walked the same way.
//
// Formatting: "%+v" prints every child with its own "%+v", newline-separated.
package fault

import (
	"fmt"
	"iter"
	"slices"
)

// Aggregate holds an ordered, fixed list of causes, oldest first.
type Aggregate struct {
	errs []error // non-nil children only
}

// NewAggregate returns an Aggregate over errs in the given order. Nil entries
// are dropped; duplicates are kept (Walk visits each distinct error once).
func NewAggregate(errs ...error) *Aggregate {
	nz := make([]error, 0, len(errs))
	for _, e := range errs {
		if e != nil {
			nz = append(nz, e)
		}
	}
	return &Aggregate{errs: nz}
}

// Error returns "": an aggregate carries no message of its own.
func (a *Aggregate) Error() string { return "" }

// Unwrap exposes the children to stdlib traversal and to Walk.
func (a *Aggregate) Unwrap() []error {
	if a == nil {
		return nil
	}
	return a.errs
}

// Len returns the number of children.
func (a *Aggregate) Len() int {
	if a == nil {
		return 0
	}
	return len(a.errs)
}

// All iterates the children in declaration order.
func (a *Aggregate) All() iter.Seq[error] {
	return slices.Values(a.Unwrap())
}

// Format implements fmt.Formatter.
//
//	%v, %s → "" (like Error())
//	%q     → `""`
//	%+v    → each child with %+v, newline-separated
func (a *Aggregate) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			for i, e := range a.Unwrap() {
				if i > 0 {
					_, _ = fmt.Fprint(s, "\n")
				}
				_, _ = fmt.Fprintf(s, "%+v", e)
			}
			return
		}
		formatConcise(s, a)
	case 'q':
		_, _ = fmt.Fprintf(s, "%q", a.Error())
	default:
		formatConcise(s, a)
	}
}

var _ error = (*Aggregate)(nil)
