// wrap.go: factories that create a Layer and decorate it in one call.
//
// Each factory builds a fresh Layer and applies the wrappers in order.
// Nil wrappers are skipped.
package fault

// New creates a Layer with an internal message and no previous cause.
//
//	err := fault.New("load config", fault.WithCode(500), fault.WithPublic("try again"))
func New(internal string, wrappers ...Wrapper) *Layer {
	return apply(NewLayer(internal, nil), wrappers)
}

// Wrap creates a Layer whose previous cause is err. The new layer has no
// internal message unless a wrapper adds one. Wrap(nil) behaves like New("").
func Wrap(err error, wrappers ...Wrapper) *Layer {
	return apply(NewLayer("", err), wrappers)
}

// Combine fans several failures into one: it returns a Layer whose previous
// cause is an Aggregate of errs (nil entries dropped).
func Combine(errs []error, wrappers ...Wrapper) *Layer {
	return apply(NewLayer("", NewAggregate(errs...)), wrappers)
}

func apply(l *Layer, wrappers []Wrapper) *Layer {
	for _, w := range wrappers {
		if w != nil {
			w(l)
		}
	}
	return l
}
