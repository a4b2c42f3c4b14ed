package fault

import (
	"errors"
	"iter"
	"maps"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type httpStatus int

const statusNotFound httpStatus = 404

type outcome string

const outcomeFailure outcome = "failure"

// severity is a unit-like symbolic value: a struct with a name only.
type severity struct{ name string }

func (s severity) String() string { return s.name }

var severityWarning = severity{name: "Warning"}

func TestWithCode_ScalarsAndEnums(t *testing.T) {
	t.Parallel()

	l := NewLayer("", nil)

	WithCode(500)(l)
	assert.Equal(t, IntCode(500), l.Code())

	WithCode(statusNotFound)(l)
	assert.Equal(t, IntCode(404), l.Code())

	WithCode(severityWarning)(l)
	assert.Equal(t, StringCode("Warning"), l.Code())

	WithCode(outcomeFailure)(l)
	assert.Equal(t, StringCode("failure"), l.Code())

	WithCode(StringCode("explicit"))(l)
	assert.Equal(t, StringCode("explicit"), l.Code())
}

func TestWithCode_UnresolvableIsNoop(t *testing.T) {
	t.Parallel()

	l := NewLayer("", nil)
	l.SetCode(IntCode(1))

	WithCode(3.14)(l)
	WithCode(nil)(l)
	WithCode(Code{})(l)

	assert.Equal(t, IntCode(1), l.Code())
}

func TestWithInternal_EnumsAndStrings(t *testing.T) {
	t.Parallel()

	l := NewLayer("", nil)
	WithInternal(outcomeFailure)(l)
	WithInternal("first")(l)

	assert.Equal(t, []string{"first", "failure"}, l.InternalMessages())
	assert.Equal(t, "first: failure", l.Error())
}

func TestWithPublic_EnumsAndStrings(t *testing.T) {
	t.Parallel()

	l := NewLayer("", nil)
	WithPublic(severityWarning)(l)
	WithPublic("first")(l)
	WithPublic(3.5)(l) // unresolvable: empty, ignored

	assert.Equal(t, []string{"first", "Warning"}, l.PublicMessages())
}

func TestWithContext_Providers(t *testing.T) {
	t.Parallel()

	l := NewLayer("", nil)

	WithContext(map[string]any{"foo": "bar"})(l)
	WithContextFunc(func() map[string]any { return map[string]any{"alpha": "beta"} })(l)
	WithContextSeq(maps.All(map[string]any{"baz": "qux"}))(l)
	WithContextFunc(func() map[string]any { return nil })(l)
	WithContextFunc(nil)(l)
	WithContextSeq(nil)(l)

	assert.Equal(t, []Field{
		{Key: "foo", Val: "bar"},
		{Key: "alpha", Val: "beta"},
		{Key: "baz", Val: "qux"},
	}, l.Fields())
}

func TestWithContextFunc_ResolvedOnApply(t *testing.T) {
	t.Parallel()

	calls := 0
	w := WithContextFunc(func() map[string]any {
		calls++
		return map[string]any{"n": calls}
	})
	require.Equal(t, 0, calls)

	l := NewLayer("", nil)
	w(l)
	assert.Equal(t, 1, calls)
	assert.Equal(t, map[string]any{"n": 1}, l.Context())
}

func TestWithContextSeqFunc_ResolvedOnApply(t *testing.T) {
	t.Parallel()

	calls := 0
	w := WithContextSeqFunc(func() iter.Seq2[string, any] {
		calls++
		return func(yield func(string, any) bool) {
			_ = yield("first", 1) && yield("", "ignored") && yield("second", 2)
		}
	})
	require.Equal(t, 0, calls)

	l := NewLayer("", nil)
	w(l)
	WithContextSeqFunc(func() iter.Seq2[string, any] { return nil })(l)
	WithContextSeqFunc(nil)(l)

	assert.Equal(t, 1, calls)
	assert.Equal(t, []Field{{Key: "first", Val: 1}, {Key: "second", Val: 2}}, l.Fields())
}

func TestWithField_SkipsEmptyKey(t *testing.T) {
	t.Parallel()

	l := NewLayer("", nil)
	WithField("", "ignored")(l)
	WithField("valid", "value")(l)

	assert.Equal(t, map[string]any{"valid": "value"}, l.Context())
}

func TestWithFields_Pairs(t *testing.T) {
	t.Parallel()

	l := NewLayer("", nil)
	WithFields("a", 1, 2, "dropped", "b", 2, "trailing")(l)

	assert.Equal(t, []Field{
		{Key: "a", Val: 1},
		{Key: "b", Val: 2},
		{Key: "trailing", Val: nil},
	}, l.Fields())
}

func TestWithOriginAt_Validates(t *testing.T) {
	t.Parallel()

	l := NewLayer("", nil)
	WithOriginAt(Origin{File: "x.go"})(l)
	_, ok := l.Origin()
	assert.False(t, ok)

	WithOriginAt(Origin{File: "x.go", Line: 3})(l)
	o, ok := l.Origin()
	require.True(t, ok)
	assert.Equal(t, "x.go:3", o.String())
}

func TestFactories_New(t *testing.T) {
	t.Parallel()

	err := New(string(outcomeFailure))
	assert.Equal(t, []string{"failure"}, Internals(err))
	assert.Nil(t, err.Unwrap())
}

func TestFactories_Wrap(t *testing.T) {
	t.Parallel()

	previous := errors.New("base")
	err := Wrap(previous, WithPublic("visible"), WithInternal("hidden"))

	assert.Same(t, previous, err.Unwrap())
	assert.Equal(t, []string{"hidden", "base"}, Internals(err))
	assert.Equal(t, []string{"visible"}, PublicMessages(err))
	assert.Equal(t, "hidden: base", err.Error())
}

func TestFactories_WrapNil(t *testing.T) {
	t.Parallel()

	err := Wrap(nil, WithInternal("alone"))
	assert.Nil(t, err.Unwrap())
	assert.Equal(t, "alone", err.Error())
}

func TestFactories_Combine(t *testing.T) {
	t.Parallel()

	first := New("first")
	second := New("second")

	combined := Combine([]error{first, second}, WithPublic("combined"))

	var agg *Aggregate
	require.ErrorAs(t, combined.Unwrap(), &agg)
	assert.Equal(t, []error{first, second}, agg.Unwrap())
	assert.Equal(t, []string{"combined"}, PublicMessages(combined))
	assert.Equal(t, "", combined.Error())
	assert.ErrorIs(t, combined, first)
	assert.ErrorIs(t, combined, second)
}

func TestFactories_NilWrapperSkipped(t *testing.T) {
	t.Parallel()

	assert.NotPanics(t, func() {
		err := New("x", nil, WithCode(1))
		assert.Equal(t, IntCode(1), err.Code())
	})
}
