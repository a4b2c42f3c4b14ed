package fault

import (
	"errors"
	"fmt"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAggregate_KeepsOrderAndDropsNils(t *testing.T) {
	t.Parallel()

	a, b := errors.New("a"), errors.New("b")
	agg := NewAggregate(a, nil, b, a)

	assert.Equal(t, []error{a, b, a}, agg.Unwrap())
	assert.Equal(t, 3, agg.Len())
	assert.Equal(t, []error{a, b, a}, slices.Collect(agg.All()))
	assert.Equal(t, "", agg.Error())
}

func TestAggregate_Empty(t *testing.T) {
	t.Parallel()

	agg := NewAggregate()
	assert.Equal(t, 0, agg.Len())
	assert.Empty(t, agg.Unwrap())
	assert.Equal(t, []error{agg}, Nodes(agg))

	var nilAgg *Aggregate
	assert.Equal(t, 0, nilAgg.Len())
	assert.Nil(t, nilAgg.Unwrap())
}

func TestAggregate_IsAsTraverseChildren(t *testing.T) {
	t.Parallel()

	sentinel := errors.New("sentinel")
	inner := New("inner", WithCode(9))
	agg := NewAggregate(Wrap(sentinel), inner)

	assert.ErrorIs(t, agg, sentinel)
	var l *Layer
	assert.ErrorAs(t, agg, &l)
}

func TestAggregate_Formatting(t *testing.T) {
	t.Parallel()

	agg := NewAggregate(New("first", WithCode(1)), New("second"))

	assert.Equal(t, "", fmt.Sprintf("%v", agg))
	assert.Equal(t, "", fmt.Sprintf("%s", agg))
	assert.Equal(t, `""`, fmt.Sprintf("%q", agg))

	verbose := fmt.Sprintf("%+v", agg)
	assert.Equal(t, "code=1 msg=\"first\"\nmsg=\"second\"", verbose)
}
