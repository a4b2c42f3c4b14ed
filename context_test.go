package fault

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCtxFromKV_EmptyInput(t *testing.T) {
	t.Parallel()

	assert.Empty(t, ctxFromKV())
}

func TestCtxFromKV_ValidPairsPreserveOrder(t *testing.T) {
	t.Parallel()

	fs := ctxFromKV("k1", 1, "k2", 2, "k3", 3)
	assert.Equal(t, fields{{Key: "k1", Val: 1}, {Key: "k2", Val: 2}, {Key: "k3", Val: 3}}, fs)
}

func TestCtxFromKV_InvalidKeyDropsEntirePair(t *testing.T) {
	t.Parallel()

	assert.Equal(t, fields{{Key: "k2", Val: "v2"}}, ctxFromKV(123, "v1", "k2", "v2"))
	assert.Equal(t, fields{{Key: "k2", Val: "v2"}}, ctxFromKV("", "v1", "k2", "v2"))
	assert.Empty(t, ctxFromKV(123))
}

func TestCtxFromKV_TrailingKeyBecomesNilPair(t *testing.T) {
	t.Parallel()

	fs := ctxFromKV("k1", 1, "lonely")
	assert.Equal(t, fields{{Key: "k1", Val: 1}, {Key: "lonely", Val: nil}}, fs)
}

func TestCtxFromKV_RepeatedKeyOverwrites(t *testing.T) {
	t.Parallel()

	fs := ctxFromKV("a", 1, "b", 2, "a", 3)
	assert.Equal(t, fields{{Key: "a", Val: 3}, {Key: "b", Val: 2}}, fs)
}

func TestFields_SetAndClone(t *testing.T) {
	t.Parallel()

	var fs fields
	fs = fs.set("", "ignored")
	fs = fs.set("a", 1)
	fs = fs.set("a", 2)
	assert.Equal(t, fields{{Key: "a", Val: 2}}, fs)

	c := fs.clone()
	c[0].Val = 99
	assert.Equal(t, 2, fs[0].Val)

	assert.Nil(t, fields(nil).clone())
	assert.Equal(t, map[string]any{}, fields(nil).toMap())
}
