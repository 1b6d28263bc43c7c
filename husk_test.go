package husk_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"

	"github.com/mrjoshuak/husk"
)

func TestHuskDispatch(t *testing.T) {
	t.Run("nil", func(t *testing.T) {
		h, err := husk.Husk(nil)
		require.NoError(t, err)
		assert.False(t, h.Ok())
	})

	t.Run("string", func(t *testing.T) {
		h, err := husk.Husk("hello")
		require.NoError(t, err)
		_, ok := h.(*husk.TextHusker)
		assert.True(t, ok)
	})

	t.Run("scalars", func(t *testing.T) {
		for _, value := range []any{true, 7, int64(7), uint8(7), 7.5} {
			h, err := husk.Husk(value)
			require.NoError(t, err)
			_, ok := h.(*husk.ScalarHusker)
			assert.True(t, ok, "%T", value)
		}
	})

	t.Run("html node", func(t *testing.T) {
		node, err := html.Parse(strings.NewReader("<p>hi</p>"))
		require.NoError(t, err)
		h, err := husk.Husk(node)
		require.NoError(t, err)
		_, ok := h.(*husk.ElementHusker)
		assert.True(t, ok)
	})

	t.Run("string slice", func(t *testing.T) {
		h, err := husk.Husk([]string{"a", "b"})
		require.NoError(t, err)
		list, ok := h.(*husk.ListHusker)
		require.True(t, ok)
		assert.Equal(t, 2, list.Len())
	})

	t.Run("mixed slice recurses", func(t *testing.T) {
		h, err := husk.Husk([]any{"a", 1, nil})
		require.NoError(t, err)
		list := h.(*husk.ListHusker)
		require.Equal(t, 3, list.Len())
		assert.True(t, list.Index(0).Ok())
		assert.False(t, list.Index(2).Ok())
	})

	t.Run("map", func(t *testing.T) {
		h, err := husk.Husk(map[string]any{"k": "v"})
		require.NoError(t, err)
		_, ok := h.(*husk.JmesPathHusker)
		assert.True(t, ok)
	})

	t.Run("husker passes through unchanged", func(t *testing.T) {
		text := husk.HuskText("x")
		h, err := husk.Husk(text)
		require.NoError(t, err)
		assert.Same(t, text, h)
	})

	t.Run("raw bytes are rejected", func(t *testing.T) {
		_, err := husk.Husk([]byte("no encoding"))
		assert.ErrorIs(t, err, husk.ErrValue)
	})
}

func TestMustHusk(t *testing.T) {
	assert.NotPanics(t, func() { husk.MustHusk("ok") })
	assert.Panics(t, func() { husk.MustHusk(struct{}{}) })
}

func TestDecodeJSON(t *testing.T) {
	t.Run("strict json", func(t *testing.T) {
		h, err := husk.DecodeJSON(`{"a": 1}`)
		require.NoError(t, err)
		n, err := h.One("a")
		require.NoError(t, err)
		got, err := n.Int()
		require.NoError(t, err)
		assert.Equal(t, int64(1), got)
	})

	t.Run("object literal syntax", func(t *testing.T) {
		h, err := husk.DecodeJSON(`{tags: ['x', 'y'],}`)
		require.NoError(t, err)
		tags, err := h.All("tags[]")
		require.NoError(t, err)
		strs, err := tags.Strs()
		require.NoError(t, err)
		assert.Equal(t, []string{"x", "y"}, strs)
	})

	t.Run("bare null is Null", func(t *testing.T) {
		h, err := husk.DecodeJSON("null")
		require.NoError(t, err)
		assert.False(t, h.Ok())
	})

	t.Run("garbage is a value error", func(t *testing.T) {
		_, err := husk.DecodeJSON("{{{")
		assert.ErrorIs(t, err, husk.ErrValue)
	})
}
