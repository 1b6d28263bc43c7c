package husk_test

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrjoshuak/husk"
)

func TestTextSelectionGroupRule(t *testing.T) {
	t.Run("no groups yields whole matches", func(t *testing.T) {
		sel, err := husk.HuskText("a1 b2").Selection(`\w\d`)
		require.NoError(t, err)
		strs, err := sel.Strs()
		require.NoError(t, err)
		assert.Equal(t, []string{"a1", "b2"}, strs)
	})

	t.Run("one group yields the group", func(t *testing.T) {
		sel, err := husk.HuskText("a1 b2").Selection(`\w(\d)`)
		require.NoError(t, err)
		strs, err := sel.Strs()
		require.NoError(t, err)
		assert.Equal(t, []string{"1", "2"}, strs)
	})

	t.Run("two or more groups yield one list per match", func(t *testing.T) {
		sel, err := husk.HuskText("a1 b2").Selection(`(\w)(\d)`)
		require.NoError(t, err)
		require.Equal(t, 2, sel.Len())
		for i, want := range [][]string{{"a", "1"}, {"b", "2"}} {
			inner, ok := sel.Index(i).(*husk.ListHusker)
			require.True(t, ok, "match %d should be a list", i)
			strs, err := inner.Strs()
			require.NoError(t, err)
			assert.Equal(t, want, strs)
		}
	})

	t.Run("unmatched optional group is Null", func(t *testing.T) {
		sel, err := husk.HuskText("ab").Selection(`(a)(x)?(b)`)
		require.NoError(t, err)
		require.Equal(t, 1, sel.Len())
		inner := sel.Index(0).(*husk.ListHusker)
		require.Equal(t, 3, inner.Len())
		assert.True(t, inner.Index(0).Ok())
		assert.False(t, inner.Index(1).Ok())
		assert.True(t, inner.Index(2).Ok())
	})

	t.Run("precompiled pattern", func(t *testing.T) {
		sel, err := husk.HuskText("x9").Selection(regexp.MustCompile(`(\d)`))
		require.NoError(t, err)
		assert.Equal(t, 1, sel.Len())
	})

	t.Run("flag letters", func(t *testing.T) {
		h, err := husk.HuskText("Hello\nWorld").One(`^world$`, "im")
		require.NoError(t, err)
		assert.Equal(t, "World", h.String())
	})

	t.Run("unknown flag", func(t *testing.T) {
		_, err := husk.HuskText("x").Selection(`x`, "q")
		assert.ErrorIs(t, err, husk.ErrValue)
	})

	t.Run("bad pattern", func(t *testing.T) {
		_, err := husk.HuskText("x").Selection(`(`)
		assert.ErrorIs(t, err, husk.ErrValue)
	})
}

func TestTextOperations(t *testing.T) {
	t.Run("sub", func(t *testing.T) {
		h, err := husk.HuskText("a-b-c").Sub(`-`, "+")
		require.NoError(t, err)
		assert.Equal(t, "a+b+c", h.String())
	})

	t.Run("sub with groups", func(t *testing.T) {
		h, err := husk.HuskText("12 34").Sub(`(\d)(\d)`, "$2$1")
		require.NoError(t, err)
		assert.Equal(t, "21 43", h.String())
	})

	t.Run("normalized", func(t *testing.T) {
		assert.Equal(t, "a b", husk.HuskText("  a \t b ").Normalized().String())
	})

	t.Run("case folding", func(t *testing.T) {
		assert.Equal(t, "abc", husk.HuskText("aBc").Lower().String())
		assert.Equal(t, "ABC", husk.HuskText("aBc").Upper().String())
	})

	t.Run("strip", func(t *testing.T) {
		assert.Equal(t, "x", husk.HuskText(" x\n").Strip().String())
	})

	t.Run("predicates", func(t *testing.T) {
		h := husk.HuskText("hello world")
		assert.True(t, h.Contains("lo w"))
		assert.True(t, h.HasPrefix("hello"))
		assert.True(t, h.HasSuffix("world"))
		assert.False(t, h.Contains("xyz"))
	})

	t.Run("split", func(t *testing.T) {
		strs, err := husk.HuskText("a,b,c").Split(",").Strs()
		require.NoError(t, err)
		assert.Equal(t, []string{"a", "b", "c"}, strs)
	})

	t.Run("add", func(t *testing.T) {
		assert.Equal(t, "ab", husk.HuskText("a").Add(husk.HuskText("b")).String())
	})

	t.Run("equality by value", func(t *testing.T) {
		assert.True(t, husk.HuskText("x").Equal(husk.HuskText("x")))
		assert.True(t, husk.HuskText("a").Less(husk.HuskText("b")))
	})

	t.Run("text and multiline are identity", func(t *testing.T) {
		h := husk.HuskText("x")
		assert.Equal(t, husk.Husker(h), h.Text())
		assert.Equal(t, husk.Husker(h), h.Multiline())
	})
}

func TestScalarHusker(t *testing.T) {
	t.Run("int", func(t *testing.T) {
		h := husk.HuskScalar(7)
		n, err := h.Int()
		require.NoError(t, err)
		assert.Equal(t, int64(7), n)
		assert.Equal(t, "7", h.String())
	})

	t.Run("integral float converts to int", func(t *testing.T) {
		n, err := husk.HuskScalar(3.0).Int()
		require.NoError(t, err)
		assert.Equal(t, int64(3), n)
	})

	t.Run("fractional float does not", func(t *testing.T) {
		_, err := husk.HuskScalar(3.5).Int()
		assert.ErrorIs(t, err, husk.ErrValue)
	})

	t.Run("bool", func(t *testing.T) {
		h := husk.HuskScalar(true)
		b, err := h.Bool()
		require.NoError(t, err)
		assert.True(t, b)
		assert.Equal(t, "true", h.String())
	})

	t.Run("selection runs over the text rendering", func(t *testing.T) {
		sel, err := husk.HuskScalar(1234).Selection(`(\d\d)`)
		require.NoError(t, err)
		assert.Equal(t, 2, sel.Len())
	})
}
