package husk_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrjoshuak/husk"
)

func textList(values ...string) *husk.ListHusker {
	items := make([]husk.Husker, len(values))
	for i, v := range values {
		items[i] = husk.HuskText(v)
	}
	return husk.HuskList(items...)
}

func TestListSelection(t *testing.T) {
	list := textList("alpha", "beta", "gamma")

	t.Run("no spec keeps everything", func(t *testing.T) {
		sel, err := list.Selection()
		require.NoError(t, err)
		assert.Equal(t, 3, sel.Len())
	})

	t.Run("predicate spec filters", func(t *testing.T) {
		sel, err := list.Selection(func(h husk.Husker) bool {
			return strings.HasPrefix(h.String(), "g")
		})
		require.NoError(t, err)
		strs, err := sel.Strs()
		require.NoError(t, err)
		assert.Equal(t, []string{"gamma"}, strs)
	})

	t.Run("sub-spec keeps children with a match", func(t *testing.T) {
		sel, err := list.Selection("^b")
		require.NoError(t, err)
		strs, err := sel.Strs()
		require.NoError(t, err)
		assert.Equal(t, []string{"beta"}, strs)
	})

	t.Run("cardinality runs over the children", func(t *testing.T) {
		h, err := list.One("amma$")
		require.NoError(t, err)
		assert.Equal(t, "gamma", h.String())

		_, err = list.One("a$")
		assert.ErrorIs(t, err, husk.ErrNotUnique)
	})
}

func TestListDedup(t *testing.T) {
	list := textList("a", "b", "a", "c", "b")
	strs, err := list.Dedup().Strs()
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, strs)

	t.Run("custom key", func(t *testing.T) {
		byLen := textList("aa", "bb", "ccc").Dedup(func(h husk.Husker) any {
			return len(h.String())
		})
		strs, err := byLen.Strs()
		require.NoError(t, err)
		assert.Equal(t, []string{"aa", "ccc"}, strs)
	})
}

func TestListProjections(t *testing.T) {
	list := textList("10", "20", "30")

	t.Run("join", func(t *testing.T) {
		joined, err := list.Join(", ")
		require.NoError(t, err)
		assert.Equal(t, "10, 20, 30", joined.String())
	})

	t.Run("ints", func(t *testing.T) {
		ns, err := list.Ints()
		require.NoError(t, err)
		assert.Equal(t, []int64{10, 20, 30}, ns)
	})

	t.Run("floats", func(t *testing.T) {
		fs, err := list.Floats()
		require.NoError(t, err)
		assert.Equal(t, []float64{10, 20, 30}, fs)
	})

	t.Run("map", func(t *testing.T) {
		doubled := list.Map(func(h husk.Husker) husk.Husker {
			return husk.HuskText(h.String() + "0")
		})
		strs, err := doubled.(*husk.ListHusker).Strs()
		require.NoError(t, err)
		assert.Equal(t, []string{"100", "200", "300"}, strs)
	})

	t.Run("filter", func(t *testing.T) {
		kept := list.Filter(func(h husk.Husker) bool {
			return h.String() != "20"
		})
		strs, err := kept.(*husk.ListHusker).Strs()
		require.NoError(t, err)
		assert.Equal(t, []string{"10", "30"}, strs)
	})

	t.Run("concat", func(t *testing.T) {
		combined := list.Concat(textList("40"))
		assert.Equal(t, 4, combined.Len())
	})

	t.Run("raws", func(t *testing.T) {
		assert.Equal(t, []any{"10", "20", "30"}, list.Raws())
	})
}

func TestListBroadcasts(t *testing.T) {
	t.Run("subs", func(t *testing.T) {
		replaced, err := textList("a1", "b2").Subs(`\d`, "#")
		require.NoError(t, err)
		strs, err := replaced.Strs()
		require.NoError(t, err)
		assert.Equal(t, []string{"a#", "b#"}, strs)
	})

	t.Run("attribs over elements", func(t *testing.T) {
		doc, err := husk.ParseHTML(strings.NewReader(
			`<p><a href="/x">x</a><a>no href</a></p>`))
		require.NoError(t, err)
		links, err := doc.All("//a")
		require.NoError(t, err)
		hrefs, err := links.Attribs("href")
		require.NoError(t, err)
		require.Equal(t, 2, hrefs.Len())
		assert.Equal(t, "/x", hrefs.Index(0).String())
		assert.False(t, hrefs.Index(1).Ok())
	})

	t.Run("attribs over text is not supported", func(t *testing.T) {
		_, err := textList("a").Attribs("href")
		assert.ErrorIs(t, err, husk.ErrNotSupported)
	})

	t.Run("multilines over elements", func(t *testing.T) {
		doc, err := husk.ParseHTML(strings.NewReader(
			`<div>a<br>b</div><div>c</div>`))
		require.NoError(t, err)
		divs, err := doc.All("//div")
		require.NoError(t, err)
		strs, err := divs.Multilines().Strs()
		require.NoError(t, err)
		assert.Equal(t, []string{"a\nb", "c"}, strs)
	})

	t.Run("bools over scalars", func(t *testing.T) {
		list := husk.HuskList(husk.HuskScalar(true), husk.HuskScalar(false))
		bs, err := list.Bools()
		require.NoError(t, err)
		assert.Equal(t, []bool{true, false}, bs)
	})

	t.Run("bools over text is not supported", func(t *testing.T) {
		_, err := textList("true").Bools()
		assert.ErrorIs(t, err, husk.ErrNotSupported)
	})
}

func TestListTruthiness(t *testing.T) {
	assert.False(t, husk.EmptyList.Ok())
	assert.True(t, textList("x").Ok())
}
