package husk_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrjoshuak/husk"
)

func TestNullAbsorbsEverything(t *testing.T) {
	t.Run("searches come back empty", func(t *testing.T) {
		sel, err := husk.Null.Selection("anything")
		require.NoError(t, err)
		assert.Equal(t, 0, sel.Len())

		all, err := husk.Null.All("anything")
		require.NoError(t, err)
		assert.Equal(t, 0, all.Len())
	})

	t.Run("cardinality operators stay Null without error", func(t *testing.T) {
		for name, op := range map[string]func(...any) (husk.Husker, error){
			"One":     husk.Null.One,
			"Some":    husk.Null.Some,
			"First":   husk.Null.First,
			"Last":    husk.Null.Last,
			"Any":     husk.Null.Any,
			"OneOf":   husk.Null.OneOf,
			"SomeOf":  husk.Null.SomeOf,
			"FirstOf": husk.Null.FirstOf,
			"AnyOf":   husk.Null.AnyOf,
		} {
			h, err := op("anything")
			require.NoError(t, err, name)
			assert.False(t, h.Ok(), name)
		}
	})

	t.Run("projections stay Null", func(t *testing.T) {
		assert.False(t, husk.Null.Text().Ok())
		assert.False(t, husk.Null.Multiline().Ok())
		parsed, err := husk.Null.JSON()
		require.NoError(t, err)
		assert.False(t, parsed.Ok())
	})

	t.Run("typed accessors return zero values", func(t *testing.T) {
		s, err := husk.Null.Str()
		require.NoError(t, err)
		assert.Equal(t, "", s)

		n, err := husk.Null.Int()
		require.NoError(t, err)
		assert.Equal(t, int64(0), n)

		f, err := husk.Null.Float()
		require.NoError(t, err)
		assert.Equal(t, float64(0), f)

		d, err := husk.Null.Decimal()
		require.NoError(t, err)
		assert.True(t, d.IsZero())

		when, err := husk.Null.Date()
		require.NoError(t, err)
		assert.True(t, when.IsZero())

		mapped, err := husk.Null.Lookup(map[string]string{"a": "b"})
		require.NoError(t, err)
		assert.Equal(t, "", mapped)
	})

	t.Run("identity", func(t *testing.T) {
		assert.False(t, husk.Null.Ok())
		assert.Nil(t, husk.Null.Raw())
		assert.Equal(t, "<Null>", husk.Null.String())
	})
}
