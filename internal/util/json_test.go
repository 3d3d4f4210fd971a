package util

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_DecodeOrDefault(t *testing.T) {
	t.Run("valid content decodes", func(t *testing.T) {
		out, ok := DecodeOrDefault[[]string](StringPointer(`["a","b"]`), nil)
		require.True(t, ok)
		require.Equal(t, []string{"a", "b"}, out)
	})

	t.Run("nil column yields fallback", func(t *testing.T) {
		out, ok := DecodeOrDefault[[]string](nil, []string{})
		require.False(t, ok)
		require.Equal(t, []string{}, out)
	})

	t.Run("empty string yields fallback", func(t *testing.T) {
		out, ok := DecodeOrDefault[[]string](StringPointer(""), nil)
		require.False(t, ok)
		require.Nil(t, out)
	})

	t.Run("malformed content swallowed", func(t *testing.T) {
		out, ok := DecodeOrDefault[[]string](StringPointer(`{not json`), nil)
		require.False(t, ok)
		require.Nil(t, out)
	})

	t.Run("wrong shape swallowed", func(t *testing.T) {
		type ref struct {
			Type  string `json:"type"`
			Value string `json:"value"`
		}
		out, ok := DecodeOrDefault[[]ref](StringPointer(`"just a string"`), nil)
		require.False(t, ok)
		require.Nil(t, out)
	})
}

func Test_EncodeJSON(t *testing.T) {
	t.Run("empty slice stays a list", func(t *testing.T) {
		out, err := EncodeJSON([]string{})
		require.NoError(t, err)
		require.Equal(t, "[]", out)
	})
}
