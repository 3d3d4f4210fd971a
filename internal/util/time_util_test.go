package util

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func Test_DaysSince(t *testing.T) {
	t.Run("whole days", func(t *testing.T) {
		from := NewDate(2024, 1, 1)
		now := NewDate(2024, 1, 8)
		require.Equal(t, 7, DaysSince(from, now))
	})

	t.Run("partial day floors down", func(t *testing.T) {
		from := NewDate(2024, 1, 1)
		now := from.Add(47 * time.Hour)
		require.Equal(t, 1, DaysSince(from, now))
	})

	t.Run("same instant", func(t *testing.T) {
		from := NewDate(2024, 1, 1)
		require.Equal(t, 0, DaysSince(from, from))
	})
}

func Test_ParseDate(t *testing.T) {
	t.Run("round trips through FormatDate", func(t *testing.T) {
		parsed, err := ParseDate("2024-03-09")
		require.NoError(t, err)
		require.Equal(t, "2024-03-09", FormatDate(parsed))
	})

	t.Run("rejects other layouts", func(t *testing.T) {
		_, err := ParseDate("03/09/2024")
		require.Error(t, err)
	})
}
