package internal

import (
	"testing"

	"gokkankeeper/internal/domain"

	"github.com/stretchr/testify/require"
)

func Test_SnapshotChangePercent(t *testing.T) {
	t.Run("happy path", func(t *testing.T) {
		out := SnapshotChangePercent(
			&domain.Snapshot{TotalAmount: 110},
			&domain.Snapshot{TotalAmount: 100},
		)
		require.NotNil(t, out)
		require.InDelta(t, 10.0, *out, 1e-9)
	})

	t.Run("negative change", func(t *testing.T) {
		out := SnapshotChangePercent(
			&domain.Snapshot{TotalAmount: 90},
			&domain.Snapshot{TotalAmount: 100},
		)
		require.NotNil(t, out)
		require.InDelta(t, -10.0, *out, 1e-9)
	})

	t.Run("missing previous snapshot", func(t *testing.T) {
		out := SnapshotChangePercent(&domain.Snapshot{TotalAmount: 110}, nil)
		require.Nil(t, out)
	})

	t.Run("zero previous total", func(t *testing.T) {
		out := SnapshotChangePercent(
			&domain.Snapshot{TotalAmount: 110},
			&domain.Snapshot{TotalAmount: 0},
		)
		require.Nil(t, out)
	})
}

func Test_RecentSnapshotStats(t *testing.T) {
	t.Run("happy path", func(t *testing.T) {
		out, err := RecentSnapshotStats([]domain.Snapshot{
			{TotalAmount: 100},
			{TotalAmount: 200},
			{TotalAmount: 300},
		})
		require.NoError(t, err)
		require.NotNil(t, out)
		require.InDelta(t, 200.0, out.Mean, 1e-9)
		require.Equal(t, 100.0, out.Min)
		require.Equal(t, 300.0, out.Max)
	})

	t.Run("empty sample", func(t *testing.T) {
		out, err := RecentSnapshotStats(nil)
		require.NoError(t, err)
		require.Nil(t, out)
	})
}
