package repository

import (
	"testing"
	"time"

	"gokkankeeper/internal/domain"
	"gokkankeeper/internal/util"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/stretchr/testify/require"
)

func columnNames(cols postgres.ColumnList) []string {
	names := make([]string, 0, len(cols))
	for _, col := range cols {
		names = append(names, col.Name())
	}
	return names
}

func Test_GranaryChangeSet_columns(t *testing.T) {
	now := time.Now().UTC()

	t.Run("empty change-set is a no-op", func(t *testing.T) {
		cols, values := GranaryChangeSet{}.columns(now)
		require.Empty(t, cols)
		require.Empty(t, values)
	})

	t.Run("plain field stamps only updated_at", func(t *testing.T) {
		cols, values := GranaryChangeSet{
			Name: util.StringPointer("shinokkan"),
		}.columns(now)

		require.Equal(t, []string{"name", "updated_at"}, columnNames(cols))
		require.Len(t, values, 2)
	})

	t.Run("public field also stamps last_public_update", func(t *testing.T) {
		cols, _ := GranaryChangeSet{
			IsPublic: util.BoolPointer(true),
		}.columns(now)

		require.Equal(t,
			[]string{"is_public", "last_public_update", "updated_at"},
			columnNames(cols))
	})

	t.Run("public thesis counts as a public field", func(t *testing.T) {
		cols, _ := GranaryChangeSet{
			PublicThesis: util.StringPointer("long-term hold"),
		}.columns(now)

		require.Contains(t, columnNames(cols), "last_public_update")
	})
}

func Test_PositionChangeSet_columns(t *testing.T) {
	now := time.Now().UTC()

	t.Run("empty change-set is a no-op", func(t *testing.T) {
		cols, values := PositionChangeSet{}.columns(now)
		require.Empty(t, cols)
		require.Empty(t, values)
	})

	t.Run("price fields do not touch last_public_update", func(t *testing.T) {
		cols, _ := PositionChangeSet{
			CurrentValue: util.FloatPointer(123.45),
			Quantity:     util.FloatPointer(10),
		}.columns(now)

		names := columnNames(cols)
		require.NotContains(t, names, "last_public_update")
		require.Equal(t, "updated_at", names[len(names)-1])
	})

	t.Run("public order stamps last_public_update", func(t *testing.T) {
		cols, _ := PositionChangeSet{
			PublicOrder: util.Int32Pointer(3),
		}.columns(now)

		require.Equal(t,
			[]string{"public_order", "last_public_update", "updated_at"},
			columnNames(cols))
	})
}

func Test_SnapshotChangeSet_columns(t *testing.T) {
	t.Run("empty change-set is a no-op", func(t *testing.T) {
		cols, values := SnapshotChangeSet{}.columns()
		require.Empty(t, cols)
		require.Empty(t, values)
	})

	t.Run("writes only the provided fields", func(t *testing.T) {
		cols, values := SnapshotChangeSet{
			TotalAmount: util.FloatPointer(1000),
			Memo:        util.StringPointer("rebalanced"),
		}.columns()

		require.Equal(t, []string{"total_amount", "memo"}, columnNames(cols))
		require.Len(t, values, 2)
	})
}

func Test_JudgmentDiaryEntryChangeSet_columns(t *testing.T) {
	now := time.Now().UTC()

	t.Run("empty change-set is a no-op", func(t *testing.T) {
		cols, values, err := JudgmentDiaryEntryChangeSet{}.columns(now)
		require.NoError(t, err)
		require.Empty(t, cols)
		require.Empty(t, values)
	})

	t.Run("non-nil empty slice overwrites the column", func(t *testing.T) {
		cols, _, err := JudgmentDiaryEntryChangeSet{
			StrategyTags: []string{},
		}.columns(now)

		require.NoError(t, err)
		require.Equal(t, []string{"strategy_tags_json", "updated_at"}, columnNames(cols))
	})

	t.Run("structured fields serialize alongside scalars", func(t *testing.T) {
		cols, values, err := JudgmentDiaryEntryChangeSet{
			Title: util.StringPointer("cut leverage"),
			Assets: []domain.JudgmentAsset{
				{Type: "ETF", TickerOrName: "KODEX 200"},
			},
			Confidence: util.Int32Pointer(4),
		}.columns(now)

		require.NoError(t, err)
		require.Equal(t,
			[]string{"title", "assets_json", "confidence", "updated_at"},
			columnNames(cols))
		require.Len(t, values, 4)
	})
}
