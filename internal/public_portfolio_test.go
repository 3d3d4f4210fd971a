package internal

import (
	"testing"

	"gokkankeeper/internal/domain"
	"gokkankeeper/internal/util"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func Test_BuildPublicPortfolio(t *testing.T) {
	t.Run("value-based allocation splits by market value", func(t *testing.T) {
		out := BuildPublicPortfolio([]domain.PublicPositionRow{
			{
				ID:                uuid.New(),
				Symbol:            "VTI",
				Name:              "Total Market",
				CurrentValue:      util.FloatPointer(800),
				ProfitLossPercent: util.FloatPointer(12),
			},
			{
				ID:                uuid.New(),
				Symbol:            "BND",
				Name:              "Bonds",
				CurrentValue:      util.FloatPointer(200),
				ProfitLossPercent: util.FloatPointer(-1),
			},
		})

		require.Len(t, out.Data, 2)
		require.Empty(t, out.Meta.Warnings)
		require.Equal(t, 80.0, *out.Data[0].AllocationPercent)
		require.Equal(t, 20.0, *out.Data[1].AllocationPercent)
		require.Equal(t, 12.0, *out.Data[0].ReturnPercent)
		require.False(t, out.Data[0].IsEstimatedReturn)
	})

	t.Run("quantity treats currentValue as unit price", func(t *testing.T) {
		out := BuildPublicPortfolio([]domain.PublicPositionRow{
			{
				ID:                uuid.New(),
				Symbol:            "AAPL",
				Quantity:          util.FloatPointer(3),
				CurrentValue:      util.FloatPointer(100),
				ProfitLossPercent: util.FloatPointer(0),
			},
			{
				ID:                uuid.New(),
				Symbol:            "CASH",
				CurrentValue:      util.FloatPointer(300),
				ProfitLossPercent: util.FloatPointer(0),
			},
		})

		// 3 * 100 vs 300 as-is
		require.Equal(t, 50.0, *out.Data[0].AllocationPercent)
		require.Equal(t, 50.0, *out.Data[1].AllocationPercent)
	})

	t.Run("any weight switches the whole portfolio to weight mode", func(t *testing.T) {
		weightless := uuid.New()
		out := BuildPublicPortfolio([]domain.PublicPositionRow{
			{
				ID:                uuid.New(),
				Symbol:            "BTC",
				WeightPercent:     util.FloatPointer(60),
				ProfitLossPercent: util.FloatPointer(40),
			},
			{
				ID:                weightless,
				Symbol:            "ETH",
				CurrentValue:      util.FloatPointer(500),
				ProfitLossPercent: util.FloatPointer(10),
			},
		})

		require.Equal(t, 60.0, *out.Data[0].AllocationPercent)
		require.Nil(t, out.Data[1].AllocationPercent)
		require.Equal(t, "", cmp.Diff(
			[]domain.PublicPortfolioWarning{
				{
					PositionID: weightless,
					Symbol:     "ETH",
					Message:    "Missing weightPercent while portfolio uses weight-based allocation.",
				},
			},
			out.Meta.Warnings,
		))
	})

	t.Run("return estimated from cost basis when not provided", func(t *testing.T) {
		out := BuildPublicPortfolio([]domain.PublicPositionRow{
			{
				ID:           uuid.New(),
				Symbol:       "TSLA",
				AvgCost:      util.FloatPointer(100),
				CurrentValue: util.FloatPointer(110),
			},
		})

		require.InDelta(t, 10.0, *out.Data[0].ReturnPercent, 1e-9)
		require.True(t, out.Data[0].IsEstimatedReturn)
		require.Empty(t, out.Meta.Warnings)
	})

	t.Run("zero avg cost cannot estimate a return", func(t *testing.T) {
		id := uuid.New()
		out := BuildPublicPortfolio([]domain.PublicPositionRow{
			{
				ID:           id,
				Symbol:       "FREE",
				AvgCost:      util.FloatPointer(0),
				CurrentValue: util.FloatPointer(50),
			},
		})

		require.Nil(t, out.Data[0].ReturnPercent)
		require.Len(t, out.Meta.Warnings, 1)
		require.Equal(t, id, out.Meta.Warnings[0].PositionID)
		require.Equal(t,
			"Missing return inputs. Set profitLossPercent or provide avgCost and currentValue.",
			out.Meta.Warnings[0].Message)
	})

	t.Run("no allocation inputs at all", func(t *testing.T) {
		out := BuildPublicPortfolio([]domain.PublicPositionRow{
			{ID: uuid.New(), Symbol: "A"},
			{ID: uuid.New(), Symbol: "B"},
		})

		require.Nil(t, out.Data[0].AllocationPercent)
		require.Nil(t, out.Data[1].AllocationPercent)

		// one return warning and one allocation warning per row
		require.Len(t, out.Meta.Warnings, 4)
		require.Equal(t,
			"Missing allocation inputs. Set currentValue (or quantity+currentValue) or use weightPercent.",
			out.Meta.Warnings[2].Message)
	})

	t.Run("empty input yields empty data, no warnings", func(t *testing.T) {
		out := BuildPublicPortfolio(nil)
		require.Empty(t, out.Data)
		require.Empty(t, out.Meta.Warnings)
	})

	t.Run("input order is preserved", func(t *testing.T) {
		out := BuildPublicPortfolio([]domain.PublicPositionRow{
			{ID: uuid.New(), Symbol: "THIRD", ProfitLossPercent: util.FloatPointer(0), CurrentValue: util.FloatPointer(1)},
			{ID: uuid.New(), Symbol: "FIRST", ProfitLossPercent: util.FloatPointer(0), CurrentValue: util.FloatPointer(1)},
		})

		require.Equal(t, "THIRD", out.Data[0].Symbol)
		require.Equal(t, "FIRST", out.Data[1].Symbol)
	})
}
