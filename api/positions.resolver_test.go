package api

import (
	"testing"

	"gokkankeeper/internal/util"

	"github.com/stretchr/testify/require"
)

func Test_validatePublicPositionInput(t *testing.T) {
	t.Run("private positions are never checked", func(t *testing.T) {
		require.Equal(t, "", validatePublicPositionInput(publicPositionInput{
			IsPublic: false,
		}))
	})

	t.Run("public without thesis", func(t *testing.T) {
		require.Equal(t,
			"Public position requires publicThesis.",
			validatePublicPositionInput(publicPositionInput{
				IsPublic:     true,
				CurrentValue: util.FloatPointer(100),
			}))
	})

	t.Run("whitespace thesis does not count", func(t *testing.T) {
		require.Equal(t,
			"Public position requires publicThesis.",
			validatePublicPositionInput(publicPositionInput{
				IsPublic:     true,
				PublicThesis: util.StringPointer("   "),
				CurrentValue: util.FloatPointer(100),
			}))
	})

	t.Run("thesis alone is not enough", func(t *testing.T) {
		require.Equal(t,
			"Public position requires weightPercent, currentValue, or (quantity and avgCost).",
			validatePublicPositionInput(publicPositionInput{
				IsPublic:     true,
				PublicThesis: util.StringPointer("growth bet"),
			}))
	})

	t.Run("quantity without avg cost is not a cost basis", func(t *testing.T) {
		require.NotEqual(t, "", validatePublicPositionInput(publicPositionInput{
			IsPublic:     true,
			PublicThesis: util.StringPointer("growth bet"),
			Quantity:     util.FloatPointer(10),
		}))
	})

	t.Run("weight percent satisfies the rule", func(t *testing.T) {
		require.Equal(t, "", validatePublicPositionInput(publicPositionInput{
			IsPublic:      true,
			PublicThesis:  util.StringPointer("growth bet"),
			WeightPercent: util.FloatPointer(25),
		}))
	})

	t.Run("quantity plus avg cost satisfies the rule", func(t *testing.T) {
		require.Equal(t, "", validatePublicPositionInput(publicPositionInput{
			IsPublic:     true,
			PublicThesis: util.StringPointer("growth bet"),
			Quantity:     util.FloatPointer(10),
			AvgCost:      util.FloatPointer(50),
		}))
	})
}
