package domain

import (
	"time"

	"github.com/google/uuid"
)

type Position struct {
	ID                uuid.UUID  `json:"id"`
	GranaryID         *uuid.UUID `json:"granaryId"`
	Name              string     `json:"name"`
	Symbol            string     `json:"symbol"`
	Market            *string    `json:"market"`
	AssetType         *string    `json:"assetType"`
	Quantity          *float64   `json:"quantity"`
	AvgCost           *float64   `json:"avgCost"`
	CurrentValue      *float64   `json:"currentValue"`
	WeightPercent     *float64   `json:"weightPercent"`
	ProfitLoss        *float64   `json:"profitLoss"`
	ProfitLossPercent *float64   `json:"profitLossPercent"`
	Note              *string    `json:"note"`
	IsPublic          bool       `json:"isPublic"`
	PublicThesis      *string    `json:"publicThesis"`
	PublicOrder       int32      `json:"publicOrder"`
	LastPublicUpdate  *time.Time `json:"lastPublicUpdate"`
	CreatedAt         time.Time  `json:"createdAt"`
	UpdatedAt         time.Time  `json:"updatedAt"`
}
