package domain

import (
	"time"

	"github.com/google/uuid"
)

// PublicPositionRow is a public position joined to its owning granary's name.
// Row order carries the query's ordering (public_order ASC, updated_at DESC)
// and must be preserved by the aggregation.
type PublicPositionRow struct {
	ID                uuid.UUID
	GranaryID         *uuid.UUID
	GranaryName       *string
	Name              string
	Symbol            string
	Quantity          *float64
	AvgCost           *float64
	CurrentValue      *float64
	WeightPercent     *float64
	ProfitLoss        *float64
	ProfitLossPercent *float64
	PublicThesis      *string
	PublicOrder       int32
	LastPublicUpdate  *time.Time
}

type PublicPortfolioItem struct {
	Symbol            string     `json:"symbol"`
	Name              string     `json:"name"`
	GranaryID         *uuid.UUID `json:"granaryId"`
	GranaryName       *string    `json:"granaryName"`
	AllocationPercent *float64   `json:"allocationPercent"`
	ReturnPercent     *float64   `json:"returnPercent"`
	Thesis            *string    `json:"thesis"`
	LastUpdated       *time.Time `json:"lastUpdated"`
	IsEstimatedReturn bool       `json:"isEstimatedReturn"`
}

type PublicPortfolioWarning struct {
	PositionID uuid.UUID `json:"positionId"`
	Symbol     string    `json:"symbol"`
	Message    string    `json:"message"`
}

type PublicPortfolioMeta struct {
	Warnings []PublicPortfolioWarning `json:"warnings"`
}

type PublicPortfolio struct {
	Data []PublicPortfolioItem `json:"data"`
	Meta PublicPortfolioMeta   `json:"meta"`
}
