package domain

import (
	"time"

	"github.com/google/uuid"
)

// Snapshot dates are calendar dates, not instants.
const SnapshotDateLayout = "2006-01-02"

type Snapshot struct {
	ID               uuid.UUID `json:"id"`
	GranaryID        uuid.UUID `json:"granaryId"`
	Date             string    `json:"date"`
	TotalAmount      float64   `json:"totalAmount"`
	AvailableBalance *float64  `json:"availableBalance"`
	ProfitLoss       *float64  `json:"profitLoss"`
	Memo             *string   `json:"memo"`
	CreatedAt        time.Time `json:"createdAt"`
}
