package domain

import (
	"time"

	"github.com/google/uuid"
)

type Granary struct {
	ID               uuid.UUID  `json:"id"`
	Name             string     `json:"name"`
	Purpose          string     `json:"purpose"`
	Currency         string     `json:"currency"`
	Owner            string     `json:"owner"`
	IsPublic         bool       `json:"isPublic"`
	PublicThesis     *string    `json:"publicThesis"`
	PublicOrder      *int32     `json:"publicOrder"`
	LastPublicUpdate *time.Time `json:"lastPublicUpdate"`
	CreatedAt        time.Time  `json:"createdAt"`
	UpdatedAt        time.Time  `json:"updatedAt"`
}

// GranaryWithSnapshots is the granary list representation: the granary plus
// its two most recent snapshots and the percentage change between them.
type GranaryWithSnapshots struct {
	Granary
	LatestSnapshot   *Snapshot `json:"latestSnapshot,omitempty"`
	PreviousSnapshot *Snapshot `json:"previousSnapshot,omitempty"`
	ChangePercent    *float64  `json:"changePercent,omitempty"`
}
