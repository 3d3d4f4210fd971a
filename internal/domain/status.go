package domain

type OldestUnupdatedGranary struct {
	Granary         Granary `json:"granary"`
	DaysSinceUpdate int     `json:"daysSinceUpdate"`
}

// SnapshotStats summarizes the total amounts of the sampled snapshots.
type SnapshotStats struct {
	Mean float64 `json:"mean"`
	Min  float64 `json:"min"`
	Max  float64 `json:"max"`
}

type StatusSummary struct {
	TotalGranaries         int                     `json:"totalGranaries"`
	TotalSnapshots         int                     `json:"totalSnapshots"`
	OldestUnupdatedGranary *OldestUnupdatedGranary `json:"oldestUnupdatedGranary,omitempty"`
	RecentSnapshots        []Snapshot              `json:"recentSnapshots"`
	RecentTotals           *SnapshotStats          `json:"recentTotals,omitempty"`
}
