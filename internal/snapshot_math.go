package internal

import (
	"gokkankeeper/internal/domain"

	"github.com/montanaflynn/stats"
	"github.com/shopspring/decimal"
)

// SnapshotChangePercent computes the percent change from the previous to the
// latest snapshot total. Returns nil when either snapshot is missing or the
// previous total is not positive.
func SnapshotChangePercent(latest, previous *domain.Snapshot) *float64 {
	if latest == nil || previous == nil {
		return nil
	}
	if previous.TotalAmount <= 0 {
		return nil
	}

	latestTotal := decimal.NewFromFloat(latest.TotalAmount)
	previousTotal := decimal.NewFromFloat(previous.TotalAmount)
	change := decimal.NewFromInt(100).
		Mul(latestTotal.Sub(previousTotal)).
		Div(previousTotal).
		InexactFloat64()

	return &change
}

// RecentSnapshotStats summarizes the total amounts of the given snapshots.
// Returns nil for an empty sample.
func RecentSnapshotStats(snapshots []domain.Snapshot) (*domain.SnapshotStats, error) {
	if len(snapshots) == 0 {
		return nil, nil
	}

	totals := make([]float64, 0, len(snapshots))
	for _, s := range snapshots {
		totals = append(totals, s.TotalAmount)
	}

	mean, err := stats.Mean(totals)
	if err != nil {
		return nil, err
	}
	min, err := stats.Min(totals)
	if err != nil {
		return nil, err
	}
	max, err := stats.Max(totals)
	if err != nil {
		return nil, err
	}

	return &domain.SnapshotStats{
		Mean: mean,
		Min:  min,
		Max:  max,
	}, nil
}
