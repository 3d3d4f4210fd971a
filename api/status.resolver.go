package api

import (
	"time"

	"gokkankeeper/internal"
	"gokkankeeper/internal/domain"
	"gokkankeeper/internal/repository"
	"gokkankeeper/internal/util"

	"github.com/gin-gonic/gin"
)

const statusSnapshotSample = 10

// getStatus summarizes the tracked data: entity counts over a recent
// snapshot sample, the granary most overdue for a snapshot, and basic
// statistics over the sampled totals.
func (h ApiHandler) getStatus(c *gin.Context) {
	granaries, err := h.GranaryRepository.List()
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	snapshots, err := h.SnapshotRepository.List(repository.SnapshotListFilter{
		Limit: util.Int64Pointer(statusSnapshotSample),
	})
	if err != nil {
		returnErrorJson(err, c)
		return
	}
	if snapshots == nil {
		snapshots = []domain.Snapshot{}
	}

	oldestUnupdated, err := h.GranaryRepository.GetOldestUnupdated(time.Now().UTC())
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	recentTotals, err := internal.RecentSnapshotStats(snapshots)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, domain.StatusSummary{
		TotalGranaries:         len(granaries),
		TotalSnapshots:         len(snapshots),
		OldestUnupdatedGranary: oldestUnupdated,
		RecentSnapshots:        snapshots,
		RecentTotals:           recentTotals,
	})
}
