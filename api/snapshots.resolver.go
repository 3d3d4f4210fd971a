package api

import (
	"errors"
	"fmt"
	"strconv"

	"gokkankeeper/internal/repository"
	"gokkankeeper/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type createSnapshotRequest struct {
	GranaryID        string   `json:"granaryId" binding:"required,uuid"`
	Date             string   `json:"date" binding:"required,datetime=2006-01-02"`
	TotalAmount      *float64 `json:"totalAmount" binding:"required,gte=0"`
	AvailableBalance *float64 `json:"availableBalance" binding:"omitempty,gte=0"`
	ProfitLoss       *float64 `json:"profitLoss"`
	Memo             *string  `json:"memo" binding:"omitempty,max=500"`
}

type updateSnapshotRequest struct {
	Date             *string  `json:"date" binding:"omitempty,datetime=2006-01-02"`
	TotalAmount      *float64 `json:"totalAmount" binding:"omitempty,gte=0"`
	AvailableBalance *float64 `json:"availableBalance" binding:"omitempty,gte=0"`
	ProfitLoss       *float64 `json:"profitLoss"`
	Memo             *string  `json:"memo" binding:"omitempty,max=500"`
}

func (h ApiHandler) listSnapshots(c *gin.Context) {
	filter := repository.SnapshotListFilter{}

	if raw := c.Query("granaryId"); raw != "" {
		granaryID, err := uuid.Parse(raw)
		if err != nil {
			returnErrorJsonCode(fmt.Errorf("invalid granaryId: %w", err), c, 400)
			return
		}
		filter.GranaryID = &granaryID
	}
	if raw := c.Query("limit"); raw != "" {
		limit, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			returnErrorJsonCode(fmt.Errorf("invalid limit: %w", err), c, 400)
			return
		}
		filter.Limit = &limit
	}

	snapshots, err := h.SnapshotRepository.List(filter)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, snapshots)
}

func (h ApiHandler) getSnapshot(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		returnErrorJsonCode(fmt.Errorf("invalid snapshot id: %w", err), c, 400)
		return
	}

	snapshot, err := h.SnapshotRepository.Get(id)
	if err != nil {
		returnErrorJson(err, c)
		return
	}
	if snapshot == nil {
		returnErrorJsonCode(fmt.Errorf("Snapshot not found"), c, 404)
		return
	}

	c.JSON(200, snapshot)
}

func (h ApiHandler) createSnapshot(c *gin.Context) {
	var requestBody createSnapshotRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnValidationError(err, c)
		return
	}

	granaryID := uuid.MustParse(requestBody.GranaryID)
	date, err := util.ParseDate(requestBody.Date)
	if err != nil {
		returnValidationError(err, c)
		return
	}

	granary, err := h.GranaryRepository.Get(granaryID)
	if err != nil {
		returnErrorJson(err, c)
		return
	}
	if granary == nil {
		returnErrorJsonCode(fmt.Errorf("Granary not found"), c, 404)
		return
	}

	snapshot, err := h.SnapshotRepository.Add(repository.SnapshotCreate{
		GranaryID:        granaryID,
		Date:             date,
		TotalAmount:      *requestBody.TotalAmount,
		AvailableBalance: requestBody.AvailableBalance,
		ProfitLoss:       requestBody.ProfitLoss,
		Memo:             requestBody.Memo,
	})
	if errors.Is(err, repository.ErrDuplicateSnapshot) {
		returnErrorJsonCode(err, c, 409)
		return
	} else if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(201, snapshot)
}

func (h ApiHandler) updateSnapshot(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		returnErrorJsonCode(fmt.Errorf("invalid snapshot id: %w", err), c, 400)
		return
	}

	var requestBody updateSnapshotRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnValidationError(err, c)
		return
	}

	existing, err := h.SnapshotRepository.Get(id)
	if err != nil {
		returnErrorJson(err, c)
		return
	}
	if existing == nil {
		returnErrorJsonCode(fmt.Errorf("Snapshot not found"), c, 404)
		return
	}

	changes := repository.SnapshotChangeSet{
		TotalAmount:      requestBody.TotalAmount,
		AvailableBalance: requestBody.AvailableBalance,
		ProfitLoss:       requestBody.ProfitLoss,
		Memo:             requestBody.Memo,
	}

	// A date move is pre-checked so the caller gets a clean conflict before
	// any write is attempted.
	if requestBody.Date != nil && *requestBody.Date != existing.Date {
		date, err := util.ParseDate(*requestBody.Date)
		if err != nil {
			returnValidationError(err, c)
			return
		}
		taken, err := h.SnapshotRepository.ExistsForDate(existing.GranaryID, date, id)
		if err != nil {
			returnErrorJson(err, c)
			return
		}
		if taken {
			returnErrorJsonCode(repository.ErrDuplicateSnapshot, c, 409)
			return
		}
		changes.Date = &date
	}

	snapshot, err := h.SnapshotRepository.Update(id, changes)
	if errors.Is(err, repository.ErrDuplicateSnapshot) {
		returnErrorJsonCode(err, c, 409)
		return
	} else if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, snapshot)
}
