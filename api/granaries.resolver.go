package api

import (
	"fmt"
	"sync"

	"gokkankeeper/internal"
	"gokkankeeper/internal/domain"
	"gokkankeeper/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type createGranaryRequest struct {
	Name         string  `json:"name" binding:"required,max=100"`
	Purpose      string  `json:"purpose" binding:"required,oneof=비상금 가계 코인 아이들 기타"`
	Currency     string  `json:"currency" binding:"required,oneof=KRW USD EUR JPY CNY"`
	Owner        *string `json:"owner" binding:"omitempty,min=1"`
	IsPublic     *bool   `json:"isPublic"`
	PublicThesis *string `json:"publicThesis"`
	PublicOrder  *int32  `json:"publicOrder"`
}

type updateGranaryRequest struct {
	Name         *string `json:"name" binding:"omitempty,min=1,max=100"`
	Purpose      *string `json:"purpose" binding:"omitempty,oneof=비상금 가계 코인 아이들 기타"`
	Currency     *string `json:"currency" binding:"omitempty,oneof=KRW USD EUR JPY CNY"`
	IsPublic     *bool   `json:"isPublic"`
	PublicThesis *string `json:"publicThesis"`
	PublicOrder  *int32  `json:"publicOrder"`
}

type granaryDetailResponse struct {
	domain.Granary
	LatestSnapshot *domain.Snapshot `json:"latestSnapshot"`
}

// listGranaries responds with every granary plus its two latest snapshots
// and the change between them. Snapshot lookups fan out per granary and
// join before the response is written.
func (h ApiHandler) listGranaries(c *gin.Context) {
	granaries, err := h.GranaryRepository.List()
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	out := make([]domain.GranaryWithSnapshots, len(granaries))
	errs := make([]error, len(granaries))

	var wg sync.WaitGroup
	for i, granary := range granaries {
		wg.Add(1)
		go func(i int, granary domain.Granary) {
			defer wg.Done()

			latest, err := h.SnapshotRepository.LatestForGranary(granary.ID)
			if err != nil {
				errs[i] = err
				return
			}
			previous, err := h.SnapshotRepository.PreviousForGranary(granary.ID)
			if err != nil {
				errs[i] = err
				return
			}

			out[i] = domain.GranaryWithSnapshots{
				Granary:          granary,
				LatestSnapshot:   latest,
				PreviousSnapshot: previous,
				ChangePercent:    internal.SnapshotChangePercent(latest, previous),
			}
		}(i, granary)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			returnErrorJson(err, c)
			return
		}
	}

	c.JSON(200, out)
}

func (h ApiHandler) getGranary(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		returnErrorJsonCode(fmt.Errorf("invalid granary id: %w", err), c, 400)
		return
	}

	granary, err := h.GranaryRepository.Get(id)
	if err != nil {
		returnErrorJson(err, c)
		return
	}
	if granary == nil {
		returnErrorJsonCode(fmt.Errorf("Granary not found"), c, 404)
		return
	}

	latest, err := h.SnapshotRepository.LatestForGranary(id)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, granaryDetailResponse{
		Granary:        *granary,
		LatestSnapshot: latest,
	})
}

func (h ApiHandler) createGranary(c *gin.Context) {
	var requestBody createGranaryRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnValidationError(err, c)
		return
	}

	owner := "default"
	if requestBody.Owner != nil {
		owner = *requestBody.Owner
	}
	isPublic := false
	if requestBody.IsPublic != nil {
		isPublic = *requestBody.IsPublic
	}

	granary, err := h.GranaryRepository.Add(repository.GranaryCreate{
		Name:         requestBody.Name,
		Purpose:      requestBody.Purpose,
		Currency:     requestBody.Currency,
		Owner:        owner,
		IsPublic:     isPublic,
		PublicThesis: requestBody.PublicThesis,
		PublicOrder:  requestBody.PublicOrder,
	})
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(201, granary)
}

func (h ApiHandler) updateGranary(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		returnErrorJsonCode(fmt.Errorf("invalid granary id: %w", err), c, 400)
		return
	}

	var requestBody updateGranaryRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnValidationError(err, c)
		return
	}

	existing, err := h.GranaryRepository.Get(id)
	if err != nil {
		returnErrorJson(err, c)
		return
	}
	if existing == nil {
		returnErrorJsonCode(fmt.Errorf("Granary not found"), c, 404)
		return
	}

	granary, err := h.GranaryRepository.Update(id, repository.GranaryChangeSet{
		Name:         requestBody.Name,
		Purpose:      requestBody.Purpose,
		Currency:     requestBody.Currency,
		IsPublic:     requestBody.IsPublic,
		PublicThesis: requestBody.PublicThesis,
		PublicOrder:  requestBody.PublicOrder,
	})
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, granary)
}
