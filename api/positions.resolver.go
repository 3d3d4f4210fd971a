package api

import (
	"fmt"
	"strings"

	"gokkankeeper/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type createPositionRequest struct {
	GranaryID         *string  `json:"granaryId" binding:"omitempty,uuid"`
	Name              string   `json:"name" binding:"required,max=100"`
	Symbol            string   `json:"symbol" binding:"required,max=50"`
	Market            *string  `json:"market" binding:"omitempty,oneof=KRX KOSDAQ NASDAQ NYSE AMEX TSE HKEX SSE SZSE CRYPTO"`
	AssetType         *string  `json:"assetType" binding:"omitempty,oneof=STOCK ETF CRYPTO CASH BOND COMMODITY FX"`
	Quantity          *float64 `json:"quantity"`
	AvgCost           *float64 `json:"avgCost"`
	CurrentValue      *float64 `json:"currentValue"`
	WeightPercent     *float64 `json:"weightPercent" binding:"omitempty,gte=0,lte=100"`
	ProfitLoss        *float64 `json:"profitLoss"`
	ProfitLossPercent *float64 `json:"profitLossPercent"`
	Note              *string  `json:"note" binding:"omitempty,max=2000"`
	IsPublic          *bool    `json:"isPublic"`
	PublicThesis      *string  `json:"publicThesis" binding:"omitempty,max=2000"`
	PublicOrder       *int32   `json:"publicOrder"`
}

type updatePositionRequest struct {
	GranaryID         *string  `json:"granaryId" binding:"omitempty,uuid"`
	Name              *string  `json:"name" binding:"omitempty,min=1,max=100"`
	Symbol            *string  `json:"symbol" binding:"omitempty,min=1,max=50"`
	Market            *string  `json:"market" binding:"omitempty,oneof=KRX KOSDAQ NASDAQ NYSE AMEX TSE HKEX SSE SZSE CRYPTO"`
	AssetType         *string  `json:"assetType" binding:"omitempty,oneof=STOCK ETF CRYPTO CASH BOND COMMODITY FX"`
	Quantity          *float64 `json:"quantity"`
	AvgCost           *float64 `json:"avgCost"`
	CurrentValue      *float64 `json:"currentValue"`
	WeightPercent     *float64 `json:"weightPercent" binding:"omitempty,gte=0,lte=100"`
	ProfitLoss        *float64 `json:"profitLoss"`
	ProfitLossPercent *float64 `json:"profitLossPercent"`
	Note              *string  `json:"note" binding:"omitempty,max=2000"`
	IsPublic          *bool    `json:"isPublic"`
	PublicThesis      *string  `json:"publicThesis" binding:"omitempty,max=2000"`
	PublicOrder       *int32   `json:"publicOrder"`
}

type publicPositionInput struct {
	IsPublic      bool
	PublicThesis  *string
	WeightPercent *float64
	Quantity      *float64
	AvgCost       *float64
	CurrentValue  *float64
}

// validatePublicPositionInput enforces the publishing rule: a public position
// must carry a thesis and enough numbers for the aggregator to derive an
// allocation. Returns an empty string when the input is acceptable.
func validatePublicPositionInput(in publicPositionInput) string {
	if !in.IsPublic {
		return ""
	}

	if in.PublicThesis == nil || strings.TrimSpace(*in.PublicThesis) == "" {
		return "Public position requires publicThesis."
	}

	hasCurrentValue := in.CurrentValue != nil
	hasWeightPercent := in.WeightPercent != nil
	hasCostBasis := in.Quantity != nil && in.AvgCost != nil

	if !hasCurrentValue && !hasCostBasis && !hasWeightPercent {
		return "Public position requires weightPercent, currentValue, or (quantity and avgCost)."
	}

	return ""
}

func (h ApiHandler) listPositions(c *gin.Context) {
	var granaryID *uuid.UUID
	if raw := c.Query("granary_id"); raw != "" {
		parsed, err := uuid.Parse(raw)
		if err != nil {
			returnErrorJsonCode(fmt.Errorf("invalid granary_id: %w", err), c, 400)
			return
		}
		granaryID = &parsed
	}

	positions, err := h.PositionRepository.List(granaryID)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, positions)
}

func (h ApiHandler) getPosition(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		returnErrorJsonCode(fmt.Errorf("invalid position id: %w", err), c, 400)
		return
	}

	position, err := h.PositionRepository.Get(id)
	if err != nil {
		returnErrorJson(err, c)
		return
	}
	if position == nil {
		returnErrorJsonCode(fmt.Errorf("Position not found"), c, 404)
		return
	}

	c.JSON(200, position)
}

func (h ApiHandler) createPosition(c *gin.Context) {
	var requestBody createPositionRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnValidationError(err, c)
		return
	}

	isPublic := false
	if requestBody.IsPublic != nil {
		isPublic = *requestBody.IsPublic
	}

	if msg := validatePublicPositionInput(publicPositionInput{
		IsPublic:      isPublic,
		PublicThesis:  requestBody.PublicThesis,
		WeightPercent: requestBody.WeightPercent,
		Quantity:      requestBody.Quantity,
		AvgCost:       requestBody.AvgCost,
		CurrentValue:  requestBody.CurrentValue,
	}); msg != "" {
		returnErrorJsonCode(fmt.Errorf("%s", msg), c, 400)
		return
	}

	var granaryID *uuid.UUID
	if requestBody.GranaryID != nil {
		parsed := uuid.MustParse(*requestBody.GranaryID)
		granary, err := h.GranaryRepository.Get(parsed)
		if err != nil {
			returnErrorJson(err, c)
			return
		}
		if granary == nil {
			returnErrorJsonCode(fmt.Errorf("Granary not found"), c, 404)
			return
		}
		granaryID = &parsed
	}

	position, err := h.PositionRepository.Add(repository.PositionCreate{
		GranaryID:         granaryID,
		Name:              requestBody.Name,
		Symbol:            requestBody.Symbol,
		Market:            requestBody.Market,
		AssetType:         requestBody.AssetType,
		Quantity:          requestBody.Quantity,
		AvgCost:           requestBody.AvgCost,
		CurrentValue:      requestBody.CurrentValue,
		WeightPercent:     requestBody.WeightPercent,
		ProfitLoss:        requestBody.ProfitLoss,
		ProfitLossPercent: requestBody.ProfitLossPercent,
		Note:              requestBody.Note,
		IsPublic:          isPublic,
		PublicThesis:      requestBody.PublicThesis,
		PublicOrder:       requestBody.PublicOrder,
	})
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(201, position)
}

func (h ApiHandler) updatePosition(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		returnErrorJsonCode(fmt.Errorf("invalid position id: %w", err), c, 400)
		return
	}

	var requestBody updatePositionRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnValidationError(err, c)
		return
	}

	existing, err := h.PositionRepository.Get(id)
	if err != nil {
		returnErrorJson(err, c)
		return
	}
	if existing == nil {
		returnErrorJsonCode(fmt.Errorf("Position not found"), c, 404)
		return
	}

	// The publishing rule is checked against the merged state, not just the
	// patch, so a partial update cannot leave a public position invalid.
	merged := publicPositionInput{
		IsPublic:      existing.IsPublic,
		PublicThesis:  existing.PublicThesis,
		WeightPercent: existing.WeightPercent,
		Quantity:      existing.Quantity,
		AvgCost:       existing.AvgCost,
		CurrentValue:  existing.CurrentValue,
	}
	if requestBody.IsPublic != nil {
		merged.IsPublic = *requestBody.IsPublic
	}
	if requestBody.PublicThesis != nil {
		merged.PublicThesis = requestBody.PublicThesis
	}
	if requestBody.WeightPercent != nil {
		merged.WeightPercent = requestBody.WeightPercent
	}
	if requestBody.Quantity != nil {
		merged.Quantity = requestBody.Quantity
	}
	if requestBody.AvgCost != nil {
		merged.AvgCost = requestBody.AvgCost
	}
	if requestBody.CurrentValue != nil {
		merged.CurrentValue = requestBody.CurrentValue
	}

	if msg := validatePublicPositionInput(merged); msg != "" {
		returnErrorJsonCode(fmt.Errorf("%s", msg), c, 400)
		return
	}

	var granaryID *uuid.UUID
	if requestBody.GranaryID != nil {
		parsed := uuid.MustParse(*requestBody.GranaryID)
		granary, err := h.GranaryRepository.Get(parsed)
		if err != nil {
			returnErrorJson(err, c)
			return
		}
		if granary == nil {
			returnErrorJsonCode(fmt.Errorf("Granary not found"), c, 404)
			return
		}
		granaryID = &parsed
	}

	position, err := h.PositionRepository.Update(id, repository.PositionChangeSet{
		GranaryID:         granaryID,
		Name:              requestBody.Name,
		Symbol:            requestBody.Symbol,
		Market:            requestBody.Market,
		AssetType:         requestBody.AssetType,
		Quantity:          requestBody.Quantity,
		AvgCost:           requestBody.AvgCost,
		CurrentValue:      requestBody.CurrentValue,
		WeightPercent:     requestBody.WeightPercent,
		ProfitLoss:        requestBody.ProfitLoss,
		ProfitLossPercent: requestBody.ProfitLossPercent,
		Note:              requestBody.Note,
		IsPublic:          requestBody.IsPublic,
		PublicThesis:      requestBody.PublicThesis,
		PublicOrder:       requestBody.PublicOrder,
	})
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, position)
}

func (h ApiHandler) deletePosition(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		returnErrorJsonCode(fmt.Errorf("invalid position id: %w", err), c, 400)
		return
	}

	existing, err := h.PositionRepository.Get(id)
	if err != nil {
		returnErrorJson(err, c)
		return
	}
	if existing == nil {
		returnErrorJsonCode(fmt.Errorf("Position not found"), c, 404)
		return
	}

	if err := h.PositionRepository.Delete(id); err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, gin.H{"ok": true})
}
