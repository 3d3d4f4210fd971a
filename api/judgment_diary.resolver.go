package api

import (
	"fmt"
	"strconv"
	"time"

	"gokkankeeper/internal/domain"
	"gokkankeeper/internal/repository"
	"gokkankeeper/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type judgmentAssetRequest struct {
	Type         string `json:"type" binding:"required,oneof=STOCK ETF CRYPTO CASH BOND COMMODITY FX"`
	TickerOrName string `json:"tickerOrName" binding:"required,max=50"`
}

type judgmentPositionChangeRequest struct {
	Asset   string   `json:"asset" binding:"required,max=50"`
	FromPct *float64 `json:"fromPct" binding:"omitempty,gte=0,lte=100"`
	ToPct   *float64 `json:"toPct" binding:"omitempty,gte=0,lte=100"`
	Note    *string  `json:"note" binding:"omitempty,max=200"`
}

type judgmentRefRequest struct {
	Type  string `json:"type" binding:"required,oneof=CHART NEWS NOTE LINK"`
	Value string `json:"value" binding:"required,max=2000"`
}

type createJudgmentDiaryEntryRequest struct {
	CreatedAt            *time.Time                      `json:"createdAt"`
	Title                string                          `json:"title" binding:"required,max=120"`
	Summary              string                          `json:"summary" binding:"required,max=500"`
	Action               string                          `json:"action" binding:"required,oneof=BUY SELL HOLD REBALANCE WATCH"`
	MarketContext        *string                         `json:"marketContext" binding:"omitempty,max=5000"`
	Decision             *string                         `json:"decision" binding:"omitempty,max=5000"`
	Assets               []judgmentAssetRequest          `json:"assets" binding:"omitempty,dive"`
	PositionChange       []judgmentPositionChangeRequest `json:"positionChange" binding:"omitempty,dive"`
	Risk                 *string                         `json:"risk" binding:"omitempty,max=5000"`
	InvalidateConditions []string                        `json:"invalidateConditions" binding:"omitempty,dive,min=1,max=500"`
	NextCheck            *time.Time                      `json:"nextCheck"`
	EmotionState         *string                         `json:"emotionState" binding:"omitempty,oneof=CALM ANXIOUS GREEDY FOMO TIRED CONFIDENT UNCERTAIN"`
	Confidence           *int32                          `json:"confidence" binding:"omitempty,gte=1,lte=5"`
	TimeHorizon          *string                         `json:"timeHorizon" binding:"omitempty,oneof=DAYS WEEKS MONTHS YEARS"`
	StrategyTags         []string                        `json:"strategyTags" binding:"omitempty,dive,oneof=TREND MEAN_REVERSION DIVIDEND HEDGE MACRO EVENT VALUE GROWTH CASH_MANAGEMENT"`
	Refs                 []judgmentRefRequest            `json:"refs" binding:"omitempty,dive"`
	DisclaimerVisible    *bool                           `json:"disclaimerVisible"`
	ReviewedAt           *time.Time                      `json:"reviewedAt"`
	Outcome              *string                         `json:"outcome" binding:"omitempty,max=5000"`
	WhatWasRight         *string                         `json:"whatWasRight" binding:"omitempty,max=5000"`
	WhatWasWrong         *string                         `json:"whatWasWrong" binding:"omitempty,max=5000"`
	Lesson               *string                         `json:"lesson" binding:"omitempty,max=5000"`
	NextAction           *string                         `json:"nextAction" binding:"omitempty,max=5000"`
}

type updateJudgmentDiaryEntryRequest struct {
	Title                *string                         `json:"title" binding:"omitempty,min=1,max=120"`
	Summary              *string                         `json:"summary" binding:"omitempty,min=1,max=500"`
	Action               *string                         `json:"action" binding:"omitempty,oneof=BUY SELL HOLD REBALANCE WATCH"`
	MarketContext        *string                         `json:"marketContext" binding:"omitempty,max=5000"`
	Decision             *string                         `json:"decision" binding:"omitempty,max=5000"`
	Assets               []judgmentAssetRequest          `json:"assets" binding:"omitempty,dive"`
	PositionChange       []judgmentPositionChangeRequest `json:"positionChange" binding:"omitempty,dive"`
	Risk                 *string                         `json:"risk" binding:"omitempty,max=5000"`
	InvalidateConditions []string                        `json:"invalidateConditions" binding:"omitempty,dive,min=1,max=500"`
	NextCheck            *time.Time                      `json:"nextCheck"`
	EmotionState         *string                         `json:"emotionState" binding:"omitempty,oneof=CALM ANXIOUS GREEDY FOMO TIRED CONFIDENT UNCERTAIN"`
	Confidence           *int32                          `json:"confidence" binding:"omitempty,gte=1,lte=5"`
	TimeHorizon          *string                         `json:"timeHorizon" binding:"omitempty,oneof=DAYS WEEKS MONTHS YEARS"`
	StrategyTags         []string                        `json:"strategyTags" binding:"omitempty,dive,oneof=TREND MEAN_REVERSION DIVIDEND HEDGE MACRO EVENT VALUE GROWTH CASH_MANAGEMENT"`
	Refs                 []judgmentRefRequest            `json:"refs" binding:"omitempty,dive"`
	DisclaimerVisible    *bool                           `json:"disclaimerVisible"`
	ReviewedAt           *time.Time                      `json:"reviewedAt"`
	Outcome              *string                         `json:"outcome" binding:"omitempty,max=5000"`
	WhatWasRight         *string                         `json:"whatWasRight" binding:"omitempty,max=5000"`
	WhatWasWrong         *string                         `json:"whatWasWrong" binding:"omitempty,max=5000"`
	Lesson               *string                         `json:"lesson" binding:"omitempty,max=5000"`
	NextAction           *string                         `json:"nextAction" binding:"omitempty,max=5000"`
}

func transformAssetRequests(in []judgmentAssetRequest) []domain.JudgmentAsset {
	if in == nil {
		return nil
	}
	out := make([]domain.JudgmentAsset, 0, len(in))
	for _, a := range in {
		out = append(out, domain.JudgmentAsset{Type: a.Type, TickerOrName: a.TickerOrName})
	}
	return out
}

func transformPositionChangeRequests(in []judgmentPositionChangeRequest) []domain.JudgmentPositionChange {
	if in == nil {
		return nil
	}
	out := make([]domain.JudgmentPositionChange, 0, len(in))
	for _, p := range in {
		out = append(out, domain.JudgmentPositionChange{
			Asset:   p.Asset,
			FromPct: p.FromPct,
			ToPct:   p.ToPct,
			Note:    p.Note,
		})
	}
	return out
}

func transformRefRequests(in []judgmentRefRequest) []domain.JudgmentRef {
	if in == nil {
		return nil
	}
	out := make([]domain.JudgmentRef, 0, len(in))
	for _, r := range in {
		out = append(out, domain.JudgmentRef{Type: r.Type, Value: r.Value})
	}
	return out
}

func (h ApiHandler) listJudgmentDiaryEntries(c *gin.Context) {
	filter := repository.JudgmentDiaryListFilter{}

	if raw := c.Query("from"); raw != "" {
		from, err := util.ParseDate(raw)
		if err != nil {
			returnErrorJsonCode(fmt.Errorf("invalid from date: %w", err), c, 400)
			return
		}
		filter.From = &from
	}
	if raw := c.Query("to"); raw != "" {
		to, err := util.ParseDate(raw)
		if err != nil {
			returnErrorJsonCode(fmt.Errorf("invalid to date: %w", err), c, 400)
			return
		}
		filter.To = &to
	}
	// An unrecognized action is ignored rather than rejected.
	if raw := c.Query("action"); raw != "" && domain.IsJudgmentAction(raw) {
		filter.Action = &raw
	}
	if raw := c.Query("asset"); raw != "" {
		filter.Asset = &raw
	}
	if raw := c.Query("strategyTag"); raw != "" {
		filter.StrategyTag = &raw
	}
	if raw := c.Query("limit"); raw != "" {
		limit, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			returnErrorJsonCode(fmt.Errorf("invalid limit: %w", err), c, 400)
			return
		}
		filter.Limit = &limit
	}

	entries, err := h.JudgmentDiaryRepository.List(filter)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, entries)
}

func (h ApiHandler) getJudgmentDiaryEntry(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		returnErrorJsonCode(fmt.Errorf("invalid judgment diary entry id: %w", err), c, 400)
		return
	}

	entry, err := h.JudgmentDiaryRepository.Get(id)
	if err != nil {
		returnErrorJson(err, c)
		return
	}
	if entry == nil {
		returnErrorJsonCode(fmt.Errorf("Judgment diary entry not found"), c, 404)
		return
	}

	c.JSON(200, entry)
}

func (h ApiHandler) createJudgmentDiaryEntry(c *gin.Context) {
	var requestBody createJudgmentDiaryEntryRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnValidationError(err, c)
		return
	}

	disclaimerVisible := true
	if requestBody.DisclaimerVisible != nil {
		disclaimerVisible = *requestBody.DisclaimerVisible
	}

	entry, err := h.JudgmentDiaryRepository.Add(repository.JudgmentDiaryEntryCreate{
		CreatedAt:            requestBody.CreatedAt,
		Title:                requestBody.Title,
		Summary:              requestBody.Summary,
		Action:               requestBody.Action,
		MarketContext:        requestBody.MarketContext,
		Decision:             requestBody.Decision,
		Assets:               transformAssetRequests(requestBody.Assets),
		PositionChange:       transformPositionChangeRequests(requestBody.PositionChange),
		Risk:                 requestBody.Risk,
		InvalidateConditions: requestBody.InvalidateConditions,
		NextCheck:            requestBody.NextCheck,
		EmotionState:         requestBody.EmotionState,
		Confidence:           requestBody.Confidence,
		TimeHorizon:          requestBody.TimeHorizon,
		StrategyTags:         requestBody.StrategyTags,
		Refs:                 transformRefRequests(requestBody.Refs),
		DisclaimerVisible:    disclaimerVisible,
		ReviewedAt:           requestBody.ReviewedAt,
		Outcome:              requestBody.Outcome,
		WhatWasRight:         requestBody.WhatWasRight,
		WhatWasWrong:         requestBody.WhatWasWrong,
		Lesson:               requestBody.Lesson,
		NextAction:           requestBody.NextAction,
	})
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(201, entry)
}

func (h ApiHandler) updateJudgmentDiaryEntry(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		returnErrorJsonCode(fmt.Errorf("invalid judgment diary entry id: %w", err), c, 400)
		return
	}

	var requestBody updateJudgmentDiaryEntryRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnValidationError(err, c)
		return
	}

	existing, err := h.JudgmentDiaryRepository.Get(id)
	if err != nil {
		returnErrorJson(err, c)
		return
	}
	if existing == nil {
		returnErrorJsonCode(fmt.Errorf("Judgment diary entry not found"), c, 404)
		return
	}

	entry, err := h.JudgmentDiaryRepository.Update(id, repository.JudgmentDiaryEntryChangeSet{
		Title:                requestBody.Title,
		Summary:              requestBody.Summary,
		Action:               requestBody.Action,
		MarketContext:        requestBody.MarketContext,
		Decision:             requestBody.Decision,
		Assets:               transformAssetRequests(requestBody.Assets),
		PositionChange:       transformPositionChangeRequests(requestBody.PositionChange),
		Risk:                 requestBody.Risk,
		InvalidateConditions: requestBody.InvalidateConditions,
		NextCheck:            requestBody.NextCheck,
		EmotionState:         requestBody.EmotionState,
		Confidence:           requestBody.Confidence,
		TimeHorizon:          requestBody.TimeHorizon,
		StrategyTags:         requestBody.StrategyTags,
		Refs:                 transformRefRequests(requestBody.Refs),
		DisclaimerVisible:    requestBody.DisclaimerVisible,
		ReviewedAt:           requestBody.ReviewedAt,
		Outcome:              requestBody.Outcome,
		WhatWasRight:         requestBody.WhatWasRight,
		WhatWasWrong:         requestBody.WhatWasWrong,
		Lesson:               requestBody.Lesson,
		NextAction:           requestBody.NextAction,
	})
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, entry)
}
