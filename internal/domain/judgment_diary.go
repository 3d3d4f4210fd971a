package domain

import (
	"time"

	"github.com/google/uuid"
)

type JudgmentAsset struct {
	Type         string `json:"type"`
	TickerOrName string `json:"tickerOrName"`
}

type JudgmentPositionChange struct {
	Asset   string   `json:"asset"`
	FromPct *float64 `json:"fromPct"`
	ToPct   *float64 `json:"toPct"`
	Note    *string  `json:"note"`
}

type JudgmentRef struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

type JudgmentDiaryEntry struct {
	ID                   uuid.UUID                `json:"id"`
	CreatedAt            time.Time                `json:"createdAt"`
	UpdatedAt            time.Time                `json:"updatedAt"`
	Title                string                   `json:"title"`
	Summary              string                   `json:"summary"`
	Action               string                   `json:"action"`
	MarketContext        *string                  `json:"marketContext"`
	Decision             *string                  `json:"decision"`
	Assets               []JudgmentAsset          `json:"assets,omitempty"`
	PositionChange       []JudgmentPositionChange `json:"positionChange,omitempty"`
	Risk                 *string                  `json:"risk"`
	InvalidateConditions []string                 `json:"invalidateConditions,omitempty"`
	NextCheck            *time.Time               `json:"nextCheck"`
	EmotionState         *string                  `json:"emotionState"`
	Confidence           *int32                   `json:"confidence"`
	TimeHorizon          *string                  `json:"timeHorizon"`
	StrategyTags         []string                 `json:"strategyTags,omitempty"`
	Refs                 []JudgmentRef            `json:"refs,omitempty"`
	DisclaimerVisible    bool                     `json:"disclaimerVisible"`
	ReviewedAt           *time.Time               `json:"reviewedAt"`
	Outcome              *string                  `json:"outcome"`
	WhatWasRight         *string                  `json:"whatWasRight"`
	WhatWasWrong         *string                  `json:"whatWasWrong"`
	Lesson               *string                  `json:"lesson"`
	NextAction           *string                  `json:"nextAction"`
}
