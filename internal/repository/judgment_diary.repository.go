package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"gokkankeeper/internal/db/models/postgres/public/model"
	"gokkankeeper/internal/db/models/postgres/public/table"
	"gokkankeeper/internal/domain"
	"gokkankeeper/internal/util"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
	"github.com/google/uuid"
)

const defaultDiaryListLimit = 50

type JudgmentDiaryRepository interface {
	List(JudgmentDiaryListFilter) ([]domain.JudgmentDiaryEntry, error)
	Get(uuid.UUID) (*domain.JudgmentDiaryEntry, error)
	Add(JudgmentDiaryEntryCreate) (*domain.JudgmentDiaryEntry, error)
	Update(uuid.UUID, JudgmentDiaryEntryChangeSet) (*domain.JudgmentDiaryEntry, error)
}

// JudgmentDiaryListFilter filters on the creation date (date-only, inclusive)
// and on raw substring containment in the serialized asset/tag columns. The
// substring match is intentionally unstructured and may overmatch.
type JudgmentDiaryListFilter struct {
	From        *time.Time
	To          *time.Time
	Action      *string
	Asset       *string
	StrategyTag *string
	Limit       *int64
}

type JudgmentDiaryEntryCreate struct {
	CreatedAt            *time.Time
	Title                string
	Summary              string
	Action               string
	MarketContext        *string
	Decision             *string
	Assets               []domain.JudgmentAsset
	PositionChange       []domain.JudgmentPositionChange
	Risk                 *string
	InvalidateConditions []string
	NextCheck            *time.Time
	EmotionState         *string
	Confidence           *int32
	TimeHorizon          *string
	StrategyTags         []string
	Refs                 []domain.JudgmentRef
	DisclaimerVisible    bool
	ReviewedAt           *time.Time
	Outcome              *string
	WhatWasRight         *string
	WhatWasWrong         *string
	Lesson               *string
	NextAction           *string
}

// Nil pointer or nil slice means "leave unchanged"; a non-nil empty slice
// overwrites with an empty list.
type JudgmentDiaryEntryChangeSet struct {
	Title                *string
	Summary              *string
	Action               *string
	MarketContext        *string
	Decision             *string
	Assets               []domain.JudgmentAsset
	PositionChange       []domain.JudgmentPositionChange
	Risk                 *string
	InvalidateConditions []string
	NextCheck            *time.Time
	EmotionState         *string
	Confidence           *int32
	TimeHorizon          *string
	StrategyTags         []string
	Refs                 []domain.JudgmentRef
	DisclaimerVisible    *bool
	ReviewedAt           *time.Time
	Outcome              *string
	WhatWasRight         *string
	WhatWasWrong         *string
	Lesson               *string
	NextAction           *string
}

func (c JudgmentDiaryEntryChangeSet) columns(now time.Time) (postgres.ColumnList, []interface{}, error) {
	t := table.JudgmentDiaryEntry
	cols := postgres.ColumnList{}
	values := []interface{}{}

	appendString := func(col postgres.ColumnString, v *string) {
		if v != nil {
			cols = append(cols, col)
			values = append(values, postgres.String(*v))
		}
	}

	appendString(t.Title, c.Title)
	appendString(t.Summary, c.Summary)
	appendString(t.Action, c.Action)
	appendString(t.MarketContext, c.MarketContext)
	appendString(t.Decision, c.Decision)
	if c.Assets != nil {
		encoded, err := util.EncodeJSON(c.Assets)
		if err != nil {
			return nil, nil, err
		}
		cols = append(cols, t.AssetsJSON)
		values = append(values, postgres.String(encoded))
	}
	if c.PositionChange != nil {
		encoded, err := util.EncodeJSON(c.PositionChange)
		if err != nil {
			return nil, nil, err
		}
		cols = append(cols, t.PositionChangeJSON)
		values = append(values, postgres.String(encoded))
	}
	appendString(t.Risk, c.Risk)
	if c.InvalidateConditions != nil {
		encoded, err := util.EncodeJSON(c.InvalidateConditions)
		if err != nil {
			return nil, nil, err
		}
		cols = append(cols, t.InvalidateConditionsJSON)
		values = append(values, postgres.String(encoded))
	}
	if c.NextCheck != nil {
		cols = append(cols, t.NextCheck)
		values = append(values, postgres.TimestampzT(*c.NextCheck))
	}
	appendString(t.EmotionState, c.EmotionState)
	if c.Confidence != nil {
		cols = append(cols, t.Confidence)
		values = append(values, postgres.Int32(*c.Confidence))
	}
	appendString(t.TimeHorizon, c.TimeHorizon)
	if c.StrategyTags != nil {
		encoded, err := util.EncodeJSON(c.StrategyTags)
		if err != nil {
			return nil, nil, err
		}
		cols = append(cols, t.StrategyTagsJSON)
		values = append(values, postgres.String(encoded))
	}
	if c.Refs != nil {
		encoded, err := util.EncodeJSON(c.Refs)
		if err != nil {
			return nil, nil, err
		}
		cols = append(cols, t.RefsJSON)
		values = append(values, postgres.String(encoded))
	}
	if c.DisclaimerVisible != nil {
		cols = append(cols, t.DisclaimerVisible)
		values = append(values, postgres.Bool(*c.DisclaimerVisible))
	}
	if c.ReviewedAt != nil {
		cols = append(cols, t.ReviewedAt)
		values = append(values, postgres.TimestampzT(*c.ReviewedAt))
	}
	appendString(t.Outcome, c.Outcome)
	appendString(t.WhatWasRight, c.WhatWasRight)
	appendString(t.WhatWasWrong, c.WhatWasWrong)
	appendString(t.Lesson, c.Lesson)
	appendString(t.NextAction, c.NextAction)

	if len(cols) == 0 {
		return cols, values, nil
	}
	cols = append(cols, t.UpdatedAt)
	values = append(values, postgres.TimestampzT(now))

	return cols, values, nil
}

type judgmentDiaryRepositoryHandler struct {
	Db *sql.DB
}

func NewJudgmentDiaryRepository(db *sql.DB) JudgmentDiaryRepository {
	return judgmentDiaryRepositoryHandler{db}
}

// transformJudgmentDiaryEntry decodes the serialized list columns leniently:
// malformed content falls back to an empty value instead of failing the read.
func transformJudgmentDiaryEntry(m model.JudgmentDiaryEntry) domain.JudgmentDiaryEntry {
	assets, _ := util.DecodeOrDefault[[]domain.JudgmentAsset](m.AssetsJSON, nil)
	positionChange, _ := util.DecodeOrDefault[[]domain.JudgmentPositionChange](m.PositionChangeJSON, nil)
	invalidateConditions, _ := util.DecodeOrDefault[[]string](m.InvalidateConditionsJSON, nil)
	strategyTags, _ := util.DecodeOrDefault[[]string](m.StrategyTagsJSON, nil)
	refs, _ := util.DecodeOrDefault[[]domain.JudgmentRef](m.RefsJSON, nil)

	return domain.JudgmentDiaryEntry{
		ID:                   m.ID,
		CreatedAt:            m.CreatedAt,
		UpdatedAt:            m.UpdatedAt,
		Title:                m.Title,
		Summary:              m.Summary,
		Action:               m.Action,
		MarketContext:        m.MarketContext,
		Decision:             m.Decision,
		Assets:               assets,
		PositionChange:       positionChange,
		Risk:                 m.Risk,
		InvalidateConditions: invalidateConditions,
		NextCheck:            m.NextCheck,
		EmotionState:         m.EmotionState,
		Confidence:           m.Confidence,
		TimeHorizon:          m.TimeHorizon,
		StrategyTags:         strategyTags,
		Refs:                 refs,
		DisclaimerVisible:    m.DisclaimerVisible,
		ReviewedAt:           m.ReviewedAt,
		Outcome:              m.Outcome,
		WhatWasRight:         m.WhatWasRight,
		WhatWasWrong:         m.WhatWasWrong,
		Lesson:               m.Lesson,
		NextAction:           m.NextAction,
	}
}

func (h judgmentDiaryRepositoryHandler) List(filter JudgmentDiaryListFilter) ([]domain.JudgmentDiaryEntry, error) {
	t := table.JudgmentDiaryEntry
	conditions := []postgres.BoolExpression{}

	if filter.From != nil {
		conditions = append(conditions,
			postgres.CAST(t.CreatedAt).AS_DATE().GT_EQ(postgres.DateT(*filter.From)))
	}
	if filter.To != nil {
		conditions = append(conditions,
			postgres.CAST(t.CreatedAt).AS_DATE().LT_EQ(postgres.DateT(*filter.To)))
	}
	if filter.Action != nil {
		conditions = append(conditions, t.Action.EQ(postgres.String(*filter.Action)))
	}
	if filter.Asset != nil {
		conditions = append(conditions, t.AssetsJSON.LIKE(postgres.String("%"+*filter.Asset+"%")))
	}
	if filter.StrategyTag != nil {
		conditions = append(conditions, t.StrategyTagsJSON.LIKE(postgres.String("%"+*filter.StrategyTag+"%")))
	}

	limit := int64(defaultDiaryListLimit)
	if filter.Limit != nil {
		limit = *filter.Limit
	}

	query := t.SELECT(t.AllColumns)
	if len(conditions) > 0 {
		query = query.WHERE(postgres.AND(conditions...))
	}
	query = query.
		ORDER_BY(t.CreatedAt.DESC()).
		LIMIT(limit)

	out := []model.JudgmentDiaryEntry{}
	err := query.Query(h.Db, &out)
	if errors.Is(err, qrm.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to list judgment diary entries: %w", err)
	}

	entries := make([]domain.JudgmentDiaryEntry, 0, len(out))
	for _, m := range out {
		entries = append(entries, transformJudgmentDiaryEntry(m))
	}
	return entries, nil
}

func (h judgmentDiaryRepositoryHandler) Get(id uuid.UUID) (*domain.JudgmentDiaryEntry, error) {
	t := table.JudgmentDiaryEntry
	query := t.SELECT(t.AllColumns).WHERE(t.ID.EQ(postgres.UUID(id)))

	out := model.JudgmentDiaryEntry{}
	err := query.Query(h.Db, &out)
	if errors.Is(err, qrm.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get judgment diary entry: %w", err)
	}

	e := transformJudgmentDiaryEntry(out)
	return &e, nil
}

func (h judgmentDiaryRepositoryHandler) Add(in JudgmentDiaryEntryCreate) (*domain.JudgmentDiaryEntry, error) {
	now := time.Now().UTC()
	createdAt := now
	if in.CreatedAt != nil {
		createdAt = in.CreatedAt.UTC()
	}

	// The list columns always hold a serialized value; tags and refs stay
	// NULL when never provided, matching how reads distinguish them.
	assetsJSON, err := util.EncodeJSON(orEmpty(in.Assets))
	if err != nil {
		return nil, err
	}
	positionChangeJSON, err := util.EncodeJSON(orEmpty(in.PositionChange))
	if err != nil {
		return nil, err
	}
	invalidateConditionsJSON, err := util.EncodeJSON(orEmptyStrings(in.InvalidateConditions))
	if err != nil {
		return nil, err
	}

	m := model.JudgmentDiaryEntry{
		ID:                       uuid.New(),
		CreatedAt:                createdAt,
		UpdatedAt:                now,
		Title:                    in.Title,
		Summary:                  in.Summary,
		Action:                   in.Action,
		MarketContext:            in.MarketContext,
		Decision:                 in.Decision,
		AssetsJSON:               &assetsJSON,
		PositionChangeJSON:       &positionChangeJSON,
		Risk:                     in.Risk,
		InvalidateConditionsJSON: &invalidateConditionsJSON,
		NextCheck:                in.NextCheck,
		EmotionState:             in.EmotionState,
		Confidence:               in.Confidence,
		TimeHorizon:              in.TimeHorizon,
		DisclaimerVisible:        in.DisclaimerVisible,
		ReviewedAt:               in.ReviewedAt,
		Outcome:                  in.Outcome,
		WhatWasRight:             in.WhatWasRight,
		WhatWasWrong:             in.WhatWasWrong,
		Lesson:                   in.Lesson,
		NextAction:               in.NextAction,
	}
	if in.StrategyTags != nil {
		encoded, err := util.EncodeJSON(in.StrategyTags)
		if err != nil {
			return nil, err
		}
		m.StrategyTagsJSON = &encoded
	}
	if in.Refs != nil {
		encoded, err := util.EncodeJSON(in.Refs)
		if err != nil {
			return nil, err
		}
		m.RefsJSON = &encoded
	}

	query := table.JudgmentDiaryEntry.INSERT(table.JudgmentDiaryEntry.AllColumns).MODEL(m)
	_, err = query.Exec(h.Db)
	if err != nil {
		return nil, fmt.Errorf("failed to insert judgment diary entry: %w", err)
	}

	created, err := h.Get(m.ID)
	if err != nil {
		return nil, err
	}
	if created == nil {
		return nil, fmt.Errorf("failed to create judgment diary entry")
	}
	return created, nil
}

func (h judgmentDiaryRepositoryHandler) Update(id uuid.UUID, changes JudgmentDiaryEntryChangeSet) (*domain.JudgmentDiaryEntry, error) {
	existing, err := h.Get(id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, fmt.Errorf("judgment diary entry not found")
	}

	cols, values, err := changes.columns(time.Now().UTC())
	if err != nil {
		return nil, err
	}
	if len(cols) == 0 {
		return existing, nil
	}

	query := table.JudgmentDiaryEntry.
		UPDATE(cols).
		SET(values[0], values[1:]...).
		WHERE(table.JudgmentDiaryEntry.ID.EQ(postgres.UUID(id)))

	_, err = query.Exec(h.Db)
	if err != nil {
		return nil, fmt.Errorf("failed to update judgment diary entry: %w", err)
	}

	updated, err := h.Get(id)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, fmt.Errorf("failed to update judgment diary entry")
	}
	return updated, nil
}

func orEmpty[T any](in []T) []T {
	if in == nil {
		return []T{}
	}
	return in
}

func orEmptyStrings(in []string) []string {
	if in == nil {
		return []string{}
	}
	return in
}
