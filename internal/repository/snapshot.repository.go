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

const defaultSnapshotListLimit = 50

type SnapshotRepository interface {
	List(SnapshotListFilter) ([]domain.Snapshot, error)
	Get(uuid.UUID) (*domain.Snapshot, error)
	Add(SnapshotCreate) (*domain.Snapshot, error)
	Update(uuid.UUID, SnapshotChangeSet) (*domain.Snapshot, error)
	LatestForGranary(uuid.UUID) (*domain.Snapshot, error)
	PreviousForGranary(uuid.UUID) (*domain.Snapshot, error)
	ExistsForDate(granaryID uuid.UUID, date time.Time, excludeID uuid.UUID) (bool, error)
}

type SnapshotListFilter struct {
	GranaryID *uuid.UUID
	Limit     *int64
}

type SnapshotCreate struct {
	GranaryID        uuid.UUID
	Date             time.Time
	TotalAmount      float64
	AvailableBalance *float64
	ProfitLoss       *float64
	Memo             *string
}

type SnapshotChangeSet struct {
	Date             *time.Time
	TotalAmount      *float64
	AvailableBalance *float64
	ProfitLoss       *float64
	Memo             *string
}

// Snapshots carry no updated_at; only the provided fields are written.
func (c SnapshotChangeSet) columns() (postgres.ColumnList, []interface{}) {
	cols := postgres.ColumnList{}
	values := []interface{}{}

	if c.Date != nil {
		cols = append(cols, table.Snapshot.Date)
		values = append(values, postgres.DateT(*c.Date))
	}
	if c.TotalAmount != nil {
		cols = append(cols, table.Snapshot.TotalAmount)
		values = append(values, postgres.Float(*c.TotalAmount))
	}
	if c.AvailableBalance != nil {
		cols = append(cols, table.Snapshot.AvailableBalance)
		values = append(values, postgres.Float(*c.AvailableBalance))
	}
	if c.ProfitLoss != nil {
		cols = append(cols, table.Snapshot.ProfitLoss)
		values = append(values, postgres.Float(*c.ProfitLoss))
	}
	if c.Memo != nil {
		cols = append(cols, table.Snapshot.Memo)
		values = append(values, postgres.String(*c.Memo))
	}

	return cols, values
}

type snapshotRepositoryHandler struct {
	Db *sql.DB
}

func NewSnapshotRepository(db *sql.DB) SnapshotRepository {
	return snapshotRepositoryHandler{db}
}

func transformSnapshot(m model.Snapshot) domain.Snapshot {
	return domain.Snapshot{
		ID:               m.ID,
		GranaryID:        m.GranaryID,
		Date:             util.FormatDate(m.Date),
		TotalAmount:      m.TotalAmount,
		AvailableBalance: m.AvailableBalance,
		ProfitLoss:       m.ProfitLoss,
		Memo:             m.Memo,
		CreatedAt:        m.CreatedAt,
	}
}

func transformSnapshots(in []model.Snapshot) []domain.Snapshot {
	out := make([]domain.Snapshot, 0, len(in))
	for _, m := range in {
		out = append(out, transformSnapshot(m))
	}
	return out
}

func (h snapshotRepositoryHandler) List(filter SnapshotListFilter) ([]domain.Snapshot, error) {
	limit := int64(defaultSnapshotListLimit)
	if filter.Limit != nil {
		limit = *filter.Limit
	}

	query := table.Snapshot.SELECT(table.Snapshot.AllColumns)
	if filter.GranaryID != nil {
		query = query.WHERE(table.Snapshot.GranaryID.EQ(postgres.UUID(*filter.GranaryID)))
	}
	query = query.
		ORDER_BY(table.Snapshot.Date.DESC()).
		LIMIT(limit)

	out := []model.Snapshot{}
	err := query.Query(h.Db, &out)
	if errors.Is(err, qrm.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to list snapshots: %w", err)
	}

	return transformSnapshots(out), nil
}

func (h snapshotRepositoryHandler) Get(id uuid.UUID) (*domain.Snapshot, error) {
	query := table.Snapshot.
		SELECT(table.Snapshot.AllColumns).
		WHERE(table.Snapshot.ID.EQ(postgres.UUID(id)))

	out := model.Snapshot{}
	err := query.Query(h.Db, &out)
	if errors.Is(err, qrm.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get snapshot: %w", err)
	}

	s := transformSnapshot(out)
	return &s, nil
}

func (h snapshotRepositoryHandler) Add(in SnapshotCreate) (*domain.Snapshot, error) {
	m := model.Snapshot{
		ID:               uuid.New(),
		GranaryID:        in.GranaryID,
		Date:             in.Date,
		TotalAmount:      in.TotalAmount,
		AvailableBalance: in.AvailableBalance,
		ProfitLoss:       in.ProfitLoss,
		Memo:             in.Memo,
		CreatedAt:        time.Now().UTC(),
	}

	query := table.Snapshot.INSERT(table.Snapshot.AllColumns).MODEL(m)
	_, err := query.Exec(h.Db)
	if isUniqueViolation(err) {
		return nil, ErrDuplicateSnapshot
	} else if err != nil {
		return nil, fmt.Errorf("failed to insert snapshot: %w", err)
	}

	created, err := h.Get(m.ID)
	if err != nil {
		return nil, err
	}
	if created == nil {
		return nil, fmt.Errorf("failed to create snapshot")
	}
	return created, nil
}

func (h snapshotRepositoryHandler) Update(id uuid.UUID, changes SnapshotChangeSet) (*domain.Snapshot, error) {
	existing, err := h.Get(id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, fmt.Errorf("snapshot not found")
	}

	cols, values := changes.columns()
	if len(cols) == 0 {
		return existing, nil
	}

	query := table.Snapshot.
		UPDATE(cols).
		SET(values[0], values[1:]...).
		WHERE(table.Snapshot.ID.EQ(postgres.UUID(id)))

	_, err = query.Exec(h.Db)
	if isUniqueViolation(err) {
		return nil, ErrDuplicateSnapshot
	} else if err != nil {
		return nil, fmt.Errorf("failed to update snapshot: %w", err)
	}

	updated, err := h.Get(id)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, fmt.Errorf("failed to update snapshot")
	}
	return updated, nil
}

func (h snapshotRepositoryHandler) LatestForGranary(granaryID uuid.UUID) (*domain.Snapshot, error) {
	return h.nthForGranary(granaryID, 0)
}

func (h snapshotRepositoryHandler) PreviousForGranary(granaryID uuid.UUID) (*domain.Snapshot, error) {
	return h.nthForGranary(granaryID, 1)
}

func (h snapshotRepositoryHandler) nthForGranary(granaryID uuid.UUID, offset int64) (*domain.Snapshot, error) {
	query := table.Snapshot.
		SELECT(table.Snapshot.AllColumns).
		WHERE(table.Snapshot.GranaryID.EQ(postgres.UUID(granaryID))).
		ORDER_BY(table.Snapshot.Date.DESC()).
		LIMIT(1).
		OFFSET(offset)

	out := model.Snapshot{}
	err := query.Query(h.Db, &out)
	if errors.Is(err, qrm.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get snapshot for granary: %w", err)
	}

	s := transformSnapshot(out)
	return &s, nil
}

func (h snapshotRepositoryHandler) ExistsForDate(granaryID uuid.UUID, date time.Time, excludeID uuid.UUID) (bool, error) {
	query := table.Snapshot.
		SELECT(table.Snapshot.ID).
		WHERE(postgres.AND(
			table.Snapshot.GranaryID.EQ(postgres.UUID(granaryID)),
			table.Snapshot.Date.EQ(postgres.DateT(date)),
			table.Snapshot.ID.NOT_EQ(postgres.UUID(excludeID)),
		)).
		LIMIT(1)

	out := model.Snapshot{}
	err := query.Query(h.Db, &out)
	if errors.Is(err, qrm.ErrNoRows) {
		return false, nil
	} else if err != nil {
		return false, fmt.Errorf("failed to check snapshot date: %w", err)
	}

	return true, nil
}
