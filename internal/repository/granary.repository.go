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

type GranaryRepository interface {
	List() ([]domain.Granary, error)
	Get(uuid.UUID) (*domain.Granary, error)
	Add(GranaryCreate) (*domain.Granary, error)
	Update(uuid.UUID, GranaryChangeSet) (*domain.Granary, error)
	GetOldestUnupdated(now time.Time) (*domain.OldestUnupdatedGranary, error)
}

type GranaryCreate struct {
	Name         string
	Purpose      string
	Currency     string
	Owner        string
	IsPublic     bool
	PublicThesis *string
	PublicOrder  *int32
}

// GranaryChangeSet carries only the fields a caller wants to change; nil
// fields are left untouched by Update.
type GranaryChangeSet struct {
	Name         *string
	Purpose      *string
	Currency     *string
	IsPublic     *bool
	PublicThesis *string
	PublicOrder  *int32
}

// columns translates the change-set into update assignments. Any public
// visibility field also stamps last_public_update; any assignment at all
// stamps updated_at.
func (c GranaryChangeSet) columns(now time.Time) (postgres.ColumnList, []interface{}) {
	cols := postgres.ColumnList{}
	values := []interface{}{}
	publicFieldsChanged := false

	if c.Name != nil {
		cols = append(cols, table.Granary.Name)
		values = append(values, postgres.String(*c.Name))
	}
	if c.Purpose != nil {
		cols = append(cols, table.Granary.Purpose)
		values = append(values, postgres.String(*c.Purpose))
	}
	if c.Currency != nil {
		cols = append(cols, table.Granary.Currency)
		values = append(values, postgres.String(*c.Currency))
	}
	if c.IsPublic != nil {
		cols = append(cols, table.Granary.IsPublic)
		values = append(values, postgres.Bool(*c.IsPublic))
		publicFieldsChanged = true
	}
	if c.PublicThesis != nil {
		cols = append(cols, table.Granary.PublicThesis)
		values = append(values, postgres.String(*c.PublicThesis))
		publicFieldsChanged = true
	}
	if c.PublicOrder != nil {
		cols = append(cols, table.Granary.PublicOrder)
		values = append(values, postgres.Int32(*c.PublicOrder))
		publicFieldsChanged = true
	}

	if len(cols) == 0 {
		return cols, values
	}
	if publicFieldsChanged {
		cols = append(cols, table.Granary.LastPublicUpdate)
		values = append(values, postgres.TimestampzT(now))
	}
	cols = append(cols, table.Granary.UpdatedAt)
	values = append(values, postgres.TimestampzT(now))

	return cols, values
}

type granaryRepositoryHandler struct {
	Db *sql.DB
}

func NewGranaryRepository(db *sql.DB) GranaryRepository {
	return granaryRepositoryHandler{db}
}

func transformGranary(m model.Granary) domain.Granary {
	return domain.Granary{
		ID:               m.ID,
		Name:             m.Name,
		Purpose:          m.Purpose,
		Currency:         m.Currency,
		Owner:            m.Owner,
		IsPublic:         m.IsPublic,
		PublicThesis:     m.PublicThesis,
		PublicOrder:      m.PublicOrder,
		LastPublicUpdate: m.LastPublicUpdate,
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
}

func (h granaryRepositoryHandler) List() ([]domain.Granary, error) {
	query := table.Granary.
		SELECT(table.Granary.AllColumns).
		ORDER_BY(table.Granary.CreatedAt.DESC())

	out := []model.Granary{}
	err := query.Query(h.Db, &out)
	if errors.Is(err, qrm.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to list granaries: %w", err)
	}

	granaries := make([]domain.Granary, 0, len(out))
	for _, m := range out {
		granaries = append(granaries, transformGranary(m))
	}
	return granaries, nil
}

func (h granaryRepositoryHandler) Get(id uuid.UUID) (*domain.Granary, error) {
	query := table.Granary.
		SELECT(table.Granary.AllColumns).
		WHERE(table.Granary.ID.EQ(postgres.UUID(id)))

	out := model.Granary{}
	err := query.Query(h.Db, &out)
	if errors.Is(err, qrm.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get granary: %w", err)
	}

	g := transformGranary(out)
	return &g, nil
}

func (h granaryRepositoryHandler) Add(in GranaryCreate) (*domain.Granary, error) {
	now := time.Now().UTC()
	m := model.Granary{
		ID:           uuid.New(),
		Name:         in.Name,
		Purpose:      in.Purpose,
		Currency:     in.Currency,
		Owner:        in.Owner,
		IsPublic:     in.IsPublic,
		PublicThesis: in.PublicThesis,
		PublicOrder:  in.PublicOrder,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if in.IsPublic {
		m.LastPublicUpdate = &now
	}

	query := table.Granary.INSERT(table.Granary.AllColumns).MODEL(m)
	_, err := query.Exec(h.Db)
	if err != nil {
		return nil, fmt.Errorf("failed to insert granary: %w", err)
	}

	created, err := h.Get(m.ID)
	if err != nil {
		return nil, err
	}
	if created == nil {
		return nil, fmt.Errorf("failed to create granary")
	}
	return created, nil
}

func (h granaryRepositoryHandler) Update(id uuid.UUID, changes GranaryChangeSet) (*domain.Granary, error) {
	existing, err := h.Get(id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, fmt.Errorf("granary not found")
	}

	cols, values := changes.columns(time.Now().UTC())
	if len(cols) == 0 {
		return existing, nil
	}

	query := table.Granary.
		UPDATE(cols).
		SET(values[0], values[1:]...).
		WHERE(table.Granary.ID.EQ(postgres.UUID(id)))

	_, err = query.Exec(h.Db)
	if err != nil {
		return nil, fmt.Errorf("failed to update granary: %w", err)
	}

	updated, err := h.Get(id)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, fmt.Errorf("failed to update granary")
	}
	return updated, nil
}

// GetOldestUnupdated picks the granary whose latest snapshot date (falling
// back to its creation date) is smallest, with whole days elapsed since then.
func (h granaryRepositoryHandler) GetOldestUnupdated(now time.Time) (*domain.OldestUnupdatedGranary, error) {
	lastSnapshotDate := postgres.COALESCE(
		postgres.MAX(table.Snapshot.Date),
		postgres.CAST(table.Granary.CreatedAt).AS_DATE(),
	)

	query := table.Granary.
		LEFT_JOIN(table.Snapshot, table.Snapshot.GranaryID.EQ(table.Granary.ID)).
		SELECT(table.Granary.AllColumns, lastSnapshotDate.AS("last_snapshot_date")).
		GROUP_BY(table.Granary.ID).
		ORDER_BY(lastSnapshotDate.ASC()).
		LIMIT(1)

	var out struct {
		model.Granary
		LastSnapshotDate *time.Time
	}
	err := query.Query(h.Db, &out)
	if errors.Is(err, qrm.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get oldest unupdated granary: %w", err)
	}

	lastDate := out.CreatedAt
	if out.LastSnapshotDate != nil {
		lastDate = *out.LastSnapshotDate
	}

	return &domain.OldestUnupdatedGranary{
		Granary:         transformGranary(out.Granary),
		DaysSinceUpdate: util.DaysSince(lastDate, now),
	}, nil
}
