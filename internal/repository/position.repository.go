package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"gokkankeeper/internal/db/models/postgres/public/model"
	"gokkankeeper/internal/db/models/postgres/public/table"
	"gokkankeeper/internal/domain"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
	"github.com/google/uuid"
)

type PositionRepository interface {
	List(granaryID *uuid.UUID) ([]domain.Position, error)
	ListPublic() ([]domain.PublicPositionRow, error)
	Get(uuid.UUID) (*domain.Position, error)
	Add(PositionCreate) (*domain.Position, error)
	Update(uuid.UUID, PositionChangeSet) (*domain.Position, error)
	Delete(uuid.UUID) error
}

type PositionCreate struct {
	GranaryID         *uuid.UUID
	Name              string
	Symbol            string
	Market            *string
	AssetType         *string
	Quantity          *float64
	AvgCost           *float64
	CurrentValue      *float64
	WeightPercent     *float64
	ProfitLoss        *float64
	ProfitLossPercent *float64
	Note              *string
	IsPublic          bool
	PublicThesis      *string
	PublicOrder       *int32
}

type PositionChangeSet struct {
	GranaryID         *uuid.UUID
	Name              *string
	Symbol            *string
	Market            *string
	AssetType         *string
	Quantity          *float64
	AvgCost           *float64
	CurrentValue      *float64
	WeightPercent     *float64
	ProfitLoss        *float64
	ProfitLossPercent *float64
	Note              *string
	IsPublic          *bool
	PublicThesis      *string
	PublicOrder       *int32
}

func (c PositionChangeSet) columns(now time.Time) (postgres.ColumnList, []interface{}) {
	cols := postgres.ColumnList{}
	values := []interface{}{}
	publicFieldsChanged := false

	if c.GranaryID != nil {
		cols = append(cols, table.Position.GranaryID)
		values = append(values, postgres.UUID(*c.GranaryID))
	}
	if c.Name != nil {
		cols = append(cols, table.Position.Name)
		values = append(values, postgres.String(*c.Name))
	}
	if c.Symbol != nil {
		cols = append(cols, table.Position.Symbol)
		values = append(values, postgres.String(*c.Symbol))
	}
	if c.Market != nil {
		cols = append(cols, table.Position.Market)
		values = append(values, postgres.String(*c.Market))
	}
	if c.AssetType != nil {
		cols = append(cols, table.Position.AssetType)
		values = append(values, postgres.String(*c.AssetType))
	}
	if c.Quantity != nil {
		cols = append(cols, table.Position.Quantity)
		values = append(values, postgres.Float(*c.Quantity))
	}
	if c.AvgCost != nil {
		cols = append(cols, table.Position.AvgCost)
		values = append(values, postgres.Float(*c.AvgCost))
	}
	if c.CurrentValue != nil {
		cols = append(cols, table.Position.CurrentValue)
		values = append(values, postgres.Float(*c.CurrentValue))
	}
	if c.WeightPercent != nil {
		cols = append(cols, table.Position.WeightPercent)
		values = append(values, postgres.Float(*c.WeightPercent))
	}
	if c.ProfitLoss != nil {
		cols = append(cols, table.Position.ProfitLoss)
		values = append(values, postgres.Float(*c.ProfitLoss))
	}
	if c.ProfitLossPercent != nil {
		cols = append(cols, table.Position.ProfitLossPercent)
		values = append(values, postgres.Float(*c.ProfitLossPercent))
	}
	if c.Note != nil {
		cols = append(cols, table.Position.Note)
		values = append(values, postgres.String(*c.Note))
	}
	if c.IsPublic != nil {
		cols = append(cols, table.Position.IsPublic)
		values = append(values, postgres.Bool(*c.IsPublic))
		publicFieldsChanged = true
	}
	if c.PublicThesis != nil {
		cols = append(cols, table.Position.PublicThesis)
		values = append(values, postgres.String(*c.PublicThesis))
		publicFieldsChanged = true
	}
	if c.PublicOrder != nil {
		cols = append(cols, table.Position.PublicOrder)
		values = append(values, postgres.Int32(*c.PublicOrder))
		publicFieldsChanged = true
	}

	if len(cols) == 0 {
		return cols, values
	}
	if publicFieldsChanged {
		cols = append(cols, table.Position.LastPublicUpdate)
		values = append(values, postgres.TimestampzT(now))
	}
	cols = append(cols, table.Position.UpdatedAt)
	values = append(values, postgres.TimestampzT(now))

	return cols, values
}

type positionRepositoryHandler struct {
	Db *sql.DB
}

func NewPositionRepository(db *sql.DB) PositionRepository {
	return positionRepositoryHandler{db}
}

func transformPosition(m model.Position) domain.Position {
	return domain.Position{
		ID:                m.ID,
		GranaryID:         m.GranaryID,
		Name:              m.Name,
		Symbol:            m.Symbol,
		Market:            m.Market,
		AssetType:         m.AssetType,
		Quantity:          m.Quantity,
		AvgCost:           m.AvgCost,
		CurrentValue:      m.CurrentValue,
		WeightPercent:     m.WeightPercent,
		ProfitLoss:        m.ProfitLoss,
		ProfitLossPercent: m.ProfitLossPercent,
		Note:              m.Note,
		IsPublic:          m.IsPublic,
		PublicThesis:      m.PublicThesis,
		PublicOrder:       m.PublicOrder,
		LastPublicUpdate:  m.LastPublicUpdate,
		CreatedAt:         m.CreatedAt,
		UpdatedAt:         m.UpdatedAt,
	}
}

func (h positionRepositoryHandler) List(granaryID *uuid.UUID) ([]domain.Position, error) {
	query := table.Position.SELECT(table.Position.AllColumns)
	if granaryID != nil {
		query = query.WHERE(table.Position.GranaryID.EQ(postgres.UUID(*granaryID)))
	}
	query = query.ORDER_BY(table.Position.UpdatedAt.DESC())

	out := []model.Position{}
	err := query.Query(h.Db, &out)
	if errors.Is(err, qrm.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to list positions: %w", err)
	}

	positions := make([]domain.Position, 0, len(out))
	for _, m := range out {
		positions = append(positions, transformPosition(m))
	}
	return positions, nil
}

// ListPublic returns public positions joined to their granary's name, in
// publish order. The aggregation layer relies on this ordering.
func (h positionRepositoryHandler) ListPublic() ([]domain.PublicPositionRow, error) {
	query := table.Position.
		LEFT_JOIN(table.Granary, table.Position.GranaryID.EQ(table.Granary.ID)).
		SELECT(
			table.Position.AllColumns,
			table.Granary.Name.AS("granary_name"),
		).
		WHERE(table.Position.IsPublic.IS_TRUE()).
		ORDER_BY(
			table.Position.PublicOrder.ASC(),
			table.Position.UpdatedAt.DESC(),
		)

	out := []struct {
		model.Position
		GranaryName *string
	}{}
	err := query.Query(h.Db, &out)
	if errors.Is(err, qrm.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to list public positions: %w", err)
	}

	rows := make([]domain.PublicPositionRow, 0, len(out))
	for _, r := range out {
		rows = append(rows, domain.PublicPositionRow{
			ID:                r.ID,
			GranaryID:         r.Position.GranaryID,
			GranaryName:       r.GranaryName,
			Name:              r.Position.Name,
			Symbol:            r.Symbol,
			Quantity:          r.Quantity,
			AvgCost:           r.AvgCost,
			CurrentValue:      r.CurrentValue,
			WeightPercent:     r.WeightPercent,
			ProfitLoss:        r.ProfitLoss,
			ProfitLossPercent: r.ProfitLossPercent,
			PublicThesis:      r.PublicThesis,
			PublicOrder:       r.PublicOrder,
			LastPublicUpdate:  r.LastPublicUpdate,
		})
	}
	return rows, nil
}

func (h positionRepositoryHandler) Get(id uuid.UUID) (*domain.Position, error) {
	query := table.Position.
		SELECT(table.Position.AllColumns).
		WHERE(table.Position.ID.EQ(postgres.UUID(id)))

	out := model.Position{}
	err := query.Query(h.Db, &out)
	if errors.Is(err, qrm.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get position: %w", err)
	}

	p := transformPosition(out)
	return &p, nil
}

func (h positionRepositoryHandler) Add(in PositionCreate) (*domain.Position, error) {
	now := time.Now().UTC()
	m := model.Position{
		ID:                uuid.New(),
		GranaryID:         in.GranaryID,
		Name:              in.Name,
		Symbol:            in.Symbol,
		Market:            in.Market,
		AssetType:         in.AssetType,
		Quantity:          in.Quantity,
		AvgCost:           in.AvgCost,
		CurrentValue:      in.CurrentValue,
		WeightPercent:     in.WeightPercent,
		ProfitLoss:        in.ProfitLoss,
		ProfitLossPercent: in.ProfitLossPercent,
		Note:              in.Note,
		IsPublic:          in.IsPublic,
		PublicThesis:      in.PublicThesis,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if in.PublicOrder != nil {
		m.PublicOrder = *in.PublicOrder
	}
	if in.IsPublic {
		m.LastPublicUpdate = &now
	}

	query := table.Position.INSERT(table.Position.AllColumns).MODEL(m)
	_, err := query.Exec(h.Db)
	if err != nil {
		return nil, fmt.Errorf("failed to insert position: %w", err)
	}

	created, err := h.Get(m.ID)
	if err != nil {
		return nil, err
	}
	if created == nil {
		return nil, fmt.Errorf("failed to create position")
	}
	return created, nil
}

func (h positionRepositoryHandler) Update(id uuid.UUID, changes PositionChangeSet) (*domain.Position, error) {
	existing, err := h.Get(id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, fmt.Errorf("position not found")
	}

	cols, values := changes.columns(time.Now().UTC())
	if len(cols) == 0 {
		return existing, nil
	}

	query := table.Position.
		UPDATE(cols).
		SET(values[0], values[1:]...).
		WHERE(table.Position.ID.EQ(postgres.UUID(id)))

	_, err = query.Exec(h.Db)
	if err != nil {
		return nil, fmt.Errorf("failed to update position: %w", err)
	}

	updated, err := h.Get(id)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, fmt.Errorf("failed to update position")
	}
	return updated, nil
}

// Delete removes the position outright. Nothing references positions, so
// there is no cascade to worry about.
func (h positionRepositoryHandler) Delete(id uuid.UUID) error {
	query := table.Position.
		DELETE().
		WHERE(table.Position.ID.EQ(postgres.UUID(id)))

	_, err := query.Exec(h.Db)
	if err != nil {
		return fmt.Errorf("failed to delete position: %w", err)
	}
	return nil
}
