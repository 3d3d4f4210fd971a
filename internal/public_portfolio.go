package internal

import (
	"gokkankeeper/internal/domain"
)

const (
	warningMissingReturn     = "Missing return inputs. Set profitLossPercent or provide avgCost and currentValue."
	warningMissingWeight     = "Missing weightPercent while portfolio uses weight-based allocation."
	warningMissingAllocation = "Missing allocation inputs. Set currentValue (or quantity+currentValue) or use weightPercent."
)

type evaluatedPosition struct {
	row               domain.PublicPositionRow
	marketValue       *float64
	returnPercent     *float64
	isEstimatedReturn bool
}

// BuildPublicPortfolio aggregates public position rows into the published
// portfolio view. Allocation mode is decided globally: if any row carries a
// weightPercent, allocations come from weights; otherwise each position's
// market value is divided by the total. Input order is preserved.
func BuildPublicPortfolio(rows []domain.PublicPositionRow) domain.PublicPortfolio {
	warnings := []domain.PublicPortfolioWarning{}

	hasAnyWeight := false
	for _, row := range rows {
		if row.WeightPercent != nil {
			hasAnyWeight = true
			break
		}
	}

	evaluated := make([]evaluatedPosition, 0, len(rows))
	for _, row := range rows {
		e := evaluatedPosition{row: row}

		// With a quantity, currentValue is a unit price; without one it is
		// already the position's total value.
		if row.CurrentValue != nil {
			value := *row.CurrentValue
			if row.Quantity != nil {
				value = *row.Quantity * *row.CurrentValue
			}
			e.marketValue = &value
		}

		if row.ProfitLossPercent != nil {
			v := *row.ProfitLossPercent
			e.returnPercent = &v
		} else if row.AvgCost != nil && *row.AvgCost != 0 && row.CurrentValue != nil {
			v := ((*row.CurrentValue - *row.AvgCost) / *row.AvgCost) * 100
			e.returnPercent = &v
			e.isEstimatedReturn = true
		} else {
			warnings = append(warnings, domain.PublicPortfolioWarning{
				PositionID: row.ID,
				Symbol:     row.Symbol,
				Message:    warningMissingReturn,
			})
		}

		evaluated = append(evaluated, e)
	}

	totalAllocationBasis := 0.0
	for _, e := range evaluated {
		if e.marketValue != nil {
			totalAllocationBasis += *e.marketValue
		}
	}

	for _, e := range evaluated {
		if hasAnyWeight && e.row.WeightPercent == nil {
			warnings = append(warnings, domain.PublicPortfolioWarning{
				PositionID: e.row.ID,
				Symbol:     e.row.Symbol,
				Message:    warningMissingWeight,
			})
		}
		if !hasAnyWeight && e.marketValue == nil {
			warnings = append(warnings, domain.PublicPortfolioWarning{
				PositionID: e.row.ID,
				Symbol:     e.row.Symbol,
				Message:    warningMissingAllocation,
			})
		}
	}

	data := make([]domain.PublicPortfolioItem, 0, len(evaluated))
	for _, e := range evaluated {
		var allocationPercent *float64
		if hasAnyWeight {
			if e.row.WeightPercent != nil {
				v := *e.row.WeightPercent
				allocationPercent = &v
			}
		} else if e.marketValue != nil && totalAllocationBasis > 0 {
			v := (*e.marketValue / totalAllocationBasis) * 100
			allocationPercent = &v
		}

		data = append(data, domain.PublicPortfolioItem{
			Symbol:            e.row.Symbol,
			Name:              e.row.Name,
			GranaryID:         e.row.GranaryID,
			GranaryName:       e.row.GranaryName,
			AllocationPercent: allocationPercent,
			ReturnPercent:     e.returnPercent,
			Thesis:            e.row.PublicThesis,
			LastUpdated:       e.row.LastPublicUpdate,
			IsEstimatedReturn: e.isEstimatedReturn,
		})
	}

	return domain.PublicPortfolio{
		Data: data,
		Meta: domain.PublicPortfolioMeta{Warnings: warnings},
	}
}
