package ledger

import (
	"sort"

	"supercalc/internal/models"
)

// ChartPalette is the cyclic color palette for breakdown slices. Colors are
// assigned by descending-amount rank, not by category identity, so the same
// category may change color after a deletion reorders the breakdown.
var ChartPalette = []string{
	"#EF4444", "#F59E0B", "#10B981", "#3B82F6",
	"#6366F1", "#8B5CF6", "#EC4899", "#64748B",
}

// ChartBreakdown derives the proportional slice list from the current
// category breakdown, sorted by descending amount. Fractions are relative to
// the expense total; an empty ledger yields an empty slice list.
func (l *Ledger) ChartBreakdown() []models.ChartSlice {
	summary := l.Summarize()
	if summary.TotalExpense.IsZero() {
		return nil
	}

	slices := make([]models.ChartSlice, 0, len(summary.CategoryBreakdown))
	for category, amount := range summary.CategoryBreakdown {
		fraction, _ := amount.Div(summary.TotalExpense).Float64()
		slices = append(slices, models.ChartSlice{
			Category: category,
			Amount:   amount,
			Fraction: fraction,
		})
	}

	sort.Slice(slices, func(i, j int) bool {
		if !slices[i].Amount.Equal(slices[j].Amount) {
			return slices[i].Amount.GreaterThan(slices[j].Amount)
		}
		// Equal amounts tie-break on name so the ranking is deterministic.
		return slices[i].Category < slices[j].Category
	})

	for i := range slices {
		slices[i].Color = ChartPalette[i%len(ChartPalette)]
	}
	return slices
}
