package models

import "github.com/shopspring/decimal"

// LedgerSummary is the derived view of a ledger: totals, balance and the
// per-category expense breakdown. It is recomputed from the transaction
// collection on every request, never patched incrementally.
type LedgerSummary struct {
	TotalIncome       decimal.Decimal            `json:"total_income" yaml:"total_income"`
	TotalExpense      decimal.Decimal            `json:"total_expense" yaml:"total_expense"`
	Balance           decimal.Decimal            `json:"balance" yaml:"balance"`
	CategoryBreakdown map[string]decimal.Decimal `json:"category_breakdown" yaml:"category_breakdown"`
}

// ChartSlice is one proportional slice of the expense breakdown, ready for
// rendering. Color is assigned by rank in the sorted breakdown, not by
// category identity, so a deletion may reshuffle colors.
type ChartSlice struct {
	Category string          `json:"category" yaml:"category"`
	Amount   decimal.Decimal `json:"amount" yaml:"amount"`
	Fraction float64         `json:"fraction" yaml:"fraction"`
	Color    string          `json:"color" yaml:"color"`
}
