// Package models defines the shared data types of the calculation and ledger engine.
package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionKind represents the direction of a ledger transaction.
type TransactionKind string

const (
	KindIncome  TransactionKind = "income"
	KindExpense TransactionKind = "expense"
)

// ExpenseCategories is the closed set of categories for expense transactions.
var ExpenseCategories = []string{
	"Food", "Transport", "Rent", "Utilities", "Entertainment", "Shopping", "Health", "Other",
}

// IncomeCategories is the closed set of categories for income transactions.
var IncomeCategories = []string{
	"Salary", "Freelance", "Investment", "Other",
}

// Transaction represents a single ledger entry. Transactions are immutable
// after creation; the amount is always positive and the sign is carried by Kind.
type Transaction struct {
	ID          int64           `json:"id" yaml:"id" csv:"id"`
	Description string          `json:"description" yaml:"description" csv:"description"`
	Amount      decimal.Decimal `json:"amount" yaml:"amount" csv:"amount"`
	Kind        TransactionKind `json:"kind" yaml:"kind" csv:"kind"`
	Category    string          `json:"category" yaml:"category" csv:"category"`
	CreatedAt   time.Time       `json:"created_at" yaml:"created_at" csv:"created_at"`
}

// IsExpense returns true if the transaction is an expense.
func (t Transaction) IsExpense() bool {
	return t.Kind == KindExpense
}

// IsIncome returns true if the transaction is an income.
func (t Transaction) IsIncome() bool {
	return t.Kind == KindIncome
}

// ValidKind reports whether k is one of the two known transaction kinds.
func ValidKind(k TransactionKind) bool {
	return k == KindIncome || k == KindExpense
}

// ValidCategory reports whether category belongs to the closed set for the
// given kind. Categories outside the vocabulary are rejected at the boundary.
func ValidCategory(kind TransactionKind, category string) bool {
	var set []string
	switch kind {
	case KindIncome:
		set = IncomeCategories
	case KindExpense:
		set = ExpenseCategories
	default:
		return false
	}
	for _, c := range set {
		if c == category {
			return true
		}
	}
	return false
}
