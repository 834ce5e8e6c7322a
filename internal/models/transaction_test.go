package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidKind(t *testing.T) {
	assert.True(t, ValidKind(KindIncome))
	assert.True(t, ValidKind(KindExpense))
	assert.False(t, ValidKind(TransactionKind("transfer")))
	assert.False(t, ValidKind(TransactionKind("")))
}

func TestValidCategory(t *testing.T) {
	tests := []struct {
		name     string
		kind     TransactionKind
		category string
		expected bool
	}{
		{"Expense food", KindExpense, "Food", true},
		{"Expense other", KindExpense, "Other", true},
		{"Income salary", KindIncome, "Salary", true},
		{"Income other", KindIncome, "Other", true},
		{"Income category on expense", KindExpense, "Salary", false},
		{"Expense category on income", KindIncome, "Rent", false},
		{"Unknown category", KindExpense, "Gambling", false},
		{"Case sensitive", KindExpense, "food", false},
		{"Empty category", KindExpense, "", false},
		{"Unknown kind", TransactionKind("transfer"), "Food", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, ValidCategory(tc.kind, tc.category))
		})
	}
}

func TestKindPredicates(t *testing.T) {
	expense := Transaction{Kind: KindExpense}
	assert.True(t, expense.IsExpense())
	assert.False(t, expense.IsIncome())

	income := Transaction{Kind: KindIncome}
	assert.True(t, income.IsIncome())
	assert.False(t, income.IsExpense())
}
