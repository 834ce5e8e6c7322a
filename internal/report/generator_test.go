package report

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"supercalc/internal/models"
)

func sampleSnapshot() Snapshot {
	return Snapshot{
		GeneratedAt: time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC),
		Summary: models.LedgerSummary{
			TotalIncome:  decimal.NewFromInt(1000),
			TotalExpense: decimal.NewFromInt(250),
			Balance:      decimal.NewFromInt(750),
			CategoryBreakdown: map[string]decimal.Decimal{
				"Food": decimal.NewFromInt(250),
			},
		},
		Transactions: []models.Transaction{
			{
				ID:          1,
				Description: "Groceries",
				Amount:      decimal.RequireFromString("250"),
				Kind:        models.KindExpense,
				Category:    "Food",
				CreatedAt:   time.Date(2026, 8, 28, 11, 0, 0, 0, time.UTC),
			},
		},
		History: []models.HistoryEntry{
			{Tool: "Percentage", Expression: "20% of 250", Result: "50.00",
				Timestamp: time.Date(2026, 8, 28, 11, 30, 0, 0, time.UTC)},
		},
	}
}

func TestGenerateJSON(t *testing.T) {
	out, err := NewGenerator().Generate(sampleSnapshot(), "json")
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(out, &decoded))
	assert.Contains(t, decoded, "summary")
	assert.Contains(t, decoded, "transactions")
	assert.Contains(t, decoded, "history")

	assert.Contains(t, string(out), "Groceries")
	assert.Contains(t, string(out), "50.00")
}

func TestGenerateYAML(t *testing.T) {
	out, err := NewGenerator().Generate(sampleSnapshot(), "yaml")
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, yaml.Unmarshal(out, &decoded))
	assert.Contains(t, decoded, "summary")
	assert.Contains(t, decoded, "transactions")
	assert.Contains(t, decoded, "history")
}

func TestGenerateUnsupportedFormat(t *testing.T) {
	_, err := NewGenerator().Generate(sampleSnapshot(), "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported report format")
}
