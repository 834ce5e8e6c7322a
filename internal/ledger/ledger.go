// Package ledger implements the in-memory transaction ledger: an ordered,
// most-recent-first collection of income and expense transactions with a
// derived summary. The summary is always recomputed by a full scan so it can
// never drift from the collection after deletions.
package ledger

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"supercalc/internal/calcerror"
	"supercalc/internal/models"
)

var log = logrus.New()

// SetLogger sets a custom logger for this package
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// Ledger is the single owned collection of transactions. It is not safe for
// concurrent use; there is exactly one logical writer.
type Ledger struct {
	transactions []models.Transaction
	lastID       int64
	now          func() time.Time
}

// New creates an empty ledger.
func New() *Ledger {
	return &Ledger{now: time.Now}
}

// SetClock overrides the ledger's time source. Intended for tests.
func (l *Ledger) SetClock(now func() time.Time) {
	if now != nil {
		l.now = now
	}
}

// Add validates and appends a new transaction at the front of the collection,
// then returns the recomputed summary. Rejection leaves the ledger untouched.
func (l *Ledger) Add(description string, amount decimal.Decimal, kind models.TransactionKind, category string) (models.Transaction, models.LedgerSummary, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return models.Transaction{}, models.LedgerSummary{}, &calcerror.ValidationError{
			Tool: "ledger", Field: "description", Reason: "must not be empty",
		}
	}
	if !amount.IsPositive() {
		return models.Transaction{}, models.LedgerSummary{}, &calcerror.ValidationError{
			Tool: "ledger", Field: "amount", Reason: "must be positive",
		}
	}
	if !models.ValidKind(kind) {
		return models.Transaction{}, models.LedgerSummary{}, &calcerror.ValidationError{
			Tool: "ledger", Field: "kind", Reason: "must be income or expense",
		}
	}
	if !models.ValidCategory(kind, category) {
		return models.Transaction{}, models.LedgerSummary{}, &calcerror.CategoryError{
			Kind: string(kind), Category: category,
		}
	}

	createdAt := l.now()
	tx := models.Transaction{
		ID:          l.nextID(createdAt),
		Description: description,
		Amount:      amount,
		Kind:        kind,
		Category:    category,
		CreatedAt:   createdAt,
	}
	l.transactions = append([]models.Transaction{tx}, l.transactions...)

	log.WithFields(logrus.Fields{
		"id":       tx.ID,
		"kind":     tx.Kind,
		"category": tx.Category,
		"amount":   tx.Amount.StringFixed(2),
	}).Debug("Transaction added")

	return tx, l.Summarize(), nil
}

// Remove deletes the transaction with the given id. A missing id is a no-op,
// not an error. It reports whether a transaction was actually removed.
func (l *Ledger) Remove(id int64) (models.LedgerSummary, bool) {
	for i, tx := range l.transactions {
		if tx.ID == id {
			l.transactions = append(l.transactions[:i], l.transactions[i+1:]...)
			log.WithField("id", id).Debug("Transaction removed")
			return l.Summarize(), true
		}
	}
	return l.Summarize(), false
}

// Transactions returns a copy of the collection, most recent first.
func (l *Ledger) Transactions() []models.Transaction {
	out := make([]models.Transaction, len(l.transactions))
	copy(out, l.transactions)
	return out
}

// Len returns the number of transactions in the ledger.
func (l *Ledger) Len() int {
	return len(l.transactions)
}

// Summarize recomputes the derived summary with a full O(n) scan.
// The category breakdown covers expense transactions only and its values sum
// exactly to the expense total.
func (l *Ledger) Summarize() models.LedgerSummary {
	s := models.LedgerSummary{
		TotalIncome:       decimal.Zero,
		TotalExpense:      decimal.Zero,
		CategoryBreakdown: make(map[string]decimal.Decimal),
	}
	for _, tx := range l.transactions {
		switch tx.Kind {
		case models.KindIncome:
			s.TotalIncome = s.TotalIncome.Add(tx.Amount)
		case models.KindExpense:
			s.TotalExpense = s.TotalExpense.Add(tx.Amount)
			s.CategoryBreakdown[tx.Category] = s.CategoryBreakdown[tx.Category].Add(tx.Amount)
		}
	}
	s.Balance = s.TotalIncome.Sub(s.TotalExpense)
	return s
}

// nextID derives a monotonic creation-time identifier. Two adds inside the
// same millisecond bump past the previous id.
func (l *Ledger) nextID(createdAt time.Time) int64 {
	id := createdAt.UnixMilli()
	if id <= l.lastID {
		id = l.lastID + 1
	}
	l.lastID = id
	return id
}
