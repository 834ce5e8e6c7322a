package ledger

import (
	"fmt"
	"io"

	"github.com/gocarina/gocsv"
)

// ExportCSV writes the transaction collection to w as CSV, most recent
// first, using the csv tags on models.Transaction.
func (l *Ledger) ExportCSV(w io.Writer) error {
	txs := l.Transactions()
	if err := gocsv.Marshal(&txs, w); err != nil {
		return fmt.Errorf("exporting ledger to CSV: %w", err)
	}
	log.WithField("transactions", len(txs)).Debug("Ledger exported to CSV")
	return nil
}
