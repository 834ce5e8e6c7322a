package models

import "time"

// HistoryEntry records one successful calculation or ledger mutation.
// Entries are immutable once created.
type HistoryEntry struct {
	Tool       string    `json:"tool" yaml:"tool"`
	Expression string    `json:"expression" yaml:"expression"`
	Result     string    `json:"result" yaml:"result"`
	Timestamp  time.Time `json:"timestamp" yaml:"timestamp"`
}
