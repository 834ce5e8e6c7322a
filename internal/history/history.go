// Package history implements the append-only calculation history log.
// The log is ordered newest first by insertion; entries are never mutated or
// removed individually, only the whole log can be cleared.
package history

import (
	"time"

	"supercalc/internal/models"
)

// Log is the append-only history of successful calculations.
type Log struct {
	entries []models.HistoryEntry
	now     func() time.Time
}

// New creates an empty history log.
func New() *Log {
	return &Log{now: time.Now}
}

// SetClock overrides the log's time source. Intended for tests.
func (h *Log) SetClock(now func() time.Time) {
	if now != nil {
		h.now = now
	}
}

// Append records a calculation at the front of the log and returns the
// created entry.
func (h *Log) Append(tool, expression, result string) models.HistoryEntry {
	entry := models.HistoryEntry{
		Tool:       tool,
		Expression: expression,
		Result:     result,
		Timestamp:  h.now(),
	}
	h.entries = append([]models.HistoryEntry{entry}, h.entries...)
	return entry
}

// All returns a copy of the log, newest first.
func (h *Log) All() []models.HistoryEntry {
	out := make([]models.HistoryEntry, len(h.entries))
	copy(out, h.entries)
	return out
}

// Len returns the number of entries.
func (h *Log) Len() int {
	return len(h.entries)
}

// Clear empties the log unconditionally.
func (h *Log) Clear() {
	h.entries = nil
}
