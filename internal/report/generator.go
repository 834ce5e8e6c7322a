// Package report renders a point-in-time snapshot of the engine state
// (ledger summary, transactions and calculation history) in JSON or YAML.
package report

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"supercalc/internal/models"
)

var log = logrus.New()

// SetLogger sets a custom logger for this package
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// Snapshot is the exported view of the engine state.
type Snapshot struct {
	GeneratedAt  time.Time             `json:"generated_at" yaml:"generated_at"`
	Summary      models.LedgerSummary  `json:"summary" yaml:"summary"`
	Transactions []models.Transaction  `json:"transactions" yaml:"transactions"`
	History      []models.HistoryEntry `json:"history" yaml:"history"`
}

// Generator renders snapshots in the supported formats.
type Generator struct{}

// NewGenerator creates a snapshot generator.
func NewGenerator() *Generator {
	return &Generator{}
}

// Generate renders the snapshot in the specified format (json or yaml).
// It returns the rendered bytes or an error for an unsupported format.
func (g *Generator) Generate(snapshot Snapshot, format string) ([]byte, error) {
	switch format {
	case "json":
		return g.generateJSON(snapshot)
	case "yaml":
		return g.generateYAML(snapshot)
	default:
		return nil, fmt.Errorf("unsupported report format: %s", format)
	}
}

func (g *Generator) generateJSON(snapshot Snapshot) ([]byte, error) {
	out, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		log.Errorf("Failed to marshal JSON snapshot: %v", err)
		return nil, fmt.Errorf("failed to marshal JSON snapshot: %w", err)
	}
	return out, nil
}

func (g *Generator) generateYAML(snapshot Snapshot) ([]byte, error) {
	out, err := yaml.Marshal(snapshot)
	if err != nil {
		log.Errorf("Failed to marshal YAML snapshot: %v", err)
		return nil, fmt.Errorf("failed to marshal YAML snapshot: %w", err)
	}
	return out, nil
}
