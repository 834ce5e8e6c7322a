// Package snapshot handles the state report command
package snapshot

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"supercalc/cmd/root"
	"supercalc/internal/report"
)

var (
	format string
	output string
)

// Cmd represents the report command
var Cmd = &cobra.Command{
	Use:   "report",
	Short: "Export a snapshot of the ledger and history",
	Run:   snapshotFunc,
}

func init() {
	Cmd.Flags().StringVarP(&format, "format", "f", "", "json or yaml (default from config)")
	Cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (default stdout)")
}

func snapshotFunc(cmd *cobra.Command, args []string) {
	if format == "" && root.Cfg != nil {
		format = root.Cfg.Report.Format
	}

	generator := report.NewGenerator()
	out, err := generator.Generate(report.Snapshot{
		GeneratedAt:  time.Now(),
		Summary:      root.Session.Ledger.Summarize(),
		Transactions: root.Session.Ledger.Transactions(),
		History:      root.Session.History.All(),
	}, format)
	if err != nil {
		root.Log.Fatalf("Report generation failed: %v", err)
	}

	if output == "" {
		fmt.Println(string(out))
		return
	}
	if err := os.WriteFile(output, out, 0644); err != nil {
		root.Log.Fatalf("Cannot write report: %v", err)
	}
	root.Log.Infof("Report written to %s", output)
}
