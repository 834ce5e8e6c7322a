// Package percent handles the percentage calculator command
package percent

import (
	"strconv"

	"github.com/spf13/cobra"

	"supercalc/cmd/root"
	"supercalc/internal/session"
)

var mode string

// Cmd represents the percent command
var Cmd = &cobra.Command{
	Use:   "percent <value> <base>",
	Short: "Percentage calculator",
	Long: `Answers the two percentage questions:
  findValue:   what is <value>% of <base>
  findPercent: <value> is what % of <base>`,
	Args: cobra.ExactArgs(2),
	Run:  percentFunc,
}

func init() {
	Cmd.Flags().StringVarP(&mode, "mode", "m", "findValue", "findValue or findPercent")
}

func percentFunc(cmd *cobra.Command, args []string) {
	v1, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		root.Log.Fatalf("Invalid value '%s': %v", args[0], err)
	}
	v2, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		root.Log.Fatalf("Invalid base '%s': %v", args[1], err)
	}

	res, err := root.Session.Percentage(session.PercentageMode(mode), v1, v2)
	if err != nil {
		root.Log.Fatalf("Percentage calculation failed: %v", err)
	}
	root.Log.Infof("Result: %.2f", res)
}
