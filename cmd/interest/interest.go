// Package interest handles the simple/compound interest command
package interest

import (
	"github.com/spf13/cobra"

	"supercalc/cmd/root"
	"supercalc/internal/session"
)

var (
	kind      string
	principal float64
	rate      float64
	years     float64
)

// Cmd represents the interest command
var Cmd = &cobra.Command{
	Use:   "interest",
	Short: "Simple or compound interest",
	Run:   interestFunc,
}

func init() {
	Cmd.Flags().StringVarP(&kind, "kind", "k", "simple", "simple or compound")
	Cmd.Flags().Float64VarP(&principal, "principal", "p", 0, "Principal amount")
	Cmd.Flags().Float64VarP(&rate, "rate", "r", 0, "Annual rate in percent")
	Cmd.Flags().Float64VarP(&years, "years", "y", 1, "Time in years")
}

func interestFunc(cmd *cobra.Command, args []string) {
	res, err := root.Session.Interest(session.InterestKind(kind), principal, rate, years)
	if err != nil {
		root.Log.Fatalf("Interest calculation failed: %v", err)
	}
	root.Log.Infof("Interest: %.2f", res)
	root.Log.Infof("Total: %.2f", principal+res)
}
