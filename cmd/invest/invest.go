// Package invest handles the investment projection command
package invest

import (
	"github.com/spf13/cobra"

	"supercalc/cmd/root"
	"supercalc/internal/session"
)

var (
	mode    string
	initial float64
	monthly float64
	rate    float64
	years   int
)

// Cmd represents the invest command
var Cmd = &cobra.Command{
	Use:   "invest",
	Short: "SIP or lumpsum investment projection",
	Run:   investFunc,
}

func init() {
	Cmd.Flags().StringVarP(&mode, "mode", "m", "sip", "sip or lumpsum")
	Cmd.Flags().Float64VarP(&initial, "initial", "i", 0, "Initial amount")
	Cmd.Flags().Float64Var(&monthly, "monthly", 0, "Monthly contribution (SIP only)")
	Cmd.Flags().Float64VarP(&rate, "rate", "r", 0, "Expected annual return in percent")
	Cmd.Flags().IntVarP(&years, "years", "y", 1, "Investment period in years")
}

func investFunc(cmd *cobra.Command, args []string) {
	res, err := root.Session.Investment(session.InvestmentMode(mode), initial, monthly, rate, years)
	if err != nil {
		root.Log.Fatalf("Investment projection failed: %v", err)
	}
	root.Log.Infof("Invested: %.2f", res.Invested)
	root.Log.Infof("Wealth gain: %.2f", res.Total-res.Invested)
	root.Log.Infof("Total value: %.2f", res.Total)
}
