// Package currency handles the currency conversion command
package currency

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"supercalc/cmd/root"
	"supercalc/internal/rates"
)

var (
	from    string
	to      string
	offline bool
)

// Cmd represents the currency command
var Cmd = &cobra.Command{
	Use:   "currency <amount>",
	Short: "Convert between currencies using live or fallback rates",
	Args:  cobra.ExactArgs(1),
	Run:   currencyFunc,
}

func init() {
	Cmd.Flags().StringVarP(&from, "from", "f", "USD", "Source currency code")
	Cmd.Flags().StringVarP(&to, "to", "t", "INR", "Target currency code")
	Cmd.Flags().BoolVar(&offline, "offline", false, "Skip the live rate fetch and use the fallback table")
}

func currencyFunc(cmd *cobra.Command, args []string) {
	amount, err := decimal.NewFromString(args[0])
	if err != nil {
		root.Log.Fatalf("Invalid amount '%s': %v", args[0], err)
	}

	if !offline {
		source := root.Session.RefreshRates(context.Background())
		if source == rates.SourceFallback {
			root.Log.Warn("Live rates unavailable, using fallback table")
		}
	}

	res, err := root.Session.ConvertCurrency(amount, from, to)
	if err != nil {
		root.Log.Fatalf("Currency conversion failed: %v", err)
	}
	root.Log.Infof("%s %s = %s %s", amount.String(), from, res.StringFixed(2), to)
}
