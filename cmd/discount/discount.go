// Package discount handles the discount calculator command
package discount

import (
	"github.com/spf13/cobra"

	"supercalc/cmd/root"
)

var (
	price float64
	pct   float64
)

// Cmd represents the discount command
var Cmd = &cobra.Command{
	Use:   "discount",
	Short: "Price after a percentage discount",
	Run:   discountFunc,
}

func init() {
	Cmd.Flags().Float64VarP(&price, "price", "p", 0, "Original price")
	Cmd.Flags().Float64VarP(&pct, "percent", "d", 0, "Discount in percent")
}

func discountFunc(cmd *cobra.Command, args []string) {
	res, err := root.Session.Discount(price, pct)
	if err != nil {
		root.Log.Fatalf("Discount calculation failed: %v", err)
	}
	root.Log.Infof("Saved: %.2f", res.Saved)
	root.Log.Infof("Pay: %.2f", res.Final)
}
