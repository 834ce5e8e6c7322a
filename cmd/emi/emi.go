// Package emi handles the loan installment command
package emi

import (
	"github.com/spf13/cobra"

	"supercalc/cmd/root"
)

var (
	principal float64
	rate      float64
	tenure    int
)

// Cmd represents the emi command
var Cmd = &cobra.Command{
	Use:   "emi",
	Short: "Equated monthly installment for a loan",
	Run:   emiFunc,
}

func init() {
	Cmd.Flags().Float64VarP(&principal, "principal", "p", 0, "Loan amount")
	Cmd.Flags().Float64VarP(&rate, "rate", "r", 0, "Annual interest rate in percent")
	Cmd.Flags().IntVarP(&tenure, "tenure", "t", 12, "Tenure in months")
}

func emiFunc(cmd *cobra.Command, args []string) {
	emi, err := root.Session.EMI(principal, rate, tenure)
	if err != nil {
		root.Log.Fatalf("EMI calculation failed: %v", err)
	}
	root.Log.Infof("Monthly EMI: %.2f", emi)
}
