// Package budget handles the transaction ledger commands
package budget

import (
	"os"
	"strconv"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"supercalc/cmd/root"
	"supercalc/internal/models"
)

var (
	description string
	amountStr   string
	kind        string
	category    string
	output      string
)

// Cmd represents the budget command group
var Cmd = &cobra.Command{
	Use:   "budget",
	Short: "Transaction ledger with category breakdown",
	Run: func(cmd *cobra.Command, args []string) {
		summaryFunc(cmd, args)
	},
}

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add an income or expense transaction",
	Run:   addFunc,
}

var removeCmd = &cobra.Command{
	Use:   "remove <id>",
	Short: "Remove a transaction by id",
	Args:  cobra.ExactArgs(1),
	Run:   removeFunc,
}

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Show balance, totals and category breakdown",
	Run:   summaryFunc,
}

var chartCmd = &cobra.Command{
	Use:   "chart",
	Short: "Show the proportional expense breakdown",
	Run:   chartFunc,
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the transaction list as CSV",
	Run:   exportFunc,
}

func init() {
	addCmd.Flags().StringVarP(&description, "desc", "d", "", "Transaction description")
	addCmd.Flags().StringVarP(&amountStr, "amount", "a", "", "Positive amount")
	addCmd.Flags().StringVarP(&kind, "kind", "k", "expense", "income or expense")
	addCmd.Flags().StringVarP(&category, "category", "c", "Other", "Category from the closed set")
	exportCmd.Flags().StringVarP(&output, "output", "o", "", "Output file (default stdout)")

	Cmd.AddCommand(addCmd)
	Cmd.AddCommand(removeCmd)
	Cmd.AddCommand(summaryCmd)
	Cmd.AddCommand(chartCmd)
	Cmd.AddCommand(exportCmd)
}

func addFunc(cmd *cobra.Command, args []string) {
	amount, err := decimal.NewFromString(amountStr)
	if err != nil {
		root.Log.Fatalf("Invalid amount '%s': %v", amountStr, err)
	}

	tx, summary, err := root.Session.AddTransaction(description, amount, models.TransactionKind(kind), category)
	if err != nil {
		root.Log.Fatalf("Add rejected: %v", err)
	}
	root.Log.Infof("Added #%d %s %s (%s)", tx.ID, tx.Kind, tx.Amount.StringFixed(2), tx.Category)
	root.Log.Infof("Balance: %s", summary.Balance.StringFixed(2))
}

func removeFunc(cmd *cobra.Command, args []string) {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		root.Log.Fatalf("Invalid transaction id '%s': %v", args[0], err)
	}

	summary, removed := root.Session.RemoveTransaction(id)
	if !removed {
		root.Log.Warnf("No transaction with id %d", id)
		return
	}
	root.Log.Infof("Removed #%d, balance: %s", id, summary.Balance.StringFixed(2))
}

func summaryFunc(cmd *cobra.Command, args []string) {
	summary := root.Session.Ledger.Summarize()
	root.Log.Infof("Balance: %s", summary.Balance.StringFixed(2))
	root.Log.Infof("Income: %s", summary.TotalIncome.StringFixed(2))
	root.Log.Infof("Expense: %s", summary.TotalExpense.StringFixed(2))
	for category, amount := range summary.CategoryBreakdown {
		root.Log.Infof("  %s: %s", category, amount.StringFixed(2))
	}
}

func chartFunc(cmd *cobra.Command, args []string) {
	slices := root.Session.Ledger.ChartBreakdown()
	if len(slices) == 0 {
		root.Log.Info("No expenses yet")
		return
	}
	for _, slice := range slices {
		root.Log.Infof("%s %s: %s (%.0f%%)", slice.Color, slice.Category, slice.Amount.StringFixed(2), slice.Fraction*100)
	}
}

func exportFunc(cmd *cobra.Command, args []string) {
	w := os.Stdout
	if output != "" {
		f, err := os.Create(output)
		if err != nil {
			root.Log.Fatalf("Cannot create output file: %v", err)
		}
		defer func() { _ = f.Close() }()
		w = f
	}

	if err := root.Session.Ledger.ExportCSV(w); err != nil {
		root.Log.Fatalf("Export failed: %v", err)
	}
}
