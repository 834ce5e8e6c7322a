// Package histlog handles the calculation history commands
package histlog

import (
	"github.com/spf13/cobra"

	"supercalc/cmd/root"
)

var clearAll bool

// Cmd represents the history command
var Cmd = &cobra.Command{
	Use:   "history",
	Short: "List or clear the calculation history",
	Run:   historyFunc,
}

func init() {
	Cmd.Flags().BoolVar(&clearAll, "clear", false, "Clear the whole history")
}

func historyFunc(cmd *cobra.Command, args []string) {
	if clearAll {
		root.Session.History.Clear()
		root.Log.Info("History cleared")
		return
	}

	entries := root.Session.History.All()
	if len(entries) == 0 {
		root.Log.Info("No calculations yet")
		return
	}
	for _, entry := range entries {
		root.Log.Infof("[%s] %s = %s (%s)",
			entry.Tool, entry.Expression, entry.Result,
			entry.Timestamp.Format("15:04:05"))
	}
}
