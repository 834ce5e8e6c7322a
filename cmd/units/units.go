// Package units handles the unit conversion command
package units

import (
	"strconv"

	"github.com/spf13/cobra"

	"supercalc/cmd/root"
	"supercalc/internal/formula"
)

var (
	dimension string
	from      string
	to        string
)

// Cmd represents the units command
var Cmd = &cobra.Command{
	Use:   "units <value>",
	Short: "Convert between units of one dimension",
	Long:  `Converts a value within one dimension: length, weight or temperature.`,
	Args:  cobra.ExactArgs(1),
	Run:   unitsFunc,
}

func init() {
	Cmd.Flags().StringVarP(&dimension, "dimension", "d", "length", "length, weight or temperature")
	Cmd.Flags().StringVarP(&from, "from", "f", "m", "Source unit")
	Cmd.Flags().StringVarP(&to, "to", "t", "ft", "Target unit")
}

func unitsFunc(cmd *cobra.Command, args []string) {
	value, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		root.Log.Fatalf("Invalid value '%s': %v", args[0], err)
	}

	res, err := root.Session.ConvertUnits(value, formula.Dimension(dimension), from, to)
	if err != nil {
		root.Log.Fatalf("Unit conversion failed: %v", err)
	}
	root.Log.Infof("%s %s = %.4f %s", args[0], from, res, to)
}
