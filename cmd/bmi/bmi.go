// Package bmi handles the body-mass index command
package bmi

import (
	"github.com/spf13/cobra"

	"supercalc/cmd/root"
)

var (
	weight float64
	height float64
)

// Cmd represents the bmi command
var Cmd = &cobra.Command{
	Use:   "bmi",
	Short: "Body-mass index and category",
	Run:   bmiFunc,
}

func init() {
	Cmd.Flags().Float64VarP(&weight, "weight", "w", 0, "Weight in kg")
	Cmd.Flags().Float64Var(&height, "height", 0, "Height in cm")
}

func bmiFunc(cmd *cobra.Command, args []string) {
	res, err := root.Session.BMI(weight, height)
	if err != nil {
		root.Log.Fatalf("BMI calculation failed: %v", err)
	}
	root.Log.Infof("BMI: %.1f (%s)", res.Value, res.Category)
}
