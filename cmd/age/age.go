// Package age handles the age calculator command
package age

import (
	"time"

	"github.com/spf13/cobra"

	"supercalc/cmd/root"
)

var dob string

// Cmd represents the age command
var Cmd = &cobra.Command{
	Use:   "age",
	Short: "Calendar age from a birth date",
	Run:   ageFunc,
}

func init() {
	Cmd.Flags().StringVarP(&dob, "dob", "d", "", "Birth date (YYYY-MM-DD)")
}

func ageFunc(cmd *cobra.Command, args []string) {
	birth, err := time.Parse("2006-01-02", dob)
	if err != nil {
		root.Log.Fatalf("Invalid birth date '%s': %v", dob, err)
	}

	span, err := root.Session.Age(birth, time.Now())
	if err != nil {
		root.Log.Fatalf("Age calculation failed: %v", err)
	}
	root.Log.Infof("Age: %dy %dm %dd", span.Years, span.Months, span.Days)
}
