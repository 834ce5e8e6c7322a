package calcerror

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorMessages(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			"Validation with field",
			&ValidationError{Tool: "emi", Field: "principal", Reason: "must not be negative"},
			"emi: invalid principal: must not be negative",
		},
		{
			"Validation without field",
			&ValidationError{Tool: "percentage", Reason: "value is not finite"},
			"percentage: value is not finite",
		},
		{
			"Unknown currency",
			&UnknownCurrencyError{Code: "XXX"},
			"unknown currency code: XXX",
		},
		{
			"Unit outside dimension",
			&UnitError{Dimension: "length", Unit: "furlong", Msg: "unknown source unit"},
			"unit conversion failed: unit 'furlong' not in dimension 'length': unknown source unit",
		},
		{
			"Unknown dimension",
			&UnitError{Dimension: "volume", Msg: "unknown dimension"},
			"unit conversion failed for dimension 'volume': unknown dimension",
		},
		{
			"Category outside vocabulary",
			&CategoryError{Kind: "expense", Category: "Salary"},
			"category 'Salary' is not valid for expense transactions",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.err.Error())
		})
	}
}

func TestSolverErrorUnwrap(t *testing.T) {
	cause := errors.New("quota exceeded")
	err := &SolverError{Op: "generate", Err: cause}

	assert.Equal(t, "solver generate failed: quota exceeded", err.Error())
	assert.ErrorIs(t, err, cause)
}
