// Package calcerror defines the error types returned by the calculation engine.
package calcerror

import "fmt"

// ValidationError represents a rejected input: a bad or missing numeric value,
// an empty description, or an arithmetic degeneracy (division by zero,
// non-finite result) detected before it can reach the caller.
type ValidationError struct {
	Tool   string
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: invalid %s: %s", e.Tool, e.Field, e.Reason)
	}
	return fmt.Sprintf("%s: %s", e.Tool, e.Reason)
}

// UnknownCurrencyError represents a currency code absent from the active rate table.
type UnknownCurrencyError struct {
	Code string
}

func (e *UnknownCurrencyError) Error() string {
	return fmt.Sprintf("unknown currency code: %s", e.Code)
}

// UnitError represents an unknown unit or a conversion across incompatible dimensions.
type UnitError struct {
	Dimension string
	Unit      string
	Msg       string
}

func (e *UnitError) Error() string {
	if e.Unit != "" {
		return fmt.Sprintf("unit conversion failed: unit '%s' not in dimension '%s': %s",
			e.Unit, e.Dimension, e.Msg)
	}
	return fmt.Sprintf("unit conversion failed for dimension '%s': %s", e.Dimension, e.Msg)
}

// CategoryError represents a transaction category outside the closed vocabulary.
type CategoryError struct {
	Kind     string
	Category string
}

func (e *CategoryError) Error() string {
	return fmt.Sprintf("category '%s' is not valid for %s transactions", e.Category, e.Kind)
}

// SolverError wraps a failure of the external AI solver call.
type SolverError struct {
	Op  string
	Err error
}

func (e *SolverError) Error() string {
	return fmt.Sprintf("solver %s failed: %v", e.Op, e.Err)
}

func (e *SolverError) Unwrap() error {
	return e.Err
}
