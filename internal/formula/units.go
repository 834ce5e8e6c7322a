package formula

import (
	"supercalc/internal/calcerror"
)

// Dimension identifies one family of mutually convertible units.
type Dimension string

const (
	DimLength      Dimension = "length"
	DimWeight      Dimension = "weight"
	DimTemperature Dimension = "temperature"
)

// Factor tables map each unit to its value in the dimension's base unit
// (meters for length, kilograms for weight). Conversion multiplies by the
// from-factor and divides by the to-factor.
var (
	lengthFactors = map[string]float64{
		"m":    1,
		"km":   1000,
		"cm":   0.01,
		"ft":   0.3048,
		"inch": 0.0254,
	}
	weightFactors = map[string]float64{
		"kg": 1,
		"g":  0.001,
		"lb": 0.453592,
		"oz": 0.0283495,
	}
)

// Units returns the unit names available within a dimension.
func Units(dim Dimension) []string {
	switch dim {
	case DimLength:
		return keys(lengthFactors)
	case DimWeight:
		return keys(weightFactors)
	case DimTemperature:
		return []string{"C", "F"}
	default:
		return nil
	}
}

// ConvertUnit converts a value between two units of the same dimension.
// Length and weight go through the shared base unit; temperature uses the
// closed-form Celsius/Fahrenheit formulas and identity otherwise. A unit
// outside the dimension is a caller error.
func ConvertUnit(value float64, dim Dimension, from, to string) (float64, error) {
	if err := checkFinite("units", "value", value); err != nil {
		return 0, err
	}

	switch dim {
	case DimTemperature:
		return convertTemperature(value, from, to)
	case DimLength:
		return convertByFactor(value, lengthFactors, dim, from, to)
	case DimWeight:
		return convertByFactor(value, weightFactors, dim, from, to)
	default:
		return 0, &calcerror.UnitError{Dimension: string(dim), Msg: "unknown dimension"}
	}
}

func convertByFactor(value float64, factors map[string]float64, dim Dimension, from, to string) (float64, error) {
	fromFactor, ok := factors[from]
	if !ok {
		return 0, &calcerror.UnitError{Dimension: string(dim), Unit: from, Msg: "unknown source unit"}
	}
	toFactor, ok := factors[to]
	if !ok {
		return 0, &calcerror.UnitError{Dimension: string(dim), Unit: to, Msg: "unknown target unit"}
	}
	return value * fromFactor / toFactor, nil
}

func convertTemperature(value float64, from, to string) (float64, error) {
	if !validTemperatureUnit(from) {
		return 0, &calcerror.UnitError{Dimension: string(DimTemperature), Unit: from, Msg: "unknown source unit"}
	}
	if !validTemperatureUnit(to) {
		return 0, &calcerror.UnitError{Dimension: string(DimTemperature), Unit: to, Msg: "unknown target unit"}
	}
	switch {
	case from == "C" && to == "F":
		return value*9/5 + 32, nil
	case from == "F" && to == "C":
		return (value - 32) * 5 / 9, nil
	default:
		return value, nil
	}
}

func validTemperatureUnit(u string) bool {
	return u == "C" || u == "F"
}

func keys(m map[string]float64) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}
