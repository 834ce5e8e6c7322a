// Package formula provides the stateless numeric functions of the calculator
// suite: percentage algebra, loan amortization, interest, investment growth,
// discount and BMI. Every function is pure and total over its documented
// domain; degenerate inputs yield a calcerror.ValidationError instead of a
// NaN or Infinity leaking to the caller.
//
// Results keep full float64 precision internally. Rounding to the 2-decimal
// display precision happens only at the boundary, via Round2.
package formula

import (
	"math"

	"github.com/shopspring/decimal"

	"supercalc/internal/calcerror"
)

// Round2 rounds a value to the fixed 2-decimal display precision.
// Chained calculations should round only once, at the boundary.
func Round2(x float64) float64 {
	f, _ := decimal.NewFromFloat(x).Round(2).Float64()
	return f
}

// PercentValue computes pct percent of base: (pct/100) * base.
func PercentValue(pct, base float64) (float64, error) {
	if err := checkFinite("percentage", "input", pct, base); err != nil {
		return 0, err
	}
	return pct / 100 * base, nil
}

// PercentOf computes which percentage part is of base: (part/base) * 100.
// A zero base is a division by zero and is rejected.
func PercentOf(part, base float64) (float64, error) {
	if err := checkFinite("percentage", "input", part, base); err != nil {
		return 0, err
	}
	if base == 0 {
		return 0, &calcerror.ValidationError{Tool: "percentage", Field: "base", Reason: "must not be zero"}
	}
	return part / base * 100, nil
}

// EMI computes the equated monthly installment for a loan.
// The monthly rate is annualRate/12/100. A zero rate degenerates the standard
// formula into 0/0, so it falls back to straight principal/tenure.
func EMI(principal, annualRate float64, tenureMonths int) (float64, error) {
	switch {
	case principal < 0:
		return 0, &calcerror.ValidationError{Tool: "emi", Field: "principal", Reason: "must not be negative"}
	case annualRate < 0:
		return 0, &calcerror.ValidationError{Tool: "emi", Field: "rate", Reason: "must not be negative"}
	case tenureMonths <= 0:
		return 0, &calcerror.ValidationError{Tool: "emi", Field: "tenure", Reason: "must be positive"}
	}
	if err := checkFinite("emi", "input", principal, annualRate); err != nil {
		return 0, err
	}

	r := annualRate / 12 / 100
	if r == 0 {
		return principal / float64(tenureMonths), nil
	}

	pow := math.Pow(1+r, float64(tenureMonths))
	emi := principal * r * pow / (pow - 1)
	if err := checkFinite("emi", "result", emi); err != nil {
		return 0, err
	}
	return emi, nil
}

// SimpleInterest computes P*R*T/100. Negative rate or time is accepted as-is,
// modeling a discount.
func SimpleInterest(principal, rate, years float64) (float64, error) {
	if err := checkFinite("interest", "input", principal, rate, years); err != nil {
		return 0, err
	}
	return principal * rate * years / 100, nil
}

// CompoundInterest computes P*(1+R/100)^T - P with annual compounding.
func CompoundInterest(principal, rate, years float64) (float64, error) {
	if err := checkFinite("interest", "input", principal, rate, years); err != nil {
		return 0, err
	}
	ci := principal*math.Pow(1+rate/100, years) - principal
	if err := checkFinite("interest", "result", ci); err != nil {
		return 0, err
	}
	return ci, nil
}

// DiscountResult holds the outcome of a discount calculation.
type DiscountResult struct {
	Saved float64
	Final float64
}

// Discount computes the amount saved and the final price after applying
// pct percent off.
func Discount(price, pct float64) (DiscountResult, error) {
	if price < 0 {
		return DiscountResult{}, &calcerror.ValidationError{Tool: "discount", Field: "price", Reason: "must not be negative"}
	}
	if err := checkFinite("discount", "input", price, pct); err != nil {
		return DiscountResult{}, err
	}
	saved := price * pct / 100
	return DiscountResult{Saved: saved, Final: price - saved}, nil
}

// InvestmentResult holds the invested principal and the projected total value.
type InvestmentResult struct {
	Invested float64
	Total    float64
}

// SIP projects a systematic investment plan: an optional initial amount plus a
// fixed monthly contribution, both compounding at annualRate over the given
// number of years. A zero rate uses the linear annuity monthly*n to avoid the
// 0/0 in the geometric-series formula.
func SIP(initial, monthly, annualRate float64, years int) (InvestmentResult, error) {
	switch {
	case initial < 0:
		return InvestmentResult{}, &calcerror.ValidationError{Tool: "investment", Field: "initial", Reason: "must not be negative"}
	case monthly < 0:
		return InvestmentResult{}, &calcerror.ValidationError{Tool: "investment", Field: "monthly", Reason: "must not be negative"}
	case years <= 0:
		return InvestmentResult{}, &calcerror.ValidationError{Tool: "investment", Field: "years", Reason: "must be positive"}
	}
	if err := checkFinite("investment", "input", initial, monthly, annualRate); err != nil {
		return InvestmentResult{}, err
	}

	n := float64(years * 12)
	r := annualRate / 100 / 12
	invested := initial + monthly*n

	if r == 0 {
		return InvestmentResult{Invested: invested, Total: invested}, nil
	}

	pow := math.Pow(1+r, n)
	fvInitial := initial * pow
	fvSeries := monthly * ((pow - 1) / r) * (1 + r)
	total := fvInitial + fvSeries
	if err := checkFinite("investment", "result", total); err != nil {
		return InvestmentResult{}, err
	}
	return InvestmentResult{Invested: invested, Total: total}, nil
}

// Lumpsum projects a single upfront investment with annual compounding:
// initial * (1 + rate/100)^years.
func Lumpsum(initial, annualRate float64, years int) (InvestmentResult, error) {
	if initial < 0 {
		return InvestmentResult{}, &calcerror.ValidationError{Tool: "investment", Field: "initial", Reason: "must not be negative"}
	}
	if err := checkFinite("investment", "input", initial, annualRate); err != nil {
		return InvestmentResult{}, err
	}
	total := initial * math.Pow(1+annualRate/100, float64(years))
	if err := checkFinite("investment", "result", total); err != nil {
		return InvestmentResult{}, err
	}
	return InvestmentResult{Invested: initial, Total: total}, nil
}

// BMIResult holds the body-mass index value and its category label.
type BMIResult struct {
	Value    float64
	Category string
}

// BMI computes weight(kg) / height(m)^2 and classifies the result.
// Bands: <18.5 Underweight, <24.9 Normal, <29.9 Overweight, otherwise Obese.
func BMI(weightKg, heightCm float64) (BMIResult, error) {
	if weightKg <= 0 {
		return BMIResult{}, &calcerror.ValidationError{Tool: "bmi", Field: "weight", Reason: "must be positive"}
	}
	if heightCm <= 0 {
		return BMIResult{}, &calcerror.ValidationError{Tool: "bmi", Field: "height", Reason: "must be positive"}
	}
	if err := checkFinite("bmi", "input", weightKg, heightCm); err != nil {
		return BMIResult{}, err
	}

	h := heightCm / 100
	v := weightKg / (h * h)
	return BMIResult{Value: v, Category: bmiCategory(v)}, nil
}

func bmiCategory(v float64) string {
	switch {
	case v < 18.5:
		return "Underweight"
	case v < 24.9:
		return "Normal"
	case v < 29.9:
		return "Overweight"
	default:
		return "Obese"
	}
}

// checkFinite converts a NaN or Infinity among the values into a
// ValidationError so arithmetic degeneracy never propagates.
func checkFinite(tool, field string, values ...float64) error {
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return &calcerror.ValidationError{Tool: tool, Field: field, Reason: "value is not finite"}
		}
	}
	return nil
}
