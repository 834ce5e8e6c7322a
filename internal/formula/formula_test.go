package formula

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"supercalc/internal/calcerror"
)

func TestRound2(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected float64
	}{
		{"Already rounded", 50.00, 50.00},
		{"Round down", 22.857142, 22.86},
		{"Round half up", 8791.585, 8791.59},
		{"Negative value", -3.456, -3.46},
		{"Zero", 0, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.expected, Round2(tc.input), 1e-9)
		})
	}
}

func TestPercentValue(t *testing.T) {
	tests := []struct {
		name     string
		pct      float64
		base     float64
		expected float64
	}{
		{"Twenty percent of 250", 20, 250, 50},
		{"Hundred percent", 100, 42, 42},
		{"Zero percent", 0, 1000, 0},
		{"Zero base", 50, 0, 0},
		{"Negative base", 10, -200, -20},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result, err := PercentValue(tc.pct, tc.base)
			require.NoError(t, err)
			assert.InDelta(t, tc.expected, result, 1e-9)
		})
	}
}

func TestPercentOf(t *testing.T) {
	tests := []struct {
		name     string
		part     float64
		base     float64
		expected float64
		hasError bool
	}{
		{"Fifty of 250", 50, 250, 20, false},
		{"Part equals base", 42, 42, 100, false},
		{"Part above base", 300, 200, 150, false},
		{"Zero base rejected", 10, 0, 0, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result, err := PercentOf(tc.part, tc.base)
			if tc.hasError {
				assert.Error(t, err)
				var verr *calcerror.ValidationError
				assert.ErrorAs(t, err, &verr)
				return
			}
			require.NoError(t, err)
			assert.InDelta(t, tc.expected, result, 1e-9)
		})
	}
}

func TestEMI(t *testing.T) {
	tests := []struct {
		name      string
		principal float64
		rate      float64
		tenure    int
		expected  float64
		hasError  bool
	}{
		{"Standard loan", 100000, 10, 12, 8791.59, false},
		{"Zero rate is principal over tenure", 120000, 0, 24, 5000, false},
		{"Single month zero rate", 999, 0, 1, 999, false},
		{"Zero principal", 0, 10, 12, 0, false},
		{"Negative principal rejected", -1, 10, 12, 0, true},
		{"Negative rate rejected", 100000, -5, 12, 0, true},
		{"Zero tenure rejected", 100000, 10, 0, 0, true},
		{"NaN principal rejected", math.NaN(), 10, 12, 0, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result, err := EMI(tc.principal, tc.rate, tc.tenure)
			if tc.hasError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.InDelta(t, tc.expected, Round2(result), 0.01)
		})
	}
}

func TestSimpleInterest(t *testing.T) {
	tests := []struct {
		name      string
		principal float64
		rate      float64
		years     float64
		expected  float64
	}{
		{"Basic", 1000, 5, 2, 100},
		{"Fractional years", 1000, 10, 0.5, 50},
		{"Zero rate", 1000, 0, 10, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result, err := SimpleInterest(tc.principal, tc.rate, tc.years)
			require.NoError(t, err)
			assert.InDelta(t, tc.expected, result, 1e-9)
		})
	}
}

func TestCompoundInterest(t *testing.T) {
	tests := []struct {
		name      string
		principal float64
		rate      float64
		years     float64
		expected  float64
	}{
		{"One year equals simple", 1000, 5, 1, 50},
		{"Two years", 1000, 10, 2, 210},
		{"Zero rate", 1000, 0, 5, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result, err := CompoundInterest(tc.principal, tc.rate, tc.years)
			require.NoError(t, err)
			assert.InDelta(t, tc.expected, result, 1e-6)
		})
	}
}

// Compounding can never earn less than simple interest once the horizon
// exceeds one year at a positive rate.
func TestCompoundInterestDominatesSimple(t *testing.T) {
	cases := []struct {
		principal float64
		rate      float64
		years     float64
	}{
		{1000, 5, 2},
		{50000, 12, 10},
		{1, 0.5, 30},
		{250000, 7.25, 1.5},
	}

	for _, tc := range cases {
		si, err := SimpleInterest(tc.principal, tc.rate, tc.years)
		require.NoError(t, err)
		ci, err := CompoundInterest(tc.principal, tc.rate, tc.years)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, ci, si,
			"P=%v R=%v T=%v", tc.principal, tc.rate, tc.years)
	}
}

func TestDiscount(t *testing.T) {
	tests := []struct {
		name          string
		price         float64
		pct           float64
		expectedSaved float64
		expectedFinal float64
		hasError      bool
	}{
		{"Quarter off", 200, 25, 50, 150, false},
		{"No discount", 99.99, 0, 0, 99.99, false},
		{"Full discount", 80, 100, 80, 0, false},
		{"Negative price rejected", -10, 25, 0, 0, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result, err := Discount(tc.price, tc.pct)
			if tc.hasError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.InDelta(t, tc.expectedSaved, result.Saved, 1e-9)
			assert.InDelta(t, tc.expectedFinal, result.Final, 1e-9)
		})
	}
}

func TestSIP(t *testing.T) {
	tests := []struct {
		name     string
		initial  float64
		monthly  float64
		rate     float64
		years    int
		hasError bool
	}{
		{"Monthly only", 0, 5000, 12, 10, false},
		{"Initial plus monthly", 100000, 5000, 12, 10, false},
		{"Zero rate", 0, 1000, 0, 2, false},
		{"Negative monthly rejected", 0, -1, 12, 10, true},
		{"Zero years rejected", 0, 1000, 12, 0, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result, err := SIP(tc.initial, tc.monthly, tc.rate, tc.years)
			if tc.hasError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			expectedInvested := tc.initial + tc.monthly*float64(tc.years*12)
			assert.InDelta(t, expectedInvested, result.Invested, 1e-6)
			if tc.rate == 0 {
				assert.InDelta(t, result.Invested, result.Total, 1e-6)
			} else {
				assert.Greater(t, result.Total, result.Invested)
			}
		})
	}
}

func TestSIPMatchesAnnuityFormula(t *testing.T) {
	// 5000/month at 12% for 10 years, annuity-due convention.
	result, err := SIP(0, 5000, 12, 10)
	require.NoError(t, err)

	r := 0.01
	n := 120.0
	pow := math.Pow(1+r, n)
	expected := 5000 * ((pow - 1) / r) * (1 + r)
	assert.InDelta(t, expected, result.Total, 0.01)
}

func TestLumpsum(t *testing.T) {
	tests := []struct {
		name     string
		initial  float64
		rate     float64
		years    int
		expected float64
		hasError bool
	}{
		{"Doubling-ish decade", 100000, 7.2, 10, 100000 * math.Pow(1.072, 10), false},
		{"Zero rate", 5000, 0, 10, 5000, false},
		{"Zero years", 5000, 12, 0, 5000, false},
		{"Negative initial rejected", -1, 12, 10, 0, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result, err := Lumpsum(tc.initial, tc.rate, tc.years)
			if tc.hasError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.InDelta(t, tc.expected, result.Total, 1e-6)
			assert.InDelta(t, tc.initial, result.Invested, 1e-9)
		})
	}
}

func TestBMI(t *testing.T) {
	tests := []struct {
		name             string
		weight           float64
		height           float64
		expectedValue    float64
		expectedCategory string
		hasError         bool
	}{
		{"Normal range", 70, 175, 22.86, "Normal", false},
		{"Underweight", 45, 175, 14.69, "Underweight", false},
		{"Overweight", 85, 175, 27.76, "Overweight", false},
		{"Obese", 100, 175, 32.65, "Obese", false},
		{"Zero weight rejected", 0, 175, 0, "", true},
		{"Zero height rejected", 70, 0, 0, "", true},
		{"Negative height rejected", 70, -175, 0, "", true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result, err := BMI(tc.weight, tc.height)
			if tc.hasError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.InDelta(t, tc.expectedValue, Round2(result.Value), 0.01)
			assert.Equal(t, tc.expectedCategory, result.Category)
		})
	}
}

func TestBMIBandBoundaries(t *testing.T) {
	assert.Equal(t, "Underweight", bmiCategory(18.49))
	assert.Equal(t, "Normal", bmiCategory(18.5))
	assert.Equal(t, "Normal", bmiCategory(24.89))
	assert.Equal(t, "Overweight", bmiCategory(24.9))
	assert.Equal(t, "Overweight", bmiCategory(29.89))
	assert.Equal(t, "Obese", bmiCategory(29.9))
}
