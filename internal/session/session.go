// Package session orchestrates the calculator suite: each operation computes
// through the formula library, the ledger or the rate table, and on success
// appends exactly one history entry. A validation failure writes no entry and
// leaves all state untouched.
package session

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"supercalc/internal/formula"
	"supercalc/internal/history"
	"supercalc/internal/ledger"
	"supercalc/internal/models"
	"supercalc/internal/rates"
	"supercalc/internal/solver"
)

var log = logrus.New()

// SetLogger sets a custom logger for this package
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// History tool labels, one per calculator.
const (
	ToolPercentage = "Percentage"
	ToolEMI        = "EMI Loan"
	ToolDiscount   = "Discount"
	ToolInterest   = "Interest"
	ToolInvestment = "Investment"
	ToolBMI        = "BMI"
	ToolAge        = "Age Calc"
	ToolUnits      = "Unit Convert"
	ToolCurrency   = "Currency"
	ToolBudget     = "Budget"
	ToolAIMath     = "AI Math"
)

// PercentageMode selects between the two percentage questions.
type PercentageMode string

const (
	FindValue   PercentageMode = "findValue"
	FindPercent PercentageMode = "findPercent"
)

// InterestKind selects simple or compound interest.
type InterestKind string

const (
	Simple   InterestKind = "simple"
	Compound InterestKind = "compound"
)

// InvestmentMode selects between SIP and lumpsum projection.
type InvestmentMode string

const (
	ModeSIP     InvestmentMode = "sip"
	ModeLumpsum InvestmentMode = "lumpsum"
)

// Session owns the single ledger, history log and rate table, and binds each
// calculation to its history entry.
type Session struct {
	Ledger  *ledger.Ledger
	History *history.Log
	Rates   *rates.RateTable
	Solver  solver.Client
}

// New creates a session with an empty ledger and history and a rate table
// backed by the given fetcher (nil keeps the fallback table).
func New(fetcher rates.Fetcher, solverClient solver.Client) *Session {
	return &Session{
		Ledger:  ledger.New(),
		History: history.New(),
		Rates:   rates.New(fetcher),
		Solver:  solverClient,
	}
}

// Percentage answers one of the two percentage questions and logs it.
func (s *Session) Percentage(mode PercentageMode, v1, v2 float64) (float64, error) {
	var (
		res  float64
		err  error
		expr string
	)
	switch mode {
	case FindPercent:
		res, err = formula.PercentOf(v1, v2)
		expr = fmt.Sprintf("%s is what %% of %s", num(v1), num(v2))
	default:
		res, err = formula.PercentValue(v1, v2)
		expr = fmt.Sprintf("%s%% of %s", num(v1), num(v2))
	}
	if err != nil {
		return 0, err
	}

	result := fmt.Sprintf("%.2f", formula.Round2(res))
	if mode == FindPercent {
		result += "%"
	}
	s.History.Append(ToolPercentage, expr, result)
	return res, nil
}

// EMI computes the monthly loan installment and logs it.
func (s *Session) EMI(principal, annualRate float64, tenureMonths int) (float64, error) {
	emi, err := formula.EMI(principal, annualRate, tenureMonths)
	if err != nil {
		return 0, err
	}
	s.History.Append(ToolEMI,
		fmt.Sprintf("%s @ %s%% for %dm", num(principal), num(annualRate), tenureMonths),
		fmt.Sprintf("%.2f", formula.Round2(emi)))
	return emi, nil
}

// Discount computes the post-discount price and logs it.
func (s *Session) Discount(price, pct float64) (formula.DiscountResult, error) {
	res, err := formula.Discount(price, pct)
	if err != nil {
		return formula.DiscountResult{}, err
	}
	s.History.Append(ToolDiscount,
		fmt.Sprintf("%s%% off on %s", num(pct), num(price)),
		fmt.Sprintf("%.2f", formula.Round2(res.Final)))
	return res, nil
}

// Interest computes simple or compound interest and logs it.
func (s *Session) Interest(kind InterestKind, principal, rate, years float64) (float64, error) {
	var (
		res   float64
		err   error
		label string
	)
	switch kind {
	case Compound:
		res, err = formula.CompoundInterest(principal, rate, years)
		label = "Compound"
	default:
		res, err = formula.SimpleInterest(principal, rate, years)
		label = "Simple"
	}
	if err != nil {
		return 0, err
	}
	s.History.Append(ToolInterest,
		fmt.Sprintf("%s Interest on %s", label, num(principal)),
		fmt.Sprintf("%.2f", formula.Round2(res)))
	return res, nil
}

// Investment projects SIP or lumpsum growth and logs it.
func (s *Session) Investment(mode InvestmentMode, initial, monthly, annualRate float64, years int) (formula.InvestmentResult, error) {
	var (
		res   formula.InvestmentResult
		err   error
		label string
	)
	switch mode {
	case ModeLumpsum:
		res, err = formula.Lumpsum(initial, annualRate, years)
		label = "Lumpsum"
	default:
		res, err = formula.SIP(initial, monthly, annualRate, years)
		label = "SIP"
	}
	if err != nil {
		return formula.InvestmentResult{}, err
	}
	s.History.Append(ToolInvestment,
		fmt.Sprintf("%s %dy @ %s%%", label, years, num(annualRate)),
		fmt.Sprintf("%.0f", res.Total))
	return res, nil
}

// BMI computes the body-mass index and logs it.
func (s *Session) BMI(weightKg, heightCm float64) (formula.BMIResult, error) {
	res, err := formula.BMI(weightKg, heightCm)
	if err != nil {
		return formula.BMIResult{}, err
	}
	s.History.Append(ToolBMI,
		fmt.Sprintf("%skg, %scm", num(weightKg), num(heightCm)),
		fmt.Sprintf("BMI: %.1f", res.Value))
	return res, nil
}

// Age computes the calendar age from a birth date up to now and logs it.
func (s *Session) Age(birth, now time.Time) (formula.AgeSpan, error) {
	span, err := formula.AgeBetween(birth, now)
	if err != nil {
		return formula.AgeSpan{}, err
	}
	s.History.Append(ToolAge,
		fmt.Sprintf("Born: %s", birth.Format("2006-01-02")),
		fmt.Sprintf("%dy %dm %dd", span.Years, span.Months, span.Days))
	return span, nil
}

// ConvertUnits converts within one dimension and logs it.
func (s *Session) ConvertUnits(value float64, dim formula.Dimension, from, to string) (float64, error) {
	res, err := formula.ConvertUnit(value, dim, from, to)
	if err != nil {
		return 0, err
	}
	s.History.Append(ToolUnits,
		fmt.Sprintf("%s %s to %s", num(value), from, to),
		fmt.Sprintf("%.4f", res))
	return res, nil
}

// ConvertCurrency converts through the active rate table and logs it.
func (s *Session) ConvertCurrency(amount decimal.Decimal, from, to string) (decimal.Decimal, error) {
	res, err := s.Rates.Convert(amount, from, to)
	if err != nil {
		return decimal.Zero, err
	}
	s.History.Append(ToolCurrency,
		fmt.Sprintf("%s %s to %s", amount.String(), from, to),
		fmt.Sprintf("%s %s", res.StringFixed(2), to))
	return res, nil
}

// RefreshRates replaces the rate table from the external source. This is the
// one fire-and-await operation of the session; conversions keep serving the
// previous table while it runs.
func (s *Session) RefreshRates(ctx context.Context) rates.Source {
	return s.Rates.Refresh(ctx)
}

// AddTransaction adds a ledger transaction and logs the new balance. A
// rejected add writes no history entry.
func (s *Session) AddTransaction(description string, amount decimal.Decimal, kind models.TransactionKind, category string) (models.Transaction, models.LedgerSummary, error) {
	tx, summary, err := s.Ledger.Add(description, amount, kind, category)
	if err != nil {
		return models.Transaction{}, models.LedgerSummary{}, err
	}

	sign := "+"
	if kind == models.KindExpense {
		sign = "-"
	}
	s.History.Append(ToolBudget,
		fmt.Sprintf("%s %s (%s)", sign, amount.String(), category),
		fmt.Sprintf("Bal: %s", summary.Balance.StringFixed(2)))
	return tx, summary, nil
}

// RemoveTransaction removes a ledger transaction by id. A removal that
// actually deleted something logs the new balance; a no-op logs nothing.
func (s *Session) RemoveTransaction(id int64) (models.LedgerSummary, bool) {
	summary, removed := s.Ledger.Remove(id)
	if removed {
		s.History.Append(ToolBudget,
			fmt.Sprintf("removed #%d", id),
			fmt.Sprintf("Bal: %s", summary.Balance.StringFixed(2)))
	}
	return summary, removed
}

// Solve sends the prompt to the AI solver. A successful solve appends a
// "Solved" marker only; the response content never enters the history, and a
// failure appends nothing.
func (s *Session) Solve(ctx context.Context, prompt solver.Prompt) (string, bool) {
	text, ok := solver.Solve(ctx, s.Solver, prompt)
	if !ok {
		return text, false
	}

	expr := prompt.Text
	if expr == "" {
		if prompt.Image != nil {
			expr = "Image Analysis"
		} else {
			expr = "Question"
		}
	}
	s.History.Append(ToolAIMath, expr, "Solved")
	return text, true
}

// num renders an input value compactly, without trailing zeros.
func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
