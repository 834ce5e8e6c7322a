// Package rates holds the currency rate table consumed by the currency
// converter. The table is replaced wholesale on every refresh attempt: a
// successful fetch installs the live snapshot, a failed one installs the
// static fallback table. Reads always see the last fully installed table.
package rates

import (
	"context"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"supercalc/internal/calcerror"
)

var log = logrus.New()

// SetLogger sets a custom logger for this package
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// BaseCurrency is the fixed base against which all multipliers are expressed.
// Its own rate is always 1.
const BaseCurrency = "USD"

// Source indicates where the active table came from.
type Source string

const (
	SourceLive     Source = "live"
	SourceFallback Source = "fallback"
)

// Table is one immutable snapshot of currency multipliers.
type Table struct {
	Rates     map[string]decimal.Decimal
	Source    Source
	FetchedAt time.Time
}

// Fetcher is the external rate-source collaborator. Implementations perform
// the network call and return the code-to-multiplier mapping plus the
// provider's last-updated timestamp.
type Fetcher interface {
	Fetch(ctx context.Context) (map[string]decimal.Decimal, time.Time, error)
}

// FallbackTable returns the static hardcoded rate mapping used when the live
// source is unavailable.
func FallbackTable() map[string]decimal.Decimal {
	return map[string]decimal.Decimal{
		"USD": decimal.NewFromInt(1),
		"INR": decimal.NewFromFloat(83.5),
		"EUR": decimal.NewFromFloat(0.92),
		"GBP": decimal.NewFromFloat(0.79),
		"JPY": decimal.NewFromFloat(150.2),
		"AUD": decimal.NewFromFloat(1.52),
		"CAD": decimal.NewFromFloat(1.35),
		"CHF": decimal.NewFromFloat(0.91),
		"CNY": decimal.NewFromFloat(7.23),
		"SGD": decimal.NewFromFloat(1.35),
		"NZD": decimal.NewFromFloat(1.63),
	}
}

// RateTable serves currency conversions from the last installed snapshot.
// Refresh swaps the whole table under a write lock; conversions take a read
// lock, so an in-flight refresh never blocks them and no partial table is
// ever visible.
type RateTable struct {
	mu      sync.RWMutex
	current Table
	fetcher Fetcher
}

// New creates a RateTable pre-loaded with the fallback snapshot so
// conversions work before the first refresh completes.
func New(fetcher Fetcher) *RateTable {
	return &RateTable{
		fetcher: fetcher,
		current: Table{Rates: FallbackTable(), Source: SourceFallback},
	}
}

// Refresh replaces the whole table from the external source. On failure it
// installs the fallback table and reports the source as fallback; the caller
// sees a status, never an error, because a missing live feed is recoverable.
// Refresh is idempotent and safely retryable.
func (r *RateTable) Refresh(ctx context.Context) Source {
	if r.fetcher == nil {
		r.install(Table{Rates: FallbackTable(), Source: SourceFallback})
		return SourceFallback
	}

	fetched, updatedAt, err := r.fetcher.Fetch(ctx)
	if err != nil || len(fetched) == 0 {
		log.WithError(err).Warn("Rate fetch failed, installing fallback table")
		r.install(Table{Rates: FallbackTable(), Source: SourceFallback})
		return SourceFallback
	}

	// The base currency's own multiplier is pinned to 1 regardless of what
	// the provider returned.
	fetched[BaseCurrency] = decimal.NewFromInt(1)
	r.install(Table{Rates: fetched, Source: SourceLive, FetchedAt: updatedAt})
	log.WithFields(logrus.Fields{
		"currencies": len(fetched),
		"updated_at": updatedAt,
	}).Debug("Installed live rate table")
	return SourceLive
}

func (r *RateTable) install(t Table) {
	r.mu.Lock()
	r.current = t
	r.mu.Unlock()
}

// Snapshot returns the active table metadata and a copy of the rates.
func (r *RateTable) Snapshot() Table {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := Table{Source: r.current.Source, FetchedAt: r.current.FetchedAt}
	out.Rates = make(map[string]decimal.Decimal, len(r.current.Rates))
	for k, v := range r.current.Rates {
		out.Rates[k] = v
	}
	return out
}

// Source reports whether the active table is live or fallback data.
func (r *RateTable) Source() Source {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.current.Source
}

// Rate returns the multiplier for a currency code against the base currency.
func (r *RateTable) Rate(code string) (decimal.Decimal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rate, ok := r.current.Rates[code]
	if !ok {
		return decimal.Zero, &calcerror.UnknownCurrencyError{Code: code}
	}
	return rate, nil
}

// Convert converts an amount between two currency codes present in the
// active table: amount / rate[from] * rate[to]. An unknown code is an error,
// never silently defaulted.
func (r *RateTable) Convert(amount decimal.Decimal, from, to string) (decimal.Decimal, error) {
	fromRate, err := r.Rate(from)
	if err != nil {
		return decimal.Zero, err
	}
	toRate, err := r.Rate(to)
	if err != nil {
		return decimal.Zero, err
	}
	if fromRate.IsZero() {
		return decimal.Zero, &calcerror.ValidationError{Tool: "currency", Field: "rate", Reason: "zero rate for " + from}
	}
	return amount.Div(fromRate).Mul(toRate), nil
}
