package rates

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"supercalc/internal/calcerror"
)

type stubFetcher struct {
	rates     map[string]decimal.Decimal
	updatedAt time.Time
	err       error
	calls     int
}

func (s *stubFetcher) Fetch(ctx context.Context) (map[string]decimal.Decimal, time.Time, error) {
	s.calls++
	return s.rates, s.updatedAt, s.err
}

func TestNewStartsWithFallback(t *testing.T) {
	table := New(nil)
	assert.Equal(t, SourceFallback, table.Source())

	rate, err := table.Rate("INR")
	require.NoError(t, err)
	assert.True(t, rate.Equal(decimal.NewFromFloat(83.5)))
}

func TestRefreshInstallsLiveTable(t *testing.T) {
	updated := time.Date(2026, 8, 28, 6, 0, 0, 0, time.UTC)
	fetcher := &stubFetcher{
		rates: map[string]decimal.Decimal{
			"USD": decimal.NewFromFloat(0.99), // provider drift, must be pinned
			"INR": decimal.NewFromFloat(84.1),
			"EUR": decimal.NewFromFloat(0.93),
		},
		updatedAt: updated,
	}
	table := New(fetcher)

	source := table.Refresh(context.Background())
	assert.Equal(t, SourceLive, source)
	assert.Equal(t, SourceLive, table.Source())
	assert.Equal(t, 1, fetcher.calls)

	// The base currency is pinned to 1 regardless of the provider payload.
	rate, err := table.Rate(BaseCurrency)
	require.NoError(t, err)
	assert.True(t, rate.Equal(decimal.NewFromInt(1)))

	snap := table.Snapshot()
	assert.Equal(t, updated, snap.FetchedAt)
	assert.True(t, snap.Rates["INR"].Equal(decimal.NewFromFloat(84.1)))
}

func TestRefreshFailureInstallsFallback(t *testing.T) {
	fetcher := &stubFetcher{err: errors.New("connection refused")}
	table := New(fetcher)

	// Seed a live table first so the failure visibly downgrades it.
	fetcher.err = nil
	fetcher.rates = map[string]decimal.Decimal{"INR": decimal.NewFromFloat(84.1)}
	require.Equal(t, SourceLive, table.Refresh(context.Background()))

	fetcher.err = errors.New("connection refused")
	source := table.Refresh(context.Background())
	assert.Equal(t, SourceFallback, source)
	assert.Equal(t, SourceFallback, table.Source())

	rate, err := table.Rate("INR")
	require.NoError(t, err)
	assert.True(t, rate.Equal(decimal.NewFromFloat(83.5)))
}

func TestRefreshEmptyPayloadInstallsFallback(t *testing.T) {
	fetcher := &stubFetcher{rates: map[string]decimal.Decimal{}}
	table := New(fetcher)

	assert.Equal(t, SourceFallback, table.Refresh(context.Background()))
}

func TestRefreshWithoutFetcher(t *testing.T) {
	table := New(nil)
	assert.Equal(t, SourceFallback, table.Refresh(context.Background()))
}

func TestConvert(t *testing.T) {
	table := New(nil)

	tests := []struct {
		name     string
		amount   string
		from     string
		to       string
		expected string
		hasError bool
	}{
		{"USD to INR", "100", "USD", "INR", "8350", false},
		{"INR to USD", "8350", "INR", "USD", "100", false},
		{"Cross rate EUR to GBP", "92", "EUR", "GBP", "79", false},
		{"Identity", "42.42", "CHF", "CHF", "42.42", false},
		{"Zero amount", "0", "USD", "JPY", "0", false},
		{"Unknown source code", "100", "XXX", "USD", "", true},
		{"Unknown target code", "100", "USD", "XXX", "", true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result, err := table.Convert(decimal.RequireFromString(tc.amount), tc.from, tc.to)
			if tc.hasError {
				assert.Error(t, err)
				var uerr *calcerror.UnknownCurrencyError
				assert.ErrorAs(t, err, &uerr)
				return
			}
			require.NoError(t, err)
			expected := decimal.RequireFromString(tc.expected)
			assert.True(t, expected.Equal(result.Round(6)),
				"expected %s, got %s", expected, result)
		})
	}
}

func TestConvertRoundTrip(t *testing.T) {
	table := New(nil)
	amount := decimal.RequireFromString("123.45")

	forward, err := table.Convert(amount, "USD", "JPY")
	require.NoError(t, err)
	back, err := table.Convert(forward, "JPY", "USD")
	require.NoError(t, err)
	assert.True(t, amount.Equal(back.Round(2)), "got %s", back)
}

func TestSnapshotReturnsCopy(t *testing.T) {
	table := New(nil)
	snap := table.Snapshot()
	snap.Rates["INR"] = decimal.NewFromInt(1)

	rate, err := table.Rate("INR")
	require.NoError(t, err)
	assert.True(t, rate.Equal(decimal.NewFromFloat(83.5)))
}
