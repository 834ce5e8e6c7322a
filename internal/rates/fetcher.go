package rates

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/shopspring/decimal"
)

// DefaultEndpoint is the public exchange-rate API serving the base-USD table.
const DefaultEndpoint = "https://api.exchangerate-api.com/v4/latest/USD"

// HTTPFetcher fetches the live rate table over HTTP. The expected response
// shape is {"rates": {code: multiplier, ...}, "time_last_updated": unixSeconds}.
type HTTPFetcher struct {
	Endpoint string
	Client   *http.Client
}

// NewHTTPFetcher creates a fetcher against the given endpoint. An empty
// endpoint selects DefaultEndpoint; a nil client gets a sane timeout.
func NewHTTPFetcher(endpoint string, client *http.Client) *HTTPFetcher {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	return &HTTPFetcher{Endpoint: endpoint, Client: client}
}

type ratesResponse struct {
	Rates           map[string]decimal.Decimal `json:"rates"`
	TimeLastUpdated int64                      `json:"time_last_updated"`
}

// Fetch performs the GET and decodes the response. Any non-2xx status or
// malformed body is an error; the caller decides the fallback policy.
func (f *HTTPFetcher) Fetch(ctx context.Context) (map[string]decimal.Decimal, time.Time, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.Endpoint, nil)
	if err != nil {
		return nil, time.Time{}, fmt.Errorf("building rates request: %w", err)
	}

	resp, err := f.Client.Do(req)
	if err != nil {
		return nil, time.Time{}, fmt.Errorf("fetching rates: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, time.Time{}, fmt.Errorf("rates endpoint returned status %d", resp.StatusCode)
	}

	var body ratesResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, time.Time{}, fmt.Errorf("decoding rates response: %w", err)
	}
	if len(body.Rates) == 0 {
		return nil, time.Time{}, fmt.Errorf("rates response contained no rates")
	}

	return body.Rates, time.Unix(body.TimeLastUpdated, 0).UTC(), nil
}
