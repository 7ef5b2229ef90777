// Package ratesprovider talks to the open exchange-rate API and caches its answers.
package ratesprovider

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/SscSPs/casa_ledger_app/internal/core/domain"
	portsrepo "github.com/SscSPs/casa_ledger_app/internal/core/ports/repositories"
	"github.com/SscSPs/casa_ledger_app/internal/middleware"
	"github.com/shopspring/decimal"
	"golang.org/x/time/rate"
)

// ErrProvider is wrapped by every failed lookup.
var ErrProvider = errors.New("rate provider failure")

// latestResponse mirrors GET /latest/{base}.
type latestResponse struct {
	Result             string                     `json:"result"`
	ErrorType          string                     `json:"error-type"`
	BaseCode           string                     `json:"base_code"`
	TimeLastUpdateUnix int64                      `json:"time_last_update_unix"`
	Rates              map[string]decimal.Decimal `json:"rates"`
}

// Client fetches rate tables over HTTP. Outbound calls are throttled and never retried.
type Client struct {
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
	now        func() time.Time
}

var _ portsrepo.ExchangeRateReader = (*Client)(nil)

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithHTTPClient replaces the default http.Client.
func WithHTTPClient(c *http.Client) ClientOption {
	return func(cl *Client) {
		cl.httpClient = c
	}
}

// WithRateLimit throttles outbound calls to rps with the given burst.
func WithRateLimit(rps float64, burst int) ClientOption {
	return func(cl *Client) {
		cl.limiter = rate.NewLimiter(rate.Limit(rps), burst)
	}
}

// WithClock overrides time.Now, for tests.
func WithClock(now func() time.Time) ClientOption {
	return func(cl *Client) {
		cl.now = now
	}
}

// NewClient creates a Client for baseURL, e.g. https://open.er-api.com/v6.
func NewClient(baseURL string, timeout time.Duration, opts ...ClientOption) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		limiter:    rate.NewLimiter(rate.Limit(5), 5),
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// FetchRateTable downloads the latest rates for base.
func (c *Client) FetchRateTable(ctx context.Context, base domain.CurrencyCode) (*domain.RateTable, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("%w: throttled: %v", ErrProvider, err)
	}

	url := fmt.Sprintf("%s/latest/%s", c.baseURL, base)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: building request: %v", ErrProvider, err)
	}
	req.Header.Set("Accept", "application/json")

	start := c.now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrProvider, err)
	}
	defer resp.Body.Close()

	logger.Debug("Rate provider responded",
		slog.String("base", base.String()),
		slog.Int("status", resp.StatusCode),
		slog.Duration("latency", c.now().Sub(start)))

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: unexpected status %s", ErrProvider, resp.Status)
	}

	var body latestResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("%w: decoding response: %v", ErrProvider, err)
	}
	// The result field is optional; when present anything but "success" is a failure.
	if body.Result != "" && body.Result != "success" {
		return nil, fmt.Errorf("%w: result %q (%s)", ErrProvider, body.Result, body.ErrorType)
	}
	if len(body.Rates) == 0 {
		return nil, fmt.Errorf("%w: response has no rates", ErrProvider)
	}

	table := &domain.RateTable{
		Base:      base,
		Rates:     make(map[domain.CurrencyCode]decimal.Decimal, len(body.Rates)),
		FetchedAt: c.now().UTC(),
	}
	for code, r := range body.Rates {
		table.Rates[domain.NormalizeCurrencyCode(code)] = r
	}
	return table, nil
}
