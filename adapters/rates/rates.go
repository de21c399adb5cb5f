// Package rates is the client side of the currency-rate endpoint. Fetch
// never fails: it resolves to the served rates or to the built-in table.
package rates

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"calk-kg/core/currency"
	"calk-kg/internal/config"
	"calk-kg/internal/errors"
	"calk-kg/internal/logging"
)

// WireRate is one currency as the endpoint serves it
type WireRate struct {
	Code    currency.Code `json:"code"`
	Name    string        `json:"name"`
	Rate    float64       `json:"rate"`
	Nominal int           `json:"nominal"`
}

// Response is the endpoint body. Cached and CacheAge are set when the
// proxy answered from its cache; Fallback and Error when it could not
// reach the National Bank.
type Response struct {
	Date      string                     `json:"date"`
	Rates     map[currency.Code]WireRate `json:"rates"`
	Timestamp string                     `json:"timestamp"`
	Cached    bool                       `json:"cached,omitempty"`
	CacheAge  string                     `json:"cacheAge,omitempty"`
	Fallback  bool                       `json:"fallback,omitempty"`
	Error     string                     `json:"error,omitempty"`
}

// NewResponse builds a body from rates
func NewResponse(date string, rates map[currency.Code]currency.Rate, now time.Time) *Response {
	resp := &Response{
		Date:      date,
		Rates:     make(map[currency.Code]WireRate, len(rates)),
		Timestamp: now.UTC().Format(time.RFC3339Nano),
	}
	for code, r := range rates {
		f, _ := r.Value.Float64()
		nominal := r.Nominal
		if nominal <= 0 {
			nominal = 1
		}
		resp.Rates[code] = WireRate{Code: code, Name: r.Name, Rate: f, Nominal: nominal}
	}
	return resp
}

// CurrencyRates converts the served rates back to domain rates
func (r *Response) CurrencyRates() map[currency.Code]currency.Rate {
	out := make(map[currency.Code]currency.Rate, len(r.Rates))
	for code, w := range r.Rates {
		if w.Rate <= 0 {
			continue
		}
		out[code] = currency.Rate{
			Code:    code,
			Name:    w.Name,
			Value:   decimal.NewFromFloat(w.Rate),
			Nominal: w.Nominal,
		}
	}
	return out
}

// Client fetches rates from the endpoint
type Client struct {
	url  string
	http *http.Client
	now  func() time.Time
}

// NewClient creates a client for url with the given timeout
func NewClient(url string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		url:  url,
		http: &http.Client{Timeout: timeout},
		now:  time.Now,
	}
}

// NewFromConfig picks the endpoint for the configured environment
func NewFromConfig(cfg *config.Config) *Client {
	return NewClient(cfg.RatesURL(), cfg.RatesTimeout())
}

// WithClock replaces the time source
func (c *Client) WithClock(now func() time.Time) *Client {
	c.now = now
	return c
}

// URL returns the endpoint address
func (c *Client) URL() string {
	return c.url
}

// Fetch returns Fetched with the served rates merged over the defaults,
// or Fallback with the reason the endpoint could not be used.
func (c *Client) Fetch(ctx context.Context) currency.Outcome {
	resp, err := c.get(ctx)
	if err != nil {
		return c.fallback(err)
	}

	if resp.Fallback {
		logging.Warn("rate endpoint served fallback rates",
			zap.String("url", c.url),
			zap.String("error", resp.Error))
	}

	snap := currency.Merge(currency.DefaultSnapshot(c.now()), resp.CurrencyRates(), resp.Date, currency.SourceFetched)
	return currency.Fetched{Snap: snap, Degraded: resp.Fallback}
}

func (c *Client) get(ctx context.Context) (*Response, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, errors.Wrap(errors.TypeConfig, "build rates request", err)
	}
	req.Header.Set("Accept", "application/json")

	httpResp, err := c.http.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, errors.Network("fetch rates", err)
	}
	defer httpResp.Body.Close()

	if httpResp.StatusCode < 200 || httpResp.StatusCode > 299 {
		return nil, errors.Network(fmt.Sprintf("rates endpoint returned %d", httpResp.StatusCode), nil)
	}

	var body Response
	if err := json.NewDecoder(httpResp.Body).Decode(&body); err != nil {
		return nil, errors.Parsing("decode rates response", err)
	}
	return &body, nil
}

func (c *Client) fallback(reason error) currency.Outcome {
	logging.Warn("using fallback currency rates",
		zap.Error(reason),
		zap.String("url", c.url))
	return currency.Fallback{Snap: currency.DefaultSnapshot(c.now()), Reason: reason}
}
