// Package nbkr reads the National Bank of the Kyrgyz Republic daily
// exchange-rate XML feed.
package nbkr

import (
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/text/encoding/charmap"

	"calk-kg/core/currency"
	"calk-kg/internal/errors"
	"calk-kg/internal/logging"
)

// DefaultURL is the public daily feed
const DefaultURL = "https://www.nbkr.kg/XML/daily.xml"

// Daily is one day of official rates
type Daily struct {
	Date  string                          `json:"date"`
	Rates map[currency.Code]currency.Rate `json:"rates"`
}

type document struct {
	Date       string        `xml:"Date,attr"`
	DateElem   *dateElem     `xml:"Date"`
	Currencies []xmlCurrency `xml:"Currency"`
}

type dateElem struct {
	Date string `xml:"Date,attr"`
}

type xmlCurrency struct {
	ISOCode string `xml:"ISOCode,attr"`
	Nominal string `xml:"Nominal"`
	Value   string `xml:"Value"`
	Title   string `xml:"Title"`
}

// Parse decodes the feed and keeps the given codes. Values use a decimal
// comma. A currency without a usable value is skipped; a missing nominal
// is 1 and a missing title is the code. Without a date, today is used.
func Parse(r io.Reader, codes []currency.Code, now time.Time) (*Daily, error) {
	var doc document
	dec := xml.NewDecoder(r)
	dec.CharsetReader = charsetReader
	if err := dec.Decode(&doc); err != nil {
		return nil, errors.Parsing("decode nbkr xml", err)
	}

	daily := &Daily{Date: doc.Date, Rates: make(map[currency.Code]currency.Rate)}
	if doc.DateElem != nil && doc.DateElem.Date != "" {
		daily.Date = doc.DateElem.Date
	}
	if daily.Date == "" {
		daily.Date = now.Format("2006-01-02")
	}

	wanted := make(map[string]currency.Code, len(codes))
	for _, c := range codes {
		wanted[strings.ToUpper(string(c))] = c
	}

	for _, c := range doc.Currencies {
		code, ok := wanted[strings.ToUpper(strings.TrimSpace(c.ISOCode))]
		if !ok {
			continue
		}
		if _, seen := daily.Rates[code]; seen {
			continue
		}

		value, err := decimal.NewFromString(strings.Replace(strings.TrimSpace(c.Value), ",", ".", 1))
		if err != nil {
			logging.Debug("skipping unparsable rate", zap.String("code", string(code)), zap.String("value", c.Value))
			continue
		}

		nominal := 1
		if n, err := strconv.Atoi(strings.TrimSpace(c.Nominal)); err == nil && n > 0 {
			nominal = n
		}
		name := strings.TrimSpace(c.Title)
		if name == "" {
			name = string(code)
		}

		daily.Rates[code] = currency.Rate{Code: code, Name: name, Value: value, Nominal: nominal}
	}

	return daily, nil
}

// The feed is UTF-8 but archived copies are windows-1251
func charsetReader(charset string, input io.Reader) (io.Reader, error) {
	switch strings.ToLower(charset) {
	case "windows-1251", "cp1251":
		return charmap.Windows1251.NewDecoder().Reader(input), nil
	default:
		return nil, errors.Newf(errors.TypeNotSupported, "unsupported feed charset %s", charset)
	}
}

// Source provides daily rates
type Source interface {
	// Fetch retrieves the current daily rates
	Fetch(ctx context.Context) (*Daily, error)
}

// Client fetches the feed over HTTP
type Client struct {
	url   string
	http  *http.Client
	codes []currency.Code
	now   func() time.Time
}

// NewClient creates a client for url. A nil httpClient uses a client
// with a ten second timeout.
func NewClient(url string, httpClient *http.Client) *Client {
	if url == "" {
		url = DefaultURL
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	return &Client{url: url, http: httpClient, codes: currency.Tracked, now: time.Now}
}

// URL returns the feed address
func (c *Client) URL() string {
	return c.url
}

// Fetch downloads and parses the feed
func (c *Client) Fetch(ctx context.Context) (*Daily, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, errors.Wrap(errors.TypeConfig, "build nbkr request", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, errors.Network("fetch nbkr feed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, errors.Network(fmt.Sprintf("NBRK API returned %d", resp.StatusCode), nil).
			WithContext("url", c.url)
	}

	return Parse(resp.Body, c.codes, c.now())
}
