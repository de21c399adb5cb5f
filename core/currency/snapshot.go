// Package currency provides immutable exchange-rate snapshots and
// conversion through the som.
package currency

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Code is an ISO 4217 currency code
type Code string

const (
	KGS Code = "KGS" // base currency
	USD Code = "USD"
	EUR Code = "EUR"
	RUB Code = "RUB"
	KZT Code = "KZT"
	CNY Code = "CNY"
)

// Base is the pivot currency all rates are quoted in
const Base = KGS

// Tracked lists the currencies quoted by the National Bank feed we use
var Tracked = []Code{USD, EUR, RUB, KZT, CNY}

// Rate is the som price of Nominal units of Code
type Rate struct {
	Code    Code            `json:"code"`
	Name    string          `json:"name"`
	NameKy  string          `json:"name_ky,omitempty"`
	Value   decimal.Decimal `json:"rate"`
	Nominal int             `json:"nominal"`
}

// PerUnit returns the som price of a single unit
func (r Rate) PerUnit() decimal.Decimal {
	if r.Nominal <= 1 {
		return r.Value
	}
	return r.Value.Div(decimal.NewFromInt(int64(r.Nominal)))
}

// Source indicates where a snapshot came from
type Source int

const (
	SourceFetched  Source = iota // From the rate endpoint
	SourceFallback               // Built-in table
)

// String returns the source name
func (s Source) String() string {
	switch s {
	case SourceFetched:
		return "fetched"
	case SourceFallback:
		return "fallback"
	default:
		return "unknown"
	}
}

// Snapshot is IMMUTABLE after creation. A refresh replaces it wholesale.
type Snapshot struct {
	id     string
	date   string
	source Source
	rates  map[Code]Rate
}

// NewSnapshot copies rates into a new snapshot
func NewSnapshot(date string, source Source, rates map[Code]Rate) *Snapshot {
	cp := make(map[Code]Rate, len(rates))
	for code, r := range rates {
		if r.Nominal <= 0 {
			r.Nominal = 1
		}
		r.Code = code
		cp[code] = r
	}
	return &Snapshot{
		id:     uuid.NewString(),
		date:   date,
		source: source,
		rates:  cp,
	}
}

// ID identifies the snapshot
func (s *Snapshot) ID() string { return s.id }

// Date is the quotation date reported by the source
func (s *Snapshot) Date() string { return s.date }

// Source reports whether the rates were fetched or defaulted
func (s *Snapshot) Source() Source { return s.source }

// Rate returns the rate for code
func (s *Snapshot) Rate(code Code) (Rate, bool) {
	r, ok := s.rates[code]
	return r, ok
}

// Rates returns a copy of all rates
func (s *Snapshot) Rates() map[Code]Rate {
	cp := make(map[Code]Rate, len(s.rates))
	for k, v := range s.rates {
		cp[k] = v
	}
	return cp
}

// Codes returns the quoted codes in sorted order
func (s *Snapshot) Codes() []Code {
	codes := make([]Code, 0, len(s.rates))
	for c := range s.rates {
		codes = append(codes, c)
	}
	sort.Slice(codes, func(i, j int) bool { return codes[i] < codes[j] })
	return codes
}

// Merge lays fetched rates over base. Codes missing from fetched keep
// the base rate.
func Merge(base *Snapshot, fetched map[Code]Rate, date string, source Source) *Snapshot {
	rates := base.Rates()
	for code, r := range fetched {
		if fallback, ok := rates[code]; ok {
			if r.Name == "" {
				r.Name = fallback.Name
			}
			if r.NameKy == "" {
				r.NameKy = fallback.NameKy
			}
		}
		rates[code] = r
	}
	if date == "" {
		date = base.Date()
	}
	return NewSnapshot(date, source, rates)
}

var fallbackRates = map[Code]Rate{
	USD: {Name: "Доллар США", NameKy: "АКШ доллары", Value: decimal.RequireFromString("87.25"), Nominal: 1},
	EUR: {Name: "Евро", NameKy: "Евро", Value: decimal.RequireFromString("95.80"), Nominal: 1},
	RUB: {Name: "Российский рубль", NameKy: "Орус рубли", Value: decimal.RequireFromString("0.91"), Nominal: 1},
	KZT: {Name: "Казахский тенге", NameKy: "Казак теңгеси", Value: decimal.RequireFromString("0.18"), Nominal: 1},
	CNY: {Name: "Китайский юань", NameKy: "Кытай юаны", Value: decimal.RequireFromString("12.05"), Nominal: 1},
}

// DefaultSnapshot returns the built-in table dated at now
func DefaultSnapshot(now time.Time) *Snapshot {
	return NewSnapshot(now.Format("2006-01-02"), SourceFallback, fallbackRates)
}
