package engine

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"calk-kg/core/catalog"
	"calk-kg/core/currency"
	"calk-kg/internal/errors"
)

var fixedNow = time.Date(2025, 3, 15, 10, 0, 0, 0, time.UTC)

func newEngine(tables *Tables, rates RateProvider) *Engine {
	return New(tables, rates, Config{Version: "test"}).WithClock(func() time.Time { return fixedNow })
}

func fetchedRates() RateProvider {
	rates := map[currency.Code]currency.Rate{
		currency.USD: {Code: currency.USD, Name: "Доллар США", Value: decimal.RequireFromString("88"), Nominal: 1},
		currency.KZT: {Code: currency.KZT, Name: "Казахский тенге", Value: decimal.RequireFromString("18"), Nominal: 100},
	}
	return FixedRates{Snap: currency.NewSnapshot("2025-03-14", currency.SourceFetched, rates)}
}

func TestEveryCalculatorHasHandler(t *testing.T) {
	for _, e := range catalog.Default.List() {
		if e.Kind != catalog.KindCalculator {
			continue
		}
		if !Has(e.Slug) {
			t.Errorf("calculator %s has no handler", e.Slug)
		}
	}
}

func TestRun(t *testing.T) {
	e := newEngine(nil, nil)

	tests := []struct {
		slug  string
		body  string
		total string
	}{
		{"electricity", `{"category":"general","consumption":1000}`, "1187"},
		{"salary", `{"gross":50000}`, "40500"},
		{"salary", `{"gross":"50000","htp":true}`, "42750"},
		{"loan", `{"amount":1000000,"term_months":12,"annual_rate":12}`, "88848.79"},
		{"tourist-fee", `{"city":"bishkek","tourists":2,"days":3}`, "600"},
		{"currency-exchange", `{"amount":100,"from":"usd","to":"KGS"}`, "8725"},
		{"salary", ``, "0"},
	}

	for _, tt := range tests {
		t.Run(tt.slug, func(t *testing.T) {
			r, err := e.Run(context.Background(), tt.slug, []byte(tt.body))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !r.Total.Equal(decimal.RequireFromString(tt.total)) {
				t.Errorf("expected total %s, got %s", tt.total, r.Total)
			}
			if r.Calculator != tt.slug {
				t.Errorf("expected calculator %s, got %s", tt.slug, r.Calculator)
			}
			if r.Metadata.Version != "test" || !r.Metadata.Timestamp.Equal(fixedNow) {
				t.Errorf("unexpected metadata %+v", r.Metadata)
			}
		})
	}
}

func TestRunErrors(t *testing.T) {
	e := newEngine(nil, nil)

	tests := []struct {
		name string
		slug string
		body string
		want errors.Type
	}{
		{"unknown calculator", "horoscope", `{}`, errors.TypeNotFound},
		{"malformed body", "salary", `{"gross":`, errors.TypeInput},
		{"unknown field", "salary", `{"gros":100}`, errors.TypeInput},
		{"unknown city", "water", `{"city":"atlantis","category":"population","volume":5}`, errors.TypeNotFound},
		{"unknown currency", "currency-exchange", `{"amount":1,"from":"GBP","to":"KGS"}`, errors.TypeNotFound},
		{"mortgage term too long", "mortgage", `{"property_value":1000,"term_years":500000,"annual_rate":10}`, errors.TypeInput},
		{"deposit term too long", "deposit", `{"principal":1000,"annual_rate":10,"months":6000000}`, errors.TypeInput},
		{"loan term too long", "loan", `{"amount":1000,"term_months":361,"annual_rate":10}`, errors.TypeInput},
		{"auto loan term too long", "auto-loan", `{"car_price":1000,"term_months":100000,"annual_rate":10}`, errors.TypeInput},
		{"zero gold price", "zakat", `{"gold_price":0,"cash":1000000}`, errors.TypeInput},
		{"history too long", "rates", `{"code":"USD","history_days":100000}`, errors.TypeInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := e.Run(context.Background(), tt.slug, []byte(tt.body))
			if !errors.IsType(err, tt.want) {
				t.Fatalf("expected %s, got %v", tt.want, err)
			}
		})
	}
}

func TestRatesSourceWarnings(t *testing.T) {
	req := ConvertRequest{Amount: decimal.NewFromInt(100), From: currency.USD, To: currency.KGS}

	fallback, err := newEngine(nil, nil).Convert(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fallback.Metadata.RatesSource != "fallback" || len(fallback.Warnings) != 1 {
		t.Errorf("expected fallback warning, got %q %v", fallback.Metadata.RatesSource, fallback.Warnings)
	}

	fetched, err := newEngine(nil, fetchedRates()).Convert(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fetched.Metadata.RatesSource != "fetched" || len(fetched.Warnings) != 0 {
		t.Errorf("expected clean fetched report, got %q %v", fetched.Metadata.RatesSource, fetched.Warnings)
	}
	if !fetched.Total.Equal(decimal.NewFromInt(8800)) {
		t.Errorf("expected 8800, got %s", fetched.Total)
	}
	if fetched.Unit != "KGS" {
		t.Errorf("expected unit KGS, got %s", fetched.Unit)
	}
}

func TestRatesHistory(t *testing.T) {
	e := newEngine(nil, fetchedRates())

	r, err := e.Rates(context.Background(), RatesRequest{Code: "kzt", HistoryDays: 7})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	res := r.Result.(RatesResult)
	if len(res.History) != 7 {
		t.Fatalf("expected 7 points, got %d", len(res.History))
	}
	if last := res.History[6]; !last.Rate.Equal(decimal.RequireFromString("0.18")) {
		t.Errorf("expected last point at the per-unit rate, got %s", last.Rate)
	}
	if len(r.Rows.Values) != 7 {
		t.Errorf("expected 7 history rows, got %d", len(r.Rows.Values))
	}

	if _, err := e.Rates(context.Background(), RatesRequest{Code: "EUR", HistoryDays: 7}); !errors.IsType(err, errors.TypeNotFound) {
		t.Errorf("expected NOT_FOUND for a missing rate, got %v", err)
	}
}

func TestMortgageScheduleYear(t *testing.T) {
	e := newEngine(nil, nil)
	body := `{"property_value":3000000,"down_payment":600000,"term_years":10,"annual_rate":14,"schedule_year":2}`

	r, err := e.Run(context.Background(), "mortgage", []byte(body))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(r.Rows.Values) != 12 {
		t.Fatalf("expected 12 schedule rows, got %d", len(r.Rows.Values))
	}
	if r.Rows.Values[0][0] != "13" {
		t.Errorf("expected year 2 to start at month 13, got %s", r.Rows.Values[0][0])
	}
	res := r.Result.(MortgageReport)
	if len(res.Schedule) != 120 || len(res.Offers) == 0 {
		t.Errorf("expected full schedule and offers, got %d rows %d offers", len(res.Schedule), len(res.Offers))
	}
}

func TestTablesOverride(t *testing.T) {
	tables := DefaultTables()
	tables.TouristFees["arslanbob"] = decimal.NewFromInt(50)
	tables.Source = "tariffs.hcl"
	e := newEngine(tables, nil)

	r, err := e.TouristFee(context.Background(), TouristFeeRequest{City: "arslanbob", Tourists: 4, Days: 2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !r.Total.Equal(decimal.NewFromInt(400)) {
		t.Errorf("expected 400, got %s", r.Total)
	}
	if r.Metadata.TariffFile != "tariffs.hcl" {
		t.Errorf("expected tariff file in metadata, got %q", r.Metadata.TariffFile)
	}

	if _, err := newEngine(nil, nil).TouristFee(context.Background(), TouristFeeRequest{City: "arslanbob", Tourists: 1, Days: 1}); err == nil {
		t.Error("default tables must not see the override")
	}
}

func TestFines(t *testing.T) {
	e := newEngine(nil, nil)

	r, err := e.Fines(context.Background(), FinesRequest{ID: "speed_10_20", Quick: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !r.Total.Equal(decimal.NewFromInt(450)) {
		t.Errorf("expected 450, got %s", r.Total)
	}

	r, err = e.Fines(context.Background(), FinesRequest{ID: "no_license", Quick: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !r.Total.Equal(decimal.NewFromInt(10000)) || len(r.Warnings) != 1 {
		t.Errorf("expected full amount with a warning, got %s %v", r.Total, r.Warnings)
	}

	r, err = e.Fines(context.Background(), FinesRequest{Category: "speed"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(r.Rows.Values) != 4 {
		t.Errorf("expected 4 speed fines, got %d", len(r.Rows.Values))
	}
}

func TestPensionWarnsOnShortExperience(t *testing.T) {
	e := newEngine(nil, nil)
	body := `{"birth_date":"1990-01-01T00:00:00Z","gender":"male","retirement_age":63,"current_salary":30000,
		"work_periods":[{"start_year":2020,"start_month":1,"end_year":2024,"end_month":12,"salary":30000}]}`

	r, err := e.Run(context.Background(), "pension", []byte(body))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(r.Warnings) != 1 {
		t.Errorf("expected short experience warning, got %v", r.Warnings)
	}
}
