package household

import (
	"github.com/shopspring/decimal"

	"calk-kg/core/tariff"
	"calk-kg/internal/errors"
)

// BanquetPrices are average banquet prices per guest by region, som
var BanquetPrices = map[string]decimal.Decimal{
	"bishkek":     num(1800),
	"osh":         num(1000),
	"batken":      num(500),
	"naryn":       num(700),
	"jalal-abad":  num(900),
	"karakol":     num(800),
	"talas":       num(650),
	"tokmok":      num(750),
	"cholpon-ata": num(1100),
	"kara-balta":  num(700),
	"kant":        num(750),
	"balykchy":    num(850),
}

// Optional wedding items
var (
	WeddingServices = []string{"tamada", "music", "photo", "video", "show"}
	WeddingExpenses = []string{"meat", "drinks", "fruits", "decor", "cake", "invitations"}
)

// Item is an optional cost the couple can switch on
type Item struct {
	ID      string          `json:"id"`
	Enabled bool            `json:"enabled"`
	Cost    decimal.Decimal `json:"cost"`
}

// WeddingInput describes the celebration. A zero PricePerGuest uses the
// regional average.
type WeddingInput struct {
	Region        string          `json:"region"`
	Guests        int             `json:"guests"`
	PricePerGuest decimal.Decimal `json:"price_per_guest"`
	Services      []Item          `json:"services"`
	Expenses      []Item          `json:"expenses"`
}

// WeddingResult is the wedding budget
type WeddingResult struct {
	Guests        int             `json:"guests"`
	PricePerGuest decimal.Decimal `json:"price_per_guest"`
	Banquet       decimal.Decimal `json:"banquet"`
	Services      decimal.Decimal `json:"services"`
	Expenses      decimal.Decimal `json:"expenses"`
	Total         decimal.Decimal `json:"total"`
	Breakdown     tariff.Result   `json:"breakdown"`
}

// Share returns part as a percentage of the total
func (r WeddingResult) Share(part decimal.Decimal) decimal.Decimal {
	if !r.Total.IsPositive() {
		return decimal.Zero
	}
	return part.Div(r.Total).Mul(decimal.NewFromInt(100))
}

// Wedding prices the banquet and every enabled item
func Wedding(in WeddingInput) (WeddingResult, error) {
	price := in.PricePerGuest
	if price.IsZero() {
		p, ok := BanquetPrices[in.Region]
		if !ok {
			return WeddingResult{}, errors.NotFound("region", in.Region)
		}
		price = p
	}

	guests := max(in.Guests, 0)
	res := WeddingResult{Guests: guests, PricePerGuest: price}
	res.Breakdown = tariff.NewResult(tariff.NewLine("banquet", decimal.NewFromInt(int64(guests)), price))
	res.Banquet = res.Breakdown.Total

	res.Services = addItems(&res.Breakdown, "service_", in.Services)
	res.Expenses = addItems(&res.Breakdown, "expense_", in.Expenses)
	res.Total = res.Breakdown.Total
	return res, nil
}

func addItems(r *tariff.Result, prefix string, items []Item) decimal.Decimal {
	sum := decimal.Zero
	for _, it := range items {
		if !it.Enabled || !it.Cost.IsPositive() {
			continue
		}
		r.Add(tariff.NewLine(prefix+it.ID, decimal.NewFromInt(1), it.Cost))
		sum = sum.Add(it.Cost)
	}
	return sum
}
