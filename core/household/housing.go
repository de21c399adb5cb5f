package household

import (
	"github.com/shopspring/decimal"

	"calk-kg/core/tariff"
	"calk-kg/internal/errors"
)

// Operation is what the buyer does with the housing
type Operation string

const (
	BuyApartment Operation = "buy-apartment"
	BuyHouse     Operation = "buy-house"
	BuildHouse   Operation = "build-house"
)

// HousingPrices maps a city to the price per m2 for each operation
type HousingPrices map[string]map[Operation]decimal.Decimal

func perMeter(apartment, house, build float64) map[Operation]decimal.Decimal {
	return map[Operation]decimal.Decimal{
		BuyApartment: num(apartment),
		BuyHouse:     num(house),
		BuildHouse:   num(build),
	}
}

// DefaultHousingPrices are market averages, som per m2
var DefaultHousingPrices = HousingPrices{
	"bishkek":     perMeter(105000, 146000, 95000),
	"osh":         perMeter(88000, 115000, 78000),
	"cholpon-ata": perMeter(120000, 160000, 105000),
	"jalal-abad":  perMeter(75000, 98000, 68000),
	"karakol":     perMeter(85000, 110000, 72000),
	"tokmok":      perMeter(65000, 85000, 58000),
	"naryn":       perMeter(55000, 72000, 48000),
	"talas":       perMeter(60000, 78000, 52000),
	"batken":      perMeter(50000, 65000, 45000),
	"kant":        perMeter(70000, 90000, 62000),
	"kara-balta":  perMeter(68000, 88000, 60000),
	"balykchy":    perMeter(72000, 92000, 63000),
}

// HousingResult is the cost of an area
type HousingResult struct {
	City          string          `json:"city"`
	Operation     Operation       `json:"operation"`
	Area          decimal.Decimal `json:"area"`
	PricePerMeter decimal.Decimal `json:"price_per_meter"`
	Total         decimal.Decimal `json:"total"`
	HasData       bool            `json:"has_data"`
}

// Housing prices area square meters in city
func (p HousingPrices) Housing(city string, op Operation, area decimal.Decimal) (HousingResult, error) {
	ops, ok := p[city]
	if !ok {
		return HousingResult{}, errors.NotFound("city", city)
	}
	price, ok := ops[op]
	if !ok {
		return HousingResult{}, errors.NotFound("operation", string(op))
	}

	res := HousingResult{City: city, Operation: op, PricePerMeter: price}
	if !area.IsPositive() {
		return res, nil
	}
	res.Area = area
	res.Total = tariff.Evaluate(tariff.FlatRate{Rate: price}, area).Total
	res.HasData = true
	return res, nil
}

// Housing prices an area with the default table
func Housing(city string, op Operation, area decimal.Decimal) (HousingResult, error) {
	return DefaultHousingPrices.Housing(city, op, area)
}
