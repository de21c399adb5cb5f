package utilities

import (
	"github.com/shopspring/decimal"

	"calk-kg/core/tariff"
	"calk-kg/internal/errors"
)

// WaterCategory is the consumer class
type WaterCategory string

const (
	WaterPopulation WaterCategory = "population"
	WaterBudget     WaterCategory = "budget"
	WaterCommercial WaterCategory = "commercial"
)

// WaterRates are som per m3 for supply and sewerage
type WaterRates struct {
	Water    decimal.Decimal `json:"water"`
	Sewerage decimal.Decimal `json:"sewerage"`
}

// WaterTable maps city -> category -> rates
type WaterTable map[string]map[WaterCategory]WaterRates

func waterRates(population, budget, commercial [2]float64) map[WaterCategory]WaterRates {
	return map[WaterCategory]WaterRates{
		WaterPopulation: {Water: num(population[0]), Sewerage: num(population[1])},
		WaterBudget:     {Water: num(budget[0]), Sewerage: num(budget[1])},
		WaterCommercial: {Water: num(commercial[0]), Sewerage: num(commercial[1])},
	}
}

// DefaultWater holds municipal water tariffs. Osh bills sewerage separately.
var DefaultWater = WaterTable{
	"bishkek":    waterRates([2]float64{8.10, 3.25}, [2]float64{9.10, 4.25}, [2]float64{13.00, 6.00}),
	"osh":        waterRates([2]float64{12.96, 0}, [2]float64{15.50, 0}, [2]float64{28.50, 0}),
	"karakol":    waterRates([2]float64{7.50, 2.80}, [2]float64{8.50, 3.50}, [2]float64{11.50, 5.20}),
	"jalal-abad": waterRates([2]float64{9.20, 3.80}, [2]float64{10.50, 4.50}, [2]float64{15.80, 7.20}),
	"tokmok":     waterRates([2]float64{6.80, 2.50}, [2]float64{7.80, 3.20}, [2]float64{10.50, 4.80}),
	"naryn":      waterRates([2]float64{5.90, 2.10}, [2]float64{6.90, 2.80}, [2]float64{9.20, 4.10}),
	"talas":      waterRates([2]float64{6.50, 2.30}, [2]float64{7.50, 3.00}, [2]float64{10.00, 4.50}),
	"batken":     waterRates([2]float64{7.20, 2.90}, [2]float64{8.20, 3.70}, [2]float64{11.80, 5.50}),
}

// Clone deep-copies the table
func (t WaterTable) Clone() WaterTable {
	cp := make(WaterTable, len(t))
	for city, cats := range t {
		inner := make(map[WaterCategory]WaterRates, len(cats))
		for c, r := range cats {
			inner[c] = r
		}
		cp[city] = inner
	}
	return cp
}

// WaterResult is the priced water bill
type WaterResult struct {
	City         string          `json:"city"`
	Category     WaterCategory   `json:"category"`
	Volume       decimal.Decimal `json:"volume"`
	WaterCost    decimal.Decimal `json:"water_cost"`
	SewerageCost decimal.Decimal `json:"sewerage_cost"`
	Total        decimal.Decimal `json:"total"`
	Breakdown    tariff.Result   `json:"breakdown"`
}

// Calculate prices m3 of water and sewerage
func (t WaterTable) Calculate(city string, category WaterCategory, m3 decimal.Decimal) (WaterResult, error) {
	cats, ok := t[city]
	if !ok {
		return WaterResult{}, errors.NotFound("city", city)
	}
	rates, ok := cats[category]
	if !ok {
		return WaterResult{}, errors.NotFound("water category", string(category))
	}

	res := WaterResult{City: city, Category: category}
	if !m3.IsPositive() {
		res.Volume = decimal.Zero
		res.Breakdown = tariff.NewResult()
		return res, nil
	}

	res.Volume = m3
	res.Breakdown = tariff.NewResult(
		tariff.NewLine("water", m3, rates.Water),
		tariff.NewLine("sewerage", m3, rates.Sewerage),
	)
	res.WaterCost = res.Breakdown.Lines[0].Subtotal
	res.SewerageCost = res.Breakdown.Lines[1].Subtotal
	res.Total = res.Breakdown.Total
	return res, nil
}

// Water prices m3 with the default tariffs
func Water(city string, category WaterCategory, m3 decimal.Decimal) (WaterResult, error) {
	return DefaultWater.Calculate(city, category, m3)
}
