// Package utilities prices household utilities: electricity, gas, water
// and district heating.
package utilities

import (
	"github.com/shopspring/decimal"

	"calk-kg/core/tariff"
	"calk-kg/internal/errors"
)

var num = decimal.NewFromFloat

// ConsumerCategory selects an electricity tariff
type ConsumerCategory string

const (
	CategoryGeneral   ConsumerCategory = "general"
	CategoryHighland  ConsumerCategory = "highland"
	CategoryLowIncome ConsumerCategory = "lowIncome"
)

// ElectricityTariff is a two-tier monthly tariff
type ElectricityTariff struct {
	NameKey        string          `json:"name_key"`
	DescriptionKey string          `json:"description_key"`
	Limit          decimal.Decimal `json:"limit"`
	Rate1          decimal.Decimal `json:"rate1"`
	Rate2          decimal.Decimal `json:"rate2"`
}

// Shape returns the tariff as a tiered pricing shape
func (t ElectricityTariff) Shape() tariff.Tiered {
	return tariff.TwoTier(t.Limit, t.Rate1, t.Rate2)
}

// ElectricityTable maps categories to tariffs
type ElectricityTable map[ConsumerCategory]ElectricityTariff

// DefaultElectricity holds the regulated household tariffs (som per kWh)
var DefaultElectricity = ElectricityTable{
	CategoryGeneral: {
		NameKey:        "electricity_tariff_general",
		DescriptionKey: "electricity_tariff_general_desc",
		Limit:          num(700),
		Rate1:          num(0.77),
		Rate2:          num(2.16),
	},
	CategoryHighland: {
		NameKey:        "electricity_tariff_highland",
		DescriptionKey: "electricity_tariff_highland_desc",
		Limit:          num(1000),
		Rate1:          num(0.77),
		Rate2:          num(2.16),
	},
	CategoryLowIncome: {
		NameKey:        "electricity_tariff_low_income",
		DescriptionKey: "electricity_tariff_low_income_desc",
		Limit:          num(700),
		Rate1:          num(0.50),
		Rate2:          num(2.16),
	},
}

// ElectricityResult is the priced monthly bill
type ElectricityResult struct {
	Category    ConsumerCategory `json:"category"`
	Consumption decimal.Decimal  `json:"consumption"`
	tariff.TierSplit
	AverageRate decimal.Decimal `json:"average_rate"`
	Breakdown   tariff.Result   `json:"breakdown"`
}

// Calculate prices kwh under category. Non-positive consumption is a zero bill.
func (t ElectricityTable) Calculate(category ConsumerCategory, kwh decimal.Decimal) (ElectricityResult, error) {
	tf, ok := t[category]
	if !ok {
		return ElectricityResult{}, errors.NotFound("electricity category", string(category))
	}

	res := ElectricityResult{Category: category, Consumption: kwh}
	if !kwh.IsPositive() {
		res.Consumption = decimal.Zero
		res.Breakdown = tariff.NewResult()
		return res, nil
	}

	res.TierSplit = tariff.SplitTwoTier(kwh, tf.Limit, tf.Rate1, tf.Rate2)
	res.Breakdown = res.TierSplit.Result(tf.Rate1, tf.Rate2)
	res.AverageRate = res.Total.Div(kwh)
	return res, nil
}

// Electricity prices kwh with the default tariffs
func Electricity(category ConsumerCategory, kwh decimal.Decimal) (ElectricityResult, error) {
	return DefaultElectricity.Calculate(category, kwh)
}
