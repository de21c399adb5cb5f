package utilities

import (
	"github.com/shopspring/decimal"

	"calk-kg/core/tariff"
	"calk-kg/internal/errors"
)

// GasCategory selects a gas tariff
type GasCategory string

const (
	GasResidential        GasCategory = "residential"
	GasResidentialHeating GasCategory = "residential_heating"
	GasCommercial         GasCategory = "commercial"
	GasIndustrial         GasCategory = "industrial"
)

// GasTariff is a flat price per cubic metre
type GasTariff struct {
	NameKey        string          `json:"name_key"`
	DescriptionKey string          `json:"description_key"`
	Rate           decimal.Decimal `json:"rate"`
}

// GasTable maps categories to tariffs
type GasTable map[GasCategory]GasTariff

// DefaultGas holds the gas tariffs (som per m3)
var DefaultGas = GasTable{
	GasResidential:        {NameKey: "gas_residential", DescriptionKey: "gas_residential_desc", Rate: num(14.50)},
	GasResidentialHeating: {NameKey: "gas_residential_heating", DescriptionKey: "gas_residential_heating_desc", Rate: num(11.60)},
	GasCommercial:         {NameKey: "gas_commercial", DescriptionKey: "gas_commercial_desc", Rate: num(18.30)},
	GasIndustrial:         {NameKey: "gas_industrial", DescriptionKey: "gas_industrial_desc", Rate: num(16.80)},
}

// GasResult is the priced gas bill
type GasResult struct {
	Category    GasCategory     `json:"category"`
	Consumption decimal.Decimal `json:"consumption"`
	Rate        decimal.Decimal `json:"rate"`
	Total       decimal.Decimal `json:"total"`
	AverageRate decimal.Decimal `json:"average_rate"`
	Breakdown   tariff.Result   `json:"breakdown"`
}

// Calculate prices m3 of gas under category
func (t GasTable) Calculate(category GasCategory, m3 decimal.Decimal) (GasResult, error) {
	tf, ok := t[category]
	if !ok {
		return GasResult{}, errors.NotFound("gas category", string(category))
	}

	res := GasResult{Category: category, Rate: tf.Rate, AverageRate: tf.Rate}
	if !m3.IsPositive() {
		res.Consumption = decimal.Zero
		res.Breakdown = tariff.NewResult()
		return res, nil
	}

	res.Consumption = m3
	res.Breakdown = tariff.Evaluate(tariff.FlatRate{Rate: tf.Rate}, m3)
	res.Total = res.Breakdown.Total
	return res, nil
}

// Gas prices m3 with the default tariffs
func Gas(category GasCategory, m3 decimal.Decimal) (GasResult, error) {
	return DefaultGas.Calculate(category, m3)
}
