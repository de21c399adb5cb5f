package utilities

import (
	"github.com/shopspring/decimal"

	"calk-kg/core/tariff"
	"calk-kg/internal/errors"
)

// HotWaterMethod selects how hot water is billed
type HotWaterMethod string

const (
	HotWaterMeter    HotWaterMethod = "meter"
	HotWaterStandard HotWaterMethod = "standard"
)

// StandardHotWaterPerPerson is the assumed monthly use without a meter (m3)
var StandardHotWaterPerPerson = num(2.5)

// HeatingTariff is a city's district heating and hot water tariff
type HeatingTariff struct {
	TariffPerGcal     decimal.Decimal `json:"tariff_per_gcal"`
	GcalPerM2         decimal.Decimal `json:"gcal_per_m2"`
	HotWaterPerM3     decimal.Decimal `json:"hot_water_per_m3"`
	HotWaterPerPerson decimal.Decimal `json:"hot_water_per_person"`
}

// DefaultHeating holds heating tariffs by city
var DefaultHeating = map[string]HeatingTariff{
	"bishkek":    {TariffPerGcal: num(1134.76), GcalPerM2: num(0.036), HotWaterPerM3: num(75.14), HotWaterPerPerson: num(340.50)},
	"osh":        {TariffPerGcal: num(950.20), GcalPerM2: num(0.038), HotWaterPerM3: num(65.80), HotWaterPerPerson: num(295.40)},
	"karakol":    {TariffPerGcal: num(1050.30), GcalPerM2: num(0.040), HotWaterPerM3: num(58.20), HotWaterPerPerson: num(285.60)},
	"jalal-abad": {TariffPerGcal: num(980.15), GcalPerM2: num(0.037), HotWaterPerM3: num(62.40), HotWaterPerPerson: num(315.80)},
	"tokmok":     {TariffPerGcal: num(890.50), GcalPerM2: num(0.035), HotWaterPerM3: num(55.30), HotWaterPerPerson: num(275.20)},
	"naryn":      {TariffPerGcal: num(1200.80), GcalPerM2: num(0.042), HotWaterPerM3: num(68.90), HotWaterPerPerson: num(365.70)},
}

// HeatingInput describes an apartment
type HeatingInput struct {
	City         string          `json:"city"`
	Area         decimal.Decimal `json:"area"`
	Method       HotWaterMethod  `json:"method"`
	MeterReading decimal.Decimal `json:"meter_reading"`
	Residents    int             `json:"residents"`
}

// HeatingResult is the monthly heating and hot water bill
type HeatingResult struct {
	City                string          `json:"city"`
	Area                decimal.Decimal `json:"area"`
	HeatingConsumption  decimal.Decimal `json:"heating_consumption"`
	HeatingCost         decimal.Decimal `json:"heating_cost"`
	HotWaterConsumption decimal.Decimal `json:"hot_water_consumption"`
	HotWaterCost        decimal.Decimal `json:"hot_water_cost"`
	Total               decimal.Decimal `json:"total"`
	Breakdown           tariff.Result   `json:"breakdown"`
}

// Heating prices a month of heating and hot water. A non-positive area
// yields an empty bill.
func Heating(in HeatingInput) (HeatingResult, error) {
	tf, ok := DefaultHeating[in.City]
	if !ok {
		return HeatingResult{}, errors.NotFound("city", in.City)
	}

	res := HeatingResult{City: in.City, Area: in.Area}
	if !in.Area.IsPositive() {
		res.Area = decimal.Zero
		res.Breakdown = tariff.NewResult()
		return res, nil
	}

	res.HeatingConsumption = in.Area.Mul(tf.GcalPerM2)
	heating := tariff.NewLine("heating", res.HeatingConsumption, tf.TariffPerGcal)

	var hotWater tariff.Line
	if in.Method == HotWaterMeter {
		reading := decimal.Max(in.MeterReading, decimal.Zero)
		res.HotWaterConsumption = reading
		hotWater = tariff.NewLine("hot_water_meter", reading, tf.HotWaterPerM3)
	} else {
		residents := decimal.NewFromInt(int64(max(in.Residents, 0)))
		res.HotWaterConsumption = residents.Mul(StandardHotWaterPerPerson)
		hotWater = tariff.NewLine("hot_water_standard", residents, tf.HotWaterPerPerson)
	}

	res.Breakdown = tariff.NewResult(heating, hotWater)
	res.HeatingCost = heating.Subtotal
	res.HotWaterCost = hotWater.Subtotal
	res.Total = res.Breakdown.Total
	return res, nil
}
