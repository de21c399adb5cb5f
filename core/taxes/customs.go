// Package taxes implements tax, duty and fee calculators.
package taxes

import (
	"time"

	"github.com/shopspring/decimal"

	"calk-kg/core/tariff"
)

var num = decimal.NewFromFloat

// NewCarMaxAge is the oldest age (years) that still gets new-car rates
const NewCarMaxAge = 3

// CustomsRates holds the duty rate and excise bands for an age group
type CustomsRates struct {
	Duty   decimal.Decimal
	Excise []tariff.Band // by engine volume, cc
}

func exciseBands(rates ...float64) []tariff.Band {
	limits := []float64{1000, 1500, 1800, 2300, 3000, 0}
	bands := make([]tariff.Band, len(rates))
	for i, r := range rates {
		bands[i] = tariff.Band{UpTo: num(limits[i]), Rate: num(r)}
	}
	return bands
}

var (
	// NewCarRates apply to cars up to three years old
	NewCarRates = CustomsRates{
		Duty:   num(0.15),
		Excise: exciseBands(0, 0, 0.01, 0.05, 0.08, 0.10),
	}

	// UsedCarRates apply to older cars
	UsedCarRates = CustomsRates{
		Duty:   num(0.20),
		Excise: exciseBands(0, 0.01, 0.02, 0.06, 0.10, 0.15),
	}
)

// CustomsInput describes an imported car
type CustomsInput struct {
	Value        decimal.Decimal `json:"value"`
	Year         int             `json:"year"`
	EngineVolume int             `json:"engine_volume"`
}

// CustomsResult is the full customs clearance breakdown
type CustomsResult struct {
	AgeYears   int             `json:"age_years"`
	DutyRate   decimal.Decimal `json:"duty_rate"`
	ExciseRate decimal.Decimal `json:"excise_rate"`
	tariff.CascadeResult
	Breakdown tariff.Result `json:"breakdown"`
}

// CustomsRatesFor picks duty and excise rates by age and engine volume
func CustomsRatesFor(ageYears, engineVolume int) (duty, excise decimal.Decimal) {
	rates := UsedCarRates
	if ageYears <= NewCarMaxAge {
		rates = NewCarRates
	}
	return rates.Duty, tariff.LookupBand(rates.Excise, decimal.NewFromInt(int64(engineVolume)))
}

// Customs runs the clearance cascade for a car of the given age. Missing
// value or volume yields a zero result.
func Customs(value decimal.Decimal, ageYears, engineVolume int) CustomsResult {
	if !value.IsPositive() || engineVolume <= 0 {
		return CustomsResult{AgeYears: ageYears, Breakdown: tariff.NewResult()}
	}

	duty, excise := CustomsRatesFor(ageYears, engineVolume)
	cascade := tariff.EvaluateCascade(tariff.StandardCascade(duty, excise), value)
	return CustomsResult{
		AgeYears:      ageYears,
		DutyRate:      duty,
		ExciseRate:    excise,
		CascadeResult: cascade,
		Breakdown:     cascade.Result(),
	}
}

// CustomsForCar derives the age from the model year
func CustomsForCar(in CustomsInput, now time.Time) CustomsResult {
	if in.Year <= 0 {
		return CustomsResult{Breakdown: tariff.NewResult()}
	}
	return Customs(in.Value, now.Year()-in.Year, in.EngineVolume)
}
