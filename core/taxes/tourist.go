package taxes

import (
	"github.com/shopspring/decimal"

	"calk-kg/core/tariff"
	"calk-kg/internal/errors"
)

// TouristFeeTable maps a city to its fee per tourist per day
type TouristFeeTable map[string]decimal.Decimal

// DefaultTouristFees are per person per night, som
var DefaultTouristFees = TouristFeeTable{
	"bishkek":     num(100),
	"cholpon-ata": num(150),
	"karakol":     num(120),
	"osh":         num(80),
	"naryn":       num(90),
	"jalal-abad":  num(70),
	"bokonbaevo":  num(130),
	"kochkor":     num(110),
}

// Clone copies the table
func (t TouristFeeTable) Clone() TouristFeeTable {
	cp := make(TouristFeeTable, len(t))
	for k, v := range t {
		cp[k] = v
	}
	return cp
}

// TouristFeeResult is the fee for a group stay. City is the table key.
type TouristFeeResult struct {
	City      string          `json:"city"`
	Tourists  int             `json:"tourists"`
	Days      int             `json:"days"`
	Rate      decimal.Decimal `json:"rate"`
	Total     decimal.Decimal `json:"total"`
	HasData   bool            `json:"has_data"`
	Breakdown tariff.Result   `json:"breakdown"`
}

// Calculate prices tourists*days person-nights in city
func (t TouristFeeTable) Calculate(city string, tourists, days int) (TouristFeeResult, error) {
	rate, ok := t[city]
	if !ok {
		return TouristFeeResult{}, errors.NotFound("city", city)
	}

	res := TouristFeeResult{City: city, Tourists: tourists, Days: days, Rate: rate}
	if tourists <= 0 || days <= 0 {
		res.Breakdown = tariff.NewResult()
		return res, nil
	}

	nights := decimal.NewFromInt(int64(tourists) * int64(days))
	res.Breakdown = tariff.Evaluate(tariff.FlatRate{Rate: rate}, nights)
	res.Total = res.Breakdown.Total
	res.HasData = true
	return res, nil
}

// TouristFee prices a stay with the default table
func TouristFee(city string, tourists, days int) (TouristFeeResult, error) {
	return DefaultTouristFees.Calculate(city, tourists, days)
}
