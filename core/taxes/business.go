package taxes

import (
	"github.com/shopspring/decimal"

	"calk-kg/core/tariff"
	"calk-kg/internal/errors"
)

// Activity is a single-tax business activity
type Activity string

const (
	ActivityTradeGoods Activity = "trade_goods"
	ActivityServices   Activity = "services"
	ActivityProduction Activity = "production"
	ActivityCatering   Activity = "catering"
)

// SingleTaxRates are percent of monthly revenue
var SingleTaxRates = map[Activity]decimal.Decimal{
	ActivityTradeGoods: num(4),
	ActivityServices:   num(6),
	ActivityProduction: num(4),
	ActivityCatering:   num(6),
}

// SingleTaxTurnoverLimit is the annual revenue ceiling for the regime
var SingleTaxTurnoverLimit = num(12000000)

// SingleTaxResult is a single-tax estimate
type SingleTaxResult struct {
	Activity       Activity        `json:"activity"`
	MonthlyRevenue decimal.Decimal `json:"monthly_revenue"`
	AnnualRevenue  decimal.Decimal `json:"annual_revenue"`
	Rate           decimal.Decimal `json:"rate"`
	MonthlyTax     decimal.Decimal `json:"monthly_tax"`
	AnnualTax      decimal.Decimal `json:"annual_tax"`
	NetIncome      decimal.Decimal `json:"net_income"`
	CanUseRegime   bool            `json:"can_use_regime"`
}

// SingleTax estimates the simplified regime for a monthly revenue
func SingleTax(activity Activity, monthlyRevenue decimal.Decimal) (SingleTaxResult, error) {
	rate, ok := SingleTaxRates[activity]
	if !ok {
		return SingleTaxResult{}, errors.NotFound("activity", string(activity))
	}

	res := SingleTaxResult{Activity: activity, Rate: rate}
	if !monthlyRevenue.IsPositive() {
		return res, nil
	}

	twelve := decimal.NewFromInt(12)
	res.MonthlyRevenue = monthlyRevenue
	res.AnnualRevenue = monthlyRevenue.Mul(twelve)
	res.CanUseRegime = res.AnnualRevenue.LessThanOrEqual(SingleTaxTurnoverLimit)
	res.MonthlyTax = tariff.Percent(monthlyRevenue, rate)
	res.AnnualTax = res.MonthlyTax.Mul(twelve)
	res.NetIncome = monthlyRevenue.Sub(res.MonthlyTax)
	return res, nil
}

// TaxiTaxRate is the patent-free rate for taxi drivers and couriers (1%)
var TaxiTaxRate = num(0.01)

// TaxiTaxResult is a ride-hailing income tax estimate
type TaxiTaxResult struct {
	Income    decimal.Decimal `json:"income"`
	Tax       decimal.Decimal `json:"tax"`
	NetIncome decimal.Decimal `json:"net_income"`
}

// TaxiTax charges TaxiTaxRate on income
func TaxiTax(income decimal.Decimal) TaxiTaxResult {
	if !income.IsPositive() {
		return TaxiTaxResult{}
	}
	tax := tariff.Evaluate(tariff.PercentOfBase{Percent: TaxiTaxRate}, income).Total
	return TaxiTaxResult{Income: income, Tax: tax, NetIncome: income.Sub(tax)}
}

// PropertyType is the kind of residential property
type PropertyType string

const (
	PropertyApartment PropertyType = "apartment"
	PropertyHouse     PropertyType = "house"
)

// ExemptArea is the tax-free area per property type when the benefit applies (m2)
var ExemptArea = map[PropertyType]decimal.Decimal{
	PropertyApartment: num(80),
	PropertyHouse:     num(150),
}

// PropertyCities are the locations offered by the property tax form
var PropertyCities = []string{"bishkek", "osh", "jalal-abad", "karakol", "tokmok", "naryn", "talas", "batken", "other"}

// PropertyTaxInput describes a property
type PropertyTaxInput struct {
	Type         PropertyType    `json:"type"`
	Area         decimal.Decimal `json:"area"`
	Rate         decimal.Decimal `json:"rate"` // som per taxable m2
	ApplyBenefit bool            `json:"apply_benefit"`
}

// PropertyTaxResult is the annual property tax
type PropertyTaxResult struct {
	TotalArea   decimal.Decimal `json:"total_area"`
	BenefitArea decimal.Decimal `json:"benefit_area"`
	TaxableArea decimal.Decimal `json:"taxable_area"`
	Rate        decimal.Decimal `json:"rate"`
	Tax         decimal.Decimal `json:"tax"`
}

// PropertyTax prices the taxable area after the optional exemption
func PropertyTax(in PropertyTaxInput) (PropertyTaxResult, error) {
	exempt, ok := ExemptArea[in.Type]
	if !ok {
		return PropertyTaxResult{}, errors.NotFound("property type", string(in.Type))
	}
	if in.Area.IsNegative() || in.Rate.IsNegative() {
		return PropertyTaxResult{}, nil
	}

	res := PropertyTaxResult{TotalArea: in.Area, TaxableArea: in.Area, Rate: in.Rate}
	if in.ApplyBenefit {
		res.BenefitArea = exempt
		res.TaxableArea = decimal.Max(decimal.Zero, in.Area.Sub(exempt))
	}
	res.Tax = res.TaxableArea.Mul(in.Rate)
	return res, nil
}
