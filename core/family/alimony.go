// Package family covers alimony, the low-income family benefit and zakat.
package family

import (
	"github.com/shopspring/decimal"

	"calk-kg/core/tariff"
	"calk-kg/internal/errors"
)

var num = decimal.NewFromFloat

// AlimonyRates is the share of income by number of children
var AlimonyRates = tariff.NewStepped(
	tariff.Bracket{Key: 1, Rate: num(0.25)},
	tariff.Bracket{Key: 2, Rate: num(0.33)},
	tariff.Bracket{Key: 3, Rate: num(0.50)},
)

// MaxChildren bounds the accepted children count
const MaxChildren = 10

// IncomeMethod selects the base for alimony
type IncomeMethod string

const (
	KnownIncome     IncomeMethod = "known-income"
	RegionalAverage IncomeMethod = "regional-average"
)

// RegionSalary is the average monthly salary of a region
type RegionSalary struct {
	NameKey string          `json:"name_key"`
	Salary  decimal.Decimal `json:"salary"`
}

// RegionalSalaries are average salaries by region, som per month
var RegionalSalaries = map[string]RegionSalary{
	"bishkek":           {NameKey: "city_bishkek", Salary: num(32500)},
	"osh":               {NameKey: "city_osh", Salary: num(25800)},
	"osh-region":        {NameKey: "region_osh", Salary: num(24200)},
	"jalal-abad":        {NameKey: "city_jalal_abad", Salary: num(26100)},
	"jalal-abad-region": {NameKey: "region_jalal_abad", Salary: num(23800)},
	"issyk-kul":         {NameKey: "region_issyk_kul", Salary: num(27300)},
	"naryn":             {NameKey: "region_naryn", Salary: num(24800)},
	"talas":             {NameKey: "region_talas", Salary: num(25200)},
	"chui":              {NameKey: "region_chui", Salary: num(28900)},
	"batken":            {NameKey: "region_batken", Salary: num(23100)},
}

// AlimonyInput describes the payer
type AlimonyInput struct {
	Children int             `json:"children"`
	Method   IncomeMethod    `json:"method"`
	Income   decimal.Decimal `json:"income,omitempty"`
	Region   string          `json:"region,omitempty"`
}

// AlimonyResult is the monthly alimony
type AlimonyResult struct {
	Children    int             `json:"children"`
	Method      IncomeMethod    `json:"method"`
	Region      string          `json:"region,omitempty"`
	BaseAmount  decimal.Decimal `json:"base_amount"`
	AppliedRate decimal.Decimal `json:"applied_rate"`
	Amount      decimal.Decimal `json:"amount"`
}

// Alimony computes the monthly payment. A children count outside
// [1, MaxChildren] yields zero.
func Alimony(in AlimonyInput) (AlimonyResult, error) {
	res := AlimonyResult{Children: in.Children, Method: in.Method}

	base := decimal.Max(in.Income, decimal.Zero)
	if in.Method == RegionalAverage {
		region, ok := RegionalSalaries[in.Region]
		if !ok {
			return res, errors.NotFound("region", in.Region)
		}
		res.Region = in.Region
		base = region.Salary
	}

	if in.Children < 1 || in.Children > MaxChildren {
		return res, nil
	}

	res.BaseAmount = base
	res.AppliedRate = AlimonyRates.Lookup(in.Children)
	res.Amount = base.Mul(res.AppliedRate)
	return res, nil
}
