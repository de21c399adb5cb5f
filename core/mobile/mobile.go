// Package mobile compares mobile plans of the Kyrgyz operators for a
// given monthly usage.
package mobile

import (
	"slices"
	"sort"

	"github.com/shopspring/decimal"

	"calk-kg/core/tariff"
)

var num = decimal.NewFromFloat

// Operator is a mobile network
type Operator string

const (
	Megacom    Operator = "megacom"
	Beeline    Operator = "beeline"
	NurTelecom Operator = "o" // O! brand
)

// Operators lists every network in display order
var Operators = []Operator{Megacom, Beeline, NurTelecom}

// OperatorInfo describes a network
type OperatorInfo struct {
	Name     string `json:"name"`
	Coverage int    `json:"coverage"` // percent of territory
	Website  string `json:"website"`
	Support  string `json:"support"`
}

// OperatorDetails holds network information by operator
var OperatorDetails = map[Operator]OperatorInfo{
	Megacom:    {Name: "MegaCom", Coverage: 98, Website: "https://www.megacom.kg", Support: "+996 555 555-555"},
	Beeline:    {Name: "Beeline", Coverage: 95, Website: "https://www.beeline.kg", Support: "+996 770 770-770"},
	NurTelecom: {Name: "O!", Coverage: 92, Website: "https://www.o.kg", Support: "+996 500 500-500"},
}

// Plan is a monthly tariff. Allowances equal to tariff.Unlimited have no cap.
type Plan struct {
	ID          string          `json:"id"`
	Operator    Operator        `json:"operator"`
	Name        string          `json:"name"`
	NameKy      string          `json:"name_ky"`
	MonthlyFee  decimal.Decimal `json:"monthly_fee"`
	Minutes     decimal.Decimal `json:"minutes"`
	SMS         decimal.Decimal `json:"sms"`
	InternetGB  decimal.Decimal `json:"internet_gb"`
	ExtraMinute decimal.Decimal `json:"extra_minute"`
	ExtraSMS    decimal.Decimal `json:"extra_sms"`
	ExtraGB     decimal.Decimal `json:"extra_gb"`
	SocialMedia bool            `json:"social_media,omitempty"`
	Messengers  bool            `json:"messengers,omitempty"`
	Popular     bool            `json:"popular,omitempty"`
	Recommended bool            `json:"recommended,omitempty"`
}

var unl = tariff.Unlimited

func plan(id string, op Operator, name, nameKy string, fee float64, minutes, sms, gb decimal.Decimal, xMin, xSMS, xGB float64) Plan {
	return Plan{
		ID:          id,
		Operator:    op,
		Name:        name,
		NameKy:      nameKy,
		MonthlyFee:  num(fee),
		Minutes:     minutes,
		SMS:         sms,
		InternetGB:  gb,
		ExtraMinute: num(xMin),
		ExtraSMS:    num(xSMS),
		ExtraGB:     num(xGB),
	}
}

func withFlags(p Plan, social, messengers, popular, recommended bool) Plan {
	p.SocialMedia, p.Messengers, p.Popular, p.Recommended = social, messengers, popular, recommended
	return p
}

// DefaultPlans is the plan catalog
var DefaultPlans = []Plan{
	withFlags(plan("megacom-unlim-s", Megacom, "Unlim S", "Unlim S", 250, num(500), num(50), num(5), 1, 0.5, 50), true, false, true, false),
	withFlags(plan("megacom-unlim-m", Megacom, "Unlim M", "Unlim M", 400, num(1000), num(100), num(15), 1, 0.5, 40), true, true, false, true),
	withFlags(plan("megacom-unlim-l", Megacom, "Unlim L", "Unlim L", 600, unl, unl, num(30), 0, 0, 30), true, true, false, false),
	withFlags(plan("megacom-internet-only", Megacom, "Только интернет", "Интернет гана", 300, num(0), num(0), num(50), 2, 1, 20), true, true, false, false),
	plan("beeline-start", Beeline, "Старт", "Старт", 200, num(300), num(30), num(3), 1.2, 0.6, 60),
	withFlags(plan("beeline-optimal", Beeline, "Оптимальный", "Оптималдуу", 350, num(800), num(80), num(10), 1, 0.5, 45), true, false, true, false),
	withFlags(plan("beeline-premium", Beeline, "Премиум", "Премиум", 550, unl, unl, num(25), 0, 0, 35), true, true, false, false),
	withFlags(plan("beeline-internet-max", Beeline, "Интернет MAX", "Интернет MAX", 400, num(100), num(20), num(60), 1.5, 0.8, 25), true, true, false, false),
	plan("o-mini", NurTelecom, "O! Mini", "O! Mini", 180, num(200), num(25), num(2), 1.3, 0.7, 70),
	withFlags(plan("o-smart", NurTelecom, "O! Smart", "O! Smart", 320, num(700), num(70), num(12), 1.1, 0.6, 50), true, false, false, false),
	withFlags(plan("o-unlimited", NurTelecom, "O! Unlimited", "O! Unlimited", 500, unl, unl, num(20), 0, 0, 40), true, true, false, false),
	plan("o-gamer", NurTelecom, "O! Gamer", "O! Gamer", 450, num(500), num(50), num(40), 1, 0.5, 30),
}

// Usage is a month of consumption
type Usage struct {
	Minutes decimal.Decimal `json:"minutes"`
	SMS     decimal.Decimal `json:"sms"`
	GB      decimal.Decimal `json:"gb"`
}

// Cost prices usage under p: the fee plus overage on each resource
func (p Plan) Cost(u Usage) tariff.Result {
	return tariff.NewResult(
		tariff.Line{Label: "monthly_fee", Quantity: decimal.NewFromInt(1), Rate: p.MonthlyFee, Subtotal: p.MonthlyFee},
		overageLine("extra_minutes", u.Minutes, p.Minutes, p.ExtraMinute),
		overageLine("extra_sms", u.SMS, p.SMS, p.ExtraSMS),
		overageLine("extra_gb", u.GB, p.InternetGB, p.ExtraGB),
	)
}

func overageLine(label string, usage, included, rate decimal.Decimal) tariff.Line {
	units := decimal.Zero
	if !included.IsNegative() {
		units = tariff.OverageUnits(usage, included)
	}
	return tariff.Line{Label: label, Quantity: units, Rate: rate, Subtotal: tariff.Overage(usage, included, rate)}
}

// SortBy orders the comparison
type SortBy string

const (
	SortPrice    SortBy = "price"
	SortInternet SortBy = "internet"
	SortMinutes  SortBy = "minutes"
)

// Unlimited allowances rank above any finite one when sorting
var (
	unlimitedGBRank      = decimal.NewFromInt(999)
	unlimitedMinutesRank = decimal.NewFromInt(999999)
)

func rank(v, unlimited decimal.Decimal) decimal.Decimal {
	if v.IsNegative() {
		return unlimited
	}
	return v
}

// Filter narrows the catalog. Empty Operators means all; a zero
// MaxBudget means no budget.
type Filter struct {
	Operators []Operator      `json:"operators,omitempty"`
	MaxBudget decimal.Decimal `json:"max_budget,omitempty"`
	SortBy    SortBy          `json:"sort_by,omitempty"`
}

// Quote is a plan priced for the usage
type Quote struct {
	Plan      Plan            `json:"plan"`
	TotalCost decimal.Decimal `json:"total_cost"`
	Breakdown tariff.Result   `json:"breakdown"`
}

// HasExtra reports whether any overage was charged
func (q Quote) HasExtra() bool {
	return q.TotalCost.GreaterThan(q.Plan.MonthlyFee)
}

// Compare prices every matching plan and sorts the result. Ties keep
// catalog order.
func Compare(plans []Plan, u Usage, f Filter) []Quote {
	quotes := make([]Quote, 0, len(plans))
	for _, p := range plans {
		if len(f.Operators) > 0 && !slices.Contains(f.Operators, p.Operator) {
			continue
		}
		cost := p.Cost(u)
		if f.MaxBudget.IsPositive() && cost.Total.GreaterThan(f.MaxBudget) {
			continue
		}
		quotes = append(quotes, Quote{Plan: p, TotalCost: cost.Total, Breakdown: cost})
	}

	var less func(a, b Quote) bool
	switch f.SortBy {
	case SortInternet:
		less = func(a, b Quote) bool {
			return rank(a.Plan.InternetGB, unlimitedGBRank).GreaterThan(rank(b.Plan.InternetGB, unlimitedGBRank))
		}
	case SortMinutes:
		less = func(a, b Quote) bool {
			return rank(a.Plan.Minutes, unlimitedMinutesRank).GreaterThan(rank(b.Plan.Minutes, unlimitedMinutesRank))
		}
	default:
		less = func(a, b Quote) bool { return a.TotalCost.LessThan(b.TotalCost) }
	}
	sort.SliceStable(quotes, func(i, j int) bool { return less(quotes[i], quotes[j]) })
	return quotes
}
