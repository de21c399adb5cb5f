package tariff

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// Commission computes fixed + amount*percent/100, raises it to min,
// then caps it at max. min > max is a table error caught by Validate.
func Commission(amount, fixedFee, percent, min, max decimal.Decimal) decimal.Decimal {
	raw := fixedFee.Add(amount.Mul(percent).Div(hundred))
	if raw.LessThan(min) {
		raw = min
	}
	if raw.GreaterThan(max) {
		raw = max
	}
	return raw
}

// Bounds is an optional floor and ceiling. A zero bound is treated as absent.
type Bounds struct {
	Min decimal.Decimal `json:"min"`
	Max decimal.Decimal `json:"max"`
}

// Clamp applies the bounds that are set, floor first
func (b Bounds) Clamp(v decimal.Decimal) decimal.Decimal {
	if !b.Min.IsZero() && v.LessThan(b.Min) {
		v = b.Min
	}
	if !b.Max.IsZero() && v.GreaterThan(b.Max) {
		v = b.Max
	}
	return v
}

// Unlimited marks an allowance that can never be exceeded
var Unlimited = decimal.NewFromInt(-1)

// Overage prices usage beyond an included allowance. A negative
// allowance is Unlimited and costs nothing.
func Overage(usage, included, unitRate decimal.Decimal) decimal.Decimal {
	if included.IsNegative() {
		return decimal.Zero
	}
	return OverageUnits(usage, included).Mul(unitRate)
}

// OverageUnits returns max(0, usage - included)
func OverageUnits(usage, included decimal.Decimal) decimal.Decimal {
	return decimal.Max(decimal.Zero, usage.Sub(included))
}

// Percent returns base * pct / 100
func Percent(base, pct decimal.Decimal) decimal.Decimal {
	return base.Mul(pct).Div(hundred)
}
