package tariff

import (
	"fmt"

	"github.com/shopspring/decimal"

	"calk-kg/internal/errors"
)

// Shape is a pricing shape. The set of implementations is closed.
type Shape interface {
	shape()
}

// FlatRate applies one rate to the whole quantity
type FlatRate struct {
	Rate decimal.Decimal `json:"rate"`
}

// Tiered is a progressive tariff. Rates has one entry per band,
// including the band above the last threshold.
type Tiered struct {
	Thresholds []decimal.Decimal `json:"thresholds"`
	Rates      []decimal.Decimal `json:"rates"`
}

// PercentOfBase charges a fraction of the base (0.25 = 25%)
type PercentOfBase struct {
	Percent decimal.Decimal `json:"percent"`
}

// Cascade is the customs pipeline: fee, duty and excise on the value,
// then VAT on the value plus everything before it.
type Cascade struct {
	FeeRate    decimal.Decimal `json:"fee_rate"`
	DutyRate   decimal.Decimal `json:"duty_rate"`
	ExciseRate decimal.Decimal `json:"excise_rate"`
	VATRate    decimal.Decimal `json:"vat_rate"`
}

// BoundedCommission is fixed + amount*percent/100 clamped to [Min, Max]
type BoundedCommission struct {
	FixedFee decimal.Decimal `json:"fixed_fee"`
	Percent  decimal.Decimal `json:"percent"`
	Min      decimal.Decimal `json:"min"`
	Max      decimal.Decimal `json:"max"`
}

func (FlatRate) shape()          {}
func (Tiered) shape()            {}
func (PercentOfBase) shape()     {}
func (Cascade) shape()           {}
func (BoundedCommission) shape() {}

// TwoTier builds a Tiered shape with a single threshold
func TwoTier(limit, rate1, rate2 decimal.Decimal) Tiered {
	return Tiered{
		Thresholds: []decimal.Decimal{limit},
		Rates:      []decimal.Decimal{rate1, rate2},
	}
}

// Validate checks band layout. Tables are trusted at evaluation time,
// so this runs when tables are loaded from files.
func (t Tiered) Validate() error {
	if len(t.Rates) != len(t.Thresholds)+1 {
		return errors.Newf(errors.TypeConfig,
			"tiered tariff needs %d rates for %d thresholds, got %d",
			len(t.Thresholds)+1, len(t.Thresholds), len(t.Rates))
	}
	for i, th := range t.Thresholds {
		if th.IsNegative() {
			return errors.Newf(errors.TypeConfig, "threshold %d is negative: %s", i, th)
		}
		if i > 0 && !th.GreaterThan(t.Thresholds[i-1]) {
			return errors.Newf(errors.TypeConfig,
				"thresholds must be strictly increasing: %s after %s", th, t.Thresholds[i-1])
		}
	}
	return nil
}

// Validate rejects a floor above the ceiling
func (c BoundedCommission) Validate() error {
	if c.Min.GreaterThan(c.Max) {
		return errors.Newf(errors.TypeConfig, "commission min %s exceeds max %s", c.Min, c.Max)
	}
	return nil
}

// StandardCascade returns the customs cascade with the 0.4% processing
// fee and 12% VAT.
func StandardCascade(dutyRate, exciseRate decimal.Decimal) Cascade {
	return Cascade{
		FeeRate:    decimal.RequireFromString("0.004"),
		DutyRate:   dutyRate,
		ExciseRate: exciseRate,
		VATRate:    decimal.RequireFromString("0.12"),
	}
}

// Evaluate prices quantity under shape
func Evaluate(s Shape, quantity decimal.Decimal) Result {
	switch v := s.(type) {
	case FlatRate:
		return NewResult(NewLine("flat", quantity, v.Rate))
	case Tiered:
		return evaluateTiered(v, quantity)
	case PercentOfBase:
		return NewResult(NewLine("percent", quantity, v.Percent))
	case Cascade:
		return EvaluateCascade(v, quantity).Result()
	case BoundedCommission:
		return NewResult(Line{
			Label:    "commission",
			Quantity: quantity,
			Rate:     v.Percent,
			Subtotal: Commission(quantity, v.FixedFee, v.Percent, v.Min, v.Max),
		})
	default:
		panic(fmt.Sprintf("tariff: unknown shape %T", s))
	}
}
