package tariff

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// TierSplit is the two-band view of a progressive tariff
type TierSplit struct {
	WithinLimit     decimal.Decimal `json:"within_limit"`
	WithinLimitCost decimal.Decimal `json:"within_limit_cost"`
	BeyondLimit     decimal.Decimal `json:"beyond_limit"`
	BeyondLimitCost decimal.Decimal `json:"beyond_limit_cost"`
	Total           decimal.Decimal `json:"total"`
}

// SplitTwoTier prices quantity against a single limit. A quantity exactly
// at the limit stays entirely in the lower band.
func SplitTwoTier(quantity, limit, rate1, rate2 decimal.Decimal) TierSplit {
	within := decimal.Max(decimal.Min(quantity, limit), decimal.Zero)
	beyond := decimal.Max(decimal.Zero, quantity.Sub(limit))

	s := TierSplit{
		WithinLimit:     within,
		WithinLimitCost: within.Mul(rate1),
		BeyondLimit:     beyond,
		BeyondLimitCost: beyond.Mul(rate2),
	}
	s.Total = s.WithinLimitCost.Add(s.BeyondLimitCost)
	return s
}

// Result converts the split into a two-line breakdown
func (s TierSplit) Result(rate1, rate2 decimal.Decimal) Result {
	return NewResult(
		Line{Label: "within_limit", Quantity: s.WithinLimit, Rate: rate1, Subtotal: s.WithinLimitCost},
		Line{Label: "beyond_limit", Quantity: s.BeyondLimit, Rate: rate2, Subtotal: s.BeyondLimitCost},
	)
}

// evaluateTiered folds quantity over the bands in order. Each band is
// emitted even when empty so every result has the same shape.
func evaluateTiered(t Tiered, quantity decimal.Decimal) Result {
	lines := make([]Line, 0, len(t.Rates))
	remaining := decimal.Max(quantity, decimal.Zero)
	previousLimit := decimal.Zero

	for i, rate := range t.Rates {
		var inBand decimal.Decimal
		if i < len(t.Thresholds) {
			size := decimal.Max(t.Thresholds[i].Sub(previousLimit), decimal.Zero)
			inBand = decimal.Min(remaining, size)
			previousLimit = t.Thresholds[i]
		} else {
			// last band is unbounded
			inBand = remaining
		}
		remaining = remaining.Sub(inBand)
		lines = append(lines, NewLine(fmt.Sprintf("tier_%d", i+1), inBand, rate))
	}

	return NewResult(lines...)
}
