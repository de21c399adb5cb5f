package currency

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// toBase returns the som price of one unit of code. The base currency and
// codes missing from the snapshot price at 1.
func (s *Snapshot) toBase(code Code) decimal.Decimal {
	if code == Base {
		return decimal.NewFromInt(1)
	}
	r, ok := s.rates[code]
	if !ok || r.Value.IsZero() {
		return decimal.NewFromInt(1)
	}
	return r.PerUnit()
}

// Convert routes amount through the som: amount*(rate/nominal) of from,
// divided by rate/nominal of to.
func Convert(amount decimal.Decimal, from, to Code, snap *Snapshot) decimal.Decimal {
	if from == to {
		return amount
	}
	inBase := amount
	if from != Base {
		inBase = amount.Mul(snap.toBase(from))
	}
	if to == Base {
		return inBase
	}
	return inBase.Div(snap.toBase(to))
}

// CrossRate is the price of one unit of from expressed in to
func CrossRate(from, to Code, snap *Snapshot) decimal.Decimal {
	return Convert(decimal.NewFromInt(1), from, to, snap)
}

// ApplyMarkup worsens rate by markupPercent: rate*(1 - markup/100)
func ApplyMarkup(rate, markupPercent decimal.Decimal) decimal.Decimal {
	return rate.Mul(decimal.NewFromInt(1).Sub(markupPercent.Div(hundred)))
}

// Pair is a common conversion shown on the exchange page
type Pair struct {
	From Code
	To   Code
}

// PopularPairs are the quick conversions into som
var PopularPairs = []Pair{
	{USD, KGS},
	{RUB, KGS},
	{EUR, KGS},
	{KZT, KGS},
}
