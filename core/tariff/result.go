// Package tariff - Shared pricing shapes and their evaluators.
// Every calculator reduces to one of these shapes plus a table lookup.
package tariff

import "github.com/shopspring/decimal"

// Line is one row of a result breakdown
type Line struct {
	// Label is a stable key for the row (i18n key or band name)
	Label string `json:"label"`

	// Quantity is the priced amount (kWh, m3, som, cc...)
	Quantity decimal.Decimal `json:"quantity"`

	// Rate is the unit rate applied to Quantity
	Rate decimal.Decimal `json:"rate"`

	// Subtotal is Quantity * Rate, or the clamped commission
	Subtotal decimal.Decimal `json:"subtotal"`
}

// NewLine builds a line whose subtotal is quantity * rate
func NewLine(label string, quantity, rate decimal.Decimal) Line {
	return Line{
		Label:    label,
		Quantity: quantity,
		Rate:     rate,
		Subtotal: quantity.Mul(rate),
	}
}

// Result is a priced breakdown. Total is always the sum of line subtotals.
type Result struct {
	Lines []Line          `json:"breakdown"`
	Total decimal.Decimal `json:"total"`
}

// NewResult sums the given lines into a result
func NewResult(lines ...Line) Result {
	r := Result{Lines: make([]Line, 0, len(lines))}
	for _, l := range lines {
		r.Add(l)
	}
	return r
}

// Add appends a line and updates the total
func (r *Result) Add(l Line) {
	r.Lines = append(r.Lines, l)
	r.Total = r.Total.Add(l.Subtotal)
}

// Merge appends all lines of other
func (r *Result) Merge(other Result) {
	for _, l := range other.Lines {
		r.Add(l)
	}
}

// Line returns the line with the given label
func (r Result) Line(label string) (Line, bool) {
	for _, l := range r.Lines {
		if l.Label == label {
			return l, true
		}
	}
	return Line{}, false
}

// IsZero reports whether nothing was charged
func (r Result) IsZero() bool {
	return r.Total.IsZero()
}
