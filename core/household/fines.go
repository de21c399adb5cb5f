package household

import (
	"strings"

	"github.com/shopspring/decimal"

	"calk-kg/internal/errors"
)

// QuickPaymentShare is what is paid when the fine qualifies for the 70%
// discount
var QuickPaymentShare = num(0.3)

const discountPrefix = "discount_70"

// Fine is one traffic code violation
type Fine struct {
	ID       string          `json:"id"`
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
	Article  string          `json:"article"`
	NoteKey  string          `json:"note_key"`
	Keywords []string        `json:"keywords"`
}

func fine(id, category string, amount float64, article, note string, keywords ...string) Fine {
	return Fine{ID: id, Category: category, Amount: num(amount), Article: article, NoteKey: note, Keywords: keywords}
}

// Discounted reports whether quick payment reduces the fine
func (f Fine) Discounted() bool {
	return strings.HasPrefix(f.NoteKey, discountPrefix)
}

// FineResult is the amount due for a fine
type FineResult struct {
	Fine     Fine            `json:"fine"`
	Quick    bool            `json:"quick_payment"`
	ToPay    decimal.Decimal `json:"to_pay"`
	Savings  decimal.Decimal `json:"savings"`
	Discount bool            `json:"discount_applies"`
}

// Due prices the fine. Quick payment only helps discounted fines.
func (f Fine) Due(quick bool) FineResult {
	res := FineResult{Fine: f, Quick: quick, ToPay: f.Amount, Discount: f.Discounted()}
	if quick && res.Discount {
		res.ToPay = f.Amount.Mul(QuickPaymentShare)
		res.Savings = f.Amount.Sub(res.ToPay)
	}
	return res
}

// FindFine returns the fine by ID
func FindFine(fines []Fine, id string) (Fine, error) {
	for _, f := range fines {
		if f.ID == id {
			return f, nil
		}
	}
	return Fine{}, errors.NotFound("fine", id)
}

// SearchFines matches query against the ID, category and keywords,
// ignoring case. An empty category matches every category; an empty
// query matches every fine.
func SearchFines(fines []Fine, query, category string) []Fine {
	q := strings.ToLower(strings.TrimSpace(query))
	var out []Fine
	for _, f := range fines {
		if category != "" && f.Category != category {
			continue
		}
		if q == "" || f.matches(q) {
			out = append(out, f)
		}
	}
	return out
}

func (f Fine) matches(q string) bool {
	if strings.Contains(strings.ToLower(f.ID), q) || strings.Contains(strings.ToLower(f.Category), q) {
		return true
	}
	for _, k := range f.Keywords {
		if strings.Contains(strings.ToLower(k), q) {
			return true
		}
	}
	return false
}
