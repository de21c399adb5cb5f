// Package lending computes annuity loans, mortgages, car loans and
// deposits, and compares them against bank offers.
//
// Amounts are float64: the results are estimates, converted to decimal
// and rounded to cents only when reported as money.
package lending

import (
	"math"
	"sort"

	"calk-kg/internal/errors"
)

// Longest accepted terms. Schedules and growth tables hold one row per
// month, so longer terms are rejected before anything is allocated.
const (
	MaxMortgageYears = 30
	MaxTermMonths    = 360
)

// CheckTerm rejects a term longer than limit, in unit
func CheckTerm(term, limit int, unit string) error {
	if term > limit {
		return errors.Newf(errors.TypeInput, "term of %d %s exceeds the maximum of %d", term, unit, limit)
	}
	return nil
}

// MonthlyRate converts an annual percentage into a monthly fraction
func MonthlyRate(annualPercent float64) float64 {
	return annualPercent / 12 / 100
}

// AnnuityPayment is P*r*(1+r)^n / ((1+r)^n - 1), or P/n when r is zero
func AnnuityPayment(principal float64, months int, monthlyRate float64) float64 {
	if months <= 0 {
		return 0
	}
	n := float64(months)
	if monthlyRate == 0 {
		return principal / n
	}
	growth := math.Pow(1+monthlyRate, n)
	return principal * monthlyRate * growth / (growth - 1)
}

// LoanInput describes a consumer loan
type LoanInput struct {
	Amount     float64 `json:"amount"`
	TermMonths int     `json:"term_months"`
	AnnualRate float64 `json:"annual_rate"`
}

// Valid reports whether the loan can be priced
func (in LoanInput) Valid() bool {
	return in.Amount > 0 && in.TermMonths > 0 && in.TermMonths <= MaxTermMonths && in.AnnualRate >= 0
}

// LoanResult is the cost of a loan
type LoanResult struct {
	MonthlyPayment float64 `json:"monthly_payment"`
	TotalAmount    float64 `json:"total_amount"`
	Overpayment    float64 `json:"overpayment"`
	EffectiveRate  float64 `json:"effective_rate"` // overpayment as % of amount
}

// Loan prices an annuity loan. Invalid input is a zero result.
func Loan(in LoanInput) LoanResult {
	if !in.Valid() {
		return LoanResult{}
	}
	payment := AnnuityPayment(in.Amount, in.TermMonths, MonthlyRate(in.AnnualRate))
	total := payment * float64(in.TermMonths)
	overpayment := total - in.Amount
	return LoanResult{
		MonthlyPayment: payment,
		TotalAmount:    total,
		Overpayment:    overpayment,
		EffectiveRate:  overpayment / in.Amount * 100,
	}
}

// LoanOffer is a bank's consumer loan rate
type LoanOffer struct {
	NameKey string  `json:"name_key"`
	Rate    float64 `json:"rate"`
}

// DefaultLoanOffers are typical consumer loan rates (% per year)
var DefaultLoanOffers = []LoanOffer{
	{NameKey: "bank_ayil", Rate: 17.5},
	{NameKey: "bank_dos_kredo", Rate: 22.0},
	{NameKey: "bank_fkur", Rate: 19.5},
	{NameKey: "bank_cbk", Rate: 20.0},
	{NameKey: "bank_optima", Rate: 18.5},
	{NameKey: "bank_bta", Rate: 21.0},
	{NameKey: "bank_asia", Rate: 19.0},
	{NameKey: "bank_econom", Rate: 23.0},
}

// Comparison tells how an offer's rate compares to the user's own rate
type Comparison string

const (
	Better Comparison = "better"
	Same   Comparison = "same"
	Worse  Comparison = "worse"
)

// compareRate treats a lower rate as better when lowerIsBetter
func compareRate(offer, user float64, lowerIsBetter bool) Comparison {
	switch {
	case offer == user:
		return Same
	case (offer < user) == lowerIsBetter:
		return Better
	default:
		return Worse
	}
}

// LoanOfferResult is a bank offer priced for the user's amount and term
type LoanOfferResult struct {
	Offer      LoanOffer  `json:"offer"`
	Result     LoanResult `json:"result"`
	Comparison Comparison `json:"comparison"`
}

// CompareLoanOffers prices every offer for in and ranks them by
// overpayment. Ties keep table order.
func CompareLoanOffers(in LoanInput, offers []LoanOffer) []LoanOfferResult {
	out := make([]LoanOfferResult, 0, len(offers))
	for _, o := range offers {
		out = append(out, LoanOfferResult{
			Offer:      o,
			Result:     Loan(LoanInput{Amount: in.Amount, TermMonths: in.TermMonths, AnnualRate: o.Rate}),
			Comparison: compareRate(o.Rate, in.AnnualRate, true),
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Result.Overpayment < out[j].Result.Overpayment
	})
	return out
}
