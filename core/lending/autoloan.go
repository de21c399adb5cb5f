package lending

import "sort"

// AutoLoanInput describes a car bought on credit
type AutoLoanInput struct {
	CarPrice    float64 `json:"car_price"`
	DownPayment float64 `json:"down_payment"`
	TermMonths  int     `json:"term_months"`
	AnnualRate  float64 `json:"annual_rate"`
}

// Valid rejects a down payment that covers the whole car
func (in AutoLoanInput) Valid() bool {
	return in.CarPrice > 0 &&
		in.DownPayment >= 0 && in.DownPayment < in.CarPrice &&
		in.TermMonths > 0 && in.TermMonths <= MaxTermMonths && in.AnnualRate >= 0
}

// AutoLoanResult is the cost of the car loan
type AutoLoanResult struct {
	LoanAmount     float64 `json:"loan_amount"`
	MonthlyPayment float64 `json:"monthly_payment"`
	Overpayment    float64 `json:"overpayment"`
	TotalCost      float64 `json:"total_cost"` // car price plus overpayment
}

// AutoLoan prices the loan. Invalid input reports the car price as the
// total cost and nothing else.
func AutoLoan(in AutoLoanInput) AutoLoanResult {
	if !in.Valid() {
		return AutoLoanResult{TotalCost: in.CarPrice}
	}
	loan := in.CarPrice - in.DownPayment
	payment := AnnuityPayment(loan, in.TermMonths, MonthlyRate(in.AnnualRate))
	overpayment := payment*float64(in.TermMonths) - loan
	return AutoLoanResult{
		LoanAmount:     loan,
		MonthlyPayment: payment,
		Overpayment:    overpayment,
		TotalCost:      in.CarPrice + overpayment,
	}
}

// AutoLoanOffer is a bank's car loan programme
type AutoLoanOffer struct {
	NameKey string  `json:"name_key"`
	Rate    float64 `json:"rate"`
	MaxTerm int     `json:"max_term"` // months
}

// DefaultAutoLoanOffers are typical car loan programmes
var DefaultAutoLoanOffers = []AutoLoanOffer{
	{NameKey: "bank_ayil", Rate: 17.0, MaxTerm: 60},
	{NameKey: "bank_rsk", Rate: 21.0, MaxTerm: 48},
	{NameKey: "bank_dos_kredo", Rate: 19.5, MaxTerm: 60},
	{NameKey: "bank_fkur", Rate: 18.0, MaxTerm: 48},
	{NameKey: "bank_optima", Rate: 17.5, MaxTerm: 60},
	{NameKey: "bank_bta", Rate: 20.0, MaxTerm: 36},
	{NameKey: "bank_asia", Rate: 18.5, MaxTerm: 48},
	{NameKey: "bank_econom", Rate: 22.0, MaxTerm: 36},
}

// AutoLoanOfferResult is an offer priced for the user's car
type AutoLoanOfferResult struct {
	Offer      AutoLoanOffer  `json:"offer"`
	TermMonths int            `json:"term_months"`
	Result     AutoLoanResult `json:"result"`
	Comparison Comparison     `json:"comparison"`
}

// CompareAutoLoanOffers prices each offer with the term cut to the bank's
// maximum, ranked by overpayment.
func CompareAutoLoanOffers(in AutoLoanInput, offers []AutoLoanOffer) []AutoLoanOfferResult {
	out := make([]AutoLoanOfferResult, 0, len(offers))
	for _, o := range offers {
		term := min(in.TermMonths, o.MaxTerm)
		out = append(out, AutoLoanOfferResult{
			Offer:      o,
			TermMonths: term,
			Result: AutoLoan(AutoLoanInput{
				CarPrice:    in.CarPrice,
				DownPayment: in.DownPayment,
				TermMonths:  term,
				AnnualRate:  o.Rate,
			}),
			Comparison: compareRate(o.Rate, in.AnnualRate, true),
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Result.Overpayment < out[j].Result.Overpayment
	})
	return out
}
