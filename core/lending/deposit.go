package lending

import (
	"slices"
	"sort"
)

// InterestType selects how deposit interest is credited
type InterestType string

const (
	// Simple interest is paid once at the end of the term
	Simple InterestType = "simple"

	// Compound interest is capitalised monthly
	Compound InterestType = "compound"
)

// DepositTerms are the offered terms in months
var DepositTerms = []int{3, 6, 12, 18, 24, 36}

// DepositInput describes a term deposit
type DepositInput struct {
	Principal  float64      `json:"principal"`
	AnnualRate float64      `json:"annual_rate"`
	Months     int          `json:"months"`
	Type       InterestType `json:"type"`
}

// Growth is the balance after a month
type Growth struct {
	Month         int     `json:"month"`
	Balance       float64 `json:"balance"`
	InterestAdded float64 `json:"interest_added"`
}

// DepositResult is the deposit at maturity
type DepositResult struct {
	Principal      float64  `json:"principal"`
	InterestEarned float64  `json:"interest_earned"`
	FinalAmount    float64  `json:"final_amount"`
	MonthlyGrowth  []Growth `json:"monthly_growth"`
}

// Deposit computes the deposit at maturity. Without a positive principal,
// rate and term up to MaxTermMonths the principal is returned untouched.
func Deposit(in DepositInput) DepositResult {
	res := DepositResult{Principal: in.Principal, FinalAmount: in.Principal}
	if in.Principal <= 0 || in.AnnualRate <= 0 || in.Months <= 0 || in.Months > MaxTermMonths {
		return res
	}

	res.MonthlyGrowth = make([]Growth, 0, in.Months)
	if in.Type == Simple {
		interest := in.Principal * in.AnnualRate / 100 * float64(in.Months) / 12
		for m := 1; m <= in.Months; m++ {
			g := Growth{Month: m, Balance: in.Principal}
			if m == in.Months {
				g.Balance += interest
				g.InterestAdded = interest
			}
			res.MonthlyGrowth = append(res.MonthlyGrowth, g)
		}
		res.InterestEarned = interest
		res.FinalAmount = in.Principal + interest
		return res
	}

	rate := MonthlyRate(in.AnnualRate)
	balance := in.Principal
	for m := 1; m <= in.Months; m++ {
		interest := balance * rate
		balance += interest
		res.InterestEarned += interest
		res.MonthlyGrowth = append(res.MonthlyGrowth, Growth{Month: m, Balance: balance, InterestAdded: interest})
	}
	res.FinalAmount = balance
	return res
}

// InterestComparison is simple against compound interest for one deposit
type InterestComparison struct {
	Simple     DepositResult `json:"simple"`
	Compound   DepositResult `json:"compound"`
	Difference float64       `json:"difference"`
}

// CompareInterest prices in both ways
func CompareInterest(in DepositInput) InterestComparison {
	in.Type = Simple
	simple := Deposit(in)
	in.Type = Compound
	compound := Deposit(in)
	return InterestComparison{
		Simple:     simple,
		Compound:   compound,
		Difference: compound.InterestEarned - simple.InterestEarned,
	}
}

// DepositOffer is a bank's deposit rate range
type DepositOffer struct {
	NameKey    string   `json:"name_key"`
	MinRate    float64  `json:"min_rate"`
	MaxRate    float64  `json:"max_rate"`
	Currencies []string `json:"currencies"`
}

// DefaultDepositOffers are typical deposit programmes
var DefaultDepositOffers = []DepositOffer{
	{NameKey: "bank_bakay", MinRate: 10, MaxRate: 14, Currencies: []string{"KGS", "USD"}},
	{NameKey: "bank_mbank", MinRate: 12, MaxRate: 17, Currencies: []string{"KGS"}},
	{NameKey: "bank_ayil", MinRate: 8, MaxRate: 13, Currencies: []string{"KGS", "USD", "EUR"}},
	{NameKey: "bank_dos_kredo", MinRate: 9, MaxRate: 15, Currencies: []string{"KGS", "USD"}},
	{NameKey: "bank_fkur", MinRate: 11, MaxRate: 16, Currencies: []string{"KGS"}},
	{NameKey: "bank_optima", MinRate: 9.5, MaxRate: 14.5, Currencies: []string{"KGS", "USD"}},
	{NameKey: "bank_asia", MinRate: 8.5, MaxRate: 13.5, Currencies: []string{"KGS", "USD", "EUR"}},
	{NameKey: "bank_econom", MinRate: 10.5, MaxRate: 15.5, Currencies: []string{"KGS"}},
}

// DepositOfferResult is an offer priced at its maximum rate
type DepositOfferResult struct {
	Offer      DepositOffer  `json:"offer"`
	Result     DepositResult `json:"result"`
	Comparison Comparison    `json:"comparison"`
}

// CompareDepositOffers prices offers accepting currency with monthly
// capitalisation at their maximum rate, best final amount first.
func CompareDepositOffers(in DepositInput, currency string, offers []DepositOffer) []DepositOfferResult {
	var out []DepositOfferResult
	for _, o := range offers {
		if !slices.Contains(o.Currencies, currency) {
			continue
		}
		res := Deposit(DepositInput{Principal: in.Principal, AnnualRate: o.MaxRate, Months: in.Months, Type: Compound})
		res.MonthlyGrowth = nil
		out = append(out, DepositOfferResult{
			Offer:      o,
			Result:     res,
			Comparison: compareRate(o.MaxRate, in.AnnualRate, false),
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Result.FinalAmount > out[j].Result.FinalAmount
	})
	return out
}
