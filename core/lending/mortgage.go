package lending

import (
	"math"
	"sort"
	"time"
)

// MortgageTerms are the offered terms in years
var MortgageTerms = []int{5, 10, 15, 20, 25}

// MortgageInput describes a home purchase on credit
type MortgageInput struct {
	PropertyValue float64 `json:"property_value"`
	DownPayment   float64 `json:"down_payment"`
	TermYears     int     `json:"term_years"`
	AnnualRate    float64 `json:"annual_rate"`
}

// Valid rejects a down payment that covers the whole property
func (in MortgageInput) Valid() bool {
	return in.PropertyValue > 0 &&
		in.DownPayment >= 0 && in.DownPayment < in.PropertyValue &&
		in.TermYears > 0 && in.TermYears <= MaxMortgageYears && in.AnnualRate >= 0
}

// Payment is one row of the amortisation schedule
type Payment struct {
	Month     int       `json:"month"`
	Date      time.Time `json:"date"`
	Payment   float64   `json:"payment"`
	Principal float64   `json:"principal"`
	Interest  float64   `json:"interest"`
	Balance   float64   `json:"balance"`
}

// MortgageResult is the priced mortgage with its schedule
type MortgageResult struct {
	LoanAmount     float64   `json:"loan_amount"`
	MonthlyPayment float64   `json:"monthly_payment"`
	TotalAmount    float64   `json:"total_amount"`
	Overpayment    float64   `json:"overpayment"`
	Schedule       []Payment `json:"schedule,omitempty"`
}

// Mortgage prices the loan. Invalid input is a zero result.
func Mortgage(in MortgageInput) MortgageResult {
	if !in.Valid() {
		return MortgageResult{}
	}
	loan := in.PropertyValue - in.DownPayment
	months := in.TermYears * 12
	payment := AnnuityPayment(loan, months, MonthlyRate(in.AnnualRate))
	total := payment * float64(months)
	return MortgageResult{
		LoanAmount:     loan,
		MonthlyPayment: payment,
		TotalAmount:    total,
		Overpayment:    total - loan,
	}
}

// MortgageWithSchedule prices the loan and builds the schedule, with
// payments due on the first of each month after start.
func MortgageWithSchedule(in MortgageInput, start time.Time) MortgageResult {
	res := Mortgage(in)
	if res.LoanAmount > 0 {
		res.Schedule = Schedule(res.LoanAmount, res.MonthlyPayment, in.TermYears*12, MonthlyRate(in.AnnualRate), start)
	}
	return res
}

// Schedule splits each payment into interest on the remaining balance
// and principal. The balance never goes below zero.
func Schedule(loan, payment float64, months int, monthlyRate float64, start time.Time) []Payment {
	if loan <= 0 || payment <= 0 {
		return nil
	}
	schedule := make([]Payment, 0, months)
	balance := loan
	for m := 1; m <= months; m++ {
		interest := balance * monthlyRate
		principal := payment - interest
		balance = math.Max(0, balance-principal)
		schedule = append(schedule, Payment{
			Month:     m,
			Date:      time.Date(start.Year(), start.Month()+time.Month(m), 1, 0, 0, 0, 0, start.Location()),
			Payment:   payment,
			Principal: principal,
			Interest:  interest,
			Balance:   balance,
		})
	}
	return schedule
}

// ScheduleYear returns the payments of loan year year (1-based). Zero
// returns the whole schedule.
func ScheduleYear(schedule []Payment, year int) []Payment {
	if year <= 0 {
		return schedule
	}
	first, last := (year-1)*12+1, year*12
	var out []Payment
	for _, p := range schedule {
		if p.Month >= first && p.Month <= last {
			out = append(out, p)
		}
	}
	return out
}

// DownPaymentPercent converts an amount to a share of the property value
func DownPaymentPercent(propertyValue, amount float64) float64 {
	if propertyValue <= 0 || amount < 0 {
		return 0
	}
	return amount / propertyValue * 100
}

// DownPaymentAmount converts a percent in [0, 100] to an amount
func DownPaymentAmount(propertyValue, percent float64) float64 {
	if propertyValue <= 0 || percent < 0 || percent > 100 {
		return 0
	}
	return propertyValue * percent / 100
}

// MortgageOffer is a bank's mortgage rate range
type MortgageOffer struct {
	NameKey string  `json:"name_key"`
	MinRate float64 `json:"min_rate"`
	MaxRate float64 `json:"max_rate"`
	MaxTerm int     `json:"max_term"` // years
}

// DefaultMortgageOffers are typical mortgage programmes
var DefaultMortgageOffers = []MortgageOffer{
	{NameKey: "bank_ayil", MinRate: 14.0, MaxRate: 16.5, MaxTerm: 20},
	{NameKey: "bank_dos_kredo", MinRate: 15.5, MaxRate: 18.0, MaxTerm: 15},
	{NameKey: "bank_fkur", MinRate: 14.5, MaxRate: 17.0, MaxTerm: 20},
	{NameKey: "bank_cbk", MinRate: 15.0, MaxRate: 17.5, MaxTerm: 20},
	{NameKey: "bank_optima", MinRate: 14.0, MaxRate: 16.0, MaxTerm: 15},
	{NameKey: "bank_bta", MinRate: 16.0, MaxRate: 19.0, MaxTerm: 15},
	{NameKey: "bank_asia", MinRate: 15.0, MaxRate: 17.0, MaxTerm: 20},
	{NameKey: "bank_rsk", MinRate: 13.5, MaxRate: 16.0, MaxTerm: 25},
}

// MortgageOfferResult is an offer priced at its minimum rate
type MortgageOfferResult struct {
	Offer      MortgageOffer  `json:"offer"`
	TermYears  int            `json:"term_years"`
	Result     MortgageResult `json:"result"`
	Comparison Comparison     `json:"comparison"`
}

// CompareMortgageOffers prices each offer at its minimum rate, with the
// term cut to the bank's maximum, ranked by monthly payment.
func CompareMortgageOffers(in MortgageInput, offers []MortgageOffer) []MortgageOfferResult {
	out := make([]MortgageOfferResult, 0, len(offers))
	for _, o := range offers {
		term := min(in.TermYears, o.MaxTerm)
		out = append(out, MortgageOfferResult{
			Offer:     o,
			TermYears: term,
			Result: Mortgage(MortgageInput{
				PropertyValue: in.PropertyValue,
				DownPayment:   in.DownPayment,
				TermYears:     term,
				AnnualRate:    o.MinRate,
			}),
			Comparison: compareRate(o.MinRate, in.AnnualRate, true),
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Result.MonthlyPayment < out[j].Result.MonthlyPayment
	})
	return out
}
