package lending

import (
	"math"
	"testing"
	"time"

	"calk-kg/internal/errors"
)

func approx(t *testing.T, name string, got, want, tol float64) {
	t.Helper()
	if math.Abs(got-want) > tol {
		t.Errorf("%s: expected %.4f, got %.4f", name, want, got)
	}
}

func TestAnnuityPayment(t *testing.T) {
	tests := []struct {
		name      string
		principal float64
		months    int
		rate      float64
		want      float64
	}{
		{"twelve percent year", 1000000, 12, 0.01, 88848.7887},
		{"eighteen percent three years", 1000000, 36, MonthlyRate(18), 36152.3955},
		{"zero rate", 120000, 12, 0, 10000},
		{"no months", 1000, 0, 0.01, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			approx(t, "payment", AnnuityPayment(tt.principal, tt.months, tt.rate), tt.want, 1e-3)
		})
	}
}

func TestLoan(t *testing.T) {
	res := Loan(LoanInput{Amount: 1000000, TermMonths: 12, AnnualRate: 12})
	approx(t, "payment", res.MonthlyPayment, 88848.7887, 1e-3)
	approx(t, "overpayment", res.Overpayment, 66185.4641, 1e-3)
	approx(t, "effective", res.EffectiveRate, 6.61854641, 1e-6)
	approx(t, "total", res.TotalAmount, res.MonthlyPayment*12, 1e-6)

	for _, in := range []LoanInput{
		{Amount: 0, TermMonths: 12, AnnualRate: 10},
		{Amount: 1000, TermMonths: 0, AnnualRate: 10},
		{Amount: 1000, TermMonths: 12, AnnualRate: -1},
	} {
		if res := Loan(in); res != (LoanResult{}) {
			t.Errorf("expected zero result for %+v, got %+v", in, res)
		}
	}
}

func TestCompareLoanOffersRanksByOverpayment(t *testing.T) {
	results := CompareLoanOffers(LoanInput{Amount: 500000, TermMonths: 24, AnnualRate: 20}, DefaultLoanOffers)
	if len(results) != len(DefaultLoanOffers) {
		t.Fatalf("expected %d offers, got %d", len(DefaultLoanOffers), len(results))
	}
	if results[0].Offer.NameKey != "bank_ayil" {
		t.Errorf("expected cheapest offer bank_ayil, got %s", results[0].Offer.NameKey)
	}
	if results[len(results)-1].Offer.NameKey != "bank_econom" {
		t.Errorf("expected most expensive offer bank_econom, got %s", results[len(results)-1].Offer.NameKey)
	}
	for _, r := range results {
		if r.Offer.NameKey == "bank_cbk" && r.Comparison != Same {
			t.Errorf("bank_cbk at 20%% should compare as same, got %s", r.Comparison)
		}
		if r.Offer.NameKey == "bank_ayil" && r.Comparison != Better {
			t.Errorf("bank_ayil should compare as better, got %s", r.Comparison)
		}
	}
}

func TestMortgageValidation(t *testing.T) {
	tests := []struct {
		name string
		in   MortgageInput
	}{
		{"no property", MortgageInput{PropertyValue: 0, TermYears: 10, AnnualRate: 15}},
		{"down payment covers property", MortgageInput{PropertyValue: 100, DownPayment: 100, TermYears: 10, AnnualRate: 15}},
		{"negative down payment", MortgageInput{PropertyValue: 100, DownPayment: -1, TermYears: 10, AnnualRate: 15}},
		{"no term", MortgageInput{PropertyValue: 100, TermYears: 0, AnnualRate: 15}},
		{"negative rate", MortgageInput{PropertyValue: 100, TermYears: 10, AnnualRate: -0.5}},
		{"term too long", MortgageInput{PropertyValue: 1000, TermYears: 500000, AnnualRate: 10}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := MortgageWithSchedule(tt.in, time.Now())
			if res.LoanAmount != 0 || res.MonthlyPayment != 0 || res.Schedule != nil {
				t.Errorf("expected zero result, got %+v", res)
			}
		})
	}
}

func TestMortgageSchedule(t *testing.T) {
	start := time.Date(2025, 11, 20, 0, 0, 0, 0, time.UTC)
	in := MortgageInput{PropertyValue: 5000000, DownPayment: 1000000, TermYears: 15, AnnualRate: 14}
	res := MortgageWithSchedule(in, start)

	if res.LoanAmount != 4000000 {
		t.Fatalf("expected loan 4000000, got %f", res.LoanAmount)
	}
	if len(res.Schedule) != 180 {
		t.Fatalf("expected 180 payments, got %d", len(res.Schedule))
	}

	first := res.Schedule[0]
	if !first.Date.Equal(time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("first payment due %s, expected 2025-12-01", first.Date)
	}
	if second := res.Schedule[1]; !second.Date.Equal(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("second payment due %s, expected 2026-01-01", second.Date)
	}
	approx(t, "first interest", first.Interest, 4000000*MonthlyRate(14), 1e-6)
	approx(t, "first split", first.Principal+first.Interest, res.MonthlyPayment, 1e-6)
	approx(t, "final balance", res.Schedule[179].Balance, 0, 1e-3)

	var principal float64
	for _, p := range res.Schedule {
		if p.Balance < 0 {
			t.Fatalf("negative balance in month %d", p.Month)
		}
		principal += p.Principal
	}
	approx(t, "principal repaid", principal, res.LoanAmount, 1e-3)
}

func TestScheduleYear(t *testing.T) {
	res := MortgageWithSchedule(MortgageInput{PropertyValue: 200000, TermYears: 3, AnnualRate: 10}, time.Now())

	year2 := ScheduleYear(res.Schedule, 2)
	if len(year2) != 12 || year2[0].Month != 13 || year2[11].Month != 24 {
		t.Errorf("unexpected year 2 window: %d entries", len(year2))
	}
	if all := ScheduleYear(res.Schedule, 0); len(all) != 36 {
		t.Errorf("expected full schedule, got %d", len(all))
	}
	if none := ScheduleYear(res.Schedule, 4); len(none) != 0 {
		t.Errorf("expected empty year 4, got %d", len(none))
	}
}

func TestDownPaymentConversions(t *testing.T) {
	approx(t, "percent", DownPaymentPercent(5000000, 1000000), 20, 1e-9)
	approx(t, "amount", DownPaymentAmount(5000000, 30), 1500000, 1e-9)
	approx(t, "over 100", DownPaymentAmount(5000000, 120), 0, 0)
	approx(t, "no property", DownPaymentPercent(0, 100), 0, 0)
}

func TestCompareMortgageOffersCapsTerm(t *testing.T) {
	in := MortgageInput{PropertyValue: 5000000, DownPayment: 1000000, TermYears: 25, AnnualRate: 15}
	for _, r := range CompareMortgageOffers(in, DefaultMortgageOffers) {
		if r.TermYears > r.Offer.MaxTerm {
			t.Errorf("%s: term %d exceeds max %d", r.Offer.NameKey, r.TermYears, r.Offer.MaxTerm)
		}
	}
}

func TestDepositSimple(t *testing.T) {
	res := Deposit(DepositInput{Principal: 100000, AnnualRate: 12, Months: 6, Type: Simple})
	approx(t, "interest", res.InterestEarned, 6000, 1e-9)
	approx(t, "final", res.FinalAmount, 106000, 1e-9)
	if len(res.MonthlyGrowth) != 6 {
		t.Fatalf("expected 6 months of growth, got %d", len(res.MonthlyGrowth))
	}
	approx(t, "month 5 balance", res.MonthlyGrowth[4].Balance, 100000, 0)
	approx(t, "month 6 interest", res.MonthlyGrowth[5].InterestAdded, 6000, 1e-9)
}

func TestDepositCompound(t *testing.T) {
	res := Deposit(DepositInput{Principal: 100000, AnnualRate: 12, Months: 12, Type: Compound})
	approx(t, "final", res.FinalAmount, 112682.5030, 1e-3)
	approx(t, "interest", res.InterestEarned, res.FinalAmount-100000, 1e-6)
}

func TestDepositInvalidKeepsPrincipal(t *testing.T) {
	res := Deposit(DepositInput{Principal: 5000, AnnualRate: 0, Months: 12, Type: Compound})
	approx(t, "final", res.FinalAmount, 5000, 0)
	if res.MonthlyGrowth != nil {
		t.Error("expected no growth table")
	}
}

func TestDepositTermTooLong(t *testing.T) {
	res := Deposit(DepositInput{Principal: 1000, AnnualRate: 10, Months: 6000000, Type: Compound})
	approx(t, "final", res.FinalAmount, 1000, 0)
	if res.MonthlyGrowth != nil {
		t.Errorf("expected no growth table, got %d rows", len(res.MonthlyGrowth))
	}
}

func TestCheckTerm(t *testing.T) {
	tests := []struct {
		name    string
		term    int
		max     int
		wantErr bool
	}{
		{"longest mortgage", MaxMortgageYears, MaxMortgageYears, false},
		{"mortgage over the limit", 500000, MaxMortgageYears, true},
		{"longest loan", MaxTermMonths, MaxTermMonths, false},
		{"loan over the limit", MaxTermMonths + 1, MaxTermMonths, true},
		{"zero term", 0, MaxTermMonths, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckTerm(tt.term, tt.max, "months")
			if tt.wantErr && !errors.IsType(err, errors.TypeInput) {
				t.Errorf("expected INPUT_ERROR, got %v", err)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}

	if Loan(LoanInput{Amount: 1000, TermMonths: MaxTermMonths + 1, AnnualRate: 10}) != (LoanResult{}) {
		t.Error("expected zero loan result over the term limit")
	}
	if res := AutoLoan(AutoLoanInput{CarPrice: 1000, TermMonths: MaxTermMonths + 1, AnnualRate: 10}); res.MonthlyPayment != 0 {
		t.Errorf("expected no payment over the term limit, got %f", res.MonthlyPayment)
	}
}

func TestCompareInterest(t *testing.T) {
	cmp := CompareInterest(DepositInput{Principal: 100000, AnnualRate: 12, Months: 12})
	approx(t, "difference", cmp.Difference, 682.5030, 1e-3)
}

func TestCompareDepositOffersFiltersCurrency(t *testing.T) {
	results := CompareDepositOffers(DepositInput{Principal: 1000, AnnualRate: 10, Months: 12}, "EUR", DefaultDepositOffers)
	if len(results) != 2 {
		t.Fatalf("expected 2 EUR offers, got %d", len(results))
	}
	if results[0].Offer.NameKey != "bank_asia" || results[1].Offer.NameKey != "bank_ayil" {
		t.Errorf("unexpected order: %s, %s", results[0].Offer.NameKey, results[1].Offer.NameKey)
	}
	if results[0].Comparison != Better {
		t.Errorf("a higher deposit rate should compare as better, got %s", results[0].Comparison)
	}
}

func TestAutoLoan(t *testing.T) {
	res := AutoLoan(AutoLoanInput{CarPrice: 1200000, DownPayment: 200000, TermMonths: 12, AnnualRate: 12})
	approx(t, "loan", res.LoanAmount, 1000000, 0)
	approx(t, "payment", res.MonthlyPayment, 88848.7887, 1e-3)
	approx(t, "total cost", res.TotalCost, 1200000+66185.4641, 1e-3)

	invalid := AutoLoan(AutoLoanInput{CarPrice: 900000, DownPayment: 900000, TermMonths: 12, AnnualRate: 12})
	if invalid.TotalCost != 900000 || invalid.MonthlyPayment != 0 {
		t.Errorf("expected only the car price, got %+v", invalid)
	}
}

func TestCompareAutoLoanOffers(t *testing.T) {
	in := AutoLoanInput{CarPrice: 1500000, DownPayment: 300000, TermMonths: 60, AnnualRate: 19}
	results := CompareAutoLoanOffers(in, DefaultAutoLoanOffers)
	for i := 1; i < len(results); i++ {
		if results[i].Result.Overpayment < results[i-1].Result.Overpayment {
			t.Fatal("offers are not sorted by overpayment")
		}
	}
	for _, r := range results {
		if r.Offer.NameKey == "bank_bta" && r.TermMonths != 36 {
			t.Errorf("bank_bta term should be capped at 36, got %d", r.TermMonths)
		}
	}
}
