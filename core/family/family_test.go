package family

import (
	"slices"
	"testing"

	"github.com/shopspring/decimal"

	"calk-kg/internal/errors"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestAlimonyKnownIncome(t *testing.T) {
	tests := []struct {
		name     string
		children int
		rate     string
		amount   string
	}{
		{"one child", 1, "0.25", "12500"},
		{"two children", 2, "0.33", "16500"},
		{"three children", 3, "0.5", "25000"},
		{"seven children", 7, "0.5", "25000"},
		{"no children", 0, "0", "0"},
		{"too many", 11, "0", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := Alimony(AlimonyInput{Children: tt.children, Method: KnownIncome, Income: d("50000")})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !res.AppliedRate.Equal(d(tt.rate)) {
				t.Errorf("rate: expected %s, got %s", tt.rate, res.AppliedRate)
			}
			if !res.Amount.Equal(d(tt.amount)) {
				t.Errorf("amount: expected %s, got %s", tt.amount, res.Amount)
			}
		})
	}
}

func TestAlimonyRegionalAverage(t *testing.T) {
	res, err := Alimony(AlimonyInput{Children: 2, Method: RegionalAverage, Region: "bishkek"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.BaseAmount.Equal(d("32500")) || !res.Amount.Equal(d("10725")) {
		t.Errorf("unexpected result: base %s amount %s", res.BaseAmount, res.Amount)
	}

	if _, err := Alimony(AlimonyInput{Children: 1, Method: RegionalAverage, Region: "moscow"}); !errors.IsType(err, errors.TypeNotFound) {
		t.Errorf("expected NOT_FOUND, got %v", err)
	}
}

func TestFamilyBenefit(t *testing.T) {
	tests := []struct {
		name     string
		in       BenefitInput
		eligible bool
		amount   string
		reasons  []string
	}{
		{
			name:     "eligible with two children",
			in:       BenefitInput{Income: d("4000"), FamilySize: 4, ChildAges: []int{3, 15}},
			eligible: true,
			amount:   "2400",
		},
		{
			name:     "one child too old",
			in:       BenefitInput{Income: d("3000"), FamilySize: 3, ChildAges: []int{16, 5}},
			eligible: true,
			amount:   "1200",
		},
		{
			name:     "income above threshold",
			in:       BenefitInput{Income: d("9000"), FamilySize: 3, ChildAges: []int{2}},
			eligible: false,
			amount:   "0",
			reasons:  []string{ReasonIncomeExceeds},
		},
		{
			name:     "no eligible children",
			in:       BenefitInput{Income: d("9000"), FamilySize: 3, ChildAges: []int{17}},
			eligible: false,
			amount:   "0",
			reasons:  []string{ReasonIncomeExceeds, ReasonNoChildren},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := FamilyBenefit(tt.in)
			if res.Eligible != tt.eligible {
				t.Errorf("eligible: expected %v, got %v", tt.eligible, res.Eligible)
			}
			if !res.Amount.Equal(d(tt.amount)) {
				t.Errorf("amount: expected %s, got %s", tt.amount, res.Amount)
			}
			if !slices.Equal(res.Reasons, tt.reasons) {
				t.Errorf("reasons: expected %v, got %v", tt.reasons, res.Reasons)
			}
		})
	}
}

func TestZakat(t *testing.T) {
	res, err := Zakat(ZakatInput{
		Cash:        d("500000"),
		GoldSilver:  d("100000"),
		Investments: d("1000000"),
		Rental:      d("600000"),
		Liabilities: d("300000"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !res.Nisab.Equal(d("510000")) {
		t.Errorf("nisab: expected 510000, got %s", res.Nisab)
	}
	if !res.NetAssets.Equal(d("1900000")) {
		t.Errorf("net: expected 1900000, got %s", res.NetAssets)
	}
	if !res.MustPay || !res.Amount.Equal(d("47500")) {
		t.Errorf("expected 47500 due, got %v %s", res.MustPay, res.Amount)
	}
}

func TestZakatBelowNisab(t *testing.T) {
	gold := d("7000")
	res, err := Zakat(ZakatInput{GoldPrice: &gold, Cash: d("100000"), Liabilities: d("200000")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.NetAssets.IsZero() {
		t.Errorf("net assets should not go negative, got %s", res.NetAssets)
	}
	if res.MustPay || !res.Amount.IsZero() {
		t.Errorf("nothing should be due, got %+v", res)
	}
}

func TestZakatRejectsGoldPrice(t *testing.T) {
	for _, price := range []string{"0", "-6000"} {
		gold := d(price)
		if _, err := Zakat(ZakatInput{GoldPrice: &gold, Cash: d("1000000")}); !errors.IsType(err, errors.TypeInput) {
			t.Errorf("gold price %s: expected INPUT_ERROR, got %v", price, err)
		}
	}
}
