package tariff

import (
	"testing"

	"github.com/shopspring/decimal"

	"calk-kg/internal/errors"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func assertDecimal(t *testing.T, name string, got, want decimal.Decimal) {
	t.Helper()
	if !got.Equal(want) {
		t.Errorf("%s: expected %s, got %s", name, want, got)
	}
}

// assertConsistent checks total == sum(subtotal) and subtotal == quantity*rate
func assertConsistent(t *testing.T, r Result, commission bool) {
	t.Helper()
	sum := decimal.Zero
	for _, l := range r.Lines {
		sum = sum.Add(l.Subtotal)
		if !commission && !l.Subtotal.Equal(l.Quantity.Mul(l.Rate)) {
			t.Errorf("line %s: subtotal %s != %s * %s", l.Label, l.Subtotal, l.Quantity, l.Rate)
		}
	}
	if !sum.Equal(r.Total) {
		t.Errorf("total %s != sum of subtotals %s", r.Total, sum)
	}
}

func TestFlatRate(t *testing.T) {
	tests := []struct {
		name     string
		quantity string
		rate     string
		want     string
	}{
		{"zero quantity", "0", "14.50", "0"},
		{"residential gas", "100", "14.50", "1450"},
		{"fractional quantity", "12.5", "18.30", "228.75"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := Evaluate(FlatRate{Rate: d(tt.rate)}, d(tt.quantity))
			assertDecimal(t, "total", r.Total, d(tt.want))
			assertConsistent(t, r, false)
		})
	}
}

func TestSplitTwoTierElectricityGeneral(t *testing.T) {
	s := SplitTwoTier(d("1000"), d("700"), d("0.77"), d("2.16"))

	assertDecimal(t, "withinLimit", s.WithinLimit, d("700"))
	assertDecimal(t, "withinLimitCost", s.WithinLimitCost, d("539"))
	assertDecimal(t, "beyondLimit", s.BeyondLimit, d("300"))
	assertDecimal(t, "beyondLimitCost", s.BeyondLimitCost, d("648"))
	assertDecimal(t, "total", s.Total, d("1187"))
}

func TestSplitTwoTierProperties(t *testing.T) {
	tests := []struct {
		name     string
		quantity string
		limit    string
	}{
		{"below limit", "250", "700"},
		{"exactly at limit", "700", "700"},
		{"above limit", "3000", "700"},
		{"zero limit", "120", "0"},
		{"zero quantity", "0", "700"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, limit := d(tt.quantity), d(tt.limit)
			s := SplitTwoTier(q, limit, d("0.77"), d("2.16"))

			assertDecimal(t, "cost sum", s.WithinLimitCost.Add(s.BeyondLimitCost), s.Total)
			assertDecimal(t, "quantity sum", s.WithinLimit.Add(s.BeyondLimit), q)
		})
	}
}

func TestSplitTwoTierBoundaryStaysInLowerTier(t *testing.T) {
	s := SplitTwoTier(d("700"), d("700"), d("0.77"), d("2.16"))
	assertDecimal(t, "total", s.Total, d("700").Mul(d("0.77")))
	assertDecimal(t, "beyond", s.BeyondLimit, decimal.Zero)
}

func TestSplitTwoTierZeroLimitIsFlatAtSecondRate(t *testing.T) {
	s := SplitTwoTier(d("120"), decimal.Zero, d("0.77"), d("2.16"))
	assertDecimal(t, "total", s.Total, d("120").Mul(d("2.16")))
}

func TestTieredFoldMatchesTwoTier(t *testing.T) {
	shape := TwoTier(d("700"), d("0.77"), d("2.16"))
	r := Evaluate(shape, d("1000"))

	assertDecimal(t, "total", r.Total, d("1187"))
	assertConsistent(t, r, false)
	if len(r.Lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(r.Lines))
	}
}

func TestTieredFoldThreeBands(t *testing.T) {
	shape := Tiered{
		Thresholds: []decimal.Decimal{d("100"), d("300")},
		Rates:      []decimal.Decimal{d("1"), d("2"), d("5")},
	}

	tests := []struct {
		name     string
		quantity string
		want     string
	}{
		{"first band only", "80", "80"},
		{"at first threshold", "100", "100"},
		{"into second band", "250", "400"},
		{"into third band", "400", "1000"},
		{"negative quantity", "-5", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := Evaluate(shape, d(tt.quantity))
			assertDecimal(t, "total", r.Total, d(tt.want))
			assertConsistent(t, r, false)
			if len(r.Lines) != 3 {
				t.Errorf("expected 3 lines, got %d", len(r.Lines))
			}
		})
	}
}

func TestTieredValidate(t *testing.T) {
	tests := []struct {
		name    string
		shape   Tiered
		wantErr bool
	}{
		{"valid two tier", TwoTier(d("700"), d("0.77"), d("2.16")), false},
		{"missing top rate", Tiered{Thresholds: []decimal.Decimal{d("700")}, Rates: []decimal.Decimal{d("0.77")}}, true},
		{"not increasing", Tiered{
			Thresholds: []decimal.Decimal{d("700"), d("700")},
			Rates:      []decimal.Decimal{d("1"), d("2"), d("3")},
		}, true},
		{"flat as tiered", Tiered{Rates: []decimal.Decimal{d("1")}}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.shape.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("expected error=%v, got %v", tt.wantErr, err)
			}
			if err != nil && !errors.IsType(err, errors.TypeConfig) {
				t.Errorf("expected CONFIG_ERROR, got %v", err)
			}
		})
	}
}

func TestCascadeCustomsExample(t *testing.T) {
	r := EvaluateCascade(StandardCascade(d("0.15"), decimal.Zero), d("15000"))

	assertDecimal(t, "fee", r.CustomsFee, d("60"))
	assertDecimal(t, "duty", r.Duty, d("2250"))
	assertDecimal(t, "excise", r.Excise, decimal.Zero)
	assertDecimal(t, "vatBase", r.VATBase, d("17310"))
	assertDecimal(t, "vat", r.VAT, d("2077.2"))
	assertDecimal(t, "total", r.Total, d("4387.2"))

	br := r.Result()
	assertDecimal(t, "breakdown total", br.Total, r.Total)
	assertConsistent(t, br, false)
}

func TestCascadeVATIncludesEveryPriorCharge(t *testing.T) {
	r := EvaluateCascade(StandardCascade(d("0.2"), d("0.15")), d("9999.99"))
	want := d("0.12").Mul(r.Value.Add(r.CustomsFee).Add(r.Duty).Add(r.Excise))
	assertDecimal(t, "vat", r.VAT, want)
}

func TestCommissionBounds(t *testing.T) {
	tests := []struct {
		name   string
		amount string
		fixed  string
		pct    string
		min    string
		max    string
		want   string
	}{
		{"floor applies to zero amount", "0", "0", "1.5", "2", "50", "2"},
		{"inside bounds", "1000", "0", "1.5", "2", "50", "15"},
		{"ceiling", "10000", "0", "1.5", "2", "50", "50"},
		{"fixed plus percent", "1000", "5", "3", "5", "100", "35"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Commission(d(tt.amount), d(tt.fixed), d(tt.pct), d(tt.min), d(tt.max))
			assertDecimal(t, "commission", got, d(tt.want))
			if got.LessThan(d(tt.min)) || got.GreaterThan(d(tt.max)) {
				t.Errorf("commission %s outside [%s, %s]", got, tt.min, tt.max)
			}
		})
	}
}

func TestBoundedCommissionShape(t *testing.T) {
	shape := BoundedCommission{FixedFee: decimal.Zero, Percent: d("7"), Min: d("2"), Max: d("50")}
	r := Evaluate(shape, decimal.Zero)
	assertDecimal(t, "total", r.Total, d("2"))
	assertConsistent(t, r, true)

	if err := (BoundedCommission{Min: d("10"), Max: d("5")}).Validate(); err == nil {
		t.Error("expected min > max to be rejected")
	}
}

func TestBoundsSkipZero(t *testing.T) {
	b := Bounds{Max: d("40")}
	assertDecimal(t, "no floor", b.Clamp(d("0.5")), d("0.5"))
	assertDecimal(t, "ceiling", b.Clamp(d("45")), d("40"))
}

func TestOverage(t *testing.T) {
	assertDecimal(t, "within allowance", Overage(d("400"), d("500"), d("1")), decimal.Zero)
	assertDecimal(t, "beyond allowance", Overage(d("650"), d("500"), d("1.2")), d("180"))
	assertDecimal(t, "unlimited", Overage(d("99999"), Unlimited, d("5")), decimal.Zero)
}

func TestPercentOfBase(t *testing.T) {
	r := Evaluate(PercentOfBase{Percent: d("0.25")}, d("40000"))
	assertDecimal(t, "total", r.Total, d("10000"))
}

func TestSteppedLookupClampsToHighestBracket(t *testing.T) {
	s := NewStepped(
		Bracket{Key: 3, Rate: d("0.50")},
		Bracket{Key: 1, Rate: d("0.25")},
		Bracket{Key: 2, Rate: d("0.33")},
	)

	tests := []struct {
		key  int
		want string
	}{
		{0, "0"},
		{1, "0.25"},
		{2, "0.33"},
		{3, "0.50"},
		{5, "0.50"},
	}

	for _, tt := range tests {
		assertDecimal(t, "rate", s.Lookup(tt.key), d(tt.want))
	}
}

func TestLookupBand(t *testing.T) {
	bands := []Band{
		{UpTo: d("1000"), Rate: d("0")},
		{UpTo: d("1500"), Rate: d("0.01")},
		{UpTo: decimal.Zero, Rate: d("0.15")},
	}
	assertDecimal(t, "edge inclusive", LookupBand(bands, d("1000")), d("0"))
	assertDecimal(t, "middle", LookupBand(bands, d("1200")), d("0.01"))
	assertDecimal(t, "open ended", LookupBand(bands, d("4000")), d("0.15"))
}

func TestEvaluateUnknownShapePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for nil shape")
		}
	}()
	Evaluate(nil, decimal.Zero)
}
