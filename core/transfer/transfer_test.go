package transfer

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"calk-kg/core/currency"
	"calk-kg/core/tariff"
	"calk-kg/internal/errors"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

var snap = currency.DefaultSnapshot(time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC))

func TestServiceCommission(t *testing.T) {
	wu, _ := FindService(DefaultServices, "western-union")
	korona, _ := FindService(DefaultServices, "koronapay")

	tests := []struct {
		name    string
		service Service
		amount  string
		want    string
	}{
		{"floor applies", korona, "100", "3"},
		{"percent in range", korona, "1000", "15"},
		{"ceiling applies", korona, "5000", "50"},
		{"fixed plus percent", wu, "100", "8"},
		{"combined capped", wu, "5000", "100"},
		{"fixed type", Service{CommissionType: CommissionFixed, FixedFee: d("7")}, "900", "7"},
		{"percent without bounds", Service{CommissionType: CommissionPercent, Percent: d("1")}, "250", "2.5"},
		{"only a ceiling", Service{CommissionType: CommissionPercent, Percent: d("10"), Bounds: tariff.Bounds{Max: d("20")}}, "1000", "20"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.service.Commission(d(tt.amount)); !got.Equal(d(tt.want)) {
				t.Errorf("expected %s, got %s", tt.want, got)
			}
		})
	}
}

func TestCompareRanksByReceived(t *testing.T) {
	quotes, err := Compare(Request{Amount: d("100"), From: currency.USD, To: currency.KGS}, DefaultServices, snap)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(quotes) != 3 {
		t.Fatalf("expected default selection of 3, got %d", len(quotes))
	}

	want := []struct {
		id       string
		received string
		total    string
	}{
		{"koronapay", "8594.125", "103"},
		{"golden-crown", "8567.95", "102"},
		{"contact", "8550.5", "102.5"},
	}
	for i, w := range want {
		q := quotes[i]
		if q.ServiceID != w.id {
			t.Fatalf("position %d: expected %s, got %s", i, w.id, q.ServiceID)
		}
		if !q.Received.Equal(d(w.received)) {
			t.Errorf("%s received: expected %s, got %s", w.id, w.received, q.Received)
		}
		if !q.TotalCost.Equal(d(w.total)) {
			t.Errorf("%s total cost: expected %s, got %s", w.id, w.total, q.TotalCost)
		}
		if !q.Available {
			t.Errorf("%s should accept 100", w.id)
		}
	}
}

func TestCompareTiesKeepTableOrder(t *testing.T) {
	req := Request{Amount: d("500"), From: currency.USD, To: currency.KGS, Services: []string{"unistream", "koronapay", "koronapay"}}
	quotes, err := Compare(req, DefaultServices, snap)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(quotes) != 2 {
		t.Fatalf("expected one quote per service, got %d", len(quotes))
	}
	if !quotes[0].Received.Equal(quotes[1].Received) {
		t.Fatalf("expected a tie, got %s and %s", quotes[0].Received, quotes[1].Received)
	}
	if quotes[0].ServiceID != "koronapay" || quotes[1].ServiceID != "unistream" {
		t.Errorf("expected table order on a tie, got %s, %s", quotes[0].ServiceID, quotes[1].ServiceID)
	}
}

func TestCompareFlagsLimits(t *testing.T) {
	req := Request{Amount: d("20000"), From: currency.USD, To: currency.KGS, Services: []string{"koronapay", "western-union"}}
	quotes, err := Compare(req, DefaultServices, snap)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, q := range quotes {
		switch q.ServiceID {
		case "koronapay":
			if q.Available {
				t.Error("koronapay limit is 10000")
			}
		case "western-union":
			if !q.Available {
				t.Error("western-union accepts up to 50000")
			}
		}
	}
}

func TestCompareSameCurrency(t *testing.T) {
	quotes, _ := Compare(Request{Amount: d("1000"), From: currency.KGS, To: currency.KGS, Services: []string{"migom"}}, DefaultServices, snap)
	if !quotes[0].ExchangeRate.Equal(d("0.975")) {
		t.Errorf("expected markup on a unit rate, got %s", quotes[0].ExchangeRate)
	}
}

func TestCompareErrors(t *testing.T) {
	if quotes, err := Compare(Request{Amount: decimal.Zero, From: currency.USD, To: currency.KGS}, DefaultServices, snap); err != nil || quotes != nil {
		t.Errorf("expected empty comparison for zero amount, got %v %v", quotes, err)
	}

	_, err := Compare(Request{Amount: d("10"), From: currency.USD, To: currency.KGS, Services: []string{"paypal"}}, DefaultServices, snap)
	if !errors.IsType(err, errors.TypeNotFound) {
		t.Errorf("expected NOT_FOUND, got %v", err)
	}
}
