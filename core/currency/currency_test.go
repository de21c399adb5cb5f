package currency

import (
	"errors"
	"math/rand"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

var fixedNow = time.Date(2025, 3, 14, 10, 0, 0, 0, time.UTC)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestConvertThroughSom(t *testing.T) {
	snap := DefaultSnapshot(fixedNow)

	tests := []struct {
		name   string
		amount string
		from   Code
		to     Code
		want   string
	}{
		{"same currency is identity", "123.45", USD, USD, "123.45"},
		{"usd to som", "100", USD, KGS, "8725"},
		{"som to usd", "8725", KGS, USD, "100"},
		{"som to som", "500", KGS, KGS, "500"},
		{"unknown code behaves like base", "10", Code("GBP"), KGS, "10"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Convert(d(tt.amount), tt.from, tt.to, snap)
			if !got.Equal(d(tt.want)) {
				t.Errorf("expected %s, got %s", tt.want, got)
			}
		})
	}
}

func TestConvertHonoursNominal(t *testing.T) {
	snap := NewSnapshot("2025-03-14", SourceFetched, map[Code]Rate{
		KZT: {Value: d("17.9"), Nominal: 100},
	})
	got := Convert(d("1000"), KZT, KGS, snap)
	if !got.Equal(d("179")) {
		t.Errorf("expected 179, got %s", got)
	}
}

func TestConvertRoundTrip(t *testing.T) {
	snap := DefaultSnapshot(fixedNow)
	codes := append([]Code{KGS}, Tracked...)
	tolerance := d("0.0000001")

	for _, a := range codes {
		for _, b := range codes {
			x := d("1234.56")
			back := Convert(Convert(x, a, b, snap), b, a, snap)
			if back.Sub(x).Abs().GreaterThan(tolerance) {
				t.Errorf("%s->%s->%s: expected %s, got %s", a, b, a, x, back)
			}
		}
	}
}

func TestApplyMarkupNeverImprovesRate(t *testing.T) {
	base := CrossRate(USD, RUB, DefaultSnapshot(fixedNow))
	eff := ApplyMarkup(base, d("1.5"))

	if eff.GreaterThan(base) {
		t.Errorf("effective rate %s better than base %s", eff, base)
	}
	if !ApplyMarkup(d("100"), d("2")).Equal(d("98")) {
		t.Error("expected 2% markup on 100 to give 98")
	}
}

func TestSnapshotIsImmutable(t *testing.T) {
	src := map[Code]Rate{USD: {Value: d("87"), Nominal: 1}}
	snap := NewSnapshot("2025-03-14", SourceFetched, src)

	src[USD] = Rate{Value: d("1")}
	rates := snap.Rates()
	rates[EUR] = Rate{Value: d("2")}

	r, _ := snap.Rate(USD)
	if !r.Value.Equal(d("87")) {
		t.Errorf("snapshot changed through source map: %s", r.Value)
	}
	if _, ok := snap.Rate(EUR); ok {
		t.Error("snapshot changed through Rates() copy")
	}
}

func TestMergeKeepsDefaultsForMissingCodes(t *testing.T) {
	base := DefaultSnapshot(fixedNow)
	merged := Merge(base, map[Code]Rate{USD: {Value: d("88.1"), Nominal: 1}}, "13.03.2025", SourceFetched)

	usd, _ := merged.Rate(USD)
	if !usd.Value.Equal(d("88.1")) {
		t.Errorf("expected fetched USD 88.1, got %s", usd.Value)
	}
	if usd.Name != "Доллар США" {
		t.Errorf("expected default name to be kept, got %q", usd.Name)
	}
	eur, _ := merged.Rate(EUR)
	if !eur.Value.Equal(d("95.80")) {
		t.Errorf("expected default EUR 95.80, got %s", eur.Value)
	}
	if merged.Source() != SourceFetched || merged.Date() != "13.03.2025" {
		t.Errorf("unexpected source/date: %s %s", merged.Source(), merged.Date())
	}
}

func TestHistoryEndsAtCurrentRate(t *testing.T) {
	rate := d("87.25")
	points := History(rate, 30, fixedNow, rand.New(rand.NewSource(7)))

	if len(points) != 30 {
		t.Fatalf("expected 30 points, got %d", len(points))
	}
	if !points[29].Rate.Equal(rate) {
		t.Errorf("last point should equal current rate, got %s", points[29].Rate)
	}
	if !points[29].Date.Equal(fixedNow) {
		t.Errorf("last point should be today, got %s", points[29].Date)
	}

	low := rate.Mul(d("0.975")).Sub(d("0.0001"))
	high := rate.Mul(d("1.025")).Add(d("0.0001"))
	for i, p := range points {
		if p.Rate.LessThan(low) || p.Rate.GreaterThan(high) {
			t.Errorf("point %d out of band: %s", i, p.Rate)
		}
	}

	week := Window(points, 7)
	if len(week) != 7 || !week[6].Rate.Equal(rate) {
		t.Errorf("7 day window wrong: len=%d", len(week))
	}
}

func TestHistoryCapsDays(t *testing.T) {
	points := History(d("87.25"), 6000000, fixedNow, rand.New(rand.NewSource(7)))
	if len(points) != MaxHistoryDays {
		t.Fatalf("expected %d points, got %d", MaxHistoryDays, len(points))
	}
}

func TestOutcome(t *testing.T) {
	var o Outcome = Fallback{Snap: DefaultSnapshot(fixedNow), Reason: errors.New("offline")}
	if !IsFallback(o) {
		t.Error("expected fallback outcome")
	}
	if o.Snapshot().Source() != SourceFallback {
		t.Errorf("expected fallback source, got %s", o.Snapshot().Source())
	}

	o = Fetched{Snap: NewSnapshot("x", SourceFetched, nil)}
	if IsFallback(o) {
		t.Error("fetched outcome reported as fallback")
	}
}
