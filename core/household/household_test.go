package household

import (
	"testing"

	"github.com/shopspring/decimal"

	"calk-kg/internal/errors"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestPassportFee(t *testing.T) {
	tests := []struct {
		doc     Document
		cause   Cause
		urgency Urgency
		cost    string
	}{
		{IDCard, CauseNormal, Urgency18, "650"},
		{IDCard, CauseLoss, Urgency2, "4000"},
		{Passport, CauseNormal, Urgency8, "2500"},
		{Passport, CauseLoss, Urgency4, "4300"},
	}

	for _, tt := range tests {
		t.Run(string(tt.doc)+"/"+string(tt.cause)+"/"+string(tt.urgency), func(t *testing.T) {
			res, err := PassportFee(tt.doc, tt.cause, tt.urgency)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !res.Cost.Equal(d(tt.cost)) {
				t.Errorf("expected %s, got %s", tt.cost, res.Cost)
			}
			if res.DaysKey != "passport_days_"+string(tt.urgency) {
				t.Errorf("unexpected days key %q", res.DaysKey)
			}
		})
	}

	if _, err := PassportFee(IDCard, CauseNormal, "1"); !errors.IsType(err, errors.TypeNotFound) {
		t.Errorf("expected NOT_FOUND for unknown urgency, got %v", err)
	}
	if _, err := PassportFee("visa", CauseNormal, Urgency18); !errors.IsType(err, errors.TypeNotFound) {
		t.Errorf("expected NOT_FOUND for unknown document, got %v", err)
	}
}

func TestFineCatalog(t *testing.T) {
	if len(DefaultFines) != 39 {
		t.Fatalf("expected 39 fines, got %d", len(DefaultFines))
	}
	seen := map[string]bool{}
	cats := map[string]bool{}
	for _, c := range FineCategories {
		cats[c] = true
	}
	for _, f := range DefaultFines {
		if seen[f.ID] {
			t.Errorf("duplicate fine %s", f.ID)
		}
		seen[f.ID] = true
		if !cats[f.Category] {
			t.Errorf("%s has unknown category %s", f.ID, f.Category)
		}
	}
}

func TestFineDue(t *testing.T) {
	tests := []struct {
		id      string
		quick   bool
		toPay   string
		savings string
	}{
		{"speed_10_20", true, "450", "1050"},
		{"speed_10_20", false, "1500", "0"},
		{"parking_prohibited", true, "750", "1750"},
		{"speed_60_plus", true, "8000", "0"},
		{"overtaking_crosswalk", true, "8000", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			f, err := FindFine(DefaultFines, tt.id)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			res := f.Due(tt.quick)
			if !res.ToPay.Equal(d(tt.toPay)) {
				t.Errorf("to pay: expected %s, got %s", tt.toPay, res.ToPay)
			}
			if !res.Savings.Equal(d(tt.savings)) {
				t.Errorf("savings: expected %s, got %s", tt.savings, res.Savings)
			}
		})
	}
}

func TestSearchFines(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		category string
		want     int
	}{
		{"keyword", "парковка", "", 3},
		{"keyword any case", "ПАРКОВКА", "", 3},
		{"category text", "ALCOHOL", "", 3},
		{"category filter only", "", "speed", 4},
		{"query within category", "скорость", "parking", 0},
		{"everything", "", "", 39},
		{"no match", "вертолет", "", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SearchFines(DefaultFines, tt.query, tt.category); len(got) != tt.want {
				t.Errorf("expected %d fines, got %d", tt.want, len(got))
			}
		})
	}
}

func TestHousing(t *testing.T) {
	res, err := Housing("bishkek", BuyApartment, d("60"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.Total.Equal(d("6300000")) || !res.HasData {
		t.Errorf("expected 6300000, got %s", res.Total)
	}

	res, _ = Housing("naryn", BuildHouse, decimal.Zero)
	if res.HasData || !res.Total.IsZero() {
		t.Errorf("zero area should have no data, got %+v", res)
	}
	if !res.PricePerMeter.Equal(d("48000")) {
		t.Errorf("expected the price to be reported, got %s", res.PricePerMeter)
	}

	if _, err := Housing("almaty", BuyHouse, d("100")); !errors.IsType(err, errors.TypeNotFound) {
		t.Errorf("expected NOT_FOUND, got %v", err)
	}
}

func TestWedding(t *testing.T) {
	res, err := Wedding(WeddingInput{
		Region: "bishkek",
		Guests: 50,
		Services: []Item{
			{ID: "photo", Enabled: true, Cost: d("20000")},
			{ID: "music", Enabled: false, Cost: d("15000")},
		},
		Expenses: []Item{{ID: "cake", Enabled: true, Cost: d("5000")}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !res.Banquet.Equal(d("90000")) {
		t.Errorf("banquet: expected 90000, got %s", res.Banquet)
	}
	if !res.Services.Equal(d("20000")) || !res.Expenses.Equal(d("5000")) {
		t.Errorf("unexpected extras: %s %s", res.Services, res.Expenses)
	}
	if !res.Total.Equal(d("115000")) {
		t.Errorf("total: expected 115000, got %s", res.Total)
	}
	if len(res.Breakdown.Lines) != 3 {
		t.Errorf("expected 3 lines, got %d", len(res.Breakdown.Lines))
	}
	if _, ok := res.Breakdown.Line("service_music"); ok {
		t.Error("disabled service should not be priced")
	}
}

func TestWeddingCustomPrice(t *testing.T) {
	res, err := Wedding(WeddingInput{Region: "unknown", Guests: 10, PricePerGuest: d("2000")})
	if err != nil {
		t.Fatalf("a custom price needs no region: %v", err)
	}
	if !res.Total.Equal(d("20000")) {
		t.Errorf("expected 20000, got %s", res.Total)
	}
	if !res.Share(res.Banquet).Equal(d("100")) {
		t.Errorf("banquet share should be 100, got %s", res.Share(res.Banquet))
	}

	if _, err := Wedding(WeddingInput{Region: "unknown", Guests: 10}); !errors.IsType(err, errors.TypeNotFound) {
		t.Errorf("expected NOT_FOUND, got %v", err)
	}
}

func TestSewingTemplates(t *testing.T) {
	res := Sewing(SewingInput{
		Materials:   MaterialTemplates,
		Accessories: AccessoryTemplates,
		WorkMinutes: d("90"),
		HourlyRate:  d("200"),
	})

	if !res.Materials.Equal(d("723")) {
		t.Errorf("materials: expected 723, got %s", res.Materials)
	}
	if !res.Accessories.Equal(d("303")) {
		t.Errorf("accessories: expected 303, got %s", res.Accessories)
	}
	if !res.Labor.Equal(d("300")) {
		t.Errorf("labor: expected 300, got %s", res.Labor)
	}
	if !res.Total.Equal(d("1326")) {
		t.Errorf("total: expected 1326, got %s", res.Total)
	}
}

func TestSewingEmpty(t *testing.T) {
	if res := Sewing(SewingInput{}); !res.Total.IsZero() {
		t.Errorf("expected zero, got %s", res.Total)
	}
}

func TestCalories(t *testing.T) {
	tests := []struct {
		name string
		in   CalorieInput
		want CalorieResult
	}{
		{
			name: "male maintain",
			in:   CalorieInput{Sex: Male, Age: 30, HeightCm: 170, WeightKg: 70, Activity: ActivityMedium, Goal: GoalMaintain},
			want: CalorieResult{BMR: 1618, Daily: 2507, Proteins: 188, Fats: 84, Carbs: 251},
		},
		{
			name: "female lose",
			in:   CalorieInput{Sex: Female, Age: 25, HeightCm: 160, WeightKg: 55, Activity: ActivityLow, Goal: GoalLose},
			want: CalorieResult{BMR: 1264, Daily: 1390, Proteins: 104, Fats: 46, Carbs: 139},
		},
		{
			name: "missing weight",
			in:   CalorieInput{Sex: Male, Age: 30, HeightCm: 170, Activity: ActivityMedium, Goal: GoalMaintain},
			want: CalorieResult{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Calories(tt.in)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("expected %+v, got %+v", tt.want, got)
			}
		})
	}

	if _, err := Calories(CalorieInput{Activity: "sofa", Goal: GoalGain}); !errors.IsType(err, errors.TypeNotFound) {
		t.Errorf("expected NOT_FOUND, got %v", err)
	}
}
