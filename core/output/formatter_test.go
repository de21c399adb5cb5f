package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"calk-kg/core/tariff"
)

func sampleReport() *Report {
	breakdown := tariff.NewResult(
		tariff.NewLine("social_fund", decimal.NewFromInt(50000), decimal.RequireFromString("0.1")),
		tariff.NewLine("income_tax", decimal.NewFromInt(45000), decimal.RequireFromString("0.1")),
	)
	r := NewReport("salary", "Зарплата", map[string]string{"net": "40500"})
	r.Total = decimal.NewFromInt(40500)
	r.TotalLabel = "На руки"
	r.Breakdown = &breakdown
	r.AddMoney("Брутто", decimal.NewFromInt(50000)).Add("Резидент ПВТ", false)
	r.Metadata.Version = "test"
	return r
}

func TestParseFormat(t *testing.T) {
	for _, s := range []string{"cli", "json"} {
		if _, err := ParseFormat(s); err != nil {
			t.Errorf("%s: unexpected error %v", s, err)
		}
	}
	if _, err := ParseFormat("html"); err == nil {
		t.Error("expected an error for html")
	}
}

func TestCLIFormatter(t *testing.T) {
	var buf bytes.Buffer
	if err := NewCLIFormatter(true).Render(&buf, sampleReport()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out := buf.String()
	for _, want := range []string{
		"━━━ Зарплата ━━━",
		"На руки: 40500.00 сом",
		"Брутто       │ 50000.00",
		"Резидент ПВТ │      нет",
		"social_fund",
		"5000.00",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in:\n%s", want, out)
		}
	}
}

func TestJSONFormatter(t *testing.T) {
	var buf bytes.Buffer
	if err := NewJSONFormatter().Render(&buf, sampleReport()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var decoded map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if decoded["calculator"] != "salary" || decoded["total"] != "40500" {
		t.Errorf("unexpected payload: %v", decoded)
	}
	breakdown := decoded["breakdown"].(map[string]interface{})
	if lines := breakdown["breakdown"].([]interface{}); len(lines) != 2 {
		t.Errorf("expected 2 lines, got %d", len(lines))
	}
}

func TestRegistry(t *testing.T) {
	r := NewRegistry(true)
	if _, ok := r.GetFormatter(FormatJSON); !ok {
		t.Error("json formatter missing")
	}
	if err := r.Register(NewJSONFormatter()); err == nil {
		t.Error("expected duplicate registration to fail")
	}
	all := r.GetAll()
	if len(all) != 2 || all[0].Format() != FormatCLI {
		t.Errorf("unexpected formatters %v", all)
	}
}
