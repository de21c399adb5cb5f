package ui

import (
	"bytes"
	"strings"
	"testing"
)

func TestTableAlignsWideText(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf, true)

	table := w.NewTable("Статья", "Сумма").AlignRight(1)
	table.AddRow("Соцфонд", "5000")
	table.AddRow("Подоходный налог", "4500")
	table.Render()

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected 4 lines, got %d:\n%s", len(lines), buf.String())
	}
	if lines[2] != "Соцфонд          │  5000" {
		t.Errorf("unexpected row %q", lines[2])
	}
	if lines[3] != "Подоходный налог │  4500" {
		t.Errorf("unexpected row %q", lines[3])
	}
}

func TestNoColorOutput(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf, true)
	w.Success("done %d", 3)
	w.Debug("hidden")

	if strings.Contains(buf.String(), "\033[") {
		t.Error("expected no escape codes")
	}
	if buf.String() != "✓ done 3\n" {
		t.Errorf("unexpected output %q", buf.String())
	}
}

func TestSummary(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf, true)

	s := w.NewSummary("Зарплата")
	s.Total = "40500 сом"
	s.Notes = []string{"Ставка 10%"}
	s.Render()

	out := buf.String()
	if !strings.Contains(out, "━━━ Зарплата ━━━") || !strings.Contains(out, "Итого: 40500 сом") {
		t.Errorf("unexpected summary:\n%s", out)
	}
}

func TestSpinnerWithoutColor(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf, true)

	s := w.NewSpinner("Загрузка курсов")
	s.Start()
	s.Stop(false)

	if buf.String() != "\r✗ Загрузка курсов\n" {
		t.Errorf("unexpected output %q", buf.String())
	}
}
