package output

import (
	"io"

	"calk-kg/core/ui"
)

// CLIFormatter renders a report as terminal tables
type CLIFormatter struct {
	noColor bool
}

// NewCLIFormatter creates a CLI formatter
func NewCLIFormatter(noColor bool) *CLIFormatter {
	return &CLIFormatter{noColor: noColor}
}

// Format returns FormatCLI
func (f *CLIFormatter) Format() Format {
	return FormatCLI
}

// Render prints the summary box, fields, breakdown and rows
func (f *CLIFormatter) Render(w io.Writer, r *Report) error {
	out := ui.NewWriter(w, f.noColor)

	summary := out.NewSummary(r.Title)
	if r.TotalLabel != "" {
		summary.Label = r.TotalLabel
	}
	summary.Total = withUnit(Money(r.Total), r.Unit)
	summary.Alerts = r.Warnings
	summary.Render()

	if len(r.Fields) > 0 {
		out.Println("")
		t := out.NewTable("Показатель", "Значение").AlignRight(1)
		for _, fl := range r.Fields {
			t.AddRow(fl.Label, fl.Value)
		}
		t.Render()
	}

	if r.Breakdown != nil && len(r.Breakdown.Lines) > 0 {
		out.Println("")
		out.SubHeader("Расчет")
		t := out.NewTable("Статья", "Количество", "Ставка", "Сумма").AlignRight(1, 2, 3)
		for _, l := range r.Breakdown.Lines {
			t.AddRow(l.Label, l.Quantity.String(), l.Rate.String(), Money(l.Subtotal))
		}
		t.Render()
	}

	if r.Rows != nil && len(r.Rows.Values) > 0 {
		out.Println("")
		t := out.NewTable(r.Rows.Headers...).AlignRight(r.Rows.Numeric...)
		for _, row := range r.Rows.Values {
			t.AddRow(row...)
		}
		t.Render()
	}

	if r.Metadata.RatesSource != "" {
		out.Println("")
		out.Info("Курсы: %s", r.Metadata.RatesSource)
	}
	return nil
}

func withUnit(v, unit string) string {
	if unit == "" {
		return v
	}
	return v + " " + unit
}
