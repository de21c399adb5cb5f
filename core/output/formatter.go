// Package output provides output formatting interfaces.
// This package produces human and machine-readable calculator reports.
package output

import (
	"fmt"
	"io"
	"sort"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"calk-kg/core/tariff"
)

// Format represents output format type
type Format string

const (
	// FormatCLI is a human-readable CLI table
	FormatCLI Format = "cli"

	// FormatJSON is machine-readable JSON
	FormatJSON Format = "json"
)

// ParseFormat validates a format name
func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case FormatCLI, FormatJSON:
		return f, nil
	default:
		return "", fmt.Errorf("unknown output format %q (use cli or json)", s)
	}
}

// Formatter produces output in a specific format
type Formatter interface {
	// Format returns the format type
	Format() Format

	// Render produces output for the given report
	Render(w io.Writer, report *Report) error
}

// Report is the output of one calculator run
type Report struct {
	// Calculator is the catalog slug
	Calculator string `json:"calculator"`

	// Title is the heading shown above the result
	Title string `json:"title"`

	// Total is the headline amount
	Total decimal.Decimal `json:"total"`

	// TotalLabel names the headline amount
	TotalLabel string `json:"total_label,omitempty"`

	// Unit is appended to amounts in the CLI (сом, ккал...)
	Unit string `json:"unit,omitempty"`

	// Fields are named result values in display order
	Fields []Field `json:"fields,omitempty"`

	// Breakdown is the priced line items
	Breakdown *tariff.Result `json:"breakdown,omitempty"`

	// Rows is a comparison or schedule table
	Rows *Rows `json:"rows,omitempty"`

	// Result is the raw calculator result
	Result interface{} `json:"result"`

	// Warnings are shown below the result
	Warnings []string `json:"warnings,omitempty"`

	// Metadata contains execution context
	Metadata Metadata `json:"metadata"`
}

// Field is a named value
type Field struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Rows is a table of strings
type Rows struct {
	Headers []string   `json:"headers"`
	Values  [][]string `json:"values"`

	// Numeric marks right-aligned columns
	Numeric []int `json:"-"`
}

// Metadata contains execution context
type Metadata struct {
	// Timestamp is when the calculation ran
	Timestamp time.Time `json:"timestamp"`

	// RatesSource is the exchange-rate snapshot source, if any
	RatesSource string `json:"rates_source,omitempty"`

	// TariffFile is the applied override file, if any
	TariffFile string `json:"tariff_file,omitempty"`

	// Version is the tool version
	Version string `json:"version"`
}

// NewReport starts a report for a calculator
func NewReport(calculator, title string, result interface{}) *Report {
	return &Report{
		Calculator: calculator,
		Title:      title,
		Result:     result,
		Unit:       "сом",
		Metadata:   Metadata{Timestamp: time.Now().UTC()},
	}
}

// Add appends a field
func (r *Report) Add(label string, value interface{}) *Report {
	r.Fields = append(r.Fields, Field{Label: label, Value: formatValue(value)})
	return r
}

// AddMoney appends an amount rounded to cents
func (r *Report) AddMoney(label string, v decimal.Decimal) *Report {
	return r.Add(label, Money(v))
}

// Money formats an amount with two decimals
func Money(v decimal.Decimal) string {
	return v.StringFixed(2)
}

func formatValue(v interface{}) string {
	switch x := v.(type) {
	case decimal.Decimal:
		return x.String()
	case string:
		return x
	case bool:
		if x {
			return "да"
		}
		return "нет"
	case float64:
		return decimal.NewFromFloat(x).Round(2).String()
	default:
		return fmt.Sprint(x)
	}
}

// FormatterRegistry manages formatter registration
type FormatterRegistry interface {
	// Register adds a formatter to the registry
	Register(formatter Formatter) error

	// GetFormatter returns a formatter for a format type
	GetFormatter(format Format) (Formatter, bool)

	// GetAll returns all registered formatters
	GetAll() []Formatter
}

// Registry is the default FormatterRegistry
type Registry struct {
	mu         sync.RWMutex
	formatters map[Format]Formatter
}

// NewRegistry returns a registry with the cli and json formatters
func NewRegistry(noColor bool) *Registry {
	r := &Registry{formatters: make(map[Format]Formatter)}
	_ = r.Register(NewCLIFormatter(noColor))
	_ = r.Register(NewJSONFormatter())
	return r
}

// Register adds a formatter to the registry
func (r *Registry) Register(f Formatter) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.formatters[f.Format()]; ok {
		return fmt.Errorf("formatter %s already registered", f.Format())
	}
	r.formatters[f.Format()] = f
	return nil
}

// GetFormatter returns a formatter for a format type
func (r *Registry) GetFormatter(format Format) (Formatter, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	f, ok := r.formatters[format]
	return f, ok
}

// GetAll returns all registered formatters
func (r *Registry) GetAll() []Formatter {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Formatter, 0, len(r.formatters))
	for _, f := range r.formatters {
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Format() < out[j].Format() })
	return out
}
