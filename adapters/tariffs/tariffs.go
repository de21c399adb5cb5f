// Package tariffs loads operator-maintained HCL files that override the
// built-in tariff tables.
//
//	electricity "general" {
//	  limit = 700
//	  rates = [0.77, 2.16]
//	}
//	gas "residential" { rate = 14.50 }
//	tourist_fee "bishkek" { rate = 100 }
//	water "bishkek" "population" {
//	  water    = 8.10
//	  sewerage = 3.25
//	}
//	transfer "koronapay" {
//	  fixed_fee = 0
//	  percent   = 1.5
//	  min       = 3
//	  max       = 50
//	}
package tariffs

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/shopspring/decimal"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"

	"calk-kg/core/tariff"
	"calk-kg/core/transfer"
	"calk-kg/core/utilities"
	"calk-kg/internal/errors"
)

type fileSchema struct {
	Electricity []electricityBlock `hcl:"electricity,block"`
	Gas         []rateBlock        `hcl:"gas,block"`
	TouristFees []rateBlock        `hcl:"tourist_fee,block"`
	Water       []waterBlock       `hcl:"water,block"`
	Transfers   []transferBlock    `hcl:"transfer,block"`
}

type electricityBlock struct {
	Category string         `hcl:"category,label"`
	Limit    hcl.Expression `hcl:"limit"`
	Rates    hcl.Expression `hcl:"rates"`
}

type rateBlock struct {
	Key  string         `hcl:"key,label"`
	Rate hcl.Expression `hcl:"rate"`
}

type waterBlock struct {
	City     string         `hcl:"city,label"`
	Category string         `hcl:"category,label"`
	Water    hcl.Expression `hcl:"water"`
	Sewerage hcl.Expression `hcl:"sewerage"`
}

type transferBlock struct {
	Service  string         `hcl:"service,label"`
	FixedFee hcl.Expression `hcl:"fixed_fee"`
	Percent  hcl.Expression `hcl:"percent"`
	Min      hcl.Expression `hcl:"min"`
	Max      hcl.Expression `hcl:"max"`
}

// ElectricityOverride replaces a two-tier electricity tariff
type ElectricityOverride struct {
	Limit decimal.Decimal   `json:"limit"`
	Rates []decimal.Decimal `json:"rates"`
}

// Tiered returns the override as a tiered shape
func (e ElectricityOverride) Tiered() tariff.Tiered {
	return tariff.Tiered{Thresholds: []decimal.Decimal{e.Limit}, Rates: e.Rates}
}

// Overrides is a parsed tariff file
type Overrides struct {
	Source      string                                                      `json:"source"`
	Electricity map[utilities.ConsumerCategory]ElectricityOverride          `json:"electricity,omitempty"`
	Gas         map[utilities.GasCategory]decimal.Decimal                   `json:"gas,omitempty"`
	TouristFees map[string]decimal.Decimal                                  `json:"tourist_fees,omitempty"`
	Water       map[string]map[utilities.WaterCategory]utilities.WaterRates `json:"water,omitempty"`
	Transfers   map[string]tariff.BoundedCommission                         `json:"transfers,omitempty"`
}

// Count returns the number of overridden entries
func (o *Overrides) Count() int {
	n := len(o.Electricity) + len(o.Gas) + len(o.TouristFees) + len(o.Transfers)
	for _, cats := range o.Water {
		n += len(cats)
	}
	return n
}

// LoadFile reads, parses and validates path
func LoadFile(path string) (*Overrides, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NotFound("tariff file", path)
		}
		return nil, errors.Wrapf(errors.TypeConfig, err, "read tariff file %s", path)
	}
	return Parse(src, path)
}

// Parse decodes an HCL tariff file. Syntax and type problems are
// PARSING_ERROR with the HCL diagnostics as the cause; table problems
// are CONFIG_ERROR.
func Parse(src []byte, filename string) (*Overrides, error) {
	file, diags := hclparse.NewParser().ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, diagError(filename, diags)
	}

	var raw fileSchema
	if diags := gohcl.DecodeBody(file.Body, nil, &raw); diags.HasErrors() {
		return nil, diagError(filename, diags)
	}

	ov, diags := build(&raw)
	if diags.HasErrors() {
		return nil, diagError(filename, diags)
	}
	ov.Source = filename

	if err := ov.Validate(); err != nil {
		if e, ok := errors.As(err); ok {
			e.WithContext("file", filename)
		}
		return nil, err
	}
	return ov, nil
}

func build(raw *fileSchema) (*Overrides, hcl.Diagnostics) {
	ov := &Overrides{
		Electricity: make(map[utilities.ConsumerCategory]ElectricityOverride),
		Gas:         make(map[utilities.GasCategory]decimal.Decimal),
		TouristFees: make(map[string]decimal.Decimal),
		Water:       make(map[string]map[utilities.WaterCategory]utilities.WaterRates),
		Transfers:   make(map[string]tariff.BoundedCommission),
	}
	var diags hcl.Diagnostics

	for _, b := range raw.Electricity {
		cat := utilities.ConsumerCategory(b.Category)
		if _, dup := ov.Electricity[cat]; dup {
			diags = append(diags, duplicate(b.Limit, "electricity", b.Category))
			continue
		}
		limit, d := number(b.Limit)
		diags = append(diags, d...)
		rates, d := numbers(b.Rates)
		diags = append(diags, d...)
		ov.Electricity[cat] = ElectricityOverride{Limit: limit, Rates: rates}
	}

	for _, b := range raw.Gas {
		cat := utilities.GasCategory(b.Key)
		if _, dup := ov.Gas[cat]; dup {
			diags = append(diags, duplicate(b.Rate, "gas", b.Key))
			continue
		}
		rate, d := number(b.Rate)
		diags = append(diags, d...)
		ov.Gas[cat] = rate
	}

	for _, b := range raw.TouristFees {
		if _, dup := ov.TouristFees[b.Key]; dup {
			diags = append(diags, duplicate(b.Rate, "tourist_fee", b.Key))
			continue
		}
		rate, d := number(b.Rate)
		diags = append(diags, d...)
		ov.TouristFees[b.Key] = rate
	}

	for _, b := range raw.Water {
		cats, ok := ov.Water[b.City]
		if !ok {
			cats = make(map[utilities.WaterCategory]utilities.WaterRates)
			ov.Water[b.City] = cats
		}
		cat := utilities.WaterCategory(b.Category)
		if _, dup := cats[cat]; dup {
			diags = append(diags, duplicate(b.Water, "water", b.City+"/"+b.Category))
			continue
		}
		water, d := number(b.Water)
		diags = append(diags, d...)
		sewerage, d := number(b.Sewerage)
		diags = append(diags, d...)
		cats[cat] = utilities.WaterRates{Water: water, Sewerage: sewerage}
	}

	for _, b := range raw.Transfers {
		if _, dup := ov.Transfers[b.Service]; dup {
			diags = append(diags, duplicate(b.Percent, "transfer", b.Service))
			continue
		}
		var c tariff.BoundedCommission
		var d hcl.Diagnostics
		c.FixedFee, d = number(b.FixedFee)
		diags = append(diags, d...)
		c.Percent, d = number(b.Percent)
		diags = append(diags, d...)
		c.Min, d = number(b.Min)
		diags = append(diags, d...)
		c.Max, d = number(b.Max)
		diags = append(diags, d...)
		ov.Transfers[b.Service] = c
	}

	return ov, diags
}

// Validate checks the tables the calculators rely on but never verify
// at evaluation time.
func (o *Overrides) Validate() error {
	for cat, e := range o.Electricity {
		if err := e.Tiered().Validate(); err != nil {
			return wrapKey(err, "electricity", string(cat))
		}
		for _, r := range e.Rates {
			if r.IsNegative() {
				return errors.Newf(errors.TypeConfig, "electricity %s: negative rate %s", cat, r)
			}
		}
	}
	for cat, r := range o.Gas {
		if r.IsNegative() {
			return errors.Newf(errors.TypeConfig, "gas %s: negative rate %s", cat, r)
		}
	}
	for city, r := range o.TouristFees {
		if r.IsNegative() {
			return errors.Newf(errors.TypeConfig, "tourist_fee %s: negative rate %s", city, r)
		}
	}
	for city, cats := range o.Water {
		for cat, r := range cats {
			if r.Water.IsNegative() || r.Sewerage.IsNegative() {
				return errors.Newf(errors.TypeConfig, "water %s/%s: negative rate", city, cat)
			}
		}
	}
	for id, c := range o.Transfers {
		if _, err := transfer.FindService(transfer.DefaultServices, id); err != nil {
			return err
		}
		if err := c.Validate(); err != nil {
			return wrapKey(err, "transfer", id)
		}
	}
	return nil
}

func wrapKey(err error, block, key string) error {
	if e, ok := errors.As(err); ok {
		return errors.Newf(e.Type, "%s %s: %s", block, key, e.Message).WithContext(block, key)
	}
	return err
}

func number(expr hcl.Expression) (decimal.Decimal, hcl.Diagnostics) {
	val, diags := expr.Value(nil)
	if diags.HasErrors() {
		return decimal.Zero, diags
	}
	val, err := convert.Convert(val, cty.Number)
	if err != nil || val.IsNull() || !val.IsKnown() {
		return decimal.Zero, invalid(expr, "Number required", "This attribute must be a number.")
	}
	return toDecimal(expr, val)
}

func numbers(expr hcl.Expression) ([]decimal.Decimal, hcl.Diagnostics) {
	val, diags := expr.Value(nil)
	if diags.HasErrors() {
		return nil, diags
	}
	val, err := convert.Convert(val, cty.List(cty.Number))
	if err != nil || val.IsNull() || !val.IsWhollyKnown() {
		return nil, invalid(expr, "List of numbers required", "This attribute must be a list of numbers.")
	}

	out := make([]decimal.Decimal, 0, val.LengthInt())
	for _, v := range val.AsValueSlice() {
		if v.IsNull() {
			return nil, invalid(expr, "List of numbers required", "The list contains a null element.")
		}
		d, diags := toDecimal(expr, v)
		if diags.HasErrors() {
			return nil, diags
		}
		out = append(out, d)
	}
	return out, nil
}

func toDecimal(expr hcl.Expression, val cty.Value) (decimal.Decimal, hcl.Diagnostics) {
	d, err := decimal.NewFromString(val.AsBigFloat().Text('f', -1))
	if err != nil {
		return decimal.Zero, invalid(expr, "Invalid number", err.Error())
	}
	return d, nil
}

func invalid(expr hcl.Expression, summary, detail string) hcl.Diagnostics {
	rng := expr.Range()
	return hcl.Diagnostics{{
		Severity: hcl.DiagError,
		Summary:  summary,
		Detail:   detail,
		Subject:  &rng,
	}}
}

func duplicate(expr hcl.Expression, block, key string) *hcl.Diagnostic {
	rng := expr.Range()
	return &hcl.Diagnostic{
		Severity: hcl.DiagError,
		Summary:  "Duplicate block",
		Detail:   fmt.Sprintf("A %s block for %q was already defined.", block, key),
		Subject:  &rng,
	}
}

// Diagnostic is one problem found in a tariff file
type Diagnostic struct {
	File    string `json:"file"`
	Line    int    `json:"line"`
	Column  int    `json:"column"`
	Summary string `json:"summary"`
	Detail  string `json:"detail,omitempty"`
}

func (d Diagnostic) String() string {
	s := fmt.Sprintf("%s:%d:%d: %s", d.File, d.Line, d.Column, d.Summary)
	if d.Detail != "" {
		s += "; " + d.Detail
	}
	return s
}

func diagError(filename string, diags hcl.Diagnostics) error {
	return errors.Parsing("invalid tariff file", diags).
		WithContext("file", filename).
		WithContext("diagnostics", len(diags.Errs()))
}

// Diagnostics extracts the HCL diagnostics behind a PARSING_ERROR
func Diagnostics(err error) []Diagnostic {
	e, ok := errors.As(err)
	if !ok {
		return nil
	}
	diags, ok := e.Cause.(hcl.Diagnostics)
	if !ok {
		return nil
	}

	out := make([]Diagnostic, 0, len(diags))
	for _, d := range diags {
		if d.Severity != hcl.DiagError {
			continue
		}
		diag := Diagnostic{Summary: d.Summary, Detail: d.Detail}
		if d.Subject != nil {
			diag.File = d.Subject.Filename
			diag.Line = d.Subject.Start.Line
			diag.Column = d.Subject.Start.Column
		}
		out = append(out, diag)
	}
	return out
}
