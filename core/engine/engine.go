// Package engine is the calculation API. The CLI and the HTTP server are
// thin wrappers: they build a request, call the engine and format the
// report it returns.
package engine

import (
	"context"
	"maps"
	"slices"
	"time"

	"calk-kg/core/currency"
	"calk-kg/core/output"
	"calk-kg/core/taxes"
	"calk-kg/core/transfer"
	"calk-kg/core/utilities"
)

// Tables are the tariff tables the calculators run against. Tables that
// are never overridden are read from their packages directly.
type Tables struct {
	Electricity utilities.ElectricityTable
	Gas         utilities.GasTable
	Water       utilities.WaterTable
	TouristFees taxes.TouristFeeTable
	Transfers   []transfer.Service

	// Source is the override file, empty for the built-in tables
	Source string
}

// DefaultTables returns copies of the built-in tables
func DefaultTables() *Tables {
	return &Tables{
		Electricity: maps.Clone(utilities.DefaultElectricity),
		Gas:         maps.Clone(utilities.DefaultGas),
		Water:       utilities.DefaultWater.Clone(),
		TouristFees: taxes.DefaultTouristFees.Clone(),
		Transfers:   slices.Clone(transfer.DefaultServices),
	}
}

// Clone deep-copies the tables
func (t *Tables) Clone() *Tables {
	return &Tables{
		Electricity: maps.Clone(t.Electricity),
		Gas:         maps.Clone(t.Gas),
		Water:       t.Water.Clone(),
		TouristFees: t.TouristFees.Clone(),
		Transfers:   slices.Clone(t.Transfers),
		Source:      t.Source,
	}
}

// RateProvider supplies exchange rates. Fetch always resolves.
type RateProvider interface {
	Fetch(ctx context.Context) currency.Outcome
}

// FixedRates always returns the same snapshot
type FixedRates struct {
	Snap *currency.Snapshot
}

// Fetch returns the snapshot as fetched, or as a fallback when it is the
// built-in table.
func (f FixedRates) Fetch(ctx context.Context) currency.Outcome {
	if f.Snap.Source() == currency.SourceFallback {
		return currency.Fallback{Snap: f.Snap}
	}
	return currency.Fetched{Snap: f.Snap}
}

// Config configures the engine
type Config struct {
	// Version is stamped on every report
	Version string
}

// Engine runs calculators
type Engine struct {
	tables *Tables
	rates  RateProvider
	now    func() time.Time
	config Config
}

// New creates an engine. Nil tables use the built-in tables; a nil rate
// provider serves the built-in rates.
func New(tables *Tables, rates RateProvider, config Config) *Engine {
	if tables == nil {
		tables = DefaultTables()
	}
	e := &Engine{
		tables: tables,
		rates:  rates,
		now:    time.Now,
		config: config,
	}
	if e.rates == nil {
		e.rates = FixedRates{Snap: currency.DefaultSnapshot(e.now())}
	}
	return e
}

// WithClock replaces the time source used for ages, schedules and
// report timestamps.
func (e *Engine) WithClock(now func() time.Time) *Engine {
	e.now = now
	return e
}

// Tables returns the tables in use
func (e *Engine) Tables() *Tables {
	return e.tables
}

func (e *Engine) report(slug, title string, result interface{}) *output.Report {
	r := output.NewReport(slug, title, result)
	r.Metadata.Timestamp = e.now().UTC()
	r.Metadata.Version = e.config.Version
	r.Metadata.TariffFile = e.tables.Source
	return r
}

// snapshot fetches rates and records where they came from on r
func (e *Engine) snapshot(ctx context.Context, r *output.Report) *currency.Snapshot {
	out := e.rates.Fetch(ctx)
	snap := out.Snapshot()
	r.Metadata.RatesSource = snap.Source().String()

	switch o := out.(type) {
	case currency.Fallback:
		r.Warnings = append(r.Warnings, "Курсы НБКР недоступны, использованы резервные значения")
	case currency.Fetched:
		if o.Degraded {
			r.Warnings = append(r.Warnings, "Сервер курсов вернул резервные значения")
		}
	}
	return snap
}
