package tariffs

import (
	"go.uber.org/zap"

	"calk-kg/core/engine"
	"calk-kg/core/utilities"
	"calk-kg/internal/logging"
)

// Apply returns a copy of base with the overrides laid over it. New keys
// are added; base is left untouched.
func (o *Overrides) Apply(base *engine.Tables) *engine.Tables {
	t := base.Clone()
	t.Source = o.Source

	for cat, e := range o.Electricity {
		tf, ok := t.Electricity[cat]
		if !ok {
			tf.NameKey = "electricity_tariff_" + string(cat)
			tf.DescriptionKey = tf.NameKey + "_desc"
		}
		tf.Limit = e.Limit
		tf.Rate1 = e.Rates[0]
		tf.Rate2 = e.Rates[1]
		t.Electricity[cat] = tf
	}

	for cat, rate := range o.Gas {
		tf, ok := t.Gas[cat]
		if !ok {
			tf.NameKey = "gas_" + string(cat)
			tf.DescriptionKey = tf.NameKey + "_desc"
		}
		tf.Rate = rate
		t.Gas[cat] = tf
	}

	for city, rate := range o.TouristFees {
		t.TouristFees[city] = rate
	}

	for city, cats := range o.Water {
		if t.Water[city] == nil {
			t.Water[city] = make(map[utilities.WaterCategory]utilities.WaterRates)
		}
		for cat, r := range cats {
			t.Water[city][cat] = r
		}
	}

	for i, s := range t.Transfers {
		c, ok := o.Transfers[s.ID]
		if !ok {
			continue
		}
		s.FixedFee = c.FixedFee
		s.Percent = c.Percent
		s.Bounds.Min = c.Min
		s.Bounds.Max = c.Max
		t.Transfers[i] = s
	}

	logging.Debug("applied tariff overrides",
		zap.String("file", o.Source),
		zap.Int("entries", o.Count()))
	return t
}

// Load returns the built-in tables, or the tables with path applied when
// path is set.
func Load(path string) (*engine.Tables, error) {
	if path == "" {
		return engine.DefaultTables(), nil
	}
	ov, err := LoadFile(path)
	if err != nil {
		return nil, err
	}
	return ov.Apply(engine.DefaultTables()), nil
}
