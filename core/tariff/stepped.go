package tariff

import (
	"sort"

	"github.com/shopspring/decimal"
)

// Bracket maps an integer key (children count, etc.) to a rate
type Bracket struct {
	Key  int
	Rate decimal.Decimal
}

// Stepped is a lookup by integer key. Keys above the highest bracket use
// the highest bracket's rate; keys below the lowest get zero.
type Stepped []Bracket

// NewStepped sorts brackets by key
func NewStepped(brackets ...Bracket) Stepped {
	s := append(Stepped(nil), brackets...)
	sort.Slice(s, func(i, j int) bool { return s[i].Key < s[j].Key })
	return s
}

// Lookup returns the rate for key
func (s Stepped) Lookup(key int) decimal.Decimal {
	if len(s) == 0 || key < s[0].Key {
		return decimal.Zero
	}
	if top := s[len(s)-1]; key > top.Key {
		key = top.Key
	}
	rate := decimal.Zero
	for _, b := range s {
		if b.Key > key {
			break
		}
		rate = b.Rate
	}
	return rate
}

// Band is a range of a continuous quantity ending at UpTo (inclusive).
// A zero UpTo marks the open-ended last band.
type Band struct {
	UpTo decimal.Decimal
	Rate decimal.Decimal
}

// LookupBand returns the rate of the first band containing v. Values past
// every bounded band fall into the last one.
func LookupBand(bands []Band, v decimal.Decimal) decimal.Decimal {
	if len(bands) == 0 {
		return decimal.Zero
	}
	for _, b := range bands {
		if b.UpTo.IsZero() || v.LessThanOrEqual(b.UpTo) {
			return b.Rate
		}
	}
	return bands[len(bands)-1].Rate
}
