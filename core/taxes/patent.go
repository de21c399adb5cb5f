package taxes

import (
	"strings"

	"github.com/shopspring/decimal"

	"calk-kg/internal/errors"
)

// PatentActivity is an activity that can be covered by a patent
type PatentActivity struct {
	ID          string          `json:"id"`
	NameKey     string          `json:"name_key"`
	MonthlyCost decimal.Decimal `json:"monthly_cost"`
}

// PatentRegion groups activity prices for a region
type PatentRegion struct {
	ID         string           `json:"id"`
	NameKey    string           `json:"name_key"`
	Activities []PatentActivity `json:"activities"`
}

// PatentResult is the cost of a patent
type PatentResult struct {
	Region      string          `json:"region"`
	Activity    string          `json:"activity"`
	MonthlyCost decimal.Decimal `json:"monthly_cost"`
	YearlyCost  decimal.Decimal `json:"yearly_cost"`
}

// FindPatentRegion returns the region by ID
func FindPatentRegion(id string) (PatentRegion, error) {
	for _, r := range DefaultPatents {
		if r.ID == id {
			return r, nil
		}
	}
	return PatentRegion{}, errors.NotFound("region", id)
}

// Patent returns the monthly and yearly cost of an activity in a region
func Patent(regionID, activityID string) (PatentResult, error) {
	region, err := FindPatentRegion(regionID)
	if err != nil {
		return PatentResult{}, err
	}
	for _, a := range region.Activities {
		if a.ID == activityID {
			return PatentResult{
				Region:      regionID,
				Activity:    activityID,
				MonthlyCost: a.MonthlyCost,
				YearlyCost:  a.MonthlyCost.Mul(decimal.NewFromInt(12)),
			}, nil
		}
	}
	return PatentResult{}, errors.NotFound("activity", activityID)
}

// SearchActivities filters a region's activities by a case-insensitive
// substring of the ID or name key. An empty query returns all.
func (r PatentRegion) SearchActivities(query string) []PatentActivity {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return r.Activities
	}
	var out []PatentActivity
	for _, a := range r.Activities {
		if strings.Contains(a.ID, q) || strings.Contains(a.NameKey, q) {
			out = append(out, a)
		}
	}
	return out
}
