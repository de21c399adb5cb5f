package engine

import (
	"bytes"
	"context"
	"encoding/json"
	"slices"

	"calk-kg/core/output"
	"calk-kg/internal/errors"
)

// Handler runs one calculator on a JSON request body
type Handler func(ctx context.Context, e *Engine, body []byte) (*output.Report, error)

// handle adapts a typed engine method to a Handler. Unknown fields are
// rejected; an empty body is the zero request.
func handle[T any](run func(*Engine, context.Context, T) (*output.Report, error)) Handler {
	return func(ctx context.Context, e *Engine, body []byte) (*output.Report, error) {
		var req T
		if len(bytes.TrimSpace(body)) > 0 {
			dec := json.NewDecoder(bytes.NewReader(body))
			dec.DisallowUnknownFields()
			if err := dec.Decode(&req); err != nil {
				return nil, errors.Wrap(errors.TypeInput, "invalid request body", err)
			}
		}
		return run(e, ctx, req)
	}
}

// handlers maps catalog slugs to calculators
var handlers = map[string]Handler{
	"electricity": handle((*Engine).Electricity),
	"gas":         handle((*Engine).Gas),
	"water":       handle((*Engine).Water),
	"heating":     handle((*Engine).Heating),

	"salary":      handle((*Engine).Salary),
	"social-fund": handle((*Engine).SocialFund),
	"pension":     handle((*Engine).Pension),

	"customs":      handle((*Engine).Customs),
	"single-tax":   handle((*Engine).SingleTax),
	"property-tax": handle((*Engine).PropertyTax),
	"taxi-tax":     handle((*Engine).TaxiTax),
	"patent":       handle((*Engine).Patent),
	"tourist-fee":  handle((*Engine).TouristFee),

	"loan":      handle((*Engine).Loan),
	"mortgage":  handle((*Engine).Mortgage),
	"deposit":   handle((*Engine).Deposit),
	"auto-loan": handle((*Engine).AutoLoan),

	"alimony":        handle((*Engine).Alimony),
	"family-benefit": handle((*Engine).FamilyBenefit),
	"zakat":          handle((*Engine).Zakat),

	"currency-exchange": handle((*Engine).Convert),
	"rates":             handle((*Engine).Rates),
	"money-transfer":    handle((*Engine).Transfer),
	"mobile-tariffs":    handle((*Engine).Mobile),

	"passport":      handle((*Engine).Passport),
	"traffic-fines": handle((*Engine).Fines),
	"housing":       handle((*Engine).Housing),
	"wedding":       handle((*Engine).Wedding),
	"sewing-cost":   handle((*Engine).Sewing),
	"calorie":       handle((*Engine).Calorie),
}

// Run decodes body for the calculator slug and runs it
func (e *Engine) Run(ctx context.Context, slug string, body []byte) (*output.Report, error) {
	h, ok := handlers[slug]
	if !ok {
		return nil, errors.NotFound("calculator", slug)
	}
	return h(ctx, e, body)
}

// Has reports whether slug has a calculator
func Has(slug string) bool {
	_, ok := handlers[slug]
	return ok
}

// Slugs lists every runnable calculator, sorted
func Slugs() []string {
	out := make([]string, 0, len(handlers))
	for slug := range handlers {
		out = append(out, slug)
	}
	slices.Sort(out)
	return out
}
