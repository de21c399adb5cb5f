// Package household implements everyday cost calculators: documents,
// fines, housing, weddings, tailoring and nutrition.
package household

import (
	"github.com/shopspring/decimal"

	"calk-kg/internal/errors"
)

var num = decimal.NewFromFloat

// Document is the kind of identity document issued
type Document string

const (
	IDCard   Document = "id-card"
	Passport Document = "passport"
)

// Cause is why the document is issued
type Cause string

const (
	CauseNormal Cause = "normal"
	CauseLoss   Cause = "loss"
)

// Urgency is the processing time in working days
type Urgency string

const (
	Urgency18 Urgency = "18"
	Urgency8  Urgency = "8"
	Urgency4  Urgency = "4"
	Urgency2  Urgency = "2"
)

// Urgencies lists processing options from slowest to fastest
var Urgencies = []Urgency{Urgency18, Urgency8, Urgency4, Urgency2}

type passportKey struct {
	doc   Document
	cause Cause
}

// PassportFees are state fees by document, cause and urgency, som
var PassportFees = map[passportKey]map[Urgency]decimal.Decimal{
	{IDCard, CauseNormal}:   fees(650, 1950, 2800, 3500),
	{IDCard, CauseLoss}:     fees(1150, 2450, 3300, 4000),
	{Passport, CauseNormal}: fees(950, 2500, 3800, 4500),
	{Passport, CauseLoss}:   fees(1450, 3000, 4300, 5000),
}

func fees(d18, d8, d4, d2 float64) map[Urgency]decimal.Decimal {
	return map[Urgency]decimal.Decimal{
		Urgency18: num(d18),
		Urgency8:  num(d8),
		Urgency4:  num(d4),
		Urgency2:  num(d2),
	}
}

// PassportResult is the fee for one application
type PassportResult struct {
	Document Document        `json:"document"`
	Cause    Cause           `json:"cause"`
	Urgency  Urgency         `json:"urgency"`
	DaysKey  string          `json:"days_key"`
	Cost     decimal.Decimal `json:"cost"`
}

// PassportFee looks up the fee for a document application
func PassportFee(doc Document, cause Cause, urgency Urgency) (PassportResult, error) {
	byUrgency, ok := PassportFees[passportKey{doc, cause}]
	if !ok {
		return PassportResult{}, errors.NotFound("document", string(doc)+"/"+string(cause))
	}
	cost, ok := byUrgency[urgency]
	if !ok {
		return PassportResult{}, errors.NotFound("urgency", string(urgency))
	}
	return PassportResult{
		Document: doc,
		Cause:    cause,
		Urgency:  urgency,
		DaysKey:  "passport_days_" + string(urgency),
		Cost:     cost,
	}, nil
}
