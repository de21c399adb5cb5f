package tariff

import "github.com/shopspring/decimal"

// CascadeResult holds every stage of the customs pipeline. No stage is
// rounded; rounding belongs to presentation.
type CascadeResult struct {
	Value      decimal.Decimal `json:"value"`
	CustomsFee decimal.Decimal `json:"customs_fee"`
	Duty       decimal.Decimal `json:"customs_duty"`
	Excise     decimal.Decimal `json:"excise_tax"`
	VATBase    decimal.Decimal `json:"vat_base"`
	VAT        decimal.Decimal `json:"vat"`
	Total      decimal.Decimal `json:"total"`

	shape Cascade
}

// EvaluateCascade runs fee, duty and excise on value, then VAT on the
// cumulative base.
func EvaluateCascade(c Cascade, value decimal.Decimal) CascadeResult {
	r := CascadeResult{Value: value, shape: c}
	r.CustomsFee = value.Mul(c.FeeRate)
	r.Duty = value.Mul(c.DutyRate)
	r.Excise = value.Mul(c.ExciseRate)
	r.VATBase = value.Add(r.CustomsFee).Add(r.Duty).Add(r.Excise)
	r.VAT = r.VATBase.Mul(c.VATRate)
	r.Total = r.CustomsFee.Add(r.Duty).Add(r.Excise).Add(r.VAT)
	return r
}

// Result returns the breakdown; the VAT line is priced on VATBase
func (r CascadeResult) Result() Result {
	return NewResult(
		NewLine("customs_fee", r.Value, r.shape.FeeRate),
		NewLine("customs_duty", r.Value, r.shape.DutyRate),
		NewLine("excise_tax", r.Value, r.shape.ExciseRate),
		NewLine("vat", r.VATBase, r.shape.VATRate),
	)
}
