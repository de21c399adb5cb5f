package household

import (
	"github.com/shopspring/decimal"

	"calk-kg/core/tariff"
)

// Material is fabric bought by the meter
type Material struct {
	NameKey       string          `json:"name_key"`
	Consumption   decimal.Decimal `json:"consumption"` // meters
	PricePerMeter decimal.Decimal `json:"price_per_meter"`
}

// Accessory is bought by the piece
type Accessory struct {
	NameKey       string          `json:"name_key"`
	Quantity      decimal.Decimal `json:"quantity"`
	PricePerPiece decimal.Decimal `json:"price_per_piece"`
}

// Templates offered when adding materials and accessories
var (
	MaterialTemplates = []Material{
		{NameKey: "sewing_mat_main_fabric", Consumption: num(1.5), PricePerMeter: num(350)},
		{NameKey: "sewing_mat_lining", Consumption: num(0.8), PricePerMeter: num(180)},
		{NameKey: "sewing_mat_interlining", Consumption: num(0.3), PricePerMeter: num(120)},
		{NameKey: "sewing_mat_fleece", Consumption: num(0.2), PricePerMeter: num(90)},
	}
	AccessoryTemplates = []Accessory{
		{NameKey: "sewing_acc_buttons", Quantity: num(8), PricePerPiece: num(15)},
		{NameKey: "sewing_acc_zipper", Quantity: num(1), PricePerPiece: num(85)},
		{NameKey: "sewing_acc_thread", Quantity: num(2), PricePerPiece: num(45)},
		{NameKey: "sewing_acc_label", Quantity: num(1), PricePerPiece: num(8)},
	}
)

// SewingInput is a garment to price
type SewingInput struct {
	Materials   []Material      `json:"materials"`
	Accessories []Accessory     `json:"accessories"`
	WorkMinutes decimal.Decimal `json:"work_minutes"`
	HourlyRate  decimal.Decimal `json:"hourly_rate"`
}

// SewingResult is the cost price of a garment
type SewingResult struct {
	Materials   decimal.Decimal `json:"materials"`
	Accessories decimal.Decimal `json:"accessories"`
	Labor       decimal.Decimal `json:"labor"`
	Total       decimal.Decimal `json:"total"`
	Breakdown   tariff.Result   `json:"breakdown"`
}

var minutesPerHour = decimal.NewFromInt(60)

// Sewing sums materials, accessories and labor
func Sewing(in SewingInput) SewingResult {
	var res SewingResult
	res.Breakdown = tariff.NewResult()

	for _, m := range in.Materials {
		l := tariff.NewLine(m.NameKey, m.Consumption, m.PricePerMeter)
		res.Breakdown.Add(l)
		res.Materials = res.Materials.Add(l.Subtotal)
	}
	for _, a := range in.Accessories {
		l := tariff.NewLine(a.NameKey, a.Quantity, a.PricePerPiece)
		res.Breakdown.Add(l)
		res.Accessories = res.Accessories.Add(l.Subtotal)
	}

	if in.WorkMinutes.IsPositive() && in.HourlyRate.IsPositive() {
		hours := in.WorkMinutes.Div(minutesPerHour)
		l := tariff.NewLine("labor", hours, in.HourlyRate)
		res.Breakdown.Add(l)
		res.Labor = l.Subtotal
	}

	res.Total = res.Breakdown.Total
	return res
}
