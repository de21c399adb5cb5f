package family

import (
	"github.com/shopspring/decimal"

	"calk-kg/core/tariff"
	"calk-kg/internal/errors"
)

var (
	// NisabGoldGrams is the nisab expressed in grams of gold
	NisabGoldGrams = num(85)

	// ZakatRate is 2.5% of net zakatable assets
	ZakatRate = num(0.025)

	// DefaultGoldPrice is som per gram
	DefaultGoldPrice = num(6000)
)

// ZakatInput lists zakatable assets and debts, in som. A nil GoldPrice
// means DefaultGoldPrice.
type ZakatInput struct {
	GoldPrice   *decimal.Decimal `json:"gold_price,omitempty"`
	Cash        decimal.Decimal  `json:"cash"`
	GoldSilver  decimal.Decimal  `json:"gold_silver"`
	Business    decimal.Decimal  `json:"business"`
	Investments decimal.Decimal  `json:"investments"`
	Rental      decimal.Decimal  `json:"rental"`
	Receivable  decimal.Decimal  `json:"receivable"`
	Liabilities decimal.Decimal  `json:"liabilities"`
}

// ZakatResult is the annual zakat due
type ZakatResult struct {
	GoldPrice   decimal.Decimal `json:"gold_price"`
	Nisab       decimal.Decimal `json:"nisab"`
	TotalAssets decimal.Decimal `json:"total_assets"`
	Liabilities decimal.Decimal `json:"liabilities"`
	NetAssets   decimal.Decimal `json:"net_assets"`
	MustPay     bool            `json:"must_pay"`
	Amount      decimal.Decimal `json:"amount"`
}

// Zakat is due on net assets at or above the nisab. A gold price that is
// given must be positive.
func Zakat(in ZakatInput) (ZakatResult, error) {
	gold := DefaultGoldPrice
	if in.GoldPrice != nil {
		if !in.GoldPrice.IsPositive() {
			return ZakatResult{}, errors.Newf(errors.TypeInput, "gold price must be positive, got %s", in.GoldPrice)
		}
		gold = *in.GoldPrice
	}

	res := ZakatResult{GoldPrice: gold, Nisab: gold.Mul(NisabGoldGrams), Liabilities: in.Liabilities}
	for _, v := range []decimal.Decimal{in.Cash, in.GoldSilver, in.Business, in.Investments, in.Rental, in.Receivable} {
		res.TotalAssets = res.TotalAssets.Add(v)
	}
	res.NetAssets = tariff.OverageUnits(res.TotalAssets, in.Liabilities)
	res.MustPay = res.NetAssets.GreaterThanOrEqual(res.Nisab)
	if res.MustPay {
		res.Amount = res.NetAssets.Mul(ZakatRate)
	}
	return res, nil
}
