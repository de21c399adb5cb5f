// Package transfer compares money transfer services by the amount the
// recipient actually gets.
package transfer

import (
	"sort"

	"github.com/shopspring/decimal"

	"calk-kg/core/currency"
	"calk-kg/core/tariff"
	"calk-kg/internal/errors"
)

var num = decimal.NewFromFloat

// CommissionType is how a service charges its fee
type CommissionType string

const (
	CommissionFixed    CommissionType = "fixed"
	CommissionPercent  CommissionType = "percent"
	CommissionCombined CommissionType = "combined"
)

// Service is a transfer system and its pricing
type Service struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	CommissionType CommissionType  `json:"commission_type"`
	FixedFee       decimal.Decimal `json:"fixed_fee"`
	Percent        decimal.Decimal `json:"percent"`
	Bounds         tariff.Bounds   `json:"bounds"`
	Markup         decimal.Decimal `json:"exchange_markup"` // percent
	MinAmount      decimal.Decimal `json:"min_amount"`
	MaxAmount      decimal.Decimal `json:"max_amount"`
	DeliveryTime   string          `json:"delivery_time"`
	DeliveryTimeKy string          `json:"delivery_time_ky"`
	Website        string          `json:"website"`
}

// Commission prices the fee for amount. Unset bounds are ignored.
func (s Service) Commission(amount decimal.Decimal) decimal.Decimal {
	var raw decimal.Decimal
	switch s.CommissionType {
	case CommissionFixed:
		raw = s.FixedFee
	case CommissionPercent:
		raw = tariff.Percent(amount, s.Percent)
	case CommissionCombined:
		raw = s.FixedFee.Add(tariff.Percent(amount, s.Percent))
	}
	return s.Bounds.Clamp(raw)
}

// Accepts reports whether amount is within the service limits
func (s Service) Accepts(amount decimal.Decimal) bool {
	return amount.GreaterThanOrEqual(s.MinAmount) && amount.LessThanOrEqual(s.MaxAmount)
}

func combined(id, name string, fixed, pct, min, max, markup, minAmt, maxAmt float64, delivery, deliveryKy, site string) Service {
	return Service{
		ID:             id,
		Name:           name,
		CommissionType: CommissionCombined,
		FixedFee:       num(fixed),
		Percent:        num(pct),
		Bounds:         tariff.Bounds{Min: num(min), Max: num(max)},
		Markup:         num(markup),
		MinAmount:      num(minAmt),
		MaxAmount:      num(maxAmt),
		DeliveryTime:   delivery,
		DeliveryTimeKy: deliveryKy,
		Website:        site,
	}
}

// DefaultServices are the systems popular for remittances to Kyrgyzstan
var DefaultServices = []Service{
	combined("koronapay", "Koronapay", 0, 1.5, 3, 50, 1.5, 10, 10000, "10-30 минут", "10-30 мүнөт", "https://koronapay.com"),
	combined("golden-crown", "Golden Crown", 0, 2, 2, 40, 1.8, 10, 15000, "15-60 минут", "15-60 мүнөт", "https://goldencrown.money"),
	combined("contact", "Contact", 0, 1.8, 2.5, 45, 2, 10, 12000, "15-40 минут", "15-40 мүнөт", "https://contact-sys.com"),
	combined("unistream", "Unistream", 0, 1.5, 3, 50, 1.5, 10, 10000, "10-30 минут", "10-30 мүнөт", "https://unistream.ru"),
	combined("migom", "Migom", 0, 2.5, 2, 35, 2.5, 10, 8000, "30-90 минут", "30-90 мүнөт", "https://migom.kg"),
	combined("western-union", "Western Union", 5, 3, 5, 100, 3, 10, 50000, "15-60 минут", "15-60 мүнөт", "https://www.westernunion.com"),
	combined("moneygram", "MoneyGram", 5, 2.5, 5, 90, 2.8, 10, 30000, "15-60 минут", "15-60 мүнөт", "https://www.moneygram.com"),
}

// DefaultSelection is compared when the caller names no services
var DefaultSelection = []string{"koronapay", "golden-crown", "contact"}

// FindService returns the service by ID
func FindService(services []Service, id string) (Service, error) {
	for _, s := range services {
		if s.ID == id {
			return s, nil
		}
	}
	return Service{}, errors.NotFound("transfer service", id)
}

// Request is a transfer to compare
type Request struct {
	Amount   decimal.Decimal `json:"amount"`
	From     currency.Code   `json:"from"`
	To       currency.Code   `json:"to"`
	Services []string        `json:"services,omitempty"`
}

// Quote is one service's offer for a request
type Quote struct {
	ServiceID    string          `json:"service_id"`
	ServiceName  string          `json:"service_name"`
	Commission   decimal.Decimal `json:"commission"`
	ExchangeRate decimal.Decimal `json:"exchange_rate"`
	TotalCost    decimal.Decimal `json:"total_cost"`
	Received     decimal.Decimal `json:"received"`
	DeliveryTime string          `json:"delivery_time"`
	Available    bool            `json:"available"`
}

// Compare quotes each selected service and ranks them by amount
// received, highest first. Quotes follow table order before ranking, so
// ties keep table order and a repeated ID is quoted once. The commission
// is charged on top of the amount, in the sender's currency.
func Compare(req Request, services []Service, snap *currency.Snapshot) ([]Quote, error) {
	if !req.Amount.IsPositive() {
		return nil, nil
	}
	ids := req.Services
	if len(ids) == 0 {
		ids = DefaultSelection
	}

	selected := make(map[string]bool, len(ids))
	for _, id := range ids {
		if _, err := FindService(services, id); err != nil {
			return nil, err
		}
		selected[id] = true
	}

	base := currency.CrossRate(req.From, req.To, snap)
	quotes := make([]Quote, 0, len(selected))
	for _, s := range services {
		if !selected[s.ID] {
			continue
		}
		commission := s.Commission(req.Amount)
		rate := currency.ApplyMarkup(base, s.Markup)
		quotes = append(quotes, Quote{
			ServiceID:    s.ID,
			ServiceName:  s.Name,
			Commission:   commission,
			ExchangeRate: rate,
			TotalCost:    req.Amount.Add(commission),
			Received:     req.Amount.Mul(rate),
			DeliveryTime: s.DeliveryTime,
			Available:    s.Accepts(req.Amount),
		})
	}

	sort.SliceStable(quotes, func(i, j int) bool {
		return quotes[i].Received.GreaterThan(quotes[j].Received)
	})
	return quotes, nil
}
