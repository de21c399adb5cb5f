package engine

import (
	"context"

	"github.com/shopspring/decimal"

	"calk-kg/core/output"
	"calk-kg/core/taxes"
)

func (e *Engine) Customs(ctx context.Context, in taxes.CustomsInput) (*output.Report, error) {
	res := taxes.CustomsForCar(in, e.now())

	r := e.report("customs", "Растаможка автомобиля", res)
	r.Total = res.Total
	r.TotalLabel = "Таможенные платежи"
	r.AddMoney("Стоимость авто", res.Value).
		Add("Возраст, лет", res.AgeYears).
		Add("Пошлина", res.DutyRate).
		Add("Акциз", res.ExciseRate).
		AddMoney("База НДС", res.VATBase)
	r.Breakdown = &res.Breakdown
	return r, nil
}

// SingleTaxRequest prices the single tax for an entrepreneur
type SingleTaxRequest struct {
	Activity       taxes.Activity  `json:"activity"`
	MonthlyRevenue decimal.Decimal `json:"monthly_revenue"`
}

func (e *Engine) SingleTax(ctx context.Context, req SingleTaxRequest) (*output.Report, error) {
	res, err := taxes.SingleTax(req.Activity, req.MonthlyRevenue)
	if err != nil {
		return nil, err
	}

	r := e.report("single-tax", "Единый налог", res)
	r.Total = res.MonthlyTax
	r.TotalLabel = "Налог в месяц"
	r.Add("Вид деятельности", string(res.Activity)).
		Add("Ставка", res.Rate).
		AddMoney("Годовой оборот", res.AnnualRevenue).
		AddMoney("Налог в год", res.AnnualTax).
		AddMoney("Чистый доход", res.NetIncome)
	if !res.CanUseRegime {
		r.Warnings = append(r.Warnings, "Годовой оборот превышает лимит 12 000 000 сом")
	}
	return r, nil
}

func (e *Engine) PropertyTax(ctx context.Context, in taxes.PropertyTaxInput) (*output.Report, error) {
	res, err := taxes.PropertyTax(in)
	if err != nil {
		return nil, err
	}

	r := e.report("property-tax", "Налог на имущество", res)
	r.Total = res.Tax
	r.Add("Площадь, м²", res.TotalArea).
		Add("Льготная площадь, м²", res.BenefitArea).
		Add("Облагаемая площадь, м²", res.TaxableArea).
		AddMoney("Ставка за м²", res.Rate)
	return r, nil
}

// TaxiTaxRequest prices the ride-hailing driver tax
type TaxiTaxRequest struct {
	Income decimal.Decimal `json:"income"`
}

func (e *Engine) TaxiTax(ctx context.Context, req TaxiTaxRequest) (*output.Report, error) {
	res := taxes.TaxiTax(req.Income)

	r := e.report("taxi-tax", "Налог для таксистов", res)
	r.Total = res.Tax
	r.AddMoney("Доход", res.Income).
		AddMoney("Чистый доход", res.NetIncome)
	return r, nil
}

// PatentRequest looks up a patent price
type PatentRequest struct {
	Region   string `json:"region"`
	Activity string `json:"activity"`
}

func (e *Engine) Patent(ctx context.Context, req PatentRequest) (*output.Report, error) {
	res, err := taxes.Patent(req.Region, req.Activity)
	if err != nil {
		return nil, err
	}

	r := e.report("patent", "Стоимость патента", res)
	r.Total = res.MonthlyCost
	r.TotalLabel = "В месяц"
	r.Add("Регион", res.Region).
		Add("Деятельность", res.Activity).
		AddMoney("В год", res.YearlyCost)
	return r, nil
}

// TouristFeeRequest prices the tourist fee for a group stay
type TouristFeeRequest struct {
	City     string `json:"city"`
	Tourists int    `json:"tourists"`
	Days     int    `json:"days"`
}

func (e *Engine) TouristFee(ctx context.Context, req TouristFeeRequest) (*output.Report, error) {
	res, err := e.tables.TouristFees.Calculate(req.City, req.Tourists, req.Days)
	if err != nil {
		return nil, err
	}

	r := e.report("tourist-fee", "Туристический сбор", res)
	r.Total = res.Total
	r.Add("Город", res.City).
		Add("Туристов", res.Tourists).
		Add("Дней", res.Days).
		AddMoney("Ставка", res.Rate)
	if res.HasData {
		r.Breakdown = &res.Breakdown
	}
	return r, nil
}
