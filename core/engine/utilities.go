package engine

import (
	"context"

	"github.com/shopspring/decimal"

	"calk-kg/core/output"
	"calk-kg/core/utilities"
)

// ElectricityRequest prices a monthly electricity bill
type ElectricityRequest struct {
	Category    utilities.ConsumerCategory `json:"category"`
	Consumption decimal.Decimal            `json:"consumption"` // kWh
}

func (e *Engine) Electricity(ctx context.Context, req ElectricityRequest) (*output.Report, error) {
	res, err := e.tables.Electricity.Calculate(req.Category, req.Consumption)
	if err != nil {
		return nil, err
	}

	r := e.report("electricity", "Электроэнергия", res)
	r.Total = res.Total
	r.Add("Категория", string(req.Category)).
		Add("Потребление, кВт·ч", res.Consumption).
		Add("В пределах лимита, кВт·ч", res.WithinLimit).
		Add("Сверх лимита, кВт·ч", res.BeyondLimit).
		AddMoney("Средний тариф", res.AverageRate)
	r.Breakdown = &res.Breakdown
	return r, nil
}

// GasRequest prices a monthly gas bill
type GasRequest struct {
	Category    utilities.GasCategory `json:"category"`
	Consumption decimal.Decimal       `json:"consumption"` // m3
}

func (e *Engine) Gas(ctx context.Context, req GasRequest) (*output.Report, error) {
	res, err := e.tables.Gas.Calculate(req.Category, req.Consumption)
	if err != nil {
		return nil, err
	}

	r := e.report("gas", "Газ", res)
	r.Total = res.Total
	r.Add("Категория", string(req.Category)).
		Add("Потребление, м³", res.Consumption).
		AddMoney("Тариф", res.Rate)
	r.Breakdown = &res.Breakdown
	return r, nil
}

// WaterRequest prices water supply and sewerage
type WaterRequest struct {
	City     string                  `json:"city"`
	Category utilities.WaterCategory `json:"category"`
	Volume   decimal.Decimal         `json:"volume"` // m3
}

func (e *Engine) Water(ctx context.Context, req WaterRequest) (*output.Report, error) {
	res, err := e.tables.Water.Calculate(req.City, req.Category, req.Volume)
	if err != nil {
		return nil, err
	}

	r := e.report("water", "Водоснабжение", res)
	r.Total = res.Total
	r.Add("Город", res.City).
		Add("Категория", string(res.Category)).
		Add("Объем, м³", res.Volume).
		AddMoney("Вода", res.WaterCost).
		AddMoney("Канализация", res.SewerageCost)
	r.Breakdown = &res.Breakdown
	return r, nil
}

func (e *Engine) Heating(ctx context.Context, in utilities.HeatingInput) (*output.Report, error) {
	res, err := utilities.Heating(in)
	if err != nil {
		return nil, err
	}

	r := e.report("heating", "Отопление и горячая вода", res)
	r.Total = res.Total
	r.Add("Город", res.City).
		Add("Площадь, м²", res.Area).
		Add("Отопление, Гкал", res.HeatingConsumption).
		AddMoney("Отопление", res.HeatingCost).
		Add("Горячая вода, м³", res.HotWaterConsumption).
		AddMoney("Горячая вода", res.HotWaterCost)
	r.Breakdown = &res.Breakdown
	return r, nil
}
