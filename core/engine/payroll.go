package engine

import (
	"context"

	"github.com/shopspring/decimal"

	"calk-kg/core/output"
	"calk-kg/core/payroll"
)

// money rounds a float amount to cents
func money(f float64) decimal.Decimal {
	return decimal.NewFromFloat(f).Round(2)
}

// SalaryRequest computes net pay from gross
type SalaryRequest struct {
	Gross decimal.Decimal `json:"gross"`

	// HTP applies the High Technology Park regime
	HTP bool `json:"htp"`
}

func (e *Engine) Salary(ctx context.Context, req SalaryRequest) (*output.Report, error) {
	res := payroll.Salary(req.Gross, req.HTP)

	r := e.report("salary", "Зарплата на руки", res)
	r.Total = res.Net
	r.TotalLabel = "На руки"
	r.AddMoney("Начислено", res.Gross).
		AddMoney("Соцфонд", res.SocialFund).
		AddMoney("Налогооблагаемая база", res.TaxableBase).
		Add("Ставка налога", res.TaxRate).
		AddMoney("Подоходный налог", res.IncomeTax).
		Add("Режим ПВТ", req.HTP)
	r.Breakdown = &res.Breakdown
	return r, nil
}

// SocialFundRequest splits contributions between employee and employer
type SocialFundRequest struct {
	Gross decimal.Decimal `json:"gross"`
}

func (e *Engine) SocialFund(ctx context.Context, req SocialFundRequest) (*output.Report, error) {
	res := payroll.SocialFund(req.Gross)

	r := e.report("social-fund", "Отчисления в Соцфонд", res)
	r.Total = res.TotalEmployerCost
	r.TotalLabel = "Расходы работодателя"
	r.AddMoney("Начислено", res.Gross).
		AddMoney("Удержания работника", res.EmployeeDeductions).
		AddMoney("После удержаний", res.AfterDeductions).
		AddMoney("Взносы работодателя", res.EmployerTotal)

	rows := &output.Rows{Headers: []string{"Плательщик", "Статья", "Ставка", "Сумма"}, Numeric: []int{2, 3}}
	for _, l := range res.Employee.Lines {
		rows.Values = append(rows.Values, []string{"Работник", l.Label, l.Rate.String(), output.Money(l.Subtotal)})
	}
	for _, l := range res.Employer.Lines {
		rows.Values = append(rows.Values, []string{"Работодатель", l.Label, l.Rate.String(), output.Money(l.Subtotal)})
	}
	r.Rows = rows
	return r, nil
}

func (e *Engine) Pension(ctx context.Context, in payroll.PensionInput) (*output.Report, error) {
	res := payroll.Pension(in, e.now())

	r := e.report("pension", "Пенсия", res)
	r.Total = money(res.Total)
	r.TotalLabel = "Пенсия в месяц"
	r.Add("Возраст", res.CurrentAge).
		Add("Лет до пенсии", res.YearsToRetirement).
		Add("Стаж, мес.", res.ExperienceMonths).
		Add("Базовая часть", res.BasePart).
		Add("Страховая часть I", res.InsurancePart1).
		Add("Страховая часть II", res.InsurancePart2).
		Add("Накоплено взносов", res.TotalContributions)
	if res.ExperienceMonths < payroll.MinExperienceMonths {
		r.Warnings = append(r.Warnings, "Стаж меньше 15 лет: базовая часть не назначается")
	}
	return r, nil
}
