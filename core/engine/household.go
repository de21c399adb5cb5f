package engine

import (
	"context"
	"strconv"

	"github.com/shopspring/decimal"

	"calk-kg/core/household"
	"calk-kg/core/mobile"
	"calk-kg/core/output"
)

// MobileRequest compares mobile plans for a month of usage
type MobileRequest struct {
	mobile.Usage
	mobile.Filter
}

func (e *Engine) Mobile(ctx context.Context, req MobileRequest) (*output.Report, error) {
	quotes := mobile.Compare(mobile.DefaultPlans, req.Usage, req.Filter)

	r := e.report("mobile-tariffs", "Тарифы мобильной связи", quotes)
	r.Add("Минуты", req.Minutes).
		Add("SMS", req.SMS).
		Add("Интернет, ГБ", req.GB).
		Add("Найдено тарифов", len(quotes))
	if len(quotes) > 0 {
		r.Total = quotes[0].TotalCost
		r.TotalLabel = quotes[0].Plan.Name
	} else {
		r.Warnings = append(r.Warnings, "Нет тарифов в пределах бюджета")
	}

	rows := &output.Rows{Headers: []string{"Оператор", "Тариф", "Абонплата", "Итого", ""}, Numeric: []int{2, 3}}
	for _, q := range quotes {
		extra := ""
		if q.HasExtra() {
			extra = "с доплатой"
		}
		rows.Values = append(rows.Values, []string{
			mobile.OperatorDetails[q.Plan.Operator].Name, q.Plan.Name,
			output.Money(q.Plan.MonthlyFee), output.Money(q.TotalCost), extra,
		})
	}
	r.Rows = rows
	return r, nil
}

// PassportRequest looks up an ID card or passport fee
type PassportRequest struct {
	Document household.Document `json:"document"`
	Cause    household.Cause    `json:"cause"`
	Urgency  household.Urgency  `json:"urgency"`
}

func (e *Engine) Passport(ctx context.Context, req PassportRequest) (*output.Report, error) {
	res, err := household.PassportFee(req.Document, req.Cause, req.Urgency)
	if err != nil {
		return nil, err
	}

	r := e.report("passport", "Стоимость паспорта", res)
	r.Total = res.Cost
	r.TotalLabel = "Госпошлина"
	r.Add("Документ", string(res.Document)).
		Add("Основание", string(res.Cause)).
		Add("Срок, рабочих дней", string(res.Urgency))
	return r, nil
}

// FinesRequest prices one fine by ID, or searches the catalog
type FinesRequest struct {
	ID       string `json:"id,omitempty"`
	Quick    bool   `json:"quick_payment,omitempty"`
	Query    string `json:"query,omitempty"`
	Category string `json:"category,omitempty"`
}

func (e *Engine) Fines(ctx context.Context, req FinesRequest) (*output.Report, error) {
	if req.ID != "" {
		f, err := household.FindFine(household.DefaultFines, req.ID)
		if err != nil {
			return nil, err
		}
		res := f.Due(req.Quick)

		r := e.report("traffic-fines", "Штрафы ПДД", res)
		r.Total = res.ToPay
		r.TotalLabel = "К оплате"
		r.Add("Нарушение", f.ID).
			Add("Статья", f.Article).
			AddMoney("Штраф", f.Amount).
			Add("Скидка 70%", res.Discount)
		if res.Savings.IsPositive() {
			r.AddMoney("Экономия", res.Savings)
		}
		if req.Quick && !res.Discount {
			r.Warnings = append(r.Warnings, "Скидка за быструю оплату не применяется к этому нарушению")
		}
		return r, nil
	}

	fines := household.SearchFines(household.DefaultFines, req.Query, req.Category)
	r := e.report("traffic-fines", "Штрафы ПДД", fines)
	r.Add("Найдено", len(fines))
	rows := &output.Rows{Headers: []string{"Код", "Категория", "Статья", "Штраф", "Со скидкой"}, Numeric: []int{3, 4}}
	for _, f := range fines {
		quick := "—"
		if f.Discounted() {
			quick = output.Money(f.Due(true).ToPay)
		}
		rows.Values = append(rows.Values, []string{f.ID, f.Category, f.Article, output.Money(f.Amount), quick})
	}
	r.Rows = rows
	return r, nil
}

// HousingRequest prices an area of housing in a city
type HousingRequest struct {
	City      string              `json:"city"`
	Operation household.Operation `json:"operation"`
	Area      decimal.Decimal     `json:"area"`
}

func (e *Engine) Housing(ctx context.Context, req HousingRequest) (*output.Report, error) {
	res, err := household.Housing(req.City, req.Operation, req.Area)
	if err != nil {
		return nil, err
	}

	r := e.report("housing", "Стоимость жилья", res)
	r.Total = res.Total
	r.Add("Город", res.City).
		Add("Операция", string(res.Operation)).
		Add("Площадь, м²", res.Area).
		AddMoney("Цена за м²", res.PricePerMeter)
	if !res.HasData {
		r.Warnings = append(r.Warnings, "Нет данных о ценах для этого города")
	}
	return r, nil
}

func (e *Engine) Wedding(ctx context.Context, in household.WeddingInput) (*output.Report, error) {
	res, err := household.Wedding(in)
	if err != nil {
		return nil, err
	}

	r := e.report("wedding", "Бюджет свадьбы", res)
	r.Total = res.Total
	r.Add("Гостей", res.Guests).
		AddMoney("Цена за гостя", res.PricePerGuest).
		AddMoney("Банкет", res.Banquet).
		Add("Банкет, %", res.Share(res.Banquet).Round(1)).
		AddMoney("Услуги", res.Services).
		AddMoney("Расходы", res.Expenses)
	r.Breakdown = &res.Breakdown
	return r, nil
}

func (e *Engine) Sewing(ctx context.Context, in household.SewingInput) (*output.Report, error) {
	res := household.Sewing(in)

	r := e.report("sewing-cost", "Себестоимость пошива", res)
	r.Total = res.Total
	r.TotalLabel = "Себестоимость"
	r.AddMoney("Материалы", res.Materials).
		AddMoney("Фурнитура", res.Accessories).
		AddMoney("Работа", res.Labor)
	r.Breakdown = &res.Breakdown
	return r, nil
}

func (e *Engine) Calorie(ctx context.Context, in household.CalorieInput) (*output.Report, error) {
	res, err := household.Calories(in)
	if err != nil {
		return nil, err
	}

	r := e.report("calorie", "Калории", res)
	r.Total = decimal.NewFromFloat(res.Daily)
	r.TotalLabel = "Норма в сутки"
	r.Unit = "ккал"
	r.Add("Базовый обмен, ккал", res.BMR).
		Add("Белки, г", strconv.FormatFloat(res.Proteins, 'f', 0, 64)).
		Add("Жиры, г", strconv.FormatFloat(res.Fats, 'f', 0, 64)).
		Add("Углеводы, г", strconv.FormatFloat(res.Carbs, 'f', 0, 64))
	return r, nil
}
