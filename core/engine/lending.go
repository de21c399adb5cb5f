package engine

import (
	"context"
	"fmt"
	"strconv"

	"calk-kg/core/lending"
	"calk-kg/core/output"
)

var comparisonLabels = map[lending.Comparison]string{
	lending.Better: "лучше",
	lending.Same:   "так же",
	lending.Worse:  "хуже",
}

func rate(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64) + "%"
}

func amount(f float64) string {
	return output.Money(money(f))
}

// LoanReport is the loan result with bank offers
type LoanReport struct {
	lending.LoanResult
	Offers []lending.LoanOfferResult `json:"offers"`
}

func (e *Engine) Loan(ctx context.Context, in lending.LoanInput) (*output.Report, error) {
	if err := lending.CheckTerm(in.TermMonths, lending.MaxTermMonths, "months"); err != nil {
		return nil, err
	}
	res := LoanReport{LoanResult: lending.Loan(in)}
	if in.Valid() {
		res.Offers = lending.CompareLoanOffers(in, lending.DefaultLoanOffers)
	}

	r := e.report("loan", "Потребительский кредит", res)
	r.Total = money(res.MonthlyPayment)
	r.TotalLabel = "Ежемесячный платеж"
	r.Add("Сумма", in.Amount).
		Add("Срок, мес.", in.TermMonths).
		Add("Ставка", rate(in.AnnualRate)).
		Add("Всего к выплате", res.TotalAmount).
		Add("Переплата", res.Overpayment).
		Add("Переплата, %", res.EffectiveRate)

	if len(res.Offers) > 0 {
		rows := &output.Rows{Headers: []string{"Банк", "Ставка", "Платеж", "Переплата", ""}, Numeric: []int{1, 2, 3}}
		for _, o := range res.Offers {
			rows.Values = append(rows.Values, []string{
				o.Offer.NameKey, rate(o.Offer.Rate), amount(o.Result.MonthlyPayment),
				amount(o.Result.Overpayment), comparisonLabels[o.Comparison],
			})
		}
		r.Rows = rows
	}
	return r, nil
}

// MortgageRequest prices a mortgage and shows one year of its schedule
type MortgageRequest struct {
	lending.MortgageInput

	// ScheduleYear selects the loan year shown (1-based, default 1)
	ScheduleYear int `json:"schedule_year,omitempty"`
}

// MortgageReport is the mortgage result with bank offers
type MortgageReport struct {
	lending.MortgageResult
	Offers []lending.MortgageOfferResult `json:"offers"`
}

func (e *Engine) Mortgage(ctx context.Context, req MortgageRequest) (*output.Report, error) {
	in := req.MortgageInput
	if err := lending.CheckTerm(in.TermYears, lending.MaxMortgageYears, "years"); err != nil {
		return nil, err
	}
	res := MortgageReport{MortgageResult: lending.MortgageWithSchedule(in, e.now())}
	if in.Valid() {
		res.Offers = lending.CompareMortgageOffers(in, lending.DefaultMortgageOffers)
	}

	r := e.report("mortgage", "Ипотека", res)
	r.Total = money(res.MonthlyPayment)
	r.TotalLabel = "Ежемесячный платеж"
	r.Add("Стоимость жилья", in.PropertyValue).
		Add("Первый взнос", in.DownPayment).
		Add("Первый взнос, %", lending.DownPaymentPercent(in.PropertyValue, in.DownPayment)).
		Add("Сумма кредита", res.LoanAmount).
		Add("Срок, лет", in.TermYears).
		Add("Ставка", rate(in.AnnualRate)).
		Add("Всего к выплате", res.TotalAmount).
		Add("Переплата", res.Overpayment)
	if !in.Valid() {
		r.Warnings = append(r.Warnings, "Первый взнос должен быть меньше стоимости жилья")
	}

	year := req.ScheduleYear
	if year <= 0 {
		year = 1
	}
	if payments := lending.ScheduleYear(res.Schedule, year); len(payments) > 0 {
		rows := &output.Rows{Headers: []string{"Месяц", "Дата", "Платеж", "Основной долг", "Проценты", "Остаток"}, Numeric: []int{0, 2, 3, 4, 5}}
		for _, p := range payments {
			rows.Values = append(rows.Values, []string{
				strconv.Itoa(p.Month), p.Date.Format("01.2006"), amount(p.Payment),
				amount(p.Principal), amount(p.Interest), amount(p.Balance),
			})
		}
		r.Rows = rows
	}
	return r, nil
}

// DepositRequest prices a deposit and compares bank offers in Currency
type DepositRequest struct {
	lending.DepositInput
	Currency string `json:"currency,omitempty"`
}

// DepositReport is the deposit result with the simple/compound
// comparison and bank offers
type DepositReport struct {
	lending.DepositResult
	Comparison lending.InterestComparison   `json:"comparison"`
	Offers     []lending.DepositOfferResult `json:"offers"`
}

func (e *Engine) Deposit(ctx context.Context, req DepositRequest) (*output.Report, error) {
	in := req.DepositInput
	if err := lending.CheckTerm(in.Months, lending.MaxTermMonths, "months"); err != nil {
		return nil, err
	}
	if in.Type == "" {
		in.Type = lending.Compound
	}
	cur := req.Currency
	if cur == "" {
		cur = "KGS"
	}

	res := DepositReport{
		DepositResult: lending.Deposit(in),
		Comparison:    lending.CompareInterest(in),
		Offers:        lending.CompareDepositOffers(in, cur, lending.DefaultDepositOffers),
	}

	r := e.report("deposit", "Депозит", res)
	r.Total = money(res.FinalAmount)
	r.TotalLabel = "Сумма в конце срока"
	r.Unit = cur
	r.Add("Вклад", res.Principal).
		Add("Срок, мес.", in.Months).
		Add("Ставка", rate(in.AnnualRate)).
		Add("Начисление", string(in.Type)).
		Add("Доход", res.InterestEarned).
		Add("Выгода капитализации", res.Comparison.Difference)

	if len(res.Offers) > 0 {
		rows := &output.Rows{Headers: []string{"Банк", "Ставка", "Доход", "Итого", ""}, Numeric: []int{1, 2, 3}}
		for _, o := range res.Offers {
			rows.Values = append(rows.Values, []string{
				o.Offer.NameKey,
				fmt.Sprintf("%s–%s", rate(o.Offer.MinRate), rate(o.Offer.MaxRate)),
				amount(o.Result.InterestEarned), amount(o.Result.FinalAmount),
				comparisonLabels[o.Comparison],
			})
		}
		r.Rows = rows
	}
	return r, nil
}

// AutoLoanReport is the car loan result with bank offers
type AutoLoanReport struct {
	lending.AutoLoanResult
	Offers []lending.AutoLoanOfferResult `json:"offers"`
}

func (e *Engine) AutoLoan(ctx context.Context, in lending.AutoLoanInput) (*output.Report, error) {
	if err := lending.CheckTerm(in.TermMonths, lending.MaxTermMonths, "months"); err != nil {
		return nil, err
	}
	res := AutoLoanReport{AutoLoanResult: lending.AutoLoan(in)}
	if in.Valid() {
		res.Offers = lending.CompareAutoLoanOffers(in, lending.DefaultAutoLoanOffers)
	}

	r := e.report("auto-loan", "Автокредит", res)
	r.Total = money(res.MonthlyPayment)
	r.TotalLabel = "Ежемесячный платеж"
	r.Add("Стоимость авто", in.CarPrice).
		Add("Первый взнос", in.DownPayment).
		Add("Сумма кредита", res.LoanAmount).
		Add("Срок, мес.", in.TermMonths).
		Add("Ставка", rate(in.AnnualRate)).
		Add("Переплата", res.Overpayment).
		Add("Полная стоимость", res.TotalCost)

	if len(res.Offers) > 0 {
		rows := &output.Rows{Headers: []string{"Банк", "Ставка", "Срок", "Платеж", "Переплата", ""}, Numeric: []int{1, 2, 3, 4}}
		for _, o := range res.Offers {
			rows.Values = append(rows.Values, []string{
				o.Offer.NameKey, rate(o.Offer.Rate), strconv.Itoa(o.TermMonths),
				amount(o.Result.MonthlyPayment), amount(o.Result.Overpayment),
				comparisonLabels[o.Comparison],
			})
		}
		r.Rows = rows
	}
	return r, nil
}
