package engine

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"

	"calk-kg/core/currency"
	"calk-kg/core/output"
	"calk-kg/core/transfer"
	"calk-kg/internal/errors"
)

// ConvertRequest converts an amount between two currencies
type ConvertRequest struct {
	Amount decimal.Decimal `json:"amount"`
	From   currency.Code   `json:"from"`
	To     currency.Code   `json:"to"`
}

// ConvertResult is a conversion at the snapshot rate
type ConvertResult struct {
	Amount decimal.Decimal `json:"amount"`
	From   currency.Code   `json:"from"`
	To     currency.Code   `json:"to"`
	Rate   decimal.Decimal `json:"rate"`
	Result decimal.Decimal `json:"result"`
	Date   string          `json:"date"`
}

func known(snap *currency.Snapshot, code currency.Code) bool {
	if code == currency.Base {
		return true
	}
	_, ok := snap.Rate(code)
	return ok
}

func (e *Engine) Convert(ctx context.Context, req ConvertRequest) (*output.Report, error) {
	req.From = currency.Code(strings.ToUpper(string(req.From)))
	req.To = currency.Code(strings.ToUpper(string(req.To)))

	r := e.report("currency-exchange", "Конвертер валют", nil)
	snap := e.snapshot(ctx, r)
	for _, c := range []currency.Code{req.From, req.To} {
		if !known(snap, c) {
			return nil, errors.NotFound("currency", string(c))
		}
	}

	res := ConvertResult{
		Amount: req.Amount,
		From:   req.From,
		To:     req.To,
		Rate:   currency.CrossRate(req.From, req.To, snap).Round(4),
		Result: currency.Convert(req.Amount, req.From, req.To, snap),
		Date:   snap.Date(),
	}
	r.Result = res
	r.Total = res.Result.Round(2)
	r.TotalLabel = "Получите"
	r.Unit = string(req.To)
	r.Add("Сумма", req.Amount.StringFixed(2)+" "+string(req.From)).
		Add("Курс", res.Rate).
		Add("Дата курса", res.Date)
	return r, nil
}

// RatesRequest lists the current rates, optionally with a simulated
// history for one currency
type RatesRequest struct {
	Code        currency.Code `json:"code,omitempty"`
	HistoryDays int           `json:"history_days,omitempty"`
}

// RatesResult is the rate table
type RatesResult struct {
	Date    string                          `json:"date"`
	Source  string                          `json:"source"`
	Rates   map[currency.Code]currency.Rate `json:"rates"`
	History []currency.Point                `json:"history,omitempty"`
}

func (e *Engine) Rates(ctx context.Context, req RatesRequest) (*output.Report, error) {
	r := e.report("rates", "Курсы валют НБКР", nil)
	snap := e.snapshot(ctx, r)

	res := RatesResult{
		Date:   snap.Date(),
		Source: snap.Source().String(),
		Rates:  snap.Rates(),
	}
	r.Result = res
	r.Unit = ""
	r.Add("Дата", res.Date).
		Add("Источник", res.Source)

	rows := &output.Rows{Headers: []string{"Код", "Валюта", "Номинал", "Курс", "За единицу"}, Numeric: []int{2, 3, 4}}
	for _, code := range snap.Codes() {
		rate, _ := snap.Rate(code)
		rows.Values = append(rows.Values, []string{
			string(code), rate.Name, decimal.NewFromInt(int64(rate.Nominal)).String(),
			rate.Value.StringFixed(4), rate.PerUnit().StringFixed(4),
		})
	}
	r.Rows = rows

	if req.HistoryDays > currency.MaxHistoryDays {
		return nil, errors.Newf(errors.TypeInput, "history of %d days exceeds the maximum of %d", req.HistoryDays, currency.MaxHistoryDays)
	}
	if req.HistoryDays > 0 {
		code := currency.Code(strings.ToUpper(string(req.Code)))
		if code == "" {
			code = currency.USD
		}
		rate, ok := snap.Rate(code)
		if !ok {
			return nil, errors.NotFound("currency", string(code))
		}
		res.History = currency.History(rate.PerUnit(), req.HistoryDays, e.now(), nil)
		r.Result = res

		hist := &output.Rows{Headers: []string{"Дата", string(code)}, Numeric: []int{1}}
		for _, p := range currency.Window(res.History, req.HistoryDays) {
			hist.Values = append(hist.Values, []string{p.Date.Format("02.01.2006"), p.Rate.StringFixed(4)})
		}
		r.Rows = hist
	}
	return r, nil
}

// TransferReport lists transfer quotes, best first
type TransferReport struct {
	Request transfer.Request `json:"request"`
	Quotes  []transfer.Quote `json:"quotes"`
}

func (e *Engine) Transfer(ctx context.Context, req transfer.Request) (*output.Report, error) {
	req.From = currency.Code(strings.ToUpper(string(req.From)))
	req.To = currency.Code(strings.ToUpper(string(req.To)))

	r := e.report("money-transfer", "Денежные переводы", nil)
	snap := e.snapshot(ctx, r)
	quotes, err := transfer.Compare(req, e.tables.Transfers, snap)
	if err != nil {
		return nil, err
	}

	res := TransferReport{Request: req, Quotes: quotes}
	r.Result = res
	r.Unit = string(req.To)
	r.Add("Сумма", req.Amount.StringFixed(2)+" "+string(req.From))
	if len(quotes) > 0 {
		best := quotes[0]
		r.Total = best.Received.Round(2)
		r.TotalLabel = "Лучшее предложение: " + best.ServiceName
	}

	rows := &output.Rows{Headers: []string{"Сервис", "Комиссия", "Курс", "К оплате", "Получат", "Срок"}, Numeric: []int{1, 2, 3, 4}}
	for _, q := range quotes {
		name := q.ServiceName
		if !q.Available {
			name += " (недоступно)"
		}
		rows.Values = append(rows.Values, []string{
			name, output.Money(q.Commission), q.ExchangeRate.StringFixed(4),
			output.Money(q.TotalCost), output.Money(q.Received), q.DeliveryTime,
		})
	}
	r.Rows = rows
	return r, nil
}
