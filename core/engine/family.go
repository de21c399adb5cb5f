package engine

import (
	"context"

	"calk-kg/core/family"
	"calk-kg/core/output"
)

var benefitReasons = map[string]string{
	family.ReasonIncomeExceeds: "Доход на члена семьи выше порога",
	family.ReasonNoChildren:    "Нет детей до 16 лет",
}

func (e *Engine) Alimony(ctx context.Context, in family.AlimonyInput) (*output.Report, error) {
	res, err := family.Alimony(in)
	if err != nil {
		return nil, err
	}

	r := e.report("alimony", "Алименты", res)
	r.Total = res.Amount
	r.TotalLabel = "В месяц"
	r.Add("Детей", res.Children).
		Add("Способ", string(res.Method)).
		AddMoney("Доход", res.BaseAmount).
		Add("Доля", res.AppliedRate)
	if res.Region != "" {
		r.Add("Регион", res.Region)
	}
	if in.Children < 1 || in.Children > family.MaxChildren {
		r.Warnings = append(r.Warnings, "Количество детей должно быть от 1 до 10")
	}
	return r, nil
}

func (e *Engine) FamilyBenefit(ctx context.Context, in family.BenefitInput) (*output.Report, error) {
	res := family.FamilyBenefit(in)

	r := e.report("family-benefit", "Пособие «Үй-бүлөгө көмөк»", res)
	r.Total = res.Amount
	r.TotalLabel = "Пособие в месяц"
	r.AddMoney("Доход семьи", res.Income).
		Add("Членов семьи", res.FamilySize).
		AddMoney("Доход на человека", res.IncomePerPerson).
		Add("Детей до 16 лет", res.EligibleChildren).
		Add("Право на пособие", res.Eligible)
	for _, reason := range res.Reasons {
		if text, ok := benefitReasons[reason]; ok {
			reason = text
		}
		r.Warnings = append(r.Warnings, reason)
	}
	return r, nil
}

func (e *Engine) Zakat(ctx context.Context, in family.ZakatInput) (*output.Report, error) {
	res, err := family.Zakat(in)
	if err != nil {
		return nil, err
	}

	r := e.report("zakat", "Закят", res)
	r.Total = res.Amount
	r.TotalLabel = "Закят к уплате"
	r.AddMoney("Цена золота за грамм", res.GoldPrice).
		AddMoney("Нисаб", res.Nisab).
		AddMoney("Активы", res.TotalAssets).
		AddMoney("Долги", res.Liabilities).
		AddMoney("Чистые активы", res.NetAssets).
		Add("Обязателен", res.MustPay)
	return r, nil
}
