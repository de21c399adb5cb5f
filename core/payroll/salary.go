// Package payroll computes employee deductions, employer contributions
// and the expected state pension.
package payroll

import (
	"github.com/shopspring/decimal"

	"calk-kg/core/tariff"
)

var num = decimal.NewFromFloat

var (
	// SocialFundRate is withheld from gross salary
	SocialFundRate = num(0.10)

	// IncomeTaxRate applies to gross minus the social fund share
	IncomeTaxRate = num(0.10)

	// HTPIncomeTaxRate applies to High Technology Park residents
	HTPIncomeTaxRate = num(0.05)
)

// SalaryResult is the path from gross to net pay
type SalaryResult struct {
	Gross       decimal.Decimal `json:"gross"`
	SocialFund  decimal.Decimal `json:"social_fund"`
	TaxableBase decimal.Decimal `json:"taxable_base"`
	TaxRate     decimal.Decimal `json:"tax_rate"`
	IncomeTax   decimal.Decimal `json:"income_tax"`
	Net         decimal.Decimal `json:"net"`
	Breakdown   tariff.Result   `json:"breakdown"`
}

// Salary computes net pay. htp selects the reduced income tax rate.
func Salary(gross decimal.Decimal, htp bool) SalaryResult {
	rate := IncomeTaxRate
	if htp {
		rate = HTPIncomeTaxRate
	}

	res := SalaryResult{TaxRate: rate}
	if !gross.IsPositive() {
		res.Breakdown = tariff.NewResult()
		return res
	}

	sf := tariff.NewLine("social_fund", gross, SocialFundRate)
	res.Gross = gross
	res.SocialFund = sf.Subtotal
	res.TaxableBase = gross.Sub(sf.Subtotal)
	tax := tariff.NewLine("income_tax", res.TaxableBase, rate)
	res.IncomeTax = tax.Subtotal
	res.Net = gross.Sub(res.SocialFund).Sub(res.IncomeTax)
	res.Breakdown = tariff.NewResult(sf, tax)
	return res
}

var (
	employeePF   = num(0.08)
	employeeGNPF = num(0.02)
	employerPF   = num(0.15)
	employerFOMS = num(0.02)
	employerFOT  = num(0.0025)
)

// SocialFundResult splits contributions between employee and employer
type SocialFundResult struct {
	Gross              decimal.Decimal `json:"gross"`
	Employee           tariff.Result   `json:"employee"`
	Employer           tariff.Result   `json:"employer"`
	AfterDeductions    decimal.Decimal `json:"after_deductions"`
	TotalEmployerCost  decimal.Decimal `json:"total_employer_cost"`
	EmployeeDeductions decimal.Decimal `json:"employee_deductions"`
	EmployerTotal      decimal.Decimal `json:"employer_contributions"`
}

// SocialFund computes the 10% employee and 17.25% employer contributions
func SocialFund(gross decimal.Decimal) SocialFundResult {
	if !gross.IsPositive() {
		return SocialFundResult{Employee: tariff.NewResult(), Employer: tariff.NewResult()}
	}

	res := SocialFundResult{
		Gross: gross,
		Employee: tariff.NewResult(
			tariff.NewLine("pension_fund", gross, employeePF),
			tariff.NewLine("gnpf", gross, employeeGNPF),
		),
		Employer: tariff.NewResult(
			tariff.NewLine("pension_fund", gross, employerPF),
			tariff.NewLine("foms", gross, employerFOMS),
			tariff.NewLine("fot", gross, employerFOT),
		),
	}
	res.EmployeeDeductions = res.Employee.Total
	res.EmployerTotal = res.Employer.Total
	res.AfterDeductions = gross.Sub(res.EmployeeDeductions)
	res.TotalEmployerCost = gross.Add(res.EmployerTotal)
	return res
}
