package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"calk-kg/core/engine"
	"calk-kg/core/lending"
	"calk-kg/core/output"
)

func init() {
	rootCmd.AddGroup(&cobra.Group{ID: "lending", Title: "Loans and deposits:"})
	for _, c := range []*cobra.Command{
		newLoanCmd(),
		newMortgageCmd(),
		newDepositCmd(),
		newAutoLoanCmd(),
	} {
		c.GroupID = "lending"
		rootCmd.AddCommand(c)
	}
}

func newLoanCmd() *cobra.Command {
	var in lending.LoanInput
	cmd := calculator("loan", "Consumer loan payments", "",
		func(ctx context.Context, e *engine.Engine) (*output.Report, error) {
			return e.Loan(ctx, in)
		})
	cmd.Flags().Float64Var(&in.Amount, "amount", 0, "loan amount")
	cmd.Flags().IntVar(&in.TermMonths, "months", 12, "term in months")
	cmd.Flags().Float64Var(&in.AnnualRate, "rate", 0, "annual interest rate, %")
	return cmd
}

func newMortgageCmd() *cobra.Command {
	var req engine.MortgageRequest
	cmd := calculator("mortgage", "Mortgage payments and schedule",
		`Price a mortgage and print one year of its amortisation schedule.`,
		func(ctx context.Context, e *engine.Engine) (*output.Report, error) {
			return e.Mortgage(ctx, req)
		})
	cmd.Flags().Float64Var(&req.PropertyValue, "property-value", 0, "property price")
	cmd.Flags().Float64Var(&req.DownPayment, "down-payment", 0, "down payment")
	cmd.Flags().IntVar(&req.TermYears, "years", 15, "term in years")
	cmd.Flags().Float64Var(&req.AnnualRate, "rate", 0, "annual interest rate, %")
	cmd.Flags().IntVar(&req.ScheduleYear, "schedule-year", 1, "loan year to show in the schedule")
	return cmd
}

func newDepositCmd() *cobra.Command {
	var req engine.DepositRequest
	cmd := calculator("deposit", "Deposit income", "",
		func(ctx context.Context, e *engine.Engine) (*output.Report, error) {
			return e.Deposit(ctx, req)
		})
	cmd.Flags().Float64Var(&req.Principal, "principal", 0, "deposit amount")
	cmd.Flags().Float64Var(&req.AnnualRate, "rate", 0, "annual interest rate, %")
	cmd.Flags().IntVar(&req.Months, "months", 12, "term in months")
	cmd.Flags().StringVar((*string)(&req.Type), "type", string(lending.Compound), "interest type (simple, compound)")
	cmd.Flags().StringVar(&req.Currency, "currency", "KGS", "deposit currency for bank offers")
	return cmd
}

func newAutoLoanCmd() *cobra.Command {
	var in lending.AutoLoanInput
	cmd := calculator("auto-loan", "Car loan payments", "",
		func(ctx context.Context, e *engine.Engine) (*output.Report, error) {
			return e.AutoLoan(ctx, in)
		})
	cmd.Flags().Float64Var(&in.CarPrice, "car-price", 0, "car price")
	cmd.Flags().Float64Var(&in.DownPayment, "down-payment", 0, "down payment")
	cmd.Flags().IntVar(&in.TermMonths, "months", 36, "term in months")
	cmd.Flags().Float64Var(&in.AnnualRate, "rate", 0, "annual interest rate, %")
	return cmd
}
