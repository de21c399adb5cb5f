package cmd

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"calk-kg/core/engine"
	"calk-kg/core/output"
	"calk-kg/core/payroll"
	"calk-kg/internal/errors"
)

func init() {
	rootCmd.AddGroup(&cobra.Group{ID: "payroll", Title: "Payroll:"})
	for _, c := range []*cobra.Command{
		newSalaryCmd(),
		newSocialFundCmd(),
		newPensionCmd(),
	} {
		c.GroupID = "payroll"
		rootCmd.AddCommand(c)
	}
}

func newSalaryCmd() *cobra.Command {
	var req engine.SalaryRequest
	cmd := calculator("salary", "Net salary from gross", "",
		func(ctx context.Context, e *engine.Engine) (*output.Report, error) {
			return e.Salary(ctx, req)
		})
	decimalFlag(cmd, &req.Gross, "gross", "0", "gross monthly salary")
	cmd.Flags().BoolVar(&req.HTP, "htp", false, "apply the High Technology Park regime")
	return cmd
}

func newSocialFundCmd() *cobra.Command {
	var req engine.SocialFundRequest
	cmd := calculator("social-fund", "Social Fund contributions", "",
		func(ctx context.Context, e *engine.Engine) (*output.Report, error) {
			return e.SocialFund(ctx, req)
		})
	decimalFlag(cmd, &req.Gross, "gross", "0", "gross monthly salary")
	return cmd
}

func newPensionCmd() *cobra.Command {
	var (
		in        payroll.PensionInput
		birthDate string
	)
	cmd := calculator("pension", "Estimated state pension",
		`Estimate the monthly pension from age, gender and salary.
Work history by period can only be given with --input:

  {"birth_date": "1970-05-01T00:00:00Z", "gender": "male",
   "current_salary": 40000,
   "work_periods": [{"start_year": 1995, "start_month": 1,
                     "end_year": 2025, "end_month": 3, "salary": 30000}]}`,
		func(ctx context.Context, e *engine.Engine) (*output.Report, error) {
			if birthDate != "" {
				t, err := time.Parse(time.DateOnly, birthDate)
				if err != nil {
					return nil, errors.Wrap(errors.TypeInput, "invalid --birth-date, want YYYY-MM-DD", err)
				}
				in.BirthDate = t
			}
			return e.Pension(ctx, in)
		})
	cmd.Flags().StringVar(&birthDate, "birth-date", "", "birth date (YYYY-MM-DD)")
	cmd.Flags().StringVar((*string)(&in.Gender), "gender", string(payroll.Male), "gender (male, female)")
	cmd.Flags().IntVar(&in.RetirementAge, "retirement-age", 0, "retirement age (default by gender)")
	cmd.Flags().Float64Var(&in.CurrentSalary, "salary", 0, "current monthly salary")
	return cmd
}
