package cmd

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"calk-kg/core/engine"
	"calk-kg/core/family"
	"calk-kg/core/output"
)

func init() {
	rootCmd.AddGroup(&cobra.Group{ID: "family", Title: "Family and religion:"})
	for _, c := range []*cobra.Command{
		newAlimonyCmd(),
		newFamilyBenefitCmd(),
		newZakatCmd(),
	} {
		c.GroupID = "family"
		rootCmd.AddCommand(c)
	}
}

func newAlimonyCmd() *cobra.Command {
	var in family.AlimonyInput
	cmd := calculator("alimony", "Child support",
		`Alimony is a share of income: a quarter for one child, a third for two
and half for three or more. Without a known income the regional average
salary is used.`,
		func(ctx context.Context, e *engine.Engine) (*output.Report, error) {
			return e.Alimony(ctx, in)
		})
	cmd.Flags().IntVar(&in.Children, "children", 1, "number of children")
	cmd.Flags().StringVar((*string)(&in.Method), "method", string(family.KnownIncome), "income method (known-income, regional-average)")
	decimalFlag(cmd, &in.Income, "income", "0", "monthly income of the payer")
	cmd.Flags().StringVar(&in.Region, "region", "", "region for regional-average")
	return cmd
}

func newFamilyBenefitCmd() *cobra.Command {
	var in family.BenefitInput
	cmd := calculator("family-benefit", "\"Uy-bologo komok\" family benefit", "",
		func(ctx context.Context, e *engine.Engine) (*output.Report, error) {
			return e.FamilyBenefit(ctx, in)
		})
	decimalFlag(cmd, &in.Income, "income", "0", "total monthly family income")
	cmd.Flags().IntVar(&in.FamilySize, "family-size", 1, "family members")
	cmd.Flags().IntSliceVar(&in.ChildAges, "child-ages", nil, "ages of the children, comma separated")
	return cmd
}

func newZakatCmd() *cobra.Command {
	var (
		in   family.ZakatInput
		gold decimal.Decimal
	)
	cmd := calculator("zakat", "Annual zakat",
		`Zakat is 2.5% of net assets once they reach the nisab, the value of
85 g of gold.`,
		func(ctx context.Context, e *engine.Engine) (*output.Report, error) {
			in.GoldPrice = &gold
			return e.Zakat(ctx, in)
		})
	decimalFlag(cmd, &gold, "gold-price", family.DefaultGoldPrice.String(), "gold price per gram")
	decimalFlag(cmd, &in.Cash, "cash", "0", "cash and bank balances")
	decimalFlag(cmd, &in.GoldSilver, "gold-silver", "0", "gold and silver holdings")
	decimalFlag(cmd, &in.Business, "business", "0", "business assets")
	decimalFlag(cmd, &in.Investments, "investments", "0", "investments")
	decimalFlag(cmd, &in.Rental, "rental", "0", "rental income")
	decimalFlag(cmd, &in.Receivable, "receivable", "0", "money owed to you")
	decimalFlag(cmd, &in.Liabilities, "liabilities", "0", "debts due")
	return cmd
}
