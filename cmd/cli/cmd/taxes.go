package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"calk-kg/core/engine"
	"calk-kg/core/output"
	"calk-kg/core/taxes"
)

func init() {
	rootCmd.AddGroup(&cobra.Group{ID: "taxes", Title: "Taxes and duties:"})
	for _, c := range []*cobra.Command{
		newCustomsCmd(),
		newSingleTaxCmd(),
		newPropertyTaxCmd(),
		newTaxiTaxCmd(),
		newPatentCmd(),
		newTouristFeeCmd(),
	} {
		c.GroupID = "taxes"
		rootCmd.AddCommand(c)
	}
}

func newCustomsCmd() *cobra.Command {
	var in taxes.CustomsInput
	cmd := calculator("customs", "Customs clearance for an imported car",
		`Stack the customs fee, duty, excise and VAT for a car. Duty and excise
rates depend on the car's age and engine volume; VAT is charged on the
duty-inclusive value.`,
		func(ctx context.Context, e *engine.Engine) (*output.Report, error) {
			return e.Customs(ctx, in)
		})
	decimalFlag(cmd, &in.Value, "value", "0", "customs value of the car")
	cmd.Flags().IntVar(&in.Year, "year", 0, "year of manufacture")
	cmd.Flags().IntVar(&in.EngineVolume, "engine-volume", 0, "engine volume in cm³")
	return cmd
}

func newSingleTaxCmd() *cobra.Command {
	var req engine.SingleTaxRequest
	cmd := calculator("single-tax", "Single tax for entrepreneurs", "",
		func(ctx context.Context, e *engine.Engine) (*output.Report, error) {
			return e.SingleTax(ctx, req)
		})
	cmd.Flags().StringVar((*string)(&req.Activity), "activity", string(taxes.ActivityTradeGoods), "activity (trade_goods, services, production, catering)")
	decimalFlag(cmd, &req.MonthlyRevenue, "revenue", "0", "monthly revenue")
	return cmd
}

func newPropertyTaxCmd() *cobra.Command {
	var in taxes.PropertyTaxInput
	cmd := calculator("property-tax", "Annual property tax", "",
		func(ctx context.Context, e *engine.Engine) (*output.Report, error) {
			return e.PropertyTax(ctx, in)
		})
	cmd.Flags().StringVar((*string)(&in.Type), "type", string(taxes.PropertyApartment), "property type (apartment, house)")
	decimalFlag(cmd, &in.Area, "area", "0", "total area in m²")
	decimalFlag(cmd, &in.Rate, "rate", "0", "tax in som per taxable m²")
	cmd.Flags().BoolVar(&in.ApplyBenefit, "benefit", true, "apply the tax-free area")
	return cmd
}

func newTaxiTaxCmd() *cobra.Command {
	var req engine.TaxiTaxRequest
	cmd := calculator("taxi-tax", "Tax for taxi drivers", "",
		func(ctx context.Context, e *engine.Engine) (*output.Report, error) {
			return e.TaxiTax(ctx, req)
		})
	decimalFlag(cmd, &req.Income, "income", "0", "monthly income")
	return cmd
}

func newPatentCmd() *cobra.Command {
	var req engine.PatentRequest
	cmd := calculator("patent", "Patent cost by region and activity", "",
		func(ctx context.Context, e *engine.Engine) (*output.Report, error) {
			return e.Patent(ctx, req)
		})
	cmd.Flags().StringVar(&req.Region, "region", "bishkek", "region")
	cmd.Flags().StringVar(&req.Activity, "activity", "", "activity ID")
	return cmd
}

func newTouristFeeCmd() *cobra.Command {
	var req engine.TouristFeeRequest
	cmd := calculator("tourist-fee", "Tourist fee", "",
		func(ctx context.Context, e *engine.Engine) (*output.Report, error) {
			return e.TouristFee(ctx, req)
		})
	cmd.Flags().StringVar(&req.City, "city", "bishkek", "city or resort")
	cmd.Flags().IntVar(&req.Tourists, "tourists", 1, "number of tourists")
	cmd.Flags().IntVar(&req.Days, "days", 1, "nights of stay")
	return cmd
}
