package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"calk-kg/core/engine"
	"calk-kg/core/output"
	"calk-kg/core/utilities"
)

func init() {
	rootCmd.AddGroup(&cobra.Group{ID: "utilities", Title: "Utilities:"})
	for _, c := range []*cobra.Command{
		newElectricityCmd(),
		newGasCmd(),
		newWaterCmd(),
		newHeatingCmd(),
	} {
		c.GroupID = "utilities"
		rootCmd.AddCommand(c)
	}
}

func newElectricityCmd() *cobra.Command {
	var req engine.ElectricityRequest
	cmd := calculator("electricity", "Monthly electricity bill",
		`Price a month of electricity with the two-tier tariff.
Consumption up to the category limit is billed at the first rate,
the rest at the second.`,
		func(ctx context.Context, e *engine.Engine) (*output.Report, error) {
			return e.Electricity(ctx, req)
		})
	cmd.Flags().StringVar((*string)(&req.Category), "category", string(utilities.CategoryGeneral), "consumer category (general, highland, lowIncome)")
	decimalFlag(cmd, &req.Consumption, "consumption", "0", "consumption in kWh")
	return cmd
}

func newGasCmd() *cobra.Command {
	var req engine.GasRequest
	cmd := calculator("gas", "Monthly gas bill", "",
		func(ctx context.Context, e *engine.Engine) (*output.Report, error) {
			return e.Gas(ctx, req)
		})
	cmd.Flags().StringVar((*string)(&req.Category), "category", string(utilities.GasResidential), "category (residential, residential_heating, commercial, industrial)")
	decimalFlag(cmd, &req.Consumption, "consumption", "0", "consumption in m³")
	return cmd
}

func newWaterCmd() *cobra.Command {
	var req engine.WaterRequest
	cmd := calculator("water", "Water supply and sewerage", "",
		func(ctx context.Context, e *engine.Engine) (*output.Report, error) {
			return e.Water(ctx, req)
		})
	cmd.Flags().StringVar(&req.City, "city", "bishkek", "city")
	cmd.Flags().StringVar((*string)(&req.Category), "category", string(utilities.WaterPopulation), "category (population, budget, commercial)")
	decimalFlag(cmd, &req.Volume, "volume", "0", "volume in m³")
	return cmd
}

func newHeatingCmd() *cobra.Command {
	var in utilities.HeatingInput
	cmd := calculator("heating", "Heating and hot water",
		`Price heating by apartment area and hot water either by meter reading
or by the per-resident norm.`,
		func(ctx context.Context, e *engine.Engine) (*output.Report, error) {
			return e.Heating(ctx, in)
		})
	cmd.Flags().StringVar(&in.City, "city", "bishkek", "city")
	decimalFlag(cmd, &in.Area, "area", "0", "heated area in m²")
	cmd.Flags().StringVar((*string)(&in.Method), "method", string(utilities.HotWaterStandard), "hot water method (meter, standard)")
	decimalFlag(cmd, &in.MeterReading, "meter-reading", "0", "hot water meter reading in m³")
	cmd.Flags().IntVar(&in.Residents, "residents", 1, "registered residents")
	return cmd
}
