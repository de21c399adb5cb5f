package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"calk-kg/core/engine"
	"calk-kg/core/household"
	"calk-kg/core/mobile"
	"calk-kg/core/output"
)

func init() {
	rootCmd.AddGroup(&cobra.Group{ID: "household", Title: "Household:"})
	for _, c := range []*cobra.Command{
		newMobileCmd(),
		newPassportCmd(),
		newFinesCmd(),
		newHousingCmd(),
		newWeddingCmd(),
		newSewingCmd(),
		newCalorieCmd(),
	} {
		c.GroupID = "household"
		rootCmd.AddCommand(c)
	}
}

func newMobileCmd() *cobra.Command {
	var (
		req       engine.MobileRequest
		operators []string
	)
	cmd := calculator("mobile-tariffs", "Compare mobile plans for your usage",
		`Price every plan for a month of usage, overage included, and list
them cheapest first. Equal prices keep the operators' catalog order.`,
		func(ctx context.Context, e *engine.Engine) (*output.Report, error) {
			req.Operators = nil
			for _, op := range operators {
				req.Operators = append(req.Operators, mobile.Operator(op))
			}
			return e.Mobile(ctx, req)
		})
	cmd.Use = "mobile"
	cmd.Aliases = []string{"mobile-tariffs"}
	decimalFlag(cmd, &req.Minutes, "minutes", "0", "minutes per month")
	decimalFlag(cmd, &req.SMS, "sms", "0", "SMS per month")
	decimalFlag(cmd, &req.GB, "gb", "0", "mobile internet in GB per month")
	cmd.Flags().StringSliceVar(&operators, "operators", nil, "limit to operators (megacom, beeline, o)")
	decimalFlag(cmd, &req.MaxBudget, "max-budget", "0", "drop plans above this monthly cost")
	cmd.Flags().StringVar((*string)(&req.SortBy), "sort", string(mobile.SortPrice), "sort by (price, internet, minutes)")
	return cmd
}

func newPassportCmd() *cobra.Command {
	var req engine.PassportRequest
	cmd := calculator("passport", "Passport and ID card fees", "",
		func(ctx context.Context, e *engine.Engine) (*output.Report, error) {
			return e.Passport(ctx, req)
		})
	cmd.Flags().StringVar((*string)(&req.Document), "document", string(household.IDCard), "document (id-card, passport)")
	cmd.Flags().StringVar((*string)(&req.Cause), "cause", string(household.CauseNormal), "reason (normal, loss)")
	cmd.Flags().StringVar((*string)(&req.Urgency), "urgency", string(household.Urgency18), "working days to issue (18, 8, 4, 2)")
	return cmd
}

func newFinesCmd() *cobra.Command {
	var req engine.FinesRequest
	cmd := calculator("traffic-fines", "Traffic fines",
		`Search the fine catalog, or price one fine with --id. Fines paid within
the quick payment window are discounted by 70% where the code allows.`,
		func(ctx context.Context, e *engine.Engine) (*output.Report, error) {
			return e.Fines(ctx, req)
		})
	cmd.Flags().StringVar(&req.ID, "id", "", "fine ID to price")
	cmd.Flags().BoolVar(&req.Quick, "quick", false, "paid within the quick payment window")
	cmd.Flags().StringVar(&req.Query, "query", "", "search text")
	cmd.Flags().StringVar(&req.Category, "category", "", "fine category")
	return cmd
}

func newHousingCmd() *cobra.Command {
	var req engine.HousingRequest
	cmd := calculator("housing", "Housing prices", "",
		func(ctx context.Context, e *engine.Engine) (*output.Report, error) {
			return e.Housing(ctx, req)
		})
	cmd.Flags().StringVar(&req.City, "city", "bishkek", "city")
	cmd.Flags().StringVar((*string)(&req.Operation), "operation", string(household.BuyApartment), "operation (buy-apartment, buy-house, build-house)")
	decimalFlag(cmd, &req.Area, "area", "0", "area in m²")
	return cmd
}

func newWeddingCmd() *cobra.Command {
	var in household.WeddingInput
	cmd := calculator("wedding", "Wedding budget",
		`Estimate the banquet from guests and the regional price per guest.
Services and other expenses can only be given with --input:

  {"region": "bishkek", "guests": 200,
   "services": [{"id": "photo", "enabled": true, "cost": 30000}],
   "expenses": [{"id": "rings", "enabled": true, "cost": 50000}]}`,
		func(ctx context.Context, e *engine.Engine) (*output.Report, error) {
			return e.Wedding(ctx, in)
		})
	cmd.Flags().StringVar(&in.Region, "region", "bishkek", "region")
	cmd.Flags().IntVar(&in.Guests, "guests", 0, "number of guests")
	decimalFlag(cmd, &in.PricePerGuest, "price-per-guest", "0", "banquet price per guest (default regional average)")
	return cmd
}

func newSewingCmd() *cobra.Command {
	var in household.SewingInput
	cmd := calculator("sewing-cost", "Garment cost price",
		`Price the labor of a garment. Materials and accessories can only be
given with --input:

  {"work_minutes": 240, "hourly_rate": 300,
   "materials": [{"name_key": "fabric", "consumption": 2.5, "price_per_meter": 450}],
   "accessories": [{"name_key": "buttons", "quantity": 6, "price_per_piece": 15}]}`,
		func(ctx context.Context, e *engine.Engine) (*output.Report, error) {
			return e.Sewing(ctx, in)
		})
	cmd.Use = "sewing"
	cmd.Aliases = []string{"sewing-cost"}
	decimalFlag(cmd, &in.WorkMinutes, "minutes", "0", "work time in minutes")
	decimalFlag(cmd, &in.HourlyRate, "hourly-rate", "0", "labor rate per hour")
	return cmd
}

func newCalorieCmd() *cobra.Command {
	var in household.CalorieInput
	cmd := calculator("calorie", "Daily calorie needs", "",
		func(ctx context.Context, e *engine.Engine) (*output.Report, error) {
			return e.Calorie(ctx, in)
		})
	cmd.Flags().StringVar((*string)(&in.Sex), "sex", string(household.Male), "sex (male, female)")
	cmd.Flags().Float64Var(&in.Age, "age", 30, "age in years")
	cmd.Flags().Float64Var(&in.HeightCm, "height", 170, "height in cm")
	cmd.Flags().Float64Var(&in.WeightKg, "weight", 70, "weight in kg")
	cmd.Flags().StringVar((*string)(&in.Activity), "activity", string(household.ActivityMedium), "activity (minimal, low, medium, high, extreme)")
	cmd.Flags().StringVar((*string)(&in.Goal), "goal", string(household.GoalMaintain), "goal (lose, maintain, gain)")
	return cmd
}
