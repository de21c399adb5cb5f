package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"calk-kg/core/currency"
	"calk-kg/core/engine"
	"calk-kg/core/output"
	"calk-kg/core/transfer"
)

func init() {
	rootCmd.AddGroup(&cobra.Group{ID: "currency", Title: "Currency:"})
	for _, c := range []*cobra.Command{
		newConvertCmd(),
		newRatesCmd(),
		newTransferCmd(),
	} {
		c.GroupID = "currency"
		rootCmd.AddCommand(c)
	}
}

func newConvertCmd() *cobra.Command {
	var req engine.ConvertRequest
	cmd := calculator("currency-exchange", "Convert between currencies",
		`Convert an amount through the som at the National Bank rates. When the
rate endpoint cannot be reached the built-in rates are used and the
report says so.`,
		func(ctx context.Context, e *engine.Engine) (*output.Report, error) {
			return e.Convert(ctx, req)
		})
	cmd.Use = "convert"
	cmd.Aliases = []string{"currency-exchange"}
	decimalFlag(cmd, &req.Amount, "amount", "1", "amount to convert")
	cmd.Flags().StringVar((*string)(&req.From), "from", string(currency.USD), "source currency")
	cmd.Flags().StringVar((*string)(&req.To), "to", string(currency.KGS), "target currency")
	return cmd
}

func newRatesCmd() *cobra.Command {
	var req engine.RatesRequest
	cmd := calculator("rates", "National Bank exchange rates",
		`List today's rates. With --history, show a simulated rate history for
one currency ending at today's rate.`,
		func(ctx context.Context, e *engine.Engine) (*output.Report, error) {
			return e.Rates(ctx, req)
		})
	cmd.Flags().StringVar((*string)(&req.Code), "code", "", "currency for --history (default USD)")
	cmd.Flags().IntVar(&req.HistoryDays, "history", 0, "days of history to show")
	return cmd
}

func newTransferCmd() *cobra.Command {
	var (
		req      transfer.Request
		services []string
	)
	cmd := calculator("money-transfer", "Compare money transfer services", "",
		func(ctx context.Context, e *engine.Engine) (*output.Report, error) {
			req.Services = services
			return e.Transfer(ctx, req)
		})
	cmd.Use = "transfer"
	cmd.Aliases = []string{"money-transfer"}
	decimalFlag(cmd, &req.Amount, "amount", "0", "amount to send")
	cmd.Flags().StringVar((*string)(&req.From), "from", string(currency.RUB), "sending currency")
	cmd.Flags().StringVar((*string)(&req.To), "to", string(currency.KGS), "receiving currency")
	cmd.Flags().StringSliceVar(&services, "services", transfer.DefaultSelection, "services to compare")
	return cmd
}
