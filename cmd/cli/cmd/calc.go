package cmd

import (
	"context"
	"io"
	"os"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"calk-kg/adapters/rates"
	"calk-kg/adapters/tariffs"
	"calk-kg/core/engine"
	"calk-kg/core/output"
	"calk-kg/internal/config"
	"calk-kg/internal/errors"
)

// calcFunc runs one calculator with the request built from flags
type calcFunc func(ctx context.Context, e *engine.Engine) (*output.Report, error)

// calculator builds a calculator subcommand. --input replaces the flags
// with a JSON request body, the same body POST /api/calculate/{slug}
// accepts.
func calculator(slug, short, long string, run calcFunc) *cobra.Command {
	var input string
	cmd := &cobra.Command{
		Use:   slug,
		Short: short,
		Long:  long,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := newEngine()
			if err != nil {
				return err
			}

			var report *output.Report
			if input != "" {
				body, err := readInput(cmd, input)
				if err != nil {
					return err
				}
				report, err = e.Run(cmd.Context(), slug, body)
				if err != nil {
					return err
				}
			} else {
				report, err = run(cmd.Context(), e)
				if err != nil {
					return err
				}
			}
			return render(cmd.OutOrStdout(), report)
		},
	}
	cmd.Flags().StringVarP(&input, "input", "i", "", "read the request as JSON from a file (- for stdin)")
	return cmd
}

// newEngine builds the engine from the global config: tariff overrides
// from --tariffs or tariffs.override_file, rates from the rate endpoint.
func newEngine() (*engine.Engine, error) {
	cfg := config.Get()
	path := tariffsFile
	if path == "" {
		path = cfg.Tariffs.OverrideFile
	}
	tables, err := tariffs.Load(path)
	if err != nil {
		return nil, err
	}
	return engine.New(tables, rates.NewFromConfig(cfg), engine.Config{Version: Version}), nil
}

func render(w io.Writer, r *output.Report) error {
	format, err := output.ParseFormat(outputFormat)
	if err != nil {
		return errors.Wrap(errors.TypeInput, "invalid --format", err)
	}
	f, ok := output.NewRegistry(noColor).GetFormatter(format)
	if !ok {
		return errors.NotSupported("format " + string(format))
	}
	return f.Render(w, r)
}

func readInput(cmd *cobra.Command, path string) ([]byte, error) {
	if path == "-" {
		body, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, errors.Wrap(errors.TypeInput, "read stdin", err)
		}
		return body, nil
	}
	body, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.TypeInput, "read input file", err).WithContext("file", path)
	}
	return body, nil
}

// decimalValue is a pflag.Value over a decimal amount
type decimalValue struct {
	d *decimal.Decimal
}

func newDecimalValue(def string, p *decimal.Decimal) *decimalValue {
	*p = decimal.RequireFromString(def)
	return &decimalValue{d: p}
}

func (v *decimalValue) String() string {
	if v.d == nil {
		return "0"
	}
	return v.d.String()
}

func (v *decimalValue) Set(s string) error {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return err
	}
	*v.d = d
	return nil
}

func (v *decimalValue) Type() string {
	return "decimal"
}

func decimalFlag(cmd *cobra.Command, p *decimal.Decimal, name, def, usage string) {
	cmd.Flags().Var(newDecimalValue(def, p), name, usage)
}
