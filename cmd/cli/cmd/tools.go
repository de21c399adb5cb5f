package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"calk-kg/adapters/tariffs"
	"calk-kg/api"
	"calk-kg/core/catalog"
	"calk-kg/core/site"
	"calk-kg/core/ui"
	"calk-kg/internal/config"
	"calk-kg/internal/errors"
)

func init() {
	staticCmd.Flags().StringVar(&distDir, "dist", "", "build output directory (default from config)")
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (default from config)")
	configInitCmd.Flags().BoolVar(&forceInit, "force", false, "overwrite an existing config file")

	tariffsCmd.AddCommand(tariffsValidateCmd)
	configCmd.AddCommand(configShowCmd, configInitCmd)

	rootCmd.AddCommand(catalogCmd, staticCmd, serveCmd, tariffsCmd)
}

var (
	distDir   string
	serveAddr string
	forceInit bool
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "List every page and calculator",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if outputFormat == "json" {
			return writeJSON(cmd, catalog.Default.List())
		}

		out := ui.NewWriter(cmd.OutOrStdout(), noColor)
		out.Header("calk.kg")
		t := out.NewTable("Slug", "Path", "Kind", "Group", "Static")
		for _, e := range catalog.Default.List() {
			static := ""
			if e.Prerender {
				static = "yes"
			}
			t.AddRow(e.Slug, e.Path, e.Kind.String(), string(e.Group), static)
		}
		t.Render()

		stats := catalog.Default.Stats()
		out.Println("")
		out.Info("%d pages: %d info, %d calculators, %d prerendered",
			stats.Total, stats.Info, stats.Calculators, stats.Prerendered)
		return nil
	},
}

var staticCmd = &cobra.Command{
	Use:   "generate-static",
	Short: "Write per-route HTML with SEO metadata",
	Long: `Read <dist>/index.html and write a copy for every prerendered route with
its own title, description, Open Graph and Twitter tags and canonical
link. Fails when the template has not been built.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Get()
		opts := site.Options{
			DistDir: cfg.Site.DistDir,
			BaseURL: cfg.Site.BaseURL,
			Locale:  cfg.Site.Locale,
		}
		if distDir != "" {
			opts.DistDir = distDir
		}

		g := site.NewGenerator(opts, catalog.Default.Routes(), cmd.OutOrStdout())
		if _, err := g.Generate(); err != nil {
			if errors.IsType(err, errors.TypeNotFound) {
				return fmt.Errorf("%s not found. Run the build first", g.TemplatePath())
			}
			return err
		}
		return nil
	},
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the rate proxy and calculation API",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Get()
		if serveAddr != "" {
			cfg.Server.Address = serveAddr
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		s, err := api.NewFromConfig(ctx, cfg, Version)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "calk %s listening on %s\n", Version, cfg.Server.Address)
		return s.Run(ctx)
	},
}

var tariffsCmd = &cobra.Command{
	Use:   "tariffs",
	Short: "Manage tariff override files",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

var tariffsValidateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Check a tariff override file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := ui.NewWriter(cmd.OutOrStdout(), noColor)

		ov, err := tariffs.LoadFile(args[0])
		if err != nil {
			diags := tariffs.Diagnostics(err)
			if len(diags) == 0 {
				out.Error("%v", err)
				return err
			}
			for _, d := range diags {
				out.Error("%s", d)
			}
			return fmt.Errorf("%s: %d error(s)", args[0], len(diags))
		}

		out.Success("%s: %d overrides", args[0], ov.Count())
		return nil
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return writeJSON(cmd, config.Get())
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default config file",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := cfgFile
		if path == "" {
			path = config.DefaultPath()
		}
		if _, err := os.Stat(path); err == nil && !forceInit {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		}
		if err := config.Default().Save(path); err != nil {
			return err
		}
		ui.NewWriter(cmd.OutOrStdout(), noColor).Success("wrote %s", path)
		return nil
	},
}

func writeJSON(cmd *cobra.Command, v interface{}) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
