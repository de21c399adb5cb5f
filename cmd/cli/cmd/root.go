// Package cmd provides the CLI commands for calk.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"calk-kg/internal/config"
	"calk-kg/internal/logging"
)

// Version is stamped on reports and printed by `calk version`
var Version = "0.1.0"

var (
	cfgFile      string
	verbose      bool
	outputFormat string
	tariffsFile  string
	noColor      bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "calk",
	Short: "Financial and utility calculators for Kyrgyzstan",
	Long: `calk prices utility bills, payroll, taxes, loans and household costs
using the Kyrgyz tariff tables and the National Bank exchange rates.

Examples:
  calk electricity --consumption 1000
  calk salary --gross 50000 --format json
  calk convert --amount 100 --from USD --to KGS
  calk serve
  calk generate-static --dist ./dist`,
	SilenceUsage: true,
}

// Execute runs the CLI
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.calk-kg.json)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "format", "f", "cli", "output format (cli, json)")
	rootCmd.PersistentFlags().StringVar(&tariffsFile, "tariffs", "", "HCL tariff override file")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(configCmd)
}

func initConfig() {
	config.LoadEnv()

	path := cfgFile
	if path == "" {
		path = config.DefaultPath()
	}
	cfg, err := config.Load(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	cfg.ApplyEnv()
	config.Set(cfg)

	if verbose {
		cfg.Logging.Level = "debug"
	}
	if err := logging.Initialize(cfg.Logging); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logging: %v\n", err)
	}
}

// versionCmd prints version information
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "calk version %s\n", Version)
	},
}

// configCmd manages configuration
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}
