// =============================================================================
// Sales Dataset Generator - Root Command
// =============================================================================
//
// This file defines the root command for the Cobra CLI. The root command is
// the base command that all other commands are attached to.
//
// COBRA CLI STRUCTURE:
//   rootCmd (salesgen)
//   ├── generateCmd (salesgen generate)
//   ├── reportCmd   (salesgen report)
//   ├── validateCmd (salesgen validate)
//   ├── configCmd   (salesgen config)
//   └── versionCmd  (salesgen version)
//
// CONFIGURATION:
//   The root command owns the global flags (--config, --verbose,
//   --log-level). Each subcommand resolves its configuration through
//   loadConfig, which layers its own flags over the environment, the config
//   file and the built-in defaults, and then sets up logging.
//
// =============================================================================

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Nivpatel23/ecommerce-sales-dashboard/internal/config"
	"github.com/Nivpatel23/ecommerce-sales-dashboard/internal/logging"
)

// =============================================================================
// GLOBAL VARIABLES
// =============================================================================

// cfgFile holds the path to the YAML configuration file.
// This can be overridden using the --config flag.
var cfgFile string

// verbose forces debug logging when set to true.
var verbose bool

// =============================================================================
// ROOT COMMAND DEFINITION
// =============================================================================

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "salesgen",
	Short: "Sales Dataset Generator - Synthetic e-commerce orders and revenue report",
	Long: `Sales Dataset Generator produces a reproducible synthetic e-commerce
sales dataset (one record per order over a daily calendar) and prints an
aggregate revenue report over it.

Key Features:
  - Seeded, deterministic generation with seasonal order volume
  - CSV output, with optional XLSX workbook export
  - Category, quarterly, product and regional revenue views
  - Record-level validation of generated or existing datasets

Example Usage:
  salesgen                                 # Same as 'salesgen generate'
  salesgen generate                        # Write ecommerce_sales_data.csv and print the report
  salesgen generate --seed 7 --xlsx s.xlsx # Different seed, also export a workbook
  salesgen report --input sales.csv        # Report on an existing dataset
  salesgen validate --input sales.csv      # Check an existing dataset`,

	SilenceUsage:  true,
	SilenceErrors: true,

	// Without a subcommand the tool generates with the configured defaults,
	// same as 'salesgen generate'.
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		return runGenerate(cfg, false, cmd.OutOrStdout())
	},
}

// =============================================================================
// EXECUTE FUNCTION
// =============================================================================

// Execute runs the root command. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// =============================================================================
// CONFIGURATION
// =============================================================================

// loadConfig resolves the configuration for cmd and initializes logging.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(cfgFile, cmd.Flags())
	if err != nil {
		return nil, err
	}

	level := cfg.LogLevel
	if verbose {
		level = "debug"
	}
	if err := logging.Init(level); err != nil {
		return nil, fmt.Errorf("failed to initialize logging: %w", err)
	}

	return cfg, nil
}

// =============================================================================
// INITIALIZATION
// =============================================================================

func init() {
	// ==========================================================================
	// PERSISTENT FLAGS
	// ==========================================================================
	// Persistent flags are available to this command and all subcommands.

	rootCmd.PersistentFlags().StringVar(
		&cfgFile,
		"config",
		config.DefaultConfigFile,
		"Path to the YAML configuration file (ignored if the default is absent)",
	)

	rootCmd.PersistentFlags().BoolVarP(
		&verbose,
		"verbose",
		"v",
		false,
		"Enable verbose output for debugging",
	)

	rootCmd.PersistentFlags().String(
		"log-level",
		"info",
		"Log level: debug, info, warn or error",
	)
}
