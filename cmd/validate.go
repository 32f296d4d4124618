// =============================================================================
// Sales Dataset Generator - Validate Command
// =============================================================================
//
// This file defines the 'validate' command, which checks every record of an
// existing dataset against the generator's rules.
//
// COMMAND USAGE:
//   salesgen validate [--input sales.csv] [--error-log errors.txt]
//
// OUTPUT:
//   A one-line verdict on success. On failure the numbered error list is
//   printed (and optionally written to --error-log) and the command exits
//   non-zero.
//
// The calendar window the dates are checked against comes from the
// configuration (--start-date / --end-date).
//
// =============================================================================

package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/Nivpatel23/ecommerce-sales-dashboard/internal/catalog"
	"github.com/Nivpatel23/ecommerce-sales-dashboard/internal/config"
	"github.com/Nivpatel23/ecommerce-sales-dashboard/internal/logging"
	"github.com/Nivpatel23/ecommerce-sales-dashboard/internal/validation"
)

// validateInput is the dataset to check.
var validateInput string

// errorLogPath receives the error list when set.
var errorLogPath string

// maxErrors stops validation early.
var maxErrors int

// validateCmd represents the 'validate' command.
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate an existing dataset",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		return runValidate(cfg, validateInput, errorLogPath, maxErrors, cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)

	flags := validateCmd.Flags()
	flags.StringVarP(&validateInput, "input", "i", "", "Dataset to read (default: the configured output file)")
	flags.StringVar(&errorLogPath, "error-log", "", "Also write the error list to this file")
	flags.IntVar(&maxErrors, "max-errors", 0, "Stop after this many errors (0 = no limit)")
	flags.String("start-date", "2023-01-01", "First calendar day (YYYY-MM-DD)")
	flags.String("end-date", "2024-12-31", "Last calendar day (YYYY-MM-DD)")
}

// runValidate validates the dataset at input (or cfg.OutputFile).
//
// RETURNS:
//   - nil if every record passes.
//   - An error if the file cannot be read or any rule is violated.
func runValidate(cfg *config.Config, input, errorLog string, limit int, out io.Writer) error {
	log := logging.Logger()

	if input == "" {
		input = cfg.OutputFile
	}

	orders, err := readOrders(input)
	if err != nil {
		return err
	}

	v := validation.NewValidator(catalog.Default(), cfg.Window(), validation.Options{MaxErrors: limit})
	result := v.ValidateAll(orders)

	if result.IsValid {
		fmt.Fprintf(out, "%s: %d orders validated, no errors.\n", input, result.OrdersValidated)
		return nil
	}

	fmt.Fprint(out, validation.FormatErrors(result.Errors))

	if errorLog != "" {
		if err := validation.WriteErrorLog(result.Errors, errorLog); err != nil {
			return err
		}
		log.Infof("Errors have been logged to %s", errorLog)
	}

	return fmt.Errorf("%s failed validation with %d error(s)", input, len(result.Errors))
}
