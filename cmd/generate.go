// =============================================================================
// Sales Dataset Generator - Generate Command
// =============================================================================
//
// This file defines the 'generate' command, which is the main command of the
// tool. It orchestrates the whole pipeline.
//
// COMMAND USAGE:
//   salesgen generate [flags]
//
// FLAGS:
//   --seed         : Random seed (default 42)
//   --start-date   : First calendar day, YYYY-MM-DD (default 2023-01-01)
//   --end-date     : Last calendar day, YYYY-MM-DD (default 2024-12-31)
//   --output       : CSV dataset path (default ecommerce_sales_data.csv)
//   --xlsx         : Also write the dataset as an XLSX workbook
//   --validate     : Validate the generated orders before writing
//   --sample-rows  : Leading records printed in the report (default 10)
//   --year         : Year of the quarterly view (default 2024)
//   --top          : Size of the product ranking (default 5)
//   --run-log-dir  : Directory for the generation summary log
//
// PROCESSING PIPELINE:
//   1. Load configuration
//   2. Expand the calendar and generate the orders
//   3. Optionally validate them
//   4. Write the CSV dataset, then the optional workbook
//   5. Print the report
//   6. Write the run summary log
//
// =============================================================================

package cmd

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/Nivpatel23/ecommerce-sales-dashboard/internal/aggregator"
	"github.com/Nivpatel23/ecommerce-sales-dashboard/internal/catalog"
	"github.com/Nivpatel23/ecommerce-sales-dashboard/internal/config"
	"github.com/Nivpatel23/ecommerce-sales-dashboard/internal/dataset"
	"github.com/Nivpatel23/ecommerce-sales-dashboard/internal/generator"
	"github.com/Nivpatel23/ecommerce-sales-dashboard/internal/logging"
	"github.com/Nivpatel23/ecommerce-sales-dashboard/internal/report"
	"github.com/Nivpatel23/ecommerce-sales-dashboard/internal/validation"
	"github.com/Nivpatel23/ecommerce-sales-dashboard/internal/workbook"
	"github.com/Nivpatel23/ecommerce-sales-dashboard/pkg/utils"
)

// =============================================================================
// COMMAND FLAGS
// =============================================================================

// validateOutput validates the generated orders before anything is written.
var validateOutput bool

// =============================================================================
// GENERATE COMMAND DEFINITION
// =============================================================================

// generateCmd represents the 'generate' command.
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate the sales dataset and print the report",
	Long: `The generate command builds one order stream over the configured calendar
window, writes it as a CSV dataset (and optionally an XLSX workbook), and
prints the revenue report to standard output.

The same seed and window always produce the same dataset.

With --validate, every generated order is checked first; a violation aborts
the run before any file is written.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		return runGenerate(cfg, validateOutput, cmd.OutOrStdout())
	},
}

// =============================================================================
// INITIALIZATION
// =============================================================================

func init() {
	rootCmd.AddCommand(generateCmd)

	// ==========================================================================
	// LOCAL FLAGS
	// ==========================================================================
	// Defaults shown in help; a flag only takes effect when it is set.

	flags := generateCmd.Flags()
	flags.Uint64("seed", generator.DefaultSeed, "Random seed")
	flags.String("start-date", "2023-01-01", "First calendar day (YYYY-MM-DD)")
	flags.String("end-date", "2024-12-31", "Last calendar day (YYYY-MM-DD)")
	flags.StringP("output", "o", dataset.DefaultFileName, "CSV dataset path")
	flags.String("xlsx", "", "Also write the dataset as an XLSX workbook")
	flags.Int("sample-rows", 10, "Leading records printed in the report")
	flags.Int("year", 2024, "Year of the quarterly view")
	flags.Int("top", 5, "Size of the product ranking")
	flags.String("run-log-dir", "", "Directory for the generation summary log")

	flags.BoolVar(
		&validateOutput,
		"validate",
		false,
		"Validate the generated orders before writing",
	)
}

// =============================================================================
// MAIN PROCESSING FUNCTION
// =============================================================================

// runGenerate runs the generation pipeline and writes the report to out.
func runGenerate(cfg *config.Config, validate bool, out io.Writer) error {
	log := logging.Logger()
	startTime := time.Now()
	runID := utils.NewRunID()
	fm := utils.NewFileManager(cfg.RunLogDir)

	log.Infof("Run %s: seed %d, window %s to %s", runID, cfg.Seed, cfg.StartDate, cfg.EndDate)

	// =========================================================================
	// STEP 1: GENERATE ORDERS
	// =========================================================================

	window := cfg.Window()
	days, err := window.Days()
	if err != nil {
		return fmt.Errorf("invalid calendar window: %w", err)
	}

	cat := catalog.Default()
	gen := generator.New(cat, cfg.Seed)
	orders := gen.Generate(days)
	lastOrderID := ""
	if len(orders) > 0 {
		lastOrderID = fmt.Sprintf("ORD%d", gen.NextOrderNumber()-1)
	}

	// =========================================================================
	// STEP 2: VALIDATE
	// =========================================================================

	if validate {
		result := validation.Validate(orders, cat, window)
		if !result.IsValid {
			log.Error(validation.FormatErrors(result.Errors))
			return fmt.Errorf("generated dataset failed validation with %d error(s)", len(result.Errors))
		}
		log.Infof("Validated %d orders", result.OrdersValidated)
	}

	// =========================================================================
	// STEP 3: WRITE OUTPUT FILES
	// =========================================================================

	outputs := []string{cfg.OutputFile}

	for _, path := range []string{cfg.OutputFile, cfg.XLSXFile} {
		if path != "" && utils.FileExists(path) {
			log.Warningf("Overwriting existing %s", path)
		}
	}

	if err := fm.EnsureParentDir(cfg.OutputFile); err != nil {
		return err
	}
	if err := dataset.Write(cfg.OutputFile, orders); err != nil {
		return err
	}
	log.Infof("Wrote %s", cfg.OutputFile)

	if cfg.XLSXFile != "" {
		if err := fm.EnsureParentDir(cfg.XLSXFile); err != nil {
			return err
		}
		opts := workbook.Options{RunID: runID, Year: cfg.ReportYear, TopProducts: cfg.TopProducts}
		if err := workbook.Write(cfg.XLSXFile, orders, opts); err != nil {
			return err
		}
		log.Infof("Wrote %s", cfg.XLSXFile)
		outputs = append(outputs, cfg.XLSXFile)
	}

	// =========================================================================
	// STEP 4: PRINT REPORT
	// =========================================================================

	err = report.Render(out, orders, report.Options{
		Created:     true,
		SampleRows:  cfg.SampleRows,
		Year:        cfg.ReportYear,
		TopProducts: cfg.TopProducts,
		OutputFile:  cfg.OutputFile,
	})
	if err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	// =========================================================================
	// STEP 5: RUN SUMMARY
	// =========================================================================

	summaryPath, err := fm.WriteRunSummary(utils.RunSummary{
		RunID:        runID,
		StartTime:    startTime,
		EndTime:      time.Now(),
		Seed:         cfg.Seed,
		StartDate:    cfg.StartDate,
		EndDate:      cfg.EndDate,
		Days:         len(days),
		Orders:       len(orders),
		LastOrderID:  lastOrderID,
		TotalRevenue: aggregator.Summarize(orders).TotalRevenue,
		OutputFiles:  outputs,
	})
	if err != nil {
		return err
	}
	if summaryPath != "" {
		log.Infof("Run summary written to %s", summaryPath)
	}

	log.Debugf("Run %s finished in %s", runID, time.Since(startTime))
	return nil
}
