// =============================================================================
// Sales Dataset Generator - Report Command
// =============================================================================
//
// This file defines the 'report' command, which prints the revenue report
// for a dataset that already exists on disk.
//
// COMMAND USAGE:
//   salesgen report [--input sales.csv] [flags]
//
// The input may be a CSV dataset or an XLSX workbook written by
// 'generate --xlsx'. When --input is omitted the configured output_file is read, so
// 'generate' followed by 'report' reports on the file just written.
//
// =============================================================================

package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/Nivpatel23/ecommerce-sales-dashboard/internal/config"
	"github.com/Nivpatel23/ecommerce-sales-dashboard/internal/dataset"
	"github.com/Nivpatel23/ecommerce-sales-dashboard/internal/logging"
	"github.com/Nivpatel23/ecommerce-sales-dashboard/internal/report"
	"github.com/Nivpatel23/ecommerce-sales-dashboard/internal/types"
	"github.com/Nivpatel23/ecommerce-sales-dashboard/internal/workbook"
)

// reportInput is the dataset to report on.
var reportInput string

// reportCmd represents the 'report' command.
var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Print the revenue report for an existing dataset",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		return runReport(cfg, reportInput, cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(reportCmd)

	flags := reportCmd.Flags()
	flags.StringVarP(&reportInput, "input", "i", "", "Dataset to read (default: the configured output file)")
	flags.Int("sample-rows", 10, "Leading records printed in the report")
	flags.Int("year", 2024, "Year of the quarterly view")
	flags.Int("top", 5, "Size of the product ranking")
}

// runReport reads the dataset at input (or cfg.OutputFile) and renders
// the report to out.
func runReport(cfg *config.Config, input string, out io.Writer) error {
	if input == "" {
		input = cfg.OutputFile
	}

	orders, err := readOrders(input)
	if err != nil {
		return err
	}
	logging.Logger().Infof("Read %d orders from %s", len(orders), input)

	err = report.Render(out, orders, report.Options{
		SampleRows:  cfg.SampleRows,
		Year:        cfg.ReportYear,
		TopProducts: cfg.TopProducts,
	})
	if err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}

// readOrders loads a dataset file, choosing the reader by extension.
func readOrders(path string) ([]types.Order, error) {
	if workbook.IsWorkbook(path) {
		return workbook.Read(path)
	}
	return dataset.Read(path)
}
