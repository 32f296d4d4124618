// =============================================================================
// Sales Dataset Generator - Config Command
// =============================================================================
//
// This file defines the 'config' command, which prints the effective
// configuration as YAML. The output can be saved and passed back with
// --config.
//
// COMMAND USAGE:
//   salesgen config > salesgen.yaml
//
// =============================================================================

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/Nivpatel23/ecommerce-sales-dashboard/internal/config"
)

// configCmd represents the 'config' command.
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration as YAML",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		return config.Dump(cmd.OutOrStdout(), cfg)
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
}
