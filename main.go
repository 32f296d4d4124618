// =============================================================================
// Sales Dataset Generator - Main Entry Point
// =============================================================================
//
// This is the main entry point for the salesgen CLI application. It hands
// control to the Cobra command tree in the cmd package.
//
// USAGE:
//   salesgen generate   - Generate the dataset, write it, print the report
//   salesgen report     - Print the report for an existing dataset file
//   salesgen validate   - Check an existing dataset file record by record
//   salesgen config     - Print the effective configuration
//   salesgen version    - Display the application version
//
// ARCHITECTURE:
//   - cmd/           : Cobra command definitions
//   - internal/      : Generation, aggregation and output logic
//   - pkg/           : Shared file utilities
//
// =============================================================================

package main

import (
	"github.com/Nivpatel23/ecommerce-sales-dashboard/cmd"
)

func main() {
	cmd.Execute()
}
