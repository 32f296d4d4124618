// =============================================================================
// Sales Dataset Generator - File Manager Utility
// =============================================================================
//
// This module provides file management utilities for the generator:
//   - Output directory management
//   - Run identifiers
//   - Generation summary logs
//
// Summary logs are plain text, one file per run, named after the run's
// start time and id so that repeated runs never overwrite each other.
//
// =============================================================================

package utils

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// =============================================================================
// FILE MANAGER
// =============================================================================

// FileManager handles the files a run writes.
type FileManager struct {
	// RunLogDir is where generation summaries are written.
	// Empty disables summary logs.
	RunLogDir string
}

// NewFileManager creates a FileManager.
func NewFileManager(runLogDir string) *FileManager {
	return &FileManager{RunLogDir: runLogDir}
}

// NewRunID returns a fresh random run identifier.
func NewRunID() string {
	return uuid.New().String()
}

// =============================================================================
// DIRECTORY MANAGEMENT
// =============================================================================

// EnsureParentDir creates the directory that will hold path.
func (fm *FileManager) EnsureParentDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return nil
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}
	return nil
}

// =============================================================================
// GENERATION SUMMARY
// =============================================================================

// RunSummary describes one generation run.
type RunSummary struct {
	RunID     string
	StartTime time.Time
	EndTime   time.Time

	Seed      uint64
	StartDate string
	EndDate   string
	Days      int

	Orders       int
	LastOrderID  string
	TotalRevenue float64

	OutputFiles []string
}

// SummaryLogName returns the summary file name for a run.
//
// EXAMPLE:
//   generation_summary_20240115_143022_a1b2c3d4.txt
func SummaryLogName(summary RunSummary) string {
	id := summary.RunID
	if len(id) > 8 {
		id = id[:8]
	}
	return fmt.Sprintf("generation_summary_%s_%s.txt", summary.StartTime.Format("20060102_150405"), id)
}

// WriteRunSummary writes the run summary into RunLogDir.
//
// RETURNS:
//   - The path of the summary file, or "" when summary logs are disabled.
//   - An error if writing fails.
func (fm *FileManager) WriteRunSummary(summary RunSummary) (string, error) {
	if fm.RunLogDir == "" {
		return "", nil
	}

	if err := os.MkdirAll(fm.RunLogDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create directory %s: %w", fm.RunLogDir, err)
	}

	summaryPath := filepath.Join(fm.RunLogDir, SummaryLogName(summary))

	file, err := os.Create(summaryPath)
	if err != nil {
		return "", fmt.Errorf("failed to create summary file: %w", err)
	}
	defer file.Close()

	writer := bufio.NewWriter(file)

	duration := summary.EndTime.Sub(summary.StartTime)
	fmt.Fprintf(writer, "Sales Dataset Generator - Generation Summary\n"+
		"================================================================================\n\n"+
		"Run Information:\n"+
		"  Run ID:         %s\n"+
		"  Start Time:     %s\n"+
		"  End Time:       %s\n"+
		"  Duration:       %s\n\n"+
		"Parameters:\n"+
		"  Seed:           %d\n"+
		"  Window:         %s to %s (%d days)\n\n"+
		"Statistics:\n"+
		"  Orders:         %d\n"+
		"  Last Order ID:  %s\n"+
		"  Total Revenue:  %.2f\n\n",
		summary.RunID,
		summary.StartTime.Format("2006-01-02 15:04:05"),
		summary.EndTime.Format("2006-01-02 15:04:05"),
		duration.String(),
		summary.Seed,
		summary.StartDate,
		summary.EndDate,
		summary.Days,
		summary.Orders,
		summary.LastOrderID,
		summary.TotalRevenue)

	if len(summary.OutputFiles) > 0 {
		writer.WriteString("Output Files:\n")
		writer.WriteString("--------------------------------------------------------------------------------\n")
		for _, path := range summary.OutputFiles {
			size, err := GetFileSize(path)
			if err != nil {
				fmt.Fprintf(writer, "  %s\n", path)
				continue
			}
			fmt.Fprintf(writer, "  %s (%d bytes)\n", path, size)
		}
		writer.WriteString("\n")
	}

	writer.WriteString("================================================================================\n" +
		"End of Summary\n")

	if err := writer.Flush(); err != nil {
		return "", fmt.Errorf("failed to flush summary file: %w", err)
	}

	return summaryPath, nil
}

// =============================================================================
// UTILITY FUNCTIONS
// =============================================================================

// FileExists checks if a file exists.
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return !os.IsNotExist(err)
}

// GetFileSize returns the size of a file in bytes.
func GetFileSize(path string) (int64, error) {
	info, err := os.Stat(path)
	if err != nil {
		return 0, err
	}
	return info.Size(), nil
}
