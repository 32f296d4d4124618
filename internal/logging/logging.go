// =============================================================================
// Sales Dataset Generator - Logging
// =============================================================================
//
// Leveled logging shared by every package. Log lines go to stderr so that
// standard output carries only the report.
//
// =============================================================================

package logging

import (
	"io"
	"os"
	"strings"

	gologging "github.com/op/go-logging"
)

const module = "salesgen"

var format = gologging.MustStringFormatter(
	`%{time:2006-01-02 15:04:05} %{level:.5s}     %{message}`,
)

// Logger returns the process-wide logger.
func Logger() *gologging.Logger {
	return gologging.MustGetLogger(module)
}

// Init configures the logger level from a string such as "info" or
// "DEBUG". An unknown level is returned as an error.
func Init(level string) error {
	return InitWriter(os.Stderr, level)
}

// InitWriter is Init with an explicit destination.
func InitWriter(w io.Writer, level string) error {
	backend := gologging.NewLogBackend(w, "", 0)
	formatted := gologging.NewBackendFormatter(backend, format)

	leveled := gologging.AddModuleLevel(formatted)
	lvl, err := gologging.LogLevel(normalizeLevel(level))
	if err != nil {
		return err
	}
	leveled.SetLevel(lvl, "")

	gologging.SetBackend(leveled)
	return nil
}

// normalizeLevel maps the config spelling onto go-logging's level names.
func normalizeLevel(level string) string {
	switch l := strings.ToUpper(strings.TrimSpace(level)); l {
	case "WARN":
		return "WARNING"
	case "":
		return "INFO"
	default:
		return l
	}
}
