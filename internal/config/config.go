// =============================================================================
// Sales Dataset Generator - Configuration Module
// =============================================================================
//
// This module resolves the run configuration. Every setting has a built-in
// default equal to the reference dataset's fixed parameters, so a run with
// no config file, no environment and no flags reproduces it.
//
// PRECEDENCE (highest first):
//   1. Command-line flags
//   2. SALESGEN_* environment variables (e.g. SALESGEN_SEED=7)
//   3. The YAML config file (--config, default salesgen.yaml if present)
//   4. Built-in defaults
//
// =============================================================================

package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"reflect"
	"slices"
	"strings"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/Nivpatel23/ecommerce-sales-dashboard/internal/calendar"
	"github.com/Nivpatel23/ecommerce-sales-dashboard/internal/dataset"
	"github.com/Nivpatel23/ecommerce-sales-dashboard/internal/generator"
)

// DefaultConfigFile is read when present; a missing default file is not an
// error.
const DefaultConfigFile = "salesgen.yaml"

// EnvPrefix prefixes every environment override.
const EnvPrefix = "SALESGEN"

// =============================================================================
// CONFIGURATION STRUCTURE
// =============================================================================

// Config holds the resolved run configuration.
type Config struct {
	// =========================================================================
	// GENERATION SETTINGS
	// =========================================================================

	// Seed drives the pseudo-random stream. Default: 42
	Seed uint64 `mapstructure:"seed" yaml:"seed"`

	// StartDate and EndDate bound the daily calendar, both inclusive.
	// Default: 2023-01-01 to 2024-12-31
	StartDate string `mapstructure:"start_date" yaml:"start_date"`
	EndDate   string `mapstructure:"end_date" yaml:"end_date"`

	// =========================================================================
	// OUTPUT SETTINGS
	// =========================================================================

	// OutputFile is the CSV dataset path. Default: "ecommerce_sales_data.csv"
	OutputFile string `mapstructure:"output_file" yaml:"output_file"`

	// XLSXFile, when set, also writes the dataset as a workbook.
	XLSXFile string `mapstructure:"xlsx_file" yaml:"xlsx_file"`

	// RunLogDir, when set, receives a generation summary log per run.
	RunLogDir string `mapstructure:"run_log_dir" yaml:"run_log_dir"`

	// =========================================================================
	// REPORT SETTINGS
	// =========================================================================

	// ReportYear selects the quarterly view. Default: 2024
	ReportYear int `mapstructure:"report_year" yaml:"report_year"`

	// TopProducts is the size of the product ranking. Default: 5
	TopProducts int `mapstructure:"top_products" yaml:"top_products"`

	// SampleRows is the number of leading records printed. Default: 10
	SampleRows int `mapstructure:"sample_rows" yaml:"sample_rows"`

	// =========================================================================
	// LOGGING SETTINGS
	// =========================================================================

	// LogLevel is one of debug, info, warn, error. Default: "info"
	LogLevel string `mapstructure:"log_level" yaml:"log_level"`

	window calendar.Window
}

// Window returns the parsed generation window.
func (c *Config) Window() calendar.Window {
	return c.window
}

// defaults maps every config key to its built-in value.
var defaults = map[string]interface{}{
	"seed":         generator.DefaultSeed,
	"start_date":   calendar.DefaultStart.Format(calendar.DateLayout),
	"end_date":     calendar.DefaultEnd.Format(calendar.DateLayout),
	"output_file":  dataset.DefaultFileName,
	"xlsx_file":    "",
	"run_log_dir":  "",
	"report_year":  2024,
	"top_products": 5,
	"sample_rows":  10,
	"log_level":    "info",
}

// FlagKeys maps command-line flag names onto config keys.
var FlagKeys = map[string]string{
	"seed":        "seed",
	"start-date":  "start_date",
	"end-date":    "end_date",
	"output":      "output_file",
	"xlsx":        "xlsx_file",
	"run-log-dir": "run_log_dir",
	"year":        "report_year",
	"top":         "top_products",
	"sample-rows": "sample_rows",
	"log-level":   "log_level",
}

var validLogLevels = []string{"debug", "info", "warn", "warning", "error"}

// =============================================================================
// CONFIGURATION LOADING FUNCTIONS
// =============================================================================

// Load resolves the configuration.
//
// PARAMETERS:
//   - configFile: The YAML file to read. The default file may be absent;
//     any other file must exist.
//   - flags: The command's flags. Only flags the user actually set override
//     lower layers. May be nil.
//
// RETURNS:
//   - The validated configuration.
//   - An error if the file cannot be read or a value is invalid.
func Load(configFile string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			if !(configFile == DefaultConfigFile && isNotExist(err)) {
				return nil, fmt.Errorf("could not read config: %w", err)
			}
		}
	}

	if flags != nil {
		for name, key := range FlagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("could not bind flag --%s: %w", name, err)
				}
			}
		}
	}

	var cfg Config
	hook := viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		timeToDateHook,
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	))
	if err := v.Unmarshal(&cfg, hook); err != nil {
		return nil, fmt.Errorf("could not unmarshal config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// Default returns the built-in configuration.
func Default() *Config {
	cfg, err := Load("", nil)
	if err != nil {
		// The built-in defaults are valid.
		panic(err)
	}
	return cfg
}

// timeToDateHook renders YAML timestamps (unquoted 2024-12-25) as
// calendar dates so they decode into the string date fields.
func timeToDateHook(from, to reflect.Type, data interface{}) (interface{}, error) {
	if to.Kind() != reflect.String {
		return data, nil
	}
	switch t := data.(type) {
	case time.Time:
		return t.Format(calendar.DateLayout), nil
	case *time.Time:
		if t != nil {
			return t.Format(calendar.DateLayout), nil
		}
	}
	return data, nil
}

func isNotExist(err error) bool {
	var notFound viper.ConfigFileNotFoundError
	return errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist) || os.IsNotExist(err)
}

// validate checks value ranges and parses the window.
func (c *Config) validate() error {
	start, err := calendar.Parse(c.StartDate)
	if err != nil {
		return fmt.Errorf("start_date: %w", err)
	}
	end, err := calendar.Parse(c.EndDate)
	if err != nil {
		return fmt.Errorf("end_date: %w", err)
	}
	if end.Before(start) {
		return fmt.Errorf("end_date %s is before start_date %s", end, start)
	}
	c.window = calendar.Window{Start: start, End: end}

	if c.OutputFile == "" {
		return fmt.Errorf("output_file cannot be empty")
	}
	if c.TopProducts <= 0 {
		return fmt.Errorf("top_products must be positive, got %d", c.TopProducts)
	}
	if c.SampleRows < 0 {
		return fmt.Errorf("sample_rows cannot be negative, got %d", c.SampleRows)
	}

	c.LogLevel = strings.ToLower(c.LogLevel)
	if !slices.Contains(validLogLevels, c.LogLevel) {
		return fmt.Errorf("invalid log level %q, must be one of: %s", c.LogLevel, strings.Join(validLogLevels, ", "))
	}

	return nil
}

// =============================================================================
// CONFIGURATION OUTPUT
// =============================================================================

// Dump writes cfg as YAML. The output is a valid config file.
func Dump(w io.Writer, cfg *Config) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	return enc.Close()
}
