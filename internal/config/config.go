// =============================================================================
// Certificate Payload Builder - Configuration Module
// =============================================================================
//
// This module loads the optional YAML configuration file. Without a file the
// tool uses the built-in defaults: it reads
// certificates.csv and writes payload.json in the working directory.
//
// CONFIGURATION FILE (config.yaml):
//   input_path: certificates.csv
//   output_path: payload.json
//   roster_path: roster.xlsx
//   log_level: warn
//   log_format: text
//   event:
//     event: "Hack The Winter, 2026"
//     club: WeCode
//     date: "2026-01-22/23"
//
// PRECEDENCE:
//   command-line flag > configuration file > built-in default
//
// =============================================================================

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ginjaninja78/csv-to-json-payload/internal/types"
	"gopkg.in/yaml.v3"
)

// Built-in defaults.
const (
	DefaultInputPath  = "certificates.csv"
	DefaultOutputPath = "payload.json"
	DefaultRosterPath = "roster.xlsx"
	DefaultLogLevel   = "warn"
	DefaultLogFormat  = "text"
)

// =============================================================================
// MAIN CONFIGURATION STRUCTURE
// =============================================================================

// Config holds the application configuration.
type Config struct {
	// =========================================================================
	// FILE SETTINGS
	// =========================================================================

	// InputPath is the CSV file listing certificate recipients.
	// Default: "certificates.csv"
	InputPath string `yaml:"input_path"`

	// OutputPath is where the JSON payload is written. An existing file is
	// truncated.
	// Default: "payload.json"
	OutputPath string `yaml:"output_path"`

	// RosterPath is where the roster command writes its XLSX workbook.
	// Default: "roster.xlsx"
	RosterPath string `yaml:"roster_path"`

	// =========================================================================
	// LOGGING SETTINGS
	// =========================================================================

	// LogLevel controls the verbosity of logging.
	// Valid values: "debug", "info", "warn", "error"
	// Default: "warn"
	LogLevel string `yaml:"log_level"`

	// LogFormat selects the log handler.
	// Valid values: "text", "json"
	// Default: "text"
	LogFormat string `yaml:"log_format"`

	// =========================================================================
	// EVENT SETTINGS
	// =========================================================================

	// Event is stamped onto every record. Unset values fall back to the
	// Hack The Winter 2026 defaults one by one.
	Event types.EventMetadata `yaml:"event"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

// =============================================================================
// CONFIGURATION LOADING FUNCTIONS
// =============================================================================

// Load reads the configuration from a YAML file.
//
// PARAMETERS:
//   - configPath: The path to the configuration file.
//
// RETURNS:
//   - A pointer to the Config struct with defaults applied.
//   - An error if the file cannot be read, parsed or validated.
func Load(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	return Parse(data)
}

// Parse decodes configuration from YAML bytes.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	applyDefaults(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// applyDefaults sets default values for any unset configuration options.
func applyDefaults(cfg *Config) {
	if cfg.InputPath == "" {
		cfg.InputPath = DefaultInputPath
	}
	if cfg.OutputPath == "" {
		cfg.OutputPath = DefaultOutputPath
	}
	if cfg.RosterPath == "" {
		cfg.RosterPath = DefaultRosterPath
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = DefaultLogLevel
	}
	if cfg.LogFormat == "" {
		cfg.LogFormat = DefaultLogFormat
	}

	defaults := types.DefaultEventMetadata()
	if cfg.Event.Event == "" {
		cfg.Event.Event = defaults.Event
	}
	if cfg.Event.Club == "" {
		cfg.Event.Club = defaults.Club
	}
	if cfg.Event.Date == "" {
		cfg.Event.Date = defaults.Date
	}
}

// Validate checks option values that have a closed set of choices.
func (c *Config) Validate() error {
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("unknown log_level %q", c.LogLevel)
	}

	switch strings.ToLower(c.LogFormat) {
	case "text", "json":
	default:
		return fmt.Errorf("unknown log_format %q", c.LogFormat)
	}

	if samePath(c.InputPath, c.OutputPath) {
		return fmt.Errorf("input_path and output_path must differ (%q and %q)", c.InputPath, c.OutputPath)
	}
	if samePath(c.InputPath, c.RosterPath) {
		return fmt.Errorf("input_path and roster_path must differ (%q and %q)", c.InputPath, c.RosterPath)
	}

	return nil
}

// samePath reports whether a and b name the same file once made absolute.
func samePath(a, b string) bool {
	return absPath(a) == absPath(b)
}

func absPath(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return filepath.Clean(path)
	}
	return abs
}
