// =============================================================================
// Certificate Payload Builder - Root Command
// =============================================================================
//
// This file defines the root command for the Cobra CLI. Run without a
// subcommand, the root command performs the conversion itself, so the plain
// invocation `payload` reads certificates.csv and writes payload.json.
//
// COBRA CLI STRUCTURE:
//   rootCmd (payload)            certificates.csv -> payload.json
//   ├── validateCmd (payload validate)
//   ├── rosterCmd   (payload roster)
//   ├── checkCmd    (payload check)
//   └── versionCmd  (payload version)
//
// CONFIGURATION:
//   The root command is responsible for:
//   1. Setting up global flags (--config, --verbose, --input)
//   2. Loading the optional configuration file
//   3. Setting up logging
//
// =============================================================================

package cmd

import (
	"fmt"
	"os"

	"github.com/ginjaninja78/csv-to-json-payload/internal/config"
	"github.com/ginjaninja78/csv-to-json-payload/internal/logging"
	"github.com/ginjaninja78/csv-to-json-payload/pkg/utils"
	"github.com/spf13/cobra"
)

// =============================================================================
// GLOBAL VARIABLES
// =============================================================================

// cfgFile holds the path to the configuration file.
// A missing default file is ignored; a missing explicit file is an error.
var cfgFile string

// verbose forces debug logging.
var verbose bool

// inputPath overrides the configured input CSV.
var inputPath string

// appConfig is the resolved configuration for the running command.
var appConfig *config.Config

// =============================================================================
// ROOT COMMAND DEFINITION
// =============================================================================

// rootCmd represents the base command. It runs the conversion.
var rootCmd = &cobra.Command{
	Use:   "payload",
	Short: "Build the certificate payload JSON from a recipients CSV",
	Long: `payload reads a CSV of certificate recipients and writes the JSON payload
used by the certificate service, stamping every record with the event details.

Each CSV row becomes one record:
  student_id <- column 1    name  <- column 3
  course     <- column 4    email <- column 5
  event, club, date       <- event settings (Hack The Winter, 2026 / WeCode / 2026-01-22/23)

Every row is converted, including a header line if the file has one.

Example Usage:
  payload                               # certificates.csv -> payload.json
  payload -i attendees.csv -o out.json  # explicit paths
  payload validate                      # report rows with too few columns
  payload roster                        # write roster.xlsx for review
  payload check edited.json             # check a payload against the schema`,

	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,

	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initConfig(cmd)
	},

	RunE: func(cmd *cobra.Command, args []string) error {
		return runConvert(cmd)
	},
}

// =============================================================================
// EXECUTE FUNCTION
// =============================================================================

// Execute runs the root command. This is called by main.main().
// Any error is printed to stderr and the process exits with status 1.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// =============================================================================
// INITIALIZATION
// =============================================================================

func init() {
	rootCmd.PersistentFlags().StringVar(
		&cfgFile,
		"config",
		"config.yaml",
		"Path to the configuration file (optional)",
	)

	rootCmd.PersistentFlags().BoolVarP(
		&verbose,
		"verbose",
		"v",
		false,
		"Enable debug logging",
	)

	rootCmd.PersistentFlags().StringVarP(
		&inputPath,
		"input",
		"i",
		"",
		"Recipients CSV file (default certificates.csv)",
	)
}

// initConfig resolves configuration from defaults, the config file and flags,
// then sets up logging.
func initConfig(cmd *cobra.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	if cmd.Flags().Changed("input") {
		cfg.InputPath = inputPath
	}
	if flagChanged(cmd, "output") {
		cfg.OutputPath = outputPath
	}
	if flagChanged(cmd, "roster-output") {
		cfg.RosterPath = rosterPath
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	level := cfg.LogLevel
	if verbose {
		level = "debug"
	}
	logging.Setup(level, cfg.LogFormat, cmd.ErrOrStderr())

	appConfig = cfg
	return nil
}

// loadConfig reads the config file if one was given or the default exists.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	if cmd.Flags().Changed("config") || utils.FileExists(cfgFile) {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		return cfg, nil
	}

	return config.Default(), nil
}

// flagChanged reports whether cmd has the named flag and it was set.
func flagChanged(cmd *cobra.Command, name string) bool {
	flag := cmd.Flags().Lookup(name)
	return flag != nil && flag.Changed
}
