// =============================================================================
// Certificate Payload Builder - Convert
// =============================================================================
//
// This file holds the conversion run by the root command.
//
// COMMAND USAGE:
//   payload [flags]
//
// FLAGS:
//   --input, -i   : Recipients CSV (default certificates.csv)
//   --output, -o  : Payload JSON (default payload.json)
//
// On success one status line is printed to stdout:
//   JSON generated: payload.json
//
// =============================================================================

package cmd

import (
	"fmt"

	"github.com/ginjaninja78/csv-to-json-payload/internal/converter"
	"github.com/ginjaninja78/csv-to-json-payload/internal/logging"
	"github.com/spf13/cobra"
)

// outputPath overrides the configured payload path.
var outputPath string

func init() {
	rootCmd.Flags().StringVarP(
		&outputPath,
		"output",
		"o",
		"",
		"Payload JSON file (default payload.json)",
	)
}

// runConvert converts the input CSV into the payload file.
func runConvert(cmd *cobra.Command) error {
	logger := logging.WithFields(logging.WithRun("convert"),
		"input", appConfig.InputPath,
		"output", appConfig.OutputPath,
	)

	opts := converter.Options{
		InputPath:  appConfig.InputPath,
		OutputPath: appConfig.OutputPath,
		Event:      appConfig.Event,
		Logger:     logger,
	}

	result, err := converter.Convert(opts)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), "JSON generated:", result.OutputPath)
	return nil
}
