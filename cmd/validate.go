// =============================================================================
// Certificate Payload Builder - Validate Command
// =============================================================================
//
// This file defines the 'validate' command. It checks every row of the input
// for enough columns and reports all short rows at once, without writing a
// payload. The conversion itself stops at the first short row.
//
// COMMAND USAGE:
//   payload validate [--input certificates.csv]
//
// =============================================================================

package cmd

import (
	"fmt"

	"github.com/ginjaninja78/csv-to-json-payload/internal/converter"
	"github.com/ginjaninja78/csv-to-json-payload/internal/csvparser"
	"github.com/ginjaninja78/csv-to-json-payload/internal/logging"
	"github.com/ginjaninja78/csv-to-json-payload/internal/validation"
	"github.com/spf13/cobra"
)

// validateCmd represents the 'validate' command.
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Report every row that has too few columns",
	Long: `The validate command reads the input CSV and checks that every row has the
columns the conversion reads. All failing rows are listed with their row and
line numbers. No payload is written.

Exits with a non-zero status if any row fails.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runValidate(cmd)
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

// runValidate checks all rows of the configured input.
func runValidate(cmd *cobra.Command) error {
	logger := logging.WithRun("validate")

	rows, err := csvparser.Parse(appConfig.InputPath)
	if err != nil {
		return fmt.Errorf("failed to parse input: %w", err)
	}

	required := converter.RequiredFields(converter.RowMappings)
	result := validation.ValidateAll(rows, required)

	logger.Debug("validated input",
		"input", appConfig.InputPath,
		"rows", result.RowsValidated,
		"errors", len(result.Errors),
	)

	out := cmd.OutOrStdout()
	if result.IsValid {
		fmt.Fprintf(out, "%s: all %d row(s) have at least %d columns\n",
			appConfig.InputPath, result.RowsValidated, required)
		return nil
	}

	fmt.Fprint(out, validation.FormatErrors(result.Errors))
	return fmt.Errorf("%d of %d row(s) failed validation", len(result.Errors), result.RowsValidated)
}
