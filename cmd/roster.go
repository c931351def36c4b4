// =============================================================================
// Certificate Payload Builder - Roster Command
// =============================================================================
//
// This file defines the 'roster' command, which writes the same records the
// payload would contain to an XLSX workbook for review.
//
// COMMAND USAGE:
//   payload roster [--input certificates.csv] [--roster-output roster.xlsx]
//
// =============================================================================

package cmd

import (
	"fmt"

	"github.com/ginjaninja78/csv-to-json-payload/internal/converter"
	"github.com/ginjaninja78/csv-to-json-payload/internal/logging"
	"github.com/ginjaninja78/csv-to-json-payload/internal/xlsxwriter"
	"github.com/spf13/cobra"
)

// rosterPath overrides the configured roster workbook path.
var rosterPath string

// rosterCmd represents the 'roster' command.
var rosterCmd = &cobra.Command{
	Use:   "roster",
	Short: "Write the payload records to an XLSX workbook",
	Long: `The roster command converts the input CSV exactly like the default command
but writes the records to an XLSX workbook instead of JSON: one header row with
the record keys, then one row per record in payload order.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runRoster(cmd)
	},
}

func init() {
	rootCmd.AddCommand(rosterCmd)

	rosterCmd.Flags().StringVar(
		&rosterPath,
		"roster-output",
		"",
		"Roster XLSX file (default roster.xlsx)",
	)
}

// runRoster converts the input and saves the roster workbook.
func runRoster(cmd *cobra.Command) error {
	logger := logging.WithFields(logging.WithRun("roster"),
		"input", appConfig.InputPath,
		"output", appConfig.RosterPath,
	)

	records, err := converter.LoadRecords(converter.Options{
		InputPath: appConfig.InputPath,
		Event:     appConfig.Event,
		Logger:    logger,
	})
	if err != nil {
		return err
	}

	if err := xlsxwriter.WriteRoster(appConfig.RosterPath, records, xlsxwriter.DefaultRosterOptions()); err != nil {
		return err
	}

	logger.Info("roster written", "records", len(records))
	fmt.Fprintln(cmd.OutOrStdout(), "Roster generated:", appConfig.RosterPath)
	return nil
}
