// =============================================================================
// Certificate Payload Builder - Check Command
// =============================================================================
//
// This file defines the 'check' command. It validates an existing payload
// file against the payload JSON schema before the file is sent to the
// certificate service. Use it on payloads that were edited by hand or
// produced by another tool.
//
// COMMAND USAGE:
//   payload check                 # checks the configured output (payload.json)
//   payload check edited.json     # checks a specific file
//   payload check --schema        # prints the JSON schema
//
// =============================================================================

package cmd

import (
	"fmt"

	"github.com/ginjaninja78/csv-to-json-payload/internal/jsonwriter"
	"github.com/ginjaninja78/csv-to-json-payload/internal/logging"
	"github.com/ginjaninja78/csv-to-json-payload/pkg/utils"
	"github.com/spf13/cobra"
)

// printSchema makes 'check' print the schema instead of checking a file.
var printSchema bool

// checkCmd represents the 'check' command.
var checkCmd = &cobra.Command{
	Use:   "check [payload.json]",
	Short: "Check a payload file against the payload schema",
	Long: `The check command reads a payload JSON file and checks it against the
payload schema: a JSON array of objects that each carry exactly the keys name,
email, course, event, club, date and student_id, all strings.

Without an argument the configured output file is checked.
Exits with a non-zero status if the file does not match.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCheck(cmd, args)
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().BoolVar(
		&printSchema,
		"schema",
		false,
		"Print the payload JSON schema and exit",
	)
}

// runCheck validates one payload file.
func runCheck(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	if printSchema {
		_, err := out.Write(jsonwriter.PayloadSchema())
		return err
	}

	path := appConfig.OutputPath
	if len(args) == 1 {
		path = args[0]
	}

	logger := logging.WithFields(logging.WithRun("check"), "payload", path)

	records, err := jsonwriter.VerifyFile(path)
	if err != nil {
		if utils.IsNotExist(err) {
			return fmt.Errorf("payload file %s does not exist; run payload to generate it: %w", path, err)
		}
		return err
	}

	logger.Debug("payload matches schema", "records", records)
	fmt.Fprintf(out, "%s: %d record(s) match the payload schema\n", path, records)
	return nil
}
