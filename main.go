// =============================================================================
// Certificate Payload Builder - Main Entry Point
// =============================================================================
//
// This is the main entry point for the Certificate Payload Builder CLI. It
// delegates command execution to the cmd package.
//
// USAGE:
//   payload                 - Convert certificates.csv into payload.json
//   payload validate        - Report rows with too few columns
//   payload roster          - Write the records to roster.xlsx
//   payload version         - Display the application version
//
// ARCHITECTURE:
//   - cmd/           : CLI command definitions (Cobra)
//   - internal/      : Parsing, mapping, and output writers
//   - pkg/           : Shared file utilities
//
// =============================================================================

package main

import (
	"github.com/ginjaninja78/csv-to-json-payload/cmd"
)

func main() {
	cmd.Execute()
}
