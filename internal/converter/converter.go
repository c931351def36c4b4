// =============================================================================
// Certificate Payload Builder - Converter Module
// =============================================================================
//
// This module runs the conversion from the recipient CSV to the JSON payload.
//
// CONVERSION PIPELINE:
//   1. Parse the input CSV into rows
//   2. Map each row to a record (see transformer.go)
//   3. Serialize the whole collection as one JSON array
//   4. Write the output file
//
// The pipeline is one synchronous pass. The first error stops it and is
// returned to the caller unchanged apart from wrapping; nothing is retried.
// The output file is only opened once the payload has been fully built, so
// input errors never leave a partial payload behind.
//
// HEADER ROWS:
//   Every row is data, including a header line. When the first record does
//   not look like a recipient, a warning is logged and the row is kept.
//
// =============================================================================

package converter

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/ginjaninja78/csv-to-json-payload/internal/csvparser"
	"github.com/ginjaninja78/csv-to-json-payload/internal/jsonwriter"
	"github.com/ginjaninja78/csv-to-json-payload/internal/types"
)

// =============================================================================
// OPTIONS AND RESULT
// =============================================================================

// Default file paths.
const (
	DefaultInputPath  = "certificates.csv"
	DefaultOutputPath = "payload.json"
)

// Options configures a conversion run.
type Options struct {
	// InputPath is the recipient CSV file.
	InputPath string

	// OutputPath is the JSON payload file. It is created or truncated.
	OutputPath string

	// Event is stamped onto every record.
	Event types.EventMetadata

	// Logger receives progress messages. Nil means slog.Default().
	Logger *slog.Logger
}

// DefaultOptions returns the default paths and event.
func DefaultOptions() Options {
	return Options{
		InputPath:  DefaultInputPath,
		OutputPath: DefaultOutputPath,
		Event:      types.DefaultEventMetadata(),
	}
}

// Result represents the outcome of a successful conversion.
type Result struct {
	// InputPath is the file that was read.
	InputPath string

	// OutputPath is the file that was written.
	OutputPath string

	// Records is the number of records in the payload.
	Records int

	// Bytes is the size of the payload file.
	Bytes int

	// Elapsed is the time taken by the run.
	Elapsed time.Duration
}

// =============================================================================
// MAIN PROCESSING FUNCTIONS
// =============================================================================

// Convert reads opts.InputPath and writes the payload to opts.OutputPath.
//
// RETURNS:
//   - A Result on success.
//   - An error wrapping fs.ErrNotExist for a missing input,
//     validation.ErrMissingFields for a short row,
//     encoding.ErrInvalidUTF8 for bad input bytes, or the filesystem error
//     from writing the output.
func Convert(opts Options) (*Result, error) {
	start := time.Now()
	logger := loggerFor(opts)

	records, err := LoadRecords(opts)
	if err != nil {
		return nil, err
	}

	size, err := jsonwriter.Write(opts.OutputPath, records)
	if err != nil {
		return nil, fmt.Errorf("failed to write payload: %w", err)
	}

	result := &Result{
		InputPath:  opts.InputPath,
		OutputPath: opts.OutputPath,
		Records:    len(records),
		Bytes:      size,
		Elapsed:    time.Since(start),
	}

	logger.Info("payload written",
		"output", result.OutputPath,
		"records", result.Records,
		"bytes", result.Bytes,
		"elapsed", result.Elapsed,
	)

	return result, nil
}

// LoadRecords parses opts.InputPath and maps every row.
func LoadRecords(opts Options) ([]types.Record, error) {
	logger := loggerFor(opts)

	rows, err := csvparser.Parse(opts.InputPath)
	if err != nil {
		return nil, fmt.Errorf("failed to parse input: %w", err)
	}

	logger.Debug("parsed input", "input", opts.InputPath, "rows", len(rows))

	records, err := NewTransformer(opts.Event).TransformAll(rows)
	if err != nil {
		return nil, err
	}

	if len(records) > 0 && looksLikeHeader(records[0]) {
		logger.Warn("first row does not look like a recipient; it is included in the payload",
			"name", records[0].Name,
			"email", records[0].Email,
		)
	}

	return records, nil
}

// =============================================================================
// HELPER FUNCTIONS
// =============================================================================

func loggerFor(opts Options) *slog.Logger {
	if opts.Logger != nil {
		return opts.Logger
	}
	return slog.Default()
}

// looksLikeHeader reports whether a record's email column holds no address,
// which is what a column title such as "Email" produces.
func looksLikeHeader(record types.Record) bool {
	return !strings.Contains(record.Email, "@")
}
