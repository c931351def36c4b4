// =============================================================================
// Certificate Payload Builder - CSV Parser Module
// =============================================================================
//
// This module reads the recipient CSV file into rows. It deliberately keeps
// the file's contents as they are:
//   - Every record is a row, including a header line if the file has one
//   - Field values are not trimmed or normalised
//   - Rows may have any number of fields (the mapping checks the count)
//   - Blank physical lines are skipped and are not rows
//
// QUOTING:
//   Standard CSV quoting applies. Fields containing a comma or a newline may
//   be quoted, and quotes inside a quoted field are escaped by doubling.
//   Line breaks inside quotes are kept as written, CRLF included. A quote
//   that closes a field early ends the quoted section and the rest of the
//   field is plain text ("Bo"b reads as Bob). A stray quote inside an
//   unquoted field is kept as a literal character, and an unterminated
//   quoted field runs to the end of the file.
//
// ENCODING:
//   Input must be UTF-8. Invalid byte sequences fail the parse with
//   encoding.ErrInvalidUTF8 instead of being replaced silently.
//
// =============================================================================

package csvparser

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/ginjaninja78/csv-to-json-payload/internal/types"
	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"
)

// =============================================================================
// PARSER FUNCTIONS
// =============================================================================

// Parse reads a CSV file and returns its rows in file order.
//
// PARAMETERS:
//   - filePath: The path to the CSV file.
//
// RETURNS:
//   - The parsed rows. An empty file yields an empty, non-nil slice.
//   - An error if the file cannot be opened or is not valid UTF-8.
//     A missing file wraps fs.ErrNotExist.
func Parse(filePath string) ([]types.Row, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open input file: %w", err)
	}
	defer file.Close()

	rows, err := ParseReader(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", filePath, err)
	}

	return rows, nil
}

// ParseReader reads CSV rows from r.
func ParseReader(r io.Reader) ([]types.Row, error) {
	// Validate UTF-8 while reading so a bad byte is reported, not replaced.
	validated := transform.NewReader(r, encoding.UTF8Validator)

	reader := NewReader(validated)
	rows := make([]types.Row, 0)

	for {
		fields, line, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, describeReadError(err, len(rows)+1)
		}

		rows = append(rows, types.Row{
			Number: len(rows) + 1,
			Line:   line,
			Fields: fields,
		})
	}

	return rows, nil
}

// describeReadError adds row context to a read failure.
func describeReadError(err error, rowNumber int) error {
	if errors.Is(err, encoding.ErrInvalidUTF8) {
		return fmt.Errorf("row %d: input is not valid UTF-8: %w", rowNumber, err)
	}

	return fmt.Errorf("row %d: %w", rowNumber, err)
}
