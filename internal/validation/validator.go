// =============================================================================
// Certificate Payload Builder - Row Validation
// =============================================================================
//
// This module checks that each input row carries enough fields for the
// positional mapping. It is the only validation the tool performs: values are
// never inspected, trimmed or normalised.
//
// VALIDATION STRATEGY:
//   - CheckRow fails fast on the first short row (used by convert and roster)
//   - ValidateAll collects every short row (used by the validate command)
//
// ERROR HANDLING:
//   Each failure is a *RowError carrying the row number, the physical line it
//   starts on, and the field counts. RowError unwraps to ErrMissingFields so
//   callers can test for it with errors.Is.
//
// =============================================================================

package validation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ginjaninja78/csv-to-json-payload/internal/types"
)

// ErrMissingFields reports a row that is too short for the field mapping.
var ErrMissingFields = errors.New("field index out of range")

// =============================================================================
// VALIDATION ERROR TYPES
// =============================================================================

// RowError represents a row with fewer fields than the mapping reads.
type RowError struct {
	// Row is the 1-based row number.
	Row int

	// Line is the physical line the row starts on.
	Line int

	// Fields is the number of fields the row has.
	Fields int

	// Required is the number of fields the mapping needs.
	Required int
}

// Error implements the error interface.
func (e *RowError) Error() string {
	return fmt.Sprintf("row %d (line %d): %s: has %d field(s), need at least %d",
		e.Row,
		e.Line,
		ErrMissingFields,
		e.Fields,
		e.Required,
	)
}

// Unwrap returns ErrMissingFields.
func (e *RowError) Unwrap() error {
	return ErrMissingFields
}

// =============================================================================
// VALIDATION RESULT
// =============================================================================

// ValidationResult contains the results of validating a whole file.
type ValidationResult struct {
	// IsValid is true if every row has enough fields.
	IsValid bool

	// Errors contains one entry per short row, in file order.
	Errors []*RowError

	// RowsValidated is the total number of rows checked.
	RowsValidated int
}

// =============================================================================
// VALIDATION FUNCTIONS
// =============================================================================

// CheckRow returns a *RowError if row has fewer than required fields.
func CheckRow(row types.Row, required int) error {
	if len(row.Fields) >= required {
		return nil
	}

	return &RowError{
		Row:      row.Number,
		Line:     row.Line,
		Fields:   len(row.Fields),
		Required: required,
	}
}

// ValidateAll checks every row and reports all failures.
func ValidateAll(rows []types.Row, required int) *ValidationResult {
	result := &ValidationResult{
		IsValid:       true,
		Errors:        make([]*RowError, 0),
		RowsValidated: len(rows),
	}

	for _, row := range rows {
		if err := CheckRow(row, required); err != nil {
			var rowErr *RowError
			if errors.As(err, &rowErr) {
				result.Errors = append(result.Errors, rowErr)
			}
			result.IsValid = false
		}
	}

	return result
}

// =============================================================================
// ERROR FORMATTING
// =============================================================================

// FormatErrors formats row errors for display.
func FormatErrors(errs []*RowError) string {
	if len(errs) == 0 {
		return "No validation errors."
	}

	var builder strings.Builder

	fmt.Fprintf(&builder, "Validation completed with %d error(s):\n\n", len(errs))

	for i, err := range errs {
		fmt.Fprintf(&builder, "%d. %s\n", i+1, err.Error())
	}

	return builder.String()
}
