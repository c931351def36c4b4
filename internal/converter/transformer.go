// =============================================================================
// Certificate Payload Builder - Row Mapping
// =============================================================================
//
// This module turns input rows into payload records. The positional contract
// lives in one table, RowMappings:
//
//   | record key | row field |
//   |------------|-----------|
//   | name       | 2         |
//   | email      | 4         |
//   | course     | 3         |
//   | student_id | 0         |
//
// The remaining keys (event, club, date) come from the event metadata and are
// the same for every record. Field 1 and anything past field 4 is ignored.
//
// If the input layout changes, edit RowMappings; the minimum field count
// follows from it.
//
// =============================================================================

package converter

import (
	"fmt"

	"github.com/ginjaninja78/csv-to-json-payload/internal/types"
	"github.com/ginjaninja78/csv-to-json-payload/internal/validation"
)

// =============================================================================
// FIELD MAPPING TABLE
// =============================================================================

// ColumnMapping copies one row field into one record key.
type ColumnMapping struct {
	// Key is the record key being filled.
	Key string

	// Index is the zero-based row field it is read from.
	Index int

	assign func(record *types.Record, value string)
}

// RowMappings is the index-to-key table for recipient rows.
var RowMappings = []ColumnMapping{
	{Key: "name", Index: 2, assign: func(r *types.Record, v string) { r.Name = v }},
	{Key: "email", Index: 4, assign: func(r *types.Record, v string) { r.Email = v }},
	{Key: "course", Index: 3, assign: func(r *types.Record, v string) { r.Course = v }},
	{Key: "student_id", Index: 0, assign: func(r *types.Record, v string) { r.StudentID = v }},
}

// RequiredFields returns how many fields a row needs for mappings to apply.
func RequiredFields(mappings []ColumnMapping) int {
	required := 0
	for _, m := range mappings {
		if m.Index+1 > required {
			required = m.Index + 1
		}
	}
	return required
}

// =============================================================================
// TRANSFORMER
// =============================================================================

// Transformer maps rows to records.
type Transformer struct {
	event    types.EventMetadata
	mappings []ColumnMapping
	required int
}

// NewTransformer creates a Transformer that stamps event onto every record.
func NewTransformer(event types.EventMetadata) *Transformer {
	return &Transformer{
		event:    event,
		mappings: RowMappings,
		required: RequiredFields(RowMappings),
	}
}

// RequiredFields returns the minimum field count this transformer accepts.
func (t *Transformer) RequiredFields() int {
	return t.required
}

// Transform maps a single row. Values are copied verbatim.
//
// RETURNS:
//   - The record.
//   - A *validation.RowError if the row is too short. No partial record is
//     produced in that case.
func (t *Transformer) Transform(row types.Row) (types.Record, error) {
	if err := validation.CheckRow(row, t.required); err != nil {
		return types.Record{}, err
	}

	record := types.Record{
		Event: t.event.Event,
		Club:  t.event.Club,
		Date:  t.event.Date,
	}
	for _, m := range t.mappings {
		m.assign(&record, row.Fields[m.Index])
	}

	return record, nil
}

// TransformAll maps rows in order and stops at the first short row.
// The result is never nil, so an empty input encodes as an empty array.
func (t *Transformer) TransformAll(rows []types.Row) ([]types.Record, error) {
	records := make([]types.Record, 0, len(rows))

	for _, row := range rows {
		record, err := t.Transform(row)
		if err != nil {
			return nil, fmt.Errorf("failed to map row: %w", err)
		}
		records = append(records, record)
	}

	return records, nil
}
