// =============================================================================
// Certificate Payload Builder - Shared Types
// =============================================================================
//
// This package contains shared types used across multiple modules to avoid
// import cycles. Types defined here are used by:
//   - csvparser
//   - validation
//   - converter
//   - jsonwriter
//   - xlsxwriter
//
// =============================================================================

package types

// =============================================================================
// EVENT METADATA
// =============================================================================

// Default event metadata stamped onto every record.
const (
	DefaultEventName = "Hack The Winter, 2026"
	DefaultClub      = "WeCode"
	DefaultEventDate = "2026-01-22/23"
)

// EventMetadata holds the values that are identical for every record of a run.
// They never depend on row content.
type EventMetadata struct {
	// Event is the event title printed on the certificate.
	Event string `yaml:"event"`

	// Club is the organising club.
	Club string `yaml:"club"`

	// Date is the event date as free text (e.g. "2026-01-22/23").
	Date string `yaml:"date"`
}

// DefaultEventMetadata returns the metadata for Hack The Winter 2026.
func DefaultEventMetadata() EventMetadata {
	return EventMetadata{
		Event: DefaultEventName,
		Club:  DefaultClub,
		Date:  DefaultEventDate,
	}
}

// =============================================================================
// ROW
// =============================================================================

// Row is one parsed record of the input CSV file.
type Row struct {
	// Number is the 1-based ordinal of the row in the file.
	// Blank lines are not rows and do not advance the counter.
	Number int

	// Line is the physical line the row starts on (1-based).
	// Quoted fields may make a row span several lines.
	Line int

	// Fields contains the raw field values, untrimmed.
	Fields []string
}

// =============================================================================
// RECORD
// =============================================================================

// Record is one entry of the output payload.
//
// Field order here is the key order of the serialized JSON object:
// name, email, course, event, club, date, student_id.
type Record struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Course    string `json:"course"`
	Event     string `json:"event"`
	Club      string `json:"club"`
	Date      string `json:"date"`
	StudentID string `json:"student_id"`
}

// RecordKeys lists the record keys in serialization order.
var RecordKeys = []string{"name", "email", "course", "event", "club", "date", "student_id"}

// Values returns the record values in the same order as RecordKeys.
func (r Record) Values() []string {
	return []string{r.Name, r.Email, r.Course, r.Event, r.Club, r.Date, r.StudentID}
}
