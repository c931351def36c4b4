// =============================================================================
// Certificate Payload Builder - JSON Writer Module
// =============================================================================
//
// This module serializes the record collection into the payload document
// consumed by the certificate service's bulk endpoint.
//
// JSON STRUCTURE:
//   [
//     {
//       "name": "Alice",
//       "email": "a@x.com",
//       "course": "Python",
//       "event": "Hack The Winter, 2026",
//       "club": "WeCode",
//       "date": "2026-01-22/23",
//       "student_id": "S1"
//     }
//   ]
//
//   Keys always appear in the order above. An empty collection is "[]".
//   Characters outside printable ASCII are written as \uXXXX escapes
//   ("José" becomes "Jos\u00e9"), so the file is plain ASCII.
//
// =============================================================================

package jsonwriter

import (
	"bytes"
	"encoding/json"
	"fmt"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/ginjaninja78/csv-to-json-payload/internal/types"
	"github.com/ginjaninja78/csv-to-json-payload/pkg/utils"
)

// =============================================================================
// JSON GENERATION OPTIONS
// =============================================================================

// GenerateOptions contains options for JSON generation.
type GenerateOptions struct {
	// Indent is the string used for one level of indentation.
	// Default: "  " (two spaces)
	Indent string

	// EscapeHTML escapes <, > and & inside strings.
	// Default: false
	EscapeHTML bool

	// TrailingNewline ends the document with a newline.
	// Default: false
	TrailingNewline bool

	// ASCIIOnly writes every character above U+007E as a \uXXXX escape,
	// using a surrogate pair outside the Basic Multilingual Plane.
	// Default: true
	ASCIIOnly bool
}

// DefaultGenerateOptions returns the default generation options.
func DefaultGenerateOptions() GenerateOptions {
	return GenerateOptions{
		Indent:          "  ",
		EscapeHTML:      false,
		TrailingNewline: false,
		ASCIIOnly:       true,
	}
}

// =============================================================================
// JSON GENERATION FUNCTIONS
// =============================================================================

// Generate serializes records with the default options.
func Generate(records []types.Record) ([]byte, error) {
	return GenerateWithOptions(records, DefaultGenerateOptions())
}

// GenerateWithOptions serializes records as a single JSON array.
func GenerateWithOptions(records []types.Record, options GenerateOptions) ([]byte, error) {
	// A nil slice would encode as null.
	if records == nil {
		records = []types.Record{}
	}

	var buffer bytes.Buffer

	encoder := json.NewEncoder(&buffer)
	encoder.SetIndent("", options.Indent)
	encoder.SetEscapeHTML(options.EscapeHTML)

	if err := encoder.Encode(records); err != nil {
		return nil, fmt.Errorf("failed to marshal JSON: %w", err)
	}

	// Encode always terminates the value with a newline.
	out := buffer.Bytes()
	if options.ASCIIOnly {
		out = escapeNonASCII(out)
	}
	if !options.TrailingNewline {
		out = bytes.TrimSuffix(out, []byte("\n"))
	}

	return out, nil
}

// Write serializes records and writes them to path, replacing any existing
// file. The document is serialized and checked against the payload schema
// before the file is opened.
//
// RETURNS:
//   - The number of bytes written.
//   - An error if serialization, the schema check or the write fails.
func Write(path string, records []types.Record) (int, error) {
	data, err := Generate(records)
	if err != nil {
		return 0, err
	}

	if err := Verify(data); err != nil {
		return 0, err
	}

	if err := utils.WriteFile(path, data); err != nil {
		return 0, err
	}

	return len(data), nil
}

// escapeNonASCII rewrites every rune of data at or above U+007F as a
// lowercase \uXXXX escape. Non-ASCII runes only occur inside strings, where
// the escape decodes to the same text.
func escapeNonASCII(data []byte) []byte {
	var out bytes.Buffer
	out.Grow(len(data))

	for len(data) > 0 {
		c := data[0]
		if c < utf8.RuneSelf && c != 0x7f {
			out.WriteByte(c)
			data = data[1:]
			continue
		}

		r, size := utf8.DecodeRune(data)
		data = data[size:]

		if r > 0xffff {
			r1, r2 := utf16.EncodeRune(r)
			fmt.Fprintf(&out, `\u%04x\u%04x`, r1, r2)
			continue
		}
		fmt.Fprintf(&out, `\u%04x`, r)
	}

	return out.Bytes()
}
