package csvparser

import (
	"bufio"
	"io"
	"strings"
)

// parseState is the position of the reader within a record.
type parseState int

const (
	startRecord parseState = iota
	startField
	inField
	inQuotedField
	quoteInQuotedField
	eatCRNL
)

// Reader reads records in the spreadsheet CSV dialect: comma separated,
// double-quote quoting with doubled quotes, and no strict quote checks.
//
// It differs from encoding/csv in two ways:
//   - Line breaks inside a quoted field are kept byte for byte, so "a\r\nb"
//     stays "a\r\nb" instead of becoming "a\nb".
//   - A quote that ends a quoted section before the delimiter closes the
//     quotes, and the rest of the field is read as plain text: "Bo"b reads
//     as Bob.
//
// A quote inside an unquoted field is a literal character. An unterminated
// quoted field runs to the end of the input.
type Reader struct {
	src *bufio.Reader

	// line is the 1-based physical line of the next rune.
	line int

	// lineOpen reports whether runes of the current line have been read.
	lineOpen bool
}

// NewReader returns a Reader reading from r.
func NewReader(r io.Reader) *Reader {
	return &Reader{
		src:  bufio.NewReader(r),
		line: 1,
	}
}

// Read returns the fields of the next record and the line it starts on.
// Blank lines are skipped. At the end of the input Read returns io.EOF.
func (r *Reader) Read() ([]string, int, error) {
	for {
		fields, line, err := r.readRecord()
		if err != nil {
			return nil, 0, err
		}
		if len(fields) > 0 {
			return fields, line, nil
		}
	}
}

// readRecord reads one record. A blank line yields an empty, non-error record.
func (r *Reader) readRecord() ([]string, int, error) {
	var (
		fields []string
		field  strings.Builder
		state  = startRecord
		start  = r.line
	)

	saveField := func() {
		fields = append(fields, field.String())
		field.Reset()
	}

	step := func(c rune) {
		if state == startRecord {
			if c == '\n' || c == '\r' {
				state = eatCRNL
				return
			}
			start = r.line
			state = startField
		}

		switch state {
		case startField:
			switch c {
			case '\n', '\r':
				saveField()
				state = eatCRNL
			case '"':
				state = inQuotedField
			case ',':
				saveField()
			default:
				field.WriteRune(c)
				state = inField
			}

		case inField:
			switch c {
			case '\n', '\r':
				saveField()
				state = eatCRNL
			case ',':
				saveField()
				state = startField
			default:
				field.WriteRune(c)
			}

		case inQuotedField:
			if c == '"' {
				state = quoteInQuotedField
			} else {
				field.WriteRune(c)
			}

		case quoteInQuotedField:
			switch c {
			case '"':
				field.WriteRune(c)
				state = inQuotedField
			case ',':
				saveField()
				state = startField
			case '\n', '\r':
				saveField()
				state = eatCRNL
			default:
				field.WriteRune(c)
				state = inField
			}

		case eatCRNL:
			// Only the rest of a line break arrives here.
		}
	}

	endLine := func() {
		switch state {
		case startField, inField, quoteInQuotedField:
			saveField()
			state = startRecord
		case eatCRNL:
			state = startRecord
		}
		r.line++
		r.lineOpen = false
	}

	for {
		c, _, err := r.src.ReadRune()
		if err == io.EOF {
			if r.lineOpen {
				endLine()
				if state == startRecord {
					return fields, start, nil
				}
			}
			if state == inQuotedField {
				saveField()
				return fields, start, nil
			}
			return nil, 0, io.EOF
		}
		if err != nil {
			return nil, 0, err
		}

		r.lineOpen = true
		step(c)

		if c == '\n' || (c == '\r' && !r.nextIs('\n')) {
			endLine()
			if state == startRecord {
				return fields, start, nil
			}
		}
	}
}

// nextIs reports whether the next byte of input is b.
func (r *Reader) nextIs(b byte) bool {
	next, err := r.src.Peek(1)
	return err == nil && next[0] == b
}
