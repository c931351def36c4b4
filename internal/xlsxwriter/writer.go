// =============================================================================
// Certificate Payload Builder - XLSX Roster Writer
// =============================================================================
//
// This module writes the record collection to an XLSX workbook so organisers
// can review exactly what will be sent to the certificate service.
//
// WORKBOOK STRUCTURE:
//
//   | name  | email   | course | event                 | club   | date          | student_id |
//   |-------|---------|--------|-----------------------|--------|---------------|------------|
//   | Alice | a@x.com | Python | Hack The Winter, 2026 | WeCode | 2026-01-22/23 | S1         |
//
//   Row 1 is a bold header with the record keys; one row per record follows,
//   in payload order. Every cell is written as a string so student IDs such
//   as "007" keep their leading zeros.
//
// =============================================================================

package xlsxwriter

import (
	"fmt"

	"github.com/ginjaninja78/csv-to-json-payload/internal/types"
	"github.com/xuri/excelize/v2"
)

// =============================================================================
// ROSTER OPTIONS
// =============================================================================

// RosterOptions controls the workbook layout.
type RosterOptions struct {
	// SheetName is the name of the single worksheet.
	// Default: "Recipients"
	SheetName string

	// FreezeHeader keeps the header row visible while scrolling.
	// Default: true
	FreezeHeader bool
}

// DefaultRosterOptions returns the default roster layout.
func DefaultRosterOptions() RosterOptions {
	return RosterOptions{
		SheetName:    "Recipients",
		FreezeHeader: true,
	}
}

// =============================================================================
// ROSTER GENERATION
// =============================================================================

// WriteRoster writes records to an XLSX workbook at path, replacing any
// existing file.
func WriteRoster(path string, records []types.Record, options RosterOptions) error {
	f, err := Build(records, options)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save roster: %w", err)
	}

	return nil
}

// Build creates the roster workbook in memory. The caller closes it.
func Build(records []types.Record, options RosterOptions) (*excelize.File, error) {
	if options.SheetName == "" {
		options.SheetName = DefaultRosterOptions().SheetName
	}

	f := excelize.NewFile()

	// A new workbook starts with one sheet; rename it instead of adding one.
	if err := f.SetSheetName(f.GetSheetName(0), options.SheetName); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to name sheet: %w", err)
	}

	if err := writeHeader(f, options.SheetName); err != nil {
		f.Close()
		return nil, err
	}

	for i, record := range records {
		if err := writeRow(f, options.SheetName, i+2, record.Values()); err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to write record %d: %w", i+1, err)
		}
	}

	if options.FreezeHeader {
		err := f.SetPanes(options.SheetName, &excelize.Panes{
			Freeze:      true,
			YSplit:      1,
			TopLeftCell: "A2",
			ActivePane:  "bottomLeft",
		})
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to freeze header: %w", err)
		}
	}

	return f, nil
}

// writeHeader writes the record keys in bold on row 1.
func writeHeader(f *excelize.File, sheet string) error {
	if err := writeRow(f, sheet, 1, types.RecordKeys); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	style, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}

	last, err := excelize.CoordinatesToCellName(len(types.RecordKeys), 1)
	if err != nil {
		return err
	}

	if err := f.SetCellStyle(sheet, "A1", last, style); err != nil {
		return fmt.Errorf("failed to style header: %w", err)
	}

	return nil
}

// writeRow writes values as string cells starting at column A of rowNumber.
func writeRow(f *excelize.File, sheet string, rowNumber int, values []string) error {
	for col, value := range values {
		cell, err := excelize.CoordinatesToCellName(col+1, rowNumber)
		if err != nil {
			return err
		}
		if err := f.SetCellStr(sheet, cell, value); err != nil {
			return err
		}
	}
	return nil
}
