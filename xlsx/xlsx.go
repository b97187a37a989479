// Package xlsx reads a spreadsheet sheet as a table source.
package xlsx

import (
	"errors"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/bjaus/tabler"
)

// ErrNoSheet is returned when the requested sheet does not exist.
var ErrNoSheet = errors.New("sheet not found")

// Options selects what part of the workbook becomes the table.
type Options struct {
	// Sheet defaults to the first sheet of the workbook.
	Sheet string
	// NoHeader treats the first row as data instead of column labels.
	NoHeader bool
}

// Source is an array-backed source over the cells of one sheet. Short rows
// are padded with empty cells to the widest row.
type Source struct {
	*tabler.ArraySource
	sheet string
}

// Sheet returns the name of the sheet read.
func (s *Source) Sheet() string { return s.sheet }

// Read loads a workbook from r and returns the selected sheet.
func Read(r io.Reader, opts Options) (*Source, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: open workbook: %w", tabler.ErrResource, err)
	}
	defer f.Close()
	return fromFile(f, opts)
}

// Open loads the workbook at path and returns the selected sheet.
func Open(path string, opts Options) (*Source, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: open workbook: %w", tabler.ErrResource, err)
	}
	defer f.Close()
	return fromFile(f, opts)
}

func fromFile(f *excelize.File, opts Options) (*Source, error) {
	sheet := opts.Sheet
	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, fmt.Errorf("%w: %w: workbook has no sheets", tabler.ErrConfiguration, ErrNoSheet)
		}
		sheet = sheets[0]
	} else if idx, err := f.GetSheetIndex(sheet); err != nil || idx < 0 {
		return nil, fmt.Errorf("%w: %w: %q", tabler.ErrConfiguration, ErrNoSheet, sheet)
	}

	records, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("%w: read sheet %q: %w", tabler.ErrExtraction, sheet, err)
	}
	columns := 0
	for _, rec := range records {
		columns = max(columns, len(rec))
	}
	for i, rec := range records {
		for len(rec) < columns {
			rec = append(rec, "")
		}
		records[i] = rec
	}

	var headers []string
	if !opts.NoHeader && len(records) > 0 {
		headers, records = records[0], records[1:]
	}
	src, err := tabler.NewArraySource(headers, tabler.StringRows(records))
	if err != nil {
		return nil, err
	}
	return &Source{ArraySource: src, sheet: sheet}, nil
}
