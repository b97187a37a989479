package tabler

import (
	"fmt"
	"iter"
	"slices"
)

// Row is one record of raw, unformatted cell values.
type Row = []any

// Source provides a table: a fixed column count, optional headers and a
// finite sequence of rows. Every row has exactly ColumnCount cells.
//
// Rows may be one-shot: a render pulls it exactly once and sources are not
// safe for concurrent iteration.
type Source interface {
	ColumnCount() int
	HasHeaders() bool
	// Headers returns the column labels. Only meaningful when HasHeaders.
	Headers() []string
	Rows() iter.Seq2[Row, error]
}

func rowLengthError(row, got, want int) error {
	return fmt.Errorf("%w: %w: row %d has %d cells, want %d", ErrExtraction, ErrRowLength, row, got, want)
}

// Field names a column of a [FieldSource] and extracts its value from an item.
type Field[T any] struct {
	Name  string
	Value func(item T) any
}

// FieldSource derives one row per item by calling every field's extractor.
type FieldSource[T any] struct {
	fields  []Field[T]
	headers []string
	items   iter.Seq[T]
}

// NewFieldSource returns a source over items with one column per field.
func NewFieldSource[T any](items []T, fields ...Field[T]) (*FieldSource[T], error) {
	return NewFieldSourceSeq(slices.Values(items), fields...)
}

// NewFieldSourceSeq is [NewFieldSource] over an iterator.
func NewFieldSourceSeq[T any](items iter.Seq[T], fields ...Field[T]) (*FieldSource[T], error) {
	if len(fields) == 0 {
		return nil, fmt.Errorf("%w: field source needs at least one field", ErrConfiguration)
	}
	headers := make([]string, len(fields))
	for i, f := range fields {
		if f.Value == nil {
			return nil, fmt.Errorf("%w: %w: field %q has no value extractor", ErrConfiguration, ErrExtraction, f.Name)
		}
		headers[i] = f.Name
	}
	if items == nil {
		items = func(func(T) bool) {}
	}
	return &FieldSource[T]{fields: fields, headers: headers, items: items}, nil
}

func (s *FieldSource[T]) ColumnCount() int  { return len(s.fields) }
func (s *FieldSource[T]) HasHeaders() bool  { return true }
func (s *FieldSource[T]) Headers() []string { return s.headers }

func (s *FieldSource[T]) Rows() iter.Seq2[Row, error] {
	return func(yield func(Row, error) bool) {
		for item := range s.items {
			row := make(Row, len(s.fields))
			for i, f := range s.fields {
				row[i] = f.Value(item)
			}
			if !yield(row, nil) {
				return
			}
		}
	}
}

// MapFields returns fields reading the given keys from map items, e.g.
// decoded JSON objects. Missing keys yield nil.
func MapFields(keys ...string) []Field[map[string]any] {
	fields := make([]Field[map[string]any], len(keys))
	for i, k := range keys {
		fields[i] = Field[map[string]any]{
			Name:  k,
			Value: func(m map[string]any) any { return m[k] },
		}
	}
	return fields
}

// ArraySource maps each element of an in-memory slice to a row.
type ArraySource struct {
	headers []string
	rows    []Row
	columns int
}

// NewArraySource returns a source over rows. The column count is len(headers)
// when headers is non-nil, else the length of the first row.
func NewArraySource(headers []string, rows []Row) (*ArraySource, error) {
	columns := len(headers)
	if headers == nil && len(rows) > 0 {
		columns = len(rows[0])
	}
	for i, row := range rows {
		if len(row) != columns {
			return nil, rowLengthError(i, len(row), columns)
		}
	}
	return &ArraySource{headers: headers, rows: rows, columns: columns}, nil
}

// StringRows converts string records to rows.
func StringRows(records [][]string) []Row {
	rows := make([]Row, len(records))
	for i, rec := range records {
		row := make(Row, len(rec))
		for j, v := range rec {
			row[j] = v
		}
		rows[i] = row
	}
	return rows
}

func (s *ArraySource) ColumnCount() int  { return s.columns }
func (s *ArraySource) HasHeaders() bool  { return s.headers != nil }
func (s *ArraySource) Headers() []string { return s.headers }

func (s *ArraySource) Rows() iter.Seq2[Row, error] {
	return func(yield func(Row, error) bool) {
		for _, row := range s.rows {
			if !yield(row, nil) {
				return
			}
		}
	}
}
