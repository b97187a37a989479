// Package sqlsource exposes a database/sql result set as a table source.
//
// The source is one-shot: rows are scanned as the render pulls them, and the
// result set is closed when iteration ends.
package sqlsource

import (
	"database/sql"
	"fmt"
	"iter"

	"github.com/bjaus/tabler"
)

// Source streams the rows of a query result. Column names become headers.
type Source struct {
	rows    *sql.Rows
	columns []string
}

// New wraps rows. The caller must not use rows afterwards.
func New(rows *sql.Rows) (*Source, error) {
	columns, err := rows.Columns()
	if err != nil {
		rows.Close()
		return nil, fmt.Errorf("%w: read columns: %w", tabler.ErrExtraction, err)
	}
	return &Source{rows: rows, columns: columns}, nil
}

func (s *Source) ColumnCount() int  { return len(s.columns) }
func (s *Source) HasHeaders() bool  { return true }
func (s *Source) Headers() []string { return s.columns }

// Rows scans the result set. Byte slices are returned as strings.
func (s *Source) Rows() iter.Seq2[tabler.Row, error] {
	return func(yield func(tabler.Row, error) bool) {
		defer s.rows.Close()
		for s.rows.Next() {
			values := make([]any, len(s.columns))
			dest := make([]any, len(s.columns))
			for i := range values {
				dest[i] = &values[i]
			}
			if err := s.rows.Scan(dest...); err != nil {
				yield(nil, fmt.Errorf("%w: scan row: %w", tabler.ErrExtraction, err))
				return
			}
			for i, v := range values {
				if b, ok := v.([]byte); ok {
					values[i] = string(b)
				}
			}
			if !yield(values, nil) {
				return
			}
		}
		if err := s.rows.Err(); err != nil {
			yield(nil, fmt.Errorf("%w: %w", tabler.ErrExtraction, err))
		}
	}
}

// Close releases the result set when it is not going to be rendered.
func (s *Source) Close() error { return s.rows.Close() }
