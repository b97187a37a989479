package tabler

import (
	"fmt"
	"iter"
	"strings"
)

type columnEntry struct {
	name  string
	alias string
}

// ColumnSelector lists columns by header name, each with an optional alias.
//
//	tabler.Col("contact").As("CONTACT").Col("address")
type ColumnSelector struct {
	entries []columnEntry
}

// Col starts a selector with the column name.
func Col(name string) *ColumnSelector { return new(ColumnSelector).Col(name) }

// ColAs starts a selector with the column name and its alias.
func ColAs(name, alias string) *ColumnSelector { return new(ColumnSelector).Col(name).As(alias) }

// Col appends a column.
func (s *ColumnSelector) Col(name string) *ColumnSelector {
	s.entries = append(s.entries, columnEntry{name: name})
	return s
}

// As sets the alias of the last appended column.
func (s *ColumnSelector) As(alias string) *ColumnSelector {
	if n := len(s.entries); n > 0 {
		s.entries[n-1].alias = alias
	}
	return s
}

// Len returns the number of selected columns.
func (s *ColumnSelector) Len() int {
	if s == nil {
		return 0
	}
	return len(s.entries)
}

// ColumnSource restricts, reorders and renames the columns of another source
// without copying row data. It is immutable once built.
type ColumnSource struct {
	src   Source
	order []int
	names []string
}

// SelectColumns returns a source exposing only the selected columns, in
// selector order. A nil or empty selector keeps every column.
func SelectColumns(src Source, sel *ColumnSelector) (*ColumnSource, error) {
	return buildColumnSource(src, sel, false)
}

// RenameColumns keeps every column in its original order and applies the
// selector's aliases.
func RenameColumns(src Source, sel *ColumnSelector) (*ColumnSource, error) {
	return buildColumnSource(src, sel, true)
}

func buildColumnSource(src Source, sel *ColumnSelector, all bool) (*ColumnSource, error) {
	if src == nil {
		return nil, fmt.Errorf("%w: %w", ErrConfiguration, ErrNoSource)
	}
	if !src.HasHeaders() {
		return nil, fmt.Errorf("%w: column selection requires a source with headers", ErrConfiguration)
	}
	headers := src.Headers()
	index := make(map[string]int, len(headers))
	for i := len(headers) - 1; i >= 0; i-- {
		index[headers[i]] = i
	}
	resolve := func(name string) (int, error) {
		i, ok := index[name]
		if !ok {
			return 0, fmt.Errorf("%w: %w: %q (valid columns: %s)",
				ErrConfiguration, ErrUnknownColumn, name, strings.Join(headers, ", "))
		}
		return i, nil
	}

	cs := &ColumnSource{src: src}
	if all || sel.Len() == 0 {
		aliases := make(map[int]string)
		for _, e := range entriesOf(sel) {
			i, err := resolve(e.name)
			if err != nil {
				return nil, err
			}
			if e.alias != "" {
				aliases[i] = e.alias
			}
		}
		for i, h := range headers {
			cs.order = append(cs.order, i)
			if a, ok := aliases[i]; ok {
				h = a
			}
			cs.names = append(cs.names, h)
		}
		return cs, nil
	}
	for _, e := range sel.entries {
		i, err := resolve(e.name)
		if err != nil {
			return nil, err
		}
		name := e.alias
		if name == "" {
			name = headers[i]
		}
		cs.order = append(cs.order, i)
		cs.names = append(cs.names, name)
	}
	return cs, nil
}

func entriesOf(sel *ColumnSelector) []columnEntry {
	if sel == nil {
		return nil
	}
	return sel.entries
}

func (s *ColumnSource) ColumnCount() int  { return len(s.order) }
func (s *ColumnSource) HasHeaders() bool  { return true }
func (s *ColumnSource) Headers() []string { return s.names }

func (s *ColumnSource) Rows() iter.Seq2[Row, error] {
	return func(yield func(Row, error) bool) {
		want := s.src.ColumnCount()
		i := 0
		for row, err := range s.src.Rows() {
			if err != nil {
				yield(nil, err)
				return
			}
			if len(row) != want {
				yield(nil, rowLengthError(i, len(row), want))
				return
			}
			out := make(Row, len(s.order))
			for j, k := range s.order {
				out[j] = row[k]
			}
			if !yield(out, nil) {
				return
			}
			i++
		}
	}
}
