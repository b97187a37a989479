package tabler

import (
	"fmt"
	"iter"
)

// SeqSource is a one-shot source over an iterator of rows. Rows are checked
// against the column count as they arrive.
type SeqSource struct {
	headers []string
	columns int
	seq     iter.Seq[Row]
}

// NewSeqSource returns a source reading rows from seq. columns must match
// len(headers) when headers is non-nil.
func NewSeqSource(headers []string, columns int, seq iter.Seq[Row]) (*SeqSource, error) {
	if headers != nil && len(headers) != columns {
		return nil, fmt.Errorf("%w: %d headers for %d columns", ErrConfiguration, len(headers), columns)
	}
	if columns < 0 {
		return nil, fmt.Errorf("%w: negative column count %d", ErrConfiguration, columns)
	}
	return &SeqSource{headers: headers, columns: columns, seq: seq}, nil
}

// NewChanSource returns a source reading rows from ch until it is closed.
func NewChanSource(headers []string, columns int, ch <-chan Row) (*SeqSource, error) {
	return NewSeqSource(headers, columns, chanToIter(ch))
}

func chanToIter[T any](ch <-chan T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for item := range ch {
			if !yield(item) {
				return
			}
		}
	}
}

func (s *SeqSource) ColumnCount() int  { return s.columns }
func (s *SeqSource) HasHeaders() bool  { return s.headers != nil }
func (s *SeqSource) Headers() []string { return s.headers }

func (s *SeqSource) Rows() iter.Seq2[Row, error] {
	return func(yield func(Row, error) bool) {
		if s.seq == nil {
			return
		}
		i := 0
		for row := range s.seq {
			if len(row) != s.columns {
				yield(nil, rowLengthError(i, len(row), s.columns))
				return
			}
			if !yield(row, nil) {
				return
			}
			i++
		}
	}
}
