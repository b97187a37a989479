package tabler_test

import (
	"errors"
	"iter"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bjaus/tabler"
)

type person struct {
	Name string
	Age  int
}

var personFields = []tabler.Field[person]{
	{Name: "name", Value: func(p person) any { return p.Name }},
	{Name: "age", Value: func(p person) any { return p.Age }},
}

func people(t *testing.T, items ...person) tabler.Source {
	t.Helper()
	if items == nil {
		items = []person{{Name: "Tom", Age: 5}, {Name: "Ann", Age: 31}}
	}
	src, err := tabler.NewFieldSource(items, personFields...)
	require.NoError(t, err)
	return src
}

func array(t *testing.T, headers []string, rows ...tabler.Row) *tabler.ArraySource {
	t.Helper()
	src, err := tabler.NewArraySource(headers, rows)
	require.NoError(t, err)
	return src
}

// countingSeq counts how many times its rows are iterated.
type countingSeq struct {
	rows  []tabler.Row
	pulls int
}

func (c *countingSeq) seq() iter.Seq[tabler.Row] {
	return func(yield func(tabler.Row) bool) {
		c.pulls++
		for _, r := range c.rows {
			if !yield(r) {
				return
			}
		}
	}
}

type errWriter struct{}

func (e *errWriter) Write([]byte) (int, error) {
	return 0, errWriteFailed
}

// failAfterN fails on the (n+1)th call to Write.
type failAfterN struct {
	n     int
	calls int
}

func (f *failAfterN) Write(p []byte) (int, error) {
	if f.calls >= f.n {
		return 0, errWriteFailed
	}
	f.calls++
	return len(p), nil
}

var errWriteFailed = errors.New("write failed")
