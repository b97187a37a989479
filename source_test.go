package tabler_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bjaus/tabler"
)

func collect(t *testing.T, src tabler.Source) []tabler.Row {
	t.Helper()
	var rows []tabler.Row
	for row, err := range src.Rows() {
		require.NoError(t, err)
		rows = append(rows, row)
	}
	return rows
}

func TestFieldSource(t *testing.T) {
	t.Parallel()
	src := people(t)
	assert.Equal(t, 2, src.ColumnCount())
	assert.True(t, src.HasHeaders())
	assert.Equal(t, []string{"name", "age"}, src.Headers())
	assert.Equal(t, []tabler.Row{{"Tom", 5}, {"Ann", 31}}, collect(t, src))
}

func TestFieldSourceErrors(t *testing.T) {
	t.Parallel()
	_, err := tabler.NewFieldSource([]person{{Name: "Tom"}})
	require.ErrorIs(t, err, tabler.ErrConfiguration)

	_, err = tabler.NewFieldSource([]person{{Name: "Tom"}}, tabler.Field[person]{Name: "name"})
	require.ErrorIs(t, err, tabler.ErrExtraction)
	require.ErrorIs(t, err, tabler.ErrConfiguration)
}

func TestFieldSourceSeq(t *testing.T) {
	t.Parallel()
	src, err := tabler.NewFieldSourceSeq(slices.Values([]person{{Name: "Tom", Age: 5}}), personFields...)
	require.NoError(t, err)
	assert.Equal(t, []tabler.Row{{"Tom", 5}}, collect(t, src))

	empty, err := tabler.NewFieldSourceSeq(nil, personFields...)
	require.NoError(t, err)
	assert.Empty(t, collect(t, empty))
}

func TestMapFields(t *testing.T) {
	t.Parallel()
	items := []map[string]any{
		{"name": "Tom", "age": 5},
		{"name": "Ann"},
	}
	src, err := tabler.NewFieldSource(items, tabler.MapFields("name", "age")...)
	require.NoError(t, err)
	assert.Equal(t, []string{"name", "age"}, src.Headers())
	assert.Equal(t, []tabler.Row{{"Tom", 5}, {"Ann", nil}}, collect(t, src))

	got, err := tabler.New(src).CSV().RenderString()
	require.NoError(t, err)
	assert.Equal(t, "name,age\r\nTom,5\r\nAnn,\r\n", got)
}

func TestArraySource(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		headers []string
		rows    []tabler.Row
		columns int
	}{
		"headers":        {headers: []string{"a", "b"}, rows: []tabler.Row{{1, 2}}, columns: 2},
		"no headers":     {rows: []tabler.Row{{1, 2, 3}}, columns: 3},
		"headers only":   {headers: []string{"a"}, columns: 1},
		"nothing at all": {columns: 0},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			src, err := tabler.NewArraySource(tt.headers, tt.rows)
			require.NoError(t, err)
			assert.Equal(t, tt.columns, src.ColumnCount())
			assert.Equal(t, tt.headers != nil, src.HasHeaders())
			assert.Equal(t, tt.rows, collect(t, src))
		})
	}
}

func TestArraySourceRowLength(t *testing.T) {
	t.Parallel()
	_, err := tabler.NewArraySource([]string{"a", "b"}, []tabler.Row{{1, 2}, {3}})
	require.ErrorIs(t, err, tabler.ErrExtraction)
	require.ErrorIs(t, err, tabler.ErrRowLength)
	assert.Contains(t, err.Error(), "row 1 has 1 cells, want 2")
}

func TestStringRows(t *testing.T) {
	t.Parallel()
	got := tabler.StringRows([][]string{{"a", "b"}, {}})
	assert.Equal(t, []tabler.Row{{"a", "b"}, {}}, got)
}

func TestSeqSourceHeaderMismatch(t *testing.T) {
	t.Parallel()
	_, err := tabler.NewSeqSource([]string{"a"}, 2, nil)
	require.ErrorIs(t, err, tabler.ErrConfiguration)
	_, err = tabler.NewSeqSource(nil, -1, nil)
	require.ErrorIs(t, err, tabler.ErrConfiguration)

	src, err := tabler.NewSeqSource(nil, 1, nil)
	require.NoError(t, err)
	assert.False(t, src.HasHeaders())
	assert.Empty(t, collect(t, src))
}

func TestSelectColumns(t *testing.T) {
	t.Parallel()
	base := array(t, []string{"name", "surname", "age"}, tabler.Row{"Tom", "Smith", 5})
	src, err := tabler.SelectColumns(base, tabler.Col("surname").Col("name").As("first"))
	require.NoError(t, err)
	assert.Equal(t, 2, src.ColumnCount())
	assert.Equal(t, []string{"surname", "first"}, src.Headers())
	assert.Equal(t, []tabler.Row{{"Smith", "Tom"}}, collect(t, src))
}

func TestSelectColumnsDuplicateHeaders(t *testing.T) {
	t.Parallel()
	base := array(t, []string{"x", "x"}, tabler.Row{1, 2})
	src, err := tabler.SelectColumns(base, tabler.Col("x"))
	require.NoError(t, err)
	assert.Equal(t, []tabler.Row{{1}}, collect(t, src), "first matching column wins")
}

func TestRenameColumns(t *testing.T) {
	t.Parallel()
	base := array(t, []string{"name", "surname"}, tabler.Row{"Tom", "Smith"})
	src, err := tabler.RenameColumns(base, tabler.ColAs("name", "NAME"))
	require.NoError(t, err)
	assert.Equal(t, []string{"NAME", "surname"}, src.Headers())
	assert.Equal(t, []tabler.Row{{"Tom", "Smith"}}, collect(t, src))

	_, err = tabler.RenameColumns(base, tabler.ColAs("age", "AGE"))
	require.ErrorIs(t, err, tabler.ErrUnknownColumn)
}

func TestSelectColumnsErrors(t *testing.T) {
	t.Parallel()
	_, err := tabler.SelectColumns(nil, tabler.Col("a"))
	require.ErrorIs(t, err, tabler.ErrNoSource)

	_, err = tabler.SelectColumns(array(t, nil, tabler.Row{1}), tabler.Col("a"))
	require.ErrorIs(t, err, tabler.ErrConfiguration)
}

func TestColumnSelector(t *testing.T) {
	t.Parallel()
	var nilSel *tabler.ColumnSelector
	assert.Equal(t, 0, nilSel.Len())
	assert.Equal(t, 0, new(tabler.ColumnSelector).As("ignored").Len())
	assert.Equal(t, 3, tabler.Col("a").Col("b").As("B").Col("c").Len())
}
