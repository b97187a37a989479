package tabler_test

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bjaus/tabler"
)

func TestPropertyResolution(t *testing.T) {
	t.Parallel()
	var p tabler.Property[tabler.Alignment]
	p.Set(tabler.AlignLeft)
	p.SetColumn(1, tabler.AlignRight)
	p.SetCell(1, 2, tabler.AlignCenter)

	tests := map[string]struct {
		col, row int
		want     tabler.Alignment
	}{
		"table default":   {col: 0, row: 0, want: tabler.AlignLeft},
		"column override": {col: 1, row: 0, want: tabler.AlignRight},
		"cell override":   {col: 1, row: 2, want: tabler.AlignCenter},
		"header cell":     {col: 1, row: tabler.HeaderRow, want: tabler.AlignRight},
		"unknown column":  {col: 9, row: 9, want: tabler.AlignLeft},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got, ok := p.Get(tt.col, tt.row)
			assert.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPropertySetDiscardsChildren(t *testing.T) {
	t.Parallel()

	t.Run("column discards cells", func(t *testing.T) {
		t.Parallel()
		var p tabler.Property[string]
		p.SetCell(0, 0, "cell")
		p.SetColumn(0, "column")
		assert.Equal(t, "column", p.GetOr(0, 0, "none"))
	})

	t.Run("table discards columns", func(t *testing.T) {
		t.Parallel()
		var p tabler.Property[string]
		p.SetColumn(0, "column")
		p.SetCell(1, 3, "cell")
		p.Set("table")
		assert.Equal(t, "table", p.GetOr(0, 0, "none"))
		assert.Equal(t, "table", p.GetOr(1, 3, "none"))
	})

	t.Run("fine after coarse survives", func(t *testing.T) {
		t.Parallel()
		var p tabler.Property[string]
		p.Set("table")
		p.SetColumn(0, "column")
		p.SetCell(0, 1, "cell")
		assert.Equal(t, "cell", p.GetOr(0, 1, "none"))
		assert.Equal(t, "column", p.GetOr(0, 0, "none"))
		assert.Equal(t, "table", p.GetOr(1, 0, "none"))
	})
}

func TestPropertyUnset(t *testing.T) {
	t.Parallel()
	var p tabler.Property[int]
	_, ok := p.Get(0, 0)
	assert.False(t, ok)
	assert.Equal(t, 7, p.GetOr(0, 0, 7))

	p.Set(1)
	p.SetColumn(2, 3)
	p.Root().Unset()
	_, ok = p.Get(2, 0)
	assert.False(t, ok)
}

func TestPropertyNode(t *testing.T) {
	t.Parallel()
	var n tabler.PropertyNode[string]
	assert.Nil(t, n.Child(0))
	child := n.EnsureChild(0)
	assert.Same(t, child, n.EnsureChild(0))
	child.Set("x")
	v, ok := n.Child(0).Value()
	assert.True(t, ok)
	assert.Equal(t, "x", v)
	n.Set("y")
	assert.Nil(t, n.Child(0))
}

func TestPropertyLookupByType(t *testing.T) {
	t.Parallel()
	var p tabler.Property[string]
	p.Set("table")
	p.SetType(reflect.TypeOf(0), "int")
	p.SetColumn(1, "column")

	got, _ := p.Lookup(0, 0, 42)
	assert.Equal(t, "int", got)
	got, _ = p.Lookup(0, 0, "text")
	assert.Equal(t, "table", got)
	got, _ = p.Lookup(1, 0, 42)
	assert.Equal(t, "column", got, "column beats type")
	got, _ = p.Lookup(0, 0, nil)
	assert.Equal(t, "table", got)
}

func TestPropertySetDiscardsTypes(t *testing.T) {
	t.Parallel()
	var p tabler.Property[string]
	p.SetType(reflect.TypeOf(0), "int")
	p.Set("table")
	got, ok := p.Lookup(0, 0, 5)
	assert.True(t, ok)
	assert.Equal(t, "table", got)
}

func TestPropertyHeaderCell(t *testing.T) {
	t.Parallel()
	var p tabler.Property[string]
	p.SetColumn(0, "column")
	p.SetCell(0, 0, "body")
	assert.Equal(t, "column", p.GetOr(0, tabler.HeaderRow, "none"))
	p.SetCell(0, tabler.HeaderRow, "header")
	assert.Equal(t, "header", p.GetOr(0, tabler.HeaderRow, "none"))
	assert.Equal(t, "body", p.GetOr(0, 0, "none"))
}
