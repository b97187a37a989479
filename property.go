package tabler

import "reflect"

// HeaderRow is the row index used for property lookups of header cells.
const HeaderRow = -1

// PropertyNode is one level of a [Property] tree. A node holds either its own
// value or finer-grained children keyed by index: Set discards every child
// previously attached to the node.
type PropertyNode[T any] struct {
	value    T
	set      bool
	children map[int]*PropertyNode[T]
}

// Value returns the node's own value and whether one was set.
func (n *PropertyNode[T]) Value() (T, bool) {
	return n.value, n.set
}

// Set stores v and drops all children of the node.
func (n *PropertyNode[T]) Set(v T) {
	n.value = v
	n.set = true
	n.children = nil
}

// Unset clears the node's value and its children.
func (n *PropertyNode[T]) Unset() {
	var zero T
	n.value = zero
	n.set = false
	n.children = nil
}

// Child returns the child at index i, or nil.
func (n *PropertyNode[T]) Child(i int) *PropertyNode[T] {
	if n == nil || n.children == nil {
		return nil
	}
	return n.children[i]
}

// EnsureChild returns the child at index i, creating it when missing.
func (n *PropertyNode[T]) EnsureChild(i int) *PropertyNode[T] {
	if n.children == nil {
		n.children = make(map[int]*PropertyNode[T])
	}
	child, ok := n.children[i]
	if !ok {
		child = &PropertyNode[T]{}
		n.children[i] = child
	}
	return child
}

// Property resolves a value per (column, row) from a table default, column
// overrides and cell overrides, plus optional per-type values consulted
// between the column and table levels.
//
// Setting a level discards the finer levels below it: Set drops every column,
// cell and type override, SetColumn drops that column's cell overrides. Configure
// from coarse to fine.
//
// The zero value is ready to use.
type Property[T any] struct {
	root   PropertyNode[T]
	byType map[reflect.Type]T
}

// Root exposes the table-level node.
func (p *Property[T]) Root() *PropertyNode[T] { return &p.root }

// Set sets the table default and discards column, cell and type overrides.
func (p *Property[T]) Set(v T) {
	p.root.Set(v)
	p.byType = nil
}

// SetColumn sets the value for every cell of column col.
func (p *Property[T]) SetColumn(col int, v T) { p.root.EnsureChild(col).Set(v) }

// SetCell sets the value for a single cell. Use [HeaderRow] to target the
// header cell of col.
func (p *Property[T]) SetCell(col, row int, v T) {
	p.root.EnsureChild(col).EnsureChild(row).Set(v)
}

// SetType sets the value used for cells whose raw value has type t.
func (p *Property[T]) SetType(t reflect.Type, v T) {
	if p.byType == nil {
		p.byType = make(map[reflect.Type]T)
	}
	p.byType[t] = v
}

// Get resolves the value at (col, row): cell, then column, then table.
func (p *Property[T]) Get(col, row int) (T, bool) {
	return p.Lookup(col, row, nil)
}

// Lookup resolves the value at (col, row) for the raw cell value v: cell,
// then column, then the type of v, then table.
func (p *Property[T]) Lookup(col, row int, v any) (T, bool) {
	if column := p.root.Child(col); column != nil {
		if cell := column.Child(row); cell != nil && cell.set {
			return cell.value, true
		}
		if column.set {
			return column.value, true
		}
	}
	if v != nil && p.byType != nil {
		if tv, ok := p.byType[reflect.TypeOf(v)]; ok {
			return tv, true
		}
	}
	return p.root.Value()
}

// GetOr resolves the value at (col, row), falling back to def.
func (p *Property[T]) GetOr(col, row int, def T) T {
	if v, ok := p.Get(col, row); ok {
		return v
	}
	return def
}
