package tabler

import (
	"errors"
	"io"
	"iter"

	"github.com/sirupsen/logrus"
)

// Render renders the table to the configured destination.
func (c *Context) Render() error {
	return c.render(nil)
}

// RenderTo renders the table to w instead of the configured destination.
// A nil w falls back to the configured destination.
func (c *Context) RenderTo(w io.Writer) error {
	return c.render(w)
}

// render runs one pass: resolve the configuration, measure widths when the
// policy needs it, then emit the header and every row through the writer.
// Any error aborts the pass; an output file opened here is closed on every
// path.
func (c *Context) render(dest io.Writer) (err error) {
	rt, err := c.resolve()
	if err != nil {
		return err
	}
	rows, err := rt.prepare()
	if err != nil {
		return err
	}
	if err := rt.open(dest); err != nil {
		return err
	}
	defer func() {
		if cerr := rt.close(); cerr != nil {
			err = errors.Join(err, cerr)
		}
	}()
	return rt.emit(rows)
}

// prepare escapes the headers and, for aligned and equal widths, renders the
// whole source once to measure it. The measured rows are replayed by emit so
// the source is still pulled exactly once.
func (rt *Runtime) prepare() (iter.Seq2[[]string, error], error) {
	if rt.source.HasHeaders() {
		rt.headers = make([]string, 0, rt.source.ColumnCount())
		for _, h := range rt.source.Headers() {
			rt.headers = append(rt.headers, rt.escaper.Escape(h))
		}
	}
	if rt.mode != WidthAligned && rt.mode != WidthEqual {
		return rt.cells(), nil
	}
	var rows [][]string
	for cells, err := range rt.cells() {
		if err != nil {
			return nil, err
		}
		rows = append(rows, cells)
	}
	rt.widths = measureWidths(rt.source.ColumnCount(), rt.headers, rows)
	if rt.mode == WidthEqual {
		equalize(rt.widths)
	}
	rt.log.WithFields(logrus.Fields{
		"rows":   len(rows),
		"widths": rt.widths,
	}).Debug("Measured column widths.")
	return func(yield func([]string, error) bool) {
		for _, cells := range rows {
			if !yield(cells, nil) {
				return
			}
		}
	}, nil
}

// cells pulls source rows and renders every value to escaped text.
func (rt *Runtime) cells() iter.Seq2[[]string, error] {
	return func(yield func([]string, error) bool) {
		want := rt.source.ColumnCount()
		row := 0
		for values, err := range rt.source.Rows() {
			if err != nil {
				yield(nil, err)
				return
			}
			if len(values) != want {
				yield(nil, rowLengthError(row, len(values), want))
				return
			}
			cells := make([]string, len(values))
			for col, v := range values {
				s, err := rt.formatCell(col, row, v)
				if err != nil {
					yield(nil, err)
					return
				}
				cells[col] = s
			}
			if !yield(cells, nil) {
				return
			}
			row++
		}
	}
}

func (rt *Runtime) emit(rows iter.Seq2[[]string, error]) error {
	w := rt.writer
	if err := w.BeginTable(rt); err != nil {
		return err
	}
	if rt.headers != nil {
		if err := w.BeginHeader(rt); err != nil {
			return err
		}
		for col, h := range rt.headers {
			c := Cursor{Column: col, Row: HeaderRow}
			if err := w.WriteCell(rt, c, rt.pad(c, h)); err != nil {
				return err
			}
		}
		if err := w.EndHeader(rt); err != nil {
			return err
		}
	}
	n := 0
	for cells, err := range rows {
		if err != nil {
			return err
		}
		if err := w.BeginRow(rt, n); err != nil {
			return err
		}
		for col, cell := range cells {
			c := Cursor{Column: col, Row: n}
			if err := w.WriteCell(rt, c, rt.pad(c, cell)); err != nil {
				return err
			}
		}
		if err := w.EndRow(rt, n); err != nil {
			return err
		}
		n++
	}
	if err := w.EndTable(rt); err != nil {
		return err
	}
	rt.log.WithField("rows", n).Debug("Rendered table.")
	return nil
}
