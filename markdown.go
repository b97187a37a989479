package tabler

import (
	"strings"
)

// MarkdownWriter writes a GitHub-flavored pipe table. The header is followed
// by a separator row of dashes sized to the column widths.
type MarkdownWriter struct {
	// AlignMarkers adds ':' markers to the separator for columns with an
	// explicit alignment.
	AlignMarkers bool

	headerWidths []int
}

func (w *MarkdownWriter) Defaults() Defaults { return Defaults{Widths: WidthAligned} }

func (w *MarkdownWriter) BeginTable(rt *Runtime) error {
	w.headerWidths = w.headerWidths[:0]
	return nil
}

func (w *MarkdownWriter) BeginHeader(rt *Runtime) error { return nil }

func (w *MarkdownWriter) WriteCell(rt *Runtime, c Cursor, cell string) error {
	if c.Header() {
		w.headerWidths = append(w.headerWidths, measure(cell))
	}
	return rt.WriteString("| " + cell + " ")
}

func (w *MarkdownWriter) EndHeader(rt *Runtime) error {
	if err := rt.WriteLine("|"); err != nil {
		return err
	}
	var sb strings.Builder
	for i := range rt.ColumnCount() {
		width := 0
		if rt.HasWidths() {
			width = rt.Width(i)
		} else if i < len(w.headerWidths) {
			width = w.headerWidths[i]
		}
		left, right := " ", " "
		if w.AlignMarkers {
			left, right = separatorMargins(rt, i)
		}
		sb.WriteString("|")
		sb.WriteString(left)
		sb.WriteString(strings.Repeat("-", max(width, 1)))
		sb.WriteString(right)
	}
	sb.WriteString("|")
	return rt.WriteLine(sb.String())
}

func separatorMargins(rt *Runtime, col int) (string, string) {
	align, ok := rt.Align(col, HeaderRow)
	if !ok {
		return " ", " "
	}
	switch align {
	case AlignRight:
		return " ", ":"
	case AlignCenter:
		return ":", ":"
	default:
		return ":", " "
	}
}

func (w *MarkdownWriter) BeginRow(rt *Runtime, row int) error { return nil }

func (w *MarkdownWriter) EndRow(rt *Runtime, row int) error { return rt.WriteLine("|") }

func (w *MarkdownWriter) EndTable(rt *Runtime) error { return nil }
