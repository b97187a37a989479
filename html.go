package tabler

import (
	"html"
	"strings"
)

// HTMLOptions customizes the <table> element.
type HTMLOptions struct {
	ID    string `yaml:"id"`
	Class string `yaml:"class"`
	// Indent is one nesting level; defaults to four spaces.
	Indent string `yaml:"indent"`
}

// HTMLWriter writes a <table> of <tr> rows holding <th> header cells and
// <td> body cells, indented one level per nesting depth.
type HTMLWriter struct {
	Options HTMLOptions
}

func (w *HTMLWriter) Defaults() Defaults { return Defaults{Widths: WidthNotAligned} }

func (w *HTMLWriter) indent() string {
	if w.Options.Indent == "" {
		return "    "
	}
	return w.Options.Indent
}

func (w *HTMLWriter) BeginTable(rt *Runtime) error {
	var sb strings.Builder
	sb.WriteString("<table")
	if w.Options.ID != "" {
		sb.WriteString(` id="` + html.EscapeString(w.Options.ID) + `"`)
	}
	if w.Options.Class != "" {
		sb.WriteString(` class="` + html.EscapeString(w.Options.Class) + `"`)
	}
	sb.WriteString(">")
	return rt.WriteLine(sb.String())
}

func (w *HTMLWriter) BeginHeader(rt *Runtime) error { return rt.WriteLine(w.indent() + "<tr>") }
func (w *HTMLWriter) EndHeader(rt *Runtime) error   { return rt.WriteLine(w.indent() + "</tr>") }

func (w *HTMLWriter) BeginRow(rt *Runtime, row int) error { return rt.WriteLine(w.indent() + "<tr>") }
func (w *HTMLWriter) EndRow(rt *Runtime, row int) error   { return rt.WriteLine(w.indent() + "</tr>") }

func (w *HTMLWriter) WriteCell(rt *Runtime, c Cursor, cell string) error {
	tag := "td"
	if c.Header() {
		tag = "th"
	}
	style := ""
	if align, ok := rt.Align(c.Column, c.Row); ok {
		style = alignStyle(align)
	}
	ind := w.indent()
	return rt.WriteLine(ind + ind + "<" + tag + style + ">" + cell + "</" + tag + ">")
}

func (w *HTMLWriter) EndTable(rt *Runtime) error { return rt.WriteLine("</table>") }

func alignStyle(a Alignment) string {
	switch a {
	case AlignRight:
		return ` style="text-align: right;"`
	case AlignCenter:
		return ` style="text-align: center;"`
	default:
		return ` style="text-align: left;"`
	}
}
