package tabler

import (
	"bytes"
	"io"
	"reflect"

	"github.com/sirupsen/logrus"
)

// Line breaks accepted by [Context.WithLineBreak].
const (
	LF   = "\n"
	CR   = "\r"
	CRLF = "\r\n"
)

// Context holds everything a caller configures for a render. Unset values are
// resolved when rendering starts: Markdown writer, no escaping, standard
// output, the writer's width mode and delimiter, LF line breaks.
//
// Builder methods mutate and return the receiver. A Context must not be
// modified while one of its renders runs, and its writer must not be shared
// by concurrent renders.
type Context struct {
	source     Source
	columns    *ColumnSelector
	allColumns bool

	writer  Writer
	escaper Escaper

	out     io.Writer
	outFile string

	widths WidthPolicy

	delimiter    string
	delimiterSet bool
	lineBreak    string

	align      Property[Alignment]
	formatters Property[CellFormatter]

	log logrus.FieldLogger
}

// New returns a Context rendering src.
func New(src Source) *Context {
	return &Context{source: src}
}

// WithSource replaces the table source.
func (c *Context) WithSource(src Source) *Context {
	c.source = src
	return c
}

// To renders into w. The caller remains responsible for closing w.
func (c *Context) To(w io.Writer) *Context {
	c.out = w
	c.outFile = ""
	return c
}

// ToFile renders into the file at path, created or truncated when rendering
// starts and closed when it ends.
func (c *Context) ToFile(path string) *Context {
	c.out = nil
	c.outFile = path
	return c
}

// WithWriter sets the table writer.
func (c *Context) WithWriter(w Writer) *Context {
	c.writer = w
	return c
}

func (c *Context) WithMarkdownWriter() *Context { return c.WithWriter(&MarkdownWriter{}) }
func (c *Context) WithCSVWriter() *Context      { return c.WithWriter(&CSVWriter{}) }

func (c *Context) WithHTMLWriter(opts HTMLOptions) *Context {
	return c.WithWriter(&HTMLWriter{Options: opts})
}

func (c *Context) WithFixedWidthWriter() *Context { return c.WithWriter(&FixedWidthWriter{}) }

func (c *Context) WithBoxWriter(style BorderStyle) *Context {
	return c.WithWriter(&BoxWriter{Style: style})
}

// WithEscaper sets the escaper; nil disables escaping.
func (c *Context) WithEscaper(e Escaper) *Context {
	c.escaper = e
	return c
}

func (c *Context) WithoutEscaper() *Context        { return c.WithEscaper(nil) }
func (c *Context) WithMarkdownEscaper() *Context   { return c.WithEscaper(MarkdownEscaper{}) }
func (c *Context) WithCSVEscaper() *Context        { return c.WithEscaper(CSVEscaper{}) }
func (c *Context) WithHTMLEscaper() *Context       { return c.WithEscaper(HTMLEscaper{}) }
func (c *Context) WithSanitizingEscaper() *Context { return c.WithEscaper(NewSanitizingHTMLEscaper(nil)) }

// WithWidths sets the column width policy.
func (c *Context) WithWidths(p WidthPolicy) *Context {
	c.widths = p
	return c
}

// WithArbitraryWidths uses the given widths, one per column.
func (c *Context) WithArbitraryWidths(widths ...int) *Context {
	return c.WithWidths(ArbitraryWidths(widths...))
}

func (c *Context) WithDefaultWidths() *Context    { return c.WithWidths(WidthPolicy{Mode: WidthDefault}) }
func (c *Context) WithAlignedWidths() *Context    { return c.WithWidths(WidthPolicy{Mode: WidthAligned}) }
func (c *Context) WithoutAlignedWidths() *Context { return c.WithWidths(WidthPolicy{Mode: WidthNotAligned}) }
func (c *Context) WithEqualWidths() *Context      { return c.WithWidths(WidthPolicy{Mode: WidthEqual}) }

// WithCellDelimiter sets the cell delimiter, overriding the writer's default.
func (c *Context) WithCellDelimiter(d string) *Context {
	c.delimiter = d
	c.delimiterSet = true
	return c
}

// WithDefaultCellDelimiter reverts to the writer's default delimiter.
func (c *Context) WithDefaultCellDelimiter() *Context {
	c.delimiter = ""
	c.delimiterSet = false
	return c
}

// WithoutCellDelimiter writes cells with no delimiter at all.
func (c *Context) WithoutCellDelimiter() *Context { return c.WithCellDelimiter("") }

// WithLineBreak sets the line terminator.
func (c *Context) WithLineBreak(lb string) *Context {
	c.lineBreak = lb
	return c
}

func (c *Context) WithLineBreakLF() *Context   { return c.WithLineBreak(LF) }
func (c *Context) WithLineBreakCR() *Context   { return c.WithLineBreak(CR) }
func (c *Context) WithLineBreakCRLF() *Context { return c.WithLineBreak(CRLF) }

// WithAlign sets the table-wide alignment. It discards column and cell
// alignments set earlier.
func (c *Context) WithAlign(a Alignment) *Context {
	c.align.Set(a)
	return c
}

// WithColumnAlign sets the alignment of column col, discarding that column's
// cell alignments set earlier.
func (c *Context) WithColumnAlign(col int, a Alignment) *Context {
	c.align.SetColumn(col, a)
	return c
}

// WithCellAlign sets the alignment of a single cell.
func (c *Context) WithCellAlign(col, row int, a Alignment) *Context {
	c.align.SetCell(col, row, a)
	return c
}

// Alignments exposes the alignment property for direct configuration.
func (c *Context) Alignments() *Property[Alignment] { return &c.align }

// WithFormatter sets the table-wide cell formatter. It discards column, cell
// and type formatters set earlier.
func (c *Context) WithFormatter(f CellFormatter) *Context {
	c.formatters.Set(f)
	return c
}

func (c *Context) WithColumnFormatter(col int, f CellFormatter) *Context {
	c.formatters.SetColumn(col, f)
	return c
}

func (c *Context) WithCellFormatter(col, row int, f CellFormatter) *Context {
	c.formatters.SetCell(col, row, f)
	return c
}

// WithTypeFormatter formats every cell whose raw value has type t, unless a
// cell or column formatter applies.
func (c *Context) WithTypeFormatter(t reflect.Type, f CellFormatter) *Context {
	c.formatters.SetType(t, f)
	return c
}

// Formatters exposes the formatter property for direct configuration.
func (c *Context) Formatters() *Property[CellFormatter] { return &c.formatters }

// WithColumns renders only the selected columns, in selector order.
func (c *Context) WithColumns(sel *ColumnSelector) *Context {
	c.columns = sel
	c.allColumns = false
	return c
}

// WithColumnNames renders every column, renamed per the selector's aliases.
func (c *Context) WithColumnNames(sel *ColumnSelector) *Context {
	c.columns = sel
	c.allColumns = true
	return c
}

// WithLogger sets the logger receiving debug output of renders.
func (c *Context) WithLogger(l logrus.FieldLogger) *Context {
	c.log = l
	return c
}

// Markdown selects the Markdown writer and escaper.
func (c *Context) Markdown() *Context { return c.WithMarkdownWriter().WithMarkdownEscaper() }

// CSV selects the CSV writer and escaper with CRLF line breaks.
func (c *Context) CSV() *Context { return c.WithCSVWriter().WithCSVEscaper().WithLineBreakCRLF() }

// TSV selects the CSV writer and escaper with a tab delimiter.
func (c *Context) TSV() *Context { return c.WithCSVWriter().WithCSVEscaper().WithCellDelimiter("\t") }

// HTML selects the HTML writer and escaper.
func (c *Context) HTML(opts HTMLOptions) *Context { return c.WithHTMLWriter(opts).WithHTMLEscaper() }

// FixedWidth selects the fixed-width writer without escaping.
func (c *Context) FixedWidth() *Context { return c.WithFixedWidthWriter().WithoutEscaper() }

// Box selects the box writer without escaping.
func (c *Context) Box(style BorderStyle) *Context { return c.WithBoxWriter(style).WithoutEscaper() }

// Use applies the preset of format f.
func (c *Context) Use(f Format) error {
	switch f {
	case Markdown:
		c.Markdown()
	case CSV:
		c.CSV()
	case TSV:
		c.TSV()
	case HTML:
		c.HTML(HTMLOptions{})
	case Fixed:
		c.FixedWidth()
	case Boxed:
		c.Box(BorderRounded)
	default:
		return unsupported(f)
	}
	return nil
}

// RenderString renders into memory and returns the text. Nothing is returned
// on failure.
func (c *Context) RenderString() (string, error) {
	var buf bytes.Buffer
	if err := c.RenderTo(&buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}
