package tabler

import (
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/sirupsen/logrus"
)

var discardLogger = func() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}()

// Runtime is the resolved state of a single render: the effective source,
// writer, escaper, delimiter, line break, widths and destination. It lives
// for one render call only and is not safe for concurrent use.
type Runtime struct {
	ctx *Context

	source  Source
	writer  Writer
	escaper Escaper

	delimiter string
	lineBreak string
	mode      WidthMode
	widths    []int
	headers   []string

	out    io.Writer
	closer io.Closer
	log    logrus.FieldLogger
}

// resolve turns the caller's configuration into a runtime. No output is
// opened and no source row is read.
func (c *Context) resolve() (*Runtime, error) {
	rt := &Runtime{ctx: c, log: c.log}
	if rt.log == nil {
		rt.log = discardLogger
	}
	if c.source == nil {
		return nil, fmt.Errorf("%w: %w", ErrConfiguration, ErrNoSource)
	}
	rt.source = c.source
	if c.columns.Len() > 0 || c.allColumns {
		var (
			cs  *ColumnSource
			err error
		)
		if c.allColumns {
			cs, err = RenameColumns(c.source, c.columns)
		} else {
			cs, err = SelectColumns(c.source, c.columns)
		}
		if err != nil {
			return nil, err
		}
		rt.source = cs
	}
	if rt.source.ColumnCount() < 0 {
		return nil, fmt.Errorf("%w: negative column count %d", ErrConfiguration, rt.source.ColumnCount())
	}
	if rt.source.HasHeaders() && len(rt.source.Headers()) != rt.source.ColumnCount() {
		return nil, fmt.Errorf("%w: %d headers for %d columns",
			ErrConfiguration, len(rt.source.Headers()), rt.source.ColumnCount())
	}

	rt.writer = c.writer
	if rt.writer == nil {
		rt.writer = &MarkdownWriter{}
	}
	defaults := rt.writer.Defaults()

	rt.delimiter = defaults.Delimiter
	if c.delimiterSet {
		rt.delimiter = c.delimiter
	}
	rt.lineBreak = c.lineBreak
	if rt.lineBreak == "" {
		rt.lineBreak = LF
	}

	if err := c.widths.validate(); err != nil {
		return nil, err
	}
	rt.mode = c.widths.resolve(defaults.Widths)
	if rt.mode == WidthArbitrary {
		if len(c.widths.Widths) != rt.source.ColumnCount() {
			return nil, fmt.Errorf("%w: %w: got %d widths for %d columns",
				ErrConfiguration, ErrWidthMismatch, len(c.widths.Widths), rt.source.ColumnCount())
		}
		rt.widths = slices.Clone(c.widths.Widths)
	}

	// The escaper is bound last so it sees the resolved delimiter and line break.
	rt.escaper = c.escaper
	if rt.escaper == nil {
		rt.escaper = DummyEscaper{}
	}
	if b, ok := rt.escaper.(RenderBinder); ok {
		rt.escaper = b.BeginRender(rt)
	}

	rt.log.WithFields(logrus.Fields{
		"writer":    fmt.Sprintf("%T", rt.writer),
		"escaper":   fmt.Sprintf("%T", rt.escaper),
		"widths":    rt.mode.String(),
		"columns":   rt.source.ColumnCount(),
		"headers":   rt.source.HasHeaders(),
		"delimiter": rt.delimiter,
	}).Debug("Resolved render configuration.")
	return rt, nil
}

// open resolves the destination. A file destination is owned by the runtime
// and released by close.
func (rt *Runtime) open(dest io.Writer) error {
	switch {
	case dest != nil:
		rt.out = dest
	case rt.ctx.outFile != "":
		f, err := os.Create(rt.ctx.outFile)
		if err != nil {
			return fmt.Errorf("%w: open output: %w", ErrResource, err)
		}
		rt.out = f
		rt.closer = f
	case rt.ctx.out != nil:
		rt.out = rt.ctx.out
	default:
		rt.out = os.Stdout
	}
	return nil
}

func (rt *Runtime) close() error {
	if rt.closer == nil {
		return nil
	}
	err := rt.closer.Close()
	rt.closer = nil
	if err != nil {
		return fmt.Errorf("%w: close output: %w", ErrResource, err)
	}
	return nil
}

// Source returns the effective source, after column selection.
func (rt *Runtime) Source() Source { return rt.source }

// ColumnCount returns the number of rendered columns.
func (rt *Runtime) ColumnCount() int { return rt.source.ColumnCount() }

// Delimiter returns the resolved cell delimiter, possibly empty.
func (rt *Runtime) Delimiter() string { return rt.delimiter }

// LineBreak returns the resolved line terminator.
func (rt *Runtime) LineBreak() string { return rt.lineBreak }

// WidthMode returns the resolved width mode; never WidthDefault.
func (rt *Runtime) WidthMode() WidthMode { return rt.mode }

// HasWidths reports whether cells are padded to column widths.
func (rt *Runtime) HasWidths() bool { return rt.widths != nil }

// Width returns the width of column col. It panics without widths.
func (rt *Runtime) Width(col int) int { return rt.widths[col] }

// Widths returns a copy of the column widths, or nil.
func (rt *Runtime) Widths() []int { return slices.Clone(rt.widths) }

// Align resolves the alignment at (col, row) and whether one was configured.
func (rt *Runtime) Align(col, row int) (Alignment, bool) {
	return rt.ctx.align.Get(col, row)
}

// Logger returns the render's logger.
func (rt *Runtime) Logger() logrus.FieldLogger { return rt.log }

// WriteString writes s to the destination.
func (rt *Runtime) WriteString(s string) error {
	_, err := io.WriteString(rt.out, s)
	return err
}

// WriteLine writes s followed by the line break.
func (rt *Runtime) WriteLine(s string) error {
	return rt.WriteString(s + rt.lineBreak)
}

// pad aligns cell within its column width when widths are resolved.
func (rt *Runtime) pad(c Cursor, cell string) string {
	if rt.widths == nil {
		return cell
	}
	return alignCell(cell, rt.widths[c.Column], rt.ctx.align.GetOr(c.Column, c.Row, AlignLeft))
}

// formatCell renders a raw value through its formatter and the escaper.
func (rt *Runtime) formatCell(col, row int, v any) (string, error) {
	f, ok := rt.ctx.formatters.Lookup(col, row, v)
	if !ok || f == nil {
		f = DefaultFormatter
	}
	s, err := f.FormatCell(v)
	if err != nil {
		return "", fmt.Errorf("%w: format cell (%d, %d): %w", ErrExtraction, col, row, err)
	}
	return rt.escaper.Escape(s), nil
}
