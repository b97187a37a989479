package tabler

// Cursor locates the cell passed to [Writer.WriteCell].
type Cursor struct {
	// Column is zero-based and restarts at every row.
	Column int
	// Row is the zero-based body row, or HeaderRow.
	Row int
}

// Header reports whether the cursor is in the header row.
func (c Cursor) Header() bool { return c.Row == HeaderRow }

// Defaults are a writer's preferences, adopted when the caller leaves the
// corresponding setting unset.
type Defaults struct {
	Widths WidthMode
	// Delimiter is the default cell delimiter; empty means none.
	Delimiter string
}

// Writer serializes table structure into one text format. The pipeline calls
// it in strict order:
//
//	BeginTable
//	[BeginHeader WriteCell... EndHeader]
//	(BeginRow WriteCell... EndRow)*
//	EndTable
//
// Cells arrive escaped and, when widths are resolved, padded and aligned.
// A Writer may hold state between calls and must not be shared by
// concurrent renders.
type Writer interface {
	Defaults() Defaults
	BeginTable(rt *Runtime) error
	BeginHeader(rt *Runtime) error
	EndHeader(rt *Runtime) error
	BeginRow(rt *Runtime, row int) error
	EndRow(rt *Runtime, row int) error
	WriteCell(rt *Runtime, c Cursor, cell string) error
	EndTable(rt *Runtime) error
}

// ParseWriter returns a new writer for format f. TSV maps to a CSV writer.
func ParseWriter(f Format) (Writer, error) {
	switch f {
	case Markdown:
		return &MarkdownWriter{}, nil
	case CSV, TSV:
		return &CSVWriter{}, nil
	case HTML:
		return &HTMLWriter{}, nil
	case Fixed:
		return &FixedWidthWriter{}, nil
	case Boxed:
		return &BoxWriter{}, nil
	default:
		return nil, unsupported(f)
	}
}
