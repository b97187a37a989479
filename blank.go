package tabler

// FixedWidthWriter writes space-bordered, padded cells without delimiters,
// for terminal display.
type FixedWidthWriter struct{}

func (w *FixedWidthWriter) Defaults() Defaults { return Defaults{Widths: WidthAligned} }

func (w *FixedWidthWriter) BeginTable(rt *Runtime) error  { return nil }
func (w *FixedWidthWriter) BeginHeader(rt *Runtime) error { return nil }
func (w *FixedWidthWriter) EndHeader(rt *Runtime) error   { return rt.WriteLine("") }

func (w *FixedWidthWriter) BeginRow(rt *Runtime, row int) error { return nil }
func (w *FixedWidthWriter) EndRow(rt *Runtime, row int) error   { return rt.WriteLine("") }

func (w *FixedWidthWriter) WriteCell(rt *Runtime, c Cursor, cell string) error {
	return rt.WriteString(" " + cell + " ")
}

func (w *FixedWidthWriter) EndTable(rt *Runtime) error { return nil }
