package tabler

// DefaultCSVDelimiter separates CSV cells unless configured otherwise.
const DefaultCSVDelimiter = ","

// CSVWriter joins the cells of each row with the cell delimiter. Quoting is
// left to [CSVEscaper].
type CSVWriter struct{}

func (w *CSVWriter) Defaults() Defaults {
	return Defaults{Widths: WidthNotAligned, Delimiter: DefaultCSVDelimiter}
}

func (w *CSVWriter) BeginTable(rt *Runtime) error  { return nil }
func (w *CSVWriter) BeginHeader(rt *Runtime) error { return nil }
func (w *CSVWriter) EndHeader(rt *Runtime) error   { return rt.WriteLine("") }

func (w *CSVWriter) BeginRow(rt *Runtime, row int) error { return nil }
func (w *CSVWriter) EndRow(rt *Runtime, row int) error   { return rt.WriteLine("") }

func (w *CSVWriter) WriteCell(rt *Runtime, c Cursor, cell string) error {
	if c.Column > 0 {
		cell = rt.Delimiter() + cell
	}
	return rt.WriteString(cell)
}

func (w *CSVWriter) EndTable(rt *Runtime) error { return nil }
