// Package tabler renders tabular data as Markdown, CSV, TSV, HTML, fixed-width
// or box-drawn text.
//
// A table comes from a [Source]: a column count, optional headers and a
// sequence of rows of raw values. A [Context] pairs the source with a
// [Writer], an [Escaper], a width policy, per-cell alignments and formatters,
// and a destination. [Context.Render] then makes a single pass: it resolves
// the configuration, measures widths when needed, and streams the header and
// every row through the writer.
//
//	err := tabler.New(src).Markdown().WithColumnAlign(1, tabler.AlignRight).Render()
//
// The shortest route is [Write] or [Marshal] with a [Format]:
//
//	tabler.Write(os.Stdout, tabler.CSV, src)
//
// # Sources
//
//   - [FieldSource] renders a slice of values through an explicit list of
//     [Field] name and extractor pairs.
//   - [ArraySource] renders in-memory rows.
//   - [SeqSource] streams rows from an iterator or a channel; it can only be
//     iterated once.
//   - [ColumnSource] projects and renames the columns of another source. Use
//     [Context.WithColumns] with a [ColumnSelector] built by [Col] and [ColAs].
//
// The xlsx and sqlsource subpackages read spreadsheets and SQL result sets.
//
// # Widths
//
// [WidthPolicy] selects how cells are padded:
//
//   - [WidthDefault] uses the writer's preference.
//   - [WidthArbitrary] uses caller-given widths, one per column.
//   - [WidthNotAligned] writes cells unpadded.
//   - [WidthAligned] pads each column to its widest cell.
//   - [WidthEqual] pads every column to the widest cell of the table.
//
// Widths count display cells of the escaped text, so wide runes count twice.
// Aligned and equal widths need every row up front; the rendered rows are
// kept in memory and replayed, so a one-shot source is still read once.
//
// # Properties
//
// Alignments and formatters are hierarchical [Property] values resolved cell
// first, then column, then value type, then table. Setting a level discards
// everything configured below it:
//
//	c.WithColumnAlign(0, tabler.AlignRight).WithAlign(tabler.AlignCenter)
//	// column 0 is centered too
//
// Header cells are addressed with row [HeaderRow].
//
// # Escaping
//
// Escapers transform each rendered cell before it is measured and written:
// [CSVEscaper] quotes cells containing the delimiter, a quote or a line
// break; [HTMLEscaper] encodes markup characters and turns line breaks into
// <br/>; [MarkdownEscaper] encodes Markdown control characters as numeric
// entities. The format presets ([Context.Markdown], [Context.CSV],
// [Context.HTML] and friends) pick a matching writer and escaper.
//
// # Errors
//
// Failures wrap one of three kinds, testable with [errors.Is]:
//
//   - [ErrConfiguration] for invalid setup, detected before any output.
//   - [ErrExtraction] when a row or value cannot be produced.
//   - [ErrResource] when the destination cannot be opened or closed.
//
// Write failures of the destination are returned unwrapped.
package tabler
