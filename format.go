package tabler

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"
	"text/template"
)

// Error categories. Every error returned by a render wraps one of them.
var (
	ErrConfiguration = errors.New("configuration error")
	ErrExtraction    = errors.New("extraction error")
	ErrResource      = errors.New("resource error")
)

// Specific causes, wrapped together with their category.
var (
	ErrNoSource          = errors.New("no table source")
	ErrWidthMismatch     = errors.New("column widths do not match column count")
	ErrUnknownColumn     = errors.New("unknown column")
	ErrRowLength         = errors.New("row length does not match column count")
	ErrUnsupportedFormat = errors.New("unsupported format")
	ErrInvalidTemplate   = errors.New("invalid template")
)

// Format names a writer and escaper preset.
type Format string

const (
	Markdown Format = "markdown"
	CSV      Format = "csv"
	TSV      Format = "tsv"
	HTML     Format = "html"
	Fixed    Format = "fixed"
	Boxed    Format = "box"
)

var formats = []Format{Markdown, CSV, TSV, HTML, Fixed, Boxed}

// String returns the format name.
func (f Format) String() string { return string(f) }

// Formats returns all supported format names.
func Formats() []Format {
	out := make([]Format, len(formats))
	copy(out, formats)
	return out
}

// ParseFormat parses a format name.
func ParseFormat(s string) (Format, error) {
	for _, f := range formats {
		if string(f) == strings.ToLower(s) {
			return f, nil
		}
	}
	return "", unsupported(Format(s))
}

func unsupported(f Format) error {
	return fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
}

// Write renders src in format f to w using the format's preset.
func Write(w io.Writer, f Format, src Source) error {
	c := New(src)
	if err := c.Use(f); err != nil {
		return err
	}
	return c.RenderTo(w)
}

// Marshal renders src in format f and returns the bytes.
func Marshal(f Format, src Source) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(&buf, f, src); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// CellFormatter turns a raw cell value into text before it is escaped.
type CellFormatter interface {
	FormatCell(v any) (string, error)
}

// CellFormatterFunc adapts a function to [CellFormatter].
type CellFormatterFunc func(v any) (string, error)

// FormatCell calls f(v).
func (f CellFormatterFunc) FormatCell(v any) (string, error) { return f(v) }

// Stringify is the fallback used when no formatter is configured for a cell.
// Nil renders as an empty string.
func Stringify(v any) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return s
	default:
		return fmt.Sprint(v)
	}
}

// DefaultFormatter formats cells with [Stringify].
var DefaultFormatter CellFormatter = CellFormatterFunc(func(v any) (string, error) {
	return Stringify(v), nil
})

// TemplateFormatter returns a formatter executing tmpl with the cell value as
// dot, e.g. "{{printf \"%.2f\" .}}".
func TemplateFormatter(tmpl string) (CellFormatter, error) {
	t, err := template.New("cell").Parse(tmpl)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidTemplate, err)
	}
	return CellFormatterFunc(func(v any) (string, error) {
		var sb strings.Builder
		if err := t.Execute(&sb, v); err != nil {
			return "", err
		}
		return sb.String(), nil
	}), nil
}
