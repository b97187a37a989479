package tabler

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// Escaper makes a raw cell value safe for one output format. Escape must be
// applied exactly once per value; escaping an escaped value is not safe.
type Escaper interface {
	Escape(s string) string
}

// RenderBinder is implemented by escapers that read render-wide settings.
// BeginRender is called once per render, after the delimiter and line break
// are resolved, and returns the escaper used for that render.
type RenderBinder interface {
	BeginRender(rt *Runtime) Escaper
}

// EscaperFunc adapts a function to [Escaper].
type EscaperFunc func(s string) string

// Escape calls f(s).
func (f EscaperFunc) Escape(s string) string { return f(s) }

// DummyEscaper returns values unchanged.
type DummyEscaper struct{}

// Escape returns s.
func (DummyEscaper) Escape(s string) string { return s }

// CSVEscaper quotes values containing the delimiter, a double quote, CR, LF
// or the configured line break. Embedded quotes are doubled.
type CSVEscaper struct {
	// Delimiter defaults to a comma. Within a render it is the render's
	// delimiter, which may be empty.
	Delimiter string
	LineBreak string

	bound bool
}

// BeginRender adopts the render's delimiter and line break.
func (e CSVEscaper) BeginRender(rt *Runtime) Escaper {
	e.Delimiter = rt.Delimiter()
	e.LineBreak = rt.LineBreak()
	e.bound = true
	return e
}

// NeedsEscape reports whether s must be quoted.
func (e CSVEscaper) NeedsEscape(s string) bool {
	if strings.ContainsAny(s, "\"\r\n") {
		return true
	}
	delim := e.Delimiter
	if delim == "" && !e.bound {
		delim = DefaultCSVDelimiter
	}
	if delim != "" && strings.Contains(s, delim) {
		return true
	}
	return e.LineBreak != "" && strings.Contains(s, e.LineBreak)
}

// Escape quotes s when [CSVEscaper.NeedsEscape] reports true.
func (e CSVEscaper) Escape(s string) string {
	if !e.NeedsEscape(s) {
		return s
	}
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

// DefaultHTMLLineBreak replaces CR, LF and CRLF in HTML cells.
const DefaultHTMLLineBreak = "<br/>"

// HTMLEscaper replaces &, <, >, " and ' with entities and line breaks with a
// break marker. CRLF yields a single marker.
type HTMLEscaper struct {
	// LineBreak defaults to DefaultHTMLLineBreak.
	LineBreak string
}

// Escape returns the HTML-safe form of s.
func (e HTMLEscaper) Escape(s string) string {
	if !strings.ContainsAny(s, "&<>\"'\r\n") {
		return s
	}
	br := e.LineBreak
	if br == "" {
		br = DefaultHTMLLineBreak
	}
	var sb strings.Builder
	sb.Grow(len(s) + 16)
	var prev rune
	for _, r := range s {
		switch r {
		case '&':
			sb.WriteString("&amp;")
		case '<':
			sb.WriteString("&lt;")
		case '>':
			sb.WriteString("&gt;")
		case '"':
			sb.WriteString("&quot;")
		case '\'':
			sb.WriteString("&#39;")
		case '\r':
			sb.WriteString(br)
		case '\n':
			if prev != '\r' {
				sb.WriteString(br)
			}
		default:
			sb.WriteRune(r)
		}
		prev = r
	}
	return sb.String()
}

// SanitizingHTMLEscaper lets a safe subset of HTML through instead of
// escaping it, for cells holding rich text. Line breaks become break markers
// as with [HTMLEscaper].
type SanitizingHTMLEscaper struct {
	policy    *bluemonday.Policy
	lineBreak string
}

// NewSanitizingHTMLEscaper returns an escaper sanitizing with p, or with
// bluemonday's UGC policy when p is nil.
func NewSanitizingHTMLEscaper(p *bluemonday.Policy) *SanitizingHTMLEscaper {
	if p == nil {
		p = bluemonday.UGCPolicy()
	}
	return &SanitizingHTMLEscaper{policy: p, lineBreak: DefaultHTMLLineBreak}
}

var lineBreaks = strings.NewReplacer("\r\n", "\n", "\r", "\n")

// Escape sanitizes s.
func (e *SanitizingHTMLEscaper) Escape(s string) string {
	out := e.policy.Sanitize(lineBreaks.Replace(s))
	return strings.ReplaceAll(out, "\n", e.lineBreak)
}

// DefaultMarkdownChars is the set of characters replaced by [MarkdownEscaper].
const DefaultMarkdownChars = "_*[]()~`>#+-=|{}.!"

// MarkdownEscaper replaces each character of Chars with its numeric character
// reference, e.g. '|' becomes "&#124;".
type MarkdownEscaper struct {
	// Chars defaults to DefaultMarkdownChars.
	Chars string
}

// Escape returns the Markdown-safe form of s.
func (e MarkdownEscaper) Escape(s string) string {
	chars := e.Chars
	if chars == "" {
		chars = DefaultMarkdownChars
	}
	if !strings.ContainsAny(s, chars) {
		return s
	}
	var sb strings.Builder
	sb.Grow(len(s) + 16)
	for _, r := range s {
		if strings.ContainsRune(chars, r) {
			sb.WriteString("&#")
			sb.WriteString(strconv.Itoa(int(r)))
			sb.WriteByte(';')
			continue
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

// ParseEscaper returns the escaper registered under name: none, markdown,
// csv, html or sanitize.
func ParseEscaper(name string) (Escaper, error) {
	switch strings.ToLower(name) {
	case "none", "dummy":
		return DummyEscaper{}, nil
	case "markdown":
		return MarkdownEscaper{}, nil
	case "csv":
		return CSVEscaper{}, nil
	case "html":
		return HTMLEscaper{}, nil
	case "sanitize":
		return NewSanitizingHTMLEscaper(nil), nil
	default:
		return nil, fmt.Errorf("%w: unknown escaper %q", ErrConfiguration, name)
	}
}
