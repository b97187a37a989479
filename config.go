package tabler

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Config is a declarative render configuration, typically decoded from YAML:
//
//	format: markdown
//	escaper: none
//	widths: aligned        # default | none | aligned | equal | [4, 3, 8]
//	delimiter: ";"
//	line_break: crlf       # lf | cr | crlf | any literal
//	align:
//	  table: left
//	  columns: {1: right}
//	columns:
//	  - name: surname
//	    alias: SURNAME
//	  - name: name
//	html: {id: people, class: wide}
//	border: ascii
type Config struct {
	Format     Format         `yaml:"format"`
	Escaper    string         `yaml:"escaper"`
	Widths     WidthPolicy    `yaml:"widths"`
	Delimiter  *string        `yaml:"delimiter"`
	LineBreak  string         `yaml:"line_break"`
	Align      AlignConfig    `yaml:"align"`
	Columns    []ColumnConfig `yaml:"columns"`
	RenameOnly bool           `yaml:"rename_only"`
	HTML       HTMLOptions    `yaml:"html"`
	Border     BorderStyle    `yaml:"border"`
	Markers    bool           `yaml:"align_markers"`
}

// AlignConfig holds the table and per-column alignments of a [Config].
type AlignConfig struct {
	Table   *Alignment        `yaml:"table"`
	Columns map[int]Alignment `yaml:"columns"`
}

// ColumnConfig selects one column, optionally renaming it.
type ColumnConfig struct {
	Name  string `yaml:"name"`
	Alias string `yaml:"alias"`
}

// LoadConfig decodes a YAML configuration. An empty document yields the zero
// Config.
func LoadConfig(r io.Reader) (*Config, error) {
	var cfg Config
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: decode config: %w", ErrConfiguration, err)
	}
	return &cfg, nil
}

// UnmarshalYAML accepts a mode name or a list of explicit widths.
func (p *WidthPolicy) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		v, err := ParseWidthPolicy(node.Value)
		if err != nil {
			return err
		}
		*p = v
		return nil
	case yaml.SequenceNode:
		var widths []int
		if err := node.Decode(&widths); err != nil {
			return err
		}
		*p = ArbitraryWidths(widths...)
		return nil
	default:
		return fmt.Errorf("%w: widths must be a mode or a list, line %d", ErrConfiguration, node.Line)
	}
}

// ParseLineBreak maps lf, cr and crlf to their characters; anything else is
// taken literally.
func ParseLineBreak(s string) string {
	switch s {
	case "lf", "LF":
		return LF
	case "cr", "CR":
		return CR
	case "crlf", "CRLF":
		return CRLF
	default:
		return s
	}
}

// Apply configures c. The format preset is applied first so the remaining
// settings override it.
func (cfg *Config) Apply(c *Context) error {
	if cfg.Format != "" {
		if err := c.Use(cfg.Format); err != nil {
			return err
		}
		switch w := c.writer.(type) {
		case *HTMLWriter:
			w.Options = cfg.HTML
		case *BoxWriter:
			w.Style = cfg.Border
		case *MarkdownWriter:
			w.AlignMarkers = cfg.Markers
		}
	}
	if cfg.Escaper != "" && cfg.Escaper != "auto" {
		e, err := ParseEscaper(cfg.Escaper)
		if err != nil {
			return err
		}
		c.WithEscaper(e)
	}
	if cfg.Widths.Mode != WidthDefault {
		c.WithWidths(cfg.Widths)
	}
	if cfg.Delimiter != nil {
		c.WithCellDelimiter(*cfg.Delimiter)
	}
	if cfg.LineBreak != "" {
		c.WithLineBreak(ParseLineBreak(cfg.LineBreak))
	}
	if cfg.Align.Table != nil {
		c.WithAlign(*cfg.Align.Table)
	}
	for col, a := range cfg.Align.Columns {
		c.WithColumnAlign(col, a)
	}
	if len(cfg.Columns) > 0 {
		sel := new(ColumnSelector)
		for _, col := range cfg.Columns {
			sel.Col(col.Name).As(col.Alias)
		}
		if cfg.RenameOnly {
			c.WithColumnNames(sel)
		} else {
			c.WithColumns(sel)
		}
	}
	return nil
}
