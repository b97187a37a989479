package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/bjaus/tabler"
	"github.com/bjaus/tabler/internal/logging"
)

type globalFlags struct {
	logLevel  string
	logFormat string
}

// outputFlags configure the render shared by every command.
type outputFlags struct {
	config     string
	format     string
	escaper    string
	widths     string
	delimiter  string
	lineBreak  string
	align      string
	alignCols  []string
	columns    []string
	renameOnly bool
	markers    bool
	htmlID     string
	htmlClass  string
	border     string
	output     string
}

func (o *outputFlags) register(fs *pflag.FlagSet) {
	fs.StringVarP(&o.config, "config", "c", "", "YAML render configuration file")
	fs.StringVarP(&o.format, "format", "f", "", fmt.Sprintf("output format %v (default markdown)", tabler.Formats()))
	fs.StringVar(&o.escaper, "escaper", "", "escaper: auto, none, markdown, csv, html, sanitize")
	fs.StringVar(&o.widths, "widths", "", "column widths: default, none, aligned, equal or a list like 4,3,8")
	fs.StringVar(&o.delimiter, "delimiter", "", "cell delimiter, overriding the format's default")
	fs.StringVar(&o.lineBreak, "line-break", "", "line break: lf, cr, crlf or a literal string")
	fs.StringVar(&o.align, "align", "", "table alignment: left, center, right")
	fs.StringSliceVar(&o.alignCols, "align-column", nil, "column alignment as index=alignment, repeatable")
	fs.StringSliceVar(&o.columns, "columns", nil, "columns to render as name or name:alias, in order")
	fs.BoolVar(&o.renameOnly, "rename-only", false, "render every column, applying --columns aliases only")
	fs.BoolVar(&o.markers, "markers", false, "emit alignment markers in the Markdown separator row")
	fs.StringVar(&o.htmlID, "html-id", "", "id attribute of the HTML table")
	fs.StringVar(&o.htmlClass, "html-class", "", "class attribute of the HTML table")
	fs.StringVar(&o.border, "border", "", "box border style: rounded, ascii, heavy, double")
	fs.StringVarP(&o.output, "output", "o", "", "write to this file instead of standard output")
}

// load merges the configuration file with the flags; flags win.
func (o *outputFlags) load(flags *pflag.FlagSet) (*tabler.Config, error) {
	cfg := &tabler.Config{}
	if o.config != "" {
		f, err := os.Open(o.config)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", tabler.ErrResource, err)
		}
		defer f.Close()
		if cfg, err = tabler.LoadConfig(f); err != nil {
			return nil, err
		}
	}
	if o.format != "" {
		f, err := tabler.ParseFormat(o.format)
		if err != nil {
			return nil, err
		}
		cfg.Format = f
	}
	if cfg.Format == "" {
		cfg.Format = tabler.Markdown
	}
	if o.escaper != "" {
		cfg.Escaper = o.escaper
	}
	if o.widths != "" {
		p, err := tabler.ParseWidthPolicy(o.widths)
		if err != nil {
			return nil, err
		}
		cfg.Widths = p
	}
	if flags.Changed("delimiter") {
		cfg.Delimiter = &o.delimiter
	}
	if o.lineBreak != "" {
		cfg.LineBreak = o.lineBreak
	}
	if o.align != "" {
		a, err := tabler.ParseAlignment(o.align)
		if err != nil {
			return nil, err
		}
		cfg.Align.Table = &a
	}
	for _, arg := range o.alignCols {
		col, a, err := parseColumnAlign(arg)
		if err != nil {
			return nil, err
		}
		if cfg.Align.Columns == nil {
			cfg.Align.Columns = make(map[int]tabler.Alignment)
		}
		cfg.Align.Columns[col] = a
	}
	if len(o.columns) > 0 {
		cfg.Columns = cfg.Columns[:0]
		for _, arg := range o.columns {
			name, alias, _ := strings.Cut(arg, ":")
			cfg.Columns = append(cfg.Columns, tabler.ColumnConfig{Name: name, Alias: alias})
		}
	}
	if flags.Changed("rename-only") {
		cfg.RenameOnly = o.renameOnly
	}
	if flags.Changed("markers") {
		cfg.Markers = o.markers
	}
	if o.htmlID != "" {
		cfg.HTML.ID = o.htmlID
	}
	if o.htmlClass != "" {
		cfg.HTML.Class = o.htmlClass
	}
	if o.border != "" {
		b, err := tabler.ParseBorderStyle(o.border)
		if err != nil {
			return nil, err
		}
		cfg.Border = b
	}
	return cfg, nil
}

func parseColumnAlign(arg string) (int, tabler.Alignment, error) {
	idx, name, ok := strings.Cut(arg, "=")
	if !ok {
		return 0, 0, fmt.Errorf("%w: column alignment %q is not index=alignment", tabler.ErrConfiguration, arg)
	}
	col, err := strconv.Atoi(strings.TrimSpace(idx))
	if err != nil || col < 0 {
		return 0, 0, fmt.Errorf("%w: invalid column index %q", tabler.ErrConfiguration, idx)
	}
	a, err := tabler.ParseAlignment(strings.TrimSpace(name))
	if err != nil {
		return 0, 0, err
	}
	return col, a, nil
}

// render applies the flags to a context over src and renders it.
func (o *outputFlags) render(cmd *cobra.Command, src tabler.Source, log logrus.FieldLogger) error {
	cfg, err := o.load(cmd.Flags())
	if err != nil {
		return err
	}
	c := tabler.New(src).WithLogger(log).To(cmd.OutOrStdout())
	if err := cfg.Apply(c); err != nil {
		return err
	}
	if o.output != "" {
		c.ToFile(o.output)
	}
	return c.Render()
}

func newRootCommand() *cobra.Command {
	var g globalFlags
	log := logrus.New()
	root := &cobra.Command{
		Use:           "tabler",
		Short:         "Render tabular data as text tables",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := applyEnvironment(cmd); err != nil {
				return err
			}
			return logging.Configure(log, cmd.ErrOrStderr(), g.logLevel, g.logFormat)
		},
	}
	root.PersistentFlags().StringVar(&g.logLevel, "log-level", "", "log level: debug, info, warn, error")
	root.PersistentFlags().StringVar(&g.logFormat, "log-format", "text", "log format: text, json, json-pretty")
	root.AddCommand(newRenderCommand(log), newQueryCommand(log), newFormatsCommand())
	return root
}

func newFormatsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "formats",
		Short: "List the output formats",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, f := range tabler.Formats() {
				fmt.Fprintln(cmd.OutOrStdout(), f)
			}
			return nil
		},
	}
}
