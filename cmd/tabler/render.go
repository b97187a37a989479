package main

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/bjaus/tabler"
	"github.com/bjaus/tabler/internal/input"
)

type renderFlags struct {
	outputFlags
	inputFormat string
	encoding    string
	sheet       string
	noHeader    bool
}

func newRenderCommand(log logrus.FieldLogger) *cobra.Command {
	var f renderFlags
	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render a CSV, TSV, JSON, JSONL, YAML or XLSX file",
		Long: `Render reads a table from file, or from standard input when file is
omitted or "-", and writes it in the selected output format.

JSON and YAML input is a list of objects, one row per object and one column
per key, or a list of lists whose first item is the header.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "-"
			if len(args) == 1 {
				path = args[0]
			}
			src, err := f.read(cmd.InOrStdin(), path)
			if err != nil {
				return err
			}
			log.WithField("input", path).Debug("Read input.")
			return f.render(cmd, src, log)
		},
	}
	fs := cmd.Flags()
	fs.StringVarP(&f.inputFormat, "input-format", "i", "", "input format: csv, tsv, json, jsonl, yaml, xlsx (default from extension)")
	fs.StringVar(&f.encoding, "encoding", "", "character encoding of text input, e.g. windows-1252")
	fs.StringVar(&f.sheet, "sheet", "", "XLSX sheet to read (default first)")
	fs.BoolVar(&f.noHeader, "no-header", false, "treat the first record as data")
	f.register(fs)
	return cmd
}

func (f *renderFlags) read(stdin io.Reader, path string) (tabler.Source, error) {
	opts := input.Options{
		Format:   f.inputFormat,
		Encoding: f.encoding,
		NoHeader: f.noHeader,
		Sheet:    f.sheet,
	}
	if path == "-" {
		if opts.Format == "" {
			return nil, fmt.Errorf("%w: --input-format is required when reading standard input", tabler.ErrConfiguration)
		}
		return input.Read(stdin, opts)
	}
	if opts.Format == "" {
		format, err := input.Detect(path)
		if err != nil {
			return nil, err
		}
		opts.Format = format
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", tabler.ErrResource, err)
	}
	defer file.Close()
	return input.Read(file, opts)
}
