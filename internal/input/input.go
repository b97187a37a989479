// Package input reads tabular input files into table sources.
package input

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"golang.org/x/text/encoding/htmlindex"
	"gopkg.in/yaml.v3"

	"github.com/bjaus/tabler"
	"github.com/bjaus/tabler/xlsx"
)

// Input formats.
const (
	CSV   = "csv"
	TSV   = "tsv"
	JSON  = "json"
	JSONL = "jsonl"
	YAML  = "yaml"
	XLSX  = "xlsx"
)

var ErrUnsupportedInput = errors.New("unsupported input format")

// Options controls how input is decoded.
type Options struct {
	// Format is one of the input formats; empty means detect from the file
	// extension.
	Format string
	// Encoding names the character set of text input, e.g. "windows-1252".
	// Empty means UTF-8.
	Encoding string
	// NoHeader treats the first record of CSV, TSV and XLSX input as data.
	NoHeader bool
	// Sheet selects the XLSX sheet.
	Sheet string
}

// Detect returns the input format implied by the file extension of path.
func Detect(path string) (string, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".csv":
		return CSV, nil
	case ".tsv", ".tab":
		return TSV, nil
	case ".json":
		return JSON, nil
	case ".jsonl", ".ndjson":
		return JSONL, nil
	case ".yaml", ".yml":
		return YAML, nil
	case ".xlsx", ".xlsm":
		return XLSX, nil
	default:
		return "", fmt.Errorf("%w: cannot detect format of %q", ErrUnsupportedInput, path)
	}
}

// Read decodes r into a source.
func Read(r io.Reader, opts Options) (tabler.Source, error) {
	if opts.Format == XLSX {
		return source(xlsx.Read(r, xlsx.Options{Sheet: opts.Sheet, NoHeader: opts.NoHeader}))
	}
	r, err := decode(r, opts.Encoding)
	if err != nil {
		return nil, err
	}
	switch opts.Format {
	case CSV:
		return readDelimited(r, ',', opts.NoHeader)
	case TSV:
		return readDelimited(r, '\t', opts.NoHeader)
	case JSON, YAML:
		return readDocument(r)
	case JSONL:
		return readLines(r)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedInput, opts.Format)
	}
}

// source avoids returning a typed nil inside a non-nil interface.
func source[S tabler.Source](s S, err error) (tabler.Source, error) {
	if err != nil {
		return nil, err
	}
	return s, nil
}

func decode(r io.Reader, name string) (io.Reader, error) {
	if name == "" || strings.EqualFold(name, "utf-8") || strings.EqualFold(name, "utf8") {
		return r, nil
	}
	enc, err := htmlindex.Get(name)
	if err != nil {
		return nil, fmt.Errorf("%w: unknown encoding %q", tabler.ErrConfiguration, name)
	}
	return enc.NewDecoder().Reader(r), nil
}

func readDelimited(r io.Reader, comma rune, noHeader bool) (tabler.Source, error) {
	cr := csv.NewReader(r)
	cr.Comma = comma
	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", tabler.ErrExtraction, err)
	}
	var headers []string
	if !noHeader && len(records) > 0 {
		headers, records = records[0], records[1:]
	}
	return source(tabler.NewArraySource(headers, tabler.StringRows(records)))
}

// readDocument reads a JSON or YAML sequence. A sequence of mappings becomes
// a field source with one column per key, in first-seen order. A sequence of
// sequences becomes an array source whose first item is the header.
func readDocument(r io.Reader) (tabler.Source, error) {
	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return source(tabler.NewArraySource(nil, nil))
		}
		return nil, fmt.Errorf("%w: %w", tabler.ErrExtraction, err)
	}
	root := &doc
	if root.Kind == yaml.DocumentNode && len(root.Content) > 0 {
		root = root.Content[0]
	}
	if root.Kind != yaml.SequenceNode {
		return nil, fmt.Errorf("%w: top-level value must be a list", tabler.ErrExtraction)
	}
	return fromItems(root.Content)
}

// readLines reads one JSON value per line.
func readLines(r io.Reader) (tabler.Source, error) {
	var items []*yaml.Node
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 16*1024*1024)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		var doc yaml.Node
		if err := yaml.Unmarshal([]byte(text), &doc); err != nil {
			return nil, fmt.Errorf("%w: line %d: %w", tabler.ErrExtraction, line, err)
		}
		if len(doc.Content) == 0 {
			return nil, fmt.Errorf("%w: line %d: empty value", tabler.ErrExtraction, line)
		}
		items = append(items, doc.Content[0])
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", tabler.ErrResource, err)
	}
	return fromItems(items)
}

func fromItems(items []*yaml.Node) (tabler.Source, error) {
	if len(items) == 0 {
		return source(tabler.NewArraySource(nil, nil))
	}
	switch items[0].Kind {
	case yaml.MappingNode:
		return fromMappings(items)
	case yaml.SequenceNode:
		return fromSequences(items)
	default:
		return nil, fmt.Errorf("%w: list items must be objects or lists", tabler.ErrExtraction)
	}
}

func fromMappings(items []*yaml.Node) (tabler.Source, error) {
	var keys []string
	seen := make(map[string]bool)
	records := make([]map[string]any, len(items))
	for i, item := range items {
		if item.Kind != yaml.MappingNode {
			return nil, fmt.Errorf("%w: item %d is not an object", tabler.ErrExtraction, i)
		}
		for j := 0; j+1 < len(item.Content); j += 2 {
			if k := item.Content[j].Value; !seen[k] {
				seen[k] = true
				keys = append(keys, k)
			}
		}
		if err := item.Decode(&records[i]); err != nil {
			return nil, fmt.Errorf("%w: item %d: %w", tabler.ErrExtraction, i, err)
		}
	}
	return source(tabler.NewFieldSource(records, tabler.MapFields(keys...)...))
}

func fromSequences(items []*yaml.Node) (tabler.Source, error) {
	var headers []string
	if err := items[0].Decode(&headers); err != nil {
		return nil, fmt.Errorf("%w: header: %w", tabler.ErrExtraction, err)
	}
	rows := make([]tabler.Row, 0, len(items)-1)
	for i, item := range items[1:] {
		var row []any
		if err := item.Decode(&row); err != nil {
			return nil, fmt.Errorf("%w: item %d: %w", tabler.ErrExtraction, i+1, err)
		}
		rows = append(rows, row)
	}
	return source(tabler.NewArraySource(headers, rows))
}
