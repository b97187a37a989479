package input_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/bjaus/tabler"
	"github.com/bjaus/tabler/internal/input"
)

func render(t *testing.T, src tabler.Source) string {
	t.Helper()
	got, err := tabler.New(src).WithCSVWriter().RenderString()
	require.NoError(t, err)
	return got
}

func TestDetect(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		path    string
		want    string
		wantErr require.ErrorAssertionFunc
	}{
		"csv":     {path: "a.csv", want: input.CSV, wantErr: require.NoError},
		"tsv":     {path: "dir/a.TSV", want: input.TSV, wantErr: require.NoError},
		"json":    {path: "a.json", want: input.JSON, wantErr: require.NoError},
		"ndjson":  {path: "a.ndjson", want: input.JSONL, wantErr: require.NoError},
		"yml":     {path: "a.yml", want: input.YAML, wantErr: require.NoError},
		"xlsx":    {path: "a.xlsx", want: input.XLSX, wantErr: require.NoError},
		"unknown": {path: "a.txt", want: "", wantErr: require.Error},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got, err := input.Detect(tt.path)
			tt.wantErr(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRead(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		opts  input.Options
		input string
		want  string
	}{
		"csv": {
			opts:  input.Options{Format: input.CSV},
			input: "name,age\nTom,5\n\"Smith, Ann\",31\n",
			want:  "name,age\nTom,5\nSmith, Ann,31\n",
		},
		"csv without header": {
			opts:  input.Options{Format: input.CSV, NoHeader: true},
			input: "Tom,5\n",
			want:  "Tom,5\n",
		},
		"tsv": {
			opts:  input.Options{Format: input.TSV},
			input: "a\tb\n1\t2\n",
			want:  "a,b\n1,2\n",
		},
		"json objects keep key order": {
			opts:  input.Options{Format: input.JSON},
			input: `[{"name": "Tom", "age": 5}, {"age": 31, "name": "Ann", "pet": "cat"}]`,
			want:  "name,age,pet\nTom,5,\nAnn,31,cat\n",
		},
		"json lists": {
			opts:  input.Options{Format: input.JSON},
			input: `[["name", "age"], ["Tom", 5]]`,
			want:  "name,age\nTom,5\n",
		},
		"jsonl": {
			opts:  input.Options{Format: input.JSONL},
			input: "{\"name\": \"Tom\"}\n\n{\"name\": \"Ann\"}\n",
			want:  "name\nTom\nAnn\n",
		},
		"yaml": {
			opts:  input.Options{Format: input.YAML},
			input: "- name: Tom\n  age: 5\n- name: Ann\n  age: 31\n",
			want:  "name,age\nTom,5\nAnn,31\n",
		},
		"empty yaml": {
			opts:  input.Options{Format: input.YAML},
			input: "",
			want:  "",
		},
		"windows-1252": {
			opts:  input.Options{Format: input.CSV, Encoding: "windows-1252"},
			input: "name\ncaf\xe9\n",
			want:  "name\ncafé\n",
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			src, err := input.Read(strings.NewReader(tt.input), tt.opts)
			require.NoError(t, err)
			assert.Equal(t, tt.want, render(t, src))
		})
	}
}

func TestReadErrors(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		opts  input.Options
		input string
		is    error
	}{
		"unsupported":      {opts: input.Options{Format: "xml"}, is: input.ErrUnsupportedInput},
		"unknown encoding": {opts: input.Options{Format: input.CSV, Encoding: "klingon"}, is: tabler.ErrConfiguration},
		"ragged csv":       {opts: input.Options{Format: input.CSV}, input: "a,b\n1\n", is: tabler.ErrExtraction},
		"json object":      {opts: input.Options{Format: input.JSON}, input: `{"a": 1}`, is: tabler.ErrExtraction},
		"json scalars":     {opts: input.Options{Format: input.JSON}, input: `[1, 2]`, is: tabler.ErrExtraction},
		"mixed items":      {opts: input.Options{Format: input.JSON}, input: `[{"a": 1}, [1]]`, is: tabler.ErrExtraction},
		"bad jsonl":        {opts: input.Options{Format: input.JSONL}, input: "{\"a\": 1}\n{\"a\": [}\n", is: tabler.ErrExtraction},
		"jsonl comment":    {opts: input.Options{Format: input.JSONL}, input: "{\"a\": 1}\n# note\n", is: tabler.ErrExtraction},
		"jsonl separator":  {opts: input.Options{Format: input.JSONL}, input: "---\n{\"a\": 1}\n", is: tabler.ErrExtraction},
		"ragged lists":     {opts: input.Options{Format: input.JSON}, input: `[["a", "b"], [1]]`, is: tabler.ErrExtraction},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			src, err := input.Read(strings.NewReader(tt.input), tt.opts)
			require.ErrorIs(t, err, tt.is)
			assert.Nil(t, src)
		})
	}
}

func TestReadXLSX(t *testing.T) {
	t.Parallel()
	f := excelize.NewFile()
	t.Cleanup(func() { _ = f.Close() })
	require.NoError(t, f.SetSheetRow("Sheet1", "A1", &[]any{"name", "age"}))
	require.NoError(t, f.SetSheetRow("Sheet1", "A2", &[]any{"Tom", 5}))
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)

	src, err := input.Read(bytes.NewReader(buf.Bytes()), input.Options{Format: input.XLSX})
	require.NoError(t, err)
	assert.Equal(t, "name,age\nTom,5\n", render(t, src))

	src, err = input.Read(bytes.NewReader(buf.Bytes()), input.Options{Format: input.XLSX, Sheet: "Nope"})
	require.Error(t, err)
	assert.Nil(t, src)
}
