package tabler_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bjaus/tabler"
)

func TestParseWidthPolicy(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		input   string
		want    tabler.WidthPolicy
		wantErr require.ErrorAssertionFunc
	}{
		"empty":     {input: "", want: tabler.WidthPolicy{Mode: tabler.WidthDefault}, wantErr: require.NoError},
		"default":   {input: "default", want: tabler.WidthPolicy{Mode: tabler.WidthDefault}, wantErr: require.NoError},
		"none":      {input: "none", want: tabler.WidthPolicy{Mode: tabler.WidthNotAligned}, wantErr: require.NoError},
		"aligned":   {input: "Aligned", want: tabler.WidthPolicy{Mode: tabler.WidthAligned}, wantErr: require.NoError},
		"equal":     {input: "equal", want: tabler.WidthPolicy{Mode: tabler.WidthEqual}, wantErr: require.NoError},
		"list":      {input: "4, 3,8", want: tabler.ArbitraryWidths(4, 3, 8), wantErr: require.NoError},
		"negative":  {input: "4,-1", wantErr: require.Error},
		"not a num": {input: "wide", wantErr: require.Error},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got, err := tabler.ParseWidthPolicy(tt.input)
			tt.wantErr(t, err)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("ParseWidthPolicy(%q) mismatch (-want +got):\n%s", tt.input, diff)
			}
		})
	}
}

func TestWidthModeString(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "default", tabler.WidthDefault.String())
	assert.Equal(t, "arbitrary", tabler.WidthArbitrary.String())
	assert.Equal(t, "none", tabler.WidthNotAligned.String())
	assert.Equal(t, "aligned", tabler.WidthAligned.String())
	assert.Equal(t, "equal", tabler.WidthEqual.String())
	assert.Equal(t, "WidthMode(42)", tabler.WidthMode(42).String())
}

func TestArbitraryWidthsEmpty(t *testing.T) {
	t.Parallel()
	p := tabler.ArbitraryWidths()
	assert.NotNil(t, p.Widths)
	got, err := tabler.New(array(t, nil)).WithWidths(p).RenderString()
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestParseAlignment(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		want    tabler.Alignment
		wantErr require.ErrorAssertionFunc
	}{
		"left":    {want: tabler.AlignLeft, wantErr: require.NoError},
		"Center":  {want: tabler.AlignCenter, wantErr: require.NoError},
		"right":   {want: tabler.AlignRight, wantErr: require.NoError},
		"justify": {want: tabler.AlignLeft, wantErr: require.Error},
	}
	for input, tt := range tests {
		t.Run(input, func(t *testing.T) {
			t.Parallel()
			got, err := tabler.ParseAlignment(input)
			tt.wantErr(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
	assert.Equal(t, "center", tabler.AlignCenter.String())
}

func TestRenderWideRunes(t *testing.T) {
	t.Parallel()
	src := array(t, []string{"word", "n"}, tabler.Row{"你好", 1}, tabler.Row{"hi", 2})
	got, err := tabler.New(src).WithMarkdownWriter().RenderString()
	require.NoError(t, err)
	want := "| word | n |\n" +
		"| ---- | - |\n" +
		"| 你好 | 1 |\n" +
		"| hi   | 2 |\n"
	assert.Equal(t, want, got)
}

func TestRenderWidthsMeasureEscapedText(t *testing.T) {
	t.Parallel()
	src := array(t, []string{"v"}, tabler.Row{"a&b"})
	got, err := tabler.New(src).WithFixedWidthWriter().WithHTMLEscaper().RenderString()
	require.NoError(t, err)
	assert.Equal(t, " v       \n a&amp;b \n", got)
}
