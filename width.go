package tabler

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"
)

// WidthMode selects how column widths are resolved.
type WidthMode int

const (
	// WidthDefault defers to the writer's preferred mode.
	WidthDefault WidthMode = iota
	// WidthArbitrary uses caller-supplied widths.
	WidthArbitrary
	// WidthNotAligned leaves cells unpadded.
	WidthNotAligned
	// WidthAligned sizes each column to its widest cell.
	WidthAligned
	// WidthEqual sizes every column to the widest cell of the table.
	WidthEqual
)

var widthModeNames = map[WidthMode]string{
	WidthDefault:    "default",
	WidthArbitrary:  "arbitrary",
	WidthNotAligned: "none",
	WidthAligned:    "aligned",
	WidthEqual:      "equal",
}

func (m WidthMode) String() string {
	if s, ok := widthModeNames[m]; ok {
		return s
	}
	return "WidthMode(" + strconv.Itoa(int(m)) + ")"
}

// WidthPolicy is a width mode plus the explicit widths of WidthArbitrary.
type WidthPolicy struct {
	Mode   WidthMode
	Widths []int
}

// ArbitraryWidths returns a policy using the given widths, one per column.
func ArbitraryWidths(widths ...int) WidthPolicy {
	if widths == nil {
		widths = []int{}
	}
	return WidthPolicy{Mode: WidthArbitrary, Widths: widths}
}

// ParseWidthPolicy parses a mode name (default, none, aligned, equal) or a
// comma-separated list of widths.
func ParseWidthPolicy(s string) (WidthPolicy, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	switch s {
	case "", "default":
		return WidthPolicy{Mode: WidthDefault}, nil
	case "none", "not-aligned", "unaligned":
		return WidthPolicy{Mode: WidthNotAligned}, nil
	case "aligned":
		return WidthPolicy{Mode: WidthAligned}, nil
	case "equal":
		return WidthPolicy{Mode: WidthEqual}, nil
	}
	parts := strings.Split(s, ",")
	widths := make([]int, len(parts))
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil || n < 0 {
			return WidthPolicy{}, fmt.Errorf("%w: invalid width policy %q", ErrConfiguration, s)
		}
		widths[i] = n
	}
	return ArbitraryWidths(widths...), nil
}

func (p WidthPolicy) validate() error {
	switch p.Mode {
	case WidthArbitrary:
		if p.Widths == nil {
			return fmt.Errorf("%w: %s widths require explicit widths", ErrConfiguration, p.Mode)
		}
	case WidthDefault, WidthNotAligned, WidthAligned, WidthEqual:
		if p.Widths != nil {
			return fmt.Errorf("%w: %s widths must not carry explicit widths", ErrConfiguration, p.Mode)
		}
	default:
		return fmt.Errorf("%w: unknown width mode %s", ErrConfiguration, p.Mode)
	}
	return nil
}

// resolve replaces WidthDefault with the writer's mode.
func (p WidthPolicy) resolve(writerDefault WidthMode) WidthMode {
	if p.Mode != WidthDefault {
		return p.Mode
	}
	if writerDefault == WidthDefault || writerDefault == WidthArbitrary {
		return WidthNotAligned
	}
	return writerDefault
}

func measure(s string) int { return runewidth.StringWidth(s) }

// measureWidths returns, per column, the widest of the header label and every
// cell of that column.
func measureWidths(columns int, header []string, rows [][]string) []int {
	widths := make([]int, columns)
	apply := func(cells []string) {
		for i, cell := range cells {
			if w := measure(cell); i < columns && w > widths[i] {
				widths[i] = w
			}
		}
	}
	apply(header)
	for _, row := range rows {
		apply(row)
	}
	return widths
}

// equalize overwrites every width with the largest one.
func equalize(widths []int) {
	if len(widths) == 0 {
		return
	}
	m := slices.Max(widths)
	for i := range widths {
		widths[i] = m
	}
}

// Alignment controls how a padded cell is placed within its column.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
)

func (a Alignment) String() string {
	switch a {
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	default:
		return "left"
	}
}

// ParseAlignment parses left, center or right.
func ParseAlignment(s string) (Alignment, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "left":
		return AlignLeft, nil
	case "center", "centre":
		return AlignCenter, nil
	case "right":
		return AlignRight, nil
	default:
		return AlignLeft, fmt.Errorf("%w: invalid alignment %q", ErrConfiguration, s)
	}
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *Alignment) UnmarshalText(text []byte) error {
	v, err := ParseAlignment(string(text))
	if err != nil {
		return err
	}
	*a = v
	return nil
}

// alignCell pads s with spaces to width. Values wider than width are kept
// intact.
func alignCell(s string, width int, align Alignment) string {
	pad := width - measure(s)
	if pad <= 0 {
		return s
	}
	switch align {
	case AlignRight:
		return strings.Repeat(" ", pad) + s
	case AlignCenter:
		left := pad / 2
		right := pad - left
		return strings.Repeat(" ", left) + s + strings.Repeat(" ", right)
	default:
		return s + strings.Repeat(" ", pad)
	}
}
