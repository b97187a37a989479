package tabler

import (
	"fmt"
	"strings"
)

// BorderStyle selects the frame characters of [BoxWriter].
type BorderStyle int

const (
	BorderRounded BorderStyle = iota // ╭─╮╰╯│┬┴├┤┼
	BorderASCII                      // +-+|
	BorderHeavy                      // ┏━┓┗┛┃┳┻┣┫╋
	BorderDouble                     // ╔═╗╚╝║╦╩╠╣╬
)

var borderNames = map[string]BorderStyle{
	"rounded": BorderRounded,
	"ascii":   BorderASCII,
	"heavy":   BorderHeavy,
	"double":  BorderDouble,
}

// ParseBorderStyle parses rounded, ascii, heavy or double.
func ParseBorderStyle(s string) (BorderStyle, error) {
	if b, ok := borderNames[strings.ToLower(s)]; ok {
		return b, nil
	}
	return BorderRounded, fmt.Errorf("%w: unknown border style %q", ErrConfiguration, s)
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (b *BorderStyle) UnmarshalText(text []byte) error {
	v, err := ParseBorderStyle(string(text))
	if err != nil {
		return err
	}
	*b = v
	return nil
}

type borderChars struct {
	topLeft, topRight, bottomLeft, bottomRight string
	horizontal, vertical                       string
	topTee, bottomTee, leftTee, rightTee       string
	cross                                      string
}

var borderSets = map[BorderStyle]borderChars{
	BorderRounded: {
		topLeft: "╭", topRight: "╮", bottomLeft: "╰", bottomRight: "╯",
		horizontal: "─", vertical: "│",
		topTee: "┬", bottomTee: "┴", leftTee: "├", rightTee: "┤",
		cross: "┼",
	},
	BorderASCII: {
		topLeft: "+", topRight: "+", bottomLeft: "+", bottomRight: "+",
		horizontal: "-", vertical: "|",
		topTee: "+", bottomTee: "+", leftTee: "+", rightTee: "+",
		cross: "+",
	},
	BorderHeavy: {
		topLeft: "┏", topRight: "┓", bottomLeft: "┗", bottomRight: "┛",
		horizontal: "━", vertical: "┃",
		topTee: "┳", bottomTee: "┻", leftTee: "┣", rightTee: "┫",
		cross: "╋",
	},
	BorderDouble: {
		topLeft: "╔", topRight: "╗", bottomLeft: "╚", bottomRight: "╝",
		horizontal: "═", vertical: "║",
		topTee: "╦", bottomTee: "╩", leftTee: "╠", rightTee: "╣",
		cross: "╬",
	},
}

// BoxWriter frames padded cells with border characters. It needs resolved
// column widths and fails on a render with WidthNotAligned.
type BoxWriter struct {
	Style BorderStyle
}

func (w *BoxWriter) Defaults() Defaults { return Defaults{Widths: WidthAligned} }

func (w *BoxWriter) chars() borderChars {
	if bc, ok := borderSets[w.Style]; ok {
		return bc
	}
	return borderSets[BorderRounded]
}

func (w *BoxWriter) BeginTable(rt *Runtime) error {
	if !rt.HasWidths() {
		return fmt.Errorf("%w: box writer requires column widths", ErrConfiguration)
	}
	bc := w.chars()
	return rt.WriteLine(hLine(rt.Widths(), bc.topLeft, bc.horizontal, bc.topTee, bc.topRight))
}

func (w *BoxWriter) BeginHeader(rt *Runtime) error { return rt.WriteString(w.chars().vertical) }

func (w *BoxWriter) EndHeader(rt *Runtime) error {
	bc := w.chars()
	if err := rt.WriteLine(""); err != nil {
		return err
	}
	return rt.WriteLine(hLine(rt.Widths(), bc.leftTee, bc.horizontal, bc.cross, bc.rightTee))
}

func (w *BoxWriter) BeginRow(rt *Runtime, row int) error { return rt.WriteString(w.chars().vertical) }
func (w *BoxWriter) EndRow(rt *Runtime, row int) error   { return rt.WriteLine("") }

func (w *BoxWriter) WriteCell(rt *Runtime, c Cursor, cell string) error {
	return rt.WriteString(" " + cell + " " + w.chars().vertical)
}

func (w *BoxWriter) EndTable(rt *Runtime) error {
	bc := w.chars()
	return rt.WriteLine(hLine(rt.Widths(), bc.bottomLeft, bc.horizontal, bc.bottomTee, bc.bottomRight))
}

func hLine(widths []int, left, fill, mid, right string) string {
	var sb strings.Builder
	sb.WriteString(left)
	for i, width := range widths {
		sb.WriteString(strings.Repeat(fill, width+2))
		if i < len(widths)-1 {
			sb.WriteString(mid)
		}
	}
	sb.WriteString(right)
	return sb.String()
}
