package drplot

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// Style values travel as strings until a handle or the rendering
// backend needs the typed form. The parsers below turn them into
// colors, floats, point shapes and line types. Parsing a malformed
// value is an error, never a silent fallback.

// ParseFloat parses s as a float64 and clamps the result to
// [low, high]. A "%" suffix divides the value by 100.
func ParseFloat(s string, low, high float64) (float64, error) {
	factor := 1.0
	if strings.HasSuffix(s, "%") {
		s = s[:len(s)-1]
		factor = 100
	}
	value, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("drplot: cannot parse style %q as float: %s", s, err)
	}
	value /= factor

	if value < low {
		return low, nil
	} else if value > high {
		return high, nil
	}
	return value, nil
}

// ParseColor parses a color in "#rrggbb" or "#rrggbbaa" hex notation
// or one of the SVG 1.1 color names.
func ParseColor(s string) (color.Color, error) {
	if strings.HasPrefix(s, "#") {
		if len(s) != 7 && len(s) != 9 {
			return nil, fmt.Errorf("drplot: no such color %q", s)
		}
		v, err := strconv.ParseUint(s[1:], 16, 32)
		if err != nil {
			return nil, fmt.Errorf("drplot: no such color %q", s)
		}
		if len(s) == 7 {
			v = v<<8 | 0xff
		}
		return color.NRGBA{uint8(v >> 24), uint8(v >> 16), uint8(v >> 8), uint8(v)}, nil
	}
	if col, ok := colornames.Map[strings.ToLower(s)]; ok {
		return col, nil
	}
	return nil, fmt.Errorf("drplot: no such color %q", s)
}

// Color2Hex formats c in the "#rrggbbaa" notation ParseColor accepts.
func Color2Hex(c color.Color) string {
	nrgba := color.NRGBAModel.Convert(c).(color.NRGBA)
	return fmt.Sprintf("#%02x%02x%02x%02x", nrgba.R, nrgba.G, nrgba.B, nrgba.A)
}

// SetAlpha sets the alpha of c to a, keeping any alpha already present
// in c as a factor.
func SetAlpha(c color.Color, a float64) color.Color {
	r, g, b, ca := c.RGBA()
	r >>= 8
	g >>= 8
	b >>= 8
	a *= float64(ca >> 8)
	return color.NRGBA{uint8(r), uint8(g), uint8(b), uint8(a)}
}

// -------------------------------------------------------------------------
// Points

type PointShape int

const (
	BlankPoint PointShape = iota
	CirclePoint
	SquarePoint
	DiamondPoint
	DeltaPoint
	NablaPoint
	SolidCirclePoint
	SolidSquarePoint
	SolidDiamondPoint
	SolidDeltaPoint
	SolidNablaPoint
	CrossPoint
	PlusPoint
	StarPoint
)

// String2PointShape parses a point shape name. Numeric values wrap
// around the shape table.
func String2PointShape(s string) (PointShape, bool) {
	n, err := strconv.Atoi(s)
	if err == nil {
		n %= int(StarPoint) + 1
		if n < 0 {
			n += int(StarPoint) + 1
		}
		return PointShape(n), true
	}
	switch s {
	case "circle":
		return CirclePoint, true
	case "square":
		return SquarePoint, true
	case "diamond":
		return DiamondPoint, true
	case "delta":
		return DeltaPoint, true
	case "nabla":
		return NablaPoint, true
	case "solid-circle":
		return SolidCirclePoint, true
	case "solid-square":
		return SolidSquarePoint, true
	case "solid-diamond":
		return SolidDiamondPoint, true
	case "solid-delta":
		return SolidDeltaPoint, true
	case "solid-nabla":
		return SolidNablaPoint, true
	case "cross":
		return CrossPoint, true
	case "plus":
		return PlusPoint, true
	case "star":
		return StarPoint, true
	}
	return BlankPoint, false
}

// -------------------------------------------------------------------------
// Lines

type LineType int

const (
	BlankLine LineType = iota
	SolidLine
	DashedLine
	DottedLine
	DotDashLine
	LongdashLine
	TwodashLine
)

// String2LineType parses a line type name. Numeric values wrap around
// the line type table.
func String2LineType(s string) (LineType, bool) {
	n, err := strconv.Atoi(s)
	if err == nil {
		n %= int(TwodashLine) + 1
		if n < 0 {
			n += int(TwodashLine) + 1
		}
		return LineType(n), true
	}
	switch s {
	case "blank":
		return BlankLine, true
	case "solid":
		return SolidLine, true
	case "dashed":
		return DashedLine, true
	case "dotted":
		return DottedLine, true
	case "dotdash":
		return DotDashLine, true
	case "longdash":
		return LongdashLine, true
	case "twodash":
		return TwodashLine, true
	}
	return BlankLine, false
}
