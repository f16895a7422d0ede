package drplot

import (
	"fmt"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// ProxyFactory synthesizes standalone legend glyph handles. It is a
// small closed set of variants keyed by visual channel; plot types do
// not bring their own legend-building code paths.
type ProxyFactory struct{}

// Build returns the handle representing one legend entry. style is the
// legend-phase resolved attribute map of the entry's component.
//
// For a channel-driven entry a fresh proxy carrying the resolved style
// is synthesized. An entry without a channel passes the original drawn
// handle through if it is legend-compatible and fails with
// NotLegendable otherwise.
func (ProxyFactory) Build(kind string, src Handle, ch VisualChannel, hasChannel bool,
	style AesMapping) (Handle, error) {

	if !hasChannel {
		if src != nil && src.Legendable() {
			return src, nil
		}
		return nil, &NotLegendableError{Kind: kind}
	}

	switch ch {
	case HueChannel:
		col, err := ParseColor(styleColor(style))
		if err != nil {
			return nil, err
		}
		a, err := ParseFloat(styleOr(style, "alpha", "1"), 0, 1)
		if err != nil {
			return nil, err
		}
		return SwatchHandle{Color: SetAlpha(col, a)}, nil

	case AlphaChannel:
		col, err := ParseColor(styleColor(style))
		if err != nil {
			return nil, err
		}
		a, err := ParseFloat(styleOr(style, "alpha", "1"), 0, 1)
		if err != nil {
			return nil, err
		}
		return SwatchHandle{Color: SetAlpha(col, a)}, nil

	case LineStyleChannel:
		lt, ok := String2LineType(styleOr(style, "linetype", "solid"))
		if !ok {
			return nil, fmt.Errorf("drplot: no such line type %q", style["linetype"])
		}
		w, err := ParseFloat(styleOr(style, "size", "2"), 0, 100)
		if err != nil {
			return nil, err
		}
		return LineHandle{Style: draw.LineStyle{
			Color:  legendNeutral,
			Width:  vg.Points(w),
			Dashes: dashesFor(lt),
		}}, nil

	case MarkerChannel:
		shape, ok := String2PointShape(styleOr(style, "shape", "circle"))
		if !ok {
			return nil, fmt.Errorf("drplot: no such point shape %q", style["shape"])
		}
		col, err := ParseColor(styleColor(style))
		if err != nil {
			return nil, err
		}
		sz, err := ParseFloat(styleOr(style, "size", "5"), 0, 100)
		if err != nil {
			return nil, err
		}
		return MarkerHandle{Style: draw.GlyphStyle{
			Color:  col,
			Radius: vg.Points(sz / 2),
			Shape:  glyphFor(shape),
		}}, nil

	case SizeChannel:
		sz, err := ParseFloat(styleOr(style, "size", "5"), 0, 100)
		if err != nil {
			return nil, err
		}
		return MarkerHandle{Style: draw.GlyphStyle{
			Color:  legendNeutral,
			Radius: vg.Points(sz / 2),
			Shape:  draw.CircleGlyph{},
		}}, nil
	}

	return nil, fmt.Errorf("drplot: no proxy variant for channel %s", ch)
}

// styleColor picks the color-carrying attribute of a resolved style:
// components stroked in "color" win over ones filled in "fill".
func styleColor(style AesMapping) string {
	if v, ok := style["color"]; ok {
		return v
	}
	if v, ok := style["fill"]; ok {
		return v
	}
	return "#222222"
}

func styleOr(style AesMapping, attr, fallback string) string {
	if v, ok := style[attr]; ok {
		return v
	}
	return fallback
}
