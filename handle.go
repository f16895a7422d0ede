package drplot

import (
	"image/color"

	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// A Handle is a reference to something the rendering backend drew or
// can draw. The engine never draws data itself; it only decides which
// handles reach a legend and synthesizes proxy handles where the drawn
// one is unsuitable as a legend glyph.
type Handle interface {
	// Legendable reports whether the handle can serve as a legend
	// glyph as-is.
	Legendable() bool

	// Thumbnail draws the legend glyph onto the canvas cell reserved
	// for it.
	Thumbnail(c draw.Canvas)
}

// -------------------------------------------------------------------------
// Swatch

// SwatchHandle is a filled color swatch, the proxy glyph for hue and
// alpha driven entries.
type SwatchHandle struct {
	Color color.Color
}

func (h SwatchHandle) Legendable() bool { return true }

func (h SwatchHandle) Thumbnail(c draw.Canvas) {
	c.SetColor(h.Color)
	c.Fill(c.Rectangle.Path())
}

// -------------------------------------------------------------------------
// Line

// LineHandle is a horizontal line segment carrying a dash pattern, the
// proxy glyph for line style driven entries.
type LineHandle struct {
	Style draw.LineStyle
}

func (h LineHandle) Legendable() bool { return true }

func (h LineHandle) Thumbnail(c draw.Canvas) {
	y := c.Center().Y
	c.StrokeLine2(h.Style, c.Min.X, y, c.Max.X, y)
}

// -------------------------------------------------------------------------
// Marker

// MarkerHandle is a single glyph, the proxy for marker and size driven
// entries. Its radius comes from the same interpolation the cycle
// engine used for drawing, so the legend glyph matches the drawn one.
type MarkerHandle struct {
	Style draw.GlyphStyle
}

func (h MarkerHandle) Legendable() bool { return true }

func (h MarkerHandle) Thumbnail(c draw.Canvas) {
	if h.Style.Shape == nil {
		return
	}
	c.DrawGlyph(h.Style, c.Center())
}

// -------------------------------------------------------------------------
// Region

// RegionHandle is the drawn handle of a filled region (a band between
// two curves). It is deliberately not legendable; the proxy factory
// replaces it with a simplified swatch.
type RegionHandle struct {
	Fill color.Color
}

func (h RegionHandle) Legendable() bool { return false }

func (h RegionHandle) Thumbnail(c draw.Canvas) {}

// legendNeutral is the color of glyphs whose entry is not driven by a
// color channel.
var legendNeutral = color.Gray16{0x3333}

// glyphFor maps a point shape onto a glyph drawer. Diamond and nabla
// shapes reuse the closest available drawer.
// TODO: dedicated drawers for diamond and nabla outlines.
func glyphFor(shape PointShape) draw.GlyphDrawer {
	switch shape {
	case CirclePoint:
		return draw.RingGlyph{}
	case SolidCirclePoint:
		return draw.CircleGlyph{}
	case SquarePoint, DiamondPoint:
		return draw.SquareGlyph{}
	case SolidSquarePoint, SolidDiamondPoint:
		return draw.BoxGlyph{}
	case DeltaPoint, NablaPoint:
		return draw.TriangleGlyph{}
	case SolidDeltaPoint, SolidNablaPoint:
		return draw.PyramidGlyph{}
	case CrossPoint, StarPoint:
		return draw.CrossGlyph{}
	case PlusPoint:
		return draw.PlusGlyph{}
	}
	return nil
}

// dashesFor maps a line type onto its dash pattern. Numeric line types
// beyond the named table fall back to the plotutil dash cycle.
func dashesFor(lt LineType) []vg.Length {
	switch lt {
	case SolidLine:
		return nil
	case DashedLine:
		return []vg.Length{vg.Points(6), vg.Points(2)}
	case DottedLine:
		return []vg.Length{vg.Points(1), vg.Points(2)}
	case DotDashLine:
		return []vg.Length{vg.Points(1), vg.Points(2), vg.Points(6), vg.Points(2)}
	case LongdashLine:
		return []vg.Length{vg.Points(10), vg.Points(3)}
	case TwodashLine:
		return []vg.Length{vg.Points(4), vg.Points(2), vg.Points(8), vg.Points(2)}
	}
	return plotutil.Dashes(int(lt))
}
