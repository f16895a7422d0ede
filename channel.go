package drplot

import "fmt"

// A VisualChannel is a semantic dimension data-group membership can be
// mapped onto. A component declares the subset of channels it supports;
// requesting an undeclared channel is a configuration error.
type VisualChannel int

const (
	HueChannel VisualChannel = iota
	MarkerChannel
	LineStyleChannel
	SizeChannel
	AlphaChannel
)

func (c VisualChannel) String() string {
	switch c {
	case HueChannel:
		return "hue"
	case MarkerChannel:
		return "marker"
	case LineStyleChannel:
		return "linestyle"
	case SizeChannel:
		return "size"
	case AlphaChannel:
		return "alpha"
	}
	return fmt.Sprintf("channel(%d)", int(c))
}

// String2Channel parses a channel name. Both the channel name and the
// name of the attribute it typically drives are accepted.
func String2Channel(s string) (VisualChannel, error) {
	switch s {
	case "hue", "color", "colour", "fill":
		return HueChannel, nil
	case "marker", "shape":
		return MarkerChannel, nil
	case "linestyle", "linetype", "style":
		return LineStyleChannel, nil
	case "size":
		return SizeChannel, nil
	case "alpha":
		return AlphaChannel, nil
	}
	return 0, fmt.Errorf("drplot: no such visual channel %q", s)
}

// A Phase names one of the resolution scopes a style attribute belongs
// to. Pre and post bracket the actual draw call of a component, axis
// and figure hold the non-data decoration and legend styles the glyphs
// of the final legends.
type Phase int

const (
	PhasePre Phase = iota
	PhasePost
	PhaseAxis
	PhaseLegend
	PhaseFigure
)

func (p Phase) String() string {
	switch p {
	case PhasePre:
		return "pre"
	case PhasePost:
		return "post"
	case PhaseAxis:
		return "axis"
	case PhaseLegend:
		return "legend"
	case PhaseFigure:
		return "figure"
	}
	return fmt.Sprintf("phase(%d)", int(p))
}
