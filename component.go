package drplot

import "fmt"

// A Component is the declared schema of one drawable kind: which
// attributes it understands per phase, which visual channels it
// supports and onto which attribute each channel maps, and whether its
// drawn handles can appear in a legend as-is.
//
// A component may declare zero attributes for a phase; resolving any
// attribute in that phase then fails loudly instead of passing values
// through.
type Component struct {
	Kind       string
	Attrs      map[Phase]StringSet
	Channels   map[VisualChannel]string
	Legendable bool
}

// channelFor returns the channel driving attr, if any.
func (c Component) channelFor(attr string) (VisualChannel, bool) {
	for ch, a := range c.Channels {
		if a == attr {
			return ch, true
		}
	}
	return 0, false
}

// Supports reports whether the component declared the channel.
func (c Component) Supports(ch VisualChannel) bool {
	_, ok := c.Channels[ch]
	return ok
}

// declares reports whether attr is part of the schema for ph.
func (c Component) declares(ph Phase, attr string) bool {
	attrs, ok := c.Attrs[ph]
	return ok && attrs.Contains(attr)
}

// reservedAttrs are backend-level keywords that bypass the component
// schemas. The list is explicit so that collisions with backend
// keywords are an allow-list decision, never inferred.
var reservedAttrs = NewStringSetFrom([]string{"label", "zorder"})

// Components is a registry of component schemas. Each session carries
// its own registry, so tests and concurrent figures never share
// mutable state.
type Components struct {
	byKind map[string]Component
}

func NewComponents() *Components {
	return &Components{byKind: make(map[string]Component)}
}

// Register adds or replaces the schema of c.Kind.
func (cs *Components) Register(c Component) error {
	if c.Kind == "" {
		return fmt.Errorf("drplot: cannot register a component without a kind")
	}
	for ch, attr := range c.Channels {
		if !c.declares(PhasePre, attr) {
			return fmt.Errorf("drplot: component %q maps channel %s to undeclared attribute %q",
				c.Kind, ch, attr)
		}
	}
	cs.byKind[c.Kind] = c
	return nil
}

// Lookup returns the schema registered for kind.
func (cs *Components) Lookup(kind string) (Component, error) {
	c, ok := cs.byKind[kind]
	if !ok {
		return Component{}, fmt.Errorf("drplot: no such component %q", kind)
	}
	return c, nil
}

// DefaultComponents returns a registry with the builtin drawable
// kinds.
func DefaultComponents() *Components {
	cs := NewComponents()
	builtin := []Component{
		{
			Kind: "point",
			Attrs: map[Phase]StringSet{
				PhasePre:    NewStringSetFrom([]string{"color", "fill", "shape", "size", "alpha"}),
				PhasePost:   NewStringSetFrom([]string{"edgecolor", "edgewidth"}),
				PhaseLegend: NewStringSetFrom([]string{"color", "fill", "shape", "size", "alpha"}),
			},
			Channels: map[VisualChannel]string{
				HueChannel:    "color",
				MarkerChannel: "shape",
				SizeChannel:   "size",
				AlphaChannel:  "alpha",
			},
			Legendable: true,
		},
		{
			Kind: "line",
			Attrs: map[Phase]StringSet{
				PhasePre:    NewStringSetFrom([]string{"color", "linetype", "size", "alpha"}),
				PhaseLegend: NewStringSetFrom([]string{"color", "linetype", "size", "alpha"}),
			},
			Channels: map[VisualChannel]string{
				HueChannel:       "color",
				LineStyleChannel: "linetype",
				SizeChannel:      "size",
				AlphaChannel:     "alpha",
			},
			Legendable: true,
		},
		{
			Kind: "bar",
			Attrs: map[Phase]StringSet{
				PhasePre:    NewStringSetFrom([]string{"color", "fill", "linetype", "width", "alpha"}),
				PhasePost:   NewStringSetFrom([]string{"edgecolor", "edgewidth"}),
				PhaseLegend: NewStringSetFrom([]string{"color", "fill", "linetype", "alpha"}),
			},
			Channels: map[VisualChannel]string{
				HueChannel:   "fill",
				AlphaChannel: "alpha",
			},
			Legendable: true,
		},
		{
			// A filled region between two curves. Its drawn handle is
			// not suitable as a legend glyph, a proxy swatch is built
			// instead.
			Kind: "band",
			Attrs: map[Phase]StringSet{
				PhasePre:    NewStringSetFrom([]string{"fill", "alpha"}),
				PhaseLegend: NewStringSetFrom([]string{"fill", "alpha"}),
			},
			Channels: map[VisualChannel]string{
				HueChannel:   "fill",
				AlphaChannel: "alpha",
			},
			Legendable: false,
		},
		{
			Kind: "text",
			Attrs: map[Phase]StringSet{
				PhasePre: NewStringSetFrom([]string{"color", "size", "family", "angle", "alpha"}),
			},
			Channels:   map[VisualChannel]string{HueChannel: "color"},
			Legendable: false,
		},
		{
			Kind: "errorbar",
			Attrs: map[Phase]StringSet{
				PhasePre:    NewStringSetFrom([]string{"color", "linetype", "size", "capsize", "alpha"}),
				PhaseLegend: NewStringSetFrom([]string{"color", "linetype", "size", "capsize", "alpha"}),
			},
			Channels: map[VisualChannel]string{
				HueChannel: "color",
			},
			Legendable: true,
		},
		{
			Kind: "axis",
			Attrs: map[Phase]StringSet{
				PhaseAxis: NewStringSetFrom([]string{
					"color", "gridcolor", "gridwidth", "tickcolor",
					"ticklength", "labelsize", "titlesize",
				}),
			},
		},
		{
			Kind: "legend",
			Attrs: map[Phase]StringSet{
				PhaseLegend: NewStringSetFrom([]string{
					"position", "labelsize", "titlesize", "swatchsize", "pad",
				}),
			},
		},
		{
			Kind: "figure",
			Attrs: map[Phase]StringSet{
				PhaseFigure: NewStringSetFrom([]string{"background", "titlesize"}),
			},
		},
	}
	for _, c := range builtin {
		if err := cs.Register(c); err != nil {
			panic(err)
		}
	}
	return cs
}
