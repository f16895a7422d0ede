package drplot

import (
	"github.com/aclements/go-gg/palette"
)

// AesMapping is a flat bag of style attributes and their (unparsed)
// values, e.g. {"color": "#4c72b0", "shape": "circle", "size": "5"}.
// It is both the category payload of a Theme and the result of one
// style resolution.
type AesMapping map[string]string

func (m AesMapping) Copy() AesMapping {
	c := make(AesMapping, len(m))
	for a, v := range m {
		c[a] = v
	}
	return c
}

// Combine merges the ams into a copy of m. Later values in ams
// overwrite earlier ones or values in m.
func (m AesMapping) Combine(ams ...AesMapping) AesMapping {
	merged := m.Copy()
	for _, am := range ams {
		for attr, val := range am {
			merged[attr] = val
		}
	}
	return merged
}

// A Theme is an immutable, layerable bag of named style values.
// Values are organized into phase categories, either bound to one
// component or as the phase-wide base. A theme may inherit from one
// parent theme; lookups walk the parent chain front to back.
//
// Themes are never mutated once they are in use. Overrides are applied
// by layering a child theme via the With methods, each of which
// returns a new theme inheriting from its receiver.
type Theme struct {
	parent     *Theme
	categories map[Phase]map[string]AesMapping
	base       map[Phase]AesMapping
	cycles     map[VisualChannel][]string
	ranges     map[VisualChannel][2]float64
	gradient   palette.Continuous
}

// NewTheme returns an empty theme inheriting from parent. A nil parent
// is allowed and ends the lookup chain.
func NewTheme(parent *Theme) *Theme {
	return &Theme{
		parent:     parent,
		categories: make(map[Phase]map[string]AesMapping),
		base:       make(map[Phase]AesMapping),
		cycles:     make(map[VisualChannel][]string),
		ranges:     make(map[VisualChannel][2]float64),
	}
}

// With returns a child theme in which component carries style in the
// given phase.
func (t *Theme) With(ph Phase, component string, style AesMapping) *Theme {
	child := NewTheme(t)
	child.categories[ph] = map[string]AesMapping{component: style.Copy()}
	return child
}

// WithBase returns a child theme with style as the phase-wide base.
func (t *Theme) WithBase(ph Phase, style AesMapping) *Theme {
	child := NewTheme(t)
	child.base[ph] = style.Copy()
	return child
}

// WithCycle returns a child theme in which channel cycles through
// values.
func (t *Theme) WithCycle(ch VisualChannel, values ...string) *Theme {
	child := NewTheme(t)
	child.cycles[ch] = append([]string(nil), values...)
	return child
}

// WithRange returns a child theme in which continuous values on
// channel interpolate between lo and hi.
func (t *Theme) WithRange(ch VisualChannel, lo, hi float64) *Theme {
	child := NewTheme(t)
	child.ranges[ch] = [2]float64{lo, hi}
	return child
}

// WithGradient returns a child theme using p for continuous color
// mapping.
func (t *Theme) WithGradient(p palette.Continuous) *Theme {
	child := NewTheme(t)
	child.gradient = p
	return child
}

// lookup finds the component-bound value of attr in ph, walking the
// parent chain.
func (t *Theme) lookup(ph Phase, component, attr string) (string, bool) {
	for th := t; th != nil; th = th.parent {
		if cat, ok := th.categories[ph]; ok {
			if style, ok := cat[component]; ok {
				if v, ok := style[attr]; ok {
					return v, true
				}
			}
		}
	}
	return "", false
}

// lookupBase finds the phase-wide base value of attr, walking the
// parent chain.
func (t *Theme) lookupBase(ph Phase, attr string) (string, bool) {
	for th := t; th != nil; th = th.parent {
		if style, ok := th.base[ph]; ok {
			if v, ok := style[attr]; ok {
				return v, true
			}
		}
	}
	return "", false
}

// Cycle returns the configured cycle sequence for channel, walking the
// parent chain. It returns nil if no theme in the chain configures one.
func (t *Theme) Cycle(ch VisualChannel) []string {
	for th := t; th != nil; th = th.parent {
		if seq, ok := th.cycles[ch]; ok {
			return seq
		}
	}
	return nil
}

// Range returns the continuous value range for channel, walking the
// parent chain.
func (t *Theme) Range(ch VisualChannel) (lo, hi float64, ok bool) {
	for th := t; th != nil; th = th.parent {
		if r, ok := th.ranges[ch]; ok {
			return r[0], r[1], true
		}
	}
	return 0, 0, false
}

// Gradient returns the continuous color palette, walking the parent
// chain. Without an explicit gradient the viridis palette is used.
func (t *Theme) Gradient() palette.Continuous {
	for th := t; th != nil; th = th.parent {
		if th.gradient != nil {
			return th.gradient
		}
	}
	return palette.Viridis
}

// defaultHues is the default qualitative color cycle.
var defaultHues = []string{
	"#4c72b0", "#55a868", "#c44e52", "#8172b2", "#ccb974", "#64b5cd",
}

var defaultTheme = buildDefaultTheme()

// DefaultTheme returns the builtin base theme. Every attribute of
// every builtin component has a base entry, so resolution against it
// never fails with a missing default. The returned theme is shared;
// layer overrides on top of it instead of mutating it.
func DefaultTheme() *Theme {
	return defaultTheme
}

func buildDefaultTheme() *Theme {
	t := NewTheme(nil)

	t.base[PhasePre] = AesMapping{
		"color":    "#222222",
		"fill":     "#222222",
		"shape":    "circle",
		"size":     "5",
		"alpha":    "1",
		"linetype": "solid",
		"width":    "0.8",
		"capsize":  "3",
		"family":   "Helvetica",
		"angle":    "0",
	}
	t.base[PhasePost] = AesMapping{
		"edgecolor": "#000000",
		"edgewidth": "0",
	}
	t.base[PhaseAxis] = AesMapping{
		"color":      "#000000",
		"gridcolor":  "#ffffff",
		"gridwidth":  "1",
		"tickcolor":  "#111111",
		"ticklength": "5",
		"labelsize":  "10",
		"titlesize":  "12",
	}
	t.base[PhaseLegend] = AesMapping{
		"position":   "right",
		"labelsize":  "10",
		"titlesize":  "12",
		"swatchsize": "20",
		"pad":        "4",
		"color":      "#222222",
		"fill":       "#222222",
		"shape":      "circle",
		"size":       "5",
		"alpha":      "1",
		"linetype":   "solid",
		"capsize":    "3",
	}
	t.base[PhaseFigure] = AesMapping{
		"background": "#ffffff",
		"titlesize":  "14",
	}

	t.categories[PhasePre] = map[string]AesMapping{
		"line": {"size": "2"},
		"bar":  {"linetype": "blank", "color": "#333333", "fill": "#333333"},
		"band": {"alpha": "0.3"},
		"text": {"size": "10"},
	}

	t.cycles[HueChannel] = append([]string(nil), defaultHues...)
	t.cycles[MarkerChannel] = []string{
		"circle", "square", "delta", "diamond", "plus", "cross",
	}
	t.cycles[LineStyleChannel] = []string{
		"solid", "dashed", "dotted", "dotdash", "longdash",
	}
	t.cycles[SizeChannel] = []string{"4", "6", "8"}
	t.cycles[AlphaChannel] = []string{"1", "0.6", "0.3"}

	t.ranges[SizeChannel] = [2]float64{2, 10}
	t.ranges[AlphaChannel] = [2]float64{0.2, 1}

	return t
}
