package drplot

import (
	"fmt"
	"log"
	"os"
)

// Warning is the logger for conditions that do not abort a plot call
// but may lead to unexpected results. Errors are returned, never
// logged and swallowed.
var Warning = log.New(os.Stderr, "[drplot] ", log.Lshortfile)

// A Session is the style and legend state of one figure, from the
// creation of its subplot grid to final legend placement. It owns
// exactly one cycle engine and one legend registry; every plot call
// within the figure reads and mutates this shared state, which is what
// makes a group render identically on every subplot.
//
// Sessions are single-threaded. A session is discarded after Finalize;
// fresh figures get fresh sessions, so no state leaks across figures
// or tests.
type Session struct {
	Theme      *Theme
	Grid       GridShape
	Components *Components
	Cycles     *CycleEngine
	Legends    *LegendRegistry
	Proxy      ProxyFactory

	resolver  *Resolver
	coord     Coordinator
	finalized bool
}

// NewSession starts a figure session over the given grid. A nil theme
// selects the default theme.
func NewSession(theme *Theme, grid GridShape) *Session {
	if theme == nil {
		theme = DefaultTheme()
	}
	if grid.Rows < 1 {
		grid.Rows = 1
	}
	if grid.Cols < 1 {
		grid.Cols = 1
	}
	components := DefaultComponents()
	cycles := NewCycleEngine()
	return &Session{
		Theme:      theme,
		Grid:       grid,
		Components: components,
		Cycles:     cycles,
		Legends:    NewLegendRegistry(),
		resolver:   NewResolver(components, cycles),
		coord:      Coordinator{Theme: theme},
	}
}

// Activate marks the channels as group-driven for the whole session,
// validating them against the component that requests them.
func (s *Session) Activate(component string, chs ...VisualChannel) error {
	return s.resolver.Activate(component, chs...)
}

// Resolve returns the attribute map for one component and phase, ready
// to hand to the rendering backend as keyword-style attributes.
func (s *Session) Resolve(component string, ph Phase, requested []string,
	kwargs AesMapping, gk GroupKey) (AesMapping, error) {
	return s.resolver.Resolve(component, ph, requested, kwargs, gk, s.Theme)
}

// Entry builds the legend entry for one drawn artifact: it resolves
// the component's legend-phase style, derives the channel value the
// entry represents, and synthesizes the proxy handle. The entry is not
// registered; pass it to Register.
func (s *Session) Entry(component, label string, ch VisualChannel, hasChannel bool,
	gk GroupKey, origin Cell, src Handle) (LegendEntry, error) {

	c, err := s.Components.Lookup(component)
	if err != nil {
		return LegendEntry{}, err
	}
	var style AesMapping
	if attrs, ok := c.Attrs[PhaseLegend]; ok {
		style, err = s.Resolve(component, PhaseLegend, attrs.Elements(), nil, gk)
		if err != nil {
			return LegendEntry{}, err
		}
	}

	value := ""
	if hasChannel {
		if !c.Supports(ch) {
			return LegendEntry{}, &UnsupportedChannelError{Component: component, Channel: ch}
		}
		if attr, ok := c.Channels[ch]; ok {
			value = style[attr]
		}
	}

	handle, err := s.Proxy.Build(component, src, ch, hasChannel, style)
	if err != nil {
		return LegendEntry{}, err
	}
	return LegendEntry{
		Handle:       handle,
		Label:        label,
		Channel:      ch,
		HasChannel:   hasChannel,
		ChannelValue: value,
		Group:        gk,
		Origin:       origin,
		Kind:         component,
	}, nil
}

// Register adds the entry to the session's legend registry and reports
// whether it survived deduplication.
func (s *Session) Register(e LegendEntry) bool {
	return s.Legends.Add(e)
}

// ContinuousLegend synthesizes the entries of a continuous legend for
// a trained channel: n representative values over the trained bounds,
// each mapped with the same interpolation the cycle engine used for
// drawing. The caller registers the returned entries like any others.
func (s *Session) ContinuousLegend(ch VisualChannel, n int) ([]LegendEntry, error) {
	lo, hi, ok := s.Cycles.Bounds(ch)
	if !ok {
		return nil, fmt.Errorf("drplot: channel %s has no trained bounds", ch)
	}
	if n < 2 {
		n = 2
	}

	entries := make([]LegendEntry, 0, n)
	for _, v := range continuousBreaks(lo, hi, n) {
		mapped, err := s.Cycles.AssignContinuous(s.Theme, ch, v)
		if err != nil {
			return nil, err
		}
		style := AesMapping{"alpha": "1"}
		switch ch {
		case HueChannel:
			style["color"] = mapped
		case SizeChannel:
			style["size"] = mapped
		case AlphaChannel:
			style["alpha"] = mapped
		default:
			return nil, fmt.Errorf("drplot: channel %s has no continuous legend", ch)
		}
		handle, err := s.Proxy.Build("legend", nil, ch, true, style)
		if err != nil {
			return nil, err
		}
		entries = append(entries, LegendEntry{
			Handle:       handle,
			Label:        formatBreak(v),
			Channel:      ch,
			HasChannel:   true,
			ChannelValue: mapped,
			Kind:         "legend",
		})
	}
	return entries, nil
}

// Finalize places all registered legend entries exactly once. A second
// call is a no-op reporting StrategyNone and no legends.
func (s *Session) Finalize(strategy Strategy) (PlacementResult, error) {
	if s.finalized {
		Warning.Printf("legend placement ran already, ignoring repeated finalize")
		s.Legends.Clear()
		return PlacementResult{Strategy: StrategyNone}, nil
	}
	result, err := s.coord.Finalize(s.Grid, s.Legends, strategy)
	if err != nil {
		return PlacementResult{}, err
	}
	s.finalized = true
	return result, nil
}
