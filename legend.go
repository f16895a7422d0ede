package drplot

import (
	"fmt"
	"strconv"

	"github.com/aclements/go-moremath/vec"
	"gonum.org/v1/plot"
)

// GridShape is the subplot grid of a figure, as supplied by the
// external layout provider. The engine consumes the shape, it never
// computes layout itself.
type GridShape struct {
	Rows, Cols int
}

// Cell is the (row, col) origin of one plot call within the grid.
type Cell struct {
	Row, Col int
}

// A LegendEntry is one candidate line of a legend: a rendering handle
// plus the metadata needed to deduplicate and place it. Entries are
// immutable once registered.
type LegendEntry struct {
	Handle       Handle
	Label        string
	Channel      VisualChannel
	HasChannel   bool
	ChannelValue string
	Group        GroupKey
	Origin       Cell
	Kind         string
}

type dedupKey struct {
	label      string
	channel    VisualChannel
	hasChannel bool
	value      string
}

func (e LegendEntry) key() dedupKey {
	k := dedupKey{label: e.Label, hasChannel: e.HasChannel}
	if e.HasChannel {
		k.channel = e.Channel
		k.value = e.ChannelValue
	}
	return k
}

// LegendRegistry accumulates legend entries over one figure session
// and deduplicates them by (label, channel, channel value). Entries
// without a channel dedupe on the label alone. Insertion order is
// preserved among the survivors, so legend ordering is stable across
// runs for the same input order.
type LegendRegistry struct {
	entries []LegendEntry
	seen    map[dedupKey]bool
}

func NewLegendRegistry() *LegendRegistry {
	return &LegendRegistry{seen: make(map[dedupKey]bool)}
}

// Add registers e and reports whether it was newly added. A second
// entry with the same identity is visually redundant, regardless of
// which subplot or component produced it, and is discarded.
func (r *LegendRegistry) Add(e LegendEntry) bool {
	k := e.key()
	if r.seen[k] {
		return false
	}
	r.seen[k] = true
	r.entries = append(r.entries, e)
	return true
}

// Entries returns the surviving entries in registration order.
func (r *LegendRegistry) Entries() []LegendEntry {
	return r.entries
}

// Len returns the number of surviving entries.
func (r *LegendRegistry) Len() int {
	return len(r.entries)
}

// Clear empties the registry. It is called at session start and after
// finalization.
func (r *LegendRegistry) Clear() {
	r.entries = nil
	r.seen = make(map[dedupKey]bool)
}

// drain returns all entries and empties the registry.
func (r *LegendRegistry) drain() []LegendEntry {
	entries := r.entries
	r.Clear()
	return entries
}

// -------------------------------------------------------------------------
// Strategy

// Strategy selects how the registered entries are distributed over
// placed legends.
type Strategy int

const (
	// StrategyAuto selects a strategy from the grid shape and the
	// channel diversity of the registered entries.
	StrategyAuto Strategy = iota
	// StrategyFigure places one consolidated legend for the whole
	// figure.
	StrategyFigure
	// StrategyPerSubplot places one legend per subplot using only the
	// entries originating there.
	StrategyPerSubplot
	// StrategySplit places one legend segment per visual channel.
	StrategySplit
	// StrategyNone places no legends and discards all entries.
	StrategyNone
)

func (s Strategy) String() string {
	switch s {
	case StrategyAuto:
		return "auto"
	case StrategyFigure:
		return "figure-level"
	case StrategyPerSubplot:
		return "per-subplot"
	case StrategySplit:
		return "split"
	case StrategyNone:
		return "none"
	}
	return fmt.Sprintf("strategy(%d)", int(s))
}

// String2Strategy parses a strategy name. Unknown names fail here, at
// configuration time, not at finalize time.
func String2Strategy(s string) (Strategy, error) {
	switch s {
	case "auto":
		return StrategyAuto, nil
	case "figure-level", "figure":
		return StrategyFigure, nil
	case "per-subplot", "subplot":
		return StrategyPerSubplot, nil
	case "split":
		return StrategySplit, nil
	case "none":
		return StrategyNone, nil
	}
	return 0, &UnknownStrategyError{Name: s}
}

// -------------------------------------------------------------------------
// Placement

// A PlacedLegend is one legend the rendering backend should draw: its
// entries in display order, where it belongs and an optional title.
type PlacedLegend struct {
	Entries  []LegendEntry
	Position string // placement hint from the theme, e.g. "right"
	Title    string

	// Cell locates a per-subplot legend. It is meaningful only when
	// PerSubplot is set.
	Cell       Cell
	PerSubplot bool

	// Channel is set for split legends, one segment per channel.
	Channel    VisualChannel
	HasChannel bool
}

// PlacementResult is the outcome of finalizing a figure session.
type PlacementResult struct {
	Strategy Strategy // the effective (resolved) strategy
	Legends  []PlacedLegend
}

// Coordinator owns final legend placement. Finalize consumes the
// registry exactly once per figure session; the session guards against
// repeated calls.
type Coordinator struct {
	Theme *Theme
}

// Finalize resolves the strategy against the grid shape and the
// channel diversity of the registered entries, then drains the
// registry into placed legends. Calling it again on the now empty
// registry yields an empty result.
func (c *Coordinator) Finalize(grid GridShape, reg *LegendRegistry, strategy Strategy) (PlacementResult, error) {
	theme := c.Theme
	if theme == nil {
		theme = DefaultTheme()
	}
	position, ok := theme.lookup(PhaseLegend, "legend", "position")
	if !ok {
		position, _ = theme.lookupBase(PhaseLegend, "position")
	}

	entries := reg.drain()
	effective := strategy
	if effective == StrategyAuto {
		effective = autoStrategy(grid, entries)
	}

	result := PlacementResult{Strategy: effective}
	if len(entries) == 0 || effective == StrategyNone {
		return result, nil
	}

	switch effective {
	case StrategyFigure:
		result.Legends = []PlacedLegend{{
			Entries:  entries,
			Position: position,
			Title:    groupTitle(entries),
		}}

	case StrategyPerSubplot:
		order := []Cell{}
		byCell := make(map[Cell][]LegendEntry)
		for _, e := range entries {
			if _, ok := byCell[e.Origin]; !ok {
				order = append(order, e.Origin)
			}
			byCell[e.Origin] = append(byCell[e.Origin], e)
		}
		for _, cell := range order {
			result.Legends = append(result.Legends, PlacedLegend{
				Entries:    byCell[cell],
				Position:   position,
				Title:      groupTitle(byCell[cell]),
				Cell:       cell,
				PerSubplot: true,
			})
		}

	case StrategySplit:
		type segKey struct {
			ch  VisualChannel
			has bool
		}
		order := []segKey{}
		bySeg := make(map[segKey][]LegendEntry)
		for _, e := range entries {
			k := segKey{ch: e.Channel, has: e.HasChannel}
			if _, ok := bySeg[k]; !ok {
				order = append(order, k)
			}
			bySeg[k] = append(bySeg[k], e)
		}
		for _, k := range order {
			result.Legends = append(result.Legends, PlacedLegend{
				Entries:    bySeg[k],
				Position:   position,
				Title:      groupTitle(bySeg[k]),
				Channel:    k.ch,
				HasChannel: k.has,
			})
		}

	default:
		return PlacementResult{}, fmt.Errorf("drplot: cannot place strategy %s", effective)
	}
	return result, nil
}

// autoStrategy implements the documented selection rules: multi-cell
// grids get a single figure-level legend, single-cell figures with
// entries on more than one channel get split legends, everything else
// one legend per subplot.
func autoStrategy(grid GridShape, entries []LegendEntry) Strategy {
	if grid.Rows > 1 || grid.Cols > 1 {
		return StrategyFigure
	}
	channels := make(map[VisualChannel]bool)
	for _, e := range entries {
		if e.HasChannel {
			channels[e.Channel] = true
		}
	}
	if len(channels) > 1 {
		return StrategySplit
	}
	return StrategyPerSubplot
}

// groupTitle derives a legend title from the grouping column of the
// entries, if they agree on one.
func groupTitle(entries []LegendEntry) string {
	title := ""
	for _, e := range entries {
		if len(e.Group) == 0 {
			continue
		}
		col := e.Group[0].Column
		if title == "" {
			title = col
		} else if title != col {
			return ""
		}
	}
	return title
}

// -------------------------------------------------------------------------
// Continuous legends

// continuousBreaks picks representative values for a continuous
// legend. Nice axis-style tick values are preferred; if fewer than two
// fall inside the bounds, the bounds are divided evenly instead.
func continuousBreaks(lo, hi float64, n int) []float64 {
	var breaks []float64
	for _, tick := range (plot.DefaultTicks{}).Ticks(lo, hi) {
		if tick.IsMinor() {
			continue
		}
		breaks = append(breaks, tick.Value)
	}
	if len(breaks) >= 2 {
		if len(breaks) > n {
			breaks = thinBreaks(breaks, n)
		}
		return breaks
	}
	return vec.Linspace(lo, hi, n)
}

func thinBreaks(breaks []float64, n int) []float64 {
	if n < 2 {
		n = 2
	}
	thinned := make([]float64, 0, n)
	last := len(breaks) - 1
	for i := 0; i < n; i++ {
		thinned = append(thinned, breaks[i*last/(n-1)])
	}
	return thinned
}

func formatBreak(v float64) string {
	return strconv.FormatFloat(v, 'g', 4, 64)
}
