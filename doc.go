// Package drplot resolves plot styles and coordinates legends for
// declarative, multi-subplot figures.
//
// Users of the surrounding plotting layer describe what to draw; this
// package decides how it looks. For every visual attribute of every
// drawable component it resolves a single winning value from four
// precedence tiers (explicit call kwargs, group cycle, component theme
// category, theme base), assigns cycle values to data groups so that
// the same group renders identically on every subplot, and collects,
// deduplicates and places legend entries across the figure.
//
//
// Themes
//
// A Theme is a layered bag of string-valued style attributes. Themes
// inherit from one parent and are never mutated; overrides are applied
// by layering a child:
//	theme := drplot.DefaultTheme().
//		With(drplot.PhasePre, "point", drplot.AesMapping{"size": "7"}).
//		WithCycle(drplot.HueChannel, "#4c72b0", "#c44e52")
//
//
// Sessions
//
// All mutable state of a figure (cycle assignments, legend registry)
// lives in a Session created per figure and discarded after its
// legends are placed:
//	s := drplot.NewSession(theme, drplot.GridShape{Rows: 2, Cols: 3})
//	s.Activate("point", drplot.HueChannel)
//	style, err := s.Resolve("point", drplot.PhasePre,
//		[]string{"color", "shape", "size"}, kwargs, group)
//	...
//	result, err := s.Finalize(drplot.StrategyAuto)
//
// Resolution failures are configuration errors and abort the plot
// call; no tier ever falls back to a silent default.
package drplot
