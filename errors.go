package drplot

import "fmt"

// The error types below all report configuration or programming
// errors. None of them is transient: callers are expected to abort the
// whole plot call instead of rendering a partially styled figure.
// Resolution failures are never masked by substituting a fallback
// value.

// MissingDefaultError reports that no precedence tier produced a value
// for a requested attribute.
type MissingDefaultError struct {
	Component string
	Phase     Phase
	Attr      string
}

func (e *MissingDefaultError) Error() string {
	return fmt.Sprintf("drplot: no value for attribute %q of component %q in phase %s",
		e.Attr, e.Component, e.Phase)
}

// UnknownAttrError reports a requested attribute that is not part of
// the component's declared schema for the phase.
type UnknownAttrError struct {
	Component string
	Phase     Phase
	Attr      string
}

func (e *UnknownAttrError) Error() string {
	return fmt.Sprintf("drplot: component %q declares no attribute %q in phase %s",
		e.Component, e.Attr, e.Phase)
}

// UnsupportedChannelError reports activation of a visual channel the
// component did not declare support for.
type UnsupportedChannelError struct {
	Component string
	Channel   VisualChannel
}

func (e *UnsupportedChannelError) Error() string {
	return fmt.Sprintf("drplot: component %q does not support channel %s",
		e.Component, e.Channel)
}

// EmptyCycleError reports a categorical cycle configured with zero
// values. A zero-length cycle cannot wrap around.
type EmptyCycleError struct {
	Channel VisualChannel
}

func (e *EmptyCycleError) Error() string {
	return fmt.Sprintf("drplot: empty cycle for channel %s", e.Channel)
}

// NotLegendableError reports a drawn handle without a meaningful proxy
// representation. A silently missing legend entry would be a visible
// defect, so this is fatal.
type NotLegendableError struct {
	Kind string
}

func (e *NotLegendableError) Error() string {
	return fmt.Sprintf("drplot: component kind %q has no legendable handle", e.Kind)
}

// UnknownStrategyError reports an invalid legend placement strategy
// name. It is raised when the name is parsed, not at finalize time.
type UnknownStrategyError struct {
	Name string
}

func (e *UnknownStrategyError) Error() string {
	return fmt.Sprintf("drplot: no such legend strategy %q", e.Name)
}
