package drplot

import (
	"fmt"
	"strconv"
)

// cycleState is the per-(theme, channel) assignment state: the
// materialized sequence, the cursor into it, and the values already
// handed out per group key.
type cycleState struct {
	seq         []string
	assignments map[string]string
	cursor      int
}

type cycleKey struct {
	theme   *Theme
	channel VisualChannel
}

// CycleEngine deterministically assigns style values to data groups.
// Categorical channels index into a cycle sequence in first-seen group
// order; continuous channels interpolate the theme's value range over
// the bounds observed in the active plot call.
//
// One engine is owned by one figure session. Within that session the
// same (theme, channel, group key) always yields the same value, no
// matter how many subplots or plot calls reference the group. That
// cross-subplot identity is the whole point of the engine.
type CycleEngine struct {
	states map[cycleKey]*cycleState
	bounds map[VisualChannel][2]float64
}

func NewCycleEngine() *CycleEngine {
	return &CycleEngine{
		states: make(map[cycleKey]*cycleState),
		bounds: make(map[VisualChannel][2]float64),
	}
}

// defaultSequence is the fallback cycle for channels whose theme chain
// configures none.
func defaultSequence(ch VisualChannel) []string {
	return defaultTheme.Cycle(ch)
}

func (e *CycleEngine) state(theme *Theme, ch VisualChannel) (*cycleState, error) {
	key := cycleKey{theme: theme, channel: ch}
	st, ok := e.states[key]
	if ok {
		return st, nil
	}
	seq := theme.Cycle(ch)
	if seq == nil {
		seq = defaultSequence(ch)
	}
	if len(seq) == 0 {
		return nil, &EmptyCycleError{Channel: ch}
	}
	st = &cycleState{seq: seq, assignments: make(map[string]string)}
	e.states[key] = st
	return st, nil
}

// Assign returns the categorical style value for gk on channel ch.
// The first request for a new group key takes the next cycle slot and
// advances the cursor; repeated requests return the cached value and
// are order-independent once assigned. Cycles longer than the group
// count leave slots unused, shorter ones wrap around.
func (e *CycleEngine) Assign(theme *Theme, ch VisualChannel, gk GroupKey) (string, error) {
	st, err := e.state(theme, ch)
	if err != nil {
		return "", err
	}
	key := gk.Key()
	if v, ok := st.assignments[key]; ok {
		return v, nil
	}
	v := st.seq[st.cursor%len(st.seq)]
	st.cursor++
	st.assignments[key] = v
	return v, nil
}

// Override fixes the value for gk on channel ch, bypassing the cycle.
// The override is cached exactly like a cycle assignment, so later
// lookups return it unchanged. It must be set before the first Assign
// for the group; overriding an already assigned group is an error
// because earlier resolutions already saw the cycle value.
func (e *CycleEngine) Override(theme *Theme, ch VisualChannel, gk GroupKey, value string) error {
	st, err := e.state(theme, ch)
	if err != nil {
		return err
	}
	key := gk.Key()
	if prev, ok := st.assignments[key]; ok && prev != value {
		return fmt.Errorf("drplot: group %s already assigned %q on channel %s",
			gk, prev, ch)
	}
	st.assignments[key] = value
	return nil
}

// Train records the observed data bounds of the active plot call for a
// continuous channel. Later calls widen the bounds, mirroring how
// scales train on successive layers.
func (e *CycleEngine) Train(ch VisualChannel, min, max float64) {
	if b, ok := e.bounds[ch]; ok {
		if b[0] < min {
			min = b[0]
		}
		if b[1] > max {
			max = b[1]
		}
	}
	e.bounds[ch] = [2]float64{min, max}
}

// Bounds returns the trained bounds of a continuous channel.
func (e *CycleEngine) Bounds(ch VisualChannel) (min, max float64, ok bool) {
	b, ok := e.bounds[ch]
	return b[0], b[1], ok
}

// AssignContinuous maps the numeric group value x into the channel's
// configured value range by linear interpolation against the trained
// bounds. The mapping is pure given the same bounds, so nothing is
// cached. Hue maps through the theme's continuous palette, size and
// alpha interpolate the theme range.
func (e *CycleEngine) AssignContinuous(theme *Theme, ch VisualChannel, x float64) (string, error) {
	b, ok := e.bounds[ch]
	if !ok {
		return "", fmt.Errorf("drplot: channel %s has no trained bounds", ch)
	}
	t := 0.0
	if b[1] > b[0] {
		t = (x - b[0]) / (b[1] - b[0])
	}
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}

	switch ch {
	case HueChannel:
		return Color2Hex(theme.Gradient().Map(t)), nil
	case SizeChannel, AlphaChannel:
		lo, hi, ok := theme.Range(ch)
		if !ok {
			lo, hi, _ = defaultTheme.Range(ch)
		}
		v := lo + t*(hi-lo)
		return strconv.FormatFloat(v, 'g', -1, 64), nil
	}
	return "", fmt.Errorf("drplot: channel %s has no continuous mapping", ch)
}
