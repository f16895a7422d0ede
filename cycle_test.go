package drplot

import (
	"errors"
	"strconv"
	"testing"
)

func TestCycleAssign(t *testing.T) {
	th := DefaultTheme().WithCycle(HueChannel, "red", "blue")
	e := NewCycleEngine()

	a, b, c := GroupBy("g", "A"), GroupBy("g", "B"), GroupBy("g", "C")

	got := []string{}
	for _, gk := range []GroupKey{a, b, c} {
		v, err := e.Assign(th, HueChannel, gk)
		if err != nil {
			t.Fatalf("%s: %s", gk, err)
		}
		got = append(got, v)
	}
	// First seen gets the first slot, the third key wraps.
	want := []string{"red", "blue", "red"}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("assignment %d: got %q want %q", i, got[i], want[i])
		}
	}

	// Repeated lookups are idempotent and order independent.
	for i, gk := range []GroupKey{c, a, b} {
		v, err := e.Assign(th, HueChannel, gk)
		if err != nil {
			t.Fatalf("%s: %s", gk, err)
		}
		want := []string{"red", "red", "blue"}[i]
		if v != want {
			t.Errorf("relookup %s: got %q want %q", gk, v, want)
		}
	}
}

func TestCycleNoDoubleValues(t *testing.T) {
	th := DefaultTheme()
	e := NewCycleEngine()

	// As many groups as the default hue cycle has entries: no two
	// groups may share a color.
	n := len(th.Cycle(HueChannel))
	seen := map[string]string{}
	for i := 0; i < n; i++ {
		gk := GroupBy("g", strconv.Itoa(i))
		v, err := e.Assign(th, HueChannel, gk)
		if err != nil {
			t.Fatalf("%s: %s", gk, err)
		}
		if prev, ok := seen[v]; ok {
			t.Errorf("groups %s and %s share %q", prev, gk, v)
		}
		seen[v] = gk.String()
	}
}

func TestCyclePerThemeState(t *testing.T) {
	e := NewCycleEngine()
	t1 := DefaultTheme().WithCycle(HueChannel, "red", "blue")
	t2 := DefaultTheme().WithCycle(HueChannel, "red", "blue")

	gk := GroupBy("g", "A")
	v1, _ := e.Assign(t1, HueChannel, gk)
	e.Assign(t1, HueChannel, GroupBy("g", "B"))
	v2, _ := e.Assign(t2, HueChannel, gk)

	// Distinct theme instances carry distinct cycle state, but the
	// first-seen rule still yields the first slot for each.
	if v1 != "red" || v2 != "red" {
		t.Errorf("got %q and %q", v1, v2)
	}
}

func TestCycleEmpty(t *testing.T) {
	th := DefaultTheme().WithCycle(MarkerChannel)
	e := NewCycleEngine()

	_, err := e.Assign(th, MarkerChannel, GroupBy("g", "A"))
	var ec *EmptyCycleError
	if !errors.As(err, &ec) {
		t.Fatalf("got %v, want EmptyCycleError", err)
	}
	if ec.Channel != MarkerChannel {
		t.Errorf("error names channel %s", ec.Channel)
	}
}

func TestCycleOverride(t *testing.T) {
	th := DefaultTheme().WithCycle(HueChannel, "red", "blue")
	e := NewCycleEngine()

	a, b := GroupBy("g", "A"), GroupBy("g", "B")
	if err := e.Override(th, HueChannel, a, "black"); err != nil {
		t.Fatalf("override: %s", err)
	}

	// The override is cached like a cycle value.
	if v, _ := e.Assign(th, HueChannel, a); v != "black" {
		t.Errorf("got %q want black", v)
	}
	// Other groups still cycle.
	if v, _ := e.Assign(th, HueChannel, b); v != "red" {
		t.Errorf("got %q want red", v)
	}
	// Conflicting late override is refused: earlier resolutions
	// already saw the assigned value.
	if err := e.Override(th, HueChannel, b, "green"); err == nil {
		t.Errorf("conflicting override accepted")
	}
}

func TestAssignContinuous(t *testing.T) {
	th := DefaultTheme() // size range 2..10
	e := NewCycleEngine()
	e.Train(SizeChannel, 0, 100)

	tests := []struct {
		x    float64
		want string
	}{
		{0, "2"},
		{50, "6"},
		{100, "10"},
		{150, "10"}, // clamped to trained bounds
	}
	for _, tc := range tests {
		got, err := e.AssignContinuous(th, SizeChannel, tc.x)
		if err != nil {
			t.Fatalf("x=%g: %s", tc.x, err)
		}
		if got != tc.want {
			t.Errorf("x=%g: got %q want %q", tc.x, got, tc.want)
		}
	}

	// Training widens bounds, it never narrows them.
	e.Train(SizeChannel, 40, 60)
	if got, _ := e.AssignContinuous(th, SizeChannel, 0); got != "2" {
		t.Errorf("bounds narrowed: got %q", got)
	}
}

func TestAssignContinuousHue(t *testing.T) {
	e := NewCycleEngine()
	e.Train(HueChannel, 0, 1)

	lo, err := e.AssignContinuous(DefaultTheme(), HueChannel, 0)
	if err != nil {
		t.Fatalf("%s", err)
	}
	hi, err := e.AssignContinuous(DefaultTheme(), HueChannel, 1)
	if err != nil {
		t.Fatalf("%s", err)
	}
	if _, err := ParseColor(lo); err != nil {
		t.Errorf("low end %q is not a color: %s", lo, err)
	}
	if lo == hi {
		t.Errorf("gradient ends coincide: %q", lo)
	}

	// Pure mapping: same value, same result.
	again, _ := e.AssignContinuous(DefaultTheme(), HueChannel, 0)
	if again != lo {
		t.Errorf("mapping not pure: %q vs %q", again, lo)
	}
}

func TestAssignContinuousUntrained(t *testing.T) {
	e := NewCycleEngine()
	if _, err := e.AssignContinuous(DefaultTheme(), SizeChannel, 5); err == nil {
		t.Errorf("expected error for untrained channel")
	}
}
