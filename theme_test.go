package drplot

import "testing"

func TestThemeLayering(t *testing.T) {
	base := DefaultTheme()
	child := base.With(PhasePre, "point", AesMapping{"size": "9"})

	if v, ok := child.lookup(PhasePre, "point", "size"); !ok || v != "9" {
		t.Errorf("child override: got %q,%t", v, ok)
	}
	// Ancestors stay untouched.
	if v, ok := base.lookup(PhasePre, "point", "size"); ok {
		t.Errorf("base theme mutated: point size = %q", v)
	}
	// Unrelated attributes fall through to the parent chain.
	if v, ok := child.lookupBase(PhasePre, "color"); !ok || v != "#222222" {
		t.Errorf("chain walk: got %q,%t", v, ok)
	}
	// Chain exhaustion reports absence.
	if _, ok := NewTheme(nil).lookupBase(PhasePre, "color"); ok {
		t.Errorf("empty theme produced a value")
	}
}

func TestThemeCycleAndRange(t *testing.T) {
	th := DefaultTheme().WithCycle(HueChannel, "red", "blue")

	seq := th.Cycle(HueChannel)
	if len(seq) != 2 || seq[0] != "red" || seq[1] != "blue" {
		t.Errorf("got cycle %v", seq)
	}
	// Unconfigured channels walk up to the default cycles.
	if seq := th.Cycle(MarkerChannel); len(seq) == 0 || seq[0] != "circle" {
		t.Errorf("got marker cycle %v", seq)
	}

	lo, hi, ok := th.Range(SizeChannel)
	if !ok || lo != 2 || hi != 10 {
		t.Errorf("got size range %g-%g,%t", lo, hi, ok)
	}

	lo, hi, ok = th.WithRange(SizeChannel, 1, 3).Range(SizeChannel)
	if !ok || lo != 1 || hi != 3 {
		t.Errorf("got overridden size range %g-%g,%t", lo, hi, ok)
	}
}

// Every attribute every builtin component declares must have a base
// entry in the default theme, otherwise resolution of defaults would
// fail with a missing default.
func TestDefaultThemeComplete(t *testing.T) {
	s := NewSession(nil, GridShape{1, 1})
	cs := DefaultComponents()
	for _, kind := range []string{"point", "line", "bar", "band", "text", "errorbar", "axis", "legend", "figure"} {
		c, err := cs.Lookup(kind)
		if err != nil {
			t.Fatalf("%s: %s", kind, err)
		}
		for ph, attrs := range c.Attrs {
			for _, attr := range attrs.Elements() {
				if _, err := s.Resolve(kind, ph, []string{attr}, nil, nil); err != nil {
					t.Errorf("%s/%s/%s: %s", kind, ph, attr, err)
				}
			}
		}
	}
}

func TestAesMappingCombine(t *testing.T) {
	m := AesMapping{"color": "red", "size": "5"}
	merged := m.Combine(AesMapping{"size": "7"}, AesMapping{"alpha": "0.5"})

	if merged["color"] != "red" || merged["size"] != "7" || merged["alpha"] != "0.5" {
		t.Errorf("got %v", merged)
	}
	if m["size"] != "5" {
		t.Errorf("receiver mutated: %v", m)
	}
}
