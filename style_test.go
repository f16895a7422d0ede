package drplot

import (
	"image/color"
	"testing"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		s string
		c color.Color
	}{
		{"#1256ab", color.NRGBA{0x12, 0x56, 0xab, 0xff}},
		{"#1256abcd", color.NRGBA{0x12, 0x56, 0xab, 0xcd}},
		{"red", color.NRGBA{0xff, 0x00, 0x00, 0xff}},
		{"green", color.NRGBA{0x00, 0x80, 0x00, 0xff}},
		{"blue", color.NRGBA{0x00, 0x00, 0xff, 0xff}},
	}

	for i, tc := range tests {
		got, err := ParseColor(tc.s)
		if err != nil {
			t.Errorf("%d %q: unexpected error %s", i, tc.s, err)
			continue
		}
		rg, gg, bg, ag := got.RGBA()
		rw, gw, bw, aw := tc.c.RGBA()
		if rg != rw || gg != gw || bg != bw || ag != aw {
			t.Errorf("%d %q: got %04X, %04X, %04X, %04X want %04X, %04X, %04X, %04X",
				i, tc.s, rg, gg, bg, ag, rw, gw, bw, aw)
		}
	}

	bad := []string{"nonsens", "#zzzzzz", "#12x45z", "#12345", "#1256ab0", "#-256ab"}
	for _, s := range bad {
		if _, err := ParseColor(s); err == nil {
			t.Errorf("%q: expected error", s)
		}
	}
}

func TestColor2Hex(t *testing.T) {
	tests := []string{"#1256abff", "#00ff0080"}
	for _, s := range tests {
		c, err := ParseColor(s)
		if err != nil {
			t.Fatalf("%q: %s", s, err)
		}
		if got := Color2Hex(c); got != s {
			t.Errorf("%q: round trip gave %q", s, got)
		}
	}
}

func TestParseFloat(t *testing.T) {
	tests := []struct {
		s         string
		low, high float64
		want      float64
		fail      bool
	}{
		{"0.5", 0, 1, 0.5, false},
		{"2", 0, 1, 1, false},   // clamped high
		{"-1", 0, 1, 0, false},  // clamped low
		{"40%", 0, 1, 0.4, false},
		{"1.5e1", 0, 100, 15, false},
		{"four", 0, 1, 0, true},
	}

	for i, tc := range tests {
		got, err := ParseFloat(tc.s, tc.low, tc.high)
		if tc.fail {
			if err == nil {
				t.Errorf("%d %q: expected error", i, tc.s)
			}
			continue
		}
		if err != nil {
			t.Errorf("%d %q: unexpected error %s", i, tc.s, err)
			continue
		}
		if got != tc.want {
			t.Errorf("%d %q: got %g want %g", i, tc.s, got, tc.want)
		}
	}
}

func TestString2PointShape(t *testing.T) {
	tests := []struct {
		s    string
		want PointShape
		ok   bool
	}{
		{"circle", CirclePoint, true},
		{"solid-diamond", SolidDiamondPoint, true},
		{"3", DiamondPoint, true},
		{"14", BlankPoint, true}, // numeric values wrap
		{"-3", CrossPoint, true}, // wrap stays in the shape table
		{"-14", BlankPoint, true},
		{"roundish", BlankPoint, false},
	}
	for i, tc := range tests {
		got, ok := String2PointShape(tc.s)
		if got != tc.want || ok != tc.ok {
			t.Errorf("%d %q: got %d,%t want %d,%t", i, tc.s, got, ok, tc.want, tc.ok)
		}
	}
}

func TestString2LineType(t *testing.T) {
	tests := []struct {
		s    string
		want LineType
		ok   bool
	}{
		{"solid", SolidLine, true},
		{"dotdash", DotDashLine, true},
		{"2", DashedLine, true},
		{"7", BlankLine, true},     // numeric values wrap
		{"-2", LongdashLine, true}, // wrap stays in the line table
		{"wavy", BlankLine, false},
	}
	for i, tc := range tests {
		got, ok := String2LineType(tc.s)
		if got != tc.want || ok != tc.ok {
			t.Errorf("%d %q: got %d,%t want %d,%t", i, tc.s, got, ok, tc.want, tc.ok)
		}
	}
}

func TestSetAlpha(t *testing.T) {
	c := SetAlpha(color.NRGBA{0x10, 0x20, 0x30, 0xff}, 0.5)
	_, _, _, a := c.RGBA()
	if a>>8 < 0x7e || a>>8 > 0x80 {
		t.Errorf("got alpha %02x, want about 0x7f", a>>8)
	}
}
