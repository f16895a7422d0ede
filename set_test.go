package drplot

import "testing"

func TestStringSet(t *testing.T) {
	s := NewStringSetFrom([]string{"color", "size", "shape"})
	if !s.Contains("size") {
		t.Errorf("size missing")
	}
	if s.Contains("alpha") {
		t.Errorf("alpha should not be there")
	}

	s.Add("alpha")
	if !s.Contains("alpha") {
		t.Errorf("alpha missing after Add")
	}

	want := []string{"a", "b", "c"}
	got := NewStringSetFrom([]string{"c", "a", "b"}).Elements()
	if len(got) != len(want) {
		t.Fatalf("got %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("elements not sorted: %v", got)
			break
		}
	}
}
