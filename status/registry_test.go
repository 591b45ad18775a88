package status

import "testing"

func TestMetricPointerIsStable(t *testing.T) {
	r := NewRegistry()

	a := r.Ints.Get(KeyCloudsRecycled)
	a.Add(2)
	b := r.Ints.Get(KeyCloudsRecycled)

	if a != b {
		t.Fatal("Expected the same pointer for repeated Get")
	}
	if b.Load() != 2 {
		t.Errorf("Expected 2, got %d", b.Load())
	}
}

func TestLinesGroupedAndSorted(t *testing.T) {
	r := NewRegistry()
	r.Strings.Get(KeyAppState).Set("InGame")
	r.Ints.Get(KeyEntities).Store(7)
	r.Ints.Get(KeyClouds).Store(3)
	r.Floats.Get(KeyFPS).Set(59.94)
	r.Bools.Get(KeyAudioMuted).Store(true)

	want := []string{
		"app.state: InGame",
		"world.clouds: 3",
		"world.entities: 7",
		"frame.fps: 59.9",
		"audio.muted: true",
	}

	got := r.Lines()
	if len(got) != len(want) {
		t.Fatalf("Expected %d lines, got %d: %v", len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Line %d: expected %q, got %q", i, want[i], got[i])
		}
	}
	if r.TotalCount() != 5 {
		t.Errorf("Expected 5 metrics, got %d", r.TotalCount())
	}
}

func TestAtomicStringZeroValue(t *testing.T) {
	var s AtomicString
	if s.Get() != "" {
		t.Errorf("Expected empty string, got %q", s.Get())
	}
	s.Set("window")
	if s.Get() != "window" {
		t.Errorf("Expected window, got %q", s.Get())
	}
}
