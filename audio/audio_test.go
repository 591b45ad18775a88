package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/poly/engine"
)

func TestWindGeneratorBoundedAndDeterministic(t *testing.T) {
	a := NewWindGenerator(beep.SampleRate(44100), 42)
	b := NewWindGenerator(beep.SampleRate(44100), 42)

	bufA := make([][2]float64, 4096)
	bufB := make([][2]float64, 4096)
	nA, okA := a.Stream(bufA)
	nB, _ := b.Stream(bufB)
	if nA != len(bufA) || !okA || nB != len(bufB) {
		t.Fatalf("Expected endless stream, got n=%d ok=%v", nA, okA)
	}

	var energy float64
	for i := range bufA {
		if bufA[i] != bufB[i] {
			t.Fatalf("Sample %d differs for equal seeds", i)
		}
		for _, v := range bufA[i] {
			if v < -1 || v > 1 {
				t.Fatalf("Sample %d out of range: %v", i, v)
			}
			energy += v * v
		}
	}
	if energy == 0 {
		t.Error("Expected audible output")
	}
	if a.Err() != nil {
		t.Error("Generator must not fail")
	}
}

func TestVolumeExponent(t *testing.T) {
	tests := []struct {
		gain float64
		want float64
	}{
		{1, 0},
		{0.5, -1},
		{0.25, -2},
		{2, 0},
	}
	for _, tt := range tests {
		if got := VolumeExponent(tt.gain); got != tt.want {
			t.Errorf("VolumeExponent(%v) = %v, want %v", tt.gain, got, tt.want)
		}
	}
	if !math.IsInf(VolumeExponent(0), -1) {
		t.Error("Zero gain should be silent")
	}
}

func TestDisabledServiceIsSilentPlayer(t *testing.T) {
	s := NewService(Config{Enabled: false, MasterVolume: 0.4, SampleRate: 44100, BufferPeriod: 100 * time.Millisecond})
	if err := s.Init(); err != nil {
		t.Fatal(err)
	}
	if err := s.Start(); err != nil {
		t.Fatal(err)
	}
	if s.IsRunning() {
		t.Error("Disabled service must not open a device")
	}

	if !s.ToggleMute() || !s.IsMuted() {
		t.Error("Expected muted after toggle")
	}
	if s.ToggleMute() {
		t.Error("Expected unmuted after second toggle")
	}

	s.SetPaused(true)
	if !s.Paused() {
		t.Error("Expected paused loop")
	}

	if err := s.Stop(); err != nil {
		t.Fatal(err)
	}
	// Idempotent
	s.Stop()
}

func TestInitRejectsBadSampleRate(t *testing.T) {
	if err := NewService(Config{SampleRate: 0}).Init(); err == nil {
		t.Error("Expected sample rate error")
	}
}

func TestContributeInstallsPlayer(t *testing.T) {
	ctx, _ := engine.NewTestGameContext()
	s := NewService(Config{SampleRate: 44100})
	s.Init()
	s.Contribute(ctx.Publish)

	if ctx.Resources().Audio.Player != s {
		t.Error("Expected audio service installed as player")
	}
}

func TestStartsMutedFromConfig(t *testing.T) {
	s := NewService(Config{Muted: true, MasterVolume: 0.4, SampleRate: 44100})
	s.Init()
	if !s.IsMuted() {
		t.Error("Expected initial mute from config")
	}
	if s.ToggleMute() {
		t.Error("Expected unmuted after toggle")
	}
}
