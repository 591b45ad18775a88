// Package audio plays the ambient wind loop
package audio

import (
	"math"

	"github.com/gopxl/beep"
)

// WindGenerator produces an endless soft wind: low-passed noise under a slow gust envelope
type WindGenerator struct {
	sr    beep.SampleRate
	pos   int
	seed  uint32
	lowL  float64
	lowR  float64
	alpha float64
}

// NewWindGenerator creates a wind generator, equal seeds produce equal output
func NewWindGenerator(sr beep.SampleRate, seed uint32) *WindGenerator {
	// One-pole low-pass around 400Hz
	dt := 1 / float64(sr)
	rc := 1 / (2 * math.Pi * 400)
	return &WindGenerator{
		sr:    sr,
		seed:  seed | 1,
		alpha: dt / (rc + dt),
	}
}

// noise returns a uniform sample in [-1, 1) from a xorshift generator
func (g *WindGenerator) noise() float64 {
	g.seed ^= g.seed << 13
	g.seed ^= g.seed >> 17
	g.seed ^= g.seed << 5
	return float64(g.seed)/float64(math.MaxUint32)*2 - 1
}

// Stream implements beep.Streamer
func (g *WindGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		// Two slow sines give an irregular gust period
		gust := 0.55 + 0.25*math.Sin(2*math.Pi*0.13*t) + 0.2*math.Sin(2*math.Pi*0.047*t+1.3)

		g.lowL += g.alpha * (g.noise() - g.lowL)
		g.lowR += g.alpha * (g.noise() - g.lowR)

		samples[i][0] = clamp(g.lowL * gust * 2)
		samples[i][1] = clamp(g.lowR * gust * 2)
		g.pos++
	}
	return len(samples), true
}

// Err implements beep.Streamer
func (g *WindGenerator) Err() error {
	return nil
}

func clamp(v float64) float64 {
	return math.Max(-1, math.Min(1, v))
}
