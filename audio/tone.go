package audio

import (
	"math"

	"github.com/gopxl/beep"
)

// ToneGenerator streams a sine tone of fixed length with a linear fade out.
type ToneGenerator struct {
	sr    beep.SampleRate
	freq  float64
	total int
	pos   int
}

// NewToneGenerator creates a tone of n samples at freq Hz.
func NewToneGenerator(sr beep.SampleRate, freq float64, n int) *ToneGenerator {
	return &ToneGenerator{sr: sr, freq: freq, total: n}
}

func (g *ToneGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	if g.pos >= g.total {
		return 0, false
	}
	for i := range samples {
		if g.pos >= g.total {
			return i, true
		}
		t := float64(g.pos) / float64(g.sr)
		envelope := 1 - float64(g.pos)/float64(g.total)
		sample := 0.3 * envelope * math.Sin(2*math.Pi*g.freq*t)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ToneGenerator) Err() error {
	return nil
}
