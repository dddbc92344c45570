// Package audio plays the optional fire sound effect.
package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"github.com/pthm-cable/invaders/config"
)

// FireCue plays a short tone each time a bullet is fired.
// All methods are safe to call before Initialize or after Cleanup; they
// then do nothing.
type FireCue struct {
	mu          sync.Mutex
	sampleRate  beep.SampleRate
	toneHz      float64
	toneLen     time.Duration
	volume      float64
	mixer       *beep.Mixer
	initialized bool
}

// NewFireCue creates a cue from the audio config. Nothing is opened until
// Initialize.
func NewFireCue(cfg config.AudioConfig) *FireCue {
	return &FireCue{
		sampleRate: beep.SampleRate(cfg.SampleRate),
		toneHz:     cfg.FireToneHz,
		toneLen:    time.Duration(cfg.FireToneMs) * time.Millisecond,
		volume:     cfg.Volume,
		mixer:      &beep.Mixer{},
	}
}

// Initialize opens the audio device and starts the mixer.
func (c *FireCue) Initialize() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.initialized {
		return nil
	}
	if err := speaker.Init(c.sampleRate, c.sampleRate.N(50*time.Millisecond)); err != nil {
		return fmt.Errorf("opening audio device: %w", err)
	}

	speaker.Play(c.mixer)
	c.initialized = true
	return nil
}

// PlayFire queues one fire tone.
func (c *FireCue) PlayFire() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized {
		return
	}
	speaker.Lock()
	c.mixer.Add(c.tone())
	speaker.Unlock()
}

// Cleanup silences the mixer and closes the device.
func (c *FireCue) Cleanup() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	c.initialized = false
}

func (c *FireCue) tone() beep.Streamer {
	gen := NewToneGenerator(c.sampleRate, c.toneHz, c.sampleRate.N(c.toneLen))
	return &effects.Volume{Streamer: gen, Base: 2, Volume: c.volume}
}
