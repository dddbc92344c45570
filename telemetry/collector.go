package telemetry

import "math"

// Collector accumulates events within time windows and produces WindowStats.
type Collector struct {
	windowDurationSec   float64
	windowDurationTicks int32
	dt                  float64

	// Current window tracking
	windowStartTick int32

	// Event counters for current window
	bulletsFired   int
	bulletsExpired int
	bulletsSpent   int
	enemiesKilled  int
	bounces        int
}

// NewCollector creates a new stats collector.
// windowDurationSec: how long each stats window lasts in game seconds
// dt: seconds per frame (used for frame-to-time conversion)
func NewCollector(windowDurationSec float64, dt float64) *Collector {
	ticksPerWindow := int32(math.Round(windowDurationSec / dt))
	if ticksPerWindow < 1 {
		ticksPerWindow = 1
	}

	return &Collector{
		windowDurationSec:   windowDurationSec,
		windowDurationTicks: ticksPerWindow,
		dt:                  dt,
	}
}

// RecordFire records bullets spawned by fire presses.
func (c *Collector) RecordFire(n int) {
	c.bulletsFired += n
}

// RecordExpired records bullets that left the top of the screen.
func (c *Collector) RecordExpired(n int) {
	c.bulletsExpired += n
}

// RecordHits records one collision pass.
func (c *Collector) RecordHits(enemies, bullets int) {
	c.enemiesKilled += enemies
	c.bulletsSpent += bullets
}

// RecordBounce records a formation reversal.
func (c *Collector) RecordBounce() {
	c.bounces++
}

// ShouldFlush returns true if enough ticks have passed to flush the window.
func (c *Collector) ShouldFlush(currentTick int32) bool {
	return currentTick-c.windowStartTick >= c.windowDurationTicks
}

// Gauges holds point-in-time readings taken when a window is flushed.
type Gauges struct {
	Enemies int
	Bullets int
	PlayerX float64
	LowestY float64 // Bottom edge of the lowest enemy, 0 with no enemies
}

// Flush produces a WindowStats and resets counters for the next window.
func (c *Collector) Flush(currentTick int32, g Gauges) WindowStats {
	var accuracy float64
	if c.bulletsFired > 0 {
		accuracy = float64(c.bulletsSpent) / float64(c.bulletsFired)
	}

	stats := WindowStats{
		WindowStartTick: c.windowStartTick,
		WindowEndTick:   currentTick,
		SimTimeSec:      float64(currentTick) * c.dt,

		BulletsFired:   c.bulletsFired,
		BulletsExpired: c.bulletsExpired,
		BulletsSpent:   c.bulletsSpent,
		EnemiesKilled:  c.enemiesKilled,
		Bounces:        c.bounces,
		Accuracy:       accuracy,

		Enemies:         g.Enemies,
		Bullets:         g.Bullets,
		PlayerX:         g.PlayerX,
		FormationBottom: g.LowestY,
	}

	// Reset for next window
	c.windowStartTick = currentTick
	c.bulletsFired = 0
	c.bulletsExpired = 0
	c.bulletsSpent = 0
	c.enemiesKilled = 0
	c.bounces = 0

	return stats
}

// WindowDurationTicks returns the number of ticks per window.
func (c *Collector) WindowDurationTicks() int32 {
	return c.windowDurationTicks
}
