package telemetry

import (
	"log/slog"
	"sort"
	"time"

	"gonum.org/v1/gonum/stat"
)

// Phase names for one game frame.
const (
	PhaseFire      = "fire"
	PhaseUpdate    = "update"
	PhaseFormation = "formation"
	PhaseCollision = "collision"
	PhaseCleanup   = "cleanup"
	PhaseTelemetry = "telemetry"
)

// Phases lists the frame phases in execution order.
var Phases = []string{
	PhaseFire, PhaseUpdate, PhaseFormation,
	PhaseCollision, PhaseCleanup, PhaseTelemetry,
}

// PerfSample holds timing data for a single tick.
type PerfSample struct {
	TickDuration time.Duration
	Phases       map[string]time.Duration
}

// PerfCollector tracks performance metrics over a rolling window.
type PerfCollector struct {
	windowSize    int
	samples       []PerfSample
	writeIndex    int
	sampleCount   int
	currentPhases map[string]time.Duration
	tickStart     time.Time
	phaseStart    time.Time
	lastPhase     string

	// Frame timing (for graphics mode)
	lastFrameTime time.Time
	frames        []float64 // rolling frame durations in seconds
	frameIndex    int
	frameCount    int
}

// NewPerfCollector creates a new performance collector.
// windowSize: number of ticks to average over (e.g., 60 for 1 second at 60fps).
func NewPerfCollector(windowSize int) *PerfCollector {
	if windowSize < 1 {
		windowSize = 60
	}
	return &PerfCollector{
		windowSize:    windowSize,
		samples:       make([]PerfSample, windowSize),
		currentPhases: make(map[string]time.Duration),
		frames:        make([]float64, windowSize),
	}
}

// StartTick begins timing a new game tick.
func (p *PerfCollector) StartTick() {
	p.tickStart = time.Now()
	p.currentPhases = make(map[string]time.Duration)
	p.lastPhase = ""
}

// StartPhase begins timing a specific phase.
func (p *PerfCollector) StartPhase(phase string) {
	now := time.Now()
	// End previous phase if any
	if p.lastPhase != "" {
		p.currentPhases[p.lastPhase] += now.Sub(p.phaseStart)
	}
	p.phaseStart = now
	p.lastPhase = phase
}

// EndTick finishes timing the current tick and records the sample.
func (p *PerfCollector) EndTick() {
	now := time.Now()
	// End final phase
	if p.lastPhase != "" {
		p.currentPhases[p.lastPhase] += now.Sub(p.phaseStart)
	}

	sample := PerfSample{
		TickDuration: now.Sub(p.tickStart),
		Phases:       p.currentPhases,
	}

	p.samples[p.writeIndex] = sample
	p.writeIndex = (p.writeIndex + 1) % p.windowSize
	if p.sampleCount < p.windowSize {
		p.sampleCount++
	}
}

// RecordFrame records the wall time since the previous presented frame.
func (p *PerfCollector) RecordFrame() {
	p.recordFrameAt(time.Now())
}

func (p *PerfCollector) recordFrameAt(now time.Time) {
	if !p.lastFrameTime.IsZero() {
		p.frames[p.frameIndex] = now.Sub(p.lastFrameTime).Seconds()
		p.frameIndex = (p.frameIndex + 1) % p.windowSize
		if p.frameCount < p.windowSize {
			p.frameCount++
		}
	}
	p.lastFrameTime = now
}

// PerfStats holds aggregated performance statistics.
type PerfStats struct {
	// Tick timing
	AvgTickDuration time.Duration
	MinTickDuration time.Duration
	MaxTickDuration time.Duration

	// Phase breakdown (average durations)
	PhaseAvg map[string]time.Duration

	// Phase percentages of total tick time
	PhasePct map[string]float64

	// Throughput
	TicksPerSecond float64

	// Frame timing (graphics mode)
	FrameMean time.Duration
	FrameStd  time.Duration
	FrameP50  time.Duration
	FrameP99  time.Duration
	FPS       float64
}

// Stats computes aggregated statistics over the current window.
func (p *PerfCollector) Stats() PerfStats {
	out := PerfStats{
		PhaseAvg: make(map[string]time.Duration),
		PhasePct: make(map[string]float64),
	}
	p.frameStats(&out)

	if p.sampleCount == 0 {
		return out
	}

	var totalTick time.Duration
	var minTick, maxTick time.Duration
	phaseSum := make(map[string]time.Duration)

	// Iterate over valid samples
	for i := 0; i < p.sampleCount; i++ {
		s := p.samples[i]
		totalTick += s.TickDuration

		if i == 0 || s.TickDuration < minTick {
			minTick = s.TickDuration
		}
		if s.TickDuration > maxTick {
			maxTick = s.TickDuration
		}

		for phase, dur := range s.Phases {
			phaseSum[phase] += dur
		}
	}

	avgTick := totalTick / time.Duration(p.sampleCount)

	for phase, sum := range phaseSum {
		out.PhaseAvg[phase] = sum / time.Duration(p.sampleCount)
		if avgTick > 0 {
			out.PhasePct[phase] = float64(out.PhaseAvg[phase]) / float64(avgTick) * 100
		}
	}

	if avgTick > 0 {
		out.TicksPerSecond = float64(time.Second) / float64(avgTick)
	}
	out.AvgTickDuration = avgTick
	out.MinTickDuration = minTick
	out.MaxTickDuration = maxTick

	return out
}

// frameStats fills the frame timing fields from the rolling frame window.
func (p *PerfCollector) frameStats(out *PerfStats) {
	if p.frameCount == 0 {
		return
	}

	sorted := make([]float64, p.frameCount)
	copy(sorted, p.frames[:p.frameCount])
	sort.Float64s(sorted)

	mean, std := stat.MeanStdDev(sorted, nil)
	if p.frameCount < 2 {
		std = 0
	}
	out.FrameMean = seconds(mean)
	out.FrameStd = seconds(std)
	out.FrameP50 = seconds(stat.Quantile(0.50, stat.Empirical, sorted, nil))
	out.FrameP99 = seconds(stat.Quantile(0.99, stat.Empirical, sorted, nil))
	if mean > 0 {
		out.FPS = 1 / mean
	}
}

func seconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}

// LogStats logs performance statistics.
func (s PerfStats) LogStats() {
	attrs := []any{
		"avg_tick_us", s.AvgTickDuration.Microseconds(),
		"min_tick_us", s.MinTickDuration.Microseconds(),
		"max_tick_us", s.MaxTickDuration.Microseconds(),
		"ticks_per_sec", int(s.TicksPerSecond),
	}

	if s.FPS > 0 {
		attrs = append(attrs,
			"fps", int(s.FPS),
			"frame_p50_us", s.FrameP50.Microseconds(),
			"frame_p99_us", s.FrameP99.Microseconds(),
		)
	}

	for _, phase := range Phases {
		if pct, ok := s.PhasePct[phase]; ok && pct > 0.1 {
			attrs = append(attrs, phase+"_pct", float64(int(pct*10))/10.0)
		}
	}

	slog.Info("perf", attrs...)
}

// LogValue implements slog.LogValuer for structured logging.
func (s PerfStats) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.Int64("avg_tick_us", s.AvgTickDuration.Microseconds()),
		slog.Int64("min_tick_us", s.MinTickDuration.Microseconds()),
		slog.Int64("max_tick_us", s.MaxTickDuration.Microseconds()),
		slog.Float64("ticks_per_sec", s.TicksPerSecond),
	}

	if s.FPS > 0 {
		attrs = append(attrs,
			slog.Float64("fps", s.FPS),
			slog.Int64("frame_std_us", s.FrameStd.Microseconds()),
		)
	}

	for _, phase := range Phases {
		if pct, ok := s.PhasePct[phase]; ok {
			attrs = append(attrs, slog.Float64(phase+"_pct", pct))
		}
	}

	return slog.GroupValue(attrs...)
}

// PerfStatsCSV is a flat struct for CSV export of performance stats.
type PerfStatsCSV struct {
	WindowEnd    int32   `csv:"window_end"`
	AvgTickUS    int64   `csv:"avg_tick_us"`
	MinTickUS    int64   `csv:"min_tick_us"`
	MaxTickUS    int64   `csv:"max_tick_us"`
	TicksPerSec  float64 `csv:"ticks_per_sec"`
	FPS          float64 `csv:"fps"`
	FrameP50US   int64   `csv:"frame_p50_us"`
	FrameP99US   int64   `csv:"frame_p99_us"`
	FirePct      float64 `csv:"fire_pct"`
	UpdatePct    float64 `csv:"update_pct"`
	FormationPct float64 `csv:"formation_pct"`
	CollisionPct float64 `csv:"collision_pct"`
	CleanupPct   float64 `csv:"cleanup_pct"`
	TelemetryPct float64 `csv:"telemetry_pct"`
}

// ToCSV converts PerfStats to a flat CSV-friendly struct.
func (s PerfStats) ToCSV(windowEnd int32) PerfStatsCSV {
	return PerfStatsCSV{
		WindowEnd:    windowEnd,
		AvgTickUS:    s.AvgTickDuration.Microseconds(),
		MinTickUS:    s.MinTickDuration.Microseconds(),
		MaxTickUS:    s.MaxTickDuration.Microseconds(),
		TicksPerSec:  s.TicksPerSecond,
		FPS:          s.FPS,
		FrameP50US:   s.FrameP50.Microseconds(),
		FrameP99US:   s.FrameP99.Microseconds(),
		FirePct:      s.PhasePct[PhaseFire],
		UpdatePct:    s.PhasePct[PhaseUpdate],
		FormationPct: s.PhasePct[PhaseFormation],
		CollisionPct: s.PhasePct[PhaseCollision],
		CleanupPct:   s.PhasePct[PhaseCleanup],
		TelemetryPct: s.PhasePct[PhaseTelemetry],
	}
}
