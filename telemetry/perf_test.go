package telemetry

import (
	"testing"
	"time"
)

func TestPerfCollector_BasicTiming(t *testing.T) {
	pc := NewPerfCollector(10)

	// Simulate a few ticks
	for i := 0; i < 5; i++ {
		pc.StartTick()
		pc.StartPhase(PhaseUpdate)
		time.Sleep(100 * time.Microsecond)
		pc.StartPhase(PhaseCollision)
		time.Sleep(200 * time.Microsecond)
		pc.EndTick()
	}

	stats := pc.Stats()

	if stats.AvgTickDuration <= 0 {
		t.Error("expected positive average tick duration")
	}
	if stats.MinTickDuration > stats.MaxTickDuration {
		t.Errorf("min tick %v > max tick %v", stats.MinTickDuration, stats.MaxTickDuration)
	}

	if _, ok := stats.PhaseAvg[PhaseUpdate]; !ok {
		t.Error("expected update phase to be tracked")
	}
	if _, ok := stats.PhaseAvg[PhaseCollision]; !ok {
		t.Error("expected collision phase to be tracked")
	}
}

func TestPerfCollector_RollingWindow(t *testing.T) {
	pc := NewPerfCollector(5) // Small window

	for i := 0; i < 10; i++ {
		pc.StartTick()
		pc.StartPhase(PhaseUpdate)
		time.Sleep(10 * time.Microsecond)
		pc.EndTick()
	}

	stats := pc.Stats()

	if stats.AvgTickDuration <= 0 {
		t.Error("expected positive average tick duration after window filled")
	}
	if stats.TicksPerSecond <= 0 {
		t.Error("expected positive ticks per second")
	}
}

func TestPerfCollector_PhasePercentages(t *testing.T) {
	pc := NewPerfCollector(10)

	for i := 0; i < 5; i++ {
		pc.StartTick()
		pc.StartPhase(PhaseFire)
		time.Sleep(10 * time.Microsecond)
		pc.StartPhase(PhaseCollision)
		time.Sleep(2 * time.Millisecond)
		pc.EndTick()
	}

	stats := pc.Stats()

	if stats.PhasePct[PhaseCollision] <= stats.PhasePct[PhaseFire] {
		t.Errorf("collision (%.1f%%) should dominate fire (%.1f%%)",
			stats.PhasePct[PhaseCollision], stats.PhasePct[PhaseFire])
	}
}

func TestPerfCollector_EmptyStats(t *testing.T) {
	pc := NewPerfCollector(0)
	stats := pc.Stats()

	if stats.AvgTickDuration != 0 || stats.FPS != 0 {
		t.Errorf("empty collector reported timing: %+v", stats)
	}
	if stats.PhaseAvg == nil || stats.PhasePct == nil {
		t.Error("phase maps should be non-nil")
	}
}

func TestPerfCollector_FrameTiming(t *testing.T) {
	pc := NewPerfCollector(10)

	start := time.Unix(0, 0)
	// First call only anchors the clock.
	pc.recordFrameAt(start)
	for i := 1; i <= 4; i++ {
		pc.recordFrameAt(start.Add(time.Duration(i) * 20 * time.Millisecond))
	}

	stats := pc.Stats()

	if got := stats.FrameMean; got < 19*time.Millisecond || got > 21*time.Millisecond {
		t.Errorf("frame mean = %v, want ~20ms", got)
	}
	if stats.FrameStd > time.Millisecond {
		t.Errorf("frame std = %v, want ~0 for steady frames", stats.FrameStd)
	}
	if stats.FPS < 49 || stats.FPS > 51 {
		t.Errorf("fps = %v, want ~50", stats.FPS)
	}
	if stats.FrameP99 < stats.FrameP50 {
		t.Errorf("p99 %v < p50 %v", stats.FrameP99, stats.FrameP50)
	}
}

func TestPerfCollector_FrameQuantiles(t *testing.T) {
	pc := NewPerfCollector(100)

	now := time.Unix(0, 0)
	pc.recordFrameAt(now)
	// 99 fast frames and one slow hitch
	for i := 0; i < 99; i++ {
		now = now.Add(10 * time.Millisecond)
		pc.recordFrameAt(now)
	}
	now = now.Add(100 * time.Millisecond)
	pc.recordFrameAt(now)

	stats := pc.Stats()

	if d := stats.FrameP50 - 10*time.Millisecond; d < -time.Microsecond || d > time.Microsecond {
		t.Errorf("p50 = %v, want 10ms", stats.FrameP50)
	}
	if stats.FrameMean <= 10*time.Millisecond {
		t.Errorf("mean = %v, want above 10ms with a hitch", stats.FrameMean)
	}
}

func TestPerfStats_ToCSV(t *testing.T) {
	stats := PerfStats{
		AvgTickDuration: 150 * time.Microsecond,
		PhasePct: map[string]float64{
			PhaseCollision: 40,
			PhaseUpdate:    35,
		},
		FPS: 60,
	}

	row := stats.ToCSV(600)
	if row.WindowEnd != 600 || row.AvgTickUS != 150 {
		t.Errorf("row = %+v", row)
	}
	if row.CollisionPct != 40 || row.UpdatePct != 35 || row.FirePct != 0 {
		t.Errorf("phase pct = collision %v update %v fire %v", row.CollisionPct, row.UpdatePct, row.FirePct)
	}
}
