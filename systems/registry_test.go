package systems

import (
	"testing"

	"github.com/pthm-cable/invaders/telemetry"
)

func TestRegistryCoversPhases(t *testing.T) {
	reg := NewSystemRegistry()

	ids := reg.IDs()
	if len(ids) != len(telemetry.Phases) {
		t.Fatalf("registry has %d phases, collector has %d", len(ids), len(telemetry.Phases))
	}
	for i, phase := range telemetry.Phases {
		if ids[i] != phase {
			t.Errorf("phase %d = %q, want %q", i, ids[i], phase)
		}
		if _, ok := reg.Get(phase); !ok {
			t.Errorf("Get(%q) missing", phase)
		}
	}
}

func TestRegistryGetName(t *testing.T) {
	reg := NewSystemRegistry()
	if got := reg.GetName(telemetry.PhaseUpdate); got != "Move" {
		t.Errorf("GetName(update) = %q, want Move", got)
	}
	if got := reg.GetName("unknown"); got != "unknown" {
		t.Errorf("GetName falls back to the ID, got %q", got)
	}
}
