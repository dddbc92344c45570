package systems

import "github.com/pthm-cable/invaders/telemetry"

// SystemInfo describes one frame phase for UI display.
type SystemInfo struct {
	ID          string // Phase name used by the perf collector
	Name        string // Display name
	Description string // What this phase does
}

// SystemRegistry holds metadata about every frame phase.
// This keeps the HUD labels and the perf collector in sync.
type SystemRegistry struct {
	systems []SystemInfo
	byID    map[string]SystemInfo
}

// NewSystemRegistry creates a registry with all frame phases.
func NewSystemRegistry() *SystemRegistry {
	reg := &SystemRegistry{
		byID: make(map[string]SystemInfo),
	}
	reg.registerDefaults()
	return reg
}

// registerDefaults adds the phases in execution order.
func (r *SystemRegistry) registerDefaults() {
	r.Register(SystemInfo{ID: telemetry.PhaseFire, Name: "Fire", Description: "Spawns bullets for fire presses"})
	r.Register(SystemInfo{ID: telemetry.PhaseUpdate, Name: "Move", Description: "Moves all entities and expires bullets"})
	r.Register(SystemInfo{ID: telemetry.PhaseFormation, Name: "Formation", Description: "Reverses and drops the formation at an edge"})
	r.Register(SystemInfo{ID: telemetry.PhaseCollision, Name: "Collision", Description: "Pairs bullets with enemies"})
	r.Register(SystemInfo{ID: telemetry.PhaseCleanup, Name: "Cleanup", Description: "Removes destroyed entities"})
	r.Register(SystemInfo{ID: telemetry.PhaseTelemetry, Name: "Telemetry", Description: "Records and flushes stats"})
}

// Register adds a phase to the registry.
func (r *SystemRegistry) Register(info SystemInfo) {
	r.systems = append(r.systems, info)
	r.byID[info.ID] = info
}

// Get returns phase info by ID.
func (r *SystemRegistry) Get(id string) (SystemInfo, bool) {
	info, ok := r.byID[id]
	return info, ok
}

// GetName returns the display name for a phase ID.
// Falls back to the ID itself if not found.
func (r *SystemRegistry) GetName(id string) string {
	if info, ok := r.byID[id]; ok {
		return info.Name
	}
	return id
}

// IDs returns all phase IDs in registration order.
func (r *SystemRegistry) IDs() []string {
	ids := make([]string, len(r.systems))
	for i, info := range r.systems {
		ids[i] = info.ID
	}
	return ids
}
