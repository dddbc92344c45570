package ui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/invaders/systems"
	"github.com/pthm-cable/invaders/telemetry"
)

// HUDData holds all the data needed to render the debug HUD.
type HUDData struct {
	Tick    int32
	FPS     int32
	Enemies int
	Bullets int
	PlayerX float32
	Perf    telemetry.PerfStats
}

// Lines returns the text rows of the status panel as label, value pairs.
func (d HUDData) Lines() [][2]string {
	return [][2]string{
		{"Frame", fmt.Sprintf("%d", d.Tick)},
		{"FPS", fmt.Sprintf("%d", d.FPS)},
		{"Enemies", fmt.Sprintf("%d", d.Enemies)},
		{"Bullets", fmt.Sprintf("%d", d.Bullets)},
		{"Player x", fmt.Sprintf("%.0f", d.PlayerX)},
		{"Step time", fmt.Sprintf("%dus", d.Perf.AvgTickDuration.Microseconds())},
	}
}

// HUD renders the debug heads-up display.
type HUD struct {
	renderer *Renderer
	registry *systems.SystemRegistry
	x, y     int32
	width    int32
}

// NewHUD creates a HUD anchored at the top-left corner.
func NewHUD() *HUD {
	return &HUD{
		renderer: NewRenderer(),
		registry: systems.NewSystemRegistry(),
		x:        10,
		y:        10,
		width:    220,
	}
}

// Height returns the panel height needed for data.
func (h *HUD) Height(data HUDData) int32 {
	t := h.renderer.Theme
	rows := int32(len(data.Lines()) + len(h.registry.IDs()))
	return 2*t.Padding + 2*t.LineHeight + rows*t.LineHeight
}

// Draw renders the status rows followed by the per-phase timing bars.
func (h *HUD) Draw(data HUDData) {
	t := h.renderer.Theme
	h.renderer.DrawPanel(h.x, h.y, h.width, h.Height(data))

	x := h.x + t.Padding
	y := h.renderer.DrawSectionHeader(x, h.y+t.Padding, "Debug (F3)")
	for _, line := range data.Lines() {
		y = h.renderer.DrawLabelValue(x, y, line[0], line[1])
	}

	y = h.renderer.DrawSectionHeader(x, y, "Phases")
	inner := h.width - 2*t.Padding
	for _, phase := range h.registry.IDs() {
		y = h.renderer.DrawPercentBar(x, y, h.registry.GetName(phase), data.Perf.PhasePct[phase], inner, 50)
	}
}
