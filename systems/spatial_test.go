package systems

import (
	"testing"

	"github.com/pthm-cable/invaders/components"
)

func TestSpatialGridInsertQuery(t *testing.T) {
	w := newTestWorld()
	a := w.enemy(0, 0, 1)
	b := w.enemy(0, 0, 1)

	g := NewSpatialGrid(800, 600, 64)
	// a fits in one cell, b straddles four
	g.Insert(a, components.Rect{X: 10, Y: 10, W: 5, H: 5})
	g.Insert(b, components.Rect{X: 60, Y: 60, W: 10, H: 10})
	if got := g.Len(); got != 5 {
		t.Fatalf("Len = %d, want 5", got)
	}

	tests := []struct {
		name string
		r    components.Rect
		want int
	}{
		{"top-left cell", components.Rect{X: 0, Y: 0, W: 20, H: 20}, 2},
		{"far away", components.Rect{X: 600, Y: 400, W: 10, H: 10}, 0},
		{"second column", components.Rect{X: 100, Y: 10, W: 5, H: 5}, 1},
		{"off-screen clamps to border", components.Rect{X: -50, Y: -50, W: 5, H: 5}, 2},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := g.QueryInto(nil, tc.r)
			if len(got) != tc.want {
				t.Errorf("QueryInto returned %d occupants, want %d", len(got), tc.want)
			}
		})
	}

	g.Clear()
	if got := g.Len(); got != 0 {
		t.Errorf("Len after Clear = %d, want 0", got)
	}
}

func TestRectOverlaps(t *testing.T) {
	base := components.Rect{X: 100, Y: 100, W: 40, H: 40}
	tests := []struct {
		name string
		r    components.Rect
		want bool
	}{
		{"identical", base, true},
		{"inside", components.Rect{X: 110, Y: 110, W: 5, H: 10}, true},
		{"touching right edge", components.Rect{X: 140, Y: 100, W: 5, H: 10}, false},
		{"touching left edge", components.Rect{X: 95, Y: 100, W: 5, H: 10}, false},
		{"touching bottom edge", components.Rect{X: 110, Y: 140, W: 5, H: 10}, false},
		{"touching top edge", components.Rect{X: 110, Y: 90, W: 5, H: 10}, false},
		{"one pixel overlap", components.Rect{X: 139, Y: 139, W: 5, H: 10}, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := base.Overlaps(tc.r); got != tc.want {
				t.Errorf("Overlaps = %v, want %v", got, tc.want)
			}
			if got := tc.r.Overlaps(base); got != tc.want {
				t.Errorf("reverse Overlaps = %v, want %v", got, tc.want)
			}
		})
	}
}
