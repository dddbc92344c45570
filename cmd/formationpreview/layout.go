package main

import (
	"math"

	"github.com/pthm-cable/invaders/components"
	"github.com/pthm-cable/invaders/config"
)

// layout returns the starting rect of every enemy, row-major.
func layout(f config.FormationConfig, e config.EnemyConfig) []components.Rect {
	rects := make([]components.Rect, 0, f.Rows*f.Columns)
	for row := 0; row < f.Rows; row++ {
		for col := 0; col < f.Columns; col++ {
			rects = append(rects, components.Rect{
				X: float32(float64(col)*f.SpacingX + f.OffsetX),
				Y: float32(float64(row)*f.SpacingY + f.OffsetY),
				W: float32(e.Width),
				H: float32(e.Height),
			})
		}
	}
	return rects
}

// bounds returns the smallest rect enclosing rects.
func bounds(rects []components.Rect) components.Rect {
	if len(rects) == 0 {
		return components.Rect{}
	}
	minX, minY := rects[0].Left(), rects[0].Top()
	maxX, maxY := rects[0].Right(), rects[0].Bottom()
	for _, r := range rects[1:] {
		minX = min(minX, r.Left())
		minY = min(minY, r.Top())
		maxX = max(maxX, r.Right())
		maxY = max(maxY, r.Bottom())
	}
	return components.Rect{X: minX, Y: minY, W: maxX - minX, H: maxY - minY}
}

// framesToBounce returns the frame on which the formation first touches a
// side of a screen screenW wide, or 0 if it never moves.
func framesToBounce(box components.Rect, screenW float32, e config.EnemyConfig) int {
	if e.Speed <= 0 {
		return 0
	}
	var gap float64
	if e.Direction > 0 {
		gap = float64(screenW - box.Right())
	} else {
		gap = float64(box.Left())
	}
	return max(1, int(math.Ceil(gap/e.Speed)))
}

// overlapping reports whether any two enemies share area.
func overlapping(rects []components.Rect) bool {
	for i := range rects {
		for j := i + 1; j < len(rects); j++ {
			if rects[i].Overlaps(rects[j]) {
				return true
			}
		}
	}
	return false
}
