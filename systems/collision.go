package systems

import (
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/invaders/components"
)

// DefaultCellSize is the broadphase cell edge in pixels.
const DefaultCellSize = 64.0

// Hits lists the entities destroyed by one collision pass.
type Hits struct {
	Enemies []ecs.Entity
	Bullets []ecs.Entity
}

// Reset empties both lists, keeping their capacity.
func (h *Hits) Reset() {
	h.Enemies = h.Enemies[:0]
	h.Bullets = h.Bullets[:0]
}

// Empty reports whether the pass destroyed nothing.
func (h *Hits) Empty() bool {
	return len(h.Enemies) == 0 && len(h.Bullets) == 0
}

// CollisionSystem pairs bullets with the enemies they overlap.
type CollisionSystem struct {
	grid       *SpatialGrid
	candidates []Cell
	consumed   map[ecs.Entity]struct{}
}

// NewCollisionSystem creates a collision system whose broadphase covers the screen.
func NewCollisionSystem(screenW, screenH, cellSize float32) *CollisionSystem {
	return &CollisionSystem{
		grid:       NewSpatialGrid(screenW, screenH, cellSize),
		candidates: make([]Cell, 0, 16),
		consumed:   make(map[ecs.Entity]struct{}),
	}
}

// Resolve appends every enemy that overlaps at least one bullet, and every
// bullet it overlaps, to hits. Enemies are visited in query order; a bullet
// taken by one enemy is not offered to later ones, so each destroyed entity
// appears exactly once. Nothing is removed here: the caller removes the
// entities after both queries have closed.
func (c *CollisionSystem) Resolve(enemies *EnemyFilter, bullets *BulletFilter, hits *Hits) {
	c.grid.Clear()
	clear(c.consumed)

	bq := bullets.Query()
	for bq.Next() {
		pos, size, _ := bq.Get()
		c.grid.Insert(bq.Entity(), components.RectOf(pos, size))
	}
	if c.grid.Len() == 0 {
		return
	}

	eq := enemies.Query()
	for eq.Next() {
		pos, size, _ := eq.Get()
		rect := components.RectOf(pos, size)

		c.candidates = c.grid.QueryInto(c.candidates[:0], rect)
		hit := false
		for _, cand := range c.candidates {
			if _, taken := c.consumed[cand.E]; taken {
				continue
			}
			if rect.Overlaps(cand.Rect) {
				c.consumed[cand.E] = struct{}{}
				hits.Bullets = append(hits.Bullets, cand.E)
				hit = true
			}
		}
		if hit {
			hits.Enemies = append(hits.Enemies, eq.Entity())
		}
	}
}
