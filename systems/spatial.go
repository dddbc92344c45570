// Package systems provides ECS systems for the game.
package systems

import (
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/invaders/components"
)

// Cell is one grid occupant with the bounding box it was inserted with.
type Cell struct {
	E    ecs.Entity
	Rect components.Rect
}

// SpatialGrid buckets rectangles into fixed-size cells so overlap checks only
// visit nearby occupants. Rectangles outside the covered area are clamped into
// the border cells, so off-screen entities are still found by off-screen queries.
type SpatialGrid struct {
	cellSize float32
	cols     int
	rows     int
	cells    [][]Cell // flat grid of occupant lists
}

// NewSpatialGrid creates a spatial grid covering the given screen size.
func NewSpatialGrid(width, height, cellSize float32) *SpatialGrid {
	cols := int(width/cellSize) + 1
	rows := int(height/cellSize) + 1

	cells := make([][]Cell, cols*rows)
	for i := range cells {
		cells[i] = make([]Cell, 0, 4) // pre-allocate small capacity
	}

	return &SpatialGrid{
		cellSize: cellSize,
		cols:     cols,
		rows:     rows,
		cells:    cells,
	}
}

// Clear removes all occupants from the grid.
func (g *SpatialGrid) Clear() {
	for i := range g.cells {
		g.cells[i] = g.cells[i][:0]
	}
}

// Insert adds an entity to every cell its rectangle touches.
func (g *SpatialGrid) Insert(e ecs.Entity, r components.Rect) {
	c0, r0, c1, r1 := g.span(r)
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			idx := row*g.cols + col
			g.cells[idx] = append(g.cells[idx], Cell{E: e, Rect: r})
		}
	}
}

// QueryInto appends every occupant sharing a cell with r to dst.
// An occupant spanning several cells can appear more than once.
func (g *SpatialGrid) QueryInto(dst []Cell, r components.Rect) []Cell {
	c0, r0, c1, r1 := g.span(r)
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			dst = append(dst, g.cells[row*g.cols+col]...)
		}
	}
	return dst
}

// Len returns the number of stored cell entries.
func (g *SpatialGrid) Len() int {
	n := 0
	for _, c := range g.cells {
		n += len(c)
	}
	return n
}

// span returns the inclusive cell range covered by r.
func (g *SpatialGrid) span(r components.Rect) (c0, r0, c1, r1 int) {
	c0, r0 = g.cellCoords(r.Left(), r.Top())
	c1, r1 = g.cellCoords(r.Right(), r.Bottom())
	return c0, r0, c1, r1
}

// cellCoords returns the clamped column and row for a screen position.
func (g *SpatialGrid) cellCoords(x, y float32) (col, row int) {
	col = int(x / g.cellSize)
	row = int(y / g.cellSize)

	// Clamp to valid range
	if x < 0 || col < 0 {
		col = 0
	} else if col >= g.cols {
		col = g.cols - 1
	}
	if y < 0 || row < 0 {
		row = 0
	} else if row >= g.rows {
		row = g.rows - 1
	}

	return col, row
}
