package components

// Rect is an axis-aligned bounding box assembled from Position and Size.
type Rect struct {
	X, Y, W, H float32
}

// RectOf builds the bounding box for an entity.
func RectOf(pos *Position, size *Size) Rect {
	return Rect{X: pos.X, Y: pos.Y, W: size.W, H: size.H}
}

func (r Rect) Left() float32   { return r.X }
func (r Rect) Right() float32  { return r.X + r.W }
func (r Rect) Top() float32    { return r.Y }
func (r Rect) Bottom() float32 { return r.Y + r.H }

// CenterX returns the horizontal center using integer halving of the width,
// so a 5-wide rect at x=398 reports 400.
func (r Rect) CenterX() float32 {
	return r.X + halfFloor(r.W)
}

// Overlaps reports whether two rectangles share interior area.
// Touching edges do not count as overlap.
func (r Rect) Overlaps(o Rect) bool {
	return !(r.Right() <= o.Left() || r.Left() >= o.Right() ||
		r.Bottom() <= o.Top() || r.Top() >= o.Bottom())
}

// CenteredAt returns the x coordinate that centers a rect of width w on cx.
func CenteredAt(cx, w float32) float32 {
	return cx - halfFloor(w)
}

func halfFloor(w float32) float32 {
	return float32(int(w) / 2)
}
