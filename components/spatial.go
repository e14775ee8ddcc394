package components

// Position is a render-space position. The simulation itself works in
// float64 vectors; float32 is what raylib consumes.
type Position struct {
	X, Y float32
}

// Velocity is a render-space velocity.
type Velocity struct {
	X, Y float32
}

// Rect is an axis-aligned rectangle anchored at its top-left corner.
type Rect struct {
	X, Y float64
	W, H float64
}

// Overlaps reports whether r and o intersect with strictly positive area.
// Rectangles that only share an edge do not overlap.
func (r Rect) Overlaps(o Rect) bool {
	return r.X+r.W > o.X &&
		r.X < o.X+o.W &&
		r.Y+r.H > o.Y &&
		r.Y < o.Y+o.H
}

// Contains reports whether o lies entirely inside r.
func (r Rect) Contains(o Rect) bool {
	return o.X >= r.X && o.Y >= r.Y &&
		o.X+o.W <= r.X+r.W && o.Y+o.H <= r.Y+r.H
}

// Center returns the midpoint of r.
func (r Rect) Center() (x, y float64) {
	return r.X + r.W/2, r.Y + r.H/2
}
