package components

// Body is the collision footprint of a rocket.
type Body struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// At returns the bounding box of a body whose top-left corner is at (x, y).
func (b Body) At(x, y float64) Rect {
	return Rect{X: x, Y: y, W: b.Width, H: b.Height}
}
