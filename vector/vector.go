// Package vector provides the 2D vector type used by the physics and genetics code.
package vector

import (
	"fmt"
	"math"
)

// Vector2 is a 2D vector. Screen coordinates: y grows downward, so Angle
// negates y to report counter-clockwise angles.
type Vector2 struct {
	X, Y float64
}

// New returns a vector with the given components.
func New(x, y float64) Vector2 {
	return Vector2{X: x, Y: y}
}

// Set copies the components of o into v.
func (v *Vector2) Set(o Vector2) {
	v.X = o.X
	v.Y = o.Y
}

// Add adds o to v in place.
func (v *Vector2) Add(o Vector2) {
	v.X += o.X
	v.Y += o.Y
}

// Subtract subtracts o from v in place.
func (v *Vector2) Subtract(o Vector2) {
	v.X -= o.X
	v.Y -= o.Y
}

// Multiply scales v in place.
func (v *Vector2) Multiply(s float64) {
	v.X *= s
	v.Y *= s
}

// Divide divides v in place.
func (v *Vector2) Divide(s float64) {
	v.X /= s
	v.Y /= s
}

// MultipliedBy returns v scaled by s.
func (v Vector2) MultipliedBy(s float64) Vector2 {
	return Vector2{X: v.X * s, Y: v.Y * s}
}

// DividedBy returns v divided by s.
func (v Vector2) DividedBy(s float64) Vector2 {
	return Vector2{X: v.X / s, Y: v.Y / s}
}

// Inverse returns a vector of equal magnitude pointing the other way.
func (v Vector2) Inverse() Vector2 {
	return Vector2{X: -v.X, Y: -v.Y}
}

// Magnitude returns the Euclidean length of v.
func (v Vector2) Magnitude() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// SetMagnitude rescales v to length m, keeping its direction.
// A zero vector has no direction and is left unchanged.
func (v *Vector2) SetMagnitude(m float64) {
	cur := v.Magnitude()
	if cur == 0 {
		return
	}
	factor := m / cur
	v.X *= factor
	v.Y *= factor
}

// Angle returns the direction of v in [0, 2π).
func (v Vector2) Angle() float64 {
	a := math.Atan2(-v.Y, v.X)
	if a < 0 {
		a += 2 * math.Pi
	}
	return a
}

// SetAngle points v in direction a, keeping its magnitude.
func (v *Vector2) SetAngle(a float64) {
	m := v.Magnitude()
	v.X = m * math.Cos(a)
	v.Y = -(m * math.Sin(a))
}

// Rotate turns v by angle around origin.
func (v *Vector2) Rotate(angle float64, origin Vector2) {
	v.Subtract(origin)
	v.SetAngle(v.Angle() + angle)
	v.Add(origin)
}

// Unit returns the unit vector of v, or the zero vector if v has no length.
func (v Vector2) Unit() Vector2 {
	m := v.Magnitude()
	if m == 0 {
		return Vector2{}
	}
	return v.DividedBy(m)
}

func (v Vector2) String() string {
	return fmt.Sprintf("(%.4f, %.4f)", v.X, v.Y)
}

// Sum returns the component-wise sum of vs.
func Sum(vs []Vector2) Vector2 {
	var out Vector2
	for _, v := range vs {
		out.X += v.X
		out.Y += v.Y
	}
	return out
}

// Difference returns vs[0] minus every following vector.
// An empty slice yields the zero vector.
func Difference(vs []Vector2) Vector2 {
	if len(vs) == 0 {
		return Vector2{}
	}
	out := vs[0]
	for _, v := range vs[1:] {
		out.X -= v.X
		out.Y -= v.Y
	}
	return out
}

// Dot multiplies the x components of all vectors together, does the same
// for the y components, and returns the sum of both products. For two
// vectors this is the usual dot product; for one vector it is x+y.
func Dot(vs []Vector2) float64 {
	x, y := 1.0, 1.0
	for _, v := range vs {
		x *= v.X
		y *= v.Y
	}
	return x + y
}

// Distance returns the Euclidean distance between a and b.
func Distance(a, b Vector2) float64 {
	return Difference([]Vector2{a, b}).Magnitude()
}
