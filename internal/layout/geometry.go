package layout

import "math"

// Infinity is the positive infinite length. A declared width or height of
// Infinity means "size to content or available space".
var Infinity = math.Inf(1)

// Auto returns the declared size meaning "size to content".
func Auto() float64 {
	return Infinity
}

// IsAuto reports whether a declared size sizes to content.
func IsAuto(v float64) bool {
	return math.IsInf(v, 0)
}

// Size is a width/height pair.
type Size struct {
	X, Y float64
}

// NewSize creates a Size.
func NewSize(x, y float64) Size {
	return Size{X: x, Y: y}
}

// Add returns the component-wise sum.
func (s Size) Add(o Size) Size {
	return Size{X: s.X + o.X, Y: s.Y + o.Y}
}

// Sub returns the component-wise difference.
func (s Size) Sub(o Size) Size {
	return Size{X: s.X - o.X, Y: s.Y - o.Y}
}

// IsZero returns true if both components are zero.
func (s Size) IsZero() bool {
	return s.X == 0 && s.Y == 0
}

// HasNaN returns true if either component is not a number.
func (s Size) HasNaN() bool {
	return math.IsNaN(s.X) || math.IsNaN(s.Y)
}

// Min returns the component-wise minimum.
func (s Size) Min(o Size) Size {
	return Size{X: math.Min(s.X, o.X), Y: math.Min(s.Y, o.Y)}
}

// Point represents an (X, Y) coordinate.
type Point struct {
	X, Y float64
}

// Add returns a new Point offset by other.
func (p Point) Add(other Point) Point {
	return Point{X: p.X + other.X, Y: p.Y + other.Y}
}
