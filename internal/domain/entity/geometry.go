// Package entity defines domain entities for the dock engine.
package entity

// Vec2 is a point or extent in screen space.
type Vec2 struct {
	X, Y float64
}

// Add returns v translated by o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Mul scales v component-wise by o.
func (v Vec2) Mul(o Vec2) Vec2 {
	return Vec2{X: v.X * o.X, Y: v.Y * o.Y}
}

// Rect is an axis-aligned rectangle given by its top-left and bottom-right corners.
type Rect struct {
	Min, Max Vec2
}

// NewRect builds a rectangle from an origin and a size.
func NewRect(x, y, w, h float64) Rect {
	return Rect{Min: Vec2{X: x, Y: y}, Max: Vec2{X: x + w, Y: y + h}}
}

// Width returns the horizontal extent of the rectangle.
func (r Rect) Width() float64 {
	return r.Max.X - r.Min.X
}

// Height returns the vertical extent of the rectangle.
func (r Rect) Height() float64 {
	return r.Max.Y - r.Min.Y
}

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool {
	return r.Width() <= 0 || r.Height() <= 0
}

// Contains reports whether (x, y) lies in the half-open rectangle [Min, Max).
func (r Rect) Contains(x, y float64) bool {
	return x >= r.Min.X && y >= r.Min.Y && x < r.Max.X && y < r.Max.Y
}
