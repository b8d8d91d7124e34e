package vmath

import "github.com/chewxy/math32"

// Vec2 is a float32 2D vector in world units (pixels, y down)
type Vec2 struct {
	X, Y float32
}

// V2 constructs a Vec2
func V2(x, y float32) Vec2 {
	return Vec2{X: x, Y: y}
}

func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

func (v Vec2) Scale(s float32) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

// LengthSq returns the squared magnitude, avoids the sqrt in hot paths
func (v Vec2) LengthSq() float32 {
	return v.X*v.X + v.Y*v.Y
}

func (v Vec2) Length() float32 {
	return math32.Sqrt(v.LengthSq())
}

// DistanceSq returns the squared distance between v and o
func (v Vec2) DistanceSq(o Vec2) float32 {
	return v.Sub(o).LengthSq()
}

func (v Vec2) Distance(o Vec2) float32 {
	return math32.Hypot(v.X-o.X, v.Y-o.Y)
}

// Clamp limits v to [lo, hi]
func Clamp(v, lo, hi float32) float32 {
	return math32.Max(lo, math32.Min(hi, v))
}

// Lerp interpolates between a and b, t is not clamped
func Lerp(a, b, t float32) float32 {
	return a + (b-a)*t
}
