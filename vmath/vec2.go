package vmath

import (
	"math"
)

// Vec2 is a float64 2D vector used for arena positions and directions
// Value type: copy freely, compare with ==
type Vec2 struct {
	X float64 `toml:"x"`
	Y float64 `toml:"y"`
}

// V2 is shorthand for Vec2{x, y}
func V2(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

// Dot returns v.x*o.x + v.y*o.y
func (v Vec2) Dot(o Vec2) float64 {
	return v.X*o.X + v.Y*o.Y
}

// MagSq returns squared magnitude without sqrt
func (v Vec2) MagSq() float64 {
	return v.X*v.X + v.Y*v.Y
}

func (v Vec2) Mag() float64 {
	return math.Sqrt(v.MagSq())
}

// DistSq returns squared distance between two points
func (v Vec2) DistSq(o Vec2) float64 {
	return v.Sub(o).MagSq()
}

func (v Vec2) Dist(o Vec2) float64 {
	return v.Sub(o).Mag()
}

// IsZero reports an exactly zero vector
func (v Vec2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Normalize returns unit vector, zero-safe
func (v Vec2) Normalize() Vec2 {
	mag := v.Mag()
	if mag == 0 {
		return Vec2{}
	}
	inv := 1.0 / mag
	return Vec2{v.X * inv, v.Y * inv}
}

// Reflect returns v reflected off a surface with unit normal n
// v' = v - 2 * dot(v, n) * n
func (v Vec2) Reflect(n Vec2) Vec2 {
	dot2 := 2 * v.Dot(n)
	return Vec2{v.X - dot2*n.X, v.Y - dot2*n.Y}
}

// Perpendicular returns v rotated 90° counter-clockwise
func (v Vec2) Perpendicular() Vec2 {
	return Vec2{-v.Y, v.X}
}

// ReflectAxisX mirrors the x component (vertical wall hit)
func (v Vec2) ReflectAxisX() Vec2 {
	return Vec2{-v.X, v.Y}
}

// ReflectAxisY mirrors the y component (horizontal wall hit)
func (v Vec2) ReflectAxisY() Vec2 {
	return Vec2{v.X, -v.Y}
}

// Clamp limits each component to [lo, hi] of the matching axis
func (v Vec2) Clamp(lo, hi Vec2) Vec2 {
	return Vec2{Clamp(v.X, lo.X, hi.X), Clamp(v.Y, lo.Y, hi.Y)}
}

// Clamp limits x to [lo, hi]
func Clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
