package vmath

import (
	"math"
)

// Vec2F is a float64 2D vector for sub-cell positions
type Vec2F struct {
	X, Y float64
}

func V2F(x, y float64) Vec2F {
	return Vec2F{x, y}
}

func V2FAdd(a, b Vec2F) Vec2F {
	return Vec2F{a.X + b.X, a.Y + b.Y}
}

func V2FSub(a, b Vec2F) Vec2F {
	return Vec2F{a.X - b.X, a.Y - b.Y}
}

func V2FScale(v Vec2F, s float64) Vec2F {
	return Vec2F{v.X * s, v.Y * s}
}

func V2FMagSq(v Vec2F) float64 {
	return v.X*v.X + v.Y*v.Y
}

func V2FMag(v Vec2F) float64 {
	return math.Sqrt(V2FMagSq(v))
}

// V2FDist returns Euclidean distance between a and b
func V2FDist(a, b Vec2F) float64 {
	return V2FMag(V2FSub(b, a))
}

// V2FLerp interpolates from a to b, t=0 yields a and t=1 yields b exactly
func V2FLerp(a, b Vec2F, t float64) Vec2F {
	if t == 1 {
		return b
	}
	return Vec2F{a.X + (b.X-a.X)*t, a.Y + (b.Y-a.Y)*t}
}

// Cell rounds to the nearest integer grid cell
func (v Vec2F) Cell() (x, y int) {
	return int(math.Round(v.X)), int(math.Round(v.Y))
}
