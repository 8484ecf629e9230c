// @lixen: #dev{feature[orbit(colony)]}
package vmath

import (
	"math"
)

// Ellipse utilities for orbit paths on a terminal grid
// Terminal character cells are roughly twice as tall as wide, so a circle that
// looks round on screen is an ellipse with the horizontal radius doubled

// TerminalAspect is the horizontal stretch applied to look circular (width:height = 1:2)
const TerminalAspect = 2.0

// EllipsePoint returns the point at angle (radians) on the axis-aligned ellipse
// centred at c with radii rx, ry
func EllipsePoint(c Vec2F, rx, ry, angle float64) Vec2F {
	return Vec2F{
		X: c.X + rx*math.Cos(angle),
		Y: c.Y + ry*math.Sin(angle),
	}
}

// OrbitPoint returns the point on a screen-round orbit of given radius
func OrbitPoint(c Vec2F, radius, angle float64) Vec2F {
	return EllipsePoint(c, radius*TerminalAspect, radius, angle)
}

// EllipseDistSq returns normalized squared distance for ellipse containment
// Result == 1 is on the boundary, < 1 inside; zero radii yield +Inf off-centre
func EllipseDistSq(p, c Vec2F, rx, ry float64) float64 {
	d := V2FSub(p, c)
	return ellipseTerm(d.X, rx) + ellipseTerm(d.Y, ry)
}

func ellipseTerm(d, r float64) float64 {
	if r == 0 {
		if d == 0 {
			return 0
		}
		return math.Inf(1)
	}
	n := d / r
	return n * n
}
