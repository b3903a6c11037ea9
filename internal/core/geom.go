// Package core provides fundamental types and utilities for the snake platform.
// It contains no UI dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import (
	"math"
	"math/rand"

	"github.com/joonazan/vec2"
)

// Point is a 2D coordinate in simulation units (not pixels or cells).
type Point struct {
	vec2.Vector
}

// Pt creates a point from its components.
func Pt(x, y float64) Point {
	return Point{vec2.Vector{X: x, Y: y}}
}

// X returns the horizontal component.
func (p Point) X() float64 { return p.Vector.X }

// Y returns the vertical component.
func (p Point) Y() float64 { return p.Vector.Y }

// Dist returns the Euclidean distance between two points.
func (p Point) Dist(q Point) float64 {
	return p.Minus(q.Vector).Length()
}

// Step returns the point reached by moving dist units along angle (radians).
func (p Point) Step(angle, dist float64) Point {
	return Pt(p.X()+dist*math.Cos(angle), p.Y()+dist*math.Sin(angle))
}

// Lerp returns the point a fraction t of the way from p to q.
func (p Point) Lerp(q Point, t float64) Point {
	return Pt(p.X()+(q.X()-p.X())*t, p.Y()+(q.Y()-p.Y())*t)
}

// Circle is a disc used for point-radius collision and placement clearance.
type Circle struct {
	Center Point
	Radius float64
}

// Touches reports whether a point with the given radius overlaps the circle.
// Touching edges count as a hit.
func (c Circle) Touches(p Point, radius float64) bool {
	return c.Center.Dist(p) <= c.Radius+radius
}

// Bounds is an axis-aligned rectangle in simulation units.
type Bounds struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

// NewBounds creates bounds spanning [0,w]x[0,h].
func NewBounds(w, h float64) Bounds {
	return Bounds{MaxX: w, MaxY: h}
}

// Width returns the horizontal extent.
func (b Bounds) Width() float64 { return b.MaxX - b.MinX }

// Height returns the vertical extent.
func (b Bounds) Height() float64 { return b.MaxY - b.MinY }

// Center returns the midpoint of the bounds.
func (b Bounds) Center() Point {
	return Pt((b.MinX+b.MaxX)/2, (b.MinY+b.MaxY)/2)
}

// Contains returns true if p lies inside the bounds, edges included.
func (b Bounds) Contains(p Point) bool {
	return p.X() >= b.MinX && p.X() <= b.MaxX && p.Y() >= b.MinY && p.Y() <= b.MaxY
}

// Inset shrinks the bounds by margin on every side.
// A margin larger than half the extent collapses that axis onto its midpoint.
func (b Bounds) Inset(margin float64) Bounds {
	out := Bounds{
		MinX: b.MinX + margin,
		MinY: b.MinY + margin,
		MaxX: b.MaxX - margin,
		MaxY: b.MaxY - margin,
	}
	if out.MinX > out.MaxX {
		mid := (b.MinX + b.MaxX) / 2
		out.MinX, out.MaxX = mid, mid
	}
	if out.MinY > out.MaxY {
		mid := (b.MinY + b.MaxY) / 2
		out.MinY, out.MaxY = mid, mid
	}
	return out
}

// RandomPoint draws a point uniformly from the bounds.
func (b Bounds) RandomPoint(rng *rand.Rand) Point {
	return Pt(b.MinX+rng.Float64()*b.Width(), b.MinY+rng.Float64()*b.Height())
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
