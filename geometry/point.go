// SPDX-License-Identifier: MIT
// Package: planar/geometry
//
// point.go: Point value type and gonum r2 bridge.

package geometry

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Point is an immutable 2-D coordinate pair.
type Point struct {
	X float64
	Y float64
}

// Pt returns the point (x, y) snapped to the integer grid.
// Complexity: O(1).
func Pt(x, y float64) Point {
	return Point{X: math.Round(x), Y: math.Round(y)}
}

// Snap returns p rounded onto the integer grid.
func (p Point) Snap() Point {
	return Pt(p.X, p.Y)
}

// FromVec converts a gonum vector into an exact (unsnapped) Point.
func FromVec(v r2.Vec) Point {
	return Point{X: v.X, Y: v.Y}
}

// Vec converts p into a gonum vector for arithmetic.
func (p Point) Vec() r2.Vec {
	return r2.Vec{X: p.X, Y: p.Y}
}

// Equal reports exact coordinate equality.
func (p Point) Equal(q Point) bool {
	return p.X == q.X && p.Y == q.Y
}

// Add returns p+q.
func (p Point) Add(q Point) Point {
	return FromVec(r2.Add(p.Vec(), q.Vec()))
}

// Scale returns p scaled by f.
func (p Point) Scale(f float64) Point {
	return FromVec(r2.Scale(f, p.Vec()))
}

// Dist2 returns the squared Euclidean distance between p and q.
func (p Point) Dist2(q Point) float64 {
	return r2.Norm2(r2.Sub(p.Vec(), q.Vec()))
}

// AngleTo returns atan2(q.Y-p.Y, q.X-p.X), the direction from p towards q.
func (p Point) AngleTo(q Point) float64 {
	return math.Atan2(q.Y-p.Y, q.X-p.X)
}

// String implements fmt.Stringer.
func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

// Centroid returns the arithmetic mean of pts; the zero Point for an empty slice.
func Centroid(pts ...Point) Point {
	if len(pts) == 0 {
		return Point{}
	}
	var sum r2.Vec
	for _, p := range pts {
		sum = r2.Add(sum, p.Vec())
	}

	return FromVec(r2.Scale(1/float64(len(pts)), sum))
}
