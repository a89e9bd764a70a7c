// SPDX-License-Identifier: MIT
// Package: planar/geometry
//
// polygon.go: simple polygons: regular placement, area, containment.

package geometry

import "math"

// Polygon is a closed simple polygon; the last vertex joins the first.
type Polygon []Point

// RegularPolygon returns n points of a regular convex polygon centred at
// center with circumradius radius. Point i sits at angle i·2π/n, measured
// from the positive x axis, snapped to the grid. n <= 0 yields nil.
// Complexity: O(n).
func RegularPolygon(n int, center Point, radius float64) Polygon {
	if n <= 0 {
		return nil
	}
	step := 2 * math.Pi / float64(n)
	pts := make(Polygon, n)
	for i := range pts {
		a := step * float64(i)
		pts[i] = Pt(center.X+radius*math.Cos(a), center.Y+radius*math.Sin(a))
	}

	return pts
}

// SignedArea returns the shoelace area: positive for counter-clockwise
// vertex order, negative for clockwise.
// Complexity: O(n).
func (pg Polygon) SignedArea() float64 {
	var sum float64
	for i, p := range pg {
		q := pg[(i+1)%len(pg)]
		sum += p.X*q.Y - q.X*p.Y
	}

	return sum / 2
}

// Area returns the unsigned area.
func (pg Polygon) Area() float64 { return math.Abs(pg.SignedArea()) }

// Contains reports whether p lies inside pg by the even-odd crossing rule.
// Points exactly on the boundary may go either way; callers test points
// known to be off the boundary.
// Complexity: O(n).
func (pg Polygon) Contains(p Point) bool {
	in := false
	for i, a := range pg {
		b := pg[(i+1)%len(pg)]
		if (a.Y > p.Y) != (b.Y > p.Y) {
			x := a.X + (p.Y-a.Y)*(b.X-a.X)/(b.Y-a.Y)
			if p.X < x {
				in = !in
			}
		}
	}

	return in
}
