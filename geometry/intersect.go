// SPDX-License-Identifier: MIT
// Package: planar/geometry
//
// intersect.go: segment/segment intersection.
//
// Stages:
//  1. Bounding boxes must overlap (cheap reject).
//  2. Orientation of each endpoint against the other segment's line. Both
//     segments collinear yields Overlap; endpoints strictly on one side of the
//     other line yield None.
//  3. Otherwise the segments cross. A touching endpoint is the point itself;
//     a proper crossing solves both line equations.
//
// The orientation tests are exact for grid points and symmetric in a and b.

package geometry

// IntersectionKind classifies the result of Intersect.
type IntersectionKind int

const (
	// None means the segments do not meet.
	None IntersectionKind = iota
	// Crossing means the segments meet in exactly one point.
	Crossing
	// Overlap means the segments are collinear and share a sub-segment.
	Overlap
)

// String implements fmt.Stringer.
func (k IntersectionKind) String() string {
	switch k {
	case Crossing:
		return "crossing"
	case Overlap:
		return "overlap"
	default:
		return "none"
	}
}

// Intersection is the outcome of Intersect. Point is meaningful unless Kind is None.
type Intersection struct {
	Kind  IntersectionKind
	Point Point
}

// Found reports whether the segments meet at all.
func (in Intersection) Found() bool { return in.Kind != None }

// Intersect computes where segments a and b meet. Intersect(a, b) and
// Intersect(b, a) always agree on Kind.
// Complexity: O(1).
func Intersect(a, b Segment) Intersection {
	if !boxesOverlap(a, b) {
		return Intersection{}
	}

	d1, d2 := side(a, b.Start), side(a, b.End)
	d3, d4 := side(b, a.Start), side(b, a.End)
	if d1 == 0 && d2 == 0 && d3 == 0 && d4 == 0 {
		return overlap(a, b)
	}
	if d1*d2 > 0 || d3*d4 > 0 {
		return Intersection{}
	}

	switch {
	case d1 == 0:
		return Intersection{Kind: Crossing, Point: b.Start}
	case d2 == 0:
		return Intersection{Kind: Crossing, Point: b.End}
	case d3 == 0:
		return Intersection{Kind: Crossing, Point: a.Start}
	case d4 == 0:
		return Intersection{Kind: Crossing, Point: a.End}
	}

	return Intersection{Kind: Crossing, Point: lineCrossing(a, b)}
}

// lineCrossing solves the line equations of two non-parallel segments.
func lineCrossing(a, b Segment) Point {
	// Keep the vertical one (if any) in a.
	if b.Vertical() {
		a, b = b, a
	}

	var pt Point
	if a.Vertical() {
		pt.X = a.intercept
		pt.Y = b.slope*pt.X + b.intercept
	} else {
		pt.X = (b.intercept - a.intercept) / (a.slope - b.slope)
		pt.Y = a.slope*pt.X + a.intercept
	}

	return pt
}

// IntersectAll reports the intersections of s with each segment in others,
// skipping the ones that do not meet. Indices refer to others.
// Complexity: O(len(others)).
func IntersectAll(s Segment, others []Segment) map[int]Intersection {
	out := make(map[int]Intersection)
	for i, o := range others {
		if in := Intersect(s, o); in.Found() {
			out[i] = in
		}
	}

	return out
}

// overlap handles two segments on the same line whose boxes overlap.
// The shared interval is projected on x (on y for vertical lines).
func overlap(a, b Segment) Intersection {
	project := func(p Point) float64 { return p.X }
	if a.Vertical() {
		project = func(p Point) float64 { return p.Y }
	}

	// Order endpoints along the projection axis.
	aLo, aHi := a.Start, a.End
	if project(aLo) > project(aHi) {
		aLo, aHi = aHi, aLo
	}
	bLo, bHi := b.Start, b.End
	if project(bLo) > project(bHi) {
		bLo, bHi = bHi, bLo
	}

	lo := aLo
	if project(bLo) > project(lo) {
		lo = bLo
	}
	hi := aHi
	if project(bHi) < project(hi) {
		hi = bHi
	}
	if project(lo) > project(hi) {
		return Intersection{}
	}
	if lo.Equal(hi) {
		return Intersection{Kind: Overlap, Point: lo}
	}

	return Intersection{Kind: Overlap, Point: Centroid(lo, hi)}
}

// side returns the sign of cross(s, p): 1 left of s, -1 right of s, 0 on its line.
func side(s Segment, p Point) int {
	switch c := cross(s, p); {
	case c > 0:
		return 1
	case c < 0:
		return -1
	default:
		return 0
	}
}

// cross returns the z component of (s.End-s.Start)×(p-s.Start).
func cross(s Segment, p Point) float64 {
	return (s.End.X-s.Start.X)*(p.Y-s.Start.Y) - (s.End.Y-s.Start.Y)*(p.X-s.Start.X)
}

func boxesOverlap(a, b Segment) bool {
	return spansOverlap(a.Start.X, a.End.X, b.Start.X, b.End.X) &&
		spansOverlap(a.Start.Y, a.End.Y, b.Start.Y, b.End.Y)
}

func spansOverlap(a1, a2, b1, b2 float64) bool {
	aLo, aHi := minMax(a1, a2)
	bLo, bHi := minMax(b1, b2)

	return aLo <= bHi && bLo <= aHi
}

func minMax(a, b float64) (float64, float64) {
	if a < b {
		return a, b
	}
	return b, a
}
