// SPDX-License-Identifier: MIT
// Package: planar/geometry
//
// segment.go: straight segments with cached line equations.
//
// Representation:
//   • slope = Δy/Δx; any vertical segment stores +Inf.
//   • intercept is the y-intercept, or the x coordinate for vertical segments.
//   • Both are computed once in NewSegment; segments are values and never mutate.

package geometry

import (
	"fmt"
	"math"
)

// verticalSlope is the single sentinel used for vertical segments.
var verticalSlope = math.Inf(1)

// Segment is a closed straight segment between two points.
type Segment struct {
	Start Point
	End   Point

	slope     float64
	intercept float64
}

// NewSegment builds the segment a→b and caches its line equation.
// Complexity: O(1).
func NewSegment(a, b Point) Segment {
	s := Segment{Start: a, End: b}
	if a.X == b.X {
		// Both +Inf and -Inf collapse into one sentinel.
		s.slope = verticalSlope
		s.intercept = a.X
		return s
	}
	s.slope = (b.Y - a.Y) / (b.X - a.X)
	s.intercept = a.Y - s.slope*a.X

	return s
}

// Slope returns the cached slope (+Inf for vertical segments).
func (s Segment) Slope() float64 { return s.slope }

// Intercept returns the cached y-intercept, or the x coordinate when vertical.
func (s Segment) Intercept() float64 { return s.intercept }

// Vertical reports whether the segment is parallel to the y axis.
func (s Segment) Vertical() bool { return math.IsInf(s.slope, 1) }

// Midpoint returns the middle of the segment.
func (s Segment) Midpoint() Point {
	return Centroid(s.Start, s.End)
}

// HasEndpoint reports whether p equals one of the segment's endpoints.
func (s Segment) HasEndpoint(p Point) bool {
	return p.Equal(s.Start) || p.Equal(s.End)
}

// Contains reports whether p lies on the closed segment.
// Collinearity uses the exact cross product, so it is reliable for grid points.
func (s Segment) Contains(p Point) bool {
	if cross(s, p) != 0 {
		return false
	}

	return inRange(p.X, s.Start.X, s.End.X) && inRange(p.Y, s.Start.Y, s.End.Y)
}

// String implements fmt.Stringer.
func (s Segment) String() string {
	return fmt.Sprintf("%v→%v", s.Start, s.End)
}

// inRange reports whether v lies in the closed interval spanned by a and b.
func inRange(v, a, b float64) bool {
	return math.Min(a, b) <= v && v <= math.Max(a, b)
}
