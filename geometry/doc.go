// SPDX-License-Identifier: MIT

// Package geometry provides the planar primitives used by the graph embedding:
// grid-snapped points, straight segments with cached line equations, the
// segment intersection test that backs planarity checks, and regular convex
// polygon placement used for outer faces.
//
// Numeric policy:
//   - Points created through Pt (or Snap) are rounded to the integer grid, and
//     every position a graph stores is snapped, so equality is exact.
//   - Intersect and Contains use exact orientation signs; both are only
//     reliable on grid points. Intersect is symmetric in its arguments.
//   - A vertical segment carries a +Inf slope regardless of direction, so two
//     vertical segments always compare equal on slope.
//
// Intersection results:
//
//	None     – the segments do not meet.
//	Crossing – the segments meet in exactly one point (Point is set).
//	Overlap  – the segments are collinear and share a sub-segment; Point is the
//	           midpoint of the shared interval (for a zero-length overlap, the
//	           shared point itself).
package geometry
