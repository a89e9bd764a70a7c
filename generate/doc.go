// Package generate grows random planar embeddings.
//
// A Generator starts from a wheel (a hub joined to every vertex of a convex
// k-gon whose vertices form the outer face) and applies a bounded number of
// random mutations, each of which keeps the drawing planar:
//
//   - add edge:    a random pair of vertices is joined when the straight
//     segment crosses nothing (bounded retries);
//   - split:       a vertex of degree ≥ SplitDegree is replaced by two
//     adjacent vertices, its neighbours divided into two radially
//     contiguous runs of at least two.
//
// Policy per step:
//
//	maxDegree < SplitDegree      → add edge (nothing can be split yet)
//	edges/vertices > target      → split
//	otherwise                    → split with probability SplitChance
//
// After the last step the outer face is re-embedded on a regular polygon and
// every other vertex is moved to the barycentre of its neighbours. When the
// stored face does not give a planar drawing, the boundary of the last planar
// drawing is traced and the layout is retried on it.
//
// Determinism: equal options and seed yield identical graphs.
package generate
