// Package core provides the planar graph embedding: vertices with 2-D
// positions, straight-line edges that never cross, the outer-face cycle and
// the two structural mutations that keep the drawing planar (checked edge
// insertion and vertex splitting).
//
// The Graph G = (V,E) guarantees:
//
//   - Simple graph: no loops, at most one edge per vertex pair.
//   - Grid positions: every vertex sits on an integer point, no two share one.
//   - Planarity: edge segments meet only at shared endpoints.
//   - Lockstep adjacency: a vertex's neighbour list mirrors its edge list.
//   - Segment freshness: an edge's segment always joins its endpoints' positions.
//   - Face/fixed agreement: exactly the outer-face vertices are fixed.
//   - Degree trackers: MaxDegree/MinDegree equal the true extremes.
//
// Handles:
//
//	VertexID, EdgeID are opaque integer handles. Slots freed by DeleteVertex
//	are reclaimed lowest-first by later insertions (free-list arena), so an
//	id is stable for the lifetime of the entity it names.
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertex(p geometry.Point) VertexID                  // O(log F)
//	DeleteVertex(v VertexID) error                         // O(deg(v)² + V)
//	Split(v VertexID, a, b []VertexID) (VertexID, VertexID, error)
//
//	// Edge lifecycle
//	AddEdge(u, v VertexID) (EdgeID, error)                 // O(log E + k + V), R-tree lookup
//
//	// Outer face
//	SetOuterFace(ids []VertexID) error
//	OuterFace() []VertexID
//	TraceOuterFace() ([]VertexID, error)                   // recovered from the drawing
//
//	// Query
//	Vertex/Edge/Vertices/Edges/Neighbours/RadialOrder/Degree/MaxDegree/MinDegree
//
//	// Layout & rendering hooks
//	MovePositions(map[VertexID]geometry.Point) error       // used by package embed
//	Clone() *Graph                                         // independent snapshot
//	CheckInvariants() error                                // full audit
//	Draw(d Drawer)                                         // edges first, then vertices
//
// Errors (sentinels, match with errors.Is):
//
//	ErrVertexNotFound, ErrEdgeNotFound, ErrLoopNotAllowed, ErrAlreadyAdjacent,
//	ErrCrossing, ErrInvalidFace, ErrSplitIncomplete, ErrSplitGroupTooSmall,
//	ErrSplitNotContiguous, ErrSplitNotPlanar, ErrInvariant.
//
// Every mutating method validates before it mutates: a returned error means
// the graph is unchanged.
//
// Concurrency: the graph is meant to be owned by one driver at a time; a
// single sync.RWMutex still guards all state so read-only observers are safe.
package core
