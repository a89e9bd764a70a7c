// SPDX-License-Identifier: MIT
// Package core: handles, entities, sentinel errors and the Graph constructor.

package core

import (
	"errors"
	"sync"

	"github.com/katalvlaran/planar/geometry"
	"github.com/peterstace/simplefeatures/rtree"
	"go.uber.org/zap"
)

// Sentinel errors for core graph operations.
var (
	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrLoopNotAllowed indicates an edge from a vertex to itself was requested.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrAlreadyAdjacent indicates the two vertices are already joined (simple graph).
	ErrAlreadyAdjacent = errors.New("core: vertices already adjacent")

	// ErrCrossing indicates the candidate edge would cross an existing edge
	// away from its own endpoints, or pass through another vertex.
	ErrCrossing = errors.New("core: edge would break planarity")

	// ErrInvalidFace indicates an outer-face sequence that is not a simple cycle
	// of at least three live, consecutively adjacent vertices.
	ErrInvalidFace = errors.New("core: invalid outer face")

	// ErrSplitIncomplete indicates the two groups do not partition the neighbour set exactly.
	ErrSplitIncomplete = errors.New("core: split groups do not partition the neighbours")

	// ErrSplitGroupTooSmall indicates a split group with fewer than two members.
	ErrSplitGroupTooSmall = errors.New("core: split group smaller than two")

	// ErrSplitNotContiguous indicates a group that is not one run in the radial order.
	ErrSplitNotContiguous = errors.New("core: split groups not radially contiguous")

	// ErrSplitNotPlanar indicates the straight-line edges of the split would cross.
	ErrSplitNotPlanar = errors.New("core: split would break planarity")

	// ErrInvariant is reported by CheckInvariants.
	ErrInvariant = errors.New("core: invariant violated")
)

// VertexID is an opaque handle naming one vertex of a Graph.
type VertexID int

// EdgeID is an opaque handle naming one edge of a Graph.
type EdgeID int

// NoVertex is the zero-value sentinel for "no vertex".
const NoVertex VertexID = -1

// NoEdge is the sentinel for "no edge".
const NoEdge EdgeID = -1

// Vertex is a read-only snapshot of a vertex.
type Vertex struct {
	// ID names the vertex.
	ID VertexID

	// Pos is the current position.
	Pos geometry.Point

	// Fixed is true exactly for outer-face vertices.
	Fixed bool

	// Degree is the number of incident edges.
	Degree int

	// Attr is the caller-assignable display attribute (see SetVertexAttr).
	Attr string
}

// Edge is a read-only snapshot of an edge.
type Edge struct {
	// ID names the edge.
	ID EdgeID

	// U and V are the endpoints; the pair is unordered.
	U, V VertexID

	// Segment joins the endpoints' current positions.
	Segment geometry.Segment
}

// Other returns the endpoint opposite to x, or NoVertex if x is not an endpoint.
func (e Edge) Other(x VertexID) VertexID {
	switch x {
	case e.U:
		return e.V
	case e.V:
		return e.U
	default:
		return NoVertex
	}
}

// vertex is the mutable record behind a VertexID.
// Invariant: len(edges) == len(neighbours) and neighbours[i] is the far end of edges[i].
type vertex struct {
	id         VertexID
	pos        geometry.Point
	edges      []EdgeID
	neighbours []VertexID
	fixed      bool
	attr       string
}

func (v *vertex) degree() int { return len(v.edges) }

// attach records e towards nb.
func (v *vertex) attach(e EdgeID, nb VertexID) {
	v.edges = append(v.edges, e)
	v.neighbours = append(v.neighbours, nb)
}

// detach removes e (and its neighbour entry) keeping the lists in lockstep.
func (v *vertex) detach(e EdgeID) {
	for i, id := range v.edges {
		if id == e {
			v.edges = append(v.edges[:i], v.edges[i+1:]...)
			v.neighbours = append(v.neighbours[:i], v.neighbours[i+1:]...)
			return
		}
	}
}

// adjacentTo reports whether nb is a neighbour.
func (v *vertex) adjacentTo(nb VertexID) bool {
	for _, id := range v.neighbours {
		if id == nb {
			return true
		}
	}
	return false
}

func (v *vertex) snapshot() Vertex {
	return Vertex{ID: v.id, Pos: v.pos, Fixed: v.fixed, Degree: v.degree(), Attr: v.attr}
}

// edge is the mutable record behind an EdgeID.
type edge struct {
	id  EdgeID
	u   VertexID
	v   VertexID
	seg geometry.Segment
}

func (e *edge) snapshot() Edge {
	return Edge{ID: e.id, U: e.u, V: e.v, Segment: e.seg}
}

func (e *edge) hasEndpoint(x VertexID) bool { return e.u == x || e.v == x }

// Drawer receives entities during Graph.Draw. Rendering back-ends implement it.
type Drawer interface {
	DrawEdge(e Edge)
	DrawVertex(v Vertex)
}

// GraphOption configures a Graph before first use.
type GraphOption func(g *Graph)

// WithLogger attaches a structured logger; nil keeps the no-op logger.
func WithLogger(l *zap.Logger) GraphOption {
	return func(g *Graph) {
		if l != nil {
			g.log = l
		}
	}
}

// Graph is the planar graph embedding.
//
// mu guards every field; exported methods lock, *Locked helpers assume the lock is held.
type Graph struct {
	mu sync.RWMutex

	vertices arena[vertex]
	edges    arena[edge]

	// index holds one box per live edge (see index.go).
	index rtree.RTree

	maxDegree int
	minDegree int

	// outerFace is the boundary cycle; consecutive entries (with wraparound) are adjacent.
	outerFace []VertexID

	log *zap.Logger
}

// NewGraph creates an empty Graph.
// Complexity: O(len(opts)).
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{log: zap.NewNop()}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
