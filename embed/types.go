// Package embed computes barycentric (Tutte) layouts for a core.Graph.
//
// The outer-face vertices are pinned; every other vertex is moved to the
// arithmetic mean of its neighbours. Writing that equilibrium for all free
// vertices gives one linear system per axis:
//
//	deg(v)·v − Σ_{free n ∈ N(v)} n = Σ_{fixed n ∈ N(v)} pos(n)
//
// For a 3-connected planar graph with a convex outer face the solution is a
// planar straight-line drawing (Tutte's theorem).
//
// Complexity:
//
//	– Time:  O(F³) for F free vertices (dense Gaussian elimination, two axes).
//	– Space: O(F²) for the coefficient matrix.
//
// Entry points:
//
//	– Barycentric: solve against the current outer-face positions.
//	– Reembed:     install a new outer face, place it on a regular polygon
//	               (WithCenter/WithRadius), then solve.
//
// Errors (sentinel):
//
//	– ErrNilGraph          if the graph pointer is nil.
//	– ErrNoOuterFace       if fewer than three vertices are fixed.
//	– ErrDegenerateSystem  if an axis has no unique solution; that axis keeps
//	                       its previous coordinates, the other is still applied.
//
// Example usage:
//
//	res, err := embed.Reembed(g, g.OuterFace(),
//	    embed.WithCenter(geometry.Pt(400, 400)),
//	    embed.WithRadius(400),
//	)
package embed

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/planar/geometry"
	"go.uber.org/zap"
)

// Sentinel errors returned by the embedding solver.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed.
	ErrNilGraph = errors.New("embed: graph is nil")

	// ErrNoOuterFace indicates there is no outer face to pin the layout to.
	ErrNoOuterFace = errors.New("embed: outer face needs at least three vertices")

	// ErrDegenerateSystem indicates that the linear system of one axis has no
	// unique solution (typically a free vertex with no path to the face).
	ErrDegenerateSystem = errors.New("embed: degenerate barycentric system")
)

// Defaults used when no option overrides them.
const (
	DefaultRadius            = 400.0
	DefaultResidualTolerance = 1e-6
)

// DefaultCenter is the polygon centre used by Reembed by default.
var DefaultCenter = geometry.Pt(400, 400)

// Axis names one coordinate axis of the layout.
type Axis int

const (
	AxisX Axis = iota
	AxisY
)

// String implements fmt.Stringer.
func (a Axis) String() string {
	if a == AxisX {
		return "x"
	}
	return "y"
}

// Result reports what a solve did.
type Result struct {
	// Fixed and Free count the pinned and the solved vertices.
	Fixed int
	Free  int

	// Solved reports, per axis, whether new coordinates were applied.
	Solved [2]bool

	// Residual is ‖Ax − b‖∞ per axis (zero when the axis was not solved).
	Residual [2]float64
}

// String implements fmt.Stringer.
func (r Result) String() string {
	return fmt.Sprintf("fixed=%d free=%d x=%t y=%t", r.Fixed, r.Free, r.Solved[AxisX], r.Solved[AxisY])
}

// Option configures the solver.
type Option func(*config)

type config struct {
	center geometry.Point
	radius float64
	tol    float64
	log    *zap.Logger
}

func newConfig(opts []Option) config {
	cfg := config{
		center: DefaultCenter,
		radius: DefaultRadius,
		tol:    DefaultResidualTolerance,
		log:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithCenter sets the centre of the outer-face polygon used by Reembed.
func WithCenter(c geometry.Point) Option {
	return func(cfg *config) { cfg.center = c }
}

// WithRadius sets the circumradius of the outer-face polygon used by Reembed.
// Panics if r is not positive.
func WithRadius(r float64) Option {
	if !(r > 0) {
		panic("embed: WithRadius requires r > 0")
	}
	return func(cfg *config) { cfg.radius = r }
}

// WithResidualTolerance sets the largest accepted ‖Ax − b‖∞ per axis; a
// larger residual is reported as ErrDegenerateSystem. Panics if tol < 0.
func WithResidualTolerance(tol float64) Option {
	if !(tol >= 0) {
		panic("embed: WithResidualTolerance requires tol >= 0")
	}
	return func(cfg *config) { cfg.tol = tol }
}

// WithLogger attaches a structured logger; nil keeps the no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(cfg *config) {
		if l != nil {
			cfg.log = l
		}
	}
}
