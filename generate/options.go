// SPDX-License-Identifier: MIT
// Package: planar/generate
//
// options.go: functional options and defaults for the Generator.
//
// Option constructors validate and panic on meaningless inputs; the
// Generator itself never panics.

package generate

import (
	"math/rand"
	"time"

	"github.com/katalvlaran/planar/geometry"
	"go.uber.org/zap"
)

// Defaults.
const (
	DefaultIterations     = 80
	DefaultWheelMin       = 8
	DefaultWheelMax       = 16
	DefaultRadius         = 400.0
	DefaultEdgesPerVertex = 6.0
	DefaultSplitChance    = 0.35
	DefaultEdgeTries      = 10
	DefaultSplitDegree    = 4
)

// DefaultCenter is the default centre of the wheel and of the final layout.
var DefaultCenter = geometry.Pt(400, 400)

// Option configures a Generator.
type Option func(*config)

type config struct {
	rng            *rand.Rand
	iterations     int
	wheelMin       int
	wheelMax       int
	center         geometry.Point
	radius         float64
	edgesPerVertex float64
	splitChance    float64
	edgeTries      int
	splitDegree    int
	isolationBias  bool
	relax          bool
	checkEachStep  bool
	log            *zap.Logger
}

func newConfig(opts []Option) config {
	cfg := config{
		iterations:     DefaultIterations,
		wheelMin:       DefaultWheelMin,
		wheelMax:       DefaultWheelMax,
		center:         DefaultCenter,
		radius:         DefaultRadius,
		edgesPerVertex: DefaultEdgesPerVertex,
		splitChance:    DefaultSplitChance,
		edgeTries:      DefaultEdgeTries,
		splitDegree:    DefaultSplitDegree,
		log:            zap.NewNop(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	return cfg
}

// WithSeed makes the run reproducible.
func WithSeed(seed int64) Option {
	return func(c *config) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithRand supplies the RNG. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("generate: WithRand(nil)")
	}
	return func(c *config) { c.rng = r }
}

// WithIterations sets the number of mutation steps Run performs. Panics if n < 0.
func WithIterations(n int) Option {
	if n < 0 {
		panic("generate: WithIterations requires n >= 0")
	}
	return func(c *config) { c.iterations = n }
}

// WithWheelSize bounds the rim size of the initial wheel (inclusive).
// Panics unless 3 <= lo <= hi.
func WithWheelSize(lo, hi int) Option {
	if lo < 3 || hi < lo {
		panic("generate: WithWheelSize requires 3 <= lo <= hi")
	}
	return func(c *config) { c.wheelMin, c.wheelMax = lo, hi }
}

// WithCenter sets the centre of the wheel and of the final layout.
func WithCenter(p geometry.Point) Option {
	return func(c *config) { c.center = p }
}

// WithRadius sets the circumradius of the wheel and of the final layout.
// Panics if r is not positive.
func WithRadius(r float64) Option {
	if !(r > 0) {
		panic("generate: WithRadius requires r > 0")
	}
	return func(c *config) { c.radius = r }
}

// WithEdgesPerVertex sets the edge/vertex ratio above which every step splits.
// Panics if ratio is not positive.
func WithEdgesPerVertex(ratio float64) Option {
	if !(ratio > 0) {
		panic("generate: WithEdgesPerVertex requires ratio > 0")
	}
	return func(c *config) { c.edgesPerVertex = ratio }
}

// WithSplitChance sets the probability of splitting below the ratio target.
// Panics outside [0, 1].
func WithSplitChance(p float64) Option {
	if !(p >= 0 && p <= 1) {
		panic("generate: WithSplitChance requires 0 <= p <= 1")
	}
	return func(c *config) { c.splitChance = p }
}

// WithEdgeTries bounds the attempts of one add-edge or split step. Panics if n < 1.
func WithEdgeTries(n int) Option {
	if n < 1 {
		panic("generate: WithEdgeTries requires n >= 1")
	}
	return func(c *config) { c.edgeTries = n }
}

// WithSplitDegree sets the minimum degree of a split candidate. Panics if
// d < 4, since both groups need at least two neighbours.
func WithSplitDegree(d int) Option {
	if d < 4 {
		panic("generate: WithSplitDegree requires d >= 4")
	}
	return func(c *config) { c.splitDegree = d }
}

// WithIsolationBias makes edge additions start from the most isolated vertex
// (the one whose nearest other vertex is farthest away).
func WithIsolationBias(on bool) Option {
	return func(c *config) { c.isolationBias = on }
}

// WithRelax re-runs the barycentric layout after every successful split.
// A relaxation that would break planarity is rolled back.
func WithRelax(on bool) Option {
	return func(c *config) { c.relax = on }
}

// WithInvariantChecks audits the graph after every step; a violation aborts
// the run with core.ErrInvariant.
func WithInvariantChecks(on bool) Option {
	return func(c *config) { c.checkEachStep = on }
}

// WithLogger attaches a structured logger; nil keeps the no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.log = l
		}
	}
}
