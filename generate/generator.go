// SPDX-License-Identifier: MIT
// Package: planar/generate
//
// generator.go: the random mutation driver.

package generate

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/planar/builder"
	"github.com/katalvlaran/planar/core"
	"github.com/katalvlaran/planar/embed"
	"github.com/katalvlaran/planar/geometry"
	"go.uber.org/zap"
)

// ErrExhaustedRetries reports a step that found no valid mutation within its
// retry bound. The graph is unchanged and the driver moves on.
var ErrExhaustedRetries = errors.New("generate: no valid mutation within retry bound")

// Action names the mutation a step attempted.
type Action int

const (
	ActionAddEdge Action = iota
	ActionSplit
)

// String implements fmt.Stringer.
func (a Action) String() string {
	if a == ActionSplit {
		return "split"
	}
	return "add-edge"
}

// Stats counts what a Generator has done so far.
type Stats struct {
	Steps      int
	EdgesAdded int
	Splits     int
	NoOps      int
	// Relaxations counts barycentric passes after splits; RolledBack those undone.
	Relaxations int
	RolledBack  int
}

// Generator owns one growing graph. It is not safe for concurrent use.
type Generator struct {
	cfg   config
	g     *core.Graph
	stats Stats
}

// New builds the initial wheel, lays it out and returns the Generator.
func New(opts ...Option) (*Generator, error) {
	cfg := newConfig(opts)

	g, err := builder.BuildGraph(
		[]core.GraphOption{core.WithLogger(cfg.log.Named("core"))},
		[]builder.BuilderOption{
			builder.WithCenter(cfg.center),
			builder.WithRadius(cfg.radius),
			builder.WithRand(cfg.rng),
		},
		builder.RandomWheel(cfg.wheelMin, cfg.wheelMax),
	)
	if err != nil {
		return nil, fmt.Errorf("generate.New: %w", err)
	}
	if _, err = embed.Reembed(g, g.OuterFace(), cfg.embedOptions()...); err != nil {
		return nil, fmt.Errorf("generate.New: %w", err)
	}
	cfg.log.Info("wheel ready", zap.Stringer("stats", g.Stats()))

	return &Generator{cfg: cfg, g: g}, nil
}

func (c config) embedOptions() []embed.Option {
	return []embed.Option{
		embed.WithCenter(c.center),
		embed.WithRadius(c.radius),
		embed.WithLogger(c.log.Named("embed")),
	}
}

// Graph returns the graph being grown. It stays the live graph for the
// generator's lifetime; rollbacks restore it in place.
func (gen *Generator) Graph() *core.Graph { return gen.g }

// Stats returns the counters so far.
func (gen *Generator) Stats() Stats { return gen.stats }

// Step performs one mutation chosen by the generation policy.
// A step that changed nothing returns ErrExhaustedRetries.
func (gen *Generator) Step() (Action, error) {
	gen.stats.Steps++
	action := gen.choose()

	var err error
	switch action {
	case ActionSplit:
		err = gen.SplitRandomVertex()
	default:
		err = gen.AddRandomEdge()
	}
	if errors.Is(err, ErrExhaustedRetries) {
		gen.stats.NoOps++
	}
	if err == nil && gen.cfg.checkEachStep {
		err = gen.g.CheckInvariants()
	}

	return action, err
}

// choose applies the split/add-edge policy.
func (gen *Generator) choose() Action {
	st := gen.g.Stats()
	if st.MaxDegree < gen.cfg.splitDegree {
		return ActionAddEdge
	}
	if st.Vertices > 0 && float64(st.Edges)/float64(st.Vertices) > gen.cfg.edgesPerVertex {
		return ActionSplit
	}
	if gen.cfg.rng.Float64() < gen.cfg.splitChance {
		return ActionSplit
	}

	return ActionAddEdge
}

// AddRandomEdge tries up to EdgeTries random vertex pairs and keeps the first
// edge the graph accepts.
func (gen *Generator) AddRandomEdge() error {
	ids := gen.g.VertexIDs()
	if len(ids) < 2 {
		return fmt.Errorf("AddRandomEdge: %d vertices: %w", len(ids), ErrExhaustedRetries)
	}

	for try := 0; try < gen.cfg.edgeTries; try++ {
		u, v := gen.pickPair(ids)
		e, err := gen.g.AddEdge(u, v)
		switch {
		case err == nil:
			gen.stats.EdgesAdded++
			gen.cfg.log.Debug("edge added",
				zap.Int("edge", int(e)), zap.Int("u", int(u)), zap.Int("v", int(v)), zap.Int("try", try))
			return nil
		case errors.Is(err, core.ErrCrossing), errors.Is(err, core.ErrAlreadyAdjacent):
			continue
		default:
			return fmt.Errorf("AddRandomEdge: %w", err)
		}
	}

	return fmt.Errorf("AddRandomEdge: %d tries: %w", gen.cfg.edgeTries, ErrExhaustedRetries)
}

// pickPair returns two distinct vertices: uniformly random, or the most
// isolated vertex plus a random partner under isolation bias.
func (gen *Generator) pickPair(ids []core.VertexID) (core.VertexID, core.VertexID) {
	rng := gen.cfg.rng
	var u core.VertexID
	if gen.cfg.isolationBias {
		u = mostIsolated(gen.g.Vertices())
	} else {
		u = ids[rng.Intn(len(ids))]
	}
	for {
		if v := ids[rng.Intn(len(ids))]; v != u {
			return u, v
		}
	}
}

// SplitRandomVertex splits a uniformly chosen vertex of degree ≥ SplitDegree
// at a random pair of radial boundaries. Attempts whose straight-line result
// would cross are retried up to EdgeTries times.
func (gen *Generator) SplitRandomVertex() error {
	var candidates []core.VertexID
	for _, v := range gen.g.Vertices() {
		if v.Degree >= gen.cfg.splitDegree {
			candidates = append(candidates, v.ID)
		}
	}
	if len(candidates) == 0 {
		return fmt.Errorf("SplitRandomVertex: no vertex of degree %d: %w", gen.cfg.splitDegree, ErrExhaustedRetries)
	}

	rng := gen.cfg.rng
	for try := 0; try < gen.cfg.edgeTries; try++ {
		n := candidates[rng.Intn(len(candidates))]
		order, err := gen.g.RadialOrder(n)
		if err != nil {
			return fmt.Errorf("SplitRandomVertex: %w", err)
		}
		pairs := boundaryPairs(len(order))
		p := pairs[rng.Intn(len(pairs))]
		groupA, groupB := partition(order, p[0], p[1])

		u, v, err := gen.g.Split(n, groupA, groupB)
		switch {
		case err == nil:
			gen.stats.Splits++
			gen.cfg.log.Debug("vertex split",
				zap.Int("vertex", int(n)), zap.Int("u", int(u)), zap.Int("v", int(v)), zap.Int("try", try))
			return gen.relax()
		case errors.Is(err, core.ErrSplitNotPlanar):
			continue
		default:
			return fmt.Errorf("SplitRandomVertex: %w", err)
		}
	}

	return fmt.Errorf("SplitRandomVertex: %d tries: %w", gen.cfg.edgeTries, ErrExhaustedRetries)
}

// relax runs a barycentric pass when enabled and moves the vertices back if
// the new positions are not a planar drawing.
func (gen *Generator) relax() error {
	if !gen.cfg.relax {
		return nil
	}
	before := gen.save()
	_, err := embed.Barycentric(gen.g, embed.WithLogger(gen.cfg.log.Named("embed")))
	if err == nil {
		err = gen.g.CheckInvariants()
	}
	if err != nil {
		gen.cfg.log.Debug("relaxation rolled back", zap.Error(err))
		gen.stats.RolledBack++
		return gen.restore(before)
	}
	gen.stats.Relaxations++

	return nil
}

// drawing is the part of the graph a layout pass may change.
type drawing struct {
	face []core.VertexID
	pos  map[core.VertexID]geometry.Point
}

func (gen *Generator) save() drawing {
	return drawing{face: gen.g.OuterFace(), pos: gen.g.Positions()}
}

// restore puts d back into the live graph, so handles from Graph stay valid.
func (gen *Generator) restore(d drawing) error {
	if len(d.face) > 0 {
		if err := gen.g.SetOuterFace(d.face); err != nil {
			return fmt.Errorf("restore: %w", err)
		}
	}
	if err := gen.g.MovePositions(d.pos); err != nil {
		return fmt.Errorf("restore: %w", err)
	}

	return nil
}

// Run performs the configured number of steps, then re-embeds the outer face
// on the configured polygon with all other vertices at their barycentres.
// Steps that change nothing are counted and skipped; any other error aborts.
//
// If the final layout is not a planar drawing, the stored face was not a face
// of the embedding; Run then restores the last planar drawing, traces its
// boundary and lays out again from that.
func (gen *Generator) Run() (*core.Graph, Stats, error) {
	for i := 0; i < gen.cfg.iterations; i++ {
		action, err := gen.Step()
		if err != nil && !errors.Is(err, ErrExhaustedRetries) {
			return gen.g, gen.stats, fmt.Errorf("Run: step %d (%s): %w", i, action, err)
		}
	}

	before := gen.save()
	res, err := gen.layout(gen.g.OuterFace())
	if err != nil {
		gen.cfg.log.Warn("stored outer face rejected, tracing boundary", zap.Error(err))
		if rerr := gen.restore(before); rerr != nil {
			return gen.g, gen.stats, fmt.Errorf("Run: %w: %w", err, rerr)
		}
		face, terr := gen.g.TraceOuterFace()
		if terr != nil {
			return gen.g, gen.stats, fmt.Errorf("Run: %w: %w", err, terr)
		}
		if res, err = gen.layout(face); err != nil {
			if rerr := gen.restore(before); rerr != nil {
				err = fmt.Errorf("%w: %w", err, rerr)
			}
			return gen.g, gen.stats, fmt.Errorf("Run: traced face: %w", err)
		}
	}
	gen.cfg.log.Info("generation finished",
		zap.Stringer("graph", gen.g.Stats()),
		zap.Stringer("layout", res),
		zap.Int("edgesAdded", gen.stats.EdgesAdded),
		zap.Int("splits", gen.stats.Splits),
		zap.Int("noOps", gen.stats.NoOps))

	return gen.g, gen.stats, nil
}

// layout re-embeds on face and verifies the resulting drawing.
func (gen *Generator) layout(face []core.VertexID) (embed.Result, error) {
	res, err := embed.Reembed(gen.g, face, gen.cfg.embedOptions()...)
	if err != nil {
		return res, err
	}

	return res, gen.g.CheckInvariants()
}
