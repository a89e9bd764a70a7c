// SPDX-License-Identifier: MIT
// Package: planar/embed
//
// embed.go: assembling and solving the barycentric systems.
//
// Stages:
//  1. Index free vertices 0..F-1 in ascending VertexID order.
//  2. Row i: diagonal deg(v), −1 per free neighbour, RHS Σ fixed neighbour coordinate.
//  3. Solve each axis with matrix.Solve and verify the residual.
//  4. Snap each solution to the grid and move all free vertices in one
//     MovePositions call (segments follow).

package embed

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/planar/core"
	"github.com/katalvlaran/planar/geometry"
	"github.com/katalvlaran/planar/matrix"
	"go.uber.org/zap"
)

// Barycentric moves every free vertex of g to the grid point nearest the mean
// of its neighbours, keeping the outer-face vertices where they are.
//
// An axis that fails wraps ErrDegenerateSystem and keeps its old coordinates;
// the result still reports the axis that succeeded.
func Barycentric(g *core.Graph, opts ...Option) (Result, error) {
	if g == nil {
		return Result{}, ErrNilGraph
	}
	cfg := newConfig(opts)
	if len(g.OuterFace()) < 3 {
		return Result{}, ErrNoOuterFace
	}

	return solve(g, cfg)
}

// Reembed makes face the outer face of g, places it on a regular polygon
// (vertex i at angle i·2π/len(face) around the configured centre) and then
// runs Barycentric.
func Reembed(g *core.Graph, face []core.VertexID, opts ...Option) (Result, error) {
	if g == nil {
		return Result{}, ErrNilGraph
	}
	if len(face) < 3 {
		return Result{}, ErrNoOuterFace
	}
	cfg := newConfig(opts)
	if err := g.SetOuterFace(face); err != nil {
		return Result{}, fmt.Errorf("Reembed: %w", err)
	}

	pts := geometry.RegularPolygon(len(face), cfg.center, cfg.radius)
	moves := make(map[core.VertexID]geometry.Point, len(face))
	for i, id := range face {
		moves[id] = pts[i]
	}
	if err := g.MovePositions(moves); err != nil {
		return Result{}, fmt.Errorf("Reembed: %w", err)
	}

	return solve(g, cfg)
}

// system is the per-axis linear system over the free vertices.
type system struct {
	free []core.Vertex
	a    *matrix.Dense
	rhs  [2][]float64
}

func solve(g *core.Graph, cfg config) (Result, error) {
	sys, fixed, err := assemble(g)
	if err != nil {
		return Result{}, err
	}
	res := Result{Fixed: fixed, Free: len(sys.free)}
	if res.Free == 0 {
		return res, nil
	}

	var sol [2][]float64
	var errs []error
	for _, axis := range []Axis{AxisX, AxisY} {
		x, r, err := solveAxis(sys, axis, cfg.tol)
		if err != nil {
			cfg.log.Warn("barycentric axis failed", zap.Stringer("axis", axis), zap.Error(err))
			cfg.log.Debug("degenerate system", zap.Stringer("axis", axis), zap.Stringer("matrix", sys.a))
			errs = append(errs, err)
			continue
		}
		sol[axis], res.Solved[axis], res.Residual[axis] = x, true, r
	}
	if !res.Solved[AxisX] && !res.Solved[AxisY] {
		return res, errors.Join(errs...)
	}

	moves := make(map[core.VertexID]geometry.Point, len(sys.free))
	for i, v := range sys.free {
		p := v.Pos
		if res.Solved[AxisX] {
			p.X = sol[AxisX][i]
		}
		if res.Solved[AxisY] {
			p.Y = sol[AxisY][i]
		}
		moves[v.ID] = p.Snap()
	}
	if err := g.MovePositions(moves); err != nil {
		return res, fmt.Errorf("Barycentric: %w", err)
	}
	cfg.log.Debug("barycentric layout applied",
		zap.Int("fixed", res.Fixed), zap.Int("free", res.Free),
		zap.Float64("residualX", res.Residual[AxisX]), zap.Float64("residualY", res.Residual[AxisY]))

	return res, errors.Join(errs...)
}

// assemble builds the coefficient matrix and both right-hand sides.
func assemble(g *core.Graph) (system, int, error) {
	var sys system
	pos := make(map[core.VertexID]geometry.Point)
	index := make(map[core.VertexID]int)
	fixed := 0
	for _, v := range g.Vertices() {
		pos[v.ID] = v.Pos
		if v.Fixed {
			fixed++
			continue
		}
		index[v.ID] = len(sys.free)
		sys.free = append(sys.free, v)
	}
	if len(sys.free) == 0 {
		return sys, fixed, nil
	}

	a, err := matrix.NewDense(len(sys.free), len(sys.free))
	if err != nil {
		return sys, fixed, fmt.Errorf("Barycentric: %w", err)
	}
	sys.a = a
	sys.rhs[AxisX] = make([]float64, len(sys.free))
	sys.rhs[AxisY] = make([]float64, len(sys.free))
	for i, v := range sys.free {
		nbs, err := g.Neighbours(v.ID)
		if err != nil {
			return sys, fixed, fmt.Errorf("Barycentric: %w", err)
		}
		if err = a.Set(i, i, float64(len(nbs))); err != nil {
			return sys, fixed, fmt.Errorf("Barycentric: %w", err)
		}
		for _, nb := range nbs {
			if j, ok := index[nb]; ok {
				if err = a.Add(i, j, -1); err != nil {
					return sys, fixed, fmt.Errorf("Barycentric: %w", err)
				}
				continue
			}
			sys.rhs[AxisX][i] += pos[nb].X
			sys.rhs[AxisY][i] += pos[nb].Y
		}
	}

	return sys, fixed, nil
}

// solveAxis solves one axis and rejects solutions whose residual exceeds tol.
func solveAxis(sys system, axis Axis, tol float64) ([]float64, float64, error) {
	b := sys.rhs[axis]
	x, err := matrix.Solve(sys.a, b)
	if err != nil {
		return nil, 0, fmt.Errorf("%s axis: %w: %w", axis, ErrDegenerateSystem, err)
	}
	r, err := matrix.Residual(sys.a, x, b)
	if err != nil {
		return nil, 0, fmt.Errorf("%s axis: %w: %w", axis, ErrDegenerateSystem, err)
	}
	if r > tol*max(1, maxAbs(b)) {
		return nil, r, fmt.Errorf("%s axis: residual %g: %w", axis, r, ErrDegenerateSystem)
	}

	return x, r, nil
}

func maxAbs(xs []float64) float64 {
	m := 0.0
	for _, x := range xs {
		m = max(m, math.Abs(x))
	}
	return m
}
