// Package core_test verifies that readers and a writer can share a Graph.
package core_test

import (
	"sync"
	"testing"

	"github.com/katalvlaran/planar/core"
	"github.com/katalvlaran/planar/geometry"
	"github.com/stretchr/testify/require"
)

// TestConcurrentReadersWithWriter runs queries while one goroutine grows a fan.
func TestConcurrentReadersWithWriter(t *testing.T) {
	g := core.NewGraph()
	hub := g.AddVertex(geometry.Pt(0, 0))
	const leaves = 100

	var wg sync.WaitGroup
	errs := make(chan error, leaves)
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < leaves; i++ {
			l := g.AddVertex(geometry.Pt(float64(i+1), 50))
			if _, err := g.AddEdge(hub, l); err != nil {
				errs <- err
			}
		}
	}()
	for r := 0; r < 4; r++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < leaves; i++ {
				_ = g.Stats()
				_ = g.Vertices()
				_, _ = g.RadialOrder(hub)
			}
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}
	require.Equal(t, leaves, g.MaxDegree())
	require.NoError(t, g.CheckInvariants())
}
