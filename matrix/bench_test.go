package matrix_test

import (
	"testing"

	"github.com/katalvlaran/planar/matrix"
)

// BenchmarkSolve measures elimination on a 64×64 tridiagonal Laplacian-like system.
func BenchmarkSolve(b *testing.B) {
	const n = 64
	a, _ := matrix.NewDense(n, n)
	rhs := make([]float64, n)
	for i := 0; i < n; i++ {
		_ = a.Set(i, i, 3)
		if i > 0 {
			_ = a.Set(i, i-1, -1)
		}
		if i < n-1 {
			_ = a.Set(i, i+1, -1)
		}
		rhs[i] = float64(i)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = matrix.Solve(a, rhs)
	}
}
