// SPDX-License-Identifier: MIT
// Package matrix: linear system kernels.
//
// Solve performs Gaussian elimination with partial pivoting on an augmented
// copy [A | b]; the inputs are never modified.
//
// Stages:
//   - Validate: A non-nil and square, b of length n with finite entries.
//   - Eliminate: for each column k pick the row with the largest |a(i,k)|
//     (i ≥ k), swap it up, reject if |pivot| ≤ PivotTolerance, eliminate below.
//   - Back-substitute from the last row upwards.
//
// Determinism: ties between equal-magnitude pivots keep the upper row, so the
// same input always produces the same operation sequence.

package matrix

import (
	"fmt"
	"math"
)

// PivotTolerance is the magnitude at or below which a pivot is treated as zero.
const PivotTolerance = 1e-12

// Operation tags for uniform error wrapping.
const (
	opSolve    = "Solve"
	opMatVec   = "MatVec"
	opResidual = "Residual"
)

// matrixErrorf wraps err with an operation tag, preserving it for errors.Is.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Solve returns x such that a·x = b.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrDimensionMismatch, ErrNaNInf (validation).
//   - ErrSingular when no unique solution exists.
//
// Complexity: O(n³) time, O(n²) space for the augmented copy.
func Solve(a Matrix, b []float64) ([]float64, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	if err := ValidateSquare(a); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	n := a.Rows()
	if err := ValidateVecLen(b, n); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	if err := ValidateFinite(b); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}

	aug, err := augment(a, b)
	if err != nil {
		return nil, matrixErrorf(opSolve, err)
	}

	// Forward elimination with partial pivoting.
	var (
		i, j, k, p int
		best, f    float64
	)
	for k = 0; k < n; k++ {
		p = k
		best = math.Abs(aug[k][k])
		for i = k + 1; i < n; i++ {
			if v := math.Abs(aug[i][k]); v > best {
				p, best = i, v
			}
		}
		if best <= PivotTolerance {
			return nil, matrixErrorf(opSolve, fmt.Errorf("column %d: %w", k, ErrSingular))
		}
		aug[k], aug[p] = aug[p], aug[k]

		for i = k + 1; i < n; i++ {
			f = aug[i][k] / aug[k][k]
			if f == 0 {
				continue
			}
			for j = k; j <= n; j++ {
				aug[i][j] -= f * aug[k][j]
			}
		}
	}

	// Back substitution.
	x := make([]float64, n)
	var sum float64
	for i = n - 1; i >= 0; i-- {
		sum = aug[i][n]
		for j = i + 1; j < n; j++ {
			sum -= aug[i][j] * x[j]
		}
		x[i] = sum / aug[i][i]
	}

	return x, nil
}

// augment copies a into n rows of n+1 columns with b as the last column.
func augment(a Matrix, b []float64) ([][]float64, error) {
	n := a.Rows()
	aug := make([][]float64, n)
	if d, ok := a.(*Dense); ok {
		for i := 0; i < n; i++ {
			row := make([]float64, n+1)
			copy(row, d.data[i*n:(i+1)*n])
			row[n] = b[i]
			aug[i] = row
		}
		return aug, nil
	}

	for i := 0; i < n; i++ {
		row := make([]float64, n+1)
		for j := 0; j < n; j++ {
			v, err := a.At(i, j)
			if err != nil {
				return nil, fmt.Errorf("At(%d,%d): %w", i, j, err)
			}
			row[j] = v
		}
		row[n] = b[i]
		aug[i] = row
	}

	return aug, nil
}

// MatVec computes y = m·x for a column vector x.
// Complexity: O(r*c) time, O(r) space.
func MatVec(m Matrix, x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.Cols()); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	rows, cols := m.Rows(), m.Cols()
	y := make([]float64, rows)

	if d, ok := m.(*Dense); ok {
		var acc float64
		for i := 0; i < rows; i++ {
			acc = 0
			base := i * cols
			for j := 0; j < cols; j++ {
				if x[j] != 0 {
					acc += d.data[base+j] * x[j]
				}
			}
			y[i] = acc
		}
		return y, nil
	}

	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			v, err := m.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opMatVec, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			y[i] += v * x[j]
		}
	}

	return y, nil
}

// Residual returns max_i |(a·x − b)_i|, the ∞-norm of the residual vector.
// Complexity: O(n²).
func Residual(a Matrix, x, b []float64) (float64, error) {
	ax, err := MatVec(a, x)
	if err != nil {
		return 0, matrixErrorf(opResidual, err)
	}
	if err = ValidateVecLen(b, len(ax)); err != nil {
		return 0, matrixErrorf(opResidual, err)
	}
	var worst float64
	for i := range ax {
		worst = math.Max(worst, math.Abs(ax[i]-b[i]))
	}

	return worst, nil
}
