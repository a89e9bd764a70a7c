package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/planar/matrix"
	"github.com/stretchr/testify/require"
)

func TestValidators(t *testing.T) {
	sq, err := matrix.NewDense(2, 2)
	require.NoError(t, err)
	rect, err := matrix.NewDense(2, 3)
	require.NoError(t, err)

	require.ErrorIs(t, matrix.ValidateNotNil(nil), matrix.ErrNilMatrix)
	require.NoError(t, matrix.ValidateNotNil(sq))

	require.NoError(t, matrix.ValidateSquare(sq))
	require.ErrorIs(t, matrix.ValidateSquare(rect), matrix.ErrNonSquare)

	require.ErrorIs(t, matrix.ValidateVecLen(nil, 2), matrix.ErrNilMatrix)
	require.ErrorIs(t, matrix.ValidateVecLen([]float64{1}, 2), matrix.ErrDimensionMismatch)
	require.NoError(t, matrix.ValidateVecLen([]float64{1, 2}, 2))

	require.NoError(t, matrix.ValidateFinite([]float64{0, -1, 1e300}))
	require.ErrorIs(t, matrix.ValidateFinite([]float64{0, math.NaN()}), matrix.ErrNaNInf)
	require.ErrorIs(t, matrix.ValidateFinite([]float64{math.Inf(-1)}), matrix.ErrNaNInf)
}
