// Package matrix_test contains unit tests for the linear-algebra kernels.
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/polybasis/matrix"
	"github.com/stretchr/testify/require"
)

// TestMatVec checks y = A·x on the Dense and the interface path.
func TestMatVec(t *testing.T) {
	a := mustDense(t, 2, 3, 1, 2, 3, 4, 5, 6)
	x := []float64{1, 0, -1}

	y, err := matrix.MatVec(a, x)
	require.NoError(t, err)
	require.Equal(t, []float64{-2, -2}, y)

	y, err = matrix.MatVec(hide{a}, x) // fallback path must agree
	require.NoError(t, err)
	require.Equal(t, []float64{-2, -2}, y)

	_, err = matrix.MatVec(a, []float64{1})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.MatVec(nil, x)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestMatVecEmpty verifies the 0×0 operator maps the empty vector to itself.
func TestMatVecEmpty(t *testing.T) {
	empty, err := matrix.NewDense(0, 0)
	require.NoError(t, err)

	y, err := matrix.MatVec(empty, []float64{})
	require.NoError(t, err)
	require.Empty(t, y)

	y, err = matrix.MatVec(empty, nil)
	require.NoError(t, err)
	require.Empty(t, y)
}

// TestMul checks a small product and the dimension guard.
func TestMul(t *testing.T) {
	a := mustDense(t, 2, 2, 1, 2, 0, 1)
	b := mustDense(t, 2, 3, 1, 0, 2, 3, 1, 0)

	c, err := matrix.Mul(a, b)
	require.NoError(t, err)
	requireClose(t, mustDense(t, 2, 3, 7, 2, 2, 3, 1, 0), c, 0)

	c2, err := matrix.Mul(hide{a}, hide{b})
	require.NoError(t, err)
	requireClose(t, c, c2, 0)

	_, err = matrix.Mul(b, a)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

// TestMulIdentity ensures I·A == A for the identity built by NewIdentity.
func TestMulIdentity(t *testing.T) {
	a := mustDense(t, 3, 3, 2, -1, 0, -1, 2, -1, 0, -1, 2)
	id, err := matrix.NewIdentity(3)
	require.NoError(t, err)

	got, err := matrix.Mul(id, a)
	require.NoError(t, err)
	requireClose(t, a, got, 0)

	empty, err := matrix.NewIdentity(0)
	require.NoError(t, err)
	prod, err := matrix.Mul(empty, empty)
	require.NoError(t, err)
	require.Equal(t, 0, prod.Rows())
}

// TestSolveUpper solves an upper-triangular system and detects zero pivots.
func TestSolveUpper(t *testing.T) {
	u := mustDense(t, 3, 3,
		2, 1, -1,
		0, 1, 3,
		0, 0, 4,
	)
	id, _ := matrix.NewIdentity(3)

	inv, err := matrix.SolveUpper(u, id)
	require.NoError(t, err)
	prod, err := matrix.Mul(u, inv)
	require.NoError(t, err)
	requireClose(t, id, prod, 1e-14)
	require.True(t, inv.IsUpperTriangular(0)) // inverse of upper is upper

	singular := mustDense(t, 2, 2, 1, 1, 0, 0)
	_, err = matrix.SolveUpper(singular, mustDense(t, 2, 1, 1, 1))
	require.ErrorIs(t, err, matrix.ErrSingular)

	_, err = matrix.SolveUpper(u, mustDense(t, 2, 1, 1, 1))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.SolveUpper(mustDense(t, 2, 3), id)
	require.ErrorIs(t, err, matrix.ErrNonSquare)
}

// TestSolveLower solves a lower-triangular system with one right-hand side.
func TestSolveLower(t *testing.T) {
	l := mustDense(t, 3, 3,
		1, 0, 0,
		1, 1, 0,
		1, 2, 2,
	)
	b := mustDense(t, 3, 1, 1, 2, 5) // values of 1+x² at 0,1,2

	x, err := matrix.SolveLower(l, b)
	require.NoError(t, err)
	requireClose(t, mustDense(t, 3, 1, 1, 1, 1), x, 1e-15) // divided differences

	_, err = matrix.SolveLower(mustDense(t, 2, 2, 1, 0, 1, 0), mustDense(t, 2, 1, 1, 1))
	require.ErrorIs(t, err, matrix.ErrSingular)
}

// TestInverse checks the LU-backed inverse and its condition guards.
func TestInverse(t *testing.T) {
	a := mustDense(t, 3, 3, 4, 7, 2, 3, 6, 1, 2, 5, 3)
	inv, err := matrix.Inverse(a)
	require.NoError(t, err)

	prod, err := matrix.Mul(a, inv)
	require.NoError(t, err)
	id, _ := matrix.NewIdentity(3)
	requireClose(t, id, prod, 1e-12)

	_, err = matrix.Inverse(mustDense(t, 2, 2, 1, 2, 2, 4))
	require.ErrorIs(t, err, matrix.ErrSingular)

	nearly := mustDense(t, 2, 2, 1, 1, 1, 1+1e-9)
	_, err = matrix.Inverse(nearly, matrix.WithConditionLimit(1e6))
	require.ErrorIs(t, err, matrix.ErrIllConditioned)

	empty, _ := matrix.NewDense(0, 0)
	inv, err = matrix.Inverse(empty)
	require.NoError(t, err)
	require.Equal(t, 0, inv.Rows())
}

// TestWithConditionLimitPanics verifies option validation.
func TestWithConditionLimitPanics(t *testing.T) {
	require.Panics(t, func() { matrix.WithConditionLimit(0.5) })
	require.Panics(t, func() { matrix.WithConditionLimit(math.NaN()) })
	require.NotPanics(t, func() { matrix.WithConditionLimit(1e8) })
}

// TestCond reports 1 for the identity and +Inf for a singular matrix.
func TestCond(t *testing.T) {
	id, _ := matrix.NewIdentity(4)
	c, err := matrix.Cond(id)
	require.NoError(t, err)
	require.InDelta(t, 1.0, c, 1e-12)

	c, err = matrix.Cond(mustDense(t, 2, 2, 1, 2, 2, 4))
	require.NoError(t, err)
	require.True(t, math.IsInf(c, 1))
}

// TestMaxAbsDiffAndAllClose compares two nearly equal matrices.
func TestMaxAbsDiffAndAllClose(t *testing.T) {
	a := mustDense(t, 2, 2, 1, 2, 3, 4)
	b := mustDense(t, 2, 2, 1, 2, 3, 4.5)

	d, err := matrix.MaxAbsDiff(a, b)
	require.NoError(t, err)
	require.InDelta(t, 0.5, d, 1e-15)

	ok, err := matrix.AllClose(a, b, 0, 0.6)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = matrix.AllClose(a, b, 0, 0.1)
	require.NoError(t, err)
	require.False(t, ok)

	_, err = matrix.AllClose(a, mustDense(t, 1, 2), 0, 1)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}
