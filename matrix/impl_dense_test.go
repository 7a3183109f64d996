// Package matrix_test contains unit tests for the Dense implementation
// of the Matrix interface in the matrix package.
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/polybasis/matrix"
	"github.com/stretchr/testify/require"
)

// TestNewDenseInvalidDimensions ensures that NewDense rejects negative dimensions.
func TestNewDenseInvalidDimensions(t *testing.T) {
	_, err := matrix.NewDense(-1, 5)                     // negative rows
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions) // expect ErrInvalidDimensions

	_, err = matrix.NewDense(5, -1)                      // negative cols
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions) // expect ErrInvalidDimensions
}

// TestNewDenseEmpty verifies that 0×0 and 0×k shapes are legal.
func TestNewDenseEmpty(t *testing.T) {
	m, err := matrix.NewDense(0, 0)
	require.NoError(t, err)
	require.Equal(t, 0, m.Rows())
	require.Equal(t, 0, m.Cols())
	require.Equal(t, "", m.String()) // nothing to print

	m, err = matrix.NewDense(0, 3)
	require.NoError(t, err)
	require.Equal(t, 3, m.Cols())
}

// TestAtSetOutOfBounds ensures At() and Set() return ErrOutOfRange on invalid access.
func TestAtSetOutOfBounds(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)

	_, err = m.At(-1, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	_, err = m.At(0, 2)
	require.ErrorIs(t, err, matrix.ErrIndexOutOfBounds) // deprecated alias still matches

	require.ErrorIs(t, m.Set(2, 0, 1.23), matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(0, -1, 4.56), matrix.ErrOutOfRange)
}

// TestSetRejectsNonFinite verifies the default numeric policy in Set.
func TestSetRejectsNonFinite(t *testing.T) {
	m, err := matrix.NewDense(1, 1)
	require.NoError(t, err)

	require.ErrorIs(t, m.Set(0, 0, math.NaN()), matrix.ErrNaNInf)
	require.ErrorIs(t, m.Set(0, 0, math.Inf(-1)), matrix.ErrNaNInf)
	require.NoError(t, m.Set(0, 0, 2.5))

	// clones keep rejecting non-finite values
	c := m.Clone()
	require.ErrorIs(t, c.Set(0, 0, math.Inf(1)), matrix.ErrNaNInf)
	v, err := c.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 2.5, v)
}

// TestNewDenseFrom validates length checks and copy semantics.
func TestNewDenseFrom(t *testing.T) {
	data := []float64{1, 2, 3, 4, 5, 6}
	m, err := matrix.NewDenseFrom(2, 3, data)
	require.NoError(t, err)

	data[0] = 99 // caller mutation must not leak into m
	v, err := m.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 1.0, v)

	row, err := m.Row(1)
	require.NoError(t, err)
	require.Equal(t, []float64{4, 5, 6}, row)

	_, err = m.Row(2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	_, err = matrix.NewDenseFrom(2, 2, data)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.NewDenseFrom(1, 2, []float64{1, math.NaN()})
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}

// TestCloneIndependence ensures Clone() returns a deep copy that does not share storage.
func TestCloneIndependence(t *testing.T) {
	m, err := matrix.NewDenseFrom(2, 2, []float64{1, 0, 0, 2})
	require.NoError(t, err)

	clone := m.Clone()
	require.NoError(t, clone.Set(0, 0, 3.0)) // modify the clone only

	orig, err := m.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 1.0, orig) // original unchanged
}

// TestTriangularPredicates checks IsUpperTriangular / IsLowerTriangular.
func TestTriangularPredicates(t *testing.T) {
	u, err := matrix.NewDenseFrom(3, 3, []float64{
		1, 2, 3,
		0, 4, 5,
		0, 1e-15, 6,
	})
	require.NoError(t, err)

	require.True(t, u.IsUpperTriangular(1e-12))
	require.False(t, u.IsUpperTriangular(0))
	require.False(t, u.IsLowerTriangular(1e-12))

	id, err := matrix.NewIdentity(3)
	require.NoError(t, err)
	require.True(t, id.IsUpperTriangular(0))
	require.True(t, id.IsLowerTriangular(0))
}

// TestString prints rows in bracketed form.
func TestString(t *testing.T) {
	m, err := matrix.NewDenseFrom(2, 2, []float64{1, 2.5, -3, 0})
	require.NoError(t, err)
	require.Equal(t, "[1, 2.5]\n[-3, 0]\n", m.String())
}
