// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers.

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/polybasis/matrix"
	"github.com/stretchr/testify/require"
)

// hide wraps any Matrix to hide its concrete type from type assertions,
// forcing kernels onto their interface (non-*Dense) path.
type hide struct{ matrix.Matrix }

// mustDense builds an r×c *Dense from row-major values or fails the test.
func mustDense(tb testing.TB, rows, cols int, data ...float64) *matrix.Dense {
	tb.Helper()
	if len(data) == 0 {
		data = make([]float64, rows*cols)
	}
	m, err := matrix.NewDenseFrom(rows, cols, data)
	require.NoError(tb, err)

	return m
}

// requireClose asserts AllClose(a, b) under an absolute tolerance.
func requireClose(tb testing.TB, want, got matrix.Matrix, atol float64) {
	tb.Helper()
	ok, err := matrix.AllClose(got, want, 0, atol)
	require.NoError(tb, err)
	require.Truef(tb, ok, "matrices differ:\nwant:\n%v\ngot:\n%v", want, got)
}
