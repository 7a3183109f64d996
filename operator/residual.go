// SPDX-License-Identifier: MIT

// Package operator - inverse-pair diagnostics.

package operator

import (
	"fmt"
	"math"

	"github.com/montanaflynn/stats"

	"github.com/katalvlaran/polybasis/matrix"
)

const opResidual = "Residual"

// ResidualStats summarizes |A·B - I| over all entries.
type ResidualStats struct {
	Max  float64 // largest absolute deviation
	Mean float64 // mean absolute deviation
	P99  float64 // 99th percentile of absolute deviations
}

// Residual measures how far a·b is from the identity. For mutually inverse
// operators (a.Origin() == b.Target() and a.Target() == b.Origin()) every
// statistic is close to zero. The empty operator has zero residual.
//
// Errors: ErrPairMismatch when b.Target() != a.Origin(), or a matrix error.
func Residual(a, b *Operator) (ResidualStats, error) {
	if a == nil || b == nil {
		return ResidualStats{}, operatorErrorf(opResidual, matrix.ErrNilMatrix)
	}
	prod, err := a.Compose(b)
	if err != nil {
		return ResidualStats{}, operatorErrorf(opResidual, err)
	}
	n := prod.Dim()
	if n == 0 {
		return ResidualStats{}, nil
	}

	dev := make(stats.Float64Data, 0, n*n)
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			v, _ := prod.m.At(i, j)
			if i == j {
				v--
			}
			dev = append(dev, math.Abs(v))
		}
	}

	id, err := matrix.NewIdentity(n)
	if err != nil {
		return ResidualStats{}, operatorErrorf(opResidual, err)
	}
	var rs ResidualStats
	if rs.Max, err = matrix.MaxAbsDiff(prod.m, id); err != nil {
		return ResidualStats{}, operatorErrorf(opResidual, err)
	}
	if rs.Mean, err = stats.Mean(dev); err != nil {
		return ResidualStats{}, operatorErrorf(opResidual, err)
	}
	if rs.P99, err = stats.Percentile(dev, 99); err != nil {
		return ResidualStats{}, operatorErrorf(opResidual, err)
	}

	return rs, nil
}

// String renders the three statistics in scientific notation.
func (r ResidualStats) String() string {
	return fmt.Sprintf("max=%.3e mean=%.3e p99=%.3e", r.Max, r.Mean, r.P99)
}
