// SPDX-License-Identifier: MIT
// Package matrix provides the linear-algebra kernels used by operator
// builders: products, triangular solves, LU-based inversion and tolerance
// comparisons. All kernels perform strict fail-fast validation and return
// sentinel errors wrapped with an operation tag.
//
// Notes:
//   - Inner loops of Mul and MatVec run on github.com/cwbudde/algo-vecmath
//     block kernels (SIMD where available).
//   - Inverse and Cond delegate to gonum's partially pivoted LU; the
//     triangular solves stay in-house because the basis-change matrices are
//     triangular by construction and need exact zero-pivot detection.

package matrix

import (
	"fmt"
	"math"

	vecmath "github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/mat"
)

// ZeroPivot is the sentinel for detecting a zero pivot in triangular solves.
const ZeroPivot = 0.0

// Operation name constants for unified error wrapping.
const (
	opMul        = "Mul"
	opMatVec     = "MatVec"
	opSolveUpper = "SolveUpper"
	opSolveLower = "SolveLower"
	opInverse    = "Inverse"
	opCond       = "Cond"
	opAllClose   = "AllClose"
	opMaxAbsDiff = "MaxAbsDiff"
)

// asDense returns m itself when it already is a *Dense, otherwise a Dense copy
// read through At. Lets every kernel run a single flat-slice code path.
func asDense(m Matrix) (*Dense, error) {
	if d, ok := m.(*Dense); ok {
		return d, nil
	}
	out, err := NewDense(m.Rows(), m.Cols())
	if err != nil {
		return nil, err
	}
	var i, j int
	var v float64
	for i = 0; i < out.r; i++ {
		for j = 0; j < out.c; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, fmt.Errorf("At(%d,%d): %w", i, j, err)
			}
			out.data[i*out.c+j] = v
		}
	}

	return out, nil
}

// NewIdentity returns I_n (n×n identity). n == 0 yields the empty matrix.
// Complexity: O(n^2).
func NewIdentity(n int) (*Dense, error) {
	id, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		id.data[i*n+i] = 1.0
	}

	return id, nil
}

// MatVec computes y = m * x for a column vector x.
//
// Contract: m non-nil; len(x) == m.Cols().
// Each y[i] is one vecmath.DotProduct over the flat row slice.
// Complexity: Time O(r*c), Space O(r) for y.
func MatVec(m Matrix, x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.Cols()); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	d, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}

	y := make([]float64, d.r)
	if d.c == 0 {
		return y, nil // empty rows contribute nothing
	}
	var i int
	for i = 0; i < d.r; i++ {
		y[i] = vecmath.DotProduct(d.data[i*d.c:(i+1)*d.c], x)
	}

	return y, nil
}

// Mul performs the matrix product C = A × B and returns a fresh Dense.
//
// Implementation:
//   - Stage 1: validate non-nil operands and a.Cols == b.Rows.
//   - Stage 2: for each row i of C accumulate a[i,k] * B[k,:] with
//     vecmath.ScaleBlock + vecmath.AddBlockInPlace (row-major friendly).
//
// Zero a[i,k] entries are skipped; triangular operators are half zeros.
// Complexity: Time O(r*n*c), Space O(r*c + c).
func Mul(a, b Matrix) (*Dense, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	if a.Cols() != b.Rows() {
		return nil, matrixErrorf(opMul, fmt.Errorf("%dx%d × %dx%d: %w", a.Rows(), a.Cols(), b.Rows(), b.Cols(), ErrDimensionMismatch))
	}
	da, err := asDense(a)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	db, err := asDense(b)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	out, err := NewDense(da.r, db.c)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	if db.c == 0 {
		return out, nil
	}

	var (
		i, k int
		aik  float64
		crow []float64
		temp = make([]float64, db.c) // scratch for the scaled row of B
	)
	for i = 0; i < da.r; i++ {
		crow = out.data[i*db.c : (i+1)*db.c]
		for k = 0; k < da.c; k++ {
			aik = da.data[i*da.c+k]
			if aik == 0 {
				continue
			}
			vecmath.ScaleBlock(temp, db.data[k*db.c:(k+1)*db.c], aik)
			vecmath.AddBlockInPlace(crow, temp)
		}
	}

	return out, nil
}

// SolveUpper solves U·X = B for X by back substitution, where U is square
// upper triangular (entries below the diagonal are ignored).
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrDimensionMismatch (B.Rows != n).
//   - ErrSingular when a diagonal entry equals ZeroPivot.
//
// Complexity: Time O(n^2 * k) for k right-hand sides, Space O(n*k).
func SolveUpper(u, b Matrix) (*Dense, error) {
	du, db, err := prepareTriangular(opSolveUpper, u, b)
	if err != nil {
		return nil, err
	}
	n, k := du.r, db.c
	x := db.cloneDense()

	var i, j, col int
	var sum, pivot float64
	for col = 0; col < k; col++ {
		for i = n - 1; i >= 0; i-- {
			pivot = du.data[i*n+i]
			if pivot == ZeroPivot {
				return nil, matrixErrorf(opSolveUpper, fmt.Errorf("zero pivot at %d: %w", i, ErrSingular))
			}
			sum = x.data[i*k+col]
			for j = i + 1; j < n; j++ {
				sum -= du.data[i*n+j] * x.data[j*k+col]
			}
			x.data[i*k+col] = sum / pivot
		}
	}

	return x, nil
}

// SolveLower solves L·X = B for X by forward substitution, where L is square
// lower triangular (entries above the diagonal are ignored).
//
// Errors: as SolveUpper.
// Complexity: Time O(n^2 * k), Space O(n*k).
func SolveLower(l, b Matrix) (*Dense, error) {
	dl, db, err := prepareTriangular(opSolveLower, l, b)
	if err != nil {
		return nil, err
	}
	n, k := dl.r, db.c
	x := db.cloneDense()

	var i, j, col int
	var sum, pivot float64
	for col = 0; col < k; col++ {
		for i = 0; i < n; i++ {
			pivot = dl.data[i*n+i]
			if pivot == ZeroPivot {
				return nil, matrixErrorf(opSolveLower, fmt.Errorf("zero pivot at %d: %w", i, ErrSingular))
			}
			sum = x.data[i*k+col]
			for j = 0; j < i; j++ {
				sum -= dl.data[i*n+j] * x.data[j*k+col]
			}
			x.data[i*k+col] = sum / pivot
		}
	}

	return x, nil
}

// prepareTriangular validates the (square T, right-hand side B) pair shared
// by SolveUpper and SolveLower and returns both as *Dense.
func prepareTriangular(tag string, t, b Matrix) (*Dense, *Dense, error) {
	if err := ValidateSquare(t); err != nil {
		return nil, nil, matrixErrorf(tag, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, nil, matrixErrorf(tag, err)
	}
	if b.Rows() != t.Rows() {
		return nil, nil, matrixErrorf(tag, fmt.Errorf("rhs rows %d, want %d: %w", b.Rows(), t.Rows(), ErrDimensionMismatch))
	}
	dt, err := asDense(t)
	if err != nil {
		return nil, nil, matrixErrorf(tag, err)
	}
	db, err := asDense(b)
	if err != nil {
		return nil, nil, matrixErrorf(tag, err)
	}

	return dt, db, nil
}

// toGonum copies a non-empty Dense into a gonum *mat.Dense.
func toGonum(d *Dense) *mat.Dense {
	buf := make([]float64, len(d.data))
	copy(buf, d.data)

	return mat.NewDense(d.r, d.c, buf)
}

// Inverse returns A^{-1} computed from gonum's partially pivoted LU.
//
// Implementation:
//   - Stage 1: validate square input; n == 0 returns the empty matrix.
//   - Stage 2: factorize; an exactly singular factorization (Cond == +Inf)
//     yields ErrSingular, an estimate above the condition limit yields
//     ErrIllConditioned.
//   - Stage 3: solve A·X = I and copy X back into a Dense.
//
// Complexity: Time O(n^3), Space O(n^2).
func Inverse(m Matrix, opts ...Option) (*Dense, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	o := gatherOptions(opts...)
	d, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	n := d.r
	if n == 0 {
		return NewDense(0, 0)
	}

	var lu mat.LU
	lu.Factorize(toGonum(d))
	cond := lu.Cond()
	if math.IsInf(cond, 1) || math.IsNaN(cond) {
		return nil, matrixErrorf(opInverse, ErrSingular)
	}
	if cond > o.conditionLimit {
		return nil, matrixErrorf(opInverse, fmt.Errorf("cond %.3g > %.3g: %w", cond, o.conditionLimit, ErrIllConditioned))
	}

	ones := make([]float64, n)
	for i := range ones {
		ones[i] = 1
	}
	var x mat.Dense
	if err = lu.SolveTo(&x, false, mat.NewDiagDense(n, ones)); err != nil {
		// gonum reports near-singularity as a mat.Condition error.
		return nil, matrixErrorf(opInverse, fmt.Errorf("%v: %w", err, ErrIllConditioned))
	}

	out, _ := NewDense(n, n)
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			out.data[i*n+j] = x.At(i, j)
		}
	}

	return out, nil
}

// Cond returns the LU condition-number estimate of a square matrix
// (+Inf for a singular one, 1 for the empty matrix).
// Complexity: Time O(n^3).
func Cond(m Matrix) (float64, error) {
	if err := ValidateSquare(m); err != nil {
		return 0, matrixErrorf(opCond, err)
	}
	d, err := asDense(m)
	if err != nil {
		return 0, matrixErrorf(opCond, err)
	}
	if d.r == 0 {
		return 1, nil
	}
	var lu mat.LU
	lu.Factorize(toGonum(d))

	return lu.Cond(), nil
}

// MaxAbsDiff returns max |a[i,j] - b[i,j]| for identical shapes (0 when empty).
// The reduction runs on vecmath.MaxAbs.
// Complexity: Time O(r*c), Space O(r*c).
func MaxAbsDiff(a, b Matrix) (float64, error) {
	if err := ValidateSameShape(a, b); err != nil {
		return 0, matrixErrorf(opMaxAbsDiff, err)
	}
	da, err := asDense(a)
	if err != nil {
		return 0, matrixErrorf(opMaxAbsDiff, err)
	}
	db, err := asDense(b)
	if err != nil {
		return 0, matrixErrorf(opMaxAbsDiff, err)
	}
	if len(da.data) == 0 {
		return 0, nil
	}
	diff := make([]float64, len(da.data))
	vecmath.ScaleBlock(diff, db.data, -1)
	vecmath.AddBlockInPlace(diff, da.data)

	return vecmath.MaxAbs(diff), nil
}

// AllClose checks element-wise |a-b| <= atol + rtol*|b| for identical shapes.
// NaN never compares close. Negative tolerances are normalized to |tol|.
// Complexity: Time O(r*c), Space O(1) beyond operand conversion.
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	if err := ValidateSameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	da, err := asDense(a)
	if err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	db, err := asDense(b)
	if err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)
	for k := range da.data {
		av, bv := da.data[k], db.data[k]
		if av == bv { // covers equal infinities
			continue
		}
		if math.IsNaN(av) || math.IsNaN(bv) || math.Abs(av-bv) > atol+rtol*math.Abs(bv) {
			return false, nil
		}
	}

	return true, nil
}
