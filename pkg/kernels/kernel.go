// Copyright 2025 bitjungle - Rune Mathisen. All rights reserved.
// Use of this source code is governed by the MIT license
// that can be found in the LICENSE file.
// The author respectfully requests that it not be used for
// military, warfare, or surveillance applications.

package kernels

import "github.com/bitjungle/gogp/pkg/matrix"

// TriangleSide selects which triangle of a square covariance matrix to fill.
// The diagonal belongs to both sides.
type TriangleSide int

const (
	// Lower fills the lower triangle, inclusive of the diagonal.
	Lower TriangleSide = iota
	// Upper fills the upper triangle, inclusive of the diagonal.
	Upper
)

// Kernel is a positive-definite covariance function over observation columns.
//
// Inputs follow the library-wide orientation: a d x n matrix holds n
// observations of dimension d, one per column. All operations are pure (the
// only side effect is writing into a caller-provided destination) and safe
// to invoke concurrently.
type Kernel interface {
	// Covariance computes the covariance matrix between the columns of x
	// (d x nx) and y (d x ny), producing a fresh nx x ny matrix. It returns
	// a shape-mismatch error when the row counts disagree with the kernel
	// dimensionality.
	Covariance(x, y *matrix.Dense) (*matrix.Dense, error)

	// CovarianceInto is Covariance writing into a caller-provided nx x ny
	// buffer. On a shape-mismatch error dst is left untouched.
	CovarianceInto(dst *matrix.Dense, x, y *matrix.Dense) error

	// TriangularCovariance computes the self-covariance of x, writing only
	// the requested triangle (diagonal inclusive); the opposite triangle is
	// left at its zero initialization. Callers that only read one triangle,
	// like the Cholesky path, save half the kernel evaluations.
	TriangularCovariance(x *matrix.Dense, side TriangleSide) (*matrix.Dense, error)

	// DiagonalCovariance computes only the self-covariance diagonal
	// k(x_i, x_i), returned as a vector of length x.Cols.
	DiagonalCovariance(x *matrix.Dense) ([]float64, error)
}
