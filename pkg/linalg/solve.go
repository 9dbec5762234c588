// Copyright 2025 bitjungle - Rune Mathisen. All rights reserved.
// Use of this source code is governed by the MIT license
// that can be found in the LICENSE file.
// The author respectfully requests that it not be used for
// military, warfare, or surveillance applications.

package linalg

import (
	"gonum.org/v1/gonum/floats"

	"github.com/bitjungle/gogp/internal/parallel"
	"github.com/bitjungle/gogp/pkg/matrix"
)

// ParSolveLowerTriangular solves a*x = b for x, where a is lower-triangular.
// The strict upper triangle of a is never read. b is left untouched; a fresh
// matrix holding the solution is returned.
//
// The right-hand-side columns are solved independently and in parallel;
// within one column the forward substitution is strictly sequential (each
// row depends on all previous rows). Behavior is undefined when a has a zero
// diagonal element or when the shapes are incompatible; callers are expected
// to guarantee a non-singular square a with a.Rows == b.Rows.
func ParSolveLowerTriangular(a, b *matrix.Dense) *matrix.Dense {
	res := b.Clone()
	ParSolveLowerTriangularInPlace(a, res)
	return res
}

// ParSolveLowerTriangularInPlace is ParSolveLowerTriangular with the
// solution overwriting b.
func ParSolveLowerTriangularInPlace(a, b *matrix.Dense) {
	_, bcols := b.Dims()

	parallel.For(bcols, func(start, end int) {
		for j := start; j < end; j++ {
			solveLowerTriangularVector(a, b.Col(j))
		}
	})
}

// solveLowerTriangularVector runs the forward substitution on a single
// right-hand-side column, in place. The subtraction of each solved component
// is fused into an AXPY update of the remaining rows.
func solveLowerTriangularVector(a *matrix.Dense, b []float64) {
	dim := a.Rows()

	for i := 0; i < dim; i++ {
		acol := a.Col(i)
		coeff := b[i] / acol[i]
		b[i] = coeff

		floats.AddScaled(b[i+1:], -coeff, acol[i+1:])
	}
}
