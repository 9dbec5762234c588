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
	"github.com/bitjungle/gogp/pkg/types"
)

// ParMatMul computes the product lhs * rhs in parallel, producing a fresh
// (lhs.Rows x rhs.Cols) matrix. It returns a shape-mismatch error when
// lhs.Cols != rhs.Rows.
//
// Each output cell is written by exactly one worker; the contraction runs in
// a fixed sequential order, so results are reproducible for any worker count.
func ParMatMul(lhs, rhs *matrix.Dense) (*matrix.Dense, error) {
	lrows, lcols := lhs.Dims()
	rrows, rcols := rhs.Dims()

	if lcols != rrows {
		return nil, types.NewShapeMismatchError(
			"matmul requires lhs columns to match rhs rows",
			types.Shape{Rows: lrows, Cols: lcols},
			types.Shape{Rows: rrows, Cols: rcols},
		)
	}

	out := matrix.NewDense(lrows, rcols)
	outData := out.RawData()
	lhsData := lhs.RawData()

	parallel.For(len(outData), func(start, end int) {
		for idx := start; idx < end; idx++ {
			oj, oi := matrix.IndexTo2D(idx, lrows)
			rcol := rhs.Col(oj)
			var sum float64
			for k := 0; k < lcols; k++ {
				sum += lhsData[k*lrows+oi] * rcol[k]
			}
			outData[idx] = sum
		}
	})

	return out, nil
}

// ParTrMatMul computes transpose(lhs) * rhs in parallel without
// materializing the transpose, producing a fresh (lhs.Cols x rhs.Cols)
// matrix. It returns a shape-mismatch error when lhs.Rows != rhs.Rows.
//
// Because both operands are indexed by column, every contraction is a dot
// product of two contiguous slices.
func ParTrMatMul(lhs, rhs *matrix.Dense) (*matrix.Dense, error) {
	lrows, lcols := lhs.Dims()
	rrows, rcols := rhs.Dims()

	if lrows != rrows {
		return nil, types.NewShapeMismatchError(
			"transpose matmul requires lhs rows to match rhs rows",
			types.Shape{Rows: lcols, Cols: lrows},
			types.Shape{Rows: rrows, Cols: rcols},
		)
	}

	out := matrix.NewDense(lcols, rcols)
	outData := out.RawData()

	parallel.For(len(outData), func(start, end int) {
		for idx := start; idx < end; idx++ {
			oj, oi := matrix.IndexTo2D(idx, lcols)
			outData[idx] = floats.Dot(lhs.Col(oi), rhs.Col(oj))
		}
	})

	return out, nil
}

// ParTrMatMulDiag computes only the diagonal of transpose(lhs) * rhs in
// parallel, returning it as a vector of length min(lhs.Cols, rhs.Cols):
// element c is the dot product of column c of lhs with column c of rhs.
// It returns a shape-mismatch error when lhs.Rows != rhs.Rows.
//
// This is the fast path for per-point predictive variance, avoiding the full
// quadratic output of ParTrMatMul.
func ParTrMatMulDiag(lhs, rhs *matrix.Dense) ([]float64, error) {
	lrows, lcols := lhs.Dims()
	rrows, rcols := rhs.Dims()

	if lrows != rrows {
		return nil, types.NewShapeMismatchError(
			"transpose matmul requires lhs rows to match rhs rows",
			types.Shape{Rows: lcols, Cols: lrows},
			types.Shape{Rows: rrows, Cols: rcols},
		)
	}

	out := make([]float64, min(lcols, rcols))

	parallel.For(len(out), func(start, end int) {
		for c := start; c < end; c++ {
			out[c] = floats.Dot(lhs.Col(c), rhs.Col(c))
		}
	})

	return out, nil
}
