// Copyright 2025 bitjungle - Rune Mathisen. All rights reserved.
// Use of this source code is governed by the MIT license
// that can be found in the LICENSE file.
// The author respectfully requests that it not be used for
// military, warfare, or surveillance applications.

package kernels

import (
	"math"

	"github.com/bitjungle/gogp/internal/parallel"
	"github.com/bitjungle/gogp/pkg/matrix"
	"github.com/bitjungle/gogp/pkg/types"
)

// RBF is the anisotropic, amplitude-scaled Radial Basis Function kernel:
//
//	k(x, y) = amplitude^2 * exp(sum_k gamma_k * (x_k - y_k)^2)
//
// where gamma_k = -1 / (2 * l_k^2) is the pre-transformed length scale for
// input dimension k. Storing gamma instead of the length scale removes a
// division from the inner loop.
//
// Degenerate parameterizations are accepted, not rejected: a zero length
// scale yields gamma = -Inf, which makes the self-covariances NaN (0 * -Inf)
// and drives the covariance of points that differ in that dimension to zero;
// NaN inputs propagate, and a zero amplitude produces an identically zero
// covariance matrix.
type RBF struct {
	gamma []float64
	amp2  float64
}

// NewRBF creates an RBF kernel from a per-dimension length scale and an
// amplitude. The amplitude is stored squared.
func NewRBF(lengthScale []float64, amplitude float64) *RBF {
	return &RBF{
		gamma: Gamma(lengthScale),
		amp2:  amplitude * amplitude,
	}
}

// RBFFromParams creates an RBF kernel directly from a gamma vector and a
// squared amplitude, bypassing the length-scale transform.
func RBFFromParams(gamma []float64, amp2 float64) *RBF {
	g := make([]float64, len(gamma))
	copy(g, gamma)
	return &RBF{gamma: g, amp2: amp2}
}

// Gamma pre-transforms a length-scale vector into the exponent coefficients
// gamma_k = -1 / (2 * l_k^2) used by the covariance inner loop.
func Gamma(lengthScale []float64) []float64 {
	gamma := make([]float64, len(lengthScale))
	for i, l := range lengthScale {
		gamma[i] = -0.5 / (l * l)
	}
	return gamma
}

// Dims returns the input dimensionality the kernel was constructed for.
func (k *RBF) Dims() int {
	return len(k.gamma)
}

// Params returns a copy of the gamma vector.
func (k *RBF) Params() []float64 {
	params := make([]float64, len(k.gamma))
	copy(params, k.gamma)
	return params
}

// SetParams replaces the gamma vector wholesale.
func (k *RBF) SetParams(params []float64) {
	k.gamma = make([]float64, len(params))
	copy(k.gamma, params)
}

// checkInputs validates that both inputs have the kernel's dimensionality as
// their row count.
func (k *RBF) checkInputs(x, y *matrix.Dense) error {
	xr, xc := x.Dims()
	yr, yc := y.Dims()
	if xr != len(k.gamma) || yr != len(k.gamma) {
		return types.NewShapeMismatchError(
			"kernel inputs must have one row per length-scale dimension",
			types.Shape{Rows: len(k.gamma), Cols: 1},
			types.Shape{Rows: xr, Cols: xc},
			types.Shape{Rows: yr, Cols: yc},
		)
	}
	return nil
}

// covariance evaluates the kernel for a single pair of observation columns.
func (k *RBF) covariance(x, y []float64) float64 {
	var sum float64
	for i, g := range k.gamma {
		diff := x[i] - y[i]
		sum += diff * diff * g
	}
	return k.amp2 * math.Exp(sum)
}

// Covariance implements Kernel.
func (k *RBF) Covariance(x, y *matrix.Dense) (*matrix.Dense, error) {
	if err := k.checkInputs(x, y); err != nil {
		return nil, err
	}
	out := matrix.NewDense(x.Cols(), y.Cols())
	k.fill(out, x, y)
	return out, nil
}

// CovarianceInto implements Kernel.
func (k *RBF) CovarianceInto(dst *matrix.Dense, x, y *matrix.Dense) error {
	if err := k.checkInputs(x, y); err != nil {
		return err
	}
	dr, dc := dst.Dims()
	if dr != x.Cols() || dc != y.Cols() {
		return types.NewShapeMismatchError(
			"destination shape must be (x columns, y columns)",
			types.Shape{Rows: dr, Cols: dc},
			types.Shape{Rows: x.Cols(), Cols: y.Cols()},
		)
	}
	k.fill(dst, x, y)
	return nil
}

// fill writes k(x_i, y_j) into every cell of out. The parallel-for runs over
// the flat output buffer; each worker recovers its (column, row) coordinate,
// slices the two observation columns, and writes a single cell, so no
// element is written twice and no input is mutated.
func (k *RBF) fill(out *matrix.Dense, x, y *matrix.Dense) {
	nx := x.Cols()
	data := out.RawData()

	parallel.For(len(data), func(start, end int) {
		for idx := start; idx < end; idx++ {
			j, i := matrix.IndexTo2D(idx, nx)
			data[idx] = k.covariance(x.Col(i), y.Col(j))
		}
	})
}

// TriangularCovariance implements Kernel.
func (k *RBF) TriangularCovariance(x *matrix.Dense, side TriangleSide) (*matrix.Dense, error) {
	if err := k.checkInputs(x, x); err != nil {
		return nil, err
	}

	n := x.Cols()
	out := matrix.NewDense(n, n)
	data := out.RawData()

	parallel.For(len(data), func(start, end int) {
		for idx := start; idx < end; idx++ {
			j, i := matrix.IndexTo2D(idx, n)
			if side == Lower && i < j || side == Upper && i > j {
				continue
			}
			data[idx] = k.covariance(x.Col(i), x.Col(j))
		}
	})

	return out, nil
}

// DiagonalCovariance implements Kernel. The RBF is stationary, so the
// diagonal is the squared amplitude broadcast over every observation.
func (k *RBF) DiagonalCovariance(x *matrix.Dense) ([]float64, error) {
	if err := k.checkInputs(x, x); err != nil {
		return nil, err
	}

	out := make([]float64, x.Cols())
	for i := range out {
		out[i] = k.amp2
	}
	return out, nil
}
