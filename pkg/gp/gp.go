// Copyright 2025 bitjungle - Rune Mathisen. All rights reserved.
// Use of this source code is governed by the MIT license
// that can be found in the LICENSE file.
// The author respectfully requests that it not be used for
// military, warfare, or surveillance applications.

package gp

import (
	"errors"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/bitjungle/gogp/internal/parallel"
	"github.com/bitjungle/gogp/pkg/kernels"
	"github.com/bitjungle/gogp/pkg/linalg"
	"github.com/bitjungle/gogp/pkg/matrix"
	"github.com/bitjungle/gogp/pkg/types"
)

// GP is an uncompiled Gaussian Process: a kernel plus observation noise.
//
// Definition:
//
//	f*  = K*^T [K + noise*I]^-1 y
//	cov = K** - K*^T [K + noise*I]^-1 K*
type GP struct {
	kernel kernels.Kernel
	noise  float64
}

// New creates a GP from a kernel and a non-negative observation noise.
func New(kernel kernels.Kernel, noise float64) (*GP, error) {
	if kernel == nil {
		return nil, types.NewValidationError("kernel must not be nil")
	}
	if noise < 0 {
		return nil, types.NewValidationError("noise must be non-negative")
	}
	return &GP{kernel: kernel, noise: noise}, nil
}

// Compile fits the GP to training inputs x (d x n, columns are observations)
// and targets y (length n), producing an immutable CompiledGP.
//
// The pipeline: build the lower triangle of K = k(x, x), add noise to the
// diagonal, Cholesky-factorize, and solve for the dual weights
// alpha = (K + noise*I)^-1 y. A factorization failure is reported as a
// non-positive-definite error; the typical cause is duplicate observation
// columns combined with zero noise.
//
// The compiled state keeps x and the kernel; callers must not mutate x after
// compilation.
func (g *GP) Compile(x *matrix.Dense, y []float64) (*CompiledGP, error) {
	d, n := x.Dims()
	if n != len(y) {
		return nil, types.NewShapeMismatchError(
			"training targets must have one element per observation column",
			types.Shape{Rows: d, Cols: n},
			types.Shape{Rows: len(y), Cols: 1},
		)
	}

	kxx, err := g.kernel.TriangularCovariance(x, kernels.Lower)
	if err != nil {
		return nil, err
	}

	linalg.ParAddDiagonal(kxx, g.noise)

	// The filled lower triangle of the column-major buffer is exactly the
	// upper triangle of the same buffer read row-major, which is the
	// triangle gonum's SymDense references. No copy is needed.
	sym := mat.NewSymDense(n, kxx.RawData())

	var chol mat.Cholesky
	if !chol.Factorize(sym) {
		return nil, types.NewNonPositiveDefiniteError()
	}

	alpha := mat.NewVecDense(n, nil)
	if err := chol.SolveVecTo(alpha, mat.NewVecDense(n, y)); err != nil {
		var cond mat.Condition
		if !errors.As(err, &cond) {
			return nil, types.NewNonPositiveDefiniteError()
		}
	}

	var l mat.TriDense
	chol.LTo(&l)

	return &CompiledGP{
		chol:   matrix.FromGonum(&l),
		alpha:  alpha.RawVector().Data,
		kernel: g.kernel,
		x:      x,
	}, nil
}

// CompiledGP is a fitted Gaussian Process. It holds the Cholesky factor L of
// K + noise*I, the dual weights alpha, the kernel, and the training inputs.
// The state is immutable after construction; all prediction methods are
// read-only and safe to call concurrently from multiple goroutines.
type CompiledGP struct {
	// chol is the lower-triangular Cholesky factor of (K + noise*I)
	chol *matrix.Dense
	// alpha satisfies (K + noise*I) * alpha = y
	alpha []float64
	// kernel is the covariance function the GP was built with
	kernel kernels.Kernel
	// x is the training input set, d x n
	x *matrix.Dense
}

// Mean computes the posterior mean at each query column of xq (d x m),
// returning a vector of length m.
func (c *CompiledGP) Mean(xq *matrix.Dense) ([]float64, error) {
	kxq, err := c.kernel.Covariance(c.x, xq)
	if err != nil {
		return nil, err
	}

	return c.meanFromCross(kxq)
}

// meanFromCross finishes the mean computation from an n x m cross-covariance.
func (c *CompiledGP) meanFromCross(kxq *matrix.Dense) ([]float64, error) {
	res, err := linalg.ParTrMatMul(kxq, matrix.NewColumnVector(c.alpha))
	if err != nil {
		return nil, err
	}
	return res.RawData(), nil
}

// Variance computes the per-point posterior variance at each query column of
// xq (d x m), returning a vector of length m. Values that round off slightly
// below zero are clamped to zero; NaN from degenerate kernel parameters
// propagates unchanged.
func (c *CompiledGP) Variance(xq *matrix.Dense) ([]float64, error) {
	kxq, err := c.kernel.Covariance(c.x, xq)
	if err != nil {
		return nil, err
	}

	return c.varianceFromCross(kxq, xq)
}

// varianceFromCross finishes the variance computation from an n x m
// cross-covariance, consuming it as scratch space.
func (c *CompiledGP) varianceFromCross(kxq *matrix.Dense, xq *matrix.Dense) ([]float64, error) {
	kdiag, err := c.kernel.DiagonalCovariance(xq)
	if err != nil {
		return nil, err
	}

	// beta = L^-1 K*, then the diagonal of beta^T beta
	linalg.ParSolveLowerTriangularInPlace(c.chol, kxq)
	btb, err := linalg.ParTrMatMulDiag(kxq, kxq)
	if err != nil {
		return nil, err
	}

	floats.Sub(kdiag, btb)
	for i, v := range kdiag {
		if v < 0 {
			kdiag[i] = 0
		}
	}
	return kdiag, nil
}

// Covariance computes the full m x m posterior covariance over the query
// columns of xq (d x m). The result is symmetric positive-semi-definite to
// floating-point tolerance; unlike Variance, no clamping is applied.
func (c *CompiledGP) Covariance(xq *matrix.Dense) (*matrix.Dense, error) {
	kxq, err := c.kernel.Covariance(c.x, xq)
	if err != nil {
		return nil, err
	}

	kqq, err := c.kernel.Covariance(xq, xq)
	if err != nil {
		return nil, err
	}

	linalg.ParSolveLowerTriangularInPlace(c.chol, kxq)
	btb, err := linalg.ParTrMatMul(kxq, kxq)
	if err != nil {
		return nil, err
	}

	out := kqq.RawData()
	sub := btb.RawData()
	parallel.For(len(out), func(start, end int) {
		for i := start; i < end; i++ {
			out[i] -= sub[i]
		}
	})

	return kqq, nil
}

// Predict computes the posterior mean and per-point variance at each query
// column of xq in one call, sharing the cross-covariance between the two.
func (c *CompiledGP) Predict(xq *matrix.Dense) (mean, variance []float64, err error) {
	kxq, err := c.kernel.Covariance(c.x, xq)
	if err != nil {
		return nil, nil, err
	}

	mean, err = c.meanFromCross(kxq)
	if err != nil {
		return nil, nil, err
	}

	variance, err = c.varianceFromCross(kxq, xq)
	if err != nil {
		return nil, nil, err
	}

	return mean, variance, nil
}
