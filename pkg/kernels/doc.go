// Copyright 2025 bitjungle - Rune Mathisen. All rights reserved.
// Use of this source code is governed by the MIT license
// that can be found in the LICENSE file.

// Package kernels defines the covariance-function contract used by the GP
// pipeline and its reference implementation, the anisotropic RBF kernel.
//
// A kernel exposes four bulk builders over column-observation matrices: the
// full cross-covariance, an in-place variant, a triangular-only self
// covariance (half the evaluations, for the Cholesky path), and the bare
// diagonal (for per-point predictive variance). The full, in-place and
// triangular fills run in parallel over the flat output buffer.
package kernels
