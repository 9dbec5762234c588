// Copyright 2025 bitjungle - Rune Mathisen. All rights reserved.
// Use of this source code is governed by the MIT license
// that can be found in the LICENSE file.

// Package linalg provides the parallel dense linear-algebra kernels the GP
// pipeline is built from: general and transpose matrix multiply (full and
// diagonal-only), column-parallel forward substitution, and an in-place
// parallel diagonal update.
//
// All functions operate on column-major matrix.Dense values. Parallelism is
// fork-join over flat buffers or column ranges on the ambient worker pool;
// every reduction runs in a pinned sequential order along the contraction
// axis, so results are reproducible regardless of worker count.
package linalg
