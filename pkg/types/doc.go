// Copyright 2025 bitjungle - Rune Mathisen. All rights reserved.
// Use of this source code is governed by the MIT license
// that can be found in the LICENSE file.

// Package types provides the shared error taxonomy for the gogp library.
//
// All failures surfaced by the public API are *GPError values tagged with an
// ErrorType:
//
//   - ErrShapeMismatch: operand dimensions are inconsistent. The error
//     carries the observed shapes in operand order.
//   - ErrNonPositiveDefinite: the training covariance matrix K + noise*I
//     could not be Cholesky-factorized. Raised only during compilation.
//   - ErrValidation: invalid constructor arguments (e.g. negative noise).
//
// Errors are returned to the caller, never logged or retried internally.
// Numerically degenerate kernel parameters (zero length scales, NaN inputs)
// are deliberately not errors; they propagate as NaN outputs.
package types
