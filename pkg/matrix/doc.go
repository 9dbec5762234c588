// Copyright 2025 bitjungle - Rune Mathisen. All rights reserved.
// Use of this source code is governed by the MIT license
// that can be found in the LICENSE file.

// Package matrix provides the dense column-major matrix type used throughout
// the gogp library, together with the flat-buffer indexing helpers that the
// parallel fills are built on.
//
// # Orientation
//
// Every matrix crossing the gogp API boundary is (rows x columns) with
// COLUMNS AS OBSERVATIONS: a design matrix holding n points in d dimensions
// has shape d x n, and observation i is Col(i). Transposing this convention
// silently produces wrong answers, not errors — the shapes often still line
// up. Storage is column-major, so each observation is a contiguous slice.
//
// # Interop
//
// FromGonum and Dense.ToGonum convert to and from gonum matrices; gonum's
// mat.Dense is row-major, so conversions copy.
package matrix
