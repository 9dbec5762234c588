// Copyright 2025 bitjungle - Rune Mathisen. All rights reserved.
// Use of this source code is governed by the MIT license
// that can be found in the LICENSE file.
// The author respectfully requests that it not be used for
// military, warfare, or surveillance applications.

// Package testutil provides shared numerical assertion helpers for the gogp
// test suites.
package testutil

import (
	"math"
	"math/rand"
	"testing"

	"github.com/bitjungle/gogp/pkg/matrix"
)

const (
	// DefaultTolerance is the default numerical tolerance for floating point comparisons
	DefaultTolerance = 1e-10
	// LooseTolerance is used for less strict comparisons
	LooseTolerance = 1e-6
	// StrictTolerance is used for very strict comparisons
	StrictTolerance = 1e-14
)

// AlmostEqual checks if two float64 values are approximately equal within tolerance
func AlmostEqual(a, b, tolerance float64) bool {
	if math.IsNaN(a) && math.IsNaN(b) {
		return true
	}
	if math.IsNaN(a) || math.IsNaN(b) {
		return false
	}
	if math.IsInf(a, 1) && math.IsInf(b, 1) {
		return true
	}
	if math.IsInf(a, -1) && math.IsInf(b, -1) {
		return true
	}
	return math.Abs(a-b) <= tolerance
}

// AssertAlmostEqual checks if two values are almost equal and fails the test if not
func AssertAlmostEqual(t *testing.T, expected, actual, tolerance float64, message string) {
	t.Helper()
	if !AlmostEqual(expected, actual, tolerance) {
		t.Errorf("%s: expected %v, got %v (tolerance %v)", message, expected, actual, tolerance)
	}
}

// AssertSliceAlmostEqual checks if two float slices are almost equal element-wise
func AssertSliceAlmostEqual(t *testing.T, expected, actual []float64, tolerance float64, message string) {
	t.Helper()

	if len(expected) != len(actual) {
		t.Errorf("%s: length mismatch - expected %d, got %d", message, len(expected), len(actual))
		return
	}

	for i := range expected {
		if !AlmostEqual(expected[i], actual[i], tolerance) {
			t.Errorf("%s: element %d differs - expected %v, got %v (tolerance %v)",
				message, i, expected[i], actual[i], tolerance)
		}
	}
}

// AssertMatrixAlmostEqual checks if two matrices are almost equal element-wise
func AssertMatrixAlmostEqual(t *testing.T, expected, actual *matrix.Dense, tolerance float64, message string) {
	t.Helper()

	er, ec := expected.Dims()
	ar, ac := actual.Dims()
	if er != ar || ec != ac {
		t.Errorf("%s: shape mismatch - expected %dx%d, got %dx%d", message, er, ec, ar, ac)
		return
	}

	for j := 0; j < ec; j++ {
		for i := 0; i < er; i++ {
			if !AlmostEqual(expected.At(i, j), actual.At(i, j), tolerance) {
				t.Errorf("%s: element (%d,%d) differs - expected %v, got %v (tolerance %v)",
					message, i, j, expected.At(i, j), actual.At(i, j), tolerance)
			}
		}
	}
}

// RandomDense creates a rows x cols matrix with standard-normal entries
// drawn from rng.
func RandomDense(rng *rand.Rand, rows, cols int) *matrix.Dense {
	data := make([]float64, rows*cols)
	for i := range data {
		data[i] = rng.NormFloat64()
	}
	return matrix.NewDenseData(rows, cols, data)
}

// RandomLowerTriangular creates an n x n lower-triangular matrix with
// diagonal entries bounded away from zero and off-diagonal entries scaled
// down by n. The result is diagonally dominant, so forward substitution
// against it stays well-conditioned at any size (a random triangular matrix
// without the scaling has exponentially growing condition number).
func RandomLowerTriangular(rng *rand.Rand, n int) *matrix.Dense {
	m := matrix.NewDense(n, n)
	for j := 0; j < n; j++ {
		for i := j; i < n; i++ {
			if i == j {
				m.Set(i, j, 1.0+rng.Float64())
			} else {
				m.Set(i, j, rng.NormFloat64()/float64(n))
			}
		}
	}
	return m
}
