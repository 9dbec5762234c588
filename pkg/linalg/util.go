// Copyright 2025 bitjungle - Rune Mathisen. All rights reserved.
// Use of this source code is governed by the MIT license
// that can be found in the LICENSE file.
// The author respectfully requests that it not be used for
// military, warfare, or surveillance applications.

package linalg

import (
	"github.com/bitjungle/gogp/internal/parallel"
	"github.com/bitjungle/gogp/pkg/matrix"
)

// ParAddDiagonal adds s to every diagonal element of the square matrix m,
// in place, in parallel. No two workers touch the same index, so the update
// is race-free without locks. Behavior is undefined when m is not square.
func ParAddDiagonal(m *matrix.Dense, s float64) {
	rows, _ := m.Dims()
	data := m.RawData()

	parallel.For(rows, func(start, end int) {
		for i := start; i < end; i++ {
			data[i*rows+i] += s
		}
	})
}
