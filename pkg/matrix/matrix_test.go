// Copyright 2025 bitjungle - Rune Mathisen. All rights reserved.
// Use of this source code is governed by the MIT license
// that can be found in the LICENSE file.
// The author respectfully requests that it not be used for
// military, warfare, or surveillance applications.

package matrix

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestNewDenseZeroed(t *testing.T) {
	m := NewDense(3, 2)
	rows, cols := m.Dims()
	assert.Equal(t, 3, rows)
	assert.Equal(t, 2, cols)
	for _, v := range m.RawData() {
		assert.Zero(t, v)
	}
}

func TestNewDensePanicsOnBadShape(t *testing.T) {
	assert.Panics(t, func() { NewDense(0, 2) })
	assert.Panics(t, func() { NewDense(2, -1) })
	assert.Panics(t, func() { NewDenseData(2, 2, []float64{1, 2, 3}) })
}

func TestColumnMajorLayout(t *testing.T) {
	// Column-major: the flat data lists columns back to back.
	m := NewDenseData(2, 3, []float64{
		1, 4, // column 0
		2, 5, // column 1
		3, 6, // column 2
	})

	assert.Equal(t, 1.0, m.At(0, 0))
	assert.Equal(t, 4.0, m.At(1, 0))
	assert.Equal(t, 2.0, m.At(0, 1))
	assert.Equal(t, 6.0, m.At(1, 2))

	assert.Equal(t, []float64{2, 5}, m.Col(1))
}

func TestColIsAView(t *testing.T) {
	m := NewDense(2, 2)
	m.Col(1)[0] = 42
	assert.Equal(t, 42.0, m.At(0, 1))
}

func TestSetAndAt(t *testing.T) {
	m := NewDense(3, 3)
	m.Set(2, 1, 7.5)
	assert.Equal(t, 7.5, m.At(2, 1))
	assert.Panics(t, func() { m.At(3, 0) })
	assert.Panics(t, func() { m.Set(0, 3, 1) })
}

func TestClone(t *testing.T) {
	m := NewDenseData(2, 2, []float64{1, 2, 3, 4})
	c := m.Clone()
	c.Set(0, 0, 99)
	assert.Equal(t, 1.0, m.At(0, 0))
	assert.Equal(t, 99.0, c.At(0, 0))
}

func TestTranspose(t *testing.T) {
	m := NewDenseData(2, 3, []float64{1, 4, 2, 5, 3, 6})
	tr := m.Transpose()
	rows, cols := tr.Dims()
	require.Equal(t, 3, rows)
	require.Equal(t, 2, cols)
	for j := 0; j < 3; j++ {
		for i := 0; i < 2; i++ {
			assert.Equal(t, m.At(i, j), tr.At(j, i))
		}
	}
}

func TestEqualApprox(t *testing.T) {
	a := NewDenseData(2, 2, []float64{1, 2, 3, 4})
	b := NewDenseData(2, 2, []float64{1, 2, 3, 4 + 1e-12})
	c := NewDenseData(2, 2, []float64{1, 2, 3, 5})

	assert.True(t, a.EqualApprox(b, 1e-9))
	assert.False(t, a.EqualApprox(c, 1e-9))
	assert.False(t, a.EqualApprox(NewDense(2, 3), 1e-9))
}

func TestGonumRoundTrip(t *testing.T) {
	m := NewDenseData(2, 3, []float64{1, 4, 2, 5, 3, 6})

	g := m.ToGonum()
	rows, cols := g.Dims()
	require.Equal(t, 2, rows)
	require.Equal(t, 3, cols)
	assert.Equal(t, 5.0, g.At(1, 1))

	back := FromGonum(g)
	assert.True(t, m.EqualApprox(back, 0))
}

func TestFromGonumTransposed(t *testing.T) {
	g := mat.NewDense(2, 2, []float64{1, 2, 3, 4})
	m := FromGonum(g.T())
	assert.Equal(t, 1.0, m.At(0, 0))
	assert.Equal(t, 3.0, m.At(0, 1))
	assert.Equal(t, 2.0, m.At(1, 0))
}
