// Copyright 2025 bitjungle - Rune Mathisen. All rights reserved.
// Use of this source code is governed by the MIT license
// that can be found in the LICENSE file.
// The author respectfully requests that it not be used for
// military, warfare, or surveillance applications.

package matrix

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Dense is a dense column-major matrix of float64 values.
// The element (i, j) lives at data[j*rows+i], so each column is a contiguous
// slice of the backing buffer.
type Dense struct {
	rows, cols int
	data       []float64
}

// NewDense creates a rows x cols Dense matrix initialized to zeros.
// It panics if either dimension is not positive.
func NewDense(rows, cols int) *Dense {
	if rows <= 0 || cols <= 0 {
		panic(fmt.Sprintf("matrix: invalid dimensions %dx%d", rows, cols))
	}
	return &Dense{
		rows: rows,
		cols: cols,
		data: make([]float64, rows*cols),
	}
}

// NewDenseData creates a rows x cols Dense matrix backed by data, which must
// hold exactly rows*cols elements in column-major order. The slice is adopted,
// not copied.
func NewDenseData(rows, cols int, data []float64) *Dense {
	if rows <= 0 || cols <= 0 {
		panic(fmt.Sprintf("matrix: invalid dimensions %dx%d", rows, cols))
	}
	if len(data) != rows*cols {
		panic(fmt.Sprintf("matrix: data length %d does not match dimensions %dx%d", len(data), rows, cols))
	}
	return &Dense{rows: rows, cols: cols, data: data}
}

// NewColumnVector creates an n x 1 Dense matrix backed by data. The slice is
// adopted, not copied.
func NewColumnVector(data []float64) *Dense {
	return NewDenseData(len(data), 1, data)
}

// Dims returns the number of rows and columns.
func (m *Dense) Dims() (rows, cols int) {
	return m.rows, m.cols
}

// Rows returns the number of rows in the matrix.
func (m *Dense) Rows() int {
	return m.rows
}

// Cols returns the number of columns in the matrix.
func (m *Dense) Cols() int {
	return m.cols
}

// Shape returns the dimensions as a (rows, cols) pair for error reporting.
func (m *Dense) Shape() (int, int) {
	return m.rows, m.cols
}

// At returns the element at row i, column j.
func (m *Dense) At(i, j int) float64 {
	m.checkBounds(i, j)
	return m.data[j*m.rows+i]
}

// Set stores v at row i, column j.
func (m *Dense) Set(i, j int, v float64) {
	m.checkBounds(i, j)
	m.data[j*m.rows+i] = v
}

func (m *Dense) checkBounds(i, j int) {
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		panic(fmt.Sprintf("matrix: index (%d,%d) out of range for %dx%d matrix", i, j, m.rows, m.cols))
	}
}

// Col returns column j as a contiguous view into the backing buffer.
// Mutating the returned slice mutates the matrix.
func (m *Dense) Col(j int) []float64 {
	if j < 0 || j >= m.cols {
		panic(fmt.Sprintf("matrix: column %d out of range for %dx%d matrix", j, m.rows, m.cols))
	}
	start, end := SliceBounds(j, m.rows)
	return m.data[start:end]
}

// RawData returns the column-major backing slice. Mutating it mutates the
// matrix.
func (m *Dense) RawData() []float64 {
	return m.data
}

// Clone returns a deep copy of the matrix.
func (m *Dense) Clone() *Dense {
	data := make([]float64, len(m.data))
	copy(data, m.data)
	return &Dense{rows: m.rows, cols: m.cols, data: data}
}

// Transpose returns a new matrix holding the transpose of m.
func (m *Dense) Transpose() *Dense {
	t := NewDense(m.cols, m.rows)
	for j := 0; j < m.cols; j++ {
		col := m.Col(j)
		for i, v := range col {
			t.data[i*t.rows+j] = v
		}
	}
	return t
}

// EqualApprox reports whether m and n have the same shape and all elements
// agree within tol. NaN elements are never equal.
func (m *Dense) EqualApprox(n *Dense, tol float64) bool {
	if m.rows != n.rows || m.cols != n.cols {
		return false
	}
	for i, v := range m.data {
		if math.Abs(v-n.data[i]) > tol {
			return false
		}
	}
	return true
}

// ToGonum converts the matrix to a gonum Dense with the same (rows, cols)
// shape. The data is copied into gonum's row-major layout.
func (m *Dense) ToGonum() *mat.Dense {
	d := mat.NewDense(m.rows, m.cols, nil)
	for j := 0; j < m.cols; j++ {
		col := m.Col(j)
		for i, v := range col {
			d.Set(i, j, v)
		}
	}
	return d
}

// FromGonum converts a gonum matrix into a column-major Dense with the same
// shape. The data is copied.
func FromGonum(d mat.Matrix) *Dense {
	rows, cols := d.Dims()
	m := NewDense(rows, cols)
	for j := 0; j < cols; j++ {
		col := m.Col(j)
		for i := range col {
			col[i] = d.At(i, j)
		}
	}
	return m
}
