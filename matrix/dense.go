// SPDX-License-Identifier: MIT

// Package matrix provides core linear algebra primitives over exact rationals.
// Dense is a concrete, row-major implementation of the Matrix interface,
// storing elements in a flat slice of *big.Rat (never nil).
package matrix

import (
	"fmt"
	"math/big"
	"strings"
)

// denseErrorf wraps an underlying error with Dense method context.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a row-major matrix of *big.Rat values.
// r is rows, c is columns, and data holds r*c elements in row-major order.
type Dense struct {
	r, c int        // number of rows and columns
	data []*big.Rat // flat backing storage, length == r*c, no nil cells
}

// NewDense creates an r×c Dense matrix initialized to zeros.
// Stage 1 (Validate): ensure rows and cols > 0.
// Stage 2 (Prepare): allocate one zero *big.Rat per cell.
// Complexity: O(r*c) time and memory.
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("NewDense(%d,%d): %w", rows, cols, ErrInvalidDimensions)
	}
	data := make([]*big.Rat, rows*cols)
	for i := range data {
		data[i] = new(big.Rat)
	}

	return &Dense{r: rows, c: cols, data: data}, nil
}

// NewDenseFromRows builds a Dense from a rectangular [][]*big.Rat, copying
// every value.
//
// Errors:
//   - ErrInvalidDimensions if rows is empty or the first row is empty.
//   - ErrDimensionMismatch if rows are ragged.
//   - ErrNilEntry if any cell is nil.
func NewDenseFromRows(rows [][]*big.Rat) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("NewDenseFromRows: %w", ErrInvalidDimensions)
	}
	m, err := NewDense(len(rows), len(rows[0]))
	if err != nil {
		return nil, err
	}
	for i, row := range rows {
		if len(row) != m.c {
			return nil, fmt.Errorf("NewDenseFromRows: row %d has %d cols, want %d: %w",
				i, len(row), m.c, ErrDimensionMismatch)
		}
		for j, v := range row {
			if v == nil {
				return nil, denseErrorf("FromRows", i, j, ErrNilEntry)
			}
			m.data[i*m.c+j].Set(v)
		}
	}

	return m, nil
}

// NewDenseFromInts is a convenience over NewDenseFromRows for integer tables.
func NewDenseFromInts(rows [][]int64) (*Dense, error) {
	rr := make([][]*big.Rat, len(rows))
	for i, row := range rows {
		rr[i] = make([]*big.Rat, len(row))
		for j, v := range row {
			rr[i][j] = new(big.Rat).SetInt64(v)
		}
	}

	return NewDenseFromRows(rr)
}

// Rows returns the number of rows in the matrix.
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns in the matrix.
func (m *Dense) Cols() int { return m.c }

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
func (m *Dense) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}

	return row*m.c + col, nil
}

// At retrieves a copy of the element at (row, col).
// Complexity: O(size of the value).
func (m *Dense) At(row, col int) (*big.Rat, error) {
	idx, err := m.indexOf("At", row, col)
	if err != nil {
		return nil, err
	}

	return new(big.Rat).Set(m.data[idx]), nil
}

// Set assigns a copy of v at (row, col).
func (m *Dense) Set(row, col int, v *big.Rat) error {
	idx, err := m.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	if v == nil {
		return denseErrorf("Set", row, col, ErrNilEntry)
	}
	m.data[idx].Set(v)

	return nil
}

// Clone returns a deep copy of the Dense matrix.
// Complexity: O(r*c) time and memory for copy.
func (m *Dense) Clone() Matrix {
	return m.clone()
}

func (m *Dense) clone() *Dense {
	data := make([]*big.Rat, len(m.data))
	for i, v := range m.data {
		data[i] = new(big.Rat).Set(v)
	}

	return &Dense{r: m.r, c: m.c, data: data}
}

// row returns the live slice of row i (internal kernels only).
func (m *Dense) row(i int) []*big.Rat {
	return m.data[i*m.c : (i+1)*m.c]
}

// swapRows exchanges rows i and j in place.
func (m *Dense) swapRows(i, j int) {
	if i == j {
		return
	}
	ri, rj := m.row(i), m.row(j)
	for k := range ri {
		ri[k], rj[k] = rj[k], ri[k]
	}
}

// String implements fmt.Stringer for easy debugging.
// Values print in lowest terms, integers without a denominator.
func (m *Dense) String() string {
	var sb strings.Builder
	for i := 0; i < m.r; i++ {
		sb.WriteByte('[')
		for j := 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(m.data[i*m.c+j].RatString())
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}
