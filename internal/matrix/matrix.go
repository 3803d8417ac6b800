// Package matrix provides a small row-major dense matrix. It is a numerical
// consumer for the check layer, not a linear algebra library: every accessor
// validates its indices and every shape-changing operation validates its
// dimensions.
package matrix

import (
	"github.com/mwichro/dealab/internal/exc"
)

type Dense struct {
	rows, cols int
	data       []float64
}

// New returns a zero-initialized rows-by-cols matrix.
func New(rows, cols int) *Dense {
	exc.Assert(rows >= 0, "rows >= 0", exc.LowerRange(rows, 0))
	exc.Assert(cols >= 0, "cols >= 0", exc.LowerRange(cols, 0))
	return &Dense{rows: rows, cols: cols, data: make([]float64, rows*cols)}
}

func (m *Dense) Rows() int { return m.rows }
func (m *Dense) Cols() int { return m.cols }

func (m *Dense) At(i, j int) float64 {
	exc.AssertIndexRange(i, m.rows)
	exc.AssertIndexRange(j, m.cols)
	return m.data[i*m.cols+j]
}

func (m *Dense) Set(i, j int, v float64) {
	exc.AssertIndexRange(i, m.rows)
	exc.AssertIndexRange(j, m.cols)
	exc.AssertIsFinite(v)
	m.data[i*m.cols+j] = v
}

// Fill sets every entry to f(i, j).
func (m *Dense) Fill(f func(i, j int) float64) {
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			m.data[i*m.cols+j] = f(i, j)
		}
	}
}

// Add accumulates other into m entry by entry. Shapes must agree.
func (m *Dense) Add(other *Dense) {
	exc.AssertDimension(m.rows, other.rows)
	exc.AssertDimension(m.cols, other.cols)
	for k := range m.data {
		m.data[k] += other.data[k]
	}
}

// Trace returns the sum of the diagonal. The matrix must be square.
func (m *Dense) Trace() float64 {
	exc.AssertThrow(m.rows == m.cols, "m.Rows() == m.Cols()",
		exc.DimensionMismatch(m.rows, m.cols))
	sum := 0.0
	for i := 0; i < m.rows; i++ {
		sum += m.data[i*m.cols+i]
	}
	return sum
}
