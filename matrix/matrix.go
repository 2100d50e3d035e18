// Package matrix provides dense float64 linear algebra for the
// numeric collaborators: determinants, inverses, and linear-system
// solving via Gaussian elimination with partial pivoting.
package matrix

import (
	"fmt"
	"math"
	"strings"
)

// singularTolerance is the pivot magnitude below which elimination
// treats the matrix as singular.
const singularTolerance = 1e-12

// Matrix is a dense row-major matrix of float64 entries.
type Matrix struct {
	rows, cols int
	entries    []float64
}

// New returns a zero-filled rows×cols matrix. It panics when either
// dimension is not positive; dimensions are construction-time
// programmer input, not runtime data.
func New(rows, cols int) *Matrix {
	if rows <= 0 || cols <= 0 {
		panic(fmt.Sprintf("matrix: invalid dimensions %dx%d", rows, cols))
	}
	return &Matrix{rows: rows, cols: cols, entries: make([]float64, rows*cols)}
}

// FromRows builds a matrix from row slices. All rows must be the same
// non-zero length.
func FromRows(rows [][]float64) (*Matrix, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("matrix: empty rows")
	}
	cols := len(rows[0])
	m := New(len(rows), cols)
	for i, r := range rows {
		if len(r) != cols {
			return nil, fmt.Errorf("matrix: row %d has %d entries, want %d", i, len(r), cols)
		}
		copy(m.entries[i*cols:(i+1)*cols], r)
	}
	return m, nil
}

// Identity returns the n×n identity matrix.
func Identity(n int) *Matrix {
	m := New(n, n)
	for i := 0; i < n; i++ {
		m.entries[i*n+i] = 1
	}
	return m
}

func (m *Matrix) checkBounds(row, col int) {
	if row < 0 || row >= m.rows || col < 0 || col >= m.cols {
		panic(fmt.Sprintf("matrix: index (%d,%d) out of range for %dx%d", row, col, m.rows, m.cols))
	}
}

// At returns the entry at (row, col).
func (m *Matrix) At(row, col int) float64 {
	m.checkBounds(row, col)
	return m.entries[row*m.cols+col]
}

// Set stores v at (row, col).
func (m *Matrix) Set(row, col int, v float64) {
	m.checkBounds(row, col)
	m.entries[row*m.cols+col] = v
}

// Rows reports the row count.
func (m *Matrix) Rows() int { return m.rows }

// Cols reports the column count.
func (m *Matrix) Cols() int { return m.cols }

// Clone returns an independent copy.
func (m *Matrix) Clone() *Matrix {
	out := New(m.rows, m.cols)
	copy(out.entries, m.entries)
	return out
}

func (m *Matrix) String() string {
	var b strings.Builder
	for i := 0; i < m.rows; i++ {
		b.WriteString("[")
		for j := 0; j < m.cols; j++ {
			if j > 0 {
				b.WriteString(" ")
			}
			fmt.Fprintf(&b, "%g", m.At(i, j))
		}
		b.WriteString("]")
		if i < m.rows-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

// Add returns m + other.
func (m *Matrix) Add(other *Matrix) (*Matrix, error) {
	if m.rows != other.rows || m.cols != other.cols {
		return nil, fmt.Errorf("matrix: add dimension mismatch %dx%d vs %dx%d", m.rows, m.cols, other.rows, other.cols)
	}
	out := New(m.rows, m.cols)
	for i := range m.entries {
		out.entries[i] = m.entries[i] + other.entries[i]
	}
	return out, nil
}

// Sub returns m - other.
func (m *Matrix) Sub(other *Matrix) (*Matrix, error) {
	if m.rows != other.rows || m.cols != other.cols {
		return nil, fmt.Errorf("matrix: sub dimension mismatch %dx%d vs %dx%d", m.rows, m.cols, other.rows, other.cols)
	}
	out := New(m.rows, m.cols)
	for i := range m.entries {
		out.entries[i] = m.entries[i] - other.entries[i]
	}
	return out, nil
}

// Mul returns the matrix product m * other.
func (m *Matrix) Mul(other *Matrix) (*Matrix, error) {
	if m.cols != other.rows {
		return nil, fmt.Errorf("matrix: mul dimension mismatch %dx%d * %dx%d", m.rows, m.cols, other.rows, other.cols)
	}
	out := New(m.rows, other.cols)
	for i := 0; i < m.rows; i++ {
		for k := 0; k < m.cols; k++ {
			a := m.entries[i*m.cols+k]
			if a == 0 {
				continue
			}
			for j := 0; j < other.cols; j++ {
				out.entries[i*other.cols+j] += a * other.entries[k*other.cols+j]
			}
		}
	}
	return out, nil
}

// Scale returns m with every entry multiplied by s.
func (m *Matrix) Scale(s float64) *Matrix {
	out := New(m.rows, m.cols)
	for i, v := range m.entries {
		out.entries[i] = v * s
	}
	return out
}

// Transpose returns the transpose of m.
func (m *Matrix) Transpose() *Matrix {
	out := New(m.cols, m.rows)
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			out.entries[j*m.rows+i] = m.entries[i*m.cols+j]
		}
	}
	return out
}

// Det computes the determinant by elimination with partial pivoting.
func (m *Matrix) Det() (float64, error) {
	if m.rows != m.cols {
		return 0, fmt.Errorf("matrix: determinant of non-square %dx%d", m.rows, m.cols)
	}
	n := m.rows
	work := m.Clone()
	det := 1.0
	for col := 0; col < n; col++ {
		pivot := col
		for r := col + 1; r < n; r++ {
			if math.Abs(work.At(r, col)) > math.Abs(work.At(pivot, col)) {
				pivot = r
			}
		}
		if math.Abs(work.At(pivot, col)) < singularTolerance {
			return 0, nil
		}
		if pivot != col {
			work.swapRows(pivot, col)
			det = -det
		}
		p := work.At(col, col)
		det *= p
		for r := col + 1; r < n; r++ {
			factor := work.At(r, col) / p
			if factor == 0 {
				continue
			}
			for c := col; c < n; c++ {
				work.Set(r, c, work.At(r, c)-factor*work.At(col, c))
			}
		}
	}
	return det, nil
}

// Inverse computes the inverse by Gauss-Jordan elimination on the
// augmented [m | I] system.
func (m *Matrix) Inverse() (*Matrix, error) {
	if m.rows != m.cols {
		return nil, fmt.Errorf("matrix: inverse of non-square %dx%d", m.rows, m.cols)
	}
	n := m.rows
	work := m.Clone()
	inv := Identity(n)
	for col := 0; col < n; col++ {
		pivot := col
		for r := col + 1; r < n; r++ {
			if math.Abs(work.At(r, col)) > math.Abs(work.At(pivot, col)) {
				pivot = r
			}
		}
		if math.Abs(work.At(pivot, col)) < singularTolerance {
			return nil, fmt.Errorf("matrix: singular, no inverse")
		}
		if pivot != col {
			work.swapRows(pivot, col)
			inv.swapRows(pivot, col)
		}
		p := work.At(col, col)
		for c := 0; c < n; c++ {
			work.Set(col, c, work.At(col, c)/p)
			inv.Set(col, c, inv.At(col, c)/p)
		}
		for r := 0; r < n; r++ {
			if r == col {
				continue
			}
			factor := work.At(r, col)
			if factor == 0 {
				continue
			}
			for c := 0; c < n; c++ {
				work.Set(r, c, work.At(r, c)-factor*work.At(col, c))
				inv.Set(r, c, inv.At(r, c)-factor*inv.At(col, c))
			}
		}
	}
	return inv, nil
}

// Solve solves m*x = b for a square m, returning x. The right-hand
// side length must equal the row count.
func (m *Matrix) Solve(b []float64) ([]float64, error) {
	if m.rows != m.cols {
		return nil, fmt.Errorf("matrix: solve needs a square matrix, got %dx%d", m.rows, m.cols)
	}
	if len(b) != m.rows {
		return nil, fmt.Errorf("matrix: rhs length %d, want %d", len(b), m.rows)
	}
	n := m.rows
	work := m.Clone()
	rhs := make([]float64, n)
	copy(rhs, b)
	for col := 0; col < n; col++ {
		pivot := col
		for r := col + 1; r < n; r++ {
			if math.Abs(work.At(r, col)) > math.Abs(work.At(pivot, col)) {
				pivot = r
			}
		}
		if math.Abs(work.At(pivot, col)) < singularTolerance {
			return nil, fmt.Errorf("matrix: singular system")
		}
		if pivot != col {
			work.swapRows(pivot, col)
			rhs[pivot], rhs[col] = rhs[col], rhs[pivot]
		}
		p := work.At(col, col)
		for r := col + 1; r < n; r++ {
			factor := work.At(r, col) / p
			if factor == 0 {
				continue
			}
			for c := col; c < n; c++ {
				work.Set(r, c, work.At(r, c)-factor*work.At(col, c))
			}
			rhs[r] -= factor * rhs[col]
		}
	}
	x := make([]float64, n)
	for i := n - 1; i >= 0; i-- {
		sum := rhs[i]
		for j := i + 1; j < n; j++ {
			sum -= work.At(i, j) * x[j]
		}
		x[i] = sum / work.At(i, i)
	}
	return x, nil
}

func (m *Matrix) swapRows(a, b int) {
	for c := 0; c < m.cols; c++ {
		m.entries[a*m.cols+c], m.entries[b*m.cols+c] = m.entries[b*m.cols+c], m.entries[a*m.cols+c]
	}
}
