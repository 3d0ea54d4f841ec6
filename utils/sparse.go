package utils

import (
	"fmt"

	"github.com/james-bowman/sparse"
	"github.com/james-bowman/sparse/blas"
	"gonum.org/v1/gonum/mat"
)

type DOK struct {
	M *sparse.DOK
}

func NewDOK(nr, nc int) (R DOK) {
	R = DOK{sparse.NewDOK(nr, nc)}
	return
}

// Dims, At and T minimally satisfy the mat.Matrix interface.
func (m DOK) Dims() (r, c int)    { return m.M.Dims() }
func (m DOK) At(i, j int) float64 { return m.M.At(i, j) }
func (m DOK) T() mat.Matrix       { return m.M.T() }

func (m DOK) Set(i, j int, val float64) { m.M.Set(i, j, val) }

// Add accumulates val onto the existing entry, matching triplet
// construction semantics where duplicate coordinates sum
func (m DOK) Add(i, j int, val float64) {
	m.M.Set(i, j, m.M.At(i, j)+val)
}

func (m DOK) ToCSR() CSR {
	return CSR{m.M.ToCSR()}
}

type CSR struct {
	M *sparse.CSR
}

// Dims, At and T minimally satisfy the mat.Matrix interface.
func (m CSR) Dims() (r, c int)              { return m.M.Dims() }
func (m CSR) At(i, j int) float64           { return m.M.At(i, j) }
func (m CSR) T() mat.Matrix                 { return m.M.T() }
func (m CSR) RawMatrix() *blas.SparseMatrix { return m.M.RawMatrix() }

func (m CSR) NNZ() int { return m.M.NNZ() }

func (m CSR) DoNonZero(fn func(i, j int, v float64)) { m.M.DoNonZero(fn) }

// MulVec applies the operator to a site- or edge-indexed field
func (m CSR) MulVec(x []float64) (b []float64) {
	var (
		nr, nc = m.Dims()
	)
	if len(x) != nc {
		panic(fmt.Errorf("dimension mismatch: %d columns, %d vector elements", nc, len(x)))
	}
	b = make([]float64, nr)
	m.M.DoNonZero(func(i, j int, v float64) {
		b[i] += v * x[j]
	})
	return
}

func (m CSR) ToDense() (R *mat.Dense) {
	var (
		nr, nc = m.Dims()
	)
	R = mat.NewDense(nr, nc, nil)
	m.M.DoNonZero(func(i, j int, v float64) {
		R.Set(i, j, v)
	})
	return
}

// RowSums returns the sum along each row, a cheap check of the discrete
// conservation property for diffusion operators
func (m CSR) RowSums() (sums []float64) {
	nr, _ := m.Dims()
	sums = make([]float64, nr)
	m.M.DoNonZero(func(i, j int, v float64) {
		sums[i] += v
	})
	return
}

func (m CSR) IsSymmetric(tol float64) bool {
	var (
		nr, nc = m.Dims()
	)
	if nr != nc {
		return false
	}
	sym := true
	m.M.DoNonZero(func(i, j int, v float64) {
		if d := v - m.M.At(j, i); d > tol || d < -tol {
			sym = false
		}
	})
	return sym
}
