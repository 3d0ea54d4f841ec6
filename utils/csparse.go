package utils

import (
	"fmt"
	"math/cmplx"
	"sort"

	"gonum.org/v1/gonum/mat"
)

// CTriplets accumulates (row, col, value) coordinate entries for a complex
// sparse matrix. Neither gonum nor james-bowman/sparse provide complex
// sparse storage, so the compressed form lives here alongside the real
// wrappers.
type CTriplets struct {
	nr, nc int
	rows   []int
	cols   []int
	vals   []complex128
}

func NewCTriplets(nr, nc int) (T *CTriplets) {
	T = &CTriplets{nr: nr, nc: nc}
	return
}

func (t *CTriplets) Append(i, j int, val complex128) {
	if i < 0 || i >= t.nr || j < 0 || j >= t.nc {
		panic(fmt.Errorf("triplet index (%d,%d) out of bounds for %dx%d matrix",
			i, j, t.nr, t.nc))
	}
	t.rows = append(t.rows, i)
	t.cols = append(t.cols, j)
	t.vals = append(t.vals, val)
}

func (t *CTriplets) Len() int { return len(t.vals) }

// ToCSRC compresses the triplets, summing duplicate coordinates the way
// scipy-style coordinate construction does
func (t *CTriplets) ToCSRC() (m *CSRC) {
	var (
		nnz  = len(t.vals)
		perm = make([]int, nnz)
	)
	for i := range perm {
		perm[i] = i
	}
	sort.SliceStable(perm, func(a, b int) bool {
		pa, pb := perm[a], perm[b]
		if t.rows[pa] != t.rows[pb] {
			return t.rows[pa] < t.rows[pb]
		}
		return t.cols[pa] < t.cols[pb]
	})
	m = &CSRC{
		nr:     t.nr,
		nc:     t.nc,
		indptr: make([]int, t.nr+1),
	}
	lastRow, lastCol := -1, -1
	for _, p := range perm {
		i, j, v := t.rows[p], t.cols[p], t.vals[p]
		if i == lastRow && j == lastCol {
			m.data[len(m.data)-1] += v
			continue
		}
		m.ind = append(m.ind, j)
		m.data = append(m.data, v)
		for r := lastRow + 1; r <= i; r++ {
			m.indptr[r] = len(m.data) - 1
		}
		lastRow, lastCol = i, j
	}
	for r := lastRow + 1; r <= t.nr; r++ {
		m.indptr[r] = len(m.data)
	}
	return
}

// CSRC is a compressed sparse row matrix over complex128, immutable once
// built. It satisfies gonum's mat.CMatrix.
type CSRC struct {
	nr, nc int
	indptr []int
	ind    []int
	data   []complex128
}

func (m *CSRC) Dims() (r, c int) { return m.nr, m.nc }

func (m *CSRC) At(i, j int) complex128 {
	if i < 0 || i >= m.nr || j < 0 || j >= m.nc {
		panic(fmt.Errorf("index (%d,%d) out of bounds for %dx%d matrix", i, j, m.nr, m.nc))
	}
	for p := m.indptr[i]; p < m.indptr[i+1]; p++ {
		if m.ind[p] == j {
			return m.data[p]
		}
	}
	return 0
}

func (m *CSRC) H() mat.CMatrix { return hCSRC{m} }
func (m *CSRC) T() mat.CMatrix { return tCSRC{m} }

func (m *CSRC) NNZ() int { return len(m.data) }

func (m *CSRC) DoNonZero(fn func(i, j int, v complex128)) {
	for i := 0; i < m.nr; i++ {
		for p := m.indptr[i]; p < m.indptr[i+1]; p++ {
			fn(i, m.ind[p], m.data[p])
		}
	}
}

// MulVec applies the operator to a site- or edge-indexed complex field
func (m *CSRC) MulVec(x []complex128) (b []complex128) {
	if len(x) != m.nc {
		panic(fmt.Errorf("dimension mismatch: %d columns, %d vector elements", m.nc, len(x)))
	}
	b = make([]complex128, m.nr)
	for i := 0; i < m.nr; i++ {
		for p := m.indptr[i]; p < m.indptr[i+1]; p++ {
			b[i] += m.data[p] * x[m.ind[p]]
		}
	}
	return
}

// IsReal reports whether every stored value has imaginary magnitude
// within tol
func (m *CSRC) IsReal(tol float64) bool {
	for _, v := range m.data {
		if im := imag(v); im > tol || im < -tol {
			return false
		}
	}
	return true
}

// Real converts to the real CSR wrapper, discarding imaginary parts. The
// caller is responsible for checking IsReal first where that matters.
func (m *CSRC) Real() (R CSR) {
	d := NewDOK(m.nr, m.nc)
	m.DoNonZero(func(i, j int, v complex128) {
		d.Add(i, j, real(v))
	})
	R = d.ToCSR()
	return
}

func (m *CSRC) ToCDense() (R *mat.CDense) {
	R = mat.NewCDense(m.nr, m.nc, nil)
	m.DoNonZero(func(i, j int, v complex128) {
		R.Set(i, j, v)
	})
	return
}

// IsHermitian reports whether m equals its conjugate transpose within tol
func (m *CSRC) IsHermitian(tol float64) bool {
	if m.nr != m.nc {
		return false
	}
	herm := true
	m.DoNonZero(func(i, j int, v complex128) {
		if cmplx.Abs(v-cmplx.Conj(m.At(j, i))) > tol {
			herm = false
		}
	})
	return herm
}

// hCSRC and tCSRC are lazy conjugate-transpose and transpose views.

type hCSRC struct{ m *CSRC }

func (h hCSRC) Dims() (r, c int)       { r, c = h.m.nc, h.m.nr; return }
func (h hCSRC) At(i, j int) complex128 { return cmplx.Conj(h.m.At(j, i)) }
func (h hCSRC) H() mat.CMatrix         { return h.m }
func (h hCSRC) T() mat.CMatrix         { return conjCSRC{h.m} }

type tCSRC struct{ m *CSRC }

func (t tCSRC) Dims() (r, c int)       { r, c = t.m.nc, t.m.nr; return }
func (t tCSRC) At(i, j int) complex128 { return t.m.At(j, i) }
func (t tCSRC) H() mat.CMatrix         { return conjCSRC{t.m} }
func (t tCSRC) T() mat.CMatrix         { return t.m }

type conjCSRC struct{ m *CSRC }

func (c conjCSRC) Dims() (r, co int)      { return c.m.Dims() }
func (c conjCSRC) At(i, j int) complex128 { return cmplx.Conj(c.m.At(i, j)) }
func (c conjCSRC) H() mat.CMatrix         { return tCSRC{c.m} }
func (c conjCSRC) T() mat.CMatrix         { return hCSRC{c.m} }
