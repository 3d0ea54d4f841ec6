package utils

import (
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCTriplets(t *testing.T) {
	// Duplicate coordinates sum during compression
	{
		tr := NewCTriplets(3, 3)
		tr.Append(0, 1, 1+1i)
		tr.Append(0, 1, 2)
		tr.Append(2, 0, -1i)
		tr.Append(1, 1, 5)
		m := tr.ToCSRC()
		assert.Equal(t, 3, m.NNZ())
		assert.Equal(t, 3+1i, m.At(0, 1))
		assert.Equal(t, complex(5, 0), m.At(1, 1))
		assert.Equal(t, -1i, m.At(2, 0))
		assert.Equal(t, complex(0, 0), m.At(0, 0))
	}
	// Empty matrix
	{
		m := NewCTriplets(2, 2).ToCSRC()
		assert.Equal(t, 0, m.NNZ())
		assert.Equal(t, complex(0, 0), m.At(1, 1))
	}
	// Out of bounds append panics
	{
		tr := NewCTriplets(1, 1)
		assert.Panics(t, func() { tr.Append(1, 0, 1) })
	}
}

func TestCSRC(t *testing.T) {
	tr := NewCTriplets(2, 3)
	tr.Append(0, 0, 1)
	tr.Append(0, 2, 2i)
	tr.Append(1, 1, -3)
	m := tr.ToCSRC()
	// Conjugate transpose and transpose views
	{
		h := m.H()
		nr, nc := h.Dims()
		assert.Equal(t, 3, nr)
		assert.Equal(t, 2, nc)
		assert.Equal(t, -2i, h.At(2, 0))
		assert.Equal(t, 2i, m.T().At(2, 0))
		assert.Equal(t, m.At(0, 2), h.H().At(0, 2))
	}
	// MulVec
	{
		b := m.MulVec([]complex128{1, 1, 1})
		assert.Equal(t, []complex128{1 + 2i, -3}, b)
		assert.Panics(t, func() { m.MulVec([]complex128{1}) })
	}
	// Realness detection and conversion
	{
		assert.False(t, m.IsReal(1.e-15))
		tr2 := NewCTriplets(2, 2)
		tr2.Append(0, 1, 4)
		tr2.Append(1, 0, complex(2, 1.e-18))
		m2 := tr2.ToCSRC()
		assert.True(t, m2.IsReal(1.e-15))
		r := m2.Real()
		assert.Equal(t, 4., r.At(0, 1))
		assert.Equal(t, 2., r.At(1, 0))
	}
	// Dense conversion
	{
		d := m.ToCDense()
		assert.Equal(t, m.At(0, 2), d.At(0, 2))
		assert.Equal(t, m.At(1, 1), d.At(1, 1))
	}
}

func TestCSRCHermitian(t *testing.T) {
	tr := NewCTriplets(2, 2)
	tr.Append(0, 1, cmplx.Exp(1i))
	tr.Append(1, 0, cmplx.Exp(-1i))
	tr.Append(0, 0, -1)
	tr.Append(1, 1, -1)
	m := tr.ToCSRC()
	assert.True(t, m.IsHermitian(1.e-14))

	tr2 := NewCTriplets(2, 2)
	tr2.Append(0, 1, 1i)
	tr2.Append(1, 0, 1i)
	assert.False(t, tr2.ToCSRC().IsHermitian(1.e-14))
}
