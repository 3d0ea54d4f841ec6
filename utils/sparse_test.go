package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSparse(t *testing.T) {
	// DOK construction, accumulation and conversion
	{
		d := NewDOK(2, 3)
		d.Set(0, 0, 1)
		d.Set(1, 2, 2)
		d.Add(1, 2, 3)
		c := d.ToCSR()
		nr, nc := c.Dims()
		assert.Equal(t, 2, nr)
		assert.Equal(t, 3, nc)
		assert.Equal(t, 1., c.At(0, 0))
		assert.Equal(t, 5., c.At(1, 2))
		assert.Equal(t, 2, c.NNZ())
	}
	// MulVec
	{
		d := NewDOK(2, 2)
		d.Set(0, 0, 2)
		d.Set(0, 1, -1)
		d.Set(1, 0, 3)
		c := d.ToCSR()
		b := c.MulVec([]float64{1, 2})
		assert.Equal(t, []float64{0, 3}, b)
	}
	// RowSums and symmetry
	{
		d := NewDOK(2, 2)
		d.Set(0, 0, -1)
		d.Set(0, 1, 1)
		d.Set(1, 0, 1)
		d.Set(1, 1, -1)
		c := d.ToCSR()
		assert.InDeltaSlice(t, []float64{0, 0}, c.RowSums(), 1.e-15)
		assert.True(t, c.IsSymmetric(1.e-15))
		d2 := NewDOK(2, 2)
		d2.Set(0, 1, 1)
		assert.False(t, d2.ToCSR().IsSymmetric(1.e-15))
	}
}

func TestIndex(t *testing.T) {
	I := NewFromInts([]int{3, 1, 2})
	assert.True(t, I.Contains(2))
	assert.False(t, I.Contains(0))
	assert.Equal(t, 1, I.Min())
	assert.Equal(t, 3, I.Max())
	C := I.Copy()
	C[0] = 99
	assert.Equal(t, 3, I[0])
	member := I.Membership()
	assert.True(t, member[1])
	assert.False(t, member[5])
}
