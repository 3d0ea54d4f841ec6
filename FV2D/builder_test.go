package FV2D

import (
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/condensate/gotdgl/FV2D/mesh"
)

func TestMatrixBuilderDispatch(t *testing.T) {
	var (
		msh = unitSquare(t)
		b   = NewMatrixBuilder(msh)
	)
	for _, mt := range []MatrixType{Laplacian, NeumannBoundaryLaplacian, Divergence, Gradient} {
		op, err := b.Build(mt)
		assert.NoError(t, err)
		assert.Equal(t, mt, op.Kind)
	}

	op, err := b.Build(Laplacian)
	assert.NoError(t, err)
	nr, nc := op.Dims()
	assert.Equal(t, 4, nr)
	assert.Equal(t, 4, nc)
	assert.NotNil(t, op.FreeRows)
	// No link exponents: the builder hands back the real form
	assert.False(t, op.IsComplex())
	assert.Equal(t, complex(-4, 0), op.At(0, 0))

	op, err = b.Build(Gradient)
	assert.NoError(t, err)
	assert.False(t, op.IsComplex())
	nr, nc = op.Dims()
	assert.Equal(t, 5, nr)
	assert.Equal(t, 4, nc)

	op, err = b.Build(Divergence)
	assert.NoError(t, err)
	assert.False(t, op.IsComplex())
	assert.True(t, op.NNZ() > 0)

	op, err = b.Build(NeumannBoundaryLaplacian)
	assert.NoError(t, err)
	nr, nc = op.Dims()
	assert.Equal(t, 4, nr)
	assert.Equal(t, msh.EdgeMesh.NumBoundaryEdges(), nc)
}

func TestMatrixBuilderUnknownType(t *testing.T) {
	b := NewMatrixBuilder(unitSquare(t))
	op, err := b.Build(MatrixType(42))
	assert.Nil(t, op)
	assert.EqualError(t, err, "unknown matrix type: MatrixType(42)")
}

func TestMatrixBuilderChaining(t *testing.T) {
	var (
		msh  = unitSquare(t)
		exps = LinkExponentsForUniformField(msh, 0.5)
	)
	b := NewMatrixBuilder(msh).
		WithDirichletBoundary([]int{3}, 4).
		WithLinkExponents(exps)

	op, err := b.Build(Laplacian)
	assert.NoError(t, err)
	assert.True(t, op.IsComplex())
	assert.Equal(t, complex(4, 0), op.At(3, 3))
	for j := 0; j < 3; j++ {
		assert.Equal(t, complex(0, 0), op.At(3, j))
	}

	// Free-row mask threads through repeated builds unchanged
	op2, err := b.Build(Laplacian, op.FreeRows)
	assert.NoError(t, err)
	assert.Equal(t, op.Complex, op2.Complex)
}

func TestMatrixBuilderClone(t *testing.T) {
	var (
		msh = unitSquare(t)
		b   = NewMatrixBuilder(msh).WithDirichletBoundary([]int{0}, 2)
	)
	b.WithLinkExponents(LinkExponentsForUniformField(msh, 1))
	c := b.Clone()

	// Mutating the original's deep-copied state must not leak into the
	// clone's subsequently built operator
	b.fixedSites[0] = 1
	b.linkExponents[0] = mesh.Vec2{9, 9}
	b.fixedSitesEigenvalue = 7

	op, err := c.Build(Laplacian)
	assert.NoError(t, err)
	assert.Equal(t, complex(2, 0), op.At(0, 0))
	assert.Equal(t, complex(0, 0), op.At(0, 1))
	// Site 1 stayed free in the clone
	assert.InDelta(t, 0, cmplx.Abs(op.At(1, 1)-complex(-4, 0)), 1.e-13)

	opB, err := b.Build(Laplacian)
	assert.NoError(t, err)
	assert.Equal(t, complex(7, 0), opB.At(1, 1))
}

func TestLinkExponentsForUniformField(t *testing.T) {
	msh := unitSquare(t)
	exps := LinkExponentsForUniformField(msh, 2)
	assert.Len(t, exps, msh.NumEdges())
	// Edge (0,1) midpoint is (0.5, 0): A = B/2 * (-y, x) = (0, 0.5)
	assert.InDelta(t, 0, exps[0][0], 1.e-15)
	assert.InDelta(t, 0.5, exps[0][1], 1.e-15)
	// Zero field means no gauge phase anywhere
	for _, e := range LinkExponentsForUniformField(msh, 0) {
		assert.Equal(t, mesh.Vec2{0, 0}, e)
	}
}
