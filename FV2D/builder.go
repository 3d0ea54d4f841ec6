package FV2D

import (
	"fmt"

	"github.com/condensate/gotdgl/FV2D/mesh"
	"github.com/condensate/gotdgl/utils"
)

type MatrixType uint8

const (
	Laplacian MatrixType = iota
	NeumannBoundaryLaplacian
	Divergence
	Gradient
)

func (mt MatrixType) String() string {
	switch mt {
	case Laplacian:
		return "Laplacian"
	case NeumannBoundaryLaplacian:
		return "NeumannBoundaryLaplacian"
	case Divergence:
		return "Divergence"
	case Gradient:
		return "Gradient"
	}
	return fmt.Sprintf("MatrixType(%d)", uint8(mt))
}

// Operator is an assembled finite volume operator. Exactly one of Real and
// Complex is set: link exponents make the gradient and Laplacian complex,
// everything else stays real.
type Operator struct {
	Kind     MatrixType
	Real     utils.CSR
	Complex  *utils.CSRC
	FreeRows []bool // Laplacian only, the reusable free-row mask
}

func (op *Operator) IsComplex() bool { return op.Complex != nil }

func (op *Operator) Dims() (r, c int) {
	if op.IsComplex() {
		return op.Complex.Dims()
	}
	return op.Real.Dims()
}

func (op *Operator) At(i, j int) complex128 {
	if op.IsComplex() {
		return op.Complex.At(i, j)
	}
	return complex(op.Real.At(i, j), 0)
}

func (op *Operator) NNZ() int {
	if op.IsComplex() {
		return op.Complex.NNZ()
	}
	return op.Real.NNZ()
}

// MatrixBuilder accumulates the configuration for a family of operators on
// one mesh: the Dirichlet site set with its eigenvalue and the link
// exponents. The mesh is shared and never mutated through the builder; the
// builder itself is not safe for concurrent mutation.
type MatrixBuilder struct {
	mesh                 *mesh.Mesh
	fixedSites           utils.Index
	fixedSitesEigenvalue float64
	linkExponents        []mesh.Vec2
}

func NewMatrixBuilder(msh *mesh.Mesh) (b *MatrixBuilder) {
	b = &MatrixBuilder{
		mesh:                 msh,
		fixedSitesEigenvalue: 1,
	}
	return
}

// WithDirichletBoundary sets the sites held at fixed values and the diagonal
// eigenvalue their Laplacian rows reduce to. Returns the builder for
// chaining.
func (b *MatrixBuilder) WithDirichletBoundary(fixedSites []int, eigenvalue float64) *MatrixBuilder {
	b.fixedSites = utils.NewFromInts(fixedSites)
	b.fixedSitesEigenvalue = eigenvalue
	return b
}

// WithLinkExponents sets the per-edge gauge exponent vectors. Returns the
// builder for chaining.
func (b *MatrixBuilder) WithLinkExponents(linkExponents []mesh.Vec2) *MatrixBuilder {
	b.linkExponents = linkExponents
	return b
}

// Build assembles the requested operator. For the Laplacian an optional
// precomputed free-row mask can be supplied to skip the fixed-site scan; it
// must have been produced by a previous Laplacian build against the same
// Dirichlet configuration.
func (b *MatrixBuilder) Build(mt MatrixType, freeRows ...[]bool) (op *Operator, err error) {
	var fr []bool
	if len(freeRows) > 0 {
		fr = freeRows[0]
	}
	op = &Operator{Kind: mt}
	switch mt {
	case Laplacian:
		op.Complex, op.FreeRows = BuildLaplacian(
			b.mesh, b.linkExponents, b.fixedSites, fr, b.fixedSitesEigenvalue)
		if b.linkExponents == nil {
			op.Real, op.Complex = op.Complex.Real(), nil
		}
	case Gradient:
		op.Complex = BuildGradient(b.mesh, b.linkExponents)
		if b.linkExponents == nil {
			op.Real, op.Complex = op.Complex.Real(), nil
		}
	case Divergence:
		op.Real = BuildDivergence(b.mesh)
	case NeumannBoundaryLaplacian:
		op.Real = BuildNeumannBoundaryLaplacian(b.mesh, b.fixedSites)
	default:
		op, err = nil, fmt.Errorf("unknown matrix type: %v", mt)
	}
	return
}

// Clone returns an independently mutable copy sharing the mesh. The fixed
// site and link exponent arrays are deep copied so the configurations can
// diverge, e.g. one Laplacian per timestep with updated link phases.
func (b *MatrixBuilder) Clone() (c *MatrixBuilder) {
	c = &MatrixBuilder{
		mesh:                 b.mesh,
		fixedSites:           b.fixedSites.Copy(),
		fixedSitesEigenvalue: b.fixedSitesEigenvalue,
	}
	if b.linkExponents != nil {
		c.linkExponents = make([]mesh.Vec2, len(b.linkExponents))
		copy(c.linkExponents, b.linkExponents)
	}
	return
}
