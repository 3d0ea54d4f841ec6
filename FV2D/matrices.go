package FV2D

import (
	"math/cmplx"

	"github.com/condensate/gotdgl/FV2D/mesh"
	"github.com/condensate/gotdgl/utils"
)

// BuildDivergence assembles the sparse N x M operator taking an edge flux
// onto the sites. The sign convention measures net outflow: +1 at endpoint 0,
// -1 at endpoint 1, each scaled by the dual edge length over the site's
// Voronoi area. No link variables apply, edge fluxes are gauge invariant.
func BuildDivergence(msh *mesh.Mesh) (D utils.CSR) {
	var (
		em = msh.EdgeMesh
		d  = utils.NewDOK(msh.NumSites(), em.NumEdges())
	)
	for i, e := range em.Edges {
		w := em.DualEdgeLengths[i]
		d.Add(e[0], i, w/msh.Areas[e[0]])
		d.Add(e[1], i, -w/msh.Areas[e[1]])
	}
	D = d.ToCSR()
	return
}

// BuildGradient assembles the sparse M x N operator taking a site field onto
// the edges,
//
//	(G phi)[edge] = (phi[end1]*w[edge] - phi[end0]) / edgeLength[edge]
//
// The link weight multiplies only the endpoint-1 term; downstream physics
// depends on this exact placement, do not symmetrize it.
func BuildGradient(msh *mesh.Mesh, linkExponents []mesh.Vec2) (G *utils.CSRC) {
	var (
		em = msh.EdgeMesh
		lw = LinkVariableWeights(linkExponents, em)
		tr = utils.NewCTriplets(em.NumEdges(), msh.NumSites())
	)
	for i, e := range em.Edges {
		w := complex(1/em.EdgeLengths[i], 0)
		tr.Append(i, e[1], lw[i]*w)
		tr.Append(i, e[0], -w)
	}
	G = tr.ToCSRC()
	return
}

// BuildLaplacian assembles the sparse N x N covariant Laplacian and returns
// it with the free-row mask over the 4M concatenated triplet rows (the two
// off-diagonal blocks followed by the two diagonal blocks, in that order).
//
// The default boundary condition is homogeneous Neumann. Fixed sites impose
// Dirichlet conditions: their rows reduce to eigenvalue on the diagonal.
// Passing a non-nil freeRows reuses the mask verbatim instead of recomputing
// it from fixedSites; the caller guarantees the two are consistent. That
// reuse is the hot path when reassembling per-timestep Laplacians whose link
// exponents change but whose Dirichlet topology does not.
func BuildLaplacian(msh *mesh.Mesh, linkExponents []mesh.Vec2,
	fixedSites utils.Index, freeRows []bool, eigenvalue float64) (L *utils.CSRC, outFreeRows []bool) {
	var (
		em = msh.EdgeMesh
		m  = em.NumEdges()
		n  = msh.NumSites()
		lw = LinkVariableWeights(linkExponents, em)
	)
	rows := make([]int, 4*m)
	cols := make([]int, 4*m)
	vals := make([]complex128, 4*m)
	for i, e := range em.Edges {
		var (
			w  = em.DualEdgeLengths[i] / em.EdgeLengths[i]
			a0 = msh.Areas[e[0]]
			a1 = msh.Areas[e[1]]
		)
		rows[i], cols[i], vals[i] = e[0], e[1], lw[i]*complex(w/a0, 0)
		rows[m+i], cols[m+i], vals[m+i] = e[1], e[0], cmplx.Conj(lw[i])*complex(w/a1, 0)
		rows[2*m+i], cols[2*m+i], vals[2*m+i] = e[0], e[0], complex(-w/a0, 0)
		rows[3*m+i], cols[3*m+i], vals[3*m+i] = e[1], e[1], complex(-w/a1, 0)
	}
	if freeRows == nil {
		member := fixedSites.Membership()
		freeRows = make([]bool, 4*m)
		for k, r := range rows {
			freeRows[k] = !member[r]
		}
	}
	tr := utils.NewCTriplets(n, n)
	for k, free := range freeRows {
		if free {
			tr.Append(rows[k], cols[k], vals[k])
		}
	}
	for _, s := range fixedSites {
		tr.Append(s, s, complex(eigenvalue, 0))
	}
	L, outFreeRows = tr.ToCSRC(), freeRows
	return
}

// BuildNeumannBoundaryLaplacian assembles the sparse N x B operator mapping
// a per-boundary-edge flux onto site contributions for non-homogeneous
// Neumann conditions. Each boundary edge splits its flux trapezoidally,
// length/(2*area), between its two endpoints. Columns follow the order of
// the mesh's boundary-edge index list, so correctness does not depend on
// boundary edges forming a prefix of the edge array. Rows of fixed sites
// stay identically zero, Dirichlet sites accept no flux.
func BuildNeumannBoundaryLaplacian(msh *mesh.Mesh, fixedSites utils.Index) (NB utils.CSR) {
	var (
		em     = msh.EdgeMesh
		member = fixedSites.Membership()
		d      = utils.NewDOK(msh.NumSites(), em.NumBoundaryEdges())
	)
	for b, ei := range em.BoundaryEdgeIndices {
		var (
			e = em.Edges[ei]
			l = em.EdgeLengths[ei]
		)
		if !member[e[0]] {
			d.Add(e[0], b, l/(2*msh.Areas[e[0]]))
		}
		if !member[e[1]] {
			d.Add(e[1], b, l/(2*msh.Areas[e[1]]))
		}
	}
	NB = d.ToCSR()
	return
}
