package FV2D

import (
	"fmt"
	"math/cmplx"

	"github.com/condensate/gotdgl/FV2D/mesh"
)

// LinkVariableWeights integrates the link exponents along each edge and
// exponentiates them into discrete gauge link variables,
//
//	w[edge] = exp(-i * exponents[edge] . directions[edge])
//
// for traversal from endpoint 0 to endpoint 1. The reverse traversal weight
// is the complex conjugate; callers take conj(w) rather than re-deriving it,
// which keeps the conjugate-symmetry of the covariant operators exact. A nil
// exponent array means no gauge field and yields unit weights.
func LinkVariableWeights(linkExponents []mesh.Vec2, em *mesh.EdgeMesh) (w []complex128) {
	w = make([]complex128, em.NumEdges())
	if linkExponents == nil {
		for i := range w {
			w[i] = 1
		}
		return
	}
	if len(linkExponents) != em.NumEdges() {
		panic(fmt.Errorf("got %d link exponents for %d edges",
			len(linkExponents), em.NumEdges()))
	}
	for i := range w {
		w[i] = cmplx.Exp(complex(0, -linkExponents[i].Dot(em.Directions[i])))
	}
	return
}

// LinkExponentsForUniformField evaluates the symmetric-gauge vector
// potential A = B/2 * (-y, x) of a uniform out-of-plane field at each edge
// midpoint, in the form LinkVariableWeights consumes
func LinkExponentsForUniformField(msh *mesh.Mesh, field float64) (exps []mesh.Vec2) {
	em := msh.EdgeMesh
	exps = make([]mesh.Vec2, em.NumEdges())
	for i, e := range em.Edges {
		var (
			p0 = msh.Sites[e[0]]
			p1 = msh.Sites[e[1]]
			mx = 0.5 * (p0[0] + p1[0])
			my = 0.5 * (p0[1] + p1[1])
		)
		exps[i] = mesh.Vec2{-0.5 * field * my, 0.5 * field * mx}
	}
	return
}
