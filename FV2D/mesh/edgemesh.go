package mesh

import (
	"sort"

	"github.com/condensate/gotdgl/geometry2D"
)

// EdgeMesh holds the undirected edge structure of a triangulation together
// with the primal and dual (Voronoi) metric data the finite volume operators
// need. Boundary edges occupy the front of the edge ordering; the Neumann
// boundary operator relies on that prefix.
type EdgeMesh struct {
	Edges               [][2]int  // site index pairs, endpoint 0 < endpoint 1
	EdgeLengths         []float64 // primal edge lengths
	DualEdgeLengths     []float64 // Voronoi edge lengths, may be 0 for degenerate duals
	Directions          []Vec2    // raw edge vectors from endpoint 0 to endpoint 1
	BoundaryEdgeIndices []int     // always 0..NumBoundaryEdges-1
}

func (em *EdgeMesh) NumEdges() int { return len(em.Edges) }

func (em *EdgeMesh) NumBoundaryEdges() int { return len(em.BoundaryEdgeIndices) }

// edgeAdjacency maps each undirected edge to the one or two triangles
// sharing it
type edgeAdjacency struct {
	edge [2]int
	tris []int
}

func collectEdges(elements [][3]int) (adj []edgeAdjacency) {
	var (
		index = make(map[[2]int]int)
	)
	for t, el := range elements {
		for k := 0; k < 3; k++ {
			a, b := el[k], el[(k+1)%3]
			if a > b {
				a, b = b, a
			}
			key := [2]int{a, b}
			p, ok := index[key]
			if !ok {
				p = len(adj)
				index[key] = p
				adj = append(adj, edgeAdjacency{edge: key})
			}
			adj[p].tris = append(adj[p].tris, t)
		}
	}
	return
}

// buildEdgeMesh derives the edge structure from an oriented triangulation
// and the precomputed circumcenter dual sites
func buildEdgeMesh(sites []Vec2, elements [][3]int, dualSites []Vec2) (em *EdgeMesh) {
	var (
		adj      = collectEdges(elements)
		boundary []edgeAdjacency
		interior []edgeAdjacency
	)
	for _, ea := range adj {
		if len(ea.tris) == 1 {
			boundary = append(boundary, ea)
		} else {
			interior = append(interior, ea)
		}
	}
	byEdge := func(s []edgeAdjacency) func(i, j int) bool {
		return func(i, j int) bool {
			if s[i].edge[0] != s[j].edge[0] {
				return s[i].edge[0] < s[j].edge[0]
			}
			return s[i].edge[1] < s[j].edge[1]
		}
	}
	sort.Slice(boundary, byEdge(boundary))
	sort.Slice(interior, byEdge(interior))

	nb := len(boundary)
	ordered := append(boundary, interior...)
	em = &EdgeMesh{
		Edges:               make([][2]int, len(ordered)),
		EdgeLengths:         make([]float64, len(ordered)),
		DualEdgeLengths:     make([]float64, len(ordered)),
		Directions:          make([]Vec2, len(ordered)),
		BoundaryEdgeIndices: make([]int, nb),
	}
	for i := range em.BoundaryEdgeIndices {
		em.BoundaryEdgeIndices[i] = i
	}
	for i, ea := range ordered {
		var (
			p0 = sites[ea.edge[0]].point()
			p1 = sites[ea.edge[1]].point()
		)
		em.Edges[i] = ea.edge
		em.EdgeLengths[i] = geometry2D.Distance(p0, p1)
		em.Directions[i] = Vec2{p1.X[0] - p0.X[0], p1.X[1] - p0.X[1]}
		switch len(ea.tris) {
		case 1:
			// Dual vertex pairs with the edge midpoint on the boundary
			cc := dualSites[ea.tris[0]].point()
			em.DualEdgeLengths[i] = geometry2D.Distance(cc, geometry2D.Midpoint(p0, p1))
		default:
			cc0 := dualSites[ea.tris[0]].point()
			cc1 := dualSites[ea.tris[1]].point()
			em.DualEdgeLengths[i] = geometry2D.Distance(cc0, cc1)
		}
	}
	return
}
