package mesh

import (
	"fmt"
	"math"
	"sort"

	"github.com/condensate/gotdgl/geometry2D"
)

type Vec2 [2]float64

func (v Vec2) point() geometry2D.Point {
	return geometry2D.Point{X: [2]float64{v[0], v[1]}}
}

func (v Vec2) Norm() float64 { return math.Hypot(v[0], v[1]) }

func (v Vec2) Dot(w Vec2) float64 { return v[0]*w[0] + v[1]*w[1] }

// Mesh is a triangular mesh of a simply- or multiply-connected 2D region,
// carrying the Voronoi cell areas and edge structure needed by the finite
// volume operator assembly. Construct with FromTriangulation; the struct is
// treated as immutable afterwards.
type Mesh struct {
	Sites           []Vec2
	Elements        [][3]int // counterclockwise winding after construction
	BoundaryIndices []int    // site indices on the boundary
	Areas           []float64
	DualSites       []Vec2 // triangle circumcenters
	EdgeMesh        *EdgeMesh
}

func (m *Mesh) NumSites() int { return len(m.Sites) }

func (m *Mesh) NumEdges() int { return m.EdgeMesh.NumEdges() }

// FromTriangulation derives the full finite volume mesh structure from the
// coordinates of the triangle vertices and the vertex index triplets.
func FromTriangulation(sites []Vec2, elements [][3]int) (m *Mesh, err error) {
	if len(sites) < 3 {
		err = fmt.Errorf("need at least 3 sites, got %d", len(sites))
		return
	}
	if len(elements) == 0 {
		err = fmt.Errorf("need at least one triangle element")
		return
	}
	oriented := make([][3]int, len(elements))
	for t, el := range elements {
		for _, v := range el {
			if v < 0 || v >= len(sites) {
				err = fmt.Errorf("element %d references site %d, out of range [0,%d)",
					t, v, len(sites))
				return
			}
		}
		oriented[t] = el
		a, b, c := sites[el[0]].point(), sites[el[1]].point(), sites[el[2]].point()
		if geometry2D.SignedArea(a, b, c) < 0 {
			oriented[t][1], oriented[t][2] = el[2], el[1]
		}
	}
	m = &Mesh{
		Sites:     sites,
		Elements:  oriented,
		DualSites: make([]Vec2, len(oriented)),
	}
	for t, el := range oriented {
		cc := geometry2D.Circumcenter(
			sites[el[0]].point(), sites[el[1]].point(), sites[el[2]].point())
		m.DualSites[t] = Vec2{cc.X[0], cc.X[1]}
	}
	m.EdgeMesh = buildEdgeMesh(sites, oriented, m.DualSites)
	m.Areas = voronoiAreas(sites, oriented, m.DualSites)
	m.BoundaryIndices = boundarySites(m.EdgeMesh)
	return
}

// voronoiAreas computes the Voronoi cell area of each site by subdividing
// every triangle at its circumcenter and edge midpoints. Signed areas keep
// the result correct for obtuse triangles whose circumcenter falls outside.
func voronoiAreas(sites []Vec2, elements [][3]int, dualSites []Vec2) (areas []float64) {
	areas = make([]float64, len(sites))
	for t, el := range elements {
		cc := dualSites[t].point()
		for k := 0; k < 3; k++ {
			var (
				a    = sites[el[k]].point()
				next = sites[el[(k+1)%3]].point()
				prev = sites[el[(k+2)%3]].point()
			)
			midNext := geometry2D.Midpoint(a, next)
			midPrev := geometry2D.Midpoint(a, prev)
			areas[el[k]] += geometry2D.SignedArea(a, midNext, cc)
			areas[el[k]] += geometry2D.SignedArea(a, cc, midPrev)
		}
	}
	return
}

func boundarySites(em *EdgeMesh) (boundary []int) {
	seen := make(map[int]bool)
	for _, ei := range em.BoundaryEdgeIndices {
		for _, s := range em.Edges[ei] {
			if !seen[s] {
				seen[s] = true
				boundary = append(boundary, s)
			}
		}
	}
	sort.Ints(boundary)
	return
}

// ClosestSite returns the index of the mesh site closest to xy
func (m *Mesh) ClosestSite(xy Vec2) (imin int) {
	var (
		dmin = math.Inf(1)
	)
	for i, s := range m.Sites {
		d := Vec2{s[0] - xy[0], s[1] - xy[1]}.Norm()
		if d < dmin {
			dmin, imin = d, i
		}
	}
	return
}

// EdgeQuantityToSites averages an edge-projected vector quantity onto the
// sites, reconstructing x and y components from the edge directions
func (m *Mesh) EdgeQuantityToSites(onEdge []float64) (onSites []Vec2) {
	var (
		em     = m.EdgeMesh
		n      = m.NumSites()
		counts = make([]float64, n)
		sums   = make([]Vec2, n)
	)
	for i, e := range em.Edges {
		var (
			d    = em.Directions[i]
			norm = d.Norm()
			fx   = onEdge[i] * d[0] / norm
			fy   = onEdge[i] * d[1] / norm
		)
		for _, s := range e {
			counts[s]++
			sums[s][0] += fx
			sums[s][1] += fy
		}
	}
	onSites = make([]Vec2, n)
	for i := range onSites {
		onSites[i][0] = sums[i][0] / (2 * counts[i])
		onSites[i][1] = sums[i][1] / (2 * counts[i])
	}
	return
}

// EdgeScalarToSites averages a scalar edge quantity onto the sites
func (m *Mesh) EdgeScalarToSites(onEdge []float64) (onSites []float64) {
	var (
		em     = m.EdgeMesh
		n      = m.NumSites()
		counts = make([]float64, n)
		sums   = make([]float64, n)
	)
	for i, e := range em.Edges {
		for _, s := range e {
			counts[s]++
			sums[s] += onEdge[i]
		}
	}
	onSites = make([]float64, n)
	for i := range onSites {
		onSites[i] = sums[i] / (2 * counts[i])
	}
	return
}

// Smooth performs Laplacian smoothing, moving each interior site to the
// average of its neighbors with the boundary pinned, and rebuilds the mesh
func (m *Mesh) Smooth(iterations int) (out *Mesh, err error) {
	var (
		adj      = collectEdges(m.Elements)
		n        = m.NumSites()
		boundary = make(map[int]bool)
	)
	for _, s := range m.BoundaryIndices {
		boundary[s] = true
	}
	sites := make([]Vec2, n)
	copy(sites, m.Sites)
	for iter := 0; iter < iterations; iter++ {
		var (
			sums   = make([]Vec2, n)
			counts = make([]float64, n)
		)
		for _, ea := range adj {
			a, b := ea.edge[0], ea.edge[1]
			sums[a][0] += sites[b][0]
			sums[a][1] += sites[b][1]
			sums[b][0] += sites[a][0]
			sums[b][1] += sites[a][1]
			counts[a]++
			counts[b]++
		}
		next := make([]Vec2, n)
		for i := range next {
			if boundary[i] || counts[i] == 0 {
				next[i] = sites[i]
				continue
			}
			next[i] = Vec2{sums[i][0] / counts[i], sums[i][1] / counts[i]}
		}
		sites = next
	}
	out, err = FromTriangulation(sites, m.Elements)
	return
}
