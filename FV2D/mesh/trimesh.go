package mesh

import (
	"fmt"

	"github.com/notargets/avs/geometry"
)

// FromTriMesh builds a finite volume mesh from the graphics TriMesh
// interchange format used by the file readers
func FromTriMesh(tm *geometry.TriMesh) (m *Mesh, err error) {
	if tm == nil {
		err = fmt.Errorf("nil TriMesh")
		return
	}
	sites := make([]Vec2, len(tm.XY)/2)
	for i := range sites {
		sites[i] = Vec2{float64(tm.XY[2*i]), float64(tm.XY[2*i+1])}
	}
	elements := make([][3]int, len(tm.TriVerts))
	for t, tri := range tm.TriVerts {
		for n := 0; n < 3; n++ {
			elements[t][n] = int(tri[n])
		}
	}
	m, err = FromTriangulation(sites, elements)
	return
}

// TriMesh converts back to the graphics interchange format. Coordinates are
// narrowed to float32, which is lossy for plotting purposes only.
func (m *Mesh) TriMesh() (tm *geometry.TriMesh) {
	var (
		xy    = make([]float32, 2*m.NumSites())
		verts = make([][3]int64, len(m.Elements))
	)
	for i, s := range m.Sites {
		xy[2*i] = float32(s[0])
		xy[2*i+1] = float32(s[1])
	}
	for t, el := range m.Elements {
		for n := 0; n < 3; n++ {
			verts[t][n] = int64(el[n])
		}
	}
	gm := geometry.NewTriMesh(xy, verts)
	tm = &gm
	return
}
