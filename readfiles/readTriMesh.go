package readfiles

import (
	"fmt"
	"os"

	"github.com/ghodss/yaml"
	"github.com/notargets/avs/geometry"
)

// triMeshFile is the on-disk YAML form of a triangulation
type triMeshFile struct {
	Sites    [][2]float64 `yaml:"Sites"`
	Elements [][3]int     `yaml:"Elements"`
}

// ReadTriMesh loads a triangulation from a YAML file into the graphics
// TriMesh interchange format
func ReadTriMesh(filename string) (tm *geometry.TriMesh, err error) {
	var (
		data []byte
		tf   triMeshFile
	)
	if data, err = os.ReadFile(filename); err != nil {
		return
	}
	if err = yaml.Unmarshal(data, &tf); err != nil {
		err = fmt.Errorf("unable to parse mesh file %s: %w", filename, err)
		return
	}
	if len(tf.Sites) == 0 || len(tf.Elements) == 0 {
		err = fmt.Errorf("mesh file %s is missing Sites or Elements", filename)
		return
	}
	var (
		xy    = make([]float32, 2*len(tf.Sites))
		verts = make([][3]int64, len(tf.Elements))
	)
	for i, s := range tf.Sites {
		xy[2*i] = float32(s[0])
		xy[2*i+1] = float32(s[1])
	}
	for t, el := range tf.Elements {
		for n := 0; n < 3; n++ {
			verts[t][n] = int64(el[n])
		}
	}
	gm := geometry.NewTriMesh(xy, verts)
	tm = &gm
	fmt.Printf("Read %d sites, %d elements from %s\n",
		len(tf.Sites), len(tf.Elements), filename)
	return
}

// WriteTriMesh stores a triangulation as YAML
func WriteTriMesh(tm *geometry.TriMesh, filename string) (err error) {
	tf := triMeshFile{
		Sites:    make([][2]float64, len(tm.XY)/2),
		Elements: make([][3]int, len(tm.TriVerts)),
	}
	for i := range tf.Sites {
		tf.Sites[i] = [2]float64{float64(tm.XY[2*i]), float64(tm.XY[2*i+1])}
	}
	for t, tri := range tm.TriVerts {
		for n := 0; n < 3; n++ {
			tf.Elements[t][n] = int(tri[n])
		}
	}
	var data []byte
	if data, err = yaml.Marshal(&tf); err != nil {
		return
	}
	err = os.WriteFile(filename, data, 0644)
	return
}
