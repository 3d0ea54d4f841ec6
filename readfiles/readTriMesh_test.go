package readfiles

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/condensate/gotdgl/FV2D/mesh"
)

func TestReadTriMesh(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "square.yaml")
	contents := `
Sites:
  - [0, 0]
  - [1, 0]
  - [1, 1]
  - [0, 1]
Elements:
  - [0, 1, 2]
  - [0, 2, 3]
`
	assert.NoError(t, os.WriteFile(file, []byte(contents), 0644))

	tm, err := ReadTriMesh(file)
	assert.NoError(t, err)
	assert.Len(t, tm.XY, 8)
	assert.Len(t, tm.TriVerts, 2)
	assert.Equal(t, float32(1), tm.XY[2])

	// Feeds straight into the finite volume mesh
	m, err := mesh.FromTriMesh(tm)
	assert.NoError(t, err)
	assert.Equal(t, 5, m.NumEdges())
}

func TestReadTriMeshErrors(t *testing.T) {
	_, err := ReadTriMesh("does-not-exist.yaml")
	assert.Error(t, err)

	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.yaml")
	assert.NoError(t, os.WriteFile(bad, []byte("Sites: {oops"), 0644))
	_, err = ReadTriMesh(bad)
	assert.Error(t, err)

	empty := filepath.Join(dir, "empty.yaml")
	assert.NoError(t, os.WriteFile(empty, []byte("Sites: []"), 0644))
	_, err = ReadTriMesh(empty)
	assert.Error(t, err)
}

func TestWriteTriMeshRoundTrip(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "out.yaml")

	m, err := mesh.FromTriangulation(
		[]mesh.Vec2{{0, 0}, {1, 0}, {0.5, 1}},
		[][3]int{{0, 1, 2}},
	)
	assert.NoError(t, err)
	assert.NoError(t, WriteTriMesh(m.TriMesh(), file))

	tm, err := ReadTriMesh(file)
	assert.NoError(t, err)
	back, err := mesh.FromTriMesh(tm)
	assert.NoError(t, err)
	assert.Equal(t, m.EdgeMesh.Edges, back.EdgeMesh.Edges)
}
