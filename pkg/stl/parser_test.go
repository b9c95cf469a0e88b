package stl

import (
	"bytes"
	"encoding/binary"
	"strings"
	"testing"

	"github.com/philipparndt/raymeasure/pkg/geometry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const twoSolids = `solid floor
  facet normal 0 0 1
    outer loop
      vertex 0 0 0
      vertex 10 0 0
      vertex 0 10 0
    endloop
  endfacet
endsolid floor
solid box
  facet normal 0 0 1
    outer loop
      vertex 1 1 2
      vertex 2 1 2
      vertex 1 2 2
    endloop
  endfacet
  facet normal 0 0 1
    outer loop
      vertex 2 1 2
      vertex 2 2 2
      vertex 1 2 2
    endloop
  endfacet
endsolid box
`

func TestParseASCIIMultipleSolids(t *testing.T) {
	model, err := ParseReader(strings.NewReader(twoSolids))
	require.NoError(t, err)

	assert.Equal(t, "floor", model.Name)
	assert.Equal(t, 3, model.TriangleCount())
	require.Len(t, model.Solids, 2)
	assert.Equal(t, "floor", model.Solids[0].Name)
	assert.Len(t, model.Solids[0].Triangles, 1)
	assert.Equal(t, "box", model.Solids[1].Name)
	assert.Len(t, model.Solids[1].Triangles, 2)

	bbox := model.BoundingBox()
	assert.Equal(t, geometry.NewVector3(0, 0, 0), bbox.Min)
	assert.Equal(t, geometry.NewVector3(10, 10, 2), bbox.Max)
	assert.InDelta(t, 51.0, model.SurfaceArea(), 1e-9)
}

func TestParseASCIIInvalidVertex(t *testing.T) {
	_, err := ParseReader(strings.NewReader("solid x\nfacet normal 0 0 1\nvertex a b c\nendsolid x\n"))
	assert.Error(t, err)
}

func TestParseBinary(t *testing.T) {
	var buf bytes.Buffer
	header := make([]byte, 80)
	copy(header, "binary part")
	buf.Write(header)
	require.NoError(t, binary.Write(&buf, binary.LittleEndian, uint32(1)))
	require.NoError(t, binary.Write(&buf, binary.LittleEndian, binaryFacet{
		Normal: [3]float32{0, 0, 1},
		V1:     [3]float32{0, 0, 0},
		V2:     [3]float32{3, 0, 0},
		V3:     [3]float32{0, 4, 0},
	}))

	model, err := ParseReader(&buf)
	require.NoError(t, err)

	assert.Equal(t, "binary part", model.Name)
	require.Len(t, model.Solids, 1)
	require.Equal(t, 1, model.TriangleCount())
	assert.Equal(t, geometry.NewVector3(3, 0, 0), model.Triangles[0].V2)
	assert.InDelta(t, 6.0, model.SurfaceArea(), 1e-9)
}

func TestParseBinaryTruncated(t *testing.T) {
	var buf bytes.Buffer
	buf.Write(make([]byte, 80))
	require.NoError(t, binary.Write(&buf, binary.LittleEndian, uint32(2)))

	_, err := ParseReader(&buf)
	assert.Error(t, err)
}

func TestParseEmpty(t *testing.T) {
	_, err := ParseReader(strings.NewReader(""))
	assert.Error(t, err)
}
