package app

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/philipparndt/raymeasure/pkg/geometry"
	"github.com/philipparndt/raymeasure/pkg/stl"
)

// stlToRaylibMesh converts an STL model to a Raylib mesh with baked lighting
func stlToRaylibMesh(model *stl.Model) rl.Mesh {
	triangleCount := len(model.Triangles)
	vertexCount := triangleCount * 3

	mesh := rl.Mesh{
		VertexCount:   int32(vertexCount),
		TriangleCount: int32(triangleCount),
	}

	vertices := make([]float32, 0, vertexCount*3)
	normals := make([]float32, 0, vertexCount*3)
	texcoords := make([]float32, 0, vertexCount*2)
	colors := make([]uint8, 0, vertexCount*4)

	for _, triangle := range model.Triangles {
		normal := triangle.CalculateNormal()
		r, g, b := bakedColor(normal)

		for i, v := range [3]geometry.Vector3{triangle.V1, triangle.V2, triangle.V3} {
			vertices = append(vertices, float32(v.X), float32(v.Y), float32(v.Z))
			normals = append(normals, float32(normal.X), float32(normal.Y), float32(normal.Z))
			texcoords = append(texcoords, float32(i%2), float32(i/2))
			colors = append(colors, r, g, b, 255)
		}
	}

	if len(vertices) > 0 {
		mesh.Vertices = &vertices[0]
		mesh.Normals = &normals[0]
		mesh.Texcoords = &texcoords[0]
		mesh.Colors = &colors[0]
	}

	// Upload mesh data to GPU
	rl.UploadMesh(&mesh, false)

	return mesh
}

// lightDir is the direction of the baked key light
var lightDir = geometry.NewVector3(-0.5, -1.0, -0.5).Normalize()

// bakedColor shades a face; min 30% ambient, max 100% diffuse
func bakedColor(normal geometry.Vector3) (r, g, b uint8) {
	intensity := math.Max(0.3, -normal.Dot(lightDir))
	const base = 200.0
	return uint8(base * intensity * 0.5), uint8(base * intensity * 0.6), uint8(base * intensity)
}
