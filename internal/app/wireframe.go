package app

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/philipparndt/raymeasure/pkg/geometry"
	"github.com/philipparndt/raymeasure/pkg/stl"
)

type edgeKey [2]geometry.Vector3

// uniqueEdges collects each triangle edge once, regardless of direction
func uniqueEdges(model *stl.Model) [][2]rl.Vector3 {
	seen := make(map[edgeKey]bool)
	var edges [][2]rl.Vector3

	for _, triangle := range model.Triangles {
		for _, edge := range [3]edgeKey{
			{triangle.V1, triangle.V2},
			{triangle.V2, triangle.V3},
			{triangle.V3, triangle.V1},
		} {
			reversed := edgeKey{edge[1], edge[0]}
			if seen[edge] || seen[reversed] {
				continue
			}
			seen[edge] = true
			edges = append(edges, [2]rl.Vector3{toRaylib(edge[0]), toRaylib(edge[1])})
		}
	}
	return edges
}

// drawWireframe renders the model edges as thin cylinders
func (app *App) drawWireframe() {
	wireframeColor := rl.NewColor(100, 100, 100, 200)
	// Scale with camera distance for constant screen thickness
	thickness := app.Camera.distance * 0.0005
	const segments = int32(6)

	for _, edge := range app.Model.edges {
		rl.DrawCylinderEx(edge[0], edge[1], thickness, thickness, segments, wireframeColor)
	}
}
