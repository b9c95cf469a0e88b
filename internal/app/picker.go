package app

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/philipparndt/raymeasure/pkg/geometry"
)

// rayCaster turns normalized device coordinates into world rays through the
// live raylib camera
type rayCaster struct {
	camera *rl.Camera3D
}

// RayAt implements pick.RayCaster
func (c rayCaster) RayAt(ndcX, ndcY float64) geometry.Ray {
	x, y := ndcToScreen(ndcX, ndcY, float64(rl.GetScreenWidth()), float64(rl.GetScreenHeight()))
	ray := rl.GetScreenToWorldRay(rl.Vector2{X: float32(x), Y: float32(y)}, *c.camera)
	return geometry.NewRay(fromRaylib(ray.Position), fromRaylib(ray.Direction))
}

// screenToNDC maps window pixels to normalized device coordinates, y up
func screenToNDC(x, y, width, height float64) (float64, float64) {
	return 2*x/width - 1, 1 - 2*y/height
}

// ndcToScreen is the inverse of screenToNDC
func ndcToScreen(ndcX, ndcY, width, height float64) (float64, float64) {
	return (ndcX + 1) / 2 * width, (1 - ndcY) / 2 * height
}
