package app

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/philipparndt/raymeasure/internal/measurement"
	"github.com/philipparndt/raymeasure/pkg/geometry"
)

const defaultCameraAngle = 0.3

// frameModel points the camera at the model and stores the reset view
func (app *App) frameModel() {
	bbox := app.Model.scene.Model.BoundingBox()
	center := bbox.Center()
	size := bbox.Size()
	maxDim := math.Max(size.X, math.Max(size.Y, size.Z))
	if maxDim <= 0 {
		maxDim = 1
	}

	app.Model.center = toRaylib(center)
	app.Model.size = float32(maxDim)

	app.Camera.defaultDist = float32(maxDim * 2.0)
	app.Camera.defaultAngleX = defaultCameraAngle
	app.Camera.defaultAngleY = defaultCameraAngle
	app.Camera.camera = rl.Camera3D{
		Up:         rl.Vector3{X: 0, Y: 1, Z: 0},
		Fovy:       45.0,
		Projection: rl.CameraPerspective,
	}
	app.resetCameraView()
}

// resetCameraView resets the camera to the default view
func (app *App) resetCameraView() {
	app.Camera.distance = app.Camera.defaultDist
	app.Camera.angleX = app.Camera.defaultAngleX
	app.Camera.angleY = app.Camera.defaultAngleY
	app.Camera.target = app.Model.center
	app.updateCamera()
}

// setCameraTopView looks straight down
func (app *App) setCameraTopView() {
	app.Camera.angleX = math.Pi/2 - 0.01
	app.Camera.angleY = 0
	app.Camera.target = app.Model.center
}

// setCameraFrontView looks along -Z
func (app *App) setCameraFrontView() {
	app.Camera.angleX = 0
	app.Camera.angleY = 0
	app.Camera.target = app.Model.center
}

// updateCamera updates camera position based on angles
func (app *App) updateCamera() {
	angleX := float64(app.Camera.angleX)
	angleY := float64(app.Camera.angleY)
	x := app.Camera.distance * float32(math.Cos(angleX)*math.Sin(angleY))
	y := app.Camera.distance * float32(math.Sin(angleX))
	z := app.Camera.distance * float32(math.Cos(angleX)*math.Cos(angleY))

	app.Camera.camera.Position = rl.Vector3{
		X: app.Camera.target.X + x,
		Y: app.Camera.target.Y + y,
		Z: app.Camera.target.Z + z,
	}
	app.Camera.camera.Target = app.Camera.target
}

// doRotate orbits around the target based on mouse delta
func (app *App) doRotate(delta rl.Vector2) {
	app.Camera.angleY -= delta.X * 0.01
	app.Camera.angleX += delta.Y * 0.01

	maxAngle := float32(math.Pi/2 - 0.1)
	app.Camera.angleX = float32(math.Max(float64(-maxAngle), math.Min(float64(maxAngle), float64(app.Camera.angleX))))
}

// doPan performs camera panning based on mouse delta
func (app *App) doPan(delta rl.Vector2) {
	forward := rl.Vector3Normalize(rl.Vector3Subtract(app.Camera.target, app.Camera.camera.Position))
	right := rl.Vector3Normalize(rl.Vector3CrossProduct(forward, app.Camera.camera.Up))
	up := rl.Vector3Normalize(rl.Vector3CrossProduct(right, forward))

	// Pan speed based on distance from target
	panSpeed := app.Camera.distance * 0.001

	app.Camera.target = rl.Vector3Add(app.Camera.target, rl.Vector3Scale(right, -delta.X*panSpeed))
	app.Camera.target = rl.Vector3Add(app.Camera.target, rl.Vector3Scale(up, delta.Y*panSpeed))
}

// doZoom scales the camera distance by the wheel movement
func (app *App) doZoom(wheel float32) {
	app.Camera.distance *= 1 - wheel*0.1
	minDist := app.Model.size * 0.05
	if app.Camera.distance < minDist {
		app.Camera.distance = minDist
	}
}

// SetNavigationEnabled implements measurement.Navigator
func (app *App) SetNavigationEnabled(enabled bool) {
	app.Camera.navigation = enabled
	if !enabled {
		app.Interaction.isPanning = false
		app.Interaction.dragOrbits = false
	}
}

// SetCursor implements measurement.CursorSetter
func (app *App) SetCursor(cursor measurement.Cursor) {
	if cursor == measurement.CursorCrosshair {
		rl.SetMouseCursor(rl.MouseCursorCrosshair)
	} else {
		rl.SetMouseCursor(rl.MouseCursorDefault)
	}
}

func toRaylib(v geometry.Vector3) rl.Vector3 {
	return rl.Vector3{X: float32(v.X), Y: float32(v.Y), Z: float32(v.Z)}
}

func fromRaylib(v rl.Vector3) geometry.Vector3 {
	return geometry.NewVector3(float64(v.X), float64(v.Y), float64(v.Z))
}
