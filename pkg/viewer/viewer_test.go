package viewer

import (
	"image"
	"math"
	"path/filepath"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/philipparndt/raymeasure/internal/measurement"
	"github.com/philipparndt/raymeasure/pkg/geometry"
	"github.com/philipparndt/raymeasure/pkg/pick"
	"github.com/philipparndt/raymeasure/pkg/stl"
)

// plate is a 10x10 square in the z=0 plane centered on the origin
func plate() *stl.Model {
	model := stl.NewModel("plate")
	a := geometry.NewVector3(-5, -5, 0)
	b := geometry.NewVector3(5, -5, 0)
	c := geometry.NewVector3(5, 5, 0)
	d := geometry.NewVector3(-5, 5, 0)
	n := geometry.NewVector3(0, 0, 1)
	model.AddTriangle(geometry.NewTriangle(n, a, b, c))
	model.AddTriangle(geometry.NewTriangle(n, a, c, d))
	return model
}

// frontCamera looks straight down -z onto the plate
func frontCamera() *Camera {
	cam := NewCamera(plate().BoundingBox(), 200, 200)
	cam.RotationX, cam.RotationY = 0, 0
	cam.UpdatePosition()
	return cam
}

func TestCameraCenterRay(t *testing.T) {
	cam := frontCamera()
	ray := cam.RayAt(0, 0)

	assert.InDelta(t, 0, ray.Direction.X, 1e-10)
	assert.InDelta(t, 0, ray.Direction.Y, 1e-10)
	assert.InDelta(t, -1, ray.Direction.Z, 1e-10)
	assert.InDelta(t, 20, ray.Origin.Z, 1e-10)
}

func TestCameraProjectInvertsRay(t *testing.T) {
	cam := NewCamera(plate().BoundingBox(), 320, 200)
	for _, ndc := range [][2]float64{{0, 0}, {0.5, -0.25}, {-0.8, 0.6}} {
		point := cam.RayAt(ndc[0], ndc[1]).At(7)
		x, y, depth := cam.Project(point)
		require.Greater(t, depth, 0.0)

		gotX, gotY := cam.ScreenToNDC(x, y)
		assert.InDelta(t, ndc[0], gotX, 1e-9)
		assert.InDelta(t, ndc[1], gotY, 1e-9)
	}
}

func TestCameraNavigationGate(t *testing.T) {
	cam := frontCamera()
	before := cam.Position

	cam.SetNavigationEnabled(false)
	assert.False(t, cam.Rotate(0.2, 0.2))
	assert.False(t, cam.Zoom(0.5))
	assert.Equal(t, before, cam.Position)

	cam.SetNavigationEnabled(true)
	assert.True(t, cam.Rotate(10, 0))
	assert.InDelta(t, maxPitch, cam.RotationX, 1e-10)

	cam.Reset()
	assert.InDelta(t, defaultRotationX, cam.RotationX, 1e-10)
	assert.True(t, cam.NavigationEnabled())
}

func TestScreenToNDC(t *testing.T) {
	x, y := ScreenToNDC(0, 0, 200, 100)
	assert.Equal(t, [2]float64{-1, 1}, [2]float64{x, y})
	x, y = ScreenToNDC(100, 50, 200, 100)
	assert.Equal(t, [2]float64{0, 0}, [2]float64{x, y})
}

func TestSnapshotDrawsModelAndOverlay(t *testing.T) {
	cam := frontCamera()
	session := measurement.NewSession(pick.NewProvider(cam, pick.FromModel(plate())), cam, nil)
	session.EnterMeasurementMode()
	session.HandlePointerDown(-0.5, 0)
	session.HandlePointerDown(0.5, 0)

	overlay := measurement.NewOverlay()
	overlay.Sync(session.Store())

	img := Snapshot(plate(), cam, overlay)
	require.Equal(t, image.Rect(0, 0, 200, 200), img.Bounds())

	assert.Equal(t, BackgroundColor, img.RGBAAt(1, 1), "corner shows background")
	assert.NotEqual(t, BackgroundColor, img.RGBAAt(100, 60), "plate is drawn")
	assert.Equal(t, CompletedColor, img.RGBAAt(50, 100), "segment endpoint marker")
	assert.NotEqual(t, ModelColor, img.RGBAAt(100, 100), "label box covers the midpoint")

	path := filepath.Join(t.TempDir(), "out.png")
	require.NoError(t, WritePNG(path, img))
}

func TestMeasureViewMeasures(t *testing.T) {
	test.NewTempApp(t)

	model := plate()
	v := NewMeasureView(model, pick.FromModel(model), "control", 14)
	w := test.NewTempWindow(t, v)
	w.Resize(fyne.NewSize(400, 400))
	v.Resize(fyne.NewSize(400, 400))

	changes := 0
	v.OnChange = func() { changes++ }

	v.KeyDown(&fyne.KeyEvent{Name: desktop.KeyControlLeft})
	assert.True(t, v.Session().InMeasurementMode())
	assert.Equal(t, desktop.CrosshairCursor, v.Cursor())
	assert.False(t, v.camera.NavigationEnabled())

	v.MouseDown(&desktop.MouseEvent{
		PointEvent: fyne.PointEvent{Position: fyne.NewPos(200, 200)},
		Button:     desktop.MouseButtonPrimary,
	})
	v.MouseMoved(&desktop.MouseEvent{PointEvent: fyne.PointEvent{Position: fyne.NewPos(220, 200)}})
	v.MouseDown(&desktop.MouseEvent{
		PointEvent: fyne.PointEvent{Position: fyne.NewPos(220, 200)},
		Button:     desktop.MouseButtonPrimary,
	})

	list := v.Session().Store().List()
	require.Len(t, list, 1)
	assert.True(t, list[0].Completed)
	assert.Greater(t, list[0].Distance, 0.0)
	assert.Equal(t, 3, changes)
	assert.Len(t, v.lines, 1)
	assert.Len(t, v.labels, 2)

	v.KeyUp(&fyne.KeyEvent{Name: desktop.KeyControlLeft})
	assert.Equal(t, desktop.DefaultCursor, v.Cursor())
	assert.True(t, v.camera.NavigationEnabled())

	v.TypedKey(&fyne.KeyEvent{Name: fyne.KeyC})
	assert.Equal(t, 0, v.Session().Store().Len())
}

func TestMeasureViewModifierVariants(t *testing.T) {
	test.NewTempApp(t)

	model := plate()
	v := NewMeasureView(model, pick.FromModel(model), "control", 14)
	w := test.NewTempWindow(t, v)
	w.Resize(fyne.NewSize(400, 400))
	v.Resize(fyne.NewSize(400, 400))

	v.KeyDown(&fyne.KeyEvent{Name: desktop.KeyControlLeft})
	v.KeyDown(&fyne.KeyEvent{Name: desktop.KeyControlRight})
	v.MouseDown(&desktop.MouseEvent{
		PointEvent: fyne.PointEvent{Position: fyne.NewPos(200, 200)},
		Button:     desktop.MouseButtonPrimary,
	})
	require.Equal(t, measurement.Drawing, v.Session().State())

	// releasing one of two held keys keeps the measurement going
	v.KeyUp(&fyne.KeyEvent{Name: desktop.KeyControlLeft})
	assert.True(t, v.Session().InMeasurementMode())
	assert.Equal(t, measurement.Drawing, v.Session().State())

	// a stray release of a key that was never pressed is ignored
	v.KeyUp(&fyne.KeyEvent{Name: desktop.KeyControlLeft})
	assert.True(t, v.Session().InMeasurementMode())

	v.KeyUp(&fyne.KeyEvent{Name: desktop.KeyControlRight})
	assert.False(t, v.Session().InMeasurementMode())
	assert.Equal(t, 0, v.Session().Store().Len())
}

func TestMeasureViewDragStartedInModeDoesNotOrbit(t *testing.T) {
	test.NewTempApp(t)

	model := plate()
	v := NewMeasureView(model, pick.FromModel(model), "control", 14)
	before := v.camera.RotationY

	v.KeyDown(&fyne.KeyEvent{Name: desktop.KeyControlLeft})
	v.Dragged(&fyne.DragEvent{Dragged: fyne.NewDelta(30, 0)})
	v.KeyUp(&fyne.KeyEvent{Name: desktop.KeyControlLeft})
	v.Dragged(&fyne.DragEvent{Dragged: fyne.NewDelta(30, 0)})
	assert.Equal(t, before, v.camera.RotationY)

	v.DragEnd()
	v.Dragged(&fyne.DragEvent{Dragged: fyne.NewDelta(30, 0)})
	assert.NotEqual(t, before, v.camera.RotationY)
}

func TestModifierName(t *testing.T) {
	assert.Equal(t, "control", ModifierName(desktop.KeyControlRight))
	assert.Equal(t, "shift", ModifierName(desktop.KeyShiftLeft))
	assert.Equal(t, "", ModifierName(fyne.KeyA))
}

func TestShadeClamps(t *testing.T) {
	assert.Equal(t, ModelColor, shade(ModelColor, math.Inf(1)))
	assert.Equal(t, uint8(0), shade(ModelColor, -1).R)
}
