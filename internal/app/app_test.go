package app

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"

	"github.com/philipparndt/raymeasure/pkg/geometry"
	"github.com/philipparndt/raymeasure/pkg/stl"
)

func TestScreenNDCRoundTrip(t *testing.T) {
	x, y := screenToNDC(0, 0, 1400, 900)
	assert.Equal(t, -1.0, x)
	assert.Equal(t, 1.0, y)

	x, y = screenToNDC(700, 450, 1400, 900)
	assert.Equal(t, 0.0, x)
	assert.Equal(t, 0.0, y)

	sx, sy := ndcToScreen(0.25, -0.5, 1400, 900)
	x, y = screenToNDC(sx, sy, 1400, 900)
	assert.InDelta(t, 0.25, x, 1e-12)
	assert.InDelta(t, -0.5, y, 1e-12)
}

func TestModifierKeys(t *testing.T) {
	assert.Equal(t, []int32{rl.KeyLeftShift, rl.KeyRightShift}, modifierKeys("shift"))
	assert.Equal(t, []int32{rl.KeyLeftControl, rl.KeyRightControl}, modifierKeys("control"))
	assert.Equal(t, []int32{rl.KeyLeftControl, rl.KeyRightControl}, modifierKeys("unknown"))
}

func TestUniqueEdgesSharesDiagonal(t *testing.T) {
	model := stl.NewModel("quad")
	a := geometry.NewVector3(0, 0, 0)
	b := geometry.NewVector3(1, 0, 0)
	c := geometry.NewVector3(1, 1, 0)
	d := geometry.NewVector3(0, 1, 0)
	model.AddTriangle(geometry.NewTriangle(geometry.Vector3{}, a, b, c))
	model.AddTriangle(geometry.NewTriangle(geometry.Vector3{}, a, c, d))

	assert.Len(t, uniqueEdges(model), 5)
}

func TestBakedColorKeepsAmbient(t *testing.T) {
	// facing away from the light
	r, g, b := bakedColor(lightDir)
	assert.Equal(t, [3]uint8{30, 36, 60}, [3]uint8{r, g, b})

	// facing the light
	r, g, b = bakedColor(lightDir.Mul(-1))
	assert.InDelta(t, 100, int(r), 1)
	assert.InDelta(t, 120, int(g), 1)
	assert.InDelta(t, 200, int(b), 1)
}

func TestVectorConversion(t *testing.T) {
	v := geometry.NewVector3(1.5, -2, 3.25)
	assert.Equal(t, v, fromRaylib(toRaylib(v)))
}

func TestDragBegunWhileMeasuringStaysStill(t *testing.T) {
	app := &App{}
	app.SetNavigationEnabled(true)
	app.Interaction.beginDrag(app.Camera.navigation)
	assert.True(t, app.Interaction.leftDragMoves(app.Camera.navigation))

	// modifier pressed mid-drag, then released with the button still down
	app.SetNavigationEnabled(false)
	assert.False(t, app.Interaction.leftDragMoves(app.Camera.navigation))
	app.SetNavigationEnabled(true)
	assert.False(t, app.Interaction.leftDragMoves(app.Camera.navigation))

	// the next press orbits again
	app.Interaction.beginDrag(app.Camera.navigation)
	assert.True(t, app.Interaction.leftDragMoves(app.Camera.navigation))
}

func TestDragBegunInMeasurementMode(t *testing.T) {
	app := &App{}
	app.SetNavigationEnabled(false)
	app.Interaction.beginDrag(app.Camera.navigation)

	app.SetNavigationEnabled(true)
	assert.False(t, app.Interaction.leftDragMoves(app.Camera.navigation))
}
