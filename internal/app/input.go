package app

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/philipparndt/raymeasure/internal/measurement"
)

// modifierKeys returns the raylib keys for a modifier name
func modifierKeys(modifier string) []int32 {
	switch modifier {
	case "shift":
		return []int32{rl.KeyLeftShift, rl.KeyRightShift}
	case "alt":
		return []int32{rl.KeyLeftAlt, rl.KeyRightAlt}
	case "super":
		return []int32{rl.KeyLeftSuper, rl.KeyRightSuper}
	default:
		return []int32{rl.KeyLeftControl, rl.KeyRightControl}
	}
}

// modifierHeld reports whether any key of the modifier is down
func (app *App) modifierHeld() bool {
	for _, key := range app.Measure.keys {
		if rl.IsKeyDown(key) {
			return true
		}
	}
	return false
}

// handleInput turns this frame's raylib input into dispatcher events and
// camera movement. All events of one frame form one tick.
func (app *App) handleInput() {
	d := app.Measure.dispatcher
	session := app.Measure.session

	// Either key pressed enters the mode; it ends when neither is held
	held := app.modifierHeld()
	if held && !session.InMeasurementMode() {
		d.Post(measurement.KeyDownEvent(app.Measure.modifier))
	}
	if !held && session.InMeasurementMode() {
		d.Post(measurement.KeyUpEvent(app.Measure.modifier))
	}

	mouse := rl.GetMousePosition()
	width, height := float64(rl.GetScreenWidth()), float64(rl.GetScreenHeight())
	ndcX, ndcY := screenToNDC(float64(mouse.X), float64(mouse.Y), width, height)

	pressed := rl.IsMouseButtonPressed(rl.MouseLeftButton)
	if pressed {
		d.Post(measurement.PointerDownEvent(ndcX, ndcY))
		app.Interaction.isPanning = rl.IsKeyDown(rl.KeyLeftShift) || rl.IsKeyDown(rl.KeyRightShift)
	}
	if mouse != app.Interaction.lastMousePos {
		d.Post(measurement.PointerMoveEvent(ndcX, ndcY))
	}
	app.Interaction.lastMousePos = mouse

	d.Flush()
	app.Measure.overlay.Sync(session.Store())
	if pressed {
		app.Interaction.beginDrag(app.Camera.navigation)
	}

	app.handleNavigation()
	app.handleShortcuts()
}

// handleNavigation orbits, pans and zooms while navigation is enabled
func (app *App) handleNavigation() {
	if !app.Camera.navigation {
		return
	}

	delta := rl.GetMouseDelta()
	leftDrag := rl.IsMouseButtonDown(rl.MouseLeftButton) &&
		app.Interaction.leftDragMoves(app.Camera.navigation)
	switch {
	case rl.IsMouseButtonDown(rl.MouseMiddleButton),
		leftDrag && app.Interaction.isPanning:
		app.doPan(delta)
	case leftDrag:
		app.doRotate(delta)
	}

	if wheel := rl.GetMouseWheelMove(); wheel != 0 {
		app.doZoom(wheel)
	}
}

func (app *App) handleShortcuts() {
	if rl.IsKeyPressed(rl.KeyHome) {
		app.resetCameraView()
	}
	if rl.IsKeyPressed(rl.KeyT) {
		app.setCameraTopView()
	}
	if rl.IsKeyPressed(rl.KeyOne) {
		app.setCameraFrontView()
	}
	if rl.IsKeyPressed(rl.KeyW) {
		app.View.showWireframe = !app.View.showWireframe
	}
	if rl.IsKeyPressed(rl.KeyF) {
		app.View.showFilled = !app.View.showFilled
	}
	if rl.IsKeyPressed(rl.KeyH) {
		app.View.showHelp = !app.View.showHelp
	}
	if rl.IsKeyPressed(rl.KeyC) && !app.modifierHeld() {
		app.Measure.session.ClearCompleted()
		app.Measure.overlay.Sync(app.Measure.session.Store())
	}
}
