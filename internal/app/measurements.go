package app

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

var (
	drawingColor   = rl.NewColor(255, 200, 60, 255)
	completedColor = rl.NewColor(255, 90, 90, 255)
)

// drawSegments draws the measurement lines (inside 3D mode)
func (app *App) drawSegments() {
	radius := app.Model.size * 0.006
	for _, seg := range app.Measure.overlay.Segments() {
		col := drawingColor
		if seg.Completed {
			col = completedColor
		}
		start, end := toRaylib(seg.Start), toRaylib(seg.End)
		rl.DrawLine3D(start, end, col)
		rl.DrawSphere(start, radius, col)
		rl.DrawSphere(end, radius, col)
	}
}

// drawLabels projects each label anchor to the screen and draws its text
// in a box (after 3D mode)
func (app *App) drawLabels() {
	const padding = float32(5)
	fontSize := app.UI.fontSize

	for _, label := range app.Measure.overlay.Labels() {
		anchor := toRaylib(label.Anchor)
		if !app.inFront(anchor) {
			continue
		}
		pos := rl.GetWorldToScreen(anchor, app.Camera.camera)

		size := rl.MeasureTextEx(app.UI.font, label.Text, fontSize, 1)
		box := rl.Rectangle{
			X:      pos.X - size.X/2 - padding,
			Y:      pos.Y - size.Y/2 - padding,
			Width:  size.X + padding*2,
			Height: size.Y + padding*2,
		}
		rl.DrawRectangleRec(box, rl.NewColor(0, 0, 0, 200))
		rl.DrawRectangleLinesEx(box, 1, rl.Yellow)
		rl.DrawTextEx(app.UI.font, label.Text, rl.Vector2{X: box.X + padding, Y: box.Y + padding}, fontSize, 1, rl.White)
	}
}

// inFront reports whether a point lies in front of the camera
func (app *App) inFront(p rl.Vector3) bool {
	forward := rl.Vector3Subtract(app.Camera.camera.Target, app.Camera.camera.Position)
	return rl.Vector3DotProduct(rl.Vector3Subtract(p, app.Camera.camera.Position), forward) > 0
}
