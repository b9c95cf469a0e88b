package app

import (
	"fmt"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/philipparndt/raymeasure/internal/measurement"
	"github.com/philipparndt/raymeasure/pkg/analysis"
	"github.com/philipparndt/raymeasure/version"
)

// maxListed caps the measurement list in the status panel
const maxListed = 8

// drawUI draws the status panel, the help text and the frame-rate overlay
func (app *App) drawUI() {
	y := float32(10)
	lineHeight := float32(20)
	fontSize16 := float32(16)
	fontSize14 := float32(14)
	font := app.UI.font

	text := func(s string, size float32, col rl.Color) {
		rl.DrawTextEx(font, s, rl.Vector2{X: 10, Y: y}, size, 1, col)
		y += lineHeight
	}

	app.drawLoadingIndicator()

	// === MODEL ===
	stats := app.Model.stats
	model := app.Model.scene.Model
	text("Model:", fontSize16, rl.Yellow)
	text(fmt.Sprintf("  Name: %s", model.Name), fontSize14, rl.White)
	text(fmt.Sprintf("  Triangles: %d", stats.TriangleCount), fontSize14, rl.White)
	text(fmt.Sprintf("  Size: %.2f x %.2f x %.2f", stats.Dimensions.X, stats.Dimensions.Y, stats.Dimensions.Z), fontSize14, rl.White)
	if app.Reload.reloader != nil {
		text(fmt.Sprintf("  Watching: %d file(s)", app.Reload.reloader.Watched()), fontSize14, rl.LightGray)
	}
	y += lineHeight

	// === MEASURE ===
	session := app.Measure.session
	mode := "navigate"
	modeColor := rl.LightGray
	if session.InMeasurementMode() {
		mode = "measure (" + session.State().String() + ")"
		modeColor = rl.Green
	}
	text("Measure:", fontSize16, rl.Yellow)
	text("  Mode: "+mode, fontSize14, modeColor)

	list := session.Store().List()
	start := 0
	if len(list) > maxListed {
		start = len(list) - maxListed
	}
	for _, m := range list[start:] {
		col := rl.White
		if !m.Completed {
			col = drawingColor
		}
		text(fmt.Sprintf("  #%d  %s", m.ID, m.Label.Text), fontSize14, col)
	}

	summary := analysis.Summarize(list)
	if summary.Completed > 0 {
		text(fmt.Sprintf("  Total: %s  Longest: #%d", measurement.FormatDistance(summary.Distances.Sum), summary.Longest.ID), fontSize14, rl.SkyBlue)
	}
	y += lineHeight

	// === HELP ===
	if app.View.showHelp {
		text("Controls:", fontSize16, rl.Yellow)
		text(fmt.Sprintf("  Hold %s + Click: Start / finish measurement", app.Measure.modifier), fontSize14, rl.LightGray)
		text("  Left Drag: Rotate | Shift+Drag: Pan", fontSize14, rl.LightGray)
		text("  Mouse Wheel: Zoom | Home: Reset", fontSize14, rl.LightGray)
		text("  T: Top | 1: Front | W: Wireframe | F: Fill", fontSize14, rl.LightGray)
		text("  C: Clear measurements | H: Hide help", fontSize14, rl.LightGray)
	}

	if app.Reload.lastError != "" {
		text("Reload failed: "+app.Reload.lastError, fontSize14, rl.Red)
	}

	// Version and FPS in bottom-left corner
	bottomY := float32(rl.GetScreenHeight()) - 30
	versionText := fmt.Sprintf("v%s", version.GetVersion())
	rl.DrawTextEx(font, versionText, rl.Vector2{X: 10, Y: bottomY}, 12, 1, rl.Gray)
	versionWidth := rl.MeasureTextEx(font, versionText, 12, 1).X
	rl.DrawFPS(int32(10+versionWidth+15), int32(bottomY))
}

func (app *App) drawLoadingIndicator() {
	if app.Reload.reloader == nil || !app.Reload.reloader.Loading() {
		return
	}

	elapsed := time.Since(app.Reload.loadingStartTime).Seconds()
	spinner := []string{"|", "/", "-", "\\"}
	loadingText := fmt.Sprintf("%s Loading... (%.1fs)", spinner[int(elapsed*10)%len(spinner)], elapsed)

	screenWidth := float32(rl.GetScreenWidth())
	boxWidth := float32(250)
	boxHeight := float32(40)
	boxX := screenWidth - boxWidth - 20
	boxY := float32(20)

	rl.DrawRectangle(int32(boxX), int32(boxY), int32(boxWidth), int32(boxHeight), rl.NewColor(0, 0, 0, 180))
	rl.DrawRectangleLines(int32(boxX), int32(boxY), int32(boxWidth), int32(boxHeight), rl.Yellow)

	textSize := rl.MeasureTextEx(app.UI.font, loadingText, 18, 1)
	rl.DrawTextEx(app.UI.font, loadingText, rl.Vector2{
		X: boxX + (boxWidth-textSize.X)/2,
		Y: boxY + (boxHeight-textSize.Y)/2,
	}, 18, 1, rl.Yellow)
}
