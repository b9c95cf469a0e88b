// Package app is the raylib measurement viewer.
package app

import (
	"context"
	"fmt"
	"log"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/philipparndt/raymeasure/internal/config"
	"github.com/philipparndt/raymeasure/internal/measurement"
	"github.com/philipparndt/raymeasure/internal/scene"
	"github.com/philipparndt/raymeasure/pkg/analysis"
	"github.com/philipparndt/raymeasure/pkg/pick"
)

// App is the viewer state for one window
type App struct {
	Camera      CameraState
	Model       ModelData
	View        ViewSettings
	Measure     MeasureState
	Interaction InteractionState
	Reload      ReloadState
	UI          UIState

	cfg     config.Config
	verbose bool
}

// Run opens a window for the model at path and blocks until it is closed
func Run(ctx context.Context, cfg config.Config, path string) error {
	s, err := scene.Load(ctx, path)
	if err != nil {
		return err
	}

	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagWindowHighdpi | rl.FlagMsaa4xHint) // Must be before InitWindow
	rl.InitWindow(int32(cfg.Window.Width), int32(cfg.Window.Height), "raymeasure")
	defer rl.CloseWindow()
	rl.SetTargetFPS(int32(cfg.Window.FPS))
	rl.SetExitKey(0)

	app := &App{
		View:    ViewSettings{showWireframe: false, showFilled: true, showHelp: true},
		UI:      UIState{font: rl.GetFontDefault(), fontSize: float32(cfg.Label.FontSize)},
		Camera:  CameraState{navigation: true},
		cfg:     cfg,
		verbose: cfg.Verbose,
	}
	app.Model.material = rl.LoadMaterialDefault()

	app.setScene(s)
	app.frameModel()

	app.Measure.session = measurement.NewSession(app.intersector(), app, app)
	app.Measure.dispatcher = measurement.NewDispatcher()
	app.Measure.overlay = measurement.NewOverlay()
	app.Measure.modifier = cfg.Measure.Modifier
	app.Measure.keys = modifierKeys(cfg.Measure.Modifier)
	app.Measure.dispatcher.Bind(app.Measure.session, cfg.Measure.Modifier)
	if app.verbose {
		app.Measure.session.Store().Subscribe(func(c measurement.Change) {
			fmt.Printf("measurement #%d %s: %s\n", c.ID, c.Kind, c.Label.Text)
		})
	}

	if cfg.Watch.Enabled {
		reloader, err := scene.NewReloader(s, cfg.Watch.Debounce)
		if err != nil {
			log.Printf("Warning: Failed to set up file watching: %v", err)
			fmt.Println("Auto-reload will not be available")
		} else {
			app.Reload.reloader = reloader
			defer reloader.Close()
		}
	}

	defer func() {
		rl.UnloadMesh(&app.Model.mesh)
		if err := app.Model.scene.Close(); err != nil {
			log.Printf("Warning: %v", err)
		}
	}()

	for !rl.WindowShouldClose() {
		if ctx.Err() != nil {
			break
		}

		app.pollReload(ctx)

		// Update
		app.handleInput()
		app.updateCamera()

		// Draw
		rl.BeginDrawing()
		rl.ClearBackground(rl.NewColor(15, 18, 25, 255))

		rl.BeginMode3D(app.Camera.camera)
		if app.View.showFilled {
			rl.DrawMesh(app.Model.mesh, app.Model.material, rl.MatrixIdentity())
		}
		if app.View.showWireframe {
			app.drawWireframe()
		}
		app.drawSegments()
		rl.EndMode3D()

		app.drawLabels()
		app.drawUI()

		rl.EndDrawing()
	}
	return nil
}

// intersector binds the live camera to the current surfaces
func (app *App) intersector() *pick.Provider {
	return pick.NewProvider(rayCaster{camera: &app.Camera.camera}, app.Model.scene.Surfaces)
}

// setScene uploads a scene's mesh and precomputes what the frame loop draws
func (app *App) setScene(s *scene.Scene) {
	app.Model.scene = s
	app.Model.mesh = stlToRaylibMesh(s.Model)
	app.Model.stats = analysis.AnalyzeModel(s.Model)
	app.Model.edges = uniqueEdges(s.Model)
	fmt.Printf("Loaded %s: %d triangles in %d solid(s)\n", s.Source, s.Model.TriangleCount(), len(s.Model.Solids))
}

// pollReload swaps in a reloaded model (must be called on main thread).
// The camera and the measurements stay where they are.
func (app *App) pollReload(ctx context.Context) {
	if app.Reload.reloader == nil {
		return
	}
	wasLoading := app.Reload.reloader.Loading()
	res, ok := app.Reload.reloader.Poll(ctx)
	if !wasLoading && app.Reload.reloader.Loading() {
		app.Reload.loadingStartTime = time.Now()
	}
	if !ok {
		return
	}

	if res.Err != nil {
		app.Reload.lastError = res.Err.Error()
		log.Printf("Error reloading model: %v", res.Err)
		return
	}
	app.Reload.lastError = ""

	old := app.Model.scene
	oldMesh := app.Model.mesh
	app.setScene(res.Scene)
	app.Measure.session.SetIntersector(app.intersector())

	rl.UnloadMesh(&oldMesh)
	if err := old.Close(); err != nil {
		log.Printf("Warning: %v", err)
	}
	fmt.Printf("Model reloaded successfully in %.2fs!\n", res.Elapsed.Seconds())
}
