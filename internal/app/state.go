package app

import (
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/philipparndt/raymeasure/internal/measurement"
	"github.com/philipparndt/raymeasure/internal/scene"
	"github.com/philipparndt/raymeasure/pkg/analysis"
)

// CameraState holds all camera-related state
type CameraState struct {
	camera        rl.Camera3D
	distance      float32
	angleX        float32
	angleY        float32
	target        rl.Vector3 // Current camera target (can be panned)
	defaultDist   float32    // Default camera distance (for reset)
	defaultAngleX float32    // Default camera angle X (for reset)
	defaultAngleY float32    // Default camera angle Y (for reset)
	navigation    bool       // Orbit, pan and zoom; off while measuring
}

// ModelData holds all model-related data
type ModelData struct {
	scene    *scene.Scene
	mesh     rl.Mesh
	material rl.Material
	center   rl.Vector3 // Model center
	size     float32    // Model size (max dimension)
	stats    *analysis.ModelResult
	edges    [][2]rl.Vector3 // Deduplicated wireframe edges
}

// ViewSettings holds display settings
type ViewSettings struct {
	showWireframe bool
	showFilled    bool
	showHelp      bool
}

// MeasureState holds the measurement session and what is drawn for it
type MeasureState struct {
	session    *measurement.Session
	dispatcher *measurement.Dispatcher
	overlay    *measurement.Overlay
	modifier   string
	keys       []int32 // raylib keys that act as the modifier
}

// InteractionState holds mouse state for camera navigation
type InteractionState struct {
	isPanning    bool
	lastMousePos rl.Vector2
	dragOrbits   bool // the held left button began while navigation was on
}

// beginDrag records a left button press
func (s *InteractionState) beginDrag(navigation bool) {
	s.dragOrbits = navigation
}

// leftDragMoves reports whether the held left button may move the camera
func (s *InteractionState) leftDragMoves(navigation bool) bool {
	return navigation && s.dragOrbits
}

// ReloadState holds file watching and background reload state
type ReloadState struct {
	reloader         *scene.Reloader
	loadingStartTime time.Time
	lastError        string
}

// UIState holds UI-related state
type UIState struct {
	font     rl.Font
	fontSize float32
}
