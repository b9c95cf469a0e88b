package viewer

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"github.com/philipparndt/raymeasure/internal/measurement"
	"github.com/philipparndt/raymeasure/pkg/pick"
	"github.com/philipparndt/raymeasure/pkg/stl"
)

// MeasureView shows a model and lets the user measure it: hold the modifier
// key and click two surface points. Dragging orbits, scrolling zooms.
type MeasureView struct {
	widget.BaseWidget

	model      *stl.Model
	camera     *Camera
	session    *measurement.Session
	dispatcher *measurement.Dispatcher
	overlay    *measurement.Overlay
	fontSize   float32

	image  *canvas.Image
	lines  []fyne.CanvasObject
	labels []fyne.CanvasObject
	cursor desktop.Cursor
	dirty  bool

	// held modifier keys; left and right variants share one event name
	held map[fyne.KeyName]bool
	// drag orbits only if it began while navigation was enabled
	dragging, dragOrbits bool

	// OnChange is called after the measurements changed
	OnChange func()
}

// NewMeasureView creates a view for a loaded model. modifier is one of
// control, shift, alt or super.
func NewMeasureView(model *stl.Model, surfaces *pick.SurfaceSet, modifier string, fontSize float32) *MeasureView {
	v := &MeasureView{
		model:      model,
		camera:     NewCamera(model.BoundingBox(), 800, 600),
		dispatcher: measurement.NewDispatcher(),
		overlay:    measurement.NewOverlay(),
		fontSize:   fontSize,
		cursor:     desktop.DefaultCursor,
		dirty:      true,
		held:       make(map[fyne.KeyName]bool),
	}
	v.session = measurement.NewSession(pick.NewProvider(v.camera, surfaces), v.camera, v)
	v.dispatcher.Bind(v.session, modifier)
	v.ExtendBaseWidget(v)
	return v
}

// Session exposes the measurement session, e.g. for status output
func (v *MeasureView) Session() *measurement.Session {
	return v.session
}

// SetModel replaces the model after a reload. Measurements are kept; they
// refer to world coordinates, not to triangles.
func (v *MeasureView) SetModel(model *stl.Model, surfaces *pick.SurfaceSet) {
	v.model = model
	v.session.SetIntersector(pick.NewProvider(v.camera, surfaces))
	v.dirty = true
	v.Refresh()
}

// SetCursor implements measurement.CursorSetter
func (v *MeasureView) SetCursor(cursor measurement.Cursor) {
	if cursor == measurement.CursorCrosshair {
		v.cursor = desktop.CrosshairCursor
	} else {
		v.cursor = desktop.DefaultCursor
	}
}

// Cursor implements desktop.Cursorable
func (v *MeasureView) Cursor() desktop.Cursor {
	return v.cursor
}

// KeyDown forwards a window key press. A modifier counts as pressed when
// its first variant goes down.
func (v *MeasureView) KeyDown(ev *fyne.KeyEvent) {
	name := ModifierName(ev.Name)
	if name == "" || v.held[ev.Name] {
		return
	}
	wasHeld := v.holding(name)
	v.held[ev.Name] = true
	if !wasHeld {
		v.post(measurement.KeyDownEvent(name))
	}
}

// KeyUp forwards a window key release. A modifier counts as released when
// no variant of it is held any more.
func (v *MeasureView) KeyUp(ev *fyne.KeyEvent) {
	name := ModifierName(ev.Name)
	if name == "" || !v.held[ev.Name] {
		return
	}
	delete(v.held, ev.Name)
	if !v.holding(name) {
		v.post(measurement.KeyUpEvent(name))
	}
}

func (v *MeasureView) holding(name string) bool {
	for key := range v.held {
		if ModifierName(key) == name {
			return true
		}
	}
	return false
}

// TypedKey handles view shortcuts
func (v *MeasureView) TypedKey(ev *fyne.KeyEvent) {
	switch ev.Name {
	case fyne.KeyHome:
		v.camera.Reset()
		v.dirty = true
		v.Refresh()
	case fyne.KeyC:
		if v.session.ClearCompleted() > 0 {
			v.sync()
		}
	}
}

// MouseDown implements desktop.Mouseable
func (v *MeasureView) MouseDown(ev *desktop.MouseEvent) {
	if ev.Button != desktop.MouseButtonPrimary {
		return
	}
	x, y := v.camera.ScreenToNDC(float64(ev.Position.X), float64(ev.Position.Y))
	v.post(measurement.PointerDownEvent(x, y))
}

// MouseUp implements desktop.Mouseable
func (v *MeasureView) MouseUp(*desktop.MouseEvent) {}

// MouseIn implements desktop.Hoverable
func (v *MeasureView) MouseIn(*desktop.MouseEvent) {}

// MouseMoved implements desktop.Hoverable
func (v *MeasureView) MouseMoved(ev *desktop.MouseEvent) {
	x, y := v.camera.ScreenToNDC(float64(ev.Position.X), float64(ev.Position.Y))
	v.post(measurement.PointerMoveEvent(x, y))
}

// MouseOut implements desktop.Hoverable
func (v *MeasureView) MouseOut() {}

// Dragged orbits the camera unless measurement mode suspended navigation.
// A drag that began in measurement mode keeps the camera still even after
// the modifier is released.
func (v *MeasureView) Dragged(ev *fyne.DragEvent) {
	if !v.dragging {
		v.dragging = true
		v.dragOrbits = v.camera.NavigationEnabled()
	}
	if !v.camera.NavigationEnabled() {
		v.dragOrbits = false
	}
	if !v.dragOrbits {
		return
	}
	if v.camera.Rotate(float64(ev.Dragged.DY)*0.01, float64(-ev.Dragged.DX)*0.01) {
		v.dirty = true
		v.Refresh()
	}
}

// DragEnd implements fyne.Draggable
func (v *MeasureView) DragEnd() {
	v.dragging = false
	v.dragOrbits = false
}

// Scrolled zooms the camera
func (v *MeasureView) Scrolled(ev *fyne.ScrollEvent) {
	if v.camera.Zoom(-float64(ev.Scrolled.DY) * 0.001) {
		v.dirty = true
		v.Refresh()
	}
}

// post delivers one event right away. fyne calls back on its event thread,
// so every callback is one tick.
func (v *MeasureView) post(ev measurement.Event) {
	v.dispatcher.Post(ev)
	v.dispatcher.Flush()
	v.sync()
}

func (v *MeasureView) sync() {
	if v.overlay.Sync(v.session.Store()) == 0 {
		return
	}
	v.Refresh()
	if v.OnChange != nil {
		v.OnChange()
	}
}

// CreateRenderer implements fyne.Widget
func (v *MeasureView) CreateRenderer() fyne.WidgetRenderer {
	v.image = canvas.NewImageFromImage(RenderModel(v.model, v.camera))
	v.image.FillMode = canvas.ImageFillStretch
	return &measureViewRenderer{view: v}
}

// layout rebuilds the raster and the overlay objects for size
func (v *MeasureView) layout(size fyne.Size) {
	w, h := v.camera.Viewport()
	if float64(size.Width) != w || float64(size.Height) != h {
		v.camera.SetViewport(float64(size.Width), float64(size.Height))
		v.dirty = true
	}
	if v.dirty && size.Width > 0 && size.Height > 0 {
		v.image.Image = RenderModel(v.model, v.camera)
		v.image.Refresh()
		v.dirty = false
	}
	v.image.Resize(size)
	v.image.Move(fyne.NewPos(0, 0))

	v.lines = v.lines[:0]
	for _, seg := range v.overlay.Segments() {
		x1, y1, d1 := v.camera.Project(seg.Start)
		x2, y2, d2 := v.camera.Project(seg.End)
		if d1 <= 0 || d2 <= 0 {
			continue
		}
		col := DrawingColor
		if seg.Completed {
			col = CompletedColor
		}
		line := canvas.NewLine(col)
		line.StrokeWidth = 2
		line.Position1 = fyne.NewPos(float32(x1), float32(y1))
		line.Position2 = fyne.NewPos(float32(x2), float32(y2))
		v.lines = append(v.lines, line)
	}

	v.labels = v.labels[:0]
	for _, label := range v.overlay.Labels() {
		x, y, depth := v.camera.Project(label.Anchor)
		if depth <= 0 {
			continue
		}
		text := canvas.NewText(label.Text, color.White)
		text.TextSize = v.fontSize
		text.TextStyle = fyne.TextStyle{Monospace: true}
		textSize := text.MinSize()

		box := canvas.NewRectangle(LabelBoxColor)
		box.CornerRadius = 3
		box.Resize(fyne.NewSize(textSize.Width+8, textSize.Height+4))
		box.Move(fyne.NewPos(float32(x)-textSize.Width/2-4, float32(y)-textSize.Height/2-2))

		text.Resize(textSize)
		text.Move(fyne.NewPos(float32(x)-textSize.Width/2, float32(y)-textSize.Height/2))
		v.labels = append(v.labels, box, text)
	}
}

type measureViewRenderer struct {
	view *MeasureView
}

func (r *measureViewRenderer) Layout(size fyne.Size) {
	r.view.layout(size)
}

func (r *measureViewRenderer) MinSize() fyne.Size {
	return fyne.NewSize(400, 400)
}

func (r *measureViewRenderer) Refresh() {
	r.view.layout(r.view.Size())
	canvas.Refresh(r.view)
}

func (r *measureViewRenderer) Objects() []fyne.CanvasObject {
	objects := make([]fyne.CanvasObject, 0, 1+len(r.view.lines)+len(r.view.labels))
	objects = append(objects, r.view.image)
	objects = append(objects, r.view.lines...)
	return append(objects, r.view.labels...)
}

func (r *measureViewRenderer) Destroy() {}

// ModifierName maps a fyne key to the modifier name used by the dispatcher,
// or "" for any other key.
func ModifierName(key fyne.KeyName) string {
	switch key {
	case desktop.KeyControlLeft, desktop.KeyControlRight:
		return "control"
	case desktop.KeyShiftLeft, desktop.KeyShiftRight:
		return "shift"
	case desktop.KeyAltLeft, desktop.KeyAltRight:
		return "alt"
	case desktop.KeySuperLeft, desktop.KeySuperRight:
		return "super"
	}
	return ""
}
