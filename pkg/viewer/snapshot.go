package viewer

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"math"
	"os"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/philipparndt/raymeasure/internal/measurement"
	"github.com/philipparndt/raymeasure/pkg/stl"
)

// Palette colors shared by the snapshot and the fyne view
var (
	BackgroundColor = color.RGBA{15, 18, 25, 255}
	ModelColor      = color.RGBA{110, 160, 220, 255}
	DrawingColor    = color.RGBA{255, 200, 60, 255}
	CompletedColor  = color.RGBA{255, 90, 90, 255}
	LabelBoxColor   = color.RGBA{0, 0, 0, 200}
	LabelTextColor  = color.RGBA{255, 255, 255, 255}
)

const ambientLight = 0.35

// RenderModel rasterizes the model with a headlight at the camera
func RenderModel(model *stl.Model, cam *Camera) *image.RGBA {
	w, h := cam.Viewport()
	width, height := int(w), int(h)

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	xdraw.Draw(img, img.Bounds(), image.NewUniform(BackgroundColor), image.Point{}, xdraw.Src)

	zbuffer := make([]float64, width*height)
	for i := range zbuffer {
		zbuffer[i] = math.Inf(1)
	}

	forward, _, _ := cam.basis()
	for _, tri := range model.Triangles {
		x1, y1, z1 := cam.Project(tri.V1)
		x2, y2, z2 := cam.Project(tri.V2)
		x3, y3, z3 := cam.Project(tri.V3)
		if z1 <= 0 || z2 <= 0 || z3 <= 0 {
			continue
		}

		// two-sided lighting, STL winding is not reliable
		diffuse := math.Abs(tri.CalculateNormal().Dot(forward))
		col := shade(ModelColor, ambientLight+(1-ambientLight)*diffuse)
		fillTriangleWithDepth(img, zbuffer, x1, y1, z1, x2, y2, z2, x3, y3, z3, col)
	}
	return img
}

// DrawOverlay draws measurement segments and labels on top of img
func DrawOverlay(img *image.RGBA, cam *Camera, overlay *measurement.Overlay) {
	for _, seg := range overlay.Segments() {
		x1, y1, d1 := cam.Project(seg.Start)
		x2, y2, d2 := cam.Project(seg.End)
		if d1 <= 0 || d2 <= 0 {
			continue
		}
		col := DrawingColor
		if seg.Completed {
			col = CompletedColor
		}
		drawLine(img, round(x1), round(y1), round(x2), round(y2), col)
		drawMarker(img, round(x1), round(y1), 2, col)
		drawMarker(img, round(x2), round(y2), 2, col)
	}

	face := basicfont.Face7x13
	for _, label := range overlay.Labels() {
		x, y, depth := cam.Project(label.Anchor)
		if depth <= 0 {
			continue
		}
		drawLabel(img, face, round(x), round(y), label.Text)
	}
}

// drawLabel draws text centered on (x, y) inside a dark box
func drawLabel(img *image.RGBA, face font.Face, x, y int, text string) {
	const padding = 3
	metrics := face.Metrics()
	textWidth := font.MeasureString(face, text).Ceil()
	ascent, descent := metrics.Ascent.Ceil(), metrics.Descent.Ceil()

	box := image.Rect(
		x-textWidth/2-padding, y-(ascent+descent)/2-padding,
		x+textWidth/2+padding, y+(ascent+descent)/2+padding,
	)
	xdraw.Draw(img, box, image.NewUniform(LabelBoxColor), image.Point{}, xdraw.Over)

	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(LabelTextColor),
		Face: face,
		Dot:  fixed.P(x-textWidth/2, y-(ascent+descent)/2+ascent),
	}
	d.DrawString(text)
}

// Snapshot renders the model and the overlay into one image
func Snapshot(model *stl.Model, cam *Camera, overlay *measurement.Overlay) *image.RGBA {
	img := RenderModel(model, cam)
	DrawOverlay(img, cam, overlay)
	return img
}

// WritePNG writes an image to a PNG file
func WritePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	return f.Close()
}

func round(v float64) int {
	return int(math.Round(v))
}
