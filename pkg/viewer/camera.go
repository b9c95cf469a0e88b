package viewer

import (
	"math"

	"github.com/philipparndt/raymeasure/pkg/geometry"
)

const (
	defaultRotationX = 0.3
	defaultRotationY = 0.3
	maxPitch         = math.Pi/2 - 0.1
	minDistance      = 0.1
)

// Camera is a software orbit camera for viewing the model
type Camera struct {
	Position  geometry.Vector3
	Target    geometry.Vector3
	Up        geometry.Vector3
	FOV       float64 // Field of view in radians
	Distance  float64
	RotationX float64 // Rotation around X axis (vertical)
	RotationY float64 // Rotation around Y axis (horizontal)

	width, height float64
	navigation    bool
	home          orbit
}

// orbit is the framing Reset returns to
type orbit struct {
	target               geometry.Vector3
	distance             float64
	rotationX, rotationY float64
}

// NewCamera creates a camera framing a bounding box for a width x height viewport
func NewCamera(bbox geometry.BoundingBox, width, height float64) *Camera {
	size := bbox.Size()
	distance := math.Max(size.X, math.Max(size.Y, size.Z)) * 2.0
	if distance < minDistance {
		distance = 1
	}

	c := &Camera{
		Target:     bbox.Center(),
		Up:         geometry.NewVector3(0, 1, 0),
		FOV:        math.Pi / 4, // 45 degrees
		Distance:   distance,
		RotationX:  defaultRotationX,
		RotationY:  defaultRotationY,
		navigation: true,
	}
	c.SetViewport(width, height)
	c.UpdatePosition()
	c.home = orbit{c.Target, c.Distance, c.RotationX, c.RotationY}
	return c
}

// SetViewport sets the pixel size used by projection and picking
func (c *Camera) SetViewport(width, height float64) {
	c.width = math.Max(width, 1)
	c.height = math.Max(height, 1)
}

// Viewport returns the pixel size of the view
func (c *Camera) Viewport() (width, height float64) {
	return c.width, c.height
}

// SetNavigationEnabled suspends or resumes orbit and zoom
func (c *Camera) SetNavigationEnabled(enabled bool) {
	c.navigation = enabled
}

// NavigationEnabled reports whether orbit and zoom are active
func (c *Camera) NavigationEnabled() bool {
	return c.navigation
}

// UpdatePosition updates camera position based on rotation angles
func (c *Camera) UpdatePosition() {
	x := c.Distance * math.Cos(c.RotationX) * math.Sin(c.RotationY)
	y := c.Distance * math.Sin(c.RotationX)
	z := c.Distance * math.Cos(c.RotationX) * math.Cos(c.RotationY)

	c.Position = c.Target.Add(geometry.NewVector3(x, y, z))
}

// Rotate orbits the camera by the given angles. It returns false while
// navigation is suspended.
func (c *Camera) Rotate(deltaX, deltaY float64) bool {
	if !c.navigation {
		return false
	}
	c.RotationX = math.Max(-maxPitch, math.Min(maxPitch, c.RotationX+deltaX))
	c.RotationY += deltaY
	c.UpdatePosition()
	return true
}

// Zoom scales the camera distance by (1 + delta)
func (c *Camera) Zoom(delta float64) bool {
	if !c.navigation {
		return false
	}
	c.Distance = math.Max(minDistance, c.Distance*(1.0+delta))
	c.UpdatePosition()
	return true
}

// Reset restores the framing from NewCamera
func (c *Camera) Reset() {
	c.Target = c.home.target
	c.Distance = c.home.distance
	c.RotationX = c.home.rotationX
	c.RotationY = c.home.rotationY
	c.UpdatePosition()
}

func (c *Camera) basis() (forward, right, up geometry.Vector3) {
	forward = c.Target.Sub(c.Position).Normalize()
	right = forward.Cross(c.Up).Normalize()
	up = right.Cross(forward).Normalize()
	return forward, right, up
}

// Project maps a world point to pixel coordinates and its view depth.
// Points behind the camera report a depth <= 0.
func (c *Camera) Project(point geometry.Vector3) (float64, float64, float64) {
	forward, right, up := c.basis()

	relative := point.Sub(c.Position)
	x := relative.Dot(right)
	y := relative.Dot(up)
	depth := relative.Dot(forward)

	z := math.Max(depth, 0.01)
	aspect := c.width / c.height
	fovScale := math.Tan(c.FOV / 2)

	screenX := (x/(z*fovScale*aspect))*(c.width/2) + (c.width / 2)
	screenY := (-y/(z*fovScale))*(c.height/2) + (c.height / 2)

	return screenX, screenY, depth
}

// RayAt returns the world ray through a point in normalized device coordinates
func (c *Camera) RayAt(ndcX, ndcY float64) geometry.Ray {
	forward, right, up := c.basis()
	aspect := c.width / c.height
	fovScale := math.Tan(c.FOV / 2)

	dir := forward.Add(right.Mul(ndcX * fovScale * aspect)).Add(up.Mul(ndcY * fovScale))
	return geometry.NewRay(c.Position, dir)
}

// ScreenToNDC converts pixel coordinates to normalized device coordinates
func (c *Camera) ScreenToNDC(x, y float64) (float64, float64) {
	return ScreenToNDC(x, y, c.width, c.height)
}

// ScreenToNDC converts pixel coordinates in a width x height view to
// normalized device coordinates, x right and y up.
func ScreenToNDC(x, y, width, height float64) (float64, float64) {
	return 2*x/width - 1, 1 - 2*y/height
}
