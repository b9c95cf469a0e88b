package pick

import "github.com/philipparndt/raymeasure/pkg/geometry"

// RayCaster turns normalized device coordinates into a world-space ray.
// x grows to the right and y grows upwards, both in [-1, 1].
type RayCaster interface {
	RayAt(x, y float64) geometry.Ray
}

// Provider binds a camera to a surface set and answers pointer queries
type Provider struct {
	Camera   RayCaster
	Surfaces *SurfaceSet
}

// NewProvider creates a provider for the given camera and surfaces
func NewProvider(camera RayCaster, surfaces *SurfaceSet) *Provider {
	return &Provider{Camera: camera, Surfaces: surfaces}
}

// Pick casts a ray through the pointer position and returns the nearest hit
func (p *Provider) Pick(x, y float64) (Hit, bool) {
	if p.Camera == nil || p.Surfaces == nil {
		return Hit{}, false
	}
	return p.Surfaces.Intersect(p.Camera.RayAt(x, y))
}

// Intersect returns the nearest hit point under the pointer
func (p *Provider) Intersect(x, y float64) (geometry.Vector3, bool) {
	hit, ok := p.Pick(x, y)
	if !ok {
		return geometry.Vector3{}, false
	}
	return hit.Point, true
}
