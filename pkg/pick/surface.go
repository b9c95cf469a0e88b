// Package pick holds the pickable surfaces of a scene and answers nearest-hit
// ray queries against them.
package pick

import (
	"errors"
	"fmt"

	"github.com/philipparndt/raymeasure/pkg/geometry"
	"github.com/philipparndt/raymeasure/pkg/stl"
)

// ErrSealed is returned when adding to a set after scene loading finished
var ErrSealed = errors.New("surface set is sealed")

// Surface is one renderable body eligible for ray hits
type Surface struct {
	Name      string
	Triangles []geometry.Triangle
	Bounds    geometry.BoundingBox
}

// NewSurface creates a surface and precomputes its bounds
func NewSurface(name string, triangles []geometry.Triangle) Surface {
	bounds := geometry.NewBoundingBox()
	for _, triangle := range triangles {
		bounds.ExtendTriangle(triangle)
	}
	return Surface{Name: name, Triangles: triangles, Bounds: bounds}
}

// SurfaceSet is an append-only collection of surfaces.
// Membership is fixed once Seal is called.
type SurfaceSet struct {
	surfaces []Surface
	sealed   bool
}

// NewSurfaceSet creates an empty, unsealed set
func NewSurfaceSet() *SurfaceSet {
	return &SurfaceSet{}
}

// FromModel builds a sealed set with one surface per solid of the model
func FromModel(model *stl.Model) *SurfaceSet {
	set := NewSurfaceSet()
	for i, solid := range model.Solids {
		name := solid.Name
		if name == "" {
			name = fmt.Sprintf("solid-%d", i)
		}
		// Adding to a fresh set cannot fail
		_ = set.Add(NewSurface(name, solid.Triangles))
	}
	set.Seal()
	return set
}

// Add appends a surface. It fails once the set is sealed.
func (s *SurfaceSet) Add(surface Surface) error {
	if s.sealed {
		return fmt.Errorf("add %q: %w", surface.Name, ErrSealed)
	}
	if len(surface.Triangles) == 0 {
		return nil
	}
	s.surfaces = append(s.surfaces, surface)
	return nil
}

// Seal freezes membership
func (s *SurfaceSet) Seal() {
	s.sealed = true
}

// Sealed reports whether membership is frozen
func (s *SurfaceSet) Sealed() bool {
	return s.sealed
}

// Len returns the number of surfaces
func (s *SurfaceSet) Len() int {
	return len(s.surfaces)
}

// Surfaces returns a copy of the surface list
func (s *SurfaceSet) Surfaces() []Surface {
	out := make([]Surface, len(s.surfaces))
	copy(out, s.surfaces)
	return out
}
