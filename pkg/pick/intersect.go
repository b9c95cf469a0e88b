package pick

import (
	"math"

	"github.com/philipparndt/raymeasure/pkg/geometry"
)

// Hit describes the nearest intersection of a ray with the surface set
type Hit struct {
	Point    geometry.Vector3
	Distance float64 // ray parameter of the hit
	Surface  string
	Triangle int // index into the surface's triangles
}

// Intersect returns the nearest hit of ray against every surface in the set.
// Ties keep the surface that was added first.
func (s *SurfaceSet) Intersect(ray geometry.Ray) (Hit, bool) {
	best := Hit{Distance: math.MaxFloat64}
	found := false

	for _, surface := range s.surfaces {
		near, _, ok := surface.Bounds.IntersectRay(ray)
		if !ok || near > best.Distance {
			continue
		}

		for i, triangle := range surface.Triangles {
			dist, ok := triangle.IntersectRay(ray)
			if !ok || dist >= best.Distance {
				continue
			}
			best = Hit{
				Point:    ray.At(dist),
				Distance: dist,
				Surface:  surface.Name,
				Triangle: i,
			}
			found = true
		}
	}

	return best, found
}
