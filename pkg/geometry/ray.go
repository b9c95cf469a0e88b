package geometry

// Ray is a half-line starting at Origin and heading along Direction
type Ray struct {
	Origin    Vector3
	Direction Vector3
}

// NewRay creates a ray with a normalized direction
func NewRay(origin, direction Vector3) Ray {
	return Ray{Origin: origin, Direction: direction.Normalize()}
}

// At returns the point at parameter t along the ray
func (r Ray) At(t float64) Vector3 {
	return r.Origin.Add(r.Direction.Mul(t))
}
