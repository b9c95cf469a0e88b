package geometry

import (
	"math"
	"testing"
)

func TestNewRayNormalizesDirection(t *testing.T) {
	ray := NewRay(NewVector3(0, 0, 0), NewVector3(0, 3, 4))

	if math.Abs(ray.Direction.Length()-1) > 1e-10 {
		t.Errorf("NewRay failed: expected unit direction, got length %v", ray.Direction.Length())
	}
}

func TestRayAt(t *testing.T) {
	ray := NewRay(NewVector3(1, 1, 1), NewVector3(0, 0, 2))

	expected := NewVector3(1, 1, 4)
	if got := ray.At(3); got.Distance(expected) > 1e-10 {
		t.Errorf("At failed: expected %v, got %v", expected, got)
	}
}
