package stl

import (
	"github.com/philipparndt/raymeasure/pkg/geometry"
)

// Solid is one named body of an STL file. ASCII files may carry several.
type Solid struct {
	Name      string
	Triangles []geometry.Triangle
}

// BoundingBox returns the bounds of the solid's triangles
func (s Solid) BoundingBox() geometry.BoundingBox {
	bbox := geometry.NewBoundingBox()
	for _, triangle := range s.Triangles {
		bbox.ExtendTriangle(triangle)
	}
	return bbox
}

// Model represents a complete STL model
type Model struct {
	Name      string
	Solids    []Solid
	Triangles []geometry.Triangle // all triangles of all solids, in file order
}

// NewModel creates a new STL model
func NewModel(name string) *Model {
	return &Model{
		Name:      name,
		Triangles: make([]geometry.Triangle, 0),
	}
}

// BeginSolid starts a new solid; following AddTriangle calls append to it
func (m *Model) BeginSolid(name string) {
	m.Solids = append(m.Solids, Solid{Name: name})
}

// AddTriangle adds a triangle to the current solid
func (m *Model) AddTriangle(triangle geometry.Triangle) {
	if len(m.Solids) == 0 {
		m.BeginSolid(m.Name)
	}
	last := &m.Solids[len(m.Solids)-1]
	last.Triangles = append(last.Triangles, triangle)
	m.Triangles = append(m.Triangles, triangle)
}

// TriangleCount returns the number of triangles in the model
func (m *Model) TriangleCount() int {
	return len(m.Triangles)
}

// BoundingBox calculates the bounding box of the entire model
func (m *Model) BoundingBox() geometry.BoundingBox {
	bbox := geometry.NewBoundingBox()
	for _, triangle := range m.Triangles {
		bbox.ExtendTriangle(triangle)
	}
	return bbox
}

// SurfaceArea calculates the total surface area of the model
func (m *Model) SurfaceArea() float64 {
	totalArea := 0.0
	for _, triangle := range m.Triangles {
		totalArea += triangle.Area()
	}
	return totalArea
}
