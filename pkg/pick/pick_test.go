package pick

import (
	"strings"
	"testing"

	"github.com/philipparndt/raymeasure/pkg/geometry"
	"github.com/philipparndt/raymeasure/pkg/stl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// quad builds two triangles covering [-size, size]² at height z
func quad(z, size float64) []geometry.Triangle {
	n := geometry.NewVector3(0, 0, 1)
	a := geometry.NewVector3(-size, -size, z)
	b := geometry.NewVector3(size, -size, z)
	c := geometry.NewVector3(size, size, z)
	d := geometry.NewVector3(-size, size, z)
	return []geometry.Triangle{
		geometry.NewTriangle(n, a, b, c),
		geometry.NewTriangle(n, a, c, d),
	}
}

// topDown looks straight down the z axis; NDC maps to ±10 world units
type topDown struct{}

func (topDown) RayAt(x, y float64) geometry.Ray {
	return geometry.NewRay(geometry.NewVector3(x*10, y*10, 100), geometry.NewVector3(0, 0, -1))
}

func TestIntersectNearest(t *testing.T) {
	set := NewSurfaceSet()
	require.NoError(t, set.Add(NewSurface("floor", quad(0, 10))))
	require.NoError(t, set.Add(NewSurface("table", quad(3, 2))))
	set.Seal()

	hit, ok := set.Intersect(geometry.NewRay(geometry.NewVector3(1, 1, 50), geometry.NewVector3(0, 0, -1)))
	require.True(t, ok)
	assert.Equal(t, "table", hit.Surface)
	assert.InDelta(t, 47.0, hit.Distance, 1e-9)
	assert.InDelta(t, 3.0, hit.Point.Z, 1e-9)

	hit, ok = set.Intersect(geometry.NewRay(geometry.NewVector3(5, 5, 50), geometry.NewVector3(0, 0, -1)))
	require.True(t, ok)
	assert.Equal(t, "floor", hit.Surface)
	assert.InDelta(t, 0.0, hit.Point.Z, 1e-9)
}

func TestIntersectMiss(t *testing.T) {
	set := NewSurfaceSet()
	require.NoError(t, set.Add(NewSurface("floor", quad(0, 10))))

	_, ok := set.Intersect(geometry.NewRay(geometry.NewVector3(20, 20, 50), geometry.NewVector3(0, 0, -1)))
	assert.False(t, ok)

	_, ok = set.Intersect(geometry.NewRay(geometry.NewVector3(0, 0, 50), geometry.NewVector3(0, 0, 1)))
	assert.False(t, ok)
}

func TestSealedSetRejectsSurfaces(t *testing.T) {
	set := NewSurfaceSet()
	set.Seal()

	err := set.Add(NewSurface("late", quad(0, 1)))
	assert.ErrorIs(t, err, ErrSealed)
	assert.Equal(t, 0, set.Len())
}

func TestEmptySurfaceIsSkipped(t *testing.T) {
	set := NewSurfaceSet()
	require.NoError(t, set.Add(NewSurface("empty", nil)))
	assert.Equal(t, 0, set.Len())
}

func TestFromModel(t *testing.T) {
	model, err := stl.ParseReader(strings.NewReader(`solid a
facet normal 0 0 1
outer loop
vertex 0 0 0
vertex 1 0 0
vertex 0 1 0
endloop
endfacet
endsolid a
solid
facet normal 0 0 1
outer loop
vertex 0 0 1
vertex 1 0 1
vertex 0 1 1
endloop
endfacet
endsolid
`))
	require.NoError(t, err)

	set := FromModel(model)
	assert.True(t, set.Sealed())
	require.Equal(t, 2, set.Len())
	assert.Equal(t, "a", set.Surfaces()[0].Name)
	assert.Equal(t, "solid-1", set.Surfaces()[1].Name)
}

func TestProviderIntersect(t *testing.T) {
	set := NewSurfaceSet()
	require.NoError(t, set.Add(NewSurface("floor", quad(0, 5))))
	set.Seal()

	provider := NewProvider(topDown{}, set)

	point, ok := provider.Intersect(0.3, -0.4)
	require.True(t, ok)
	assert.InDelta(t, 3.0, point.X, 1e-9)
	assert.InDelta(t, -4.0, point.Y, 1e-9)
	assert.InDelta(t, 0.0, point.Z, 1e-9)

	_, ok = provider.Intersect(0.9, 0.9)
	assert.False(t, ok, "ray outside the floor must miss")
}

func TestProviderPickReportsTriangle(t *testing.T) {
	set := NewSurfaceSet()
	require.NoError(t, set.Add(NewSurface("floor", quad(0, 5))))
	set.Seal()

	provider := NewProvider(topDown{}, set)

	hit, ok := provider.Pick(0.3, -0.4)
	require.True(t, ok)
	assert.Equal(t, "floor", hit.Surface)
	assert.Equal(t, 0, hit.Triangle)

	hit, ok = provider.Pick(-0.3, 0.4)
	require.True(t, ok)
	assert.Equal(t, 1, hit.Triangle)

	_, ok = NewProvider(nil, set).Pick(0, 0)
	assert.False(t, ok)
}
