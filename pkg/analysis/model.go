package analysis

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/philipparndt/raymeasure/pkg/geometry"
	"github.com/philipparndt/raymeasure/pkg/stl"
)

// EdgeInfo contains information about an edge in the model
type EdgeInfo struct {
	Start      geometry.Vector3
	End        geometry.Vector3
	Length     float64
	TriangleID int
}

// Stats summarizes a sample of lengths or areas
type Stats struct {
	Min    float64
	Max    float64
	Mean   float64
	StdDev float64
	Sum    float64
}

// ModelResult contains the measurements of a whole model
type ModelResult struct {
	BoundingBox   geometry.BoundingBox
	Dimensions    geometry.Vector3
	Volume        float64
	SurfaceArea   float64
	TriangleCount int
	SolidCount    int
	EdgeCount     int
	Edges         Stats
	Areas         Stats
	AllEdges      []EdgeInfo
}

// AnalyzeModel collects bounds, areas and edge statistics of a model
func AnalyzeModel(model *stl.Model) *ModelResult {
	result := &ModelResult{
		BoundingBox:   model.BoundingBox(),
		SurfaceArea:   model.SurfaceArea(),
		TriangleCount: model.TriangleCount(),
		SolidCount:    len(model.Solids),
		AllEdges:      make([]EdgeInfo, 0, 3*model.TriangleCount()),
	}
	result.Dimensions = result.BoundingBox.Size()
	result.Volume = result.BoundingBox.Volume()

	lengths := make([]float64, 0, 3*model.TriangleCount())
	areas := make([]float64, 0, model.TriangleCount())
	for i, triangle := range model.Triangles {
		areas = append(areas, triangle.Area())
		for _, edge := range [][2]geometry.Vector3{
			{triangle.V1, triangle.V2},
			{triangle.V2, triangle.V3},
			{triangle.V3, triangle.V1},
		} {
			length := edge[0].Distance(edge[1])
			result.AllEdges = append(result.AllEdges, EdgeInfo{
				Start:      edge[0],
				End:        edge[1],
				Length:     length,
				TriangleID: i,
			})
			lengths = append(lengths, length)
		}
	}

	result.EdgeCount = len(result.AllEdges)
	result.Edges = Describe(lengths)
	result.Areas = Describe(areas)
	return result
}

// Describe computes summary statistics; an empty sample yields zeros
func Describe(values []float64) Stats {
	if len(values) == 0 {
		return Stats{}
	}
	s := Stats{
		Min:  floats.Min(values),
		Max:  floats.Max(values),
		Sum:  floats.Sum(values),
		Mean: stat.Mean(values, nil),
	}
	if len(values) > 1 {
		s.StdDev = stat.StdDev(values, nil)
	}
	return s
}

// FindEdgesByLength finds all edges within a length range
func FindEdgesByLength(result *ModelResult, minLength, maxLength float64) []EdgeInfo {
	var edges []EdgeInfo
	for _, edge := range result.AllEdges {
		if edge.Length >= minLength && edge.Length <= maxLength {
			edges = append(edges, edge)
		}
	}
	return edges
}

// FindLongestEdges returns the N longest edges in the model
func FindLongestEdges(result *ModelResult, count int) []EdgeInfo {
	return sortedEdges(result, count, func(a, b float64) bool { return a > b })
}

// FindShortestEdges returns the N shortest edges in the model
func FindShortestEdges(result *ModelResult, count int) []EdgeInfo {
	return sortedEdges(result, count, func(a, b float64) bool { return a < b })
}

func sortedEdges(result *ModelResult, count int, less func(a, b float64) bool) []EdgeInfo {
	edges := make([]EdgeInfo, len(result.AllEdges))
	copy(edges, result.AllEdges)

	sort.SliceStable(edges, func(i, j int) bool {
		return less(edges[i].Length, edges[j].Length)
	})

	count = max(0, min(count, len(edges)))
	return edges[:count]
}

// FindNearestVertex finds the vertex in the model nearest to a given point
func FindNearestVertex(model *stl.Model, point geometry.Vector3) (geometry.Vector3, float64) {
	var nearestVertex geometry.Vector3
	minDistance := math.MaxFloat64

	for _, triangle := range model.Triangles {
		for _, vertex := range []geometry.Vector3{triangle.V1, triangle.V2, triangle.V3} {
			distance := point.Distance(vertex)
			if distance < minDistance {
				minDistance = distance
				nearestVertex = vertex
			}
		}
	}

	return nearestVertex, minDistance
}

// FormatVector formats a 3D vector
func FormatVector(v geometry.Vector3) string {
	return fmt.Sprintf("(%.6f, %.6f, %.6f)", v.X, v.Y, v.Z)
}
